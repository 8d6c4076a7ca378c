// Package api exposes the hubsite content pages over HTTP: thin chi
// handlers that gate on the host allow-list, ask the composer for a page
// context, and hand it to the template engine or serialize it as JSON
// depending on the request's Accept header.
package api

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/hubsite/hubsite/pkg/hubsite"
	"github.com/hubsite/hubsite/pkg/hubsite/config"
)

const (
	htmlContentType  = "text/html; charset=utf-8"
	htmlCacheControl = "public, max-age=120, stale-while-revalidate=60"
)

// Server wires the composer and renderer into an HTTP handler tree.
type Server struct {
	composer *hubsite.Composer
	renderer hubsite.Renderer
	logger   *zap.Logger
	config   *config.ServerConfig
}

// NewServer creates the HTTP server wrapper.
func NewServer(composer *hubsite.Composer, renderer hubsite.Renderer, logger *zap.Logger, cfg *config.ServerConfig) *Server {
	return &Server{
		composer: composer,
		renderer: renderer,
		logger:   logger,
		config:   cfg,
	}
}

// Routes sets up the HTTP routes.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(s.requestLogger)

	// Health stays outside the host gate so infrastructure probes reach
	// it regardless of which vhost they address.
	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(s.allowedHostsOnly)

		r.Get("/", s.handleHome)
		r.Get("/index.html", s.handleHome)

		r.Get("/ecosystems", s.handleEcosystemsList)
		r.Get("/ecosystems/{slug}", s.handleEcosystem)
		r.Get("/tools", s.handleToolsList)
		r.Get("/tools/{slug}", s.handleTool)
		r.Get("/events", s.handleEventsList)
		r.Get("/events/{slug}", s.handleEvent)
		r.Get("/learn", s.handleLearnList)
		r.Get("/learn/{slug}", s.handleLearningPath)
		r.Get("/creators", s.handleCreatorsList)
		r.Get("/creators/{slug}", s.handleCreator)
		r.Get("/news", s.handleNewsList)
		r.Get("/news/{slug}", s.handlePost)
		r.Get("/jobs", s.handleJobsList)

		if s.config.StaticDir != "" {
			fs := http.StripPrefix("/static/", http.FileServer(http.Dir(s.config.StaticDir)))
			r.Get("/static/*", fs.ServeHTTP)
		}
	})

	r.NotFound(s.notFound)

	return r
}

// PrefersJSON reports whether an Accept header asks for JSON: any comma
// item equal to application/json or with a +json suffix.
func PrefersJSON(accept string) bool {
	for _, item := range strings.Split(accept, ",") {
		item = strings.TrimSpace(item)
		if item == "application/json" || strings.HasSuffix(item, "+json") {
			return true
		}
	}
	return false
}

// hostAllowed checks the request's host (port stripped, lowercased)
// against the configured allow-list. Loopback is always allowed.
func (s *Server) hostAllowed(r *http.Request) bool {
	host := strings.ToLower(r.Host)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	if host == "localhost" || strings.HasPrefix(host, "127.") {
		return true
	}
	for _, allowed := range s.config.AllowedHosts {
		if host == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

// allowedHostsOnly serves the 404 page to requests for hosts outside the
// allow-list, so stray vhosts pointed at this server leak nothing.
func (s *Server) allowedHostsOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.hostAllowed(r) {
			s.notFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs one line per request with the captured status code.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
