package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/hubsite/hubsite/internal/web"
	"github.com/hubsite/hubsite/pkg/hubsite"
)

// respond serializes the context directly for JSON-preferring requests
// and renders the named template for everyone else. A render failure is a
// server-side failure, distinct from not-found: the client gets a generic
// 500, never partial markup.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, template string, ctx any) {
	if PrefersJSON(r.Header.Get("Accept")) {
		render.JSON(w, r, ctx)
		return
	}

	body, err := s.renderer.Render(template, ctx)
	if err != nil {
		s.logger.Error("template render failed",
			zap.String("template", template),
			zap.Error(err),
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", htmlContentType)
	w.Header().Set("Cache-Control", htmlCacheControl)
	w.Write([]byte(body))
}

// notFound serves the uniform not-found response in the negotiated
// flavor.
func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	if PrefersJSON(r.Header.Get("Accept")) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, map[string]string{"error": "Not found"})
		return
	}

	body, err := s.renderer.Render(web.TemplateNotFound, nil)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", htmlContentType)
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(body))
}

// single handles the shared shape of all single-entity pages: compose by
// slug, map ErrNotFound to the 404 path, render anything else.
func (s *Server) single(w http.ResponseWriter, r *http.Request, template string, compose func(slug string) (any, error)) {
	ctx, err := compose(chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, hubsite.ErrNotFound) {
			s.notFound(w, r)
			return
		}
		s.logger.Error("compose failed", zap.String("template", template), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	s.respond(w, r, template, ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{
		"status":      "healthy",
		"environment": s.config.Environment,
	})
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, hubsite.TemplateHome, s.composer.Home())
}

func (s *Server) handleEcosystemsList(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, hubsite.TemplateEcosystemsList, s.composer.EcosystemsList())
}

func (s *Server) handleEcosystem(w http.ResponseWriter, r *http.Request) {
	s.single(w, r, hubsite.TemplateEcosystemSingle, func(slug string) (any, error) {
		return s.composer.Ecosystem(slug)
	})
}

func (s *Server) handleToolsList(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, hubsite.TemplateToolsList, s.composer.ToolsList())
}

func (s *Server) handleTool(w http.ResponseWriter, r *http.Request) {
	s.single(w, r, hubsite.TemplateToolSingle, func(slug string) (any, error) {
		return s.composer.Tool(slug)
	})
}

func (s *Server) handleEventsList(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, hubsite.TemplateEventsList, s.composer.EventsList())
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	s.single(w, r, hubsite.TemplateEventSingle, func(slug string) (any, error) {
		return s.composer.Event(slug)
	})
}

func (s *Server) handleLearnList(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, hubsite.TemplateLearnList, s.composer.LearnList())
}

func (s *Server) handleLearningPath(w http.ResponseWriter, r *http.Request) {
	s.single(w, r, hubsite.TemplateLearningSingle, func(slug string) (any, error) {
		return s.composer.LearningPath(slug)
	})
}

func (s *Server) handleCreatorsList(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, hubsite.TemplateCreatorsList, s.composer.CreatorsList())
}

func (s *Server) handleCreator(w http.ResponseWriter, r *http.Request) {
	s.single(w, r, hubsite.TemplateCreatorSingle, func(slug string) (any, error) {
		return s.composer.Creator(slug)
	})
}

func (s *Server) handleNewsList(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, hubsite.TemplateNewsList, s.composer.NewsList())
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	s.single(w, r, hubsite.TemplatePostSingle, func(slug string) (any, error) {
		return s.composer.Post(slug)
	})
}

func (s *Server) handleJobsList(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, hubsite.TemplateJobsList, s.composer.JobsList())
}
