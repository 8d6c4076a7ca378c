package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hubsite/hubsite/internal/web"
	"github.com/hubsite/hubsite/pkg/hubsite"
	"github.com/hubsite/hubsite/pkg/hubsite/config"
)

func newTestServer(t *testing.T, seed *hubsite.Seed, cfg *config.ServerConfig) http.Handler {
	t.Helper()

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	if cfg == nil {
		cfg = &config.ServerConfig{
			Port:         "8080",
			Environment:  "testing",
			AllowedHosts: []string{"localhost"},
		}
	}

	composer := hubsite.NewComposer(hubsite.NewStore(seed), nil, renderer)
	return NewServer(composer, renderer, zap.NewNop(), cfg).Routes()
}

// newRequest builds a GET request addressed to an allowed host;
// httptest's default Host is example.com, which the host gate rejects.
func newRequest(target, accept string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Host = "localhost"
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	return req
}

func testSeed() *hubsite.Seed {
	return &hubsite.Seed{
		Tools: []hubsite.Tool{{Slug: "cargo", Name: "Cargo"}},
		Posts: []hubsite.Post{{Slug: "first", Title: "First post", Deck: "Hello"}},
	}
}

func TestPrefersJSON(t *testing.T) {
	tests := []struct {
		accept string
		want   bool
	}{
		{"application/json", true},
		{"text/html, application/json", true},
		{"application/vnd.api+json", true},
		{"text/html", false},
		{"application/json; q=0.9", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PrefersJSON(tt.accept), "accept %q", tt.accept)
	}
}

func TestContentNegotiation(t *testing.T) {
	h := newTestServer(t, testSeed(), nil)

	t.Run("json when asked", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest("/tools", "application/json"))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

		var body struct {
			Categories []struct {
				Title string         `json:"title"`
				Tools []hubsite.Tool `json:"tools"`
			} `json:"categories"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Categories, 1)
		assert.Equal(t, "All tools", body.Categories[0].Title)
	})

	t.Run("html by default with cache headers", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest("/tools", "text/html"))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, htmlContentType, rec.Header().Get("Content-Type"))
		assert.Equal(t, htmlCacheControl, rec.Header().Get("Cache-Control"))
		assert.Contains(t, rec.Body.String(), "Cargo")
	})
}

func TestSingleEntityRoutes(t *testing.T) {
	h := newTestServer(t, testSeed(), nil)

	t.Run("known slug renders", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest("/news/first", ""))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "First post")
	})

	t.Run("unknown slug is a json 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest("/news/missing", "application/json"))

		require.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Not found", body["error"])
	})

	t.Run("unknown slug is an html 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest("/news/missing", "text/html"))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, htmlContentType, rec.Header().Get("Content-Type"))
	})
}

func TestUnknownRouteIs404(t *testing.T) {
	h := newTestServer(t, testSeed(), nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, newRequest("/nope", "application/json"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHostAllowList(t *testing.T) {
	cfg := &config.ServerConfig{
		Port:         "8080",
		Environment:  "testing",
		AllowedHosts: []string{"hub.example.com"},
	}
	h := newTestServer(t, testSeed(), cfg)

	get := func(host, target string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req.Host = host
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, get("hub.example.com", "/tools").Code)
	assert.Equal(t, http.StatusOK, get("HUB.example.com:8080", "/tools").Code)
	assert.Equal(t, http.StatusOK, get("localhost:8080", "/tools").Code)
	assert.Equal(t, http.StatusOK, get("127.0.0.1", "/tools").Code)
	assert.Equal(t, http.StatusNotFound, get("evil.example.com", "/tools").Code)

	// Health is exempt from the gate so probes work on any vhost.
	assert.Equal(t, http.StatusOK, get("evil.example.com", "/health").Code)
}

func TestHealth(t *testing.T) {
	h := newTestServer(t, testSeed(), nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, newRequest("/health", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "testing", body["environment"])
}

func TestHomeRendersCarousel(t *testing.T) {
	h := newTestServer(t, testSeed(), nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, newRequest("/", "application/json"))

	require.Equal(t, http.StatusOK, rec.Code)

	var body hubsite.HomeContext
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.CarouselItems, 1)
	assert.Equal(t, "news", body.CarouselItems[0].Type)
	assert.Equal(t, "first", body.CarouselItems[0].Slug)
}
