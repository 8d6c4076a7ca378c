package hubsite_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubsite/hubsite/pkg/hubsite"
)

func TestParseSeed(t *testing.T) {
	t.Run("minimal document defaults everything", func(t *testing.T) {
		seed, err := hubsite.ParseSeed([]byte(`{}`))
		require.NoError(t, err)
		assert.Empty(t, seed.Tools)
		assert.Empty(t, seed.Posts)
		assert.Empty(t, seed.Pages.Tools.Categories)
		assert.Empty(t, seed.Taxonomy.Labels)
	})

	t.Run("invalid json is malformed", func(t *testing.T) {
		_, err := hubsite.ParseSeed([]byte(`{"tools": [`))
		require.Error(t, err)
		assert.ErrorIs(t, err, hubsite.ErrMalformedSeed)
	})

	t.Run("wrong shape is malformed", func(t *testing.T) {
		_, err := hubsite.ParseSeed([]byte(`{"tools": "not-a-list"}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, hubsite.ErrMalformedSeed)
	})

	t.Run("missing optional entity fields default", func(t *testing.T) {
		seed, err := hubsite.ParseSeed([]byte(`{"tools": [{"slug": "cargo", "name": "Cargo"}]}`))
		require.NoError(t, err)
		require.Len(t, seed.Tools, 1)
		assert.Equal(t, "cargo", seed.Tools[0].Slug)
		assert.Empty(t, seed.Tools[0].Tags)
		assert.Nil(t, seed.Tools[0].FeaturedMedia)
	})
}

func TestParseSeedAliases(t *testing.T) {
	t.Run("alias keys accepted", func(t *testing.T) {
		seed, err := hubsite.ParseSeed([]byte(`{
			"protocols": [{"slug": "eco", "name": "Eco"}],
			"news": [{"slug": "hello", "title": "Hello"}],
			"jobs_sources": [{"slug": "board", "name": "Board", "url": "https://jobs.example.com"}]
		}`))
		require.NoError(t, err)
		require.Len(t, seed.Ecosystems, 1)
		assert.Equal(t, "eco", seed.Ecosystems[0].Slug)
		require.Len(t, seed.Posts, 1)
		assert.Equal(t, "hello", seed.Posts[0].Slug)
		require.Len(t, seed.JobSources, 1)
		assert.Equal(t, "board", seed.JobSources[0].Slug)
	})

	t.Run("canonical key wins when both present", func(t *testing.T) {
		seed, err := hubsite.ParseSeed([]byte(`{
			"posts": [{"slug": "canonical", "title": "Canonical"}],
			"news": [{"slug": "alias", "title": "Alias"}]
		}`))
		require.NoError(t, err)
		require.Len(t, seed.Posts, 1)
		assert.Equal(t, "canonical", seed.Posts[0].Slug)
	})

	t.Run("canonical empty list still wins", func(t *testing.T) {
		seed, err := hubsite.ParseSeed([]byte(`{
			"posts": [],
			"news": [{"slug": "alias", "title": "Alias"}]
		}`))
		require.NoError(t, err)
		assert.Empty(t, seed.Posts)
	})
}

func TestParsePromo(t *testing.T) {
	t.Run("slides decode", func(t *testing.T) {
		deck, err := hubsite.ParsePromo([]byte(`{"slides": [{"type": "promo", "slug": "launch", "title": "Launch"}]}`))
		require.NoError(t, err)
		require.Len(t, deck.Slides, 1)
		assert.Equal(t, "launch", deck.Slides[0].Slug)
	})

	t.Run("invalid json is malformed", func(t *testing.T) {
		_, err := hubsite.ParsePromo([]byte(`not json`))
		assert.ErrorIs(t, err, hubsite.ErrMalformedPromo)
	})
}

func TestLoadSeed(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := hubsite.LoadSeed(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		var seedErr *hubsite.SeedError
		assert.ErrorAs(t, err, &seedErr)
	})

	t.Run("round trip through disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"tools": [{"slug": "cargo", "name": "Cargo"}]}`), 0o644))

		seed, err := hubsite.LoadSeed(path)
		require.NoError(t, err)
		assert.Len(t, seed.Tools, 1)
	})
}
