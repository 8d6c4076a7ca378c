package hubsite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubsite/hubsite/pkg/hubsite"
)

func TestStoreBySlugRoundTrip(t *testing.T) {
	seed := &hubsite.Seed{
		Ecosystems:    []hubsite.Ecosystem{{Slug: "web", Name: "Web"}},
		Tools:         []hubsite.Tool{{Slug: "cargo", Name: "Cargo"}, {Slug: "clippy", Name: "Clippy"}},
		Events:        []hubsite.Event{{Slug: "conf", Title: "Conf"}},
		LearningPaths: []hubsite.LearningPath{{Slug: "basics", Title: "Basics"}},
		Creators:      []hubsite.Creator{{Slug: "jon", Name: "Jon", Type: "youtube"}},
		Posts:         []hubsite.Post{{Slug: "first", Title: "First"}},
	}
	store := hubsite.NewStore(seed)

	eco, ok := store.EcosystemBySlug("web")
	require.True(t, ok)
	assert.Equal(t, "Web", eco.Name)

	tool, ok := store.ToolBySlug("clippy")
	require.True(t, ok)
	assert.Equal(t, "Clippy", tool.Name)

	event, ok := store.EventBySlug("conf")
	require.True(t, ok)
	assert.Equal(t, "Conf", event.Title)

	path, ok := store.LearningPathBySlug("basics")
	require.True(t, ok)
	assert.Equal(t, "Basics", path.Title)

	creator, ok := store.CreatorBySlug("jon")
	require.True(t, ok)
	assert.Equal(t, "Jon", creator.Name)

	post, ok := store.PostBySlug("first")
	require.True(t, ok)
	assert.Equal(t, "First", post.Title)

	_, ok = store.ToolBySlug("missing")
	assert.False(t, ok)
}

func TestStoreDuplicateSlugLastWins(t *testing.T) {
	store := hubsite.NewStore(&hubsite.Seed{
		Tools: []hubsite.Tool{
			{Slug: "cargo", Name: "Old"},
			{Slug: "cargo", Name: "New"},
		},
	})

	tool, ok := store.ToolBySlug("cargo")
	require.True(t, ok)
	assert.Equal(t, "New", tool.Name)
}

func TestToolsForPreservesOrderAndDropsDanglers(t *testing.T) {
	store := hubsite.NewStore(&hubsite.Seed{
		Tools: []hubsite.Tool{
			{Slug: "a", Name: "A"},
			{Slug: "b", Name: "B"},
			{Slug: "c", Name: "C"},
		},
	})

	tools := store.ToolsFor([]string{"c", "stale", "a"})
	require.Len(t, tools, 2)
	assert.Equal(t, "C", tools[0].Name)
	assert.Equal(t, "A", tools[1].Name)

	assert.Empty(t, store.ToolsFor(nil))
	assert.Empty(t, store.ToolsFor([]string{"stale"}))
}

func TestResourceSlugDerivation(t *testing.T) {
	store := hubsite.NewStore(&hubsite.Seed{
		Resources: []hubsite.Resource{
			{Slug: "explicit", Title: "Whatever", URL: "https://example.com/other.html"},
			{URL: "https://example.com/guides/intro.html"},
			{Title: "Hello World!"},
			{}, // no identity at all, dropped
		},
	})

	resolved := store.ResourcesFor([]string{"explicit", "intro", "hello-world"})
	require.Len(t, resolved, 3)
	assert.Equal(t, "explicit", resolved[0].Slug)
	assert.Equal(t, "intro", resolved[1].Slug)
	assert.Equal(t, "hello-world", resolved[2].Slug)
}

func TestJobSourcesInOrder(t *testing.T) {
	sources := []hubsite.JobSource{
		{Slug: "beta", Name: "Beta", URL: "https://beta.example.com"},
		{Slug: "alpha", Name: "Alpha", URL: "https://alpha.example.com"},
	}

	t.Run("configured ordering wins", func(t *testing.T) {
		store := hubsite.NewStore(&hubsite.Seed{
			JobSources: sources,
			Pages: hubsite.Pages{
				Work: hubsite.WorkPage{JobSources: []string{"beta", "alpha"}},
			},
		})

		got := store.JobSourcesInOrder()
		require.Len(t, got, 2)
		assert.Equal(t, "Beta", got[0].Name)
		assert.Equal(t, "Alpha", got[1].Name)
	})

	t.Run("empty ordering falls back to alphabetical", func(t *testing.T) {
		store := hubsite.NewStore(&hubsite.Seed{JobSources: sources})

		got := store.JobSourcesInOrder()
		require.Len(t, got, 2)
		assert.Equal(t, "Alpha", got[0].Name)
		assert.Equal(t, "Beta", got[1].Name)
	})

	t.Run("entirely dangling ordering falls back too", func(t *testing.T) {
		store := hubsite.NewStore(&hubsite.Seed{
			JobSources: sources,
			Pages: hubsite.Pages{
				Work: hubsite.WorkPage{JobSources: []string{"gone", "also-gone"}},
			},
		})

		got := store.JobSourcesInOrder()
		require.Len(t, got, 2)
		assert.Equal(t, "Alpha", got[0].Name)
	})
}

func TestLearningPathsForTracks(t *testing.T) {
	paths := []hubsite.LearningPath{
		{Slug: "one", Title: "One"},
		{Slug: "two", Title: "Two"},
	}

	t.Run("no tracks keeps source order", func(t *testing.T) {
		store := hubsite.NewStore(&hubsite.Seed{LearningPaths: paths})

		got := store.LearningPathsForTracks()
		require.Len(t, got, 2)
		assert.Equal(t, "One", got[0].Title)
	})

	t.Run("tracks reorder", func(t *testing.T) {
		store := hubsite.NewStore(&hubsite.Seed{
			LearningPaths: paths,
			Pages:         hubsite.Pages{Learn: hubsite.LearnPage{Tracks: []string{"two", "one"}}},
		})

		got := store.LearningPathsForTracks()
		require.Len(t, got, 2)
		assert.Equal(t, "Two", got[0].Title)
	})

	t.Run("all tracks dangling falls back to source order", func(t *testing.T) {
		store := hubsite.NewStore(&hubsite.Seed{
			LearningPaths: paths,
			Pages:         hubsite.Pages{Learn: hubsite.LearnPage{Tracks: []string{"gone"}}},
		})

		got := store.LearningPathsForTracks()
		require.Len(t, got, 2)
		assert.Equal(t, "One", got[0].Title)
	})
}

func TestStoreAccessorsReturnCopies(t *testing.T) {
	store := hubsite.NewStore(&hubsite.Seed{
		Tools: []hubsite.Tool{{Slug: "cargo", Name: "Cargo"}},
	})

	tools := store.Tools()
	tools[0].Name = "Mutated"

	again, ok := store.ToolBySlug("cargo")
	require.True(t, ok)
	assert.Equal(t, "Cargo", again.Name)
}
