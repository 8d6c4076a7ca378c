package hubsite

import "sort"

// Store is the in-memory content repository. It is built once from a
// parsed seed and never mutated afterwards, so it is safe for concurrent
// reads from any number of requests without locking. All read operations
// return copies; callers never receive references into the store.
type Store struct {
	ecosystems    []Ecosystem
	tools         []Tool
	events        []Event
	learningPaths []LearningPath
	creators      []Creator
	posts         []Post
	resources     map[string]Resource
	jobSources    map[string]JobSource
	jobs          []Job

	toolCategories []ToolCategory
	learnTracks    []string
	roleArchetypes []RoleArchetype
	jobSourceSlugs []string
	labels         []Label

	ecosystemIndex map[string]int
	toolIndex      map[string]int
	eventIndex     map[string]int
	learningIndex  map[string]int
	creatorIndex   map[string]int
	postIndex      map[string]int
}

// buildIndex maps each item's slug to its position. Built in one pass, so
// a duplicate slug silently overwrites the earlier entry: last write wins.
func buildIndex[T any](items []T, key func(T) string) map[string]int {
	index := make(map[string]int, len(items))
	for i, item := range items {
		index[key(item)] = i
	}
	return index
}

// NewStore builds the fully indexed repository from a parsed seed. It is
// infallible: missing data defaults, it is never rejected here.
func NewStore(seed *Seed) *Store {
	s := &Store{
		ecosystems:    seed.Ecosystems,
		tools:         seed.Tools,
		events:        seed.Events,
		learningPaths: seed.LearningPaths,
		creators:      seed.Creators,
		posts:         seed.Posts,
		jobs:          seed.Jobs,

		toolCategories: seed.Pages.Tools.Categories,
		learnTracks:    seed.Pages.Learn.Tracks,
		roleArchetypes: seed.Pages.Work.RoleArchetypes,
		jobSourceSlugs: seed.Pages.Work.JobSources,
		labels:         seed.Taxonomy.Labels,
	}

	s.ecosystemIndex = buildIndex(s.ecosystems, func(e Ecosystem) string { return e.Slug })
	s.toolIndex = buildIndex(s.tools, func(t Tool) string { return t.Slug })
	s.eventIndex = buildIndex(s.events, func(e Event) string { return e.Slug })
	s.learningIndex = buildIndex(s.learningPaths, func(p LearningPath) string { return p.Slug })
	s.creatorIndex = buildIndex(s.creators, func(c Creator) string { return c.Slug })
	s.postIndex = buildIndex(s.posts, func(p Post) string { return p.Slug })

	s.resources = make(map[string]Resource, len(seed.Resources))
	for _, res := range seed.Resources {
		slug := deriveResourceSlug(res)
		if slug == "" {
			// Neither URL nor title yields an identity; drop it.
			continue
		}
		res.Slug = slug
		s.resources[slug] = res
	}

	s.jobSources = make(map[string]JobSource, len(seed.JobSources))
	for _, src := range seed.JobSources {
		s.jobSources[src.Slug] = src
	}

	return s
}

// EcosystemBySlug returns the ecosystem with the given slug.
func (s *Store) EcosystemBySlug(slug string) (Ecosystem, bool) {
	if i, ok := s.ecosystemIndex[slug]; ok {
		return s.ecosystems[i], true
	}
	return Ecosystem{}, false
}

// ToolBySlug returns the tool with the given slug.
func (s *Store) ToolBySlug(slug string) (Tool, bool) {
	if i, ok := s.toolIndex[slug]; ok {
		return s.tools[i], true
	}
	return Tool{}, false
}

// EventBySlug returns the event with the given slug.
func (s *Store) EventBySlug(slug string) (Event, bool) {
	if i, ok := s.eventIndex[slug]; ok {
		return s.events[i], true
	}
	return Event{}, false
}

// LearningPathBySlug returns the learning path with the given slug.
func (s *Store) LearningPathBySlug(slug string) (LearningPath, bool) {
	if i, ok := s.learningIndex[slug]; ok {
		return s.learningPaths[i], true
	}
	return LearningPath{}, false
}

// CreatorBySlug returns the creator with the given slug.
func (s *Store) CreatorBySlug(slug string) (Creator, bool) {
	if i, ok := s.creatorIndex[slug]; ok {
		return s.creators[i], true
	}
	return Creator{}, false
}

// PostBySlug returns the post with the given slug.
func (s *Store) PostBySlug(slug string) (Post, bool) {
	if i, ok := s.postIndex[slug]; ok {
		return s.posts[i], true
	}
	return Post{}, false
}

// ToolsFor resolves a list of tool slugs, preserving input order and
// silently dropping any slug with no match. Content authors reference
// stale slugs; a dangling reference is never an error.
func (s *Store) ToolsFor(slugs []string) []Tool {
	tools := make([]Tool, 0, len(slugs))
	for _, slug := range slugs {
		if t, ok := s.ToolBySlug(slug); ok {
			tools = append(tools, t)
		}
	}
	return tools
}

// ResourcesFor resolves resource slugs in input order, dropping danglers.
func (s *Store) ResourcesFor(slugs []string) []Resource {
	resources := make([]Resource, 0, len(slugs))
	for _, slug := range slugs {
		if r, ok := s.resources[slug]; ok {
			resources = append(resources, r)
		}
	}
	return resources
}

// JobSourcesFor resolves job-source slugs in input order, dropping danglers.
func (s *Store) JobSourcesFor(slugs []string) []JobSource {
	sources := make([]JobSource, 0, len(slugs))
	for _, slug := range slugs {
		if src, ok := s.jobSources[slug]; ok {
			sources = append(sources, src)
		}
	}
	return sources
}

// JobSourcesInOrder returns job sources in the page-configuration order.
// When the configured ordering resolves to nothing (empty or entirely
// dangling), it falls back to every known source sorted by display name,
// so a misconfigured list never empties the jobs page.
func (s *Store) JobSourcesInOrder() []JobSource {
	ordered := s.JobSourcesFor(s.jobSourceSlugs)
	if len(ordered) > 0 {
		return ordered
	}

	fallback := make([]JobSource, 0, len(s.jobSources))
	for _, src := range s.jobSources {
		fallback = append(fallback, src)
	}
	sort.Slice(fallback, func(i, j int) bool { return fallback[i].Name < fallback[j].Name })
	return fallback
}

// LearningPathsForTracks returns learning paths in the configured track
// order, falling back to source order when no ordering exists or when the
// ordering resolves to nothing.
func (s *Store) LearningPathsForTracks() []LearningPath {
	if len(s.learnTracks) == 0 {
		return s.LearningPaths()
	}

	ordered := make([]LearningPath, 0, len(s.learnTracks))
	for _, slug := range s.learnTracks {
		if p, ok := s.LearningPathBySlug(slug); ok {
			ordered = append(ordered, p)
		}
	}
	if len(ordered) == 0 {
		return s.LearningPaths()
	}
	return ordered
}

// Ecosystems returns all ecosystems in source order.
func (s *Store) Ecosystems() []Ecosystem {
	return append([]Ecosystem(nil), s.ecosystems...)
}

// Tools returns all tools in source order.
func (s *Store) Tools() []Tool {
	return append([]Tool(nil), s.tools...)
}

// Events returns all events in source order.
func (s *Store) Events() []Event {
	return append([]Event(nil), s.events...)
}

// LearningPaths returns all learning paths in source order.
func (s *Store) LearningPaths() []LearningPath {
	return append([]LearningPath(nil), s.learningPaths...)
}

// Creators returns all creators in source order.
func (s *Store) Creators() []Creator {
	return append([]Creator(nil), s.creators...)
}

// Posts returns all posts in source order.
func (s *Store) Posts() []Post {
	return append([]Post(nil), s.posts...)
}

// Jobs returns all job listings in source order.
func (s *Store) Jobs() []Job {
	return append([]Job(nil), s.jobs...)
}

// Labels returns the taxonomy labels verbatim.
func (s *Store) Labels() []Label {
	return append([]Label(nil), s.labels...)
}

// ToolCategories returns the configured tools-page categories.
func (s *Store) ToolCategories() []ToolCategory {
	return append([]ToolCategory(nil), s.toolCategories...)
}

// RoleArchetypes returns the configured work-page role cards.
func (s *Store) RoleArchetypes() []RoleArchetype {
	return append([]RoleArchetype(nil), s.roleArchetypes...)
}
