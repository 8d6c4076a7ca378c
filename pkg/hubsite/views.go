package hubsite

import (
	"bytes"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Template identifiers for the page templates.
const (
	TemplateHome            = "home"
	TemplateEcosystemsList  = "ecosystems-list"
	TemplateEcosystemSingle = "ecosystem-single"
	TemplateToolsList       = "tools-list"
	TemplateToolSingle      = "tool-single"
	TemplateEventsList      = "events-list"
	TemplateEventSingle     = "event-single"
	TemplateLearnList       = "learn-list"
	TemplateLearningSingle  = "learning-single"
	TemplateCreatorsList    = "creators-list"
	TemplateCreatorSingle   = "creator-single"
	TemplateNewsList        = "news-list"
	TemplatePostSingle      = "post-single"
	TemplateJobsList        = "jobs-list"
)

// Composer assembles per-page view contexts from the store, the promo
// deck, and the embed resolver. Every context it returns is an
// independent value with no references back into the store, so it can be
// serialized or handed to a renderer freely.
type Composer struct {
	store    *Store
	promo    *PromoDeck
	renderer Renderer
	markdown goldmark.Markdown
}

// NewComposer creates a composer over an immutable store. promo may be
// nil (no promotional slides).
func NewComposer(store *Store, promo *PromoDeck, renderer Renderer) *Composer {
	return &Composer{
		store:    store,
		promo:    promo,
		renderer: renderer,
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// HomeContext is the homepage context.
type HomeContext struct {
	CarouselItems []CarouselItem `json:"carousel_items"`
}

// Home assembles the homepage carousel.
func (c *Composer) Home() *HomeContext {
	return &HomeContext{CarouselItems: BuildCarousel(c.promo, c.store)}
}

// EcosystemsListContext is the ecosystems list page context.
type EcosystemsListContext struct {
	Ecosystems []Ecosystem `json:"ecosystems"`
}

// EcosystemsList assembles the ecosystems list page.
func (c *Composer) EcosystemsList() *EcosystemsListContext {
	return &EcosystemsListContext{Ecosystems: c.store.Ecosystems()}
}

// EcosystemContext is the single-ecosystem page context.
type EcosystemContext struct {
	Slug          string            `json:"slug"`
	Name          string            `json:"name"`
	OneLiner      string            `json:"one_liner"`
	Topics        []string          `json:"topics"`
	OfficialLinks map[string]string `json:"official_links"`
	FeaturedTools []Tool            `json:"featured_tools"`
	Media         *MediaSection     `json:"media"`
	EmbedYouTube  string            `json:"embed_youtube"`
	EmbedTwitter  string            `json:"embed_twitter"`
	HasTwitter    bool              `json:"has_twitter"`
}

// Ecosystem assembles the page for one ecosystem, resolving its featured
// tool slugs and embed fragments.
func (c *Composer) Ecosystem(slug string) (*EcosystemContext, error) {
	eco, ok := c.store.EcosystemBySlug(slug)
	if !ok {
		return nil, ErrNotFound
	}

	embeds := ResolveEmbeds(c.renderer, eco.FeaturedMedia)
	return &EcosystemContext{
		Slug:          eco.Slug,
		Name:          eco.Name,
		OneLiner:      eco.OneLiner,
		Topics:        eco.Topics,
		OfficialLinks: eco.OfficialLinks,
		FeaturedTools: c.store.ToolsFor(eco.FeaturedTools),
		Media:         embeds.MediaSection(),
		EmbedYouTube:  embeds.YouTube,
		EmbedTwitter:  embeds.Twitter,
		HasTwitter:    embeds.HasTwitter,
	}, nil
}

// ToolCategoryView is one tools-list grouping with its slugs resolved.
type ToolCategoryView struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Tools []Tool `json:"tools"`
}

// ToolsListContext is the tools list page context.
type ToolsListContext struct {
	Categories []ToolCategoryView `json:"categories"`
	Labels     []Label            `json:"labels"`
}

// ToolsList assembles the tools list page. Configured categories are
// resolved with dangling slugs dropped; with no configuration every tool
// lands in a single synthetic "All tools" category.
func (c *Composer) ToolsList() *ToolsListContext {
	configured := c.store.ToolCategories()

	var categories []ToolCategoryView
	if len(configured) == 0 {
		categories = []ToolCategoryView{{
			Title: "All tools",
			Slug:  "all",
			Tools: c.store.Tools(),
		}}
	} else {
		categories = make([]ToolCategoryView, 0, len(configured))
		for _, cat := range configured {
			categories = append(categories, ToolCategoryView{
				Title: cat.Title,
				Slug:  cat.Slug,
				Tools: c.store.ToolsFor(cat.Items),
			})
		}
	}

	return &ToolsListContext{Categories: categories, Labels: c.store.Labels()}
}

// ToolContext is the single-tool page context. The media presentation
// block replaces the tool's static media assets in the rendered context.
type ToolContext struct {
	Tool
	Media        *MediaSection `json:"media"`
	EmbedYouTube string        `json:"embed_youtube"`
	EmbedTwitter string        `json:"embed_twitter"`
	HasTwitter   bool          `json:"has_twitter"`
}

// Tool assembles the page for one tool.
func (c *Composer) Tool(slug string) (*ToolContext, error) {
	tool, ok := c.store.ToolBySlug(slug)
	if !ok {
		return nil, ErrNotFound
	}

	embeds := ResolveEmbeds(c.renderer, tool.FeaturedMedia)
	return &ToolContext{
		Tool:         tool,
		Media:        embeds.MediaSection(),
		EmbedYouTube: embeds.YouTube,
		EmbedTwitter: embeds.Twitter,
		HasTwitter:   embeds.HasTwitter,
	}, nil
}

// EventsListContext is the events list page context, partitioned into the
// two display buckets.
type EventsListContext struct {
	Upcoming []Event `json:"upcoming"`
	Past     []Event `json:"past"`
	Labels   []Label `json:"labels"`
}

// EventsList assembles the events list page. Only a status exactly equal
// to "past" buckets an event as past; every other value, including an
// empty one, is upcoming.
func (c *Composer) EventsList() *EventsListContext {
	ctx := &EventsListContext{
		Upcoming: []Event{},
		Past:     []Event{},
		Labels:   c.store.Labels(),
	}
	for _, event := range c.store.Events() {
		if event.Status == string(EventStatusPast) {
			ctx.Past = append(ctx.Past, event)
		} else {
			ctx.Upcoming = append(ctx.Upcoming, event)
		}
	}
	return ctx
}

// EventContext is the single-event page context.
type EventContext struct {
	Event
	Media        *MediaSection `json:"media"`
	EmbedYouTube string        `json:"embed_youtube"`
	EmbedTwitter string        `json:"embed_twitter"`
	HasTwitter   bool          `json:"has_twitter"`
}

// Event assembles the page for one event.
func (c *Composer) Event(slug string) (*EventContext, error) {
	event, ok := c.store.EventBySlug(slug)
	if !ok {
		return nil, ErrNotFound
	}

	embeds := ResolveEmbeds(c.renderer, event.FeaturedMedia)
	return &EventContext{
		Event:        event,
		Media:        embeds.MediaSection(),
		EmbedYouTube: embeds.YouTube,
		EmbedTwitter: embeds.Twitter,
		HasTwitter:   embeds.HasTwitter,
	}, nil
}

// LearnSection is one learn-page section of ordered paths.
type LearnSection struct {
	Title string         `json:"title"`
	Paths []LearningPath `json:"paths"`
}

// LearnListContext is the learn list page context.
type LearnListContext struct {
	Sections []LearnSection `json:"sections"`
}

// LearnList assembles the learn list page.
func (c *Composer) LearnList() *LearnListContext {
	return &LearnListContext{
		Sections: []LearnSection{{
			Title: "Learning paths",
			Paths: c.store.LearningPathsForTracks(),
		}},
	}
}

// LearningPathContext is the single learning-path page context.
type LearningPathContext struct {
	Slug          string        `json:"slug"`
	Title         string        `json:"title"`
	Summary       string        `json:"summary"`
	Difficulty    string        `json:"difficulty"`
	DurationHours int           `json:"duration_hours"`
	Milestones    []string      `json:"milestones"`
	ResourcesData []Resource    `json:"resources_data"`
	Media         *MediaSection `json:"media"`
	EmbedYouTube  string        `json:"embed_youtube"`
	EmbedTwitter  string        `json:"embed_twitter"`
	HasTwitter    bool          `json:"has_twitter"`
}

// LearningPath assembles the page for one learning path, resolving its
// resource slugs.
func (c *Composer) LearningPath(slug string) (*LearningPathContext, error) {
	path, ok := c.store.LearningPathBySlug(slug)
	if !ok {
		return nil, ErrNotFound
	}

	embeds := ResolveEmbeds(c.renderer, path.FeaturedMedia)
	return &LearningPathContext{
		Slug:          path.Slug,
		Title:         path.Title,
		Summary:       path.Summary,
		Difficulty:    path.Difficulty,
		DurationHours: path.DurationHours,
		Milestones:    path.Milestones,
		ResourcesData: c.store.ResourcesFor(path.Resources),
		Media:         embeds.MediaSection(),
		EmbedYouTube:  embeds.YouTube,
		EmbedTwitter:  embeds.Twitter,
		HasTwitter:    embeds.HasTwitter,
	}, nil
}

// CreatorSection is one creators-list grouping.
type CreatorSection struct {
	Title    string    `json:"title"`
	Creators []Creator `json:"creators"`
}

// CreatorsListContext is the creators list page context.
type CreatorsListContext struct {
	Sections []CreatorSection `json:"sections"`
	Labels   []Label          `json:"labels"`
}

// CreatorsList assembles the creators list page, grouped by creator type.
// Section order: playlist, youtube, newsletter (each only if non-empty),
// then every other type alphabetically. Creators keep source order within
// a group.
func (c *Composer) CreatorsList() *CreatorsListContext {
	grouped := make(map[string][]Creator)
	for _, creator := range c.store.Creators() {
		grouped[creator.Type] = append(grouped[creator.Type], creator)
	}

	var sections []CreatorSection
	for _, kind := range []CreatorType{CreatorTypePlaylist, CreatorTypeYouTube, CreatorTypeNewsletter} {
		if creators, ok := grouped[string(kind)]; ok {
			sections = append(sections, CreatorSection{
				Title:    CreatorSectionTitle(string(kind)),
				Creators: creators,
			})
			delete(grouped, string(kind))
		}
	}

	remaining := make([]string, 0, len(grouped))
	for kind := range grouped {
		remaining = append(remaining, kind)
	}
	sort.Strings(remaining)
	for _, kind := range remaining {
		sections = append(sections, CreatorSection{
			Title:    CreatorSectionTitle(kind),
			Creators: grouped[kind],
		})
	}

	return &CreatorsListContext{Sections: sections, Labels: c.store.Labels()}
}

// CreatorSectionTitle returns the display title for a creator type. Known
// types have fixed labels; anything else gets its first character
// capitalized.
func CreatorSectionTitle(kind string) string {
	switch CreatorType(kind) {
	case CreatorTypeYouTube:
		return "YouTube"
	case CreatorTypePodcast:
		return "Podcasts"
	case CreatorTypeNewsletter:
		return "Newsletters"
	case CreatorTypePlaylist:
		return "Playlists"
	}
	if kind == "" {
		return "Creators"
	}
	r, size := utf8.DecodeRuneInString(kind)
	return string(unicode.ToUpper(r)) + kind[size:]
}

// CreatorContext is the single-creator page context.
type CreatorContext struct {
	Slug         string            `json:"slug"`
	Name         string            `json:"name"`
	Type         string            `json:"type"`
	Focus        []string          `json:"focus"`
	Links        map[string]string `json:"links"`
	About        string            `json:"about"`
	Description  string            `json:"description"`
	VideoID      string            `json:"video_id"`
	BestStart    *BestStart        `json:"best_start"`
	Thumbnail    string            `json:"thumbnail"`
	Media        *MediaSection     `json:"media"`
	EmbedYouTube string            `json:"embed_youtube"`
	EmbedTwitter string            `json:"embed_twitter"`
	HasTwitter   bool              `json:"has_twitter"`
}

// Creator assembles the page for one creator. The best-start pointer is
// included only when complete; a partial one is omitted entirely.
func (c *Composer) Creator(slug string) (*CreatorContext, error) {
	creator, ok := c.store.CreatorBySlug(slug)
	if !ok {
		return nil, ErrNotFound
	}

	var bestStart *BestStart
	if creator.BestStart.IsValid() {
		bs := *creator.BestStart
		bestStart = &bs
	}

	embeds := ResolveEmbeds(c.renderer, creator.FeaturedMedia)
	return &CreatorContext{
		Slug:         creator.Slug,
		Name:         creator.Name,
		Type:         creator.Type,
		Focus:        creator.Focus,
		Links:        creator.Links,
		About:        creator.About,
		Description:  creator.Description,
		VideoID:      creator.VideoID,
		BestStart:    bestStart,
		Thumbnail:    creator.Thumbnail,
		Media:        embeds.MediaSection(),
		EmbedYouTube: embeds.YouTube,
		EmbedTwitter: embeds.Twitter,
		HasTwitter:   embeds.HasTwitter,
	}, nil
}

// NewsListContext is the news list page context.
type NewsListContext struct {
	Posts  []Post  `json:"posts"`
	Labels []Label `json:"labels"`
}

// NewsList assembles the news list page. The body fallback is not
// applied here, only on the single-post view.
func (c *Composer) NewsList() *NewsListContext {
	return &NewsListContext{Posts: c.store.Posts(), Labels: c.store.Labels()}
}

// PostContext is the single-post page context. BodyMD carries the
// fallback-resolved markdown source; BodyHTML its rendered form.
type PostContext struct {
	Post
	BodyHTML     string        `json:"body_html,omitempty"`
	Media        *MediaSection `json:"media"`
	EmbedYouTube string        `json:"embed_youtube"`
	EmbedTwitter string        `json:"embed_twitter"`
	HasTwitter   bool          `json:"has_twitter"`
}

// Post assembles the page for one post. A blank markdown body falls back
// to the post's about text, then its deck.
func (c *Composer) Post(slug string) (*PostContext, error) {
	post, ok := c.store.PostBySlug(slug)
	if !ok {
		return nil, ErrNotFound
	}

	if strings.TrimSpace(post.BodyMD) == "" {
		if post.About != "" {
			post.BodyMD = post.About
		} else {
			post.BodyMD = post.Deck
		}
	}

	embeds := ResolveEmbeds(c.renderer, post.FeaturedMedia)
	return &PostContext{
		Post:         post,
		BodyHTML:     c.renderMarkdown(post.BodyMD),
		Media:        embeds.MediaSection(),
		EmbedYouTube: embeds.YouTube,
		EmbedTwitter: embeds.Twitter,
		HasTwitter:   embeds.HasTwitter,
	}, nil
}

// renderMarkdown converts markdown to HTML, returning "" when conversion
// fails so the page falls back to the raw markdown body.
func (c *Composer) renderMarkdown(src string) string {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := c.markdown.Convert([]byte(src), &buf); err != nil {
		return ""
	}
	return buf.String()
}

// JobsListContext is the jobs page context.
type JobsListContext struct {
	JobSources     []JobSource     `json:"job_sources"`
	RoleArchetypes []RoleArchetype `json:"role_archetypes"`
	Labels         []Label         `json:"labels"`
	Jobs           []Job           `json:"jobs"`
}

// JobsList assembles the jobs page.
func (c *Composer) JobsList() *JobsListContext {
	return &JobsListContext{
		JobSources:     c.store.JobSourcesInOrder(),
		RoleArchetypes: c.store.RoleArchetypes(),
		Labels:         c.store.Labels(),
		Jobs:           c.store.Jobs(),
	}
}
