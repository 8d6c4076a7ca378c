package hubsite

import "strings"

// EventStatus is the domain type for event display buckets.
type EventStatus string

// Event status constants (typed). Any status other than "past",
// including an empty one, is displayed as upcoming.
const (
	EventStatusUpcoming EventStatus = "upcoming"
	EventStatusPast     EventStatus = "past"
)

// CreatorType is the domain type for creator grouping.
type CreatorType string

// Creator type constants (typed).
const (
	CreatorTypeYouTube    CreatorType = "youtube"
	CreatorTypePodcast    CreatorType = "podcast"
	CreatorTypeNewsletter CreatorType = "newsletter"
	CreatorTypePlaylist   CreatorType = "playlist"
)

// MediaItem is a titled link inside a featured-media bundle.
type MediaItem struct {
	Title string `json:"title,omitempty"`
	URL   string `json:"url,omitempty"`
}

// FeaturedMedia groups the third-party links an entity may feature.
// The "twitter" and "x" fields are the same medium under two names;
// twitter takes precedence when both are present.
type FeaturedMedia struct {
	YouTube *MediaItem `json:"youtube,omitempty"`
	Twitter *MediaItem `json:"twitter,omitempty"`
	X       *MediaItem `json:"x,omitempty"`
	Article *MediaItem `json:"article,omitempty"`
}

// MediaAsset holds static imagery URLs for an entity.
type MediaAsset struct {
	LogoURL        string `json:"logo_url,omitempty"`
	AvatarURL      string `json:"avatar_url,omitempty"`
	BackgroundURL  string `json:"background_url,omitempty"`
	CardURL        string `json:"card_url,omitempty"`
	TeaserThumbURL string `json:"teaser_thumb_url,omitempty"`
}

// Updates holds per-entity links to release/update feeds.
type Updates struct {
	GithubReleases string `json:"github_releases,omitempty"`
	GithubTags     string `json:"github_tags,omitempty"`
	GithubIssues   string `json:"github_issues,omitempty"`
	Site           string `json:"site,omitempty"`
	Twitter        string `json:"twitter,omitempty"`
	YouTube        string `json:"youtube,omitempty"`
	Schedule       string `json:"schedule,omitempty"`
}

// Ecosystem represents a development ecosystem hub page.
//
// FeaturedTools is a list of foreign tool slugs resolved lazily at
// composition time; stale slugs are tolerated and dropped.
type Ecosystem struct {
	Slug          string            `json:"slug"`
	Name          string            `json:"name"`
	OneLiner      string            `json:"one_liner,omitempty"`
	FeaturedMedia *FeaturedMedia    `json:"featured_media,omitempty"`
	Media         *MediaAsset       `json:"media,omitempty"`
	Topics        []string          `json:"topics,omitempty"`
	OfficialLinks map[string]string `json:"official_links,omitempty"`
	FeaturedTools []string          `json:"featured_tools,omitempty"`
}

// Tool represents a catalogued developer tool.
type Tool struct {
	Slug          string            `json:"slug"`
	Name          string            `json:"name"`
	Category      string            `json:"category,omitempty"`
	Description   string            `json:"description,omitempty"`
	FeaturedMedia *FeaturedMedia    `json:"featured_media,omitempty"`
	Media         *MediaAsset       `json:"media,omitempty"`
	Labels        []string          `json:"labels,omitempty"`
	PrimaryLabel  string            `json:"primary_label,omitempty"`
	Tier          string            `json:"tier,omitempty"`
	Tags          []string          `json:"tags,omitempty"`
	Links         map[string]string `json:"links,omitempty"`
	Updates       *Updates          `json:"updates,omitempty"`
}

// Event represents a community event. Status partitions events into the
// two display buckets; see EventStatus.
type Event struct {
	Slug          string         `json:"slug"`
	Title         string         `json:"title"`
	Href          string         `json:"href,omitempty"`
	Teaser        string         `json:"teaser,omitempty"`
	ScheduleNote  string         `json:"schedule_note,omitempty"`
	FeaturedMedia *FeaturedMedia `json:"featured_media,omitempty"`
	Media         *MediaAsset    `json:"media,omitempty"`
	Labels        []string       `json:"labels,omitempty"`
	PrimaryLabel  string         `json:"primary_label,omitempty"`
	Status        string         `json:"status,omitempty"`
	StartsOn      string         `json:"starts_on,omitempty"`
	EndsOn        string         `json:"ends_on,omitempty"`
	Location      string         `json:"location,omitempty"`
	Tags          []string       `json:"tags,omitempty"`
	URL           string         `json:"url,omitempty"`
	Updates       *Updates       `json:"updates,omitempty"`
}

// LearningPath represents an ordered learning track. Resources holds
// foreign resource slugs resolved against the store's resource map.
type LearningPath struct {
	Slug          string         `json:"slug"`
	Title         string         `json:"title"`
	Summary       string         `json:"summary,omitempty"`
	FeaturedMedia *FeaturedMedia `json:"featured_media,omitempty"`
	Media         *MediaAsset    `json:"media,omitempty"`
	Difficulty    string         `json:"difficulty,omitempty"`
	DurationHours int            `json:"duration_hours,omitempty"`
	Milestones    []string       `json:"milestones,omitempty"`
	Resources     []string       `json:"resources,omitempty"`
}

// BestStart is a creator's suggested entry point. It is shown only when
// both fields survive trimming; see IsValid.
type BestStart struct {
	Title string `json:"title,omitempty"`
	URL   string `json:"url,omitempty"`
}

// Creator represents a content creator, grouped by Type for display.
type Creator struct {
	Slug          string            `json:"slug"`
	Name          string            `json:"name"`
	Type          string            `json:"type"`
	FeaturedMedia *FeaturedMedia    `json:"featured_media,omitempty"`
	Media         *MediaAsset       `json:"media,omitempty"`
	Labels        []string          `json:"labels,omitempty"`
	PrimaryLabel  string            `json:"primary_label,omitempty"`
	Focus         []string          `json:"focus,omitempty"`
	Tags          []string          `json:"tags,omitempty"`
	Links         map[string]string `json:"links,omitempty"`
	About         string            `json:"about,omitempty"`
	Description   string            `json:"description,omitempty"`
	VideoID       string            `json:"video_id,omitempty"`
	BestStart     *BestStart        `json:"best_start,omitempty"`
	Thumbnail     string            `json:"thumbnail,omitempty"`
	Updates       *Updates          `json:"updates,omitempty"`
}

// PostLink is a labelled outbound link attached to a post.
type PostLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// PostRelated holds foreign slugs of entities related to a post.
type PostRelated struct {
	Tools      []string `json:"tools,omitempty"`
	Events     []string `json:"events,omitempty"`
	Ecosystems []string `json:"protocols,omitempty"`
}

// Post represents a news/article entry. BodyMD is markdown; when it is
// blank the single-post view substitutes About, then Deck.
type Post struct {
	Slug          string         `json:"slug"`
	Title         string         `json:"title"`
	FeaturedMedia *FeaturedMedia `json:"featured_media,omitempty"`
	About         string         `json:"about,omitempty"`
	Media         *MediaAsset    `json:"media,omitempty"`
	Labels        []string       `json:"labels,omitempty"`
	PrimaryLabel  string         `json:"primary_label,omitempty"`
	Deck          string         `json:"deck,omitempty"`
	Kind          string         `json:"kind,omitempty"`
	PublishedOn   string         `json:"published_on,omitempty"`
	AuthorHandle  string         `json:"author_handle,omitempty"`
	Tags          []string       `json:"tags,omitempty"`
	CoverImage    string         `json:"cover_image,omitempty"`
	Links         []PostLink     `json:"links,omitempty"`
	BodyMD        string         `json:"body_md,omitempty"`
	Sources       []string       `json:"sources,omitempty"`
	Related       *PostRelated   `json:"related,omitempty"`
	Updates       *Updates       `json:"updates,omitempty"`
}

// Resource is an external link referenced by learning paths. Slug may be
// absent in the seed; the store derives one from the URL or title.
type Resource struct {
	Slug  string `json:"slug,omitempty"`
	Title string `json:"title,omitempty"`
	URL   string `json:"url,omitempty"`
}

// JobSource is a job board the work page links out to.
type JobSource struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// JobCompany identifies the company behind a job listing.
type JobCompany struct {
	Name   string `json:"name,omitempty"`
	Domain string `json:"domain,omitempty"`
}

// Job represents a curated job listing.
type Job struct {
	Slug         string      `json:"slug,omitempty"`
	Title        string      `json:"title,omitempty"`
	Company      JobCompany  `json:"company,omitempty"`
	Labels       []string    `json:"labels,omitempty"`
	PrimaryLabel string      `json:"primary_label,omitempty"`
	About        string      `json:"about,omitempty"`
	ApplyURL     string      `json:"apply_url,omitempty"`
	LastVerified string      `json:"last_verified,omitempty"`
	Media        *MediaAsset `json:"media,omitempty"`
}

// Label is one entry of the flat taxonomy, passed to list pages verbatim.
type Label struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Taxonomy is the seed's flat label list.
type Taxonomy struct {
	Labels []Label `json:"labels,omitempty"`
}

// ToolCategory is a page-configuration grouping of tool slugs.
type ToolCategory struct {
	Slug  string   `json:"slug"`
	Title string   `json:"title"`
	Items []string `json:"items,omitempty"`
}

// RoleArchetype is a page-configuration role card for the work page.
type RoleArchetype struct {
	Title string   `json:"title"`
	Tags  []string `json:"tags,omitempty"`
}

// ToolPage configures the tools list page.
type ToolPage struct {
	Categories []ToolCategory `json:"categories,omitempty"`
}

// LearnPage configures the learn list page ordering.
type LearnPage struct {
	Tracks []string `json:"tracks,omitempty"`
}

// WorkPage configures the jobs page: job-source ordering and role cards.
type WorkPage struct {
	JobSources     []string        `json:"job_sources,omitempty"`
	RoleArchetypes []RoleArchetype `json:"role_archetypes,omitempty"`
}

// Pages is the seed's page-configuration section.
type Pages struct {
	Tools ToolPage  `json:"tools"`
	Learn LearnPage `json:"learn"`
	Work  WorkPage  `json:"work"`
}

// PromoSlide is a transient promotional carousel entry sourced from the
// promo document. No slug uniqueness is required.
type PromoSlide struct {
	Type        string   `json:"type,omitempty"`
	Slug        string   `json:"slug,omitempty"`
	Title       string   `json:"title,omitempty"`
	Deck        string   `json:"deck,omitempty"`
	Kind        string   `json:"kind,omitempty"`
	PublishedOn string   `json:"published_on,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Href        string   `json:"href,omitempty"`
}

// PromoDeck is the decoded promotional-slides document.
type PromoDeck struct {
	Slides []PromoSlide `json:"slides,omitempty"`
}

// IsValid reports whether a best-start pointer is complete enough to show:
// both title and URL must be non-blank after trimming.
func (b *BestStart) IsValid() bool {
	if b == nil {
		return false
	}
	return strings.TrimSpace(b.Title) != "" && strings.TrimSpace(b.URL) != ""
}
