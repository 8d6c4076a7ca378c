package hubsite

import "strings"

// Renderer is the rendering boundary: it takes a template identifier and
// a context value and returns markup, or fails. The HTTP layer supplies a
// real template engine; the embed resolver only ever uses it for the two
// embed components and treats any failure as "no fragment".
type Renderer interface {
	Render(template string, data any) (string, error)
}

// Template identifiers for the embed components.
const (
	TemplateYouTubeEmbed = "component/youtube-embed"
	TemplateTwitterEmbed = "component/twitter-embed"
)

// YouTubeEmbed is the context for the youtube embed component.
type YouTubeEmbed struct {
	VideoID    string `json:"video_id"`
	VideoTitle string `json:"video_title,omitempty"`
}

// TwitterEmbed is the context for the twitter embed component.
type TwitterEmbed struct {
	TweetURL string `json:"tweet_url"`
}

// YouTubeVideoID extracts the video identifier from the URL shapes YouTube
// serves. Checked in priority order: youtu.be short links, watch?v= pages,
// then embed/ player URLs. Unsupported shapes report false.
func YouTubeVideoID(url string) (string, bool) {
	if _, rest, ok := strings.Cut(url, "youtu.be/"); ok {
		return cutAny(rest, "?&#"), true
	}
	if _, rest, ok := strings.Cut(url, "watch?v="); ok {
		return cutAny(rest, "&#"), true
	}
	if _, rest, ok := strings.Cut(url, "embed/"); ok {
		return cutAny(rest, "?&#"), true
	}
	return "", false
}

// cutAny returns s up to the first occurrence of any byte in terminators.
func cutAny(s, terminators string) string {
	if i := strings.IndexAny(s, terminators); i >= 0 {
		return s[:i]
	}
	return s
}

// Embeds holds the renderable fragments resolved from a featured-media
// bundle, plus a best-effort section title.
type Embeds struct {
	YouTube      string
	Twitter      string
	HasTwitter   bool
	SectionTitle string
}

// MediaSection is the presentation block a page includes only when at
// least one embed fragment was produced.
type MediaSection struct {
	SectionTitle string `json:"section_title"`
}

// MediaSection returns the presentation block for these embeds, with the
// generic fallback title, or nil when no fragment was produced. A nil
// block keeps the surrounding page from rendering a media section at all.
func (e Embeds) MediaSection() *MediaSection {
	if e.YouTube == "" && !e.HasTwitter {
		return nil
	}
	title := e.SectionTitle
	if title == "" {
		title = "Featured media"
	}
	return &MediaSection{SectionTitle: title}
}

// ResolveEmbeds produces embed fragments from an optional featured-media
// bundle. It never fails: a malformed URL or a render error simply yields
// no fragment for that medium. The twitter field wins over x when both
// are present; the tweet URL is passed through unmodified.
func ResolveEmbeds(r Renderer, media *FeaturedMedia) Embeds {
	var e Embeds
	if media == nil {
		return e
	}

	if yt := media.YouTube; yt != nil && yt.URL != "" {
		if id, ok := YouTubeVideoID(yt.URL); ok {
			e.SectionTitle = yt.Title
			if html, err := r.Render(TemplateYouTubeEmbed, YouTubeEmbed{
				VideoID:    id,
				VideoTitle: yt.Title,
			}); err == nil {
				e.YouTube = html
			}
		}
	}

	tweet := media.Twitter
	if tweet == nil || tweet.URL == "" {
		tweet = media.X
	}
	if tweet != nil && tweet.URL != "" {
		if e.SectionTitle == "" {
			e.SectionTitle = tweetTitle(media)
		}
		if html, err := r.Render(TemplateTwitterEmbed, TwitterEmbed{TweetURL: tweet.URL}); err == nil {
			e.Twitter = html
			e.HasTwitter = true
		}
	}

	return e
}

// tweetTitle resolves the social post's title independently of which
// sub-field supplied the URL: twitter's title wins, then x's.
func tweetTitle(media *FeaturedMedia) string {
	if media.Twitter != nil && media.Twitter.Title != "" {
		return media.Twitter.Title
	}
	if media.X != nil {
		return media.X.Title
	}
	return ""
}
