package hubsite

// Carousel assembly limits. Truncation applies to the concatenated list,
// not per source, so promo slides always win the budget.
const (
	carouselMaxItems    = 7
	carouselMaxPosts    = 4
	carouselMaxUpcoming = 3
)

// CarouselItem is one homepage carousel entry, re-shaped from whichever
// source supplied it.
type CarouselItem struct {
	Type        string   `json:"type"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Deck        string   `json:"deck"`
	Kind        string   `json:"kind"`
	PublishedOn string   `json:"published_on"`
	Tags        []string `json:"tags"`
	Href        string   `json:"href,omitempty"`
}

// BuildCarousel merges promo slides, recent posts, and upcoming events
// into one bounded list: all promo slides first (pinned), then the first
// four posts in source order, then the first three events whose status is
// exactly "upcoming", hard-truncated to seven items total.
func BuildCarousel(promo *PromoDeck, store *Store) []CarouselItem {
	items := make([]CarouselItem, 0, carouselMaxItems)

	if promo != nil {
		for _, slide := range promo.Slides {
			kind := slide.Kind
			if kind == "" {
				kind = slide.Type
			}
			items = append(items, CarouselItem{
				Type:        slide.Type,
				Slug:        slide.Slug,
				Title:       slide.Title,
				Deck:        slide.Deck,
				Kind:        kind,
				PublishedOn: slide.PublishedOn,
				Tags:        slide.Tags,
				Href:        slide.Href,
			})
		}
	}

	posts := store.Posts()
	for i, post := range posts {
		if i == carouselMaxPosts {
			break
		}
		items = append(items, CarouselItem{
			Type:        "news",
			Slug:        post.Slug,
			Title:       post.Title,
			Deck:        post.Deck,
			Kind:        post.Kind,
			PublishedOn: post.PublishedOn,
			Tags:        post.Tags,
		})
	}

	taken := 0
	for _, event := range store.Events() {
		if taken == carouselMaxUpcoming {
			break
		}
		if event.Status != string(EventStatusUpcoming) {
			continue
		}
		taken++
		items = append(items, CarouselItem{
			Type:        "events",
			Slug:        event.Slug,
			Title:       event.Title,
			Deck:        eventCarouselDeck(event),
			Kind:        "event",
			PublishedOn: event.StartsOn,
			Tags:        event.Tags,
		})
	}

	if len(items) > carouselMaxItems {
		items = items[:carouselMaxItems]
	}
	return items
}

// eventCarouselDeck synthesizes "<location> • <starts_on>", omitting the
// separator when location is empty and defaulting an absent date to
// "Date TBA".
func eventCarouselDeck(event Event) string {
	date := event.StartsOn
	if date == "" {
		date = "Date TBA"
	}
	if event.Location == "" {
		return date
	}
	return event.Location + " • " + date
}
