package hubsite

import (
	"strings"
	"unicode"
)

// Slugify converts free text into a URL-safe slug: ASCII alphanumerics are
// lowercased, any run of whitespace, '-', '_' or '/' collapses into a
// single '-', and everything else is dropped (not transliterated).
// Leading and trailing hyphens are trimmed. Idempotent.
func Slugify(input string) string {
	var b strings.Builder
	b.Grow(len(input))

	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '/':
			if s := b.String(); s != "" && !strings.HasSuffix(s, "-") {
				b.WriteByte('-')
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}

// deriveResourceSlug resolves a resource's identity: the explicit slug if
// present, else the last non-empty path segment of its URL with any
// trailing dot-extension stripped, else its slugified title. Returns ""
// when none of these yields anything usable; such resources are dropped.
func deriveResourceSlug(res Resource) string {
	if res.Slug != "" {
		return res.Slug
	}

	segments := strings.Split(res.URL, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		if seg == "" {
			continue
		}
		if dot := strings.IndexByte(seg, '.'); dot >= 0 {
			seg = seg[:dot]
		}
		if seg != "" {
			return Slugify(seg)
		}
		break
	}

	if res.Title != "" {
		return Slugify(res.Title)
	}

	return ""
}
