package domain

import (
	"regexp"
	"strings"
)

// MaxSlugLength is the longest slug accepted by ValidateSlug.
const MaxSlugLength = 120

// slugRegex matches lowercase alphanumeric runs joined by single hyphens, e.g. "devfest-2025".
var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ErrInvalidSlug matches every error returned by ValidateSlug via errors.Is.
var ErrInvalidSlug = &SlugError{Reason: "invalid"}

// SlugError describes why a slug was rejected. Message is safe to show to clients.
type SlugError struct {
	Reason  string
	Message string
}

func (e *SlugError) Error() string {
	if e.Message == "" {
		return "invalid slug"
	}
	return e.Message
}

// Is reports true for ErrInvalidSlug and for a SlugError with the same reason.
func (e *SlugError) Is(target error) bool {
	t, ok := target.(*SlugError)
	if !ok {
		return false
	}
	return t == ErrInvalidSlug || t.Reason == e.Reason
}

// Slug validation errors.
var (
	ErrSlugEmpty         = &SlugError{Reason: "empty", Message: "Missing slug."}
	ErrSlugInvalidFormat = &SlugError{Reason: "invalid_format", Message: "Invalid slug format. Use lowercase letters/numbers and single hyphens only."}
	ErrSlugTooLong       = &SlugError{Reason: "too_long", Message: "Invalid slug: too long."}
)

// ValidateSlug trims and lowercases raw and checks it against the slug grammar.
// It returns the normalized slug or one of ErrSlugEmpty, ErrSlugInvalidFormat, ErrSlugTooLong.
func ValidateSlug(raw string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return "", ErrSlugEmpty
	}
	if !slugRegex.MatchString(normalized) {
		return "", ErrSlugInvalidFormat
	}
	if len(normalized) > MaxSlugLength {
		return "", ErrSlugTooLong
	}
	return normalized, nil
}

// Slugify derives a slug from a title: lowercase, non-alphanumeric runs become a single hyphen.
// The result is cut to MaxSlugLength. It may be empty when title has no letters or digits.
func Slugify(title string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	s := b.String()
	if len(s) > MaxSlugLength {
		s = strings.TrimRight(s[:MaxSlugLength], "-")
	}
	return s
}
