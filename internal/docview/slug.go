package docview

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slug derives a URL-safe anchor identifier from heading text: lower-case,
// every run of non-alphanumeric characters collapsed to a single hyphen,
// leading and trailing hyphens trimmed. Applying Slug to its own output is a
// no-op, which keeps heading annotation idempotent.
//
// Two headings with the same text produce the same slug; collisions are not
// de-duplicated, so an anchor always navigates to the first occurrence.
func Slug(text string) string {
	s := strings.ToLower(text)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
