package slug

import (
	"regexp"
	"strings"
)

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9]+`)
	headTail     = regexp.MustCompile(`^-+|-+$`)
)

// Make generates a URL-friendly slug from a course title.
// Example: "Options & Derivatives Masterclass" -> "options-derivatives-masterclass"
func Make(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = invalidChars.ReplaceAllString(s, "-")
	s = headTail.ReplaceAllString(s, "")
	return s
}
