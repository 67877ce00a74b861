package postservice

import (
	"regexp"
	"strings"
)

var (
	whitespaceRX = regexp.MustCompile(`\s+`)
	nonSlugRX    = regexp.MustCompile(`[^a-z0-9-]`)
)

// DeriveSlug derives the URL-safe identifier for a title: lowercased,
// whitespace runs collapsed to a single hyphen, everything outside [a-z0-9-]
// stripped. Deterministic; uniqueness is the caller's problem.
func DeriveSlug(title string) string {
	slug := strings.ToLower(title)
	slug = whitespaceRX.ReplaceAllString(slug, "-")
	slug = nonSlugRX.ReplaceAllString(slug, "")
	return strings.Trim(slug, "-")
}
