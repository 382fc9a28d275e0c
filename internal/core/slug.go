package core

import (
	"regexp"
	"strings"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	hyphenRuns   = regexp.MustCompile(`-+`)
)

// CreateSlug derives the public identifier of an article from its title:
// lowercase, runs of anything outside [a-z0-9] collapsed to a single hyphen,
// leading and trailing hyphens trimmed. The derivation is deterministic and
// carries no disambiguation suffix; the unique constraint on articles.slug is
// the only guard against two titles producing the same slug.
func CreateSlug(title string) string {
	slug := strings.ToLower(title)
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	slug = hyphenRuns.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	return slug
}
