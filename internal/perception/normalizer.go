package perception

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize rewrites a raw multilingual command into canonical English text.
//
// Character widths are folded to canonical form first (Japanese input
// routinely carries ４２ instead of 42, and halfwidth katakana instead of
// regular katakana), then every rule in the table fires in order with global
// substitution, then whitespace runs collapse to single spaces.
//
// Normalize is total over arbitrary input and idempotent once the text is
// fully folded to canonical keywords. Safe for concurrent use.
func Normalize(raw string) string {
	s := width.Fold.String(raw)
	for _, rule := range rewriteRules {
		s = rule.Pattern.ReplaceAllString(s, rule.Replacement)
	}
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
