// Package format cleans up model output before it is stored and
// displayed: lightweight markdown normalization, no model or database
// calls.
package format

import (
	"regexp"
	"strings"
)

var (
	headingRe       = regexp.MustCompile(`(?m)^#{1,3}\s+`)
	tripleNewlineRe = regexp.MustCompile(`\n{3,}`)
	trailingSpaceRe = regexp.MustCompile(`(?m)[ \t]+$`)
)

// Normalize strips markdown decoration that reads as robotic in a chat
// widget: heading markers on short responses, runs of blank lines, and
// trailing whitespace.
func Normalize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return raw
	}

	text := raw

	// Chat bubbles don't need headings on short answers.
	if len(text) < 500 {
		text = headingRe.ReplaceAllString(text, "")
	}

	text = tripleNewlineRe.ReplaceAllString(text, "\n\n")
	text = trailingSpaceRe.ReplaceAllString(text, "")

	return strings.TrimSpace(text)
}
