package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips headings on short responses",
			input:    "## Pricing\nOur plans start at $10.",
			expected: "Pricing\nOur plans start at $10.",
		},
		{
			name:     "collapses triple newlines",
			input:    "First.\n\n\n\nSecond.",
			expected: "First.\n\nSecond.",
		},
		{
			name:     "strips trailing whitespace per line",
			input:    "Line one.   \nLine two.\t",
			expected: "Line one.\nLine two.",
		},
		{
			name:     "trims surrounding whitespace",
			input:    "\n  Hello there.  \n",
			expected: "Hello there.",
		},
		{
			name:     "empty stays empty",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only is returned unchanged",
			input:    "   ",
			expected: "   ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_KeepsHeadingsOnLongResponses(t *testing.T) {
	long := "## Section\n" + strings.Repeat("Detail sentence here. ", 30)
	assert.True(t, len(long) >= 500, "fixture must exceed the short-response cutoff")
	assert.Contains(t, Normalize(long), "## Section")
}
