package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCSV(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Ada Lovelace", "Ada Lovelace"},
		{"=cmd|' /C calc'!A0", "'=cmd|' /C calc'!A0"},
		{"+1-555-0100", "'+1-555-0100"},
		{"-lead", "'-lead"},
		{"@import", "'@import"},
		{"\tpadded", "'\tpadded"},
		{"\rreturn", "'\rreturn"},
		{"", ""},
		{"normal, with comma", "normal, with comma"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeCSV(tt.in), "input %q", tt.in)
	}
}

func TestSanitizeCSV_NeverStartsWithFormulaChar(t *testing.T) {
	inputs := []string{"=a", "+b", "-c", "@d", "\te", "\rf", "==", "+-+", "hello"}
	for _, in := range inputs {
		got := sanitizeCSV(in)
		if got == "" {
			continue
		}
		first := got[0]
		assert.NotContains(t, []byte(csvInjectionPrefixes), first, "input %q", in)
	}
}
