package ingestion

import (
	"regexp"
	"strings"
)

var (
	scriptRe  = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRe   = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	navRe     = regexp.MustCompile(`(?is)<nav[^>]*>.*?</nav>`)
	footerRe  = regexp.MustCompile(`(?is)<footer[^>]*>.*?</footer>`)
	headerRe  = regexp.MustCompile(`(?is)<header[^>]*>.*?</header>`)
	blockRe   = regexp.MustCompile(`(?i)<(?:p|div|br|h[1-6]|li|tr)[^>]*>`)
	tagRe     = regexp.MustCompile(`<[^>]+>`)
	blanksRe  = regexp.MustCompile(`\n\s*\n\s*\n+`)
	spacesRe  = regexp.MustCompile(`[ \t]+`)
)

var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&nbsp;", " ",
	"&quot;", `"`,
	"&#39;", "'",
)

// StripHTML extracts readable text from an HTML page: chrome elements
// (script, style, nav, header, footer) are dropped entirely, block
// elements become newlines, and everything else loses its tags.
func StripHTML(html string) string {
	text := scriptRe.ReplaceAllString(html, "")
	text = styleRe.ReplaceAllString(text, "")
	text = navRe.ReplaceAllString(text, "")
	text = footerRe.ReplaceAllString(text, "")
	text = headerRe.ReplaceAllString(text, "")

	text = blockRe.ReplaceAllString(text, "\n")
	text = tagRe.ReplaceAllString(text, "")

	text = entityReplacer.Replace(text)

	text = blanksRe.ReplaceAllString(text, "\n\n")
	text = spacesRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
