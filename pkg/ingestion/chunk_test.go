package ingestion

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkText_Empty(t *testing.T) {
	assert.Empty(t, ChunkText("", 1000, 200))
	assert.Empty(t, ChunkText("   \n\n  ", 1000, 200))
}

func TestChunkText_SingleParagraphStaysWhole(t *testing.T) {
	chunks := ChunkText("A short paragraph.", 1000, 200)
	require.Len(t, chunks, 1)
	assert.Equal(t, "A short paragraph.", chunks[0])
}

func TestChunkText_GroupsParagraphsUpToSize(t *testing.T) {
	text := "First paragraph.\n\nSecond paragraph.\n\nThird paragraph."
	chunks := ChunkText(text, 1000, 200)
	require.Len(t, chunks, 1)
	assert.Contains(t, chunks[0], "First paragraph.")
	assert.Contains(t, chunks[0], "Third paragraph.")
}

func TestChunkText_SplitsAtParagraphBoundary(t *testing.T) {
	para1 := strings.Repeat("alpha ", 100) // ~600 chars
	para2 := strings.Repeat("beta ", 100)  // ~500 chars
	chunks := ChunkText(para1+"\n\n"+para2, 1000, 200)

	require.Len(t, chunks, 2)
	assert.Contains(t, chunks[0], "alpha")
	assert.Contains(t, chunks[1], "beta")
}

func TestChunkText_OverlapCarriesTail(t *testing.T) {
	para1 := strings.Repeat("alpha ", 100)
	para2 := strings.Repeat("beta ", 100)
	chunks := ChunkText(para1+"\n\n"+para2, 1000, 200)

	require.Len(t, chunks, 2)
	assert.Contains(t, chunks[1], "alpha", "second chunk starts with the tail of the first")
}

func TestChunkText_NoOverlapWhenDisabled(t *testing.T) {
	para1 := strings.Repeat("alpha ", 100)
	para2 := strings.Repeat("beta ", 100)
	chunks := ChunkText(para1+"\n\n"+para2, 1000, 0)

	require.Len(t, chunks, 2)
	assert.NotContains(t, chunks[1], "alpha")
}

func TestChunkText_OverlapCutKeepsRunesIntact(t *testing.T) {
	// 750 bytes of 3-byte runes: the 200-byte overlap cut lands
	// mid-rune unless it is backed up to a boundary.
	para1 := strings.Repeat("日", 250)
	para2 := strings.Repeat("beta ", 50)
	chunks := ChunkText(para1+"\n\n"+para2, 1000, 200)

	require.Len(t, chunks, 2)
	assert.True(t, strings.HasPrefix(chunks[1], "日"), "overlap tail starts on a rune boundary")
	for _, c := range chunks {
		assert.True(t, utf8.ValidString(c))
	}
}

func TestChunkText_OversizedParagraphSplitsOnSentences(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 30; i++ {
		b.WriteString("This sentence pads out one very long paragraph with no breaks at all. ")
	}
	chunks := ChunkText(b.String(), 1000, 200)

	require.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 1000)
		assert.True(t, strings.HasSuffix(c, "."), "splits land on sentence boundaries: %q", c)
	}
}

func TestChunkText_GiantSentenceSplitsOnWords(t *testing.T) {
	sentence := strings.TrimSpace(strings.Repeat("word ", 500)) + "."
	chunks := ChunkText(sentence, 1000, 200)

	require.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 1000)
		assert.False(t, strings.HasPrefix(c, " "))
	}
}

func TestSplitSentences(t *testing.T) {
	got := splitSentences("One. Two! Three? Four")
	assert.Equal(t, []string{"One.", "Two!", "Three?", "Four"}, got)
}

func TestStripHTML(t *testing.T) {
	html := `<html><head><style>body { color: red; }</style>
<script>alert("hi");</script></head>
<body>
<nav><a href="/">Home</a></nav>
<header>Site header</header>
<h1>Welcome</h1>
<p>We build &amp; ship things.</p>
<div>Second   block</div>
<footer>Copyright</footer>
</body></html>`

	text := StripHTML(html)

	assert.Contains(t, text, "Welcome")
	assert.Contains(t, text, "We build & ship things.")
	assert.Contains(t, text, "Second block")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "Home")
	assert.NotContains(t, text, "Site header")
	assert.NotContains(t, text, "Copyright")
	assert.NotContains(t, text, "<")
}

func TestStripHTML_Entities(t *testing.T) {
	assert.Equal(t, `"it's" <b> & more`, StripHTML("&quot;it&#39;s&quot; &lt;b&gt; &amp; more"))
}

func TestMimeType(t *testing.T) {
	assert.Equal(t, "text/html", mimeType("text/html; charset=utf-8"))
	assert.Equal(t, "application/pdf", mimeType("Application/PDF"))
	assert.Equal(t, "", mimeType(""))
}
