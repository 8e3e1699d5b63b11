package settling

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trykin/spark/pkg/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discard{}, nil))
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func testBuilder() *Builder {
	b := NewBuilder(discardLogger())
	loc, _ := time.LoadLocation("America/New_York")
	b.now = func() time.Time {
		return time.Date(2026, time.February, 26, 15, 42, 0, 0, loc)
	}
	return b
}

func TestBuild_FillsTemplate(t *testing.T) {
	b := testBuilder()

	prompt := b.Build(Input{
		Config: models.SettlingConfig{
			CompanyName:        "Acme Rockets",
			CompanyDescription: "We sell rockets.",
			Timezone:           "America/New_York",
		},
		Chunks: []models.Chunk{
			{Title: "Pricing", Content: "Rockets cost money.", Category: "sales", Subcategory: "pricing", Similarity: 0.92},
		},
		TurnCount: 3,
		MaxTurns:  20,
	})

	assert.Contains(t, prompt, "Acme Rockets")
	assert.Contains(t, prompt, "We sell rockets.")
	assert.Contains(t, prompt, "It is Thursday, February 26, 2026 at 3:42 PM EST.")
	assert.Contains(t, prompt, "[1] Pricing (sales / pricing — relevance: 92%)")
	assert.Contains(t, prompt, "Rockets cost money.")
	assert.Contains(t, prompt, "This is turn 3 of 20 in this conversation.")
	assert.NotContains(t, prompt, "{company_name}", "all placeholders are substituted")
}

func TestBuild_EmptyChunksGetHonestyNotice(t *testing.T) {
	b := testBuilder()

	prompt := b.Build(Input{MaxTurns: 20, TurnCount: 1})
	assert.Contains(t, prompt, "You don't have any information about what's being asked.")
}

func TestBuild_WindDownGuidance(t *testing.T) {
	b := testBuilder()

	prompt := b.Build(Input{TurnCount: 17, MaxTurns: 20, WindDown: true})
	assert.Contains(t, prompt, "You have 3 turns remaining.")
	assert.Contains(t, prompt, "winding down")
}

func TestBuild_BoundaryTacticsInjectedOnlyOnSignal(t *testing.T) {
	b := testBuilder()

	clean := b.Build(Input{TurnCount: 1, MaxTurns: 20})
	assert.NotContains(t, clean, "behind the curtain'")

	flagged := b.Build(Input{TurnCount: 1, MaxTurns: 20, BoundarySignal: "prompt_probing"})
	assert.Contains(t, flagged, "asking about your instructions")
}

func TestBuild_InvalidTimezoneFallsBackToUTC(t *testing.T) {
	b := testBuilder()

	prompt := b.Build(Input{
		Config:    models.SettlingConfig{Timezone: "Mars/Olympus_Mons"},
		TurnCount: 1, MaxTurns: 20,
	})
	assert.Contains(t, prompt, "UTC.")
}

func TestBuild_OversizedDocContextIsTrimmed(t *testing.T) {
	b := testBuilder()

	// ~60k chars of doc content, far over the 12k-token budget.
	para := strings.Repeat("Detail sentence about the product. ", 20) + "\n\n"
	huge := strings.Repeat(para, 80)

	prompt := b.Build(Input{
		Chunks:    []models.Chunk{{Title: "Docs", Content: huge, Similarity: 0.8}},
		TurnCount: 1, MaxTurns: 20,
	})

	assert.LessOrEqual(t, len(prompt)/charsPerToken, tokenBudget)
	assert.Contains(t, prompt, "[1] Docs", "trimmed context keeps its header")
}

func TestBuild_MalformedOrientationFallsBackToCore(t *testing.T) {
	b := testBuilder()

	prompt := b.Build(Input{
		Config:          models.SettlingConfig{CompanyName: "Acme"},
		OrientationText: "Broken template with a bare { brace",
		TurnCount:       1, MaxTurns: 20,
	})

	// The core template was used instead of the broken one.
	assert.NotContains(t, prompt, "Broken template")
	assert.Contains(t, prompt, "Acme")
}

func TestBuild_UnknownPlaceholderBecomesEmpty(t *testing.T) {
	b := testBuilder()

	prompt := b.Build(Input{
		OrientationText: "Hello from {company_name}.{made_up_marker}Bye.",
		Config:          models.SettlingConfig{CompanyName: "Acme"},
		TurnCount:       1, MaxTurns: 20,
	})
	assert.Equal(t, "Hello from Acme.Bye.", prompt)
}

func TestBuild_UnknownTemplateNameFallsBackToCore(t *testing.T) {
	clearTemplateCache()
	b := testBuilder()

	prompt := b.Build(Input{
		Config:    models.SettlingConfig{OrientationTemplate: "nonexistent"},
		TurnCount: 1, MaxTurns: 20,
	})
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "conversational assistant", "core template content")
}

func TestTrimComponent_Boundaries(t *testing.T) {
	t.Run("paragraph boundary preferred", func(t *testing.T) {
		text := "First paragraph.\n\nSecond paragraph that is fairly long and will not fit."
		got := trimComponent(text, 40)
		assert.Equal(t, "First paragraph.", got)
	})

	t.Run("sentence boundary when no paragraph", func(t *testing.T) {
		text := "One sentence here. Another sentence that keeps going well past the cap."
		got := trimComponent(text, 40)
		assert.Equal(t, "One sentence here.", got)
	})

	t.Run("hard cut with ellipsis", func(t *testing.T) {
		text := strings.Repeat("x", 100)
		got := trimComponent(text, 40)
		assert.Equal(t, strings.Repeat("x", 40)+"...", got)
	})

	t.Run("under budget untouched", func(t *testing.T) {
		assert.Equal(t, "short", trimComponent("short", 40))
	})
}

func TestExpand_Braces(t *testing.T) {
	out, err := expand("literal {{braces}} and {name}", map[string]string{"name": "value"})
	require.NoError(t, err)
	assert.Equal(t, "literal {braces} and value", out)

	_, err = expand("bad } here", nil)
	assert.Error(t, err)

	_, err = expand("bad {unterminated", nil)
	assert.Error(t, err)

	_, err = expand("bad {not a name}", nil)
	assert.Error(t, err)
}

func TestFormatTurnAwareness_ConciseNudgeNearLimit(t *testing.T) {
	got := formatTurnAwareness(16, 20, false)
	assert.Contains(t, got, "You have 4 turns remaining.")
	assert.Contains(t, got, "be concise")

	early := formatTurnAwareness(2, 20, false)
	assert.NotContains(t, early, "remaining")
}
