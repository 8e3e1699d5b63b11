// Package settling assembles the per-turn system prompt: an
// orientation template filled with tenant configuration, retrieved
// document context, turn awareness, and boundary tactics, all held
// under a fixed token budget. Pure string assembly; no database or
// model calls.
package settling

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/trykin/spark/pkg/models"
)

// Input carries everything the builder needs for one turn.
type Input struct {
	Config            models.SettlingConfig
	Chunks            []models.Chunk
	TurnCount         int
	MaxTurns          int
	WindDown          bool
	ConversationState string
	// BoundarySignal is empty on clean turns.
	BoundarySignal string
	// OrientationText, when set, replaces the on-disk template. It may
	// contain the same {placeholder} markers.
	OrientationText string
}

// Builder assembles system prompts.
type Builder struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewBuilder creates a prompt builder.
func NewBuilder(logger *slog.Logger) *Builder {
	return &Builder{logger: logger, now: time.Now}
}

// Build assembles the full system prompt for one turn.
func (b *Builder) Build(in Input) string {
	template := in.OrientationText
	if template == "" {
		name := in.Config.OrientationTemplate
		if name == "" {
			name = "kinetiq"
		}
		loaded, err := loadTemplate(name)
		if err != nil {
			b.logger.Error("Failed to load orientation template", "template", name, "error", err)
			loaded = "{doc_context}\n\n{turn_awareness}"
		}
		template = loaded
	}

	companyName := in.Config.CompanyName
	if companyName == "" {
		companyName = "our company"
	}
	leadCapturePrompt := in.Config.LeadCapturePrompt
	if leadCapturePrompt == "" {
		leadCapturePrompt = models.DefaultLeadCapturePrompt
	}
	escalationMessage := in.Config.EscalationMessage
	if escalationMessage == "" {
		escalationMessage = models.DefaultEscalationMessage
	}

	leadParts := []string{
		"When winding down or when the visitor shows interest: " + leadCapturePrompt,
		"For complex questions beyond your scope: " + escalationMessage,
	}
	if in.Config.CalendlyLink != "" {
		leadParts = append(leadParts, "If they'd like to schedule a call directly: "+in.Config.CalendlyLink)
	}
	leadInstructions := strings.Join(leadParts, "\n")

	docContext := formatDocContext(in.Chunks)
	boundarySignals := formatBoundarySignals(in.BoundarySignal)
	turnAwareness := formatTurnAwareness(in.TurnCount, in.MaxTurns, in.WindDown)

	components := []component{
		{"orientation", priorityNeverTrim, template},
		{"doc_context", priorityTrimFirst, docContext},
	}
	if in.Config.CustomInstructions != "" {
		components = append(components, component{"custom_instructions", priorityFixed, in.Config.CustomInstructions})
	}

	trimmed, fits := trimToBudget(components)
	if !fits {
		b.logger.Warn("System prompt exceeds token budget after trimming",
			"budget", tokenBudget)
	}

	vars := map[string]string{
		"timestamp":                 b.timestamp(in.Config.Timezone),
		"company_name":              companyName,
		"company_description":       in.Config.CompanyDescription,
		"turn_awareness":            turnAwareness,
		"doc_context":               trimmed["doc_context"],
		"lead_capture_instructions": leadInstructions,
		"boundary_signals":          boundarySignals,
		"custom_instructions":       in.Config.CustomInstructions,
		// Legacy placeholders still present in the core template.
		"scope_notes":           "",
		"boundary_instructions": boundarySignals,
	}

	prompt, err := expand(trimmed["orientation"], vars)
	if err != nil {
		// Tenant-editable orientation text may carry bare braces. Fall
		// back to the default template rather than failing the turn.
		b.logger.Warn("Orientation text contains invalid placeholders, falling back to default",
			"error", err)
		fallback, loadErr := loadTemplate("core")
		if loadErr != nil {
			b.logger.Error("Failed to load fallback template", "error", loadErr)
			return vars["doc_context"] + "\n\n" + vars["turn_awareness"]
		}
		prompt, _ = expand(fallback, vars)
	}

	return prompt
}

// timestamp renders the current time in the tenant's timezone, e.g.
// "It is Thursday, February 26, 2026 at 3:42 PM EST." Bad timezone
// names fall back to UTC.
func (b *Builder) timestamp(tzName string) string {
	if tzName == "" {
		tzName = "UTC"
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		b.logger.Warn("Invalid timezone in settling_config, falling back to UTC", "timezone", tzName)
		loc = time.UTC
	}
	now := b.now().In(loc)
	return now.Format("It is Monday, January 2, 2006 at 3:04 PM MST.")
}

// expand substitutes {placeholder} markers with values from vars.
// Unknown placeholders become empty strings. Doubled braces are
// literals. A bare brace or a non-identifier placeholder is an error,
// which the caller treats as a malformed template.
func expand(template string, vars map[string]string) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(template); {
		ch := template[i]
		switch ch {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				sb.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("unterminated placeholder at offset %d", i)
			}
			name := template[i+1 : i+1+end]
			if !isIdentifier(name) {
				return "", fmt.Errorf("invalid placeholder %q", name)
			}
			sb.WriteString(vars[name])
			i += end + 2
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				sb.WriteByte('}')
				i += 2
				continue
			}
			return "", fmt.Errorf("single '}' at offset %d", i)
		default:
			sb.WriteByte(ch)
			i++
		}
	}
	return sb.String(), nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
