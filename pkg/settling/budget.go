package settling

import "strings"

// Token budget for the assembled system prompt. Token counts are
// approximated as len/4, which is close enough for budget enforcement.
const (
	tokenBudget   = 12000
	charsPerToken = 4
)

// Priority tiers. Lower number means trimmed later.
const (
	priorityNeverTrim = 1
	priorityFixed     = 2
	priorityReduce    = 3
	priorityTrimFirst = 4
)

type component struct {
	name     string
	priority int
	content  string
}

func estimateTokens(text string) int {
	return len(text) / charsPerToken
}

// trimComponent truncates text to fit charBudget on a clean boundary:
// the last paragraph break before the cap, else the last sentence
// terminator, else a hard cut with an ellipsis marker.
func trimComponent(text string, charBudget int) string {
	if len(text) <= charBudget {
		return text
	}

	candidate := text[:charBudget]

	if idx := strings.LastIndex(candidate, "\n\n"); idx > 0 {
		return text[:idx]
	}

	best := -1
	for _, sentinel := range []string{". ", "? ", "! ", ".\n"} {
		if idx := strings.LastIndex(candidate, sentinel); idx > best {
			best = idx
		}
	}
	if best > 0 {
		return text[:best+1]
	}

	return text[:charBudget] + "..."
}

// trimToBudget reduces components until the estimated total fits the
// token budget. P4 components are trimmed first (half, then quarter),
// then P3. P1 and P2 are never trimmed; if they alone exceed the
// budget the prompt ships over budget.
func trimToBudget(components []component) (map[string]string, bool) {
	result := make(map[string]string, len(components))
	for _, c := range components {
		result[c.name] = c.content
	}

	total := func() int {
		n := 0
		for _, content := range result {
			n += estimateTokens(content)
		}
		return n
	}

	if total() <= tokenBudget {
		return result, true
	}

	for _, tier := range []int{priorityTrimFirst, priorityReduce} {
		for _, c := range components {
			if c.priority != tier || c.content == "" {
				continue
			}
			result[c.name] = trimComponent(c.content, len(c.content)/2)
			if total() <= tokenBudget {
				return result, true
			}
			result[c.name] = trimComponent(c.content, len(c.content)/4)
			if total() <= tokenBudget {
				return result, true
			}
		}
	}

	return result, total() <= tokenBudget
}
