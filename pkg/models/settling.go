// Package models holds domain types shared across the Spark packages:
// the per-tenant settling configuration, retrieved knowledge chunks,
// and request/response shapes that cross service boundaries.
package models

import (
	"encoding/json"
	"fmt"
)

// SettlingConfig is the typed bag of per-tenant persona and behavior
// knobs merged into the system prompt. Stored as JSON on the client
// row; unknown keys are rejected on write and ignored on read.
type SettlingConfig struct {
	CompanyName         string            `json:"company_name,omitempty"`
	CompanyDescription  string            `json:"company_description,omitempty"`
	Tone                string            `json:"tone,omitempty"`
	CustomInstructions  string            `json:"custom_instructions,omitempty"`
	Timezone            string            `json:"timezone,omitempty"`
	JailbreakResponses  map[string]string `json:"jailbreak_responses,omitempty"`
	LeadCapturePrompt   string            `json:"lead_capture_prompt,omitempty"`
	EscalationMessage   string            `json:"escalation_message,omitempty"`
	CalendlyLink        string            `json:"calendly_link,omitempty"`
	OrientationTemplate string            `json:"orientation_template,omitempty"`
	OffLimitsTopics     []string          `json:"off_limits_topics,omitempty"`

	// CRM wiring, read by the lead sync path only.
	HubspotAPIKey string `json:"hubspot_api_key,omitempty"`
	WebhookURL    string `json:"webhook_url,omitempty"`
}

// settlingKeys enumerates the recognized settling_config keys.
var settlingKeys = map[string]struct{}{
	"company_name":         {},
	"company_description":  {},
	"tone":                 {},
	"custom_instructions":  {},
	"timezone":             {},
	"jailbreak_responses":  {},
	"lead_capture_prompt":  {},
	"escalation_message":   {},
	"calendly_link":        {},
	"orientation_template": {},
	"off_limits_topics":    {},
	"hubspot_api_key":      {},
	"webhook_url":          {},
}

// ValidateSettlingKeys checks raw settling_config JSON for unrecognized
// keys. Used on the admin write path; the read path ignores unknowns.
func ValidateSettlingKeys(raw []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("settling_config is not a JSON object: %w", err)
	}
	for k := range m {
		if _, ok := settlingKeys[k]; !ok {
			return fmt.Errorf("unrecognized settling_config key: %q", k)
		}
	}
	return nil
}

// DefaultLeadCapturePrompt is used when a tenant has not configured one.
const DefaultLeadCapturePrompt = "If you'd like to continue this conversation, drop your email and " +
	"we'll connect you with the right person."

// DefaultEscalationMessage is used when a tenant has not configured one.
const DefaultEscalationMessage = "I'd recommend talking to one of our team members about this."
