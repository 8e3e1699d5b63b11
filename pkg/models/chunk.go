package models

// Chunk is one retrieved knowledge or document chunk with its cosine
// similarity to the query. Knowledge items carry a category; document
// chunks leave it empty.
type Chunk struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	Category    string  `json:"category,omitempty"`
	Subcategory string  `json:"subcategory,omitempty"`
	Similarity  float64 `json:"similarity"`
}

// ChatMessage is the provider-neutral message shape passed to the LLM
// client and returned from conversation history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
