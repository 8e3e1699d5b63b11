package api

import (
	"time"

	"github.com/trykin/spark/ent"
)

// ConversationSummary is one row in conversation listings.
type ConversationSummary struct {
	ID                  string     `json:"id"`
	FirstMessagePreview *string    `json:"first_message_preview,omitempty"`
	TurnCount           int        `json:"turn_count"`
	State               string     `json:"state"`
	Outcome             *string    `json:"outcome"`
	Sentiment           *string    `json:"sentiment"`
	CreatedAt           time.Time  `json:"created_at"`
	EndedAt             *time.Time `json:"ended_at"`
	DurationSeconds     *int       `json:"duration_seconds"`
}

// MessageOut is one transcript message.
type MessageOut struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// LeadOut is one lead row.
type LeadOut struct {
	ID             string    `json:"id"`
	ConversationID *string   `json:"conversation_id"`
	Name           *string   `json:"name"`
	Email          *string   `json:"email"`
	Phone          *string   `json:"phone"`
	CompanyName    *string   `json:"company_name"`
	Notes          *string   `json:"notes"`
	Status         string    `json:"status"`
	AdminNotes     *string   `json:"admin_notes"`
	CRMSyncStatus  string    `json:"crm_sync_status"`
	CreatedAt      time.Time `json:"created_at"`
}

// KnowledgeOut is one knowledge item.
type KnowledgeOut struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Subcategory *string   `json:"subcategory"`
	Priority    int       `json:"priority"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// Paginated wraps a page of results with the total matching count.
type Paginated struct {
	Items  interface{} `json:"items"`
	Total  int         `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

func conversationSummary(conv *ent.Conversation) ConversationSummary {
	out := ConversationSummary{
		ID:        conv.ID,
		TurnCount: conv.TurnCount,
		State:     string(conv.State),
		Sentiment: conv.Sentiment,
		CreatedAt: conv.CreatedAt,
		EndedAt:   conv.EndedAt,
	}
	if conv.Outcome != nil {
		o := string(*conv.Outcome)
		out.Outcome = &o
	}
	if conv.EndedAt != nil {
		d := int(conv.EndedAt.Sub(conv.CreatedAt).Seconds())
		out.DurationSeconds = &d
	}
	return out
}

func messageOut(m *ent.Message) MessageOut {
	return MessageOut{
		ID:        m.ID,
		Role:      string(m.Role),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func leadOut(l *ent.Lead) LeadOut {
	return LeadOut{
		ID:             l.ID,
		ConversationID: l.ConversationID,
		Name:           l.Name,
		Email:          l.Email,
		Phone:          l.Phone,
		CompanyName:    l.CompanyName,
		Notes:          l.Notes,
		Status:         string(l.Status),
		AdminNotes:     l.AdminNotes,
		CRMSyncStatus:  string(l.CrmSyncStatus),
		CreatedAt:      l.CreatedAt,
	}
}

func knowledgeOut(k *ent.KnowledgeItem) KnowledgeOut {
	return KnowledgeOut{
		ID:          k.ID,
		Title:       k.Title,
		Content:     k.Content,
		Category:    k.Category,
		Subcategory: k.Subcategory,
		Priority:    k.Priority,
		Active:      k.Active,
		CreatedAt:   k.CreatedAt,
	}
}
