package services

import (
	"context"
	"fmt"
	"time"

	"github.com/trykin/spark/ent"
	"github.com/trykin/spark/ent/conversation"
	"github.com/trykin/spark/ent/message"
)

// previewLength caps first-message previews in the admin list.
const previewLength = 100

// ConversationFilter narrows admin conversation listings.
type ConversationFilter struct {
	Outcome  string
	DateFrom time.Time
	DateTo   time.Time
	Limit    int
	Offset   int
}

// ListConversations returns a page of a tenant's conversations, newest
// first, plus the total count matching the filter.
func (s *SessionService) ListConversations(ctx context.Context, clientID string, f ConversationFilter) ([]*ent.Conversation, int, error) {
	q := s.client.Conversation.Query().Where(conversation.ClientID(clientID))
	if f.Outcome != "" {
		q = q.Where(conversation.OutcomeEQ(conversation.Outcome(f.Outcome)))
	}
	if !f.DateFrom.IsZero() {
		q = q.Where(conversation.CreatedAtGTE(f.DateFrom))
	}
	if !f.DateTo.IsZero() {
		q = q.Where(conversation.CreatedAtLTE(f.DateTo))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count conversations: %w", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	convs, err := q.
		Order(ent.Desc(conversation.FieldCreatedAt)).
		Limit(limit).
		Offset(f.Offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list conversations: %w", err)
	}
	return convs, total, nil
}

// FirstUserMessagePreviews returns, per conversation, the opening user
// message truncated for list display. Missing entries mean the
// conversation has no user message yet.
func (s *SessionService) FirstUserMessagePreviews(ctx context.Context, conversationIDs []string) (map[string]string, error) {
	if len(conversationIDs) == 0 {
		return map[string]string{}, nil
	}

	rows, err := s.client.Message.Query().
		Where(
			message.ConversationIDIn(conversationIDs...),
			message.RoleEQ(message.RoleUser),
		).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query message previews: %w", err)
	}

	previews := make(map[string]string, len(conversationIDs))
	for _, m := range rows {
		if _, seen := previews[m.ConversationID]; seen {
			continue
		}
		content := m.Content
		if len(content) > previewLength {
			content = content[:previewLength] + "..."
		}
		previews[m.ConversationID] = content
	}
	return previews, nil
}

// Transcript returns a tenant-owned conversation and its messages in
// chronological order. A conversation owned by another tenant is
// ErrNotFound, not a permission error, to avoid leaking existence.
func (s *SessionService) Transcript(ctx context.Context, clientID, conversationID string) (*ent.Conversation, []*ent.Message, error) {
	conv, err := s.client.Conversation.Query().
		Where(
			conversation.ID(conversationID),
			conversation.ClientID(clientID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to fetch conversation: %w", err)
	}

	msgs, err := s.client.Message.Query().
		Where(message.ConversationID(conversationID)).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch transcript: %w", err)
	}
	return conv, msgs, nil
}

// SetOutcome records a conversation outcome without ending the session.
// Used when a lead is captured mid-conversation. The client filter
// keeps a tenant from stamping another tenant's conversation.
func (s *SessionService) SetOutcome(ctx context.Context, clientID, conversationID, outcome string) error {
	n, err := s.client.Conversation.Update().
		Where(
			conversation.ID(conversationID),
			conversation.ClientID(clientID),
		).
		SetOutcome(conversation.Outcome(outcome)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set conversation outcome: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
