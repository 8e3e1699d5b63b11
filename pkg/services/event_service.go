package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trykin/spark/ent"
	"github.com/trykin/spark/ent/sparkevent"
)

// EventService records analytics events. Writes happen fire-and-forget
// from the orchestrator's worker pool, so losing one on crash is
// acceptable.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// Record stores one analytics event.
func (s *EventService) Record(ctx context.Context, clientID, conversationID, eventType string, metadata map[string]interface{}) error {
	builder := s.client.SparkEvent.Create().
		SetID(uuid.New().String()).
		SetClientID(clientID).
		SetEventType(eventType)
	if conversationID != "" {
		builder.SetConversationID(conversationID)
	}
	if len(metadata) > 0 {
		builder.SetMetadata(metadata)
	}

	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}
	return nil
}

// DeleteOlderThan removes analytics events created before the cutoff.
// Returns the number of rows deleted.
func (s *EventService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.SparkEvent.Delete().
		Where(sparkevent.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old events: %w", err)
	}
	return n, nil
}
