package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SparkEvent holds the schema definition for the SparkEvent entity.
// Analytics events emitted by the orchestrator and the widget.
// Written fire-and-forget; losing at most one on crash is acceptable.
type SparkEvent struct {
	ent.Schema
}

// Fields of the SparkEvent.
func (SparkEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("client_id"),
		field.String("conversation_id").
			Optional().
			Nillable(),
		field.String("event_type"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the SparkEvent.
func (SparkEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_id", "event_type", "created_at"),
	}
}
