package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conversation holds the schema definition for the Conversation entity.
// A conversation is one chat thread: IP-bound, turn-limited, time-limited.
type Conversation struct {
	ent.Schema
}

// Annotations of the Conversation.
func (Conversation) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "spark_conversations"},
	}
}

// Fields of the Conversation.
func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("conversation_id").
			Unique().
			Immutable(),
		field.String("client_id"),
		field.String("session_token").
			Unique().
			Comment("URL-safe random token, 256 bits of entropy"),
		field.String("ip_address"),
		field.String("visitor_fingerprint").
			Optional().
			Nillable(),
		field.Int("turn_count").
			Default(0),
		field.Enum("state").
			Values("active", "completed", "terminated", "expired").
			Default("active"),
		field.Enum("outcome").
			Values("completed", "abandoned", "terminated", "lead_captured").
			Optional().
			Nillable(),
		field.String("sentiment").
			Optional().
			Nillable(),
		field.Int("boundary_signals_fired").
			Default(0).
			Comment("Monotonic counter, incremented via SQL function"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("expires_at"),
		field.Time("ended_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Conversation.
func (Conversation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("client", Tenant.Type).
			Ref("conversations").
			Field("client_id").
			Unique().
			Required(),
		edge.To("messages", Message.Type),
	}
}

// Indexes of the Conversation.
func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_token"),
		index.Fields("client_id", "created_at"),
	}
}
