package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/trykin/spark/pkg/models"
)

// Tenant holds the schema definition for a Spark client: one site
// widget, one knowledge base, one publishable API key (stored as a
// SHA-256 hash). Named Tenant because ent reserves Client for its
// generated ORM handle; the table keeps the product name.
type Tenant struct {
	ent.Schema
}

// Annotations of the Tenant.
func (Tenant) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "clients"},
	}
}

// Fields of the Tenant.
func (Tenant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("client_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("slug").
			Unique(),
		field.String("api_key_hash").
			Unique().
			Comment("SHA-256 hex of the publishable widget key"),
		field.String("user_id").
			Optional().
			Nillable().
			Comment("Identity-provider subject of the admin account"),
		field.Bool("active").
			Default(true),
		field.Int("max_turns").
			Default(20),
		field.Int("rate_limit_rpm").
			Default(30),
		field.JSON("settling_config", models.SettlingConfig{}).
			Optional().
			Comment("Per-tenant persona and behavior knobs"),
		field.Text("client_orientation").
			Optional().
			Nillable().
			Comment("Tenant-provided orientation text; overrides the on-disk template"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Tenant.
func (Tenant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("conversations", Conversation.Type),
		edge.To("knowledge_items", KnowledgeItem.Type),
		edge.To("document_chunks", DocumentChunk.Type),
		edge.To("leads", Lead.Type),
	}
}

// Indexes of the Tenant.
func (Tenant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("api_key_hash"),
		index.Fields("user_id"),
	}
}
