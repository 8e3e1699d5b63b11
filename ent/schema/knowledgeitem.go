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

// KnowledgeItem holds the schema definition for the KnowledgeItem entity.
// Admin-managed knowledge chunks. The pgvector embedding column lives
// outside the Ent schema — it is created by the SQL migrations and
// written through pkg/database raw SQL, since Ent has no vector type.
type KnowledgeItem struct {
	ent.Schema
}

// Annotations of the KnowledgeItem.
func (KnowledgeItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "spark_knowledge"},
	}
}

// Fields of the KnowledgeItem.
func (KnowledgeItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("knowledge_id").
			Unique().
			Immutable(),
		field.String("client_id"),
		field.String("title"),
		field.Text("content"),
		field.String("category"),
		field.String("subcategory").
			Optional().
			Nillable(),
		field.Int("priority").
			Default(50).
			Min(0).
			Max(100),
		field.Bool("active").
			Default(true),
		field.String("content_hash").
			Comment("SHA-256 hex of content, for per-client dedup"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the KnowledgeItem.
func (KnowledgeItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("client", Tenant.Type).
			Ref("knowledge_items").
			Field("client_id").
			Unique().
			Required(),
	}
}

// Indexes of the KnowledgeItem.
func (KnowledgeItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_id", "content_hash").
			Unique(),
	}
}
