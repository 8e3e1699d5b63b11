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

// DocumentChunk holds the schema definition for the DocumentChunk entity.
// Chunks produced by the ingestion pipeline (pasted text or scraped
// URLs). Like KnowledgeItem, the embedding column is migration-managed.
type DocumentChunk struct {
	ent.Schema
}

// Annotations of the DocumentChunk.
func (DocumentChunk) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "spark_documents"},
	}
}

// Fields of the DocumentChunk.
func (DocumentChunk) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("chunk_id").
			Unique().
			Immutable(),
		field.String("client_id"),
		field.Text("content"),
		field.String("title").
			Optional().
			Nillable(),
		field.String("source_type").
			Default("text").
			Comment("text | url"),
		field.String("source_url").
			Optional().
			Nillable(),
		field.Int("chunk_index").
			Default(0),
		field.String("content_hash"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the DocumentChunk.
func (DocumentChunk) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("client", Tenant.Type).
			Ref("document_chunks").
			Field("client_id").
			Unique().
			Required(),
	}
}

// Indexes of the DocumentChunk.
func (DocumentChunk) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_id", "content_hash"),
		index.Fields("client_id", "source_url"),
	}
}
