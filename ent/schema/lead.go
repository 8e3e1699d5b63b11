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

// Lead holds the schema definition for the Lead entity.
type Lead struct {
	ent.Schema
}

// Annotations of the Lead.
func (Lead) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "spark_leads"},
	}
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("lead_id").
			Unique().
			Immutable(),
		field.String("client_id"),
		field.String("conversation_id").
			Optional().
			Nillable(),
		field.String("name").
			Optional().
			Nillable(),
		field.String("email").
			Optional().
			Nillable(),
		field.String("phone").
			Optional().
			Nillable(),
		field.String("company_name").
			Optional().
			Nillable(),
		field.Text("notes").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("new", "contacted", "converted", "lost").
			Default("new"),
		field.Text("admin_notes").
			Optional().
			Nillable(),
		field.Enum("crm_sync_status").
			Values("pending", "synced", "failed").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Lead.
func (Lead) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("client", Tenant.Type).
			Ref("leads").
			Field("client_id").
			Unique().
			Required(),
	}
}

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_id", "created_at"),
		index.Fields("client_id", "status"),
	}
}
