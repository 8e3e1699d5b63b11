// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SparkConversationsColumns holds the columns for the "spark_conversations" table.
	SparkConversationsColumns = []*schema.Column{
		{Name: "conversation_id", Type: field.TypeString, Unique: true},
		{Name: "session_token", Type: field.TypeString, Unique: true},
		{Name: "ip_address", Type: field.TypeString},
		{Name: "visitor_fingerprint", Type: field.TypeString, Nullable: true},
		{Name: "turn_count", Type: field.TypeInt, Default: 0},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"active", "completed", "terminated", "expired"}, Default: "active"},
		{Name: "outcome", Type: field.TypeEnum, Nullable: true, Enums: []string{"completed", "abandoned", "terminated", "lead_captured"}},
		{Name: "sentiment", Type: field.TypeString, Nullable: true},
		{Name: "boundary_signals_fired", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "client_id", Type: field.TypeString},
	}
	// SparkConversationsTable holds the schema information for the "spark_conversations" table.
	SparkConversationsTable = &schema.Table{
		Name:       "spark_conversations",
		Columns:    SparkConversationsColumns,
		PrimaryKey: []*schema.Column{SparkConversationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "spark_conversations_clients_conversations",
				Columns:    []*schema.Column{SparkConversationsColumns[13]},
				RefColumns: []*schema.Column{ClientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_session_token",
				Unique:  false,
				Columns: []*schema.Column{SparkConversationsColumns[1]},
			},
			{
				Name:    "conversation_client_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SparkConversationsColumns[13], SparkConversationsColumns[9]},
			},
		},
	}
	// SparkDocumentsColumns holds the columns for the "spark_documents" table.
	SparkDocumentsColumns = []*schema.Column{
		{Name: "chunk_id", Type: field.TypeString, Unique: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "source_type", Type: field.TypeString, Default: "text"},
		{Name: "source_url", Type: field.TypeString, Nullable: true},
		{Name: "chunk_index", Type: field.TypeInt, Default: 0},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "client_id", Type: field.TypeString},
	}
	// SparkDocumentsTable holds the schema information for the "spark_documents" table.
	SparkDocumentsTable = &schema.Table{
		Name:       "spark_documents",
		Columns:    SparkDocumentsColumns,
		PrimaryKey: []*schema.Column{SparkDocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "spark_documents_clients_document_chunks",
				Columns:    []*schema.Column{SparkDocumentsColumns[8]},
				RefColumns: []*schema.Column{ClientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "documentchunk_client_id_content_hash",
				Unique:  false,
				Columns: []*schema.Column{SparkDocumentsColumns[8], SparkDocumentsColumns[6]},
			},
			{
				Name:    "documentchunk_client_id_source_url",
				Unique:  false,
				Columns: []*schema.Column{SparkDocumentsColumns[8], SparkDocumentsColumns[4]},
			},
		},
	}
	// SparkKnowledgeColumns holds the columns for the "spark_knowledge" table.
	SparkKnowledgeColumns = []*schema.Column{
		{Name: "knowledge_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "category", Type: field.TypeString},
		{Name: "subcategory", Type: field.TypeString, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 50},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "client_id", Type: field.TypeString},
	}
	// SparkKnowledgeTable holds the schema information for the "spark_knowledge" table.
	SparkKnowledgeTable = &schema.Table{
		Name:       "spark_knowledge",
		Columns:    SparkKnowledgeColumns,
		PrimaryKey: []*schema.Column{SparkKnowledgeColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "spark_knowledge_clients_knowledge_items",
				Columns:    []*schema.Column{SparkKnowledgeColumns[10]},
				RefColumns: []*schema.Column{ClientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "knowledgeitem_client_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{SparkKnowledgeColumns[10], SparkKnowledgeColumns[7]},
			},
		},
	}
	// SparkLeadsColumns holds the columns for the "spark_leads" table.
	SparkLeadsColumns = []*schema.Column{
		{Name: "lead_id", Type: field.TypeString, Unique: true},
		{Name: "conversation_id", Type: field.TypeString, Nullable: true},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "company_name", Type: field.TypeString, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "contacted", "converted", "lost"}, Default: "new"},
		{Name: "admin_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "crm_sync_status", Type: field.TypeEnum, Enums: []string{"pending", "synced", "failed"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "client_id", Type: field.TypeString},
	}
	// SparkLeadsTable holds the schema information for the "spark_leads" table.
	SparkLeadsTable = &schema.Table{
		Name:       "spark_leads",
		Columns:    SparkLeadsColumns,
		PrimaryKey: []*schema.Column{SparkLeadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "spark_leads_clients_leads",
				Columns:    []*schema.Column{SparkLeadsColumns[12]},
				RefColumns: []*schema.Column{ClientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lead_client_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SparkLeadsColumns[12], SparkLeadsColumns[10]},
			},
			{
				Name:    "lead_client_id_status",
				Unique:  false,
				Columns: []*schema.Column{SparkLeadsColumns[12], SparkLeadsColumns[7]},
			},
		},
	}
	// SparkMessagesColumns holds the columns for the "spark_messages" table.
	SparkMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "system"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// SparkMessagesTable holds the schema information for the "spark_messages" table.
	SparkMessagesTable = &schema.Table{
		Name:       "spark_messages",
		Columns:    SparkMessagesColumns,
		PrimaryKey: []*schema.Column{SparkMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "spark_messages_spark_conversations_messages",
				Columns:    []*schema.Column{SparkMessagesColumns[4]},
				RefColumns: []*schema.Column{SparkConversationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SparkMessagesColumns[4], SparkMessagesColumns[3]},
			},
		},
	}
	// SparkEventsColumns holds the columns for the "spark_events" table.
	SparkEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "client_id", Type: field.TypeString},
		{Name: "conversation_id", Type: field.TypeString, Nullable: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SparkEventsTable holds the schema information for the "spark_events" table.
	SparkEventsTable = &schema.Table{
		Name:       "spark_events",
		Columns:    SparkEventsColumns,
		PrimaryKey: []*schema.Column{SparkEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sparkevent_client_id_event_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{SparkEventsColumns[1], SparkEventsColumns[3], SparkEventsColumns[5]},
			},
		},
	}
	// ClientsColumns holds the columns for the "clients" table.
	ClientsColumns = []*schema.Column{
		{Name: "client_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "api_key_hash", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "max_turns", Type: field.TypeInt, Default: 20},
		{Name: "rate_limit_rpm", Type: field.TypeInt, Default: 30},
		{Name: "settling_config", Type: field.TypeJSON, Nullable: true},
		{Name: "client_orientation", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ClientsTable holds the schema information for the "clients" table.
	ClientsTable = &schema.Table{
		Name:       "clients",
		Columns:    ClientsColumns,
		PrimaryKey: []*schema.Column{ClientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tenant_api_key_hash",
				Unique:  false,
				Columns: []*schema.Column{ClientsColumns[3]},
			},
			{
				Name:    "tenant_user_id",
				Unique:  false,
				Columns: []*schema.Column{ClientsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SparkConversationsTable,
		SparkDocumentsTable,
		SparkKnowledgeTable,
		SparkLeadsTable,
		SparkMessagesTable,
		SparkEventsTable,
		ClientsTable,
	}
)

func init() {
	SparkConversationsTable.ForeignKeys[0].RefTable = ClientsTable
	SparkConversationsTable.Annotation = &entsql.Annotation{
		Table: "spark_conversations",
	}
	SparkDocumentsTable.ForeignKeys[0].RefTable = ClientsTable
	SparkDocumentsTable.Annotation = &entsql.Annotation{
		Table: "spark_documents",
	}
	SparkKnowledgeTable.ForeignKeys[0].RefTable = ClientsTable
	SparkKnowledgeTable.Annotation = &entsql.Annotation{
		Table: "spark_knowledge",
	}
	SparkLeadsTable.ForeignKeys[0].RefTable = ClientsTable
	SparkLeadsTable.Annotation = &entsql.Annotation{
		Table: "spark_leads",
	}
	SparkMessagesTable.ForeignKeys[0].RefTable = SparkConversationsTable
	SparkMessagesTable.Annotation = &entsql.Annotation{
		Table: "spark_messages",
	}
	ClientsTable.Annotation = &entsql.Annotation{
		Table: "clients",
	}
}
