// Code generated by ent, DO NOT EDIT.

package tenant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the tenant type in the database.
	Label = "tenant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "client_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldAPIKeyHash holds the string denoting the api_key_hash field in the database.
	FieldAPIKeyHash = "api_key_hash"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldMaxTurns holds the string denoting the max_turns field in the database.
	FieldMaxTurns = "max_turns"
	// FieldRateLimitRpm holds the string denoting the rate_limit_rpm field in the database.
	FieldRateLimitRpm = "rate_limit_rpm"
	// FieldSettlingConfig holds the string denoting the settling_config field in the database.
	FieldSettlingConfig = "settling_config"
	// FieldClientOrientation holds the string denoting the client_orientation field in the database.
	FieldClientOrientation = "client_orientation"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeConversations holds the string denoting the conversations edge name in mutations.
	EdgeConversations = "conversations"
	// EdgeKnowledgeItems holds the string denoting the knowledge_items edge name in mutations.
	EdgeKnowledgeItems = "knowledge_items"
	// EdgeDocumentChunks holds the string denoting the document_chunks edge name in mutations.
	EdgeDocumentChunks = "document_chunks"
	// EdgeLeads holds the string denoting the leads edge name in mutations.
	EdgeLeads = "leads"
	// ConversationFieldID holds the string denoting the ID field of the Conversation.
	ConversationFieldID = "conversation_id"
	// KnowledgeItemFieldID holds the string denoting the ID field of the KnowledgeItem.
	KnowledgeItemFieldID = "knowledge_id"
	// DocumentChunkFieldID holds the string denoting the ID field of the DocumentChunk.
	DocumentChunkFieldID = "chunk_id"
	// LeadFieldID holds the string denoting the ID field of the Lead.
	LeadFieldID = "lead_id"
	// Table holds the table name of the tenant in the database.
	Table = "clients"
	// ConversationsTable is the table that holds the conversations relation/edge.
	ConversationsTable = "spark_conversations"
	// ConversationsInverseTable is the table name for the Conversation entity.
	// It exists in this package in order to avoid circular dependency with the "conversation" package.
	ConversationsInverseTable = "spark_conversations"
	// ConversationsColumn is the table column denoting the conversations relation/edge.
	ConversationsColumn = "client_id"
	// KnowledgeItemsTable is the table that holds the knowledge_items relation/edge.
	KnowledgeItemsTable = "spark_knowledge"
	// KnowledgeItemsInverseTable is the table name for the KnowledgeItem entity.
	// It exists in this package in order to avoid circular dependency with the "knowledgeitem" package.
	KnowledgeItemsInverseTable = "spark_knowledge"
	// KnowledgeItemsColumn is the table column denoting the knowledge_items relation/edge.
	KnowledgeItemsColumn = "client_id"
	// DocumentChunksTable is the table that holds the document_chunks relation/edge.
	DocumentChunksTable = "spark_documents"
	// DocumentChunksInverseTable is the table name for the DocumentChunk entity.
	// It exists in this package in order to avoid circular dependency with the "documentchunk" package.
	DocumentChunksInverseTable = "spark_documents"
	// DocumentChunksColumn is the table column denoting the document_chunks relation/edge.
	DocumentChunksColumn = "client_id"
	// LeadsTable is the table that holds the leads relation/edge.
	LeadsTable = "spark_leads"
	// LeadsInverseTable is the table name for the Lead entity.
	// It exists in this package in order to avoid circular dependency with the "lead" package.
	LeadsInverseTable = "spark_leads"
	// LeadsColumn is the table column denoting the leads relation/edge.
	LeadsColumn = "client_id"
)

// Columns holds all SQL columns for tenant fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldSlug,
	FieldAPIKeyHash,
	FieldUserID,
	FieldActive,
	FieldMaxTurns,
	FieldRateLimitRpm,
	FieldSettlingConfig,
	FieldClientOrientation,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultMaxTurns holds the default value on creation for the "max_turns" field.
	DefaultMaxTurns int
	// DefaultRateLimitRpm holds the default value on creation for the "rate_limit_rpm" field.
	DefaultRateLimitRpm int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Tenant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByAPIKeyHash orders the results by the api_key_hash field.
func ByAPIKeyHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAPIKeyHash, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByMaxTurns orders the results by the max_turns field.
func ByMaxTurns(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxTurns, opts...).ToFunc()
}

// ByRateLimitRpm orders the results by the rate_limit_rpm field.
func ByRateLimitRpm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRateLimitRpm, opts...).ToFunc()
}

// ByClientOrientation orders the results by the client_orientation field.
func ByClientOrientation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientOrientation, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByConversationsCount orders the results by conversations count.
func ByConversationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newConversationsStep(), opts...)
	}
}

// ByConversations orders the results by conversations terms.
func ByConversations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConversationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByKnowledgeItemsCount orders the results by knowledge_items count.
func ByKnowledgeItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newKnowledgeItemsStep(), opts...)
	}
}

// ByKnowledgeItems orders the results by knowledge_items terms.
func ByKnowledgeItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newKnowledgeItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDocumentChunksCount orders the results by document_chunks count.
func ByDocumentChunksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDocumentChunksStep(), opts...)
	}
}

// ByDocumentChunks orders the results by document_chunks terms.
func ByDocumentChunks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentChunksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByLeadsCount orders the results by leads count.
func ByLeadsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLeadsStep(), opts...)
	}
}

// ByLeads orders the results by leads terms.
func ByLeads(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLeadsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newConversationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConversationsInverseTable, ConversationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ConversationsTable, ConversationsColumn),
	)
}
func newKnowledgeItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(KnowledgeItemsInverseTable, KnowledgeItemFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, KnowledgeItemsTable, KnowledgeItemsColumn),
	)
}
func newDocumentChunksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentChunksInverseTable, DocumentChunkFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DocumentChunksTable, DocumentChunksColumn),
	)
}
func newLeadsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LeadsInverseTable, LeadFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LeadsTable, LeadsColumn),
	)
}
