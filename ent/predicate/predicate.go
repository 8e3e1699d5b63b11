// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// DocumentChunk is the predicate function for documentchunk builders.
type DocumentChunk func(*sql.Selector)

// KnowledgeItem is the predicate function for knowledgeitem builders.
type KnowledgeItem func(*sql.Selector)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// SparkEvent is the predicate function for sparkevent builders.
type SparkEvent func(*sql.Selector)

// Tenant is the predicate function for tenant builders.
type Tenant func(*sql.Selector)
