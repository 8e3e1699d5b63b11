// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/trykin/spark/ent/conversation"
	"github.com/trykin/spark/ent/documentchunk"
	"github.com/trykin/spark/ent/knowledgeitem"
	"github.com/trykin/spark/ent/lead"
	"github.com/trykin/spark/ent/message"
	"github.com/trykin/spark/ent/schema"
	"github.com/trykin/spark/ent/sparkevent"
	"github.com/trykin/spark/ent/tenant"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescTurnCount is the schema descriptor for turn_count field.
	conversationDescTurnCount := conversationFields[5].Descriptor()
	// conversation.DefaultTurnCount holds the default value on creation for the turn_count field.
	conversation.DefaultTurnCount = conversationDescTurnCount.Default.(int)
	// conversationDescBoundarySignalsFired is the schema descriptor for boundary_signals_fired field.
	conversationDescBoundarySignalsFired := conversationFields[9].Descriptor()
	// conversation.DefaultBoundarySignalsFired holds the default value on creation for the boundary_signals_fired field.
	conversation.DefaultBoundarySignalsFired = conversationDescBoundarySignalsFired.Default.(int)
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[10].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescUpdatedAt is the schema descriptor for updated_at field.
	conversationDescUpdatedAt := conversationFields[11].Descriptor()
	// conversation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversation.DefaultUpdatedAt = conversationDescUpdatedAt.Default.(func() time.Time)
	// conversation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversation.UpdateDefaultUpdatedAt = conversationDescUpdatedAt.UpdateDefault.(func() time.Time)
	documentchunkFields := schema.DocumentChunk{}.Fields()
	_ = documentchunkFields
	// documentchunkDescSourceType is the schema descriptor for source_type field.
	documentchunkDescSourceType := documentchunkFields[4].Descriptor()
	// documentchunk.DefaultSourceType holds the default value on creation for the source_type field.
	documentchunk.DefaultSourceType = documentchunkDescSourceType.Default.(string)
	// documentchunkDescChunkIndex is the schema descriptor for chunk_index field.
	documentchunkDescChunkIndex := documentchunkFields[6].Descriptor()
	// documentchunk.DefaultChunkIndex holds the default value on creation for the chunk_index field.
	documentchunk.DefaultChunkIndex = documentchunkDescChunkIndex.Default.(int)
	// documentchunkDescCreatedAt is the schema descriptor for created_at field.
	documentchunkDescCreatedAt := documentchunkFields[8].Descriptor()
	// documentchunk.DefaultCreatedAt holds the default value on creation for the created_at field.
	documentchunk.DefaultCreatedAt = documentchunkDescCreatedAt.Default.(func() time.Time)
	knowledgeitemFields := schema.KnowledgeItem{}.Fields()
	_ = knowledgeitemFields
	// knowledgeitemDescPriority is the schema descriptor for priority field.
	knowledgeitemDescPriority := knowledgeitemFields[6].Descriptor()
	// knowledgeitem.DefaultPriority holds the default value on creation for the priority field.
	knowledgeitem.DefaultPriority = knowledgeitemDescPriority.Default.(int)
	// knowledgeitem.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	knowledgeitem.PriorityValidator = func() func(int) error {
		validators := knowledgeitemDescPriority.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(priority int) error {
			for _, fn := range fns {
				if err := fn(priority); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// knowledgeitemDescActive is the schema descriptor for active field.
	knowledgeitemDescActive := knowledgeitemFields[7].Descriptor()
	// knowledgeitem.DefaultActive holds the default value on creation for the active field.
	knowledgeitem.DefaultActive = knowledgeitemDescActive.Default.(bool)
	// knowledgeitemDescCreatedAt is the schema descriptor for created_at field.
	knowledgeitemDescCreatedAt := knowledgeitemFields[9].Descriptor()
	// knowledgeitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	knowledgeitem.DefaultCreatedAt = knowledgeitemDescCreatedAt.Default.(func() time.Time)
	// knowledgeitemDescUpdatedAt is the schema descriptor for updated_at field.
	knowledgeitemDescUpdatedAt := knowledgeitemFields[10].Descriptor()
	// knowledgeitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	knowledgeitem.DefaultUpdatedAt = knowledgeitemDescUpdatedAt.Default.(func() time.Time)
	// knowledgeitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	knowledgeitem.UpdateDefaultUpdatedAt = knowledgeitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[11].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	// leadDescUpdatedAt is the schema descriptor for updated_at field.
	leadDescUpdatedAt := leadFields[12].Descriptor()
	// lead.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lead.DefaultUpdatedAt = leadDescUpdatedAt.Default.(func() time.Time)
	// lead.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lead.UpdateDefaultUpdatedAt = leadDescUpdatedAt.UpdateDefault.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[4].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	sparkeventFields := schema.SparkEvent{}.Fields()
	_ = sparkeventFields
	// sparkeventDescCreatedAt is the schema descriptor for created_at field.
	sparkeventDescCreatedAt := sparkeventFields[5].Descriptor()
	// sparkevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	sparkevent.DefaultCreatedAt = sparkeventDescCreatedAt.Default.(func() time.Time)
	tenantFields := schema.Tenant{}.Fields()
	_ = tenantFields
	// tenantDescActive is the schema descriptor for active field.
	tenantDescActive := tenantFields[5].Descriptor()
	// tenant.DefaultActive holds the default value on creation for the active field.
	tenant.DefaultActive = tenantDescActive.Default.(bool)
	// tenantDescMaxTurns is the schema descriptor for max_turns field.
	tenantDescMaxTurns := tenantFields[6].Descriptor()
	// tenant.DefaultMaxTurns holds the default value on creation for the max_turns field.
	tenant.DefaultMaxTurns = tenantDescMaxTurns.Default.(int)
	// tenantDescRateLimitRpm is the schema descriptor for rate_limit_rpm field.
	tenantDescRateLimitRpm := tenantFields[7].Descriptor()
	// tenant.DefaultRateLimitRpm holds the default value on creation for the rate_limit_rpm field.
	tenant.DefaultRateLimitRpm = tenantDescRateLimitRpm.Default.(int)
	// tenantDescCreatedAt is the schema descriptor for created_at field.
	tenantDescCreatedAt := tenantFields[10].Descriptor()
	// tenant.DefaultCreatedAt holds the default value on creation for the created_at field.
	tenant.DefaultCreatedAt = tenantDescCreatedAt.Default.(func() time.Time)
	// tenantDescUpdatedAt is the schema descriptor for updated_at field.
	tenantDescUpdatedAt := tenantFields[11].Descriptor()
	// tenant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tenant.DefaultUpdatedAt = tenantDescUpdatedAt.Default.(func() time.Time)
	// tenant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tenant.UpdateDefaultUpdatedAt = tenantDescUpdatedAt.UpdateDefault.(func() time.Time)
}
