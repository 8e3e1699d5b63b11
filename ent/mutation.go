// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trykin/spark/ent/conversation"
	"github.com/trykin/spark/ent/documentchunk"
	"github.com/trykin/spark/ent/knowledgeitem"
	"github.com/trykin/spark/ent/lead"
	"github.com/trykin/spark/ent/message"
	"github.com/trykin/spark/ent/predicate"
	"github.com/trykin/spark/ent/sparkevent"
	"github.com/trykin/spark/ent/tenant"
	"github.com/trykin/spark/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeConversation  = "Conversation"
	TypeDocumentChunk = "DocumentChunk"
	TypeKnowledgeItem = "KnowledgeItem"
	TypeLead          = "Lead"
	TypeMessage       = "Message"
	TypeSparkEvent    = "SparkEvent"
	TypeTenant        = "Tenant"
)

// ConversationMutation represents an operation that mutates the Conversation nodes in the graph.
type ConversationMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	session_token             *string
	ip_address                *string
	visitor_fingerprint       *string
	turn_count                *int
	addturn_count             *int
	state                     *conversation.State
	outcome                   *conversation.Outcome
	sentiment                 *string
	boundary_signals_fired    *int
	addboundary_signals_fired *int
	created_at                *time.Time
	updated_at                *time.Time
	expires_at                *time.Time
	ended_at                  *time.Time
	clearedFields             map[string]struct{}
	client                    *string
	clearedclient             bool
	messages                  map[string]struct{}
	removedmessages           map[string]struct{}
	clearedmessages           bool
	done                      bool
	oldValue                  func(context.Context) (*Conversation, error)
	predicates                []predicate.Conversation
}

var _ ent.Mutation = (*ConversationMutation)(nil)

// conversationOption allows management of the mutation configuration using functional options.
type conversationOption func(*ConversationMutation)

// newConversationMutation creates new mutation for the Conversation entity.
func newConversationMutation(c config, op Op, opts ...conversationOption) *ConversationMutation {
	m := &ConversationMutation{
		config:        c,
		op:            op,
		typ:           TypeConversation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationID sets the ID field of the mutation.
func withConversationID(id string) conversationOption {
	return func(m *ConversationMutation) {
		var (
			err   error
			once  sync.Once
			value *Conversation
		)
		m.oldValue = func(ctx context.Context) (*Conversation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Conversation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversation sets the old Conversation of the mutation.
func withConversation(node *Conversation) conversationOption {
	return func(m *ConversationMutation) {
		m.oldValue = func(context.Context) (*Conversation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Conversation entities.
func (m *ConversationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Conversation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientID sets the "client_id" field.
func (m *ConversationMutation) SetClientID(s string) {
	m.client = &s
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *ConversationMutation) ClientID() (r string, exists bool) {
	v := m.client
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldClientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *ConversationMutation) ResetClientID() {
	m.client = nil
}

// SetSessionToken sets the "session_token" field.
func (m *ConversationMutation) SetSessionToken(s string) {
	m.session_token = &s
}

// SessionToken returns the value of the "session_token" field in the mutation.
func (m *ConversationMutation) SessionToken() (r string, exists bool) {
	v := m.session_token
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionToken returns the old "session_token" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldSessionToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionToken: %w", err)
	}
	return oldValue.SessionToken, nil
}

// ResetSessionToken resets all changes to the "session_token" field.
func (m *ConversationMutation) ResetSessionToken() {
	m.session_token = nil
}

// SetIPAddress sets the "ip_address" field.
func (m *ConversationMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *ConversationMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldIPAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *ConversationMutation) ResetIPAddress() {
	m.ip_address = nil
}

// SetVisitorFingerprint sets the "visitor_fingerprint" field.
func (m *ConversationMutation) SetVisitorFingerprint(s string) {
	m.visitor_fingerprint = &s
}

// VisitorFingerprint returns the value of the "visitor_fingerprint" field in the mutation.
func (m *ConversationMutation) VisitorFingerprint() (r string, exists bool) {
	v := m.visitor_fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldVisitorFingerprint returns the old "visitor_fingerprint" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldVisitorFingerprint(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisitorFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisitorFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisitorFingerprint: %w", err)
	}
	return oldValue.VisitorFingerprint, nil
}

// ClearVisitorFingerprint clears the value of the "visitor_fingerprint" field.
func (m *ConversationMutation) ClearVisitorFingerprint() {
	m.visitor_fingerprint = nil
	m.clearedFields[conversation.FieldVisitorFingerprint] = struct{}{}
}

// VisitorFingerprintCleared returns if the "visitor_fingerprint" field was cleared in this mutation.
func (m *ConversationMutation) VisitorFingerprintCleared() bool {
	_, ok := m.clearedFields[conversation.FieldVisitorFingerprint]
	return ok
}

// ResetVisitorFingerprint resets all changes to the "visitor_fingerprint" field.
func (m *ConversationMutation) ResetVisitorFingerprint() {
	m.visitor_fingerprint = nil
	delete(m.clearedFields, conversation.FieldVisitorFingerprint)
}

// SetTurnCount sets the "turn_count" field.
func (m *ConversationMutation) SetTurnCount(i int) {
	m.turn_count = &i
	m.addturn_count = nil
}

// TurnCount returns the value of the "turn_count" field in the mutation.
func (m *ConversationMutation) TurnCount() (r int, exists bool) {
	v := m.turn_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnCount returns the old "turn_count" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldTurnCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnCount: %w", err)
	}
	return oldValue.TurnCount, nil
}

// AddTurnCount adds i to the "turn_count" field.
func (m *ConversationMutation) AddTurnCount(i int) {
	if m.addturn_count != nil {
		*m.addturn_count += i
	} else {
		m.addturn_count = &i
	}
}

// AddedTurnCount returns the value that was added to the "turn_count" field in this mutation.
func (m *ConversationMutation) AddedTurnCount() (r int, exists bool) {
	v := m.addturn_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTurnCount resets all changes to the "turn_count" field.
func (m *ConversationMutation) ResetTurnCount() {
	m.turn_count = nil
	m.addturn_count = nil
}

// SetState sets the "state" field.
func (m *ConversationMutation) SetState(c conversation.State) {
	m.state = &c
}

// State returns the value of the "state" field in the mutation.
func (m *ConversationMutation) State() (r conversation.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldState(ctx context.Context) (v conversation.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *ConversationMutation) ResetState() {
	m.state = nil
}

// SetOutcome sets the "outcome" field.
func (m *ConversationMutation) SetOutcome(c conversation.Outcome) {
	m.outcome = &c
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *ConversationMutation) Outcome() (r conversation.Outcome, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldOutcome(ctx context.Context) (v *conversation.Outcome, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ClearOutcome clears the value of the "outcome" field.
func (m *ConversationMutation) ClearOutcome() {
	m.outcome = nil
	m.clearedFields[conversation.FieldOutcome] = struct{}{}
}

// OutcomeCleared returns if the "outcome" field was cleared in this mutation.
func (m *ConversationMutation) OutcomeCleared() bool {
	_, ok := m.clearedFields[conversation.FieldOutcome]
	return ok
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *ConversationMutation) ResetOutcome() {
	m.outcome = nil
	delete(m.clearedFields, conversation.FieldOutcome)
}

// SetSentiment sets the "sentiment" field.
func (m *ConversationMutation) SetSentiment(s string) {
	m.sentiment = &s
}

// Sentiment returns the value of the "sentiment" field in the mutation.
func (m *ConversationMutation) Sentiment() (r string, exists bool) {
	v := m.sentiment
	if v == nil {
		return
	}
	return *v, true
}

// OldSentiment returns the old "sentiment" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldSentiment(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentiment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentiment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentiment: %w", err)
	}
	return oldValue.Sentiment, nil
}

// ClearSentiment clears the value of the "sentiment" field.
func (m *ConversationMutation) ClearSentiment() {
	m.sentiment = nil
	m.clearedFields[conversation.FieldSentiment] = struct{}{}
}

// SentimentCleared returns if the "sentiment" field was cleared in this mutation.
func (m *ConversationMutation) SentimentCleared() bool {
	_, ok := m.clearedFields[conversation.FieldSentiment]
	return ok
}

// ResetSentiment resets all changes to the "sentiment" field.
func (m *ConversationMutation) ResetSentiment() {
	m.sentiment = nil
	delete(m.clearedFields, conversation.FieldSentiment)
}

// SetBoundarySignalsFired sets the "boundary_signals_fired" field.
func (m *ConversationMutation) SetBoundarySignalsFired(i int) {
	m.boundary_signals_fired = &i
	m.addboundary_signals_fired = nil
}

// BoundarySignalsFired returns the value of the "boundary_signals_fired" field in the mutation.
func (m *ConversationMutation) BoundarySignalsFired() (r int, exists bool) {
	v := m.boundary_signals_fired
	if v == nil {
		return
	}
	return *v, true
}

// OldBoundarySignalsFired returns the old "boundary_signals_fired" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldBoundarySignalsFired(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoundarySignalsFired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoundarySignalsFired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoundarySignalsFired: %w", err)
	}
	return oldValue.BoundarySignalsFired, nil
}

// AddBoundarySignalsFired adds i to the "boundary_signals_fired" field.
func (m *ConversationMutation) AddBoundarySignalsFired(i int) {
	if m.addboundary_signals_fired != nil {
		*m.addboundary_signals_fired += i
	} else {
		m.addboundary_signals_fired = &i
	}
}

// AddedBoundarySignalsFired returns the value that was added to the "boundary_signals_fired" field in this mutation.
func (m *ConversationMutation) AddedBoundarySignalsFired() (r int, exists bool) {
	v := m.addboundary_signals_fired
	if v == nil {
		return
	}
	return *v, true
}

// ResetBoundarySignalsFired resets all changes to the "boundary_signals_fired" field.
func (m *ConversationMutation) ResetBoundarySignalsFired() {
	m.boundary_signals_fired = nil
	m.addboundary_signals_fired = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConversationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConversationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConversationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *ConversationMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ConversationMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ConversationMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *ConversationMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *ConversationMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *ConversationMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[conversation.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *ConversationMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[conversation.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *ConversationMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, conversation.FieldEndedAt)
}

// ClearClient clears the "client" edge to the Tenant entity.
func (m *ConversationMutation) ClearClient() {
	m.clearedclient = true
	m.clearedFields[conversation.FieldClientID] = struct{}{}
}

// ClientCleared reports if the "client" edge to the Tenant entity was cleared.
func (m *ConversationMutation) ClientCleared() bool {
	return m.clearedclient
}

// ClientIDs returns the "client" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClientID instead. It exists only for internal usage by the builders.
func (m *ConversationMutation) ClientIDs() (ids []string) {
	if id := m.client; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClient resets all changes to the "client" edge.
func (m *ConversationMutation) ResetClient() {
	m.client = nil
	m.clearedclient = false
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *ConversationMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *ConversationMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *ConversationMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *ConversationMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *ConversationMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ConversationMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ConversationMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// Where appends a list predicates to the ConversationMutation builder.
func (m *ConversationMutation) Where(ps ...predicate.Conversation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Conversation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Conversation).
func (m *ConversationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.client != nil {
		fields = append(fields, conversation.FieldClientID)
	}
	if m.session_token != nil {
		fields = append(fields, conversation.FieldSessionToken)
	}
	if m.ip_address != nil {
		fields = append(fields, conversation.FieldIPAddress)
	}
	if m.visitor_fingerprint != nil {
		fields = append(fields, conversation.FieldVisitorFingerprint)
	}
	if m.turn_count != nil {
		fields = append(fields, conversation.FieldTurnCount)
	}
	if m.state != nil {
		fields = append(fields, conversation.FieldState)
	}
	if m.outcome != nil {
		fields = append(fields, conversation.FieldOutcome)
	}
	if m.sentiment != nil {
		fields = append(fields, conversation.FieldSentiment)
	}
	if m.boundary_signals_fired != nil {
		fields = append(fields, conversation.FieldBoundarySignalsFired)
	}
	if m.created_at != nil {
		fields = append(fields, conversation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, conversation.FieldUpdatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, conversation.FieldExpiresAt)
	}
	if m.ended_at != nil {
		fields = append(fields, conversation.FieldEndedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldClientID:
		return m.ClientID()
	case conversation.FieldSessionToken:
		return m.SessionToken()
	case conversation.FieldIPAddress:
		return m.IPAddress()
	case conversation.FieldVisitorFingerprint:
		return m.VisitorFingerprint()
	case conversation.FieldTurnCount:
		return m.TurnCount()
	case conversation.FieldState:
		return m.State()
	case conversation.FieldOutcome:
		return m.Outcome()
	case conversation.FieldSentiment:
		return m.Sentiment()
	case conversation.FieldBoundarySignalsFired:
		return m.BoundarySignalsFired()
	case conversation.FieldCreatedAt:
		return m.CreatedAt()
	case conversation.FieldUpdatedAt:
		return m.UpdatedAt()
	case conversation.FieldExpiresAt:
		return m.ExpiresAt()
	case conversation.FieldEndedAt:
		return m.EndedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversation.FieldClientID:
		return m.OldClientID(ctx)
	case conversation.FieldSessionToken:
		return m.OldSessionToken(ctx)
	case conversation.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case conversation.FieldVisitorFingerprint:
		return m.OldVisitorFingerprint(ctx)
	case conversation.FieldTurnCount:
		return m.OldTurnCount(ctx)
	case conversation.FieldState:
		return m.OldState(ctx)
	case conversation.FieldOutcome:
		return m.OldOutcome(ctx)
	case conversation.FieldSentiment:
		return m.OldSentiment(ctx)
	case conversation.FieldBoundarySignalsFired:
		return m.OldBoundarySignalsFired(ctx)
	case conversation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case conversation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case conversation.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case conversation.FieldEndedAt:
		return m.OldEndedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Conversation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldClientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case conversation.FieldSessionToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionToken(v)
		return nil
	case conversation.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case conversation.FieldVisitorFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisitorFingerprint(v)
		return nil
	case conversation.FieldTurnCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnCount(v)
		return nil
	case conversation.FieldState:
		v, ok := value.(conversation.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case conversation.FieldOutcome:
		v, ok := value.(conversation.Outcome)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case conversation.FieldSentiment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentiment(v)
		return nil
	case conversation.FieldBoundarySignalsFired:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoundarySignalsFired(v)
		return nil
	case conversation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case conversation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case conversation.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case conversation.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationMutation) AddedFields() []string {
	var fields []string
	if m.addturn_count != nil {
		fields = append(fields, conversation.FieldTurnCount)
	}
	if m.addboundary_signals_fired != nil {
		fields = append(fields, conversation.FieldBoundarySignalsFired)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldTurnCount:
		return m.AddedTurnCount()
	case conversation.FieldBoundarySignalsFired:
		return m.AddedBoundarySignalsFired()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldTurnCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTurnCount(v)
		return nil
	case conversation.FieldBoundarySignalsFired:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBoundarySignalsFired(v)
		return nil
	}
	return fmt.Errorf("unknown Conversation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversation.FieldVisitorFingerprint) {
		fields = append(fields, conversation.FieldVisitorFingerprint)
	}
	if m.FieldCleared(conversation.FieldOutcome) {
		fields = append(fields, conversation.FieldOutcome)
	}
	if m.FieldCleared(conversation.FieldSentiment) {
		fields = append(fields, conversation.FieldSentiment)
	}
	if m.FieldCleared(conversation.FieldEndedAt) {
		fields = append(fields, conversation.FieldEndedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationMutation) ClearField(name string) error {
	switch name {
	case conversation.FieldVisitorFingerprint:
		m.ClearVisitorFingerprint()
		return nil
	case conversation.FieldOutcome:
		m.ClearOutcome()
		return nil
	case conversation.FieldSentiment:
		m.ClearSentiment()
		return nil
	case conversation.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	}
	return fmt.Errorf("unknown Conversation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationMutation) ResetField(name string) error {
	switch name {
	case conversation.FieldClientID:
		m.ResetClientID()
		return nil
	case conversation.FieldSessionToken:
		m.ResetSessionToken()
		return nil
	case conversation.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case conversation.FieldVisitorFingerprint:
		m.ResetVisitorFingerprint()
		return nil
	case conversation.FieldTurnCount:
		m.ResetTurnCount()
		return nil
	case conversation.FieldState:
		m.ResetState()
		return nil
	case conversation.FieldOutcome:
		m.ResetOutcome()
		return nil
	case conversation.FieldSentiment:
		m.ResetSentiment()
		return nil
	case conversation.FieldBoundarySignalsFired:
		m.ResetBoundarySignalsFired()
		return nil
	case conversation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case conversation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case conversation.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case conversation.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.client != nil {
		edges = append(edges, conversation.EdgeClient)
	}
	if m.messages != nil {
		edges = append(edges, conversation.EdgeMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgeClient:
		if id := m.client; id != nil {
			return []ent.Value{*id}
		}
	case conversation.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmessages != nil {
		edges = append(edges, conversation.EdgeMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedclient {
		edges = append(edges, conversation.EdgeClient)
	}
	if m.clearedmessages {
		edges = append(edges, conversation.EdgeMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationMutation) EdgeCleared(name string) bool {
	switch name {
	case conversation.EdgeClient:
		return m.clearedclient
	case conversation.EdgeMessages:
		return m.clearedmessages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationMutation) ClearEdge(name string) error {
	switch name {
	case conversation.EdgeClient:
		m.ClearClient()
		return nil
	}
	return fmt.Errorf("unknown Conversation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationMutation) ResetEdge(name string) error {
	switch name {
	case conversation.EdgeClient:
		m.ResetClient()
		return nil
	case conversation.EdgeMessages:
		m.ResetMessages()
		return nil
	}
	return fmt.Errorf("unknown Conversation edge %s", name)
}

// DocumentChunkMutation represents an operation that mutates the DocumentChunk nodes in the graph.
type DocumentChunkMutation struct {
	config
	op             Op
	typ            string
	id             *string
	content        *string
	title          *string
	source_type    *string
	source_url     *string
	chunk_index    *int
	addchunk_index *int
	content_hash   *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	client         *string
	clearedclient  bool
	done           bool
	oldValue       func(context.Context) (*DocumentChunk, error)
	predicates     []predicate.DocumentChunk
}

var _ ent.Mutation = (*DocumentChunkMutation)(nil)

// documentchunkOption allows management of the mutation configuration using functional options.
type documentchunkOption func(*DocumentChunkMutation)

// newDocumentChunkMutation creates new mutation for the DocumentChunk entity.
func newDocumentChunkMutation(c config, op Op, opts ...documentchunkOption) *DocumentChunkMutation {
	m := &DocumentChunkMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentChunk,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentChunkID sets the ID field of the mutation.
func withDocumentChunkID(id string) documentchunkOption {
	return func(m *DocumentChunkMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentChunk
		)
		m.oldValue = func(ctx context.Context) (*DocumentChunk, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentChunk.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentChunk sets the old DocumentChunk of the mutation.
func withDocumentChunk(node *DocumentChunk) documentchunkOption {
	return func(m *DocumentChunkMutation) {
		m.oldValue = func(context.Context) (*DocumentChunk, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentChunkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentChunkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DocumentChunk entities.
func (m *DocumentChunkMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentChunkMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentChunkMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentChunk.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientID sets the "client_id" field.
func (m *DocumentChunkMutation) SetClientID(s string) {
	m.client = &s
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *DocumentChunkMutation) ClientID() (r string, exists bool) {
	v := m.client
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the DocumentChunk entity.
// If the DocumentChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentChunkMutation) OldClientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *DocumentChunkMutation) ResetClientID() {
	m.client = nil
}

// SetContent sets the "content" field.
func (m *DocumentChunkMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *DocumentChunkMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the DocumentChunk entity.
// If the DocumentChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentChunkMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *DocumentChunkMutation) ResetContent() {
	m.content = nil
}

// SetTitle sets the "title" field.
func (m *DocumentChunkMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *DocumentChunkMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the DocumentChunk entity.
// If the DocumentChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentChunkMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *DocumentChunkMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[documentchunk.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *DocumentChunkMutation) TitleCleared() bool {
	_, ok := m.clearedFields[documentchunk.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *DocumentChunkMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, documentchunk.FieldTitle)
}

// SetSourceType sets the "source_type" field.
func (m *DocumentChunkMutation) SetSourceType(s string) {
	m.source_type = &s
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *DocumentChunkMutation) SourceType() (r string, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the DocumentChunk entity.
// If the DocumentChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentChunkMutation) OldSourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *DocumentChunkMutation) ResetSourceType() {
	m.source_type = nil
}

// SetSourceURL sets the "source_url" field.
func (m *DocumentChunkMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *DocumentChunkMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the DocumentChunk entity.
// If the DocumentChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentChunkMutation) OldSourceURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ClearSourceURL clears the value of the "source_url" field.
func (m *DocumentChunkMutation) ClearSourceURL() {
	m.source_url = nil
	m.clearedFields[documentchunk.FieldSourceURL] = struct{}{}
}

// SourceURLCleared returns if the "source_url" field was cleared in this mutation.
func (m *DocumentChunkMutation) SourceURLCleared() bool {
	_, ok := m.clearedFields[documentchunk.FieldSourceURL]
	return ok
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *DocumentChunkMutation) ResetSourceURL() {
	m.source_url = nil
	delete(m.clearedFields, documentchunk.FieldSourceURL)
}

// SetChunkIndex sets the "chunk_index" field.
func (m *DocumentChunkMutation) SetChunkIndex(i int) {
	m.chunk_index = &i
	m.addchunk_index = nil
}

// ChunkIndex returns the value of the "chunk_index" field in the mutation.
func (m *DocumentChunkMutation) ChunkIndex() (r int, exists bool) {
	v := m.chunk_index
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkIndex returns the old "chunk_index" field's value of the DocumentChunk entity.
// If the DocumentChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentChunkMutation) OldChunkIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkIndex: %w", err)
	}
	return oldValue.ChunkIndex, nil
}

// AddChunkIndex adds i to the "chunk_index" field.
func (m *DocumentChunkMutation) AddChunkIndex(i int) {
	if m.addchunk_index != nil {
		*m.addchunk_index += i
	} else {
		m.addchunk_index = &i
	}
}

// AddedChunkIndex returns the value that was added to the "chunk_index" field in this mutation.
func (m *DocumentChunkMutation) AddedChunkIndex() (r int, exists bool) {
	v := m.addchunk_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetChunkIndex resets all changes to the "chunk_index" field.
func (m *DocumentChunkMutation) ResetChunkIndex() {
	m.chunk_index = nil
	m.addchunk_index = nil
}

// SetContentHash sets the "content_hash" field.
func (m *DocumentChunkMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DocumentChunkMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the DocumentChunk entity.
// If the DocumentChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentChunkMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DocumentChunkMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentChunkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentChunkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DocumentChunk entity.
// If the DocumentChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentChunkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentChunkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearClient clears the "client" edge to the Tenant entity.
func (m *DocumentChunkMutation) ClearClient() {
	m.clearedclient = true
	m.clearedFields[documentchunk.FieldClientID] = struct{}{}
}

// ClientCleared reports if the "client" edge to the Tenant entity was cleared.
func (m *DocumentChunkMutation) ClientCleared() bool {
	return m.clearedclient
}

// ClientIDs returns the "client" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClientID instead. It exists only for internal usage by the builders.
func (m *DocumentChunkMutation) ClientIDs() (ids []string) {
	if id := m.client; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClient resets all changes to the "client" edge.
func (m *DocumentChunkMutation) ResetClient() {
	m.client = nil
	m.clearedclient = false
}

// Where appends a list predicates to the DocumentChunkMutation builder.
func (m *DocumentChunkMutation) Where(ps ...predicate.DocumentChunk) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentChunkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentChunkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentChunk, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentChunkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentChunkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentChunk).
func (m *DocumentChunkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentChunkMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.client != nil {
		fields = append(fields, documentchunk.FieldClientID)
	}
	if m.content != nil {
		fields = append(fields, documentchunk.FieldContent)
	}
	if m.title != nil {
		fields = append(fields, documentchunk.FieldTitle)
	}
	if m.source_type != nil {
		fields = append(fields, documentchunk.FieldSourceType)
	}
	if m.source_url != nil {
		fields = append(fields, documentchunk.FieldSourceURL)
	}
	if m.chunk_index != nil {
		fields = append(fields, documentchunk.FieldChunkIndex)
	}
	if m.content_hash != nil {
		fields = append(fields, documentchunk.FieldContentHash)
	}
	if m.created_at != nil {
		fields = append(fields, documentchunk.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentChunkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documentchunk.FieldClientID:
		return m.ClientID()
	case documentchunk.FieldContent:
		return m.Content()
	case documentchunk.FieldTitle:
		return m.Title()
	case documentchunk.FieldSourceType:
		return m.SourceType()
	case documentchunk.FieldSourceURL:
		return m.SourceURL()
	case documentchunk.FieldChunkIndex:
		return m.ChunkIndex()
	case documentchunk.FieldContentHash:
		return m.ContentHash()
	case documentchunk.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentChunkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documentchunk.FieldClientID:
		return m.OldClientID(ctx)
	case documentchunk.FieldContent:
		return m.OldContent(ctx)
	case documentchunk.FieldTitle:
		return m.OldTitle(ctx)
	case documentchunk.FieldSourceType:
		return m.OldSourceType(ctx)
	case documentchunk.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case documentchunk.FieldChunkIndex:
		return m.OldChunkIndex(ctx)
	case documentchunk.FieldContentHash:
		return m.OldContentHash(ctx)
	case documentchunk.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentChunk field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentChunkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documentchunk.FieldClientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case documentchunk.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case documentchunk.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case documentchunk.FieldSourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case documentchunk.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case documentchunk.FieldChunkIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkIndex(v)
		return nil
	case documentchunk.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case documentchunk.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentChunk field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentChunkMutation) AddedFields() []string {
	var fields []string
	if m.addchunk_index != nil {
		fields = append(fields, documentchunk.FieldChunkIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentChunkMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case documentchunk.FieldChunkIndex:
		return m.AddedChunkIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentChunkMutation) AddField(name string, value ent.Value) error {
	switch name {
	case documentchunk.FieldChunkIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChunkIndex(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentChunk numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentChunkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(documentchunk.FieldTitle) {
		fields = append(fields, documentchunk.FieldTitle)
	}
	if m.FieldCleared(documentchunk.FieldSourceURL) {
		fields = append(fields, documentchunk.FieldSourceURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentChunkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentChunkMutation) ClearField(name string) error {
	switch name {
	case documentchunk.FieldTitle:
		m.ClearTitle()
		return nil
	case documentchunk.FieldSourceURL:
		m.ClearSourceURL()
		return nil
	}
	return fmt.Errorf("unknown DocumentChunk nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentChunkMutation) ResetField(name string) error {
	switch name {
	case documentchunk.FieldClientID:
		m.ResetClientID()
		return nil
	case documentchunk.FieldContent:
		m.ResetContent()
		return nil
	case documentchunk.FieldTitle:
		m.ResetTitle()
		return nil
	case documentchunk.FieldSourceType:
		m.ResetSourceType()
		return nil
	case documentchunk.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case documentchunk.FieldChunkIndex:
		m.ResetChunkIndex()
		return nil
	case documentchunk.FieldContentHash:
		m.ResetContentHash()
		return nil
	case documentchunk.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DocumentChunk field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentChunkMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.client != nil {
		edges = append(edges, documentchunk.EdgeClient)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentChunkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case documentchunk.EdgeClient:
		if id := m.client; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentChunkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentChunkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentChunkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedclient {
		edges = append(edges, documentchunk.EdgeClient)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentChunkMutation) EdgeCleared(name string) bool {
	switch name {
	case documentchunk.EdgeClient:
		return m.clearedclient
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentChunkMutation) ClearEdge(name string) error {
	switch name {
	case documentchunk.EdgeClient:
		m.ClearClient()
		return nil
	}
	return fmt.Errorf("unknown DocumentChunk unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentChunkMutation) ResetEdge(name string) error {
	switch name {
	case documentchunk.EdgeClient:
		m.ResetClient()
		return nil
	}
	return fmt.Errorf("unknown DocumentChunk edge %s", name)
}

// KnowledgeItemMutation represents an operation that mutates the KnowledgeItem nodes in the graph.
type KnowledgeItemMutation struct {
	config
	op            Op
	typ           string
	id            *string
	title         *string
	content       *string
	category      *string
	subcategory   *string
	priority      *int
	addpriority   *int
	active        *bool
	content_hash  *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	client        *string
	clearedclient bool
	done          bool
	oldValue      func(context.Context) (*KnowledgeItem, error)
	predicates    []predicate.KnowledgeItem
}

var _ ent.Mutation = (*KnowledgeItemMutation)(nil)

// knowledgeitemOption allows management of the mutation configuration using functional options.
type knowledgeitemOption func(*KnowledgeItemMutation)

// newKnowledgeItemMutation creates new mutation for the KnowledgeItem entity.
func newKnowledgeItemMutation(c config, op Op, opts ...knowledgeitemOption) *KnowledgeItemMutation {
	m := &KnowledgeItemMutation{
		config:        c,
		op:            op,
		typ:           TypeKnowledgeItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKnowledgeItemID sets the ID field of the mutation.
func withKnowledgeItemID(id string) knowledgeitemOption {
	return func(m *KnowledgeItemMutation) {
		var (
			err   error
			once  sync.Once
			value *KnowledgeItem
		)
		m.oldValue = func(ctx context.Context) (*KnowledgeItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().KnowledgeItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKnowledgeItem sets the old KnowledgeItem of the mutation.
func withKnowledgeItem(node *KnowledgeItem) knowledgeitemOption {
	return func(m *KnowledgeItemMutation) {
		m.oldValue = func(context.Context) (*KnowledgeItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KnowledgeItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KnowledgeItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of KnowledgeItem entities.
func (m *KnowledgeItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KnowledgeItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KnowledgeItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().KnowledgeItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientID sets the "client_id" field.
func (m *KnowledgeItemMutation) SetClientID(s string) {
	m.client = &s
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *KnowledgeItemMutation) ClientID() (r string, exists bool) {
	v := m.client
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the KnowledgeItem entity.
// If the KnowledgeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeItemMutation) OldClientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *KnowledgeItemMutation) ResetClientID() {
	m.client = nil
}

// SetTitle sets the "title" field.
func (m *KnowledgeItemMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *KnowledgeItemMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the KnowledgeItem entity.
// If the KnowledgeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeItemMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *KnowledgeItemMutation) ResetTitle() {
	m.title = nil
}

// SetContent sets the "content" field.
func (m *KnowledgeItemMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *KnowledgeItemMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the KnowledgeItem entity.
// If the KnowledgeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeItemMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *KnowledgeItemMutation) ResetContent() {
	m.content = nil
}

// SetCategory sets the "category" field.
func (m *KnowledgeItemMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *KnowledgeItemMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the KnowledgeItem entity.
// If the KnowledgeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeItemMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *KnowledgeItemMutation) ResetCategory() {
	m.category = nil
}

// SetSubcategory sets the "subcategory" field.
func (m *KnowledgeItemMutation) SetSubcategory(s string) {
	m.subcategory = &s
}

// Subcategory returns the value of the "subcategory" field in the mutation.
func (m *KnowledgeItemMutation) Subcategory() (r string, exists bool) {
	v := m.subcategory
	if v == nil {
		return
	}
	return *v, true
}

// OldSubcategory returns the old "subcategory" field's value of the KnowledgeItem entity.
// If the KnowledgeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeItemMutation) OldSubcategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubcategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubcategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubcategory: %w", err)
	}
	return oldValue.Subcategory, nil
}

// ClearSubcategory clears the value of the "subcategory" field.
func (m *KnowledgeItemMutation) ClearSubcategory() {
	m.subcategory = nil
	m.clearedFields[knowledgeitem.FieldSubcategory] = struct{}{}
}

// SubcategoryCleared returns if the "subcategory" field was cleared in this mutation.
func (m *KnowledgeItemMutation) SubcategoryCleared() bool {
	_, ok := m.clearedFields[knowledgeitem.FieldSubcategory]
	return ok
}

// ResetSubcategory resets all changes to the "subcategory" field.
func (m *KnowledgeItemMutation) ResetSubcategory() {
	m.subcategory = nil
	delete(m.clearedFields, knowledgeitem.FieldSubcategory)
}

// SetPriority sets the "priority" field.
func (m *KnowledgeItemMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *KnowledgeItemMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the KnowledgeItem entity.
// If the KnowledgeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeItemMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *KnowledgeItemMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *KnowledgeItemMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *KnowledgeItemMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetActive sets the "active" field.
func (m *KnowledgeItemMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *KnowledgeItemMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the KnowledgeItem entity.
// If the KnowledgeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeItemMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *KnowledgeItemMutation) ResetActive() {
	m.active = nil
}

// SetContentHash sets the "content_hash" field.
func (m *KnowledgeItemMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *KnowledgeItemMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the KnowledgeItem entity.
// If the KnowledgeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeItemMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *KnowledgeItemMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *KnowledgeItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *KnowledgeItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the KnowledgeItem entity.
// If the KnowledgeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *KnowledgeItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *KnowledgeItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *KnowledgeItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the KnowledgeItem entity.
// If the KnowledgeItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *KnowledgeItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearClient clears the "client" edge to the Tenant entity.
func (m *KnowledgeItemMutation) ClearClient() {
	m.clearedclient = true
	m.clearedFields[knowledgeitem.FieldClientID] = struct{}{}
}

// ClientCleared reports if the "client" edge to the Tenant entity was cleared.
func (m *KnowledgeItemMutation) ClientCleared() bool {
	return m.clearedclient
}

// ClientIDs returns the "client" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClientID instead. It exists only for internal usage by the builders.
func (m *KnowledgeItemMutation) ClientIDs() (ids []string) {
	if id := m.client; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClient resets all changes to the "client" edge.
func (m *KnowledgeItemMutation) ResetClient() {
	m.client = nil
	m.clearedclient = false
}

// Where appends a list predicates to the KnowledgeItemMutation builder.
func (m *KnowledgeItemMutation) Where(ps ...predicate.KnowledgeItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KnowledgeItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KnowledgeItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.KnowledgeItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KnowledgeItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KnowledgeItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (KnowledgeItem).
func (m *KnowledgeItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KnowledgeItemMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.client != nil {
		fields = append(fields, knowledgeitem.FieldClientID)
	}
	if m.title != nil {
		fields = append(fields, knowledgeitem.FieldTitle)
	}
	if m.content != nil {
		fields = append(fields, knowledgeitem.FieldContent)
	}
	if m.category != nil {
		fields = append(fields, knowledgeitem.FieldCategory)
	}
	if m.subcategory != nil {
		fields = append(fields, knowledgeitem.FieldSubcategory)
	}
	if m.priority != nil {
		fields = append(fields, knowledgeitem.FieldPriority)
	}
	if m.active != nil {
		fields = append(fields, knowledgeitem.FieldActive)
	}
	if m.content_hash != nil {
		fields = append(fields, knowledgeitem.FieldContentHash)
	}
	if m.created_at != nil {
		fields = append(fields, knowledgeitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, knowledgeitem.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KnowledgeItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case knowledgeitem.FieldClientID:
		return m.ClientID()
	case knowledgeitem.FieldTitle:
		return m.Title()
	case knowledgeitem.FieldContent:
		return m.Content()
	case knowledgeitem.FieldCategory:
		return m.Category()
	case knowledgeitem.FieldSubcategory:
		return m.Subcategory()
	case knowledgeitem.FieldPriority:
		return m.Priority()
	case knowledgeitem.FieldActive:
		return m.Active()
	case knowledgeitem.FieldContentHash:
		return m.ContentHash()
	case knowledgeitem.FieldCreatedAt:
		return m.CreatedAt()
	case knowledgeitem.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KnowledgeItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case knowledgeitem.FieldClientID:
		return m.OldClientID(ctx)
	case knowledgeitem.FieldTitle:
		return m.OldTitle(ctx)
	case knowledgeitem.FieldContent:
		return m.OldContent(ctx)
	case knowledgeitem.FieldCategory:
		return m.OldCategory(ctx)
	case knowledgeitem.FieldSubcategory:
		return m.OldSubcategory(ctx)
	case knowledgeitem.FieldPriority:
		return m.OldPriority(ctx)
	case knowledgeitem.FieldActive:
		return m.OldActive(ctx)
	case knowledgeitem.FieldContentHash:
		return m.OldContentHash(ctx)
	case knowledgeitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case knowledgeitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown KnowledgeItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case knowledgeitem.FieldClientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case knowledgeitem.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case knowledgeitem.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case knowledgeitem.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case knowledgeitem.FieldSubcategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubcategory(v)
		return nil
	case knowledgeitem.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case knowledgeitem.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case knowledgeitem.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case knowledgeitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case knowledgeitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown KnowledgeItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KnowledgeItemMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, knowledgeitem.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KnowledgeItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case knowledgeitem.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case knowledgeitem.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown KnowledgeItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KnowledgeItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(knowledgeitem.FieldSubcategory) {
		fields = append(fields, knowledgeitem.FieldSubcategory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KnowledgeItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KnowledgeItemMutation) ClearField(name string) error {
	switch name {
	case knowledgeitem.FieldSubcategory:
		m.ClearSubcategory()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KnowledgeItemMutation) ResetField(name string) error {
	switch name {
	case knowledgeitem.FieldClientID:
		m.ResetClientID()
		return nil
	case knowledgeitem.FieldTitle:
		m.ResetTitle()
		return nil
	case knowledgeitem.FieldContent:
		m.ResetContent()
		return nil
	case knowledgeitem.FieldCategory:
		m.ResetCategory()
		return nil
	case knowledgeitem.FieldSubcategory:
		m.ResetSubcategory()
		return nil
	case knowledgeitem.FieldPriority:
		m.ResetPriority()
		return nil
	case knowledgeitem.FieldActive:
		m.ResetActive()
		return nil
	case knowledgeitem.FieldContentHash:
		m.ResetContentHash()
		return nil
	case knowledgeitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case knowledgeitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KnowledgeItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.client != nil {
		edges = append(edges, knowledgeitem.EdgeClient)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KnowledgeItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case knowledgeitem.EdgeClient:
		if id := m.client; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KnowledgeItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KnowledgeItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KnowledgeItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedclient {
		edges = append(edges, knowledgeitem.EdgeClient)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KnowledgeItemMutation) EdgeCleared(name string) bool {
	switch name {
	case knowledgeitem.EdgeClient:
		return m.clearedclient
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KnowledgeItemMutation) ClearEdge(name string) error {
	switch name {
	case knowledgeitem.EdgeClient:
		m.ClearClient()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KnowledgeItemMutation) ResetEdge(name string) error {
	switch name {
	case knowledgeitem.EdgeClient:
		m.ResetClient()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeItem edge %s", name)
}

// LeadMutation represents an operation that mutates the Lead nodes in the graph.
type LeadMutation struct {
	config
	op              Op
	typ             string
	id              *string
	conversation_id *string
	name            *string
	email           *string
	phone           *string
	company_name    *string
	notes           *string
	status          *lead.Status
	admin_notes     *string
	crm_sync_status *lead.CrmSyncStatus
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	client          *string
	clearedclient   bool
	done            bool
	oldValue        func(context.Context) (*Lead, error)
	predicates      []predicate.Lead
}

var _ ent.Mutation = (*LeadMutation)(nil)

// leadOption allows management of the mutation configuration using functional options.
type leadOption func(*LeadMutation)

// newLeadMutation creates new mutation for the Lead entity.
func newLeadMutation(c config, op Op, opts ...leadOption) *LeadMutation {
	m := &LeadMutation{
		config:        c,
		op:            op,
		typ:           TypeLead,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeadID sets the ID field of the mutation.
func withLeadID(id string) leadOption {
	return func(m *LeadMutation) {
		var (
			err   error
			once  sync.Once
			value *Lead
		)
		m.oldValue = func(ctx context.Context) (*Lead, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lead.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLead sets the old Lead of the mutation.
func withLead(node *Lead) leadOption {
	return func(m *LeadMutation) {
		m.oldValue = func(context.Context) (*Lead, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Lead entities.
func (m *LeadMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeadMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeadMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lead.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientID sets the "client_id" field.
func (m *LeadMutation) SetClientID(s string) {
	m.client = &s
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *LeadMutation) ClientID() (r string, exists bool) {
	v := m.client
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldClientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *LeadMutation) ResetClientID() {
	m.client = nil
}

// SetConversationID sets the "conversation_id" field.
func (m *LeadMutation) SetConversationID(s string) {
	m.conversation_id = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *LeadMutation) ConversationID() (r string, exists bool) {
	v := m.conversation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldConversationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ClearConversationID clears the value of the "conversation_id" field.
func (m *LeadMutation) ClearConversationID() {
	m.conversation_id = nil
	m.clearedFields[lead.FieldConversationID] = struct{}{}
}

// ConversationIDCleared returns if the "conversation_id" field was cleared in this mutation.
func (m *LeadMutation) ConversationIDCleared() bool {
	_, ok := m.clearedFields[lead.FieldConversationID]
	return ok
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *LeadMutation) ResetConversationID() {
	m.conversation_id = nil
	delete(m.clearedFields, lead.FieldConversationID)
}

// SetName sets the "name" field.
func (m *LeadMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *LeadMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *LeadMutation) ClearName() {
	m.name = nil
	m.clearedFields[lead.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *LeadMutation) NameCleared() bool {
	_, ok := m.clearedFields[lead.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *LeadMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, lead.FieldName)
}

// SetEmail sets the "email" field.
func (m *LeadMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *LeadMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *LeadMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[lead.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *LeadMutation) EmailCleared() bool {
	_, ok := m.clearedFields[lead.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *LeadMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, lead.FieldEmail)
}

// SetPhone sets the "phone" field.
func (m *LeadMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *LeadMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *LeadMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[lead.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *LeadMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[lead.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *LeadMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, lead.FieldPhone)
}

// SetCompanyName sets the "company_name" field.
func (m *LeadMutation) SetCompanyName(s string) {
	m.company_name = &s
}

// CompanyName returns the value of the "company_name" field in the mutation.
func (m *LeadMutation) CompanyName() (r string, exists bool) {
	v := m.company_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyName returns the old "company_name" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCompanyName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyName: %w", err)
	}
	return oldValue.CompanyName, nil
}

// ClearCompanyName clears the value of the "company_name" field.
func (m *LeadMutation) ClearCompanyName() {
	m.company_name = nil
	m.clearedFields[lead.FieldCompanyName] = struct{}{}
}

// CompanyNameCleared returns if the "company_name" field was cleared in this mutation.
func (m *LeadMutation) CompanyNameCleared() bool {
	_, ok := m.clearedFields[lead.FieldCompanyName]
	return ok
}

// ResetCompanyName resets all changes to the "company_name" field.
func (m *LeadMutation) ResetCompanyName() {
	m.company_name = nil
	delete(m.clearedFields, lead.FieldCompanyName)
}

// SetNotes sets the "notes" field.
func (m *LeadMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *LeadMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *LeadMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[lead.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *LeadMutation) NotesCleared() bool {
	_, ok := m.clearedFields[lead.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *LeadMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, lead.FieldNotes)
}

// SetStatus sets the "status" field.
func (m *LeadMutation) SetStatus(l lead.Status) {
	m.status = &l
}

// Status returns the value of the "status" field in the mutation.
func (m *LeadMutation) Status() (r lead.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldStatus(ctx context.Context) (v lead.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LeadMutation) ResetStatus() {
	m.status = nil
}

// SetAdminNotes sets the "admin_notes" field.
func (m *LeadMutation) SetAdminNotes(s string) {
	m.admin_notes = &s
}

// AdminNotes returns the value of the "admin_notes" field in the mutation.
func (m *LeadMutation) AdminNotes() (r string, exists bool) {
	v := m.admin_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminNotes returns the old "admin_notes" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldAdminNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminNotes: %w", err)
	}
	return oldValue.AdminNotes, nil
}

// ClearAdminNotes clears the value of the "admin_notes" field.
func (m *LeadMutation) ClearAdminNotes() {
	m.admin_notes = nil
	m.clearedFields[lead.FieldAdminNotes] = struct{}{}
}

// AdminNotesCleared returns if the "admin_notes" field was cleared in this mutation.
func (m *LeadMutation) AdminNotesCleared() bool {
	_, ok := m.clearedFields[lead.FieldAdminNotes]
	return ok
}

// ResetAdminNotes resets all changes to the "admin_notes" field.
func (m *LeadMutation) ResetAdminNotes() {
	m.admin_notes = nil
	delete(m.clearedFields, lead.FieldAdminNotes)
}

// SetCrmSyncStatus sets the "crm_sync_status" field.
func (m *LeadMutation) SetCrmSyncStatus(lss lead.CrmSyncStatus) {
	m.crm_sync_status = &lss
}

// CrmSyncStatus returns the value of the "crm_sync_status" field in the mutation.
func (m *LeadMutation) CrmSyncStatus() (r lead.CrmSyncStatus, exists bool) {
	v := m.crm_sync_status
	if v == nil {
		return
	}
	return *v, true
}

// OldCrmSyncStatus returns the old "crm_sync_status" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCrmSyncStatus(ctx context.Context) (v lead.CrmSyncStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCrmSyncStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCrmSyncStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCrmSyncStatus: %w", err)
	}
	return oldValue.CrmSyncStatus, nil
}

// ResetCrmSyncStatus resets all changes to the "crm_sync_status" field.
func (m *LeadMutation) ResetCrmSyncStatus() {
	m.crm_sync_status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LeadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LeadMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LeadMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LeadMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearClient clears the "client" edge to the Tenant entity.
func (m *LeadMutation) ClearClient() {
	m.clearedclient = true
	m.clearedFields[lead.FieldClientID] = struct{}{}
}

// ClientCleared reports if the "client" edge to the Tenant entity was cleared.
func (m *LeadMutation) ClientCleared() bool {
	return m.clearedclient
}

// ClientIDs returns the "client" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClientID instead. It exists only for internal usage by the builders.
func (m *LeadMutation) ClientIDs() (ids []string) {
	if id := m.client; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClient resets all changes to the "client" edge.
func (m *LeadMutation) ResetClient() {
	m.client = nil
	m.clearedclient = false
}

// Where appends a list predicates to the LeadMutation builder.
func (m *LeadMutation) Where(ps ...predicate.Lead) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lead, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lead).
func (m *LeadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeadMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.client != nil {
		fields = append(fields, lead.FieldClientID)
	}
	if m.conversation_id != nil {
		fields = append(fields, lead.FieldConversationID)
	}
	if m.name != nil {
		fields = append(fields, lead.FieldName)
	}
	if m.email != nil {
		fields = append(fields, lead.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, lead.FieldPhone)
	}
	if m.company_name != nil {
		fields = append(fields, lead.FieldCompanyName)
	}
	if m.notes != nil {
		fields = append(fields, lead.FieldNotes)
	}
	if m.status != nil {
		fields = append(fields, lead.FieldStatus)
	}
	if m.admin_notes != nil {
		fields = append(fields, lead.FieldAdminNotes)
	}
	if m.crm_sync_status != nil {
		fields = append(fields, lead.FieldCrmSyncStatus)
	}
	if m.created_at != nil {
		fields = append(fields, lead.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, lead.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lead.FieldClientID:
		return m.ClientID()
	case lead.FieldConversationID:
		return m.ConversationID()
	case lead.FieldName:
		return m.Name()
	case lead.FieldEmail:
		return m.Email()
	case lead.FieldPhone:
		return m.Phone()
	case lead.FieldCompanyName:
		return m.CompanyName()
	case lead.FieldNotes:
		return m.Notes()
	case lead.FieldStatus:
		return m.Status()
	case lead.FieldAdminNotes:
		return m.AdminNotes()
	case lead.FieldCrmSyncStatus:
		return m.CrmSyncStatus()
	case lead.FieldCreatedAt:
		return m.CreatedAt()
	case lead.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lead.FieldClientID:
		return m.OldClientID(ctx)
	case lead.FieldConversationID:
		return m.OldConversationID(ctx)
	case lead.FieldName:
		return m.OldName(ctx)
	case lead.FieldEmail:
		return m.OldEmail(ctx)
	case lead.FieldPhone:
		return m.OldPhone(ctx)
	case lead.FieldCompanyName:
		return m.OldCompanyName(ctx)
	case lead.FieldNotes:
		return m.OldNotes(ctx)
	case lead.FieldStatus:
		return m.OldStatus(ctx)
	case lead.FieldAdminNotes:
		return m.OldAdminNotes(ctx)
	case lead.FieldCrmSyncStatus:
		return m.OldCrmSyncStatus(ctx)
	case lead.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case lead.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Lead field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lead.FieldClientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case lead.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case lead.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case lead.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case lead.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case lead.FieldCompanyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyName(v)
		return nil
	case lead.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case lead.FieldStatus:
		v, ok := value.(lead.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case lead.FieldAdminNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminNotes(v)
		return nil
	case lead.FieldCrmSyncStatus:
		v, ok := value.(lead.CrmSyncStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCrmSyncStatus(v)
		return nil
	case lead.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case lead.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeadMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeadMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Lead numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lead.FieldConversationID) {
		fields = append(fields, lead.FieldConversationID)
	}
	if m.FieldCleared(lead.FieldName) {
		fields = append(fields, lead.FieldName)
	}
	if m.FieldCleared(lead.FieldEmail) {
		fields = append(fields, lead.FieldEmail)
	}
	if m.FieldCleared(lead.FieldPhone) {
		fields = append(fields, lead.FieldPhone)
	}
	if m.FieldCleared(lead.FieldCompanyName) {
		fields = append(fields, lead.FieldCompanyName)
	}
	if m.FieldCleared(lead.FieldNotes) {
		fields = append(fields, lead.FieldNotes)
	}
	if m.FieldCleared(lead.FieldAdminNotes) {
		fields = append(fields, lead.FieldAdminNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeadMutation) ClearField(name string) error {
	switch name {
	case lead.FieldConversationID:
		m.ClearConversationID()
		return nil
	case lead.FieldName:
		m.ClearName()
		return nil
	case lead.FieldEmail:
		m.ClearEmail()
		return nil
	case lead.FieldPhone:
		m.ClearPhone()
		return nil
	case lead.FieldCompanyName:
		m.ClearCompanyName()
		return nil
	case lead.FieldNotes:
		m.ClearNotes()
		return nil
	case lead.FieldAdminNotes:
		m.ClearAdminNotes()
		return nil
	}
	return fmt.Errorf("unknown Lead nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeadMutation) ResetField(name string) error {
	switch name {
	case lead.FieldClientID:
		m.ResetClientID()
		return nil
	case lead.FieldConversationID:
		m.ResetConversationID()
		return nil
	case lead.FieldName:
		m.ResetName()
		return nil
	case lead.FieldEmail:
		m.ResetEmail()
		return nil
	case lead.FieldPhone:
		m.ResetPhone()
		return nil
	case lead.FieldCompanyName:
		m.ResetCompanyName()
		return nil
	case lead.FieldNotes:
		m.ResetNotes()
		return nil
	case lead.FieldStatus:
		m.ResetStatus()
		return nil
	case lead.FieldAdminNotes:
		m.ResetAdminNotes()
		return nil
	case lead.FieldCrmSyncStatus:
		m.ResetCrmSyncStatus()
		return nil
	case lead.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case lead.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeadMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.client != nil {
		edges = append(edges, lead.EdgeClient)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case lead.EdgeClient:
		if id := m.client; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeadMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedclient {
		edges = append(edges, lead.EdgeClient)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeadMutation) EdgeCleared(name string) bool {
	switch name {
	case lead.EdgeClient:
		return m.clearedclient
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeadMutation) ClearEdge(name string) error {
	switch name {
	case lead.EdgeClient:
		m.ClearClient()
		return nil
	}
	return fmt.Errorf("unknown Lead unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeadMutation) ResetEdge(name string) error {
	switch name {
	case lead.EdgeClient:
		m.ResetClient()
		return nil
	}
	return fmt.Errorf("unknown Lead edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	role                *message.Role
	content             *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	conversation        *string
	clearedconversation bool
	done                bool
	oldValue            func(context.Context) (*Message, error)
	predicates          []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *MessageMutation) SetConversationID(s string) {
	m.conversation = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *MessageMutation) ConversationID() (r string, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *MessageMutation) ResetConversationID() {
	m.conversation = nil
}

// SetRole sets the "role" field.
func (m *MessageMutation) SetRole(value message.Role) {
	m.role = &value
}

// Role returns the value of the "role" field in the mutation.
func (m *MessageMutation) Role() (r message.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRole(ctx context.Context) (v message.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *MessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (m *MessageMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[message.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the Conversation entity was cleared.
func (m *MessageMutation) ConversationCleared() bool {
	return m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) ConversationIDs() (ids []string) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *MessageMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.conversation != nil {
		fields = append(fields, message.FieldConversationID)
	}
	if m.role != nil {
		fields = append(fields, message.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldConversationID:
		return m.ConversationID()
	case message.FieldRole:
		return m.Role()
	case message.FieldContent:
		return m.Content()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldConversationID:
		return m.OldConversationID(ctx)
	case message.FieldRole:
		return m.OldRole(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case message.FieldRole:
		v, ok := value.(message.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldConversationID:
		m.ResetConversationID()
		return nil
	case message.FieldRole:
		m.ResetRole()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.conversation != nil {
		edges = append(edges, message.EdgeConversation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedconversation {
		edges = append(edges, message.EdgeConversation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeConversation:
		return m.clearedconversation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeConversation:
		m.ClearConversation()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeConversation:
		m.ResetConversation()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// SparkEventMutation represents an operation that mutates the SparkEvent nodes in the graph.
type SparkEventMutation struct {
	config
	op              Op
	typ             string
	id              *string
	client_id       *string
	conversation_id *string
	event_type      *string
	metadata        *map[string]interface{}
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*SparkEvent, error)
	predicates      []predicate.SparkEvent
}

var _ ent.Mutation = (*SparkEventMutation)(nil)

// sparkeventOption allows management of the mutation configuration using functional options.
type sparkeventOption func(*SparkEventMutation)

// newSparkEventMutation creates new mutation for the SparkEvent entity.
func newSparkEventMutation(c config, op Op, opts ...sparkeventOption) *SparkEventMutation {
	m := &SparkEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSparkEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSparkEventID sets the ID field of the mutation.
func withSparkEventID(id string) sparkeventOption {
	return func(m *SparkEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SparkEvent
		)
		m.oldValue = func(ctx context.Context) (*SparkEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SparkEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSparkEvent sets the old SparkEvent of the mutation.
func withSparkEvent(node *SparkEvent) sparkeventOption {
	return func(m *SparkEventMutation) {
		m.oldValue = func(context.Context) (*SparkEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SparkEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SparkEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SparkEvent entities.
func (m *SparkEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SparkEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SparkEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SparkEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientID sets the "client_id" field.
func (m *SparkEventMutation) SetClientID(s string) {
	m.client_id = &s
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *SparkEventMutation) ClientID() (r string, exists bool) {
	v := m.client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the SparkEvent entity.
// If the SparkEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SparkEventMutation) OldClientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *SparkEventMutation) ResetClientID() {
	m.client_id = nil
}

// SetConversationID sets the "conversation_id" field.
func (m *SparkEventMutation) SetConversationID(s string) {
	m.conversation_id = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *SparkEventMutation) ConversationID() (r string, exists bool) {
	v := m.conversation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the SparkEvent entity.
// If the SparkEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SparkEventMutation) OldConversationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ClearConversationID clears the value of the "conversation_id" field.
func (m *SparkEventMutation) ClearConversationID() {
	m.conversation_id = nil
	m.clearedFields[sparkevent.FieldConversationID] = struct{}{}
}

// ConversationIDCleared returns if the "conversation_id" field was cleared in this mutation.
func (m *SparkEventMutation) ConversationIDCleared() bool {
	_, ok := m.clearedFields[sparkevent.FieldConversationID]
	return ok
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *SparkEventMutation) ResetConversationID() {
	m.conversation_id = nil
	delete(m.clearedFields, sparkevent.FieldConversationID)
}

// SetEventType sets the "event_type" field.
func (m *SparkEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *SparkEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the SparkEvent entity.
// If the SparkEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SparkEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *SparkEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetMetadata sets the "metadata" field.
func (m *SparkEventMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *SparkEventMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the SparkEvent entity.
// If the SparkEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SparkEventMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *SparkEventMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[sparkevent.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *SparkEventMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[sparkevent.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *SparkEventMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, sparkevent.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *SparkEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SparkEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SparkEvent entity.
// If the SparkEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SparkEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SparkEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SparkEventMutation builder.
func (m *SparkEventMutation) Where(ps ...predicate.SparkEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SparkEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SparkEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SparkEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SparkEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SparkEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SparkEvent).
func (m *SparkEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SparkEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.client_id != nil {
		fields = append(fields, sparkevent.FieldClientID)
	}
	if m.conversation_id != nil {
		fields = append(fields, sparkevent.FieldConversationID)
	}
	if m.event_type != nil {
		fields = append(fields, sparkevent.FieldEventType)
	}
	if m.metadata != nil {
		fields = append(fields, sparkevent.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, sparkevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SparkEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sparkevent.FieldClientID:
		return m.ClientID()
	case sparkevent.FieldConversationID:
		return m.ConversationID()
	case sparkevent.FieldEventType:
		return m.EventType()
	case sparkevent.FieldMetadata:
		return m.Metadata()
	case sparkevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SparkEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sparkevent.FieldClientID:
		return m.OldClientID(ctx)
	case sparkevent.FieldConversationID:
		return m.OldConversationID(ctx)
	case sparkevent.FieldEventType:
		return m.OldEventType(ctx)
	case sparkevent.FieldMetadata:
		return m.OldMetadata(ctx)
	case sparkevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SparkEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SparkEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sparkevent.FieldClientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case sparkevent.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case sparkevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case sparkevent.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case sparkevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SparkEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SparkEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SparkEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SparkEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SparkEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SparkEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sparkevent.FieldConversationID) {
		fields = append(fields, sparkevent.FieldConversationID)
	}
	if m.FieldCleared(sparkevent.FieldMetadata) {
		fields = append(fields, sparkevent.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SparkEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SparkEventMutation) ClearField(name string) error {
	switch name {
	case sparkevent.FieldConversationID:
		m.ClearConversationID()
		return nil
	case sparkevent.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown SparkEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SparkEventMutation) ResetField(name string) error {
	switch name {
	case sparkevent.FieldClientID:
		m.ResetClientID()
		return nil
	case sparkevent.FieldConversationID:
		m.ResetConversationID()
		return nil
	case sparkevent.FieldEventType:
		m.ResetEventType()
		return nil
	case sparkevent.FieldMetadata:
		m.ResetMetadata()
		return nil
	case sparkevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SparkEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SparkEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SparkEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SparkEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SparkEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SparkEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SparkEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SparkEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SparkEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SparkEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SparkEvent edge %s", name)
}

// TenantMutation represents an operation that mutates the Tenant nodes in the graph.
type TenantMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	name                   *string
	slug                   *string
	api_key_hash           *string
	user_id                *string
	active                 *bool
	max_turns              *int
	addmax_turns           *int
	rate_limit_rpm         *int
	addrate_limit_rpm      *int
	settling_config        *models.SettlingConfig
	client_orientation     *string
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	conversations          map[string]struct{}
	removedconversations   map[string]struct{}
	clearedconversations   bool
	knowledge_items        map[string]struct{}
	removedknowledge_items map[string]struct{}
	clearedknowledge_items bool
	document_chunks        map[string]struct{}
	removeddocument_chunks map[string]struct{}
	cleareddocument_chunks bool
	leads                  map[string]struct{}
	removedleads           map[string]struct{}
	clearedleads           bool
	done                   bool
	oldValue               func(context.Context) (*Tenant, error)
	predicates             []predicate.Tenant
}

var _ ent.Mutation = (*TenantMutation)(nil)

// tenantOption allows management of the mutation configuration using functional options.
type tenantOption func(*TenantMutation)

// newTenantMutation creates new mutation for the Tenant entity.
func newTenantMutation(c config, op Op, opts ...tenantOption) *TenantMutation {
	m := &TenantMutation{
		config:        c,
		op:            op,
		typ:           TypeTenant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTenantID sets the ID field of the mutation.
func withTenantID(id string) tenantOption {
	return func(m *TenantMutation) {
		var (
			err   error
			once  sync.Once
			value *Tenant
		)
		m.oldValue = func(ctx context.Context) (*Tenant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tenant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTenant sets the old Tenant of the mutation.
func withTenant(node *Tenant) tenantOption {
	return func(m *TenantMutation) {
		m.oldValue = func(context.Context) (*Tenant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TenantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TenantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Tenant entities.
func (m *TenantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TenantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TenantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tenant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TenantMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TenantMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TenantMutation) ResetName() {
	m.name = nil
}

// SetSlug sets the "slug" field.
func (m *TenantMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *TenantMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *TenantMutation) ResetSlug() {
	m.slug = nil
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (m *TenantMutation) SetAPIKeyHash(s string) {
	m.api_key_hash = &s
}

// APIKeyHash returns the value of the "api_key_hash" field in the mutation.
func (m *TenantMutation) APIKeyHash() (r string, exists bool) {
	v := m.api_key_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIKeyHash returns the old "api_key_hash" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldAPIKeyHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIKeyHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIKeyHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIKeyHash: %w", err)
	}
	return oldValue.APIKeyHash, nil
}

// ResetAPIKeyHash resets all changes to the "api_key_hash" field.
func (m *TenantMutation) ResetAPIKeyHash() {
	m.api_key_hash = nil
}

// SetUserID sets the "user_id" field.
func (m *TenantMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TenantMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *TenantMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[tenant.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *TenantMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[tenant.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TenantMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, tenant.FieldUserID)
}

// SetActive sets the "active" field.
func (m *TenantMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *TenantMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *TenantMutation) ResetActive() {
	m.active = nil
}

// SetMaxTurns sets the "max_turns" field.
func (m *TenantMutation) SetMaxTurns(i int) {
	m.max_turns = &i
	m.addmax_turns = nil
}

// MaxTurns returns the value of the "max_turns" field in the mutation.
func (m *TenantMutation) MaxTurns() (r int, exists bool) {
	v := m.max_turns
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxTurns returns the old "max_turns" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldMaxTurns(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxTurns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxTurns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxTurns: %w", err)
	}
	return oldValue.MaxTurns, nil
}

// AddMaxTurns adds i to the "max_turns" field.
func (m *TenantMutation) AddMaxTurns(i int) {
	if m.addmax_turns != nil {
		*m.addmax_turns += i
	} else {
		m.addmax_turns = &i
	}
}

// AddedMaxTurns returns the value that was added to the "max_turns" field in this mutation.
func (m *TenantMutation) AddedMaxTurns() (r int, exists bool) {
	v := m.addmax_turns
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxTurns resets all changes to the "max_turns" field.
func (m *TenantMutation) ResetMaxTurns() {
	m.max_turns = nil
	m.addmax_turns = nil
}

// SetRateLimitRpm sets the "rate_limit_rpm" field.
func (m *TenantMutation) SetRateLimitRpm(i int) {
	m.rate_limit_rpm = &i
	m.addrate_limit_rpm = nil
}

// RateLimitRpm returns the value of the "rate_limit_rpm" field in the mutation.
func (m *TenantMutation) RateLimitRpm() (r int, exists bool) {
	v := m.rate_limit_rpm
	if v == nil {
		return
	}
	return *v, true
}

// OldRateLimitRpm returns the old "rate_limit_rpm" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldRateLimitRpm(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRateLimitRpm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRateLimitRpm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRateLimitRpm: %w", err)
	}
	return oldValue.RateLimitRpm, nil
}

// AddRateLimitRpm adds i to the "rate_limit_rpm" field.
func (m *TenantMutation) AddRateLimitRpm(i int) {
	if m.addrate_limit_rpm != nil {
		*m.addrate_limit_rpm += i
	} else {
		m.addrate_limit_rpm = &i
	}
}

// AddedRateLimitRpm returns the value that was added to the "rate_limit_rpm" field in this mutation.
func (m *TenantMutation) AddedRateLimitRpm() (r int, exists bool) {
	v := m.addrate_limit_rpm
	if v == nil {
		return
	}
	return *v, true
}

// ResetRateLimitRpm resets all changes to the "rate_limit_rpm" field.
func (m *TenantMutation) ResetRateLimitRpm() {
	m.rate_limit_rpm = nil
	m.addrate_limit_rpm = nil
}

// SetSettlingConfig sets the "settling_config" field.
func (m *TenantMutation) SetSettlingConfig(mc models.SettlingConfig) {
	m.settling_config = &mc
}

// SettlingConfig returns the value of the "settling_config" field in the mutation.
func (m *TenantMutation) SettlingConfig() (r models.SettlingConfig, exists bool) {
	v := m.settling_config
	if v == nil {
		return
	}
	return *v, true
}

// OldSettlingConfig returns the old "settling_config" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldSettlingConfig(ctx context.Context) (v models.SettlingConfig, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettlingConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettlingConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettlingConfig: %w", err)
	}
	return oldValue.SettlingConfig, nil
}

// ClearSettlingConfig clears the value of the "settling_config" field.
func (m *TenantMutation) ClearSettlingConfig() {
	m.settling_config = nil
	m.clearedFields[tenant.FieldSettlingConfig] = struct{}{}
}

// SettlingConfigCleared returns if the "settling_config" field was cleared in this mutation.
func (m *TenantMutation) SettlingConfigCleared() bool {
	_, ok := m.clearedFields[tenant.FieldSettlingConfig]
	return ok
}

// ResetSettlingConfig resets all changes to the "settling_config" field.
func (m *TenantMutation) ResetSettlingConfig() {
	m.settling_config = nil
	delete(m.clearedFields, tenant.FieldSettlingConfig)
}

// SetClientOrientation sets the "client_orientation" field.
func (m *TenantMutation) SetClientOrientation(s string) {
	m.client_orientation = &s
}

// ClientOrientation returns the value of the "client_orientation" field in the mutation.
func (m *TenantMutation) ClientOrientation() (r string, exists bool) {
	v := m.client_orientation
	if v == nil {
		return
	}
	return *v, true
}

// OldClientOrientation returns the old "client_orientation" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldClientOrientation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientOrientation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientOrientation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientOrientation: %w", err)
	}
	return oldValue.ClientOrientation, nil
}

// ClearClientOrientation clears the value of the "client_orientation" field.
func (m *TenantMutation) ClearClientOrientation() {
	m.client_orientation = nil
	m.clearedFields[tenant.FieldClientOrientation] = struct{}{}
}

// ClientOrientationCleared returns if the "client_orientation" field was cleared in this mutation.
func (m *TenantMutation) ClientOrientationCleared() bool {
	_, ok := m.clearedFields[tenant.FieldClientOrientation]
	return ok
}

// ResetClientOrientation resets all changes to the "client_orientation" field.
func (m *TenantMutation) ResetClientOrientation() {
	m.client_orientation = nil
	delete(m.clearedFields, tenant.FieldClientOrientation)
}

// SetCreatedAt sets the "created_at" field.
func (m *TenantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TenantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TenantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TenantMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TenantMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TenantMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by ids.
func (m *TenantMutation) AddConversationIDs(ids ...string) {
	if m.conversations == nil {
		m.conversations = make(map[string]struct{})
	}
	for i := range ids {
		m.conversations[ids[i]] = struct{}{}
	}
}

// ClearConversations clears the "conversations" edge to the Conversation entity.
func (m *TenantMutation) ClearConversations() {
	m.clearedconversations = true
}

// ConversationsCleared reports if the "conversations" edge to the Conversation entity was cleared.
func (m *TenantMutation) ConversationsCleared() bool {
	return m.clearedconversations
}

// RemoveConversationIDs removes the "conversations" edge to the Conversation entity by IDs.
func (m *TenantMutation) RemoveConversationIDs(ids ...string) {
	if m.removedconversations == nil {
		m.removedconversations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.conversations, ids[i])
		m.removedconversations[ids[i]] = struct{}{}
	}
}

// RemovedConversations returns the removed IDs of the "conversations" edge to the Conversation entity.
func (m *TenantMutation) RemovedConversationsIDs() (ids []string) {
	for id := range m.removedconversations {
		ids = append(ids, id)
	}
	return
}

// ConversationsIDs returns the "conversations" edge IDs in the mutation.
func (m *TenantMutation) ConversationsIDs() (ids []string) {
	for id := range m.conversations {
		ids = append(ids, id)
	}
	return
}

// ResetConversations resets all changes to the "conversations" edge.
func (m *TenantMutation) ResetConversations() {
	m.conversations = nil
	m.clearedconversations = false
	m.removedconversations = nil
}

// AddKnowledgeItemIDs adds the "knowledge_items" edge to the KnowledgeItem entity by ids.
func (m *TenantMutation) AddKnowledgeItemIDs(ids ...string) {
	if m.knowledge_items == nil {
		m.knowledge_items = make(map[string]struct{})
	}
	for i := range ids {
		m.knowledge_items[ids[i]] = struct{}{}
	}
}

// ClearKnowledgeItems clears the "knowledge_items" edge to the KnowledgeItem entity.
func (m *TenantMutation) ClearKnowledgeItems() {
	m.clearedknowledge_items = true
}

// KnowledgeItemsCleared reports if the "knowledge_items" edge to the KnowledgeItem entity was cleared.
func (m *TenantMutation) KnowledgeItemsCleared() bool {
	return m.clearedknowledge_items
}

// RemoveKnowledgeItemIDs removes the "knowledge_items" edge to the KnowledgeItem entity by IDs.
func (m *TenantMutation) RemoveKnowledgeItemIDs(ids ...string) {
	if m.removedknowledge_items == nil {
		m.removedknowledge_items = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.knowledge_items, ids[i])
		m.removedknowledge_items[ids[i]] = struct{}{}
	}
}

// RemovedKnowledgeItems returns the removed IDs of the "knowledge_items" edge to the KnowledgeItem entity.
func (m *TenantMutation) RemovedKnowledgeItemsIDs() (ids []string) {
	for id := range m.removedknowledge_items {
		ids = append(ids, id)
	}
	return
}

// KnowledgeItemsIDs returns the "knowledge_items" edge IDs in the mutation.
func (m *TenantMutation) KnowledgeItemsIDs() (ids []string) {
	for id := range m.knowledge_items {
		ids = append(ids, id)
	}
	return
}

// ResetKnowledgeItems resets all changes to the "knowledge_items" edge.
func (m *TenantMutation) ResetKnowledgeItems() {
	m.knowledge_items = nil
	m.clearedknowledge_items = false
	m.removedknowledge_items = nil
}

// AddDocumentChunkIDs adds the "document_chunks" edge to the DocumentChunk entity by ids.
func (m *TenantMutation) AddDocumentChunkIDs(ids ...string) {
	if m.document_chunks == nil {
		m.document_chunks = make(map[string]struct{})
	}
	for i := range ids {
		m.document_chunks[ids[i]] = struct{}{}
	}
}

// ClearDocumentChunks clears the "document_chunks" edge to the DocumentChunk entity.
func (m *TenantMutation) ClearDocumentChunks() {
	m.cleareddocument_chunks = true
}

// DocumentChunksCleared reports if the "document_chunks" edge to the DocumentChunk entity was cleared.
func (m *TenantMutation) DocumentChunksCleared() bool {
	return m.cleareddocument_chunks
}

// RemoveDocumentChunkIDs removes the "document_chunks" edge to the DocumentChunk entity by IDs.
func (m *TenantMutation) RemoveDocumentChunkIDs(ids ...string) {
	if m.removeddocument_chunks == nil {
		m.removeddocument_chunks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.document_chunks, ids[i])
		m.removeddocument_chunks[ids[i]] = struct{}{}
	}
}

// RemovedDocumentChunks returns the removed IDs of the "document_chunks" edge to the DocumentChunk entity.
func (m *TenantMutation) RemovedDocumentChunksIDs() (ids []string) {
	for id := range m.removeddocument_chunks {
		ids = append(ids, id)
	}
	return
}

// DocumentChunksIDs returns the "document_chunks" edge IDs in the mutation.
func (m *TenantMutation) DocumentChunksIDs() (ids []string) {
	for id := range m.document_chunks {
		ids = append(ids, id)
	}
	return
}

// ResetDocumentChunks resets all changes to the "document_chunks" edge.
func (m *TenantMutation) ResetDocumentChunks() {
	m.document_chunks = nil
	m.cleareddocument_chunks = false
	m.removeddocument_chunks = nil
}

// AddLeadIDs adds the "leads" edge to the Lead entity by ids.
func (m *TenantMutation) AddLeadIDs(ids ...string) {
	if m.leads == nil {
		m.leads = make(map[string]struct{})
	}
	for i := range ids {
		m.leads[ids[i]] = struct{}{}
	}
}

// ClearLeads clears the "leads" edge to the Lead entity.
func (m *TenantMutation) ClearLeads() {
	m.clearedleads = true
}

// LeadsCleared reports if the "leads" edge to the Lead entity was cleared.
func (m *TenantMutation) LeadsCleared() bool {
	return m.clearedleads
}

// RemoveLeadIDs removes the "leads" edge to the Lead entity by IDs.
func (m *TenantMutation) RemoveLeadIDs(ids ...string) {
	if m.removedleads == nil {
		m.removedleads = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.leads, ids[i])
		m.removedleads[ids[i]] = struct{}{}
	}
}

// RemovedLeads returns the removed IDs of the "leads" edge to the Lead entity.
func (m *TenantMutation) RemovedLeadsIDs() (ids []string) {
	for id := range m.removedleads {
		ids = append(ids, id)
	}
	return
}

// LeadsIDs returns the "leads" edge IDs in the mutation.
func (m *TenantMutation) LeadsIDs() (ids []string) {
	for id := range m.leads {
		ids = append(ids, id)
	}
	return
}

// ResetLeads resets all changes to the "leads" edge.
func (m *TenantMutation) ResetLeads() {
	m.leads = nil
	m.clearedleads = false
	m.removedleads = nil
}

// Where appends a list predicates to the TenantMutation builder.
func (m *TenantMutation) Where(ps ...predicate.Tenant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TenantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TenantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tenant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TenantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TenantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tenant).
func (m *TenantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TenantMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.name != nil {
		fields = append(fields, tenant.FieldName)
	}
	if m.slug != nil {
		fields = append(fields, tenant.FieldSlug)
	}
	if m.api_key_hash != nil {
		fields = append(fields, tenant.FieldAPIKeyHash)
	}
	if m.user_id != nil {
		fields = append(fields, tenant.FieldUserID)
	}
	if m.active != nil {
		fields = append(fields, tenant.FieldActive)
	}
	if m.max_turns != nil {
		fields = append(fields, tenant.FieldMaxTurns)
	}
	if m.rate_limit_rpm != nil {
		fields = append(fields, tenant.FieldRateLimitRpm)
	}
	if m.settling_config != nil {
		fields = append(fields, tenant.FieldSettlingConfig)
	}
	if m.client_orientation != nil {
		fields = append(fields, tenant.FieldClientOrientation)
	}
	if m.created_at != nil {
		fields = append(fields, tenant.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tenant.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TenantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tenant.FieldName:
		return m.Name()
	case tenant.FieldSlug:
		return m.Slug()
	case tenant.FieldAPIKeyHash:
		return m.APIKeyHash()
	case tenant.FieldUserID:
		return m.UserID()
	case tenant.FieldActive:
		return m.Active()
	case tenant.FieldMaxTurns:
		return m.MaxTurns()
	case tenant.FieldRateLimitRpm:
		return m.RateLimitRpm()
	case tenant.FieldSettlingConfig:
		return m.SettlingConfig()
	case tenant.FieldClientOrientation:
		return m.ClientOrientation()
	case tenant.FieldCreatedAt:
		return m.CreatedAt()
	case tenant.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TenantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tenant.FieldName:
		return m.OldName(ctx)
	case tenant.FieldSlug:
		return m.OldSlug(ctx)
	case tenant.FieldAPIKeyHash:
		return m.OldAPIKeyHash(ctx)
	case tenant.FieldUserID:
		return m.OldUserID(ctx)
	case tenant.FieldActive:
		return m.OldActive(ctx)
	case tenant.FieldMaxTurns:
		return m.OldMaxTurns(ctx)
	case tenant.FieldRateLimitRpm:
		return m.OldRateLimitRpm(ctx)
	case tenant.FieldSettlingConfig:
		return m.OldSettlingConfig(ctx)
	case tenant.FieldClientOrientation:
		return m.OldClientOrientation(ctx)
	case tenant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tenant.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Tenant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tenant.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tenant.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case tenant.FieldAPIKeyHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIKeyHash(v)
		return nil
	case tenant.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case tenant.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case tenant.FieldMaxTurns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxTurns(v)
		return nil
	case tenant.FieldRateLimitRpm:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRateLimitRpm(v)
		return nil
	case tenant.FieldSettlingConfig:
		v, ok := value.(models.SettlingConfig)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettlingConfig(v)
		return nil
	case tenant.FieldClientOrientation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientOrientation(v)
		return nil
	case tenant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tenant.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Tenant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TenantMutation) AddedFields() []string {
	var fields []string
	if m.addmax_turns != nil {
		fields = append(fields, tenant.FieldMaxTurns)
	}
	if m.addrate_limit_rpm != nil {
		fields = append(fields, tenant.FieldRateLimitRpm)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TenantMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tenant.FieldMaxTurns:
		return m.AddedMaxTurns()
	case tenant.FieldRateLimitRpm:
		return m.AddedRateLimitRpm()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tenant.FieldMaxTurns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxTurns(v)
		return nil
	case tenant.FieldRateLimitRpm:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRateLimitRpm(v)
		return nil
	}
	return fmt.Errorf("unknown Tenant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TenantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tenant.FieldUserID) {
		fields = append(fields, tenant.FieldUserID)
	}
	if m.FieldCleared(tenant.FieldSettlingConfig) {
		fields = append(fields, tenant.FieldSettlingConfig)
	}
	if m.FieldCleared(tenant.FieldClientOrientation) {
		fields = append(fields, tenant.FieldClientOrientation)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TenantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TenantMutation) ClearField(name string) error {
	switch name {
	case tenant.FieldUserID:
		m.ClearUserID()
		return nil
	case tenant.FieldSettlingConfig:
		m.ClearSettlingConfig()
		return nil
	case tenant.FieldClientOrientation:
		m.ClearClientOrientation()
		return nil
	}
	return fmt.Errorf("unknown Tenant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TenantMutation) ResetField(name string) error {
	switch name {
	case tenant.FieldName:
		m.ResetName()
		return nil
	case tenant.FieldSlug:
		m.ResetSlug()
		return nil
	case tenant.FieldAPIKeyHash:
		m.ResetAPIKeyHash()
		return nil
	case tenant.FieldUserID:
		m.ResetUserID()
		return nil
	case tenant.FieldActive:
		m.ResetActive()
		return nil
	case tenant.FieldMaxTurns:
		m.ResetMaxTurns()
		return nil
	case tenant.FieldRateLimitRpm:
		m.ResetRateLimitRpm()
		return nil
	case tenant.FieldSettlingConfig:
		m.ResetSettlingConfig()
		return nil
	case tenant.FieldClientOrientation:
		m.ResetClientOrientation()
		return nil
	case tenant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tenant.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Tenant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TenantMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.conversations != nil {
		edges = append(edges, tenant.EdgeConversations)
	}
	if m.knowledge_items != nil {
		edges = append(edges, tenant.EdgeKnowledgeItems)
	}
	if m.document_chunks != nil {
		edges = append(edges, tenant.EdgeDocumentChunks)
	}
	if m.leads != nil {
		edges = append(edges, tenant.EdgeLeads)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TenantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tenant.EdgeConversations:
		ids := make([]ent.Value, 0, len(m.conversations))
		for id := range m.conversations {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeKnowledgeItems:
		ids := make([]ent.Value, 0, len(m.knowledge_items))
		for id := range m.knowledge_items {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeDocumentChunks:
		ids := make([]ent.Value, 0, len(m.document_chunks))
		for id := range m.document_chunks {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeLeads:
		ids := make([]ent.Value, 0, len(m.leads))
		for id := range m.leads {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TenantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedconversations != nil {
		edges = append(edges, tenant.EdgeConversations)
	}
	if m.removedknowledge_items != nil {
		edges = append(edges, tenant.EdgeKnowledgeItems)
	}
	if m.removeddocument_chunks != nil {
		edges = append(edges, tenant.EdgeDocumentChunks)
	}
	if m.removedleads != nil {
		edges = append(edges, tenant.EdgeLeads)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TenantMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case tenant.EdgeConversations:
		ids := make([]ent.Value, 0, len(m.removedconversations))
		for id := range m.removedconversations {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeKnowledgeItems:
		ids := make([]ent.Value, 0, len(m.removedknowledge_items))
		for id := range m.removedknowledge_items {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeDocumentChunks:
		ids := make([]ent.Value, 0, len(m.removeddocument_chunks))
		for id := range m.removeddocument_chunks {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeLeads:
		ids := make([]ent.Value, 0, len(m.removedleads))
		for id := range m.removedleads {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TenantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedconversations {
		edges = append(edges, tenant.EdgeConversations)
	}
	if m.clearedknowledge_items {
		edges = append(edges, tenant.EdgeKnowledgeItems)
	}
	if m.cleareddocument_chunks {
		edges = append(edges, tenant.EdgeDocumentChunks)
	}
	if m.clearedleads {
		edges = append(edges, tenant.EdgeLeads)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TenantMutation) EdgeCleared(name string) bool {
	switch name {
	case tenant.EdgeConversations:
		return m.clearedconversations
	case tenant.EdgeKnowledgeItems:
		return m.clearedknowledge_items
	case tenant.EdgeDocumentChunks:
		return m.cleareddocument_chunks
	case tenant.EdgeLeads:
		return m.clearedleads
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TenantMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Tenant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TenantMutation) ResetEdge(name string) error {
	switch name {
	case tenant.EdgeConversations:
		m.ResetConversations()
		return nil
	case tenant.EdgeKnowledgeItems:
		m.ResetKnowledgeItems()
		return nil
	case tenant.EdgeDocumentChunks:
		m.ResetDocumentChunks()
		return nil
	case tenant.EdgeLeads:
		m.ResetLeads()
		return nil
	}
	return fmt.Errorf("unknown Tenant edge %s", name)
}
