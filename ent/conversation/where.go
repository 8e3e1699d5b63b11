// Code generated by ent, DO NOT EDIT.

package conversation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/trykin/spark/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldID, id))
}

// ClientID applies equality check predicate on the "client_id" field. It's identical to ClientIDEQ.
func ClientID(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldClientID, v))
}

// SessionToken applies equality check predicate on the "session_token" field. It's identical to SessionTokenEQ.
func SessionToken(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldSessionToken, v))
}

// IPAddress applies equality check predicate on the "ip_address" field. It's identical to IPAddressEQ.
func IPAddress(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldIPAddress, v))
}

// VisitorFingerprint applies equality check predicate on the "visitor_fingerprint" field. It's identical to VisitorFingerprintEQ.
func VisitorFingerprint(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldVisitorFingerprint, v))
}

// TurnCount applies equality check predicate on the "turn_count" field. It's identical to TurnCountEQ.
func TurnCount(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTurnCount, v))
}

// Sentiment applies equality check predicate on the "sentiment" field. It's identical to SentimentEQ.
func Sentiment(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldSentiment, v))
}

// BoundarySignalsFired applies equality check predicate on the "boundary_signals_fired" field. It's identical to BoundarySignalsFiredEQ.
func BoundarySignalsFired(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldBoundarySignalsFired, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUpdatedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldExpiresAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldEndedAt, v))
}

// ClientIDEQ applies the EQ predicate on the "client_id" field.
func ClientIDEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldClientID, v))
}

// ClientIDNEQ applies the NEQ predicate on the "client_id" field.
func ClientIDNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldClientID, v))
}

// ClientIDIn applies the In predicate on the "client_id" field.
func ClientIDIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldClientID, vs...))
}

// ClientIDNotIn applies the NotIn predicate on the "client_id" field.
func ClientIDNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldClientID, vs...))
}

// ClientIDGT applies the GT predicate on the "client_id" field.
func ClientIDGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldClientID, v))
}

// ClientIDGTE applies the GTE predicate on the "client_id" field.
func ClientIDGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldClientID, v))
}

// ClientIDLT applies the LT predicate on the "client_id" field.
func ClientIDLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldClientID, v))
}

// ClientIDLTE applies the LTE predicate on the "client_id" field.
func ClientIDLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldClientID, v))
}

// ClientIDContains applies the Contains predicate on the "client_id" field.
func ClientIDContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldClientID, v))
}

// ClientIDHasPrefix applies the HasPrefix predicate on the "client_id" field.
func ClientIDHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldClientID, v))
}

// ClientIDHasSuffix applies the HasSuffix predicate on the "client_id" field.
func ClientIDHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldClientID, v))
}

// ClientIDEqualFold applies the EqualFold predicate on the "client_id" field.
func ClientIDEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldClientID, v))
}

// ClientIDContainsFold applies the ContainsFold predicate on the "client_id" field.
func ClientIDContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldClientID, v))
}

// SessionTokenEQ applies the EQ predicate on the "session_token" field.
func SessionTokenEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldSessionToken, v))
}

// SessionTokenNEQ applies the NEQ predicate on the "session_token" field.
func SessionTokenNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldSessionToken, v))
}

// SessionTokenIn applies the In predicate on the "session_token" field.
func SessionTokenIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldSessionToken, vs...))
}

// SessionTokenNotIn applies the NotIn predicate on the "session_token" field.
func SessionTokenNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldSessionToken, vs...))
}

// SessionTokenGT applies the GT predicate on the "session_token" field.
func SessionTokenGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldSessionToken, v))
}

// SessionTokenGTE applies the GTE predicate on the "session_token" field.
func SessionTokenGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldSessionToken, v))
}

// SessionTokenLT applies the LT predicate on the "session_token" field.
func SessionTokenLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldSessionToken, v))
}

// SessionTokenLTE applies the LTE predicate on the "session_token" field.
func SessionTokenLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldSessionToken, v))
}

// SessionTokenContains applies the Contains predicate on the "session_token" field.
func SessionTokenContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldSessionToken, v))
}

// SessionTokenHasPrefix applies the HasPrefix predicate on the "session_token" field.
func SessionTokenHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldSessionToken, v))
}

// SessionTokenHasSuffix applies the HasSuffix predicate on the "session_token" field.
func SessionTokenHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldSessionToken, v))
}

// SessionTokenEqualFold applies the EqualFold predicate on the "session_token" field.
func SessionTokenEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldSessionToken, v))
}

// SessionTokenContainsFold applies the ContainsFold predicate on the "session_token" field.
func SessionTokenContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldSessionToken, v))
}

// IPAddressEQ applies the EQ predicate on the "ip_address" field.
func IPAddressEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldIPAddress, v))
}

// IPAddressNEQ applies the NEQ predicate on the "ip_address" field.
func IPAddressNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldIPAddress, v))
}

// IPAddressIn applies the In predicate on the "ip_address" field.
func IPAddressIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldIPAddress, vs...))
}

// IPAddressNotIn applies the NotIn predicate on the "ip_address" field.
func IPAddressNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldIPAddress, vs...))
}

// IPAddressGT applies the GT predicate on the "ip_address" field.
func IPAddressGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldIPAddress, v))
}

// IPAddressGTE applies the GTE predicate on the "ip_address" field.
func IPAddressGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldIPAddress, v))
}

// IPAddressLT applies the LT predicate on the "ip_address" field.
func IPAddressLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldIPAddress, v))
}

// IPAddressLTE applies the LTE predicate on the "ip_address" field.
func IPAddressLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldIPAddress, v))
}

// IPAddressContains applies the Contains predicate on the "ip_address" field.
func IPAddressContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldIPAddress, v))
}

// IPAddressHasPrefix applies the HasPrefix predicate on the "ip_address" field.
func IPAddressHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldIPAddress, v))
}

// IPAddressHasSuffix applies the HasSuffix predicate on the "ip_address" field.
func IPAddressHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldIPAddress, v))
}

// IPAddressEqualFold applies the EqualFold predicate on the "ip_address" field.
func IPAddressEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldIPAddress, v))
}

// IPAddressContainsFold applies the ContainsFold predicate on the "ip_address" field.
func IPAddressContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldIPAddress, v))
}

// VisitorFingerprintEQ applies the EQ predicate on the "visitor_fingerprint" field.
func VisitorFingerprintEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldVisitorFingerprint, v))
}

// VisitorFingerprintNEQ applies the NEQ predicate on the "visitor_fingerprint" field.
func VisitorFingerprintNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldVisitorFingerprint, v))
}

// VisitorFingerprintIn applies the In predicate on the "visitor_fingerprint" field.
func VisitorFingerprintIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldVisitorFingerprint, vs...))
}

// VisitorFingerprintNotIn applies the NotIn predicate on the "visitor_fingerprint" field.
func VisitorFingerprintNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldVisitorFingerprint, vs...))
}

// VisitorFingerprintGT applies the GT predicate on the "visitor_fingerprint" field.
func VisitorFingerprintGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldVisitorFingerprint, v))
}

// VisitorFingerprintGTE applies the GTE predicate on the "visitor_fingerprint" field.
func VisitorFingerprintGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldVisitorFingerprint, v))
}

// VisitorFingerprintLT applies the LT predicate on the "visitor_fingerprint" field.
func VisitorFingerprintLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldVisitorFingerprint, v))
}

// VisitorFingerprintLTE applies the LTE predicate on the "visitor_fingerprint" field.
func VisitorFingerprintLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldVisitorFingerprint, v))
}

// VisitorFingerprintContains applies the Contains predicate on the "visitor_fingerprint" field.
func VisitorFingerprintContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldVisitorFingerprint, v))
}

// VisitorFingerprintHasPrefix applies the HasPrefix predicate on the "visitor_fingerprint" field.
func VisitorFingerprintHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldVisitorFingerprint, v))
}

// VisitorFingerprintHasSuffix applies the HasSuffix predicate on the "visitor_fingerprint" field.
func VisitorFingerprintHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldVisitorFingerprint, v))
}

// VisitorFingerprintIsNil applies the IsNil predicate on the "visitor_fingerprint" field.
func VisitorFingerprintIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldVisitorFingerprint))
}

// VisitorFingerprintNotNil applies the NotNil predicate on the "visitor_fingerprint" field.
func VisitorFingerprintNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldVisitorFingerprint))
}

// VisitorFingerprintEqualFold applies the EqualFold predicate on the "visitor_fingerprint" field.
func VisitorFingerprintEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldVisitorFingerprint, v))
}

// VisitorFingerprintContainsFold applies the ContainsFold predicate on the "visitor_fingerprint" field.
func VisitorFingerprintContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldVisitorFingerprint, v))
}

// TurnCountEQ applies the EQ predicate on the "turn_count" field.
func TurnCountEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTurnCount, v))
}

// TurnCountNEQ applies the NEQ predicate on the "turn_count" field.
func TurnCountNEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldTurnCount, v))
}

// TurnCountIn applies the In predicate on the "turn_count" field.
func TurnCountIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldTurnCount, vs...))
}

// TurnCountNotIn applies the NotIn predicate on the "turn_count" field.
func TurnCountNotIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldTurnCount, vs...))
}

// TurnCountGT applies the GT predicate on the "turn_count" field.
func TurnCountGT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldTurnCount, v))
}

// TurnCountGTE applies the GTE predicate on the "turn_count" field.
func TurnCountGTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldTurnCount, v))
}

// TurnCountLT applies the LT predicate on the "turn_count" field.
func TurnCountLT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldTurnCount, v))
}

// TurnCountLTE applies the LTE predicate on the "turn_count" field.
func TurnCountLTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldTurnCount, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldState, vs...))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v Outcome) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v Outcome) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...Outcome) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...Outcome) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeIsNil applies the IsNil predicate on the "outcome" field.
func OutcomeIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldOutcome))
}

// OutcomeNotNil applies the NotNil predicate on the "outcome" field.
func OutcomeNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldOutcome))
}

// SentimentEQ applies the EQ predicate on the "sentiment" field.
func SentimentEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldSentiment, v))
}

// SentimentNEQ applies the NEQ predicate on the "sentiment" field.
func SentimentNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldSentiment, v))
}

// SentimentIn applies the In predicate on the "sentiment" field.
func SentimentIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldSentiment, vs...))
}

// SentimentNotIn applies the NotIn predicate on the "sentiment" field.
func SentimentNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldSentiment, vs...))
}

// SentimentGT applies the GT predicate on the "sentiment" field.
func SentimentGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldSentiment, v))
}

// SentimentGTE applies the GTE predicate on the "sentiment" field.
func SentimentGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldSentiment, v))
}

// SentimentLT applies the LT predicate on the "sentiment" field.
func SentimentLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldSentiment, v))
}

// SentimentLTE applies the LTE predicate on the "sentiment" field.
func SentimentLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldSentiment, v))
}

// SentimentContains applies the Contains predicate on the "sentiment" field.
func SentimentContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldSentiment, v))
}

// SentimentHasPrefix applies the HasPrefix predicate on the "sentiment" field.
func SentimentHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldSentiment, v))
}

// SentimentHasSuffix applies the HasSuffix predicate on the "sentiment" field.
func SentimentHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldSentiment, v))
}

// SentimentIsNil applies the IsNil predicate on the "sentiment" field.
func SentimentIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldSentiment))
}

// SentimentNotNil applies the NotNil predicate on the "sentiment" field.
func SentimentNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldSentiment))
}

// SentimentEqualFold applies the EqualFold predicate on the "sentiment" field.
func SentimentEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldSentiment, v))
}

// SentimentContainsFold applies the ContainsFold predicate on the "sentiment" field.
func SentimentContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldSentiment, v))
}

// BoundarySignalsFiredEQ applies the EQ predicate on the "boundary_signals_fired" field.
func BoundarySignalsFiredEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldBoundarySignalsFired, v))
}

// BoundarySignalsFiredNEQ applies the NEQ predicate on the "boundary_signals_fired" field.
func BoundarySignalsFiredNEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldBoundarySignalsFired, v))
}

// BoundarySignalsFiredIn applies the In predicate on the "boundary_signals_fired" field.
func BoundarySignalsFiredIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldBoundarySignalsFired, vs...))
}

// BoundarySignalsFiredNotIn applies the NotIn predicate on the "boundary_signals_fired" field.
func BoundarySignalsFiredNotIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldBoundarySignalsFired, vs...))
}

// BoundarySignalsFiredGT applies the GT predicate on the "boundary_signals_fired" field.
func BoundarySignalsFiredGT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldBoundarySignalsFired, v))
}

// BoundarySignalsFiredGTE applies the GTE predicate on the "boundary_signals_fired" field.
func BoundarySignalsFiredGTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldBoundarySignalsFired, v))
}

// BoundarySignalsFiredLT applies the LT predicate on the "boundary_signals_fired" field.
func BoundarySignalsFiredLT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldBoundarySignalsFired, v))
}

// BoundarySignalsFiredLTE applies the LTE predicate on the "boundary_signals_fired" field.
func BoundarySignalsFiredLTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldBoundarySignalsFired, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldUpdatedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldExpiresAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldEndedAt))
}

// HasClient applies the HasEdge predicate on the "client" edge.
func HasClient() predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClientTable, ClientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClientWith applies the HasEdge predicate on the "client" edge with a given conditions (other predicates).
func HasClientWith(preds ...predicate.Tenant) predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := newClientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.Message) predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.NotPredicates(p))
}
