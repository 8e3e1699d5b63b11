// Code generated by ent, DO NOT EDIT.

package tenant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/trykin/spark/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldName, v))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldSlug, v))
}

// APIKeyHash applies equality check predicate on the "api_key_hash" field. It's identical to APIKeyHashEQ.
func APIKeyHash(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldAPIKeyHash, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldUserID, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldActive, v))
}

// MaxTurns applies equality check predicate on the "max_turns" field. It's identical to MaxTurnsEQ.
func MaxTurns(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldMaxTurns, v))
}

// RateLimitRpm applies equality check predicate on the "rate_limit_rpm" field. It's identical to RateLimitRpmEQ.
func RateLimitRpm(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldRateLimitRpm, v))
}

// ClientOrientation applies equality check predicate on the "client_orientation" field. It's identical to ClientOrientationEQ.
func ClientOrientation(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldClientOrientation, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContainsFold(FieldName, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContainsFold(FieldSlug, v))
}

// APIKeyHashEQ applies the EQ predicate on the "api_key_hash" field.
func APIKeyHashEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldAPIKeyHash, v))
}

// APIKeyHashNEQ applies the NEQ predicate on the "api_key_hash" field.
func APIKeyHashNEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldAPIKeyHash, v))
}

// APIKeyHashIn applies the In predicate on the "api_key_hash" field.
func APIKeyHashIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldAPIKeyHash, vs...))
}

// APIKeyHashNotIn applies the NotIn predicate on the "api_key_hash" field.
func APIKeyHashNotIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldAPIKeyHash, vs...))
}

// APIKeyHashGT applies the GT predicate on the "api_key_hash" field.
func APIKeyHashGT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldAPIKeyHash, v))
}

// APIKeyHashGTE applies the GTE predicate on the "api_key_hash" field.
func APIKeyHashGTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldAPIKeyHash, v))
}

// APIKeyHashLT applies the LT predicate on the "api_key_hash" field.
func APIKeyHashLT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldAPIKeyHash, v))
}

// APIKeyHashLTE applies the LTE predicate on the "api_key_hash" field.
func APIKeyHashLTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldAPIKeyHash, v))
}

// APIKeyHashContains applies the Contains predicate on the "api_key_hash" field.
func APIKeyHashContains(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContains(FieldAPIKeyHash, v))
}

// APIKeyHashHasPrefix applies the HasPrefix predicate on the "api_key_hash" field.
func APIKeyHashHasPrefix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasPrefix(FieldAPIKeyHash, v))
}

// APIKeyHashHasSuffix applies the HasSuffix predicate on the "api_key_hash" field.
func APIKeyHashHasSuffix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasSuffix(FieldAPIKeyHash, v))
}

// APIKeyHashEqualFold applies the EqualFold predicate on the "api_key_hash" field.
func APIKeyHashEqualFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEqualFold(FieldAPIKeyHash, v))
}

// APIKeyHashContainsFold applies the ContainsFold predicate on the "api_key_hash" field.
func APIKeyHashContainsFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContainsFold(FieldAPIKeyHash, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContainsFold(FieldUserID, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldActive, v))
}

// MaxTurnsEQ applies the EQ predicate on the "max_turns" field.
func MaxTurnsEQ(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldMaxTurns, v))
}

// MaxTurnsNEQ applies the NEQ predicate on the "max_turns" field.
func MaxTurnsNEQ(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldMaxTurns, v))
}

// MaxTurnsIn applies the In predicate on the "max_turns" field.
func MaxTurnsIn(vs ...int) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldMaxTurns, vs...))
}

// MaxTurnsNotIn applies the NotIn predicate on the "max_turns" field.
func MaxTurnsNotIn(vs ...int) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldMaxTurns, vs...))
}

// MaxTurnsGT applies the GT predicate on the "max_turns" field.
func MaxTurnsGT(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldMaxTurns, v))
}

// MaxTurnsGTE applies the GTE predicate on the "max_turns" field.
func MaxTurnsGTE(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldMaxTurns, v))
}

// MaxTurnsLT applies the LT predicate on the "max_turns" field.
func MaxTurnsLT(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldMaxTurns, v))
}

// MaxTurnsLTE applies the LTE predicate on the "max_turns" field.
func MaxTurnsLTE(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldMaxTurns, v))
}

// RateLimitRpmEQ applies the EQ predicate on the "rate_limit_rpm" field.
func RateLimitRpmEQ(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldRateLimitRpm, v))
}

// RateLimitRpmNEQ applies the NEQ predicate on the "rate_limit_rpm" field.
func RateLimitRpmNEQ(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldRateLimitRpm, v))
}

// RateLimitRpmIn applies the In predicate on the "rate_limit_rpm" field.
func RateLimitRpmIn(vs ...int) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldRateLimitRpm, vs...))
}

// RateLimitRpmNotIn applies the NotIn predicate on the "rate_limit_rpm" field.
func RateLimitRpmNotIn(vs ...int) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldRateLimitRpm, vs...))
}

// RateLimitRpmGT applies the GT predicate on the "rate_limit_rpm" field.
func RateLimitRpmGT(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldRateLimitRpm, v))
}

// RateLimitRpmGTE applies the GTE predicate on the "rate_limit_rpm" field.
func RateLimitRpmGTE(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldRateLimitRpm, v))
}

// RateLimitRpmLT applies the LT predicate on the "rate_limit_rpm" field.
func RateLimitRpmLT(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldRateLimitRpm, v))
}

// RateLimitRpmLTE applies the LTE predicate on the "rate_limit_rpm" field.
func RateLimitRpmLTE(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldRateLimitRpm, v))
}

// SettlingConfigIsNil applies the IsNil predicate on the "settling_config" field.
func SettlingConfigIsNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldIsNull(FieldSettlingConfig))
}

// SettlingConfigNotNil applies the NotNil predicate on the "settling_config" field.
func SettlingConfigNotNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldNotNull(FieldSettlingConfig))
}

// ClientOrientationEQ applies the EQ predicate on the "client_orientation" field.
func ClientOrientationEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldClientOrientation, v))
}

// ClientOrientationNEQ applies the NEQ predicate on the "client_orientation" field.
func ClientOrientationNEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldClientOrientation, v))
}

// ClientOrientationIn applies the In predicate on the "client_orientation" field.
func ClientOrientationIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldClientOrientation, vs...))
}

// ClientOrientationNotIn applies the NotIn predicate on the "client_orientation" field.
func ClientOrientationNotIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldClientOrientation, vs...))
}

// ClientOrientationGT applies the GT predicate on the "client_orientation" field.
func ClientOrientationGT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldClientOrientation, v))
}

// ClientOrientationGTE applies the GTE predicate on the "client_orientation" field.
func ClientOrientationGTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldClientOrientation, v))
}

// ClientOrientationLT applies the LT predicate on the "client_orientation" field.
func ClientOrientationLT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldClientOrientation, v))
}

// ClientOrientationLTE applies the LTE predicate on the "client_orientation" field.
func ClientOrientationLTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldClientOrientation, v))
}

// ClientOrientationContains applies the Contains predicate on the "client_orientation" field.
func ClientOrientationContains(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContains(FieldClientOrientation, v))
}

// ClientOrientationHasPrefix applies the HasPrefix predicate on the "client_orientation" field.
func ClientOrientationHasPrefix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasPrefix(FieldClientOrientation, v))
}

// ClientOrientationHasSuffix applies the HasSuffix predicate on the "client_orientation" field.
func ClientOrientationHasSuffix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasSuffix(FieldClientOrientation, v))
}

// ClientOrientationIsNil applies the IsNil predicate on the "client_orientation" field.
func ClientOrientationIsNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldIsNull(FieldClientOrientation))
}

// ClientOrientationNotNil applies the NotNil predicate on the "client_orientation" field.
func ClientOrientationNotNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldNotNull(FieldClientOrientation))
}

// ClientOrientationEqualFold applies the EqualFold predicate on the "client_orientation" field.
func ClientOrientationEqualFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEqualFold(FieldClientOrientation, v))
}

// ClientOrientationContainsFold applies the ContainsFold predicate on the "client_orientation" field.
func ClientOrientationContainsFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContainsFold(FieldClientOrientation, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasConversations applies the HasEdge predicate on the "conversations" edge.
func HasConversations() predicate.Tenant {
	return predicate.Tenant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ConversationsTable, ConversationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationsWith applies the HasEdge predicate on the "conversations" edge with a given conditions (other predicates).
func HasConversationsWith(preds ...predicate.Conversation) predicate.Tenant {
	return predicate.Tenant(func(s *sql.Selector) {
		step := newConversationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasKnowledgeItems applies the HasEdge predicate on the "knowledge_items" edge.
func HasKnowledgeItems() predicate.Tenant {
	return predicate.Tenant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, KnowledgeItemsTable, KnowledgeItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasKnowledgeItemsWith applies the HasEdge predicate on the "knowledge_items" edge with a given conditions (other predicates).
func HasKnowledgeItemsWith(preds ...predicate.KnowledgeItem) predicate.Tenant {
	return predicate.Tenant(func(s *sql.Selector) {
		step := newKnowledgeItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocumentChunks applies the HasEdge predicate on the "document_chunks" edge.
func HasDocumentChunks() predicate.Tenant {
	return predicate.Tenant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentChunksTable, DocumentChunksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentChunksWith applies the HasEdge predicate on the "document_chunks" edge with a given conditions (other predicates).
func HasDocumentChunksWith(preds ...predicate.DocumentChunk) predicate.Tenant {
	return predicate.Tenant(func(s *sql.Selector) {
		step := newDocumentChunksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLeads applies the HasEdge predicate on the "leads" edge.
func HasLeads() predicate.Tenant {
	return predicate.Tenant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LeadsTable, LeadsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLeadsWith applies the HasEdge predicate on the "leads" edge with a given conditions (other predicates).
func HasLeadsWith(preds ...predicate.Lead) predicate.Tenant {
	return predicate.Tenant(func(s *sql.Selector) {
		step := newLeadsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Tenant) predicate.Tenant {
	return predicate.Tenant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Tenant) predicate.Tenant {
	return predicate.Tenant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Tenant) predicate.Tenant {
	return predicate.Tenant(sql.NotPredicates(p))
}
