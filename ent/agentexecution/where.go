// Code generated by ent, DO NOT EDIT.

package agentexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/offgrid-ops/commandcenter/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldSessionID, v))
}

// AgentRole applies equality check predicate on the "agent_role" field. It's identical to AgentRoleEQ.
func AgentRole(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldAgentRole, v))
}

// QueryType applies equality check predicate on the "query_type" field. It's identical to QueryTypeEQ.
func QueryType(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldQueryType, v))
}

// TokensIn applies equality check predicate on the "tokens_in" field. It's identical to TokensInEQ.
func TokensIn(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldTokensIn, v))
}

// CacheHit applies equality check predicate on the "cache_hit" field. It's identical to CacheHitEQ.
func CacheHit(v bool) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldCacheHit, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldDurationMs, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContainsFold(FieldSessionID, v))
}

// AgentRoleEQ applies the EQ predicate on the "agent_role" field.
func AgentRoleEQ(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldAgentRole, v))
}

// AgentRoleNEQ applies the NEQ predicate on the "agent_role" field.
func AgentRoleNEQ(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNEQ(FieldAgentRole, v))
}

// AgentRoleIn applies the In predicate on the "agent_role" field.
func AgentRoleIn(vs ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIn(FieldAgentRole, vs...))
}

// AgentRoleNotIn applies the NotIn predicate on the "agent_role" field.
func AgentRoleNotIn(vs ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotIn(FieldAgentRole, vs...))
}

// AgentRoleGT applies the GT predicate on the "agent_role" field.
func AgentRoleGT(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGT(FieldAgentRole, v))
}

// AgentRoleGTE applies the GTE predicate on the "agent_role" field.
func AgentRoleGTE(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGTE(FieldAgentRole, v))
}

// AgentRoleLT applies the LT predicate on the "agent_role" field.
func AgentRoleLT(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLT(FieldAgentRole, v))
}

// AgentRoleLTE applies the LTE predicate on the "agent_role" field.
func AgentRoleLTE(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLTE(FieldAgentRole, v))
}

// AgentRoleContains applies the Contains predicate on the "agent_role" field.
func AgentRoleContains(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContains(FieldAgentRole, v))
}

// AgentRoleHasPrefix applies the HasPrefix predicate on the "agent_role" field.
func AgentRoleHasPrefix(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldHasPrefix(FieldAgentRole, v))
}

// AgentRoleHasSuffix applies the HasSuffix predicate on the "agent_role" field.
func AgentRoleHasSuffix(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldHasSuffix(FieldAgentRole, v))
}

// AgentRoleEqualFold applies the EqualFold predicate on the "agent_role" field.
func AgentRoleEqualFold(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEqualFold(FieldAgentRole, v))
}

// AgentRoleContainsFold applies the ContainsFold predicate on the "agent_role" field.
func AgentRoleContainsFold(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContainsFold(FieldAgentRole, v))
}

// QueryTypeEQ applies the EQ predicate on the "query_type" field.
func QueryTypeEQ(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldQueryType, v))
}

// QueryTypeNEQ applies the NEQ predicate on the "query_type" field.
func QueryTypeNEQ(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNEQ(FieldQueryType, v))
}

// QueryTypeIn applies the In predicate on the "query_type" field.
func QueryTypeIn(vs ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIn(FieldQueryType, vs...))
}

// QueryTypeNotIn applies the NotIn predicate on the "query_type" field.
func QueryTypeNotIn(vs ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotIn(FieldQueryType, vs...))
}

// QueryTypeGT applies the GT predicate on the "query_type" field.
func QueryTypeGT(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGT(FieldQueryType, v))
}

// QueryTypeGTE applies the GTE predicate on the "query_type" field.
func QueryTypeGTE(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGTE(FieldQueryType, v))
}

// QueryTypeLT applies the LT predicate on the "query_type" field.
func QueryTypeLT(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLT(FieldQueryType, v))
}

// QueryTypeLTE applies the LTE predicate on the "query_type" field.
func QueryTypeLTE(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLTE(FieldQueryType, v))
}

// QueryTypeContains applies the Contains predicate on the "query_type" field.
func QueryTypeContains(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContains(FieldQueryType, v))
}

// QueryTypeHasPrefix applies the HasPrefix predicate on the "query_type" field.
func QueryTypeHasPrefix(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldHasPrefix(FieldQueryType, v))
}

// QueryTypeHasSuffix applies the HasSuffix predicate on the "query_type" field.
func QueryTypeHasSuffix(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldHasSuffix(FieldQueryType, v))
}

// QueryTypeIsNil applies the IsNil predicate on the "query_type" field.
func QueryTypeIsNil() predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIsNull(FieldQueryType))
}

// QueryTypeNotNil applies the NotNil predicate on the "query_type" field.
func QueryTypeNotNil() predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotNull(FieldQueryType))
}

// QueryTypeEqualFold applies the EqualFold predicate on the "query_type" field.
func QueryTypeEqualFold(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEqualFold(FieldQueryType, v))
}

// QueryTypeContainsFold applies the ContainsFold predicate on the "query_type" field.
func QueryTypeContainsFold(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContainsFold(FieldQueryType, v))
}

// TokensInEQ applies the EQ predicate on the "tokens_in" field.
func TokensInEQ(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldTokensIn, v))
}

// TokensInNEQ applies the NEQ predicate on the "tokens_in" field.
func TokensInNEQ(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNEQ(FieldTokensIn, v))
}

// TokensInIn applies the In predicate on the "tokens_in" field.
func TokensInIn(vs ...int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIn(FieldTokensIn, vs...))
}

// TokensInNotIn applies the NotIn predicate on the "tokens_in" field.
func TokensInNotIn(vs ...int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotIn(FieldTokensIn, vs...))
}

// TokensInGT applies the GT predicate on the "tokens_in" field.
func TokensInGT(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGT(FieldTokensIn, v))
}

// TokensInGTE applies the GTE predicate on the "tokens_in" field.
func TokensInGTE(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGTE(FieldTokensIn, v))
}

// TokensInLT applies the LT predicate on the "tokens_in" field.
func TokensInLT(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLT(FieldTokensIn, v))
}

// TokensInLTE applies the LTE predicate on the "tokens_in" field.
func TokensInLTE(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLTE(FieldTokensIn, v))
}

// CacheHitEQ applies the EQ predicate on the "cache_hit" field.
func CacheHitEQ(v bool) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldCacheHit, v))
}

// CacheHitNEQ applies the NEQ predicate on the "cache_hit" field.
func CacheHitNEQ(v bool) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNEQ(FieldCacheHit, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLTE(FieldDurationMs, v))
}

// ToolsUsedIsNil applies the IsNil predicate on the "tools_used" field.
func ToolsUsedIsNil() predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIsNull(FieldToolsUsed))
}

// ToolsUsedNotNil applies the NotNil predicate on the "tools_used" field.
func ToolsUsedNotNil() predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotNull(FieldToolsUsed))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldContainsFold(FieldError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentExecution {
	return predicate.AgentExecution(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentExecution) predicate.AgentExecution {
	return predicate.AgentExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentExecution) predicate.AgentExecution {
	return predicate.AgentExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentExecution) predicate.AgentExecution {
	return predicate.AgentExecution(sql.NotPredicates(p))
}
