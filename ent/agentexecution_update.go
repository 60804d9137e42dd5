// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/offgrid-ops/commandcenter/ent/agentexecution"
	"github.com/offgrid-ops/commandcenter/ent/predicate"
)

// AgentExecutionUpdate is the builder for updating AgentExecution entities.
type AgentExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentExecutionMutation
}

// Where appends a list predicates to the AgentExecutionUpdate builder.
func (_u *AgentExecutionUpdate) Where(ps ...predicate.AgentExecution) *AgentExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AgentExecutionUpdate) SetSessionID(v string) *AgentExecutionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableSessionID(v *string) *AgentExecutionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAgentRole sets the "agent_role" field.
func (_u *AgentExecutionUpdate) SetAgentRole(v string) *AgentExecutionUpdate {
	_u.mutation.SetAgentRole(v)
	return _u
}

// SetNillableAgentRole sets the "agent_role" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableAgentRole(v *string) *AgentExecutionUpdate {
	if v != nil {
		_u.SetAgentRole(*v)
	}
	return _u
}

// SetQueryType sets the "query_type" field.
func (_u *AgentExecutionUpdate) SetQueryType(v string) *AgentExecutionUpdate {
	_u.mutation.SetQueryType(v)
	return _u
}

// SetNillableQueryType sets the "query_type" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableQueryType(v *string) *AgentExecutionUpdate {
	if v != nil {
		_u.SetQueryType(*v)
	}
	return _u
}

// ClearQueryType clears the value of the "query_type" field.
func (_u *AgentExecutionUpdate) ClearQueryType() *AgentExecutionUpdate {
	_u.mutation.ClearQueryType()
	return _u
}

// SetTokensIn sets the "tokens_in" field.
func (_u *AgentExecutionUpdate) SetTokensIn(v int) *AgentExecutionUpdate {
	_u.mutation.ResetTokensIn()
	_u.mutation.SetTokensIn(v)
	return _u
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableTokensIn(v *int) *AgentExecutionUpdate {
	if v != nil {
		_u.SetTokensIn(*v)
	}
	return _u
}

// AddTokensIn adds value to the "tokens_in" field.
func (_u *AgentExecutionUpdate) AddTokensIn(v int) *AgentExecutionUpdate {
	_u.mutation.AddTokensIn(v)
	return _u
}

// SetCacheHit sets the "cache_hit" field.
func (_u *AgentExecutionUpdate) SetCacheHit(v bool) *AgentExecutionUpdate {
	_u.mutation.SetCacheHit(v)
	return _u
}

// SetNillableCacheHit sets the "cache_hit" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableCacheHit(v *bool) *AgentExecutionUpdate {
	if v != nil {
		_u.SetCacheHit(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AgentExecutionUpdate) SetDurationMs(v int) *AgentExecutionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableDurationMs(v *int) *AgentExecutionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AgentExecutionUpdate) AddDurationMs(v int) *AgentExecutionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetToolsUsed sets the "tools_used" field.
func (_u *AgentExecutionUpdate) SetToolsUsed(v []string) *AgentExecutionUpdate {
	_u.mutation.SetToolsUsed(v)
	return _u
}

// AppendToolsUsed appends value to the "tools_used" field.
func (_u *AgentExecutionUpdate) AppendToolsUsed(v []string) *AgentExecutionUpdate {
	_u.mutation.AppendToolsUsed(v)
	return _u
}

// ClearToolsUsed clears the value of the "tools_used" field.
func (_u *AgentExecutionUpdate) ClearToolsUsed() *AgentExecutionUpdate {
	_u.mutation.ClearToolsUsed()
	return _u
}

// SetError sets the "error" field.
func (_u *AgentExecutionUpdate) SetError(v string) *AgentExecutionUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableError(v *string) *AgentExecutionUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *AgentExecutionUpdate) ClearError() *AgentExecutionUpdate {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the AgentExecutionMutation object of the builder.
func (_u *AgentExecutionUpdate) Mutation() *AgentExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentexecution.Table, agentexecution.Columns, sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(agentexecution.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentRole(); ok {
		_spec.SetField(agentexecution.FieldAgentRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.QueryType(); ok {
		_spec.SetField(agentexecution.FieldQueryType, field.TypeString, value)
	}
	if _u.mutation.QueryTypeCleared() {
		_spec.ClearField(agentexecution.FieldQueryType, field.TypeString)
	}
	if value, ok := _u.mutation.TokensIn(); ok {
		_spec.SetField(agentexecution.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensIn(); ok {
		_spec.AddField(agentexecution.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CacheHit(); ok {
		_spec.SetField(agentexecution.FieldCacheHit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(agentexecution.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(agentexecution.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToolsUsed(); ok {
		_spec.SetField(agentexecution.FieldToolsUsed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolsUsed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentexecution.FieldToolsUsed, value)
		})
	}
	if _u.mutation.ToolsUsedCleared() {
		_spec.ClearField(agentexecution.FieldToolsUsed, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(agentexecution.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(agentexecution.FieldError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentExecutionUpdateOne is the builder for updating a single AgentExecution entity.
type AgentExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentExecutionMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AgentExecutionUpdateOne) SetSessionID(v string) *AgentExecutionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableSessionID(v *string) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAgentRole sets the "agent_role" field.
func (_u *AgentExecutionUpdateOne) SetAgentRole(v string) *AgentExecutionUpdateOne {
	_u.mutation.SetAgentRole(v)
	return _u
}

// SetNillableAgentRole sets the "agent_role" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableAgentRole(v *string) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetAgentRole(*v)
	}
	return _u
}

// SetQueryType sets the "query_type" field.
func (_u *AgentExecutionUpdateOne) SetQueryType(v string) *AgentExecutionUpdateOne {
	_u.mutation.SetQueryType(v)
	return _u
}

// SetNillableQueryType sets the "query_type" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableQueryType(v *string) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetQueryType(*v)
	}
	return _u
}

// ClearQueryType clears the value of the "query_type" field.
func (_u *AgentExecutionUpdateOne) ClearQueryType() *AgentExecutionUpdateOne {
	_u.mutation.ClearQueryType()
	return _u
}

// SetTokensIn sets the "tokens_in" field.
func (_u *AgentExecutionUpdateOne) SetTokensIn(v int) *AgentExecutionUpdateOne {
	_u.mutation.ResetTokensIn()
	_u.mutation.SetTokensIn(v)
	return _u
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableTokensIn(v *int) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetTokensIn(*v)
	}
	return _u
}

// AddTokensIn adds value to the "tokens_in" field.
func (_u *AgentExecutionUpdateOne) AddTokensIn(v int) *AgentExecutionUpdateOne {
	_u.mutation.AddTokensIn(v)
	return _u
}

// SetCacheHit sets the "cache_hit" field.
func (_u *AgentExecutionUpdateOne) SetCacheHit(v bool) *AgentExecutionUpdateOne {
	_u.mutation.SetCacheHit(v)
	return _u
}

// SetNillableCacheHit sets the "cache_hit" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableCacheHit(v *bool) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetCacheHit(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AgentExecutionUpdateOne) SetDurationMs(v int) *AgentExecutionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableDurationMs(v *int) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AgentExecutionUpdateOne) AddDurationMs(v int) *AgentExecutionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetToolsUsed sets the "tools_used" field.
func (_u *AgentExecutionUpdateOne) SetToolsUsed(v []string) *AgentExecutionUpdateOne {
	_u.mutation.SetToolsUsed(v)
	return _u
}

// AppendToolsUsed appends value to the "tools_used" field.
func (_u *AgentExecutionUpdateOne) AppendToolsUsed(v []string) *AgentExecutionUpdateOne {
	_u.mutation.AppendToolsUsed(v)
	return _u
}

// ClearToolsUsed clears the value of the "tools_used" field.
func (_u *AgentExecutionUpdateOne) ClearToolsUsed() *AgentExecutionUpdateOne {
	_u.mutation.ClearToolsUsed()
	return _u
}

// SetError sets the "error" field.
func (_u *AgentExecutionUpdateOne) SetError(v string) *AgentExecutionUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableError(v *string) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *AgentExecutionUpdateOne) ClearError() *AgentExecutionUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the AgentExecutionMutation object of the builder.
func (_u *AgentExecutionUpdateOne) Mutation() *AgentExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentExecutionUpdate builder.
func (_u *AgentExecutionUpdateOne) Where(ps ...predicate.AgentExecution) *AgentExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentExecutionUpdateOne) Select(field string, fields ...string) *AgentExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentExecution entity.
func (_u *AgentExecutionUpdateOne) Save(ctx context.Context) (*AgentExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentExecutionUpdateOne) SaveX(ctx context.Context) *AgentExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentExecutionUpdateOne) sqlSave(ctx context.Context) (_node *AgentExecution, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentexecution.Table, agentexecution.Columns, sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentexecution.FieldID)
		for _, f := range fields {
			if !agentexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentexecution.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(agentexecution.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentRole(); ok {
		_spec.SetField(agentexecution.FieldAgentRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.QueryType(); ok {
		_spec.SetField(agentexecution.FieldQueryType, field.TypeString, value)
	}
	if _u.mutation.QueryTypeCleared() {
		_spec.ClearField(agentexecution.FieldQueryType, field.TypeString)
	}
	if value, ok := _u.mutation.TokensIn(); ok {
		_spec.SetField(agentexecution.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensIn(); ok {
		_spec.AddField(agentexecution.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CacheHit(); ok {
		_spec.SetField(agentexecution.FieldCacheHit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(agentexecution.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(agentexecution.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToolsUsed(); ok {
		_spec.SetField(agentexecution.FieldToolsUsed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolsUsed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentexecution.FieldToolsUsed, value)
		})
	}
	if _u.mutation.ToolsUsedCleared() {
		_spec.ClearField(agentexecution.FieldToolsUsed, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(agentexecution.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(agentexecution.FieldError, field.TypeString)
	}
	_node = &AgentExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
