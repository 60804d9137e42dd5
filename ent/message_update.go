// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/offgrid-ops/commandcenter/ent/message"
	"github.com/offgrid-ops/commandcenter/ent/predicate"
)

// MessageUpdate is the builder for updating Message entities.
type MessageUpdate struct {
	config
	hooks    []Hook
	mutation *MessageMutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdate) Where(ps ...predicate.Message) *MessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *MessageUpdate) SetRole(v message.Role) *MessageUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableRole(v *message.Role) *MessageUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MessageUpdate) SetContent(v string) *MessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableContent(v *string) *MessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetAgentRole sets the "agent_role" field.
func (_u *MessageUpdate) SetAgentRole(v string) *MessageUpdate {
	_u.mutation.SetAgentRole(v)
	return _u
}

// SetNillableAgentRole sets the "agent_role" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableAgentRole(v *string) *MessageUpdate {
	if v != nil {
		_u.SetAgentRole(*v)
	}
	return _u
}

// ClearAgentRole clears the value of the "agent_role" field.
func (_u *MessageUpdate) ClearAgentRole() *MessageUpdate {
	_u.mutation.ClearAgentRole()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *MessageUpdate) SetDurationMs(v int) *MessageUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableDurationMs(v *int) *MessageUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *MessageUpdate) AddDurationMs(v int) *MessageUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *MessageUpdate) ClearDurationMs() *MessageUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetTokens sets the "tokens" field.
func (_u *MessageUpdate) SetTokens(v int) *MessageUpdate {
	_u.mutation.ResetTokens()
	_u.mutation.SetTokens(v)
	return _u
}

// SetNillableTokens sets the "tokens" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableTokens(v *int) *MessageUpdate {
	if v != nil {
		_u.SetTokens(*v)
	}
	return _u
}

// AddTokens adds value to the "tokens" field.
func (_u *MessageUpdate) AddTokens(v int) *MessageUpdate {
	_u.mutation.AddTokens(v)
	return _u
}

// ClearTokens clears the value of the "tokens" field.
func (_u *MessageUpdate) ClearTokens() *MessageUpdate {
	_u.mutation.ClearTokens()
	return _u
}

// SetCacheHit sets the "cache_hit" field.
func (_u *MessageUpdate) SetCacheHit(v bool) *MessageUpdate {
	_u.mutation.SetCacheHit(v)
	return _u
}

// SetNillableCacheHit sets the "cache_hit" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableCacheHit(v *bool) *MessageUpdate {
	if v != nil {
		_u.SetCacheHit(*v)
	}
	return _u
}

// ClearCacheHit clears the value of the "cache_hit" field.
func (_u *MessageUpdate) ClearCacheHit() *MessageUpdate {
	_u.mutation.ClearCacheHit()
	return _u
}

// SetQueryType sets the "query_type" field.
func (_u *MessageUpdate) SetQueryType(v string) *MessageUpdate {
	_u.mutation.SetQueryType(v)
	return _u
}

// SetNillableQueryType sets the "query_type" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableQueryType(v *string) *MessageUpdate {
	if v != nil {
		_u.SetQueryType(*v)
	}
	return _u
}

// ClearQueryType clears the value of the "query_type" field.
func (_u *MessageUpdate) ClearQueryType() *MessageUpdate {
	_u.mutation.ClearQueryType()
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdate) Mutation() *MessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := message.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Message.role": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Message.conversation"`)
	}
	return nil
}

func (_u *MessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(message.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentRole(); ok {
		_spec.SetField(message.FieldAgentRole, field.TypeString, value)
	}
	if _u.mutation.AgentRoleCleared() {
		_spec.ClearField(message.FieldAgentRole, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(message.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(message.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(message.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.Tokens(); ok {
		_spec.SetField(message.FieldTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokens(); ok {
		_spec.AddField(message.FieldTokens, field.TypeInt, value)
	}
	if _u.mutation.TokensCleared() {
		_spec.ClearField(message.FieldTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CacheHit(); ok {
		_spec.SetField(message.FieldCacheHit, field.TypeBool, value)
	}
	if _u.mutation.CacheHitCleared() {
		_spec.ClearField(message.FieldCacheHit, field.TypeBool)
	}
	if value, ok := _u.mutation.QueryType(); ok {
		_spec.SetField(message.FieldQueryType, field.TypeString, value)
	}
	if _u.mutation.QueryTypeCleared() {
		_spec.ClearField(message.FieldQueryType, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageUpdateOne is the builder for updating a single Message entity.
type MessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageMutation
}

// SetRole sets the "role" field.
func (_u *MessageUpdateOne) SetRole(v message.Role) *MessageUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableRole(v *message.Role) *MessageUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MessageUpdateOne) SetContent(v string) *MessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableContent(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetAgentRole sets the "agent_role" field.
func (_u *MessageUpdateOne) SetAgentRole(v string) *MessageUpdateOne {
	_u.mutation.SetAgentRole(v)
	return _u
}

// SetNillableAgentRole sets the "agent_role" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableAgentRole(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetAgentRole(*v)
	}
	return _u
}

// ClearAgentRole clears the value of the "agent_role" field.
func (_u *MessageUpdateOne) ClearAgentRole() *MessageUpdateOne {
	_u.mutation.ClearAgentRole()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *MessageUpdateOne) SetDurationMs(v int) *MessageUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableDurationMs(v *int) *MessageUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *MessageUpdateOne) AddDurationMs(v int) *MessageUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *MessageUpdateOne) ClearDurationMs() *MessageUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetTokens sets the "tokens" field.
func (_u *MessageUpdateOne) SetTokens(v int) *MessageUpdateOne {
	_u.mutation.ResetTokens()
	_u.mutation.SetTokens(v)
	return _u
}

// SetNillableTokens sets the "tokens" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableTokens(v *int) *MessageUpdateOne {
	if v != nil {
		_u.SetTokens(*v)
	}
	return _u
}

// AddTokens adds value to the "tokens" field.
func (_u *MessageUpdateOne) AddTokens(v int) *MessageUpdateOne {
	_u.mutation.AddTokens(v)
	return _u
}

// ClearTokens clears the value of the "tokens" field.
func (_u *MessageUpdateOne) ClearTokens() *MessageUpdateOne {
	_u.mutation.ClearTokens()
	return _u
}

// SetCacheHit sets the "cache_hit" field.
func (_u *MessageUpdateOne) SetCacheHit(v bool) *MessageUpdateOne {
	_u.mutation.SetCacheHit(v)
	return _u
}

// SetNillableCacheHit sets the "cache_hit" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableCacheHit(v *bool) *MessageUpdateOne {
	if v != nil {
		_u.SetCacheHit(*v)
	}
	return _u
}

// ClearCacheHit clears the value of the "cache_hit" field.
func (_u *MessageUpdateOne) ClearCacheHit() *MessageUpdateOne {
	_u.mutation.ClearCacheHit()
	return _u
}

// SetQueryType sets the "query_type" field.
func (_u *MessageUpdateOne) SetQueryType(v string) *MessageUpdateOne {
	_u.mutation.SetQueryType(v)
	return _u
}

// SetNillableQueryType sets the "query_type" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableQueryType(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetQueryType(*v)
	}
	return _u
}

// ClearQueryType clears the value of the "query_type" field.
func (_u *MessageUpdateOne) ClearQueryType() *MessageUpdateOne {
	_u.mutation.ClearQueryType()
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdateOne) Mutation() *MessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdateOne) Where(ps ...predicate.Message) *MessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageUpdateOne) Select(field string, fields ...string) *MessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Message entity.
func (_u *MessageUpdateOne) Save(ctx context.Context) (*Message, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdateOne) SaveX(ctx context.Context) *Message {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := message.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Message.role": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Message.conversation"`)
	}
	return nil
}

func (_u *MessageUpdateOne) sqlSave(ctx context.Context) (_node *Message, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Message.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, message.FieldID)
		for _, f := range fields {
			if !message.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != message.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(message.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentRole(); ok {
		_spec.SetField(message.FieldAgentRole, field.TypeString, value)
	}
	if _u.mutation.AgentRoleCleared() {
		_spec.ClearField(message.FieldAgentRole, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(message.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(message.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(message.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.Tokens(); ok {
		_spec.SetField(message.FieldTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokens(); ok {
		_spec.AddField(message.FieldTokens, field.TypeInt, value)
	}
	if _u.mutation.TokensCleared() {
		_spec.ClearField(message.FieldTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CacheHit(); ok {
		_spec.SetField(message.FieldCacheHit, field.TypeBool, value)
	}
	if _u.mutation.CacheHitCleared() {
		_spec.ClearField(message.FieldCacheHit, field.TypeBool)
	}
	if value, ok := _u.mutation.QueryType(); ok {
		_spec.SetField(message.FieldQueryType, field.TypeString, value)
	}
	if _u.mutation.QueryTypeCleared() {
		_spec.ClearField(message.FieldQueryType, field.TypeString)
	}
	_node = &Message{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
