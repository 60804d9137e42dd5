// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/offgrid-ops/commandcenter/ent/agentexecution"
)

// AgentExecutionCreate is the builder for creating a AgentExecution entity.
type AgentExecutionCreate struct {
	config
	mutation *AgentExecutionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *AgentExecutionCreate) SetSessionID(v string) *AgentExecutionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetAgentRole sets the "agent_role" field.
func (_c *AgentExecutionCreate) SetAgentRole(v string) *AgentExecutionCreate {
	_c.mutation.SetAgentRole(v)
	return _c
}

// SetQueryType sets the "query_type" field.
func (_c *AgentExecutionCreate) SetQueryType(v string) *AgentExecutionCreate {
	_c.mutation.SetQueryType(v)
	return _c
}

// SetNillableQueryType sets the "query_type" field if the given value is not nil.
func (_c *AgentExecutionCreate) SetNillableQueryType(v *string) *AgentExecutionCreate {
	if v != nil {
		_c.SetQueryType(*v)
	}
	return _c
}

// SetTokensIn sets the "tokens_in" field.
func (_c *AgentExecutionCreate) SetTokensIn(v int) *AgentExecutionCreate {
	_c.mutation.SetTokensIn(v)
	return _c
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_c *AgentExecutionCreate) SetNillableTokensIn(v *int) *AgentExecutionCreate {
	if v != nil {
		_c.SetTokensIn(*v)
	}
	return _c
}

// SetCacheHit sets the "cache_hit" field.
func (_c *AgentExecutionCreate) SetCacheHit(v bool) *AgentExecutionCreate {
	_c.mutation.SetCacheHit(v)
	return _c
}

// SetNillableCacheHit sets the "cache_hit" field if the given value is not nil.
func (_c *AgentExecutionCreate) SetNillableCacheHit(v *bool) *AgentExecutionCreate {
	if v != nil {
		_c.SetCacheHit(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *AgentExecutionCreate) SetDurationMs(v int) *AgentExecutionCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *AgentExecutionCreate) SetNillableDurationMs(v *int) *AgentExecutionCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetToolsUsed sets the "tools_used" field.
func (_c *AgentExecutionCreate) SetToolsUsed(v []string) *AgentExecutionCreate {
	_c.mutation.SetToolsUsed(v)
	return _c
}

// SetError sets the "error" field.
func (_c *AgentExecutionCreate) SetError(v string) *AgentExecutionCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *AgentExecutionCreate) SetNillableError(v *string) *AgentExecutionCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentExecutionCreate) SetCreatedAt(v time.Time) *AgentExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentExecutionCreate) SetNillableCreatedAt(v *time.Time) *AgentExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentExecutionCreate) SetID(v string) *AgentExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentExecutionMutation object of the builder.
func (_c *AgentExecutionCreate) Mutation() *AgentExecutionMutation {
	return _c.mutation
}

// Save creates the AgentExecution in the database.
func (_c *AgentExecutionCreate) Save(ctx context.Context) (*AgentExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentExecutionCreate) SaveX(ctx context.Context) *AgentExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentExecutionCreate) defaults() {
	if _, ok := _c.mutation.TokensIn(); !ok {
		v := agentexecution.DefaultTokensIn
		_c.mutation.SetTokensIn(v)
	}
	if _, ok := _c.mutation.CacheHit(); !ok {
		v := agentexecution.DefaultCacheHit
		_c.mutation.SetCacheHit(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := agentexecution.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentexecution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentExecutionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AgentExecution.session_id"`)}
	}
	if _, ok := _c.mutation.AgentRole(); !ok {
		return &ValidationError{Name: "agent_role", err: errors.New(`ent: missing required field "AgentExecution.agent_role"`)}
	}
	if _, ok := _c.mutation.TokensIn(); !ok {
		return &ValidationError{Name: "tokens_in", err: errors.New(`ent: missing required field "AgentExecution.tokens_in"`)}
	}
	if _, ok := _c.mutation.CacheHit(); !ok {
		return &ValidationError{Name: "cache_hit", err: errors.New(`ent: missing required field "AgentExecution.cache_hit"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "AgentExecution.duration_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentExecution.created_at"`)}
	}
	return nil
}

func (_c *AgentExecutionCreate) sqlSave(ctx context.Context) (*AgentExecution, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AgentExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentExecutionCreate) createSpec() (*AgentExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentexecution.Table, sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(agentexecution.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.AgentRole(); ok {
		_spec.SetField(agentexecution.FieldAgentRole, field.TypeString, value)
		_node.AgentRole = value
	}
	if value, ok := _c.mutation.QueryType(); ok {
		_spec.SetField(agentexecution.FieldQueryType, field.TypeString, value)
		_node.QueryType = value
	}
	if value, ok := _c.mutation.TokensIn(); ok {
		_spec.SetField(agentexecution.FieldTokensIn, field.TypeInt, value)
		_node.TokensIn = value
	}
	if value, ok := _c.mutation.CacheHit(); ok {
		_spec.SetField(agentexecution.FieldCacheHit, field.TypeBool, value)
		_node.CacheHit = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(agentexecution.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.ToolsUsed(); ok {
		_spec.SetField(agentexecution.FieldToolsUsed, field.TypeJSON, value)
		_node.ToolsUsed = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(agentexecution.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentexecution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentExecution.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentExecutionUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentExecutionCreate) OnConflict(opts ...sql.ConflictOption) *AgentExecutionUpsertOne {
	_c.conflict = opts
	return &AgentExecutionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentExecution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentExecutionCreate) OnConflictColumns(columns ...string) *AgentExecutionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentExecutionUpsertOne{
		create: _c,
	}
}

type (
	// AgentExecutionUpsertOne is the builder for "upsert"-ing
	//  one AgentExecution node.
	AgentExecutionUpsertOne struct {
		create *AgentExecutionCreate
	}

	// AgentExecutionUpsert is the "OnConflict" setter.
	AgentExecutionUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *AgentExecutionUpsert) SetSessionID(v string) *AgentExecutionUpsert {
	u.Set(agentexecution.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AgentExecutionUpsert) UpdateSessionID() *AgentExecutionUpsert {
	u.SetExcluded(agentexecution.FieldSessionID)
	return u
}

// SetAgentRole sets the "agent_role" field.
func (u *AgentExecutionUpsert) SetAgentRole(v string) *AgentExecutionUpsert {
	u.Set(agentexecution.FieldAgentRole, v)
	return u
}

// UpdateAgentRole sets the "agent_role" field to the value that was provided on create.
func (u *AgentExecutionUpsert) UpdateAgentRole() *AgentExecutionUpsert {
	u.SetExcluded(agentexecution.FieldAgentRole)
	return u
}

// SetQueryType sets the "query_type" field.
func (u *AgentExecutionUpsert) SetQueryType(v string) *AgentExecutionUpsert {
	u.Set(agentexecution.FieldQueryType, v)
	return u
}

// UpdateQueryType sets the "query_type" field to the value that was provided on create.
func (u *AgentExecutionUpsert) UpdateQueryType() *AgentExecutionUpsert {
	u.SetExcluded(agentexecution.FieldQueryType)
	return u
}

// ClearQueryType clears the value of the "query_type" field.
func (u *AgentExecutionUpsert) ClearQueryType() *AgentExecutionUpsert {
	u.SetNull(agentexecution.FieldQueryType)
	return u
}

// SetTokensIn sets the "tokens_in" field.
func (u *AgentExecutionUpsert) SetTokensIn(v int) *AgentExecutionUpsert {
	u.Set(agentexecution.FieldTokensIn, v)
	return u
}

// UpdateTokensIn sets the "tokens_in" field to the value that was provided on create.
func (u *AgentExecutionUpsert) UpdateTokensIn() *AgentExecutionUpsert {
	u.SetExcluded(agentexecution.FieldTokensIn)
	return u
}

// AddTokensIn adds v to the "tokens_in" field.
func (u *AgentExecutionUpsert) AddTokensIn(v int) *AgentExecutionUpsert {
	u.Add(agentexecution.FieldTokensIn, v)
	return u
}

// SetCacheHit sets the "cache_hit" field.
func (u *AgentExecutionUpsert) SetCacheHit(v bool) *AgentExecutionUpsert {
	u.Set(agentexecution.FieldCacheHit, v)
	return u
}

// UpdateCacheHit sets the "cache_hit" field to the value that was provided on create.
func (u *AgentExecutionUpsert) UpdateCacheHit() *AgentExecutionUpsert {
	u.SetExcluded(agentexecution.FieldCacheHit)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *AgentExecutionUpsert) SetDurationMs(v int) *AgentExecutionUpsert {
	u.Set(agentexecution.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *AgentExecutionUpsert) UpdateDurationMs() *AgentExecutionUpsert {
	u.SetExcluded(agentexecution.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *AgentExecutionUpsert) AddDurationMs(v int) *AgentExecutionUpsert {
	u.Add(agentexecution.FieldDurationMs, v)
	return u
}

// SetToolsUsed sets the "tools_used" field.
func (u *AgentExecutionUpsert) SetToolsUsed(v []string) *AgentExecutionUpsert {
	u.Set(agentexecution.FieldToolsUsed, v)
	return u
}

// UpdateToolsUsed sets the "tools_used" field to the value that was provided on create.
func (u *AgentExecutionUpsert) UpdateToolsUsed() *AgentExecutionUpsert {
	u.SetExcluded(agentexecution.FieldToolsUsed)
	return u
}

// ClearToolsUsed clears the value of the "tools_used" field.
func (u *AgentExecutionUpsert) ClearToolsUsed() *AgentExecutionUpsert {
	u.SetNull(agentexecution.FieldToolsUsed)
	return u
}

// SetError sets the "error" field.
func (u *AgentExecutionUpsert) SetError(v string) *AgentExecutionUpsert {
	u.Set(agentexecution.FieldError, v)
	return u
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *AgentExecutionUpsert) UpdateError() *AgentExecutionUpsert {
	u.SetExcluded(agentexecution.FieldError)
	return u
}

// ClearError clears the value of the "error" field.
func (u *AgentExecutionUpsert) ClearError() *AgentExecutionUpsert {
	u.SetNull(agentexecution.FieldError)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentExecution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentexecution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentExecutionUpsertOne) UpdateNewValues() *AgentExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agentexecution.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agentexecution.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentExecution.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentExecutionUpsertOne) Ignore() *AgentExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentExecutionUpsertOne) DoNothing() *AgentExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentExecutionCreate.OnConflict
// documentation for more info.
func (u *AgentExecutionUpsertOne) Update(set func(*AgentExecutionUpsert)) *AgentExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentExecutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *AgentExecutionUpsertOne) SetSessionID(v string) *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AgentExecutionUpsertOne) UpdateSessionID() *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateSessionID()
	})
}

// SetAgentRole sets the "agent_role" field.
func (u *AgentExecutionUpsertOne) SetAgentRole(v string) *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetAgentRole(v)
	})
}

// UpdateAgentRole sets the "agent_role" field to the value that was provided on create.
func (u *AgentExecutionUpsertOne) UpdateAgentRole() *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateAgentRole()
	})
}

// SetQueryType sets the "query_type" field.
func (u *AgentExecutionUpsertOne) SetQueryType(v string) *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetQueryType(v)
	})
}

// UpdateQueryType sets the "query_type" field to the value that was provided on create.
func (u *AgentExecutionUpsertOne) UpdateQueryType() *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateQueryType()
	})
}

// ClearQueryType clears the value of the "query_type" field.
func (u *AgentExecutionUpsertOne) ClearQueryType() *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.ClearQueryType()
	})
}

// SetTokensIn sets the "tokens_in" field.
func (u *AgentExecutionUpsertOne) SetTokensIn(v int) *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetTokensIn(v)
	})
}

// AddTokensIn adds v to the "tokens_in" field.
func (u *AgentExecutionUpsertOne) AddTokensIn(v int) *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.AddTokensIn(v)
	})
}

// UpdateTokensIn sets the "tokens_in" field to the value that was provided on create.
func (u *AgentExecutionUpsertOne) UpdateTokensIn() *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateTokensIn()
	})
}

// SetCacheHit sets the "cache_hit" field.
func (u *AgentExecutionUpsertOne) SetCacheHit(v bool) *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetCacheHit(v)
	})
}

// UpdateCacheHit sets the "cache_hit" field to the value that was provided on create.
func (u *AgentExecutionUpsertOne) UpdateCacheHit() *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateCacheHit()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *AgentExecutionUpsertOne) SetDurationMs(v int) *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *AgentExecutionUpsertOne) AddDurationMs(v int) *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *AgentExecutionUpsertOne) UpdateDurationMs() *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateDurationMs()
	})
}

// SetToolsUsed sets the "tools_used" field.
func (u *AgentExecutionUpsertOne) SetToolsUsed(v []string) *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetToolsUsed(v)
	})
}

// UpdateToolsUsed sets the "tools_used" field to the value that was provided on create.
func (u *AgentExecutionUpsertOne) UpdateToolsUsed() *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateToolsUsed()
	})
}

// ClearToolsUsed clears the value of the "tools_used" field.
func (u *AgentExecutionUpsertOne) ClearToolsUsed() *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.ClearToolsUsed()
	})
}

// SetError sets the "error" field.
func (u *AgentExecutionUpsertOne) SetError(v string) *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *AgentExecutionUpsertOne) UpdateError() *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *AgentExecutionUpsertOne) ClearError() *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.ClearError()
	})
}

// Exec executes the query.
func (u *AgentExecutionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentExecutionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentExecutionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentExecutionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentExecutionUpsertOne.ID is not supported by MySQL driver. Use AgentExecutionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentExecutionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentExecutionCreateBulk is the builder for creating many AgentExecution entities in bulk.
type AgentExecutionCreateBulk struct {
	config
	err      error
	builders []*AgentExecutionCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentExecution entities in the database.
func (_c *AgentExecutionCreateBulk) Save(ctx context.Context) ([]*AgentExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentExecutionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentExecutionCreateBulk) SaveX(ctx context.Context) []*AgentExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentExecution.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentExecutionUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentExecutionCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentExecutionUpsertBulk {
	_c.conflict = opts
	return &AgentExecutionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentExecution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentExecutionCreateBulk) OnConflictColumns(columns ...string) *AgentExecutionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentExecutionUpsertBulk{
		create: _c,
	}
}

// AgentExecutionUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentExecution nodes.
type AgentExecutionUpsertBulk struct {
	create *AgentExecutionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentExecution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentexecution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentExecutionUpsertBulk) UpdateNewValues() *AgentExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agentexecution.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agentexecution.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentExecution.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentExecutionUpsertBulk) Ignore() *AgentExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentExecutionUpsertBulk) DoNothing() *AgentExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentExecutionCreateBulk.OnConflict
// documentation for more info.
func (u *AgentExecutionUpsertBulk) Update(set func(*AgentExecutionUpsert)) *AgentExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentExecutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *AgentExecutionUpsertBulk) SetSessionID(v string) *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AgentExecutionUpsertBulk) UpdateSessionID() *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateSessionID()
	})
}

// SetAgentRole sets the "agent_role" field.
func (u *AgentExecutionUpsertBulk) SetAgentRole(v string) *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetAgentRole(v)
	})
}

// UpdateAgentRole sets the "agent_role" field to the value that was provided on create.
func (u *AgentExecutionUpsertBulk) UpdateAgentRole() *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateAgentRole()
	})
}

// SetQueryType sets the "query_type" field.
func (u *AgentExecutionUpsertBulk) SetQueryType(v string) *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetQueryType(v)
	})
}

// UpdateQueryType sets the "query_type" field to the value that was provided on create.
func (u *AgentExecutionUpsertBulk) UpdateQueryType() *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateQueryType()
	})
}

// ClearQueryType clears the value of the "query_type" field.
func (u *AgentExecutionUpsertBulk) ClearQueryType() *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.ClearQueryType()
	})
}

// SetTokensIn sets the "tokens_in" field.
func (u *AgentExecutionUpsertBulk) SetTokensIn(v int) *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetTokensIn(v)
	})
}

// AddTokensIn adds v to the "tokens_in" field.
func (u *AgentExecutionUpsertBulk) AddTokensIn(v int) *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.AddTokensIn(v)
	})
}

// UpdateTokensIn sets the "tokens_in" field to the value that was provided on create.
func (u *AgentExecutionUpsertBulk) UpdateTokensIn() *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateTokensIn()
	})
}

// SetCacheHit sets the "cache_hit" field.
func (u *AgentExecutionUpsertBulk) SetCacheHit(v bool) *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetCacheHit(v)
	})
}

// UpdateCacheHit sets the "cache_hit" field to the value that was provided on create.
func (u *AgentExecutionUpsertBulk) UpdateCacheHit() *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateCacheHit()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *AgentExecutionUpsertBulk) SetDurationMs(v int) *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *AgentExecutionUpsertBulk) AddDurationMs(v int) *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *AgentExecutionUpsertBulk) UpdateDurationMs() *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateDurationMs()
	})
}

// SetToolsUsed sets the "tools_used" field.
func (u *AgentExecutionUpsertBulk) SetToolsUsed(v []string) *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetToolsUsed(v)
	})
}

// UpdateToolsUsed sets the "tools_used" field to the value that was provided on create.
func (u *AgentExecutionUpsertBulk) UpdateToolsUsed() *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateToolsUsed()
	})
}

// ClearToolsUsed clears the value of the "tools_used" field.
func (u *AgentExecutionUpsertBulk) ClearToolsUsed() *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.ClearToolsUsed()
	})
}

// SetError sets the "error" field.
func (u *AgentExecutionUpsertBulk) SetError(v string) *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *AgentExecutionUpsertBulk) UpdateError() *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *AgentExecutionUpsertBulk) ClearError() *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.ClearError()
	})
}

// Exec executes the query.
func (u *AgentExecutionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentExecutionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentExecutionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentExecutionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
