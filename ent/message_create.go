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
	"github.com/offgrid-ops/commandcenter/ent/conversation"
	"github.com/offgrid-ops/commandcenter/ent/message"
)

// MessageCreate is the builder for creating a Message entity.
type MessageCreate struct {
	config
	mutation *MessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetConversationID sets the "conversation_id" field.
func (_c *MessageCreate) SetConversationID(v string) *MessageCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *MessageCreate) SetRole(v message.Role) *MessageCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *MessageCreate) SetContent(v string) *MessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetAgentRole sets the "agent_role" field.
func (_c *MessageCreate) SetAgentRole(v string) *MessageCreate {
	_c.mutation.SetAgentRole(v)
	return _c
}

// SetNillableAgentRole sets the "agent_role" field if the given value is not nil.
func (_c *MessageCreate) SetNillableAgentRole(v *string) *MessageCreate {
	if v != nil {
		_c.SetAgentRole(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *MessageCreate) SetDurationMs(v int) *MessageCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *MessageCreate) SetNillableDurationMs(v *int) *MessageCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetTokens sets the "tokens" field.
func (_c *MessageCreate) SetTokens(v int) *MessageCreate {
	_c.mutation.SetTokens(v)
	return _c
}

// SetNillableTokens sets the "tokens" field if the given value is not nil.
func (_c *MessageCreate) SetNillableTokens(v *int) *MessageCreate {
	if v != nil {
		_c.SetTokens(*v)
	}
	return _c
}

// SetCacheHit sets the "cache_hit" field.
func (_c *MessageCreate) SetCacheHit(v bool) *MessageCreate {
	_c.mutation.SetCacheHit(v)
	return _c
}

// SetNillableCacheHit sets the "cache_hit" field if the given value is not nil.
func (_c *MessageCreate) SetNillableCacheHit(v *bool) *MessageCreate {
	if v != nil {
		_c.SetCacheHit(*v)
	}
	return _c
}

// SetQueryType sets the "query_type" field.
func (_c *MessageCreate) SetQueryType(v string) *MessageCreate {
	_c.mutation.SetQueryType(v)
	return _c
}

// SetNillableQueryType sets the "query_type" field if the given value is not nil.
func (_c *MessageCreate) SetNillableQueryType(v *string) *MessageCreate {
	if v != nil {
		_c.SetQueryType(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MessageCreate) SetCreatedAt(v time.Time) *MessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MessageCreate) SetNillableCreatedAt(v *time.Time) *MessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MessageCreate) SetID(v string) *MessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetConversation sets the "conversation" edge to the Conversation entity.
func (_c *MessageCreate) SetConversation(v *Conversation) *MessageCreate {
	return _c.SetConversationID(v.ID)
}

// Mutation returns the MessageMutation object of the builder.
func (_c *MessageCreate) Mutation() *MessageMutation {
	return _c.mutation
}

// Save creates the Message in the database.
func (_c *MessageCreate) Save(ctx context.Context) (*Message, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageCreate) SaveX(ctx context.Context) *Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := message.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageCreate) check() error {
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "Message.conversation_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "Message.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := message.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Message.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Message.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Message.created_at"`)}
	}
	if len(_c.mutation.ConversationIDs()) == 0 {
		return &ValidationError{Name: "conversation", err: errors.New(`ent: missing required edge "Message.conversation"`)}
	}
	return nil
}

func (_c *MessageCreate) sqlSave(ctx context.Context) (*Message, error) {
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
			return nil, fmt.Errorf("unexpected Message.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MessageCreate) createSpec() (*Message, *sqlgraph.CreateSpec) {
	var (
		_node = &Message{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(message.Table, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(message.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.AgentRole(); ok {
		_spec.SetField(message.FieldAgentRole, field.TypeString, value)
		_node.AgentRole = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(message.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.Tokens(); ok {
		_spec.SetField(message.FieldTokens, field.TypeInt, value)
		_node.Tokens = &value
	}
	if value, ok := _c.mutation.CacheHit(); ok {
		_spec.SetField(message.FieldCacheHit, field.TypeBool, value)
		_node.CacheHit = &value
	}
	if value, ok := _c.mutation.QueryType(); ok {
		_spec.SetField(message.FieldQueryType, field.TypeString, value)
		_node.QueryType = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(message.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ConversationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   message.ConversationTable,
			Columns: []string{message.ConversationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ConversationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Message.Create().
//		SetConversationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageUpsert) {
//			SetConversationID(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageCreate) OnConflict(opts ...sql.ConflictOption) *MessageUpsertOne {
	_c.conflict = opts
	return &MessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageCreate) OnConflictColumns(columns ...string) *MessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageUpsertOne{
		create: _c,
	}
}

type (
	// MessageUpsertOne is the builder for "upsert"-ing
	//  one Message node.
	MessageUpsertOne struct {
		create *MessageCreate
	}

	// MessageUpsert is the "OnConflict" setter.
	MessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetRole sets the "role" field.
func (u *MessageUpsert) SetRole(v message.Role) *MessageUpsert {
	u.Set(message.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *MessageUpsert) UpdateRole() *MessageUpsert {
	u.SetExcluded(message.FieldRole)
	return u
}

// SetContent sets the "content" field.
func (u *MessageUpsert) SetContent(v string) *MessageUpsert {
	u.Set(message.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MessageUpsert) UpdateContent() *MessageUpsert {
	u.SetExcluded(message.FieldContent)
	return u
}

// SetAgentRole sets the "agent_role" field.
func (u *MessageUpsert) SetAgentRole(v string) *MessageUpsert {
	u.Set(message.FieldAgentRole, v)
	return u
}

// UpdateAgentRole sets the "agent_role" field to the value that was provided on create.
func (u *MessageUpsert) UpdateAgentRole() *MessageUpsert {
	u.SetExcluded(message.FieldAgentRole)
	return u
}

// ClearAgentRole clears the value of the "agent_role" field.
func (u *MessageUpsert) ClearAgentRole() *MessageUpsert {
	u.SetNull(message.FieldAgentRole)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *MessageUpsert) SetDurationMs(v int) *MessageUpsert {
	u.Set(message.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *MessageUpsert) UpdateDurationMs() *MessageUpsert {
	u.SetExcluded(message.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *MessageUpsert) AddDurationMs(v int) *MessageUpsert {
	u.Add(message.FieldDurationMs, v)
	return u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *MessageUpsert) ClearDurationMs() *MessageUpsert {
	u.SetNull(message.FieldDurationMs)
	return u
}

// SetTokens sets the "tokens" field.
func (u *MessageUpsert) SetTokens(v int) *MessageUpsert {
	u.Set(message.FieldTokens, v)
	return u
}

// UpdateTokens sets the "tokens" field to the value that was provided on create.
func (u *MessageUpsert) UpdateTokens() *MessageUpsert {
	u.SetExcluded(message.FieldTokens)
	return u
}

// AddTokens adds v to the "tokens" field.
func (u *MessageUpsert) AddTokens(v int) *MessageUpsert {
	u.Add(message.FieldTokens, v)
	return u
}

// ClearTokens clears the value of the "tokens" field.
func (u *MessageUpsert) ClearTokens() *MessageUpsert {
	u.SetNull(message.FieldTokens)
	return u
}

// SetCacheHit sets the "cache_hit" field.
func (u *MessageUpsert) SetCacheHit(v bool) *MessageUpsert {
	u.Set(message.FieldCacheHit, v)
	return u
}

// UpdateCacheHit sets the "cache_hit" field to the value that was provided on create.
func (u *MessageUpsert) UpdateCacheHit() *MessageUpsert {
	u.SetExcluded(message.FieldCacheHit)
	return u
}

// ClearCacheHit clears the value of the "cache_hit" field.
func (u *MessageUpsert) ClearCacheHit() *MessageUpsert {
	u.SetNull(message.FieldCacheHit)
	return u
}

// SetQueryType sets the "query_type" field.
func (u *MessageUpsert) SetQueryType(v string) *MessageUpsert {
	u.Set(message.FieldQueryType, v)
	return u
}

// UpdateQueryType sets the "query_type" field to the value that was provided on create.
func (u *MessageUpsert) UpdateQueryType() *MessageUpsert {
	u.SetExcluded(message.FieldQueryType)
	return u
}

// ClearQueryType clears the value of the "query_type" field.
func (u *MessageUpsert) ClearQueryType() *MessageUpsert {
	u.SetNull(message.FieldQueryType)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(message.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageUpsertOne) UpdateNewValues() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(message.FieldID)
		}
		if _, exists := u.create.mutation.ConversationID(); exists {
			s.SetIgnore(message.FieldConversationID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(message.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MessageUpsertOne) Ignore() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageUpsertOne) DoNothing() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageCreate.OnConflict
// documentation for more info.
func (u *MessageUpsertOne) Update(set func(*MessageUpsert)) *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetRole sets the "role" field.
func (u *MessageUpsertOne) SetRole(v message.Role) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateRole() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateRole()
	})
}

// SetContent sets the "content" field.
func (u *MessageUpsertOne) SetContent(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateContent() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateContent()
	})
}

// SetAgentRole sets the "agent_role" field.
func (u *MessageUpsertOne) SetAgentRole(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetAgentRole(v)
	})
}

// UpdateAgentRole sets the "agent_role" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateAgentRole() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateAgentRole()
	})
}

// ClearAgentRole clears the value of the "agent_role" field.
func (u *MessageUpsertOne) ClearAgentRole() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearAgentRole()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *MessageUpsertOne) SetDurationMs(v int) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *MessageUpsertOne) AddDurationMs(v int) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateDurationMs() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *MessageUpsertOne) ClearDurationMs() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearDurationMs()
	})
}

// SetTokens sets the "tokens" field.
func (u *MessageUpsertOne) SetTokens(v int) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetTokens(v)
	})
}

// AddTokens adds v to the "tokens" field.
func (u *MessageUpsertOne) AddTokens(v int) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.AddTokens(v)
	})
}

// UpdateTokens sets the "tokens" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateTokens() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateTokens()
	})
}

// ClearTokens clears the value of the "tokens" field.
func (u *MessageUpsertOne) ClearTokens() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearTokens()
	})
}

// SetCacheHit sets the "cache_hit" field.
func (u *MessageUpsertOne) SetCacheHit(v bool) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetCacheHit(v)
	})
}

// UpdateCacheHit sets the "cache_hit" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateCacheHit() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateCacheHit()
	})
}

// ClearCacheHit clears the value of the "cache_hit" field.
func (u *MessageUpsertOne) ClearCacheHit() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearCacheHit()
	})
}

// SetQueryType sets the "query_type" field.
func (u *MessageUpsertOne) SetQueryType(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetQueryType(v)
	})
}

// UpdateQueryType sets the "query_type" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateQueryType() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateQueryType()
	})
}

// ClearQueryType clears the value of the "query_type" field.
func (u *MessageUpsertOne) ClearQueryType() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearQueryType()
	})
}

// Exec executes the query.
func (u *MessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MessageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MessageUpsertOne.ID is not supported by MySQL driver. Use MessageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MessageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MessageCreateBulk is the builder for creating many Message entities in bulk.
type MessageCreateBulk struct {
	config
	err      error
	builders []*MessageCreate
	conflict []sql.ConflictOption
}

// Save creates the Message entities in the database.
func (_c *MessageCreateBulk) Save(ctx context.Context) ([]*Message, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Message, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageMutation)
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
func (_c *MessageCreateBulk) SaveX(ctx context.Context) []*Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Message.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageUpsert) {
//			SetConversationID(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *MessageUpsertBulk {
	_c.conflict = opts
	return &MessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageCreateBulk) OnConflictColumns(columns ...string) *MessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageUpsertBulk{
		create: _c,
	}
}

// MessageUpsertBulk is the builder for "upsert"-ing
// a bulk of Message nodes.
type MessageUpsertBulk struct {
	create *MessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(message.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageUpsertBulk) UpdateNewValues() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(message.FieldID)
			}
			if _, exists := b.mutation.ConversationID(); exists {
				s.SetIgnore(message.FieldConversationID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(message.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MessageUpsertBulk) Ignore() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageUpsertBulk) DoNothing() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageCreateBulk.OnConflict
// documentation for more info.
func (u *MessageUpsertBulk) Update(set func(*MessageUpsert)) *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetRole sets the "role" field.
func (u *MessageUpsertBulk) SetRole(v message.Role) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateRole() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateRole()
	})
}

// SetContent sets the "content" field.
func (u *MessageUpsertBulk) SetContent(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateContent() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateContent()
	})
}

// SetAgentRole sets the "agent_role" field.
func (u *MessageUpsertBulk) SetAgentRole(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetAgentRole(v)
	})
}

// UpdateAgentRole sets the "agent_role" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateAgentRole() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateAgentRole()
	})
}

// ClearAgentRole clears the value of the "agent_role" field.
func (u *MessageUpsertBulk) ClearAgentRole() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearAgentRole()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *MessageUpsertBulk) SetDurationMs(v int) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *MessageUpsertBulk) AddDurationMs(v int) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateDurationMs() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *MessageUpsertBulk) ClearDurationMs() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearDurationMs()
	})
}

// SetTokens sets the "tokens" field.
func (u *MessageUpsertBulk) SetTokens(v int) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetTokens(v)
	})
}

// AddTokens adds v to the "tokens" field.
func (u *MessageUpsertBulk) AddTokens(v int) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.AddTokens(v)
	})
}

// UpdateTokens sets the "tokens" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateTokens() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateTokens()
	})
}

// ClearTokens clears the value of the "tokens" field.
func (u *MessageUpsertBulk) ClearTokens() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearTokens()
	})
}

// SetCacheHit sets the "cache_hit" field.
func (u *MessageUpsertBulk) SetCacheHit(v bool) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetCacheHit(v)
	})
}

// UpdateCacheHit sets the "cache_hit" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateCacheHit() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateCacheHit()
	})
}

// ClearCacheHit clears the value of the "cache_hit" field.
func (u *MessageUpsertBulk) ClearCacheHit() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearCacheHit()
	})
}

// SetQueryType sets the "query_type" field.
func (u *MessageUpsertBulk) SetQueryType(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetQueryType(v)
	})
}

// UpdateQueryType sets the "query_type" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateQueryType() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateQueryType()
	})
}

// ClearQueryType clears the value of the "query_type" field.
func (u *MessageUpsertBulk) ClearQueryType() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearQueryType()
	})
}

// Exec executes the query.
func (u *MessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
