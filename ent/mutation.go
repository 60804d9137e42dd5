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
	"github.com/offgrid-ops/commandcenter/ent/agentexecution"
	"github.com/offgrid-ops/commandcenter/ent/chunk"
	"github.com/offgrid-ops/commandcenter/ent/conversation"
	"github.com/offgrid-ops/commandcenter/ent/document"
	"github.com/offgrid-ops/commandcenter/ent/message"
	"github.com/offgrid-ops/commandcenter/ent/predicate"
	"github.com/offgrid-ops/commandcenter/ent/solarksample"
	"github.com/offgrid-ops/commandcenter/ent/synclog"
	"github.com/offgrid-ops/commandcenter/ent/victronsample"
	pgvector "github.com/pgvector/pgvector-go"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentExecution = "AgentExecution"
	TypeChunk          = "Chunk"
	TypeConversation   = "Conversation"
	TypeDocument       = "Document"
	TypeMessage        = "Message"
	TypeSolarkSample   = "SolarkSample"
	TypeSyncLog        = "SyncLog"
	TypeVictronSample  = "VictronSample"
)

// AgentExecutionMutation represents an operation that mutates the AgentExecution nodes in the graph.
type AgentExecutionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	session_id       *string
	agent_role       *string
	query_type       *string
	tokens_in        *int
	addtokens_in     *int
	cache_hit        *bool
	duration_ms      *int
	addduration_ms   *int
	tools_used       *[]string
	appendtools_used []string
	error            *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*AgentExecution, error)
	predicates       []predicate.AgentExecution
}

var _ ent.Mutation = (*AgentExecutionMutation)(nil)

// agentexecutionOption allows management of the mutation configuration using functional options.
type agentexecutionOption func(*AgentExecutionMutation)

// newAgentExecutionMutation creates new mutation for the AgentExecution entity.
func newAgentExecutionMutation(c config, op Op, opts ...agentexecutionOption) *AgentExecutionMutation {
	m := &AgentExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentExecutionID sets the ID field of the mutation.
func withAgentExecutionID(id string) agentexecutionOption {
	return func(m *AgentExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentExecution
		)
		m.oldValue = func(ctx context.Context) (*AgentExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentExecution sets the old AgentExecution of the mutation.
func withAgentExecution(node *AgentExecution) agentexecutionOption {
	return func(m *AgentExecutionMutation) {
		m.oldValue = func(context.Context) (*AgentExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentExecution entities.
func (m *AgentExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *AgentExecutionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AgentExecutionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AgentExecutionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetAgentRole sets the "agent_role" field.
func (m *AgentExecutionMutation) SetAgentRole(s string) {
	m.agent_role = &s
}

// AgentRole returns the value of the "agent_role" field in the mutation.
func (m *AgentExecutionMutation) AgentRole() (r string, exists bool) {
	v := m.agent_role
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentRole returns the old "agent_role" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldAgentRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentRole: %w", err)
	}
	return oldValue.AgentRole, nil
}

// ResetAgentRole resets all changes to the "agent_role" field.
func (m *AgentExecutionMutation) ResetAgentRole() {
	m.agent_role = nil
}

// SetQueryType sets the "query_type" field.
func (m *AgentExecutionMutation) SetQueryType(s string) {
	m.query_type = &s
}

// QueryType returns the value of the "query_type" field in the mutation.
func (m *AgentExecutionMutation) QueryType() (r string, exists bool) {
	v := m.query_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQueryType returns the old "query_type" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldQueryType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueryType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueryType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueryType: %w", err)
	}
	return oldValue.QueryType, nil
}

// ClearQueryType clears the value of the "query_type" field.
func (m *AgentExecutionMutation) ClearQueryType() {
	m.query_type = nil
	m.clearedFields[agentexecution.FieldQueryType] = struct{}{}
}

// QueryTypeCleared returns if the "query_type" field was cleared in this mutation.
func (m *AgentExecutionMutation) QueryTypeCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldQueryType]
	return ok
}

// ResetQueryType resets all changes to the "query_type" field.
func (m *AgentExecutionMutation) ResetQueryType() {
	m.query_type = nil
	delete(m.clearedFields, agentexecution.FieldQueryType)
}

// SetTokensIn sets the "tokens_in" field.
func (m *AgentExecutionMutation) SetTokensIn(i int) {
	m.tokens_in = &i
	m.addtokens_in = nil
}

// TokensIn returns the value of the "tokens_in" field in the mutation.
func (m *AgentExecutionMutation) TokensIn() (r int, exists bool) {
	v := m.tokens_in
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensIn returns the old "tokens_in" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldTokensIn(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensIn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensIn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensIn: %w", err)
	}
	return oldValue.TokensIn, nil
}

// AddTokensIn adds i to the "tokens_in" field.
func (m *AgentExecutionMutation) AddTokensIn(i int) {
	if m.addtokens_in != nil {
		*m.addtokens_in += i
	} else {
		m.addtokens_in = &i
	}
}

// AddedTokensIn returns the value that was added to the "tokens_in" field in this mutation.
func (m *AgentExecutionMutation) AddedTokensIn() (r int, exists bool) {
	v := m.addtokens_in
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensIn resets all changes to the "tokens_in" field.
func (m *AgentExecutionMutation) ResetTokensIn() {
	m.tokens_in = nil
	m.addtokens_in = nil
}

// SetCacheHit sets the "cache_hit" field.
func (m *AgentExecutionMutation) SetCacheHit(b bool) {
	m.cache_hit = &b
}

// CacheHit returns the value of the "cache_hit" field in the mutation.
func (m *AgentExecutionMutation) CacheHit() (r bool, exists bool) {
	v := m.cache_hit
	if v == nil {
		return
	}
	return *v, true
}

// OldCacheHit returns the old "cache_hit" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldCacheHit(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCacheHit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCacheHit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCacheHit: %w", err)
	}
	return oldValue.CacheHit, nil
}

// ResetCacheHit resets all changes to the "cache_hit" field.
func (m *AgentExecutionMutation) ResetCacheHit() {
	m.cache_hit = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *AgentExecutionMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *AgentExecutionMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldDurationMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *AgentExecutionMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *AgentExecutionMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *AgentExecutionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetToolsUsed sets the "tools_used" field.
func (m *AgentExecutionMutation) SetToolsUsed(s []string) {
	m.tools_used = &s
	m.appendtools_used = nil
}

// ToolsUsed returns the value of the "tools_used" field in the mutation.
func (m *AgentExecutionMutation) ToolsUsed() (r []string, exists bool) {
	v := m.tools_used
	if v == nil {
		return
	}
	return *v, true
}

// OldToolsUsed returns the old "tools_used" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldToolsUsed(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolsUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolsUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolsUsed: %w", err)
	}
	return oldValue.ToolsUsed, nil
}

// AppendToolsUsed adds s to the "tools_used" field.
func (m *AgentExecutionMutation) AppendToolsUsed(s []string) {
	m.appendtools_used = append(m.appendtools_used, s...)
}

// AppendedToolsUsed returns the list of values that were appended to the "tools_used" field in this mutation.
func (m *AgentExecutionMutation) AppendedToolsUsed() ([]string, bool) {
	if len(m.appendtools_used) == 0 {
		return nil, false
	}
	return m.appendtools_used, true
}

// ClearToolsUsed clears the value of the "tools_used" field.
func (m *AgentExecutionMutation) ClearToolsUsed() {
	m.tools_used = nil
	m.appendtools_used = nil
	m.clearedFields[agentexecution.FieldToolsUsed] = struct{}{}
}

// ToolsUsedCleared returns if the "tools_used" field was cleared in this mutation.
func (m *AgentExecutionMutation) ToolsUsedCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldToolsUsed]
	return ok
}

// ResetToolsUsed resets all changes to the "tools_used" field.
func (m *AgentExecutionMutation) ResetToolsUsed() {
	m.tools_used = nil
	m.appendtools_used = nil
	delete(m.clearedFields, agentexecution.FieldToolsUsed)
}

// SetError sets the "error" field.
func (m *AgentExecutionMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *AgentExecutionMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *AgentExecutionMutation) ClearError() {
	m.error = nil
	m.clearedFields[agentexecution.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *AgentExecutionMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *AgentExecutionMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, agentexecution.FieldError)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AgentExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AgentExecutionMutation builder.
func (m *AgentExecutionMutation) Where(ps ...predicate.AgentExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentExecution).
func (m *AgentExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentExecutionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.session_id != nil {
		fields = append(fields, agentexecution.FieldSessionID)
	}
	if m.agent_role != nil {
		fields = append(fields, agentexecution.FieldAgentRole)
	}
	if m.query_type != nil {
		fields = append(fields, agentexecution.FieldQueryType)
	}
	if m.tokens_in != nil {
		fields = append(fields, agentexecution.FieldTokensIn)
	}
	if m.cache_hit != nil {
		fields = append(fields, agentexecution.FieldCacheHit)
	}
	if m.duration_ms != nil {
		fields = append(fields, agentexecution.FieldDurationMs)
	}
	if m.tools_used != nil {
		fields = append(fields, agentexecution.FieldToolsUsed)
	}
	if m.error != nil {
		fields = append(fields, agentexecution.FieldError)
	}
	if m.created_at != nil {
		fields = append(fields, agentexecution.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentexecution.FieldSessionID:
		return m.SessionID()
	case agentexecution.FieldAgentRole:
		return m.AgentRole()
	case agentexecution.FieldQueryType:
		return m.QueryType()
	case agentexecution.FieldTokensIn:
		return m.TokensIn()
	case agentexecution.FieldCacheHit:
		return m.CacheHit()
	case agentexecution.FieldDurationMs:
		return m.DurationMs()
	case agentexecution.FieldToolsUsed:
		return m.ToolsUsed()
	case agentexecution.FieldError:
		return m.Error()
	case agentexecution.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentexecution.FieldSessionID:
		return m.OldSessionID(ctx)
	case agentexecution.FieldAgentRole:
		return m.OldAgentRole(ctx)
	case agentexecution.FieldQueryType:
		return m.OldQueryType(ctx)
	case agentexecution.FieldTokensIn:
		return m.OldTokensIn(ctx)
	case agentexecution.FieldCacheHit:
		return m.OldCacheHit(ctx)
	case agentexecution.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case agentexecution.FieldToolsUsed:
		return m.OldToolsUsed(ctx)
	case agentexecution.FieldError:
		return m.OldError(ctx)
	case agentexecution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentexecution.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case agentexecution.FieldAgentRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentRole(v)
		return nil
	case agentexecution.FieldQueryType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueryType(v)
		return nil
	case agentexecution.FieldTokensIn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensIn(v)
		return nil
	case agentexecution.FieldCacheHit:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCacheHit(v)
		return nil
	case agentexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case agentexecution.FieldToolsUsed:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolsUsed(v)
		return nil
	case agentexecution.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case agentexecution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addtokens_in != nil {
		fields = append(fields, agentexecution.FieldTokensIn)
	}
	if m.addduration_ms != nil {
		fields = append(fields, agentexecution.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentexecution.FieldTokensIn:
		return m.AddedTokensIn()
	case agentexecution.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentexecution.FieldTokensIn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensIn(v)
		return nil
	case agentexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown AgentExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentexecution.FieldQueryType) {
		fields = append(fields, agentexecution.FieldQueryType)
	}
	if m.FieldCleared(agentexecution.FieldToolsUsed) {
		fields = append(fields, agentexecution.FieldToolsUsed)
	}
	if m.FieldCleared(agentexecution.FieldError) {
		fields = append(fields, agentexecution.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentExecutionMutation) ClearField(name string) error {
	switch name {
	case agentexecution.FieldQueryType:
		m.ClearQueryType()
		return nil
	case agentexecution.FieldToolsUsed:
		m.ClearToolsUsed()
		return nil
	case agentexecution.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentExecutionMutation) ResetField(name string) error {
	switch name {
	case agentexecution.FieldSessionID:
		m.ResetSessionID()
		return nil
	case agentexecution.FieldAgentRole:
		m.ResetAgentRole()
		return nil
	case agentexecution.FieldQueryType:
		m.ResetQueryType()
		return nil
	case agentexecution.FieldTokensIn:
		m.ResetTokensIn()
		return nil
	case agentexecution.FieldCacheHit:
		m.ResetCacheHit()
		return nil
	case agentexecution.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case agentexecution.FieldToolsUsed:
		m.ResetToolsUsed()
		return nil
	case agentexecution.FieldError:
		m.ResetError()
		return nil
	case agentexecution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentExecutionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentExecutionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentExecutionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentExecutionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentExecution edge %s", name)
}

// ChunkMutation represents an operation that mutates the Chunk nodes in the graph.
type ChunkMutation struct {
	config
	op              Op
	typ             string
	id              *string
	order_index     *int
	addorder_index  *int
	text            *string
	token_count     *int
	addtoken_count  *int
	embedding       *pgvector.Vector
	clearedFields   map[string]struct{}
	document        *string
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*Chunk, error)
	predicates      []predicate.Chunk
}

var _ ent.Mutation = (*ChunkMutation)(nil)

// chunkOption allows management of the mutation configuration using functional options.
type chunkOption func(*ChunkMutation)

// newChunkMutation creates new mutation for the Chunk entity.
func newChunkMutation(c config, op Op, opts ...chunkOption) *ChunkMutation {
	m := &ChunkMutation{
		config:        c,
		op:            op,
		typ:           TypeChunk,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChunkID sets the ID field of the mutation.
func withChunkID(id string) chunkOption {
	return func(m *ChunkMutation) {
		var (
			err   error
			once  sync.Once
			value *Chunk
		)
		m.oldValue = func(ctx context.Context) (*Chunk, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Chunk.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChunk sets the old Chunk of the mutation.
func withChunk(node *Chunk) chunkOption {
	return func(m *ChunkMutation) {
		m.oldValue = func(context.Context) (*Chunk, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChunkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChunkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Chunk entities.
func (m *ChunkMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChunkMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChunkMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Chunk.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ChunkMutation) SetDocumentID(s string) {
	m.document = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ChunkMutation) DocumentID() (r string, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ChunkMutation) ResetDocumentID() {
	m.document = nil
}

// SetOrderIndex sets the "order_index" field.
func (m *ChunkMutation) SetOrderIndex(i int) {
	m.order_index = &i
	m.addorder_index = nil
}

// OrderIndex returns the value of the "order_index" field in the mutation.
func (m *ChunkMutation) OrderIndex() (r int, exists bool) {
	v := m.order_index
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderIndex returns the old "order_index" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldOrderIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderIndex: %w", err)
	}
	return oldValue.OrderIndex, nil
}

// AddOrderIndex adds i to the "order_index" field.
func (m *ChunkMutation) AddOrderIndex(i int) {
	if m.addorder_index != nil {
		*m.addorder_index += i
	} else {
		m.addorder_index = &i
	}
}

// AddedOrderIndex returns the value that was added to the "order_index" field in this mutation.
func (m *ChunkMutation) AddedOrderIndex() (r int, exists bool) {
	v := m.addorder_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrderIndex resets all changes to the "order_index" field.
func (m *ChunkMutation) ResetOrderIndex() {
	m.order_index = nil
	m.addorder_index = nil
}

// SetText sets the "text" field.
func (m *ChunkMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *ChunkMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *ChunkMutation) ResetText() {
	m.text = nil
}

// SetTokenCount sets the "token_count" field.
func (m *ChunkMutation) SetTokenCount(i int) {
	m.token_count = &i
	m.addtoken_count = nil
}

// TokenCount returns the value of the "token_count" field in the mutation.
func (m *ChunkMutation) TokenCount() (r int, exists bool) {
	v := m.token_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenCount returns the old "token_count" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldTokenCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenCount: %w", err)
	}
	return oldValue.TokenCount, nil
}

// AddTokenCount adds i to the "token_count" field.
func (m *ChunkMutation) AddTokenCount(i int) {
	if m.addtoken_count != nil {
		*m.addtoken_count += i
	} else {
		m.addtoken_count = &i
	}
}

// AddedTokenCount returns the value that was added to the "token_count" field in this mutation.
func (m *ChunkMutation) AddedTokenCount() (r int, exists bool) {
	v := m.addtoken_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokenCount resets all changes to the "token_count" field.
func (m *ChunkMutation) ResetTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
}

// SetEmbedding sets the "embedding" field.
func (m *ChunkMutation) SetEmbedding(pg pgvector.Vector) {
	m.embedding = &pg
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *ChunkMutation) Embedding() (r pgvector.Vector, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldEmbedding(ctx context.Context) (v pgvector.Vector, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *ChunkMutation) ResetEmbedding() {
	m.embedding = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ChunkMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[chunk.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ChunkMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ChunkMutation) DocumentIDs() (ids []string) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ChunkMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the ChunkMutation builder.
func (m *ChunkMutation) Where(ps ...predicate.Chunk) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChunkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChunkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Chunk, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChunkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChunkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Chunk).
func (m *ChunkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChunkMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.document != nil {
		fields = append(fields, chunk.FieldDocumentID)
	}
	if m.order_index != nil {
		fields = append(fields, chunk.FieldOrderIndex)
	}
	if m.text != nil {
		fields = append(fields, chunk.FieldText)
	}
	if m.token_count != nil {
		fields = append(fields, chunk.FieldTokenCount)
	}
	if m.embedding != nil {
		fields = append(fields, chunk.FieldEmbedding)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChunkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chunk.FieldDocumentID:
		return m.DocumentID()
	case chunk.FieldOrderIndex:
		return m.OrderIndex()
	case chunk.FieldText:
		return m.Text()
	case chunk.FieldTokenCount:
		return m.TokenCount()
	case chunk.FieldEmbedding:
		return m.Embedding()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChunkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chunk.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case chunk.FieldOrderIndex:
		return m.OldOrderIndex(ctx)
	case chunk.FieldText:
		return m.OldText(ctx)
	case chunk.FieldTokenCount:
		return m.OldTokenCount(ctx)
	case chunk.FieldEmbedding:
		return m.OldEmbedding(ctx)
	}
	return nil, fmt.Errorf("unknown Chunk field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChunkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chunk.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case chunk.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderIndex(v)
		return nil
	case chunk.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case chunk.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenCount(v)
		return nil
	case chunk.FieldEmbedding:
		v, ok := value.(pgvector.Vector)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	}
	return fmt.Errorf("unknown Chunk field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChunkMutation) AddedFields() []string {
	var fields []string
	if m.addorder_index != nil {
		fields = append(fields, chunk.FieldOrderIndex)
	}
	if m.addtoken_count != nil {
		fields = append(fields, chunk.FieldTokenCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChunkMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chunk.FieldOrderIndex:
		return m.AddedOrderIndex()
	case chunk.FieldTokenCount:
		return m.AddedTokenCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChunkMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chunk.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderIndex(v)
		return nil
	case chunk.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenCount(v)
		return nil
	}
	return fmt.Errorf("unknown Chunk numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChunkMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChunkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChunkMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Chunk nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChunkMutation) ResetField(name string) error {
	switch name {
	case chunk.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case chunk.FieldOrderIndex:
		m.ResetOrderIndex()
		return nil
	case chunk.FieldText:
		m.ResetText()
		return nil
	case chunk.FieldTokenCount:
		m.ResetTokenCount()
		return nil
	case chunk.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	}
	return fmt.Errorf("unknown Chunk field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChunkMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, chunk.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChunkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chunk.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChunkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChunkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChunkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, chunk.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChunkMutation) EdgeCleared(name string) bool {
	switch name {
	case chunk.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChunkMutation) ClearEdge(name string) error {
	switch name {
	case chunk.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown Chunk unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChunkMutation) ResetEdge(name string) error {
	switch name {
	case chunk.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown Chunk edge %s", name)
}

// ConversationMutation represents an operation that mutates the Conversation nodes in the graph.
type ConversationMutation struct {
	config
	op              Op
	typ             string
	id              *string
	title           *string
	agent_role      *string
	status          *conversation.Status
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	messages        map[string]struct{}
	removedmessages map[string]struct{}
	clearedmessages bool
	done            bool
	oldValue        func(context.Context) (*Conversation, error)
	predicates      []predicate.Conversation
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

// SetTitle sets the "title" field.
func (m *ConversationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ConversationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldTitle(ctx context.Context) (v *string, err error) {
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
func (m *ConversationMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[conversation.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *ConversationMutation) TitleCleared() bool {
	_, ok := m.clearedFields[conversation.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *ConversationMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, conversation.FieldTitle)
}

// SetAgentRole sets the "agent_role" field.
func (m *ConversationMutation) SetAgentRole(s string) {
	m.agent_role = &s
}

// AgentRole returns the value of the "agent_role" field in the mutation.
func (m *ConversationMutation) AgentRole() (r string, exists bool) {
	v := m.agent_role
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentRole returns the old "agent_role" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldAgentRole(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentRole: %w", err)
	}
	return oldValue.AgentRole, nil
}

// ClearAgentRole clears the value of the "agent_role" field.
func (m *ConversationMutation) ClearAgentRole() {
	m.agent_role = nil
	m.clearedFields[conversation.FieldAgentRole] = struct{}{}
}

// AgentRoleCleared returns if the "agent_role" field was cleared in this mutation.
func (m *ConversationMutation) AgentRoleCleared() bool {
	_, ok := m.clearedFields[conversation.FieldAgentRole]
	return ok
}

// ResetAgentRole resets all changes to the "agent_role" field.
func (m *ConversationMutation) ResetAgentRole() {
	m.agent_role = nil
	delete(m.clearedFields, conversation.FieldAgentRole)
}

// SetStatus sets the "status" field.
func (m *ConversationMutation) SetStatus(c conversation.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ConversationMutation) Status() (r conversation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldStatus(ctx context.Context) (v conversation.Status, err error) {
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
func (m *ConversationMutation) ResetStatus() {
	m.status = nil
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
	fields := make([]string, 0, 5)
	if m.title != nil {
		fields = append(fields, conversation.FieldTitle)
	}
	if m.agent_role != nil {
		fields = append(fields, conversation.FieldAgentRole)
	}
	if m.status != nil {
		fields = append(fields, conversation.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, conversation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, conversation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldTitle:
		return m.Title()
	case conversation.FieldAgentRole:
		return m.AgentRole()
	case conversation.FieldStatus:
		return m.Status()
	case conversation.FieldCreatedAt:
		return m.CreatedAt()
	case conversation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversation.FieldTitle:
		return m.OldTitle(ctx)
	case conversation.FieldAgentRole:
		return m.OldAgentRole(ctx)
	case conversation.FieldStatus:
		return m.OldStatus(ctx)
	case conversation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case conversation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Conversation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case conversation.FieldAgentRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentRole(v)
		return nil
	case conversation.FieldStatus:
		v, ok := value.(conversation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
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
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Conversation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversation.FieldTitle) {
		fields = append(fields, conversation.FieldTitle)
	}
	if m.FieldCleared(conversation.FieldAgentRole) {
		fields = append(fields, conversation.FieldAgentRole)
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
	case conversation.FieldTitle:
		m.ClearTitle()
		return nil
	case conversation.FieldAgentRole:
		m.ClearAgentRole()
		return nil
	}
	return fmt.Errorf("unknown Conversation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationMutation) ResetField(name string) error {
	switch name {
	case conversation.FieldTitle:
		m.ResetTitle()
		return nil
	case conversation.FieldAgentRole:
		m.ResetAgentRole()
		return nil
	case conversation.FieldStatus:
		m.ResetStatus()
		return nil
	case conversation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case conversation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.messages != nil {
		edges = append(edges, conversation.EdgeMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationMutation) AddedIDs(name string) []ent.Value {
	switch name {
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
	edges := make([]string, 0, 1)
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
	edges := make([]string, 0, 1)
	if m.clearedmessages {
		edges = append(edges, conversation.EdgeMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationMutation) EdgeCleared(name string) bool {
	switch name {
	case conversation.EdgeMessages:
		return m.clearedmessages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Conversation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationMutation) ResetEdge(name string) error {
	switch name {
	case conversation.EdgeMessages:
		m.ResetMessages()
		return nil
	}
	return fmt.Errorf("unknown Conversation edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op              Op
	typ             string
	id              *string
	external_id     *string
	title           *string
	folder_path     *string
	mime_kind       *document.MimeKind
	full_text       *string
	is_context_file *bool
	token_count     *int
	addtoken_count  *int
	status          *document.Status
	last_synced_at  *time.Time
	sync_error      *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	chunks          map[string]struct{}
	removedchunks   map[string]struct{}
	clearedchunks   bool
	done            bool
	oldValue        func(context.Context) (*Document, error)
	predicates      []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id string) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExternalID sets the "external_id" field.
func (m *DocumentMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *DocumentMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *DocumentMutation) ResetExternalID() {
	m.external_id = nil
}

// SetTitle sets the "title" field.
func (m *DocumentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *DocumentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTitle(ctx context.Context) (v string, err error) {
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
func (m *DocumentMutation) ResetTitle() {
	m.title = nil
}

// SetFolderPath sets the "folder_path" field.
func (m *DocumentMutation) SetFolderPath(s string) {
	m.folder_path = &s
}

// FolderPath returns the value of the "folder_path" field in the mutation.
func (m *DocumentMutation) FolderPath() (r string, exists bool) {
	v := m.folder_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFolderPath returns the old "folder_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFolderPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFolderPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFolderPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFolderPath: %w", err)
	}
	return oldValue.FolderPath, nil
}

// ResetFolderPath resets all changes to the "folder_path" field.
func (m *DocumentMutation) ResetFolderPath() {
	m.folder_path = nil
}

// SetMimeKind sets the "mime_kind" field.
func (m *DocumentMutation) SetMimeKind(dk document.MimeKind) {
	m.mime_kind = &dk
}

// MimeKind returns the value of the "mime_kind" field in the mutation.
func (m *DocumentMutation) MimeKind() (r document.MimeKind, exists bool) {
	v := m.mime_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeKind returns the old "mime_kind" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldMimeKind(ctx context.Context) (v document.MimeKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeKind: %w", err)
	}
	return oldValue.MimeKind, nil
}

// ResetMimeKind resets all changes to the "mime_kind" field.
func (m *DocumentMutation) ResetMimeKind() {
	m.mime_kind = nil
}

// SetFullText sets the "full_text" field.
func (m *DocumentMutation) SetFullText(s string) {
	m.full_text = &s
}

// FullText returns the value of the "full_text" field in the mutation.
func (m *DocumentMutation) FullText() (r string, exists bool) {
	v := m.full_text
	if v == nil {
		return
	}
	return *v, true
}

// OldFullText returns the old "full_text" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFullText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullText: %w", err)
	}
	return oldValue.FullText, nil
}

// ResetFullText resets all changes to the "full_text" field.
func (m *DocumentMutation) ResetFullText() {
	m.full_text = nil
}

// SetIsContextFile sets the "is_context_file" field.
func (m *DocumentMutation) SetIsContextFile(b bool) {
	m.is_context_file = &b
}

// IsContextFile returns the value of the "is_context_file" field in the mutation.
func (m *DocumentMutation) IsContextFile() (r bool, exists bool) {
	v := m.is_context_file
	if v == nil {
		return
	}
	return *v, true
}

// OldIsContextFile returns the old "is_context_file" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldIsContextFile(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsContextFile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsContextFile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsContextFile: %w", err)
	}
	return oldValue.IsContextFile, nil
}

// ResetIsContextFile resets all changes to the "is_context_file" field.
func (m *DocumentMutation) ResetIsContextFile() {
	m.is_context_file = nil
}

// SetTokenCount sets the "token_count" field.
func (m *DocumentMutation) SetTokenCount(i int) {
	m.token_count = &i
	m.addtoken_count = nil
}

// TokenCount returns the value of the "token_count" field in the mutation.
func (m *DocumentMutation) TokenCount() (r int, exists bool) {
	v := m.token_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenCount returns the old "token_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTokenCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenCount: %w", err)
	}
	return oldValue.TokenCount, nil
}

// AddTokenCount adds i to the "token_count" field.
func (m *DocumentMutation) AddTokenCount(i int) {
	if m.addtoken_count != nil {
		*m.addtoken_count += i
	} else {
		m.addtoken_count = &i
	}
}

// AddedTokenCount returns the value that was added to the "token_count" field in this mutation.
func (m *DocumentMutation) AddedTokenCount() (r int, exists bool) {
	v := m.addtoken_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokenCount resets all changes to the "token_count" field.
func (m *DocumentMutation) ResetTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(d document.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r document.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v document.Status, err error) {
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
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (m *DocumentMutation) SetLastSyncedAt(t time.Time) {
	m.last_synced_at = &t
}

// LastSyncedAt returns the value of the "last_synced_at" field in the mutation.
func (m *DocumentMutation) LastSyncedAt() (r time.Time, exists bool) {
	v := m.last_synced_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSyncedAt returns the old "last_synced_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldLastSyncedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSyncedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSyncedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSyncedAt: %w", err)
	}
	return oldValue.LastSyncedAt, nil
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (m *DocumentMutation) ClearLastSyncedAt() {
	m.last_synced_at = nil
	m.clearedFields[document.FieldLastSyncedAt] = struct{}{}
}

// LastSyncedAtCleared returns if the "last_synced_at" field was cleared in this mutation.
func (m *DocumentMutation) LastSyncedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldLastSyncedAt]
	return ok
}

// ResetLastSyncedAt resets all changes to the "last_synced_at" field.
func (m *DocumentMutation) ResetLastSyncedAt() {
	m.last_synced_at = nil
	delete(m.clearedFields, document.FieldLastSyncedAt)
}

// SetSyncError sets the "sync_error" field.
func (m *DocumentMutation) SetSyncError(s string) {
	m.sync_error = &s
}

// SyncError returns the value of the "sync_error" field in the mutation.
func (m *DocumentMutation) SyncError() (r string, exists bool) {
	v := m.sync_error
	if v == nil {
		return
	}
	return *v, true
}

// OldSyncError returns the old "sync_error" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSyncError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSyncError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSyncError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSyncError: %w", err)
	}
	return oldValue.SyncError, nil
}

// ClearSyncError clears the value of the "sync_error" field.
func (m *DocumentMutation) ClearSyncError() {
	m.sync_error = nil
	m.clearedFields[document.FieldSyncError] = struct{}{}
}

// SyncErrorCleared returns if the "sync_error" field was cleared in this mutation.
func (m *DocumentMutation) SyncErrorCleared() bool {
	_, ok := m.clearedFields[document.FieldSyncError]
	return ok
}

// ResetSyncError resets all changes to the "sync_error" field.
func (m *DocumentMutation) ResetSyncError() {
	m.sync_error = nil
	delete(m.clearedFields, document.FieldSyncError)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddChunkIDs adds the "chunks" edge to the Chunk entity by ids.
func (m *DocumentMutation) AddChunkIDs(ids ...string) {
	if m.chunks == nil {
		m.chunks = make(map[string]struct{})
	}
	for i := range ids {
		m.chunks[ids[i]] = struct{}{}
	}
}

// ClearChunks clears the "chunks" edge to the Chunk entity.
func (m *DocumentMutation) ClearChunks() {
	m.clearedchunks = true
}

// ChunksCleared reports if the "chunks" edge to the Chunk entity was cleared.
func (m *DocumentMutation) ChunksCleared() bool {
	return m.clearedchunks
}

// RemoveChunkIDs removes the "chunks" edge to the Chunk entity by IDs.
func (m *DocumentMutation) RemoveChunkIDs(ids ...string) {
	if m.removedchunks == nil {
		m.removedchunks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.chunks, ids[i])
		m.removedchunks[ids[i]] = struct{}{}
	}
}

// RemovedChunks returns the removed IDs of the "chunks" edge to the Chunk entity.
func (m *DocumentMutation) RemovedChunksIDs() (ids []string) {
	for id := range m.removedchunks {
		ids = append(ids, id)
	}
	return
}

// ChunksIDs returns the "chunks" edge IDs in the mutation.
func (m *DocumentMutation) ChunksIDs() (ids []string) {
	for id := range m.chunks {
		ids = append(ids, id)
	}
	return
}

// ResetChunks resets all changes to the "chunks" edge.
func (m *DocumentMutation) ResetChunks() {
	m.chunks = nil
	m.clearedchunks = false
	m.removedchunks = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.external_id != nil {
		fields = append(fields, document.FieldExternalID)
	}
	if m.title != nil {
		fields = append(fields, document.FieldTitle)
	}
	if m.folder_path != nil {
		fields = append(fields, document.FieldFolderPath)
	}
	if m.mime_kind != nil {
		fields = append(fields, document.FieldMimeKind)
	}
	if m.full_text != nil {
		fields = append(fields, document.FieldFullText)
	}
	if m.is_context_file != nil {
		fields = append(fields, document.FieldIsContextFile)
	}
	if m.token_count != nil {
		fields = append(fields, document.FieldTokenCount)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.last_synced_at != nil {
		fields = append(fields, document.FieldLastSyncedAt)
	}
	if m.sync_error != nil {
		fields = append(fields, document.FieldSyncError)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldExternalID:
		return m.ExternalID()
	case document.FieldTitle:
		return m.Title()
	case document.FieldFolderPath:
		return m.FolderPath()
	case document.FieldMimeKind:
		return m.MimeKind()
	case document.FieldFullText:
		return m.FullText()
	case document.FieldIsContextFile:
		return m.IsContextFile()
	case document.FieldTokenCount:
		return m.TokenCount()
	case document.FieldStatus:
		return m.Status()
	case document.FieldLastSyncedAt:
		return m.LastSyncedAt()
	case document.FieldSyncError:
		return m.SyncError()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldExternalID:
		return m.OldExternalID(ctx)
	case document.FieldTitle:
		return m.OldTitle(ctx)
	case document.FieldFolderPath:
		return m.OldFolderPath(ctx)
	case document.FieldMimeKind:
		return m.OldMimeKind(ctx)
	case document.FieldFullText:
		return m.OldFullText(ctx)
	case document.FieldIsContextFile:
		return m.OldIsContextFile(ctx)
	case document.FieldTokenCount:
		return m.OldTokenCount(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldLastSyncedAt:
		return m.OldLastSyncedAt(ctx)
	case document.FieldSyncError:
		return m.OldSyncError(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case document.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case document.FieldFolderPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFolderPath(v)
		return nil
	case document.FieldMimeKind:
		v, ok := value.(document.MimeKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeKind(v)
		return nil
	case document.FieldFullText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullText(v)
		return nil
	case document.FieldIsContextFile:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsContextFile(v)
		return nil
	case document.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenCount(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(document.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldLastSyncedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSyncedAt(v)
		return nil
	case document.FieldSyncError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSyncError(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addtoken_count != nil {
		fields = append(fields, document.FieldTokenCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldTokenCount:
		return m.AddedTokenCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenCount(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldLastSyncedAt) {
		fields = append(fields, document.FieldLastSyncedAt)
	}
	if m.FieldCleared(document.FieldSyncError) {
		fields = append(fields, document.FieldSyncError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldLastSyncedAt:
		m.ClearLastSyncedAt()
		return nil
	case document.FieldSyncError:
		m.ClearSyncError()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldExternalID:
		m.ResetExternalID()
		return nil
	case document.FieldTitle:
		m.ResetTitle()
		return nil
	case document.FieldFolderPath:
		m.ResetFolderPath()
		return nil
	case document.FieldMimeKind:
		m.ResetMimeKind()
		return nil
	case document.FieldFullText:
		m.ResetFullText()
		return nil
	case document.FieldIsContextFile:
		m.ResetIsContextFile()
		return nil
	case document.FieldTokenCount:
		m.ResetTokenCount()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldLastSyncedAt:
		m.ResetLastSyncedAt()
		return nil
	case document.FieldSyncError:
		m.ResetSyncError()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chunks != nil {
		edges = append(edges, document.EdgeChunks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeChunks:
		ids := make([]ent.Value, 0, len(m.chunks))
		for id := range m.chunks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedchunks != nil {
		edges = append(edges, document.EdgeChunks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeChunks:
		ids := make([]ent.Value, 0, len(m.removedchunks))
		for id := range m.removedchunks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchunks {
		edges = append(edges, document.EdgeChunks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeChunks:
		return m.clearedchunks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeChunks:
		m.ResetChunks()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	role                *message.Role
	content             *string
	agent_role          *string
	duration_ms         *int
	addduration_ms      *int
	tokens              *int
	addtokens           *int
	cache_hit           *bool
	query_type          *string
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

// SetAgentRole sets the "agent_role" field.
func (m *MessageMutation) SetAgentRole(s string) {
	m.agent_role = &s
}

// AgentRole returns the value of the "agent_role" field in the mutation.
func (m *MessageMutation) AgentRole() (r string, exists bool) {
	v := m.agent_role
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentRole returns the old "agent_role" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldAgentRole(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentRole: %w", err)
	}
	return oldValue.AgentRole, nil
}

// ClearAgentRole clears the value of the "agent_role" field.
func (m *MessageMutation) ClearAgentRole() {
	m.agent_role = nil
	m.clearedFields[message.FieldAgentRole] = struct{}{}
}

// AgentRoleCleared returns if the "agent_role" field was cleared in this mutation.
func (m *MessageMutation) AgentRoleCleared() bool {
	_, ok := m.clearedFields[message.FieldAgentRole]
	return ok
}

// ResetAgentRole resets all changes to the "agent_role" field.
func (m *MessageMutation) ResetAgentRole() {
	m.agent_role = nil
	delete(m.clearedFields, message.FieldAgentRole)
}

// SetDurationMs sets the "duration_ms" field.
func (m *MessageMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *MessageMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *MessageMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *MessageMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *MessageMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[message.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *MessageMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[message.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *MessageMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, message.FieldDurationMs)
}

// SetTokens sets the "tokens" field.
func (m *MessageMutation) SetTokens(i int) {
	m.tokens = &i
	m.addtokens = nil
}

// Tokens returns the value of the "tokens" field in the mutation.
func (m *MessageMutation) Tokens() (r int, exists bool) {
	v := m.tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTokens returns the old "tokens" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokens: %w", err)
	}
	return oldValue.Tokens, nil
}

// AddTokens adds i to the "tokens" field.
func (m *MessageMutation) AddTokens(i int) {
	if m.addtokens != nil {
		*m.addtokens += i
	} else {
		m.addtokens = &i
	}
}

// AddedTokens returns the value that was added to the "tokens" field in this mutation.
func (m *MessageMutation) AddedTokens() (r int, exists bool) {
	v := m.addtokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokens clears the value of the "tokens" field.
func (m *MessageMutation) ClearTokens() {
	m.tokens = nil
	m.addtokens = nil
	m.clearedFields[message.FieldTokens] = struct{}{}
}

// TokensCleared returns if the "tokens" field was cleared in this mutation.
func (m *MessageMutation) TokensCleared() bool {
	_, ok := m.clearedFields[message.FieldTokens]
	return ok
}

// ResetTokens resets all changes to the "tokens" field.
func (m *MessageMutation) ResetTokens() {
	m.tokens = nil
	m.addtokens = nil
	delete(m.clearedFields, message.FieldTokens)
}

// SetCacheHit sets the "cache_hit" field.
func (m *MessageMutation) SetCacheHit(b bool) {
	m.cache_hit = &b
}

// CacheHit returns the value of the "cache_hit" field in the mutation.
func (m *MessageMutation) CacheHit() (r bool, exists bool) {
	v := m.cache_hit
	if v == nil {
		return
	}
	return *v, true
}

// OldCacheHit returns the old "cache_hit" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCacheHit(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCacheHit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCacheHit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCacheHit: %w", err)
	}
	return oldValue.CacheHit, nil
}

// ClearCacheHit clears the value of the "cache_hit" field.
func (m *MessageMutation) ClearCacheHit() {
	m.cache_hit = nil
	m.clearedFields[message.FieldCacheHit] = struct{}{}
}

// CacheHitCleared returns if the "cache_hit" field was cleared in this mutation.
func (m *MessageMutation) CacheHitCleared() bool {
	_, ok := m.clearedFields[message.FieldCacheHit]
	return ok
}

// ResetCacheHit resets all changes to the "cache_hit" field.
func (m *MessageMutation) ResetCacheHit() {
	m.cache_hit = nil
	delete(m.clearedFields, message.FieldCacheHit)
}

// SetQueryType sets the "query_type" field.
func (m *MessageMutation) SetQueryType(s string) {
	m.query_type = &s
}

// QueryType returns the value of the "query_type" field in the mutation.
func (m *MessageMutation) QueryType() (r string, exists bool) {
	v := m.query_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQueryType returns the old "query_type" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldQueryType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueryType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueryType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueryType: %w", err)
	}
	return oldValue.QueryType, nil
}

// ClearQueryType clears the value of the "query_type" field.
func (m *MessageMutation) ClearQueryType() {
	m.query_type = nil
	m.clearedFields[message.FieldQueryType] = struct{}{}
}

// QueryTypeCleared returns if the "query_type" field was cleared in this mutation.
func (m *MessageMutation) QueryTypeCleared() bool {
	_, ok := m.clearedFields[message.FieldQueryType]
	return ok
}

// ResetQueryType resets all changes to the "query_type" field.
func (m *MessageMutation) ResetQueryType() {
	m.query_type = nil
	delete(m.clearedFields, message.FieldQueryType)
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
	fields := make([]string, 0, 9)
	if m.conversation != nil {
		fields = append(fields, message.FieldConversationID)
	}
	if m.role != nil {
		fields = append(fields, message.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.agent_role != nil {
		fields = append(fields, message.FieldAgentRole)
	}
	if m.duration_ms != nil {
		fields = append(fields, message.FieldDurationMs)
	}
	if m.tokens != nil {
		fields = append(fields, message.FieldTokens)
	}
	if m.cache_hit != nil {
		fields = append(fields, message.FieldCacheHit)
	}
	if m.query_type != nil {
		fields = append(fields, message.FieldQueryType)
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
	case message.FieldAgentRole:
		return m.AgentRole()
	case message.FieldDurationMs:
		return m.DurationMs()
	case message.FieldTokens:
		return m.Tokens()
	case message.FieldCacheHit:
		return m.CacheHit()
	case message.FieldQueryType:
		return m.QueryType()
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
	case message.FieldAgentRole:
		return m.OldAgentRole(ctx)
	case message.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case message.FieldTokens:
		return m.OldTokens(ctx)
	case message.FieldCacheHit:
		return m.OldCacheHit(ctx)
	case message.FieldQueryType:
		return m.OldQueryType(ctx)
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
	case message.FieldAgentRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentRole(v)
		return nil
	case message.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case message.FieldTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokens(v)
		return nil
	case message.FieldCacheHit:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCacheHit(v)
		return nil
	case message.FieldQueryType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueryType(v)
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
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, message.FieldDurationMs)
	}
	if m.addtokens != nil {
		fields = append(fields, message.FieldTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case message.FieldDurationMs:
		return m.AddedDurationMs()
	case message.FieldTokens:
		return m.AddedTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case message.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case message.FieldTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokens(v)
		return nil
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldAgentRole) {
		fields = append(fields, message.FieldAgentRole)
	}
	if m.FieldCleared(message.FieldDurationMs) {
		fields = append(fields, message.FieldDurationMs)
	}
	if m.FieldCleared(message.FieldTokens) {
		fields = append(fields, message.FieldTokens)
	}
	if m.FieldCleared(message.FieldCacheHit) {
		fields = append(fields, message.FieldCacheHit)
	}
	if m.FieldCleared(message.FieldQueryType) {
		fields = append(fields, message.FieldQueryType)
	}
	return fields
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
	switch name {
	case message.FieldAgentRole:
		m.ClearAgentRole()
		return nil
	case message.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case message.FieldTokens:
		m.ClearTokens()
		return nil
	case message.FieldCacheHit:
		m.ClearCacheHit()
		return nil
	case message.FieldQueryType:
		m.ClearQueryType()
		return nil
	}
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
	case message.FieldAgentRole:
		m.ResetAgentRole()
		return nil
	case message.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case message.FieldTokens:
		m.ResetTokens()
		return nil
	case message.FieldCacheHit:
		m.ResetCacheHit()
		return nil
	case message.FieldQueryType:
		m.ResetQueryType()
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

// SolarkSampleMutation represents an operation that mutates the SolarkSample nodes in the graph.
type SolarkSampleMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	plant_id           *string
	timestamp          *time.Time
	soc                *float64
	addsoc             *float64
	battery_power      *float64
	addbattery_power   *float64
	battery_voltage    *float64
	addbattery_voltage *float64
	battery_current    *float64
	addbattery_current *float64
	pv_power           *float64
	addpv_power        *float64
	load_power         *float64
	addload_power      *float64
	grid_power         *float64
	addgrid_power      *float64
	pv_to_load         *bool
	pv_to_bat          *bool
	bat_to_load        *bool
	grid_to_load       *bool
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*SolarkSample, error)
	predicates         []predicate.SolarkSample
}

var _ ent.Mutation = (*SolarkSampleMutation)(nil)

// solarksampleOption allows management of the mutation configuration using functional options.
type solarksampleOption func(*SolarkSampleMutation)

// newSolarkSampleMutation creates new mutation for the SolarkSample entity.
func newSolarkSampleMutation(c config, op Op, opts ...solarksampleOption) *SolarkSampleMutation {
	m := &SolarkSampleMutation{
		config:        c,
		op:            op,
		typ:           TypeSolarkSample,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSolarkSampleID sets the ID field of the mutation.
func withSolarkSampleID(id int) solarksampleOption {
	return func(m *SolarkSampleMutation) {
		var (
			err   error
			once  sync.Once
			value *SolarkSample
		)
		m.oldValue = func(ctx context.Context) (*SolarkSample, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SolarkSample.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSolarkSample sets the old SolarkSample of the mutation.
func withSolarkSample(node *SolarkSample) solarksampleOption {
	return func(m *SolarkSampleMutation) {
		m.oldValue = func(context.Context) (*SolarkSample, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SolarkSampleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SolarkSampleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SolarkSampleMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SolarkSampleMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SolarkSample.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlantID sets the "plant_id" field.
func (m *SolarkSampleMutation) SetPlantID(s string) {
	m.plant_id = &s
}

// PlantID returns the value of the "plant_id" field in the mutation.
func (m *SolarkSampleMutation) PlantID() (r string, exists bool) {
	v := m.plant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlantID returns the old "plant_id" field's value of the SolarkSample entity.
// If the SolarkSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolarkSampleMutation) OldPlantID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlantID: %w", err)
	}
	return oldValue.PlantID, nil
}

// ClearPlantID clears the value of the "plant_id" field.
func (m *SolarkSampleMutation) ClearPlantID() {
	m.plant_id = nil
	m.clearedFields[solarksample.FieldPlantID] = struct{}{}
}

// PlantIDCleared returns if the "plant_id" field was cleared in this mutation.
func (m *SolarkSampleMutation) PlantIDCleared() bool {
	_, ok := m.clearedFields[solarksample.FieldPlantID]
	return ok
}

// ResetPlantID resets all changes to the "plant_id" field.
func (m *SolarkSampleMutation) ResetPlantID() {
	m.plant_id = nil
	delete(m.clearedFields, solarksample.FieldPlantID)
}

// SetTimestamp sets the "timestamp" field.
func (m *SolarkSampleMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SolarkSampleMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SolarkSample entity.
// If the SolarkSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolarkSampleMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SolarkSampleMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSoc sets the "soc" field.
func (m *SolarkSampleMutation) SetSoc(f float64) {
	m.soc = &f
	m.addsoc = nil
}

// Soc returns the value of the "soc" field in the mutation.
func (m *SolarkSampleMutation) Soc() (r float64, exists bool) {
	v := m.soc
	if v == nil {
		return
	}
	return *v, true
}

// OldSoc returns the old "soc" field's value of the SolarkSample entity.
// If the SolarkSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolarkSampleMutation) OldSoc(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSoc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSoc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSoc: %w", err)
	}
	return oldValue.Soc, nil
}

// AddSoc adds f to the "soc" field.
func (m *SolarkSampleMutation) AddSoc(f float64) {
	if m.addsoc != nil {
		*m.addsoc += f
	} else {
		m.addsoc = &f
	}
}

// AddedSoc returns the value that was added to the "soc" field in this mutation.
func (m *SolarkSampleMutation) AddedSoc() (r float64, exists bool) {
	v := m.addsoc
	if v == nil {
		return
	}
	return *v, true
}

// ResetSoc resets all changes to the "soc" field.
func (m *SolarkSampleMutation) ResetSoc() {
	m.soc = nil
	m.addsoc = nil
}

// SetBatteryPower sets the "battery_power" field.
func (m *SolarkSampleMutation) SetBatteryPower(f float64) {
	m.battery_power = &f
	m.addbattery_power = nil
}

// BatteryPower returns the value of the "battery_power" field in the mutation.
func (m *SolarkSampleMutation) BatteryPower() (r float64, exists bool) {
	v := m.battery_power
	if v == nil {
		return
	}
	return *v, true
}

// OldBatteryPower returns the old "battery_power" field's value of the SolarkSample entity.
// If the SolarkSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolarkSampleMutation) OldBatteryPower(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatteryPower is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatteryPower requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatteryPower: %w", err)
	}
	return oldValue.BatteryPower, nil
}

// AddBatteryPower adds f to the "battery_power" field.
func (m *SolarkSampleMutation) AddBatteryPower(f float64) {
	if m.addbattery_power != nil {
		*m.addbattery_power += f
	} else {
		m.addbattery_power = &f
	}
}

// AddedBatteryPower returns the value that was added to the "battery_power" field in this mutation.
func (m *SolarkSampleMutation) AddedBatteryPower() (r float64, exists bool) {
	v := m.addbattery_power
	if v == nil {
		return
	}
	return *v, true
}

// ResetBatteryPower resets all changes to the "battery_power" field.
func (m *SolarkSampleMutation) ResetBatteryPower() {
	m.battery_power = nil
	m.addbattery_power = nil
}

// SetBatteryVoltage sets the "battery_voltage" field.
func (m *SolarkSampleMutation) SetBatteryVoltage(f float64) {
	m.battery_voltage = &f
	m.addbattery_voltage = nil
}

// BatteryVoltage returns the value of the "battery_voltage" field in the mutation.
func (m *SolarkSampleMutation) BatteryVoltage() (r float64, exists bool) {
	v := m.battery_voltage
	if v == nil {
		return
	}
	return *v, true
}

// OldBatteryVoltage returns the old "battery_voltage" field's value of the SolarkSample entity.
// If the SolarkSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolarkSampleMutation) OldBatteryVoltage(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatteryVoltage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatteryVoltage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatteryVoltage: %w", err)
	}
	return oldValue.BatteryVoltage, nil
}

// AddBatteryVoltage adds f to the "battery_voltage" field.
func (m *SolarkSampleMutation) AddBatteryVoltage(f float64) {
	if m.addbattery_voltage != nil {
		*m.addbattery_voltage += f
	} else {
		m.addbattery_voltage = &f
	}
}

// AddedBatteryVoltage returns the value that was added to the "battery_voltage" field in this mutation.
func (m *SolarkSampleMutation) AddedBatteryVoltage() (r float64, exists bool) {
	v := m.addbattery_voltage
	if v == nil {
		return
	}
	return *v, true
}

// ResetBatteryVoltage resets all changes to the "battery_voltage" field.
func (m *SolarkSampleMutation) ResetBatteryVoltage() {
	m.battery_voltage = nil
	m.addbattery_voltage = nil
}

// SetBatteryCurrent sets the "battery_current" field.
func (m *SolarkSampleMutation) SetBatteryCurrent(f float64) {
	m.battery_current = &f
	m.addbattery_current = nil
}

// BatteryCurrent returns the value of the "battery_current" field in the mutation.
func (m *SolarkSampleMutation) BatteryCurrent() (r float64, exists bool) {
	v := m.battery_current
	if v == nil {
		return
	}
	return *v, true
}

// OldBatteryCurrent returns the old "battery_current" field's value of the SolarkSample entity.
// If the SolarkSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolarkSampleMutation) OldBatteryCurrent(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatteryCurrent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatteryCurrent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatteryCurrent: %w", err)
	}
	return oldValue.BatteryCurrent, nil
}

// AddBatteryCurrent adds f to the "battery_current" field.
func (m *SolarkSampleMutation) AddBatteryCurrent(f float64) {
	if m.addbattery_current != nil {
		*m.addbattery_current += f
	} else {
		m.addbattery_current = &f
	}
}

// AddedBatteryCurrent returns the value that was added to the "battery_current" field in this mutation.
func (m *SolarkSampleMutation) AddedBatteryCurrent() (r float64, exists bool) {
	v := m.addbattery_current
	if v == nil {
		return
	}
	return *v, true
}

// ResetBatteryCurrent resets all changes to the "battery_current" field.
func (m *SolarkSampleMutation) ResetBatteryCurrent() {
	m.battery_current = nil
	m.addbattery_current = nil
}

// SetPvPower sets the "pv_power" field.
func (m *SolarkSampleMutation) SetPvPower(f float64) {
	m.pv_power = &f
	m.addpv_power = nil
}

// PvPower returns the value of the "pv_power" field in the mutation.
func (m *SolarkSampleMutation) PvPower() (r float64, exists bool) {
	v := m.pv_power
	if v == nil {
		return
	}
	return *v, true
}

// OldPvPower returns the old "pv_power" field's value of the SolarkSample entity.
// If the SolarkSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolarkSampleMutation) OldPvPower(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPvPower is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPvPower requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPvPower: %w", err)
	}
	return oldValue.PvPower, nil
}

// AddPvPower adds f to the "pv_power" field.
func (m *SolarkSampleMutation) AddPvPower(f float64) {
	if m.addpv_power != nil {
		*m.addpv_power += f
	} else {
		m.addpv_power = &f
	}
}

// AddedPvPower returns the value that was added to the "pv_power" field in this mutation.
func (m *SolarkSampleMutation) AddedPvPower() (r float64, exists bool) {
	v := m.addpv_power
	if v == nil {
		return
	}
	return *v, true
}

// ResetPvPower resets all changes to the "pv_power" field.
func (m *SolarkSampleMutation) ResetPvPower() {
	m.pv_power = nil
	m.addpv_power = nil
}

// SetLoadPower sets the "load_power" field.
func (m *SolarkSampleMutation) SetLoadPower(f float64) {
	m.load_power = &f
	m.addload_power = nil
}

// LoadPower returns the value of the "load_power" field in the mutation.
func (m *SolarkSampleMutation) LoadPower() (r float64, exists bool) {
	v := m.load_power
	if v == nil {
		return
	}
	return *v, true
}

// OldLoadPower returns the old "load_power" field's value of the SolarkSample entity.
// If the SolarkSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolarkSampleMutation) OldLoadPower(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoadPower is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoadPower requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoadPower: %w", err)
	}
	return oldValue.LoadPower, nil
}

// AddLoadPower adds f to the "load_power" field.
func (m *SolarkSampleMutation) AddLoadPower(f float64) {
	if m.addload_power != nil {
		*m.addload_power += f
	} else {
		m.addload_power = &f
	}
}

// AddedLoadPower returns the value that was added to the "load_power" field in this mutation.
func (m *SolarkSampleMutation) AddedLoadPower() (r float64, exists bool) {
	v := m.addload_power
	if v == nil {
		return
	}
	return *v, true
}

// ResetLoadPower resets all changes to the "load_power" field.
func (m *SolarkSampleMutation) ResetLoadPower() {
	m.load_power = nil
	m.addload_power = nil
}

// SetGridPower sets the "grid_power" field.
func (m *SolarkSampleMutation) SetGridPower(f float64) {
	m.grid_power = &f
	m.addgrid_power = nil
}

// GridPower returns the value of the "grid_power" field in the mutation.
func (m *SolarkSampleMutation) GridPower() (r float64, exists bool) {
	v := m.grid_power
	if v == nil {
		return
	}
	return *v, true
}

// OldGridPower returns the old "grid_power" field's value of the SolarkSample entity.
// If the SolarkSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolarkSampleMutation) OldGridPower(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGridPower is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGridPower requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGridPower: %w", err)
	}
	return oldValue.GridPower, nil
}

// AddGridPower adds f to the "grid_power" field.
func (m *SolarkSampleMutation) AddGridPower(f float64) {
	if m.addgrid_power != nil {
		*m.addgrid_power += f
	} else {
		m.addgrid_power = &f
	}
}

// AddedGridPower returns the value that was added to the "grid_power" field in this mutation.
func (m *SolarkSampleMutation) AddedGridPower() (r float64, exists bool) {
	v := m.addgrid_power
	if v == nil {
		return
	}
	return *v, true
}

// ResetGridPower resets all changes to the "grid_power" field.
func (m *SolarkSampleMutation) ResetGridPower() {
	m.grid_power = nil
	m.addgrid_power = nil
}

// SetPvToLoad sets the "pv_to_load" field.
func (m *SolarkSampleMutation) SetPvToLoad(b bool) {
	m.pv_to_load = &b
}

// PvToLoad returns the value of the "pv_to_load" field in the mutation.
func (m *SolarkSampleMutation) PvToLoad() (r bool, exists bool) {
	v := m.pv_to_load
	if v == nil {
		return
	}
	return *v, true
}

// OldPvToLoad returns the old "pv_to_load" field's value of the SolarkSample entity.
// If the SolarkSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolarkSampleMutation) OldPvToLoad(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPvToLoad is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPvToLoad requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPvToLoad: %w", err)
	}
	return oldValue.PvToLoad, nil
}

// ResetPvToLoad resets all changes to the "pv_to_load" field.
func (m *SolarkSampleMutation) ResetPvToLoad() {
	m.pv_to_load = nil
}

// SetPvToBat sets the "pv_to_bat" field.
func (m *SolarkSampleMutation) SetPvToBat(b bool) {
	m.pv_to_bat = &b
}

// PvToBat returns the value of the "pv_to_bat" field in the mutation.
func (m *SolarkSampleMutation) PvToBat() (r bool, exists bool) {
	v := m.pv_to_bat
	if v == nil {
		return
	}
	return *v, true
}

// OldPvToBat returns the old "pv_to_bat" field's value of the SolarkSample entity.
// If the SolarkSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolarkSampleMutation) OldPvToBat(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPvToBat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPvToBat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPvToBat: %w", err)
	}
	return oldValue.PvToBat, nil
}

// ResetPvToBat resets all changes to the "pv_to_bat" field.
func (m *SolarkSampleMutation) ResetPvToBat() {
	m.pv_to_bat = nil
}

// SetBatToLoad sets the "bat_to_load" field.
func (m *SolarkSampleMutation) SetBatToLoad(b bool) {
	m.bat_to_load = &b
}

// BatToLoad returns the value of the "bat_to_load" field in the mutation.
func (m *SolarkSampleMutation) BatToLoad() (r bool, exists bool) {
	v := m.bat_to_load
	if v == nil {
		return
	}
	return *v, true
}

// OldBatToLoad returns the old "bat_to_load" field's value of the SolarkSample entity.
// If the SolarkSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolarkSampleMutation) OldBatToLoad(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatToLoad is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatToLoad requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatToLoad: %w", err)
	}
	return oldValue.BatToLoad, nil
}

// ResetBatToLoad resets all changes to the "bat_to_load" field.
func (m *SolarkSampleMutation) ResetBatToLoad() {
	m.bat_to_load = nil
}

// SetGridToLoad sets the "grid_to_load" field.
func (m *SolarkSampleMutation) SetGridToLoad(b bool) {
	m.grid_to_load = &b
}

// GridToLoad returns the value of the "grid_to_load" field in the mutation.
func (m *SolarkSampleMutation) GridToLoad() (r bool, exists bool) {
	v := m.grid_to_load
	if v == nil {
		return
	}
	return *v, true
}

// OldGridToLoad returns the old "grid_to_load" field's value of the SolarkSample entity.
// If the SolarkSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolarkSampleMutation) OldGridToLoad(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGridToLoad is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGridToLoad requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGridToLoad: %w", err)
	}
	return oldValue.GridToLoad, nil
}

// ResetGridToLoad resets all changes to the "grid_to_load" field.
func (m *SolarkSampleMutation) ResetGridToLoad() {
	m.grid_to_load = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SolarkSampleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SolarkSampleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SolarkSample entity.
// If the SolarkSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolarkSampleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SolarkSampleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SolarkSampleMutation builder.
func (m *SolarkSampleMutation) Where(ps ...predicate.SolarkSample) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SolarkSampleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SolarkSampleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SolarkSample, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SolarkSampleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SolarkSampleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SolarkSample).
func (m *SolarkSampleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SolarkSampleMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.plant_id != nil {
		fields = append(fields, solarksample.FieldPlantID)
	}
	if m.timestamp != nil {
		fields = append(fields, solarksample.FieldTimestamp)
	}
	if m.soc != nil {
		fields = append(fields, solarksample.FieldSoc)
	}
	if m.battery_power != nil {
		fields = append(fields, solarksample.FieldBatteryPower)
	}
	if m.battery_voltage != nil {
		fields = append(fields, solarksample.FieldBatteryVoltage)
	}
	if m.battery_current != nil {
		fields = append(fields, solarksample.FieldBatteryCurrent)
	}
	if m.pv_power != nil {
		fields = append(fields, solarksample.FieldPvPower)
	}
	if m.load_power != nil {
		fields = append(fields, solarksample.FieldLoadPower)
	}
	if m.grid_power != nil {
		fields = append(fields, solarksample.FieldGridPower)
	}
	if m.pv_to_load != nil {
		fields = append(fields, solarksample.FieldPvToLoad)
	}
	if m.pv_to_bat != nil {
		fields = append(fields, solarksample.FieldPvToBat)
	}
	if m.bat_to_load != nil {
		fields = append(fields, solarksample.FieldBatToLoad)
	}
	if m.grid_to_load != nil {
		fields = append(fields, solarksample.FieldGridToLoad)
	}
	if m.created_at != nil {
		fields = append(fields, solarksample.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SolarkSampleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case solarksample.FieldPlantID:
		return m.PlantID()
	case solarksample.FieldTimestamp:
		return m.Timestamp()
	case solarksample.FieldSoc:
		return m.Soc()
	case solarksample.FieldBatteryPower:
		return m.BatteryPower()
	case solarksample.FieldBatteryVoltage:
		return m.BatteryVoltage()
	case solarksample.FieldBatteryCurrent:
		return m.BatteryCurrent()
	case solarksample.FieldPvPower:
		return m.PvPower()
	case solarksample.FieldLoadPower:
		return m.LoadPower()
	case solarksample.FieldGridPower:
		return m.GridPower()
	case solarksample.FieldPvToLoad:
		return m.PvToLoad()
	case solarksample.FieldPvToBat:
		return m.PvToBat()
	case solarksample.FieldBatToLoad:
		return m.BatToLoad()
	case solarksample.FieldGridToLoad:
		return m.GridToLoad()
	case solarksample.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SolarkSampleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case solarksample.FieldPlantID:
		return m.OldPlantID(ctx)
	case solarksample.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case solarksample.FieldSoc:
		return m.OldSoc(ctx)
	case solarksample.FieldBatteryPower:
		return m.OldBatteryPower(ctx)
	case solarksample.FieldBatteryVoltage:
		return m.OldBatteryVoltage(ctx)
	case solarksample.FieldBatteryCurrent:
		return m.OldBatteryCurrent(ctx)
	case solarksample.FieldPvPower:
		return m.OldPvPower(ctx)
	case solarksample.FieldLoadPower:
		return m.OldLoadPower(ctx)
	case solarksample.FieldGridPower:
		return m.OldGridPower(ctx)
	case solarksample.FieldPvToLoad:
		return m.OldPvToLoad(ctx)
	case solarksample.FieldPvToBat:
		return m.OldPvToBat(ctx)
	case solarksample.FieldBatToLoad:
		return m.OldBatToLoad(ctx)
	case solarksample.FieldGridToLoad:
		return m.OldGridToLoad(ctx)
	case solarksample.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SolarkSample field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SolarkSampleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case solarksample.FieldPlantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlantID(v)
		return nil
	case solarksample.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case solarksample.FieldSoc:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSoc(v)
		return nil
	case solarksample.FieldBatteryPower:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatteryPower(v)
		return nil
	case solarksample.FieldBatteryVoltage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatteryVoltage(v)
		return nil
	case solarksample.FieldBatteryCurrent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatteryCurrent(v)
		return nil
	case solarksample.FieldPvPower:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPvPower(v)
		return nil
	case solarksample.FieldLoadPower:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoadPower(v)
		return nil
	case solarksample.FieldGridPower:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGridPower(v)
		return nil
	case solarksample.FieldPvToLoad:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPvToLoad(v)
		return nil
	case solarksample.FieldPvToBat:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPvToBat(v)
		return nil
	case solarksample.FieldBatToLoad:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatToLoad(v)
		return nil
	case solarksample.FieldGridToLoad:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGridToLoad(v)
		return nil
	case solarksample.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SolarkSample field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SolarkSampleMutation) AddedFields() []string {
	var fields []string
	if m.addsoc != nil {
		fields = append(fields, solarksample.FieldSoc)
	}
	if m.addbattery_power != nil {
		fields = append(fields, solarksample.FieldBatteryPower)
	}
	if m.addbattery_voltage != nil {
		fields = append(fields, solarksample.FieldBatteryVoltage)
	}
	if m.addbattery_current != nil {
		fields = append(fields, solarksample.FieldBatteryCurrent)
	}
	if m.addpv_power != nil {
		fields = append(fields, solarksample.FieldPvPower)
	}
	if m.addload_power != nil {
		fields = append(fields, solarksample.FieldLoadPower)
	}
	if m.addgrid_power != nil {
		fields = append(fields, solarksample.FieldGridPower)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SolarkSampleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case solarksample.FieldSoc:
		return m.AddedSoc()
	case solarksample.FieldBatteryPower:
		return m.AddedBatteryPower()
	case solarksample.FieldBatteryVoltage:
		return m.AddedBatteryVoltage()
	case solarksample.FieldBatteryCurrent:
		return m.AddedBatteryCurrent()
	case solarksample.FieldPvPower:
		return m.AddedPvPower()
	case solarksample.FieldLoadPower:
		return m.AddedLoadPower()
	case solarksample.FieldGridPower:
		return m.AddedGridPower()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SolarkSampleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case solarksample.FieldSoc:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSoc(v)
		return nil
	case solarksample.FieldBatteryPower:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBatteryPower(v)
		return nil
	case solarksample.FieldBatteryVoltage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBatteryVoltage(v)
		return nil
	case solarksample.FieldBatteryCurrent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBatteryCurrent(v)
		return nil
	case solarksample.FieldPvPower:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPvPower(v)
		return nil
	case solarksample.FieldLoadPower:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLoadPower(v)
		return nil
	case solarksample.FieldGridPower:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGridPower(v)
		return nil
	}
	return fmt.Errorf("unknown SolarkSample numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SolarkSampleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(solarksample.FieldPlantID) {
		fields = append(fields, solarksample.FieldPlantID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SolarkSampleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SolarkSampleMutation) ClearField(name string) error {
	switch name {
	case solarksample.FieldPlantID:
		m.ClearPlantID()
		return nil
	}
	return fmt.Errorf("unknown SolarkSample nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SolarkSampleMutation) ResetField(name string) error {
	switch name {
	case solarksample.FieldPlantID:
		m.ResetPlantID()
		return nil
	case solarksample.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case solarksample.FieldSoc:
		m.ResetSoc()
		return nil
	case solarksample.FieldBatteryPower:
		m.ResetBatteryPower()
		return nil
	case solarksample.FieldBatteryVoltage:
		m.ResetBatteryVoltage()
		return nil
	case solarksample.FieldBatteryCurrent:
		m.ResetBatteryCurrent()
		return nil
	case solarksample.FieldPvPower:
		m.ResetPvPower()
		return nil
	case solarksample.FieldLoadPower:
		m.ResetLoadPower()
		return nil
	case solarksample.FieldGridPower:
		m.ResetGridPower()
		return nil
	case solarksample.FieldPvToLoad:
		m.ResetPvToLoad()
		return nil
	case solarksample.FieldPvToBat:
		m.ResetPvToBat()
		return nil
	case solarksample.FieldBatToLoad:
		m.ResetBatToLoad()
		return nil
	case solarksample.FieldGridToLoad:
		m.ResetGridToLoad()
		return nil
	case solarksample.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SolarkSample field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SolarkSampleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SolarkSampleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SolarkSampleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SolarkSampleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SolarkSampleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SolarkSampleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SolarkSampleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SolarkSample unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SolarkSampleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SolarkSample edge %s", name)
}

// SyncLogMutation represents an operation that mutates the SyncLog nodes in the graph.
type SyncLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	started_at    *time.Time
	completed_at  *time.Time
	status        *synclog.Status
	processed     *int
	addprocessed  *int
	updated       *int
	addupdated    *int
	deleted       *int
	adddeleted    *int
	failed        *int
	addfailed     *int
	error_message *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SyncLog, error)
	predicates    []predicate.SyncLog
}

var _ ent.Mutation = (*SyncLogMutation)(nil)

// synclogOption allows management of the mutation configuration using functional options.
type synclogOption func(*SyncLogMutation)

// newSyncLogMutation creates new mutation for the SyncLog entity.
func newSyncLogMutation(c config, op Op, opts ...synclogOption) *SyncLogMutation {
	m := &SyncLogMutation{
		config:        c,
		op:            op,
		typ:           TypeSyncLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSyncLogID sets the ID field of the mutation.
func withSyncLogID(id string) synclogOption {
	return func(m *SyncLogMutation) {
		var (
			err   error
			once  sync.Once
			value *SyncLog
		)
		m.oldValue = func(ctx context.Context) (*SyncLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SyncLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSyncLog sets the old SyncLog of the mutation.
func withSyncLog(node *SyncLog) synclogOption {
	return func(m *SyncLogMutation) {
		m.oldValue = func(context.Context) (*SyncLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SyncLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SyncLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SyncLog entities.
func (m *SyncLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SyncLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SyncLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SyncLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStartedAt sets the "started_at" field.
func (m *SyncLogMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SyncLogMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the SyncLog entity.
// If the SyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncLogMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SyncLogMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *SyncLogMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SyncLogMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the SyncLog entity.
// If the SyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncLogMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SyncLogMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[synclog.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SyncLogMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[synclog.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SyncLogMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, synclog.FieldCompletedAt)
}

// SetStatus sets the "status" field.
func (m *SyncLogMutation) SetStatus(s synclog.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SyncLogMutation) Status() (r synclog.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SyncLog entity.
// If the SyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncLogMutation) OldStatus(ctx context.Context) (v synclog.Status, err error) {
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
func (m *SyncLogMutation) ResetStatus() {
	m.status = nil
}

// SetProcessed sets the "processed" field.
func (m *SyncLogMutation) SetProcessed(i int) {
	m.processed = &i
	m.addprocessed = nil
}

// Processed returns the value of the "processed" field in the mutation.
func (m *SyncLogMutation) Processed() (r int, exists bool) {
	v := m.processed
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessed returns the old "processed" field's value of the SyncLog entity.
// If the SyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncLogMutation) OldProcessed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessed: %w", err)
	}
	return oldValue.Processed, nil
}

// AddProcessed adds i to the "processed" field.
func (m *SyncLogMutation) AddProcessed(i int) {
	if m.addprocessed != nil {
		*m.addprocessed += i
	} else {
		m.addprocessed = &i
	}
}

// AddedProcessed returns the value that was added to the "processed" field in this mutation.
func (m *SyncLogMutation) AddedProcessed() (r int, exists bool) {
	v := m.addprocessed
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessed resets all changes to the "processed" field.
func (m *SyncLogMutation) ResetProcessed() {
	m.processed = nil
	m.addprocessed = nil
}

// SetUpdated sets the "updated" field.
func (m *SyncLogMutation) SetUpdated(i int) {
	m.updated = &i
	m.addupdated = nil
}

// Updated returns the value of the "updated" field in the mutation.
func (m *SyncLogMutation) Updated() (r int, exists bool) {
	v := m.updated
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdated returns the old "updated" field's value of the SyncLog entity.
// If the SyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncLogMutation) OldUpdated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdated: %w", err)
	}
	return oldValue.Updated, nil
}

// AddUpdated adds i to the "updated" field.
func (m *SyncLogMutation) AddUpdated(i int) {
	if m.addupdated != nil {
		*m.addupdated += i
	} else {
		m.addupdated = &i
	}
}

// AddedUpdated returns the value that was added to the "updated" field in this mutation.
func (m *SyncLogMutation) AddedUpdated() (r int, exists bool) {
	v := m.addupdated
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpdated resets all changes to the "updated" field.
func (m *SyncLogMutation) ResetUpdated() {
	m.updated = nil
	m.addupdated = nil
}

// SetDeleted sets the "deleted" field.
func (m *SyncLogMutation) SetDeleted(i int) {
	m.deleted = &i
	m.adddeleted = nil
}

// Deleted returns the value of the "deleted" field in the mutation.
func (m *SyncLogMutation) Deleted() (r int, exists bool) {
	v := m.deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldDeleted returns the old "deleted" field's value of the SyncLog entity.
// If the SyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncLogMutation) OldDeleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeleted: %w", err)
	}
	return oldValue.Deleted, nil
}

// AddDeleted adds i to the "deleted" field.
func (m *SyncLogMutation) AddDeleted(i int) {
	if m.adddeleted != nil {
		*m.adddeleted += i
	} else {
		m.adddeleted = &i
	}
}

// AddedDeleted returns the value that was added to the "deleted" field in this mutation.
func (m *SyncLogMutation) AddedDeleted() (r int, exists bool) {
	v := m.adddeleted
	if v == nil {
		return
	}
	return *v, true
}

// ResetDeleted resets all changes to the "deleted" field.
func (m *SyncLogMutation) ResetDeleted() {
	m.deleted = nil
	m.adddeleted = nil
}

// SetFailed sets the "failed" field.
func (m *SyncLogMutation) SetFailed(i int) {
	m.failed = &i
	m.addfailed = nil
}

// Failed returns the value of the "failed" field in the mutation.
func (m *SyncLogMutation) Failed() (r int, exists bool) {
	v := m.failed
	if v == nil {
		return
	}
	return *v, true
}

// OldFailed returns the old "failed" field's value of the SyncLog entity.
// If the SyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncLogMutation) OldFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailed: %w", err)
	}
	return oldValue.Failed, nil
}

// AddFailed adds i to the "failed" field.
func (m *SyncLogMutation) AddFailed(i int) {
	if m.addfailed != nil {
		*m.addfailed += i
	} else {
		m.addfailed = &i
	}
}

// AddedFailed returns the value that was added to the "failed" field in this mutation.
func (m *SyncLogMutation) AddedFailed() (r int, exists bool) {
	v := m.addfailed
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailed resets all changes to the "failed" field.
func (m *SyncLogMutation) ResetFailed() {
	m.failed = nil
	m.addfailed = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *SyncLogMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SyncLogMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the SyncLog entity.
// If the SyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncLogMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SyncLogMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[synclog.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SyncLogMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[synclog.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SyncLogMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, synclog.FieldErrorMessage)
}

// Where appends a list predicates to the SyncLogMutation builder.
func (m *SyncLogMutation) Where(ps ...predicate.SyncLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SyncLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SyncLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SyncLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SyncLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SyncLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SyncLog).
func (m *SyncLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SyncLogMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.started_at != nil {
		fields = append(fields, synclog.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, synclog.FieldCompletedAt)
	}
	if m.status != nil {
		fields = append(fields, synclog.FieldStatus)
	}
	if m.processed != nil {
		fields = append(fields, synclog.FieldProcessed)
	}
	if m.updated != nil {
		fields = append(fields, synclog.FieldUpdated)
	}
	if m.deleted != nil {
		fields = append(fields, synclog.FieldDeleted)
	}
	if m.failed != nil {
		fields = append(fields, synclog.FieldFailed)
	}
	if m.error_message != nil {
		fields = append(fields, synclog.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SyncLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case synclog.FieldStartedAt:
		return m.StartedAt()
	case synclog.FieldCompletedAt:
		return m.CompletedAt()
	case synclog.FieldStatus:
		return m.Status()
	case synclog.FieldProcessed:
		return m.Processed()
	case synclog.FieldUpdated:
		return m.Updated()
	case synclog.FieldDeleted:
		return m.Deleted()
	case synclog.FieldFailed:
		return m.Failed()
	case synclog.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SyncLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case synclog.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case synclog.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case synclog.FieldStatus:
		return m.OldStatus(ctx)
	case synclog.FieldProcessed:
		return m.OldProcessed(ctx)
	case synclog.FieldUpdated:
		return m.OldUpdated(ctx)
	case synclog.FieldDeleted:
		return m.OldDeleted(ctx)
	case synclog.FieldFailed:
		return m.OldFailed(ctx)
	case synclog.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown SyncLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SyncLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case synclog.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case synclog.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case synclog.FieldStatus:
		v, ok := value.(synclog.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case synclog.FieldProcessed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessed(v)
		return nil
	case synclog.FieldUpdated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdated(v)
		return nil
	case synclog.FieldDeleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeleted(v)
		return nil
	case synclog.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailed(v)
		return nil
	case synclog.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown SyncLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SyncLogMutation) AddedFields() []string {
	var fields []string
	if m.addprocessed != nil {
		fields = append(fields, synclog.FieldProcessed)
	}
	if m.addupdated != nil {
		fields = append(fields, synclog.FieldUpdated)
	}
	if m.adddeleted != nil {
		fields = append(fields, synclog.FieldDeleted)
	}
	if m.addfailed != nil {
		fields = append(fields, synclog.FieldFailed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SyncLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case synclog.FieldProcessed:
		return m.AddedProcessed()
	case synclog.FieldUpdated:
		return m.AddedUpdated()
	case synclog.FieldDeleted:
		return m.AddedDeleted()
	case synclog.FieldFailed:
		return m.AddedFailed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SyncLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case synclog.FieldProcessed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessed(v)
		return nil
	case synclog.FieldUpdated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpdated(v)
		return nil
	case synclog.FieldDeleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeleted(v)
		return nil
	case synclog.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailed(v)
		return nil
	}
	return fmt.Errorf("unknown SyncLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SyncLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(synclog.FieldCompletedAt) {
		fields = append(fields, synclog.FieldCompletedAt)
	}
	if m.FieldCleared(synclog.FieldErrorMessage) {
		fields = append(fields, synclog.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SyncLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SyncLogMutation) ClearField(name string) error {
	switch name {
	case synclog.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case synclog.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown SyncLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SyncLogMutation) ResetField(name string) error {
	switch name {
	case synclog.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case synclog.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case synclog.FieldStatus:
		m.ResetStatus()
		return nil
	case synclog.FieldProcessed:
		m.ResetProcessed()
		return nil
	case synclog.FieldUpdated:
		m.ResetUpdated()
		return nil
	case synclog.FieldDeleted:
		m.ResetDeleted()
		return nil
	case synclog.FieldFailed:
		m.ResetFailed()
		return nil
	case synclog.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown SyncLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SyncLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SyncLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SyncLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SyncLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SyncLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SyncLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SyncLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SyncLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SyncLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SyncLog edge %s", name)
}

// VictronSampleMutation represents an operation that mutates the VictronSample nodes in the graph.
type VictronSampleMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	plant_id           *string
	timestamp          *time.Time
	soc                *float64
	addsoc             *float64
	battery_power      *float64
	addbattery_power   *float64
	battery_voltage    *float64
	addbattery_voltage *float64
	battery_current    *float64
	addbattery_current *float64
	pv_power           *float64
	addpv_power        *float64
	load_power         *float64
	addload_power      *float64
	grid_power         *float64
	addgrid_power      *float64
	pv_to_load         *bool
	pv_to_bat          *bool
	bat_to_load        *bool
	grid_to_load       *bool
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*VictronSample, error)
	predicates         []predicate.VictronSample
}

var _ ent.Mutation = (*VictronSampleMutation)(nil)

// victronsampleOption allows management of the mutation configuration using functional options.
type victronsampleOption func(*VictronSampleMutation)

// newVictronSampleMutation creates new mutation for the VictronSample entity.
func newVictronSampleMutation(c config, op Op, opts ...victronsampleOption) *VictronSampleMutation {
	m := &VictronSampleMutation{
		config:        c,
		op:            op,
		typ:           TypeVictronSample,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVictronSampleID sets the ID field of the mutation.
func withVictronSampleID(id int) victronsampleOption {
	return func(m *VictronSampleMutation) {
		var (
			err   error
			once  sync.Once
			value *VictronSample
		)
		m.oldValue = func(ctx context.Context) (*VictronSample, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VictronSample.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVictronSample sets the old VictronSample of the mutation.
func withVictronSample(node *VictronSample) victronsampleOption {
	return func(m *VictronSampleMutation) {
		m.oldValue = func(context.Context) (*VictronSample, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VictronSampleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VictronSampleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VictronSampleMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VictronSampleMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VictronSample.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlantID sets the "plant_id" field.
func (m *VictronSampleMutation) SetPlantID(s string) {
	m.plant_id = &s
}

// PlantID returns the value of the "plant_id" field in the mutation.
func (m *VictronSampleMutation) PlantID() (r string, exists bool) {
	v := m.plant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlantID returns the old "plant_id" field's value of the VictronSample entity.
// If the VictronSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VictronSampleMutation) OldPlantID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlantID: %w", err)
	}
	return oldValue.PlantID, nil
}

// ClearPlantID clears the value of the "plant_id" field.
func (m *VictronSampleMutation) ClearPlantID() {
	m.plant_id = nil
	m.clearedFields[victronsample.FieldPlantID] = struct{}{}
}

// PlantIDCleared returns if the "plant_id" field was cleared in this mutation.
func (m *VictronSampleMutation) PlantIDCleared() bool {
	_, ok := m.clearedFields[victronsample.FieldPlantID]
	return ok
}

// ResetPlantID resets all changes to the "plant_id" field.
func (m *VictronSampleMutation) ResetPlantID() {
	m.plant_id = nil
	delete(m.clearedFields, victronsample.FieldPlantID)
}

// SetTimestamp sets the "timestamp" field.
func (m *VictronSampleMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *VictronSampleMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the VictronSample entity.
// If the VictronSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VictronSampleMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *VictronSampleMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSoc sets the "soc" field.
func (m *VictronSampleMutation) SetSoc(f float64) {
	m.soc = &f
	m.addsoc = nil
}

// Soc returns the value of the "soc" field in the mutation.
func (m *VictronSampleMutation) Soc() (r float64, exists bool) {
	v := m.soc
	if v == nil {
		return
	}
	return *v, true
}

// OldSoc returns the old "soc" field's value of the VictronSample entity.
// If the VictronSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VictronSampleMutation) OldSoc(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSoc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSoc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSoc: %w", err)
	}
	return oldValue.Soc, nil
}

// AddSoc adds f to the "soc" field.
func (m *VictronSampleMutation) AddSoc(f float64) {
	if m.addsoc != nil {
		*m.addsoc += f
	} else {
		m.addsoc = &f
	}
}

// AddedSoc returns the value that was added to the "soc" field in this mutation.
func (m *VictronSampleMutation) AddedSoc() (r float64, exists bool) {
	v := m.addsoc
	if v == nil {
		return
	}
	return *v, true
}

// ResetSoc resets all changes to the "soc" field.
func (m *VictronSampleMutation) ResetSoc() {
	m.soc = nil
	m.addsoc = nil
}

// SetBatteryPower sets the "battery_power" field.
func (m *VictronSampleMutation) SetBatteryPower(f float64) {
	m.battery_power = &f
	m.addbattery_power = nil
}

// BatteryPower returns the value of the "battery_power" field in the mutation.
func (m *VictronSampleMutation) BatteryPower() (r float64, exists bool) {
	v := m.battery_power
	if v == nil {
		return
	}
	return *v, true
}

// OldBatteryPower returns the old "battery_power" field's value of the VictronSample entity.
// If the VictronSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VictronSampleMutation) OldBatteryPower(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatteryPower is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatteryPower requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatteryPower: %w", err)
	}
	return oldValue.BatteryPower, nil
}

// AddBatteryPower adds f to the "battery_power" field.
func (m *VictronSampleMutation) AddBatteryPower(f float64) {
	if m.addbattery_power != nil {
		*m.addbattery_power += f
	} else {
		m.addbattery_power = &f
	}
}

// AddedBatteryPower returns the value that was added to the "battery_power" field in this mutation.
func (m *VictronSampleMutation) AddedBatteryPower() (r float64, exists bool) {
	v := m.addbattery_power
	if v == nil {
		return
	}
	return *v, true
}

// ResetBatteryPower resets all changes to the "battery_power" field.
func (m *VictronSampleMutation) ResetBatteryPower() {
	m.battery_power = nil
	m.addbattery_power = nil
}

// SetBatteryVoltage sets the "battery_voltage" field.
func (m *VictronSampleMutation) SetBatteryVoltage(f float64) {
	m.battery_voltage = &f
	m.addbattery_voltage = nil
}

// BatteryVoltage returns the value of the "battery_voltage" field in the mutation.
func (m *VictronSampleMutation) BatteryVoltage() (r float64, exists bool) {
	v := m.battery_voltage
	if v == nil {
		return
	}
	return *v, true
}

// OldBatteryVoltage returns the old "battery_voltage" field's value of the VictronSample entity.
// If the VictronSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VictronSampleMutation) OldBatteryVoltage(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatteryVoltage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatteryVoltage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatteryVoltage: %w", err)
	}
	return oldValue.BatteryVoltage, nil
}

// AddBatteryVoltage adds f to the "battery_voltage" field.
func (m *VictronSampleMutation) AddBatteryVoltage(f float64) {
	if m.addbattery_voltage != nil {
		*m.addbattery_voltage += f
	} else {
		m.addbattery_voltage = &f
	}
}

// AddedBatteryVoltage returns the value that was added to the "battery_voltage" field in this mutation.
func (m *VictronSampleMutation) AddedBatteryVoltage() (r float64, exists bool) {
	v := m.addbattery_voltage
	if v == nil {
		return
	}
	return *v, true
}

// ResetBatteryVoltage resets all changes to the "battery_voltage" field.
func (m *VictronSampleMutation) ResetBatteryVoltage() {
	m.battery_voltage = nil
	m.addbattery_voltage = nil
}

// SetBatteryCurrent sets the "battery_current" field.
func (m *VictronSampleMutation) SetBatteryCurrent(f float64) {
	m.battery_current = &f
	m.addbattery_current = nil
}

// BatteryCurrent returns the value of the "battery_current" field in the mutation.
func (m *VictronSampleMutation) BatteryCurrent() (r float64, exists bool) {
	v := m.battery_current
	if v == nil {
		return
	}
	return *v, true
}

// OldBatteryCurrent returns the old "battery_current" field's value of the VictronSample entity.
// If the VictronSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VictronSampleMutation) OldBatteryCurrent(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatteryCurrent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatteryCurrent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatteryCurrent: %w", err)
	}
	return oldValue.BatteryCurrent, nil
}

// AddBatteryCurrent adds f to the "battery_current" field.
func (m *VictronSampleMutation) AddBatteryCurrent(f float64) {
	if m.addbattery_current != nil {
		*m.addbattery_current += f
	} else {
		m.addbattery_current = &f
	}
}

// AddedBatteryCurrent returns the value that was added to the "battery_current" field in this mutation.
func (m *VictronSampleMutation) AddedBatteryCurrent() (r float64, exists bool) {
	v := m.addbattery_current
	if v == nil {
		return
	}
	return *v, true
}

// ResetBatteryCurrent resets all changes to the "battery_current" field.
func (m *VictronSampleMutation) ResetBatteryCurrent() {
	m.battery_current = nil
	m.addbattery_current = nil
}

// SetPvPower sets the "pv_power" field.
func (m *VictronSampleMutation) SetPvPower(f float64) {
	m.pv_power = &f
	m.addpv_power = nil
}

// PvPower returns the value of the "pv_power" field in the mutation.
func (m *VictronSampleMutation) PvPower() (r float64, exists bool) {
	v := m.pv_power
	if v == nil {
		return
	}
	return *v, true
}

// OldPvPower returns the old "pv_power" field's value of the VictronSample entity.
// If the VictronSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VictronSampleMutation) OldPvPower(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPvPower is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPvPower requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPvPower: %w", err)
	}
	return oldValue.PvPower, nil
}

// AddPvPower adds f to the "pv_power" field.
func (m *VictronSampleMutation) AddPvPower(f float64) {
	if m.addpv_power != nil {
		*m.addpv_power += f
	} else {
		m.addpv_power = &f
	}
}

// AddedPvPower returns the value that was added to the "pv_power" field in this mutation.
func (m *VictronSampleMutation) AddedPvPower() (r float64, exists bool) {
	v := m.addpv_power
	if v == nil {
		return
	}
	return *v, true
}

// ResetPvPower resets all changes to the "pv_power" field.
func (m *VictronSampleMutation) ResetPvPower() {
	m.pv_power = nil
	m.addpv_power = nil
}

// SetLoadPower sets the "load_power" field.
func (m *VictronSampleMutation) SetLoadPower(f float64) {
	m.load_power = &f
	m.addload_power = nil
}

// LoadPower returns the value of the "load_power" field in the mutation.
func (m *VictronSampleMutation) LoadPower() (r float64, exists bool) {
	v := m.load_power
	if v == nil {
		return
	}
	return *v, true
}

// OldLoadPower returns the old "load_power" field's value of the VictronSample entity.
// If the VictronSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VictronSampleMutation) OldLoadPower(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoadPower is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoadPower requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoadPower: %w", err)
	}
	return oldValue.LoadPower, nil
}

// AddLoadPower adds f to the "load_power" field.
func (m *VictronSampleMutation) AddLoadPower(f float64) {
	if m.addload_power != nil {
		*m.addload_power += f
	} else {
		m.addload_power = &f
	}
}

// AddedLoadPower returns the value that was added to the "load_power" field in this mutation.
func (m *VictronSampleMutation) AddedLoadPower() (r float64, exists bool) {
	v := m.addload_power
	if v == nil {
		return
	}
	return *v, true
}

// ResetLoadPower resets all changes to the "load_power" field.
func (m *VictronSampleMutation) ResetLoadPower() {
	m.load_power = nil
	m.addload_power = nil
}

// SetGridPower sets the "grid_power" field.
func (m *VictronSampleMutation) SetGridPower(f float64) {
	m.grid_power = &f
	m.addgrid_power = nil
}

// GridPower returns the value of the "grid_power" field in the mutation.
func (m *VictronSampleMutation) GridPower() (r float64, exists bool) {
	v := m.grid_power
	if v == nil {
		return
	}
	return *v, true
}

// OldGridPower returns the old "grid_power" field's value of the VictronSample entity.
// If the VictronSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VictronSampleMutation) OldGridPower(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGridPower is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGridPower requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGridPower: %w", err)
	}
	return oldValue.GridPower, nil
}

// AddGridPower adds f to the "grid_power" field.
func (m *VictronSampleMutation) AddGridPower(f float64) {
	if m.addgrid_power != nil {
		*m.addgrid_power += f
	} else {
		m.addgrid_power = &f
	}
}

// AddedGridPower returns the value that was added to the "grid_power" field in this mutation.
func (m *VictronSampleMutation) AddedGridPower() (r float64, exists bool) {
	v := m.addgrid_power
	if v == nil {
		return
	}
	return *v, true
}

// ResetGridPower resets all changes to the "grid_power" field.
func (m *VictronSampleMutation) ResetGridPower() {
	m.grid_power = nil
	m.addgrid_power = nil
}

// SetPvToLoad sets the "pv_to_load" field.
func (m *VictronSampleMutation) SetPvToLoad(b bool) {
	m.pv_to_load = &b
}

// PvToLoad returns the value of the "pv_to_load" field in the mutation.
func (m *VictronSampleMutation) PvToLoad() (r bool, exists bool) {
	v := m.pv_to_load
	if v == nil {
		return
	}
	return *v, true
}

// OldPvToLoad returns the old "pv_to_load" field's value of the VictronSample entity.
// If the VictronSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VictronSampleMutation) OldPvToLoad(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPvToLoad is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPvToLoad requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPvToLoad: %w", err)
	}
	return oldValue.PvToLoad, nil
}

// ResetPvToLoad resets all changes to the "pv_to_load" field.
func (m *VictronSampleMutation) ResetPvToLoad() {
	m.pv_to_load = nil
}

// SetPvToBat sets the "pv_to_bat" field.
func (m *VictronSampleMutation) SetPvToBat(b bool) {
	m.pv_to_bat = &b
}

// PvToBat returns the value of the "pv_to_bat" field in the mutation.
func (m *VictronSampleMutation) PvToBat() (r bool, exists bool) {
	v := m.pv_to_bat
	if v == nil {
		return
	}
	return *v, true
}

// OldPvToBat returns the old "pv_to_bat" field's value of the VictronSample entity.
// If the VictronSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VictronSampleMutation) OldPvToBat(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPvToBat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPvToBat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPvToBat: %w", err)
	}
	return oldValue.PvToBat, nil
}

// ResetPvToBat resets all changes to the "pv_to_bat" field.
func (m *VictronSampleMutation) ResetPvToBat() {
	m.pv_to_bat = nil
}

// SetBatToLoad sets the "bat_to_load" field.
func (m *VictronSampleMutation) SetBatToLoad(b bool) {
	m.bat_to_load = &b
}

// BatToLoad returns the value of the "bat_to_load" field in the mutation.
func (m *VictronSampleMutation) BatToLoad() (r bool, exists bool) {
	v := m.bat_to_load
	if v == nil {
		return
	}
	return *v, true
}

// OldBatToLoad returns the old "bat_to_load" field's value of the VictronSample entity.
// If the VictronSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VictronSampleMutation) OldBatToLoad(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatToLoad is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatToLoad requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatToLoad: %w", err)
	}
	return oldValue.BatToLoad, nil
}

// ResetBatToLoad resets all changes to the "bat_to_load" field.
func (m *VictronSampleMutation) ResetBatToLoad() {
	m.bat_to_load = nil
}

// SetGridToLoad sets the "grid_to_load" field.
func (m *VictronSampleMutation) SetGridToLoad(b bool) {
	m.grid_to_load = &b
}

// GridToLoad returns the value of the "grid_to_load" field in the mutation.
func (m *VictronSampleMutation) GridToLoad() (r bool, exists bool) {
	v := m.grid_to_load
	if v == nil {
		return
	}
	return *v, true
}

// OldGridToLoad returns the old "grid_to_load" field's value of the VictronSample entity.
// If the VictronSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VictronSampleMutation) OldGridToLoad(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGridToLoad is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGridToLoad requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGridToLoad: %w", err)
	}
	return oldValue.GridToLoad, nil
}

// ResetGridToLoad resets all changes to the "grid_to_load" field.
func (m *VictronSampleMutation) ResetGridToLoad() {
	m.grid_to_load = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *VictronSampleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VictronSampleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VictronSample entity.
// If the VictronSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VictronSampleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *VictronSampleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the VictronSampleMutation builder.
func (m *VictronSampleMutation) Where(ps ...predicate.VictronSample) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VictronSampleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VictronSampleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VictronSample, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VictronSampleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VictronSampleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VictronSample).
func (m *VictronSampleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VictronSampleMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.plant_id != nil {
		fields = append(fields, victronsample.FieldPlantID)
	}
	if m.timestamp != nil {
		fields = append(fields, victronsample.FieldTimestamp)
	}
	if m.soc != nil {
		fields = append(fields, victronsample.FieldSoc)
	}
	if m.battery_power != nil {
		fields = append(fields, victronsample.FieldBatteryPower)
	}
	if m.battery_voltage != nil {
		fields = append(fields, victronsample.FieldBatteryVoltage)
	}
	if m.battery_current != nil {
		fields = append(fields, victronsample.FieldBatteryCurrent)
	}
	if m.pv_power != nil {
		fields = append(fields, victronsample.FieldPvPower)
	}
	if m.load_power != nil {
		fields = append(fields, victronsample.FieldLoadPower)
	}
	if m.grid_power != nil {
		fields = append(fields, victronsample.FieldGridPower)
	}
	if m.pv_to_load != nil {
		fields = append(fields, victronsample.FieldPvToLoad)
	}
	if m.pv_to_bat != nil {
		fields = append(fields, victronsample.FieldPvToBat)
	}
	if m.bat_to_load != nil {
		fields = append(fields, victronsample.FieldBatToLoad)
	}
	if m.grid_to_load != nil {
		fields = append(fields, victronsample.FieldGridToLoad)
	}
	if m.created_at != nil {
		fields = append(fields, victronsample.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VictronSampleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case victronsample.FieldPlantID:
		return m.PlantID()
	case victronsample.FieldTimestamp:
		return m.Timestamp()
	case victronsample.FieldSoc:
		return m.Soc()
	case victronsample.FieldBatteryPower:
		return m.BatteryPower()
	case victronsample.FieldBatteryVoltage:
		return m.BatteryVoltage()
	case victronsample.FieldBatteryCurrent:
		return m.BatteryCurrent()
	case victronsample.FieldPvPower:
		return m.PvPower()
	case victronsample.FieldLoadPower:
		return m.LoadPower()
	case victronsample.FieldGridPower:
		return m.GridPower()
	case victronsample.FieldPvToLoad:
		return m.PvToLoad()
	case victronsample.FieldPvToBat:
		return m.PvToBat()
	case victronsample.FieldBatToLoad:
		return m.BatToLoad()
	case victronsample.FieldGridToLoad:
		return m.GridToLoad()
	case victronsample.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VictronSampleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case victronsample.FieldPlantID:
		return m.OldPlantID(ctx)
	case victronsample.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case victronsample.FieldSoc:
		return m.OldSoc(ctx)
	case victronsample.FieldBatteryPower:
		return m.OldBatteryPower(ctx)
	case victronsample.FieldBatteryVoltage:
		return m.OldBatteryVoltage(ctx)
	case victronsample.FieldBatteryCurrent:
		return m.OldBatteryCurrent(ctx)
	case victronsample.FieldPvPower:
		return m.OldPvPower(ctx)
	case victronsample.FieldLoadPower:
		return m.OldLoadPower(ctx)
	case victronsample.FieldGridPower:
		return m.OldGridPower(ctx)
	case victronsample.FieldPvToLoad:
		return m.OldPvToLoad(ctx)
	case victronsample.FieldPvToBat:
		return m.OldPvToBat(ctx)
	case victronsample.FieldBatToLoad:
		return m.OldBatToLoad(ctx)
	case victronsample.FieldGridToLoad:
		return m.OldGridToLoad(ctx)
	case victronsample.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VictronSample field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VictronSampleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case victronsample.FieldPlantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlantID(v)
		return nil
	case victronsample.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case victronsample.FieldSoc:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSoc(v)
		return nil
	case victronsample.FieldBatteryPower:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatteryPower(v)
		return nil
	case victronsample.FieldBatteryVoltage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatteryVoltage(v)
		return nil
	case victronsample.FieldBatteryCurrent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatteryCurrent(v)
		return nil
	case victronsample.FieldPvPower:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPvPower(v)
		return nil
	case victronsample.FieldLoadPower:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoadPower(v)
		return nil
	case victronsample.FieldGridPower:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGridPower(v)
		return nil
	case victronsample.FieldPvToLoad:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPvToLoad(v)
		return nil
	case victronsample.FieldPvToBat:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPvToBat(v)
		return nil
	case victronsample.FieldBatToLoad:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatToLoad(v)
		return nil
	case victronsample.FieldGridToLoad:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGridToLoad(v)
		return nil
	case victronsample.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VictronSample field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VictronSampleMutation) AddedFields() []string {
	var fields []string
	if m.addsoc != nil {
		fields = append(fields, victronsample.FieldSoc)
	}
	if m.addbattery_power != nil {
		fields = append(fields, victronsample.FieldBatteryPower)
	}
	if m.addbattery_voltage != nil {
		fields = append(fields, victronsample.FieldBatteryVoltage)
	}
	if m.addbattery_current != nil {
		fields = append(fields, victronsample.FieldBatteryCurrent)
	}
	if m.addpv_power != nil {
		fields = append(fields, victronsample.FieldPvPower)
	}
	if m.addload_power != nil {
		fields = append(fields, victronsample.FieldLoadPower)
	}
	if m.addgrid_power != nil {
		fields = append(fields, victronsample.FieldGridPower)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VictronSampleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case victronsample.FieldSoc:
		return m.AddedSoc()
	case victronsample.FieldBatteryPower:
		return m.AddedBatteryPower()
	case victronsample.FieldBatteryVoltage:
		return m.AddedBatteryVoltage()
	case victronsample.FieldBatteryCurrent:
		return m.AddedBatteryCurrent()
	case victronsample.FieldPvPower:
		return m.AddedPvPower()
	case victronsample.FieldLoadPower:
		return m.AddedLoadPower()
	case victronsample.FieldGridPower:
		return m.AddedGridPower()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VictronSampleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case victronsample.FieldSoc:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSoc(v)
		return nil
	case victronsample.FieldBatteryPower:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBatteryPower(v)
		return nil
	case victronsample.FieldBatteryVoltage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBatteryVoltage(v)
		return nil
	case victronsample.FieldBatteryCurrent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBatteryCurrent(v)
		return nil
	case victronsample.FieldPvPower:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPvPower(v)
		return nil
	case victronsample.FieldLoadPower:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLoadPower(v)
		return nil
	case victronsample.FieldGridPower:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGridPower(v)
		return nil
	}
	return fmt.Errorf("unknown VictronSample numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VictronSampleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(victronsample.FieldPlantID) {
		fields = append(fields, victronsample.FieldPlantID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VictronSampleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VictronSampleMutation) ClearField(name string) error {
	switch name {
	case victronsample.FieldPlantID:
		m.ClearPlantID()
		return nil
	}
	return fmt.Errorf("unknown VictronSample nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VictronSampleMutation) ResetField(name string) error {
	switch name {
	case victronsample.FieldPlantID:
		m.ResetPlantID()
		return nil
	case victronsample.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case victronsample.FieldSoc:
		m.ResetSoc()
		return nil
	case victronsample.FieldBatteryPower:
		m.ResetBatteryPower()
		return nil
	case victronsample.FieldBatteryVoltage:
		m.ResetBatteryVoltage()
		return nil
	case victronsample.FieldBatteryCurrent:
		m.ResetBatteryCurrent()
		return nil
	case victronsample.FieldPvPower:
		m.ResetPvPower()
		return nil
	case victronsample.FieldLoadPower:
		m.ResetLoadPower()
		return nil
	case victronsample.FieldGridPower:
		m.ResetGridPower()
		return nil
	case victronsample.FieldPvToLoad:
		m.ResetPvToLoad()
		return nil
	case victronsample.FieldPvToBat:
		m.ResetPvToBat()
		return nil
	case victronsample.FieldBatToLoad:
		m.ResetBatToLoad()
		return nil
	case victronsample.FieldGridToLoad:
		m.ResetGridToLoad()
		return nil
	case victronsample.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown VictronSample field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VictronSampleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VictronSampleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VictronSampleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VictronSampleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VictronSampleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VictronSampleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VictronSampleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown VictronSample unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VictronSampleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown VictronSample edge %s", name)
}
