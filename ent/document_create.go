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
	"github.com/offgrid-ops/commandcenter/ent/chunk"
	"github.com/offgrid-ops/commandcenter/ent/document"
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetExternalID sets the "external_id" field.
func (_c *DocumentCreate) SetExternalID(v string) *DocumentCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *DocumentCreate) SetTitle(v string) *DocumentCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetFolderPath sets the "folder_path" field.
func (_c *DocumentCreate) SetFolderPath(v string) *DocumentCreate {
	_c.mutation.SetFolderPath(v)
	return _c
}

// SetNillableFolderPath sets the "folder_path" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableFolderPath(v *string) *DocumentCreate {
	if v != nil {
		_c.SetFolderPath(*v)
	}
	return _c
}

// SetMimeKind sets the "mime_kind" field.
func (_c *DocumentCreate) SetMimeKind(v document.MimeKind) *DocumentCreate {
	_c.mutation.SetMimeKind(v)
	return _c
}

// SetFullText sets the "full_text" field.
func (_c *DocumentCreate) SetFullText(v string) *DocumentCreate {
	_c.mutation.SetFullText(v)
	return _c
}

// SetNillableFullText sets the "full_text" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableFullText(v *string) *DocumentCreate {
	if v != nil {
		_c.SetFullText(*v)
	}
	return _c
}

// SetIsContextFile sets the "is_context_file" field.
func (_c *DocumentCreate) SetIsContextFile(v bool) *DocumentCreate {
	_c.mutation.SetIsContextFile(v)
	return _c
}

// SetNillableIsContextFile sets the "is_context_file" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableIsContextFile(v *bool) *DocumentCreate {
	if v != nil {
		_c.SetIsContextFile(*v)
	}
	return _c
}

// SetTokenCount sets the "token_count" field.
func (_c *DocumentCreate) SetTokenCount(v int) *DocumentCreate {
	_c.mutation.SetTokenCount(v)
	return _c
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableTokenCount(v *int) *DocumentCreate {
	if v != nil {
		_c.SetTokenCount(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DocumentCreate) SetStatus(v document.Status) *DocumentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableStatus(v *document.Status) *DocumentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (_c *DocumentCreate) SetLastSyncedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetLastSyncedAt(v)
	return _c
}

// SetNillableLastSyncedAt sets the "last_synced_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableLastSyncedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetLastSyncedAt(*v)
	}
	return _c
}

// SetSyncError sets the "sync_error" field.
func (_c *DocumentCreate) SetSyncError(v string) *DocumentCreate {
	_c.mutation.SetSyncError(v)
	return _c
}

// SetNillableSyncError sets the "sync_error" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableSyncError(v *string) *DocumentCreate {
	if v != nil {
		_c.SetSyncError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentCreate) SetCreatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCreatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentCreate) SetID(v string) *DocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddChunkIDs adds the "chunks" edge to the Chunk entity by IDs.
func (_c *DocumentCreate) AddChunkIDs(ids ...string) *DocumentCreate {
	_c.mutation.AddChunkIDs(ids...)
	return _c
}

// AddChunks adds the "chunks" edges to the Chunk entity.
func (_c *DocumentCreate) AddChunks(v ...*Chunk) *DocumentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChunkIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.FolderPath(); !ok {
		v := document.DefaultFolderPath
		_c.mutation.SetFolderPath(v)
	}
	if _, ok := _c.mutation.FullText(); !ok {
		v := document.DefaultFullText
		_c.mutation.SetFullText(v)
	}
	if _, ok := _c.mutation.IsContextFile(); !ok {
		v := document.DefaultIsContextFile
		_c.mutation.SetIsContextFile(v)
	}
	if _, ok := _c.mutation.TokenCount(); !ok {
		v := document.DefaultTokenCount
		_c.mutation.SetTokenCount(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := document.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := document.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.ExternalID(); !ok {
		return &ValidationError{Name: "external_id", err: errors.New(`ent: missing required field "Document.external_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Document.title"`)}
	}
	if _, ok := _c.mutation.FolderPath(); !ok {
		return &ValidationError{Name: "folder_path", err: errors.New(`ent: missing required field "Document.folder_path"`)}
	}
	if _, ok := _c.mutation.MimeKind(); !ok {
		return &ValidationError{Name: "mime_kind", err: errors.New(`ent: missing required field "Document.mime_kind"`)}
	}
	if v, ok := _c.mutation.MimeKind(); ok {
		if err := document.MimeKindValidator(v); err != nil {
			return &ValidationError{Name: "mime_kind", err: fmt.Errorf(`ent: validator failed for field "Document.mime_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FullText(); !ok {
		return &ValidationError{Name: "full_text", err: errors.New(`ent: missing required field "Document.full_text"`)}
	}
	if _, ok := _c.mutation.IsContextFile(); !ok {
		return &ValidationError{Name: "is_context_file", err: errors.New(`ent: missing required field "Document.is_context_file"`)}
	}
	if _, ok := _c.mutation.TokenCount(); !ok {
		return &ValidationError{Name: "token_count", err: errors.New(`ent: missing required field "Document.token_count"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Document.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Document.created_at"`)}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
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
			return nil, fmt.Errorf("unexpected Document.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(document.FieldExternalID, field.TypeString, value)
		_node.ExternalID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.FolderPath(); ok {
		_spec.SetField(document.FieldFolderPath, field.TypeString, value)
		_node.FolderPath = value
	}
	if value, ok := _c.mutation.MimeKind(); ok {
		_spec.SetField(document.FieldMimeKind, field.TypeEnum, value)
		_node.MimeKind = value
	}
	if value, ok := _c.mutation.FullText(); ok {
		_spec.SetField(document.FieldFullText, field.TypeString, value)
		_node.FullText = value
	}
	if value, ok := _c.mutation.IsContextFile(); ok {
		_spec.SetField(document.FieldIsContextFile, field.TypeBool, value)
		_node.IsContextFile = value
	}
	if value, ok := _c.mutation.TokenCount(); ok {
		_spec.SetField(document.FieldTokenCount, field.TypeInt, value)
		_node.TokenCount = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LastSyncedAt(); ok {
		_spec.SetField(document.FieldLastSyncedAt, field.TypeTime, value)
		_node.LastSyncedAt = &value
	}
	if value, ok := _c.mutation.SyncError(); ok {
		_spec.SetField(document.FieldSyncError, field.TypeString, value)
		_node.SyncError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ChunksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ChunksTable,
			Columns: []string{document.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Document.Create().
//		SetExternalID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentUpsert) {
//			SetExternalID(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentCreate) OnConflict(opts ...sql.ConflictOption) *DocumentUpsertOne {
	_c.conflict = opts
	return &DocumentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentCreate) OnConflictColumns(columns ...string) *DocumentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentUpsertOne{
		create: _c,
	}
}

type (
	// DocumentUpsertOne is the builder for "upsert"-ing
	//  one Document node.
	DocumentUpsertOne struct {
		create *DocumentCreate
	}

	// DocumentUpsert is the "OnConflict" setter.
	DocumentUpsert struct {
		*sql.UpdateSet
	}
)

// SetExternalID sets the "external_id" field.
func (u *DocumentUpsert) SetExternalID(v string) *DocumentUpsert {
	u.Set(document.FieldExternalID, v)
	return u
}

// UpdateExternalID sets the "external_id" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateExternalID() *DocumentUpsert {
	u.SetExcluded(document.FieldExternalID)
	return u
}

// SetTitle sets the "title" field.
func (u *DocumentUpsert) SetTitle(v string) *DocumentUpsert {
	u.Set(document.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateTitle() *DocumentUpsert {
	u.SetExcluded(document.FieldTitle)
	return u
}

// SetFolderPath sets the "folder_path" field.
func (u *DocumentUpsert) SetFolderPath(v string) *DocumentUpsert {
	u.Set(document.FieldFolderPath, v)
	return u
}

// UpdateFolderPath sets the "folder_path" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateFolderPath() *DocumentUpsert {
	u.SetExcluded(document.FieldFolderPath)
	return u
}

// SetMimeKind sets the "mime_kind" field.
func (u *DocumentUpsert) SetMimeKind(v document.MimeKind) *DocumentUpsert {
	u.Set(document.FieldMimeKind, v)
	return u
}

// UpdateMimeKind sets the "mime_kind" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateMimeKind() *DocumentUpsert {
	u.SetExcluded(document.FieldMimeKind)
	return u
}

// SetFullText sets the "full_text" field.
func (u *DocumentUpsert) SetFullText(v string) *DocumentUpsert {
	u.Set(document.FieldFullText, v)
	return u
}

// UpdateFullText sets the "full_text" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateFullText() *DocumentUpsert {
	u.SetExcluded(document.FieldFullText)
	return u
}

// SetIsContextFile sets the "is_context_file" field.
func (u *DocumentUpsert) SetIsContextFile(v bool) *DocumentUpsert {
	u.Set(document.FieldIsContextFile, v)
	return u
}

// UpdateIsContextFile sets the "is_context_file" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateIsContextFile() *DocumentUpsert {
	u.SetExcluded(document.FieldIsContextFile)
	return u
}

// SetTokenCount sets the "token_count" field.
func (u *DocumentUpsert) SetTokenCount(v int) *DocumentUpsert {
	u.Set(document.FieldTokenCount, v)
	return u
}

// UpdateTokenCount sets the "token_count" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateTokenCount() *DocumentUpsert {
	u.SetExcluded(document.FieldTokenCount)
	return u
}

// AddTokenCount adds v to the "token_count" field.
func (u *DocumentUpsert) AddTokenCount(v int) *DocumentUpsert {
	u.Add(document.FieldTokenCount, v)
	return u
}

// SetStatus sets the "status" field.
func (u *DocumentUpsert) SetStatus(v document.Status) *DocumentUpsert {
	u.Set(document.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateStatus() *DocumentUpsert {
	u.SetExcluded(document.FieldStatus)
	return u
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (u *DocumentUpsert) SetLastSyncedAt(v time.Time) *DocumentUpsert {
	u.Set(document.FieldLastSyncedAt, v)
	return u
}

// UpdateLastSyncedAt sets the "last_synced_at" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateLastSyncedAt() *DocumentUpsert {
	u.SetExcluded(document.FieldLastSyncedAt)
	return u
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (u *DocumentUpsert) ClearLastSyncedAt() *DocumentUpsert {
	u.SetNull(document.FieldLastSyncedAt)
	return u
}

// SetSyncError sets the "sync_error" field.
func (u *DocumentUpsert) SetSyncError(v string) *DocumentUpsert {
	u.Set(document.FieldSyncError, v)
	return u
}

// UpdateSyncError sets the "sync_error" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateSyncError() *DocumentUpsert {
	u.SetExcluded(document.FieldSyncError)
	return u
}

// ClearSyncError clears the value of the "sync_error" field.
func (u *DocumentUpsert) ClearSyncError() *DocumentUpsert {
	u.SetNull(document.FieldSyncError)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(document.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DocumentUpsertOne) UpdateNewValues() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(document.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(document.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DocumentUpsertOne) Ignore() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentUpsertOne) DoNothing() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentCreate.OnConflict
// documentation for more info.
func (u *DocumentUpsertOne) Update(set func(*DocumentUpsert)) *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetExternalID sets the "external_id" field.
func (u *DocumentUpsertOne) SetExternalID(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetExternalID(v)
	})
}

// UpdateExternalID sets the "external_id" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateExternalID() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateExternalID()
	})
}

// SetTitle sets the "title" field.
func (u *DocumentUpsertOne) SetTitle(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateTitle() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateTitle()
	})
}

// SetFolderPath sets the "folder_path" field.
func (u *DocumentUpsertOne) SetFolderPath(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetFolderPath(v)
	})
}

// UpdateFolderPath sets the "folder_path" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateFolderPath() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateFolderPath()
	})
}

// SetMimeKind sets the "mime_kind" field.
func (u *DocumentUpsertOne) SetMimeKind(v document.MimeKind) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetMimeKind(v)
	})
}

// UpdateMimeKind sets the "mime_kind" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateMimeKind() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateMimeKind()
	})
}

// SetFullText sets the "full_text" field.
func (u *DocumentUpsertOne) SetFullText(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetFullText(v)
	})
}

// UpdateFullText sets the "full_text" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateFullText() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateFullText()
	})
}

// SetIsContextFile sets the "is_context_file" field.
func (u *DocumentUpsertOne) SetIsContextFile(v bool) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetIsContextFile(v)
	})
}

// UpdateIsContextFile sets the "is_context_file" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateIsContextFile() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateIsContextFile()
	})
}

// SetTokenCount sets the "token_count" field.
func (u *DocumentUpsertOne) SetTokenCount(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetTokenCount(v)
	})
}

// AddTokenCount adds v to the "token_count" field.
func (u *DocumentUpsertOne) AddTokenCount(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.AddTokenCount(v)
	})
}

// UpdateTokenCount sets the "token_count" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateTokenCount() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateTokenCount()
	})
}

// SetStatus sets the "status" field.
func (u *DocumentUpsertOne) SetStatus(v document.Status) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateStatus() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateStatus()
	})
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (u *DocumentUpsertOne) SetLastSyncedAt(v time.Time) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetLastSyncedAt(v)
	})
}

// UpdateLastSyncedAt sets the "last_synced_at" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateLastSyncedAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateLastSyncedAt()
	})
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (u *DocumentUpsertOne) ClearLastSyncedAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearLastSyncedAt()
	})
}

// SetSyncError sets the "sync_error" field.
func (u *DocumentUpsertOne) SetSyncError(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetSyncError(v)
	})
}

// UpdateSyncError sets the "sync_error" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateSyncError() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateSyncError()
	})
}

// ClearSyncError clears the value of the "sync_error" field.
func (u *DocumentUpsertOne) ClearSyncError() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearSyncError()
	})
}

// Exec executes the query.
func (u *DocumentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DocumentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DocumentUpsertOne.ID is not supported by MySQL driver. Use DocumentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DocumentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
	conflict []sql.ConflictOption
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
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
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Document.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentUpsert) {
//			SetExternalID(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentCreateBulk) OnConflict(opts ...sql.ConflictOption) *DocumentUpsertBulk {
	_c.conflict = opts
	return &DocumentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentCreateBulk) OnConflictColumns(columns ...string) *DocumentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentUpsertBulk{
		create: _c,
	}
}

// DocumentUpsertBulk is the builder for "upsert"-ing
// a bulk of Document nodes.
type DocumentUpsertBulk struct {
	create *DocumentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(document.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DocumentUpsertBulk) UpdateNewValues() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(document.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(document.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DocumentUpsertBulk) Ignore() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentUpsertBulk) DoNothing() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentCreateBulk.OnConflict
// documentation for more info.
func (u *DocumentUpsertBulk) Update(set func(*DocumentUpsert)) *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetExternalID sets the "external_id" field.
func (u *DocumentUpsertBulk) SetExternalID(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetExternalID(v)
	})
}

// UpdateExternalID sets the "external_id" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateExternalID() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateExternalID()
	})
}

// SetTitle sets the "title" field.
func (u *DocumentUpsertBulk) SetTitle(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateTitle() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateTitle()
	})
}

// SetFolderPath sets the "folder_path" field.
func (u *DocumentUpsertBulk) SetFolderPath(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetFolderPath(v)
	})
}

// UpdateFolderPath sets the "folder_path" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateFolderPath() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateFolderPath()
	})
}

// SetMimeKind sets the "mime_kind" field.
func (u *DocumentUpsertBulk) SetMimeKind(v document.MimeKind) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetMimeKind(v)
	})
}

// UpdateMimeKind sets the "mime_kind" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateMimeKind() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateMimeKind()
	})
}

// SetFullText sets the "full_text" field.
func (u *DocumentUpsertBulk) SetFullText(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetFullText(v)
	})
}

// UpdateFullText sets the "full_text" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateFullText() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateFullText()
	})
}

// SetIsContextFile sets the "is_context_file" field.
func (u *DocumentUpsertBulk) SetIsContextFile(v bool) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetIsContextFile(v)
	})
}

// UpdateIsContextFile sets the "is_context_file" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateIsContextFile() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateIsContextFile()
	})
}

// SetTokenCount sets the "token_count" field.
func (u *DocumentUpsertBulk) SetTokenCount(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetTokenCount(v)
	})
}

// AddTokenCount adds v to the "token_count" field.
func (u *DocumentUpsertBulk) AddTokenCount(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.AddTokenCount(v)
	})
}

// UpdateTokenCount sets the "token_count" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateTokenCount() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateTokenCount()
	})
}

// SetStatus sets the "status" field.
func (u *DocumentUpsertBulk) SetStatus(v document.Status) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateStatus() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateStatus()
	})
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (u *DocumentUpsertBulk) SetLastSyncedAt(v time.Time) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetLastSyncedAt(v)
	})
}

// UpdateLastSyncedAt sets the "last_synced_at" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateLastSyncedAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateLastSyncedAt()
	})
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (u *DocumentUpsertBulk) ClearLastSyncedAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearLastSyncedAt()
	})
}

// SetSyncError sets the "sync_error" field.
func (u *DocumentUpsertBulk) SetSyncError(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetSyncError(v)
	})
}

// UpdateSyncError sets the "sync_error" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateSyncError() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateSyncError()
	})
}

// ClearSyncError clears the value of the "sync_error" field.
func (u *DocumentUpsertBulk) ClearSyncError() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearSyncError()
	})
}

// Exec executes the query.
func (u *DocumentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DocumentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
