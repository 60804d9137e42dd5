// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/offgrid-ops/commandcenter/ent/chunk"
	"github.com/offgrid-ops/commandcenter/ent/document"
	"github.com/offgrid-ops/commandcenter/ent/predicate"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *DocumentUpdate) SetExternalID(v string) *DocumentUpdate {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExternalID(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DocumentUpdate) SetTitle(v string) *DocumentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableTitle(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetFolderPath sets the "folder_path" field.
func (_u *DocumentUpdate) SetFolderPath(v string) *DocumentUpdate {
	_u.mutation.SetFolderPath(v)
	return _u
}

// SetNillableFolderPath sets the "folder_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFolderPath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFolderPath(*v)
	}
	return _u
}

// SetMimeKind sets the "mime_kind" field.
func (_u *DocumentUpdate) SetMimeKind(v document.MimeKind) *DocumentUpdate {
	_u.mutation.SetMimeKind(v)
	return _u
}

// SetNillableMimeKind sets the "mime_kind" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableMimeKind(v *document.MimeKind) *DocumentUpdate {
	if v != nil {
		_u.SetMimeKind(*v)
	}
	return _u
}

// SetFullText sets the "full_text" field.
func (_u *DocumentUpdate) SetFullText(v string) *DocumentUpdate {
	_u.mutation.SetFullText(v)
	return _u
}

// SetNillableFullText sets the "full_text" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFullText(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFullText(*v)
	}
	return _u
}

// SetIsContextFile sets the "is_context_file" field.
func (_u *DocumentUpdate) SetIsContextFile(v bool) *DocumentUpdate {
	_u.mutation.SetIsContextFile(v)
	return _u
}

// SetNillableIsContextFile sets the "is_context_file" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableIsContextFile(v *bool) *DocumentUpdate {
	if v != nil {
		_u.SetIsContextFile(*v)
	}
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *DocumentUpdate) SetTokenCount(v int) *DocumentUpdate {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableTokenCount(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *DocumentUpdate) AddTokenCount(v int) *DocumentUpdate {
	_u.mutation.AddTokenCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdate) SetStatus(v document.Status) *DocumentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStatus(v *document.Status) *DocumentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (_u *DocumentUpdate) SetLastSyncedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetLastSyncedAt(v)
	return _u
}

// SetNillableLastSyncedAt sets the "last_synced_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableLastSyncedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetLastSyncedAt(*v)
	}
	return _u
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (_u *DocumentUpdate) ClearLastSyncedAt() *DocumentUpdate {
	_u.mutation.ClearLastSyncedAt()
	return _u
}

// SetSyncError sets the "sync_error" field.
func (_u *DocumentUpdate) SetSyncError(v string) *DocumentUpdate {
	_u.mutation.SetSyncError(v)
	return _u
}

// SetNillableSyncError sets the "sync_error" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSyncError(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetSyncError(*v)
	}
	return _u
}

// ClearSyncError clears the value of the "sync_error" field.
func (_u *DocumentUpdate) ClearSyncError() *DocumentUpdate {
	_u.mutation.ClearSyncError()
	return _u
}

// AddChunkIDs adds the "chunks" edge to the Chunk entity by IDs.
func (_u *DocumentUpdate) AddChunkIDs(ids ...string) *DocumentUpdate {
	_u.mutation.AddChunkIDs(ids...)
	return _u
}

// AddChunks adds the "chunks" edges to the Chunk entity.
func (_u *DocumentUpdate) AddChunks(v ...*Chunk) *DocumentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChunkIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearChunks clears all "chunks" edges to the Chunk entity.
func (_u *DocumentUpdate) ClearChunks() *DocumentUpdate {
	_u.mutation.ClearChunks()
	return _u
}

// RemoveChunkIDs removes the "chunks" edge to Chunk entities by IDs.
func (_u *DocumentUpdate) RemoveChunkIDs(ids ...string) *DocumentUpdate {
	_u.mutation.RemoveChunkIDs(ids...)
	return _u
}

// RemoveChunks removes "chunks" edges to Chunk entities.
func (_u *DocumentUpdate) RemoveChunks(v ...*Chunk) *DocumentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChunkIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.MimeKind(); ok {
		if err := document.MimeKindValidator(v); err != nil {
			return &ValidationError{Name: "mime_kind", err: fmt.Errorf(`ent: validator failed for field "Document.mime_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(document.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.FolderPath(); ok {
		_spec.SetField(document.FieldFolderPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeKind(); ok {
		_spec.SetField(document.FieldMimeKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FullText(); ok {
		_spec.SetField(document.FieldFullText, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsContextFile(); ok {
		_spec.SetField(document.FieldIsContextFile, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(document.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(document.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastSyncedAt(); ok {
		_spec.SetField(document.FieldLastSyncedAt, field.TypeTime, value)
	}
	if _u.mutation.LastSyncedAtCleared() {
		_spec.ClearField(document.FieldLastSyncedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SyncError(); ok {
		_spec.SetField(document.FieldSyncError, field.TypeString, value)
	}
	if _u.mutation.SyncErrorCleared() {
		_spec.ClearField(document.FieldSyncError, field.TypeString)
	}
	if _u.mutation.ChunksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChunksIDs(); len(nodes) > 0 && !_u.mutation.ChunksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChunksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetExternalID sets the "external_id" field.
func (_u *DocumentUpdateOne) SetExternalID(v string) *DocumentUpdateOne {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExternalID(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DocumentUpdateOne) SetTitle(v string) *DocumentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableTitle(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetFolderPath sets the "folder_path" field.
func (_u *DocumentUpdateOne) SetFolderPath(v string) *DocumentUpdateOne {
	_u.mutation.SetFolderPath(v)
	return _u
}

// SetNillableFolderPath sets the "folder_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFolderPath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFolderPath(*v)
	}
	return _u
}

// SetMimeKind sets the "mime_kind" field.
func (_u *DocumentUpdateOne) SetMimeKind(v document.MimeKind) *DocumentUpdateOne {
	_u.mutation.SetMimeKind(v)
	return _u
}

// SetNillableMimeKind sets the "mime_kind" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableMimeKind(v *document.MimeKind) *DocumentUpdateOne {
	if v != nil {
		_u.SetMimeKind(*v)
	}
	return _u
}

// SetFullText sets the "full_text" field.
func (_u *DocumentUpdateOne) SetFullText(v string) *DocumentUpdateOne {
	_u.mutation.SetFullText(v)
	return _u
}

// SetNillableFullText sets the "full_text" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFullText(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFullText(*v)
	}
	return _u
}

// SetIsContextFile sets the "is_context_file" field.
func (_u *DocumentUpdateOne) SetIsContextFile(v bool) *DocumentUpdateOne {
	_u.mutation.SetIsContextFile(v)
	return _u
}

// SetNillableIsContextFile sets the "is_context_file" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableIsContextFile(v *bool) *DocumentUpdateOne {
	if v != nil {
		_u.SetIsContextFile(*v)
	}
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *DocumentUpdateOne) SetTokenCount(v int) *DocumentUpdateOne {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableTokenCount(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *DocumentUpdateOne) AddTokenCount(v int) *DocumentUpdateOne {
	_u.mutation.AddTokenCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdateOne) SetStatus(v document.Status) *DocumentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStatus(v *document.Status) *DocumentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (_u *DocumentUpdateOne) SetLastSyncedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetLastSyncedAt(v)
	return _u
}

// SetNillableLastSyncedAt sets the "last_synced_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableLastSyncedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetLastSyncedAt(*v)
	}
	return _u
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (_u *DocumentUpdateOne) ClearLastSyncedAt() *DocumentUpdateOne {
	_u.mutation.ClearLastSyncedAt()
	return _u
}

// SetSyncError sets the "sync_error" field.
func (_u *DocumentUpdateOne) SetSyncError(v string) *DocumentUpdateOne {
	_u.mutation.SetSyncError(v)
	return _u
}

// SetNillableSyncError sets the "sync_error" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSyncError(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetSyncError(*v)
	}
	return _u
}

// ClearSyncError clears the value of the "sync_error" field.
func (_u *DocumentUpdateOne) ClearSyncError() *DocumentUpdateOne {
	_u.mutation.ClearSyncError()
	return _u
}

// AddChunkIDs adds the "chunks" edge to the Chunk entity by IDs.
func (_u *DocumentUpdateOne) AddChunkIDs(ids ...string) *DocumentUpdateOne {
	_u.mutation.AddChunkIDs(ids...)
	return _u
}

// AddChunks adds the "chunks" edges to the Chunk entity.
func (_u *DocumentUpdateOne) AddChunks(v ...*Chunk) *DocumentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChunkIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearChunks clears all "chunks" edges to the Chunk entity.
func (_u *DocumentUpdateOne) ClearChunks() *DocumentUpdateOne {
	_u.mutation.ClearChunks()
	return _u
}

// RemoveChunkIDs removes the "chunks" edge to Chunk entities by IDs.
func (_u *DocumentUpdateOne) RemoveChunkIDs(ids ...string) *DocumentUpdateOne {
	_u.mutation.RemoveChunkIDs(ids...)
	return _u
}

// RemoveChunks removes "chunks" edges to Chunk entities.
func (_u *DocumentUpdateOne) RemoveChunks(v ...*Chunk) *DocumentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChunkIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.MimeKind(); ok {
		if err := document.MimeKindValidator(v); err != nil {
			return &ValidationError{Name: "mime_kind", err: fmt.Errorf(`ent: validator failed for field "Document.mime_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(document.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.FolderPath(); ok {
		_spec.SetField(document.FieldFolderPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeKind(); ok {
		_spec.SetField(document.FieldMimeKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FullText(); ok {
		_spec.SetField(document.FieldFullText, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsContextFile(); ok {
		_spec.SetField(document.FieldIsContextFile, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(document.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(document.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastSyncedAt(); ok {
		_spec.SetField(document.FieldLastSyncedAt, field.TypeTime, value)
	}
	if _u.mutation.LastSyncedAtCleared() {
		_spec.ClearField(document.FieldLastSyncedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SyncError(); ok {
		_spec.SetField(document.FieldSyncError, field.TypeString, value)
	}
	if _u.mutation.SyncErrorCleared() {
		_spec.ClearField(document.FieldSyncError, field.TypeString)
	}
	if _u.mutation.ChunksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChunksIDs(); len(nodes) > 0 && !_u.mutation.ChunksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChunksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
