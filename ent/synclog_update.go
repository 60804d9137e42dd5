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
	"github.com/offgrid-ops/commandcenter/ent/predicate"
	"github.com/offgrid-ops/commandcenter/ent/synclog"
)

// SyncLogUpdate is the builder for updating SyncLog entities.
type SyncLogUpdate struct {
	config
	hooks    []Hook
	mutation *SyncLogMutation
}

// Where appends a list predicates to the SyncLogUpdate builder.
func (_u *SyncLogUpdate) Where(ps ...predicate.SyncLog) *SyncLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SyncLogUpdate) SetCompletedAt(v time.Time) *SyncLogUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SyncLogUpdate) SetNillableCompletedAt(v *time.Time) *SyncLogUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SyncLogUpdate) ClearCompletedAt() *SyncLogUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SyncLogUpdate) SetStatus(v synclog.Status) *SyncLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SyncLogUpdate) SetNillableStatus(v *synclog.Status) *SyncLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProcessed sets the "processed" field.
func (_u *SyncLogUpdate) SetProcessed(v int) *SyncLogUpdate {
	_u.mutation.ResetProcessed()
	_u.mutation.SetProcessed(v)
	return _u
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_u *SyncLogUpdate) SetNillableProcessed(v *int) *SyncLogUpdate {
	if v != nil {
		_u.SetProcessed(*v)
	}
	return _u
}

// AddProcessed adds value to the "processed" field.
func (_u *SyncLogUpdate) AddProcessed(v int) *SyncLogUpdate {
	_u.mutation.AddProcessed(v)
	return _u
}

// SetUpdated sets the "updated" field.
func (_u *SyncLogUpdate) SetUpdated(v int) *SyncLogUpdate {
	_u.mutation.ResetUpdated()
	_u.mutation.SetUpdated(v)
	return _u
}

// SetNillableUpdated sets the "updated" field if the given value is not nil.
func (_u *SyncLogUpdate) SetNillableUpdated(v *int) *SyncLogUpdate {
	if v != nil {
		_u.SetUpdated(*v)
	}
	return _u
}

// AddUpdated adds value to the "updated" field.
func (_u *SyncLogUpdate) AddUpdated(v int) *SyncLogUpdate {
	_u.mutation.AddUpdated(v)
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *SyncLogUpdate) SetDeleted(v int) *SyncLogUpdate {
	_u.mutation.ResetDeleted()
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *SyncLogUpdate) SetNillableDeleted(v *int) *SyncLogUpdate {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// AddDeleted adds value to the "deleted" field.
func (_u *SyncLogUpdate) AddDeleted(v int) *SyncLogUpdate {
	_u.mutation.AddDeleted(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *SyncLogUpdate) SetFailed(v int) *SyncLogUpdate {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *SyncLogUpdate) SetNillableFailed(v *int) *SyncLogUpdate {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *SyncLogUpdate) AddFailed(v int) *SyncLogUpdate {
	_u.mutation.AddFailed(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SyncLogUpdate) SetErrorMessage(v string) *SyncLogUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SyncLogUpdate) SetNillableErrorMessage(v *string) *SyncLogUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SyncLogUpdate) ClearErrorMessage() *SyncLogUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the SyncLogMutation object of the builder.
func (_u *SyncLogUpdate) Mutation() *SyncLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SyncLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SyncLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SyncLogUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := synclog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SyncLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SyncLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(synclog.Table, synclog.Columns, sqlgraph.NewFieldSpec(synclog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(synclog.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(synclog.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(synclog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Processed(); ok {
		_spec.SetField(synclog.FieldProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessed(); ok {
		_spec.AddField(synclog.FieldProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Updated(); ok {
		_spec.SetField(synclog.FieldUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUpdated(); ok {
		_spec.AddField(synclog.FieldUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(synclog.FieldDeleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeleted(); ok {
		_spec.AddField(synclog.FieldDeleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(synclog.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(synclog.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(synclog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(synclog.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{synclog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SyncLogUpdateOne is the builder for updating a single SyncLog entity.
type SyncLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SyncLogMutation
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SyncLogUpdateOne) SetCompletedAt(v time.Time) *SyncLogUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SyncLogUpdateOne) SetNillableCompletedAt(v *time.Time) *SyncLogUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SyncLogUpdateOne) ClearCompletedAt() *SyncLogUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SyncLogUpdateOne) SetStatus(v synclog.Status) *SyncLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SyncLogUpdateOne) SetNillableStatus(v *synclog.Status) *SyncLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProcessed sets the "processed" field.
func (_u *SyncLogUpdateOne) SetProcessed(v int) *SyncLogUpdateOne {
	_u.mutation.ResetProcessed()
	_u.mutation.SetProcessed(v)
	return _u
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_u *SyncLogUpdateOne) SetNillableProcessed(v *int) *SyncLogUpdateOne {
	if v != nil {
		_u.SetProcessed(*v)
	}
	return _u
}

// AddProcessed adds value to the "processed" field.
func (_u *SyncLogUpdateOne) AddProcessed(v int) *SyncLogUpdateOne {
	_u.mutation.AddProcessed(v)
	return _u
}

// SetUpdated sets the "updated" field.
func (_u *SyncLogUpdateOne) SetUpdated(v int) *SyncLogUpdateOne {
	_u.mutation.ResetUpdated()
	_u.mutation.SetUpdated(v)
	return _u
}

// SetNillableUpdated sets the "updated" field if the given value is not nil.
func (_u *SyncLogUpdateOne) SetNillableUpdated(v *int) *SyncLogUpdateOne {
	if v != nil {
		_u.SetUpdated(*v)
	}
	return _u
}

// AddUpdated adds value to the "updated" field.
func (_u *SyncLogUpdateOne) AddUpdated(v int) *SyncLogUpdateOne {
	_u.mutation.AddUpdated(v)
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *SyncLogUpdateOne) SetDeleted(v int) *SyncLogUpdateOne {
	_u.mutation.ResetDeleted()
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *SyncLogUpdateOne) SetNillableDeleted(v *int) *SyncLogUpdateOne {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// AddDeleted adds value to the "deleted" field.
func (_u *SyncLogUpdateOne) AddDeleted(v int) *SyncLogUpdateOne {
	_u.mutation.AddDeleted(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *SyncLogUpdateOne) SetFailed(v int) *SyncLogUpdateOne {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *SyncLogUpdateOne) SetNillableFailed(v *int) *SyncLogUpdateOne {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *SyncLogUpdateOne) AddFailed(v int) *SyncLogUpdateOne {
	_u.mutation.AddFailed(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SyncLogUpdateOne) SetErrorMessage(v string) *SyncLogUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SyncLogUpdateOne) SetNillableErrorMessage(v *string) *SyncLogUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SyncLogUpdateOne) ClearErrorMessage() *SyncLogUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the SyncLogMutation object of the builder.
func (_u *SyncLogUpdateOne) Mutation() *SyncLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the SyncLogUpdate builder.
func (_u *SyncLogUpdateOne) Where(ps ...predicate.SyncLog) *SyncLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SyncLogUpdateOne) Select(field string, fields ...string) *SyncLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SyncLog entity.
func (_u *SyncLogUpdateOne) Save(ctx context.Context) (*SyncLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncLogUpdateOne) SaveX(ctx context.Context) *SyncLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SyncLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SyncLogUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := synclog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SyncLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SyncLogUpdateOne) sqlSave(ctx context.Context) (_node *SyncLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(synclog.Table, synclog.Columns, sqlgraph.NewFieldSpec(synclog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SyncLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, synclog.FieldID)
		for _, f := range fields {
			if !synclog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != synclog.FieldID {
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
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(synclog.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(synclog.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(synclog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Processed(); ok {
		_spec.SetField(synclog.FieldProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessed(); ok {
		_spec.AddField(synclog.FieldProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Updated(); ok {
		_spec.SetField(synclog.FieldUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUpdated(); ok {
		_spec.AddField(synclog.FieldUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(synclog.FieldDeleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeleted(); ok {
		_spec.AddField(synclog.FieldDeleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(synclog.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(synclog.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(synclog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(synclog.FieldErrorMessage, field.TypeString)
	}
	_node = &SyncLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{synclog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
