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
	"github.com/offgrid-ops/commandcenter/ent/victronsample"
)

// VictronSampleUpdate is the builder for updating VictronSample entities.
type VictronSampleUpdate struct {
	config
	hooks    []Hook
	mutation *VictronSampleMutation
}

// Where appends a list predicates to the VictronSampleUpdate builder.
func (_u *VictronSampleUpdate) Where(ps ...predicate.VictronSample) *VictronSampleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlantID sets the "plant_id" field.
func (_u *VictronSampleUpdate) SetPlantID(v string) *VictronSampleUpdate {
	_u.mutation.SetPlantID(v)
	return _u
}

// SetNillablePlantID sets the "plant_id" field if the given value is not nil.
func (_u *VictronSampleUpdate) SetNillablePlantID(v *string) *VictronSampleUpdate {
	if v != nil {
		_u.SetPlantID(*v)
	}
	return _u
}

// ClearPlantID clears the value of the "plant_id" field.
func (_u *VictronSampleUpdate) ClearPlantID() *VictronSampleUpdate {
	_u.mutation.ClearPlantID()
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *VictronSampleUpdate) SetTimestamp(v time.Time) *VictronSampleUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *VictronSampleUpdate) SetNillableTimestamp(v *time.Time) *VictronSampleUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetSoc sets the "soc" field.
func (_u *VictronSampleUpdate) SetSoc(v float64) *VictronSampleUpdate {
	_u.mutation.ResetSoc()
	_u.mutation.SetSoc(v)
	return _u
}

// SetNillableSoc sets the "soc" field if the given value is not nil.
func (_u *VictronSampleUpdate) SetNillableSoc(v *float64) *VictronSampleUpdate {
	if v != nil {
		_u.SetSoc(*v)
	}
	return _u
}

// AddSoc adds value to the "soc" field.
func (_u *VictronSampleUpdate) AddSoc(v float64) *VictronSampleUpdate {
	_u.mutation.AddSoc(v)
	return _u
}

// SetBatteryPower sets the "battery_power" field.
func (_u *VictronSampleUpdate) SetBatteryPower(v float64) *VictronSampleUpdate {
	_u.mutation.ResetBatteryPower()
	_u.mutation.SetBatteryPower(v)
	return _u
}

// SetNillableBatteryPower sets the "battery_power" field if the given value is not nil.
func (_u *VictronSampleUpdate) SetNillableBatteryPower(v *float64) *VictronSampleUpdate {
	if v != nil {
		_u.SetBatteryPower(*v)
	}
	return _u
}

// AddBatteryPower adds value to the "battery_power" field.
func (_u *VictronSampleUpdate) AddBatteryPower(v float64) *VictronSampleUpdate {
	_u.mutation.AddBatteryPower(v)
	return _u
}

// SetBatteryVoltage sets the "battery_voltage" field.
func (_u *VictronSampleUpdate) SetBatteryVoltage(v float64) *VictronSampleUpdate {
	_u.mutation.ResetBatteryVoltage()
	_u.mutation.SetBatteryVoltage(v)
	return _u
}

// SetNillableBatteryVoltage sets the "battery_voltage" field if the given value is not nil.
func (_u *VictronSampleUpdate) SetNillableBatteryVoltage(v *float64) *VictronSampleUpdate {
	if v != nil {
		_u.SetBatteryVoltage(*v)
	}
	return _u
}

// AddBatteryVoltage adds value to the "battery_voltage" field.
func (_u *VictronSampleUpdate) AddBatteryVoltage(v float64) *VictronSampleUpdate {
	_u.mutation.AddBatteryVoltage(v)
	return _u
}

// SetBatteryCurrent sets the "battery_current" field.
func (_u *VictronSampleUpdate) SetBatteryCurrent(v float64) *VictronSampleUpdate {
	_u.mutation.ResetBatteryCurrent()
	_u.mutation.SetBatteryCurrent(v)
	return _u
}

// SetNillableBatteryCurrent sets the "battery_current" field if the given value is not nil.
func (_u *VictronSampleUpdate) SetNillableBatteryCurrent(v *float64) *VictronSampleUpdate {
	if v != nil {
		_u.SetBatteryCurrent(*v)
	}
	return _u
}

// AddBatteryCurrent adds value to the "battery_current" field.
func (_u *VictronSampleUpdate) AddBatteryCurrent(v float64) *VictronSampleUpdate {
	_u.mutation.AddBatteryCurrent(v)
	return _u
}

// SetPvPower sets the "pv_power" field.
func (_u *VictronSampleUpdate) SetPvPower(v float64) *VictronSampleUpdate {
	_u.mutation.ResetPvPower()
	_u.mutation.SetPvPower(v)
	return _u
}

// SetNillablePvPower sets the "pv_power" field if the given value is not nil.
func (_u *VictronSampleUpdate) SetNillablePvPower(v *float64) *VictronSampleUpdate {
	if v != nil {
		_u.SetPvPower(*v)
	}
	return _u
}

// AddPvPower adds value to the "pv_power" field.
func (_u *VictronSampleUpdate) AddPvPower(v float64) *VictronSampleUpdate {
	_u.mutation.AddPvPower(v)
	return _u
}

// SetLoadPower sets the "load_power" field.
func (_u *VictronSampleUpdate) SetLoadPower(v float64) *VictronSampleUpdate {
	_u.mutation.ResetLoadPower()
	_u.mutation.SetLoadPower(v)
	return _u
}

// SetNillableLoadPower sets the "load_power" field if the given value is not nil.
func (_u *VictronSampleUpdate) SetNillableLoadPower(v *float64) *VictronSampleUpdate {
	if v != nil {
		_u.SetLoadPower(*v)
	}
	return _u
}

// AddLoadPower adds value to the "load_power" field.
func (_u *VictronSampleUpdate) AddLoadPower(v float64) *VictronSampleUpdate {
	_u.mutation.AddLoadPower(v)
	return _u
}

// SetGridPower sets the "grid_power" field.
func (_u *VictronSampleUpdate) SetGridPower(v float64) *VictronSampleUpdate {
	_u.mutation.ResetGridPower()
	_u.mutation.SetGridPower(v)
	return _u
}

// SetNillableGridPower sets the "grid_power" field if the given value is not nil.
func (_u *VictronSampleUpdate) SetNillableGridPower(v *float64) *VictronSampleUpdate {
	if v != nil {
		_u.SetGridPower(*v)
	}
	return _u
}

// AddGridPower adds value to the "grid_power" field.
func (_u *VictronSampleUpdate) AddGridPower(v float64) *VictronSampleUpdate {
	_u.mutation.AddGridPower(v)
	return _u
}

// SetPvToLoad sets the "pv_to_load" field.
func (_u *VictronSampleUpdate) SetPvToLoad(v bool) *VictronSampleUpdate {
	_u.mutation.SetPvToLoad(v)
	return _u
}

// SetNillablePvToLoad sets the "pv_to_load" field if the given value is not nil.
func (_u *VictronSampleUpdate) SetNillablePvToLoad(v *bool) *VictronSampleUpdate {
	if v != nil {
		_u.SetPvToLoad(*v)
	}
	return _u
}

// SetPvToBat sets the "pv_to_bat" field.
func (_u *VictronSampleUpdate) SetPvToBat(v bool) *VictronSampleUpdate {
	_u.mutation.SetPvToBat(v)
	return _u
}

// SetNillablePvToBat sets the "pv_to_bat" field if the given value is not nil.
func (_u *VictronSampleUpdate) SetNillablePvToBat(v *bool) *VictronSampleUpdate {
	if v != nil {
		_u.SetPvToBat(*v)
	}
	return _u
}

// SetBatToLoad sets the "bat_to_load" field.
func (_u *VictronSampleUpdate) SetBatToLoad(v bool) *VictronSampleUpdate {
	_u.mutation.SetBatToLoad(v)
	return _u
}

// SetNillableBatToLoad sets the "bat_to_load" field if the given value is not nil.
func (_u *VictronSampleUpdate) SetNillableBatToLoad(v *bool) *VictronSampleUpdate {
	if v != nil {
		_u.SetBatToLoad(*v)
	}
	return _u
}

// SetGridToLoad sets the "grid_to_load" field.
func (_u *VictronSampleUpdate) SetGridToLoad(v bool) *VictronSampleUpdate {
	_u.mutation.SetGridToLoad(v)
	return _u
}

// SetNillableGridToLoad sets the "grid_to_load" field if the given value is not nil.
func (_u *VictronSampleUpdate) SetNillableGridToLoad(v *bool) *VictronSampleUpdate {
	if v != nil {
		_u.SetGridToLoad(*v)
	}
	return _u
}

// Mutation returns the VictronSampleMutation object of the builder.
func (_u *VictronSampleUpdate) Mutation() *VictronSampleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VictronSampleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VictronSampleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VictronSampleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VictronSampleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VictronSampleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(victronsample.Table, victronsample.Columns, sqlgraph.NewFieldSpec(victronsample.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlantID(); ok {
		_spec.SetField(victronsample.FieldPlantID, field.TypeString, value)
	}
	if _u.mutation.PlantIDCleared() {
		_spec.ClearField(victronsample.FieldPlantID, field.TypeString)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(victronsample.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Soc(); ok {
		_spec.SetField(victronsample.FieldSoc, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSoc(); ok {
		_spec.AddField(victronsample.FieldSoc, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BatteryPower(); ok {
		_spec.SetField(victronsample.FieldBatteryPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBatteryPower(); ok {
		_spec.AddField(victronsample.FieldBatteryPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BatteryVoltage(); ok {
		_spec.SetField(victronsample.FieldBatteryVoltage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBatteryVoltage(); ok {
		_spec.AddField(victronsample.FieldBatteryVoltage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BatteryCurrent(); ok {
		_spec.SetField(victronsample.FieldBatteryCurrent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBatteryCurrent(); ok {
		_spec.AddField(victronsample.FieldBatteryCurrent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PvPower(); ok {
		_spec.SetField(victronsample.FieldPvPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPvPower(); ok {
		_spec.AddField(victronsample.FieldPvPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LoadPower(); ok {
		_spec.SetField(victronsample.FieldLoadPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLoadPower(); ok {
		_spec.AddField(victronsample.FieldLoadPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GridPower(); ok {
		_spec.SetField(victronsample.FieldGridPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGridPower(); ok {
		_spec.AddField(victronsample.FieldGridPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PvToLoad(); ok {
		_spec.SetField(victronsample.FieldPvToLoad, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PvToBat(); ok {
		_spec.SetField(victronsample.FieldPvToBat, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BatToLoad(); ok {
		_spec.SetField(victronsample.FieldBatToLoad, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GridToLoad(); ok {
		_spec.SetField(victronsample.FieldGridToLoad, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{victronsample.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VictronSampleUpdateOne is the builder for updating a single VictronSample entity.
type VictronSampleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VictronSampleMutation
}

// SetPlantID sets the "plant_id" field.
func (_u *VictronSampleUpdateOne) SetPlantID(v string) *VictronSampleUpdateOne {
	_u.mutation.SetPlantID(v)
	return _u
}

// SetNillablePlantID sets the "plant_id" field if the given value is not nil.
func (_u *VictronSampleUpdateOne) SetNillablePlantID(v *string) *VictronSampleUpdateOne {
	if v != nil {
		_u.SetPlantID(*v)
	}
	return _u
}

// ClearPlantID clears the value of the "plant_id" field.
func (_u *VictronSampleUpdateOne) ClearPlantID() *VictronSampleUpdateOne {
	_u.mutation.ClearPlantID()
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *VictronSampleUpdateOne) SetTimestamp(v time.Time) *VictronSampleUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *VictronSampleUpdateOne) SetNillableTimestamp(v *time.Time) *VictronSampleUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetSoc sets the "soc" field.
func (_u *VictronSampleUpdateOne) SetSoc(v float64) *VictronSampleUpdateOne {
	_u.mutation.ResetSoc()
	_u.mutation.SetSoc(v)
	return _u
}

// SetNillableSoc sets the "soc" field if the given value is not nil.
func (_u *VictronSampleUpdateOne) SetNillableSoc(v *float64) *VictronSampleUpdateOne {
	if v != nil {
		_u.SetSoc(*v)
	}
	return _u
}

// AddSoc adds value to the "soc" field.
func (_u *VictronSampleUpdateOne) AddSoc(v float64) *VictronSampleUpdateOne {
	_u.mutation.AddSoc(v)
	return _u
}

// SetBatteryPower sets the "battery_power" field.
func (_u *VictronSampleUpdateOne) SetBatteryPower(v float64) *VictronSampleUpdateOne {
	_u.mutation.ResetBatteryPower()
	_u.mutation.SetBatteryPower(v)
	return _u
}

// SetNillableBatteryPower sets the "battery_power" field if the given value is not nil.
func (_u *VictronSampleUpdateOne) SetNillableBatteryPower(v *float64) *VictronSampleUpdateOne {
	if v != nil {
		_u.SetBatteryPower(*v)
	}
	return _u
}

// AddBatteryPower adds value to the "battery_power" field.
func (_u *VictronSampleUpdateOne) AddBatteryPower(v float64) *VictronSampleUpdateOne {
	_u.mutation.AddBatteryPower(v)
	return _u
}

// SetBatteryVoltage sets the "battery_voltage" field.
func (_u *VictronSampleUpdateOne) SetBatteryVoltage(v float64) *VictronSampleUpdateOne {
	_u.mutation.ResetBatteryVoltage()
	_u.mutation.SetBatteryVoltage(v)
	return _u
}

// SetNillableBatteryVoltage sets the "battery_voltage" field if the given value is not nil.
func (_u *VictronSampleUpdateOne) SetNillableBatteryVoltage(v *float64) *VictronSampleUpdateOne {
	if v != nil {
		_u.SetBatteryVoltage(*v)
	}
	return _u
}

// AddBatteryVoltage adds value to the "battery_voltage" field.
func (_u *VictronSampleUpdateOne) AddBatteryVoltage(v float64) *VictronSampleUpdateOne {
	_u.mutation.AddBatteryVoltage(v)
	return _u
}

// SetBatteryCurrent sets the "battery_current" field.
func (_u *VictronSampleUpdateOne) SetBatteryCurrent(v float64) *VictronSampleUpdateOne {
	_u.mutation.ResetBatteryCurrent()
	_u.mutation.SetBatteryCurrent(v)
	return _u
}

// SetNillableBatteryCurrent sets the "battery_current" field if the given value is not nil.
func (_u *VictronSampleUpdateOne) SetNillableBatteryCurrent(v *float64) *VictronSampleUpdateOne {
	if v != nil {
		_u.SetBatteryCurrent(*v)
	}
	return _u
}

// AddBatteryCurrent adds value to the "battery_current" field.
func (_u *VictronSampleUpdateOne) AddBatteryCurrent(v float64) *VictronSampleUpdateOne {
	_u.mutation.AddBatteryCurrent(v)
	return _u
}

// SetPvPower sets the "pv_power" field.
func (_u *VictronSampleUpdateOne) SetPvPower(v float64) *VictronSampleUpdateOne {
	_u.mutation.ResetPvPower()
	_u.mutation.SetPvPower(v)
	return _u
}

// SetNillablePvPower sets the "pv_power" field if the given value is not nil.
func (_u *VictronSampleUpdateOne) SetNillablePvPower(v *float64) *VictronSampleUpdateOne {
	if v != nil {
		_u.SetPvPower(*v)
	}
	return _u
}

// AddPvPower adds value to the "pv_power" field.
func (_u *VictronSampleUpdateOne) AddPvPower(v float64) *VictronSampleUpdateOne {
	_u.mutation.AddPvPower(v)
	return _u
}

// SetLoadPower sets the "load_power" field.
func (_u *VictronSampleUpdateOne) SetLoadPower(v float64) *VictronSampleUpdateOne {
	_u.mutation.ResetLoadPower()
	_u.mutation.SetLoadPower(v)
	return _u
}

// SetNillableLoadPower sets the "load_power" field if the given value is not nil.
func (_u *VictronSampleUpdateOne) SetNillableLoadPower(v *float64) *VictronSampleUpdateOne {
	if v != nil {
		_u.SetLoadPower(*v)
	}
	return _u
}

// AddLoadPower adds value to the "load_power" field.
func (_u *VictronSampleUpdateOne) AddLoadPower(v float64) *VictronSampleUpdateOne {
	_u.mutation.AddLoadPower(v)
	return _u
}

// SetGridPower sets the "grid_power" field.
func (_u *VictronSampleUpdateOne) SetGridPower(v float64) *VictronSampleUpdateOne {
	_u.mutation.ResetGridPower()
	_u.mutation.SetGridPower(v)
	return _u
}

// SetNillableGridPower sets the "grid_power" field if the given value is not nil.
func (_u *VictronSampleUpdateOne) SetNillableGridPower(v *float64) *VictronSampleUpdateOne {
	if v != nil {
		_u.SetGridPower(*v)
	}
	return _u
}

// AddGridPower adds value to the "grid_power" field.
func (_u *VictronSampleUpdateOne) AddGridPower(v float64) *VictronSampleUpdateOne {
	_u.mutation.AddGridPower(v)
	return _u
}

// SetPvToLoad sets the "pv_to_load" field.
func (_u *VictronSampleUpdateOne) SetPvToLoad(v bool) *VictronSampleUpdateOne {
	_u.mutation.SetPvToLoad(v)
	return _u
}

// SetNillablePvToLoad sets the "pv_to_load" field if the given value is not nil.
func (_u *VictronSampleUpdateOne) SetNillablePvToLoad(v *bool) *VictronSampleUpdateOne {
	if v != nil {
		_u.SetPvToLoad(*v)
	}
	return _u
}

// SetPvToBat sets the "pv_to_bat" field.
func (_u *VictronSampleUpdateOne) SetPvToBat(v bool) *VictronSampleUpdateOne {
	_u.mutation.SetPvToBat(v)
	return _u
}

// SetNillablePvToBat sets the "pv_to_bat" field if the given value is not nil.
func (_u *VictronSampleUpdateOne) SetNillablePvToBat(v *bool) *VictronSampleUpdateOne {
	if v != nil {
		_u.SetPvToBat(*v)
	}
	return _u
}

// SetBatToLoad sets the "bat_to_load" field.
func (_u *VictronSampleUpdateOne) SetBatToLoad(v bool) *VictronSampleUpdateOne {
	_u.mutation.SetBatToLoad(v)
	return _u
}

// SetNillableBatToLoad sets the "bat_to_load" field if the given value is not nil.
func (_u *VictronSampleUpdateOne) SetNillableBatToLoad(v *bool) *VictronSampleUpdateOne {
	if v != nil {
		_u.SetBatToLoad(*v)
	}
	return _u
}

// SetGridToLoad sets the "grid_to_load" field.
func (_u *VictronSampleUpdateOne) SetGridToLoad(v bool) *VictronSampleUpdateOne {
	_u.mutation.SetGridToLoad(v)
	return _u
}

// SetNillableGridToLoad sets the "grid_to_load" field if the given value is not nil.
func (_u *VictronSampleUpdateOne) SetNillableGridToLoad(v *bool) *VictronSampleUpdateOne {
	if v != nil {
		_u.SetGridToLoad(*v)
	}
	return _u
}

// Mutation returns the VictronSampleMutation object of the builder.
func (_u *VictronSampleUpdateOne) Mutation() *VictronSampleMutation {
	return _u.mutation
}

// Where appends a list predicates to the VictronSampleUpdate builder.
func (_u *VictronSampleUpdateOne) Where(ps ...predicate.VictronSample) *VictronSampleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VictronSampleUpdateOne) Select(field string, fields ...string) *VictronSampleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VictronSample entity.
func (_u *VictronSampleUpdateOne) Save(ctx context.Context) (*VictronSample, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VictronSampleUpdateOne) SaveX(ctx context.Context) *VictronSample {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VictronSampleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VictronSampleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VictronSampleUpdateOne) sqlSave(ctx context.Context) (_node *VictronSample, err error) {
	_spec := sqlgraph.NewUpdateSpec(victronsample.Table, victronsample.Columns, sqlgraph.NewFieldSpec(victronsample.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VictronSample.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, victronsample.FieldID)
		for _, f := range fields {
			if !victronsample.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != victronsample.FieldID {
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
	if value, ok := _u.mutation.PlantID(); ok {
		_spec.SetField(victronsample.FieldPlantID, field.TypeString, value)
	}
	if _u.mutation.PlantIDCleared() {
		_spec.ClearField(victronsample.FieldPlantID, field.TypeString)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(victronsample.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Soc(); ok {
		_spec.SetField(victronsample.FieldSoc, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSoc(); ok {
		_spec.AddField(victronsample.FieldSoc, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BatteryPower(); ok {
		_spec.SetField(victronsample.FieldBatteryPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBatteryPower(); ok {
		_spec.AddField(victronsample.FieldBatteryPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BatteryVoltage(); ok {
		_spec.SetField(victronsample.FieldBatteryVoltage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBatteryVoltage(); ok {
		_spec.AddField(victronsample.FieldBatteryVoltage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BatteryCurrent(); ok {
		_spec.SetField(victronsample.FieldBatteryCurrent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBatteryCurrent(); ok {
		_spec.AddField(victronsample.FieldBatteryCurrent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PvPower(); ok {
		_spec.SetField(victronsample.FieldPvPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPvPower(); ok {
		_spec.AddField(victronsample.FieldPvPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LoadPower(); ok {
		_spec.SetField(victronsample.FieldLoadPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLoadPower(); ok {
		_spec.AddField(victronsample.FieldLoadPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GridPower(); ok {
		_spec.SetField(victronsample.FieldGridPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGridPower(); ok {
		_spec.AddField(victronsample.FieldGridPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PvToLoad(); ok {
		_spec.SetField(victronsample.FieldPvToLoad, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PvToBat(); ok {
		_spec.SetField(victronsample.FieldPvToBat, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BatToLoad(); ok {
		_spec.SetField(victronsample.FieldBatToLoad, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GridToLoad(); ok {
		_spec.SetField(victronsample.FieldGridToLoad, field.TypeBool, value)
	}
	_node = &VictronSample{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{victronsample.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
