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
	"github.com/offgrid-ops/commandcenter/ent/solarksample"
)

// SolarkSampleUpdate is the builder for updating SolarkSample entities.
type SolarkSampleUpdate struct {
	config
	hooks    []Hook
	mutation *SolarkSampleMutation
}

// Where appends a list predicates to the SolarkSampleUpdate builder.
func (_u *SolarkSampleUpdate) Where(ps ...predicate.SolarkSample) *SolarkSampleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlantID sets the "plant_id" field.
func (_u *SolarkSampleUpdate) SetPlantID(v string) *SolarkSampleUpdate {
	_u.mutation.SetPlantID(v)
	return _u
}

// SetNillablePlantID sets the "plant_id" field if the given value is not nil.
func (_u *SolarkSampleUpdate) SetNillablePlantID(v *string) *SolarkSampleUpdate {
	if v != nil {
		_u.SetPlantID(*v)
	}
	return _u
}

// ClearPlantID clears the value of the "plant_id" field.
func (_u *SolarkSampleUpdate) ClearPlantID() *SolarkSampleUpdate {
	_u.mutation.ClearPlantID()
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *SolarkSampleUpdate) SetTimestamp(v time.Time) *SolarkSampleUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *SolarkSampleUpdate) SetNillableTimestamp(v *time.Time) *SolarkSampleUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetSoc sets the "soc" field.
func (_u *SolarkSampleUpdate) SetSoc(v float64) *SolarkSampleUpdate {
	_u.mutation.ResetSoc()
	_u.mutation.SetSoc(v)
	return _u
}

// SetNillableSoc sets the "soc" field if the given value is not nil.
func (_u *SolarkSampleUpdate) SetNillableSoc(v *float64) *SolarkSampleUpdate {
	if v != nil {
		_u.SetSoc(*v)
	}
	return _u
}

// AddSoc adds value to the "soc" field.
func (_u *SolarkSampleUpdate) AddSoc(v float64) *SolarkSampleUpdate {
	_u.mutation.AddSoc(v)
	return _u
}

// SetBatteryPower sets the "battery_power" field.
func (_u *SolarkSampleUpdate) SetBatteryPower(v float64) *SolarkSampleUpdate {
	_u.mutation.ResetBatteryPower()
	_u.mutation.SetBatteryPower(v)
	return _u
}

// SetNillableBatteryPower sets the "battery_power" field if the given value is not nil.
func (_u *SolarkSampleUpdate) SetNillableBatteryPower(v *float64) *SolarkSampleUpdate {
	if v != nil {
		_u.SetBatteryPower(*v)
	}
	return _u
}

// AddBatteryPower adds value to the "battery_power" field.
func (_u *SolarkSampleUpdate) AddBatteryPower(v float64) *SolarkSampleUpdate {
	_u.mutation.AddBatteryPower(v)
	return _u
}

// SetBatteryVoltage sets the "battery_voltage" field.
func (_u *SolarkSampleUpdate) SetBatteryVoltage(v float64) *SolarkSampleUpdate {
	_u.mutation.ResetBatteryVoltage()
	_u.mutation.SetBatteryVoltage(v)
	return _u
}

// SetNillableBatteryVoltage sets the "battery_voltage" field if the given value is not nil.
func (_u *SolarkSampleUpdate) SetNillableBatteryVoltage(v *float64) *SolarkSampleUpdate {
	if v != nil {
		_u.SetBatteryVoltage(*v)
	}
	return _u
}

// AddBatteryVoltage adds value to the "battery_voltage" field.
func (_u *SolarkSampleUpdate) AddBatteryVoltage(v float64) *SolarkSampleUpdate {
	_u.mutation.AddBatteryVoltage(v)
	return _u
}

// SetBatteryCurrent sets the "battery_current" field.
func (_u *SolarkSampleUpdate) SetBatteryCurrent(v float64) *SolarkSampleUpdate {
	_u.mutation.ResetBatteryCurrent()
	_u.mutation.SetBatteryCurrent(v)
	return _u
}

// SetNillableBatteryCurrent sets the "battery_current" field if the given value is not nil.
func (_u *SolarkSampleUpdate) SetNillableBatteryCurrent(v *float64) *SolarkSampleUpdate {
	if v != nil {
		_u.SetBatteryCurrent(*v)
	}
	return _u
}

// AddBatteryCurrent adds value to the "battery_current" field.
func (_u *SolarkSampleUpdate) AddBatteryCurrent(v float64) *SolarkSampleUpdate {
	_u.mutation.AddBatteryCurrent(v)
	return _u
}

// SetPvPower sets the "pv_power" field.
func (_u *SolarkSampleUpdate) SetPvPower(v float64) *SolarkSampleUpdate {
	_u.mutation.ResetPvPower()
	_u.mutation.SetPvPower(v)
	return _u
}

// SetNillablePvPower sets the "pv_power" field if the given value is not nil.
func (_u *SolarkSampleUpdate) SetNillablePvPower(v *float64) *SolarkSampleUpdate {
	if v != nil {
		_u.SetPvPower(*v)
	}
	return _u
}

// AddPvPower adds value to the "pv_power" field.
func (_u *SolarkSampleUpdate) AddPvPower(v float64) *SolarkSampleUpdate {
	_u.mutation.AddPvPower(v)
	return _u
}

// SetLoadPower sets the "load_power" field.
func (_u *SolarkSampleUpdate) SetLoadPower(v float64) *SolarkSampleUpdate {
	_u.mutation.ResetLoadPower()
	_u.mutation.SetLoadPower(v)
	return _u
}

// SetNillableLoadPower sets the "load_power" field if the given value is not nil.
func (_u *SolarkSampleUpdate) SetNillableLoadPower(v *float64) *SolarkSampleUpdate {
	if v != nil {
		_u.SetLoadPower(*v)
	}
	return _u
}

// AddLoadPower adds value to the "load_power" field.
func (_u *SolarkSampleUpdate) AddLoadPower(v float64) *SolarkSampleUpdate {
	_u.mutation.AddLoadPower(v)
	return _u
}

// SetGridPower sets the "grid_power" field.
func (_u *SolarkSampleUpdate) SetGridPower(v float64) *SolarkSampleUpdate {
	_u.mutation.ResetGridPower()
	_u.mutation.SetGridPower(v)
	return _u
}

// SetNillableGridPower sets the "grid_power" field if the given value is not nil.
func (_u *SolarkSampleUpdate) SetNillableGridPower(v *float64) *SolarkSampleUpdate {
	if v != nil {
		_u.SetGridPower(*v)
	}
	return _u
}

// AddGridPower adds value to the "grid_power" field.
func (_u *SolarkSampleUpdate) AddGridPower(v float64) *SolarkSampleUpdate {
	_u.mutation.AddGridPower(v)
	return _u
}

// SetPvToLoad sets the "pv_to_load" field.
func (_u *SolarkSampleUpdate) SetPvToLoad(v bool) *SolarkSampleUpdate {
	_u.mutation.SetPvToLoad(v)
	return _u
}

// SetNillablePvToLoad sets the "pv_to_load" field if the given value is not nil.
func (_u *SolarkSampleUpdate) SetNillablePvToLoad(v *bool) *SolarkSampleUpdate {
	if v != nil {
		_u.SetPvToLoad(*v)
	}
	return _u
}

// SetPvToBat sets the "pv_to_bat" field.
func (_u *SolarkSampleUpdate) SetPvToBat(v bool) *SolarkSampleUpdate {
	_u.mutation.SetPvToBat(v)
	return _u
}

// SetNillablePvToBat sets the "pv_to_bat" field if the given value is not nil.
func (_u *SolarkSampleUpdate) SetNillablePvToBat(v *bool) *SolarkSampleUpdate {
	if v != nil {
		_u.SetPvToBat(*v)
	}
	return _u
}

// SetBatToLoad sets the "bat_to_load" field.
func (_u *SolarkSampleUpdate) SetBatToLoad(v bool) *SolarkSampleUpdate {
	_u.mutation.SetBatToLoad(v)
	return _u
}

// SetNillableBatToLoad sets the "bat_to_load" field if the given value is not nil.
func (_u *SolarkSampleUpdate) SetNillableBatToLoad(v *bool) *SolarkSampleUpdate {
	if v != nil {
		_u.SetBatToLoad(*v)
	}
	return _u
}

// SetGridToLoad sets the "grid_to_load" field.
func (_u *SolarkSampleUpdate) SetGridToLoad(v bool) *SolarkSampleUpdate {
	_u.mutation.SetGridToLoad(v)
	return _u
}

// SetNillableGridToLoad sets the "grid_to_load" field if the given value is not nil.
func (_u *SolarkSampleUpdate) SetNillableGridToLoad(v *bool) *SolarkSampleUpdate {
	if v != nil {
		_u.SetGridToLoad(*v)
	}
	return _u
}

// Mutation returns the SolarkSampleMutation object of the builder.
func (_u *SolarkSampleUpdate) Mutation() *SolarkSampleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SolarkSampleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SolarkSampleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SolarkSampleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SolarkSampleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SolarkSampleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(solarksample.Table, solarksample.Columns, sqlgraph.NewFieldSpec(solarksample.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlantID(); ok {
		_spec.SetField(solarksample.FieldPlantID, field.TypeString, value)
	}
	if _u.mutation.PlantIDCleared() {
		_spec.ClearField(solarksample.FieldPlantID, field.TypeString)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(solarksample.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Soc(); ok {
		_spec.SetField(solarksample.FieldSoc, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSoc(); ok {
		_spec.AddField(solarksample.FieldSoc, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BatteryPower(); ok {
		_spec.SetField(solarksample.FieldBatteryPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBatteryPower(); ok {
		_spec.AddField(solarksample.FieldBatteryPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BatteryVoltage(); ok {
		_spec.SetField(solarksample.FieldBatteryVoltage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBatteryVoltage(); ok {
		_spec.AddField(solarksample.FieldBatteryVoltage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BatteryCurrent(); ok {
		_spec.SetField(solarksample.FieldBatteryCurrent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBatteryCurrent(); ok {
		_spec.AddField(solarksample.FieldBatteryCurrent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PvPower(); ok {
		_spec.SetField(solarksample.FieldPvPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPvPower(); ok {
		_spec.AddField(solarksample.FieldPvPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LoadPower(); ok {
		_spec.SetField(solarksample.FieldLoadPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLoadPower(); ok {
		_spec.AddField(solarksample.FieldLoadPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GridPower(); ok {
		_spec.SetField(solarksample.FieldGridPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGridPower(); ok {
		_spec.AddField(solarksample.FieldGridPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PvToLoad(); ok {
		_spec.SetField(solarksample.FieldPvToLoad, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PvToBat(); ok {
		_spec.SetField(solarksample.FieldPvToBat, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BatToLoad(); ok {
		_spec.SetField(solarksample.FieldBatToLoad, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GridToLoad(); ok {
		_spec.SetField(solarksample.FieldGridToLoad, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{solarksample.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SolarkSampleUpdateOne is the builder for updating a single SolarkSample entity.
type SolarkSampleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SolarkSampleMutation
}

// SetPlantID sets the "plant_id" field.
func (_u *SolarkSampleUpdateOne) SetPlantID(v string) *SolarkSampleUpdateOne {
	_u.mutation.SetPlantID(v)
	return _u
}

// SetNillablePlantID sets the "plant_id" field if the given value is not nil.
func (_u *SolarkSampleUpdateOne) SetNillablePlantID(v *string) *SolarkSampleUpdateOne {
	if v != nil {
		_u.SetPlantID(*v)
	}
	return _u
}

// ClearPlantID clears the value of the "plant_id" field.
func (_u *SolarkSampleUpdateOne) ClearPlantID() *SolarkSampleUpdateOne {
	_u.mutation.ClearPlantID()
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *SolarkSampleUpdateOne) SetTimestamp(v time.Time) *SolarkSampleUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *SolarkSampleUpdateOne) SetNillableTimestamp(v *time.Time) *SolarkSampleUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetSoc sets the "soc" field.
func (_u *SolarkSampleUpdateOne) SetSoc(v float64) *SolarkSampleUpdateOne {
	_u.mutation.ResetSoc()
	_u.mutation.SetSoc(v)
	return _u
}

// SetNillableSoc sets the "soc" field if the given value is not nil.
func (_u *SolarkSampleUpdateOne) SetNillableSoc(v *float64) *SolarkSampleUpdateOne {
	if v != nil {
		_u.SetSoc(*v)
	}
	return _u
}

// AddSoc adds value to the "soc" field.
func (_u *SolarkSampleUpdateOne) AddSoc(v float64) *SolarkSampleUpdateOne {
	_u.mutation.AddSoc(v)
	return _u
}

// SetBatteryPower sets the "battery_power" field.
func (_u *SolarkSampleUpdateOne) SetBatteryPower(v float64) *SolarkSampleUpdateOne {
	_u.mutation.ResetBatteryPower()
	_u.mutation.SetBatteryPower(v)
	return _u
}

// SetNillableBatteryPower sets the "battery_power" field if the given value is not nil.
func (_u *SolarkSampleUpdateOne) SetNillableBatteryPower(v *float64) *SolarkSampleUpdateOne {
	if v != nil {
		_u.SetBatteryPower(*v)
	}
	return _u
}

// AddBatteryPower adds value to the "battery_power" field.
func (_u *SolarkSampleUpdateOne) AddBatteryPower(v float64) *SolarkSampleUpdateOne {
	_u.mutation.AddBatteryPower(v)
	return _u
}

// SetBatteryVoltage sets the "battery_voltage" field.
func (_u *SolarkSampleUpdateOne) SetBatteryVoltage(v float64) *SolarkSampleUpdateOne {
	_u.mutation.ResetBatteryVoltage()
	_u.mutation.SetBatteryVoltage(v)
	return _u
}

// SetNillableBatteryVoltage sets the "battery_voltage" field if the given value is not nil.
func (_u *SolarkSampleUpdateOne) SetNillableBatteryVoltage(v *float64) *SolarkSampleUpdateOne {
	if v != nil {
		_u.SetBatteryVoltage(*v)
	}
	return _u
}

// AddBatteryVoltage adds value to the "battery_voltage" field.
func (_u *SolarkSampleUpdateOne) AddBatteryVoltage(v float64) *SolarkSampleUpdateOne {
	_u.mutation.AddBatteryVoltage(v)
	return _u
}

// SetBatteryCurrent sets the "battery_current" field.
func (_u *SolarkSampleUpdateOne) SetBatteryCurrent(v float64) *SolarkSampleUpdateOne {
	_u.mutation.ResetBatteryCurrent()
	_u.mutation.SetBatteryCurrent(v)
	return _u
}

// SetNillableBatteryCurrent sets the "battery_current" field if the given value is not nil.
func (_u *SolarkSampleUpdateOne) SetNillableBatteryCurrent(v *float64) *SolarkSampleUpdateOne {
	if v != nil {
		_u.SetBatteryCurrent(*v)
	}
	return _u
}

// AddBatteryCurrent adds value to the "battery_current" field.
func (_u *SolarkSampleUpdateOne) AddBatteryCurrent(v float64) *SolarkSampleUpdateOne {
	_u.mutation.AddBatteryCurrent(v)
	return _u
}

// SetPvPower sets the "pv_power" field.
func (_u *SolarkSampleUpdateOne) SetPvPower(v float64) *SolarkSampleUpdateOne {
	_u.mutation.ResetPvPower()
	_u.mutation.SetPvPower(v)
	return _u
}

// SetNillablePvPower sets the "pv_power" field if the given value is not nil.
func (_u *SolarkSampleUpdateOne) SetNillablePvPower(v *float64) *SolarkSampleUpdateOne {
	if v != nil {
		_u.SetPvPower(*v)
	}
	return _u
}

// AddPvPower adds value to the "pv_power" field.
func (_u *SolarkSampleUpdateOne) AddPvPower(v float64) *SolarkSampleUpdateOne {
	_u.mutation.AddPvPower(v)
	return _u
}

// SetLoadPower sets the "load_power" field.
func (_u *SolarkSampleUpdateOne) SetLoadPower(v float64) *SolarkSampleUpdateOne {
	_u.mutation.ResetLoadPower()
	_u.mutation.SetLoadPower(v)
	return _u
}

// SetNillableLoadPower sets the "load_power" field if the given value is not nil.
func (_u *SolarkSampleUpdateOne) SetNillableLoadPower(v *float64) *SolarkSampleUpdateOne {
	if v != nil {
		_u.SetLoadPower(*v)
	}
	return _u
}

// AddLoadPower adds value to the "load_power" field.
func (_u *SolarkSampleUpdateOne) AddLoadPower(v float64) *SolarkSampleUpdateOne {
	_u.mutation.AddLoadPower(v)
	return _u
}

// SetGridPower sets the "grid_power" field.
func (_u *SolarkSampleUpdateOne) SetGridPower(v float64) *SolarkSampleUpdateOne {
	_u.mutation.ResetGridPower()
	_u.mutation.SetGridPower(v)
	return _u
}

// SetNillableGridPower sets the "grid_power" field if the given value is not nil.
func (_u *SolarkSampleUpdateOne) SetNillableGridPower(v *float64) *SolarkSampleUpdateOne {
	if v != nil {
		_u.SetGridPower(*v)
	}
	return _u
}

// AddGridPower adds value to the "grid_power" field.
func (_u *SolarkSampleUpdateOne) AddGridPower(v float64) *SolarkSampleUpdateOne {
	_u.mutation.AddGridPower(v)
	return _u
}

// SetPvToLoad sets the "pv_to_load" field.
func (_u *SolarkSampleUpdateOne) SetPvToLoad(v bool) *SolarkSampleUpdateOne {
	_u.mutation.SetPvToLoad(v)
	return _u
}

// SetNillablePvToLoad sets the "pv_to_load" field if the given value is not nil.
func (_u *SolarkSampleUpdateOne) SetNillablePvToLoad(v *bool) *SolarkSampleUpdateOne {
	if v != nil {
		_u.SetPvToLoad(*v)
	}
	return _u
}

// SetPvToBat sets the "pv_to_bat" field.
func (_u *SolarkSampleUpdateOne) SetPvToBat(v bool) *SolarkSampleUpdateOne {
	_u.mutation.SetPvToBat(v)
	return _u
}

// SetNillablePvToBat sets the "pv_to_bat" field if the given value is not nil.
func (_u *SolarkSampleUpdateOne) SetNillablePvToBat(v *bool) *SolarkSampleUpdateOne {
	if v != nil {
		_u.SetPvToBat(*v)
	}
	return _u
}

// SetBatToLoad sets the "bat_to_load" field.
func (_u *SolarkSampleUpdateOne) SetBatToLoad(v bool) *SolarkSampleUpdateOne {
	_u.mutation.SetBatToLoad(v)
	return _u
}

// SetNillableBatToLoad sets the "bat_to_load" field if the given value is not nil.
func (_u *SolarkSampleUpdateOne) SetNillableBatToLoad(v *bool) *SolarkSampleUpdateOne {
	if v != nil {
		_u.SetBatToLoad(*v)
	}
	return _u
}

// SetGridToLoad sets the "grid_to_load" field.
func (_u *SolarkSampleUpdateOne) SetGridToLoad(v bool) *SolarkSampleUpdateOne {
	_u.mutation.SetGridToLoad(v)
	return _u
}

// SetNillableGridToLoad sets the "grid_to_load" field if the given value is not nil.
func (_u *SolarkSampleUpdateOne) SetNillableGridToLoad(v *bool) *SolarkSampleUpdateOne {
	if v != nil {
		_u.SetGridToLoad(*v)
	}
	return _u
}

// Mutation returns the SolarkSampleMutation object of the builder.
func (_u *SolarkSampleUpdateOne) Mutation() *SolarkSampleMutation {
	return _u.mutation
}

// Where appends a list predicates to the SolarkSampleUpdate builder.
func (_u *SolarkSampleUpdateOne) Where(ps ...predicate.SolarkSample) *SolarkSampleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SolarkSampleUpdateOne) Select(field string, fields ...string) *SolarkSampleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SolarkSample entity.
func (_u *SolarkSampleUpdateOne) Save(ctx context.Context) (*SolarkSample, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SolarkSampleUpdateOne) SaveX(ctx context.Context) *SolarkSample {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SolarkSampleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SolarkSampleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SolarkSampleUpdateOne) sqlSave(ctx context.Context) (_node *SolarkSample, err error) {
	_spec := sqlgraph.NewUpdateSpec(solarksample.Table, solarksample.Columns, sqlgraph.NewFieldSpec(solarksample.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SolarkSample.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, solarksample.FieldID)
		for _, f := range fields {
			if !solarksample.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != solarksample.FieldID {
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
		_spec.SetField(solarksample.FieldPlantID, field.TypeString, value)
	}
	if _u.mutation.PlantIDCleared() {
		_spec.ClearField(solarksample.FieldPlantID, field.TypeString)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(solarksample.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Soc(); ok {
		_spec.SetField(solarksample.FieldSoc, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSoc(); ok {
		_spec.AddField(solarksample.FieldSoc, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BatteryPower(); ok {
		_spec.SetField(solarksample.FieldBatteryPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBatteryPower(); ok {
		_spec.AddField(solarksample.FieldBatteryPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BatteryVoltage(); ok {
		_spec.SetField(solarksample.FieldBatteryVoltage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBatteryVoltage(); ok {
		_spec.AddField(solarksample.FieldBatteryVoltage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BatteryCurrent(); ok {
		_spec.SetField(solarksample.FieldBatteryCurrent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBatteryCurrent(); ok {
		_spec.AddField(solarksample.FieldBatteryCurrent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PvPower(); ok {
		_spec.SetField(solarksample.FieldPvPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPvPower(); ok {
		_spec.AddField(solarksample.FieldPvPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LoadPower(); ok {
		_spec.SetField(solarksample.FieldLoadPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLoadPower(); ok {
		_spec.AddField(solarksample.FieldLoadPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GridPower(); ok {
		_spec.SetField(solarksample.FieldGridPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGridPower(); ok {
		_spec.AddField(solarksample.FieldGridPower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PvToLoad(); ok {
		_spec.SetField(solarksample.FieldPvToLoad, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PvToBat(); ok {
		_spec.SetField(solarksample.FieldPvToBat, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BatToLoad(); ok {
		_spec.SetField(solarksample.FieldBatToLoad, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GridToLoad(); ok {
		_spec.SetField(solarksample.FieldGridToLoad, field.TypeBool, value)
	}
	_node = &SolarkSample{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{solarksample.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
