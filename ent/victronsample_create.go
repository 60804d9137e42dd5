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
	"github.com/offgrid-ops/commandcenter/ent/victronsample"
)

// VictronSampleCreate is the builder for creating a VictronSample entity.
type VictronSampleCreate struct {
	config
	mutation *VictronSampleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPlantID sets the "plant_id" field.
func (_c *VictronSampleCreate) SetPlantID(v string) *VictronSampleCreate {
	_c.mutation.SetPlantID(v)
	return _c
}

// SetNillablePlantID sets the "plant_id" field if the given value is not nil.
func (_c *VictronSampleCreate) SetNillablePlantID(v *string) *VictronSampleCreate {
	if v != nil {
		_c.SetPlantID(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *VictronSampleCreate) SetTimestamp(v time.Time) *VictronSampleCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetSoc sets the "soc" field.
func (_c *VictronSampleCreate) SetSoc(v float64) *VictronSampleCreate {
	_c.mutation.SetSoc(v)
	return _c
}

// SetBatteryPower sets the "battery_power" field.
func (_c *VictronSampleCreate) SetBatteryPower(v float64) *VictronSampleCreate {
	_c.mutation.SetBatteryPower(v)
	return _c
}

// SetBatteryVoltage sets the "battery_voltage" field.
func (_c *VictronSampleCreate) SetBatteryVoltage(v float64) *VictronSampleCreate {
	_c.mutation.SetBatteryVoltage(v)
	return _c
}

// SetBatteryCurrent sets the "battery_current" field.
func (_c *VictronSampleCreate) SetBatteryCurrent(v float64) *VictronSampleCreate {
	_c.mutation.SetBatteryCurrent(v)
	return _c
}

// SetPvPower sets the "pv_power" field.
func (_c *VictronSampleCreate) SetPvPower(v float64) *VictronSampleCreate {
	_c.mutation.SetPvPower(v)
	return _c
}

// SetLoadPower sets the "load_power" field.
func (_c *VictronSampleCreate) SetLoadPower(v float64) *VictronSampleCreate {
	_c.mutation.SetLoadPower(v)
	return _c
}

// SetGridPower sets the "grid_power" field.
func (_c *VictronSampleCreate) SetGridPower(v float64) *VictronSampleCreate {
	_c.mutation.SetGridPower(v)
	return _c
}

// SetPvToLoad sets the "pv_to_load" field.
func (_c *VictronSampleCreate) SetPvToLoad(v bool) *VictronSampleCreate {
	_c.mutation.SetPvToLoad(v)
	return _c
}

// SetNillablePvToLoad sets the "pv_to_load" field if the given value is not nil.
func (_c *VictronSampleCreate) SetNillablePvToLoad(v *bool) *VictronSampleCreate {
	if v != nil {
		_c.SetPvToLoad(*v)
	}
	return _c
}

// SetPvToBat sets the "pv_to_bat" field.
func (_c *VictronSampleCreate) SetPvToBat(v bool) *VictronSampleCreate {
	_c.mutation.SetPvToBat(v)
	return _c
}

// SetNillablePvToBat sets the "pv_to_bat" field if the given value is not nil.
func (_c *VictronSampleCreate) SetNillablePvToBat(v *bool) *VictronSampleCreate {
	if v != nil {
		_c.SetPvToBat(*v)
	}
	return _c
}

// SetBatToLoad sets the "bat_to_load" field.
func (_c *VictronSampleCreate) SetBatToLoad(v bool) *VictronSampleCreate {
	_c.mutation.SetBatToLoad(v)
	return _c
}

// SetNillableBatToLoad sets the "bat_to_load" field if the given value is not nil.
func (_c *VictronSampleCreate) SetNillableBatToLoad(v *bool) *VictronSampleCreate {
	if v != nil {
		_c.SetBatToLoad(*v)
	}
	return _c
}

// SetGridToLoad sets the "grid_to_load" field.
func (_c *VictronSampleCreate) SetGridToLoad(v bool) *VictronSampleCreate {
	_c.mutation.SetGridToLoad(v)
	return _c
}

// SetNillableGridToLoad sets the "grid_to_load" field if the given value is not nil.
func (_c *VictronSampleCreate) SetNillableGridToLoad(v *bool) *VictronSampleCreate {
	if v != nil {
		_c.SetGridToLoad(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VictronSampleCreate) SetCreatedAt(v time.Time) *VictronSampleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VictronSampleCreate) SetNillableCreatedAt(v *time.Time) *VictronSampleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the VictronSampleMutation object of the builder.
func (_c *VictronSampleCreate) Mutation() *VictronSampleMutation {
	return _c.mutation
}

// Save creates the VictronSample in the database.
func (_c *VictronSampleCreate) Save(ctx context.Context) (*VictronSample, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VictronSampleCreate) SaveX(ctx context.Context) *VictronSample {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VictronSampleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VictronSampleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VictronSampleCreate) defaults() {
	if _, ok := _c.mutation.PvToLoad(); !ok {
		v := victronsample.DefaultPvToLoad
		_c.mutation.SetPvToLoad(v)
	}
	if _, ok := _c.mutation.PvToBat(); !ok {
		v := victronsample.DefaultPvToBat
		_c.mutation.SetPvToBat(v)
	}
	if _, ok := _c.mutation.BatToLoad(); !ok {
		v := victronsample.DefaultBatToLoad
		_c.mutation.SetBatToLoad(v)
	}
	if _, ok := _c.mutation.GridToLoad(); !ok {
		v := victronsample.DefaultGridToLoad
		_c.mutation.SetGridToLoad(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := victronsample.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VictronSampleCreate) check() error {
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "VictronSample.timestamp"`)}
	}
	if _, ok := _c.mutation.Soc(); !ok {
		return &ValidationError{Name: "soc", err: errors.New(`ent: missing required field "VictronSample.soc"`)}
	}
	if _, ok := _c.mutation.BatteryPower(); !ok {
		return &ValidationError{Name: "battery_power", err: errors.New(`ent: missing required field "VictronSample.battery_power"`)}
	}
	if _, ok := _c.mutation.BatteryVoltage(); !ok {
		return &ValidationError{Name: "battery_voltage", err: errors.New(`ent: missing required field "VictronSample.battery_voltage"`)}
	}
	if _, ok := _c.mutation.BatteryCurrent(); !ok {
		return &ValidationError{Name: "battery_current", err: errors.New(`ent: missing required field "VictronSample.battery_current"`)}
	}
	if _, ok := _c.mutation.PvPower(); !ok {
		return &ValidationError{Name: "pv_power", err: errors.New(`ent: missing required field "VictronSample.pv_power"`)}
	}
	if _, ok := _c.mutation.LoadPower(); !ok {
		return &ValidationError{Name: "load_power", err: errors.New(`ent: missing required field "VictronSample.load_power"`)}
	}
	if _, ok := _c.mutation.GridPower(); !ok {
		return &ValidationError{Name: "grid_power", err: errors.New(`ent: missing required field "VictronSample.grid_power"`)}
	}
	if _, ok := _c.mutation.PvToLoad(); !ok {
		return &ValidationError{Name: "pv_to_load", err: errors.New(`ent: missing required field "VictronSample.pv_to_load"`)}
	}
	if _, ok := _c.mutation.PvToBat(); !ok {
		return &ValidationError{Name: "pv_to_bat", err: errors.New(`ent: missing required field "VictronSample.pv_to_bat"`)}
	}
	if _, ok := _c.mutation.BatToLoad(); !ok {
		return &ValidationError{Name: "bat_to_load", err: errors.New(`ent: missing required field "VictronSample.bat_to_load"`)}
	}
	if _, ok := _c.mutation.GridToLoad(); !ok {
		return &ValidationError{Name: "grid_to_load", err: errors.New(`ent: missing required field "VictronSample.grid_to_load"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VictronSample.created_at"`)}
	}
	return nil
}

func (_c *VictronSampleCreate) sqlSave(ctx context.Context) (*VictronSample, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VictronSampleCreate) createSpec() (*VictronSample, *sqlgraph.CreateSpec) {
	var (
		_node = &VictronSample{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(victronsample.Table, sqlgraph.NewFieldSpec(victronsample.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.PlantID(); ok {
		_spec.SetField(victronsample.FieldPlantID, field.TypeString, value)
		_node.PlantID = &value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(victronsample.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Soc(); ok {
		_spec.SetField(victronsample.FieldSoc, field.TypeFloat64, value)
		_node.Soc = value
	}
	if value, ok := _c.mutation.BatteryPower(); ok {
		_spec.SetField(victronsample.FieldBatteryPower, field.TypeFloat64, value)
		_node.BatteryPower = value
	}
	if value, ok := _c.mutation.BatteryVoltage(); ok {
		_spec.SetField(victronsample.FieldBatteryVoltage, field.TypeFloat64, value)
		_node.BatteryVoltage = value
	}
	if value, ok := _c.mutation.BatteryCurrent(); ok {
		_spec.SetField(victronsample.FieldBatteryCurrent, field.TypeFloat64, value)
		_node.BatteryCurrent = value
	}
	if value, ok := _c.mutation.PvPower(); ok {
		_spec.SetField(victronsample.FieldPvPower, field.TypeFloat64, value)
		_node.PvPower = value
	}
	if value, ok := _c.mutation.LoadPower(); ok {
		_spec.SetField(victronsample.FieldLoadPower, field.TypeFloat64, value)
		_node.LoadPower = value
	}
	if value, ok := _c.mutation.GridPower(); ok {
		_spec.SetField(victronsample.FieldGridPower, field.TypeFloat64, value)
		_node.GridPower = value
	}
	if value, ok := _c.mutation.PvToLoad(); ok {
		_spec.SetField(victronsample.FieldPvToLoad, field.TypeBool, value)
		_node.PvToLoad = value
	}
	if value, ok := _c.mutation.PvToBat(); ok {
		_spec.SetField(victronsample.FieldPvToBat, field.TypeBool, value)
		_node.PvToBat = value
	}
	if value, ok := _c.mutation.BatToLoad(); ok {
		_spec.SetField(victronsample.FieldBatToLoad, field.TypeBool, value)
		_node.BatToLoad = value
	}
	if value, ok := _c.mutation.GridToLoad(); ok {
		_spec.SetField(victronsample.FieldGridToLoad, field.TypeBool, value)
		_node.GridToLoad = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(victronsample.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.VictronSample.Create().
//		SetPlantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VictronSampleUpsert) {
//			SetPlantID(v+v).
//		}).
//		Exec(ctx)
func (_c *VictronSampleCreate) OnConflict(opts ...sql.ConflictOption) *VictronSampleUpsertOne {
	_c.conflict = opts
	return &VictronSampleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.VictronSample.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VictronSampleCreate) OnConflictColumns(columns ...string) *VictronSampleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VictronSampleUpsertOne{
		create: _c,
	}
}

type (
	// VictronSampleUpsertOne is the builder for "upsert"-ing
	//  one VictronSample node.
	VictronSampleUpsertOne struct {
		create *VictronSampleCreate
	}

	// VictronSampleUpsert is the "OnConflict" setter.
	VictronSampleUpsert struct {
		*sql.UpdateSet
	}
)

// SetPlantID sets the "plant_id" field.
func (u *VictronSampleUpsert) SetPlantID(v string) *VictronSampleUpsert {
	u.Set(victronsample.FieldPlantID, v)
	return u
}

// UpdatePlantID sets the "plant_id" field to the value that was provided on create.
func (u *VictronSampleUpsert) UpdatePlantID() *VictronSampleUpsert {
	u.SetExcluded(victronsample.FieldPlantID)
	return u
}

// ClearPlantID clears the value of the "plant_id" field.
func (u *VictronSampleUpsert) ClearPlantID() *VictronSampleUpsert {
	u.SetNull(victronsample.FieldPlantID)
	return u
}

// SetTimestamp sets the "timestamp" field.
func (u *VictronSampleUpsert) SetTimestamp(v time.Time) *VictronSampleUpsert {
	u.Set(victronsample.FieldTimestamp, v)
	return u
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *VictronSampleUpsert) UpdateTimestamp() *VictronSampleUpsert {
	u.SetExcluded(victronsample.FieldTimestamp)
	return u
}

// SetSoc sets the "soc" field.
func (u *VictronSampleUpsert) SetSoc(v float64) *VictronSampleUpsert {
	u.Set(victronsample.FieldSoc, v)
	return u
}

// UpdateSoc sets the "soc" field to the value that was provided on create.
func (u *VictronSampleUpsert) UpdateSoc() *VictronSampleUpsert {
	u.SetExcluded(victronsample.FieldSoc)
	return u
}

// AddSoc adds v to the "soc" field.
func (u *VictronSampleUpsert) AddSoc(v float64) *VictronSampleUpsert {
	u.Add(victronsample.FieldSoc, v)
	return u
}

// SetBatteryPower sets the "battery_power" field.
func (u *VictronSampleUpsert) SetBatteryPower(v float64) *VictronSampleUpsert {
	u.Set(victronsample.FieldBatteryPower, v)
	return u
}

// UpdateBatteryPower sets the "battery_power" field to the value that was provided on create.
func (u *VictronSampleUpsert) UpdateBatteryPower() *VictronSampleUpsert {
	u.SetExcluded(victronsample.FieldBatteryPower)
	return u
}

// AddBatteryPower adds v to the "battery_power" field.
func (u *VictronSampleUpsert) AddBatteryPower(v float64) *VictronSampleUpsert {
	u.Add(victronsample.FieldBatteryPower, v)
	return u
}

// SetBatteryVoltage sets the "battery_voltage" field.
func (u *VictronSampleUpsert) SetBatteryVoltage(v float64) *VictronSampleUpsert {
	u.Set(victronsample.FieldBatteryVoltage, v)
	return u
}

// UpdateBatteryVoltage sets the "battery_voltage" field to the value that was provided on create.
func (u *VictronSampleUpsert) UpdateBatteryVoltage() *VictronSampleUpsert {
	u.SetExcluded(victronsample.FieldBatteryVoltage)
	return u
}

// AddBatteryVoltage adds v to the "battery_voltage" field.
func (u *VictronSampleUpsert) AddBatteryVoltage(v float64) *VictronSampleUpsert {
	u.Add(victronsample.FieldBatteryVoltage, v)
	return u
}

// SetBatteryCurrent sets the "battery_current" field.
func (u *VictronSampleUpsert) SetBatteryCurrent(v float64) *VictronSampleUpsert {
	u.Set(victronsample.FieldBatteryCurrent, v)
	return u
}

// UpdateBatteryCurrent sets the "battery_current" field to the value that was provided on create.
func (u *VictronSampleUpsert) UpdateBatteryCurrent() *VictronSampleUpsert {
	u.SetExcluded(victronsample.FieldBatteryCurrent)
	return u
}

// AddBatteryCurrent adds v to the "battery_current" field.
func (u *VictronSampleUpsert) AddBatteryCurrent(v float64) *VictronSampleUpsert {
	u.Add(victronsample.FieldBatteryCurrent, v)
	return u
}

// SetPvPower sets the "pv_power" field.
func (u *VictronSampleUpsert) SetPvPower(v float64) *VictronSampleUpsert {
	u.Set(victronsample.FieldPvPower, v)
	return u
}

// UpdatePvPower sets the "pv_power" field to the value that was provided on create.
func (u *VictronSampleUpsert) UpdatePvPower() *VictronSampleUpsert {
	u.SetExcluded(victronsample.FieldPvPower)
	return u
}

// AddPvPower adds v to the "pv_power" field.
func (u *VictronSampleUpsert) AddPvPower(v float64) *VictronSampleUpsert {
	u.Add(victronsample.FieldPvPower, v)
	return u
}

// SetLoadPower sets the "load_power" field.
func (u *VictronSampleUpsert) SetLoadPower(v float64) *VictronSampleUpsert {
	u.Set(victronsample.FieldLoadPower, v)
	return u
}

// UpdateLoadPower sets the "load_power" field to the value that was provided on create.
func (u *VictronSampleUpsert) UpdateLoadPower() *VictronSampleUpsert {
	u.SetExcluded(victronsample.FieldLoadPower)
	return u
}

// AddLoadPower adds v to the "load_power" field.
func (u *VictronSampleUpsert) AddLoadPower(v float64) *VictronSampleUpsert {
	u.Add(victronsample.FieldLoadPower, v)
	return u
}

// SetGridPower sets the "grid_power" field.
func (u *VictronSampleUpsert) SetGridPower(v float64) *VictronSampleUpsert {
	u.Set(victronsample.FieldGridPower, v)
	return u
}

// UpdateGridPower sets the "grid_power" field to the value that was provided on create.
func (u *VictronSampleUpsert) UpdateGridPower() *VictronSampleUpsert {
	u.SetExcluded(victronsample.FieldGridPower)
	return u
}

// AddGridPower adds v to the "grid_power" field.
func (u *VictronSampleUpsert) AddGridPower(v float64) *VictronSampleUpsert {
	u.Add(victronsample.FieldGridPower, v)
	return u
}

// SetPvToLoad sets the "pv_to_load" field.
func (u *VictronSampleUpsert) SetPvToLoad(v bool) *VictronSampleUpsert {
	u.Set(victronsample.FieldPvToLoad, v)
	return u
}

// UpdatePvToLoad sets the "pv_to_load" field to the value that was provided on create.
func (u *VictronSampleUpsert) UpdatePvToLoad() *VictronSampleUpsert {
	u.SetExcluded(victronsample.FieldPvToLoad)
	return u
}

// SetPvToBat sets the "pv_to_bat" field.
func (u *VictronSampleUpsert) SetPvToBat(v bool) *VictronSampleUpsert {
	u.Set(victronsample.FieldPvToBat, v)
	return u
}

// UpdatePvToBat sets the "pv_to_bat" field to the value that was provided on create.
func (u *VictronSampleUpsert) UpdatePvToBat() *VictronSampleUpsert {
	u.SetExcluded(victronsample.FieldPvToBat)
	return u
}

// SetBatToLoad sets the "bat_to_load" field.
func (u *VictronSampleUpsert) SetBatToLoad(v bool) *VictronSampleUpsert {
	u.Set(victronsample.FieldBatToLoad, v)
	return u
}

// UpdateBatToLoad sets the "bat_to_load" field to the value that was provided on create.
func (u *VictronSampleUpsert) UpdateBatToLoad() *VictronSampleUpsert {
	u.SetExcluded(victronsample.FieldBatToLoad)
	return u
}

// SetGridToLoad sets the "grid_to_load" field.
func (u *VictronSampleUpsert) SetGridToLoad(v bool) *VictronSampleUpsert {
	u.Set(victronsample.FieldGridToLoad, v)
	return u
}

// UpdateGridToLoad sets the "grid_to_load" field to the value that was provided on create.
func (u *VictronSampleUpsert) UpdateGridToLoad() *VictronSampleUpsert {
	u.SetExcluded(victronsample.FieldGridToLoad)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.VictronSample.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *VictronSampleUpsertOne) UpdateNewValues() *VictronSampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(victronsample.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.VictronSample.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *VictronSampleUpsertOne) Ignore() *VictronSampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VictronSampleUpsertOne) DoNothing() *VictronSampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VictronSampleCreate.OnConflict
// documentation for more info.
func (u *VictronSampleUpsertOne) Update(set func(*VictronSampleUpsert)) *VictronSampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VictronSampleUpsert{UpdateSet: update})
	}))
	return u
}

// SetPlantID sets the "plant_id" field.
func (u *VictronSampleUpsertOne) SetPlantID(v string) *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.SetPlantID(v)
	})
}

// UpdatePlantID sets the "plant_id" field to the value that was provided on create.
func (u *VictronSampleUpsertOne) UpdatePlantID() *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.UpdatePlantID()
	})
}

// ClearPlantID clears the value of the "plant_id" field.
func (u *VictronSampleUpsertOne) ClearPlantID() *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.ClearPlantID()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *VictronSampleUpsertOne) SetTimestamp(v time.Time) *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *VictronSampleUpsertOne) UpdateTimestamp() *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.UpdateTimestamp()
	})
}

// SetSoc sets the "soc" field.
func (u *VictronSampleUpsertOne) SetSoc(v float64) *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.SetSoc(v)
	})
}

// AddSoc adds v to the "soc" field.
func (u *VictronSampleUpsertOne) AddSoc(v float64) *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.AddSoc(v)
	})
}

// UpdateSoc sets the "soc" field to the value that was provided on create.
func (u *VictronSampleUpsertOne) UpdateSoc() *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.UpdateSoc()
	})
}

// SetBatteryPower sets the "battery_power" field.
func (u *VictronSampleUpsertOne) SetBatteryPower(v float64) *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.SetBatteryPower(v)
	})
}

// AddBatteryPower adds v to the "battery_power" field.
func (u *VictronSampleUpsertOne) AddBatteryPower(v float64) *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.AddBatteryPower(v)
	})
}

// UpdateBatteryPower sets the "battery_power" field to the value that was provided on create.
func (u *VictronSampleUpsertOne) UpdateBatteryPower() *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.UpdateBatteryPower()
	})
}

// SetBatteryVoltage sets the "battery_voltage" field.
func (u *VictronSampleUpsertOne) SetBatteryVoltage(v float64) *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.SetBatteryVoltage(v)
	})
}

// AddBatteryVoltage adds v to the "battery_voltage" field.
func (u *VictronSampleUpsertOne) AddBatteryVoltage(v float64) *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.AddBatteryVoltage(v)
	})
}

// UpdateBatteryVoltage sets the "battery_voltage" field to the value that was provided on create.
func (u *VictronSampleUpsertOne) UpdateBatteryVoltage() *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.UpdateBatteryVoltage()
	})
}

// SetBatteryCurrent sets the "battery_current" field.
func (u *VictronSampleUpsertOne) SetBatteryCurrent(v float64) *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.SetBatteryCurrent(v)
	})
}

// AddBatteryCurrent adds v to the "battery_current" field.
func (u *VictronSampleUpsertOne) AddBatteryCurrent(v float64) *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.AddBatteryCurrent(v)
	})
}

// UpdateBatteryCurrent sets the "battery_current" field to the value that was provided on create.
func (u *VictronSampleUpsertOne) UpdateBatteryCurrent() *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.UpdateBatteryCurrent()
	})
}

// SetPvPower sets the "pv_power" field.
func (u *VictronSampleUpsertOne) SetPvPower(v float64) *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.SetPvPower(v)
	})
}

// AddPvPower adds v to the "pv_power" field.
func (u *VictronSampleUpsertOne) AddPvPower(v float64) *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.AddPvPower(v)
	})
}

// UpdatePvPower sets the "pv_power" field to the value that was provided on create.
func (u *VictronSampleUpsertOne) UpdatePvPower() *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.UpdatePvPower()
	})
}

// SetLoadPower sets the "load_power" field.
func (u *VictronSampleUpsertOne) SetLoadPower(v float64) *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.SetLoadPower(v)
	})
}

// AddLoadPower adds v to the "load_power" field.
func (u *VictronSampleUpsertOne) AddLoadPower(v float64) *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.AddLoadPower(v)
	})
}

// UpdateLoadPower sets the "load_power" field to the value that was provided on create.
func (u *VictronSampleUpsertOne) UpdateLoadPower() *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.UpdateLoadPower()
	})
}

// SetGridPower sets the "grid_power" field.
func (u *VictronSampleUpsertOne) SetGridPower(v float64) *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.SetGridPower(v)
	})
}

// AddGridPower adds v to the "grid_power" field.
func (u *VictronSampleUpsertOne) AddGridPower(v float64) *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.AddGridPower(v)
	})
}

// UpdateGridPower sets the "grid_power" field to the value that was provided on create.
func (u *VictronSampleUpsertOne) UpdateGridPower() *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.UpdateGridPower()
	})
}

// SetPvToLoad sets the "pv_to_load" field.
func (u *VictronSampleUpsertOne) SetPvToLoad(v bool) *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.SetPvToLoad(v)
	})
}

// UpdatePvToLoad sets the "pv_to_load" field to the value that was provided on create.
func (u *VictronSampleUpsertOne) UpdatePvToLoad() *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.UpdatePvToLoad()
	})
}

// SetPvToBat sets the "pv_to_bat" field.
func (u *VictronSampleUpsertOne) SetPvToBat(v bool) *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.SetPvToBat(v)
	})
}

// UpdatePvToBat sets the "pv_to_bat" field to the value that was provided on create.
func (u *VictronSampleUpsertOne) UpdatePvToBat() *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.UpdatePvToBat()
	})
}

// SetBatToLoad sets the "bat_to_load" field.
func (u *VictronSampleUpsertOne) SetBatToLoad(v bool) *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.SetBatToLoad(v)
	})
}

// UpdateBatToLoad sets the "bat_to_load" field to the value that was provided on create.
func (u *VictronSampleUpsertOne) UpdateBatToLoad() *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.UpdateBatToLoad()
	})
}

// SetGridToLoad sets the "grid_to_load" field.
func (u *VictronSampleUpsertOne) SetGridToLoad(v bool) *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.SetGridToLoad(v)
	})
}

// UpdateGridToLoad sets the "grid_to_load" field to the value that was provided on create.
func (u *VictronSampleUpsertOne) UpdateGridToLoad() *VictronSampleUpsertOne {
	return u.Update(func(s *VictronSampleUpsert) {
		s.UpdateGridToLoad()
	})
}

// Exec executes the query.
func (u *VictronSampleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VictronSampleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VictronSampleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *VictronSampleUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *VictronSampleUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// VictronSampleCreateBulk is the builder for creating many VictronSample entities in bulk.
type VictronSampleCreateBulk struct {
	config
	err      error
	builders []*VictronSampleCreate
	conflict []sql.ConflictOption
}

// Save creates the VictronSample entities in the database.
func (_c *VictronSampleCreateBulk) Save(ctx context.Context) ([]*VictronSample, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VictronSample, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VictronSampleMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *VictronSampleCreateBulk) SaveX(ctx context.Context) []*VictronSample {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VictronSampleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VictronSampleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.VictronSample.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VictronSampleUpsert) {
//			SetPlantID(v+v).
//		}).
//		Exec(ctx)
func (_c *VictronSampleCreateBulk) OnConflict(opts ...sql.ConflictOption) *VictronSampleUpsertBulk {
	_c.conflict = opts
	return &VictronSampleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.VictronSample.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VictronSampleCreateBulk) OnConflictColumns(columns ...string) *VictronSampleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VictronSampleUpsertBulk{
		create: _c,
	}
}

// VictronSampleUpsertBulk is the builder for "upsert"-ing
// a bulk of VictronSample nodes.
type VictronSampleUpsertBulk struct {
	create *VictronSampleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.VictronSample.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *VictronSampleUpsertBulk) UpdateNewValues() *VictronSampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(victronsample.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.VictronSample.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *VictronSampleUpsertBulk) Ignore() *VictronSampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VictronSampleUpsertBulk) DoNothing() *VictronSampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VictronSampleCreateBulk.OnConflict
// documentation for more info.
func (u *VictronSampleUpsertBulk) Update(set func(*VictronSampleUpsert)) *VictronSampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VictronSampleUpsert{UpdateSet: update})
	}))
	return u
}

// SetPlantID sets the "plant_id" field.
func (u *VictronSampleUpsertBulk) SetPlantID(v string) *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.SetPlantID(v)
	})
}

// UpdatePlantID sets the "plant_id" field to the value that was provided on create.
func (u *VictronSampleUpsertBulk) UpdatePlantID() *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.UpdatePlantID()
	})
}

// ClearPlantID clears the value of the "plant_id" field.
func (u *VictronSampleUpsertBulk) ClearPlantID() *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.ClearPlantID()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *VictronSampleUpsertBulk) SetTimestamp(v time.Time) *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *VictronSampleUpsertBulk) UpdateTimestamp() *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.UpdateTimestamp()
	})
}

// SetSoc sets the "soc" field.
func (u *VictronSampleUpsertBulk) SetSoc(v float64) *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.SetSoc(v)
	})
}

// AddSoc adds v to the "soc" field.
func (u *VictronSampleUpsertBulk) AddSoc(v float64) *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.AddSoc(v)
	})
}

// UpdateSoc sets the "soc" field to the value that was provided on create.
func (u *VictronSampleUpsertBulk) UpdateSoc() *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.UpdateSoc()
	})
}

// SetBatteryPower sets the "battery_power" field.
func (u *VictronSampleUpsertBulk) SetBatteryPower(v float64) *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.SetBatteryPower(v)
	})
}

// AddBatteryPower adds v to the "battery_power" field.
func (u *VictronSampleUpsertBulk) AddBatteryPower(v float64) *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.AddBatteryPower(v)
	})
}

// UpdateBatteryPower sets the "battery_power" field to the value that was provided on create.
func (u *VictronSampleUpsertBulk) UpdateBatteryPower() *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.UpdateBatteryPower()
	})
}

// SetBatteryVoltage sets the "battery_voltage" field.
func (u *VictronSampleUpsertBulk) SetBatteryVoltage(v float64) *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.SetBatteryVoltage(v)
	})
}

// AddBatteryVoltage adds v to the "battery_voltage" field.
func (u *VictronSampleUpsertBulk) AddBatteryVoltage(v float64) *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.AddBatteryVoltage(v)
	})
}

// UpdateBatteryVoltage sets the "battery_voltage" field to the value that was provided on create.
func (u *VictronSampleUpsertBulk) UpdateBatteryVoltage() *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.UpdateBatteryVoltage()
	})
}

// SetBatteryCurrent sets the "battery_current" field.
func (u *VictronSampleUpsertBulk) SetBatteryCurrent(v float64) *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.SetBatteryCurrent(v)
	})
}

// AddBatteryCurrent adds v to the "battery_current" field.
func (u *VictronSampleUpsertBulk) AddBatteryCurrent(v float64) *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.AddBatteryCurrent(v)
	})
}

// UpdateBatteryCurrent sets the "battery_current" field to the value that was provided on create.
func (u *VictronSampleUpsertBulk) UpdateBatteryCurrent() *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.UpdateBatteryCurrent()
	})
}

// SetPvPower sets the "pv_power" field.
func (u *VictronSampleUpsertBulk) SetPvPower(v float64) *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.SetPvPower(v)
	})
}

// AddPvPower adds v to the "pv_power" field.
func (u *VictronSampleUpsertBulk) AddPvPower(v float64) *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.AddPvPower(v)
	})
}

// UpdatePvPower sets the "pv_power" field to the value that was provided on create.
func (u *VictronSampleUpsertBulk) UpdatePvPower() *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.UpdatePvPower()
	})
}

// SetLoadPower sets the "load_power" field.
func (u *VictronSampleUpsertBulk) SetLoadPower(v float64) *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.SetLoadPower(v)
	})
}

// AddLoadPower adds v to the "load_power" field.
func (u *VictronSampleUpsertBulk) AddLoadPower(v float64) *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.AddLoadPower(v)
	})
}

// UpdateLoadPower sets the "load_power" field to the value that was provided on create.
func (u *VictronSampleUpsertBulk) UpdateLoadPower() *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.UpdateLoadPower()
	})
}

// SetGridPower sets the "grid_power" field.
func (u *VictronSampleUpsertBulk) SetGridPower(v float64) *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.SetGridPower(v)
	})
}

// AddGridPower adds v to the "grid_power" field.
func (u *VictronSampleUpsertBulk) AddGridPower(v float64) *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.AddGridPower(v)
	})
}

// UpdateGridPower sets the "grid_power" field to the value that was provided on create.
func (u *VictronSampleUpsertBulk) UpdateGridPower() *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.UpdateGridPower()
	})
}

// SetPvToLoad sets the "pv_to_load" field.
func (u *VictronSampleUpsertBulk) SetPvToLoad(v bool) *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.SetPvToLoad(v)
	})
}

// UpdatePvToLoad sets the "pv_to_load" field to the value that was provided on create.
func (u *VictronSampleUpsertBulk) UpdatePvToLoad() *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.UpdatePvToLoad()
	})
}

// SetPvToBat sets the "pv_to_bat" field.
func (u *VictronSampleUpsertBulk) SetPvToBat(v bool) *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.SetPvToBat(v)
	})
}

// UpdatePvToBat sets the "pv_to_bat" field to the value that was provided on create.
func (u *VictronSampleUpsertBulk) UpdatePvToBat() *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.UpdatePvToBat()
	})
}

// SetBatToLoad sets the "bat_to_load" field.
func (u *VictronSampleUpsertBulk) SetBatToLoad(v bool) *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.SetBatToLoad(v)
	})
}

// UpdateBatToLoad sets the "bat_to_load" field to the value that was provided on create.
func (u *VictronSampleUpsertBulk) UpdateBatToLoad() *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.UpdateBatToLoad()
	})
}

// SetGridToLoad sets the "grid_to_load" field.
func (u *VictronSampleUpsertBulk) SetGridToLoad(v bool) *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.SetGridToLoad(v)
	})
}

// UpdateGridToLoad sets the "grid_to_load" field to the value that was provided on create.
func (u *VictronSampleUpsertBulk) UpdateGridToLoad() *VictronSampleUpsertBulk {
	return u.Update(func(s *VictronSampleUpsert) {
		s.UpdateGridToLoad()
	})
}

// Exec executes the query.
func (u *VictronSampleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the VictronSampleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VictronSampleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VictronSampleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
