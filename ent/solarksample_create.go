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
	"github.com/offgrid-ops/commandcenter/ent/solarksample"
)

// SolarkSampleCreate is the builder for creating a SolarkSample entity.
type SolarkSampleCreate struct {
	config
	mutation *SolarkSampleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPlantID sets the "plant_id" field.
func (_c *SolarkSampleCreate) SetPlantID(v string) *SolarkSampleCreate {
	_c.mutation.SetPlantID(v)
	return _c
}

// SetNillablePlantID sets the "plant_id" field if the given value is not nil.
func (_c *SolarkSampleCreate) SetNillablePlantID(v *string) *SolarkSampleCreate {
	if v != nil {
		_c.SetPlantID(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SolarkSampleCreate) SetTimestamp(v time.Time) *SolarkSampleCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetSoc sets the "soc" field.
func (_c *SolarkSampleCreate) SetSoc(v float64) *SolarkSampleCreate {
	_c.mutation.SetSoc(v)
	return _c
}

// SetBatteryPower sets the "battery_power" field.
func (_c *SolarkSampleCreate) SetBatteryPower(v float64) *SolarkSampleCreate {
	_c.mutation.SetBatteryPower(v)
	return _c
}

// SetBatteryVoltage sets the "battery_voltage" field.
func (_c *SolarkSampleCreate) SetBatteryVoltage(v float64) *SolarkSampleCreate {
	_c.mutation.SetBatteryVoltage(v)
	return _c
}

// SetBatteryCurrent sets the "battery_current" field.
func (_c *SolarkSampleCreate) SetBatteryCurrent(v float64) *SolarkSampleCreate {
	_c.mutation.SetBatteryCurrent(v)
	return _c
}

// SetPvPower sets the "pv_power" field.
func (_c *SolarkSampleCreate) SetPvPower(v float64) *SolarkSampleCreate {
	_c.mutation.SetPvPower(v)
	return _c
}

// SetLoadPower sets the "load_power" field.
func (_c *SolarkSampleCreate) SetLoadPower(v float64) *SolarkSampleCreate {
	_c.mutation.SetLoadPower(v)
	return _c
}

// SetGridPower sets the "grid_power" field.
func (_c *SolarkSampleCreate) SetGridPower(v float64) *SolarkSampleCreate {
	_c.mutation.SetGridPower(v)
	return _c
}

// SetPvToLoad sets the "pv_to_load" field.
func (_c *SolarkSampleCreate) SetPvToLoad(v bool) *SolarkSampleCreate {
	_c.mutation.SetPvToLoad(v)
	return _c
}

// SetNillablePvToLoad sets the "pv_to_load" field if the given value is not nil.
func (_c *SolarkSampleCreate) SetNillablePvToLoad(v *bool) *SolarkSampleCreate {
	if v != nil {
		_c.SetPvToLoad(*v)
	}
	return _c
}

// SetPvToBat sets the "pv_to_bat" field.
func (_c *SolarkSampleCreate) SetPvToBat(v bool) *SolarkSampleCreate {
	_c.mutation.SetPvToBat(v)
	return _c
}

// SetNillablePvToBat sets the "pv_to_bat" field if the given value is not nil.
func (_c *SolarkSampleCreate) SetNillablePvToBat(v *bool) *SolarkSampleCreate {
	if v != nil {
		_c.SetPvToBat(*v)
	}
	return _c
}

// SetBatToLoad sets the "bat_to_load" field.
func (_c *SolarkSampleCreate) SetBatToLoad(v bool) *SolarkSampleCreate {
	_c.mutation.SetBatToLoad(v)
	return _c
}

// SetNillableBatToLoad sets the "bat_to_load" field if the given value is not nil.
func (_c *SolarkSampleCreate) SetNillableBatToLoad(v *bool) *SolarkSampleCreate {
	if v != nil {
		_c.SetBatToLoad(*v)
	}
	return _c
}

// SetGridToLoad sets the "grid_to_load" field.
func (_c *SolarkSampleCreate) SetGridToLoad(v bool) *SolarkSampleCreate {
	_c.mutation.SetGridToLoad(v)
	return _c
}

// SetNillableGridToLoad sets the "grid_to_load" field if the given value is not nil.
func (_c *SolarkSampleCreate) SetNillableGridToLoad(v *bool) *SolarkSampleCreate {
	if v != nil {
		_c.SetGridToLoad(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SolarkSampleCreate) SetCreatedAt(v time.Time) *SolarkSampleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SolarkSampleCreate) SetNillableCreatedAt(v *time.Time) *SolarkSampleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the SolarkSampleMutation object of the builder.
func (_c *SolarkSampleCreate) Mutation() *SolarkSampleMutation {
	return _c.mutation
}

// Save creates the SolarkSample in the database.
func (_c *SolarkSampleCreate) Save(ctx context.Context) (*SolarkSample, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SolarkSampleCreate) SaveX(ctx context.Context) *SolarkSample {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SolarkSampleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SolarkSampleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SolarkSampleCreate) defaults() {
	if _, ok := _c.mutation.PvToLoad(); !ok {
		v := solarksample.DefaultPvToLoad
		_c.mutation.SetPvToLoad(v)
	}
	if _, ok := _c.mutation.PvToBat(); !ok {
		v := solarksample.DefaultPvToBat
		_c.mutation.SetPvToBat(v)
	}
	if _, ok := _c.mutation.BatToLoad(); !ok {
		v := solarksample.DefaultBatToLoad
		_c.mutation.SetBatToLoad(v)
	}
	if _, ok := _c.mutation.GridToLoad(); !ok {
		v := solarksample.DefaultGridToLoad
		_c.mutation.SetGridToLoad(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := solarksample.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SolarkSampleCreate) check() error {
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SolarkSample.timestamp"`)}
	}
	if _, ok := _c.mutation.Soc(); !ok {
		return &ValidationError{Name: "soc", err: errors.New(`ent: missing required field "SolarkSample.soc"`)}
	}
	if _, ok := _c.mutation.BatteryPower(); !ok {
		return &ValidationError{Name: "battery_power", err: errors.New(`ent: missing required field "SolarkSample.battery_power"`)}
	}
	if _, ok := _c.mutation.BatteryVoltage(); !ok {
		return &ValidationError{Name: "battery_voltage", err: errors.New(`ent: missing required field "SolarkSample.battery_voltage"`)}
	}
	if _, ok := _c.mutation.BatteryCurrent(); !ok {
		return &ValidationError{Name: "battery_current", err: errors.New(`ent: missing required field "SolarkSample.battery_current"`)}
	}
	if _, ok := _c.mutation.PvPower(); !ok {
		return &ValidationError{Name: "pv_power", err: errors.New(`ent: missing required field "SolarkSample.pv_power"`)}
	}
	if _, ok := _c.mutation.LoadPower(); !ok {
		return &ValidationError{Name: "load_power", err: errors.New(`ent: missing required field "SolarkSample.load_power"`)}
	}
	if _, ok := _c.mutation.GridPower(); !ok {
		return &ValidationError{Name: "grid_power", err: errors.New(`ent: missing required field "SolarkSample.grid_power"`)}
	}
	if _, ok := _c.mutation.PvToLoad(); !ok {
		return &ValidationError{Name: "pv_to_load", err: errors.New(`ent: missing required field "SolarkSample.pv_to_load"`)}
	}
	if _, ok := _c.mutation.PvToBat(); !ok {
		return &ValidationError{Name: "pv_to_bat", err: errors.New(`ent: missing required field "SolarkSample.pv_to_bat"`)}
	}
	if _, ok := _c.mutation.BatToLoad(); !ok {
		return &ValidationError{Name: "bat_to_load", err: errors.New(`ent: missing required field "SolarkSample.bat_to_load"`)}
	}
	if _, ok := _c.mutation.GridToLoad(); !ok {
		return &ValidationError{Name: "grid_to_load", err: errors.New(`ent: missing required field "SolarkSample.grid_to_load"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SolarkSample.created_at"`)}
	}
	return nil
}

func (_c *SolarkSampleCreate) sqlSave(ctx context.Context) (*SolarkSample, error) {
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

func (_c *SolarkSampleCreate) createSpec() (*SolarkSample, *sqlgraph.CreateSpec) {
	var (
		_node = &SolarkSample{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(solarksample.Table, sqlgraph.NewFieldSpec(solarksample.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.PlantID(); ok {
		_spec.SetField(solarksample.FieldPlantID, field.TypeString, value)
		_node.PlantID = &value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(solarksample.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Soc(); ok {
		_spec.SetField(solarksample.FieldSoc, field.TypeFloat64, value)
		_node.Soc = value
	}
	if value, ok := _c.mutation.BatteryPower(); ok {
		_spec.SetField(solarksample.FieldBatteryPower, field.TypeFloat64, value)
		_node.BatteryPower = value
	}
	if value, ok := _c.mutation.BatteryVoltage(); ok {
		_spec.SetField(solarksample.FieldBatteryVoltage, field.TypeFloat64, value)
		_node.BatteryVoltage = value
	}
	if value, ok := _c.mutation.BatteryCurrent(); ok {
		_spec.SetField(solarksample.FieldBatteryCurrent, field.TypeFloat64, value)
		_node.BatteryCurrent = value
	}
	if value, ok := _c.mutation.PvPower(); ok {
		_spec.SetField(solarksample.FieldPvPower, field.TypeFloat64, value)
		_node.PvPower = value
	}
	if value, ok := _c.mutation.LoadPower(); ok {
		_spec.SetField(solarksample.FieldLoadPower, field.TypeFloat64, value)
		_node.LoadPower = value
	}
	if value, ok := _c.mutation.GridPower(); ok {
		_spec.SetField(solarksample.FieldGridPower, field.TypeFloat64, value)
		_node.GridPower = value
	}
	if value, ok := _c.mutation.PvToLoad(); ok {
		_spec.SetField(solarksample.FieldPvToLoad, field.TypeBool, value)
		_node.PvToLoad = value
	}
	if value, ok := _c.mutation.PvToBat(); ok {
		_spec.SetField(solarksample.FieldPvToBat, field.TypeBool, value)
		_node.PvToBat = value
	}
	if value, ok := _c.mutation.BatToLoad(); ok {
		_spec.SetField(solarksample.FieldBatToLoad, field.TypeBool, value)
		_node.BatToLoad = value
	}
	if value, ok := _c.mutation.GridToLoad(); ok {
		_spec.SetField(solarksample.FieldGridToLoad, field.TypeBool, value)
		_node.GridToLoad = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(solarksample.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SolarkSample.Create().
//		SetPlantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SolarkSampleUpsert) {
//			SetPlantID(v+v).
//		}).
//		Exec(ctx)
func (_c *SolarkSampleCreate) OnConflict(opts ...sql.ConflictOption) *SolarkSampleUpsertOne {
	_c.conflict = opts
	return &SolarkSampleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SolarkSample.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SolarkSampleCreate) OnConflictColumns(columns ...string) *SolarkSampleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SolarkSampleUpsertOne{
		create: _c,
	}
}

type (
	// SolarkSampleUpsertOne is the builder for "upsert"-ing
	//  one SolarkSample node.
	SolarkSampleUpsertOne struct {
		create *SolarkSampleCreate
	}

	// SolarkSampleUpsert is the "OnConflict" setter.
	SolarkSampleUpsert struct {
		*sql.UpdateSet
	}
)

// SetPlantID sets the "plant_id" field.
func (u *SolarkSampleUpsert) SetPlantID(v string) *SolarkSampleUpsert {
	u.Set(solarksample.FieldPlantID, v)
	return u
}

// UpdatePlantID sets the "plant_id" field to the value that was provided on create.
func (u *SolarkSampleUpsert) UpdatePlantID() *SolarkSampleUpsert {
	u.SetExcluded(solarksample.FieldPlantID)
	return u
}

// ClearPlantID clears the value of the "plant_id" field.
func (u *SolarkSampleUpsert) ClearPlantID() *SolarkSampleUpsert {
	u.SetNull(solarksample.FieldPlantID)
	return u
}

// SetTimestamp sets the "timestamp" field.
func (u *SolarkSampleUpsert) SetTimestamp(v time.Time) *SolarkSampleUpsert {
	u.Set(solarksample.FieldTimestamp, v)
	return u
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *SolarkSampleUpsert) UpdateTimestamp() *SolarkSampleUpsert {
	u.SetExcluded(solarksample.FieldTimestamp)
	return u
}

// SetSoc sets the "soc" field.
func (u *SolarkSampleUpsert) SetSoc(v float64) *SolarkSampleUpsert {
	u.Set(solarksample.FieldSoc, v)
	return u
}

// UpdateSoc sets the "soc" field to the value that was provided on create.
func (u *SolarkSampleUpsert) UpdateSoc() *SolarkSampleUpsert {
	u.SetExcluded(solarksample.FieldSoc)
	return u
}

// AddSoc adds v to the "soc" field.
func (u *SolarkSampleUpsert) AddSoc(v float64) *SolarkSampleUpsert {
	u.Add(solarksample.FieldSoc, v)
	return u
}

// SetBatteryPower sets the "battery_power" field.
func (u *SolarkSampleUpsert) SetBatteryPower(v float64) *SolarkSampleUpsert {
	u.Set(solarksample.FieldBatteryPower, v)
	return u
}

// UpdateBatteryPower sets the "battery_power" field to the value that was provided on create.
func (u *SolarkSampleUpsert) UpdateBatteryPower() *SolarkSampleUpsert {
	u.SetExcluded(solarksample.FieldBatteryPower)
	return u
}

// AddBatteryPower adds v to the "battery_power" field.
func (u *SolarkSampleUpsert) AddBatteryPower(v float64) *SolarkSampleUpsert {
	u.Add(solarksample.FieldBatteryPower, v)
	return u
}

// SetBatteryVoltage sets the "battery_voltage" field.
func (u *SolarkSampleUpsert) SetBatteryVoltage(v float64) *SolarkSampleUpsert {
	u.Set(solarksample.FieldBatteryVoltage, v)
	return u
}

// UpdateBatteryVoltage sets the "battery_voltage" field to the value that was provided on create.
func (u *SolarkSampleUpsert) UpdateBatteryVoltage() *SolarkSampleUpsert {
	u.SetExcluded(solarksample.FieldBatteryVoltage)
	return u
}

// AddBatteryVoltage adds v to the "battery_voltage" field.
func (u *SolarkSampleUpsert) AddBatteryVoltage(v float64) *SolarkSampleUpsert {
	u.Add(solarksample.FieldBatteryVoltage, v)
	return u
}

// SetBatteryCurrent sets the "battery_current" field.
func (u *SolarkSampleUpsert) SetBatteryCurrent(v float64) *SolarkSampleUpsert {
	u.Set(solarksample.FieldBatteryCurrent, v)
	return u
}

// UpdateBatteryCurrent sets the "battery_current" field to the value that was provided on create.
func (u *SolarkSampleUpsert) UpdateBatteryCurrent() *SolarkSampleUpsert {
	u.SetExcluded(solarksample.FieldBatteryCurrent)
	return u
}

// AddBatteryCurrent adds v to the "battery_current" field.
func (u *SolarkSampleUpsert) AddBatteryCurrent(v float64) *SolarkSampleUpsert {
	u.Add(solarksample.FieldBatteryCurrent, v)
	return u
}

// SetPvPower sets the "pv_power" field.
func (u *SolarkSampleUpsert) SetPvPower(v float64) *SolarkSampleUpsert {
	u.Set(solarksample.FieldPvPower, v)
	return u
}

// UpdatePvPower sets the "pv_power" field to the value that was provided on create.
func (u *SolarkSampleUpsert) UpdatePvPower() *SolarkSampleUpsert {
	u.SetExcluded(solarksample.FieldPvPower)
	return u
}

// AddPvPower adds v to the "pv_power" field.
func (u *SolarkSampleUpsert) AddPvPower(v float64) *SolarkSampleUpsert {
	u.Add(solarksample.FieldPvPower, v)
	return u
}

// SetLoadPower sets the "load_power" field.
func (u *SolarkSampleUpsert) SetLoadPower(v float64) *SolarkSampleUpsert {
	u.Set(solarksample.FieldLoadPower, v)
	return u
}

// UpdateLoadPower sets the "load_power" field to the value that was provided on create.
func (u *SolarkSampleUpsert) UpdateLoadPower() *SolarkSampleUpsert {
	u.SetExcluded(solarksample.FieldLoadPower)
	return u
}

// AddLoadPower adds v to the "load_power" field.
func (u *SolarkSampleUpsert) AddLoadPower(v float64) *SolarkSampleUpsert {
	u.Add(solarksample.FieldLoadPower, v)
	return u
}

// SetGridPower sets the "grid_power" field.
func (u *SolarkSampleUpsert) SetGridPower(v float64) *SolarkSampleUpsert {
	u.Set(solarksample.FieldGridPower, v)
	return u
}

// UpdateGridPower sets the "grid_power" field to the value that was provided on create.
func (u *SolarkSampleUpsert) UpdateGridPower() *SolarkSampleUpsert {
	u.SetExcluded(solarksample.FieldGridPower)
	return u
}

// AddGridPower adds v to the "grid_power" field.
func (u *SolarkSampleUpsert) AddGridPower(v float64) *SolarkSampleUpsert {
	u.Add(solarksample.FieldGridPower, v)
	return u
}

// SetPvToLoad sets the "pv_to_load" field.
func (u *SolarkSampleUpsert) SetPvToLoad(v bool) *SolarkSampleUpsert {
	u.Set(solarksample.FieldPvToLoad, v)
	return u
}

// UpdatePvToLoad sets the "pv_to_load" field to the value that was provided on create.
func (u *SolarkSampleUpsert) UpdatePvToLoad() *SolarkSampleUpsert {
	u.SetExcluded(solarksample.FieldPvToLoad)
	return u
}

// SetPvToBat sets the "pv_to_bat" field.
func (u *SolarkSampleUpsert) SetPvToBat(v bool) *SolarkSampleUpsert {
	u.Set(solarksample.FieldPvToBat, v)
	return u
}

// UpdatePvToBat sets the "pv_to_bat" field to the value that was provided on create.
func (u *SolarkSampleUpsert) UpdatePvToBat() *SolarkSampleUpsert {
	u.SetExcluded(solarksample.FieldPvToBat)
	return u
}

// SetBatToLoad sets the "bat_to_load" field.
func (u *SolarkSampleUpsert) SetBatToLoad(v bool) *SolarkSampleUpsert {
	u.Set(solarksample.FieldBatToLoad, v)
	return u
}

// UpdateBatToLoad sets the "bat_to_load" field to the value that was provided on create.
func (u *SolarkSampleUpsert) UpdateBatToLoad() *SolarkSampleUpsert {
	u.SetExcluded(solarksample.FieldBatToLoad)
	return u
}

// SetGridToLoad sets the "grid_to_load" field.
func (u *SolarkSampleUpsert) SetGridToLoad(v bool) *SolarkSampleUpsert {
	u.Set(solarksample.FieldGridToLoad, v)
	return u
}

// UpdateGridToLoad sets the "grid_to_load" field to the value that was provided on create.
func (u *SolarkSampleUpsert) UpdateGridToLoad() *SolarkSampleUpsert {
	u.SetExcluded(solarksample.FieldGridToLoad)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.SolarkSample.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SolarkSampleUpsertOne) UpdateNewValues() *SolarkSampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(solarksample.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SolarkSample.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SolarkSampleUpsertOne) Ignore() *SolarkSampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SolarkSampleUpsertOne) DoNothing() *SolarkSampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SolarkSampleCreate.OnConflict
// documentation for more info.
func (u *SolarkSampleUpsertOne) Update(set func(*SolarkSampleUpsert)) *SolarkSampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SolarkSampleUpsert{UpdateSet: update})
	}))
	return u
}

// SetPlantID sets the "plant_id" field.
func (u *SolarkSampleUpsertOne) SetPlantID(v string) *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.SetPlantID(v)
	})
}

// UpdatePlantID sets the "plant_id" field to the value that was provided on create.
func (u *SolarkSampleUpsertOne) UpdatePlantID() *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.UpdatePlantID()
	})
}

// ClearPlantID clears the value of the "plant_id" field.
func (u *SolarkSampleUpsertOne) ClearPlantID() *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.ClearPlantID()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *SolarkSampleUpsertOne) SetTimestamp(v time.Time) *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *SolarkSampleUpsertOne) UpdateTimestamp() *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.UpdateTimestamp()
	})
}

// SetSoc sets the "soc" field.
func (u *SolarkSampleUpsertOne) SetSoc(v float64) *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.SetSoc(v)
	})
}

// AddSoc adds v to the "soc" field.
func (u *SolarkSampleUpsertOne) AddSoc(v float64) *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.AddSoc(v)
	})
}

// UpdateSoc sets the "soc" field to the value that was provided on create.
func (u *SolarkSampleUpsertOne) UpdateSoc() *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.UpdateSoc()
	})
}

// SetBatteryPower sets the "battery_power" field.
func (u *SolarkSampleUpsertOne) SetBatteryPower(v float64) *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.SetBatteryPower(v)
	})
}

// AddBatteryPower adds v to the "battery_power" field.
func (u *SolarkSampleUpsertOne) AddBatteryPower(v float64) *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.AddBatteryPower(v)
	})
}

// UpdateBatteryPower sets the "battery_power" field to the value that was provided on create.
func (u *SolarkSampleUpsertOne) UpdateBatteryPower() *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.UpdateBatteryPower()
	})
}

// SetBatteryVoltage sets the "battery_voltage" field.
func (u *SolarkSampleUpsertOne) SetBatteryVoltage(v float64) *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.SetBatteryVoltage(v)
	})
}

// AddBatteryVoltage adds v to the "battery_voltage" field.
func (u *SolarkSampleUpsertOne) AddBatteryVoltage(v float64) *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.AddBatteryVoltage(v)
	})
}

// UpdateBatteryVoltage sets the "battery_voltage" field to the value that was provided on create.
func (u *SolarkSampleUpsertOne) UpdateBatteryVoltage() *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.UpdateBatteryVoltage()
	})
}

// SetBatteryCurrent sets the "battery_current" field.
func (u *SolarkSampleUpsertOne) SetBatteryCurrent(v float64) *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.SetBatteryCurrent(v)
	})
}

// AddBatteryCurrent adds v to the "battery_current" field.
func (u *SolarkSampleUpsertOne) AddBatteryCurrent(v float64) *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.AddBatteryCurrent(v)
	})
}

// UpdateBatteryCurrent sets the "battery_current" field to the value that was provided on create.
func (u *SolarkSampleUpsertOne) UpdateBatteryCurrent() *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.UpdateBatteryCurrent()
	})
}

// SetPvPower sets the "pv_power" field.
func (u *SolarkSampleUpsertOne) SetPvPower(v float64) *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.SetPvPower(v)
	})
}

// AddPvPower adds v to the "pv_power" field.
func (u *SolarkSampleUpsertOne) AddPvPower(v float64) *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.AddPvPower(v)
	})
}

// UpdatePvPower sets the "pv_power" field to the value that was provided on create.
func (u *SolarkSampleUpsertOne) UpdatePvPower() *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.UpdatePvPower()
	})
}

// SetLoadPower sets the "load_power" field.
func (u *SolarkSampleUpsertOne) SetLoadPower(v float64) *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.SetLoadPower(v)
	})
}

// AddLoadPower adds v to the "load_power" field.
func (u *SolarkSampleUpsertOne) AddLoadPower(v float64) *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.AddLoadPower(v)
	})
}

// UpdateLoadPower sets the "load_power" field to the value that was provided on create.
func (u *SolarkSampleUpsertOne) UpdateLoadPower() *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.UpdateLoadPower()
	})
}

// SetGridPower sets the "grid_power" field.
func (u *SolarkSampleUpsertOne) SetGridPower(v float64) *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.SetGridPower(v)
	})
}

// AddGridPower adds v to the "grid_power" field.
func (u *SolarkSampleUpsertOne) AddGridPower(v float64) *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.AddGridPower(v)
	})
}

// UpdateGridPower sets the "grid_power" field to the value that was provided on create.
func (u *SolarkSampleUpsertOne) UpdateGridPower() *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.UpdateGridPower()
	})
}

// SetPvToLoad sets the "pv_to_load" field.
func (u *SolarkSampleUpsertOne) SetPvToLoad(v bool) *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.SetPvToLoad(v)
	})
}

// UpdatePvToLoad sets the "pv_to_load" field to the value that was provided on create.
func (u *SolarkSampleUpsertOne) UpdatePvToLoad() *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.UpdatePvToLoad()
	})
}

// SetPvToBat sets the "pv_to_bat" field.
func (u *SolarkSampleUpsertOne) SetPvToBat(v bool) *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.SetPvToBat(v)
	})
}

// UpdatePvToBat sets the "pv_to_bat" field to the value that was provided on create.
func (u *SolarkSampleUpsertOne) UpdatePvToBat() *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.UpdatePvToBat()
	})
}

// SetBatToLoad sets the "bat_to_load" field.
func (u *SolarkSampleUpsertOne) SetBatToLoad(v bool) *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.SetBatToLoad(v)
	})
}

// UpdateBatToLoad sets the "bat_to_load" field to the value that was provided on create.
func (u *SolarkSampleUpsertOne) UpdateBatToLoad() *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.UpdateBatToLoad()
	})
}

// SetGridToLoad sets the "grid_to_load" field.
func (u *SolarkSampleUpsertOne) SetGridToLoad(v bool) *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.SetGridToLoad(v)
	})
}

// UpdateGridToLoad sets the "grid_to_load" field to the value that was provided on create.
func (u *SolarkSampleUpsertOne) UpdateGridToLoad() *SolarkSampleUpsertOne {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.UpdateGridToLoad()
	})
}

// Exec executes the query.
func (u *SolarkSampleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SolarkSampleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SolarkSampleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SolarkSampleUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SolarkSampleUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SolarkSampleCreateBulk is the builder for creating many SolarkSample entities in bulk.
type SolarkSampleCreateBulk struct {
	config
	err      error
	builders []*SolarkSampleCreate
	conflict []sql.ConflictOption
}

// Save creates the SolarkSample entities in the database.
func (_c *SolarkSampleCreateBulk) Save(ctx context.Context) ([]*SolarkSample, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SolarkSample, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SolarkSampleMutation)
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
func (_c *SolarkSampleCreateBulk) SaveX(ctx context.Context) []*SolarkSample {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SolarkSampleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SolarkSampleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SolarkSample.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SolarkSampleUpsert) {
//			SetPlantID(v+v).
//		}).
//		Exec(ctx)
func (_c *SolarkSampleCreateBulk) OnConflict(opts ...sql.ConflictOption) *SolarkSampleUpsertBulk {
	_c.conflict = opts
	return &SolarkSampleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SolarkSample.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SolarkSampleCreateBulk) OnConflictColumns(columns ...string) *SolarkSampleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SolarkSampleUpsertBulk{
		create: _c,
	}
}

// SolarkSampleUpsertBulk is the builder for "upsert"-ing
// a bulk of SolarkSample nodes.
type SolarkSampleUpsertBulk struct {
	create *SolarkSampleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SolarkSample.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SolarkSampleUpsertBulk) UpdateNewValues() *SolarkSampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(solarksample.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SolarkSample.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SolarkSampleUpsertBulk) Ignore() *SolarkSampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SolarkSampleUpsertBulk) DoNothing() *SolarkSampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SolarkSampleCreateBulk.OnConflict
// documentation for more info.
func (u *SolarkSampleUpsertBulk) Update(set func(*SolarkSampleUpsert)) *SolarkSampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SolarkSampleUpsert{UpdateSet: update})
	}))
	return u
}

// SetPlantID sets the "plant_id" field.
func (u *SolarkSampleUpsertBulk) SetPlantID(v string) *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.SetPlantID(v)
	})
}

// UpdatePlantID sets the "plant_id" field to the value that was provided on create.
func (u *SolarkSampleUpsertBulk) UpdatePlantID() *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.UpdatePlantID()
	})
}

// ClearPlantID clears the value of the "plant_id" field.
func (u *SolarkSampleUpsertBulk) ClearPlantID() *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.ClearPlantID()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *SolarkSampleUpsertBulk) SetTimestamp(v time.Time) *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *SolarkSampleUpsertBulk) UpdateTimestamp() *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.UpdateTimestamp()
	})
}

// SetSoc sets the "soc" field.
func (u *SolarkSampleUpsertBulk) SetSoc(v float64) *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.SetSoc(v)
	})
}

// AddSoc adds v to the "soc" field.
func (u *SolarkSampleUpsertBulk) AddSoc(v float64) *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.AddSoc(v)
	})
}

// UpdateSoc sets the "soc" field to the value that was provided on create.
func (u *SolarkSampleUpsertBulk) UpdateSoc() *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.UpdateSoc()
	})
}

// SetBatteryPower sets the "battery_power" field.
func (u *SolarkSampleUpsertBulk) SetBatteryPower(v float64) *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.SetBatteryPower(v)
	})
}

// AddBatteryPower adds v to the "battery_power" field.
func (u *SolarkSampleUpsertBulk) AddBatteryPower(v float64) *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.AddBatteryPower(v)
	})
}

// UpdateBatteryPower sets the "battery_power" field to the value that was provided on create.
func (u *SolarkSampleUpsertBulk) UpdateBatteryPower() *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.UpdateBatteryPower()
	})
}

// SetBatteryVoltage sets the "battery_voltage" field.
func (u *SolarkSampleUpsertBulk) SetBatteryVoltage(v float64) *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.SetBatteryVoltage(v)
	})
}

// AddBatteryVoltage adds v to the "battery_voltage" field.
func (u *SolarkSampleUpsertBulk) AddBatteryVoltage(v float64) *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.AddBatteryVoltage(v)
	})
}

// UpdateBatteryVoltage sets the "battery_voltage" field to the value that was provided on create.
func (u *SolarkSampleUpsertBulk) UpdateBatteryVoltage() *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.UpdateBatteryVoltage()
	})
}

// SetBatteryCurrent sets the "battery_current" field.
func (u *SolarkSampleUpsertBulk) SetBatteryCurrent(v float64) *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.SetBatteryCurrent(v)
	})
}

// AddBatteryCurrent adds v to the "battery_current" field.
func (u *SolarkSampleUpsertBulk) AddBatteryCurrent(v float64) *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.AddBatteryCurrent(v)
	})
}

// UpdateBatteryCurrent sets the "battery_current" field to the value that was provided on create.
func (u *SolarkSampleUpsertBulk) UpdateBatteryCurrent() *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.UpdateBatteryCurrent()
	})
}

// SetPvPower sets the "pv_power" field.
func (u *SolarkSampleUpsertBulk) SetPvPower(v float64) *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.SetPvPower(v)
	})
}

// AddPvPower adds v to the "pv_power" field.
func (u *SolarkSampleUpsertBulk) AddPvPower(v float64) *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.AddPvPower(v)
	})
}

// UpdatePvPower sets the "pv_power" field to the value that was provided on create.
func (u *SolarkSampleUpsertBulk) UpdatePvPower() *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.UpdatePvPower()
	})
}

// SetLoadPower sets the "load_power" field.
func (u *SolarkSampleUpsertBulk) SetLoadPower(v float64) *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.SetLoadPower(v)
	})
}

// AddLoadPower adds v to the "load_power" field.
func (u *SolarkSampleUpsertBulk) AddLoadPower(v float64) *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.AddLoadPower(v)
	})
}

// UpdateLoadPower sets the "load_power" field to the value that was provided on create.
func (u *SolarkSampleUpsertBulk) UpdateLoadPower() *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.UpdateLoadPower()
	})
}

// SetGridPower sets the "grid_power" field.
func (u *SolarkSampleUpsertBulk) SetGridPower(v float64) *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.SetGridPower(v)
	})
}

// AddGridPower adds v to the "grid_power" field.
func (u *SolarkSampleUpsertBulk) AddGridPower(v float64) *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.AddGridPower(v)
	})
}

// UpdateGridPower sets the "grid_power" field to the value that was provided on create.
func (u *SolarkSampleUpsertBulk) UpdateGridPower() *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.UpdateGridPower()
	})
}

// SetPvToLoad sets the "pv_to_load" field.
func (u *SolarkSampleUpsertBulk) SetPvToLoad(v bool) *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.SetPvToLoad(v)
	})
}

// UpdatePvToLoad sets the "pv_to_load" field to the value that was provided on create.
func (u *SolarkSampleUpsertBulk) UpdatePvToLoad() *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.UpdatePvToLoad()
	})
}

// SetPvToBat sets the "pv_to_bat" field.
func (u *SolarkSampleUpsertBulk) SetPvToBat(v bool) *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.SetPvToBat(v)
	})
}

// UpdatePvToBat sets the "pv_to_bat" field to the value that was provided on create.
func (u *SolarkSampleUpsertBulk) UpdatePvToBat() *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.UpdatePvToBat()
	})
}

// SetBatToLoad sets the "bat_to_load" field.
func (u *SolarkSampleUpsertBulk) SetBatToLoad(v bool) *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.SetBatToLoad(v)
	})
}

// UpdateBatToLoad sets the "bat_to_load" field to the value that was provided on create.
func (u *SolarkSampleUpsertBulk) UpdateBatToLoad() *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.UpdateBatToLoad()
	})
}

// SetGridToLoad sets the "grid_to_load" field.
func (u *SolarkSampleUpsertBulk) SetGridToLoad(v bool) *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.SetGridToLoad(v)
	})
}

// UpdateGridToLoad sets the "grid_to_load" field to the value that was provided on create.
func (u *SolarkSampleUpsertBulk) UpdateGridToLoad() *SolarkSampleUpsertBulk {
	return u.Update(func(s *SolarkSampleUpsert) {
		s.UpdateGridToLoad()
	})
}

// Exec executes the query.
func (u *SolarkSampleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SolarkSampleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SolarkSampleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SolarkSampleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
