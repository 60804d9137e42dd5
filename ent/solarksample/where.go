// Code generated by ent, DO NOT EDIT.

package solarksample

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/offgrid-ops/commandcenter/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldLTE(FieldID, id))
}

// PlantID applies equality check predicate on the "plant_id" field. It's identical to PlantIDEQ.
func PlantID(v string) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldPlantID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldTimestamp, v))
}

// Soc applies equality check predicate on the "soc" field. It's identical to SocEQ.
func Soc(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldSoc, v))
}

// BatteryPower applies equality check predicate on the "battery_power" field. It's identical to BatteryPowerEQ.
func BatteryPower(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldBatteryPower, v))
}

// BatteryVoltage applies equality check predicate on the "battery_voltage" field. It's identical to BatteryVoltageEQ.
func BatteryVoltage(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldBatteryVoltage, v))
}

// BatteryCurrent applies equality check predicate on the "battery_current" field. It's identical to BatteryCurrentEQ.
func BatteryCurrent(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldBatteryCurrent, v))
}

// PvPower applies equality check predicate on the "pv_power" field. It's identical to PvPowerEQ.
func PvPower(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldPvPower, v))
}

// LoadPower applies equality check predicate on the "load_power" field. It's identical to LoadPowerEQ.
func LoadPower(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldLoadPower, v))
}

// GridPower applies equality check predicate on the "grid_power" field. It's identical to GridPowerEQ.
func GridPower(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldGridPower, v))
}

// PvToLoad applies equality check predicate on the "pv_to_load" field. It's identical to PvToLoadEQ.
func PvToLoad(v bool) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldPvToLoad, v))
}

// PvToBat applies equality check predicate on the "pv_to_bat" field. It's identical to PvToBatEQ.
func PvToBat(v bool) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldPvToBat, v))
}

// BatToLoad applies equality check predicate on the "bat_to_load" field. It's identical to BatToLoadEQ.
func BatToLoad(v bool) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldBatToLoad, v))
}

// GridToLoad applies equality check predicate on the "grid_to_load" field. It's identical to GridToLoadEQ.
func GridToLoad(v bool) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldGridToLoad, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldCreatedAt, v))
}

// PlantIDEQ applies the EQ predicate on the "plant_id" field.
func PlantIDEQ(v string) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldPlantID, v))
}

// PlantIDNEQ applies the NEQ predicate on the "plant_id" field.
func PlantIDNEQ(v string) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNEQ(FieldPlantID, v))
}

// PlantIDIn applies the In predicate on the "plant_id" field.
func PlantIDIn(vs ...string) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldIn(FieldPlantID, vs...))
}

// PlantIDNotIn applies the NotIn predicate on the "plant_id" field.
func PlantIDNotIn(vs ...string) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNotIn(FieldPlantID, vs...))
}

// PlantIDGT applies the GT predicate on the "plant_id" field.
func PlantIDGT(v string) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldGT(FieldPlantID, v))
}

// PlantIDGTE applies the GTE predicate on the "plant_id" field.
func PlantIDGTE(v string) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldGTE(FieldPlantID, v))
}

// PlantIDLT applies the LT predicate on the "plant_id" field.
func PlantIDLT(v string) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldLT(FieldPlantID, v))
}

// PlantIDLTE applies the LTE predicate on the "plant_id" field.
func PlantIDLTE(v string) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldLTE(FieldPlantID, v))
}

// PlantIDContains applies the Contains predicate on the "plant_id" field.
func PlantIDContains(v string) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldContains(FieldPlantID, v))
}

// PlantIDHasPrefix applies the HasPrefix predicate on the "plant_id" field.
func PlantIDHasPrefix(v string) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldHasPrefix(FieldPlantID, v))
}

// PlantIDHasSuffix applies the HasSuffix predicate on the "plant_id" field.
func PlantIDHasSuffix(v string) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldHasSuffix(FieldPlantID, v))
}

// PlantIDIsNil applies the IsNil predicate on the "plant_id" field.
func PlantIDIsNil() predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldIsNull(FieldPlantID))
}

// PlantIDNotNil applies the NotNil predicate on the "plant_id" field.
func PlantIDNotNil() predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNotNull(FieldPlantID))
}

// PlantIDEqualFold applies the EqualFold predicate on the "plant_id" field.
func PlantIDEqualFold(v string) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEqualFold(FieldPlantID, v))
}

// PlantIDContainsFold applies the ContainsFold predicate on the "plant_id" field.
func PlantIDContainsFold(v string) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldContainsFold(FieldPlantID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldLTE(FieldTimestamp, v))
}

// SocEQ applies the EQ predicate on the "soc" field.
func SocEQ(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldSoc, v))
}

// SocNEQ applies the NEQ predicate on the "soc" field.
func SocNEQ(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNEQ(FieldSoc, v))
}

// SocIn applies the In predicate on the "soc" field.
func SocIn(vs ...float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldIn(FieldSoc, vs...))
}

// SocNotIn applies the NotIn predicate on the "soc" field.
func SocNotIn(vs ...float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNotIn(FieldSoc, vs...))
}

// SocGT applies the GT predicate on the "soc" field.
func SocGT(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldGT(FieldSoc, v))
}

// SocGTE applies the GTE predicate on the "soc" field.
func SocGTE(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldGTE(FieldSoc, v))
}

// SocLT applies the LT predicate on the "soc" field.
func SocLT(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldLT(FieldSoc, v))
}

// SocLTE applies the LTE predicate on the "soc" field.
func SocLTE(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldLTE(FieldSoc, v))
}

// BatteryPowerEQ applies the EQ predicate on the "battery_power" field.
func BatteryPowerEQ(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldBatteryPower, v))
}

// BatteryPowerNEQ applies the NEQ predicate on the "battery_power" field.
func BatteryPowerNEQ(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNEQ(FieldBatteryPower, v))
}

// BatteryPowerIn applies the In predicate on the "battery_power" field.
func BatteryPowerIn(vs ...float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldIn(FieldBatteryPower, vs...))
}

// BatteryPowerNotIn applies the NotIn predicate on the "battery_power" field.
func BatteryPowerNotIn(vs ...float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNotIn(FieldBatteryPower, vs...))
}

// BatteryPowerGT applies the GT predicate on the "battery_power" field.
func BatteryPowerGT(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldGT(FieldBatteryPower, v))
}

// BatteryPowerGTE applies the GTE predicate on the "battery_power" field.
func BatteryPowerGTE(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldGTE(FieldBatteryPower, v))
}

// BatteryPowerLT applies the LT predicate on the "battery_power" field.
func BatteryPowerLT(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldLT(FieldBatteryPower, v))
}

// BatteryPowerLTE applies the LTE predicate on the "battery_power" field.
func BatteryPowerLTE(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldLTE(FieldBatteryPower, v))
}

// BatteryVoltageEQ applies the EQ predicate on the "battery_voltage" field.
func BatteryVoltageEQ(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldBatteryVoltage, v))
}

// BatteryVoltageNEQ applies the NEQ predicate on the "battery_voltage" field.
func BatteryVoltageNEQ(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNEQ(FieldBatteryVoltage, v))
}

// BatteryVoltageIn applies the In predicate on the "battery_voltage" field.
func BatteryVoltageIn(vs ...float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldIn(FieldBatteryVoltage, vs...))
}

// BatteryVoltageNotIn applies the NotIn predicate on the "battery_voltage" field.
func BatteryVoltageNotIn(vs ...float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNotIn(FieldBatteryVoltage, vs...))
}

// BatteryVoltageGT applies the GT predicate on the "battery_voltage" field.
func BatteryVoltageGT(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldGT(FieldBatteryVoltage, v))
}

// BatteryVoltageGTE applies the GTE predicate on the "battery_voltage" field.
func BatteryVoltageGTE(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldGTE(FieldBatteryVoltage, v))
}

// BatteryVoltageLT applies the LT predicate on the "battery_voltage" field.
func BatteryVoltageLT(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldLT(FieldBatteryVoltage, v))
}

// BatteryVoltageLTE applies the LTE predicate on the "battery_voltage" field.
func BatteryVoltageLTE(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldLTE(FieldBatteryVoltage, v))
}

// BatteryCurrentEQ applies the EQ predicate on the "battery_current" field.
func BatteryCurrentEQ(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldBatteryCurrent, v))
}

// BatteryCurrentNEQ applies the NEQ predicate on the "battery_current" field.
func BatteryCurrentNEQ(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNEQ(FieldBatteryCurrent, v))
}

// BatteryCurrentIn applies the In predicate on the "battery_current" field.
func BatteryCurrentIn(vs ...float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldIn(FieldBatteryCurrent, vs...))
}

// BatteryCurrentNotIn applies the NotIn predicate on the "battery_current" field.
func BatteryCurrentNotIn(vs ...float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNotIn(FieldBatteryCurrent, vs...))
}

// BatteryCurrentGT applies the GT predicate on the "battery_current" field.
func BatteryCurrentGT(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldGT(FieldBatteryCurrent, v))
}

// BatteryCurrentGTE applies the GTE predicate on the "battery_current" field.
func BatteryCurrentGTE(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldGTE(FieldBatteryCurrent, v))
}

// BatteryCurrentLT applies the LT predicate on the "battery_current" field.
func BatteryCurrentLT(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldLT(FieldBatteryCurrent, v))
}

// BatteryCurrentLTE applies the LTE predicate on the "battery_current" field.
func BatteryCurrentLTE(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldLTE(FieldBatteryCurrent, v))
}

// PvPowerEQ applies the EQ predicate on the "pv_power" field.
func PvPowerEQ(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldPvPower, v))
}

// PvPowerNEQ applies the NEQ predicate on the "pv_power" field.
func PvPowerNEQ(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNEQ(FieldPvPower, v))
}

// PvPowerIn applies the In predicate on the "pv_power" field.
func PvPowerIn(vs ...float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldIn(FieldPvPower, vs...))
}

// PvPowerNotIn applies the NotIn predicate on the "pv_power" field.
func PvPowerNotIn(vs ...float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNotIn(FieldPvPower, vs...))
}

// PvPowerGT applies the GT predicate on the "pv_power" field.
func PvPowerGT(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldGT(FieldPvPower, v))
}

// PvPowerGTE applies the GTE predicate on the "pv_power" field.
func PvPowerGTE(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldGTE(FieldPvPower, v))
}

// PvPowerLT applies the LT predicate on the "pv_power" field.
func PvPowerLT(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldLT(FieldPvPower, v))
}

// PvPowerLTE applies the LTE predicate on the "pv_power" field.
func PvPowerLTE(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldLTE(FieldPvPower, v))
}

// LoadPowerEQ applies the EQ predicate on the "load_power" field.
func LoadPowerEQ(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldLoadPower, v))
}

// LoadPowerNEQ applies the NEQ predicate on the "load_power" field.
func LoadPowerNEQ(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNEQ(FieldLoadPower, v))
}

// LoadPowerIn applies the In predicate on the "load_power" field.
func LoadPowerIn(vs ...float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldIn(FieldLoadPower, vs...))
}

// LoadPowerNotIn applies the NotIn predicate on the "load_power" field.
func LoadPowerNotIn(vs ...float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNotIn(FieldLoadPower, vs...))
}

// LoadPowerGT applies the GT predicate on the "load_power" field.
func LoadPowerGT(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldGT(FieldLoadPower, v))
}

// LoadPowerGTE applies the GTE predicate on the "load_power" field.
func LoadPowerGTE(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldGTE(FieldLoadPower, v))
}

// LoadPowerLT applies the LT predicate on the "load_power" field.
func LoadPowerLT(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldLT(FieldLoadPower, v))
}

// LoadPowerLTE applies the LTE predicate on the "load_power" field.
func LoadPowerLTE(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldLTE(FieldLoadPower, v))
}

// GridPowerEQ applies the EQ predicate on the "grid_power" field.
func GridPowerEQ(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldGridPower, v))
}

// GridPowerNEQ applies the NEQ predicate on the "grid_power" field.
func GridPowerNEQ(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNEQ(FieldGridPower, v))
}

// GridPowerIn applies the In predicate on the "grid_power" field.
func GridPowerIn(vs ...float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldIn(FieldGridPower, vs...))
}

// GridPowerNotIn applies the NotIn predicate on the "grid_power" field.
func GridPowerNotIn(vs ...float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNotIn(FieldGridPower, vs...))
}

// GridPowerGT applies the GT predicate on the "grid_power" field.
func GridPowerGT(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldGT(FieldGridPower, v))
}

// GridPowerGTE applies the GTE predicate on the "grid_power" field.
func GridPowerGTE(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldGTE(FieldGridPower, v))
}

// GridPowerLT applies the LT predicate on the "grid_power" field.
func GridPowerLT(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldLT(FieldGridPower, v))
}

// GridPowerLTE applies the LTE predicate on the "grid_power" field.
func GridPowerLTE(v float64) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldLTE(FieldGridPower, v))
}

// PvToLoadEQ applies the EQ predicate on the "pv_to_load" field.
func PvToLoadEQ(v bool) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldPvToLoad, v))
}

// PvToLoadNEQ applies the NEQ predicate on the "pv_to_load" field.
func PvToLoadNEQ(v bool) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNEQ(FieldPvToLoad, v))
}

// PvToBatEQ applies the EQ predicate on the "pv_to_bat" field.
func PvToBatEQ(v bool) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldPvToBat, v))
}

// PvToBatNEQ applies the NEQ predicate on the "pv_to_bat" field.
func PvToBatNEQ(v bool) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNEQ(FieldPvToBat, v))
}

// BatToLoadEQ applies the EQ predicate on the "bat_to_load" field.
func BatToLoadEQ(v bool) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldBatToLoad, v))
}

// BatToLoadNEQ applies the NEQ predicate on the "bat_to_load" field.
func BatToLoadNEQ(v bool) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNEQ(FieldBatToLoad, v))
}

// GridToLoadEQ applies the EQ predicate on the "grid_to_load" field.
func GridToLoadEQ(v bool) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldGridToLoad, v))
}

// GridToLoadNEQ applies the NEQ predicate on the "grid_to_load" field.
func GridToLoadNEQ(v bool) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNEQ(FieldGridToLoad, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SolarkSample {
	return predicate.SolarkSample(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SolarkSample) predicate.SolarkSample {
	return predicate.SolarkSample(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SolarkSample) predicate.SolarkSample {
	return predicate.SolarkSample(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SolarkSample) predicate.SolarkSample {
	return predicate.SolarkSample(sql.NotPredicates(p))
}
