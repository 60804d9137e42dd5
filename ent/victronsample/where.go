// Code generated by ent, DO NOT EDIT.

package victronsample

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/offgrid-ops/commandcenter/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldLTE(FieldID, id))
}

// PlantID applies equality check predicate on the "plant_id" field. It's identical to PlantIDEQ.
func PlantID(v string) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldPlantID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldTimestamp, v))
}

// Soc applies equality check predicate on the "soc" field. It's identical to SocEQ.
func Soc(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldSoc, v))
}

// BatteryPower applies equality check predicate on the "battery_power" field. It's identical to BatteryPowerEQ.
func BatteryPower(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldBatteryPower, v))
}

// BatteryVoltage applies equality check predicate on the "battery_voltage" field. It's identical to BatteryVoltageEQ.
func BatteryVoltage(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldBatteryVoltage, v))
}

// BatteryCurrent applies equality check predicate on the "battery_current" field. It's identical to BatteryCurrentEQ.
func BatteryCurrent(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldBatteryCurrent, v))
}

// PvPower applies equality check predicate on the "pv_power" field. It's identical to PvPowerEQ.
func PvPower(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldPvPower, v))
}

// LoadPower applies equality check predicate on the "load_power" field. It's identical to LoadPowerEQ.
func LoadPower(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldLoadPower, v))
}

// GridPower applies equality check predicate on the "grid_power" field. It's identical to GridPowerEQ.
func GridPower(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldGridPower, v))
}

// PvToLoad applies equality check predicate on the "pv_to_load" field. It's identical to PvToLoadEQ.
func PvToLoad(v bool) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldPvToLoad, v))
}

// PvToBat applies equality check predicate on the "pv_to_bat" field. It's identical to PvToBatEQ.
func PvToBat(v bool) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldPvToBat, v))
}

// BatToLoad applies equality check predicate on the "bat_to_load" field. It's identical to BatToLoadEQ.
func BatToLoad(v bool) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldBatToLoad, v))
}

// GridToLoad applies equality check predicate on the "grid_to_load" field. It's identical to GridToLoadEQ.
func GridToLoad(v bool) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldGridToLoad, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldCreatedAt, v))
}

// PlantIDEQ applies the EQ predicate on the "plant_id" field.
func PlantIDEQ(v string) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldPlantID, v))
}

// PlantIDNEQ applies the NEQ predicate on the "plant_id" field.
func PlantIDNEQ(v string) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNEQ(FieldPlantID, v))
}

// PlantIDIn applies the In predicate on the "plant_id" field.
func PlantIDIn(vs ...string) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldIn(FieldPlantID, vs...))
}

// PlantIDNotIn applies the NotIn predicate on the "plant_id" field.
func PlantIDNotIn(vs ...string) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNotIn(FieldPlantID, vs...))
}

// PlantIDGT applies the GT predicate on the "plant_id" field.
func PlantIDGT(v string) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldGT(FieldPlantID, v))
}

// PlantIDGTE applies the GTE predicate on the "plant_id" field.
func PlantIDGTE(v string) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldGTE(FieldPlantID, v))
}

// PlantIDLT applies the LT predicate on the "plant_id" field.
func PlantIDLT(v string) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldLT(FieldPlantID, v))
}

// PlantIDLTE applies the LTE predicate on the "plant_id" field.
func PlantIDLTE(v string) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldLTE(FieldPlantID, v))
}

// PlantIDContains applies the Contains predicate on the "plant_id" field.
func PlantIDContains(v string) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldContains(FieldPlantID, v))
}

// PlantIDHasPrefix applies the HasPrefix predicate on the "plant_id" field.
func PlantIDHasPrefix(v string) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldHasPrefix(FieldPlantID, v))
}

// PlantIDHasSuffix applies the HasSuffix predicate on the "plant_id" field.
func PlantIDHasSuffix(v string) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldHasSuffix(FieldPlantID, v))
}

// PlantIDIsNil applies the IsNil predicate on the "plant_id" field.
func PlantIDIsNil() predicate.VictronSample {
	return predicate.VictronSample(sql.FieldIsNull(FieldPlantID))
}

// PlantIDNotNil applies the NotNil predicate on the "plant_id" field.
func PlantIDNotNil() predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNotNull(FieldPlantID))
}

// PlantIDEqualFold applies the EqualFold predicate on the "plant_id" field.
func PlantIDEqualFold(v string) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEqualFold(FieldPlantID, v))
}

// PlantIDContainsFold applies the ContainsFold predicate on the "plant_id" field.
func PlantIDContainsFold(v string) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldContainsFold(FieldPlantID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldLTE(FieldTimestamp, v))
}

// SocEQ applies the EQ predicate on the "soc" field.
func SocEQ(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldSoc, v))
}

// SocNEQ applies the NEQ predicate on the "soc" field.
func SocNEQ(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNEQ(FieldSoc, v))
}

// SocIn applies the In predicate on the "soc" field.
func SocIn(vs ...float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldIn(FieldSoc, vs...))
}

// SocNotIn applies the NotIn predicate on the "soc" field.
func SocNotIn(vs ...float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNotIn(FieldSoc, vs...))
}

// SocGT applies the GT predicate on the "soc" field.
func SocGT(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldGT(FieldSoc, v))
}

// SocGTE applies the GTE predicate on the "soc" field.
func SocGTE(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldGTE(FieldSoc, v))
}

// SocLT applies the LT predicate on the "soc" field.
func SocLT(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldLT(FieldSoc, v))
}

// SocLTE applies the LTE predicate on the "soc" field.
func SocLTE(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldLTE(FieldSoc, v))
}

// BatteryPowerEQ applies the EQ predicate on the "battery_power" field.
func BatteryPowerEQ(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldBatteryPower, v))
}

// BatteryPowerNEQ applies the NEQ predicate on the "battery_power" field.
func BatteryPowerNEQ(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNEQ(FieldBatteryPower, v))
}

// BatteryPowerIn applies the In predicate on the "battery_power" field.
func BatteryPowerIn(vs ...float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldIn(FieldBatteryPower, vs...))
}

// BatteryPowerNotIn applies the NotIn predicate on the "battery_power" field.
func BatteryPowerNotIn(vs ...float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNotIn(FieldBatteryPower, vs...))
}

// BatteryPowerGT applies the GT predicate on the "battery_power" field.
func BatteryPowerGT(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldGT(FieldBatteryPower, v))
}

// BatteryPowerGTE applies the GTE predicate on the "battery_power" field.
func BatteryPowerGTE(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldGTE(FieldBatteryPower, v))
}

// BatteryPowerLT applies the LT predicate on the "battery_power" field.
func BatteryPowerLT(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldLT(FieldBatteryPower, v))
}

// BatteryPowerLTE applies the LTE predicate on the "battery_power" field.
func BatteryPowerLTE(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldLTE(FieldBatteryPower, v))
}

// BatteryVoltageEQ applies the EQ predicate on the "battery_voltage" field.
func BatteryVoltageEQ(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldBatteryVoltage, v))
}

// BatteryVoltageNEQ applies the NEQ predicate on the "battery_voltage" field.
func BatteryVoltageNEQ(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNEQ(FieldBatteryVoltage, v))
}

// BatteryVoltageIn applies the In predicate on the "battery_voltage" field.
func BatteryVoltageIn(vs ...float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldIn(FieldBatteryVoltage, vs...))
}

// BatteryVoltageNotIn applies the NotIn predicate on the "battery_voltage" field.
func BatteryVoltageNotIn(vs ...float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNotIn(FieldBatteryVoltage, vs...))
}

// BatteryVoltageGT applies the GT predicate on the "battery_voltage" field.
func BatteryVoltageGT(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldGT(FieldBatteryVoltage, v))
}

// BatteryVoltageGTE applies the GTE predicate on the "battery_voltage" field.
func BatteryVoltageGTE(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldGTE(FieldBatteryVoltage, v))
}

// BatteryVoltageLT applies the LT predicate on the "battery_voltage" field.
func BatteryVoltageLT(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldLT(FieldBatteryVoltage, v))
}

// BatteryVoltageLTE applies the LTE predicate on the "battery_voltage" field.
func BatteryVoltageLTE(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldLTE(FieldBatteryVoltage, v))
}

// BatteryCurrentEQ applies the EQ predicate on the "battery_current" field.
func BatteryCurrentEQ(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldBatteryCurrent, v))
}

// BatteryCurrentNEQ applies the NEQ predicate on the "battery_current" field.
func BatteryCurrentNEQ(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNEQ(FieldBatteryCurrent, v))
}

// BatteryCurrentIn applies the In predicate on the "battery_current" field.
func BatteryCurrentIn(vs ...float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldIn(FieldBatteryCurrent, vs...))
}

// BatteryCurrentNotIn applies the NotIn predicate on the "battery_current" field.
func BatteryCurrentNotIn(vs ...float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNotIn(FieldBatteryCurrent, vs...))
}

// BatteryCurrentGT applies the GT predicate on the "battery_current" field.
func BatteryCurrentGT(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldGT(FieldBatteryCurrent, v))
}

// BatteryCurrentGTE applies the GTE predicate on the "battery_current" field.
func BatteryCurrentGTE(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldGTE(FieldBatteryCurrent, v))
}

// BatteryCurrentLT applies the LT predicate on the "battery_current" field.
func BatteryCurrentLT(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldLT(FieldBatteryCurrent, v))
}

// BatteryCurrentLTE applies the LTE predicate on the "battery_current" field.
func BatteryCurrentLTE(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldLTE(FieldBatteryCurrent, v))
}

// PvPowerEQ applies the EQ predicate on the "pv_power" field.
func PvPowerEQ(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldPvPower, v))
}

// PvPowerNEQ applies the NEQ predicate on the "pv_power" field.
func PvPowerNEQ(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNEQ(FieldPvPower, v))
}

// PvPowerIn applies the In predicate on the "pv_power" field.
func PvPowerIn(vs ...float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldIn(FieldPvPower, vs...))
}

// PvPowerNotIn applies the NotIn predicate on the "pv_power" field.
func PvPowerNotIn(vs ...float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNotIn(FieldPvPower, vs...))
}

// PvPowerGT applies the GT predicate on the "pv_power" field.
func PvPowerGT(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldGT(FieldPvPower, v))
}

// PvPowerGTE applies the GTE predicate on the "pv_power" field.
func PvPowerGTE(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldGTE(FieldPvPower, v))
}

// PvPowerLT applies the LT predicate on the "pv_power" field.
func PvPowerLT(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldLT(FieldPvPower, v))
}

// PvPowerLTE applies the LTE predicate on the "pv_power" field.
func PvPowerLTE(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldLTE(FieldPvPower, v))
}

// LoadPowerEQ applies the EQ predicate on the "load_power" field.
func LoadPowerEQ(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldLoadPower, v))
}

// LoadPowerNEQ applies the NEQ predicate on the "load_power" field.
func LoadPowerNEQ(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNEQ(FieldLoadPower, v))
}

// LoadPowerIn applies the In predicate on the "load_power" field.
func LoadPowerIn(vs ...float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldIn(FieldLoadPower, vs...))
}

// LoadPowerNotIn applies the NotIn predicate on the "load_power" field.
func LoadPowerNotIn(vs ...float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNotIn(FieldLoadPower, vs...))
}

// LoadPowerGT applies the GT predicate on the "load_power" field.
func LoadPowerGT(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldGT(FieldLoadPower, v))
}

// LoadPowerGTE applies the GTE predicate on the "load_power" field.
func LoadPowerGTE(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldGTE(FieldLoadPower, v))
}

// LoadPowerLT applies the LT predicate on the "load_power" field.
func LoadPowerLT(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldLT(FieldLoadPower, v))
}

// LoadPowerLTE applies the LTE predicate on the "load_power" field.
func LoadPowerLTE(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldLTE(FieldLoadPower, v))
}

// GridPowerEQ applies the EQ predicate on the "grid_power" field.
func GridPowerEQ(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldGridPower, v))
}

// GridPowerNEQ applies the NEQ predicate on the "grid_power" field.
func GridPowerNEQ(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNEQ(FieldGridPower, v))
}

// GridPowerIn applies the In predicate on the "grid_power" field.
func GridPowerIn(vs ...float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldIn(FieldGridPower, vs...))
}

// GridPowerNotIn applies the NotIn predicate on the "grid_power" field.
func GridPowerNotIn(vs ...float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNotIn(FieldGridPower, vs...))
}

// GridPowerGT applies the GT predicate on the "grid_power" field.
func GridPowerGT(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldGT(FieldGridPower, v))
}

// GridPowerGTE applies the GTE predicate on the "grid_power" field.
func GridPowerGTE(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldGTE(FieldGridPower, v))
}

// GridPowerLT applies the LT predicate on the "grid_power" field.
func GridPowerLT(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldLT(FieldGridPower, v))
}

// GridPowerLTE applies the LTE predicate on the "grid_power" field.
func GridPowerLTE(v float64) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldLTE(FieldGridPower, v))
}

// PvToLoadEQ applies the EQ predicate on the "pv_to_load" field.
func PvToLoadEQ(v bool) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldPvToLoad, v))
}

// PvToLoadNEQ applies the NEQ predicate on the "pv_to_load" field.
func PvToLoadNEQ(v bool) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNEQ(FieldPvToLoad, v))
}

// PvToBatEQ applies the EQ predicate on the "pv_to_bat" field.
func PvToBatEQ(v bool) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldPvToBat, v))
}

// PvToBatNEQ applies the NEQ predicate on the "pv_to_bat" field.
func PvToBatNEQ(v bool) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNEQ(FieldPvToBat, v))
}

// BatToLoadEQ applies the EQ predicate on the "bat_to_load" field.
func BatToLoadEQ(v bool) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldBatToLoad, v))
}

// BatToLoadNEQ applies the NEQ predicate on the "bat_to_load" field.
func BatToLoadNEQ(v bool) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNEQ(FieldBatToLoad, v))
}

// GridToLoadEQ applies the EQ predicate on the "grid_to_load" field.
func GridToLoadEQ(v bool) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldGridToLoad, v))
}

// GridToLoadNEQ applies the NEQ predicate on the "grid_to_load" field.
func GridToLoadNEQ(v bool) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNEQ(FieldGridToLoad, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VictronSample {
	return predicate.VictronSample(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VictronSample) predicate.VictronSample {
	return predicate.VictronSample(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VictronSample) predicate.VictronSample {
	return predicate.VictronSample(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VictronSample) predicate.VictronSample {
	return predicate.VictronSample(sql.NotPredicates(p))
}
