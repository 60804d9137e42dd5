// Code generated by ent, DO NOT EDIT.

package victronsample

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the victronsample type in the database.
	Label = "victron_sample"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPlantID holds the string denoting the plant_id field in the database.
	FieldPlantID = "plant_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSoc holds the string denoting the soc field in the database.
	FieldSoc = "soc"
	// FieldBatteryPower holds the string denoting the battery_power field in the database.
	FieldBatteryPower = "battery_power"
	// FieldBatteryVoltage holds the string denoting the battery_voltage field in the database.
	FieldBatteryVoltage = "battery_voltage"
	// FieldBatteryCurrent holds the string denoting the battery_current field in the database.
	FieldBatteryCurrent = "battery_current"
	// FieldPvPower holds the string denoting the pv_power field in the database.
	FieldPvPower = "pv_power"
	// FieldLoadPower holds the string denoting the load_power field in the database.
	FieldLoadPower = "load_power"
	// FieldGridPower holds the string denoting the grid_power field in the database.
	FieldGridPower = "grid_power"
	// FieldPvToLoad holds the string denoting the pv_to_load field in the database.
	FieldPvToLoad = "pv_to_load"
	// FieldPvToBat holds the string denoting the pv_to_bat field in the database.
	FieldPvToBat = "pv_to_bat"
	// FieldBatToLoad holds the string denoting the bat_to_load field in the database.
	FieldBatToLoad = "bat_to_load"
	// FieldGridToLoad holds the string denoting the grid_to_load field in the database.
	FieldGridToLoad = "grid_to_load"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the victronsample in the database.
	Table = "victron_samples"
)

// Columns holds all SQL columns for victronsample fields.
var Columns = []string{
	FieldID,
	FieldPlantID,
	FieldTimestamp,
	FieldSoc,
	FieldBatteryPower,
	FieldBatteryVoltage,
	FieldBatteryCurrent,
	FieldPvPower,
	FieldLoadPower,
	FieldGridPower,
	FieldPvToLoad,
	FieldPvToBat,
	FieldBatToLoad,
	FieldGridToLoad,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPvToLoad holds the default value on creation for the "pv_to_load" field.
	DefaultPvToLoad bool
	// DefaultPvToBat holds the default value on creation for the "pv_to_bat" field.
	DefaultPvToBat bool
	// DefaultBatToLoad holds the default value on creation for the "bat_to_load" field.
	DefaultBatToLoad bool
	// DefaultGridToLoad holds the default value on creation for the "grid_to_load" field.
	DefaultGridToLoad bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the VictronSample queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPlantID orders the results by the plant_id field.
func ByPlantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlantID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySoc orders the results by the soc field.
func BySoc(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSoc, opts...).ToFunc()
}

// ByBatteryPower orders the results by the battery_power field.
func ByBatteryPower(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatteryPower, opts...).ToFunc()
}

// ByBatteryVoltage orders the results by the battery_voltage field.
func ByBatteryVoltage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatteryVoltage, opts...).ToFunc()
}

// ByBatteryCurrent orders the results by the battery_current field.
func ByBatteryCurrent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatteryCurrent, opts...).ToFunc()
}

// ByPvPower orders the results by the pv_power field.
func ByPvPower(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPvPower, opts...).ToFunc()
}

// ByLoadPower orders the results by the load_power field.
func ByLoadPower(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoadPower, opts...).ToFunc()
}

// ByGridPower orders the results by the grid_power field.
func ByGridPower(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGridPower, opts...).ToFunc()
}

// ByPvToLoad orders the results by the pv_to_load field.
func ByPvToLoad(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPvToLoad, opts...).ToFunc()
}

// ByPvToBat orders the results by the pv_to_bat field.
func ByPvToBat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPvToBat, opts...).ToFunc()
}

// ByBatToLoad orders the results by the bat_to_load field.
func ByBatToLoad(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatToLoad, opts...).ToFunc()
}

// ByGridToLoad orders the results by the grid_to_load field.
func ByGridToLoad(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGridToLoad, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
