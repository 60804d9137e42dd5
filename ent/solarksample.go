// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/offgrid-ops/commandcenter/ent/solarksample"
)

// SolarkSample is the model entity for the SolarkSample schema.
type SolarkSample struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Vendor-side plant/site identifier
	PlantID *string `json:"plant_id,omitempty"`
	// Sample time reported by the vendor
	Timestamp time.Time `json:"timestamp,omitempty"`
	// State of charge, percent
	Soc float64 `json:"soc,omitempty"`
	// Watts; positive = charging
	BatteryPower float64 `json:"battery_power,omitempty"`
	// BatteryVoltage holds the value of the "battery_voltage" field.
	BatteryVoltage float64 `json:"battery_voltage,omitempty"`
	// BatteryCurrent holds the value of the "battery_current" field.
	BatteryCurrent float64 `json:"battery_current,omitempty"`
	// PvPower holds the value of the "pv_power" field.
	PvPower float64 `json:"pv_power,omitempty"`
	// LoadPower holds the value of the "load_power" field.
	LoadPower float64 `json:"load_power,omitempty"`
	// GridPower holds the value of the "grid_power" field.
	GridPower float64 `json:"grid_power,omitempty"`
	// PvToLoad holds the value of the "pv_to_load" field.
	PvToLoad bool `json:"pv_to_load,omitempty"`
	// PvToBat holds the value of the "pv_to_bat" field.
	PvToBat bool `json:"pv_to_bat,omitempty"`
	// BatToLoad holds the value of the "bat_to_load" field.
	BatToLoad bool `json:"bat_to_load,omitempty"`
	// GridToLoad holds the value of the "grid_to_load" field.
	GridToLoad bool `json:"grid_to_load,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SolarkSample) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case solarksample.FieldPvToLoad, solarksample.FieldPvToBat, solarksample.FieldBatToLoad, solarksample.FieldGridToLoad:
			values[i] = new(sql.NullBool)
		case solarksample.FieldSoc, solarksample.FieldBatteryPower, solarksample.FieldBatteryVoltage, solarksample.FieldBatteryCurrent, solarksample.FieldPvPower, solarksample.FieldLoadPower, solarksample.FieldGridPower:
			values[i] = new(sql.NullFloat64)
		case solarksample.FieldID:
			values[i] = new(sql.NullInt64)
		case solarksample.FieldPlantID:
			values[i] = new(sql.NullString)
		case solarksample.FieldTimestamp, solarksample.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SolarkSample fields.
func (_m *SolarkSample) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case solarksample.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case solarksample.FieldPlantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plant_id", values[i])
			} else if value.Valid {
				_m.PlantID = new(string)
				*_m.PlantID = value.String
			}
		case solarksample.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case solarksample.FieldSoc:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field soc", values[i])
			} else if value.Valid {
				_m.Soc = value.Float64
			}
		case solarksample.FieldBatteryPower:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field battery_power", values[i])
			} else if value.Valid {
				_m.BatteryPower = value.Float64
			}
		case solarksample.FieldBatteryVoltage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field battery_voltage", values[i])
			} else if value.Valid {
				_m.BatteryVoltage = value.Float64
			}
		case solarksample.FieldBatteryCurrent:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field battery_current", values[i])
			} else if value.Valid {
				_m.BatteryCurrent = value.Float64
			}
		case solarksample.FieldPvPower:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pv_power", values[i])
			} else if value.Valid {
				_m.PvPower = value.Float64
			}
		case solarksample.FieldLoadPower:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field load_power", values[i])
			} else if value.Valid {
				_m.LoadPower = value.Float64
			}
		case solarksample.FieldGridPower:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field grid_power", values[i])
			} else if value.Valid {
				_m.GridPower = value.Float64
			}
		case solarksample.FieldPvToLoad:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field pv_to_load", values[i])
			} else if value.Valid {
				_m.PvToLoad = value.Bool
			}
		case solarksample.FieldPvToBat:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field pv_to_bat", values[i])
			} else if value.Valid {
				_m.PvToBat = value.Bool
			}
		case solarksample.FieldBatToLoad:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field bat_to_load", values[i])
			} else if value.Valid {
				_m.BatToLoad = value.Bool
			}
		case solarksample.FieldGridToLoad:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field grid_to_load", values[i])
			} else if value.Valid {
				_m.GridToLoad = value.Bool
			}
		case solarksample.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SolarkSample.
// This includes values selected through modifiers, order, etc.
func (_m *SolarkSample) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SolarkSample.
// Note that you need to call SolarkSample.Unwrap() before calling this method if this SolarkSample
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SolarkSample) Update() *SolarkSampleUpdateOne {
	return NewSolarkSampleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SolarkSample entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SolarkSample) Unwrap() *SolarkSample {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SolarkSample is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SolarkSample) String() string {
	var builder strings.Builder
	builder.WriteString("SolarkSample(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.PlantID; v != nil {
		builder.WriteString("plant_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("soc=")
	builder.WriteString(fmt.Sprintf("%v", _m.Soc))
	builder.WriteString(", ")
	builder.WriteString("battery_power=")
	builder.WriteString(fmt.Sprintf("%v", _m.BatteryPower))
	builder.WriteString(", ")
	builder.WriteString("battery_voltage=")
	builder.WriteString(fmt.Sprintf("%v", _m.BatteryVoltage))
	builder.WriteString(", ")
	builder.WriteString("battery_current=")
	builder.WriteString(fmt.Sprintf("%v", _m.BatteryCurrent))
	builder.WriteString(", ")
	builder.WriteString("pv_power=")
	builder.WriteString(fmt.Sprintf("%v", _m.PvPower))
	builder.WriteString(", ")
	builder.WriteString("load_power=")
	builder.WriteString(fmt.Sprintf("%v", _m.LoadPower))
	builder.WriteString(", ")
	builder.WriteString("grid_power=")
	builder.WriteString(fmt.Sprintf("%v", _m.GridPower))
	builder.WriteString(", ")
	builder.WriteString("pv_to_load=")
	builder.WriteString(fmt.Sprintf("%v", _m.PvToLoad))
	builder.WriteString(", ")
	builder.WriteString("pv_to_bat=")
	builder.WriteString(fmt.Sprintf("%v", _m.PvToBat))
	builder.WriteString(", ")
	builder.WriteString("bat_to_load=")
	builder.WriteString(fmt.Sprintf("%v", _m.BatToLoad))
	builder.WriteString(", ")
	builder.WriteString("grid_to_load=")
	builder.WriteString(fmt.Sprintf("%v", _m.GridToLoad))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SolarkSamples is a parsable slice of SolarkSample.
type SolarkSamples []*SolarkSample
