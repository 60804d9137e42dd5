package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// telemetryFields is the shared column set for per-vendor telemetry tables.
// Both vendors normalize to this shape; signs are normalized so positive
// battery_power means charging.
func telemetryFields() []ent.Field {
	return []ent.Field{
		field.String("plant_id").
			Optional().
			Nillable().
			Comment("Vendor-side plant/site identifier"),
		field.Time("timestamp").
			Comment("Sample time reported by the vendor"),
		field.Float("soc").
			Comment("State of charge, percent"),
		field.Float("battery_power").
			Comment("Watts; positive = charging"),
		field.Float("battery_voltage"),
		field.Float("battery_current"),
		field.Float("pv_power"),
		field.Float("load_power"),
		field.Float("grid_power"),
		field.Bool("pv_to_load").Default(false),
		field.Bool("pv_to_bat").Default(false),
		field.Bool("bat_to_load").Default(false),
		field.Bool("grid_to_load").Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// telemetryIndexes enforces write idempotency on the sample timestamp and
// keeps history reads index-backed.
func telemetryIndexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp").Unique(),
	}
}

// SolarkSample holds the schema definition for SolArk inverter telemetry.
// The SolArk poller is the sole writer of this table.
type SolarkSample struct {
	ent.Schema
}

// Fields of the SolarkSample.
func (SolarkSample) Fields() []ent.Field { return telemetryFields() }

// Indexes of the SolarkSample.
func (SolarkSample) Indexes() []ent.Index { return telemetryIndexes() }
