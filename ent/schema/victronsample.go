package schema

import (
	"entgo.io/ent"
)

// VictronSample holds the schema definition for Victron GX telemetry.
// The Victron poller is the sole writer of this table.
type VictronSample struct {
	ent.Schema
}

// Fields of the VictronSample.
func (VictronSample) Fields() []ent.Field { return telemetryFields() }

// Indexes of the VictronSample.
func (VictronSample) Indexes() []ent.Index { return telemetryIndexes() }
