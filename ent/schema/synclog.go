package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SyncLog holds the schema definition for one knowledge-base sync run.
// A run with failed > 0 and status "completed" is a partial success.
type SyncLog struct {
	ent.Schema
}

// Fields of the SyncLog.
func (SyncLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("sync_log_id").
			Unique().
			Immutable(),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("running", "completed", "failed").
			Default("running"),
		field.Int("processed").Default(0),
		field.Int("updated").Default(0),
		field.Int("deleted").Default(0),
		field.Int("failed").Default(0),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Indexes of the SyncLog.
func (SyncLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("started_at"),
	}
}
