package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentExecution holds the schema definition for one per-query execution
// record: which agent answered, how long it took, what it cost.
type AgentExecution struct {
	ent.Schema
}

// Fields of the AgentExecution.
func (AgentExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Comment("Conversation the query belonged to"),
		field.String("agent_role"),
		field.String("query_type").
			Optional(),
		field.Int("tokens_in").
			Default(0).
			Comment("Context tokens loaded for the query"),
		field.Bool("cache_hit").
			Default(false),
		field.Int("duration_ms").
			Default(0),
		field.JSON("tools_used", []string{}).
			Optional(),
		field.String("error").
			Optional().
			Nillable().
			Comment("Terminal error kind, e.g. 'deadline', 'max_iterations'"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AgentExecution.
func (AgentExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
		index.Fields("agent_role"),
	}
}
