package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for a single conversation turn.
// Assistant messages carry the per-answer agent metadata.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			Immutable(),
		field.Enum("role").
			Values("user", "assistant", "system"),
		field.Text("content"),
		field.String("agent_role").
			Optional().
			Nillable().
			Comment("For assistant messages: the specialist that answered"),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.Int("tokens").
			Optional().
			Nillable().
			Comment("Context tokens loaded for this answer"),
		field.Bool("cache_hit").
			Optional().
			Nillable(),
		field.String("query_type").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("messages").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		// Ordering key: created_at with id as the stable tiebreaker.
		index.Fields("conversation_id", "created_at", "id"),
	}
}
