package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Document holds the schema definition for a knowledge-base document
// synchronized from the external document provider.
type Document struct {
	ent.Schema
}

// Fields of the Document.
func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("document_id").
			Unique().
			Immutable(),
		field.String("external_id").
			Unique().
			Comment("Provider-side identifier; sync key"),
		field.String("title"),
		field.String("folder_path").
			Default("").
			Comment("Provider folder path, e.g. 'Solar/Context'"),
		field.Enum("mime_kind").
			Values("doc", "pdf", "sheet"),
		field.Text("full_text").
			Default(""),
		field.Bool("is_context_file").
			Default(false).
			Comment("True iff the document lives under the context folder"),
		field.Int("token_count").
			Default(0),
		field.Enum("status").
			Values("synced", "failed").
			Default("synced"),
		field.Time("last_synced_at").
			Optional().
			Nillable(),
		field.String("sync_error").
			Optional().
			Nillable().
			Comment("Last per-document sync failure, if any"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Document.
func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("chunks", Chunk.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Document.
func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_context_file"),
		index.Fields("folder_path"),
	}
}
