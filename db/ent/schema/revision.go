package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Revision is one row of a drawing's revision history table.
type Revision struct {
	ent.Schema
}

func (Revision) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "revisions"},
	}
}

func (Revision) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("drawing_id", uuid.UUID{}),
		field.String("revision_number").NotEmpty(),
		// kept as text: revision blocks mix date formats and era notation
		field.String("date").Optional(),
		field.String("description").Optional(),
		field.String("author").Optional(),
		field.Float("confidence").Default(0),
	}
}

func (Revision) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("drawing", Drawing.Type).
			Ref("revisions").
			Field("drawing_id").
			Required().
			Unique(),
	}
}

func (Revision) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("drawing_id"),
	}
}
