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

// Balloon is a numbered part callout found on an assembly or unit drawing.
type Balloon struct {
	ent.Schema
}

func (Balloon) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "balloons"},
	}
}

func (Balloon) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("drawing_id", uuid.UUID{}),
		field.Int("balloon_number").Positive(),
		field.String("part_name").Optional(),
		field.Int("quantity").Default(1),
		field.Float("confidence").Default(0),
		field.Int("x").Default(0),
		field.Int("y").Default(0),
	}
}

func (Balloon) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("drawing", Drawing.Type).
			Ref("balloons").
			Field("drawing_id").
			Required().
			Unique(),
	}
}

func (Balloon) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("drawing_id"),
	}
}
