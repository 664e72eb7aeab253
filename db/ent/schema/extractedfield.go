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

// ExtractedField is a single title-block field read from a drawing.
type ExtractedField struct {
	ent.Schema
}

func (ExtractedField) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extracted_fields"},
	}
}

func (ExtractedField) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("drawing_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("value"),
		field.Float("confidence").Default(0),
		// bounding box in page pixel coordinates; zeroed when the model
		// could not locate the field
		field.Int("x").Default(0),
		field.Int("y").Default(0),
		field.Int("width").Default(0),
		field.Int("height").Default(0),
	}
}

func (ExtractedField) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("drawing", Drawing.Type).
			Ref("fields").
			Field("drawing_id").
			Required().
			Unique(),
	}
}

func (ExtractedField) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("drawing_id"),
		index.Fields("drawing_id", "name"),
	}
}
