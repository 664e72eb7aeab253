package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/takuya-okamoto/zumenkan/constants"
	"github.com/takuya-okamoto/zumenkan/db/ent/schema/utils"
)

// Drawing is one page of an uploaded document and its analysis state.
type Drawing struct {
	ent.Schema
}

func (Drawing) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "drawings"},
	}
}

func (Drawing) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("original_filename").NotEmpty().Immutable(),
		// display filename, rewritten by the canonical renamer
		field.String("pdf_filename").NotEmpty(),
		field.String("storage_path").NotEmpty(),
		field.String("thumbnail_path").Optional(),
		field.Int("page_number").NonNegative().Immutable(),
		// correction angle still pending; 0 once the page is normalized
		field.Int("rotation").Default(0),
		field.String("status").
			Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.StatusStrings()...)),
		field.String("classification").Optional().Nillable(),
		field.Float("classification_confidence").Optional().Nillable(),
		field.Text("classification_reason").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Text("summary").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("shape_features", json.RawMessage{}).Optional(),
		field.String("error_message").Optional().Nillable(),
		field.String("created_by").NotEmpty(),
		field.Time("uploaded_at").Default(time.Now),
		field.Time("analyzed_at").Optional().Nillable(),
		field.Time("approved_at").Optional().Nillable(),
	}
}

func (Drawing) Edges() []ent.Edge {
	return []ent.Edge{
		// children are replaced wholesale on re-analysis and removed with the drawing
		edge.To("fields", ExtractedField.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("balloons", Balloon.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("revisions", Revision.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Drawing) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("classification"),
		index.Fields("uploaded_at"),
	}
}
