// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BalloonsColumns holds the columns for the "balloons" table.
	BalloonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "balloon_number", Type: field.TypeInt},
		{Name: "part_name", Type: field.TypeString, Nullable: true},
		{Name: "quantity", Type: field.TypeInt, Default: 1},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "x", Type: field.TypeInt, Default: 0},
		{Name: "y", Type: field.TypeInt, Default: 0},
		{Name: "drawing_id", Type: field.TypeUUID},
	}
	// BalloonsTable holds the schema information for the "balloons" table.
	BalloonsTable = &schema.Table{
		Name:       "balloons",
		Columns:    BalloonsColumns,
		PrimaryKey: []*schema.Column{BalloonsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "balloons_drawings_balloons",
				Columns:    []*schema.Column{BalloonsColumns[7]},
				RefColumns: []*schema.Column{DrawingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "balloon_drawing_id",
				Unique:  false,
				Columns: []*schema.Column{BalloonsColumns[7]},
			},
		},
	}
	// DrawingsColumns holds the columns for the "drawings" table.
	DrawingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "original_filename", Type: field.TypeString},
		{Name: "pdf_filename", Type: field.TypeString},
		{Name: "storage_path", Type: field.TypeString},
		{Name: "thumbnail_path", Type: field.TypeString, Nullable: true},
		{Name: "page_number", Type: field.TypeInt},
		{Name: "rotation", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "classification", Type: field.TypeString, Nullable: true},
		{Name: "classification_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "classification_reason", Type: field.TypeString, Nullable: true, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "shape_features", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_by", Type: field.TypeString},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "analyzed_at", Type: field.TypeTime, Nullable: true},
		{Name: "approved_at", Type: field.TypeTime, Nullable: true},
	}
	// DrawingsTable holds the schema information for the "drawings" table.
	DrawingsTable = &schema.Table{
		Name:       "drawings",
		Columns:    DrawingsColumns,
		PrimaryKey: []*schema.Column{DrawingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "drawing_status",
				Unique:  false,
				Columns: []*schema.Column{DrawingsColumns[7]},
			},
			{
				Name:    "drawing_classification",
				Unique:  false,
				Columns: []*schema.Column{DrawingsColumns[8]},
			},
			{
				Name:    "drawing_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DrawingsColumns[15]},
			},
		},
	}
	// ExtractedFieldsColumns holds the columns for the "extracted_fields" table.
	ExtractedFieldsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "value", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "x", Type: field.TypeInt, Default: 0},
		{Name: "y", Type: field.TypeInt, Default: 0},
		{Name: "width", Type: field.TypeInt, Default: 0},
		{Name: "height", Type: field.TypeInt, Default: 0},
		{Name: "drawing_id", Type: field.TypeUUID},
	}
	// ExtractedFieldsTable holds the schema information for the "extracted_fields" table.
	ExtractedFieldsTable = &schema.Table{
		Name:       "extracted_fields",
		Columns:    ExtractedFieldsColumns,
		PrimaryKey: []*schema.Column{ExtractedFieldsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extracted_fields_drawings_fields",
				Columns:    []*schema.Column{ExtractedFieldsColumns[8]},
				RefColumns: []*schema.Column{DrawingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractedfield_drawing_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractedFieldsColumns[8]},
			},
			{
				Name:    "extractedfield_drawing_id_name",
				Unique:  false,
				Columns: []*schema.Column{ExtractedFieldsColumns[8], ExtractedFieldsColumns[1]},
			},
		},
	}
	// RevisionsColumns holds the columns for the "revisions" table.
	RevisionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "revision_number", Type: field.TypeString},
		{Name: "date", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "author", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "drawing_id", Type: field.TypeUUID},
	}
	// RevisionsTable holds the schema information for the "revisions" table.
	RevisionsTable = &schema.Table{
		Name:       "revisions",
		Columns:    RevisionsColumns,
		PrimaryKey: []*schema.Column{RevisionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "revisions_drawings_revisions",
				Columns:    []*schema.Column{RevisionsColumns[6]},
				RefColumns: []*schema.Column{DrawingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "revision_drawing_id",
				Unique:  false,
				Columns: []*schema.Column{RevisionsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BalloonsTable,
		DrawingsTable,
		ExtractedFieldsTable,
		RevisionsTable,
	}
)

func init() {
	BalloonsTable.ForeignKeys[0].RefTable = DrawingsTable
	BalloonsTable.Annotation = &entsql.Annotation{
		Table: "balloons",
	}
	DrawingsTable.Annotation = &entsql.Annotation{
		Table: "drawings",
	}
	ExtractedFieldsTable.ForeignKeys[0].RefTable = DrawingsTable
	ExtractedFieldsTable.Annotation = &entsql.Annotation{
		Table: "extracted_fields",
	}
	RevisionsTable.ForeignKeys[0].RefTable = DrawingsTable
	RevisionsTable.Annotation = &entsql.Annotation{
		Table: "revisions",
	}
}
