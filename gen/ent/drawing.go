// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/takuya-okamoto/zumenkan/gen/ent/drawing"
)

// Drawing is the model entity for the Drawing schema.
type Drawing struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OriginalFilename holds the value of the "original_filename" field.
	OriginalFilename string `json:"original_filename,omitempty"`
	// PdfFilename holds the value of the "pdf_filename" field.
	PdfFilename string `json:"pdf_filename,omitempty"`
	// StoragePath holds the value of the "storage_path" field.
	StoragePath string `json:"storage_path,omitempty"`
	// ThumbnailPath holds the value of the "thumbnail_path" field.
	ThumbnailPath string `json:"thumbnail_path,omitempty"`
	// PageNumber holds the value of the "page_number" field.
	PageNumber int `json:"page_number,omitempty"`
	// Rotation holds the value of the "rotation" field.
	Rotation int `json:"rotation,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Classification holds the value of the "classification" field.
	Classification *string `json:"classification,omitempty"`
	// ClassificationConfidence holds the value of the "classification_confidence" field.
	ClassificationConfidence *float64 `json:"classification_confidence,omitempty"`
	// ClassificationReason holds the value of the "classification_reason" field.
	ClassificationReason string `json:"classification_reason,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// ShapeFeatures holds the value of the "shape_features" field.
	ShapeFeatures json.RawMessage `json:"shape_features,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// AnalyzedAt holds the value of the "analyzed_at" field.
	AnalyzedAt *time.Time `json:"analyzed_at,omitempty"`
	// ApprovedAt holds the value of the "approved_at" field.
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DrawingQuery when eager-loading is set.
	Edges        DrawingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DrawingEdges holds the relations/edges for other nodes in the graph.
type DrawingEdges struct {
	// Fields holds the value of the fields edge.
	Fields []*ExtractedField `json:"fields,omitempty"`
	// Balloons holds the value of the balloons edge.
	Balloons []*Balloon `json:"balloons,omitempty"`
	// Revisions holds the value of the revisions edge.
	Revisions []*Revision `json:"revisions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// FieldsOrErr returns the Fields value or an error if the edge
// was not loaded in eager-loading.
func (e DrawingEdges) FieldsOrErr() ([]*ExtractedField, error) {
	if e.loadedTypes[0] {
		return e.Fields, nil
	}
	return nil, &NotLoadedError{edge: "fields"}
}

// BalloonsOrErr returns the Balloons value or an error if the edge
// was not loaded in eager-loading.
func (e DrawingEdges) BalloonsOrErr() ([]*Balloon, error) {
	if e.loadedTypes[1] {
		return e.Balloons, nil
	}
	return nil, &NotLoadedError{edge: "balloons"}
}

// RevisionsOrErr returns the Revisions value or an error if the edge
// was not loaded in eager-loading.
func (e DrawingEdges) RevisionsOrErr() ([]*Revision, error) {
	if e.loadedTypes[2] {
		return e.Revisions, nil
	}
	return nil, &NotLoadedError{edge: "revisions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Drawing) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case drawing.FieldShapeFeatures:
			values[i] = new([]byte)
		case drawing.FieldClassificationConfidence:
			values[i] = new(sql.NullFloat64)
		case drawing.FieldPageNumber, drawing.FieldRotation:
			values[i] = new(sql.NullInt64)
		case drawing.FieldOriginalFilename, drawing.FieldPdfFilename, drawing.FieldStoragePath, drawing.FieldThumbnailPath, drawing.FieldStatus, drawing.FieldClassification, drawing.FieldClassificationReason, drawing.FieldSummary, drawing.FieldErrorMessage, drawing.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case drawing.FieldUploadedAt, drawing.FieldAnalyzedAt, drawing.FieldApprovedAt:
			values[i] = new(sql.NullTime)
		case drawing.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Drawing fields.
func (_m *Drawing) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case drawing.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case drawing.FieldOriginalFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_filename", values[i])
			} else if value.Valid {
				_m.OriginalFilename = value.String
			}
		case drawing.FieldPdfFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pdf_filename", values[i])
			} else if value.Valid {
				_m.PdfFilename = value.String
			}
		case drawing.FieldStoragePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_path", values[i])
			} else if value.Valid {
				_m.StoragePath = value.String
			}
		case drawing.FieldThumbnailPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thumbnail_path", values[i])
			} else if value.Valid {
				_m.ThumbnailPath = value.String
			}
		case drawing.FieldPageNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_number", values[i])
			} else if value.Valid {
				_m.PageNumber = int(value.Int64)
			}
		case drawing.FieldRotation:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rotation", values[i])
			} else if value.Valid {
				_m.Rotation = int(value.Int64)
			}
		case drawing.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case drawing.FieldClassification:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field classification", values[i])
			} else if value.Valid {
				_m.Classification = new(string)
				*_m.Classification = value.String
			}
		case drawing.FieldClassificationConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field classification_confidence", values[i])
			} else if value.Valid {
				_m.ClassificationConfidence = new(float64)
				*_m.ClassificationConfidence = value.Float64
			}
		case drawing.FieldClassificationReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field classification_reason", values[i])
			} else if value.Valid {
				_m.ClassificationReason = value.String
			}
		case drawing.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case drawing.FieldShapeFeatures:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field shape_features", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ShapeFeatures); err != nil {
					return fmt.Errorf("unmarshal field shape_features: %w", err)
				}
			}
		case drawing.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case drawing.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case drawing.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		case drawing.FieldAnalyzedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field analyzed_at", values[i])
			} else if value.Valid {
				_m.AnalyzedAt = new(time.Time)
				*_m.AnalyzedAt = value.Time
			}
		case drawing.FieldApprovedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field approved_at", values[i])
			} else if value.Valid {
				_m.ApprovedAt = new(time.Time)
				*_m.ApprovedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Drawing.
// This includes values selected through modifiers, order, etc.
func (_m *Drawing) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFields queries the "fields" edge of the Drawing entity.
func (_m *Drawing) QueryFields() *ExtractedFieldQuery {
	return NewDrawingClient(_m.config).QueryFields(_m)
}

// QueryBalloons queries the "balloons" edge of the Drawing entity.
func (_m *Drawing) QueryBalloons() *BalloonQuery {
	return NewDrawingClient(_m.config).QueryBalloons(_m)
}

// QueryRevisions queries the "revisions" edge of the Drawing entity.
func (_m *Drawing) QueryRevisions() *RevisionQuery {
	return NewDrawingClient(_m.config).QueryRevisions(_m)
}

// Update returns a builder for updating this Drawing.
// Note that you need to call Drawing.Unwrap() before calling this method if this Drawing
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Drawing) Update() *DrawingUpdateOne {
	return NewDrawingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Drawing entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Drawing) Unwrap() *Drawing {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Drawing is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Drawing) String() string {
	var builder strings.Builder
	builder.WriteString("Drawing(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("original_filename=")
	builder.WriteString(_m.OriginalFilename)
	builder.WriteString(", ")
	builder.WriteString("pdf_filename=")
	builder.WriteString(_m.PdfFilename)
	builder.WriteString(", ")
	builder.WriteString("storage_path=")
	builder.WriteString(_m.StoragePath)
	builder.WriteString(", ")
	builder.WriteString("thumbnail_path=")
	builder.WriteString(_m.ThumbnailPath)
	builder.WriteString(", ")
	builder.WriteString("page_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageNumber))
	builder.WriteString(", ")
	builder.WriteString("rotation=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rotation))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.Classification; v != nil {
		builder.WriteString("classification=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClassificationConfidence; v != nil {
		builder.WriteString("classification_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("classification_reason=")
	builder.WriteString(_m.ClassificationReason)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("shape_features=")
	builder.WriteString(fmt.Sprintf("%v", _m.ShapeFeatures))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.AnalyzedAt; v != nil {
		builder.WriteString("analyzed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ApprovedAt; v != nil {
		builder.WriteString("approved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Drawings is a parsable slice of Drawing.
type Drawings []*Drawing
