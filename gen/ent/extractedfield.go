// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/takuya-okamoto/zumenkan/gen/ent/drawing"
	"github.com/takuya-okamoto/zumenkan/gen/ent/extractedfield"
)

// ExtractedField is the model entity for the ExtractedField schema.
type ExtractedField struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DrawingID holds the value of the "drawing_id" field.
	DrawingID uuid.UUID `json:"drawing_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Value holds the value of the "value" field.
	Value string `json:"value,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// X holds the value of the "x" field.
	X int `json:"x,omitempty"`
	// Y holds the value of the "y" field.
	Y int `json:"y,omitempty"`
	// Width holds the value of the "width" field.
	Width int `json:"width,omitempty"`
	// Height holds the value of the "height" field.
	Height int `json:"height,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractedFieldQuery when eager-loading is set.
	Edges        ExtractedFieldEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractedFieldEdges holds the relations/edges for other nodes in the graph.
type ExtractedFieldEdges struct {
	// Drawing holds the value of the drawing edge.
	Drawing *Drawing `json:"drawing,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DrawingOrErr returns the Drawing value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractedFieldEdges) DrawingOrErr() (*Drawing, error) {
	if e.Drawing != nil {
		return e.Drawing, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: drawing.Label}
	}
	return nil, &NotLoadedError{edge: "drawing"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractedField) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractedfield.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case extractedfield.FieldX, extractedfield.FieldY, extractedfield.FieldWidth, extractedfield.FieldHeight:
			values[i] = new(sql.NullInt64)
		case extractedfield.FieldName, extractedfield.FieldValue:
			values[i] = new(sql.NullString)
		case extractedfield.FieldID, extractedfield.FieldDrawingID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractedField fields.
func (_m *ExtractedField) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractedfield.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractedfield.FieldDrawingID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field drawing_id", values[i])
			} else if value != nil {
				_m.DrawingID = *value
			}
		case extractedfield.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case extractedfield.FieldValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.String
			}
		case extractedfield.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case extractedfield.FieldX:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field x", values[i])
			} else if value.Valid {
				_m.X = int(value.Int64)
			}
		case extractedfield.FieldY:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field y", values[i])
			} else if value.Valid {
				_m.Y = int(value.Int64)
			}
		case extractedfield.FieldWidth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field width", values[i])
			} else if value.Valid {
				_m.Width = int(value.Int64)
			}
		case extractedfield.FieldHeight:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field height", values[i])
			} else if value.Valid {
				_m.Height = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the ExtractedField.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractedField) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDrawing queries the "drawing" edge of the ExtractedField entity.
func (_m *ExtractedField) QueryDrawing() *DrawingQuery {
	return NewExtractedFieldClient(_m.config).QueryDrawing(_m)
}

// Update returns a builder for updating this ExtractedField.
// Note that you need to call ExtractedField.Unwrap() before calling this method if this ExtractedField
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractedField) Update() *ExtractedFieldUpdateOne {
	return NewExtractedFieldClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractedField entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractedField) Unwrap() *ExtractedField {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractedField is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractedField) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractedField(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("drawing_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DrawingID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(_m.Value)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("x=")
	builder.WriteString(fmt.Sprintf("%v", _m.X))
	builder.WriteString(", ")
	builder.WriteString("y=")
	builder.WriteString(fmt.Sprintf("%v", _m.Y))
	builder.WriteString(", ")
	builder.WriteString("width=")
	builder.WriteString(fmt.Sprintf("%v", _m.Width))
	builder.WriteString(", ")
	builder.WriteString("height=")
	builder.WriteString(fmt.Sprintf("%v", _m.Height))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractedFields is a parsable slice of ExtractedField.
type ExtractedFields []*ExtractedField
