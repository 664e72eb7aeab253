// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/takuya-okamoto/zumenkan/gen/ent/balloon"
	"github.com/takuya-okamoto/zumenkan/gen/ent/drawing"
)

// Balloon is the model entity for the Balloon schema.
type Balloon struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DrawingID holds the value of the "drawing_id" field.
	DrawingID uuid.UUID `json:"drawing_id,omitempty"`
	// BalloonNumber holds the value of the "balloon_number" field.
	BalloonNumber int `json:"balloon_number,omitempty"`
	// PartName holds the value of the "part_name" field.
	PartName string `json:"part_name,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity int `json:"quantity,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// X holds the value of the "x" field.
	X int `json:"x,omitempty"`
	// Y holds the value of the "y" field.
	Y int `json:"y,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BalloonQuery when eager-loading is set.
	Edges        BalloonEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BalloonEdges holds the relations/edges for other nodes in the graph.
type BalloonEdges struct {
	// Drawing holds the value of the drawing edge.
	Drawing *Drawing `json:"drawing,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DrawingOrErr returns the Drawing value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BalloonEdges) DrawingOrErr() (*Drawing, error) {
	if e.Drawing != nil {
		return e.Drawing, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: drawing.Label}
	}
	return nil, &NotLoadedError{edge: "drawing"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Balloon) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case balloon.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case balloon.FieldBalloonNumber, balloon.FieldQuantity, balloon.FieldX, balloon.FieldY:
			values[i] = new(sql.NullInt64)
		case balloon.FieldPartName:
			values[i] = new(sql.NullString)
		case balloon.FieldID, balloon.FieldDrawingID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Balloon fields.
func (_m *Balloon) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case balloon.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case balloon.FieldDrawingID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field drawing_id", values[i])
			} else if value != nil {
				_m.DrawingID = *value
			}
		case balloon.FieldBalloonNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field balloon_number", values[i])
			} else if value.Valid {
				_m.BalloonNumber = int(value.Int64)
			}
		case balloon.FieldPartName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field part_name", values[i])
			} else if value.Valid {
				_m.PartName = value.String
			}
		case balloon.FieldQuantity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = int(value.Int64)
			}
		case balloon.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case balloon.FieldX:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field x", values[i])
			} else if value.Valid {
				_m.X = int(value.Int64)
			}
		case balloon.FieldY:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field y", values[i])
			} else if value.Valid {
				_m.Y = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Balloon.
// This includes values selected through modifiers, order, etc.
func (_m *Balloon) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDrawing queries the "drawing" edge of the Balloon entity.
func (_m *Balloon) QueryDrawing() *DrawingQuery {
	return NewBalloonClient(_m.config).QueryDrawing(_m)
}

// Update returns a builder for updating this Balloon.
// Note that you need to call Balloon.Unwrap() before calling this method if this Balloon
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Balloon) Update() *BalloonUpdateOne {
	return NewBalloonClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Balloon entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Balloon) Unwrap() *Balloon {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Balloon is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Balloon) String() string {
	var builder strings.Builder
	builder.WriteString("Balloon(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("drawing_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DrawingID))
	builder.WriteString(", ")
	builder.WriteString("balloon_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.BalloonNumber))
	builder.WriteString(", ")
	builder.WriteString("part_name=")
	builder.WriteString(_m.PartName)
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quantity))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("x=")
	builder.WriteString(fmt.Sprintf("%v", _m.X))
	builder.WriteString(", ")
	builder.WriteString("y=")
	builder.WriteString(fmt.Sprintf("%v", _m.Y))
	builder.WriteByte(')')
	return builder.String()
}

// Balloons is a parsable slice of Balloon.
type Balloons []*Balloon
