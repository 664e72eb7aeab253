// Code generated by ent, DO NOT EDIT.

package extractedfield

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractedfield type in the database.
	Label = "extracted_field"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDrawingID holds the string denoting the drawing_id field in the database.
	FieldDrawingID = "drawing_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldX holds the string denoting the x field in the database.
	FieldX = "x"
	// FieldY holds the string denoting the y field in the database.
	FieldY = "y"
	// FieldWidth holds the string denoting the width field in the database.
	FieldWidth = "width"
	// FieldHeight holds the string denoting the height field in the database.
	FieldHeight = "height"
	// EdgeDrawing holds the string denoting the drawing edge name in mutations.
	EdgeDrawing = "drawing"
	// Table holds the table name of the extractedfield in the database.
	Table = "extracted_fields"
	// DrawingTable is the table that holds the drawing relation/edge.
	DrawingTable = "extracted_fields"
	// DrawingInverseTable is the table name for the Drawing entity.
	// It exists in this package in order to avoid circular dependency with the "drawing" package.
	DrawingInverseTable = "drawings"
	// DrawingColumn is the table column denoting the drawing relation/edge.
	DrawingColumn = "drawing_id"
)

// Columns holds all SQL columns for extractedfield fields.
var Columns = []string{
	FieldID,
	FieldDrawingID,
	FieldName,
	FieldValue,
	FieldConfidence,
	FieldX,
	FieldY,
	FieldWidth,
	FieldHeight,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultX holds the default value on creation for the "x" field.
	DefaultX int
	// DefaultY holds the default value on creation for the "y" field.
	DefaultY int
	// DefaultWidth holds the default value on creation for the "width" field.
	DefaultWidth int
	// DefaultHeight holds the default value on creation for the "height" field.
	DefaultHeight int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractedField queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDrawingID orders the results by the drawing_id field.
func ByDrawingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDrawingID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByValue orders the results by the value field.
func ByValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValue, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByX orders the results by the x field.
func ByX(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldX, opts...).ToFunc()
}

// ByY orders the results by the y field.
func ByY(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldY, opts...).ToFunc()
}

// ByWidth orders the results by the width field.
func ByWidth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWidth, opts...).ToFunc()
}

// ByHeight orders the results by the height field.
func ByHeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeight, opts...).ToFunc()
}

// ByDrawingField orders the results by drawing field.
func ByDrawingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDrawingStep(), sql.OrderByField(field, opts...))
	}
}
func newDrawingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DrawingInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DrawingTable, DrawingColumn),
	)
}
