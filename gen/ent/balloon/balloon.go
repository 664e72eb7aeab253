// Code generated by ent, DO NOT EDIT.

package balloon

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the balloon type in the database.
	Label = "balloon"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDrawingID holds the string denoting the drawing_id field in the database.
	FieldDrawingID = "drawing_id"
	// FieldBalloonNumber holds the string denoting the balloon_number field in the database.
	FieldBalloonNumber = "balloon_number"
	// FieldPartName holds the string denoting the part_name field in the database.
	FieldPartName = "part_name"
	// FieldQuantity holds the string denoting the quantity field in the database.
	FieldQuantity = "quantity"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldX holds the string denoting the x field in the database.
	FieldX = "x"
	// FieldY holds the string denoting the y field in the database.
	FieldY = "y"
	// EdgeDrawing holds the string denoting the drawing edge name in mutations.
	EdgeDrawing = "drawing"
	// Table holds the table name of the balloon in the database.
	Table = "balloons"
	// DrawingTable is the table that holds the drawing relation/edge.
	DrawingTable = "balloons"
	// DrawingInverseTable is the table name for the Drawing entity.
	// It exists in this package in order to avoid circular dependency with the "drawing" package.
	DrawingInverseTable = "drawings"
	// DrawingColumn is the table column denoting the drawing relation/edge.
	DrawingColumn = "drawing_id"
)

// Columns holds all SQL columns for balloon fields.
var Columns = []string{
	FieldID,
	FieldDrawingID,
	FieldBalloonNumber,
	FieldPartName,
	FieldQuantity,
	FieldConfidence,
	FieldX,
	FieldY,
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
	// BalloonNumberValidator is a validator for the "balloon_number" field. It is called by the builders before save.
	BalloonNumberValidator func(int) error
	// DefaultQuantity holds the default value on creation for the "quantity" field.
	DefaultQuantity int
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultX holds the default value on creation for the "x" field.
	DefaultX int
	// DefaultY holds the default value on creation for the "y" field.
	DefaultY int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Balloon queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDrawingID orders the results by the drawing_id field.
func ByDrawingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDrawingID, opts...).ToFunc()
}

// ByBalloonNumber orders the results by the balloon_number field.
func ByBalloonNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBalloonNumber, opts...).ToFunc()
}

// ByPartName orders the results by the part_name field.
func ByPartName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPartName, opts...).ToFunc()
}

// ByQuantity orders the results by the quantity field.
func ByQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantity, opts...).ToFunc()
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
