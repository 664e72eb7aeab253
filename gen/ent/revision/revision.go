// Code generated by ent, DO NOT EDIT.

package revision

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the revision type in the database.
	Label = "revision"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDrawingID holds the string denoting the drawing_id field in the database.
	FieldDrawingID = "drawing_id"
	// FieldRevisionNumber holds the string denoting the revision_number field in the database.
	FieldRevisionNumber = "revision_number"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldAuthor holds the string denoting the author field in the database.
	FieldAuthor = "author"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// EdgeDrawing holds the string denoting the drawing edge name in mutations.
	EdgeDrawing = "drawing"
	// Table holds the table name of the revision in the database.
	Table = "revisions"
	// DrawingTable is the table that holds the drawing relation/edge.
	DrawingTable = "revisions"
	// DrawingInverseTable is the table name for the Drawing entity.
	// It exists in this package in order to avoid circular dependency with the "drawing" package.
	DrawingInverseTable = "drawings"
	// DrawingColumn is the table column denoting the drawing relation/edge.
	DrawingColumn = "drawing_id"
)

// Columns holds all SQL columns for revision fields.
var Columns = []string{
	FieldID,
	FieldDrawingID,
	FieldRevisionNumber,
	FieldDate,
	FieldDescription,
	FieldAuthor,
	FieldConfidence,
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
	// RevisionNumberValidator is a validator for the "revision_number" field. It is called by the builders before save.
	RevisionNumberValidator func(string) error
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Revision queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDrawingID orders the results by the drawing_id field.
func ByDrawingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDrawingID, opts...).ToFunc()
}

// ByRevisionNumber orders the results by the revision_number field.
func ByRevisionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevisionNumber, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByAuthor orders the results by the author field.
func ByAuthor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthor, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
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
