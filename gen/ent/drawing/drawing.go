// Code generated by ent, DO NOT EDIT.

package drawing

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the drawing type in the database.
	Label = "drawing"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOriginalFilename holds the string denoting the original_filename field in the database.
	FieldOriginalFilename = "original_filename"
	// FieldPdfFilename holds the string denoting the pdf_filename field in the database.
	FieldPdfFilename = "pdf_filename"
	// FieldStoragePath holds the string denoting the storage_path field in the database.
	FieldStoragePath = "storage_path"
	// FieldThumbnailPath holds the string denoting the thumbnail_path field in the database.
	FieldThumbnailPath = "thumbnail_path"
	// FieldPageNumber holds the string denoting the page_number field in the database.
	FieldPageNumber = "page_number"
	// FieldRotation holds the string denoting the rotation field in the database.
	FieldRotation = "rotation"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldClassification holds the string denoting the classification field in the database.
	FieldClassification = "classification"
	// FieldClassificationConfidence holds the string denoting the classification_confidence field in the database.
	FieldClassificationConfidence = "classification_confidence"
	// FieldClassificationReason holds the string denoting the classification_reason field in the database.
	FieldClassificationReason = "classification_reason"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldShapeFeatures holds the string denoting the shape_features field in the database.
	FieldShapeFeatures = "shape_features"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldUploadedAt holds the string denoting the uploaded_at field in the database.
	FieldUploadedAt = "uploaded_at"
	// FieldAnalyzedAt holds the string denoting the analyzed_at field in the database.
	FieldAnalyzedAt = "analyzed_at"
	// FieldApprovedAt holds the string denoting the approved_at field in the database.
	FieldApprovedAt = "approved_at"
	// EdgeFields holds the string denoting the fields edge name in mutations.
	EdgeFields = "fields"
	// EdgeBalloons holds the string denoting the balloons edge name in mutations.
	EdgeBalloons = "balloons"
	// EdgeRevisions holds the string denoting the revisions edge name in mutations.
	EdgeRevisions = "revisions"
	// Table holds the table name of the drawing in the database.
	Table = "drawings"
	// FieldsTable is the table that holds the fields relation/edge.
	FieldsTable = "extracted_fields"
	// FieldsInverseTable is the table name for the ExtractedField entity.
	// It exists in this package in order to avoid circular dependency with the "extractedfield" package.
	FieldsInverseTable = "extracted_fields"
	// FieldsColumn is the table column denoting the fields relation/edge.
	FieldsColumn = "drawing_id"
	// BalloonsTable is the table that holds the balloons relation/edge.
	BalloonsTable = "balloons"
	// BalloonsInverseTable is the table name for the Balloon entity.
	// It exists in this package in order to avoid circular dependency with the "balloon" package.
	BalloonsInverseTable = "balloons"
	// BalloonsColumn is the table column denoting the balloons relation/edge.
	BalloonsColumn = "drawing_id"
	// RevisionsTable is the table that holds the revisions relation/edge.
	RevisionsTable = "revisions"
	// RevisionsInverseTable is the table name for the Revision entity.
	// It exists in this package in order to avoid circular dependency with the "revision" package.
	RevisionsInverseTable = "revisions"
	// RevisionsColumn is the table column denoting the revisions relation/edge.
	RevisionsColumn = "drawing_id"
)

// Columns holds all SQL columns for drawing fields.
var Columns = []string{
	FieldID,
	FieldOriginalFilename,
	FieldPdfFilename,
	FieldStoragePath,
	FieldThumbnailPath,
	FieldPageNumber,
	FieldRotation,
	FieldStatus,
	FieldClassification,
	FieldClassificationConfidence,
	FieldClassificationReason,
	FieldSummary,
	FieldShapeFeatures,
	FieldErrorMessage,
	FieldCreatedBy,
	FieldUploadedAt,
	FieldAnalyzedAt,
	FieldApprovedAt,
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
	// OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	OriginalFilenameValidator func(string) error
	// PdfFilenameValidator is a validator for the "pdf_filename" field. It is called by the builders before save.
	PdfFilenameValidator func(string) error
	// StoragePathValidator is a validator for the "storage_path" field. It is called by the builders before save.
	StoragePathValidator func(string) error
	// PageNumberValidator is a validator for the "page_number" field. It is called by the builders before save.
	PageNumberValidator func(int) error
	// DefaultRotation holds the default value on creation for the "rotation" field.
	DefaultRotation int
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	CreatedByValidator func(string) error
	// DefaultUploadedAt holds the default value on creation for the "uploaded_at" field.
	DefaultUploadedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Drawing queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOriginalFilename orders the results by the original_filename field.
func ByOriginalFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalFilename, opts...).ToFunc()
}

// ByPdfFilename orders the results by the pdf_filename field.
func ByPdfFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPdfFilename, opts...).ToFunc()
}

// ByStoragePath orders the results by the storage_path field.
func ByStoragePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoragePath, opts...).ToFunc()
}

// ByThumbnailPath orders the results by the thumbnail_path field.
func ByThumbnailPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThumbnailPath, opts...).ToFunc()
}

// ByPageNumber orders the results by the page_number field.
func ByPageNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageNumber, opts...).ToFunc()
}

// ByRotation orders the results by the rotation field.
func ByRotation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRotation, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByClassification orders the results by the classification field.
func ByClassification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassification, opts...).ToFunc()
}

// ByClassificationConfidence orders the results by the classification_confidence field.
func ByClassificationConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassificationConfidence, opts...).ToFunc()
}

// ByClassificationReason orders the results by the classification_reason field.
func ByClassificationReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassificationReason, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByUploadedAt orders the results by the uploaded_at field.
func ByUploadedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedAt, opts...).ToFunc()
}

// ByAnalyzedAt orders the results by the analyzed_at field.
func ByAnalyzedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalyzedAt, opts...).ToFunc()
}

// ByApprovedAt orders the results by the approved_at field.
func ByApprovedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovedAt, opts...).ToFunc()
}

// ByFieldsCount orders the results by fields count.
func ByFieldsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFieldsStep(), opts...)
	}
}

// ByFields orders the results by fields terms.
func ByFields(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFieldsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByBalloonsCount orders the results by balloons count.
func ByBalloonsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBalloonsStep(), opts...)
	}
}

// ByBalloons orders the results by balloons terms.
func ByBalloons(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBalloonsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRevisionsCount orders the results by revisions count.
func ByRevisionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRevisionsStep(), opts...)
	}
}

// ByRevisions orders the results by revisions terms.
func ByRevisions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRevisionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFieldsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FieldsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FieldsTable, FieldsColumn),
	)
}
func newBalloonsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BalloonsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BalloonsTable, BalloonsColumn),
	)
}
func newRevisionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RevisionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RevisionsTable, RevisionsColumn),
	)
}
