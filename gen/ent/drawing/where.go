// Code generated by ent, DO NOT EDIT.

package drawing

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/takuya-okamoto/zumenkan/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldLTE(FieldID, id))
}

// OriginalFilename applies equality check predicate on the "original_filename" field. It's identical to OriginalFilenameEQ.
func OriginalFilename(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldOriginalFilename, v))
}

// PdfFilename applies equality check predicate on the "pdf_filename" field. It's identical to PdfFilenameEQ.
func PdfFilename(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldPdfFilename, v))
}

// StoragePath applies equality check predicate on the "storage_path" field. It's identical to StoragePathEQ.
func StoragePath(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldStoragePath, v))
}

// ThumbnailPath applies equality check predicate on the "thumbnail_path" field. It's identical to ThumbnailPathEQ.
func ThumbnailPath(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldThumbnailPath, v))
}

// PageNumber applies equality check predicate on the "page_number" field. It's identical to PageNumberEQ.
func PageNumber(v int) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldPageNumber, v))
}

// Rotation applies equality check predicate on the "rotation" field. It's identical to RotationEQ.
func Rotation(v int) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldRotation, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldStatus, v))
}

// Classification applies equality check predicate on the "classification" field. It's identical to ClassificationEQ.
func Classification(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldClassification, v))
}

// ClassificationConfidence applies equality check predicate on the "classification_confidence" field. It's identical to ClassificationConfidenceEQ.
func ClassificationConfidence(v float64) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldClassificationConfidence, v))
}

// ClassificationReason applies equality check predicate on the "classification_reason" field. It's identical to ClassificationReasonEQ.
func ClassificationReason(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldClassificationReason, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldSummary, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldCreatedBy, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldUploadedAt, v))
}

// AnalyzedAt applies equality check predicate on the "analyzed_at" field. It's identical to AnalyzedAtEQ.
func AnalyzedAt(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldAnalyzedAt, v))
}

// ApprovedAt applies equality check predicate on the "approved_at" field. It's identical to ApprovedAtEQ.
func ApprovedAt(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldApprovedAt, v))
}

// OriginalFilenameEQ applies the EQ predicate on the "original_filename" field.
func OriginalFilenameEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldOriginalFilename, v))
}

// OriginalFilenameNEQ applies the NEQ predicate on the "original_filename" field.
func OriginalFilenameNEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldOriginalFilename, v))
}

// OriginalFilenameIn applies the In predicate on the "original_filename" field.
func OriginalFilenameIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameNotIn applies the NotIn predicate on the "original_filename" field.
func OriginalFilenameNotIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameGT applies the GT predicate on the "original_filename" field.
func OriginalFilenameGT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGT(FieldOriginalFilename, v))
}

// OriginalFilenameGTE applies the GTE predicate on the "original_filename" field.
func OriginalFilenameGTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGTE(FieldOriginalFilename, v))
}

// OriginalFilenameLT applies the LT predicate on the "original_filename" field.
func OriginalFilenameLT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLT(FieldOriginalFilename, v))
}

// OriginalFilenameLTE applies the LTE predicate on the "original_filename" field.
func OriginalFilenameLTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLTE(FieldOriginalFilename, v))
}

// OriginalFilenameContains applies the Contains predicate on the "original_filename" field.
func OriginalFilenameContains(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContains(FieldOriginalFilename, v))
}

// OriginalFilenameHasPrefix applies the HasPrefix predicate on the "original_filename" field.
func OriginalFilenameHasPrefix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasPrefix(FieldOriginalFilename, v))
}

// OriginalFilenameHasSuffix applies the HasSuffix predicate on the "original_filename" field.
func OriginalFilenameHasSuffix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasSuffix(FieldOriginalFilename, v))
}

// OriginalFilenameEqualFold applies the EqualFold predicate on the "original_filename" field.
func OriginalFilenameEqualFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEqualFold(FieldOriginalFilename, v))
}

// OriginalFilenameContainsFold applies the ContainsFold predicate on the "original_filename" field.
func OriginalFilenameContainsFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContainsFold(FieldOriginalFilename, v))
}

// PdfFilenameEQ applies the EQ predicate on the "pdf_filename" field.
func PdfFilenameEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldPdfFilename, v))
}

// PdfFilenameNEQ applies the NEQ predicate on the "pdf_filename" field.
func PdfFilenameNEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldPdfFilename, v))
}

// PdfFilenameIn applies the In predicate on the "pdf_filename" field.
func PdfFilenameIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldPdfFilename, vs...))
}

// PdfFilenameNotIn applies the NotIn predicate on the "pdf_filename" field.
func PdfFilenameNotIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldPdfFilename, vs...))
}

// PdfFilenameGT applies the GT predicate on the "pdf_filename" field.
func PdfFilenameGT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGT(FieldPdfFilename, v))
}

// PdfFilenameGTE applies the GTE predicate on the "pdf_filename" field.
func PdfFilenameGTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGTE(FieldPdfFilename, v))
}

// PdfFilenameLT applies the LT predicate on the "pdf_filename" field.
func PdfFilenameLT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLT(FieldPdfFilename, v))
}

// PdfFilenameLTE applies the LTE predicate on the "pdf_filename" field.
func PdfFilenameLTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLTE(FieldPdfFilename, v))
}

// PdfFilenameContains applies the Contains predicate on the "pdf_filename" field.
func PdfFilenameContains(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContains(FieldPdfFilename, v))
}

// PdfFilenameHasPrefix applies the HasPrefix predicate on the "pdf_filename" field.
func PdfFilenameHasPrefix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasPrefix(FieldPdfFilename, v))
}

// PdfFilenameHasSuffix applies the HasSuffix predicate on the "pdf_filename" field.
func PdfFilenameHasSuffix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasSuffix(FieldPdfFilename, v))
}

// PdfFilenameEqualFold applies the EqualFold predicate on the "pdf_filename" field.
func PdfFilenameEqualFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEqualFold(FieldPdfFilename, v))
}

// PdfFilenameContainsFold applies the ContainsFold predicate on the "pdf_filename" field.
func PdfFilenameContainsFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContainsFold(FieldPdfFilename, v))
}

// StoragePathEQ applies the EQ predicate on the "storage_path" field.
func StoragePathEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldStoragePath, v))
}

// StoragePathNEQ applies the NEQ predicate on the "storage_path" field.
func StoragePathNEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldStoragePath, v))
}

// StoragePathIn applies the In predicate on the "storage_path" field.
func StoragePathIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldStoragePath, vs...))
}

// StoragePathNotIn applies the NotIn predicate on the "storage_path" field.
func StoragePathNotIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldStoragePath, vs...))
}

// StoragePathGT applies the GT predicate on the "storage_path" field.
func StoragePathGT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGT(FieldStoragePath, v))
}

// StoragePathGTE applies the GTE predicate on the "storage_path" field.
func StoragePathGTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGTE(FieldStoragePath, v))
}

// StoragePathLT applies the LT predicate on the "storage_path" field.
func StoragePathLT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLT(FieldStoragePath, v))
}

// StoragePathLTE applies the LTE predicate on the "storage_path" field.
func StoragePathLTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLTE(FieldStoragePath, v))
}

// StoragePathContains applies the Contains predicate on the "storage_path" field.
func StoragePathContains(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContains(FieldStoragePath, v))
}

// StoragePathHasPrefix applies the HasPrefix predicate on the "storage_path" field.
func StoragePathHasPrefix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasPrefix(FieldStoragePath, v))
}

// StoragePathHasSuffix applies the HasSuffix predicate on the "storage_path" field.
func StoragePathHasSuffix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasSuffix(FieldStoragePath, v))
}

// StoragePathEqualFold applies the EqualFold predicate on the "storage_path" field.
func StoragePathEqualFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEqualFold(FieldStoragePath, v))
}

// StoragePathContainsFold applies the ContainsFold predicate on the "storage_path" field.
func StoragePathContainsFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContainsFold(FieldStoragePath, v))
}

// ThumbnailPathEQ applies the EQ predicate on the "thumbnail_path" field.
func ThumbnailPathEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldThumbnailPath, v))
}

// ThumbnailPathNEQ applies the NEQ predicate on the "thumbnail_path" field.
func ThumbnailPathNEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldThumbnailPath, v))
}

// ThumbnailPathIn applies the In predicate on the "thumbnail_path" field.
func ThumbnailPathIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldThumbnailPath, vs...))
}

// ThumbnailPathNotIn applies the NotIn predicate on the "thumbnail_path" field.
func ThumbnailPathNotIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldThumbnailPath, vs...))
}

// ThumbnailPathGT applies the GT predicate on the "thumbnail_path" field.
func ThumbnailPathGT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGT(FieldThumbnailPath, v))
}

// ThumbnailPathGTE applies the GTE predicate on the "thumbnail_path" field.
func ThumbnailPathGTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGTE(FieldThumbnailPath, v))
}

// ThumbnailPathLT applies the LT predicate on the "thumbnail_path" field.
func ThumbnailPathLT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLT(FieldThumbnailPath, v))
}

// ThumbnailPathLTE applies the LTE predicate on the "thumbnail_path" field.
func ThumbnailPathLTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLTE(FieldThumbnailPath, v))
}

// ThumbnailPathContains applies the Contains predicate on the "thumbnail_path" field.
func ThumbnailPathContains(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContains(FieldThumbnailPath, v))
}

// ThumbnailPathHasPrefix applies the HasPrefix predicate on the "thumbnail_path" field.
func ThumbnailPathHasPrefix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasPrefix(FieldThumbnailPath, v))
}

// ThumbnailPathHasSuffix applies the HasSuffix predicate on the "thumbnail_path" field.
func ThumbnailPathHasSuffix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasSuffix(FieldThumbnailPath, v))
}

// ThumbnailPathIsNil applies the IsNil predicate on the "thumbnail_path" field.
func ThumbnailPathIsNil() predicate.Drawing {
	return predicate.Drawing(sql.FieldIsNull(FieldThumbnailPath))
}

// ThumbnailPathNotNil applies the NotNil predicate on the "thumbnail_path" field.
func ThumbnailPathNotNil() predicate.Drawing {
	return predicate.Drawing(sql.FieldNotNull(FieldThumbnailPath))
}

// ThumbnailPathEqualFold applies the EqualFold predicate on the "thumbnail_path" field.
func ThumbnailPathEqualFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEqualFold(FieldThumbnailPath, v))
}

// ThumbnailPathContainsFold applies the ContainsFold predicate on the "thumbnail_path" field.
func ThumbnailPathContainsFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContainsFold(FieldThumbnailPath, v))
}

// PageNumberEQ applies the EQ predicate on the "page_number" field.
func PageNumberEQ(v int) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldPageNumber, v))
}

// PageNumberNEQ applies the NEQ predicate on the "page_number" field.
func PageNumberNEQ(v int) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldPageNumber, v))
}

// PageNumberIn applies the In predicate on the "page_number" field.
func PageNumberIn(vs ...int) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldPageNumber, vs...))
}

// PageNumberNotIn applies the NotIn predicate on the "page_number" field.
func PageNumberNotIn(vs ...int) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldPageNumber, vs...))
}

// PageNumberGT applies the GT predicate on the "page_number" field.
func PageNumberGT(v int) predicate.Drawing {
	return predicate.Drawing(sql.FieldGT(FieldPageNumber, v))
}

// PageNumberGTE applies the GTE predicate on the "page_number" field.
func PageNumberGTE(v int) predicate.Drawing {
	return predicate.Drawing(sql.FieldGTE(FieldPageNumber, v))
}

// PageNumberLT applies the LT predicate on the "page_number" field.
func PageNumberLT(v int) predicate.Drawing {
	return predicate.Drawing(sql.FieldLT(FieldPageNumber, v))
}

// PageNumberLTE applies the LTE predicate on the "page_number" field.
func PageNumberLTE(v int) predicate.Drawing {
	return predicate.Drawing(sql.FieldLTE(FieldPageNumber, v))
}

// RotationEQ applies the EQ predicate on the "rotation" field.
func RotationEQ(v int) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldRotation, v))
}

// RotationNEQ applies the NEQ predicate on the "rotation" field.
func RotationNEQ(v int) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldRotation, v))
}

// RotationIn applies the In predicate on the "rotation" field.
func RotationIn(vs ...int) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldRotation, vs...))
}

// RotationNotIn applies the NotIn predicate on the "rotation" field.
func RotationNotIn(vs ...int) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldRotation, vs...))
}

// RotationGT applies the GT predicate on the "rotation" field.
func RotationGT(v int) predicate.Drawing {
	return predicate.Drawing(sql.FieldGT(FieldRotation, v))
}

// RotationGTE applies the GTE predicate on the "rotation" field.
func RotationGTE(v int) predicate.Drawing {
	return predicate.Drawing(sql.FieldGTE(FieldRotation, v))
}

// RotationLT applies the LT predicate on the "rotation" field.
func RotationLT(v int) predicate.Drawing {
	return predicate.Drawing(sql.FieldLT(FieldRotation, v))
}

// RotationLTE applies the LTE predicate on the "rotation" field.
func RotationLTE(v int) predicate.Drawing {
	return predicate.Drawing(sql.FieldLTE(FieldRotation, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContainsFold(FieldStatus, v))
}

// ClassificationEQ applies the EQ predicate on the "classification" field.
func ClassificationEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldClassification, v))
}

// ClassificationNEQ applies the NEQ predicate on the "classification" field.
func ClassificationNEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldClassification, v))
}

// ClassificationIn applies the In predicate on the "classification" field.
func ClassificationIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldClassification, vs...))
}

// ClassificationNotIn applies the NotIn predicate on the "classification" field.
func ClassificationNotIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldClassification, vs...))
}

// ClassificationGT applies the GT predicate on the "classification" field.
func ClassificationGT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGT(FieldClassification, v))
}

// ClassificationGTE applies the GTE predicate on the "classification" field.
func ClassificationGTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGTE(FieldClassification, v))
}

// ClassificationLT applies the LT predicate on the "classification" field.
func ClassificationLT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLT(FieldClassification, v))
}

// ClassificationLTE applies the LTE predicate on the "classification" field.
func ClassificationLTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLTE(FieldClassification, v))
}

// ClassificationContains applies the Contains predicate on the "classification" field.
func ClassificationContains(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContains(FieldClassification, v))
}

// ClassificationHasPrefix applies the HasPrefix predicate on the "classification" field.
func ClassificationHasPrefix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasPrefix(FieldClassification, v))
}

// ClassificationHasSuffix applies the HasSuffix predicate on the "classification" field.
func ClassificationHasSuffix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasSuffix(FieldClassification, v))
}

// ClassificationIsNil applies the IsNil predicate on the "classification" field.
func ClassificationIsNil() predicate.Drawing {
	return predicate.Drawing(sql.FieldIsNull(FieldClassification))
}

// ClassificationNotNil applies the NotNil predicate on the "classification" field.
func ClassificationNotNil() predicate.Drawing {
	return predicate.Drawing(sql.FieldNotNull(FieldClassification))
}

// ClassificationEqualFold applies the EqualFold predicate on the "classification" field.
func ClassificationEqualFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEqualFold(FieldClassification, v))
}

// ClassificationContainsFold applies the ContainsFold predicate on the "classification" field.
func ClassificationContainsFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContainsFold(FieldClassification, v))
}

// ClassificationConfidenceEQ applies the EQ predicate on the "classification_confidence" field.
func ClassificationConfidenceEQ(v float64) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldClassificationConfidence, v))
}

// ClassificationConfidenceNEQ applies the NEQ predicate on the "classification_confidence" field.
func ClassificationConfidenceNEQ(v float64) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldClassificationConfidence, v))
}

// ClassificationConfidenceIn applies the In predicate on the "classification_confidence" field.
func ClassificationConfidenceIn(vs ...float64) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldClassificationConfidence, vs...))
}

// ClassificationConfidenceNotIn applies the NotIn predicate on the "classification_confidence" field.
func ClassificationConfidenceNotIn(vs ...float64) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldClassificationConfidence, vs...))
}

// ClassificationConfidenceGT applies the GT predicate on the "classification_confidence" field.
func ClassificationConfidenceGT(v float64) predicate.Drawing {
	return predicate.Drawing(sql.FieldGT(FieldClassificationConfidence, v))
}

// ClassificationConfidenceGTE applies the GTE predicate on the "classification_confidence" field.
func ClassificationConfidenceGTE(v float64) predicate.Drawing {
	return predicate.Drawing(sql.FieldGTE(FieldClassificationConfidence, v))
}

// ClassificationConfidenceLT applies the LT predicate on the "classification_confidence" field.
func ClassificationConfidenceLT(v float64) predicate.Drawing {
	return predicate.Drawing(sql.FieldLT(FieldClassificationConfidence, v))
}

// ClassificationConfidenceLTE applies the LTE predicate on the "classification_confidence" field.
func ClassificationConfidenceLTE(v float64) predicate.Drawing {
	return predicate.Drawing(sql.FieldLTE(FieldClassificationConfidence, v))
}

// ClassificationConfidenceIsNil applies the IsNil predicate on the "classification_confidence" field.
func ClassificationConfidenceIsNil() predicate.Drawing {
	return predicate.Drawing(sql.FieldIsNull(FieldClassificationConfidence))
}

// ClassificationConfidenceNotNil applies the NotNil predicate on the "classification_confidence" field.
func ClassificationConfidenceNotNil() predicate.Drawing {
	return predicate.Drawing(sql.FieldNotNull(FieldClassificationConfidence))
}

// ClassificationReasonEQ applies the EQ predicate on the "classification_reason" field.
func ClassificationReasonEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldClassificationReason, v))
}

// ClassificationReasonNEQ applies the NEQ predicate on the "classification_reason" field.
func ClassificationReasonNEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldClassificationReason, v))
}

// ClassificationReasonIn applies the In predicate on the "classification_reason" field.
func ClassificationReasonIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldClassificationReason, vs...))
}

// ClassificationReasonNotIn applies the NotIn predicate on the "classification_reason" field.
func ClassificationReasonNotIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldClassificationReason, vs...))
}

// ClassificationReasonGT applies the GT predicate on the "classification_reason" field.
func ClassificationReasonGT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGT(FieldClassificationReason, v))
}

// ClassificationReasonGTE applies the GTE predicate on the "classification_reason" field.
func ClassificationReasonGTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGTE(FieldClassificationReason, v))
}

// ClassificationReasonLT applies the LT predicate on the "classification_reason" field.
func ClassificationReasonLT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLT(FieldClassificationReason, v))
}

// ClassificationReasonLTE applies the LTE predicate on the "classification_reason" field.
func ClassificationReasonLTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLTE(FieldClassificationReason, v))
}

// ClassificationReasonContains applies the Contains predicate on the "classification_reason" field.
func ClassificationReasonContains(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContains(FieldClassificationReason, v))
}

// ClassificationReasonHasPrefix applies the HasPrefix predicate on the "classification_reason" field.
func ClassificationReasonHasPrefix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasPrefix(FieldClassificationReason, v))
}

// ClassificationReasonHasSuffix applies the HasSuffix predicate on the "classification_reason" field.
func ClassificationReasonHasSuffix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasSuffix(FieldClassificationReason, v))
}

// ClassificationReasonIsNil applies the IsNil predicate on the "classification_reason" field.
func ClassificationReasonIsNil() predicate.Drawing {
	return predicate.Drawing(sql.FieldIsNull(FieldClassificationReason))
}

// ClassificationReasonNotNil applies the NotNil predicate on the "classification_reason" field.
func ClassificationReasonNotNil() predicate.Drawing {
	return predicate.Drawing(sql.FieldNotNull(FieldClassificationReason))
}

// ClassificationReasonEqualFold applies the EqualFold predicate on the "classification_reason" field.
func ClassificationReasonEqualFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEqualFold(FieldClassificationReason, v))
}

// ClassificationReasonContainsFold applies the ContainsFold predicate on the "classification_reason" field.
func ClassificationReasonContainsFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContainsFold(FieldClassificationReason, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Drawing {
	return predicate.Drawing(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Drawing {
	return predicate.Drawing(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContainsFold(FieldSummary, v))
}

// ShapeFeaturesIsNil applies the IsNil predicate on the "shape_features" field.
func ShapeFeaturesIsNil() predicate.Drawing {
	return predicate.Drawing(sql.FieldIsNull(FieldShapeFeatures))
}

// ShapeFeaturesNotNil applies the NotNil predicate on the "shape_features" field.
func ShapeFeaturesNotNil() predicate.Drawing {
	return predicate.Drawing(sql.FieldNotNull(FieldShapeFeatures))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Drawing {
	return predicate.Drawing(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Drawing {
	return predicate.Drawing(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContainsFold(FieldCreatedBy, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldLTE(FieldUploadedAt, v))
}

// AnalyzedAtEQ applies the EQ predicate on the "analyzed_at" field.
func AnalyzedAtEQ(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldAnalyzedAt, v))
}

// AnalyzedAtNEQ applies the NEQ predicate on the "analyzed_at" field.
func AnalyzedAtNEQ(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldAnalyzedAt, v))
}

// AnalyzedAtIn applies the In predicate on the "analyzed_at" field.
func AnalyzedAtIn(vs ...time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldAnalyzedAt, vs...))
}

// AnalyzedAtNotIn applies the NotIn predicate on the "analyzed_at" field.
func AnalyzedAtNotIn(vs ...time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldAnalyzedAt, vs...))
}

// AnalyzedAtGT applies the GT predicate on the "analyzed_at" field.
func AnalyzedAtGT(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldGT(FieldAnalyzedAt, v))
}

// AnalyzedAtGTE applies the GTE predicate on the "analyzed_at" field.
func AnalyzedAtGTE(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldGTE(FieldAnalyzedAt, v))
}

// AnalyzedAtLT applies the LT predicate on the "analyzed_at" field.
func AnalyzedAtLT(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldLT(FieldAnalyzedAt, v))
}

// AnalyzedAtLTE applies the LTE predicate on the "analyzed_at" field.
func AnalyzedAtLTE(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldLTE(FieldAnalyzedAt, v))
}

// AnalyzedAtIsNil applies the IsNil predicate on the "analyzed_at" field.
func AnalyzedAtIsNil() predicate.Drawing {
	return predicate.Drawing(sql.FieldIsNull(FieldAnalyzedAt))
}

// AnalyzedAtNotNil applies the NotNil predicate on the "analyzed_at" field.
func AnalyzedAtNotNil() predicate.Drawing {
	return predicate.Drawing(sql.FieldNotNull(FieldAnalyzedAt))
}

// ApprovedAtEQ applies the EQ predicate on the "approved_at" field.
func ApprovedAtEQ(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldApprovedAt, v))
}

// ApprovedAtNEQ applies the NEQ predicate on the "approved_at" field.
func ApprovedAtNEQ(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldApprovedAt, v))
}

// ApprovedAtIn applies the In predicate on the "approved_at" field.
func ApprovedAtIn(vs ...time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldApprovedAt, vs...))
}

// ApprovedAtNotIn applies the NotIn predicate on the "approved_at" field.
func ApprovedAtNotIn(vs ...time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldApprovedAt, vs...))
}

// ApprovedAtGT applies the GT predicate on the "approved_at" field.
func ApprovedAtGT(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldGT(FieldApprovedAt, v))
}

// ApprovedAtGTE applies the GTE predicate on the "approved_at" field.
func ApprovedAtGTE(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldGTE(FieldApprovedAt, v))
}

// ApprovedAtLT applies the LT predicate on the "approved_at" field.
func ApprovedAtLT(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldLT(FieldApprovedAt, v))
}

// ApprovedAtLTE applies the LTE predicate on the "approved_at" field.
func ApprovedAtLTE(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldLTE(FieldApprovedAt, v))
}

// ApprovedAtIsNil applies the IsNil predicate on the "approved_at" field.
func ApprovedAtIsNil() predicate.Drawing {
	return predicate.Drawing(sql.FieldIsNull(FieldApprovedAt))
}

// ApprovedAtNotNil applies the NotNil predicate on the "approved_at" field.
func ApprovedAtNotNil() predicate.Drawing {
	return predicate.Drawing(sql.FieldNotNull(FieldApprovedAt))
}

// HasFields applies the HasEdge predicate on the "fields" edge.
func HasFields() predicate.Drawing {
	return predicate.Drawing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FieldsTable, FieldsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFieldsWith applies the HasEdge predicate on the "fields" edge with a given conditions (other predicates).
func HasFieldsWith(preds ...predicate.ExtractedField) predicate.Drawing {
	return predicate.Drawing(func(s *sql.Selector) {
		step := newFieldsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBalloons applies the HasEdge predicate on the "balloons" edge.
func HasBalloons() predicate.Drawing {
	return predicate.Drawing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BalloonsTable, BalloonsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBalloonsWith applies the HasEdge predicate on the "balloons" edge with a given conditions (other predicates).
func HasBalloonsWith(preds ...predicate.Balloon) predicate.Drawing {
	return predicate.Drawing(func(s *sql.Selector) {
		step := newBalloonsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRevisions applies the HasEdge predicate on the "revisions" edge.
func HasRevisions() predicate.Drawing {
	return predicate.Drawing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RevisionsTable, RevisionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRevisionsWith applies the HasEdge predicate on the "revisions" edge with a given conditions (other predicates).
func HasRevisionsWith(preds ...predicate.Revision) predicate.Drawing {
	return predicate.Drawing(func(s *sql.Selector) {
		step := newRevisionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Drawing) predicate.Drawing {
	return predicate.Drawing(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Drawing) predicate.Drawing {
	return predicate.Drawing(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Drawing) predicate.Drawing {
	return predicate.Drawing(sql.NotPredicates(p))
}
