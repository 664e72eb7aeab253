// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/takuya-okamoto/zumenkan/db/ent/schema"
	"github.com/takuya-okamoto/zumenkan/gen/ent/balloon"
	"github.com/takuya-okamoto/zumenkan/gen/ent/drawing"
	"github.com/takuya-okamoto/zumenkan/gen/ent/extractedfield"
	"github.com/takuya-okamoto/zumenkan/gen/ent/revision"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	balloonFields := schema.Balloon{}.Fields()
	_ = balloonFields
	// balloonDescBalloonNumber is the schema descriptor for balloon_number field.
	balloonDescBalloonNumber := balloonFields[2].Descriptor()
	// balloon.BalloonNumberValidator is a validator for the "balloon_number" field. It is called by the builders before save.
	balloon.BalloonNumberValidator = balloonDescBalloonNumber.Validators[0].(func(int) error)
	// balloonDescQuantity is the schema descriptor for quantity field.
	balloonDescQuantity := balloonFields[4].Descriptor()
	// balloon.DefaultQuantity holds the default value on creation for the quantity field.
	balloon.DefaultQuantity = balloonDescQuantity.Default.(int)
	// balloonDescConfidence is the schema descriptor for confidence field.
	balloonDescConfidence := balloonFields[5].Descriptor()
	// balloon.DefaultConfidence holds the default value on creation for the confidence field.
	balloon.DefaultConfidence = balloonDescConfidence.Default.(float64)
	// balloonDescX is the schema descriptor for x field.
	balloonDescX := balloonFields[6].Descriptor()
	// balloon.DefaultX holds the default value on creation for the x field.
	balloon.DefaultX = balloonDescX.Default.(int)
	// balloonDescY is the schema descriptor for y field.
	balloonDescY := balloonFields[7].Descriptor()
	// balloon.DefaultY holds the default value on creation for the y field.
	balloon.DefaultY = balloonDescY.Default.(int)
	// balloonDescID is the schema descriptor for id field.
	balloonDescID := balloonFields[0].Descriptor()
	// balloon.DefaultID holds the default value on creation for the id field.
	balloon.DefaultID = balloonDescID.Default.(func() uuid.UUID)
	drawingFields := schema.Drawing{}.Fields()
	_ = drawingFields
	// drawingDescOriginalFilename is the schema descriptor for original_filename field.
	drawingDescOriginalFilename := drawingFields[1].Descriptor()
	// drawing.OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	drawing.OriginalFilenameValidator = drawingDescOriginalFilename.Validators[0].(func(string) error)
	// drawingDescPdfFilename is the schema descriptor for pdf_filename field.
	drawingDescPdfFilename := drawingFields[2].Descriptor()
	// drawing.PdfFilenameValidator is a validator for the "pdf_filename" field. It is called by the builders before save.
	drawing.PdfFilenameValidator = drawingDescPdfFilename.Validators[0].(func(string) error)
	// drawingDescStoragePath is the schema descriptor for storage_path field.
	drawingDescStoragePath := drawingFields[3].Descriptor()
	// drawing.StoragePathValidator is a validator for the "storage_path" field. It is called by the builders before save.
	drawing.StoragePathValidator = drawingDescStoragePath.Validators[0].(func(string) error)
	// drawingDescPageNumber is the schema descriptor for page_number field.
	drawingDescPageNumber := drawingFields[5].Descriptor()
	// drawing.PageNumberValidator is a validator for the "page_number" field. It is called by the builders before save.
	drawing.PageNumberValidator = drawingDescPageNumber.Validators[0].(func(int) error)
	// drawingDescRotation is the schema descriptor for rotation field.
	drawingDescRotation := drawingFields[6].Descriptor()
	// drawing.DefaultRotation holds the default value on creation for the rotation field.
	drawing.DefaultRotation = drawingDescRotation.Default.(int)
	// drawingDescStatus is the schema descriptor for status field.
	drawingDescStatus := drawingFields[7].Descriptor()
	// drawing.DefaultStatus holds the default value on creation for the status field.
	drawing.DefaultStatus = drawingDescStatus.Default.(string)
	// drawing.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	drawing.StatusValidator = drawingDescStatus.Validators[0].(func(string) error)
	// drawingDescCreatedBy is the schema descriptor for created_by field.
	drawingDescCreatedBy := drawingFields[14].Descriptor()
	// drawing.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	drawing.CreatedByValidator = drawingDescCreatedBy.Validators[0].(func(string) error)
	// drawingDescUploadedAt is the schema descriptor for uploaded_at field.
	drawingDescUploadedAt := drawingFields[15].Descriptor()
	// drawing.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	drawing.DefaultUploadedAt = drawingDescUploadedAt.Default.(func() time.Time)
	// drawingDescID is the schema descriptor for id field.
	drawingDescID := drawingFields[0].Descriptor()
	// drawing.DefaultID holds the default value on creation for the id field.
	drawing.DefaultID = drawingDescID.Default.(func() uuid.UUID)
	extractedfieldFields := schema.ExtractedField{}.Fields()
	_ = extractedfieldFields
	// extractedfieldDescName is the schema descriptor for name field.
	extractedfieldDescName := extractedfieldFields[2].Descriptor()
	// extractedfield.NameValidator is a validator for the "name" field. It is called by the builders before save.
	extractedfield.NameValidator = extractedfieldDescName.Validators[0].(func(string) error)
	// extractedfieldDescConfidence is the schema descriptor for confidence field.
	extractedfieldDescConfidence := extractedfieldFields[4].Descriptor()
	// extractedfield.DefaultConfidence holds the default value on creation for the confidence field.
	extractedfield.DefaultConfidence = extractedfieldDescConfidence.Default.(float64)
	// extractedfieldDescX is the schema descriptor for x field.
	extractedfieldDescX := extractedfieldFields[5].Descriptor()
	// extractedfield.DefaultX holds the default value on creation for the x field.
	extractedfield.DefaultX = extractedfieldDescX.Default.(int)
	// extractedfieldDescY is the schema descriptor for y field.
	extractedfieldDescY := extractedfieldFields[6].Descriptor()
	// extractedfield.DefaultY holds the default value on creation for the y field.
	extractedfield.DefaultY = extractedfieldDescY.Default.(int)
	// extractedfieldDescWidth is the schema descriptor for width field.
	extractedfieldDescWidth := extractedfieldFields[7].Descriptor()
	// extractedfield.DefaultWidth holds the default value on creation for the width field.
	extractedfield.DefaultWidth = extractedfieldDescWidth.Default.(int)
	// extractedfieldDescHeight is the schema descriptor for height field.
	extractedfieldDescHeight := extractedfieldFields[8].Descriptor()
	// extractedfield.DefaultHeight holds the default value on creation for the height field.
	extractedfield.DefaultHeight = extractedfieldDescHeight.Default.(int)
	// extractedfieldDescID is the schema descriptor for id field.
	extractedfieldDescID := extractedfieldFields[0].Descriptor()
	// extractedfield.DefaultID holds the default value on creation for the id field.
	extractedfield.DefaultID = extractedfieldDescID.Default.(func() uuid.UUID)
	revisionFields := schema.Revision{}.Fields()
	_ = revisionFields
	// revisionDescRevisionNumber is the schema descriptor for revision_number field.
	revisionDescRevisionNumber := revisionFields[2].Descriptor()
	// revision.RevisionNumberValidator is a validator for the "revision_number" field. It is called by the builders before save.
	revision.RevisionNumberValidator = revisionDescRevisionNumber.Validators[0].(func(string) error)
	// revisionDescConfidence is the schema descriptor for confidence field.
	revisionDescConfidence := revisionFields[6].Descriptor()
	// revision.DefaultConfidence holds the default value on creation for the confidence field.
	revision.DefaultConfidence = revisionDescConfidence.Default.(float64)
	// revisionDescID is the schema descriptor for id field.
	revisionDescID := revisionFields[0].Descriptor()
	// revision.DefaultID holds the default value on creation for the id field.
	revision.DefaultID = revisionDescID.Default.(func() uuid.UUID)
}
