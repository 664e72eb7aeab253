package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/takuya-okamoto/zumenkan/constants"
)

// Drawing represents a drawing page for data transfer between layers.
type Drawing struct {
	ID                       uuid.UUID                 `json:"id"`
	OriginalFilename         string                    `json:"original_filename"`
	PDFFilename              string                    `json:"pdf_filename"`
	StoragePath              string                    `json:"storage_path"`
	ThumbnailPath            string                    `json:"thumbnail_path,omitempty"`
	PageNumber               int                       `json:"page_number"`
	Rotation                 int                       `json:"rotation"`
	Status                   constants.DrawingStatus   `json:"status"`
	Classification           *constants.Classification `json:"classification,omitempty"`
	ClassificationConfidence *float64                  `json:"classification_confidence,omitempty"`
	ClassificationReason     string                    `json:"classification_reason,omitempty"`
	Summary                  string                    `json:"summary,omitempty"`
	ShapeFeatures            json.RawMessage           `json:"shape_features,omitempty"`
	ErrorMessage             *string                   `json:"error_message,omitempty"`
	CreatedBy                string                    `json:"created_by"`
	UploadedAt               time.Time                 `json:"uploaded_at"`
	AnalyzedAt               *time.Time                `json:"analyzed_at,omitempty"`
	ApprovedAt               *time.Time                `json:"approved_at,omitempty"`
}

// DrawingNumber returns the value of the drawing-number field, or "" when
// the field was not extracted.
func (d *Drawing) DrawingNumber(fields []*ExtractedField, fieldName string) string {
	for _, f := range fields {
		if f.Name == fieldName {
			return f.Value
		}
	}
	return ""
}
