package utils

import (
	"time"

	"github.com/takuya-okamoto/zumenkan/constants"
	"github.com/takuya-okamoto/zumenkan/gen/ent"
	"github.com/takuya-okamoto/zumenkan/internal/entity"
)

// StrOrEmpty dereferences an optional string for display.
func StrOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToDrawing(e *ent.Drawing) *entity.Drawing {
	d := &entity.Drawing{
		ID:                       e.ID,
		OriginalFilename:         e.OriginalFilename,
		PDFFilename:              e.PdfFilename,
		StoragePath:              e.StoragePath,
		ThumbnailPath:            e.ThumbnailPath,
		PageNumber:               e.PageNumber,
		Rotation:                 e.Rotation,
		Status:                   constants.DrawingStatus(e.Status),
		ClassificationConfidence: e.ClassificationConfidence,
		ClassificationReason:     e.ClassificationReason,
		Summary:                  e.Summary,
		ShapeFeatures:            e.ShapeFeatures,
		ErrorMessage:             e.ErrorMessage,
		CreatedBy:                e.CreatedBy,
		UploadedAt:               e.UploadedAt,
		AnalyzedAt:               e.AnalyzedAt,
		ApprovedAt:               e.ApprovedAt,
	}
	if e.Classification != nil {
		c := constants.Classification(*e.Classification)
		d.Classification = &c
	}
	return d
}

func ToExtractedField(e *ent.ExtractedField) *entity.ExtractedField {
	return &entity.ExtractedField{
		ID:         e.ID,
		DrawingID:  e.DrawingID,
		Name:       e.Name,
		Value:      e.Value,
		Confidence: e.Confidence,
		X:          e.X,
		Y:          e.Y,
		Width:      e.Width,
		Height:     e.Height,
	}
}

func ToBalloon(e *ent.Balloon) *entity.Balloon {
	return &entity.Balloon{
		ID:            e.ID,
		DrawingID:     e.DrawingID,
		BalloonNumber: e.BalloonNumber,
		PartName:      e.PartName,
		Quantity:      e.Quantity,
		Confidence:    e.Confidence,
		X:             e.X,
		Y:             e.Y,
	}
}

func ToRevision(e *ent.Revision) *entity.Revision {
	return &entity.Revision{
		ID:             e.ID,
		DrawingID:      e.DrawingID,
		RevisionNumber: e.RevisionNumber,
		Date:           e.Date,
		Description:    e.Description,
		Author:         e.Author,
		Confidence:     e.Confidence,
	}
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
