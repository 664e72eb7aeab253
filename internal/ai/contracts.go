package ai

import (
	"context"
	"encoding/json"
)

// RotationJudgment is the model's verdict on how a page image should be
// turned so the drawing reads upright. Angle is clockwise degrees, one of
// 0, 90, 180, 270. Confidence is 0..100.
type RotationJudgment struct {
	Angle      int     `json:"angle"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason,omitempty"`
}

// FieldResult is one title-block field as read from the page image.
type FieldResult struct {
	Name       string  `json:"name"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
	X          int     `json:"x,omitempty"`
	Y          int     `json:"y,omitempty"`
	Width      int     `json:"width,omitempty"`
	Height     int     `json:"height,omitempty"`
}

// ClassificationResult is the drawing-type verdict.
type ClassificationResult struct {
	Classification string  `json:"classification"`
	Confidence     float64 `json:"confidence"`
	Reason         string  `json:"reason,omitempty"`
}

// BalloonResult is one numbered part callout.
type BalloonResult struct {
	BalloonNumber int     `json:"balloon_number"`
	PartName      string  `json:"part_name,omitempty"`
	Quantity      int     `json:"quantity,omitempty"`
	Confidence    float64 `json:"confidence"`
	X             int     `json:"x,omitempty"`
	Y             int     `json:"y,omitempty"`
}

// RevisionResult is one row of the revision-history table.
type RevisionResult struct {
	RevisionNumber string  `json:"revision_number"`
	Date           string  `json:"date,omitempty"`
	Description    string  `json:"description,omitempty"`
	Author         string  `json:"author,omitempty"`
	Confidence     float64 `json:"confidence"`
}

// SummaryResult is the free-text summary plus the structured feature map
// describing the drawn geometry.
type SummaryResult struct {
	Summary       string          `json:"summary"`
	ShapeFeatures json.RawMessage `json:"shape_features,omitempty"`
}

// SummaryContext carries previously extracted data into the summary prompt.
type SummaryContext struct {
	Fields         []FieldResult
	Classification string
}

// Client is the vision-model interface the pipeline depends on. Every method
// takes a PNG render of a single page.
type Client interface {
	DetectRotation(ctx context.Context, png []byte) (RotationJudgment, error)
	ExtractFields(ctx context.Context, png []byte, fieldNames []string) ([]FieldResult, error)
	Classify(ctx context.Context, png []byte) (ClassificationResult, error)
	ExtractBalloons(ctx context.Context, png []byte) ([]BalloonResult, error)
	ExtractRevisions(ctx context.Context, png []byte) ([]RevisionResult, error)
	Summarize(ctx context.Context, png []byte, sc SummaryContext) (SummaryResult, error)
}
