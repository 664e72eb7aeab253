package entity

import "github.com/google/uuid"

// ExtractedField represents a title-block field for data transfer between layers.
type ExtractedField struct {
	ID         uuid.UUID `json:"id"`
	DrawingID  uuid.UUID `json:"drawing_id"`
	Name       string    `json:"name"`
	Value      string    `json:"value"`
	Confidence float64   `json:"confidence"`
	X          int       `json:"x"`
	Y          int       `json:"y"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
}

// Balloon represents a part callout for data transfer between layers.
type Balloon struct {
	ID            uuid.UUID `json:"id"`
	DrawingID     uuid.UUID `json:"drawing_id"`
	BalloonNumber int       `json:"balloon_number"`
	PartName      string    `json:"part_name,omitempty"`
	Quantity      int       `json:"quantity"`
	Confidence    float64   `json:"confidence"`
	X             int       `json:"x"`
	Y             int       `json:"y"`
}

// Revision represents a revision-history row for data transfer between layers.
type Revision struct {
	ID             uuid.UUID `json:"id"`
	DrawingID      uuid.UUID `json:"drawing_id"`
	RevisionNumber string    `json:"revision_number"`
	Date           string    `json:"date,omitempty"`
	Description    string    `json:"description,omitempty"`
	Author         string    `json:"author,omitempty"`
	Confidence     float64   `json:"confidence"`
}
