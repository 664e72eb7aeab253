package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/takuya-okamoto/zumenkan/constants"
	"github.com/takuya-okamoto/zumenkan/gen/ent"
	"github.com/takuya-okamoto/zumenkan/gen/ent/balloon"
	"github.com/takuya-okamoto/zumenkan/gen/ent/drawing"
	"github.com/takuya-okamoto/zumenkan/gen/ent/extractedfield"
	"github.com/takuya-okamoto/zumenkan/gen/ent/revision"
	"github.com/takuya-okamoto/zumenkan/internal/common"
	"github.com/takuya-okamoto/zumenkan/internal/entity"
	"github.com/takuya-okamoto/zumenkan/internal/utils"
)

// CreateDrawingRequest wraps parameters for registering one drawing page.
type CreateDrawingRequest struct {
	OriginalFilename string
	PDFFilename      string
	StoragePath      string
	PageNumber       int
	CreatedBy        string
}

// FieldInput is one extracted field to persist.
type FieldInput struct {
	Name       string
	Value      string
	Confidence float64
	X, Y       int
	Width      int
	Height     int
}

// BalloonInput is one part callout to persist.
type BalloonInput struct {
	BalloonNumber int
	PartName      string
	Quantity      int
	Confidence    float64
	X, Y          int
}

// RevisionInput is one revision-history row to persist.
type RevisionInput struct {
	RevisionNumber string
	Date           string
	Description    string
	Author         string
	Confidence     float64
}

// ClassificationInput is the classification verdict to persist.
type ClassificationInput struct {
	Classification constants.Classification
	Confidence     float64
	Reason         string
}

type ListFilter struct {
	Status    *constants.DrawingStatus
	CreatedBy string
	FromDate  *time.Time
	ToDate    *time.Time
}

type DrawingRepository interface {
	Create(ctx context.Context, req *CreateDrawingRequest) (*entity.Drawing, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Drawing, error)
	List(ctx context.Context, filter ListFilter) ([]*entity.Drawing, error)

	// UpdateStatus enforces the drawing lifecycle; illegal transitions fail
	// without touching the row.
	UpdateStatus(ctx context.Context, id uuid.UUID, next constants.DrawingStatus) (*entity.Drawing, error)
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error

	SetRotation(ctx context.Context, id uuid.UUID, rotation int) error
	SetStoragePath(ctx context.Context, id uuid.UUID, storagePath, pdfFilename string) error
	SetThumbnailPath(ctx context.Context, id uuid.UUID, thumbnailPath string) error

	SaveFields(ctx context.Context, id uuid.UUID, fields []FieldInput) error
	SetClassification(ctx context.Context, id uuid.UUID, in ClassificationInput) error
	SaveBalloons(ctx context.Context, id uuid.UUID, balloons []BalloonInput) error
	SaveRevisions(ctx context.Context, id uuid.UUID, revisions []RevisionInput) error
	SetSummary(ctx context.Context, id uuid.UUID, summary string, shapeFeatures json.RawMessage) error

	// ClearChildren deletes all extraction results for a drawing ahead of
	// re-analysis.
	ClearChildren(ctx context.Context, id uuid.UUID) error

	ListFields(ctx context.Context, id uuid.UUID) ([]*entity.ExtractedField, error)
	ListBalloons(ctx context.Context, id uuid.UUID) ([]*entity.Balloon, error)
	ListRevisions(ctx context.Context, id uuid.UUID) ([]*entity.Revision, error)
}

type drawingRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDrawingRepository(client *ent.Client, logger *slog.Logger) DrawingRepository {
	return &drawingRepository{
		client: client,
		logger: logger,
	}
}

func (r *drawingRepository) Create(ctx context.Context, req *CreateDrawingRequest) (*entity.Drawing, error) {
	row, err := r.client.Drawing.Create().
		SetOriginalFilename(req.OriginalFilename).
		SetPdfFilename(req.PDFFilename).
		SetStoragePath(req.StoragePath).
		SetPageNumber(req.PageNumber).
		SetCreatedBy(req.CreatedBy).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create drawing", "filename", req.OriginalFilename, "error", err)
		return nil, common.WrapError(common.ErrDatabase, err, "creating drawing")
	}
	return utils.ToDrawing(row), nil
}

func (r *drawingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Drawing, error) {
	row, err := r.client.Drawing.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.WrapError(common.ErrNotFound, err, fmt.Sprintf("drawing %s", id))
		}
		return nil, common.WrapError(common.ErrDatabase, err, "loading drawing")
	}
	return utils.ToDrawing(row), nil
}

func (r *drawingRepository) List(ctx context.Context, filter ListFilter) ([]*entity.Drawing, error) {
	q := r.client.Drawing.Query()
	if filter.Status != nil {
		q = q.Where(drawing.Status(string(*filter.Status)))
	}
	if filter.CreatedBy != "" {
		q = q.Where(drawing.CreatedBy(filter.CreatedBy))
	}
	if filter.FromDate != nil {
		q = q.Where(drawing.UploadedAtGTE(*filter.FromDate))
	}
	if filter.ToDate != nil {
		q = q.Where(drawing.UploadedAtLTE(*filter.ToDate))
	}
	rows, err := q.Order(drawing.ByUploadedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list drawings", "error", err)
		return nil, common.WrapError(common.ErrDatabase, err, "listing drawings")
	}

	result := make([]*entity.Drawing, len(rows))
	for i, row := range rows {
		result[i] = utils.ToDrawing(row)
	}
	return result, nil
}

func (r *drawingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, next constants.DrawingStatus) (*entity.Drawing, error) {
	row, err := r.client.Drawing.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.WrapError(common.ErrNotFound, err, fmt.Sprintf("drawing %s", id))
		}
		return nil, common.WrapError(common.ErrDatabase, err, "loading drawing")
	}

	current := constants.DrawingStatus(row.Status)
	if !current.CanTransition(next) {
		return nil, common.NewAppError("INVALID_TRANSITION",
			fmt.Sprintf("illegal status transition %s -> %s", current, next),
			common.ErrInvalidInput)
	}

	upd := row.Update().SetStatus(string(next))
	switch next {
	case constants.StatusApproved:
		upd = upd.SetApprovedAt(time.Now())
	case constants.StatusUnapproved:
		if current == constants.StatusAnalyzing {
			upd = upd.SetAnalyzedAt(time.Now()).ClearErrorMessage()
		} else {
			upd = upd.ClearApprovedAt()
		}
	case constants.StatusPending:
		upd = upd.ClearAnalyzedAt().ClearApprovedAt().ClearErrorMessage()
	}

	row, err = upd.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update status", "drawing_id", id, "status", next, "error", err)
		return nil, common.WrapError(common.ErrDatabase, err, "updating status")
	}
	r.logger.Info("status updated", "drawing_id", id, "from", current, "to", next)
	return utils.ToDrawing(row), nil
}

func (r *drawingRepository) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	err := r.client.Drawing.UpdateOneID(id).
		SetStatus(string(constants.StatusFailed)).
		SetErrorMessage(message).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark drawing failed", "drawing_id", id, "error", err)
		return common.WrapError(common.ErrDatabase, err, "marking drawing failed")
	}
	return nil
}

func (r *drawingRepository) SetRotation(ctx context.Context, id uuid.UUID, rotation int) error {
	err := r.client.Drawing.UpdateOneID(id).SetRotation(rotation).Exec(ctx)
	if err != nil {
		return common.WrapError(common.ErrDatabase, err, "updating rotation")
	}
	return nil
}

func (r *drawingRepository) SetStoragePath(ctx context.Context, id uuid.UUID, storagePath, pdfFilename string) error {
	err := r.client.Drawing.UpdateOneID(id).
		SetStoragePath(storagePath).
		SetPdfFilename(pdfFilename).
		Exec(ctx)
	if err != nil {
		return common.WrapError(common.ErrDatabase, err, "updating storage path")
	}
	return nil
}

func (r *drawingRepository) SetThumbnailPath(ctx context.Context, id uuid.UUID, thumbnailPath string) error {
	err := r.client.Drawing.UpdateOneID(id).SetThumbnailPath(thumbnailPath).Exec(ctx)
	if err != nil {
		return common.WrapError(common.ErrDatabase, err, "updating thumbnail path")
	}
	return nil
}

func (r *drawingRepository) SaveFields(ctx context.Context, id uuid.UUID, fields []FieldInput) error {
	builders := make([]*ent.ExtractedFieldCreate, len(fields))
	for i, f := range fields {
		builders[i] = r.client.ExtractedField.Create().
			SetDrawingID(id).
			SetName(f.Name).
			SetValue(f.Value).
			SetConfidence(f.Confidence).
			SetX(f.X).
			SetY(f.Y).
			SetWidth(f.Width).
			SetHeight(f.Height)
	}
	if err := r.client.ExtractedField.CreateBulk(builders...).Exec(ctx); err != nil {
		r.logger.Error("failed to save fields", "drawing_id", id, "error", err)
		return common.WrapError(common.ErrDatabase, err, "saving extracted fields")
	}
	return nil
}

func (r *drawingRepository) SetClassification(ctx context.Context, id uuid.UUID, in ClassificationInput) error {
	err := r.client.Drawing.UpdateOneID(id).
		SetClassification(string(in.Classification)).
		SetClassificationConfidence(in.Confidence).
		SetClassificationReason(in.Reason).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to save classification", "drawing_id", id, "error", err)
		return common.WrapError(common.ErrDatabase, err, "saving classification")
	}
	return nil
}

func (r *drawingRepository) SaveBalloons(ctx context.Context, id uuid.UUID, balloons []BalloonInput) error {
	builders := make([]*ent.BalloonCreate, len(balloons))
	for i, b := range balloons {
		builders[i] = r.client.Balloon.Create().
			SetDrawingID(id).
			SetBalloonNumber(b.BalloonNumber).
			SetPartName(b.PartName).
			SetQuantity(b.Quantity).
			SetConfidence(b.Confidence).
			SetX(b.X).
			SetY(b.Y)
	}
	if err := r.client.Balloon.CreateBulk(builders...).Exec(ctx); err != nil {
		r.logger.Error("failed to save balloons", "drawing_id", id, "error", err)
		return common.WrapError(common.ErrDatabase, err, "saving balloons")
	}
	return nil
}

func (r *drawingRepository) SaveRevisions(ctx context.Context, id uuid.UUID, revisions []RevisionInput) error {
	builders := make([]*ent.RevisionCreate, len(revisions))
	for i, rev := range revisions {
		builders[i] = r.client.Revision.Create().
			SetDrawingID(id).
			SetRevisionNumber(rev.RevisionNumber).
			SetDate(rev.Date).
			SetDescription(rev.Description).
			SetAuthor(rev.Author).
			SetConfidence(rev.Confidence)
	}
	if err := r.client.Revision.CreateBulk(builders...).Exec(ctx); err != nil {
		r.logger.Error("failed to save revisions", "drawing_id", id, "error", err)
		return common.WrapError(common.ErrDatabase, err, "saving revisions")
	}
	return nil
}

func (r *drawingRepository) SetSummary(ctx context.Context, id uuid.UUID, summary string, shapeFeatures json.RawMessage) error {
	upd := r.client.Drawing.UpdateOneID(id).SetSummary(summary)
	if len(shapeFeatures) > 0 {
		upd = upd.SetShapeFeatures(shapeFeatures)
	}
	if err := upd.Exec(ctx); err != nil {
		return common.WrapError(common.ErrDatabase, err, "saving summary")
	}
	return nil
}

func (r *drawingRepository) ClearChildren(ctx context.Context, id uuid.UUID) error {
	if _, err := r.client.ExtractedField.Delete().
		Where(extractedfield.DrawingID(id)).Exec(ctx); err != nil {
		return common.WrapError(common.ErrDatabase, err, "clearing extracted fields")
	}
	if _, err := r.client.Balloon.Delete().
		Where(balloon.DrawingID(id)).Exec(ctx); err != nil {
		return common.WrapError(common.ErrDatabase, err, "clearing balloons")
	}
	if _, err := r.client.Revision.Delete().
		Where(revision.DrawingID(id)).Exec(ctx); err != nil {
		return common.WrapError(common.ErrDatabase, err, "clearing revisions")
	}
	r.logger.Info("cleared extraction results", "drawing_id", id)
	return nil
}

func (r *drawingRepository) ListFields(ctx context.Context, id uuid.UUID) ([]*entity.ExtractedField, error) {
	rows, err := r.client.ExtractedField.Query().
		Where(extractedfield.DrawingID(id)).
		Order(extractedfield.ByName()).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, err, "listing extracted fields")
	}
	result := make([]*entity.ExtractedField, len(rows))
	for i, row := range rows {
		result[i] = utils.ToExtractedField(row)
	}
	return result, nil
}

func (r *drawingRepository) ListBalloons(ctx context.Context, id uuid.UUID) ([]*entity.Balloon, error) {
	rows, err := r.client.Balloon.Query().
		Where(balloon.DrawingID(id)).
		Order(balloon.ByBalloonNumber()).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, err, "listing balloons")
	}
	result := make([]*entity.Balloon, len(rows))
	for i, row := range rows {
		result[i] = utils.ToBalloon(row)
	}
	return result, nil
}

func (r *drawingRepository) ListRevisions(ctx context.Context, id uuid.UUID) ([]*entity.Revision, error) {
	rows, err := r.client.Revision.Query().
		Where(revision.DrawingID(id)).
		Order(revision.ByRevisionNumber()).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, err, "listing revisions")
	}
	result := make([]*entity.Revision, len(rows))
	for i, row := range rows {
		result[i] = utils.ToRevision(row)
	}
	return result, nil
}
