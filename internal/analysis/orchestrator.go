package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/takuya-okamoto/zumenkan/constants"
	"github.com/takuya-okamoto/zumenkan/internal/ai"
	"github.com/takuya-okamoto/zumenkan/internal/common"
	"github.com/takuya-okamoto/zumenkan/internal/entity"
	"github.com/takuya-okamoto/zumenkan/internal/pdfops"
	"github.com/takuya-okamoto/zumenkan/internal/progress"
	"github.com/takuya-okamoto/zumenkan/internal/repository"
	"github.com/takuya-okamoto/zumenkan/internal/rotation"
	"github.com/takuya-okamoto/zumenkan/internal/storage"
)

const thumbnailMaxEdge = 480

// Orchestrator runs the fixed sequence of extraction stages over one
// drawing page. Every stage commits its own results, so a later failure
// keeps what earlier stages produced.
type Orchestrator struct {
	repo       repository.DrawingRepository
	client     ai.Client
	engine     *pdfops.Engine
	store      *storage.Store
	normalizer *rotation.Normalizer
	sink       progress.Sink
	cfg        common.PipelineConfig
	logger     *slog.Logger
}

func NewOrchestrator(
	repo repository.DrawingRepository,
	client ai.Client,
	engine *pdfops.Engine,
	store *storage.Store,
	normalizer *rotation.Normalizer,
	sink progress.Sink,
	cfg common.PipelineConfig,
	logger *slog.Logger,
) *Orchestrator {
	if sink == nil {
		sink = progress.NewNoopSink()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		repo:       repo,
		client:     client,
		engine:     engine,
		store:      store,
		normalizer: normalizer,
		sink:       sink,
		cfg:        cfg,
		logger:     logger,
	}
}

// Analyze runs the full pipeline for one drawing: normalize orientation,
// extract, persist per stage, rename. The drawing ends in "unapproved" on
// success or "failed" on any fatal error. Credential rejection by the model
// provider aborts immediately and is surfaced as an AuthExpiredError.
func (o *Orchestrator) Analyze(ctx context.Context, drawingID uuid.UUID) error {
	// one run id across every model call of this run
	ctx = common.WithRequestID(ctx, uuid.New().String())

	d, err := o.repo.GetByID(ctx, drawingID)
	if err != nil {
		return err
	}
	log := o.logger.With("drawing_id", drawingID, "filename", d.PDFFilename)

	if _, err := o.repo.UpdateStatus(ctx, drawingID, constants.StatusAnalyzing); err != nil {
		return err
	}
	o.publish(ctx, d, "analysis", "解析を開始しました", progress.LevelInfo)

	if err := o.run(ctx, d, log); err != nil {
		if mErr := o.repo.MarkFailed(ctx, drawingID, err.Error()); mErr != nil {
			log.Error("failed to record failure", "error", mErr)
		}
		o.publish(ctx, d, "analysis", "解析に失敗しました: "+err.Error(), progress.LevelError)
		return err
	}

	if _, err := o.repo.UpdateStatus(ctx, drawingID, constants.StatusUnapproved); err != nil {
		return err
	}
	o.publish(ctx, d, "analysis", "解析が完了しました", progress.LevelSuccess)
	return nil
}

func (o *Orchestrator) run(ctx context.Context, d *entity.Drawing, log *slog.Logger) error {
	// stale children from a prior run must be gone before the first stage
	// commits anything
	if err := o.repo.ClearChildren(ctx, d.ID); err != nil {
		return err
	}

	// rotation
	stageStart := time.Now()
	res, err := o.normalizer.Normalize(ctx, d.StoragePath)
	if err != nil {
		return fmt.Errorf("rotation stage: %w", err)
	}
	// post-normalization the page carries no residual angle
	if err := o.repo.SetRotation(ctx, d.ID, 0); err != nil {
		return err
	}
	log.Info("stage done", "stage", "rotation",
		"adopted_angle", res.AdoptedAngle,
		"rewritten", res.Rewritten,
		"elapsed_ms", time.Since(stageStart).Milliseconds(),
	)
	o.publish(ctx, d, "rotation", "向きを補正しました", progress.LevelInfo)

	o.refreshThumbnail(ctx, d, log)

	png, err := o.engine.RenderPage(ctx, d.StoragePath)
	if err != nil {
		return fmt.Errorf("render normalized page: %w", err)
	}

	// fields
	stageStart = time.Now()
	fieldNames := append(append([]string{}, o.cfg.RequiredFields...), o.cfg.OptionalFields...)
	fields, err := o.client.ExtractFields(ctx, png, fieldNames)
	if err != nil {
		// nothing downstream can work without the title block
		return fmt.Errorf("field stage: %w", err)
	}
	inputs := make([]repository.FieldInput, len(fields))
	for i, f := range fields {
		value := f.Value
		if f.Name == o.cfg.DrawingNumberField {
			value = CorrectDrawingNumber(value)
		}
		inputs[i] = repository.FieldInput{
			Name:       f.Name,
			Value:      value,
			Confidence: f.Confidence,
			X:          f.X,
			Y:          f.Y,
			Width:      f.Width,
			Height:     f.Height,
		}
	}
	if err := o.repo.SaveFields(ctx, d.ID, inputs); err != nil {
		return err
	}
	log.Info("stage done", "stage", "fields",
		"count", len(inputs),
		"elapsed_ms", time.Since(stageStart).Milliseconds(),
	)
	o.publish(ctx, d, "fields", fmt.Sprintf("図枠情報を%d件抽出しました", len(inputs)), progress.LevelInfo)

	// classification
	stageStart = time.Now()
	cls, err := o.client.Classify(ctx, png)
	if err != nil {
		return fmt.Errorf("classification stage: %w", err)
	}
	category, known := constants.CanonicalizeClassification(cls.Classification)
	if !known {
		log.Warn("classification label outside category set", "label", cls.Classification)
	}
	if err := o.repo.SetClassification(ctx, d.ID, repository.ClassificationInput{
		Classification: category,
		Confidence:     cls.Confidence,
		Reason:         cls.Reason,
	}); err != nil {
		return err
	}
	log.Info("stage done", "stage", "classification",
		"category", category,
		"confidence", cls.Confidence,
		"elapsed_ms", time.Since(stageStart).Milliseconds(),
	)
	o.publish(ctx, d, "classification", "図面を分類しました: "+string(category), progress.LevelInfo)

	// balloons: a malformed answer contributes nothing instead of failing
	// the run
	stageStart = time.Now()
	balloons, err := o.client.ExtractBalloons(ctx, png)
	switch {
	case err == nil:
		bins := make([]repository.BalloonInput, len(balloons))
		for i, b := range balloons {
			qty := b.Quantity
			if qty <= 0 {
				qty = 1
			}
			bins[i] = repository.BalloonInput{
				BalloonNumber: b.BalloonNumber,
				PartName:      b.PartName,
				Quantity:      qty,
				Confidence:    b.Confidence,
				X:             b.X,
				Y:             b.Y,
			}
		}
		if err := o.repo.SaveBalloons(ctx, d.ID, bins); err != nil {
			return err
		}
		log.Info("stage done", "stage", "balloons",
			"count", len(bins),
			"elapsed_ms", time.Since(stageStart).Milliseconds(),
		)
	case ai.IsMalformed(err):
		log.Warn("balloon stage answer unusable, skipping", "error", err)
	default:
		return fmt.Errorf("balloon stage: %w", err)
	}

	// revisions: same policy as balloons
	stageStart = time.Now()
	revisions, err := o.client.ExtractRevisions(ctx, png)
	switch {
	case err == nil:
		rins := make([]repository.RevisionInput, len(revisions))
		for i, r := range revisions {
			rins[i] = repository.RevisionInput{
				RevisionNumber: r.RevisionNumber,
				Date:           r.Date,
				Description:    r.Description,
				Author:         r.Author,
				Confidence:     r.Confidence,
			}
		}
		if err := o.repo.SaveRevisions(ctx, d.ID, rins); err != nil {
			return err
		}
		log.Info("stage done", "stage", "revisions",
			"count", len(rins),
			"elapsed_ms", time.Since(stageStart).Milliseconds(),
		)
	case ai.IsMalformed(err):
		log.Warn("revision stage answer unusable, skipping", "error", err)
	default:
		return fmt.Errorf("revision stage: %w", err)
	}

	// summary
	stageStart = time.Now()
	sum, err := o.client.Summarize(ctx, png, ai.SummaryContext{
		Fields:         fields,
		Classification: string(category),
	})
	switch {
	case err == nil:
		if err := o.repo.SetSummary(ctx, d.ID, sum.Summary, sum.ShapeFeatures); err != nil {
			return err
		}
		log.Info("stage done", "stage", "summary",
			"elapsed_ms", time.Since(stageStart).Milliseconds(),
		)
	case ai.IsMalformed(err):
		log.Warn("summary stage answer unusable, skipping", "error", err)
	default:
		return fmt.Errorf("summary stage: %w", err)
	}

	o.rename(ctx, d, category, inputs, log)
	return nil
}

// rename applies the canonical filename. It is cosmetic: every failure is
// downgraded to a warning.
func (o *Orchestrator) rename(ctx context.Context, d *entity.Drawing, category constants.Classification, fields []repository.FieldInput, log *slog.Logger) {
	var number, author string
	for _, f := range fields {
		switch f.Name {
		case o.cfg.DrawingNumberField:
			if number == "" {
				number = f.Value
			}
		case o.cfg.AuthorField:
			if author == "" {
				author = f.Value
			}
		}
	}

	name := storage.CanonicalName(d.UploadedAt, string(category), number, author)
	newPath, moved, err := o.store.RenameCanonical(d.StoragePath, name)
	if err != nil {
		log.Warn("canonical rename failed", "wanted", name, "error", err)
		return
	}
	if !moved {
		return
	}
	if err := o.repo.SetStoragePath(ctx, d.ID, newPath, name); err != nil {
		log.Warn("failed to record renamed path", "path", newPath, "error", err)
		return
	}
	if err := o.repo.SetThumbnailPath(ctx, d.ID, o.store.ThumbnailFor(newPath)); err != nil {
		log.Warn("failed to record renamed thumbnail", "error", err)
	}
	d.StoragePath = newPath
	o.publish(ctx, d, "rename", "ファイル名を変更しました: "+name, progress.LevelInfo)
}

// refreshThumbnail regenerates the thumbnail from the normalized page.
// Failure is a warning, never fatal.
func (o *Orchestrator) refreshThumbnail(ctx context.Context, d *entity.Drawing, log *slog.Logger) {
	png, err := o.engine.RenderPageAt(ctx, d.StoragePath, 72)
	if err != nil {
		log.Warn("thumbnail render failed", "error", err)
		o.publish(ctx, d, "thumbnail", "サムネイル生成に失敗しました", progress.LevelWarning)
		return
	}
	thumb, err := storage.MakeThumbnail(png, thumbnailMaxEdge)
	if err != nil {
		log.Warn("thumbnail scale failed", "error", err)
		return
	}
	path, err := o.store.SaveThumbnail(d.StoragePath, thumb)
	if err != nil {
		log.Warn("thumbnail save failed", "error", err)
		return
	}
	if err := o.repo.SetThumbnailPath(ctx, d.ID, path); err != nil {
		log.Warn("failed to record thumbnail path", "error", err)
	}
}

func (o *Orchestrator) publish(ctx context.Context, d *entity.Drawing, stage, message string, level progress.Level) {
	o.sink.Publish(ctx, progress.Event{
		DrawingID: d.ID,
		Filename:  d.PDFFilename,
		Stage:     stage,
		Message:   message,
		Level:     level,
	})
}
