package ingest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/takuya-okamoto/zumenkan/constants"
	"github.com/takuya-okamoto/zumenkan/internal/async"
	"github.com/takuya-okamoto/zumenkan/internal/entity"
	"github.com/takuya-okamoto/zumenkan/internal/pdfops"
	"github.com/takuya-okamoto/zumenkan/internal/progress"
	"github.com/takuya-okamoto/zumenkan/internal/repository"
	"github.com/takuya-okamoto/zumenkan/internal/storage"
)

// Controller receives uploaded drawing files, converts and splits them into
// per-page artifacts, registers one Drawing per page and hands the pages to
// the analysis queue.
type Controller struct {
	repo   repository.DrawingRepository
	engine *pdfops.Engine
	store  *storage.Store
	queue  async.Queue
	sink   progress.Sink
	logger *slog.Logger
}

func NewController(
	repo repository.DrawingRepository,
	engine *pdfops.Engine,
	store *storage.Store,
	queue async.Queue,
	sink progress.Sink,
	logger *slog.Logger,
) *Controller {
	if sink == nil {
		sink = progress.NewNoopSink()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		repo:   repo,
		engine: engine,
		store:  store,
		queue:  queue,
		sink:   sink,
		logger: logger,
	}
}

// Request wraps one incoming file.
type Request struct {
	Filename    string
	Data        io.Reader
	CreatedBy   string
	RunAnalysis bool
}

// Ingest stores an uploaded file and creates one Drawing per page. When
// RunAnalysis is set the pages are queued for the pipeline and start in
// "pending"; otherwise they are registered as "unapproved" directly.
func (c *Controller) Ingest(ctx context.Context, req Request) ([]*entity.Drawing, error) {
	ext := constants.NormalizeExt(filepath.Ext(req.Filename))
	if !constants.AllowedExtensions[ext] {
		return nil, fmt.Errorf("unsupported or missing extension: %q", ext)
	}

	uploadPath, err := c.store.SaveUpload(req.Filename, req.Data)
	if err != nil {
		return nil, err
	}
	c.logger.Info("upload received", "filename", req.Filename, "path", uploadPath)
	c.sink.Publish(ctx, progress.Event{
		Filename: req.Filename,
		Stage:    "upload",
		Message:  "ファイルを受け付けました",
		Level:    progress.LevelInfo,
	})

	// everything downstream speaks PDF
	pdfPath := uploadPath
	if constants.TiffExtensions[ext] {
		converted := uploadPath + ".pdf"
		if err := c.engine.ConvertTIFF(uploadPath, converted); err != nil {
			return nil, fmt.Errorf("convert tiff: %w", err)
		}
		pdfPath = converted
	}

	pages, err := c.splitIntoArtifacts(pdfPath)
	if err != nil {
		return nil, err
	}

	status := constants.StatusPending
	if !req.RunAnalysis {
		status = constants.StatusUnapproved
	}

	drawings := make([]*entity.Drawing, len(pages))
	for i, artifact := range pages {
		d, err := c.repo.Create(ctx, &repository.CreateDrawingRequest{
			OriginalFilename: req.Filename,
			PDFFilename:      filepath.Base(artifact),
			StoragePath:      artifact,
			PageNumber:       i,
			CreatedBy:        req.CreatedBy,
		})
		if err != nil {
			return drawings[:i], err
		}
		if status != constants.StatusPending {
			if _, err := c.repo.UpdateStatus(ctx, d.ID, status); err != nil {
				return drawings[:i], err
			}
			d.Status = status
		}
		drawings[i] = d
		c.logger.Info("drawing created",
			"drawing_id", d.ID, "page", i+1, "pages", len(pages))
	}

	c.makeThumbnails(ctx, drawings)

	if req.RunAnalysis {
		for _, d := range drawings {
			if err := c.queue.Enqueue(ctx, async.Job{DrawingID: d.ID}); err != nil {
				c.logger.Error("failed to enqueue drawing", "drawing_id", d.ID, "error", err)
			}
		}
	}

	c.sink.Publish(ctx, progress.Event{
		Filename: req.Filename,
		Stage:    "upload",
		Message:  fmt.Sprintf("%dページを登録しました", len(drawings)),
		Level:    progress.LevelSuccess,
	})
	return drawings, nil
}

// splitIntoArtifacts optimizes the uploaded PDF and splits it so every page
// owns its own single-page artifact under drawings/.
func (c *Controller) splitIntoArtifacts(pdfPath string) ([]string, error) {
	tmpDir, err := os.MkdirTemp("", "zumenkan-split-*")
	if err != nil {
		return nil, err
	}
	defer func(path string) {
		err := os.RemoveAll(path)
		if err != nil {
			c.logger.Warn("failed to remove temp dir", "path", path, "error", err)
		}
	}(tmpDir)

	optimized := filepath.Join(tmpDir, "optimized.pdf")
	if err := c.engine.Optimize(pdfPath, optimized); err != nil {
		return nil, err
	}

	count, err := c.engine.PageCount(optimized)
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, fmt.Errorf("document has no pages")
	}

	var pages []string
	if count == 1 {
		pages = []string{optimized}
	} else {
		if pages, err = c.engine.SplitPages(optimized, tmpDir); err != nil {
			return nil, err
		}
	}

	artifacts := make([]string, len(pages))
	for i, p := range pages {
		dst := c.store.NewDrawingPath()
		if err := copyFile(p, dst); err != nil {
			return nil, fmt.Errorf("store page %d: %w", i+1, err)
		}
		artifacts[i] = dst
	}
	return artifacts, nil
}

// makeThumbnails renders the initial thumbnails concurrently. A failed
// thumbnail never fails the ingest.
func (c *Controller) makeThumbnails(ctx context.Context, drawings []*entity.Drawing) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, d := range drawings {
		g.Go(func() error {
			png, err := c.engine.RenderPageAt(ctx, d.StoragePath, 72)
			if err != nil {
				c.logger.Warn("thumbnail render failed", "drawing_id", d.ID, "error", err)
				return nil
			}
			thumb, err := storage.MakeThumbnail(png, 480)
			if err != nil {
				c.logger.Warn("thumbnail scale failed", "drawing_id", d.ID, "error", err)
				return nil
			}
			path, err := c.store.SaveThumbnail(d.StoragePath, thumb)
			if err != nil {
				c.logger.Warn("thumbnail save failed", "drawing_id", d.ID, "error", err)
				return nil
			}
			if err := c.repo.SetThumbnailPath(ctx, d.ID, path); err != nil {
				c.logger.Warn("failed to record thumbnail", "drawing_id", d.ID, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// IngestFile opens path and runs Ingest on it. Used by the intake watcher
// and the batch CLI, where uploads arrive as files rather than streams.
func (c *Controller) IngestFile(ctx context.Context, path, createdBy string, runAnalysis bool) ([]*entity.Drawing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return c.Ingest(ctx, Request{
		Filename:    filepath.Base(path),
		Data:        f,
		CreatedBy:   createdBy,
		RunAnalysis: runAnalysis,
	})
}

// Reanalyze resets a drawing to pending, discards its extracted children
// and queues it for a fresh run.
func (c *Controller) Reanalyze(ctx context.Context, d *entity.Drawing) error {
	if _, err := c.repo.UpdateStatus(ctx, d.ID, constants.StatusPending); err != nil {
		return err
	}
	if err := c.repo.ClearChildren(ctx, d.ID); err != nil {
		return err
	}
	return c.queue.Enqueue(ctx, async.Job{DrawingID: d.ID})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
