package rotation

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/takuya-okamoto/zumenkan/internal/ai"
	"github.com/takuya-okamoto/zumenkan/internal/pdfops"
	"github.com/takuya-okamoto/zumenkan/internal/storage"
)

// Normalizer makes a page's stored content match 0 degrees visual
// orientation. The rotation metadata scanners write is advisory only; the
// model's judgment on the raw raster wins whenever it is confident enough.
type Normalizer struct {
	engine *pdfops.Engine
	client ai.Client
	store  *storage.Store

	// adopt the model's angle when its confidence reaches this value,
	// otherwise fall back to the metadata angle
	threshold float64
	logger    *slog.Logger
}

func NewNormalizer(engine *pdfops.Engine, client ai.Client, store *storage.Store, threshold float64, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{
		engine:    engine,
		client:    client,
		store:     store,
		threshold: threshold,
		logger:    logger,
	}
}

// Result reports what the normalizer did to one page.
type Result struct {
	MetadataAngle int
	AIAngle       int
	AIConfidence  float64
	AdoptedAngle  int
	Rewritten     bool
}

// Normalize corrects the orientation of a single-page PDF in place. The
// corrected file replaces the original atomically; afterwards the page
// carries no rotation metadata and its content renders upright.
//
// Running Normalize on an already-normalized page is a no-op: metadata is 0
// and the model reports 0 with high confidence.
func (n *Normalizer) Normalize(ctx context.Context, artifactPath string) (Result, error) {
	var res Result

	meta, err := n.engine.MetadataRotation(ctx, artifactPath)
	if err != nil {
		// advisory input only; keep going without it
		n.logger.Warn("failed to read rotation metadata", "path", artifactPath, "error", err)
		meta = 0
	}
	res.MetadataAngle = meta

	rawPNG, err := n.rawRaster(ctx, artifactPath, meta)
	if err != nil {
		return res, fmt.Errorf("render page for rotation: %w", err)
	}

	adopted := meta
	judgment, err := n.client.DetectRotation(ctx, rawPNG)
	switch {
	case err == nil:
		res.AIAngle = judgment.Angle
		res.AIConfidence = judgment.Confidence
		if judgment.Confidence >= n.threshold {
			adopted = judgment.Angle
		} else {
			n.logger.Info("rotation judgment below threshold, using metadata",
				"ai_angle", judgment.Angle,
				"ai_confidence", judgment.Confidence,
				"metadata_angle", meta,
			)
		}
	case ai.IsAuthExpired(err):
		// credentials are gone; nothing downstream can run either
		return res, err
	default:
		n.logger.Warn("rotation detection failed, falling back to metadata",
			"metadata_angle", meta, "error", err)
	}
	res.AdoptedAngle = adopted

	if adopted == 0 && meta == 0 {
		n.logger.Debug("page already normalized", "path", artifactPath)
		return res, nil
	}

	// flatten to the raw raster (drops the metadata), then rotate the
	// content itself by the adopted angle
	final := rawPNG
	if adopted != 0 {
		img, err := pdfops.DecodePNG(rawPNG)
		if err != nil {
			return res, err
		}
		rotated, err := pdfops.RotateRaster(img, adopted)
		if err != nil {
			return res, err
		}
		if final, err = pdfops.EncodePNG(rotated); err != nil {
			return res, err
		}
	}

	err = n.store.ReplaceAtomic(artifactPath, func(tmpPath string) error {
		tmpDir, err := os.MkdirTemp("", "zumenkan-flatten-*")
		if err != nil {
			return err
		}
		defer os.RemoveAll(tmpDir)

		pngPath := filepath.Join(tmpDir, "page.png")
		if err := os.WriteFile(pngPath, final, 0o644); err != nil {
			return err
		}
		return n.engine.RebuildFromImage(pngPath, tmpPath)
	})
	if err != nil {
		return res, fmt.Errorf("rewrite normalized page: %w", err)
	}

	res.Rewritten = true
	n.logger.Info("page normalized",
		"path", filepath.Base(artifactPath),
		"metadata_angle", meta,
		"ai_angle", res.AIAngle,
		"ai_confidence", res.AIConfidence,
		"adopted_angle", adopted,
	)
	return res, nil
}

// rawRaster renders the page as stored, ignoring rotation metadata:
// pdftoppm honors the metadata, so the displayed render is counter-rotated
// back to the raw content orientation.
func (n *Normalizer) rawRaster(ctx context.Context, artifactPath string, meta int) ([]byte, error) {
	displayed, err := n.engine.RenderPage(ctx, artifactPath)
	if err != nil {
		return nil, err
	}
	if meta == 0 {
		return displayed, nil
	}
	img, err := pdfops.DecodePNG(displayed)
	if err != nil {
		return nil, err
	}
	raw, err := pdfops.RotateRaster(img, 360-meta)
	if err != nil {
		return nil, err
	}
	return pdfops.EncodePNG(raw)
}
