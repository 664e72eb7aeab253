package pdfops

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// RenderPage rasterizes a single-page PDF to PNG at the configured DPI.
// pdftoppm honors the page's /Rotate entry, so the output is the page as a
// viewer would display it.
func (e *Engine) RenderPage(ctx context.Context, pdfPath string) ([]byte, error) {
	return e.renderAt(ctx, pdfPath, e.cfg.DPI)
}

// RenderPageAt is RenderPage at an explicit resolution, used for thumbnails.
func (e *Engine) RenderPageAt(ctx context.Context, pdfPath string, dpi int) ([]byte, error) {
	return e.renderAt(ctx, pdfPath, dpi)
}

func (e *Engine) renderAt(ctx context.Context, pdfPath string, dpi int) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "zumenkan-render-*")
	if err != nil {
		return nil, err
	}
	defer func(path string) {
		err := os.RemoveAll(path)
		if err != nil {
			e.logger.Warn("failed to remove temp dir", "path", path, "error", err)
		}
	}(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png -singlefile <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm,
		"-r", strconv.Itoa(dpi), "-png", "-singlefile", pdfPath, prefix)
	if err != nil {
		return nil, fmt.Errorf("pdftoppm %s: %w: %s", filepath.Base(pdfPath), err, truncate(string(errb), 512))
	}

	png, err := os.ReadFile(prefix + ".png")
	if err != nil {
		return nil, fmt.Errorf("pdftoppm produced no image for %s: %w", filepath.Base(pdfPath), err)
	}
	return png, nil
}
