package pdfops

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/tiff"
)

// ConvertTIFF decodes a scanned TIFF and rebuilds it as a single-page PDF
// at outPath. Only the first frame of a multi-frame TIFF is kept; the
// scanners feeding this pipeline write one file per sheet.
func (e *Engine) ConvertTIFF(tiffPath, outPath string) error {
	f, err := os.Open(tiffPath)
	if err != nil {
		return err
	}
	defer f.Close()

	img, err := tiff.Decode(f)
	if err != nil {
		return fmt.Errorf("decode tiff %s: %w", filepath.Base(tiffPath), err)
	}

	data, err := EncodePNG(img)
	if err != nil {
		return err
	}

	tmpDir, err := os.MkdirTemp("", "zumenkan-tiff-*")
	if err != nil {
		return err
	}
	defer func(path string) {
		err := os.RemoveAll(path)
		if err != nil {
			e.logger.Warn("failed to remove temp dir", "path", path, "error", err)
		}
	}(tmpDir)

	pngPath := filepath.Join(tmpDir, "page.png")
	if err := os.WriteFile(pngPath, data, 0o644); err != nil {
		return err
	}
	return e.RebuildFromImage(pngPath, outPath)
}
