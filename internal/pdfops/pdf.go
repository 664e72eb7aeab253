package pdfops

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Config names the poppler binaries and the render resolution.
type Config struct {
	Pdftoppm string // binary name or absolute path; if empty -> "pdftoppm"
	Pdfinfo  string // binary name or absolute path; if empty -> "pdfinfo"
	DPI      int    // rasterization DPI, default 300
}

// Engine performs the PDF-level operations of the pipeline. pdfcpu handles
// structural work (page count, split, optimize, image import); rendering
// goes through poppler because pdfcpu has no rasterizer.
type Engine struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewEngine(cfg Config, logger *slog.Logger) *Engine {
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Pdfinfo == "" {
		cfg.Pdfinfo = "pdfinfo"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{cfg: cfg, runner: execRunner{}, logger: logger}
}

// WithRunner swaps the command runner, for tests.
func (e *Engine) WithRunner(r Runner) *Engine {
	e.runner = r
	return e
}

func pdfcpuConf() *model.Configuration {
	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed
	return cfg
}

// PageCount returns the number of pages in a PDF.
func (e *Engine) PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("page count of %s: %w", filepath.Base(path), err)
	}
	return n, nil
}

// Optimize rewrites the PDF through pdfcpu, which also repairs the mild
// structural damage scanners tend to produce.
func (e *Engine) Optimize(inPath, outPath string) error {
	if err := api.OptimizeFile(inPath, outPath, pdfcpuConf()); err != nil {
		return fmt.Errorf("optimize %s: %w", filepath.Base(inPath), err)
	}
	return nil
}

// SplitPages splits a PDF into single-page files inside outDir and returns
// their paths in page order.
func (e *Engine) SplitPages(inPath, outDir string) ([]string, error) {
	if err := api.SplitFile(inPath, outDir, 1, pdfcpuConf()); err != nil {
		return nil, fmt.Errorf("split %s: %w", filepath.Base(inPath), err)
	}

	base := strings.TrimSuffix(filepath.Base(inPath), filepath.Ext(inPath))
	matches, err := filepath.Glob(filepath.Join(outDir, base+"_*.pdf"))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("split %s produced no pages", filepath.Base(inPath))
	}
	// file_1.pdf, file_2.pdf, ... sort numerically by the page suffix
	sort.Slice(matches, func(i, j int) bool {
		return pageSuffix(matches[i]) < pageSuffix(matches[j])
	})
	return matches, nil
}

func pageSuffix(path string) int {
	name := strings.TrimSuffix(filepath.Base(path), ".pdf")
	if i := strings.LastIndex(name, "_"); i >= 0 {
		if n, err := strconv.Atoi(name[i+1:]); err == nil {
			return n
		}
	}
	return 0
}

// MetadataRotation reads the /Rotate entry of the first page via pdfinfo.
// The value is advisory: scanners often set it without the raster actually
// being turned.
func (e *Engine) MetadataRotation(ctx context.Context, path string) (int, error) {
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdfinfo, path)
	if err != nil {
		return 0, fmt.Errorf("pdfinfo %s: %w: %s", filepath.Base(path), err, truncate(string(errb), 512))
	}
	for _, line := range strings.Split(string(out), "\n") {
		if !strings.HasPrefix(line, "Page rot:") {
			continue
		}
		v := strings.TrimSpace(strings.TrimPrefix(line, "Page rot:"))
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("pdfinfo %s: bad rotation %q", filepath.Base(path), v)
		}
		return normalizeAngle(n), nil
	}
	return 0, nil
}

func normalizeAngle(n int) int {
	n %= 360
	if n < 0 {
		n += 360
	}
	return n
}

// RebuildFromImage writes a fresh single-page PDF containing just the given
// raster. Used to flatten a page after rotation so no stale /Rotate entry
// survives.
func (e *Engine) RebuildFromImage(imagePath, outPath string) error {
	if err := api.ImportImagesFile([]string{imagePath}, outPath, nil, pdfcpuConf()); err != nil {
		return fmt.Errorf("rebuild from %s: %w", filepath.Base(imagePath), err)
	}
	return nil
}
