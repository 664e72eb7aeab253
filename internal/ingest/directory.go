package ingest

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/takuya-okamoto/zumenkan/constants"
)

type FileResult struct {
	Path     string
	Drawings int
	Err      string
}

type DirStats struct {
	Scanned   uint32
	Matched   uint32
	Succeeded uint32
	Failed    uint32
}

// IngestDirectory walks root and ingests every supported drawing file,
// skipping hidden entries if requested. Returns per-file results plus
// aggregate stats.
func (c *Controller) IngestDirectory(ctx context.Context, root, createdBy string, runAnalysis, skipHidden bool) ([]FileResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var results []FileResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, FileResult{Path: path, Err: walkErr.Error()})
			stats.Failed++
			return nil // continue walking
		}
		if skipHidden && strings.HasPrefix(filepath.Base(path), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !constants.AllowedExtensions[constants.NormalizeExt(filepath.Ext(path))] {
			return nil
		}
		stats.Matched++

		drawings, err := c.IngestFile(ctx, path, createdBy, runAnalysis)
		if err != nil {
			results = append(results, FileResult{Path: path, Err: err.Error()})
			stats.Failed++
			return nil
		}
		results = append(results, FileResult{Path: path, Drawings: len(drawings)})
		stats.Succeeded++
		return ctx.Err()
	})
	return results, stats, err
}
