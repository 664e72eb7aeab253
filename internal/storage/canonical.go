package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/takuya-okamoto/zumenkan/constants"
)

// CanonicalName builds the display filename a finished drawing is renamed
// to: <timestamp>_<classification>_<drawingnumber>_<author>.pdf. Missing
// components fall back to a placeholder so the shape stays parseable.
func CanonicalName(uploadedAt time.Time, classification, drawingNumber, author string) string {
	parts := []string{
		uploadedAt.Format("20060102150405"),
		SanitizeComponent(classification),
		SanitizeComponent(drawingNumber),
		SanitizeComponent(author),
	}
	return strings.Join(parts, "_") + ".pdf"
}

// SanitizeComponent makes a filename component safe on every filesystem we
// care about. Empty input becomes the placeholder token.
func SanitizeComponent(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return constants.PlaceholderToken
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r < 0x20, strings.ContainsRune(`/\:*?"<>|`, r):
			b.WriteRune('_')
		case r == ' ' || r == '\t' || r == '　':
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	out := b.String()
	for strings.Contains(out, "__") {
		out = strings.ReplaceAll(out, "__", "_")
	}
	out = strings.Trim(out, "_.")
	if out == "" {
		return constants.PlaceholderToken
	}
	return out
}

// RenameCanonical moves a drawing artifact to its canonical name within the
// same directory, dragging its paired thumbnail along. The rename is
// best-effort: if the target already exists the artifact keeps its current
// name and the current path is returned.
func (s *Store) RenameCanonical(currentPath, canonicalName string) (string, bool, error) {
	target := filepath.Join(filepath.Dir(currentPath), canonicalName)
	if target == currentPath {
		return currentPath, false, nil
	}

	if _, err := os.Stat(target); err == nil {
		s.logger.Warn("canonical name taken, keeping current name",
			"current", filepath.Base(currentPath), "wanted", canonicalName)
		return currentPath, false, nil
	} else if !os.IsNotExist(err) {
		return currentPath, false, fmt.Errorf("stat %s: %w", canonicalName, err)
	}

	if err := os.Rename(currentPath, target); err != nil {
		return currentPath, false, fmt.Errorf("rename to %s: %w", canonicalName, err)
	}

	// thumbnail follows the artifact; its absence is not an error
	oldThumb := s.ThumbnailFor(currentPath)
	newThumb := s.ThumbnailFor(target)
	if _, err := os.Stat(oldThumb); err == nil {
		if err := os.Rename(oldThumb, newThumb); err != nil {
			s.logger.Warn("failed to rename thumbnail", "from", oldThumb, "error", err)
		}
	}

	s.logger.Info("drawing renamed", "from", filepath.Base(currentPath), "to", canonicalName)
	return target, true, nil
}
