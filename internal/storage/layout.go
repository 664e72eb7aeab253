package storage

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	uploadsDir    = "uploads"
	drawingsDir   = "drawings"
	thumbnailsDir = "thumbnails"
)

// Store owns the on-disk layout under a single root:
//
//	root/uploads/     original files as received
//	root/drawings/    one normalized single-page PDF per drawing
//	root/thumbnails/  one PNG per drawing
type Store struct {
	root   string
	logger *slog.Logger
}

func NewStore(root string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	for _, d := range []string{uploadsDir, drawingsDir, thumbnailsDir} {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir %s: %w", d, err)
		}
	}
	return &Store{root: root, logger: logger}, nil
}

func (s *Store) Root() string          { return s.root }
func (s *Store) UploadsDir() string    { return filepath.Join(s.root, uploadsDir) }
func (s *Store) DrawingsDir() string   { return filepath.Join(s.root, drawingsDir) }
func (s *Store) ThumbnailsDir() string { return filepath.Join(s.root, thumbnailsDir) }

// SaveUpload copies an incoming file into uploads/ under a collision-free
// name and returns the stored path.
func (s *Store) SaveUpload(originalFilename string, r io.Reader) (string, error) {
	name := uuid.New().String() + filepath.Ext(originalFilename)
	dst := filepath.Join(s.UploadsDir(), name)

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("save upload: %w", err)
	}
	s.logger.Debug("upload saved", "original", originalFilename, "path", dst)
	return dst, nil
}

// NewDrawingPath reserves a fresh artifact path in drawings/.
func (s *Store) NewDrawingPath() string {
	return filepath.Join(s.DrawingsDir(), uuid.New().String()+".pdf")
}

// ThumbnailFor is where the thumbnail paired with a drawing artifact lives.
// It shares the artifact's name stem so renames stay in lockstep.
func (s *Store) ThumbnailFor(artifactPath string) string {
	stem := strings.TrimSuffix(filepath.Base(artifactPath), filepath.Ext(artifactPath))
	return filepath.Join(s.ThumbnailsDir(), stem+".png")
}

// ReplaceAtomic rewrites path through a sibling temp file so readers never
// observe a half-written artifact. write receives the temp path and must
// produce the complete replacement there.
func (s *Store) ReplaceAtomic(path string, write func(tmpPath string) error) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+uuid.New().String()+".tmp")

	if err := write(tmp); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Delete removes a stored file; missing files are not an error.
func (s *Store) Delete(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
