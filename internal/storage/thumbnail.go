package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// MakeThumbnail downscales a page render so its longer edge is maxEdge
// pixels. Smaller images pass through unchanged.
func MakeThumbnail(pngData []byte, maxEdge int) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return nil, fmt.Errorf("decode render: %w", err)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	longer := w
	if h > longer {
		longer = h
	}
	if longer <= maxEdge {
		return pngData, nil
	}

	scale := float64(maxEdge) / float64(longer)
	dw := int(float64(w) * scale)
	dh := int(float64(h) * scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveThumbnail writes the thumbnail paired with an artifact and returns
// its path.
func (s *Store) SaveThumbnail(artifactPath string, data []byte) (string, error) {
	path := s.ThumbnailFor(artifactPath)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("save thumbnail: %w", err)
	}
	return path, nil
}
