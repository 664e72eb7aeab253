package pdfops

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
)

// RotateRaster turns an image clockwise by angle degrees (0, 90, 180, 270).
func RotateRaster(src image.Image, angle int) (image.Image, error) {
	switch normalizeAngle(angle) {
	case 0:
		return src, nil
	case 90:
		return rotate(src, func(x, y, w, h int) (int, int) { return h - 1 - y, x }, true), nil
	case 180:
		return rotate(src, func(x, y, w, h int) (int, int) { return w - 1 - x, h - 1 - y }, false), nil
	case 270:
		return rotate(src, func(x, y, w, h int) (int, int) { return y, w - 1 - x }, true), nil
	default:
		return nil, fmt.Errorf("rotate raster: unsupported angle %d", angle)
	}
}

// rotate maps every source pixel through move. swap indicates the output
// bounds are transposed.
func rotate(src image.Image, move func(x, y, w, h int) (int, int), swap bool) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	var dst *image.NRGBA
	if swap {
		dst = image.NewNRGBA(image.Rect(0, 0, h, w))
	} else {
		dst = image.NewNRGBA(image.Rect(0, 0, w, h))
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			nx, ny := move(x, y, w, h)
			dst.Set(nx, ny, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

func DecodePNG(data []byte) (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return img, nil
}

func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
