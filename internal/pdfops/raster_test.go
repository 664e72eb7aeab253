package pdfops_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/takuya-okamoto/zumenkan/internal/pdfops"
)

// mark paints a single red pixel so rotations can be traced.
func mark(w, h, x, y int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(x, y, color.NRGBA{R: 255, A: 255})
	return img
}

func redAt(t *testing.T, img image.Image, x, y int) {
	t.Helper()
	r, _, _, a := img.At(x, y).RGBA()
	if r == 0 || a == 0 {
		t.Errorf("expected marker at (%d,%d)", x, y)
	}
}

func TestRotateRasterDimensions(t *testing.T) {
	src := mark(4, 2, 0, 0)
	for _, tc := range []struct {
		angle, w, h int
	}{
		{0, 4, 2},
		{90, 2, 4},
		{180, 4, 2},
		{270, 2, 4},
	} {
		out, err := pdfops.RotateRaster(src, tc.angle)
		if err != nil {
			t.Fatalf("angle %d: %v", tc.angle, err)
		}
		b := out.Bounds()
		if b.Dx() != tc.w || b.Dy() != tc.h {
			t.Errorf("angle %d: got %dx%d, expected %dx%d", tc.angle, b.Dx(), b.Dy(), tc.w, tc.h)
		}
	}
}

func TestRotateRasterMovesPixelsClockwise(t *testing.T) {
	// marker in the top-left corner of a 4x2 image
	src := mark(4, 2, 0, 0)

	out90, err := pdfops.RotateRaster(src, 90)
	if err != nil {
		t.Fatal(err)
	}
	// clockwise 90: top-left ends up top-right
	redAt(t, out90, 1, 0)

	out180, err := pdfops.RotateRaster(src, 180)
	if err != nil {
		t.Fatal(err)
	}
	redAt(t, out180, 3, 1)

	out270, err := pdfops.RotateRaster(src, 270)
	if err != nil {
		t.Fatal(err)
	}
	// counter-clockwise 90: top-left ends up bottom-left
	redAt(t, out270, 0, 3)
}

func TestRotateRasterFullTurnRestores(t *testing.T) {
	src := mark(3, 5, 2, 1)
	img := image.Image(src)
	for i := 0; i < 4; i++ {
		var err error
		img, err = pdfops.RotateRaster(img, 90)
		if err != nil {
			t.Fatal(err)
		}
	}
	b := img.Bounds()
	if b.Dx() != 3 || b.Dy() != 5 {
		t.Fatalf("dimensions changed after full turn: %dx%d", b.Dx(), b.Dy())
	}
	redAt(t, img, 2, 1)
}

func TestRotateRasterZeroIsIdentity(t *testing.T) {
	src := mark(3, 3, 1, 2)
	out, err := pdfops.RotateRaster(src, 0)
	if err != nil {
		t.Fatal(err)
	}
	if out != src {
		t.Error("angle 0 should return the source image untouched")
	}
}

func TestRotateRasterNormalizesAngle(t *testing.T) {
	src := mark(4, 2, 0, 0)
	a, err := pdfops.RotateRaster(src, 450) // == 90
	if err != nil {
		t.Fatal(err)
	}
	b, err := pdfops.RotateRaster(src, 90)
	if err != nil {
		t.Fatal(err)
	}
	if a.Bounds() != b.Bounds() {
		t.Error("450 and 90 degrees should agree")
	}
}

func TestRotateRasterRejectsOddAngles(t *testing.T) {
	if _, err := pdfops.RotateRaster(mark(2, 2, 0, 0), 45); err == nil {
		t.Error("expected error for 45 degrees")
	}
}

func TestPNGRoundTrip(t *testing.T) {
	src := mark(6, 4, 5, 3)
	data, err := pdfops.EncodePNG(src)
	if err != nil {
		t.Fatal(err)
	}
	img, err := pdfops.DecodePNG(data)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 4 {
		t.Errorf("unexpected bounds %v", img.Bounds())
	}
	redAt(t, img, 5, 3)
}
