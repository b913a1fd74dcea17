package text

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestRasterizeRune(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}

	img, err := RasterizeRune(source, 'A', 32)
	if err != nil {
		t.Fatalf("RasterizeRune: %v", err)
	}
	if img == nil {
		t.Fatal("nil image for visible glyph")
	}
	if img.Mask.Bounds().Dx() <= 0 || img.Mask.Bounds().Dy() <= 0 {
		t.Errorf("empty mask %v", img.Mask.Bounds())
	}
	if img.Advance <= 0 {
		t.Errorf("advance = %v, want > 0", img.Advance)
	}
	// 'A' rises above the baseline, so the mask starts above the origin.
	if img.Bounds.Min.Y >= 0 {
		t.Errorf("Bounds.Min.Y = %d, want negative (above baseline)", img.Bounds.Min.Y)
	}

	var covered bool
	for _, a := range img.Mask.Pix {
		if a > 0 {
			covered = true
			break
		}
	}
	if !covered {
		t.Error("mask has no coverage")
	}
}

func TestRasterizeSpace(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	img, err := RasterizeRune(source, ' ', 32)
	if err != nil {
		t.Fatalf("RasterizeRune: %v", err)
	}
	if img != nil {
		t.Errorf("space produced a mask %v, want nil", img.Bounds)
	}
}

func TestRasterizeValidation(t *testing.T) {
	if _, err := RasterizeRune(nil, 'A', 32); !errors.Is(err, ErrNilSource) {
		t.Errorf("nil source error = %v, want ErrNilSource", err)
	}
	source, _ := NewFontSource(goregular.TTF)
	if _, err := RasterizeRune(source, 'A', -1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("negative size error = %v, want ErrInvalidSize", err)
	}
}
