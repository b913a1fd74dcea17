package text

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// GlyphImage is a rasterized glyph: an alpha mask plus the placement of
// that mask relative to the glyph origin on the baseline.
type GlyphImage struct {
	// Mask is the grayscale coverage of the glyph.
	Mask *image.Alpha

	// Bounds place the mask relative to the glyph origin. Min.Y is
	// negative for glyphs that rise above the baseline.
	Bounds image.Rectangle

	// Advance is the horizontal advance of the glyph in pixels.
	Advance float64
}

// RasterizeRune renders one character of the source at the given pixel
// size to an alpha mask. Returns nil for characters without a visible
// glyph (spaces, missing coverage).
func RasterizeRune(source *FontSource, r rune, size float64) (*GlyphImage, error) {
	if source == nil {
		return nil, ErrNilSource
	}
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	face, err := opentype.NewFace(source.rasterFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	defer func() { _ = face.Close() }()

	bounds, advance, ok := face.GlyphBounds(r)
	if !ok {
		return nil, nil
	}

	minX := bounds.Min.X.Floor()
	minY := bounds.Min.Y.Floor()
	maxX := bounds.Max.X.Ceil()
	maxY := bounds.Max.Y.Ceil()
	rect := image.Rect(minX, minY, maxX, maxY)
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		// Whitespace and zero-extent glyphs advance the pen but draw
		// nothing.
		return nil, nil
	}

	mask := image.NewAlpha(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	drawer := &font.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: face,
		Dot:  fixed.Point26_6{X: -bounds.Min.X, Y: -bounds.Min.Y},
	}
	drawer.DrawString(string(r))

	return &GlyphImage{
		Mask:    mask,
		Bounds:  rect,
		Advance: fixedToFloat(advance),
	}, nil
}
