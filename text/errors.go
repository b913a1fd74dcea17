package text

import "errors"

var (
	// ErrEmptyFontData is returned when a font source is created from an
	// empty byte slice.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNilSource is returned when shaping or rasterizing with a nil
	// font source.
	ErrNilSource = errors.New("text: nil font source")

	// ErrInvalidSize is returned for zero or negative font sizes.
	ErrInvalidSize = errors.New("text: invalid font size")
)
