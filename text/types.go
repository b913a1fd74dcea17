package text

// Direction specifies text direction.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	if d == DirectionRTL {
		return "RTL"
	}
	return "LTR"
}

// GlyphID is a unique identifier for a glyph within a font.
// The glyph ID is assigned by the font file and is font-specific.
type GlyphID uint16

// Glyph is one shaped glyph, positioned relative to the run origin at
// the baseline of the first character.
type Glyph struct {
	// Rune is the Unicode character this glyph represents. For
	// ligatures, the first character of the ligature.
	Rune rune

	// GID is the glyph index in the font.
	GID GlyphID

	// X, Y position the glyph origin relative to the run origin.
	X, Y float64

	// Advance is how far the pen moves after this glyph.
	Advance float64
}

// Metrics are the vertical metrics of a shaped run, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the line.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the
	// line, as a positive number.
	Descent float64

	// LineGap is the recommended additional spacing between lines.
	LineGap float64
}

// Height returns the total line height.
func (m Metrics) Height() float64 { return m.Ascent + m.Descent + m.LineGap }

// Run is the result of shaping one string at one size.
type Run struct {
	// Glyphs in visual order, left to right.
	Glyphs []Glyph

	// Advance is the total horizontal extent of the run.
	Advance float64

	// Metrics are the line metrics of the face at the shaped size.
	Metrics Metrics
}
