package text

import (
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Shaper converts strings into positioned glyph runs using HarfBuzz
// shaping via go-text/typesetting. It applies kerning, ligatures and
// script-specific substitution.
//
// Shaper is safe for concurrent use. The parsed font is read-only; the
// HarfbuzzShaper instances have mutable state and are pooled.
type Shaper struct {
	// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper is NOT
	// safe for concurrent use, but reusing across sequential calls
	// avoids reallocating its buffers.
	shaperPool sync.Pool
}

// NewShaper creates a shaper backed by go-text/typesetting's HarfBuzz
// implementation.
func NewShaper() *Shaper {
	return &Shaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Shape shapes s at the given pixel size. The run direction is detected
// from the first strong character; the script from the first non-space
// rune.
func (sh *Shaper) Shape(source *FontSource, s string, size float64) (Run, error) {
	if source == nil {
		return Run{}, ErrNilSource
	}
	if size <= 0 {
		return Run{}, ErrInvalidSize
	}
	if s == "" {
		return Run{}, nil
	}

	runes := []rune(s)
	dir := di.DirectionLTR
	if DetectDirection(s) == DirectionRTL {
		dir = di.DirectionRTL
	}

	// font.Face is NOT safe for concurrent use; each Shape call gets
	// its own. NewFace is cheap, it wraps the shared read-only *Font.
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      gtfont.NewFace(source.shapeFont),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := sh.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	sh.shaperPool.Put(hb)

	glyphs := make([]Glyph, len(output.Glyphs))
	var x, y float64
	for i, g := range output.Glyphs {
		idx := g.TextIndex()
		var r rune
		if idx >= 0 && idx < len(runes) {
			r = runes[idx]
		}
		adv := fixedToFloat(g.XAdvance)
		glyphs[i] = Glyph{
			Rune:    r,
			GID:     GlyphID(g.GlyphID),
			X:       x + fixedToFloat(g.XOffset),
			Y:       y - fixedToFloat(g.YOffset),
			Advance: adv,
		}
		x += adv
	}

	return Run{
		Glyphs:  glyphs,
		Advance: x,
		Metrics: Metrics{
			Ascent:  math.Abs(fixedToFloat(output.LineBounds.Ascent)),
			Descent: math.Abs(fixedToFloat(output.LineBounds.Descent)),
			LineGap: math.Abs(fixedToFloat(output.LineBounds.Gap)),
		},
	}, nil
}

// detectScript inspects the runes and returns the script of the first
// non-space character. A simple heuristic; mixed-script text should be
// split into runs by script before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
