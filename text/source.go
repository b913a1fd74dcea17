package text

import (
	"bytes"
	"fmt"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
)

// FontSource wraps raw TTF/OTF font bytes. The data is parsed once for
// shaping and once for rasterization when the source is created; both
// parsed forms are read-only afterwards, so a FontSource is safe for
// concurrent use.
//
// A FontSource must not be copied after creation. Pointer identity is
// used as the cache key by the Shaper and the glyph atlas.
type FontSource struct {
	data []byte

	// shapeFont is the go-text font used by the Shaper.
	// *gtfont.Font is read-only and safe for concurrent use.
	shapeFont *gtfont.Font

	// rasterFont is the x/image font used for alpha-mask rasterization.
	rasterFont *opentype.Font
}

// NewFontSource parses font data into a source usable for both shaping
// and rasterization. The data slice is copied; the caller may reuse it.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	owned := make([]byte, len(data))
	copy(owned, data)

	shaped, err := gtfont.ParseTTF(bytes.NewReader(owned))
	if err != nil {
		return nil, fmt.Errorf("text: parse font for shaping: %w", err)
	}
	raster, err := opentype.Parse(owned)
	if err != nil {
		return nil, fmt.Errorf("text: parse font for rasterization: %w", err)
	}
	return &FontSource{
		data:       owned,
		shapeFont:  shaped.Font,
		rasterFont: raster,
	}, nil
}
