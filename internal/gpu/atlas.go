// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gui/text"
)

// Atlas-related errors.
var (
	// ErrAtlasFull is returned when the atlas cannot fit another glyph.
	ErrAtlasFull = errors.New("gpu: glyph atlas is full")
)

// Atlas settings.
const (
	// atlasSize is the atlas dimension in pixels.
	atlasSize = 1024

	// atlasPadding is the padding between packed glyphs, preventing
	// sampler bleed between neighbors.
	atlasPadding = 1
)

// atlasRegion is a rectangular region in the atlas.
type atlasRegion struct {
	X      int
	Y      int
	Width  int
	Height int
}

// valid returns true if the region has valid dimensions.
func (r atlasRegion) valid() bool {
	return r.Width > 0 && r.Height > 0
}

func (r atlasRegion) String() string {
	return fmt.Sprintf("Region(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// shelf is one horizontal shelf of the shelf-packing algorithm.
type shelf struct {
	y      int // top Y coordinate of this shelf
	height int // height of this shelf (tallest item so far)
	nextX  int // next available X position on this shelf
}

// rectAllocator implements shelf packing for glyph regions. New
// rectangles go on the first shelf with room; a new shelf is opened
// below when none fits.
type rectAllocator struct {
	mu      sync.Mutex
	width   int
	height  int
	shelves []*shelf
	padding int
}

func newRectAllocator(width, height, padding int) *rectAllocator {
	return &rectAllocator{
		width:   width,
		height:  height,
		shelves: make([]*shelf, 0, 16),
		padding: padding,
	}
}

// allocate finds space for a rectangle of the given size.
// Returns an invalid region when the rectangle cannot be placed.
func (a *rectAllocator) allocate(width, height int) atlasRegion {
	a.mu.Lock()
	defer a.mu.Unlock()

	if width <= 0 || height <= 0 {
		return atlasRegion{}
	}
	paddedWidth := width + a.padding
	paddedHeight := height + a.padding
	if paddedWidth > a.width || paddedHeight > a.height {
		return atlasRegion{}
	}

	for _, s := range a.shelves {
		if !a.fitsOnShelf(s, paddedWidth, paddedHeight) {
			continue
		}
		region := atlasRegion{X: s.nextX, Y: s.y, Width: width, Height: height}
		s.nextX += paddedWidth
		if paddedHeight > s.height {
			s.height = paddedHeight
		}
		return region
	}

	return a.allocateNewShelf(width, height, paddedWidth, paddedHeight)
}

// fitsOnShelf checks horizontal room and height compatibility. A shelf
// with items on it cannot grow taller.
func (a *rectAllocator) fitsOnShelf(s *shelf, paddedWidth, paddedHeight int) bool {
	if s.nextX+paddedWidth > a.width {
		return false
	}
	if paddedHeight > s.height && s.nextX > 0 {
		return false
	}
	return true
}

func (a *rectAllocator) allocateNewShelf(width, height, paddedWidth, paddedHeight int) atlasRegion {
	newY := 0
	if len(a.shelves) > 0 {
		last := a.shelves[len(a.shelves)-1]
		newY = last.y + last.height
	}
	if newY+paddedHeight > a.height {
		return atlasRegion{}
	}
	s := &shelf{y: newY, height: paddedHeight, nextX: paddedWidth}
	a.shelves = append(a.shelves, s)
	return atlasRegion{X: 0, Y: newY, Width: width, Height: height}
}

// glyphKey identifies a cached glyph: one source, one character, one
// quantized size.
type glyphKey struct {
	source *text.FontSource
	r      rune
	size   int32 // size in 26.6 fixed point, so fractional sizes get their own slot
}

// glyphEntry is a cached, packed glyph.
type glyphEntry struct {
	region atlasRegion

	// bearingX, bearingY place the region relative to the glyph origin
	// on the baseline. bearingY is negative for glyphs rising above it.
	bearingX float64
	bearingY float64

	// blank marks glyphs with no coverage (spaces). They advance the
	// pen but produce no quad.
	blank bool
}

// glyphAtlas caches rasterized glyphs in a single CPU-side RGBA page
// that the text pipeline uploads when dirty. Coverage is stored as
// premultiplied white so the shader only tints.
type glyphAtlas struct {
	alloc  *rectAllocator
	pix    []byte // RGBA8, atlasSize x atlasSize
	dirty  bool
	glyphs map[glyphKey]glyphEntry
}

func newGlyphAtlas() *glyphAtlas {
	return &glyphAtlas{
		alloc:  newRectAllocator(atlasSize, atlasSize, atlasPadding),
		pix:    make([]byte, atlasSize*atlasSize*4),
		glyphs: make(map[glyphKey]glyphEntry),
	}
}

// glyph returns the cached entry for the rune at the given size,
// rasterizing and packing it on first use.
func (a *glyphAtlas) glyph(source *text.FontSource, r rune, size float64) (glyphEntry, error) {
	key := glyphKey{source: source, r: r, size: int32(size * 64)}
	if entry, ok := a.glyphs[key]; ok {
		return entry, nil
	}

	img, err := text.RasterizeRune(source, r, size)
	if err != nil {
		return glyphEntry{}, err
	}
	if img == nil {
		entry := glyphEntry{blank: true}
		a.glyphs[key] = entry
		return entry, nil
	}

	bounds := img.Mask.Bounds()
	region := a.alloc.allocate(bounds.Dx(), bounds.Dy())
	if !region.valid() {
		return glyphEntry{}, ErrAtlasFull
	}
	a.blit(img, region)

	entry := glyphEntry{
		region:   region,
		bearingX: float64(img.Bounds.Min.X),
		bearingY: float64(img.Bounds.Min.Y),
	}
	a.glyphs[key] = entry
	return entry, nil
}

// blit copies an alpha mask into the page as premultiplied white.
func (a *glyphAtlas) blit(img *text.GlyphImage, region atlasRegion) {
	bounds := img.Mask.Bounds()
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			alpha := img.Mask.AlphaAt(bounds.Min.X+x, bounds.Min.Y+y).A
			off := ((region.Y+y)*atlasSize + region.X + x) * 4
			a.pix[off+0] = alpha
			a.pix[off+1] = alpha
			a.pix[off+2] = alpha
			a.pix[off+3] = alpha
		}
	}
	a.dirty = true
}
