// Package text turns strings into positioned, rasterizable glyphs.
//
// A FontSource wraps raw TTF/OTF bytes, parsed once for shaping (via
// go-text/typesetting) and once for rasterization (via x/image). The
// Shaper runs HarfBuzz-level shaping with kerning and ligatures and
// returns a Run of positioned glyphs. RasterizeRune renders a single
// glyph to an alpha mask for upload into the renderer's glyph atlas.
//
// The package is independent of the GPU layers; everything here runs on
// the CPU and is safe to use headless.
package text
