// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

// Quad is one solid-colored mesh draw, produced by a layout in
// component order.
type Quad struct {
	Mesh  Mesh
	Model Mat4
	Color RGBA
}

// Text is one text run, produced by a layout in component order. Origin
// is the baseline start of the first glyph in logical pixels.
type Text struct {
	Content string
	Origin  Vec2
	Size    float64
	Color   RGBA

	// Font is an opaque font handle interpreted by the backend. Nil
	// selects the backend's default font.
	Font any
}

// Layout is the scene the renderer draws: an ordered collection of
// quads and an ordered collection of text runs. The concrete layout
// lives in the root gui package; tests use fakes.
//
// The renderer calls EachQuad and EachText once per frame, on the event
// loop goroutine, between frame boundaries. Earlier entries are drawn
// first and later entries paint over them.
type Layout interface {
	EachQuad(fn func(Quad))
	EachText(fn func(Text))
}
