// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

// Camera holds the orthographic projection for the current surface
// size. The projection maps logical pixels with a top-left origin, so
// component positions read like CSS coordinates.
type Camera struct {
	width  float64
	height float64
	proj   Mat4
}

// NewCamera returns a camera for the given viewport size.
func NewCamera(width, height float64) Camera {
	c := Camera{}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the projection for a new surface size.
func (c *Camera) SetViewport(width, height float64) {
	c.width = width
	c.height = height
	c.proj = Ortho2D(width, height)
}

// Projection returns the current projection matrix.
func (c *Camera) Projection() Mat4 { return c.proj }

// Viewport returns the current viewport size in pixels.
func (c *Camera) Viewport() (width, height float64) { return c.width, c.height }
