// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "math"

// Vec2 is a 2D point or vector in logical pixels.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and u.
func (v Vec2) Add(u Vec2) Vec2 { return Vec2{v.X + u.X, v.Y + u.Y} }

// Sub returns the component-wise difference of v and u.
func (v Vec2) Sub(u Vec2) Vec2 { return Vec2{v.X - u.X, v.Y - u.Y} }

// Mat4 is a 4x4 matrix in column-major order, the layout WGSL expects
// for a mat4x4<f32> uniform.
type Mat4 [16]float32

// Mat4Identity returns the identity matrix.
func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Ortho2D returns an orthographic projection mapping the pixel rectangle
// (0,0)-(width,height) to clip space, with the origin at the top-left
// and y growing downward. Depth maps [0, 1000] to the WebGPU [0, 1]
// depth range.
func Ortho2D(width, height float64) Mat4 {
	if width <= 0 || height <= 0 {
		return Mat4Identity()
	}
	w := float32(width)
	h := float32(height)
	return Mat4{
		2 / w, 0, 0, 0,
		0, -2 / h, 0, 0,
		0, 0, -1.0 / 1000, 0,
		-1, 1, 0, 1,
	}
}

// Mul returns the matrix product m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * n[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// TransformPoint applies m to the point (x, y, 0, 1) and returns the
// transformed x and y.
func (m Mat4) TransformPoint(x, y float64) (float64, float64) {
	fx := float32(x)
	fy := float32(y)
	ox := m[0]*fx + m[4]*fy + m[12]
	oy := m[1]*fx + m[5]*fy + m[13]
	return float64(ox), float64(oy)
}

// Transform places a component on screen: translate by Position, rotate
// by Rotation around the component origin, scale by Scale. Scale doubles
// as the size in pixels for unit-quad meshes.
type Transform struct {
	Position Vec2
	Rotation float64 // radians, clockwise in the y-down coordinate system
	Scale    Vec2
}

// NewTransform returns a transform at the origin with unit scale.
func NewTransform() Transform {
	return Transform{Scale: Vec2{X: 1, Y: 1}}
}

// Matrix returns the model matrix scale-then-rotate-then-translate.
func (t Transform) Matrix() Mat4 {
	sin, cos := math.Sincos(t.Rotation)
	s := float32(sin)
	c := float32(cos)
	sx := float32(t.Scale.X)
	sy := float32(t.Scale.Y)
	return Mat4{
		c * sx, s * sx, 0, 0,
		-s * sy, c * sy, 0, 0,
		0, 0, 1, 0,
		float32(t.Position.X), float32(t.Position.Y), 0, 1,
	}
}

// Contains reports whether the point (x, y) falls inside the unit square
// transformed by t. Used for hit testing quad components.
func (t Transform) Contains(x, y float64) bool {
	// Inverse-transform the point into unit-square space.
	dx := x - t.Position.X
	dy := y - t.Position.Y
	sin, cos := math.Sincos(-t.Rotation)
	rx := dx*cos - dy*sin
	ry := dx*sin + dy*cos
	if t.Scale.X == 0 || t.Scale.Y == 0 {
		return false
	}
	ux := rx / t.Scale.X
	uy := ry / t.Scale.Y
	return ux >= 0 && ux <= 1 && uy >= 0 && uy <= 1
}
