// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-4 }

func TestOrtho2D(t *testing.T) {
	proj := Ortho2D(800, 600)

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"top-left", 0, 0, -1, 1},
		{"bottom-right", 800, 600, 1, -1},
		{"center", 400, 300, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gx, gy := proj.TransformPoint(tt.x, tt.y)
			if !almostEqual(gx, tt.wantX) || !almostEqual(gy, tt.wantY) {
				t.Errorf("(%v, %v) -> (%v, %v), want (%v, %v)",
					tt.x, tt.y, gx, gy, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestOrtho2DDegenerate(t *testing.T) {
	if Ortho2D(0, 600) != Mat4Identity() {
		t.Error("zero width must fall back to identity")
	}
	if Ortho2D(800, -1) != Mat4Identity() {
		t.Error("negative height must fall back to identity")
	}
}

func TestMat4Mul(t *testing.T) {
	id := Mat4Identity()
	m := Ortho2D(100, 100)
	if m.Mul(id) != m || id.Mul(m) != m {
		t.Error("multiplication by identity must be a no-op")
	}
}

func TestTransformMatrix(t *testing.T) {
	tr := Transform{
		Position: Vec2{X: 10, Y: 20},
		Scale:    Vec2{X: 100, Y: 50},
	}
	m := tr.Matrix()

	// Unit-square corners land at position and position+scale.
	x, y := m.TransformPoint(0, 0)
	if !almostEqual(x, 10) || !almostEqual(y, 20) {
		t.Errorf("origin -> (%v, %v), want (10, 20)", x, y)
	}
	x, y = m.TransformPoint(1, 1)
	if !almostEqual(x, 110) || !almostEqual(y, 70) {
		t.Errorf("corner -> (%v, %v), want (110, 70)", x, y)
	}
}

func TestTransformRotation(t *testing.T) {
	tr := Transform{
		Rotation: math.Pi / 2,
		Scale:    Vec2{X: 1, Y: 1},
	}
	// A quarter turn maps +x onto +y in the y-down coordinate system.
	x, y := tr.Matrix().TransformPoint(1, 0)
	if !almostEqual(x, 0) || !almostEqual(y, 1) {
		t.Errorf("(1, 0) rotated -> (%v, %v), want (0, 1)", x, y)
	}
}

func TestTransformContains(t *testing.T) {
	tr := Transform{
		Position: Vec2{X: 10, Y: 10},
		Scale:    Vec2{X: 80, Y: 40},
	}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 30, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right corner", 90, 50, true},
		{"left of", 9, 30, false},
		{"below", 50, 51, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestTransformContainsZeroScale(t *testing.T) {
	tr := Transform{Position: Vec2{X: 10, Y: 10}}
	if tr.Contains(10, 10) {
		t.Error("zero-scale transform must contain nothing")
	}
}

func TestMeshValid(t *testing.T) {
	if (Mesh{}).Valid() {
		t.Error("empty mesh must be invalid")
	}
	if (Mesh{Vertices: make([]Vertex, 4)}).Valid() {
		t.Error("non-multiple-of-three mesh must be invalid")
	}
	if !UnitQuad().Valid() {
		t.Error("unit quad must be valid")
	}
}
