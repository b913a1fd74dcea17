// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

// Vertex is one vertex of a component mesh: a position in model space
// and a texture coordinate. Matches the vertex layout of the quad
// pipeline (two float32 pairs, 16 bytes).
type Vertex struct {
	Position [2]float32
	UV       [2]float32
}

// Mesh is a triangle list in model space. Components own a mesh and a
// Transform; the renderer draws mesh vertices through the model and
// projection matrices.
type Mesh struct {
	Vertices []Vertex
}

// Valid reports whether the mesh has a non-degenerate triangle list.
func (m Mesh) Valid() bool {
	return len(m.Vertices) >= 3 && len(m.Vertices)%3 == 0
}

// UnitQuad returns the unit square as two triangles. Components scale it
// to size through their Transform.
func UnitQuad() Mesh {
	return Mesh{Vertices: []Vertex{
		{Position: [2]float32{0, 0}, UV: [2]float32{0, 0}},
		{Position: [2]float32{0, 1}, UV: [2]float32{0, 1}},
		{Position: [2]float32{1, 0}, UV: [2]float32{1, 0}},
		{Position: [2]float32{1, 0}, UV: [2]float32{1, 0}},
		{Position: [2]float32{0, 1}, UV: [2]float32{0, 1}},
		{Position: [2]float32{1, 1}, UV: [2]float32{1, 1}},
	}}
}
