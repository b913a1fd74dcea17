// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/gui/render"
)

func vertexFloats(t *testing.T, data []byte, index int) [8]float32 {
	t.Helper()
	off := index * quadVertexStride
	if off+quadVertexStride > len(data) {
		t.Fatalf("vertex %d out of range (%d bytes)", index, len(data))
	}
	var out [8]float32
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[off+i*4:]))
	}
	return out
}

func TestAppendVertexLayout(t *testing.T) {
	c := render.RGBA{R: 1, G: 0.5, B: 0.25, A: 0.5}.Premultiply()
	data := appendVertex(nil, 10, 20, 0.5, 1, c)
	if len(data) != quadVertexStride {
		t.Fatalf("vertex size = %d, want %d", len(data), quadVertexStride)
	}

	v := vertexFloats(t, data, 0)
	want := [8]float32{10, 20, 0.5, 1, 0.5, 0.25, 0.125, 0.5}
	for i := range want {
		if diff := v[i] - want[i]; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("field %d = %v, want %v", i, v[i], want[i])
		}
	}
}

func TestProjBytes(t *testing.T) {
	proj := render.Ortho2D(800, 600)
	data := projBytes(proj)
	if len(data) != quadUniformSize {
		t.Fatalf("uniform size = %d, want %d", len(data), quadUniformSize)
	}
	for i, f := range proj {
		got := math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
		if got != f {
			t.Errorf("element %d = %v, want %v", i, got, f)
		}
	}
}

func TestDrawQuadsAccumulation(t *testing.T) {
	b := &Backend{inFrame: true}

	tr := render.NewTransform()
	tr.Position = render.Vec2{X: 100, Y: 50}
	tr.Scale = render.Vec2{X: 10, Y: 20}

	quads := []render.Quad{
		{Mesh: render.UnitQuad(), Model: tr.Matrix(), Color: render.RGBA{R: 1, A: 1}},
	}
	if err := b.DrawQuads(quads); err != nil {
		t.Fatalf("DrawQuads: %v", err)
	}
	if b.quadCount != 6 {
		t.Fatalf("quadCount = %d, want 6", b.quadCount)
	}

	// First vertex of the unit quad is (0,0), so it lands at the
	// transform position.
	v := vertexFloats(t, b.quadVerts, 0)
	if v[0] != 100 || v[1] != 50 {
		t.Errorf("transformed origin = (%v, %v), want (100, 50)", v[0], v[1])
	}
}

func TestDrawQuadsSkipsInvalidMesh(t *testing.T) {
	b := &Backend{inFrame: true}

	quads := []render.Quad{
		{Mesh: render.Mesh{Vertices: make([]render.Vertex, 2)}, Model: render.Mat4Identity()},
	}
	if err := b.DrawQuads(quads); err != nil {
		t.Fatalf("DrawQuads: %v", err)
	}
	if b.quadCount != 0 {
		t.Errorf("invalid mesh produced %d vertices", b.quadCount)
	}
}

func TestDrawOutsideFrame(t *testing.T) {
	b := &Backend{}
	if err := b.DrawQuads(nil); err == nil {
		t.Error("DrawQuads outside a frame succeeded")
	}
	if err := b.DrawTexts(nil); err == nil {
		t.Error("DrawTexts outside a frame succeeded")
	}
	if err := b.EndFrame(); err == nil {
		t.Error("EndFrame outside a frame succeeded")
	}
}
