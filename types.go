package gui

import "github.com/gogpu/gui/render"

// Geometry and color types are defined in package render and aliased
// here so applications only import gui.
type (
	// RGBA is a color with components in [0, 1].
	RGBA = render.RGBA

	// Vec2 is a 2D point or vector in logical pixels.
	Vec2 = render.Vec2

	// Mat4 is a column-major 4x4 matrix.
	Mat4 = render.Mat4

	// Transform is a position, rotation and scale in pixel space.
	Transform = render.Transform

	// Vertex is one mesh vertex: position and texture coordinates.
	Vertex = render.Vertex

	// Mesh is the vertex data for one draw call.
	Mesh = render.Mesh
)

// NewTransform returns an identity transform at the origin.
func NewTransform() Transform { return render.NewTransform() }

// UnitQuad returns the standard two-triangle unit square mesh.
func UnitQuad() Mesh { return render.UnitQuad() }
