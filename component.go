package gui

import "github.com/gogpu/gui/text"

// Component is a non-text drawable entity: a mesh placed by a
// transform and filled with a color. Built-in implementations are
// Button and Panel; custom components embed Core and add a Mesh method.
//
// Querying a component for its draw data never mutates renderer state.
type Component interface {
	// Mesh returns the vertex data for one draw call.
	Mesh() Mesh

	// Transform returns the mutable placement of the component.
	Transform() *Transform

	// Color returns the fill color, applied per vertex.
	Color() RGBA

	// Enabled reports whether the component is drawn and hit-testable.
	Enabled() bool

	ownable
}

// TextComponent is a text-bearing drawable entity. It is kept apart
// from Component because text draws through a separate glyph pipeline.
type TextComponent interface {
	// Text returns the string to shape and draw.
	Text() string

	// Face returns the font face: source and pixel size.
	Face() text.Face

	// Transform returns the mutable placement; Position is the
	// baseline origin of the first glyph.
	Transform() *Transform

	// Color returns the text color.
	Color() RGBA

	// Enabled reports whether the component is drawn.
	Enabled() bool

	ownable
}

// ownable tracks which layout holds a component. It is satisfied by
// embedding Core, which keeps the one-layout-at-a-time invariant
// enforceable for custom component types too.
type ownable interface {
	owned() bool
	setOwned(bool)
}

// Core holds the state shared by every component: transform, color,
// enable flag and layout ownership. Embed it to build custom
// components.
type Core struct {
	transform Transform
	color     RGBA
	disabled  bool
	isOwned   bool
}

// NewCore returns a Core with an identity transform and opaque white
// color.
func NewCore() Core {
	return Core{transform: NewTransform(), color: White}
}

// Transform returns the mutable placement of the component.
func (c *Core) Transform() *Transform { return &c.transform }

// Color returns the component color.
func (c *Core) Color() RGBA { return c.color }

// SetColor changes the component color.
func (c *Core) SetColor(col RGBA) { c.color = col }

// Enabled reports whether the component is drawn.
func (c *Core) Enabled() bool { return !c.disabled }

// SetEnabled shows or hides the component without removing it from its
// layout.
func (c *Core) SetEnabled(enabled bool) { c.disabled = !enabled }

func (c *Core) owned() bool         { return c.isOwned }
func (c *Core) setOwned(owned bool) { c.isOwned = owned }
