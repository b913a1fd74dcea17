package gui

// Panel is a plain colored rectangle, useful as a background or group
// container.
type Panel struct {
	Core
	mesh Mesh
}

// NewPanel creates a w by h panel with its top-left corner at (x, y).
func NewPanel(x, y, w, h float64, color RGBA) (*Panel, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrDegenerateGeometry
	}
	p := &Panel{Core: NewCore(), mesh: UnitQuad()}
	p.SetColor(color)
	t := p.Transform()
	t.Position = Vec2{X: x, Y: y}
	t.Scale = Vec2{X: w, Y: h}
	return p, nil
}

// Mesh returns the panel's quad.
func (p *Panel) Mesh() Mesh { return p.mesh }
