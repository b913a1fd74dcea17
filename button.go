package gui

// Button is a clickable quad with press and release callback slots and
// an optional child label that follows the button's position.
type Button struct {
	Core
	mesh    Mesh
	label   *Label
	pressed bool

	// OnPress and OnRelease run synchronously on the event loop when
	// the button is clicked. Either may be nil.
	OnPress   func()
	OnRelease func()
}

// NewButton creates a w by h button with its top-left corner at (x, y).
func NewButton(x, y, w, h float64, color RGBA) (*Button, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrDegenerateGeometry
	}
	b := &Button{Core: NewCore(), mesh: UnitQuad()}
	b.SetColor(color)
	t := b.Transform()
	t.Position = Vec2{X: x, Y: y}
	t.Scale = Vec2{X: w, Y: h}
	return b, nil
}

// Mesh returns the button's quad.
func (b *Button) Mesh() Mesh { return b.mesh }

// Contains reports whether (x, y) in window coordinates hits the
// button. Disabled buttons are never hit.
func (b *Button) Contains(x, y float64) bool {
	return b.Enabled() && b.Transform().Contains(x, y)
}

// SetLabel attaches a label drawn over the button. The label must be
// added to the same layout; its position is synced to the button before
// each frame. Pass nil to detach.
func (b *Button) SetLabel(l *Label) { b.label = l }

// Label returns the attached label, or nil.
func (b *Button) Label() *Label { return b.label }

// Pressed reports whether the button is currently held down.
func (b *Button) Pressed() bool { return b.pressed }

// Press records a press and runs the OnPress callback.
func (b *Button) Press() {
	if !b.Enabled() || b.pressed {
		return
	}
	b.pressed = true
	if b.OnPress != nil {
		b.OnPress()
	}
}

// Release records a release and runs the OnRelease callback. A release
// without a prior press is ignored.
func (b *Button) Release() {
	if !b.pressed {
		return
	}
	b.pressed = false
	if b.OnRelease != nil {
		b.OnRelease()
	}
}

// syncLabel centers the attached label horizontally and places its
// baseline in the lower middle of the button.
func (b *Button) syncLabel() {
	if b.label == nil {
		return
	}
	t := b.Transform()
	lt := b.label.Transform()
	size := b.label.Face().Size
	lt.Position = Vec2{
		X: t.Position.X + t.Scale.X/2 - approxTextWidth(b.label.Text(), size)/2,
		Y: t.Position.Y + t.Scale.Y/2 + size/3,
	}
}

// approxTextWidth estimates a run width without shaping, good enough
// for centering a short button label.
func approxTextWidth(s string, size float64) float64 {
	n := 0
	for range s {
		n++
	}
	return float64(n) * size * 0.55
}
