package gui

import "github.com/gogpu/gui/text"

// Label draws a single line of text. The transform position is the
// baseline origin of the first glyph.
type Label struct {
	Core
	content string
	face    text.Face
}

// NewLabel creates a label at (x, y) with the given pixel size. The
// renderer's default font is used until SetFont is called.
func NewLabel(content string, x, y, size float64) (*Label, error) {
	if size <= 0 {
		return nil, ErrDegenerateGeometry
	}
	l := &Label{
		Core:    NewCore(),
		content: content,
		face:    text.Face{Size: size},
	}
	l.Transform().Position = Vec2{X: x, Y: y}
	return l, nil
}

// Text returns the label content.
func (l *Label) Text() string { return l.content }

// SetText replaces the label content. Takes effect on the next frame.
func (l *Label) SetText(content string) { l.content = content }

// Face returns the label's font face.
func (l *Label) Face() text.Face { return l.face }

// SetFont selects the font source. Nil restores the default font.
func (l *Label) SetFont(source *text.FontSource) { l.face.Source = source }

// SetSize changes the pixel size. Sizes <= 0 are ignored.
func (l *Label) SetSize(size float64) {
	if size > 0 {
		l.face.Size = size
	}
}
