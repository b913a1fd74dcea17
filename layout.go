package gui

import (
	"iter"

	"github.com/gogpu/gui/render"
)

// ComponentID identifies a component within the layout that holds it.
// IDs are assigned on add and stay stable when other components are
// removed.
type ComponentID uint64

// Layout is an ordered, swappable collection of components. Insertion
// order is draw order: the last-added component paints on top.
//
// A component belongs to at most one layout at a time; adding an owned
// component fails with ErrAlreadyOwned and leaves both layouts
// unchanged. Layouts hold no GPU resources and are never mutated by the
// renderer.
type Layout struct {
	nextID     ComponentID
	components []componentEntry
	texts      []textEntry
}

type componentEntry struct {
	id ComponentID
	c  Component
}

type textEntry struct {
	id ComponentID
	t  TextComponent
}

// NewLayout creates an empty layout.
func NewLayout() *Layout {
	return &Layout{}
}

// AddComponent appends a component to the draw order and transfers its
// ownership to the layout.
func (l *Layout) AddComponent(c Component) (ComponentID, error) {
	if c == nil {
		return 0, ErrNilComponent
	}
	if c.owned() {
		return 0, ErrAlreadyOwned
	}
	c.setOwned(true)
	l.nextID++
	l.components = append(l.components, componentEntry{id: l.nextID, c: c})
	return l.nextID, nil
}

// AddTextComponent appends a text component to the text draw order and
// transfers its ownership to the layout.
func (l *Layout) AddTextComponent(t TextComponent) (ComponentID, error) {
	if t == nil {
		return 0, ErrNilComponent
	}
	if t.owned() {
		return 0, ErrAlreadyOwned
	}
	t.setOwned(true)
	l.nextID++
	l.texts = append(l.texts, textEntry{id: l.nextID, t: t})
	return l.nextID, nil
}

// Remove takes the component with the given id out of the layout and
// returns its ownership to the caller. The order of the remaining
// components is preserved. Returns ErrNotFound if the id is absent.
func (l *Layout) Remove(id ComponentID) error {
	for i, e := range l.components {
		if e.id != id {
			continue
		}
		e.c.setOwned(false)
		l.components = append(l.components[:i], l.components[i+1:]...)
		return nil
	}
	for i, e := range l.texts {
		if e.id != id {
			continue
		}
		e.t.setOwned(false)
		l.texts = append(l.texts[:i], l.texts[i+1:]...)
		return nil
	}
	return ErrNotFound
}

// Len returns the total number of components in the layout.
func (l *Layout) Len() int {
	return len(l.components) + len(l.texts)
}

// Components iterates the non-text components in draw order.
func (l *Layout) Components() iter.Seq[Component] {
	return func(yield func(Component) bool) {
		for _, e := range l.components {
			if !yield(e.c) {
				return
			}
		}
	}
}

// TextComponents iterates the text components in draw order.
func (l *Layout) TextComponents() iter.Seq[TextComponent] {
	return func(yield func(TextComponent) bool) {
		for _, e := range l.texts {
			if !yield(e.t) {
				return
			}
		}
	}
}

// EachQuad submits the enabled non-text components in draw order.
func (l *Layout) EachQuad(fn func(render.Quad)) {
	for _, e := range l.components {
		if !e.c.Enabled() {
			continue
		}
		fn(render.Quad{
			Mesh:  e.c.Mesh(),
			Model: e.c.Transform().Matrix(),
			Color: e.c.Color(),
		})
	}
}

// EachText submits the enabled text components in draw order.
func (l *Layout) EachText(fn func(render.Text)) {
	for _, e := range l.texts {
		if !e.t.Enabled() {
			continue
		}
		face := e.t.Face()
		var font any
		if face.Source != nil {
			font = face.Source
		}
		fn(render.Text{
			Content: e.t.Text(),
			Origin:  e.t.Transform().Position,
			Size:    face.Size,
			Color:   e.t.Color(),
			Font:    font,
		})
	}
}

// syncButtonLabels updates attached button labels before a frame is
// requested. Called by the facade, never by the renderer.
func (l *Layout) syncButtonLabels() {
	for _, e := range l.components {
		if b, ok := e.c.(*Button); ok {
			b.syncLabel()
		}
	}
}

// buttons iterates the enabled buttons topmost first, the order hit
// testing wants.
func (l *Layout) buttons(yield func(*Button) bool) {
	for i := len(l.components) - 1; i >= 0; i-- {
		if b, ok := l.components[i].c.(*Button); ok && b.Enabled() {
			if !yield(b) {
				return
			}
		}
	}
}
