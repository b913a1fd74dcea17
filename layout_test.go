package gui

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/gui/render"
)

func mustPanel(t *testing.T, x, y float64) *Panel {
	t.Helper()
	p, err := NewPanel(x, y, 10, 10, White)
	if err != nil {
		t.Fatalf("NewPanel: %v", err)
	}
	return p
}

func mustLabel(t *testing.T, content string) *Label {
	t.Helper()
	l, err := NewLabel(content, 0, 0, 16)
	if err != nil {
		t.Fatalf("NewLabel: %v", err)
	}
	return l
}

func TestLayoutInsertionOrder(t *testing.T) {
	l := NewLayout()
	a := mustPanel(t, 1, 0)
	b := mustPanel(t, 2, 0)
	c := mustPanel(t, 3, 0)
	for _, p := range []*Panel{a, b, c} {
		if _, err := l.AddComponent(p); err != nil {
			t.Fatalf("AddComponent: %v", err)
		}
	}

	got := slices.Collect(l.Components())
	want := []Component{a, b, c}
	if !slices.Equal(got, want) {
		t.Errorf("Components() order = %v, want %v", got, want)
	}
}

func TestLayoutRemovePreservesOrder(t *testing.T) {
	l := NewLayout()
	a := mustPanel(t, 1, 0)
	b := mustPanel(t, 2, 0)
	c := mustPanel(t, 3, 0)
	l.AddComponent(a)
	idB, _ := l.AddComponent(b)
	l.AddComponent(c)

	if err := l.Remove(idB); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	got := slices.Collect(l.Components())
	if !slices.Equal(got, []Component{a, c}) {
		t.Errorf("order after removal = %v, want [a c]", got)
	}

	// Removed components give up their ownership and can be re-added.
	if _, err := l.AddComponent(b); err != nil {
		t.Errorf("re-add after remove: %v", err)
	}
}

func TestLayoutRemoveNotFound(t *testing.T) {
	l := NewLayout()
	if err := l.Remove(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove(42) = %v, want ErrNotFound", err)
	}
}

func TestLayoutRejectsDoubleAdd(t *testing.T) {
	l1 := NewLayout()
	l2 := NewLayout()
	p := mustPanel(t, 0, 0)

	if _, err := l1.AddComponent(p); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := l2.AddComponent(p); !errors.Is(err, ErrAlreadyOwned) {
		t.Fatalf("second add = %v, want ErrAlreadyOwned", err)
	}
	if l1.Len() != 1 || l2.Len() != 0 {
		t.Errorf("layout sizes = %d, %d; want 1, 0", l1.Len(), l2.Len())
	}

	// Same layout twice is also a double add.
	if _, err := l1.AddComponent(p); !errors.Is(err, ErrAlreadyOwned) {
		t.Errorf("re-add to owner = %v, want ErrAlreadyOwned", err)
	}
}

func TestLayoutRejectsNil(t *testing.T) {
	l := NewLayout()
	if _, err := l.AddComponent(nil); !errors.Is(err, ErrNilComponent) {
		t.Errorf("AddComponent(nil) = %v, want ErrNilComponent", err)
	}
	if _, err := l.AddTextComponent(nil); !errors.Is(err, ErrNilComponent) {
		t.Errorf("AddTextComponent(nil) = %v, want ErrNilComponent", err)
	}
}

func TestLayoutTextComponents(t *testing.T) {
	l := NewLayout()
	a := mustLabel(t, "a")
	b := mustLabel(t, "b")
	l.AddTextComponent(a)
	idB, _ := l.AddTextComponent(b)

	got := slices.Collect(l.TextComponents())
	if !slices.Equal(got, []TextComponent{a, b}) {
		t.Errorf("TextComponents() = %v, want [a b]", got)
	}

	if err := l.Remove(idB); err != nil {
		t.Fatalf("Remove text: %v", err)
	}
	got = slices.Collect(l.TextComponents())
	if !slices.Equal(got, []TextComponent{a}) {
		t.Errorf("TextComponents() after remove = %v, want [a]", got)
	}
}

func TestEachQuadSkipsDisabled(t *testing.T) {
	l := NewLayout()
	a := mustPanel(t, 1, 0)
	b := mustPanel(t, 2, 0)
	l.AddComponent(a)
	l.AddComponent(b)
	a.SetEnabled(false)

	var quads []render.Quad
	l.EachQuad(func(q render.Quad) { quads = append(quads, q) })
	if len(quads) != 1 {
		t.Fatalf("quads = %d, want 1", len(quads))
	}
	if x, _ := quads[0].Model.TransformPoint(0, 0); x != 2 {
		t.Errorf("remaining quad origin x = %v, want 2", x)
	}
}

func TestEachTextFields(t *testing.T) {
	l := NewLayout()
	label := mustLabel(t, "hello")
	label.Transform().Position = Vec2{X: 30, Y: 40}
	label.SetColor(Red)
	l.AddTextComponent(label)

	var texts []render.Text
	l.EachText(func(tx render.Text) { texts = append(texts, tx) })
	if len(texts) != 1 {
		t.Fatalf("texts = %d, want 1", len(texts))
	}
	tx := texts[0]
	if tx.Content != "hello" || tx.Size != 16 {
		t.Errorf("content/size = %q/%v, want hello/16", tx.Content, tx.Size)
	}
	if tx.Origin != (Vec2{X: 30, Y: 40}) {
		t.Errorf("origin = %v, want (30, 40)", tx.Origin)
	}
	if tx.Color != Red {
		t.Errorf("color = %v, want red", tx.Color)
	}
	if tx.Font != nil {
		t.Errorf("default font handle = %v, want nil", tx.Font)
	}
}
