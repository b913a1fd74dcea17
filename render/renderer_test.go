// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"testing"
)

type fakeFrame struct{ id int }

func (f *fakeFrame) View() any { return f.id }

// fakeSurface scripts Acquire results and records Reconfigure and
// Present calls.
type fakeSurface struct {
	w, h uint32

	acquireErrs  []error // one entry consumed per Acquire; nil means success
	acquires     int
	reconfigures [][2]uint32
	reconfErr    error
	presented    []Frame
	presentErr   error
}

func newFakeSurface(w, h uint32) *fakeSurface {
	return &fakeSurface{w: w, h: h}
}

func (s *fakeSurface) Acquire() (Frame, error) {
	s.acquires++
	if len(s.acquireErrs) > 0 {
		err := s.acquireErrs[0]
		s.acquireErrs = s.acquireErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return &fakeFrame{id: s.acquires}, nil
}

func (s *fakeSurface) Present(f Frame) error {
	if s.presentErr != nil {
		return s.presentErr
	}
	s.presented = append(s.presented, f)
	return nil
}

func (s *fakeSurface) Reconfigure(w, h uint32) error {
	if s.reconfErr != nil {
		return s.reconfErr
	}
	s.reconfigures = append(s.reconfigures, [2]uint32{w, h})
	s.w, s.h = w, h
	return nil
}

func (s *fakeSurface) Size() (uint32, uint32) { return s.w, s.h }

// fakeBackend records the call sequence of one or more frames.
type fakeBackend struct {
	calls    []string
	quads    [][]Quad
	texts    [][]Text
	proj     Mat4
	clear    RGBA
	released bool
}

func (b *fakeBackend) BeginFrame(view any, w, h uint32, proj Mat4, clear RGBA) error {
	b.calls = append(b.calls, fmt.Sprintf("begin %dx%d", w, h))
	b.proj = proj
	b.clear = clear
	return nil
}

func (b *fakeBackend) DrawQuads(quads []Quad) error {
	b.calls = append(b.calls, fmt.Sprintf("quads %d", len(quads)))
	b.quads = append(b.quads, append([]Quad(nil), quads...))
	return nil
}

func (b *fakeBackend) DrawTexts(texts []Text) error {
	b.calls = append(b.calls, fmt.Sprintf("texts %d", len(texts)))
	b.texts = append(b.texts, append([]Text(nil), texts...))
	return nil
}

func (b *fakeBackend) EndFrame() error {
	b.calls = append(b.calls, "end")
	return nil
}

func (b *fakeBackend) Release() { b.released = true }

// fakeLayout emits scripted quads and texts, optionally running a hook
// during iteration to model mid-frame mutations.
type fakeLayout struct {
	quads  []Quad
	texts  []Text
	onIter func()
}

func (l *fakeLayout) EachQuad(fn func(Quad)) {
	if l.onIter != nil {
		l.onIter()
	}
	for _, q := range l.quads {
		fn(q)
	}
}

func (l *fakeLayout) EachText(fn func(Text)) {
	for _, t := range l.texts {
		fn(t)
	}
}

func quadWithAlpha(a float64) Quad {
	return Quad{Mesh: UnitQuad(), Model: Mat4Identity(), Color: RGBA{A: a}}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		surface Surface
		backend Backend
		wantErr error
	}{
		{"nil surface", nil, &fakeBackend{}, ErrMissingSurface},
		{"nil backend", newFakeSurface(8, 8), nil, ErrNoDevice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.surface, tt.backend)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRenderFrameOrder(t *testing.T) {
	surface := newFakeSurface(640, 480)
	backend := &fakeBackend{}
	r, err := New(surface, backend)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	layout := &fakeLayout{
		quads: []Quad{quadWithAlpha(0.1), quadWithAlpha(0.2)},
		texts: []Text{{Content: "hi", Size: 16}},
	}
	r.SetLayout(layout)
	if err := r.RenderFrame(); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}

	want := []string{"begin 640x480", "quads 2", "texts 1", "end"}
	if len(backend.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", backend.calls, want)
	}
	for i := range want {
		if backend.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, backend.calls[i], want[i])
		}
	}
	if got := backend.quads[0][0].Color.A; got != 0.1 {
		t.Errorf("first quad alpha = %v, want 0.1 (insertion order)", got)
	}
	if len(surface.presented) != 1 {
		t.Errorf("presented %d frames, want 1", len(surface.presented))
	}
}

func TestIdleFrameDrawsNothing(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
	}{
		{"no layout", nil},
		{"empty layout", &fakeLayout{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := newFakeSurface(64, 64)
			backend := &fakeBackend{}
			r, _ := New(surface, backend)
			if tt.layout != nil {
				r.SetLayout(tt.layout)
			}
			if err := r.RenderFrame(); err != nil {
				t.Fatalf("RenderFrame: %v", err)
			}
			want := []string{"begin 64x64", "end"}
			if len(backend.calls) != 2 || backend.calls[0] != want[0] || backend.calls[1] != want[1] {
				t.Errorf("calls = %v, want %v (no draws)", backend.calls, want)
			}
			if len(surface.presented) != 1 {
				t.Errorf("idle frame must still present, got %d presents", len(surface.presented))
			}
		})
	}
}

func TestLayoutSwapAtFrameBoundary(t *testing.T) {
	surface := newFakeSurface(64, 64)
	backend := &fakeBackend{}
	r, _ := New(surface, backend)

	first := &fakeLayout{quads: []Quad{quadWithAlpha(1)}}
	second := &fakeLayout{quads: []Quad{quadWithAlpha(2), quadWithAlpha(3)}}

	r.SetLayout(first)
	if r.ActiveLayout() != nil {
		t.Error("layout active before any frame")
	}
	if err := r.RenderFrame(); err != nil {
		t.Fatalf("frame 1: %v", err)
	}
	if r.ActiveLayout() != Layout(first) {
		t.Error("first layout not active after frame 1")
	}

	r.SetLayout(second)
	if r.ActiveLayout() != Layout(first) {
		t.Error("swap applied before frame boundary")
	}
	if err := r.RenderFrame(); err != nil {
		t.Fatalf("frame 2: %v", err)
	}
	if r.ActiveLayout() != Layout(second) {
		t.Error("second layout not active after frame 2")
	}
	if len(backend.quads[0]) != 1 || len(backend.quads[1]) != 2 {
		t.Errorf("frame quad counts = %d, %d; want 1, 2",
			len(backend.quads[0]), len(backend.quads[1]))
	}
}

func TestSwapDuringFrameKeepsCurrentLayout(t *testing.T) {
	surface := newFakeSurface(64, 64)
	backend := &fakeBackend{}
	r, _ := New(surface, backend)

	second := &fakeLayout{quads: []Quad{quadWithAlpha(2), quadWithAlpha(3)}}
	first := &fakeLayout{quads: []Quad{quadWithAlpha(1)}}
	// Swap requested while the frame iterates the active layout.
	first.onIter = func() { r.SetLayout(second) }

	r.SetLayout(first)
	if err := r.RenderFrame(); err != nil {
		t.Fatalf("frame 1: %v", err)
	}
	if len(backend.quads[0]) != 1 {
		t.Errorf("frame 1 drew %d quads, want 1 from the layout it started with",
			len(backend.quads[0]))
	}
	if err := r.RenderFrame(); err != nil {
		t.Fatalf("frame 2: %v", err)
	}
	if len(backend.quads[1]) != 2 {
		t.Errorf("frame 2 drew %d quads, want 2 from the swapped layout",
			len(backend.quads[1]))
	}
}

func TestAcquireRetryOnce(t *testing.T) {
	t.Run("transient failure recovers", func(t *testing.T) {
		surface := newFakeSurface(64, 64)
		surface.acquireErrs = []error{errors.New("outdated"), nil}
		backend := &fakeBackend{}
		r, _ := New(surface, backend)

		if err := r.RenderFrame(); err != nil {
			t.Fatalf("RenderFrame: %v", err)
		}
		if surface.acquires != 2 {
			t.Errorf("acquires = %d, want 2 (one retry)", surface.acquires)
		}
		if len(surface.reconfigures) != 1 {
			t.Errorf("reconfigures = %d, want 1 before retry", len(surface.reconfigures))
		}
	})

	t.Run("persistent failure returns SurfaceError", func(t *testing.T) {
		surface := newFakeSurface(64, 64)
		surface.acquireErrs = []error{errors.New("lost"), errors.New("lost")}
		r, _ := New(surface, &fakeBackend{})

		err := r.RenderFrame()
		var serr *SurfaceError
		if !errors.As(err, &serr) {
			t.Fatalf("RenderFrame error = %v, want *SurfaceError", err)
		}
		if serr.Op != "acquire" {
			t.Errorf("Op = %q, want %q", serr.Op, "acquire")
		}
		if surface.acquires != 2 {
			t.Errorf("acquires = %d, want exactly 2", surface.acquires)
		}
	})
}

func TestResizeAppliedAtFrameBoundary(t *testing.T) {
	surface := newFakeSurface(640, 480)
	backend := &fakeBackend{}
	r, _ := New(surface, backend)

	if err := r.Resize(0, 100); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Resize(0, 100) = %v, want ErrInvalidSize", err)
	}

	before := r.Projection()
	if err := r.Resize(800, 600); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if r.Projection() != before {
		t.Error("projection changed before frame boundary")
	}

	if err := r.RenderFrame(); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	if len(surface.reconfigures) != 1 || surface.reconfigures[0] != [2]uint32{800, 600} {
		t.Errorf("reconfigures = %v, want [[800 600]]", surface.reconfigures)
	}
	if r.Projection() == before {
		t.Error("projection not updated after resize frame")
	}

	// The frame after a resize projects the new corner to clip (1, -1).
	x, y := r.Projection().TransformPoint(800, 600)
	if x < 0.999 || x > 1.001 || y > -0.999 || y < -1.001 {
		t.Errorf("corner projects to (%v, %v), want (1, -1)", x, y)
	}
}

func TestClearColor(t *testing.T) {
	surface := newFakeSurface(64, 64)
	backend := &fakeBackend{}
	r, _ := New(surface, backend, WithClearColor(RGBA{R: 1, A: 1}))

	if err := r.RenderFrame(); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	if backend.clear != (RGBA{R: 1, A: 1}) {
		t.Errorf("clear = %v, want opaque red", backend.clear)
	}

	r.SetClearColor(RGBA{B: 1, A: 1})
	if err := r.RenderFrame(); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	if backend.clear != (RGBA{B: 1, A: 1}) {
		t.Errorf("clear = %v, want opaque blue", backend.clear)
	}
}

func TestClose(t *testing.T) {
	surface := newFakeSurface(64, 64)
	backend := &fakeBackend{}
	r, _ := New(surface, backend)

	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !backend.released {
		t.Error("backend not released on Close")
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close = %v, want nil", err)
	}
	if err := r.RenderFrame(); !errors.Is(err, ErrRendererClosed) {
		t.Errorf("RenderFrame after Close = %v, want ErrRendererClosed", err)
	}
}

func TestPresentFailure(t *testing.T) {
	surface := newFakeSurface(64, 64)
	surface.presentErr = errors.New("gone")
	r, _ := New(surface, &fakeBackend{})

	err := r.RenderFrame()
	var serr *SurfaceError
	if !errors.As(err, &serr) {
		t.Fatalf("RenderFrame error = %v, want *SurfaceError", err)
	}
	if serr.Op != "present" {
		t.Errorf("Op = %q, want %q", serr.Op, "present")
	}
}

func TestSetLayoutReturnsPrevious(t *testing.T) {
	surface := newFakeSurface(64, 64)
	backend := &fakeBackend{}
	r, _ := New(surface, backend)

	first := &fakeLayout{}
	second := &fakeLayout{}
	third := &fakeLayout{}

	if prev := r.SetLayout(first); prev != nil {
		t.Errorf("first install returned %v, want nil", prev)
	}

	// A pending, never-drawn layout is still the one handed back.
	if prev := r.SetLayout(second); prev != Layout(first) {
		t.Error("pending layout not returned by the next swap")
	}

	if err := r.RenderFrame(); err != nil {
		t.Fatalf("frame: %v", err)
	}
	if prev := r.SetLayout(third); prev != Layout(second) {
		t.Error("active layout not returned after the frame boundary")
	}
}
