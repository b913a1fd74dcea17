// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

// Option configures a Renderer during creation.
type Option func(*Renderer)

// WithClearColor sets the background color used to clear each frame.
// The default is opaque black.
func WithClearColor(c RGBA) Option {
	return func(r *Renderer) { r.clear = c }
}

// Renderer runs the frame loop against a Surface and a Backend. It
// holds the active layout and applies layout swaps and resizes only at
// frame boundaries.
//
// Not thread-safe: all methods run on the event loop goroutine.
type Renderer struct {
	surface Surface
	backend Backend
	camera  Camera
	clear   RGBA

	active     Layout
	pending    Layout
	hasPending bool

	resizeW       uint32
	resizeH       uint32
	resizePending bool

	frames uint64
	closed bool

	// scratch collections, reused across frames
	quads []Quad
	texts []Text
}

// New creates a renderer drawing to surface through backend. The
// projection is initialized from the surface size.
func New(surface Surface, backend Backend, opts ...Option) (*Renderer, error) {
	if surface == nil {
		return nil, ErrMissingSurface
	}
	if backend == nil {
		return nil, ErrNoDevice
	}
	w, h := surface.Size()
	r := &Renderer{
		surface: surface,
		backend: backend,
		camera:  NewCamera(float64(w), float64(h)),
		clear:   RGBA{A: 1},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// SetLayout schedules layout as the scene to draw and returns the
// previously installed one, passing its ownership back to the caller.
// The swap takes effect at the start of the next frame; the frame in
// flight, if any, keeps the layout it started with. Passing nil
// schedules an empty scene.
func (r *Renderer) SetLayout(layout Layout) Layout {
	prev := r.active
	if r.hasPending {
		prev = r.pending
	}
	r.pending = layout
	r.hasPending = true
	return prev
}

// ActiveLayout returns the layout the last started frame drew. Between
// SetLayout and the next frame boundary this is still the old layout.
func (r *Renderer) ActiveLayout() Layout { return r.active }

// SetClearColor changes the background color starting with the next
// frame.
func (r *Renderer) SetClearColor(c RGBA) { r.clear = c }

// ClearColor returns the current background color.
func (r *Renderer) ClearColor() RGBA { return r.clear }

// Resize schedules a surface reconfiguration and projection update for
// the next frame boundary.
func (r *Renderer) Resize(width, height uint32) error {
	if width == 0 || height == 0 {
		return ErrInvalidSize
	}
	r.resizeW = width
	r.resizeH = height
	r.resizePending = true
	return nil
}

// Projection returns the projection matrix frames are currently drawn
// with. A pending resize is not reflected until the next frame.
func (r *Renderer) Projection() Mat4 { return r.camera.Projection() }

// Viewport returns the surface size the projection was computed for.
func (r *Renderer) Viewport() (uint32, uint32) {
	w, h := r.camera.Viewport()
	return uint32(w), uint32(h)
}

// Frames returns the number of frames rendered so far.
func (r *Renderer) Frames() uint64 { return r.frames }

// RenderFrame runs one frame: apply pending resize and layout swap,
// acquire, record one pass in layout order, submit, present.
//
// An empty or nil active layout still clears and presents, so the
// window shows the background instead of stale content.
func (r *Renderer) RenderFrame() error {
	if r.closed {
		return ErrRendererClosed
	}

	if r.resizePending {
		r.resizePending = false
		w, h := r.camera.Viewport()
		if uint32(w) != r.resizeW || uint32(h) != r.resizeH {
			if err := r.surface.Reconfigure(r.resizeW, r.resizeH); err != nil {
				return &SurfaceError{Op: "reconfigure", Err: err}
			}
			r.camera.SetViewport(float64(r.resizeW), float64(r.resizeH))
			slogger().Debug("surface resized", "width", r.resizeW, "height", r.resizeH)
		}
	}

	if r.hasPending {
		r.active = r.pending
		r.pending = nil
		r.hasPending = false
	}

	frame, err := r.acquire()
	if err != nil {
		return err
	}

	w, h := r.surface.Size()
	if err := r.backend.BeginFrame(frame.View(), w, h, r.camera.Projection(), r.clear); err != nil {
		return err
	}

	r.quads = r.quads[:0]
	r.texts = r.texts[:0]
	if r.active != nil {
		r.active.EachQuad(func(q Quad) { r.quads = append(r.quads, q) })
		r.active.EachText(func(t Text) { r.texts = append(r.texts, t) })
	}
	if len(r.quads) > 0 {
		if err := r.backend.DrawQuads(r.quads); err != nil {
			return err
		}
	}
	if len(r.texts) > 0 {
		if err := r.backend.DrawTexts(r.texts); err != nil {
			return err
		}
	}

	if err := r.backend.EndFrame(); err != nil {
		return err
	}
	if err := r.surface.Present(frame); err != nil {
		return &SurfaceError{Op: "present", Err: err}
	}
	r.frames++
	return nil
}

// acquire gets the next surface texture, reconfiguring and retrying
// once on transient failure.
func (r *Renderer) acquire() (Frame, error) {
	frame, err := r.surface.Acquire()
	if err == nil {
		return frame, nil
	}
	slogger().Warn("surface acquire failed, reconfiguring", "error", err)
	w, h := r.surface.Size()
	if rerr := r.surface.Reconfigure(w, h); rerr != nil {
		return nil, &SurfaceError{Op: "reconfigure", Err: rerr}
	}
	frame, err = r.surface.Acquire()
	if err != nil {
		return nil, &SurfaceError{Op: "acquire", Err: err}
	}
	return frame, nil
}

// Close releases the backend. Close is idempotent; RenderFrame on a
// closed renderer returns ErrRendererClosed.
func (r *Renderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.backend.Release()
	return nil
}
