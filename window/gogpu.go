package window

import (
	"errors"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gui/render"
)

// gogpuWindow adapts a gogpu application window. The host owns the
// swapchain: it acquires the surface texture before OnDraw and presents
// it after, so the surface adapter hands out the current frame's view
// and treats Present and Reconfigure as host-managed.
type gogpuWindow struct {
	app     *gogpu.App
	surface *hostSurface
	handler Handler
	frame   func() error
	token   *gogpu.AnimationToken
	running bool
	closed  bool
}

// New creates a gogpu-backed window. The window is not shown until Run.
func New(cfg Config) Window {
	if cfg.Width == 0 {
		cfg.Width = 800
	}
	if cfg.Height == 0 {
		cfg.Height = 600
	}
	if cfg.Title == "" {
		cfg.Title = "gui"
	}

	// The gogpu config covers title and size; the host manages vsync,
	// decorations and screen mode itself.
	if !cfg.Resizable || !cfg.VSync || !cfg.Decorations || cfg.ScreenMode != ScreenModeWindowed {
		slogger().Debug("window hints not supported by gogpu host",
			"resizable", cfg.Resizable, "vsync", cfg.VSync,
			"decorations", cfg.Decorations, "screenMode", cfg.ScreenMode)
	}
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Title).
		WithSize(int(cfg.Width), int(cfg.Height)).
		WithContinuousRender(false)) // wait for events, render on demand

	return &gogpuWindow{
		app:     app,
		surface: &hostSurface{width: cfg.Width, height: cfg.Height},
	}
}

func (w *gogpuWindow) Surface() render.Surface { return w.surface }

func (w *gogpuWindow) DeviceProvider() any {
	if p := w.app.GPUContextProvider(); p != nil {
		return p
	}
	return nil
}

func (w *gogpuWindow) SetHandler(h Handler) { w.handler = h }

func (w *gogpuWindow) emit(ev Event) {
	if w.handler != nil {
		w.handler(ev)
	}
}

// RequestRedraw schedules one frame by starting a host animation token.
// The token is stopped when the frame arrives, so the loop goes back to
// sleeping on events instead of rendering continuously.
func (w *gogpuWindow) RequestRedraw() {
	if w.closed || !w.running {
		return
	}
	if w.token == nil {
		w.token = w.app.StartAnimation()
	}
}

func (w *gogpuWindow) Run(frame func() error) error {
	if w.closed {
		return ErrWindowClosed
	}
	if w.running {
		return errors.New("window: Run called twice")
	}
	w.running = true
	w.frame = frame

	w.app.OnDraw(w.onDraw)
	w.app.EventSource().OnKeyPress(func(key gpucontext.Key, mods gpucontext.Modifiers) {
		w.emit(KeyEvent{Key: key, Modifiers: mods})
	})
	w.app.OnClose(func() {
		if w.token != nil {
			w.token.Stop()
			w.token = nil
		}
		w.closed = true
		w.emit(CloseEvent{})
	})

	slogger().Info("starting event loop",
		"width", w.surface.width, "height", w.surface.height)
	err := w.app.Run()
	w.running = false
	return err
}

func (w *gogpuWindow) onDraw(dc *gogpu.Context) {
	// A one-shot redraw request has been delivered.
	if w.token != nil {
		w.token.Stop()
		w.token = nil
	}

	width, height := dc.Width(), dc.Height()
	if width <= 0 || height <= 0 {
		return
	}
	uw, uh := uint32(width), uint32(height)
	if uw != w.surface.width || uh != w.surface.height {
		w.surface.width, w.surface.height = uw, uh
		slogger().Debug("window resized", "width", uw, "height", uh)
		w.emit(ResizeEvent{Width: uw, Height: uh})
	}
	w.emit(RedrawEvent{})

	w.surface.begin(dc.SurfaceView())
	defer w.surface.end()

	if w.frame != nil {
		if err := w.frame(); err != nil {
			slogger().Error("frame failed", "error", err)
		}
	}
}

func (w *gogpuWindow) Close() {
	if w.closed {
		return
	}
	w.app.Quit()
}

// hostSurface exposes the gogpu surface through render.Surface. The
// view is only valid for the duration of one OnDraw callback.
type hostSurface struct {
	view   any
	width  uint32
	height uint32
	active bool
}

func (s *hostSurface) begin(view any) {
	s.view = view
	s.active = true
}

func (s *hostSurface) end() {
	s.view = nil
	s.active = false
}

func (s *hostSurface) Acquire() (render.Frame, error) {
	if !s.active || s.view == nil {
		return nil, errors.New("window: surface view not available outside a frame")
	}
	return hostFrame{view: s.view}, nil
}

// Present is a no-op: the host presents the surface texture itself
// after the draw callback returns.
func (s *hostSurface) Present(render.Frame) error { return nil }

// Reconfigure is a no-op: the host reconfigures the swapchain on
// resize before the next draw callback.
func (s *hostSurface) Reconfigure(width, height uint32) error {
	s.width, s.height = width, height
	return nil
}

func (s *hostSurface) Size() (uint32, uint32) { return s.width, s.height }

type hostFrame struct {
	view any
}

func (f hostFrame) View() any { return f.view }
