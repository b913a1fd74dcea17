package gui

import (
	"github.com/gogpu/gui/internal/gpu"
	"github.com/gogpu/gui/render"
	"github.com/gogpu/gui/window"
)

// Event aliases so applications only import gui.
type (
	// Event is a window event delivered to the installed handler.
	Event = window.Event

	// Handler receives events on the event loop goroutine.
	Handler = window.Handler

	ResizeEvent      = window.ResizeEvent
	KeyEvent         = window.KeyEvent
	MouseButtonEvent = window.MouseButtonEvent
	MouseMoveEvent   = window.MouseMoveEvent
	CloseEvent       = window.CloseEvent
	RedrawEvent      = window.RedrawEvent
)

// GUI composes a window and a renderer behind one object. It owns the
// event loop: Run blocks until the window closes, waking only on input,
// resize or an explicit RequestRedraw.
//
// All methods must be called from the goroutine that calls Run (or
// before Run). Event and button callbacks run on that same goroutine
// with exclusive access to the installed layout.
type GUI struct {
	win      window.Window
	renderer *render.Renderer
	layout   *Layout
	handler  Handler
	cfg      config
	closed   bool

	// newBackend builds the GPU backend once the host exposes its
	// device. Swapped for a fake in tests.
	newBackend func(provider any) (render.Backend, error)
}

// New creates the window and prepares the GUI. The renderer is brought
// up on the first frame, once the host has created its GPU context.
func New(opts ...Option) (*GUI, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &GUI{
		cfg: cfg,
		newBackend: func(provider any) (render.Backend, error) {
			return gpu.NewBackend(provider)
		},
	}
	g.win = window.New(cfg.window)
	g.win.SetHandler(g.dispatch)
	return g, nil
}

// SetLayout installs the layout the renderer draws and returns the
// previously installed one, passing its ownership back to the caller.
// The swap takes effect at the next frame boundary; passing nil leaves
// the renderer drawing an empty cleared frame.
func (g *GUI) SetLayout(l *Layout) *Layout {
	prev := g.layout
	g.layout = l
	if g.renderer != nil {
		if l == nil {
			g.renderer.SetLayout(nil)
		} else {
			g.renderer.SetLayout(l)
		}
		g.win.RequestRedraw()
	}
	return prev
}

// Layout returns the installed layout.
func (g *GUI) Layout() *Layout { return g.layout }

// SetEventHandler installs the application event callback, fully
// replacing any previous one. Button hit testing runs before the
// handler sees the event.
func (g *GUI) SetEventHandler(h Handler) { g.handler = h }

// Renderer returns the renderer, or nil before the first frame.
func (g *GUI) Renderer() *render.Renderer { return g.renderer }

// RequestRedraw schedules one frame. Requests coalesce.
func (g *GUI) RequestRedraw() { g.win.RequestRedraw() }

// Run shows the window and blocks on the event loop until the window
// closes or a fatal render error occurs.
func (g *GUI) Run() error {
	if g.closed {
		return ErrClosed
	}
	return g.win.Run(g.frame)
}

// Close asks the event loop to shut down and releases the renderer.
func (g *GUI) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.win.Close()
	if g.renderer != nil {
		g.renderer.Close()
	}
}

// frame runs once per window wakeup.
func (g *GUI) frame() error {
	if g.renderer == nil {
		if err := g.initRenderer(); err != nil {
			return err
		}
	}
	if g.layout != nil {
		g.layout.syncButtonLabels()
	}
	return g.renderer.RenderFrame()
}

// initRenderer brings up the GPU backend and the renderer. The window
// surface must exist first: constructing the renderer without one fails
// with ErrMissingSurface.
func (g *GUI) initRenderer() error {
	backend, err := g.newBackend(g.win.DeviceProvider())
	if err != nil {
		return err
	}
	r, err := render.New(g.win.Surface(), backend)
	if err != nil {
		backend.Release()
		return err
	}
	r.SetClearColor(g.cfg.clear)
	if g.layout != nil {
		r.SetLayout(g.layout)
	}
	g.renderer = r
	Logger().Info("renderer ready",
		"width", g.cfg.window.Width, "height", g.cfg.window.Height)
	return nil
}

// dispatch routes window events: resize to the renderer, clicks to
// button hit testing, then everything to the installed handler.
func (g *GUI) dispatch(ev Event) {
	switch e := ev.(type) {
	case ResizeEvent:
		if g.renderer != nil {
			if err := g.renderer.Resize(e.Width, e.Height); err != nil {
				Logger().Warn("resize rejected", "error", err)
			}
		}
	case MouseButtonEvent:
		if e.Button == window.MouseButtonLeft {
			g.dispatchClick(e)
		}
	case CloseEvent:
		g.closed = true
	}
	if g.handler != nil {
		g.handler(ev)
	}
}

// dispatchClick resolves a left click against the installed layout's
// buttons, topmost first. A release always goes to the button holding
// the press, even if the pointer moved off it.
func (g *GUI) dispatchClick(e MouseButtonEvent) {
	if g.layout == nil {
		return
	}
	if e.Pressed {
		g.layout.buttons(func(b *Button) bool {
			if !b.Contains(e.X, e.Y) {
				return true
			}
			b.Press()
			g.win.RequestRedraw()
			return false
		})
		return
	}
	g.layout.buttons(func(b *Button) bool {
		if !b.Pressed() {
			return true
		}
		b.Release()
		g.win.RequestRedraw()
		return false
	})
}
