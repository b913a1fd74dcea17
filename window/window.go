package window

import (
	"errors"

	"github.com/gogpu/gui/render"
)

// Window errors.
var (
	// ErrWindowClosed is returned when operating on a closed window.
	ErrWindowClosed = errors.New("window: window is closed")
)

// ScreenMode selects how the window occupies the screen.
type ScreenMode uint8

const (
	ScreenModeWindowed ScreenMode = iota
	ScreenModeFullscreen
	ScreenModeBorderless
)

// Config describes the window to create. Fields the host backend does
// not support are ignored with a debug log.
type Config struct {
	Title       string
	Width       uint32
	Height      uint32
	Resizable   bool
	VSync       bool
	Decorations bool
	ScreenMode  ScreenMode
}

// Window is a host window that owns the event loop and the surface the
// renderer draws into.
//
// Run blocks on the calling goroutine until the window closes. The
// frame callback runs once per frame wakeup, after any pending events
// have been delivered to the Handler.
type Window interface {
	// Surface returns the render surface of this window. The surface
	// is only acquirable while a frame callback is running.
	Surface() render.Surface

	// DeviceProvider returns the host's GPU context provider, or nil
	// when the host has not created a GPU context yet.
	DeviceProvider() any

	// SetHandler installs the event callback, replacing any previous
	// one. Must be called before Run.
	SetHandler(h Handler)

	// RequestRedraw schedules one frame. Multiple requests before the
	// frame runs coalesce into a single wakeup.
	RequestRedraw()

	// Run starts the event loop and blocks until the window closes.
	Run(frame func() error) error

	// Close asks the event loop to shut down.
	Close()
}
