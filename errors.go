package gui

import (
	"errors"

	"github.com/gogpu/gui/render"
)

// Toolkit errors.
var (
	// ErrAlreadyOwned is returned when adding a component that already
	// belongs to a layout.
	ErrAlreadyOwned = errors.New("gui: component already owned by a layout")

	// ErrNotFound is returned when removing a component id the layout
	// does not hold.
	ErrNotFound = errors.New("gui: component not found")

	// ErrNilComponent is returned when adding a nil component.
	ErrNilComponent = errors.New("gui: component is nil")

	// ErrDegenerateGeometry is returned by component constructors for
	// sizes that cannot produce drawable geometry.
	ErrDegenerateGeometry = errors.New("gui: degenerate geometry")

	// ErrClosed is returned when operating on a closed GUI.
	ErrClosed = errors.New("gui: closed")
)

// ErrMissingSurface is returned when a renderer is constructed before a
// window surface exists.
var ErrMissingSurface = render.ErrMissingSurface

// SurfaceError is a fatal surface failure propagated out of Run.
type SurfaceError = render.SurfaceError
