// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSurface is returned when a renderer is created without a
	// surface to draw to.
	ErrMissingSurface = errors.New("render: missing surface")

	// ErrNoDevice is returned when neither a device provider nor a
	// backend is supplied and no GPU adapter can be opened.
	ErrNoDevice = errors.New("render: no GPU device available")

	// ErrRendererClosed is returned by operations on a closed renderer.
	ErrRendererClosed = errors.New("render: renderer is closed")

	// ErrInvalidSize is returned by Resize for zero or negative
	// dimensions.
	ErrInvalidSize = errors.New("render: invalid surface size")
)

// SurfaceError reports a surface operation that failed even after the
// surface was reconfigured and the operation retried once. The caller
// decides whether to tear down or keep going; the renderer itself stays
// usable.
type SurfaceError struct {
	// Op is the surface operation that failed: "acquire", "present" or
	// "reconfigure".
	Op string

	// Err is the underlying surface failure.
	Err error
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("render: surface %s failed: %v", e.Op, e.Err)
}

func (e *SurfaceError) Unwrap() error { return e.Err }
