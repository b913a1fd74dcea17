// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

// Frame is one acquired surface texture. View returns the texture view
// to render into; for GPU surfaces it is a hal.TextureView, passed as
// any so fakes can stand in during tests.
type Frame interface {
	View() any
}

// Surface is the window-side swapchain the renderer draws to. The gui
// window package provides the real implementation; tests provide fakes.
//
// Surfaces are not thread-safe. All calls happen on the event loop
// goroutine.
type Surface interface {
	// Acquire returns the texture for the next frame. It may fail
	// transiently (outdated swapchain after a resize, device lost for a
	// frame); the renderer reconfigures and retries once before giving
	// up.
	Acquire() (Frame, error)

	// Present hands the frame back for display.
	Present(Frame) error

	// Reconfigure resizes or rebuilds the swapchain.
	Reconfigure(width, height uint32) error

	// Size returns the current surface size in physical pixels.
	Size() (width, height uint32)
}
