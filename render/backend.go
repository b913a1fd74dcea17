// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

// Backend records and submits the GPU work for one frame. The real
// implementation lives in internal/gpu and owns the two pipelines;
// tests inject a recording fake through WithBackend.
//
// Calls arrive in a fixed order each frame: BeginFrame, then at most one
// DrawQuads and at most one DrawTexts, then EndFrame. DrawQuads and
// DrawTexts receive the whole collection for the frame so each pipeline
// is bound at most once.
type Backend interface {
	// BeginFrame starts recording into the given surface view. view is
	// the Frame.View() of the acquired texture.
	BeginFrame(view any, width, height uint32, proj Mat4, clear RGBA) error

	// DrawQuads records all solid quads for this frame, in order.
	// Not called when the frame has no quads.
	DrawQuads(quads []Quad) error

	// DrawTexts records all text runs for this frame, in order.
	// Not called when the frame has no text.
	DrawTexts(texts []Text) error

	// EndFrame submits the recorded pass and waits for completion.
	EndFrame() error

	// Release frees GPU resources. The backend is unusable afterwards.
	Release()
}
