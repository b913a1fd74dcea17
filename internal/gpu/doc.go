// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpu implements the render.Backend on the wgpu HAL.
//
// The backend owns two fixed render pipelines: a quad pipeline for
// solid-colored component meshes and a text pipeline sampling a glyph
// atlas. Both draw with premultiplied alpha blending into the surface
// texture view the window acquired.
//
// Per frame, draws are accumulated into CPU-side vertex buffers and
// encoded as a single render pass at EndFrame: clear, one draw for all
// quads, one draw for all glyphs. Each pipeline is bound at most once
// per frame.
//
// The device is shared with the host window through a
// gpucontext.DeviceProvider; when no provider is available (headless
// tools) the backend opens a standalone Vulkan device.
package gpu
