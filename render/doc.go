// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render owns the frame loop of the gui toolkit.
//
// A Renderer is created with a Surface (the swapchain of a window, or a
// fake in tests) and a Backend (the GPU pipelines, or a recorder in
// tests). Each call to RenderFrame runs one frame:
//
//  1. Apply a pending resize, updating the surface and the projection.
//  2. Apply a pending layout swap. Swaps requested between frames take
//     effect here and nowhere else, so a frame never mixes two layouts.
//  3. Acquire the surface texture. On failure the surface is
//     reconfigured and the acquire retried once; a second failure
//     returns a *SurfaceError.
//  4. Record one render pass: clear, then all quads in layout order,
//     then all text runs in layout order. Quads and text use separate
//     pipelines, each bound at most once per frame.
//  5. Submit and present.
//
// # Key Principle
//
// The renderer RECEIVES a GPU device from the host window, it does NOT
// create its own. The host passes a gpucontext.DeviceProvider and the
// backend shares the window's device and queue.
//
// Renderers are NOT thread-safe. Drive a renderer from the event loop
// goroutine only.
package render
