// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gui/render"
	"github.com/gogpu/gui/text"
)

// Backend implements render.Backend on the wgpu HAL. Draw calls
// accumulate CPU-side vertex data; EndFrame encodes a single render
// pass and submits it.
type Backend struct {
	dev      *Device
	quads    *quadPipeline
	textPipe *textPipeline

	shaper *text.Shaper
	font   *text.FontSource
	atlas  *glyphAtlas

	// per-frame state
	view      hal.TextureView
	width     uint32
	height    uint32
	proj      render.Mat4
	clear     render.RGBA
	quadVerts []byte
	quadCount uint32
	textVerts []byte
	textCount uint32
	inFrame   bool
}

// NewBackend creates a backend on the host's shared device, or on a
// standalone device when provider is nil. The default UI font is Latin
// Modern Roman; SetFont replaces it.
func NewBackend(provider any) (*Backend, error) {
	var dev *Device
	var err error
	if provider != nil {
		dev, err = DeviceFromProvider(provider)
	} else {
		dev, err = OpenDevice()
	}
	if err != nil {
		return nil, err
	}

	font, err := text.NewFontSource(lmroman10regular.TTF)
	if err != nil {
		dev.Release()
		return nil, fmt.Errorf("gpu: parse bundled font: %w", err)
	}

	return &Backend{
		dev:      dev,
		quads:    newQuadPipeline(dev.device),
		textPipe: newTextPipeline(dev.device, dev.queue),
		shaper:   text.NewShaper(),
		font:     font,
		atlas:    newGlyphAtlas(),
	}, nil
}

// SetFont replaces the font used for text runs. Glyphs of the previous
// font stay cached in the atlas.
func (b *Backend) SetFont(source *text.FontSource) {
	if source != nil {
		b.font = source
	}
}

// BeginFrame starts recording into the surface view for this frame.
func (b *Backend) BeginFrame(view any, width, height uint32, proj render.Mat4, clear render.RGBA) error {
	tv, ok := view.(hal.TextureView)
	if !ok || tv == nil {
		return fmt.Errorf("gpu: surface view is not a hal.TextureView")
	}
	b.view = tv
	b.width = width
	b.height = height
	b.proj = proj
	b.clear = clear
	b.quadVerts = b.quadVerts[:0]
	b.quadCount = 0
	b.textVerts = b.textVerts[:0]
	b.textCount = 0
	b.inFrame = true
	return nil
}

// DrawQuads accumulates all solid quads of the frame. Mesh vertices are
// transformed through the model matrix on the CPU so the whole
// collection becomes one vertex buffer and one draw.
func (b *Backend) DrawQuads(quads []render.Quad) error {
	if !b.inFrame {
		return fmt.Errorf("gpu: DrawQuads outside a frame")
	}
	for i := range quads {
		q := &quads[i]
		if !q.Mesh.Valid() {
			continue
		}
		c := q.Color.Premultiply()
		for _, v := range q.Mesh.Vertices {
			x, y := q.Model.TransformPoint(float64(v.Position[0]), float64(v.Position[1]))
			b.quadVerts = appendVertex(b.quadVerts, float32(x), float32(y),
				v.UV[0], v.UV[1], c)
			b.quadCount++
		}
	}
	return nil
}

// DrawTexts shapes and accumulates all text runs of the frame, packing
// missing glyphs into the atlas.
func (b *Backend) DrawTexts(texts []render.Text) error {
	if !b.inFrame {
		return fmt.Errorf("gpu: DrawTexts outside a frame")
	}
	for i := range texts {
		if err := b.accumulateText(&texts[i]); err != nil {
			return err
		}
	}
	return nil
}

func (b *Backend) accumulateText(t *render.Text) error {
	if t.Content == "" || t.Size <= 0 {
		return nil
	}
	font := b.font
	if src, ok := t.Font.(*text.FontSource); ok && src != nil {
		font = src
	}
	run, err := b.shaper.Shape(font, t.Content, t.Size)
	if err != nil {
		return fmt.Errorf("gpu: shape %q: %w", t.Content, err)
	}

	c := t.Color.Premultiply()
	for _, g := range run.Glyphs {
		entry, err := b.atlas.glyph(font, g.Rune, t.Size)
		if err != nil {
			return fmt.Errorf("gpu: atlas glyph %q: %w", g.Rune, err)
		}
		if entry.blank {
			continue
		}

		x0 := float32(t.Origin.X + g.X + entry.bearingX)
		y0 := float32(t.Origin.Y + g.Y + entry.bearingY)
		x1 := x0 + float32(entry.region.Width)
		y1 := y0 + float32(entry.region.Height)

		u0 := float32(entry.region.X) / atlasSize
		v0 := float32(entry.region.Y) / atlasSize
		u1 := float32(entry.region.X+entry.region.Width) / atlasSize
		v1 := float32(entry.region.Y+entry.region.Height) / atlasSize

		b.textVerts = appendVertex(b.textVerts, x0, y0, u0, v0, c)
		b.textVerts = appendVertex(b.textVerts, x0, y1, u0, v1, c)
		b.textVerts = appendVertex(b.textVerts, x1, y0, u1, v0, c)
		b.textVerts = appendVertex(b.textVerts, x1, y0, u1, v0, c)
		b.textVerts = appendVertex(b.textVerts, x0, y1, u0, v1, c)
		b.textVerts = appendVertex(b.textVerts, x1, y1, u1, v1, c)
		b.textCount += 6
	}
	return nil
}

// EndFrame encodes the render pass and submits it. The quad pipeline
// and the text pipeline are each bound at most once.
func (b *Backend) EndFrame() error {
	if !b.inFrame {
		return fmt.Errorf("gpu: EndFrame outside a frame")
	}
	b.inFrame = false

	var quadRes *quadFrameResources
	var textRes *textFrameResources

	if b.quadCount > 0 {
		if err := b.quads.ensureReady(); err != nil {
			return err
		}
		res, err := b.buildQuadResources()
		if err != nil {
			return err
		}
		quadRes = res
		defer quadRes.destroy(b.dev.device)
	}
	if b.textCount > 0 {
		if err := b.textPipe.ensureReady(); err != nil {
			return err
		}
		if err := b.textPipe.syncAtlas(b.atlas); err != nil {
			return err
		}
		res, err := b.buildTextResources()
		if err != nil {
			return err
		}
		textRes = res
		defer textRes.destroy(b.dev.device)
	}

	return b.encodeSubmit(quadRes, textRes)
}

// encodeSubmit records the single render pass of the frame and submits
// it, waiting for completion so the host can present the surface.
func (b *Backend) encodeSubmit(quadRes *quadFrameResources, textRes *textFrameResources) error {
	encoder, err := b.dev.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "gui_frame_encoder",
	})
	if err != nil {
		return fmt.Errorf("gpu: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("gui_frame"); err != nil {
		return fmt.Errorf("gpu: begin encoding: %w", err)
	}

	clear := b.clear.Premultiply()
	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "gui_frame_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       b.view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: gputypes.Color{R: clear.R, G: clear.G, B: clear.B, A: clear.A},
		}},
	})
	if quadRes != nil {
		b.quads.recordDraws(rp, quadRes)
	}
	if textRes != nil {
		b.textPipe.recordDraws(rp, textRes)
	}
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("gpu: end encoding: %w", err)
	}
	defer b.dev.device.FreeCommandBuffer(cmdBuf)

	fence, err := b.dev.device.CreateFence()
	if err != nil {
		return fmt.Errorf("gpu: create fence: %w", err)
	}
	defer b.dev.device.DestroyFence(fence)

	if err := b.dev.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("gpu: submit: %w", err)
	}

	// Wait for the GPU before the host presents the surface.
	fenceOK, err := b.dev.device.Wait(fence, 1, 5*time.Second)
	if err != nil {
		return fmt.Errorf("gpu: wait for GPU: %w", err)
	}
	if !fenceOK {
		return fmt.Errorf("gpu: wait for GPU: fence not signaled")
	}
	return nil
}

func (b *Backend) buildQuadResources() (*quadFrameResources, error) {
	vertBuf, err := b.createAndUploadBuffer("gui_quad_verts", b.quadVerts,
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return nil, err
	}
	uniformBuf, err := b.createAndUploadBuffer("gui_quad_uniform", projBytes(b.proj),
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		b.dev.device.DestroyBuffer(vertBuf)
		return nil, err
	}
	bg, err := b.quads.bindGroup(uniformBuf)
	if err != nil {
		b.dev.device.DestroyBuffer(uniformBuf)
		b.dev.device.DestroyBuffer(vertBuf)
		return nil, err
	}
	return &quadFrameResources{
		vertBuf:    vertBuf,
		uniformBuf: uniformBuf,
		bindGroup:  bg,
		vertCount:  b.quadCount,
	}, nil
}

func (b *Backend) buildTextResources() (*textFrameResources, error) {
	vertBuf, err := b.createAndUploadBuffer("gui_text_verts", b.textVerts,
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return nil, err
	}
	uniformBuf, err := b.createAndUploadBuffer("gui_text_uniform", projBytes(b.proj),
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		b.dev.device.DestroyBuffer(vertBuf)
		return nil, err
	}
	bg, err := b.textPipe.bindGroup(uniformBuf)
	if err != nil {
		b.dev.device.DestroyBuffer(uniformBuf)
		b.dev.device.DestroyBuffer(vertBuf)
		return nil, err
	}
	return &textFrameResources{
		vertBuf:    vertBuf,
		uniformBuf: uniformBuf,
		bindGroup:  bg,
		vertCount:  b.textCount,
	}, nil
}

// createAndUploadBuffer creates a GPU buffer and uploads data.
func (b *Backend) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := b.dev.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create %s: %w", label, err)
	}
	b.dev.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

// Release frees all GPU resources and the device if owned.
func (b *Backend) Release() {
	b.textPipe.destroy()
	b.quads.destroy()
	b.dev.Release()
}

// appendVertex encodes one vertex in the shared 32-byte layout.
func appendVertex(dst []byte, x, y, u, v float32, c render.RGBA) []byte {
	var buf [quadVertexStride]byte
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(x))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(y))
	binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(u))
	binary.LittleEndian.PutUint32(buf[12:], math.Float32bits(v))
	binary.LittleEndian.PutUint32(buf[16:], math.Float32bits(float32(c.R)))
	binary.LittleEndian.PutUint32(buf[20:], math.Float32bits(float32(c.G)))
	binary.LittleEndian.PutUint32(buf[24:], math.Float32bits(float32(c.B)))
	binary.LittleEndian.PutUint32(buf[28:], math.Float32bits(float32(c.A)))
	return append(dst, buf[:]...)
}

// projBytes serializes the projection matrix for the uniform buffer.
func projBytes(m render.Mat4) []byte {
	out := make([]byte, quadUniformSize)
	for i, f := range m {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(f))
	}
	return out
}
