// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/fbo"
	"github.com/gogpu/fbo/backend"
	"github.com/gogpu/fbo/uniform"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// PipelineProgram is a program the driver can draw with.
type PipelineProgram interface {
	fbo.Program

	// RenderPipeline returns the pipeline compiled for the target formats.
	RenderPipeline() hal.RenderPipeline
}

// BindGroupProgram is implemented by programs with resources in group 0.
type BindGroupProgram interface {
	BindGroup() hal.BindGroup
}

// UniformBufferProgram is implemented by programs that keep their uniforms
// in one buffer. Changed uniforms are written at UniformOffset(location)
// before the pass is encoded.
type UniformBufferProgram interface {
	UniformBuffer() hal.Buffer
	UniformOffset(location uint32) uint64
}

// SetSurfaceDepthView sets the depth-stencil view of the default
// framebuffer. Nil removes it.
func (d *Driver) SetSurfaceDepthView(view hal.TextureView) {
	d.surfaceDepth = view
}

// Clear clears the requested buffers with a render pass that does nothing
// but load-clear them.
func (d *Driver) Clear(c *fbo.ClearCall) error {
	if d.closed {
		return backend.ErrClosed
	}
	desc, err := d.passDescriptor("fbo_clear", c.Target)
	if err != nil {
		return err
	}
	if c.Color != nil {
		for i := range desc.ColorAttachments {
			desc.ColorAttachments[i].LoadOp = gputypes.LoadOpClear
			desc.ColorAttachments[i].ClearValue = *c.Color
		}
	}
	if ds := desc.DepthStencilAttachment; ds != nil {
		if c.Depth != nil {
			ds.DepthLoadOp = gputypes.LoadOpClear
			ds.DepthClearValue = *c.Depth
		}
		if c.Stencil != nil {
			ds.StencilLoadOp = gputypes.LoadOpClear
			ds.StencilClearValue = uint32(*c.Stencil)
		}
	}
	return d.submit("fbo_clear", desc, func(hal.RenderPassEncoder) {})
}

// Draw encodes and submits one draw.
func (d *Driver) Draw(c *fbo.DrawCall) error {
	if d.closed {
		return backend.ErrClosed
	}
	prog, ok := c.Program.(PipelineProgram)
	if !ok {
		return fmt.Errorf("%w: program %d", ErrNoPipeline, c.Program.ID())
	}
	pipeline := prog.RenderPipeline()
	if pipeline == nil {
		return fmt.Errorf("%w: program %d", ErrNoPipeline, c.Program.ID())
	}
	if c.Indices.Primitive == fbo.TriangleFan {
		return fmt.Errorf("%w: %s", ErrUnsupportedPrimitive, c.Indices.Primitive)
	}

	type vertexBinding struct {
		buf    hal.Buffer
		offset uint64
	}
	vertices := make([]vertexBinding, 0, len(c.Vertices))
	for _, v := range c.Vertices {
		buf, err := d.buffer(v.Buffer.ID())
		if err != nil {
			return err
		}
		vertices = append(vertices, vertexBinding{buf, uint64(v.Offset) * uint64(v.Buffer.Stride())})
	}

	var (
		indexBuf    hal.Buffer
		indexFmt    gputypes.IndexFormat
		indexOffset uint64
	)
	if c.Indices.Indexed() {
		var err error
		if indexFmt, err = indexFormat(c.Indices.Buffer.IndexType()); err != nil {
			return err
		}
		if indexBuf, err = d.buffer(c.Indices.Buffer.ID()); err != nil {
			return err
		}
		indexOffset = uint64(c.Indices.Offset) * uint64(c.Indices.Buffer.IndexType().Size())
	}

	if ub, ok := c.Program.(UniformBufferProgram); ok && len(c.Uniforms) > 0 {
		d.writeUniforms(ub, c.Uniforms)
	}

	desc, err := d.passDescriptor("fbo_draw", c.Target)
	if err != nil {
		return err
	}

	params := c.Parameters
	vw, vh := c.Width, c.Height
	return d.submit("fbo_draw", desc, func(rp hal.RenderPassEncoder) {
		rp.SetPipeline(pipeline)
		if bg, ok := c.Program.(BindGroupProgram); ok && bg.BindGroup() != nil {
			rp.SetBindGroup(0, bg.BindGroup(), nil)
		}
		if vp := params.Viewport; vp != nil {
			x, y := topLeft(*vp, vh)
			rp.SetViewport(float32(x), float32(y), float32(vp.Width), float32(vp.Height), 0, 1)
		}
		if sc := params.Scissor; sc != nil {
			x, y := topLeft(*sc, vh)
			var w, h uint32
			if x < vw {
				w = min(sc.Width, vw-x)
			}
			if y < vh {
				h = min(sc.Height, vh-y)
			}
			rp.SetScissorRect(x, y, w, h)
		}
		for slot, v := range vertices {
			rp.SetVertexBuffer(uint32(slot), v.buf, v.offset)
		}

		instances := c.InstanceCount()
		if indexBuf != nil {
			rp.SetIndexBuffer(indexBuf, indexFmt, indexOffset)
			rp.DrawIndexed(uint32(c.Indices.Length), instances, 0, 0, 0)
		} else {
			rp.Draw(c.VertexCount(), instances, 0, 0)
		}
	})
}

// topLeft converts the bottom-left origin of r to the top-left origin
// WebGPU uses on a surface of the given height.
func topLeft(r fbo.Rect, height uint32) (x, y uint32) {
	top := r.Bottom + r.Height
	if top > height {
		return r.Left, 0
	}
	return r.Left, height - top
}

// writeUniforms uploads the changed uniforms as little-endian words.
// Textures and samplers live in bind groups and are skipped.
func (d *Driver) writeUniforms(ub UniformBufferProgram, uploads []fbo.UniformUpload) {
	buf := ub.UniformBuffer()
	if buf == nil {
		return
	}
	for _, u := range uploads {
		data := uniformBytes(u.Value)
		if data == nil {
			continue
		}
		d.queue.WriteBuffer(buf, ub.UniformOffset(u.Location), data)
	}
}

func uniformBytes(v uniform.Value) []byte {
	switch v.Kind() {
	case uniform.KindInt, uniform.KindUint:
		return binary.LittleEndian.AppendUint32(nil, uint32(v.Int()))
	case uniform.KindTexture, uniform.KindSampler, uniform.KindInvalid:
		return nil
	}
	fs := v.Floats()
	data := make([]byte, 0, 4*len(fs))
	for _, f := range fs {
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(f))
	}
	return data
}

// passDescriptor builds a render pass over target that loads and stores
// every attachment.
func (d *Driver) passDescriptor(label string, target *fbo.Attachments) (*hal.RenderPassDescriptor, error) {
	desc := &hal.RenderPassDescriptor{Label: label}
	colorAttachment := func(v hal.TextureView) hal.RenderPassColorAttachment {
		return hal.RenderPassColorAttachment{
			View:    v,
			LoadOp:  gputypes.LoadOpLoad,
			StoreOp: gputypes.StoreOpStore,
		}
	}

	if target == nil {
		if d.surface == nil {
			return nil, ErrNoSurfaceView
		}
		desc.ColorAttachments = []hal.RenderPassColorAttachment{colorAttachment(d.surface)}
		if d.surfaceDepth != nil {
			desc.DepthStencilAttachment = depthStencilAttachment(d.surfaceDepth)
		}
		return desc, nil
	}

	for _, c := range target.Colors {
		v, err := d.view(c.Attachment.ID)
		if err != nil {
			return nil, err
		}
		for uint32(len(desc.ColorAttachments)) < c.Slot {
			// Unbound slots stay empty.
			desc.ColorAttachments = append(desc.ColorAttachments, hal.RenderPassColorAttachment{})
		}
		desc.ColorAttachments = append(desc.ColorAttachments, colorAttachment(v))
	}

	ds := target.DepthStencil
	var dsID fbo.NativeID
	switch ds.Kind {
	case fbo.DepthOnly:
		dsID = ds.Depth.ID
	case fbo.StencilOnly:
		dsID = ds.Stencil.ID
	case fbo.DepthAndStencil:
		if ds.Depth.ID != ds.Stencil.ID {
			return nil, fmt.Errorf("%w: depth %d, stencil %d", ErrSeparateDepthStencil, ds.Depth.ID, ds.Stencil.ID)
		}
		dsID = ds.Depth.ID
	}
	if dsID != 0 {
		v, err := d.view(dsID)
		if err != nil {
			return nil, err
		}
		desc.DepthStencilAttachment = depthStencilAttachment(v)
	}
	return desc, nil
}

func depthStencilAttachment(v hal.TextureView) *hal.RenderPassDepthStencilAttachment {
	return &hal.RenderPassDepthStencilAttachment{
		View:           v,
		DepthLoadOp:    gputypes.LoadOpLoad,
		DepthStoreOp:   gputypes.StoreOpStore,
		StencilLoadOp:  gputypes.LoadOpLoad,
		StencilStoreOp: gputypes.StoreOpStore,
	}
}

// submit records one render pass, submits it and waits for completion.
func (d *Driver) submit(label string, desc *hal.RenderPassDescriptor, record func(hal.RenderPassEncoder)) error {
	encoder, err := d.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: label})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding(label); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(desc)
	record(rp)
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		encoder.DiscardEncoding()
		return fmt.Errorf("end encoding: %w", err)
	}
	defer d.device.FreeCommandBuffer(cmdBuf)

	fence, err := d.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer d.device.DestroyFence(fence)

	if err := d.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	ok, err := d.device.Wait(fence, 1, d.timeout)
	if err != nil {
		return fmt.Errorf("wait: %w", err)
	}
	if !ok {
		return ErrGPUTimeout
	}
	fbo.Logger().Debug("wgpu: pass submitted", "label", label, "colors", len(desc.ColorAttachments))
	return nil
}
