// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/fbo"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Texture is a 2D GPU texture with a default view.
type Texture struct {
	id            fbo.NativeID
	drv           *Driver
	tex           hal.Texture
	view          hal.TextureView
	width, height uint32
	format        gputypes.TextureFormat
	released      bool
}

var (
	_ fbo.Texture         = (*Texture)(nil)
	_ fbo.ColorAttacher   = (*Texture)(nil)
	_ fbo.DepthAttacher   = (*Texture)(nil)
	_ fbo.StencilAttacher = (*Texture)(nil)
	_ fbo.Releaser        = (*Texture)(nil)
)

// NewTexture2D creates a texture usable as render attachment and, for
// color formats, as shader input.
func (d *Driver) NewTexture2D(width, height uint32, format gputypes.TextureFormat) (*Texture, error) {
	usage := gputypes.TextureUsageRenderAttachment
	if !fbo.IsDepthFormat(format) && !fbo.IsStencilFormat(format) {
		usage |= gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopySrc
	}
	return d.newTexture("fbo_texture", width, height, format, usage)
}

func (d *Driver) newTexture(label string, width, height uint32, format gputypes.TextureFormat,
	usage gputypes.TextureUsage) (*Texture, error) {
	tex, err := d.device.CreateTexture(&hal.TextureDescriptor{
		Label: label,
		Size: hal.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	view, err := d.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: label + "_view",
	})
	if err != nil {
		d.device.DestroyTexture(tex)
		return nil, fmt.Errorf("create %s view: %w", label, err)
	}

	t := &Texture{
		id:     d.id(),
		drv:    d,
		tex:    tex,
		view:   view,
		width:  width,
		height: height,
		format: format,
	}
	d.views[t.id] = view
	d.owned[t.id] = t
	return t, nil
}

func (t *Texture) ID() fbo.NativeID               { return t.id }
func (t *Texture) Width() uint32                  { return t.width }
func (t *Texture) Height() uint32                 { return t.height }
func (t *Texture) Layers() uint32                 { return 1 }
func (t *Texture) Format() gputypes.TextureFormat { return t.format }
func (t *Texture) Released() bool                 { return t.released }

// HalTexture returns the underlying HAL texture.
func (t *Texture) HalTexture() hal.Texture { return t.tex }

// Release destroys the view and the texture.
func (t *Texture) Release() {
	if t.released {
		return
	}
	t.released = true
	delete(t.drv.views, t.id)
	delete(t.drv.owned, t.id)
	t.drv.device.DestroyTextureView(t.view)
	t.drv.device.DestroyTexture(t.tex)
}

func (t *Texture) ToColorAttachment() fbo.ColorAttachment     { return fbo.ColorTexture2D(t, 0) }
func (t *Texture) ToDepthAttachment() fbo.DepthAttachment     { return fbo.DepthTexture2D(t, 0) }
func (t *Texture) ToStencilAttachment() fbo.StencilAttachment { return fbo.StencilTexture2D(t, 0) }

// RenderBuffer is a GPU texture that is only used as render attachment.
type RenderBuffer struct {
	*Texture
}

var (
	_ fbo.RenderBuffer         = RenderBuffer{}
	_ fbo.DepthStencilAttacher = RenderBuffer{}
)

// NewRenderBuffer creates a non-sampleable attachment.
func (d *Driver) NewRenderBuffer(width, height uint32, format gputypes.TextureFormat) (RenderBuffer, error) {
	t, err := d.newTexture("fbo_renderbuffer", width, height, format, gputypes.TextureUsageRenderAttachment)
	if err != nil {
		return RenderBuffer{}, err
	}
	return RenderBuffer{t}, nil
}

// Dimensions returns the size in pixels.
func (r RenderBuffer) Dimensions() (uint32, uint32) { return r.width, r.height }

func (r RenderBuffer) ToColorAttachment() fbo.ColorAttachment     { return fbo.ColorRenderBuffer(r) }
func (r RenderBuffer) ToDepthAttachment() fbo.DepthAttachment     { return fbo.DepthRenderBuffer(r) }
func (r RenderBuffer) ToStencilAttachment() fbo.StencilAttachment { return fbo.StencilRenderBuffer(r) }

func (r RenderBuffer) ToDepthStencilAttachment() fbo.DepthStencilAttachment {
	return fbo.DepthStencilRenderBuffer(r)
}

// Buffer is a GPU vertex or index buffer.
type Buffer struct {
	id       fbo.NativeID
	drv      *Driver
	buf      hal.Buffer
	format   fbo.VertexFormat
	stride   uint32
	length   int
	typ      fbo.IndexType
	released bool
}

var (
	_ fbo.VertexBuffer = (*Buffer)(nil)
	_ fbo.IndexBuffer  = (*Buffer)(nil)
)

// NewVertexBuffer uploads vertex data laid out by format.
func (d *Driver) NewVertexBuffer(format fbo.VertexFormat, stride uint32, data []byte) (*Buffer, error) {
	if stride == 0 {
		return nil, ErrZeroStride
	}
	b, err := d.newBuffer("fbo_vertices", data, gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return nil, err
	}
	b.format = format
	b.stride = stride
	b.length = len(data) / int(stride)
	return b, nil
}

// NewIndexBuffer uploads indices. 8-bit indices are not supported.
func (d *Driver) NewIndexBuffer(typ fbo.IndexType, indices []uint32) (*Buffer, error) {
	if _, err := indexFormat(typ); err != nil {
		return nil, err
	}
	data := make([]byte, 0, len(indices)*int(typ.Size()))
	for _, v := range indices {
		if typ == fbo.IndexU16 {
			data = binary.LittleEndian.AppendUint16(data, uint16(v))
		} else {
			data = binary.LittleEndian.AppendUint32(data, v)
		}
	}
	// Buffer sizes must be multiples of 4.
	for len(data)%4 != 0 {
		data = append(data, 0)
	}
	b, err := d.newBuffer("fbo_indices", data, gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return nil, err
	}
	b.typ = typ
	b.length = len(indices)
	return b, nil
}

func (d *Driver) newBuffer(label string, data []byte, usage gputypes.BufferUsage) (*Buffer, error) {
	buf, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	d.queue.WriteBuffer(buf, 0, data)

	b := &Buffer{id: d.id(), drv: d, buf: buf}
	d.buffers[b.id] = buf
	d.owned[b.id] = b
	return b, nil
}

func (b *Buffer) ID() fbo.NativeID         { return b.id }
func (b *Buffer) Format() fbo.VertexFormat { return b.format }
func (b *Buffer) Stride() uint32           { return b.stride }
func (b *Buffer) Len() int                 { return b.length }
func (b *Buffer) IndexType() fbo.IndexType { return b.typ }

// Release destroys the buffer.
func (b *Buffer) Release() {
	if b.released {
		return
	}
	b.released = true
	delete(b.drv.buffers, b.id)
	delete(b.drv.owned, b.id)
	b.drv.device.DestroyBuffer(b.buf)
}

// Released reports whether Release was called.
func (b *Buffer) Released() bool { return b.released }
