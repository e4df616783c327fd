// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"image"

	"github.com/gogpu/fbo"
	"github.com/gogpu/gputypes"
)

// pixels is the storage of a texture or render buffer. Color formats use
// img; depth and stencil formats use the planes.
type pixels struct {
	w, h    uint32
	format  gputypes.TextureFormat
	img     *image.RGBA
	depth   []float32
	stencil []uint8
}

func newPixels(w, h uint32, format gputypes.TextureFormat) *pixels {
	p := &pixels{w: w, h: h, format: format}
	d, s, _ := fbo.FormatBits(format)
	if d > 0 {
		p.depth = make([]float32, int(w)*int(h))
	}
	if s > 0 {
		p.stencil = make([]uint8, int(w)*int(h))
	}
	if d == 0 && s == 0 {
		p.img = image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	}
	return p
}

// Texture is a CPU texture. Only mip level 0 is stored.
type Texture struct {
	id       fbo.NativeID
	px       *pixels
	drv      *Driver
	released bool
}

var (
	_ fbo.Texture         = (*Texture)(nil)
	_ fbo.ColorAttacher   = (*Texture)(nil)
	_ fbo.DepthAttacher   = (*Texture)(nil)
	_ fbo.StencilAttacher = (*Texture)(nil)
	_ fbo.Releaser        = (*Texture)(nil)
)

func (t *Texture) ID() fbo.NativeID               { return t.id }
func (t *Texture) Width() uint32                  { return t.px.w }
func (t *Texture) Height() uint32                 { return t.px.h }
func (t *Texture) Layers() uint32                 { return 1 }
func (t *Texture) Format() gputypes.TextureFormat { return t.px.format }

// Released reports whether Release was called.
func (t *Texture) Released() bool { return t.released }

// Release frees the texture. Targets still referencing it fail with
// fbo.ErrResourceReleased.
func (t *Texture) Release() {
	if t.released {
		return
	}
	t.released = true
	delete(t.drv.pixels, t.id)
}

// ToColorAttachment binds mip level 0 as color attachment.
func (t *Texture) ToColorAttachment() fbo.ColorAttachment { return fbo.ColorTexture2D(t, 0) }

// ToDepthAttachment binds mip level 0 as depth attachment.
func (t *Texture) ToDepthAttachment() fbo.DepthAttachment { return fbo.DepthTexture2D(t, 0) }

// ToStencilAttachment binds mip level 0 as stencil attachment.
func (t *Texture) ToStencilAttachment() fbo.StencilAttachment { return fbo.StencilTexture2D(t, 0) }

// Image returns the color pixels, or nil for depth and stencil formats.
func (t *Texture) Image() *image.RGBA { return t.px.img }

// RenderBuffer is a CPU render buffer.
type RenderBuffer struct {
	id       fbo.NativeID
	px       *pixels
	drv      *Driver
	released bool
}

var (
	_ fbo.RenderBuffer         = (*RenderBuffer)(nil)
	_ fbo.ColorAttacher        = (*RenderBuffer)(nil)
	_ fbo.DepthAttacher        = (*RenderBuffer)(nil)
	_ fbo.StencilAttacher      = (*RenderBuffer)(nil)
	_ fbo.DepthStencilAttacher = (*RenderBuffer)(nil)
)

func (r *RenderBuffer) ID() fbo.NativeID               { return r.id }
func (r *RenderBuffer) Dimensions() (uint32, uint32)   { return r.px.w, r.px.h }
func (r *RenderBuffer) Format() gputypes.TextureFormat { return r.px.format }
func (r *RenderBuffer) Released() bool                 { return r.released }

// Release frees the render buffer.
func (r *RenderBuffer) Release() {
	if r.released {
		return
	}
	r.released = true
	delete(r.drv.pixels, r.id)
}

func (r *RenderBuffer) ToColorAttachment() fbo.ColorAttachment     { return fbo.ColorRenderBuffer(r) }
func (r *RenderBuffer) ToDepthAttachment() fbo.DepthAttachment     { return fbo.DepthRenderBuffer(r) }
func (r *RenderBuffer) ToStencilAttachment() fbo.StencilAttachment { return fbo.StencilRenderBuffer(r) }

func (r *RenderBuffer) ToDepthStencilAttachment() fbo.DepthStencilAttachment {
	return fbo.DepthStencilRenderBuffer(r)
}

// VertexBuffer is a CPU vertex buffer.
type VertexBuffer struct {
	id     fbo.NativeID
	format fbo.VertexFormat
	stride uint32
	data   []byte
}

var _ fbo.VertexBuffer = (*VertexBuffer)(nil)

func (b *VertexBuffer) ID() fbo.NativeID         { return b.id }
func (b *VertexBuffer) Format() fbo.VertexFormat { return b.format }
func (b *VertexBuffer) Stride() uint32           { return b.stride }
func (b *VertexBuffer) Len() int                 { return len(b.data) / int(b.stride) }

// Bytes returns the buffer contents.
func (b *VertexBuffer) Bytes() []byte { return b.data }

// IndexBuffer is a CPU index buffer.
type IndexBuffer struct {
	id      fbo.NativeID
	typ     fbo.IndexType
	indices []uint32
}

var _ fbo.IndexBuffer = (*IndexBuffer)(nil)

func (b *IndexBuffer) ID() fbo.NativeID         { return b.id }
func (b *IndexBuffer) IndexType() fbo.IndexType { return b.typ }
func (b *IndexBuffer) Len() int                 { return len(b.indices) }

// Indices returns the indices widened to uint32.
func (b *IndexBuffer) Indices() []uint32 { return b.indices }
