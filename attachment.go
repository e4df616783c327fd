// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import "fmt"

// AttachmentKind identifies what a surface-facing attachment refers to.
//
// Only Texture2D, Texture2DMultisample and RenderBuffer are wired. The other
// kinds exist so callers can describe them; resolving one fails with
// ErrUnimplementedAttachment.
type AttachmentKind uint8

const (
	// AttachmentTexture1D is a mip level of a 1D texture.
	AttachmentTexture1D AttachmentKind = iota + 1

	// AttachmentTexture2D is a mip level of a 2D texture.
	AttachmentTexture2D

	// AttachmentTexture2DMultisample is a multisampled 2D texture.
	AttachmentTexture2DMultisample

	// AttachmentTexture3D is one layer of a mip level of a 3D texture.
	AttachmentTexture3D

	// AttachmentTexture1DArray is a mip level of a 1D array texture.
	AttachmentTexture1DArray

	// AttachmentTexture2DArray is a mip level of a 2D array texture.
	AttachmentTexture2DArray

	// AttachmentTexture2DMultisampleArray is a multisampled 2D array texture.
	AttachmentTexture2DMultisampleArray

	// AttachmentRenderBuffer is a render buffer.
	AttachmentRenderBuffer
)

// String returns the kind name.
func (k AttachmentKind) String() string {
	switch k {
	case AttachmentTexture1D:
		return "Texture1D"
	case AttachmentTexture2D:
		return "Texture2D"
	case AttachmentTexture2DMultisample:
		return "Texture2DMultisample"
	case AttachmentTexture3D:
		return "Texture3D"
	case AttachmentTexture1DArray:
		return "Texture1DArray"
	case AttachmentTexture2DArray:
		return "Texture2DArray"
	case AttachmentTexture2DMultisampleArray:
		return "Texture2DMultisampleArray"
	case AttachmentRenderBuffer:
		return "RenderBuffer"
	default:
		return fmt.Sprintf("AttachmentKind(%d)", uint8(k))
	}
}

// AttachmentDesc is the payload shared by the attachment unions.
// Exactly one of Texture and RenderBuffer is set, according to Kind.
type AttachmentDesc struct {
	Kind AttachmentKind

	// Texture is the borrowed texture for texture kinds.
	Texture Texture

	// RenderBuffer is the borrowed render buffer for AttachmentRenderBuffer.
	RenderBuffer RenderBuffer

	// Level is the mip level of the texture.
	Level uint32

	// Layer is the 3D slice of an AttachmentTexture3D.
	Layer uint32
}

// ColorAttachment describes a resource bound to a color slot.
type ColorAttachment AttachmentDesc

// DepthAttachment describes a resource bound as depth buffer.
type DepthAttachment AttachmentDesc

// StencilAttachment describes a resource bound as stencil buffer.
type StencilAttachment AttachmentDesc

// DepthStencilAttachment describes one resource bound as both depth and
// stencil buffer.
type DepthStencilAttachment AttachmentDesc

// ColorAttacher is implemented by resources usable as color attachments.
type ColorAttacher interface {
	ToColorAttachment() ColorAttachment
}

// DepthAttacher is implemented by resources usable as depth attachments.
type DepthAttacher interface {
	ToDepthAttachment() DepthAttachment
}

// StencilAttacher is implemented by resources usable as stencil attachments.
type StencilAttacher interface {
	ToStencilAttachment() StencilAttachment
}

// DepthStencilAttacher is implemented by resources usable as combined
// depth-stencil attachments.
type DepthStencilAttacher interface {
	ToDepthStencilAttachment() DepthStencilAttachment
}

// ToColorAttachment returns a.
func (a ColorAttachment) ToColorAttachment() ColorAttachment { return a }

// ToDepthAttachment returns a.
func (a DepthAttachment) ToDepthAttachment() DepthAttachment { return a }

// ToStencilAttachment returns a.
func (a StencilAttachment) ToStencilAttachment() StencilAttachment { return a }

// ToDepthStencilAttachment returns a.
func (a DepthStencilAttachment) ToDepthStencilAttachment() DepthStencilAttachment { return a }

// TextureAttachment describes mip level of a texture of the given kind.
func TextureAttachment(kind AttachmentKind, tex Texture, level uint32) AttachmentDesc {
	return AttachmentDesc{Kind: kind, Texture: tex, Level: level}
}

// ColorTexture2D describes a mip level of a 2D texture as color attachment.
func ColorTexture2D(tex Texture, level uint32) ColorAttachment {
	return ColorAttachment(TextureAttachment(AttachmentTexture2D, tex, level))
}

// ColorTexture2DMultisample describes a multisampled texture as color attachment.
func ColorTexture2DMultisample(tex Texture) ColorAttachment {
	return ColorAttachment(TextureAttachment(AttachmentTexture2DMultisample, tex, 0))
}

// ColorTexture3D describes one layer of a 3D texture as color attachment.
func ColorTexture3D(tex Texture, level, layer uint32) ColorAttachment {
	a := TextureAttachment(AttachmentTexture3D, tex, level)
	a.Layer = layer
	return ColorAttachment(a)
}

// ColorRenderBuffer describes a render buffer as color attachment.
func ColorRenderBuffer(rb RenderBuffer) ColorAttachment {
	return ColorAttachment{Kind: AttachmentRenderBuffer, RenderBuffer: rb}
}

// DepthTexture2D describes a mip level of a 2D depth texture.
func DepthTexture2D(tex Texture, level uint32) DepthAttachment {
	return DepthAttachment(TextureAttachment(AttachmentTexture2D, tex, level))
}

// DepthRenderBuffer describes a depth render buffer.
func DepthRenderBuffer(rb RenderBuffer) DepthAttachment {
	return DepthAttachment{Kind: AttachmentRenderBuffer, RenderBuffer: rb}
}

// StencilTexture2D describes a mip level of a 2D stencil texture.
func StencilTexture2D(tex Texture, level uint32) StencilAttachment {
	return StencilAttachment(TextureAttachment(AttachmentTexture2D, tex, level))
}

// StencilRenderBuffer describes a stencil render buffer.
func StencilRenderBuffer(rb RenderBuffer) StencilAttachment {
	return StencilAttachment{Kind: AttachmentRenderBuffer, RenderBuffer: rb}
}

// DepthStencilRenderBuffer describes a combined depth-stencil render buffer.
func DepthStencilRenderBuffer(rb RenderBuffer) DepthStencilAttachment {
	return DepthStencilAttachment{Kind: AttachmentRenderBuffer, RenderBuffer: rb}
}

// BindPoint is the texture binding kind of a resolved texture attachment.
type BindPoint uint8

const (
	// BindTexture2D binds a 2D texture level.
	BindTexture2D BindPoint = iota + 1

	// BindTexture2DMultisample binds a multisampled 2D texture.
	BindTexture2DMultisample
)

// String returns the bind point name.
func (b BindPoint) String() string {
	switch b {
	case BindTexture2D:
		return "Texture2D"
	case BindTexture2DMultisample:
		return "Texture2DMultisample"
	default:
		return fmt.Sprintf("BindPoint(%d)", uint8(b))
	}
}

// ResolvedKind tells texture-backed and render-buffer-backed attachments apart.
type ResolvedKind uint8

const (
	// ResolvedTexture is a texture-backed attachment.
	ResolvedTexture ResolvedKind = iota + 1

	// ResolvedRenderBuffer is a render-buffer-backed attachment.
	ResolvedRenderBuffer
)

// Attachment is the uniform, driver-facing form of an attachment.
// It is immutable once built. BindPoint, Level and Layer are only meaningful
// for ResolvedTexture.
type Attachment struct {
	Kind      ResolvedKind
	ID        NativeID
	BindPoint BindPoint
	Level     uint32
	Layer     uint32
}

// resolvedAttachment is an Attachment plus what construction needs to know
// about it and keep checking afterwards.
type resolvedAttachment struct {
	att           Attachment
	width, height uint32
	resource      any
}

// resolve turns a surface-facing description into an Attachment, querying
// the size from the resource.
func (d AttachmentDesc) resolve() (resolvedAttachment, error) {
	switch d.Kind {
	case AttachmentTexture2D, AttachmentTexture2DMultisample:
		if d.Texture == nil {
			return resolvedAttachment{}, fmt.Errorf("%w: %s without texture", ErrNilResource, d.Kind)
		}
		bind := BindTexture2D
		level := d.Level
		if d.Kind == AttachmentTexture2DMultisample {
			bind = BindTexture2DMultisample
			level = 0
		}
		return resolvedAttachment{
			att: Attachment{
				Kind:      ResolvedTexture,
				ID:        d.Texture.ID(),
				BindPoint: bind,
				Level:     level,
			},
			width:    mipSize(d.Texture.Width(), level),
			height:   mipSize(d.Texture.Height(), level),
			resource: d.Texture,
		}, nil

	case AttachmentRenderBuffer:
		if d.RenderBuffer == nil {
			return resolvedAttachment{}, fmt.Errorf("%w: render buffer attachment without buffer", ErrNilResource)
		}
		w, h := d.RenderBuffer.Dimensions()
		return resolvedAttachment{
			att:      Attachment{Kind: ResolvedRenderBuffer, ID: d.RenderBuffer.ID()},
			width:    w,
			height:   h,
			resource: d.RenderBuffer,
		}, nil

	case AttachmentTexture1D, AttachmentTexture3D, AttachmentTexture1DArray,
		AttachmentTexture2DArray, AttachmentTexture2DMultisampleArray:
		return resolvedAttachment{}, fmt.Errorf("%w: %s", ErrUnimplementedAttachment, d.Kind)

	default:
		return resolvedAttachment{}, fmt.Errorf("%w: %s", ErrUnimplementedAttachment, d.Kind)
	}
}

func (d AttachmentDesc) format() (fmtKnown bool, f formatInfo) {
	switch {
	case d.Kind == AttachmentRenderBuffer && d.RenderBuffer != nil:
		return lookupFormat(d.RenderBuffer.Format())
	case d.Texture != nil:
		return lookupFormat(d.Texture.Format())
	}
	return false, formatInfo{}
}
