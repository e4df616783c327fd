// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/fbo/uniform"
	"github.com/gogpu/gputypes"
)

// ColorSlot binds an attachment to a hardware color slot.
type ColorSlot struct {
	Slot       uint32
	Attachment Attachment
}

// DepthStencilKind classifies the depth and stencil attachments of a target.
type DepthStencilKind uint8

const (
	// DepthStencilNone means no depth and no stencil buffer.
	DepthStencilNone DepthStencilKind = iota

	// DepthOnly means a depth buffer without stencil buffer.
	DepthOnly

	// StencilOnly means a stencil buffer without depth buffer.
	StencilOnly

	// DepthAndStencil means separate depth and stencil buffers.
	DepthAndStencil
)

// String returns the classification name.
func (k DepthStencilKind) String() string {
	switch k {
	case DepthStencilNone:
		return "None"
	case DepthOnly:
		return "DepthOnly"
	case StencilOnly:
		return "StencilOnly"
	case DepthAndStencil:
		return "DepthAndStencil"
	default:
		return fmt.Sprintf("DepthStencilKind(%d)", uint8(k))
	}
}

// DepthStencil holds the depth and stencil attachments of a target.
// Depth is set for DepthOnly and DepthAndStencil, Stencil for StencilOnly
// and DepthAndStencil.
type DepthStencil struct {
	Kind    DepthStencilKind
	Depth   Attachment
	Stencil Attachment
}

// HasDepth reports whether a depth attachment is present.
func (d DepthStencil) HasDepth() bool {
	return d.Kind == DepthOnly || d.Kind == DepthAndStencil
}

// HasStencil reports whether a stencil attachment is present.
func (d DepthStencil) HasStencil() bool {
	return d.Kind == StencilOnly || d.Kind == DepthAndStencil
}

// classifyDepthStencil picks the one classification matching the attachments.
func classifyDepthStencil(depth, stencil *Attachment) DepthStencil {
	switch {
	case depth != nil && stencil != nil:
		return DepthStencil{Kind: DepthAndStencil, Depth: *depth, Stencil: *stencil}
	case depth != nil:
		return DepthStencil{Kind: DepthOnly, Depth: *depth}
	case stencil != nil:
		return DepthStencil{Kind: StencilOnly, Stencil: *stencil}
	default:
		return DepthStencil{Kind: DepthStencilNone}
	}
}

// Attachments is the complete attachment set handed to the driver.
type Attachments struct {
	Colors       []ColorSlot
	DepthStencil DepthStencil
}

// ClearCall asks the driver to clear buffers of a target.
// Nil fields are left untouched.
type ClearCall struct {
	// Target is nil for the default framebuffer.
	Target        *Attachments
	Width, Height uint32

	Color   *gputypes.Color
	Depth   *float32
	Stencil *int32
}

// UniformUpload is a uniform value that changed since the last draw on
// the target and must be uploaded.
type UniformUpload struct {
	Name     string
	Location uint32
	Value    uniform.Value
}

// DrawCall is one validated draw.
type DrawCall struct {
	// Target is nil for the default framebuffer.
	Target        *Attachments
	Width, Height uint32

	Vertices   []VerticesSource
	Indices    IndicesSource
	Program    Program
	Uniforms   []UniformUpload
	Parameters DrawParameters
}

// BufferMask selects the buffers copied by a blit.
type BufferMask uint8

const (
	// MaskColor copies color buffers.
	MaskColor BufferMask = 1 << iota

	// MaskDepth copies the depth buffer.
	MaskDepth

	// MaskStencil copies the stencil buffer.
	MaskStencil
)

// BlitCall copies a rectangle from Src to Dst. A nil side is the default
// framebuffer.
type BlitCall struct {
	Src, Dst *Attachments
	Mask     BufferMask
	SrcRect  Rect
	DstRect  BlitTarget
	Filter   gputypes.FilterMode
}

// attachmentSet is the per-target construction state shared by the
// concrete surface kinds.
type attachmentSet struct {
	width, height uint32

	depthBits, stencilBits *uint16
	bitsApproximate        bool

	// resources are the borrowed resources checked for release before use.
	resources []any

	// log receives construction diagnostics. Nil means the package logger.
	log *slog.Logger
}

func (s *attachmentSet) logger() *slog.Logger {
	if s.log != nil {
		return s.log
	}
	return Logger()
}

func (s *attachmentSet) checkResources() error {
	for _, r := range s.resources {
		if released(r) {
			return fmt.Errorf("%w: %T", ErrResourceReleased, r)
		}
	}
	return nil
}

// matchDimensions compares a resolved attachment with the authoritative size.
func (s *attachmentSet) matchDimensions(name string, r resolvedAttachment) error {
	if r.width != s.width || r.height != s.height {
		return &DimensionError{
			Attachment: name,
			Width:      r.width,
			Height:     r.height,
			WantW:      s.width,
			WantH:      s.height,
		}
	}
	return nil
}

// addDepth resolves, checks and records a depth attachment.
func (s *attachmentSet) addDepth(d DepthAttachment) (*Attachment, error) {
	return s.addAspect("depth", AttachmentDesc(d), false)
}

// addStencil resolves, checks and records a stencil attachment.
func (s *attachmentSet) addStencil(d StencilAttachment) (*Attachment, error) {
	return s.addAspect("stencil", AttachmentDesc(d), true)
}

func (s *attachmentSet) addAspect(name string, d AttachmentDesc, stencil bool) (*Attachment, error) {
	r, err := d.resolve()
	if err != nil {
		return nil, fmt.Errorf("%s attachment: %w", name, err)
	}
	if err := s.matchDimensions(name, r); err != nil {
		return nil, err
	}
	bits, approx, err := aspectBits(s.logger(), d, stencil)
	if err != nil {
		return nil, err
	}
	if stencil {
		s.stencilBits = &bits
	} else {
		s.depthBits = &bits
	}
	s.bitsApproximate = s.bitsApproximate || approx
	s.resources = append(s.resources, r.resource)
	return &r.att, nil
}

// DepthBufferBits returns the depth bit depth and whether a depth buffer exists.
func (s *attachmentSet) DepthBufferBits() (uint16, bool) {
	if s.depthBits == nil {
		return 0, false
	}
	return *s.depthBits, true
}

// StencilBufferBits returns the stencil bit depth and whether a stencil buffer exists.
func (s *attachmentSet) StencilBufferBits() (uint16, bool) {
	if s.stencilBits == nil {
		return 0, false
	}
	return *s.stencilBits, true
}

// BitsApproximate reports whether a reported bit depth is a provisional
// value because the attachment format could not be introspected.
func (s *attachmentSet) BitsApproximate() bool {
	return s.bitsApproximate
}

// Dimensions returns the target size in pixels.
func (s *attachmentSet) Dimensions() (width, height uint32) {
	return s.width, s.height
}

// HasDepthBuffer reports whether the target has a depth attachment.
func (s *attachmentSet) HasDepthBuffer() bool {
	return s.depthBits != nil
}

// HasStencilBuffer reports whether the target has a stencil attachment.
func (s *attachmentSet) HasStencilBuffer() bool {
	return s.stencilBits != nil
}
