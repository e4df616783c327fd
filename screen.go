// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import (
	"github.com/gogpu/fbo/uniform"
	"github.com/gogpu/gputypes"
)

// ScreenOptions describes the buffers of the default framebuffer.
// Nil bit depths mean the buffer is absent.
type ScreenOptions struct {
	DepthBits   *uint16
	StencilBits *uint16
}

// Screen is the default on-screen framebuffer of a context. Its
// attachments are owned by the window system; drivers receive a nil
// Attachments for it.
type Screen struct {
	core
}

var _ Surface = (*Screen)(nil)

// NewScreen describes the default framebuffer of ctx.
func NewScreen(ctx *Context, width, height uint32, opts ScreenOptions) (*Screen, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	set := attachmentSet{
		width:       width,
		height:      height,
		depthBits:   opts.DepthBits,
		stencilBits: opts.StencilBits,
	}
	cr, err := newCore(ctx, set)
	if err != nil {
		return nil, err
	}
	return &Screen{core: cr}, nil
}

// Resize updates the size after the window changed.
func (s *Screen) Resize(width, height uint32) {
	s.width, s.height = width, height
}

// Kind returns KindScreen.
func (s *Screen) Kind() SurfaceKind { return KindScreen }

func (s *Screen) sealed() {}

// Clear clears the requested buffers.
func (s *Screen) Clear(opts ClearOptions) error {
	return s.clear(nil, opts)
}

// Draw validates and issues one draw call.
func (s *Screen) Draw(vertices []VerticesSource, indices IndicesProvider, program Program,
	uniforms uniform.Uniforms, params *DrawParameters) error {
	return s.draw(func(Program) (*Attachments, error) {
		return nil, nil
	}, vertices, indices, program, uniforms, params)
}

// BlitColor copies srcRect of the screen into dstRect of dst.
func (s *Screen) BlitColor(srcRect Rect, dst Surface, dstRect BlitTarget, filter gputypes.FilterMode) error {
	return dst.BlitFromScreen(s, srcRect, dstRect, filter)
}

// BlitFromScreen copies within the screen.
func (s *Screen) BlitFromScreen(src *Screen, srcRect Rect, dstRect BlitTarget, filter gputypes.FilterMode) error {
	return blitColor(src, s, srcRect, dstRect, filter)
}

// BlitFromSimpleRenderTarget copies from a simple target.
func (s *Screen) BlitFromSimpleRenderTarget(src *SimpleRenderTarget, srcRect Rect, dstRect BlitTarget, filter gputypes.FilterMode) error {
	return blitColor(src, s, srcRect, dstRect, filter)
}

// BlitFromMultiOutputRenderTarget copies from a multi-output target.
func (s *Screen) BlitFromMultiOutputRenderTarget(src *MultiOutputRenderTarget, srcRect Rect, dstRect BlitTarget, filter gputypes.FilterMode) error {
	return blitColor(src, s, srcRect, dstRect, filter)
}

func (s *Screen) blitCore() *core               { return &s.core }
func (s *Screen) blitAttachments() *Attachments { return nil }
