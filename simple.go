// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import (
	"fmt"

	"github.com/gogpu/fbo/uniform"
	"github.com/gogpu/gputypes"
)

// SimpleRenderTarget is a render target with one color attachment and
// optional depth and stencil attachments, all fixed at construction.
type SimpleRenderTarget struct {
	core
	atts Attachments
}

var _ Surface = (*SimpleRenderTarget)(nil)

// NewSimpleRenderTarget creates a target with a single color attachment.
func NewSimpleRenderTarget(ctx *Context, color ColorAttacher) (*SimpleRenderTarget, error) {
	return newSimple(ctx, color, nil, nil)
}

// NewSimpleRenderTargetWithDepth creates a target with a color and a depth
// attachment.
func NewSimpleRenderTargetWithDepth(ctx *Context, color ColorAttacher, depth DepthAttacher) (*SimpleRenderTarget, error) {
	if depth == nil {
		return nil, fmt.Errorf("%w: depth attachment", ErrNilResource)
	}
	return newSimple(ctx, color, depth, nil)
}

// NewSimpleRenderTargetWithDepthAndStencil creates a target with a color
// attachment and separate depth and stencil attachments.
func NewSimpleRenderTargetWithDepthAndStencil(ctx *Context, color ColorAttacher,
	depth DepthAttacher, stencil StencilAttacher) (*SimpleRenderTarget, error) {
	if depth == nil || stencil == nil {
		return nil, fmt.Errorf("%w: depth or stencil attachment", ErrNilResource)
	}
	return newSimple(ctx, color, depth, stencil)
}

// NewSimpleRenderTargetWithStencil creates a target with a color and a
// stencil attachment.
func NewSimpleRenderTargetWithStencil(ctx *Context, color ColorAttacher, stencil StencilAttacher) (*SimpleRenderTarget, error) {
	if stencil == nil {
		return nil, fmt.Errorf("%w: stencil attachment", ErrNilResource)
	}
	return newSimple(ctx, color, nil, stencil)
}

// NewSimpleRenderTargetWithDepthStencil would create a target with a
// combined depth-stencil attachment. Combined attachments are not supported
// yet; it always fails with ErrDepthStencilUnsupported.
func NewSimpleRenderTargetWithDepthStencil(ctx *Context, color ColorAttacher,
	depthStencil DepthStencilAttacher) (*SimpleRenderTarget, error) {
	return nil, ErrDepthStencilUnsupported
}

func newSimple(ctx *Context, color ColorAttacher, depth DepthAttacher, stencil StencilAttacher) (*SimpleRenderTarget, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if color == nil {
		return nil, fmt.Errorf("%w: color attachment", ErrNilResource)
	}

	c, err := AttachmentDesc(color.ToColorAttachment()).resolve()
	if err != nil {
		return nil, fmt.Errorf("color attachment: %w", err)
	}
	set := attachmentSet{
		width:     c.width,
		height:    c.height,
		resources: []any{c.resource},
		log:       ctx.log(),
	}

	var d, s *Attachment
	if depth != nil {
		if d, err = set.addDepth(depth.ToDepthAttachment()); err != nil {
			return nil, err
		}
	}
	if stencil != nil {
		if s, err = set.addStencil(stencil.ToStencilAttachment()); err != nil {
			return nil, err
		}
	}

	cr, err := newCore(ctx, set)
	if err != nil {
		return nil, err
	}
	t := &SimpleRenderTarget{
		core: cr,
		atts: Attachments{
			Colors:       []ColorSlot{{Slot: 0, Attachment: c.att}},
			DepthStencil: classifyDepthStencil(d, s),
		},
	}
	ctx.log().Debug("fbo: simple render target created",
		"width", set.width,
		"height", set.height,
		"depthStencil", t.atts.DepthStencil.Kind,
		"bitsApproximate", set.bitsApproximate)
	return t, nil
}

// Attachments returns the attachment set built at construction.
func (t *SimpleRenderTarget) Attachments() Attachments {
	return t.atts
}

// Kind returns KindSimple.
func (t *SimpleRenderTarget) Kind() SurfaceKind { return KindSimple }

func (t *SimpleRenderTarget) sealed() {}

// Clear clears the requested buffers.
func (t *SimpleRenderTarget) Clear(opts ClearOptions) error {
	return t.clear(&t.atts, opts)
}

// Draw validates and issues one draw call.
func (t *SimpleRenderTarget) Draw(vertices []VerticesSource, indices IndicesProvider, program Program,
	uniforms uniform.Uniforms, params *DrawParameters) error {
	return t.draw(func(Program) (*Attachments, error) {
		return &t.atts, nil
	}, vertices, indices, program, uniforms, params)
}

// BlitColor copies srcRect of the color buffer into dstRect of dst.
func (t *SimpleRenderTarget) BlitColor(srcRect Rect, dst Surface, dstRect BlitTarget, filter gputypes.FilterMode) error {
	return dst.BlitFromSimpleRenderTarget(t, srcRect, dstRect, filter)
}

// BlitFromScreen copies from the default framebuffer.
func (t *SimpleRenderTarget) BlitFromScreen(src *Screen, srcRect Rect, dstRect BlitTarget, filter gputypes.FilterMode) error {
	return blitColor(src, t, srcRect, dstRect, filter)
}

// BlitFromSimpleRenderTarget copies from another simple target.
func (t *SimpleRenderTarget) BlitFromSimpleRenderTarget(src *SimpleRenderTarget, srcRect Rect, dstRect BlitTarget, filter gputypes.FilterMode) error {
	return blitColor(src, t, srcRect, dstRect, filter)
}

// BlitFromMultiOutputRenderTarget copies from a multi-output target.
func (t *SimpleRenderTarget) BlitFromMultiOutputRenderTarget(src *MultiOutputRenderTarget, srcRect Rect, dstRect BlitTarget, filter gputypes.FilterMode) error {
	return blitColor(src, t, srcRect, dstRect, filter)
}

func (t *SimpleRenderTarget) blitCore() *core               { return &t.core }
func (t *SimpleRenderTarget) blitAttachments() *Attachments { return &t.atts }
