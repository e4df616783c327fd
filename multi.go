// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import (
	"fmt"

	"github.com/gogpu/fbo/uniform"
	"github.com/gogpu/gputypes"
)

// MultiOutputRenderTarget is a render target with named color attachments.
//
// Color slots are not fixed: every draw maps each name to the slot of the
// fragment output with that name in the drawing program.
type MultiOutputRenderTarget struct {
	core
	colors []namedID
	depth  DepthStencil
}

var _ Surface = (*MultiOutputRenderTarget)(nil)

// NewMultiOutputRenderTarget creates a target from named 2D color textures.
// All textures must have the same size and the names must be unique.
func NewMultiOutputRenderTarget(ctx *Context, colors []NamedColor) (*MultiOutputRenderTarget, error) {
	return newMulti(ctx, colors, nil)
}

// NewMultiOutputRenderTargetWithDepth creates a target from named color
// textures and a depth attachment.
func NewMultiOutputRenderTargetWithDepth(ctx *Context, colors []NamedColor, depth DepthAttacher) (*MultiOutputRenderTarget, error) {
	if depth == nil {
		return nil, fmt.Errorf("%w: depth attachment", ErrNilResource)
	}
	return newMulti(ctx, colors, depth)
}

func newMulti(ctx *Context, colors []NamedColor, depth DepthAttacher) (*MultiOutputRenderTarget, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if len(colors) == 0 {
		return nil, ErrNoColorAttachments
	}
	if limit := ctx.caps.MaxColorAttachments; uint32(len(colors)) > limit {
		return nil, fmt.Errorf("%w: %d, driver supports %d", ErrTooManyColorAttachments, len(colors), limit)
	}

	set := attachmentSet{log: ctx.log()}
	ids := make([]namedID, 0, len(colors))
	seen := make(map[string]struct{}, len(colors))
	for i, nc := range colors {
		if _, dup := seen[nc.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateOutput, nc.Name)
		}
		seen[nc.Name] = struct{}{}

		r, err := AttachmentDesc(ColorTexture2D(nc.Texture, 0)).resolve()
		if err != nil {
			return nil, fmt.Errorf("color attachment %q: %w", nc.Name, err)
		}
		if i == 0 {
			set.width, set.height = r.width, r.height
		} else if err := set.matchDimensions(nc.Name, r); err != nil {
			return nil, err
		}
		set.resources = append(set.resources, r.resource)
		ids = append(ids, namedID{name: nc.Name, id: r.att.ID})
	}

	var d *Attachment
	if depth != nil {
		var err error
		if d, err = set.addDepth(depth.ToDepthAttachment()); err != nil {
			return nil, err
		}
	}

	cr, err := newCore(ctx, set)
	if err != nil {
		return nil, err
	}
	t := &MultiOutputRenderTarget{
		core:   cr,
		colors: ids,
		depth:  classifyDepthStencil(d, nil),
	}
	ctx.log().Debug("fbo: multi-output render target created",
		"outputs", len(ids),
		"width", set.width,
		"height", set.height,
		"depth", d != nil)
	return t, nil
}

// Outputs returns the color output names in declaration order.
func (t *MultiOutputRenderTarget) Outputs() []string {
	names := make([]string, len(t.colors))
	for i, c := range t.colors {
		names[i] = c.name
	}
	return names
}

// ResolveAttachments maps the color outputs to the slots of program.
// The colors are sorted by slot. It fails with an *OutputError when the
// program has no output of some color's name.
func (t *MultiOutputRenderTarget) ResolveAttachments(program Program) (*Attachments, error) {
	slots, err := resolveOutputs(program, t.colors)
	if err != nil {
		return nil, err
	}
	return &Attachments{Colors: slots, DepthStencil: t.depth}, nil
}

// declared returns the attachments with slots in declaration order, used
// where no program is bound.
func (t *MultiOutputRenderTarget) declared() *Attachments {
	return &Attachments{Colors: declarationSlots(t.colors), DepthStencil: t.depth}
}

// Kind returns KindMultiOutput.
func (t *MultiOutputRenderTarget) Kind() SurfaceKind { return KindMultiOutput }

func (t *MultiOutputRenderTarget) sealed() {}

// Clear clears the requested buffers of every output.
func (t *MultiOutputRenderTarget) Clear(opts ClearOptions) error {
	return t.clear(t.declared(), opts)
}

// Draw validates and issues one draw call.
func (t *MultiOutputRenderTarget) Draw(vertices []VerticesSource, indices IndicesProvider, program Program,
	uniforms uniform.Uniforms, params *DrawParameters) error {
	return t.draw(t.ResolveAttachments, vertices, indices, program, uniforms, params)
}

// BlitColor copies srcRect of the color outputs into dstRect of dst.
func (t *MultiOutputRenderTarget) BlitColor(srcRect Rect, dst Surface, dstRect BlitTarget, filter gputypes.FilterMode) error {
	return dst.BlitFromMultiOutputRenderTarget(t, srcRect, dstRect, filter)
}

// BlitFromScreen copies from the default framebuffer.
func (t *MultiOutputRenderTarget) BlitFromScreen(src *Screen, srcRect Rect, dstRect BlitTarget, filter gputypes.FilterMode) error {
	return blitColor(src, t, srcRect, dstRect, filter)
}

// BlitFromSimpleRenderTarget copies from a simple target.
func (t *MultiOutputRenderTarget) BlitFromSimpleRenderTarget(src *SimpleRenderTarget, srcRect Rect, dstRect BlitTarget, filter gputypes.FilterMode) error {
	return blitColor(src, t, srcRect, dstRect, filter)
}

// BlitFromMultiOutputRenderTarget copies from another multi-output target.
func (t *MultiOutputRenderTarget) BlitFromMultiOutputRenderTarget(src *MultiOutputRenderTarget, srcRect Rect, dstRect BlitTarget, filter gputypes.FilterMode) error {
	return blitColor(src, t, srcRect, dstRect, filter)
}

func (t *MultiOutputRenderTarget) blitCore() *core               { return &t.core }
func (t *MultiOutputRenderTarget) blitAttachments() *Attachments { return t.declared() }
