// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import (
	"fmt"

	"github.com/gogpu/fbo/uniform"
)

// core is the state shared by every surface kind: the context reference,
// the validated attachment set and the uniform cache.
type core struct {
	contextRef
	attachmentSet

	cache uniform.Cache

	// program is the id of the last program that drew on the surface.
	program NativeID
}

func newCore(ctx *Context, set attachmentSet) (core, error) {
	if err := ctx.retain(); err != nil {
		return core{}, err
	}
	return core{contextRef: contextRef{ctx: ctx}, attachmentSet: set}, nil
}

// ready fails when the surface or its context is gone, or a borrowed
// resource was released.
func (c *core) ready() error {
	if err := c.usable(); err != nil {
		return err
	}
	return c.checkResources()
}

// draw validates a draw and forwards it to the driver. build produces the
// attachments for the program; it is only called once the parameters pass.
// The validator never mutates the surface before every check has passed.
func (c *core) draw(build func(Program) (*Attachments, error), vertices []VerticesSource,
	indices IndicesProvider, program Program, uniforms uniform.Uniforms, params *DrawParameters) error {
	if err := c.ready(); err != nil {
		return err
	}
	if program == nil {
		return fmt.Errorf("%w: program", ErrNilResource)
	}
	var p DrawParameters
	if params != nil {
		p = *params
	}

	if p.needsDepthBuffer() && !c.HasDepthBuffer() {
		return ErrNoDepthBuffer
	}
	if err := c.checkViewport(p.Viewport); err != nil {
		return err
	}
	if fb := p.TransformFeedback; fb != nil {
		if fb.program.ID() != program.ID() {
			return fmt.Errorf("%w: session of program %d used with program %d",
				ErrFeedbackMismatch, fb.program.ID(), program.ID())
		}
	}

	atts, err := build(program)
	if err != nil {
		return err
	}

	locs, err := resolveUniforms(program, uniforms)
	if err != nil {
		return err
	}
	uploads := c.diffUniforms(program.ID(), locs)

	var idx IndicesSource
	if indices != nil {
		idx = indices.ToIndicesSource()
	}

	call := &DrawCall{
		Target:     atts,
		Width:      c.width,
		Height:     c.height,
		Vertices:   vertices,
		Indices:    idx,
		Program:    program,
		Uniforms:   uploads,
		Parameters: p,
	}
	c.ctx.log().Debug("fbo: draw",
		"program", program.ID(),
		"primitive", idx.Primitive,
		"sources", len(vertices),
		"uploads", len(uploads))

	if err := c.ctx.driver.Draw(call); err != nil {
		// The cache may now hold values the driver never received.
		c.cache.Reset()
		return fmt.Errorf("fbo: draw: %w", err)
	}
	return nil
}

// checkViewport compares an explicit viewport with the driver limits, one
// axis at a time. A viewport of exactly the maximum size passes.
func (c *core) checkViewport(vp *Rect) error {
	if vp == nil {
		return nil
	}
	caps := c.ctx.caps
	if vp.Width > caps.MaxViewportWidth {
		return &ViewportError{Axis: "width", Requested: vp.Width, Max: caps.MaxViewportWidth}
	}
	if vp.Height > caps.MaxViewportHeight {
		return &ViewportError{Axis: "height", Requested: vp.Height, Max: caps.MaxViewportHeight}
	}
	return nil
}

// resolveUniforms looks up the location of every submitted uniform.
func resolveUniforms(program Program, uniforms uniform.Uniforms) ([]UniformUpload, error) {
	if uniforms == nil {
		return nil, nil
	}
	var (
		locs    []UniformUpload
		missing string
	)
	uniforms.VisitValues(func(name string, v uniform.Value) {
		if missing != "" {
			return
		}
		loc, ok := program.UniformLocation(name)
		if !ok {
			missing = name
			return
		}
		locs = append(locs, UniformUpload{Name: name, Location: loc, Value: v})
	})
	if missing != "" {
		return nil, fmt.Errorf("%w: %q", ErrUniformNotFound, missing)
	}
	return locs, nil
}

// diffUniforms stores the values in the cache and returns the ones that
// changed. Switching programs invalidates the cache because locations are
// per program.
func (c *core) diffUniforms(program NativeID, locs []UniformUpload) []UniformUpload {
	if program != c.program {
		c.cache.Reset()
		c.program = program
	}
	uploads := locs[:0]
	for _, u := range locs {
		if !c.cache.CompareAndStore(u.Location, u.Value) {
			uploads = append(uploads, u)
		}
	}
	return uploads
}

// clear validates a clear and forwards it to the driver.
func (c *core) clear(atts *Attachments, opts ClearOptions) error {
	if err := c.ready(); err != nil {
		return err
	}
	if opts.Depth != nil && !c.HasDepthBuffer() {
		return ErrNoDepthBuffer
	}
	if opts.Stencil != nil && !c.HasStencilBuffer() {
		return ErrNoStencilBuffer
	}
	if opts.Color == nil && opts.Depth == nil && opts.Stencil == nil {
		return nil
	}
	call := &ClearCall{
		Target:  atts,
		Width:   c.width,
		Height:  c.height,
		Color:   opts.Color,
		Depth:   opts.Depth,
		Stencil: opts.Stencil,
	}
	if err := c.ctx.driver.Clear(call); err != nil {
		return fmt.Errorf("fbo: clear: %w", err)
	}
	return nil
}
