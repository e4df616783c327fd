// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

// fakeDriver records the calls it receives.
type fakeDriver struct {
	caps    Capabilities
	clears  []ClearCall
	draws   []DrawCall
	blits   []BlitCall
	drawErr error
}

var _ Driver = (*fakeDriver)(nil)

func newFakeDriver() *fakeDriver {
	return &fakeDriver{caps: Capabilities{
		MaxViewportWidth:    1024,
		MaxViewportHeight:   512,
		MaxColorAttachments: 4,
		TransformFeedback:   true,
	}}
}

func (d *fakeDriver) Capabilities() Capabilities { return d.caps }

func (d *fakeDriver) Clear(call *ClearCall) error {
	d.clears = append(d.clears, *call)
	return nil
}

func (d *fakeDriver) Draw(call *DrawCall) error {
	if d.drawErr != nil {
		return d.drawErr
	}
	d.draws = append(d.draws, *call)
	return nil
}

func (d *fakeDriver) Blit(call *BlitCall) error {
	d.blits = append(d.blits, *call)
	return nil
}

func (d *fakeDriver) calls() int {
	return len(d.clears) + len(d.draws) + len(d.blits)
}

var errFakeDraw = errors.New("fake: draw failed")

func newTestContext(t *testing.T, drv Driver) *Context {
	t.Helper()
	ctx, err := NewContext(drv)
	if err != nil {
		t.Fatalf("NewContext() = %v", err)
	}
	return ctx
}

type fakeTexture struct {
	id       NativeID
	w, h     uint32
	format   gputypes.TextureFormat
	released bool
}

func newFakeTexture(id NativeID, w, h uint32) *fakeTexture {
	return &fakeTexture{id: id, w: w, h: h, format: gputypes.TextureFormatRGBA8Unorm}
}

func newFakeDepthTexture(id NativeID, w, h uint32, f gputypes.TextureFormat) *fakeTexture {
	return &fakeTexture{id: id, w: w, h: h, format: f}
}

func (t *fakeTexture) ID() NativeID                   { return t.id }
func (t *fakeTexture) Width() uint32                  { return t.w }
func (t *fakeTexture) Height() uint32                 { return t.h }
func (t *fakeTexture) Layers() uint32                 { return 1 }
func (t *fakeTexture) Format() gputypes.TextureFormat { return t.format }
func (t *fakeTexture) Released() bool                 { return t.released }

type fakeRenderBuffer struct {
	id     NativeID
	w, h   uint32
	format gputypes.TextureFormat
}

func (r *fakeRenderBuffer) ID() NativeID                       { return r.id }
func (r *fakeRenderBuffer) Dimensions() (uint32, uint32)       { return r.w, r.h }
func (r *fakeRenderBuffer) Format() gputypes.TextureFormat     { return r.format }
func (r *fakeRenderBuffer) ToDepthAttachment() DepthAttachment { return DepthRenderBuffer(r) }

func (r *fakeRenderBuffer) ToStencilAttachment() StencilAttachment {
	return StencilRenderBuffer(r)
}

// fakeProgram is a program with fixed output slots and uniform locations.
type fakeProgram struct {
	id       NativeID
	outputs  map[string]uint32
	uniforms map[string]uint32
	mode     FeedbackMode
	captured []CapturedOutput
}

var _ Program = (*fakeProgram)(nil)

func (p *fakeProgram) ID() NativeID { return p.id }

func (p *fakeProgram) OutputSlot(name string) (uint32, bool) {
	s, ok := p.outputs[name]
	return s, ok
}

func (p *fakeProgram) UniformLocation(name string) (uint32, bool) {
	l, ok := p.uniforms[name]
	return l, ok
}

func (p *fakeProgram) TransformFeedbackMode() FeedbackMode { return p.mode }
func (p *fakeProgram) CapturedOutputs() []CapturedOutput   { return p.captured }

type fakeVertexBuffer struct {
	id     NativeID
	format VertexFormat
	n      int
}

func (b *fakeVertexBuffer) ID() NativeID         { return b.id }
func (b *fakeVertexBuffer) Format() VertexFormat { return b.format }
func (b *fakeVertexBuffer) Stride() uint32       { return 20 }
func (b *fakeVertexBuffer) Len() int             { return b.n }
