// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/google/go-cmp/cmp"
)

func TestSimpleRenderTargetColorOnly(t *testing.T) {
	drv := newFakeDriver()
	ctx := newTestContext(t, drv)

	rt, err := NewSimpleRenderTarget(ctx, ColorTexture2D(newFakeTexture(1, 64, 32), 0))
	if err != nil {
		t.Fatalf("NewSimpleRenderTarget() = %v", err)
	}
	defer rt.Release()

	if _, ok := rt.DepthBufferBits(); ok {
		t.Error("DepthBufferBits() reported a depth buffer")
	}
	if _, ok := rt.StencilBufferBits(); ok {
		t.Error("StencilBufferBits() reported a stencil buffer")
	}
	if w, h := rt.Dimensions(); w != 64 || h != 32 {
		t.Errorf("Dimensions() = %dx%d, want 64x32", w, h)
	}
	if got := rt.Attachments().DepthStencil.Kind; got != DepthStencilNone {
		t.Errorf("DepthStencil.Kind = %v, want None", got)
	}
	if ctx.Refs() != 1 {
		t.Errorf("Refs() = %d, want 1", ctx.Refs())
	}
}

func TestSimpleRenderTargetMipLevelDimensions(t *testing.T) {
	ctx := newTestContext(t, newFakeDriver())
	rt, err := NewSimpleRenderTarget(ctx, ColorTexture2D(newFakeTexture(1, 64, 16), 3))
	if err != nil {
		t.Fatal(err)
	}
	if w, h := rt.Dimensions(); w != 8 || h != 2 {
		t.Errorf("Dimensions() = %dx%d, want 8x2", w, h)
	}
	want := Attachment{Kind: ResolvedTexture, ID: 1, BindPoint: BindTexture2D, Level: 3}
	if diff := cmp.Diff(want, rt.Attachments().Colors[0].Attachment); diff != "" {
		t.Errorf("color attachment mismatch (-want +got):\n%s", diff)
	}
}

func TestSimpleRenderTargetDepthStencilKinds(t *testing.T) {
	depth := &fakeRenderBuffer{id: 2, w: 16, h: 16, format: gputypes.TextureFormatDepth24Plus}
	stencil := &fakeRenderBuffer{id: 3, w: 16, h: 16, format: gputypes.TextureFormatStencil8}

	tests := []struct {
		name        string
		build       func(*Context, ColorAttacher) (*SimpleRenderTarget, error)
		kind        DepthStencilKind
		depthBits   uint16
		stencilBits uint16
	}{
		{
			name: "depth",
			build: func(ctx *Context, c ColorAttacher) (*SimpleRenderTarget, error) {
				return NewSimpleRenderTargetWithDepth(ctx, c, depth)
			},
			kind:      DepthOnly,
			depthBits: 24,
		},
		{
			name: "stencil",
			build: func(ctx *Context, c ColorAttacher) (*SimpleRenderTarget, error) {
				return NewSimpleRenderTargetWithStencil(ctx, c, stencil)
			},
			kind:        StencilOnly,
			stencilBits: 8,
		},
		{
			name: "depth and stencil",
			build: func(ctx *Context, c ColorAttacher) (*SimpleRenderTarget, error) {
				return NewSimpleRenderTargetWithDepthAndStencil(ctx, c, depth, stencil)
			},
			kind:        DepthAndStencil,
			depthBits:   24,
			stencilBits: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(t, newFakeDriver())
			rt, err := tt.build(ctx, ColorTexture2D(newFakeTexture(1, 16, 16), 0))
			if err != nil {
				t.Fatalf("construction = %v", err)
			}
			ds := rt.Attachments().DepthStencil
			if ds.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", ds.Kind, tt.kind)
			}
			bits, ok := rt.DepthBufferBits()
			if ok != ds.HasDepth() || bits != tt.depthBits {
				t.Errorf("DepthBufferBits() = %d, %v; want %d, %v", bits, ok, tt.depthBits, ds.HasDepth())
			}
			bits, ok = rt.StencilBufferBits()
			if ok != ds.HasStencil() || bits != tt.stencilBits {
				t.Errorf("StencilBufferBits() = %d, %v; want %d, %v", bits, ok, tt.stencilBits, ds.HasStencil())
			}
			if ds.HasStencil() && ds.Stencil.ID != 3 {
				t.Errorf("stencil attachment id = %d, want 3", ds.Stencil.ID)
			}
			if rt.BitsApproximate() {
				t.Error("BitsApproximate() = true for known formats")
			}
		})
	}
}

func TestSimpleRenderTargetDimensionMismatch(t *testing.T) {
	tests := []struct {
		name       string
		build      func(*Context, ColorAttacher) (*SimpleRenderTarget, error)
		attachment string
	}{
		{
			name: "depth texture",
			build: func(ctx *Context, c ColorAttacher) (*SimpleRenderTarget, error) {
				d := newFakeDepthTexture(2, 32, 16, gputypes.TextureFormatDepth32Float)
				return NewSimpleRenderTargetWithDepth(ctx, c, DepthTexture2D(d, 0))
			},
			attachment: "depth",
		},
		{
			name: "depth render buffer",
			build: func(ctx *Context, c ColorAttacher) (*SimpleRenderTarget, error) {
				d := &fakeRenderBuffer{id: 2, w: 16, h: 17, format: gputypes.TextureFormatDepth16Unorm}
				return NewSimpleRenderTargetWithDepth(ctx, c, d)
			},
			attachment: "depth",
		},
		{
			name: "stencil render buffer",
			build: func(ctx *Context, c ColorAttacher) (*SimpleRenderTarget, error) {
				s := &fakeRenderBuffer{id: 3, w: 8, h: 8, format: gputypes.TextureFormatStencil8}
				return NewSimpleRenderTargetWithStencil(ctx, c, s)
			},
			attachment: "stencil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drv := newFakeDriver()
			ctx := newTestContext(t, drv)
			rt, err := tt.build(ctx, ColorTexture2D(newFakeTexture(1, 16, 16), 0))
			if rt != nil {
				t.Fatal("construction returned a target")
			}
			if !errors.Is(err, ErrDimensionMismatch) {
				t.Fatalf("err = %v, want ErrDimensionMismatch", err)
			}
			var de *DimensionError
			if !errors.As(err, &de) || de.Attachment != tt.attachment {
				t.Errorf("DimensionError = %+v, want attachment %q", de, tt.attachment)
			}
			if IsRecoverable(err) {
				t.Error("dimension mismatch reported as recoverable")
			}
			if drv.calls() != 0 || ctx.Refs() != 0 {
				t.Errorf("driver calls = %d, refs = %d; want none", drv.calls(), ctx.Refs())
			}
		})
	}
}

func TestSimpleRenderTargetConstructionErrors(t *testing.T) {
	tex := newFakeTexture(1, 8, 8)
	tests := []struct {
		name  string
		build func(*Context) (*SimpleRenderTarget, error)
		want  error
	}{
		{
			name: "combined depth-stencil",
			build: func(ctx *Context) (*SimpleRenderTarget, error) {
				rb := &fakeRenderBuffer{id: 2, w: 8, h: 8, format: gputypes.TextureFormatDepth24PlusStencil8}
				return NewSimpleRenderTargetWithDepthStencil(ctx, ColorTexture2D(tex, 0), DepthStencilRenderBuffer(rb))
			},
			want: ErrDepthStencilUnsupported,
		},
		{
			name: "3D color",
			build: func(ctx *Context) (*SimpleRenderTarget, error) {
				return NewSimpleRenderTarget(ctx, ColorTexture3D(tex, 0, 2))
			},
			want: ErrUnimplementedAttachment,
		},
		{
			name: "array color",
			build: func(ctx *Context) (*SimpleRenderTarget, error) {
				return NewSimpleRenderTarget(ctx, ColorAttachment(TextureAttachment(AttachmentTexture2DArray, tex, 0)))
			},
			want: ErrUnimplementedAttachment,
		},
		{
			name: "nil texture",
			build: func(ctx *Context) (*SimpleRenderTarget, error) {
				return NewSimpleRenderTarget(ctx, ColorTexture2D(nil, 0))
			},
			want: ErrNilResource,
		},
		{
			name: "nil context",
			build: func(*Context) (*SimpleRenderTarget, error) {
				return NewSimpleRenderTarget(nil, ColorTexture2D(tex, 0))
			},
			want: ErrNilContext,
		},
		{
			name: "color format as depth",
			build: func(ctx *Context) (*SimpleRenderTarget, error) {
				return NewSimpleRenderTargetWithDepth(ctx, ColorTexture2D(tex, 0), DepthTexture2D(newFakeTexture(2, 8, 8), 0))
			},
			want: ErrFormatMismatch,
		},
		{
			name: "depth format as stencil",
			build: func(ctx *Context) (*SimpleRenderTarget, error) {
				d := newFakeDepthTexture(2, 8, 8, gputypes.TextureFormatDepth32Float)
				return NewSimpleRenderTargetWithStencil(ctx, ColorTexture2D(tex, 0), StencilTexture2D(d, 0))
			},
			want: ErrFormatMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(t, newFakeDriver())
			_, err := tt.build(ctx)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUnimplementedAttachmentNamesKind(t *testing.T) {
	d := TextureAttachment(AttachmentTexture1DArray, newFakeTexture(1, 4, 1), 0)
	_, err := d.resolve()
	if err == nil || !errors.Is(err, ErrUnimplementedAttachment) {
		t.Fatalf("resolve() = %v, want ErrUnimplementedAttachment", err)
	}
	if got := err.Error(); got != "fbo: attachment kind not implemented: Texture1DArray" {
		t.Errorf("Error() = %q", got)
	}
}

func TestMultisampleAttachmentIgnoresLevel(t *testing.T) {
	d := AttachmentDesc(ColorTexture2DMultisample(newFakeTexture(4, 8, 8)))
	d.Level = 2
	r, err := d.resolve()
	if err != nil {
		t.Fatal(err)
	}
	want := Attachment{Kind: ResolvedTexture, ID: 4, BindPoint: BindTexture2DMultisample}
	if diff := cmp.Diff(want, r.att); diff != "" {
		t.Errorf("attachment mismatch (-want +got):\n%s", diff)
	}
	if r.width != 8 || r.height != 8 {
		t.Errorf("size = %dx%d, want 8x8", r.width, r.height)
	}
}

func TestProvisionalBitDepths(t *testing.T) {
	ctx := newTestContext(t, newFakeDriver())
	depth := &fakeRenderBuffer{id: 2, w: 4, h: 4, format: gputypes.TextureFormatUndefined}
	stencil := &fakeRenderBuffer{id: 3, w: 4, h: 4, format: gputypes.TextureFormatUndefined}

	rt, err := NewSimpleRenderTargetWithDepthAndStencil(ctx, ColorTexture2D(newFakeTexture(1, 4, 4), 0), depth, stencil)
	if err != nil {
		t.Fatal(err)
	}
	if bits, _ := rt.DepthBufferBits(); bits != provisionalDepthBits {
		t.Errorf("DepthBufferBits() = %d, want %d", bits, provisionalDepthBits)
	}
	if bits, _ := rt.StencilBufferBits(); bits != provisionalStencilBits {
		t.Errorf("StencilBufferBits() = %d, want %d", bits, provisionalStencilBits)
	}
	if !rt.BitsApproximate() {
		t.Error("BitsApproximate() = false for unknown formats")
	}
}

func TestMultiOutputRenderTargetConstruction(t *testing.T) {
	tests := []struct {
		name   string
		colors []NamedColor
		want   error
	}{
		{"empty", nil, ErrNoColorAttachments},
		{
			name: "dimension mismatch",
			colors: []NamedColor{
				{"a", newFakeTexture(1, 8, 8)},
				{"b", newFakeTexture(2, 8, 4)},
			},
			want: ErrDimensionMismatch,
		},
		{
			name: "duplicate",
			colors: []NamedColor{
				{"a", newFakeTexture(1, 8, 8)},
				{"a", newFakeTexture(2, 8, 8)},
			},
			want: ErrDuplicateOutput,
		},
		{
			name: "too many",
			colors: []NamedColor{
				{"a", newFakeTexture(1, 8, 8)},
				{"b", newFakeTexture(2, 8, 8)},
				{"c", newFakeTexture(3, 8, 8)},
				{"d", newFakeTexture(4, 8, 8)},
				{"e", newFakeTexture(5, 8, 8)},
			},
			want: ErrTooManyColorAttachments,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(t, newFakeDriver())
			_, err := NewMultiOutputRenderTarget(ctx, tt.colors)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if ctx.Refs() != 0 {
				t.Errorf("Refs() = %d after failed construction", ctx.Refs())
			}
		})
	}
}

func TestMultiOutputDimensionErrorNamesOutput(t *testing.T) {
	ctx := newTestContext(t, newFakeDriver())
	_, err := NewMultiOutputRenderTarget(ctx, []NamedColor{
		{"albedo", newFakeTexture(1, 8, 8)},
		{"normal", newFakeTexture(2, 4, 8)},
	})
	var de *DimensionError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want *DimensionError", err)
	}
	want := &DimensionError{Attachment: "normal", Width: 4, Height: 8, WantW: 8, WantH: 8}
	if diff := cmp.Diff(want, de); diff != "" {
		t.Errorf("DimensionError mismatch (-want +got):\n%s", diff)
	}
}

func TestMust(t *testing.T) {
	ctx := newTestContext(t, newFakeDriver())
	rt := Must(NewSimpleRenderTarget(ctx, ColorTexture2D(newFakeTexture(1, 2, 2), 0)))
	if rt == nil {
		t.Fatal("Must() returned nil")
	}

	defer func() {
		r := recover()
		if err, ok := r.(error); !ok || !errors.Is(err, ErrNoColorAttachments) {
			t.Errorf("recover() = %v, want ErrNoColorAttachments", r)
		}
	}()
	Must(NewMultiOutputRenderTarget(ctx, nil))
}
