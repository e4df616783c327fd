// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import (
	"github.com/gogpu/fbo/uniform"
	"github.com/gogpu/gputypes"
)

// SurfaceKind is the closed set of surface implementations.
type SurfaceKind uint8

const (
	// KindScreen is the default on-screen framebuffer.
	KindScreen SurfaceKind = iota + 1

	// KindSimple is a SimpleRenderTarget.
	KindSimple

	// KindMultiOutput is a MultiOutputRenderTarget.
	KindMultiOutput
)

// Surface is the capability contract shared by the default framebuffer and
// all render targets. Client code draws, clears and blits through it without
// knowing the concrete kind.
//
// Surface cannot be implemented outside this package; blits dispatch over
// the closed set of kinds.
type Surface interface {
	// Clear clears the requested buffers.
	Clear(opts ClearOptions) error

	// Dimensions returns the surface size in pixels.
	Dimensions() (width, height uint32)

	// DepthBufferBits returns the depth bit depth; ok is false without depth buffer.
	DepthBufferBits() (bits uint16, ok bool)

	// StencilBufferBits returns the stencil bit depth; ok is false without stencil buffer.
	StencilBufferBits() (bits uint16, ok bool)

	// Draw validates and issues one draw call.
	Draw(vertices []VerticesSource, indices IndicesProvider, program Program,
		uniforms uniform.Uniforms, params *DrawParameters) error

	// BlitColor copies the color of srcRect of this surface into dstRect of dst.
	BlitColor(srcRect Rect, dst Surface, dstRect BlitTarget, filter gputypes.FilterMode) error

	// BlitFromScreen copies from the default framebuffer into this surface.
	BlitFromScreen(src *Screen, srcRect Rect, dstRect BlitTarget, filter gputypes.FilterMode) error

	// BlitFromSimpleRenderTarget copies from a simple target into this surface.
	BlitFromSimpleRenderTarget(src *SimpleRenderTarget, srcRect Rect, dstRect BlitTarget, filter gputypes.FilterMode) error

	// BlitFromMultiOutputRenderTarget copies from a multi-output target into this surface.
	BlitFromMultiOutputRenderTarget(src *MultiOutputRenderTarget, srcRect Rect, dstRect BlitTarget, filter gputypes.FilterMode) error

	// Kind returns the concrete surface kind.
	Kind() SurfaceKind

	sealed()
}

// ClearOptions selects the buffers to clear. Nil fields are left untouched.
type ClearOptions struct {
	Color   *gputypes.Color
	Depth   *float32
	Stencil *int32
}

// ClearColor clears the color buffers of s.
func ClearColor(s Surface, r, g, b, a float64) error {
	return s.Clear(ClearOptions{Color: &gputypes.Color{R: r, G: g, B: b, A: a}})
}

// ClearDepth clears the depth buffer of s.
func ClearDepth(s Surface, depth float32) error {
	return s.Clear(ClearOptions{Depth: &depth})
}

// ClearStencil clears the stencil buffer of s.
func ClearStencil(s Surface, stencil int32) error {
	return s.Clear(ClearOptions{Stencil: &stencil})
}

// ClearColorAndDepth clears the color and depth buffers of s.
func ClearColorAndDepth(s Surface, r, g, b, a float64, depth float32) error {
	return s.Clear(ClearOptions{
		Color: &gputypes.Color{R: r, G: g, B: b, A: a},
		Depth: &depth,
	})
}

// ClearAll clears color, depth and stencil buffers of s.
func ClearAll(s Surface, r, g, b, a float64, depth float32, stencil int32) error {
	return s.Clear(ClearOptions{
		Color:   &gputypes.Color{R: r, G: g, B: b, A: a},
		Depth:   &depth,
		Stencil: &stencil,
	})
}
