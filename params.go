// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import "github.com/gogpu/gputypes"

// Rect is a rectangle in framebuffer coordinates, origin at the bottom-left.
type Rect struct {
	Left, Bottom  uint32
	Width, Height uint32
}

// BlitTarget is a blit destination rectangle. Negative extents flip the
// copied region along that axis.
type BlitTarget struct {
	Left, Bottom  uint32
	Width, Height int32
}

// DepthTest is the comparison applied to incoming fragments.
type DepthTest uint8

const (
	// DepthTestIgnore disables the depth test. It is the default.
	DepthTestIgnore DepthTest = iota

	// DepthTestOverwrite always passes; with DepthWrite it overwrites the buffer.
	DepthTestOverwrite

	// DepthTestIfEqual passes when the fragment depth equals the stored one.
	DepthTestIfEqual

	// DepthTestIfNotEqual passes when the depths differ.
	DepthTestIfNotEqual

	// DepthTestIfMore passes when the fragment is farther.
	DepthTestIfMore

	// DepthTestIfMoreOrEqual passes when the fragment is farther or equal.
	DepthTestIfMoreOrEqual

	// DepthTestIfLess passes when the fragment is nearer.
	DepthTestIfLess

	// DepthTestIfLessOrEqual passes when the fragment is nearer or equal.
	DepthTestIfLessOrEqual
)

// RequiresDepthBuffer reports whether the test reads the depth buffer.
// Ignore and Overwrite never read it.
func (d DepthTest) RequiresDepthBuffer() bool {
	return d != DepthTestIgnore && d != DepthTestOverwrite
}

// CompareFunction returns the equivalent WebGPU compare function.
func (d DepthTest) CompareFunction() gputypes.CompareFunction {
	switch d {
	case DepthTestIfEqual:
		return gputypes.CompareFunctionEqual
	case DepthTestIfNotEqual:
		return gputypes.CompareFunctionNotEqual
	case DepthTestIfMore:
		return gputypes.CompareFunctionGreater
	case DepthTestIfMoreOrEqual:
		return gputypes.CompareFunctionGreaterEqual
	case DepthTestIfLess:
		return gputypes.CompareFunctionLess
	case DepthTestIfLessOrEqual:
		return gputypes.CompareFunctionLessEqual
	default:
		return gputypes.CompareFunctionAlways
	}
}

// Culling selects which faces are discarded.
type Culling uint8

const (
	// CullNone draws all faces.
	CullNone Culling = iota

	// CullClockwise discards clockwise faces.
	CullClockwise

	// CullCounterClockwise discards counter-clockwise faces.
	CullCounterClockwise
)

// DrawParameters holds the fixed-function state of a draw.
// The zero value draws without depth test, depth write, viewport or scissor.
type DrawParameters struct {
	DepthTest  DepthTest
	DepthWrite bool

	// Viewport restricts rendering to a region. Nil means the whole target.
	Viewport *Rect

	// Scissor discards fragments outside the rectangle. Nil disables it.
	Scissor *Rect

	Culling Culling

	// TransformFeedback captures the vertex outputs of the draw. The session
	// must belong to the drawing program.
	TransformFeedback *TransformFeedbackSession
}

// needsDepthBuffer reports whether the parameters use a depth buffer.
func (p *DrawParameters) needsDepthBuffer() bool {
	return p.DepthTest.RequiresDepthBuffer() || p.DepthWrite
}
