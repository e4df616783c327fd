// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import (
	"errors"
	"fmt"
)

// Construction and configuration errors. These report programmer errors:
// retrying with the same inputs reproduces them.
var (
	// ErrDimensionMismatch is returned when an attachment does not have the
	// dimensions of the target's color attachments.
	ErrDimensionMismatch = errors.New("fbo: attachment dimensions mismatch")

	// ErrNoColorAttachments is returned when a multi-output render target is
	// created without color attachments.
	ErrNoColorAttachments = errors.New("fbo: empty color attachment list")

	// ErrTooManyColorAttachments is returned when a target has more color
	// attachments than the driver supports.
	ErrTooManyColorAttachments = errors.New("fbo: too many color attachments")

	// ErrDuplicateOutput is returned when two color attachments of a
	// multi-output render target share a name.
	ErrDuplicateOutput = errors.New("fbo: duplicate color output name")

	// ErrOutputNotFound is returned when the program has no fragment output
	// with the name of a color attachment.
	ErrOutputNotFound = errors.New("fbo: fragment output not found in program")

	// ErrOutputSlotConflict is returned when the program binds two color
	// outputs of a target to the same slot.
	ErrOutputSlotConflict = errors.New("fbo: fragment outputs share a slot")

	// ErrUnimplementedAttachment is returned for attachment kinds that have no
	// wired code path.
	ErrUnimplementedAttachment = errors.New("fbo: attachment kind not implemented")

	// ErrDepthStencilUnsupported is returned when a combined depth-stencil
	// attachment is requested.
	ErrDepthStencilUnsupported = errors.New("fbo: depth-stencil attachments are not supported")

	// ErrFormatMismatch is returned when a depth or stencil attachment uses a
	// format without the required aspect.
	ErrFormatMismatch = errors.New("fbo: attachment format has no matching aspect")

	// ErrNilResource is returned when an attachment references no resource.
	ErrNilResource = errors.New("fbo: nil attachment resource")

	// ErrResourceReleased is returned when a target references a texture or
	// render buffer that was released by its owner.
	ErrResourceReleased = errors.New("fbo: attachment resource was released")

	// ErrUniformNotFound is returned when a uniform has no location in the program.
	ErrUniformNotFound = errors.New("fbo: uniform not found in program")

	// ErrNilDriver is returned when a context is created without a driver.
	ErrNilDriver = errors.New("fbo: nil driver")

	// ErrNilContext is returned when a target is created without a context.
	ErrNilContext = errors.New("fbo: nil context")

	// ErrContextInUse is returned by Context.Destroy while render targets
	// still reference the context.
	ErrContextInUse = errors.New("fbo: context still referenced by render targets")

	// ErrContextDestroyed is returned for operations on a destroyed context.
	ErrContextDestroyed = errors.New("fbo: context destroyed")

	// ErrSurfaceReleased is returned for operations on a released surface.
	ErrSurfaceReleased = errors.New("fbo: surface released")

	// ErrContextMismatch is returned when a blit joins surfaces of different
	// contexts.
	ErrContextMismatch = errors.New("fbo: surfaces belong to different contexts")

	// ErrTransformFeedbackUnsupported is returned when the driver cannot
	// capture vertex outputs.
	ErrTransformFeedbackUnsupported = errors.New("fbo: transform feedback not supported")

	// ErrFeedbackMismatch is returned when a vertex format does not match the
	// program's captured outputs.
	ErrFeedbackMismatch = errors.New("fbo: vertex format does not match captured outputs")
)

// Draw errors a caller may handle at runtime, for example by adjusting the
// draw parameters and retrying.
var (
	// ErrNoDepthBuffer is returned when the draw parameters need a depth
	// buffer and the target has none.
	ErrNoDepthBuffer = errors.New("fbo: no depth buffer")

	// ErrNoStencilBuffer is returned when a stencil clear targets a surface
	// without stencil buffer.
	ErrNoStencilBuffer = errors.New("fbo: no stencil buffer")

	// ErrViewportTooLarge is returned when the requested viewport exceeds the
	// driver's maximum viewport dimensions.
	ErrViewportTooLarge = errors.New("fbo: viewport too large")
)

// DimensionError describes an attachment whose size disagrees with the
// authoritative size of the target.
type DimensionError struct {
	// Attachment names the attachment that disagreed ("depth", "stencil",
	// or the color output name).
	Attachment string

	Width, Height uint32
	WantW, WantH  uint32
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("fbo: %s attachment is %dx%d, want %dx%d",
		e.Attachment, e.Width, e.Height, e.WantW, e.WantH)
}

// Unwrap returns ErrDimensionMismatch.
func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// ViewportError reports which viewport axis exceeded the driver limit.
type ViewportError struct {
	Axis      string
	Requested uint32
	Max       uint32
}

func (e *ViewportError) Error() string {
	return fmt.Sprintf("fbo: viewport %s %d exceeds maximum %d", e.Axis, e.Requested, e.Max)
}

// Unwrap returns ErrViewportTooLarge.
func (e *ViewportError) Unwrap() error { return ErrViewportTooLarge }

// OutputError names a color output the program cannot bind. Conflict is
// set when Name resolved to the slot already taken by Conflict.
type OutputError struct {
	Name     string
	Conflict string
	Slot     uint32
}

func (e *OutputError) Error() string {
	if e.Conflict != "" {
		return fmt.Sprintf("fbo: fragment outputs %q and %q both write slot %d", e.Conflict, e.Name, e.Slot)
	}
	return fmt.Sprintf("fbo: fragment output %q was not found in the program", e.Name)
}

// Unwrap returns ErrOutputSlotConflict or ErrOutputNotFound.
func (e *OutputError) Unwrap() error {
	if e.Conflict != "" {
		return ErrOutputSlotConflict
	}
	return ErrOutputNotFound
}

// IsRecoverable reports whether err is a runtime draw condition the caller
// may handle, as opposed to a configuration error.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrNoDepthBuffer) ||
		errors.Is(err, ErrNoStencilBuffer) ||
		errors.Is(err, ErrViewportTooLarge)
}

// Must returns v and panics if err is non-nil.
// Use only when errors are programming mistakes (e.g., fixed attachment sets).
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
