// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import (
	"log/slog"

	"github.com/gogpu/gputypes"
)

// Provisional bit depths reported when an attachment's format cannot be
// introspected. They are not authoritative.
const (
	provisionalDepthBits   = 32
	provisionalStencilBits = 8
)

// formatInfo describes the depth and stencil aspects of a texture format.
type formatInfo struct {
	depth   uint16
	stencil uint16
}

// lookupFormat returns the aspects of f. known is false for
// TextureFormatUndefined, which drivers use when the format is unknown.
func lookupFormat(f gputypes.TextureFormat) (known bool, info formatInfo) {
	switch f {
	case gputypes.TextureFormatUndefined:
		return false, formatInfo{}
	case gputypes.TextureFormatDepth16Unorm:
		return true, formatInfo{depth: 16}
	case gputypes.TextureFormatDepth24Plus:
		return true, formatInfo{depth: 24}
	case gputypes.TextureFormatDepth24PlusStencil8:
		return true, formatInfo{depth: 24, stencil: 8}
	case gputypes.TextureFormatDepth32Float:
		return true, formatInfo{depth: 32}
	case gputypes.TextureFormatDepth32FloatStencil8:
		return true, formatInfo{depth: 32, stencil: 8}
	case gputypes.TextureFormatStencil8:
		return true, formatInfo{stencil: 8}
	default:
		return true, formatInfo{}
	}
}

// FormatBits returns the depth and stencil bit depths of f.
// ok is false when f is TextureFormatUndefined.
func FormatBits(f gputypes.TextureFormat) (depth, stencil uint16, ok bool) {
	known, info := lookupFormat(f)
	return info.depth, info.stencil, known
}

// IsDepthFormat reports whether f has a depth aspect.
func IsDepthFormat(f gputypes.TextureFormat) bool {
	d, _, _ := FormatBits(f)
	return d > 0
}

// IsStencilFormat reports whether f has a stencil aspect.
func IsStencilFormat(f gputypes.TextureFormat) bool {
	_, s, _ := FormatBits(f)
	return s > 0
}

// aspectBits returns the bit depth of the depth (or stencil) aspect of d.
// approximate is true when the format is unknown and a provisional value was used.
func aspectBits(log *slog.Logger, d AttachmentDesc, stencil bool) (bits uint16, approximate bool, err error) {
	known, info := d.format()
	want, provisional, name := info.depth, uint16(provisionalDepthBits), "depth"
	if stencil {
		want, provisional, name = info.stencil, provisionalStencilBits, "stencil"
	}
	switch {
	case !known:
		log.Debug("fbo: attachment format unknown, using provisional bit depth",
			"aspect", name, "bits", provisional)
		return provisional, true, nil
	case want == 0:
		return 0, false, &formatError{aspect: name}
	default:
		return want, false, nil
	}
}

type formatError struct {
	aspect string
}

func (e *formatError) Error() string {
	return "fbo: " + e.aspect + " attachment format has no " + e.aspect + " aspect"
}

func (e *formatError) Unwrap() error { return ErrFormatMismatch }
