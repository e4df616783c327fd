// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// blitSide is one end of a blit.
type blitSide interface {
	blitCore() *core
	blitAttachments() *Attachments
}

// blitColor is the primitive behind every BlitFrom* method. The rectangles
// need not have the same size; the driver scales with filter.
func blitColor(src, dst blitSide, srcRect Rect, dstRect BlitTarget, filter gputypes.FilterMode) error {
	sc, dc := src.blitCore(), dst.blitCore()
	if err := sc.ready(); err != nil {
		return fmt.Errorf("fbo: blit source: %w", err)
	}
	if err := dc.ready(); err != nil {
		return fmt.Errorf("fbo: blit destination: %w", err)
	}
	if sc.ctx != dc.ctx {
		return ErrContextMismatch
	}
	call := &BlitCall{
		Src:     src.blitAttachments(),
		Dst:     dst.blitAttachments(),
		Mask:    MaskColor,
		SrcRect: srcRect,
		DstRect: dstRect,
		Filter:  filter,
	}
	dc.ctx.log().Debug("fbo: blit", "src", srcRect, "dst", dstRect, "filter", filter)
	if err := dc.ctx.driver.Blit(call); err != nil {
		return fmt.Errorf("fbo: blit: %w", err)
	}
	return nil
}

// AbsWidth returns the signed width as an unsigned extent and whether the
// region is flipped horizontally.
func (b BlitTarget) AbsWidth() (w uint32, flipped bool) {
	if b.Width < 0 {
		return uint32(-int64(b.Width)), true
	}
	return uint32(b.Width), false
}

// AbsHeight returns the signed height as an unsigned extent and whether the
// region is flipped vertically.
func (b BlitTarget) AbsHeight() (h uint32, flipped bool) {
	if b.Height < 0 {
		return uint32(-int64(b.Height)), true
	}
	return uint32(b.Height), false
}

// Full returns the rectangle covering a width x height surface.
func Full(width, height uint32) Rect {
	return Rect{Width: width, Height: height}
}

// FullTarget returns the blit target covering a width x height surface.
func FullTarget(width, height uint32) BlitTarget {
	return BlitTarget{Width: int32(width), Height: int32(height)}
}
