// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"fmt"
	"image"

	"github.com/gogpu/fbo"
	"github.com/gogpu/fbo/backend"
	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
)

// Blit copies the color region of the first source attachment into every
// destination color attachment, scaling with the requested filter.
func (d *Driver) Blit(call *fbo.BlitCall) error {
	if d.closed {
		return backend.ErrClosed
	}
	if call.Mask&fbo.MaskColor == 0 {
		return nil
	}
	srcs, err := d.colorImages(call.Src)
	if err != nil {
		return fmt.Errorf("blit source: %w", err)
	}
	dsts, err := d.colorImages(call.Dst)
	if err != nil {
		return fmt.Errorf("blit destination: %w", err)
	}
	if len(srcs) == 0 {
		return nil
	}
	src := srcs[0]

	r := call.SrcRect
	srcR := imageRect(src, int(r.Left), int(r.Bottom), int(r.Width), int(r.Height))
	if srcR.Empty() {
		return nil
	}

	w, flipX := call.DstRect.AbsWidth()
	h, flipY := call.DstRect.AbsHeight()
	if w == 0 || h == 0 {
		return nil
	}
	left, bottom := int(call.DstRect.Left), int(call.DstRect.Bottom)
	if flipX {
		left -= int(w)
	}
	if flipY {
		bottom -= int(h)
	}

	scaled := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	scaler(call.Filter).Scale(scaled, scaled.Bounds(), src, srcR, draw.Src, nil)
	if flipX || flipY {
		scaled = flip(scaled, flipX, flipY)
	}

	for _, dst := range dsts {
		dstR := imageRect(dst, left, bottom, int(w), int(h))
		draw.Draw(dst, dstR, scaled, image.Point{}, draw.Src)
	}
	return nil
}

// imageRect converts a bottom-left based rectangle to image coordinates.
func imageRect(img *image.RGBA, left, bottom, width, height int) image.Rectangle {
	h := img.Bounds().Dy()
	return image.Rect(left, h-bottom-height, left+width, h-bottom)
}

func scaler(f gputypes.FilterMode) draw.Scaler {
	if f == gputypes.FilterModeLinear {
		return draw.BiLinear
	}
	return draw.NearestNeighbor
}

func flip(img *image.RGBA, x, y bool) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	for py := 0; py < b.Dy(); py++ {
		sy := py
		if y {
			sy = b.Dy() - 1 - py
		}
		for px := 0; px < b.Dx(); px++ {
			sx := px
			if x {
				sx = b.Dx() - 1 - px
			}
			out.SetRGBA(px, py, img.RGBAAt(sx, sy))
		}
	}
	return out
}
