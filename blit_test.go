// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/google/go-cmp/cmp"
)

type blitSurfaces struct {
	screen *Screen
	simple *SimpleRenderTarget
	multi  *MultiOutputRenderTarget
}

func newBlitSurfaces(t *testing.T, drv *fakeDriver) blitSurfaces {
	t.Helper()
	ctx := newTestContext(t, drv)
	screen, err := NewScreen(ctx, 8, 8, ScreenOptions{})
	if err != nil {
		t.Fatal(err)
	}
	simple, err := NewSimpleRenderTarget(ctx, ColorTexture2D(newFakeTexture(1, 4, 4), 0))
	if err != nil {
		t.Fatal(err)
	}
	multi, err := NewMultiOutputRenderTarget(ctx, []NamedColor{
		{"a", newFakeTexture(2, 8, 8)},
		{"b", newFakeTexture(3, 8, 8)},
	})
	if err != nil {
		t.Fatal(err)
	}
	return blitSurfaces{screen: screen, simple: simple, multi: multi}
}

func TestBlitColorDispatch(t *testing.T) {
	drv := newFakeDriver()
	s := newBlitSurfaces(t, drv)

	simpleAtts := &Attachments{Colors: []ColorSlot{
		{Slot: 0, Attachment: Attachment{Kind: ResolvedTexture, ID: 1, BindPoint: BindTexture2D}},
	}}
	multiAtts := &Attachments{Colors: []ColorSlot{
		{Slot: 0, Attachment: Attachment{Kind: ResolvedTexture, ID: 2, BindPoint: BindTexture2D}},
		{Slot: 1, Attachment: Attachment{Kind: ResolvedTexture, ID: 3, BindPoint: BindTexture2D}},
	}}

	surfaces := []struct {
		name string
		s    Surface
		atts *Attachments
	}{
		{"screen", s.screen, nil},
		{"simple", s.simple, simpleAtts},
		{"multi", s.multi, multiAtts},
	}

	for _, src := range surfaces {
		for _, dst := range surfaces {
			t.Run(src.name+"->"+dst.name, func(t *testing.T) {
				drv.blits = nil
				err := src.s.BlitColor(Full(4, 4), dst.s, FullTarget(8, 8), gputypes.FilterModeLinear)
				if err != nil {
					t.Fatalf("BlitColor() = %v", err)
				}
				if len(drv.blits) != 1 {
					t.Fatalf("blits = %d, want 1", len(drv.blits))
				}
				want := BlitCall{
					Src:     src.atts,
					Dst:     dst.atts,
					Mask:    MaskColor,
					SrcRect: Rect{Width: 4, Height: 4},
					DstRect: BlitTarget{Width: 8, Height: 8},
					Filter:  gputypes.FilterModeLinear,
				}
				if diff := cmp.Diff(want, drv.blits[0]); diff != "" {
					t.Errorf("blit call mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestBlitContextMismatch(t *testing.T) {
	a := newColorTarget(t, newFakeDriver())
	b := newColorTarget(t, newFakeDriver())
	err := a.BlitColor(Full(4, 4), b, FullTarget(4, 4), gputypes.FilterModeNearest)
	if !errors.Is(err, ErrContextMismatch) {
		t.Errorf("BlitColor() = %v, want ErrContextMismatch", err)
	}
}

func TestBlitReleasedSource(t *testing.T) {
	drv := newFakeDriver()
	s := newBlitSurfaces(t, drv)
	s.simple.Release()
	err := s.simple.BlitColor(Full(4, 4), s.screen, FullTarget(4, 4), gputypes.FilterModeNearest)
	if !errors.Is(err, ErrSurfaceReleased) {
		t.Errorf("BlitColor() = %v, want ErrSurfaceReleased", err)
	}
	if len(drv.blits) != 0 {
		t.Error("driver was called")
	}
}

func TestBlitTargetExtents(t *testing.T) {
	tests := []struct {
		in     BlitTarget
		w, h   uint32
		fx, fy bool
	}{
		{BlitTarget{Width: 8, Height: 4}, 8, 4, false, false},
		{BlitTarget{Left: 8, Width: -8, Height: 4}, 8, 4, true, false},
		{BlitTarget{Bottom: 4, Width: 8, Height: -4}, 8, 4, false, true},
	}
	for _, tt := range tests {
		w, fx := tt.in.AbsWidth()
		h, fy := tt.in.AbsHeight()
		if w != tt.w || h != tt.h || fx != tt.fx || fy != tt.fy {
			t.Errorf("%+v: got %d,%d flips %v,%v", tt.in, w, h, fx, fy)
		}
	}
}
