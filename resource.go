// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import "github.com/gogpu/gputypes"

// NativeID is the driver-side name of a resource (texture, render buffer,
// buffer or program). Zero is never a valid id.
type NativeID uint32

// Texture is a borrowed texture resource.
//
// The render target does not own the texture: the creator keeps ownership and
// must keep the texture alive for as long as any target references it.
type Texture interface {
	// ID returns the driver-side texture name.
	ID() NativeID

	// Width returns the width of mip level 0 in pixels.
	Width() uint32

	// Height returns the height of mip level 0 in pixels.
	// One-dimensional textures report 1.
	Height() uint32

	// Layers returns the depth of a 3D texture or the array layer count.
	// Plain 2D textures report 1.
	Layers() uint32

	// Format returns the texel format.
	Format() gputypes.TextureFormat
}

// RenderBuffer is a borrowed, non-sampleable pixel store.
type RenderBuffer interface {
	// ID returns the driver-side render buffer name.
	ID() NativeID

	// Dimensions returns the render buffer size in pixels.
	Dimensions() (width, height uint32)

	// Format returns the pixel format.
	Format() gputypes.TextureFormat
}

// Releaser is implemented by resources that can report whether their owner
// has released them. Targets check it before every driver call so a
// use-after-release surfaces as ErrResourceReleased instead of undefined
// driver behavior.
type Releaser interface {
	Released() bool
}

func released(r any) bool {
	if rel, ok := r.(Releaser); ok {
		return rel.Released()
	}
	return false
}

// mipSize returns the size of a mip level, never smaller than 1.
func mipSize(size, level uint32) uint32 {
	size >>= level
	if size == 0 {
		return 1
	}
	return size
}
