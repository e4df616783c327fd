// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import "errors"

// Errors returned by the wgpu driver.
var (
	// ErrNilDevice is returned when the driver is created without device or queue.
	ErrNilDevice = errors.New("wgpu: nil device or queue")

	// ErrProvider is returned when a device provider does not expose HAL types.
	ErrProvider = errors.New("wgpu: provider does not expose HAL device and queue")

	// ErrUnknownResource is returned when a call references an id the driver
	// did not allocate or already freed.
	ErrUnknownResource = errors.New("wgpu: unknown resource")

	// ErrNoSurfaceView is returned when the default framebuffer is targeted
	// before SetSurfaceView.
	ErrNoSurfaceView = errors.New("wgpu: no surface view")

	// ErrNoPipeline is returned when a program has no render pipeline.
	ErrNoPipeline = errors.New("wgpu: program has no render pipeline")

	// ErrUnsupportedPrimitive is returned for primitive types WebGPU lacks.
	ErrUnsupportedPrimitive = errors.New("wgpu: unsupported primitive type")

	// ErrUnsupportedIndexType is returned for 8-bit indices.
	ErrUnsupportedIndexType = errors.New("wgpu: unsupported index type")

	// ErrSeparateDepthStencil is returned when depth and stencil live in
	// different resources.
	ErrSeparateDepthStencil = errors.New("wgpu: separate depth and stencil attachments")

	// ErrBlitUnsupported is returned by Blit.
	ErrBlitUnsupported = errors.New("wgpu: blit not supported")

	// ErrZeroStride is returned for vertex buffers without stride.
	ErrZeroStride = errors.New("wgpu: zero vertex stride")

	// ErrGPUTimeout is returned when a submission does not complete in time.
	ErrGPUTimeout = errors.New("wgpu: timed out waiting for GPU")
)
