// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wgpu is the GPU driver for fbo, built on the gogpu/wgpu HAL.
//
// Clears and draws are encoded as render passes over the texture views of
// the target's attachments and submitted with a fence wait. Programs drawn
// through this driver must implement PipelineProgram.
//
// WebGPU binds depth and stencil through one attachment, so targets with
// separate depth and stencil resources are rejected. Triangle fans and
// 8-bit indices have no WebGPU equivalent. Scaled blits need a render
// pipeline and are not implemented by this driver.
//
// # Device sharing
//
// A driver can reuse the device of a host application:
//
//	drv, err := wgpu.NewFromProvider(provider)
//
// The provider must expose HalDevice() and HalQueue() returning the HAL
// device and queue.
package wgpu
