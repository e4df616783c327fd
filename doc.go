// Package fbo manages off-screen render targets and validates the draws,
// clears and blits issued against them.
//
// # Overview
//
// A render target is a set of borrowed attachments: color textures or
// render buffers, plus optional depth and stencil buffers. Construction
// checks that all attachments share one size and records the depth and
// stencil bit depths. Every draw is then validated against the target and
// the driver limits before a single native call is made.
//
// # Quick Start
//
//	drv := software.New()
//	ctx, err := fbo.NewContext(drv)
//	if err != nil {
//		return err
//	}
//	color := drv.NewTexture2D(256, 256, gputypes.TextureFormatRGBA8Unorm)
//	depth := drv.NewRenderBuffer(256, 256, gputypes.TextureFormatDepth24Plus)
//
//	rt, err := fbo.NewSimpleRenderTargetWithDepth(ctx, color, depth)
//	if err != nil {
//		return err
//	}
//	defer rt.Release()
//
//	_ = fbo.ClearColorAndDepth(rt, 0, 0, 0, 1, 1)
//	err = rt.Draw(vertices, fbo.NoIndices(fbo.TrianglesList), program,
//		uniform.Named("color", uniform.Vec4(c)),
//		&fbo.DrawParameters{DepthTest: fbo.DepthTestIfLess, DepthWrite: true})
//
// # Surfaces
//
// Screen, SimpleRenderTarget and MultiOutputRenderTarget implement Surface.
// A MultiOutputRenderTarget binds its color textures by name; the slot of
// each name is looked up in the drawing program on every draw.
//
// # Drivers
//
// backend/software is a CPU reference driver that executes clears and blits
// on images and records draws. backend/wgpu issues render passes on a
// gogpu/wgpu HAL device; its programs come from shader/wgsl, which reflects
// output slots and bindings from WGSL source. backend selects between
// registered drivers.
//
// # Errors
//
// Construction errors and program mismatches indicate programmer error and
// are returned as-is; Must turns them into panics. Draw conditions the caller
// may handle at runtime are reported by IsRecoverable.
//
// # Resource Lifetime
//
// Targets do not own their attachments. A texture or render buffer must
// outlive every target referencing it. Resources implementing Releaser are
// checked before each driver call.
//
// # Threading
//
// A Context and its surfaces must be used from one goroutine. SetLogger and
// the backend registry are safe for concurrent use.
package fbo
