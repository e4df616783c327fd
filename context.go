// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gputypes"
)

// Driver issues the native commands behind clears, draws and blits.
//
// A nil Attachments in a call means the default on-screen framebuffer.
// All validation has happened before the driver is called; a driver only
// reports failures of the native calls themselves.
type Driver interface {
	// Capabilities returns the limits of the underlying device.
	Capabilities() Capabilities

	// Clear clears the requested buffers of the target.
	Clear(call *ClearCall) error

	// Draw issues one draw call.
	Draw(call *DrawCall) error

	// Blit copies a rectangle between two targets.
	Blit(call *BlitCall) error
}

// Capabilities describes driver limits consulted by the validator.
type Capabilities struct {
	// MaxViewportWidth and MaxViewportHeight bound explicit viewports.
	MaxViewportWidth  uint32
	MaxViewportHeight uint32

	// MaxColorAttachments is the number of color slots a target may use.
	MaxColorAttachments uint32

	// TransformFeedback reports whether vertex outputs can be captured.
	TransformFeedback bool
}

// DefaultCapabilities returns capabilities derived from the WebGPU default limits.
func DefaultCapabilities() Capabilities {
	limits := gputypes.DefaultLimits()
	return Capabilities{
		MaxViewportWidth:    limits.MaxTextureDimension2D,
		MaxViewportHeight:   limits.MaxTextureDimension2D,
		MaxColorAttachments: 8,
	}
}

// withDefaults fills zero limits from DefaultCapabilities.
func (c Capabilities) withDefaults() Capabilities {
	def := DefaultCapabilities()
	if c.MaxViewportWidth == 0 {
		c.MaxViewportWidth = def.MaxViewportWidth
	}
	if c.MaxViewportHeight == 0 {
		c.MaxViewportHeight = def.MaxViewportHeight
	}
	if c.MaxColorAttachments == 0 {
		c.MaxColorAttachments = def.MaxColorAttachments
	}
	return c
}

// ContextOption configures a Context during creation.
type ContextOption func(*contextOptions)

type contextOptions struct {
	caps   *Capabilities
	logger *slog.Logger
}

// WithCapabilities overrides the capabilities reported by the driver.
// Zero limits still fall back to DefaultCapabilities.
func WithCapabilities(c Capabilities) ContextOption {
	return func(o *contextOptions) {
		o.caps = &c
	}
}

// WithLogger sets a logger for this context instead of the package logger.
func WithLogger(l *slog.Logger) ContextOption {
	return func(o *contextOptions) {
		o.logger = l
	}
}

// Context is the graphics context shared by render targets.
//
// Many targets reference one Context. The context counts those references
// and refuses to be destroyed while any target still holds it; no single
// target can free it.
//
// A Context and everything created from it must be used from one goroutine.
type Context struct {
	driver Driver
	caps   Capabilities
	logger *slog.Logger

	refs      atomic.Int32
	destroyed atomic.Bool
}

// NewContext creates a context issuing commands through driver.
func NewContext(driver Driver, opts ...ContextOption) (*Context, error) {
	if driver == nil {
		return nil, ErrNilDriver
	}
	var o contextOptions
	for _, opt := range opts {
		opt(&o)
	}

	caps := driver.Capabilities()
	if o.caps != nil {
		caps = *o.caps
	}

	return &Context{
		driver: driver,
		caps:   caps.withDefaults(),
		logger: o.logger,
	}, nil
}

// Driver returns the driver the context issues commands through.
func (c *Context) Driver() Driver {
	return c.driver
}

// Capabilities returns the effective capabilities.
func (c *Context) Capabilities() Capabilities {
	return c.caps
}

// Refs returns the number of render targets referencing the context.
func (c *Context) Refs() int {
	return int(c.refs.Load())
}

// Destroy marks the context unusable. It fails with ErrContextInUse while
// render targets still reference it. Destroy is idempotent.
func (c *Context) Destroy() error {
	if n := c.refs.Load(); n > 0 {
		c.log().Warn("fbo: destroy of referenced context refused", "refs", n)
		return fmt.Errorf("%w: %d targets", ErrContextInUse, n)
	}
	c.destroyed.Store(true)
	return nil
}

func (c *Context) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}

func (c *Context) retain() error {
	if c == nil {
		return ErrNilContext
	}
	if c.destroyed.Load() {
		return ErrContextDestroyed
	}
	c.refs.Add(1)
	return nil
}

func (c *Context) release() {
	c.refs.Add(-1)
}

func (c *Context) check() error {
	if c.destroyed.Load() {
		return ErrContextDestroyed
	}
	return nil
}

// contextRef is embedded by surfaces holding a counted context reference.
type contextRef struct {
	ctx      *Context
	released bool
}

// Context returns the context the surface belongs to.
func (r *contextRef) Context() *Context {
	return r.ctx
}

// Release drops the surface's reference to its context. The surface must
// not be used afterwards. Release is idempotent.
func (r *contextRef) Release() {
	if r.released {
		return
	}
	r.released = true
	r.ctx.release()
}

func (r *contextRef) usable() error {
	if r.released {
		return ErrSurfaceReleased
	}
	return r.ctx.check()
}
