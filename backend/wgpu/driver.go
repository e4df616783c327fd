// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"fmt"
	"time"

	"github.com/gogpu/fbo"
	"github.com/gogpu/fbo/backend"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

const defaultTimeout = 5 * time.Second

// Option configures a Driver.
type Option func(*Driver)

// WithCapabilities overrides the reported capabilities.
func WithCapabilities(c fbo.Capabilities) Option {
	return func(d *Driver) {
		d.caps = c
	}
}

// WithTimeout sets how long a submission may take. The default is 5s.
func WithTimeout(t time.Duration) Option {
	return func(d *Driver) {
		d.timeout = t
	}
}

// Driver issues fbo calls on a HAL device. It is not safe for concurrent use.
type Driver struct {
	device  hal.Device
	queue   hal.Queue
	caps    fbo.Capabilities
	timeout time.Duration

	next         fbo.NativeID
	views        map[fbo.NativeID]hal.TextureView
	buffers      map[fbo.NativeID]hal.Buffer
	owned        map[fbo.NativeID]releaser
	surface      hal.TextureView
	surfaceDepth hal.TextureView
	closed       bool
}

type releaser interface {
	Release()
}

var _ backend.Backend = (*Driver)(nil)

// New creates a driver on device and queue. The caller keeps ownership of both.
func New(device hal.Device, queue hal.Queue, opts ...Option) (*Driver, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	d := &Driver{
		device:  device,
		queue:   queue,
		caps:    fbo.DefaultCapabilities(),
		timeout: defaultTimeout,
		views:   make(map[fbo.NativeID]hal.TextureView),
		buffers: make(map[fbo.NativeID]hal.Buffer),
		owned:   make(map[fbo.NativeID]releaser),
	}
	for _, opt := range opts {
		opt(d)
	}
	fbo.Logger().Debug("wgpu: driver created",
		"maxViewport", d.caps.MaxViewportWidth,
		"maxColorAttachments", d.caps.MaxColorAttachments)
	return d, nil
}

// NewFromProvider creates a driver on the device of a host application.
// The provider must implement HalDevice() any and HalQueue() any returning
// hal.Device and hal.Queue.
func NewFromProvider(provider gpucontext.DeviceProvider, opts ...Option) (*Driver, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrProvider
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrProvider)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrProvider)
	}
	return New(device, queue, opts...)
}

// Register registers a factory for the provider's device as the "wgpu"
// backend. The factory yields nil when the provider is unusable, so
// backend.Default falls back to the next backend.
func Register(provider gpucontext.DeviceProvider, opts ...Option) {
	backend.Register(backend.BackendWGPU, func() backend.Backend {
		d, err := NewFromProvider(provider, opts...)
		if err != nil {
			fbo.Logger().Warn("wgpu: backend unavailable", "error", err)
			return nil
		}
		return d
	})
}

// Name returns "wgpu".
func (d *Driver) Name() string { return backend.BackendWGPU }

// Capabilities returns the driver limits.
func (d *Driver) Capabilities() fbo.Capabilities { return d.caps }

// Close releases every resource allocated by the driver. The device and
// queue are left to their owner. Later draws fail with backend.ErrClosed.
func (d *Driver) Close() {
	d.closed = true
	for _, r := range d.owned {
		r.Release()
	}
	clear(d.owned)
	clear(d.views)
	clear(d.buffers)
	d.surface = nil
	d.surfaceDepth = nil
}

// SetSurfaceView sets the view of the current swapchain image, which
// backs the default framebuffer until the next call.
func (d *Driver) SetSurfaceView(view hal.TextureView) {
	d.surface = view
}

// RegisterTextureView makes an externally owned view usable as attachment
// and returns its id. The caller destroys the view after UnregisterTextureView.
func (d *Driver) RegisterTextureView(view hal.TextureView) fbo.NativeID {
	id := d.id()
	d.views[id] = view
	return id
}

// UnregisterTextureView forgets a view registered with RegisterTextureView.
func (d *Driver) UnregisterTextureView(id fbo.NativeID) {
	delete(d.views, id)
}

func (d *Driver) id() fbo.NativeID {
	d.next++
	return d.next
}

func (d *Driver) view(id fbo.NativeID) (hal.TextureView, error) {
	v, ok := d.views[id]
	if !ok {
		return nil, fmt.Errorf("%w: view %d", ErrUnknownResource, id)
	}
	return v, nil
}

func (d *Driver) buffer(id fbo.NativeID) (hal.Buffer, error) {
	b, ok := d.buffers[id]
	if !ok {
		return nil, fmt.Errorf("%w: buffer %d", ErrUnknownResource, id)
	}
	return b, nil
}

// Blit is not supported: WebGPU has no scaled framebuffer copy.
func (d *Driver) Blit(*fbo.BlitCall) error {
	if d.closed {
		return backend.ErrClosed
	}
	return ErrBlitUnsupported
}

func indexFormat(t fbo.IndexType) (gputypes.IndexFormat, error) {
	switch t {
	case fbo.IndexU16:
		return gputypes.IndexFormatUint16, nil
	case fbo.IndexU32:
		return gputypes.IndexFormatUint32, nil
	default:
		return 0, fmt.Errorf("%w: %d-byte indices", ErrUnsupportedIndexType, t.Size())
	}
}
