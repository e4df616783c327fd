// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/fbo"
	"github.com/gogpu/fbo/backend"
	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
)

// Errors returned by the software driver.
var (
	// ErrUnknownResource is returned when a call references an id the
	// driver did not allocate or already freed.
	ErrUnknownResource = errors.New("software: unknown resource")

	// ErrNoScreen is returned when a call targets the default framebuffer
	// of a driver created without one.
	ErrNoScreen = errors.New("software: driver has no screen")

	// ErrIndexType is returned when indices do not fit the requested type.
	ErrIndexType = errors.New("software: index out of range for index type")
)

func init() {
	backend.Register(backend.BackendSoftware, func() backend.Backend {
		return New()
	})
}

// Option configures a Driver.
type Option func(*Driver)

// WithCapabilities overrides the reported capabilities.
func WithCapabilities(c fbo.Capabilities) Option {
	return func(d *Driver) {
		d.caps = c
	}
}

// WithScreen gives the driver a default framebuffer of the given size.
func WithScreen(width, height uint32) Option {
	return func(d *Driver) {
		d.screen = image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	}
}

// Driver is the CPU reference driver. It is not safe for concurrent use.
type Driver struct {
	caps   fbo.Capabilities
	screen *image.RGBA

	next   fbo.NativeID
	pixels map[fbo.NativeID]*pixels
	draws  []fbo.DrawCall
	closed bool
}

var _ backend.Backend = (*Driver)(nil)

// New creates a software driver. It supports transform feedback and the
// default limits unless overridden.
func New(opts ...Option) *Driver {
	caps := fbo.DefaultCapabilities()
	caps.TransformFeedback = true
	d := &Driver{
		caps:   caps,
		pixels: make(map[fbo.NativeID]*pixels),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Name returns "software".
func (d *Driver) Name() string { return backend.BackendSoftware }

// Close frees every resource. Later calls fail with backend.ErrClosed.
func (d *Driver) Close() {
	clear(d.pixels)
	d.draws = nil
	d.closed = true
}

// Capabilities returns the driver limits.
func (d *Driver) Capabilities() fbo.Capabilities { return d.caps }

func (d *Driver) id() fbo.NativeID {
	d.next++
	return d.next
}

// NewTexture2D allocates a 2D texture.
func (d *Driver) NewTexture2D(width, height uint32, format gputypes.TextureFormat) *Texture {
	t := &Texture{id: d.id(), px: newPixels(width, height, format), drv: d}
	d.pixels[t.id] = t.px
	return t
}

// NewRenderBuffer allocates a render buffer.
func (d *Driver) NewRenderBuffer(width, height uint32, format gputypes.TextureFormat) *RenderBuffer {
	r := &RenderBuffer{id: d.id(), px: newPixels(width, height, format), drv: d}
	d.pixels[r.id] = r.px
	return r
}

// NewVertexBuffer allocates a vertex buffer holding data, with vertices
// of stride bytes laid out by format.
func (d *Driver) NewVertexBuffer(format fbo.VertexFormat, stride uint32, data []byte) *VertexBuffer {
	return &VertexBuffer{id: d.id(), format: format, stride: stride, data: data}
}

// NewIndexBuffer allocates an index buffer.
func (d *Driver) NewIndexBuffer(typ fbo.IndexType, indices []uint32) (*IndexBuffer, error) {
	limit := uint64(1)<<(8*typ.Size()) - 1
	for i, v := range indices {
		if uint64(v) > limit {
			return nil, fmt.Errorf("%w: index %d is %d, %d-byte max %d", ErrIndexType, i, v, typ.Size(), limit)
		}
	}
	return &IndexBuffer{id: d.id(), typ: typ, indices: indices}, nil
}

// Image returns the color pixels of a texture or render buffer.
func (d *Driver) Image(id fbo.NativeID) (*image.RGBA, bool) {
	p, ok := d.pixels[id]
	if !ok || p.img == nil {
		return nil, false
	}
	return p.img, true
}

// Depth returns the depth plane of a depth texture or render buffer.
func (d *Driver) Depth(id fbo.NativeID) ([]float32, bool) {
	p, ok := d.pixels[id]
	if !ok || p.depth == nil {
		return nil, false
	}
	return p.depth, true
}

// Stencil returns the stencil plane of a stencil texture or render buffer.
func (d *Driver) Stencil(id fbo.NativeID) ([]uint8, bool) {
	p, ok := d.pixels[id]
	if !ok || p.stencil == nil {
		return nil, false
	}
	return p.stencil, true
}

// Screen returns the default framebuffer, or nil.
func (d *Driver) Screen() *image.RGBA { return d.screen }

// Draws returns the recorded draw calls.
func (d *Driver) Draws() []fbo.DrawCall { return d.draws }

// colorImages returns the images of every color slot of atts, or the
// screen for a nil target.
func (d *Driver) colorImages(atts *fbo.Attachments) ([]*image.RGBA, error) {
	if atts == nil {
		if d.screen == nil {
			return nil, ErrNoScreen
		}
		return []*image.RGBA{d.screen}, nil
	}
	imgs := make([]*image.RGBA, 0, len(atts.Colors))
	for _, c := range atts.Colors {
		img, ok := d.Image(c.Attachment.ID)
		if !ok {
			return nil, fmt.Errorf("%w: color %d", ErrUnknownResource, c.Attachment.ID)
		}
		imgs = append(imgs, img)
	}
	return imgs, nil
}

// Clear fills the requested buffers.
func (d *Driver) Clear(call *fbo.ClearCall) error {
	if d.closed {
		return backend.ErrClosed
	}
	if call.Color != nil {
		imgs, err := d.colorImages(call.Target)
		if err != nil {
			return err
		}
		src := image.NewUniform(toRGBA(*call.Color))
		for _, img := range imgs {
			draw.Draw(img, img.Bounds(), src, image.Point{}, draw.Src)
		}
	}
	if call.Target == nil {
		return nil
	}
	ds := call.Target.DepthStencil
	if call.Depth != nil && ds.HasDepth() {
		plane, ok := d.Depth(ds.Depth.ID)
		if !ok {
			return fmt.Errorf("%w: depth %d", ErrUnknownResource, ds.Depth.ID)
		}
		for i := range plane {
			plane[i] = *call.Depth
		}
	}
	if call.Stencil != nil && ds.HasStencil() {
		plane, ok := d.Stencil(ds.Stencil.ID)
		if !ok {
			return fmt.Errorf("%w: stencil %d", ErrUnknownResource, ds.Stencil.ID)
		}
		for i := range plane {
			plane[i] = uint8(*call.Stencil)
		}
	}
	return nil
}

// Draw records the call after checking that the target exists.
func (d *Driver) Draw(call *fbo.DrawCall) error {
	if d.closed {
		return backend.ErrClosed
	}
	if _, err := d.colorImages(call.Target); err != nil {
		return err
	}
	d.draws = append(d.draws, *call)
	return nil
}

func toRGBA(c gputypes.Color) color.RGBA {
	clamp := func(v float64) uint8 {
		switch {
		case v <= 0:
			return 0
		case v >= 1:
			return 255
		default:
			return uint8(v*255 + 0.5)
		}
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
