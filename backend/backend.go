package backend

import (
	"errors"
	"fmt"

	"github.com/gogpu/fbo"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrClosed is returned by driver calls made after Close.
	ErrClosed = errors.New("backend: closed")
)

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU reference driver.
	BackendSoftware = "software"

	// BackendWGPU is the name of the GPU driver on gogpu/wgpu.
	BackendWGPU = "wgpu"
)

// Backend is a driver that can be selected by name.
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
type Backend interface {
	fbo.Driver

	// Name returns the backend identifier (e.g., "software", "wgpu").
	Name() string

	// Close releases all backend resources.
	// The backend should not be used after Close is called.
	Close()
}

// NewContext creates a context on the default backend.
// The caller closes the backend after destroying the context.
func NewContext(opts ...fbo.ContextOption) (*fbo.Context, Backend, error) {
	b := Default()
	if b == nil {
		return nil, nil, ErrBackendNotAvailable
	}
	ctx, err := fbo.NewContext(b, opts...)
	if err != nil {
		b.Close()
		return nil, nil, fmt.Errorf("backend %s: %w", b.Name(), err)
	}
	fbo.Logger().Debug("backend: context created", "backend", b.Name())
	return ctx, b, nil
}
