// Package backend selects the driver behind an fbo.Context.
//
// # Backend Registration
//
// Backends are registered via init() functions or explicit Register calls
// and selected at runtime. The software driver registers itself on import:
//
//	import _ "github.com/gogpu/fbo/backend/software"
//
// The wgpu driver needs a device, so it is registered with one:
//
//	wgpu.Register(provider)
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	b := backend.Default()
//	b := backend.Get("software")
//
// NewContext combines both steps:
//
//	ctx, b, err := backend.NewContext()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
// # Available Backends
//
//   - "wgpu": GPU driver on gogpu/wgpu (preferred when registered)
//   - "software": CPU reference driver (always available when imported)
package backend
