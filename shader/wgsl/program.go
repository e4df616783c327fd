package wgsl

import (
	"errors"
	"fmt"

	"github.com/gogpu/fbo"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/spirv"
	"github.com/gogpu/wgpu/hal"
)

// Errors returned by Compile.
var (
	// ErrCompile wraps naga diagnostics.
	ErrCompile = errors.New("wgsl: compile failed")

	// ErrEntryPoint is returned when a requested entry point is missing.
	ErrEntryPoint = errors.New("wgsl: entry point not found")

	// ErrCaptureType is returned when a captured vertex output is not a
	// float scalar or vector.
	ErrCaptureType = errors.New("wgsl: unsupported captured output type")
)

// Option configures Compile.
type Option func(*config)

type config struct {
	vertexEntry   string
	fragmentEntry string
	feedback      fbo.FeedbackMode
}

// WithEntryPoints selects the vertex and fragment entry points. Empty names
// pick the first entry point of the stage.
func WithEntryPoints(vertex, fragment string) Option {
	return func(c *config) {
		c.vertexEntry = vertex
		c.fragmentEntry = fragment
	}
}

// WithTransformFeedback captures the @location outputs of the vertex entry
// point in the given mode.
func WithTransformFeedback(mode fbo.FeedbackMode) Option {
	return func(c *config) {
		c.feedback = mode
	}
}

// Program is a compiled WGSL program.
type Program struct {
	id       fbo.NativeID
	source   string
	spirv    []uint32
	cfg      config
	refl     *reflection
	pipeline hal.RenderPipeline
	group    hal.BindGroup
}

var _ fbo.Program = (*Program)(nil)

// Compile validates source and reflects its interface. The id names the
// program towards fbo and must be unique per context.
func Compile(id fbo.NativeID, source string, opts ...Option) (*Program, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	u, err := compiled.getOrCompile(source, func() (*unit, error) {
		return compileUnit(source)
	})
	if err != nil {
		return nil, err
	}

	refl, err := reflectModule(u.module, cfg.vertexEntry, cfg.fragmentEntry, cfg.feedback != fbo.FeedbackNone)
	if err != nil {
		return nil, err
	}

	p := &Program{
		id:     id,
		source: source,
		spirv:  u.words,
		cfg:    cfg,
		refl:   refl,
	}
	fbo.Logger().Debug("wgsl: program compiled",
		"id", id,
		"outputs", len(refl.outputs),
		"bindings", len(refl.bindings),
		"captured", len(refl.varyings))
	return p, nil
}

// compileUnit runs the naga stages one by one so the lowered module stays
// available for reflection.
func compileUnit(source string) (*unit, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, fmt.Errorf("%w: lowering: %w", ErrCompile, err)
	}
	verrs, err := naga.Validate(module)
	if err != nil {
		return nil, fmt.Errorf("%w: validation: %w", ErrCompile, err)
	}
	if len(verrs) > 0 {
		return nil, fmt.Errorf("%w: validation: %w", ErrCompile, &verrs[0])
	}
	b, err := naga.GenerateSPIRV(module, spirv.Options{Version: spirv.Version1_3})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	return &unit{module: module, words: spirvWords(b)}, nil
}

// spirvWords converts little-endian SPIR-V bytes to words.
func spirvWords(b []byte) []uint32 {
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) |
			uint32(b[i*4+1])<<8 |
			uint32(b[i*4+2])<<16 |
			uint32(b[i*4+3])<<24
	}
	return words
}

func (p *Program) ID() fbo.NativeID { return p.id }

func (p *Program) OutputSlot(name string) (uint32, bool) {
	slot, ok := p.refl.outputs[name]
	return slot, ok
}

func (p *Program) UniformLocation(name string) (uint32, bool) {
	loc, ok := p.refl.bindings[name]
	return loc, ok
}

// Binding returns the bind group slot of the named resource. UniformLocation
// numbers resources densely in (group, binding) order.
func (p *Program) Binding(name string) (group, binding uint32, ok bool) {
	loc, ok := p.refl.bindings[name]
	if !ok {
		return 0, 0, false
	}
	res := p.refl.resources[loc]
	return res.group, res.binding, true
}

func (p *Program) TransformFeedbackMode() fbo.FeedbackMode { return p.cfg.feedback }

func (p *Program) CapturedOutputs() []fbo.CapturedOutput {
	return append([]fbo.CapturedOutput(nil), p.refl.varyings...)
}

// Source returns the WGSL source.
func (p *Program) Source() string { return p.source }

// SPIRV returns the compiled SPIR-V words. Programs compiled from the
// same source share the slice; callers must not modify it.
func (p *Program) SPIRV() []uint32 { return p.spirv }

// CreateShaderModule creates a HAL shader module from the compiled SPIR-V.
// The caller destroys it.
func (p *Program) CreateShaderModule(device hal.Device, label string) (hal.ShaderModule, error) {
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: p.spirv,
		},
	})
}

// SetPipeline attaches the pipeline and bind group used when the program
// is drawn with the wgpu driver. The program does not own them.
func (p *Program) SetPipeline(pipeline hal.RenderPipeline, group hal.BindGroup) {
	p.pipeline = pipeline
	p.group = group
}

// RenderPipeline returns the pipeline set with SetPipeline.
func (p *Program) RenderPipeline() hal.RenderPipeline { return p.pipeline }

// BindGroup returns the bind group set with SetPipeline.
func (p *Program) BindGroup() hal.BindGroup { return p.group }
