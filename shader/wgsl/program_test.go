package wgsl

import (
	"errors"
	"testing"

	"github.com/gogpu/fbo"
)

const triangleShader = `
struct VertexOut {
    @builtin(position) pos: vec4<f32>,
    @location(0) tint: vec4<f32>,
}

@vertex
fn vs_main(@builtin(vertex_index) i: u32) -> VertexOut {
    var out: VertexOut;
    let x = f32(i32(i) - 1);
    out.pos = vec4<f32>(x, 0.0, 0.0, 1.0);
    out.tint = vec4<f32>(1.0, 0.0, 0.0, 1.0);
    return out;
}

@fragment
fn fs_main(in: VertexOut) -> @location(0) vec4<f32> {
    return in.tint;
}
`

func TestCompile(t *testing.T) {
	p, err := Compile(5, triangleShader, WithTransformFeedback(fbo.FeedbackInterleaved))
	if err != nil {
		t.Fatalf("Compile() = %v", err)
	}
	if p.ID() != 5 {
		t.Errorf("ID() = %d, want 5", p.ID())
	}
	if len(p.SPIRV()) == 0 {
		t.Error("SPIRV() is empty")
	}
	if p.SPIRV()[0] != 0x07230203 {
		t.Errorf("SPIR-V magic = %#x", p.SPIRV()[0])
	}
	if _, ok := p.OutputSlot(DefaultOutputName); !ok {
		t.Errorf("OutputSlot(%q) missing", DefaultOutputName)
	}
	if p.TransformFeedbackMode() != fbo.FeedbackInterleaved {
		t.Errorf("TransformFeedbackMode() = %v", p.TransformFeedbackMode())
	}
	outs := p.CapturedOutputs()
	if len(outs) != 1 || outs[0].Name != "tint" {
		t.Fatalf("CapturedOutputs() = %v, want [tint]", outs)
	}
	outs[0].Name = "changed"
	if p.CapturedOutputs()[0].Name != "tint" {
		t.Error("CapturedOutputs() exposes internal slice")
	}
	if p.RenderPipeline() != nil || p.BindGroup() != nil {
		t.Error("pipeline set before SetPipeline")
	}
}

func TestCompileInvalid(t *testing.T) {
	_, err := Compile(1, "fn broken( {")
	if !errors.Is(err, ErrCompile) {
		t.Fatalf("Compile() = %v, want ErrCompile", err)
	}
}

func TestProgramBinding(t *testing.T) {
	refl, err := reflectModule(lowerSource(t, multiOutputShader), "", "", false)
	if err != nil {
		t.Fatal(err)
	}
	p := &Program{refl: refl}

	loc, ok := p.UniformLocation("albedo_sampler")
	if !ok || loc != 2 {
		t.Fatalf("UniformLocation(albedo_sampler) = %d, %v; want 2, true", loc, ok)
	}
	group, binding, ok := p.Binding("albedo_sampler")
	if !ok || group != 1 || binding != 3 {
		t.Errorf("Binding(albedo_sampler) = (%d, %d, %v), want (1, 3, true)", group, binding, ok)
	}
	if _, _, ok := p.Binding("missing"); ok {
		t.Error("Binding(missing) reported ok")
	}
}
