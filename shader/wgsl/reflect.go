package wgsl

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/gogpu/fbo"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga/ir"
)

// DefaultOutputName names the output of a fragment entry point that returns
// a single @location value instead of a struct.
const DefaultOutputName = "color"

// resource is a module-scope variable bound to a bind group slot.
type resource struct {
	name    string
	group   uint32
	binding uint32
}

// reflection is what Compile learns from the lowered module.
type reflection struct {
	outputs   map[string]uint32
	bindings  map[string]uint32
	resources []resource // indexed by binding location
	varyings  []fbo.CapturedOutput
}

// findEntry returns the entry point of stage named name, or the first one of
// the stage when name is empty.
func findEntry(m *ir.Module, stage ir.ShaderStage, name string) (*ir.EntryPoint, bool) {
	for i := range m.EntryPoints {
		ep := &m.EntryPoints[i]
		if ep.Stage == stage && (name == "" || ep.Name == name) {
			return ep, true
		}
	}
	return nil, false
}

func location(b *ir.Binding) (uint32, bool) {
	if b == nil {
		return 0, false
	}
	loc, ok := (*b).(ir.LocationBinding)
	return loc.Location, ok
}

// structMembers returns the members of the struct type h, or nil when h is
// not a struct.
func structMembers(m *ir.Module, h ir.TypeHandle) []ir.StructMember {
	if int(h) >= len(m.Types) {
		return nil
	}
	st, ok := m.Types[h].Inner.(ir.StructType)
	if !ok {
		return nil
	}
	return st.Members
}

// reflectModule extracts the program interface from a lowered module. Empty
// entry names pick the first entry point of the stage.
func reflectModule(m *ir.Module, vertexEntry, fragmentEntry string, capture bool) (*reflection, error) {
	r := &reflection{
		outputs:  make(map[string]uint32),
		bindings: make(map[string]uint32),
	}

	fs, ok := findEntry(m, ir.StageFragment, fragmentEntry)
	switch {
	case ok && fs.Function.Result != nil:
		res := fs.Function.Result
		if loc, ok := location(res.Binding); ok {
			r.outputs[DefaultOutputName] = loc
			break
		}
		for _, mem := range structMembers(m, res.Type) {
			if loc, ok := location(mem.Binding); ok {
				r.outputs[mem.Name] = loc
			}
		}
	case !ok && fragmentEntry != "":
		return nil, fmt.Errorf("%w: fragment %q", ErrEntryPoint, fragmentEntry)
	}

	for _, gv := range m.GlobalVariables {
		if gv.Binding == nil {
			continue
		}
		r.resources = append(r.resources, resource{
			name:    gv.Name,
			group:   gv.Binding.Group,
			binding: gv.Binding.Binding,
		})
	}
	slices.SortFunc(r.resources, func(a, b resource) int {
		if c := cmp.Compare(a.group, b.group); c != 0 {
			return c
		}
		return cmp.Compare(a.binding, b.binding)
	})
	for i, res := range r.resources {
		r.bindings[res.name] = uint32(i)
	}

	vs, ok := findEntry(m, ir.StageVertex, vertexEntry)
	if !ok && (capture || vertexEntry != "") {
		return nil, fmt.Errorf("%w: vertex %q", ErrEntryPoint, vertexEntry)
	}
	if !capture || vs.Function.Result == nil {
		return r, nil
	}
	var offset uint32
	for _, mem := range structMembers(m, vs.Function.Result.Type) {
		if _, ok := location(mem.Binding); !ok {
			continue
		}
		format, size, ok := varyingFormat(m, mem.Type)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrCaptureType, mem.Name)
		}
		r.varyings = append(r.varyings, fbo.CapturedOutput{
			Name:   mem.Name,
			Offset: offset,
			Size:   size,
			Type:   format,
		})
		offset += size
	}
	return r, nil
}

// varyingFormat maps 32-bit float scalars and vectors to vertex formats.
func varyingFormat(m *ir.Module, h ir.TypeHandle) (gputypes.VertexFormat, uint32, bool) {
	if int(h) >= len(m.Types) {
		return 0, 0, false
	}
	isF32 := func(s ir.ScalarType) bool { return s.Kind == ir.ScalarFloat && s.Width == 4 }
	switch t := m.Types[h].Inner.(type) {
	case ir.ScalarType:
		if isF32(t) {
			return gputypes.VertexFormatFloat32, 4, true
		}
	case ir.VectorType:
		if !isF32(t.Scalar) {
			return 0, 0, false
		}
		switch t.Size {
		case ir.Vec2:
			return gputypes.VertexFormatFloat32x2, 8, true
		case ir.Vec3:
			return gputypes.VertexFormatFloat32x3, 12, true
		case ir.Vec4:
			return gputypes.VertexFormatFloat32x4, 16, true
		}
	}
	return 0, 0, false
}
