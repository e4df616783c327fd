// Package wgsl builds fbo programs from WGSL source.
//
// Compile validates the source with naga, keeps the SPIR-V it produces and
// reads the interface fbo needs from the lowered naga IR: the fragment
// outputs by name and @location, the resource bindings by name and the
// vertex outputs that transform feedback can capture.
//
// Resources get dense locations 0..n-1 in (group, binding) order, so the
// uniform cache of a target stays as small as the program. Program.Binding
// maps a name back to its bind group slot.
//
//	prog, err := wgsl.Compile(1, source)
//	if err != nil {
//		return err
//	}
//	slot, _ := prog.OutputSlot("normal")
package wgsl
