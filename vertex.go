// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import "github.com/gogpu/gputypes"

// VertexAttribute is one named attribute of a vertex layout.
type VertexAttribute struct {
	Name   string
	Offset uint32
	Format gputypes.VertexFormat
}

// VertexFormat is the ordered attribute list of a vertex buffer.
type VertexFormat []VertexAttribute

// find returns the attribute with the given name.
func (f VertexFormat) find(name string) (VertexAttribute, bool) {
	for _, a := range f {
		if a.Name == name {
			return a, true
		}
	}
	return VertexAttribute{}, false
}

// VertexBuffer is a borrowed vertex buffer.
type VertexBuffer interface {
	// ID returns the driver-side buffer name.
	ID() NativeID

	// Format returns the layout of one vertex.
	Format() VertexFormat

	// Stride returns the size of one vertex in bytes.
	Stride() uint32

	// Len returns the number of vertices.
	Len() int
}

// VerticesSource is one vertex buffer range bound to a draw.
type VerticesSource struct {
	Buffer VertexBuffer

	// Offset and Length select vertices, not bytes.
	Offset, Length int

	// PerInstance advances the source once per instance instead of per vertex.
	PerInstance bool
}

// Vertices binds a whole buffer per vertex.
func Vertices(buf VertexBuffer) VerticesSource {
	return VerticesSource{Buffer: buf, Length: buf.Len()}
}

// VertexSlice binds vertices [offset, offset+length) of buf per vertex.
func VertexSlice(buf VertexBuffer, offset, length int) VerticesSource {
	return VerticesSource{Buffer: buf, Offset: offset, Length: length}
}

// PerInstance returns src advanced once per instance.
func PerInstance(src VerticesSource) VerticesSource {
	src.PerInstance = true
	return src
}

// instances returns the instance count implied by per-instance sources:
// the shortest per-instance length, or 1 when there are none.
func instances(sources []VerticesSource) uint32 {
	n := -1
	for _, s := range sources {
		if s.PerInstance && (n < 0 || s.Length < n) {
			n = s.Length
		}
	}
	if n < 0 {
		return 1
	}
	return uint32(n)
}

// vertexCount returns the vertex count of the per-vertex sources: the
// shortest per-vertex length, or 0 when there are none.
func vertexCount(sources []VerticesSource) uint32 {
	n := -1
	for _, s := range sources {
		if !s.PerInstance && (n < 0 || s.Length < n) {
			n = s.Length
		}
	}
	if n < 0 {
		return 0
	}
	return uint32(n)
}

// VertexCount returns the number of vertices a non-indexed draw covers.
func (c *DrawCall) VertexCount() uint32 {
	return vertexCount(c.Vertices)
}

// InstanceCount returns the number of instances the draw renders.
func (c *DrawCall) InstanceCount() uint32 {
	return instances(c.Vertices)
}
