// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import "fmt"

// PrimitiveType is how vertices are assembled into primitives.
type PrimitiveType uint8

const (
	// Points draws each vertex as a point.
	Points PrimitiveType = iota

	// LinesList draws a line for each pair of vertices.
	LinesList

	// LineStrip draws a connected line through all vertices.
	LineStrip

	// TrianglesList draws a triangle for each three vertices.
	TrianglesList

	// TriangleStrip draws a triangle for each vertex after the second,
	// sharing an edge with the previous one.
	TriangleStrip

	// TriangleFan draws triangles that all share the first vertex.
	TriangleFan
)

// String returns the primitive name.
func (p PrimitiveType) String() string {
	switch p {
	case Points:
		return "Points"
	case LinesList:
		return "LinesList"
	case LineStrip:
		return "LineStrip"
	case TrianglesList:
		return "TrianglesList"
	case TriangleStrip:
		return "TriangleStrip"
	case TriangleFan:
		return "TriangleFan"
	default:
		return fmt.Sprintf("PrimitiveType(%d)", uint8(p))
	}
}

// IndexType is the element type of an index buffer.
type IndexType uint8

const (
	// IndexU8 is an 8-bit unsigned index.
	IndexU8 IndexType = iota + 1

	// IndexU16 is a 16-bit unsigned index.
	IndexU16

	// IndexU32 is a 32-bit unsigned index.
	IndexU32
)

// Size returns the element size in bytes.
func (t IndexType) Size() uint32 {
	switch t {
	case IndexU8:
		return 1
	case IndexU16:
		return 2
	case IndexU32:
		return 4
	default:
		return 0
	}
}

// IndexBuffer is a borrowed index buffer.
type IndexBuffer interface {
	ID() NativeID
	IndexType() IndexType
	Len() int
}

// IndicesProvider is implemented by everything usable as the index source
// of a draw.
type IndicesProvider interface {
	ToIndicesSource() IndicesSource
}

// IndicesSource selects the primitives of a draw. A nil Buffer draws the
// vertices in order.
type IndicesSource struct {
	Primitive PrimitiveType
	Buffer    IndexBuffer

	// Offset and Length select indices, not bytes.
	Offset, Length int
}

// ToIndicesSource returns s.
func (s IndicesSource) ToIndicesSource() IndicesSource { return s }

// NoIndices draws the vertices in order as primitives of type p.
func NoIndices(p PrimitiveType) IndicesSource {
	return IndicesSource{Primitive: p}
}

// Indices draws the whole of buf as primitives of type p.
func Indices(p PrimitiveType, buf IndexBuffer) IndicesSource {
	return IndicesSource{Primitive: p, Buffer: buf, Length: buf.Len()}
}

// IndexSlice draws indices [offset, offset+length) of buf.
func IndexSlice(p PrimitiveType, buf IndexBuffer, offset, length int) IndicesSource {
	return IndicesSource{Primitive: p, Buffer: buf, Offset: offset, Length: length}
}

// Indexed reports whether the source reads an index buffer.
func (s IndicesSource) Indexed() bool {
	return s.Buffer != nil
}
