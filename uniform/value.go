// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package uniform holds shader uniform values and the per-target cache that
// detects redundant uploads.
package uniform

import "fmt"

// Kind is the type of a uniform value.
type Kind uint8

const (
	// KindInvalid is the kind of the zero Value.
	KindInvalid Kind = iota
	KindInt
	KindUint
	KindFloat
	KindVec2
	KindVec3
	KindVec4
	KindMat2
	KindMat3
	KindMat4

	// KindTexture and KindSampler are opaque resource bindings. They are
	// never cached.
	KindTexture
	KindSampler
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "Invalid"
	case KindInt:
		return "Int"
	case KindUint:
		return "Uint"
	case KindFloat:
		return "Float"
	case KindVec2:
		return "Vec2"
	case KindVec3:
		return "Vec3"
	case KindVec4:
		return "Vec4"
	case KindMat2:
		return "Mat2"
	case KindMat3:
		return "Mat3"
	case KindMat4:
		return "Mat4"
	case KindTexture:
		return "Texture"
	case KindSampler:
		return "Sampler"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Comparable reports whether values of the kind can be cached.
func (k Kind) Comparable() bool {
	return k >= KindInt && k <= KindMat4
}

// components returns the number of significant slots in Value.f.
func (k Kind) components() int {
	switch k {
	case KindFloat:
		return 1
	case KindVec2:
		return 2
	case KindVec3:
		return 3
	case KindVec4, KindMat2:
		return 4
	case KindMat3:
		return 9
	case KindMat4:
		return 16
	default:
		return 0
	}
}

// Value is one uniform value. Values are small and passed by value.
// Build them with the constructors; the zero Value is invalid.
type Value struct {
	kind Kind
	i    int64
	f    [16]float32

	// handle identifies the bound resource of an opaque kind.
	handle uint32
}

// Int returns an integer uniform.
func Int(v int32) Value { return Value{kind: KindInt, i: int64(v)} }

// Uint returns an unsigned integer uniform.
func Uint(v uint32) Value { return Value{kind: KindUint, i: int64(v)} }

// Float returns a float uniform.
func Float(v float32) Value {
	u := Value{kind: KindFloat}
	u.f[0] = v
	return u
}

// Vec2 returns a two-component vector uniform.
func Vec2(v [2]float32) Value {
	u := Value{kind: KindVec2}
	copy(u.f[:], v[:])
	return u
}

// Vec3 returns a three-component vector uniform.
func Vec3(v [3]float32) Value {
	u := Value{kind: KindVec3}
	copy(u.f[:], v[:])
	return u
}

// Vec4 returns a four-component vector uniform.
func Vec4(v [4]float32) Value {
	u := Value{kind: KindVec4}
	copy(u.f[:], v[:])
	return u
}

// Mat2 returns a column-major 2x2 matrix uniform.
func Mat2(m [2][2]float32) Value {
	u := Value{kind: KindMat2}
	for c := range m {
		copy(u.f[c*2:], m[c][:])
	}
	return u
}

// Mat3 returns a column-major 3x3 matrix uniform.
func Mat3(m [3][3]float32) Value {
	u := Value{kind: KindMat3}
	for c := range m {
		copy(u.f[c*3:], m[c][:])
	}
	return u
}

// Mat4 returns a column-major 4x4 matrix uniform.
func Mat4(m [4][4]float32) Value {
	u := Value{kind: KindMat4}
	for c := range m {
		copy(u.f[c*4:], m[c][:])
	}
	return u
}

// Texture returns an opaque texture binding uniform.
func Texture(id uint32) Value { return Value{kind: KindTexture, handle: id} }

// Sampler returns an opaque sampler binding uniform.
func Sampler(id uint32) Value { return Value{kind: KindSampler, handle: id} }

// Kind returns the value kind.
func (v Value) Kind() Kind { return v.kind }

// Int returns the integer payload of KindInt and KindUint values.
func (v Value) Int() int64 { return v.i }

// Floats returns the float components of float, vector and matrix values.
// Matrices are column-major.
func (v Value) Floats() []float32 {
	return v.f[:v.kind.components()]
}

// Handle returns the resource id of KindTexture and KindSampler values.
func (v Value) Handle() uint32 { return v.handle }

// Equal reports whether v and o have the same comparable kind and exactly
// equal data. Opaque kinds are never equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind || !v.kind.Comparable() {
		return false
	}
	return v.i == o.i && v.f == o.f
}

func (v Value) String() string {
	switch {
	case v.kind == KindInt || v.kind == KindUint:
		return fmt.Sprintf("%s(%d)", v.kind, v.i)
	case v.kind == KindTexture || v.kind == KindSampler:
		return fmt.Sprintf("%s(#%d)", v.kind, v.handle)
	default:
		return fmt.Sprintf("%s%v", v.kind, v.Floats())
	}
}
