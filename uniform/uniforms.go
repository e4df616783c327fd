// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uniform

// Uniforms is a set of named uniform values submitted with a draw.
type Uniforms interface {
	// VisitValues calls fn for every uniform, in a stable order.
	VisitValues(fn func(name string, v Value))
}

// Set is an ordered Uniforms built in place.
//
//	u := uniform.Empty().Add("color", uniform.Vec4(c)).Add("mvp", uniform.Mat4(m))
type Set struct {
	names  []string
	values []Value
}

// Empty returns a Set without uniforms.
func Empty() *Set {
	return &Set{}
}

// Named returns a Set holding a single uniform.
func Named(name string, v Value) *Set {
	return Empty().Add(name, v)
}

// Add appends a uniform, replacing an earlier one with the same name.
func (s *Set) Add(name string, v Value) *Set {
	for i, n := range s.names {
		if n == name {
			s.values[i] = v
			return s
		}
	}
	s.names = append(s.names, name)
	s.values = append(s.values, v)
	return s
}

// Len returns the number of uniforms.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// VisitValues calls fn for every uniform in insertion order.
func (s *Set) VisitValues(fn func(name string, v Value)) {
	if s == nil {
		return
	}
	for i, n := range s.names {
		fn(n, s.values[i])
	}
}

var _ Uniforms = (*Set)(nil)
