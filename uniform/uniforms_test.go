// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uniform

import "testing"

func TestSetVisitOrder(t *testing.T) {
	s := Empty().Add("b", Int(1)).Add("a", Int(2)).Add("b", Int(3))

	var names []string
	var ints []int64
	s.VisitValues(func(name string, v Value) {
		names = append(names, name)
		ints = append(ints, v.Int())
	})

	if len(names) != 2 || names[0] != "b" || names[1] != "a" {
		t.Fatalf("names = %v, want [b a]", names)
	}
	if ints[0] != 3 || ints[1] != 2 {
		t.Errorf("values = %v, want [3 2]", ints)
	}
}

func TestNilSet(t *testing.T) {
	var s *Set
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	s.VisitValues(func(string, Value) { t.Error("visited value of nil set") })
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Int(-2), "Int(-2)"},
		{Vec2([2]float32{1, 2}), "Vec2[1 2]"},
		{Texture(4), "Texture(#4)"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
