package wgsl

import (
	"errors"
	"testing"
)

func TestSPIRVCache(t *testing.T) {
	c := newSPIRVCache(2)
	calls := 0
	compile := func(w uint32) func() (*unit, error) {
		return func() (*unit, error) {
			calls++
			return &unit{words: []uint32{w}}, nil
		}
	}

	if got, _ := c.getOrCompile("a", compile(1)); got.words[0] != 1 {
		t.Fatalf("first compile = %v", got.words)
	}
	if got, _ := c.getOrCompile("a", compile(99)); got.words[0] != 1 {
		t.Errorf("cached compile = %v, want [1]", got.words)
	}
	if calls != 1 {
		t.Errorf("compile calls = %d, want 1", calls)
	}

	_, _ = c.getOrCompile("b", compile(2))
	_, _ = c.getOrCompile("c", compile(3)) // evicts a
	if c.len() != 2 {
		t.Errorf("len = %d, want 2", c.len())
	}
	if got, _ := c.getOrCompile("a", compile(4)); got.words[0] != 4 {
		t.Errorf("after eviction = %v, want recompiled [4]", got.words)
	}
	if c.evictions.Load() != 2 {
		t.Errorf("evictions = %d, want 2", c.evictions.Load())
	}
	if c.hits.Load() != 1 {
		t.Errorf("hits = %d, want 1", c.hits.Load())
	}
}

func TestSPIRVCacheSkipsErrors(t *testing.T) {
	c := newSPIRVCache(4)
	errBoom := errors.New("boom")
	if _, err := c.getOrCompile("bad", func() (*unit, error) { return nil, errBoom }); !errors.Is(err, errBoom) {
		t.Fatalf("getOrCompile() = %v, want errBoom", err)
	}
	if c.len() != 0 {
		t.Errorf("len = %d, want 0 after failed compile", c.len())
	}
}

func TestCompileUsesCache(t *testing.T) {
	ResetCache()
	t.Cleanup(ResetCache)

	a, err := Compile(1, triangleShader)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Compile(2, triangleShader)
	if err != nil {
		t.Fatal(err)
	}
	if &a.SPIRV()[0] != &b.SPIRV()[0] {
		t.Error("second Compile did not reuse cached SPIR-V")
	}
	if s := Stats(); s.Hits != 1 || s.Misses != 1 || s.Len != 1 {
		t.Errorf("Stats() = %+v, want 1 hit, 1 miss, 1 entry", s)
	}
}
