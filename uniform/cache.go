// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uniform

// Cache remembers the last value uploaded to each uniform slot of one
// render target.
//
// Entries are born absent, so the first store to any slot reports a change.
// The backing array grows to the highest slot seen and never shrinks.
// A Cache is not safe for concurrent use.
type Cache struct {
	entries []entry
}

type entry struct {
	set   bool
	value Value
}

// CompareAndStore stores v in slot and reports whether the slot already held
// an equal value, in which case the upload may be skipped.
//
// Values of different kinds are never equal, and opaque kinds always report
// a change.
func (c *Cache) CompareAndStore(slot uint32, v Value) bool {
	if int(slot) >= len(c.entries) {
		c.grow(int(slot) + 1)
	}
	e := &c.entries[slot]
	same := e.set && e.value.Equal(v)
	e.set = true
	e.value = v
	return same
}

func (c *Cache) grow(n int) {
	if n <= cap(c.entries) {
		c.entries = c.entries[:n]
		return
	}
	entries := make([]entry, n)
	copy(entries, c.entries)
	c.entries = entries
}

// Reset marks every entry absent. The storage is kept.
func (c *Cache) Reset() {
	clear(c.entries)
}

// Len returns the number of slots covered by the cache.
func (c *Cache) Len() int {
	return len(c.entries)
}
