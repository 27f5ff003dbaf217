// Package field: the insertion-ordered dimension container.
//
// Design:
//   - map for O(1) lookup + order slice for deterministic iteration
//     (insertion order is the collection's canonical order).
//   - Overwrite-on-duplicate: re-adding a name replaces its value but keeps
//     its original insertion rank, so iteration order is stable across
//     overwrites.
//   - No locking: a collection is owned by exactly one engine and a pass is
//     synchronous (see package engine).
package field

import (
	"sort"

	"github.com/katalvlaran/stigmer/value"
)

// Collection maps unique names to Dimensions and remembers insertion order.
type Collection struct {
	dims  map[string]*Dimension
	order []string
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{dims: make(map[string]*Dimension)}
}

// FromValues builds a collection from a name→value mapping. Map iteration
// order is not deterministic, so names are inserted in lexicographic order to
// make the resulting insertion order reproducible.
// Complexity: O(n log n).
func FromValues(values map[string]value.Value) *Collection {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	c := NewCollection()
	for _, name := range names {
		// Names from a map key set are non-empty only by caller discipline;
		// skip empty keys rather than fail construction.
		if name == "" {
			continue
		}
		c.put(NewDimension(name, values[name]))
	}

	return c
}

// AddDimension inserts a new dimension with neutral state, or overwrites the
// value of an existing one (original insertion rank preserved). Returns the
// stored dimension.
// Errors: ErrEmptyName.
// Complexity: O(payload).
func (c *Collection) AddDimension(name string, v value.Value) (*Dimension, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if d, ok := c.dims[name]; ok {
		d.Value = v.Clone()

		return d, nil
	}
	d := NewDimension(name, v)
	c.put(d)

	return d, nil
}

// put stores a dimension the collection now owns; callers guarantee the name
// is non-empty and not yet present.
func (c *Collection) put(d *Dimension) {
	c.dims[d.Name] = d
	c.order = append(c.order, d.Name)
}

// Remove deletes the named dimension and reports whether it existed.
// Complexity: O(n) (order slice compaction).
func (c *Collection) Remove(name string) bool {
	if _, ok := c.dims[name]; !ok {
		return false
	}
	delete(c.dims, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)

			break
		}
	}

	return true
}

// Get returns the named dimension. The pointer is live: the owning engine
// mutates dimensions through it during passes.
func (c *Collection) Get(name string) (*Dimension, bool) {
	d, ok := c.dims[name]

	return d, ok
}

// Has reports whether the name is present.
func (c *Collection) Has(name string) bool {
	_, ok := c.dims[name]

	return ok
}

// Len returns the number of dimensions.
func (c *Collection) Len() int { return len(c.dims) }

// Names returns the dimension names in insertion order. The slice is a copy.
func (c *Collection) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)

	return out
}

// Each invokes fn for every dimension in insertion order; fn returning false
// stops the walk. Each never mutates order; fn may mutate the dimension it
// receives but must not add or remove dimensions mid-walk.
func (c *Collection) Each(fn func(*Dimension) bool) {
	for _, name := range c.order {
		if !fn(c.dims[name]) {
			return
		}
	}
}

// Clone returns a deep copy: same insertion order, duplicated dimensions.
// Complexity: O(n · payload).
func (c *Collection) Clone() *Collection {
	out := &Collection{
		dims:  make(map[string]*Dimension, len(c.dims)),
		order: make([]string, len(c.order)),
	}
	copy(out.order, c.order)
	for name, d := range c.dims {
		out.dims[name] = d.Clone()
	}

	return out
}
