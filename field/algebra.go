// Package field: collection algebra.
//
// Design:
//   - Every binary operation validates the full key set BEFORE combining a
//     single value, so a failed call leaves no partial result and operands
//     are never mutated.
//   - Results inherit the receiver's insertion order and per-dimension
//     optimization state (pheromone, weight, coords, tags); only the value
//     payloads are combined.
package field

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/stigmer/value"
)

// valueOp is an elementwise value kernel applied by combine.
type valueOp func(a, b value.Value) (value.Value, error)

// Add returns a new collection with elementwise sums.
// Errors: ErrNilCollection, ErrKeyNotFound (key sets differ), ErrTypeMismatch.
// Complexity: O(n · payload).
func (c *Collection) Add(other *Collection) (*Collection, error) {
	return c.combine(other, value.Value.Add)
}

// Subtract returns a new collection with elementwise differences c − other.
// Errors: as Add.
func (c *Collection) Subtract(other *Collection) (*Collection, error) {
	return c.combine(other, value.Value.Sub)
}

// Multiply returns a new collection with elementwise products.
// Errors: as Add.
func (c *Collection) Multiply(other *Collection) (*Collection, error) {
	return c.combine(other, value.Value.Mul)
}

// Divide returns a new collection with elementwise quotients c / other.
// Any divisor component equal to exactly zero fails the WHOLE call with
// ErrDivisionByZero; no keys are skipped and no partial collection escapes.
// Errors: ErrNilCollection, ErrKeyNotFound, ErrTypeMismatch, ErrDivisionByZero.
func (c *Collection) Divide(other *Collection) (*Collection, error) {
	return c.combine(other, value.Value.Div)
}

// combine validates key-set equality then applies op pairwise in the
// receiver's insertion order.
func (c *Collection) combine(other *Collection, op valueOp) (*Collection, error) {
	if other == nil {
		return nil, ErrNilCollection
	}
	if err := c.requireSameKeys(other); err != nil {
		return nil, err
	}

	out := &Collection{
		dims:  make(map[string]*Dimension, len(c.dims)),
		order: make([]string, len(c.order)),
	}
	copy(out.order, c.order)

	for _, name := range c.order {
		combined, err := op(c.dims[name].Value, other.dims[name].Value)
		if err != nil {
			return nil, err
		}
		d := c.dims[name].Clone()
		d.Value = combined
		out.dims[name] = d
	}

	return out, nil
}

// requireSameKeys enforces the identical-key-set contract of binary algebra.
// A missing key on either side is ErrKeyNotFound.
func (c *Collection) requireSameKeys(other *Collection) error {
	if len(c.dims) != len(other.dims) {
		return ErrKeyNotFound
	}
	for name := range c.dims {
		if _, ok := other.dims[name]; !ok {
			return ErrKeyNotFound
		}
	}

	return nil
}

// Scale returns a new collection with every value scaled by k. Scale(1) is an
// identity copy; Scale(0) zeroes every numeric component.
// Complexity: O(n · payload).
func (c *Collection) Scale(k float64) *Collection {
	out := &Collection{
		dims:  make(map[string]*Dimension, len(c.dims)),
		order: make([]string, len(c.order)),
	}
	copy(out.order, c.order)
	for name, d := range c.dims {
		scaled := d.Clone()
		scaled.Value = d.Value.Scale(k)
		out.dims[name] = scaled
	}

	return out
}

// Magnitude returns the Euclidean norm over the per-dimension value
// magnitudes: the collection's overall "size".
// Complexity: O(n · payload).
func (c *Collection) Magnitude() float64 {
	if len(c.order) == 0 {
		return 0
	}
	mags := make([]float64, len(c.order))
	for i, name := range c.order {
		mags[i] = c.dims[name].Value.Magnitude()
	}

	return floats.Norm(mags, 2)
}

// CompareMagnitude orders two collections by magnitude: −1 when c is smaller,
// +1 when larger, 0 when the norms agree within a 1e-9 band. Antisymmetric by
// construction. Key sets need not match: only the norms are compared.
// Errors: ErrNilCollection.
func (c *Collection) CompareMagnitude(other *Collection) (int, error) {
	if other == nil {
		return 0, ErrNilCollection
	}
	a, b := c.Magnitude(), other.Magnitude()
	switch {
	case a < b-magnitudeTol:
		return -1, nil
	case a > b+magnitudeTol:
		return 1, nil
	default:
		return 0, nil
	}
}
