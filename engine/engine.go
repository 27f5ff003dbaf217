// Package engine: construction, dimension management and read surface.
//
// Design:
//   - One engine, one collection: the constructor builds the collection from
//     the caller's map and nothing else ever shares it. Exported reads hand
//     out clones; algebra hands out fresh collections.
//   - Deterministic seeding: map construction inserts names in lexicographic
//     order so two engines seeded from equal maps iterate identically.
package engine

import (
	"github.com/go-logr/logr"

	"github.com/katalvlaran/stigmer/field"
	"github.com/katalvlaran/stigmer/fusion"
	"github.com/katalvlaran/stigmer/neighbor"
	"github.com/katalvlaran/stigmer/value"
)

// Engine owns a dimension collection and runs optimization passes over it.
// Not safe for concurrent use; a pass is synchronous by contract.
type Engine struct {
	opts Options
	coll *field.Collection
	sel  *neighbor.Selector
	log  logr.Logger

	// stallCount tracks consecutive optimization runs that ended without net
	// improvement; it drives the pruning threshold and the expansion trigger.
	stallCount int

	// expandSeq numbers auto-expanded dimensions deterministically.
	expandSeq int
}

// New builds an engine around the given name→value seed. Options are
// validated up front; the seed map may be nil or empty.
// Errors: ErrInvalidConfiguration, neighbor.ErrBadOptions.
func New(initial map[string]value.Value, opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	sel, err := neighbor.NewSelector(opts.Neighbor)
	if err != nil {
		return nil, err
	}

	return &Engine{
		opts: opts,
		coll: field.FromValues(initial),
		sel:  sel,
		log:  opts.Logger,
	}, nil
}

// AddDimension inserts a dimension or overwrites the value of an existing
// one (insertion rank preserved). Returns the stored dimension so callers
// can attach coordinates or tags.
// Errors: field.ErrEmptyName.
func (e *Engine) AddDimension(name string, v value.Value) (*field.Dimension, error) {
	return e.coll.AddDimension(name, v)
}

// RemoveDimension deletes the named dimension and reports whether it existed.
func (e *Engine) RemoveDimension(name string) bool {
	return e.coll.Remove(name)
}

// Value returns a deep copy of the named dimension's value.
// Errors: field.ErrKeyNotFound.
func (e *Engine) Value(name string) (value.Value, error) {
	d, ok := e.coll.Get(name)
	if !ok {
		return value.Value{}, field.ErrKeyNotFound
	}

	return d.Value.Clone(), nil
}

// Pheromone returns the named dimension's pheromone level.
// Errors: field.ErrKeyNotFound.
func (e *Engine) Pheromone(name string) (float64, error) {
	d, ok := e.coll.Get(name)
	if !ok {
		return 0, field.ErrKeyNotFound
	}

	return d.Pheromone, nil
}

// Len returns the number of dimensions.
func (e *Engine) Len() int { return e.coll.Len() }

// Names returns the dimension names in insertion order.
func (e *Engine) Names() []string { return e.coll.Names() }

// StallCount reports how many consecutive runs ended without net improvement.
func (e *Engine) StallCount() int { return e.stallCount }

// Snapshot returns a deep copy of the owned collection, suitable as an
// operand for another collection's algebra.
func (e *Engine) Snapshot() *field.Collection { return e.coll.Clone() }

// Add returns the elementwise sum of the owned collection and other as a new
// collection; neither operand is mutated. See field.Collection.Add for the
// identical-key-set and fail-whole contracts.
func (e *Engine) Add(other *field.Collection) (*field.Collection, error) {
	return e.coll.Add(other)
}

// Subtract returns the elementwise difference owned − other.
func (e *Engine) Subtract(other *field.Collection) (*field.Collection, error) {
	return e.coll.Subtract(other)
}

// Multiply returns the elementwise product.
func (e *Engine) Multiply(other *field.Collection) (*field.Collection, error) {
	return e.coll.Multiply(other)
}

// Divide returns the elementwise quotient; a zero divisor component fails the
// whole call with field.ErrDivisionByZero.
func (e *Engine) Divide(other *field.Collection) (*field.Collection, error) {
	return e.coll.Divide(other)
}

// Scale returns a new collection with every value scaled by k.
func (e *Engine) Scale(k float64) *field.Collection { return e.coll.Scale(k) }

// Magnitude returns the owned collection's Euclidean magnitude.
func (e *Engine) Magnitude() float64 { return e.coll.Magnitude() }

// CompareMagnitude orders the owned collection against other by magnitude:
// −1, 0 or +1 within a 1e-9 band.
func (e *Engine) CompareMagnitude(other *field.Collection) (int, error) {
	return e.coll.CompareMagnitude(other)
}

// Intensity reads the intensity of a Spectrum dimension at a wavelength with
// the documented fallback chain: exact entry → weighted-average fusion with
// ranked neighbors → 0.0 default. Only missing names and non-spectrum targets
// are errors; a missing wavelength is not.
// Errors: field.ErrKeyNotFound, ErrNotSpectrum.
func (e *Engine) Intensity(name string, wavelength float64) (float64, error) {
	d, ok := e.coll.Get(name)
	if !ok {
		return 0, field.ErrKeyNotFound
	}
	if d.Value.Kind() != value.KindSpectrum {
		return 0, ErrNotSpectrum
	}

	// Exact hit.
	if i, err := d.Value.Intensity(wavelength); err == nil {
		return i, nil
	}

	// Neighbor fallback: fuse with ranked neighbors and retry. Spectrum
	// fusion carries single-sided wavelengths through, so any neighbor that
	// knows this wavelength contributes an estimate.
	neighbors, err := e.sel.Select(d, e.coll)
	if err != nil {
		return 0, err
	}
	fused, err := fusion.Fuse(d, neighbors, fusion.WeightedAverage)
	if err != nil {
		return 0, err
	}
	if i, err := fused.Intensity(wavelength); err == nil {
		return i, nil
	}

	// Documented default: unknown wavelength with no eligible neighbor.
	return 0, nil
}
