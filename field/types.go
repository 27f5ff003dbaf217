// SPDX-License-Identifier: MIT
// Package field: core types, defaults and sentinel errors.

package field

import (
	"errors"
	"math"

	"github.com/katalvlaran/stigmer/value"
)

// Sentinel errors for field operations.
var (
	// ErrEmptyName indicates an empty dimension name was supplied.
	ErrEmptyName = errors.New("field: dimension name must be non-empty")

	// ErrKeyNotFound indicates a referenced dimension name is absent. For
	// binary collection operations this also covers key-set mismatch: both
	// operands must carry exactly the same names.
	ErrKeyNotFound = errors.New("field: dimension name not found")

	// ErrNilCollection indicates a nil *Collection operand.
	ErrNilCollection = errors.New("field: collection is nil")
)

// Aliases for value-level sentinels surfaced by elementwise algebra, kept so
// callers can match either package with errors.Is.
var (
	// ErrTypeMismatch is returned when elementwise algebra meets two
	// dimensions of different value variants.
	ErrTypeMismatch = value.ErrTypeMismatch

	// ErrDivisionByZero is returned by Divide when any divisor component is
	// exactly zero.
	ErrDivisionByZero = value.ErrDivisionByZero
)

// Defaults for freshly created dimensions.
const (
	// DefaultPheromone is the initial pheromone level of a new dimension:
	// neutral, halfway between prune-ready and fully reinforced.
	DefaultPheromone = 0.5

	// DefaultWeight is the initial dimension weight.
	DefaultWeight = 1.0
)

// magnitudeTol is the tolerance band for CompareMagnitude: norms closer than
// this are reported equal to absorb cross-platform FP drift.
const magnitudeTol = 1e-9

// Coordinates are optional spatial attributes of a dimension, used by
// proximity-aware neighbor ranking.
type Coordinates struct {
	X, Y, Z float64
}

// DistanceTo returns the Euclidean distance between two coordinate triples.
// Complexity: O(1).
func (c Coordinates) DistanceTo(o Coordinates) float64 {
	dx, dy, dz := c.X-o.X, c.Y-o.Y, c.Z-o.Z

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Dimension is a named, typed value participating in optimization, plus the
// per-dimension state the engine evolves between passes.
//
// Pheromone stays in [0,1]; Weight is non-negative. Coords and Tags are
// optional: a nil Coords or empty Tags simply removes the corresponding
// criterion from neighbor ranking (documented no-op degradation, never an
// error). Trail maps collaborator names to remembered pheromone levels.
type Dimension struct {
	Name      string
	Value     value.Value
	Pheromone float64
	Weight    float64
	Coords    *Coordinates
	Tags      map[string]struct{}
	Trail     map[string]float64
}

// NewDimension returns a Dimension with neutral optimization state and a deep
// copy of v.
// Complexity: O(payload).
func NewDimension(name string, v value.Value) *Dimension {
	return &Dimension{
		Name:      name,
		Value:     v.Clone(),
		Pheromone: DefaultPheromone,
		Weight:    DefaultWeight,
		Trail:     make(map[string]float64),
	}
}

// Clone returns a deep copy of the dimension: value payload, coordinates,
// tags and trail are all duplicated.
// Complexity: O(payload + |tags| + |trail|).
func (d *Dimension) Clone() *Dimension {
	out := &Dimension{
		Name:      d.Name,
		Value:     d.Value.Clone(),
		Pheromone: d.Pheromone,
		Weight:    d.Weight,
	}
	if d.Coords != nil {
		c := *d.Coords
		out.Coords = &c
	}
	if d.Tags != nil {
		out.Tags = make(map[string]struct{}, len(d.Tags))
		for tag := range d.Tags {
			out.Tags[tag] = struct{}{}
		}
	}
	if d.Trail != nil {
		out.Trail = make(map[string]float64, len(d.Trail))
		for name, lvl := range d.Trail {
			out.Trail[name] = lvl
		}
	}

	return out
}

// HasCoords reports whether spatial coordinates are attached.
func (d *Dimension) HasCoords() bool { return d.Coords != nil }

// HasTags reports whether at least one semantic tag is attached.
func (d *Dimension) HasTags() bool { return len(d.Tags) > 0 }

// Tag attaches a semantic tag, allocating the tag set on first use.
func (d *Dimension) Tag(tags ...string) {
	if d.Tags == nil {
		d.Tags = make(map[string]struct{}, len(tags))
	}
	for _, tag := range tags {
		d.Tags[tag] = struct{}{}
	}
}

// TagOverlap returns the Jaccard overlap |∩| / |∪| of the two tag sets, or 0
// when either side carries no tags.
// Complexity: O(|tags|).
func (d *Dimension) TagOverlap(o *Dimension) float64 {
	if !d.HasTags() || !o.HasTags() {
		return 0
	}
	inter := 0
	for tag := range d.Tags {
		if _, ok := o.Tags[tag]; ok {
			inter++
		}
	}
	union := len(d.Tags) + len(o.Tags) - inter

	return float64(inter) / float64(union)
}

// TrailLevel returns the remembered pheromone level for a collaborator name,
// or 0 when no trail exists yet.
func (d *Dimension) TrailLevel(name string) float64 {
	if d.Trail == nil {
		return 0
	}

	return d.Trail[name]
}

// Reinforce raises the trail level for a collaborator name by delta, clamped
// to [0,1].
func (d *Dimension) Reinforce(name string, delta float64) {
	if d.Trail == nil {
		d.Trail = make(map[string]float64)
	}
	d.Trail[name] = clamp01(d.Trail[name] + delta)
}

// clamp01 clamps x into [0,1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}

	return x
}
