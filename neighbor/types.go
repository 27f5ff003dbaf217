// SPDX-License-Identifier: MIT
// Package neighbor: options, defaults and sentinel errors.

package neighbor

import (
	"errors"
	"math"

	"github.com/katalvlaran/stigmer/field"
)

// Sentinel errors for neighbor selection.
var (
	// ErrNilTarget indicates a nil target dimension.
	ErrNilTarget = errors.New("neighbor: target dimension is nil")

	// ErrNilCollection indicates a nil candidate collection.
	ErrNilCollection = errors.New("neighbor: collection is nil")

	// ErrBadOptions indicates an out-of-range option value (non-positive
	// MaxNeighbors or ProximityScale, negative criterion weight, NaN anywhere).
	ErrBadOptions = errors.New("neighbor: invalid selector options")
)

// Defaults — single source of truth for DefaultOptions.
const (
	// DefaultMaxNeighbors caps the ranked subset.
	DefaultMaxNeighbors = 5

	// DefaultProximityScale is the e-folding distance of the spatial
	// criterion: at this coordinate distance proximity has decayed to 1/e.
	DefaultProximityScale = 10.0

	// DefaultSimilarityWeight scales the value-similarity criterion.
	DefaultSimilarityWeight = 1.0

	// DefaultProximityWeight scales the spatial-proximity criterion.
	DefaultProximityWeight = 0.5

	// DefaultTagWeight scales the semantic-tag-overlap criterion.
	DefaultTagWeight = 0.5

	// DefaultPheromoneWeight scales the stored-trail criterion.
	DefaultPheromoneWeight = 1.0
)

// Options configures a Selector.
//
// MaxNeighbors     – cap on the returned subset; must be ≥ 1.
// ProximityScale   – spatial decay scale; must be > 0.
// SimilarityWeight – weight of 1/(1+valueDistance); ≥ 0.
// ProximityWeight  – weight of exp(−coordDistance/ProximityScale); ≥ 0.
// TagWeight        – weight of the Jaccard tag overlap; ≥ 0.
// PheromoneWeight  – weight of the target's remembered trail level; ≥ 0.
//
// A criterion whose preconditions a candidate pair does not meet (different
// value variants, missing coordinates, missing tags, no trail) contributes
// zero to the score — degradation, never an error.
type Options struct {
	MaxNeighbors     int
	ProximityScale   float64
	SimilarityWeight float64
	ProximityWeight  float64
	TagWeight        float64
	PheromoneWeight  float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxNeighbors:     DefaultMaxNeighbors,
		ProximityScale:   DefaultProximityScale,
		SimilarityWeight: DefaultSimilarityWeight,
		ProximityWeight:  DefaultProximityWeight,
		TagWeight:        DefaultTagWeight,
		PheromoneWeight:  DefaultPheromoneWeight,
	}
}

// validate rejects nonsensical option combinations with ErrBadOptions.
func (o Options) validate() error {
	if o.MaxNeighbors < 1 {
		return ErrBadOptions
	}
	if !(o.ProximityScale > 0) { // also rejects NaN
		return ErrBadOptions
	}
	for _, w := range []float64{o.SimilarityWeight, o.ProximityWeight, o.TagWeight, o.PheromoneWeight} {
		if math.IsNaN(w) || w < 0 {
			return ErrBadOptions
		}
	}

	return nil
}

// Weighted pairs a selected dimension with its relevance weight. Dim is the
// live dimension from the collection; Select itself never mutates it.
type Weighted struct {
	Dim    *field.Dimension
	Weight float64
}
