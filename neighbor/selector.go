// Package neighbor: the ranking selector.
//
// Design:
//   - Score candidates in insertion order, rank with a stable sort: ties
//     resolve deterministically by insertion order.
//   - Read-only over the collection; the returned Weighted entries point at
//     live dimensions so the caller decides what to mutate.
package neighbor

import (
	"math"
	"sort"

	"github.com/katalvlaran/stigmer/field"
)

// Selector ranks collection members by relevance to a target dimension.
type Selector struct {
	opts Options
}

// NewSelector validates opts and returns a ready Selector.
// Errors: ErrBadOptions.
func NewSelector(opts Options) (*Selector, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Selector{opts: opts}, nil
}

// Select returns the weighted neighbors of target within c, most relevant
// first, capped at MaxNeighbors. The target itself and zero-score candidates
// are excluded. The collection is never mutated.
// Errors: ErrNilTarget, ErrNilCollection.
// Complexity: O(n · payload) scoring + O(n log n) ranking.
func (s *Selector) Select(target *field.Dimension, c *field.Collection) ([]Weighted, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	if c == nil {
		return nil, ErrNilCollection
	}

	ranked := make([]Weighted, 0, c.Len())
	c.Each(func(cand *field.Dimension) bool {
		if cand.Name == target.Name {
			return true
		}
		if score := s.score(target, cand); score > 0 {
			ranked = append(ranked, Weighted{Dim: cand, Weight: score})
		}

		return true
	})

	// Stable sort keeps insertion order among equal scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Weight > ranked[j].Weight
	})

	if len(ranked) > s.opts.MaxNeighbors {
		ranked = ranked[:s.opts.MaxNeighbors]
	}

	return ranked, nil
}

// score blends the four relevance criteria. Criteria with unmet
// preconditions contribute zero.
func (s *Selector) score(target, cand *field.Dimension) float64 {
	var total float64

	// Value similarity: same-variant values only; cross-variant pairs simply
	// contribute nothing.
	if d, err := target.Value.DistanceTo(cand.Value); err == nil {
		total += s.opts.SimilarityWeight / (1 + d)
	}

	// Spatial proximity: both sides need coordinates.
	if target.HasCoords() && cand.HasCoords() {
		d := target.Coords.DistanceTo(*cand.Coords)
		total += s.opts.ProximityWeight * math.Exp(-d/s.opts.ProximityScale)
	}

	// Semantic overlap: both sides need tags (TagOverlap returns 0 otherwise).
	total += s.opts.TagWeight * target.TagOverlap(cand)

	// Pheromone memory: the target's remembered trail for this candidate.
	total += s.opts.PheromoneWeight * target.TrailLevel(cand.Name)

	return total
}
