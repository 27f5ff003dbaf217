// Package fusion: the strategy dispatcher and blending kernels.
//
// Design:
//   - Scalar-kind inputs take a gonum fast path (stat.Mean / stat.Quantile);
//     every other variant goes through the generic running value.Combine
//     accumulation, which the variant rules of package value make exact.
//   - Fuse is side-effect free: inputs are never mutated, the result is a
//     fresh Value.
package fusion

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/stigmer/field"
	"github.com/katalvlaran/stigmer/neighbor"
	"github.com/katalvlaran/stigmer/value"
)

// Fuse proposes a fused value for target given its weighted neighbors.
// Neighbors of a different variant than the target are skipped; when no
// usable neighbor remains (or the strategy does not apply to the variant),
// the target's value is returned unchanged as a fresh clone.
// Errors: ErrNilTarget, ErrUnknownStrategy.
// Complexity: O(k · payload).
func Fuse(target *field.Dimension, neighbors []neighbor.Weighted, s Strategy) (value.Value, error) {
	if target == nil {
		return value.Value{}, ErrNilTarget
	}

	usable := sameKind(target.Value.Kind(), neighbors)

	switch s {
	case None:
		return target.Value.Clone(), nil

	case Average:
		return average(target.Value, usable)

	case WeightedAverage:
		return weightedAverage(target.Value, usable)

	case Median:
		if target.Value.Kind() != value.KindScalar {
			// Median over spectra/nested groups has no single defensible
			// definition here; skipping keeps the value intact.
			return target.Value.Clone(), nil
		}

		return median(target.Value, usable), nil

	default:
		return value.Value{}, ErrUnknownStrategy
	}
}

// sameKind filters neighbors down to those sharing the target's variant.
func sameKind(k value.Kind, neighbors []neighbor.Weighted) []neighbor.Weighted {
	usable := make([]neighbor.Weighted, 0, len(neighbors))
	for _, n := range neighbors {
		if n.Dim != nil && n.Dim.Value.Kind() == k {
			usable = append(usable, n)
		}
	}

	return usable
}

// average computes the unweighted mean of target + neighbors.
func average(target value.Value, usable []neighbor.Weighted) (value.Value, error) {
	if len(usable) == 0 {
		return target.Clone(), nil
	}

	// Scalar fast path.
	if s, ok := target.AsScalar(); ok {
		xs := make([]float64, 0, len(usable)+1)
		xs = append(xs, s)
		for _, n := range usable {
			ns, _ := n.Dim.Value.AsScalar()
			xs = append(xs, ns)
		}

		return value.NewScalar(stat.Mean(xs, nil)), nil
	}

	// Generic path: running mean via Combine. After k samples the next one
	// enters with weight 1/(k+1), which reproduces the exact unweighted mean
	// under the variant rules of value.Combine.
	acc := target.Clone()
	for i, n := range usable {
		blended, err := acc.Combine(n.Dim.Value, 1/float64(i+2))
		if err != nil {
			return value.Value{}, err
		}
		acc = blended
	}

	return acc, nil
}

// weightedAverage normalizes neighbor weights to sum 1, grants the target one
// unit weight, and renormalizes — the target counts as one extra sample.
func weightedAverage(target value.Value, usable []neighbor.Weighted) (value.Value, error) {
	var wsum float64
	for _, n := range usable {
		if n.Weight > 0 {
			wsum += n.Weight
		}
	}
	if wsum == 0 {
		return target.Clone(), nil
	}

	// Scalar fast path: stat.Mean with explicit weights (target=1, neighbors
	// scaled to jointly weigh 1).
	if s, ok := target.AsScalar(); ok {
		xs := []float64{s}
		ws := []float64{1}
		for _, n := range usable {
			if n.Weight <= 0 {
				continue
			}
			ns, _ := n.Dim.Value.AsScalar()
			xs = append(xs, ns)
			ws = append(ws, n.Weight/wsum)
		}

		return value.NewScalar(stat.Mean(xs, ws)), nil
	}

	// Generic path: running weighted accumulation. Blending the next sample
	// with weight w/(accW+w) keeps acc an exact weighted mean throughout.
	acc := target.Clone()
	accW := 1.0
	for _, n := range usable {
		if n.Weight <= 0 {
			continue
		}
		w := n.Weight / wsum
		blended, err := acc.Combine(n.Dim.Value, w/(accW+w))
		if err != nil {
			return value.Value{}, err
		}
		acc = blended
		accW += w
	}

	return acc, nil
}

// median returns the scalar median over target + neighbors. Empirical
// quantile semantics: odd counts take the middle sample, even counts the
// lower of the two middle samples (deterministic, no interpolation).
func median(target value.Value, usable []neighbor.Weighted) value.Value {
	s, _ := target.AsScalar()
	xs := make([]float64, 0, len(usable)+1)
	xs = append(xs, s)
	for _, n := range usable {
		ns, _ := n.Dim.Value.AsScalar()
		xs = append(xs, ns)
	}
	sort.Float64s(xs)

	return value.NewScalar(stat.Quantile(0.5, stat.Empirical, xs, nil))
}
