// Package value: distance and magnitude kernels.
//
// Design:
//   - Distance is defined only between same-kind values (strict sentinel on
//     mismatch, no coercion).
//   - Euclidean everywhere: per-coordinate for Scalar/Fractional, over matched
//     wavelengths for Spectrum (unmatched entries ignored), recursive
//     elementwise over the aligned child prefix for Nested.
package value

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DistanceTo returns the Euclidean distance between two same-kind values.
// Returns ErrTypeMismatch when the variants differ.
//
// Spectrum: only wavelengths present in both operands contribute; two spectra
// with disjoint key sets have distance 0.
// Nested: children are compared pairwise over the aligned prefix; extra
// children on the longer side are ignored.
//
// Complexity: O(total payload size).
func (v Value) DistanceTo(other Value) (float64, error) {
	if v.kind != other.kind {
		return 0, ErrTypeMismatch
	}
	switch v.kind {
	case KindScalar:
		return math.Abs(v.scalar - other.scalar), nil

	case KindFractional:
		return math.Hypot(v.frac.Whole-other.frac.Whole, v.frac.Frac-other.frac.Frac), nil

	case KindSpectrum:
		diffs := make([]float64, 0, len(v.spec))
		for w, i := range v.spec {
			if oi, ok := other.spec[w]; ok {
				diffs = append(diffs, i-oi)
			}
		}
		if len(diffs) == 0 {
			return 0, nil
		}

		return floats.Norm(diffs, 2), nil

	case KindNested:
		n := min(len(v.nested), len(other.nested))
		dists := make([]float64, 0, n)
		for i := 0; i < n; i++ {
			d, err := v.nested[i].DistanceTo(other.nested[i])
			if err != nil {
				return 0, err
			}
			dists = append(dists, d)
		}
		if len(dists) == 0 {
			return 0, nil
		}

		return floats.Norm(dists, 2), nil

	default:
		return 0, ErrTypeMismatch
	}
}

// Magnitude returns the Euclidean magnitude of the payload: |v| for Scalar,
// the (whole, frac) norm for Fractional, the intensity-vector norm for
// Spectrum and the recursive norm over children for Nested.
// Complexity: O(total payload size).
func (v Value) Magnitude() float64 {
	switch v.kind {
	case KindScalar:
		return math.Abs(v.scalar)

	case KindFractional:
		return math.Hypot(v.frac.Whole, v.frac.Frac)

	case KindSpectrum:
		if len(v.spec) == 0 {
			return 0
		}
		xs := make([]float64, 0, len(v.spec))
		for _, i := range v.spec {
			xs = append(xs, i)
		}

		return floats.Norm(xs, 2)

	case KindNested:
		if len(v.nested) == 0 {
			return 0
		}
		xs := make([]float64, len(v.nested))
		for i := range v.nested {
			xs[i] = v.nested[i].Magnitude()
		}

		return floats.Norm(xs, 2)

	default:
		return 0
	}
}
