// Package value: elementwise arithmetic backing collection algebra.
//
// Design:
//   - One private recursive kernel (zipApply) shared by Add/Sub/Mul/Div to
//     keep the four public entry points free of duplicated traversal logic.
//   - Strict sentinels: ErrTypeMismatch across variants, ErrDivisionByZero
//     for an exactly-zero divisor component. No partial results.
package value

// binOp is an elementwise float kernel applied by zipApply. It may reject a
// pair of operands with a sentinel (Div uses this for zero divisors).
type binOp func(a, b float64) (float64, error)

// Add returns the elementwise sum of two same-kind values.
// Spectrum: wavelengths are merged; a single-sided wavelength is combined
// against a zero on the missing side, so Add carries it through unchanged.
// Nested: aligned children only; extra children on the longer side ignored.
// Complexity: O(total payload size).
func (v Value) Add(other Value) (Value, error) {
	return v.zipApply(other, func(a, b float64) (float64, error) { return a + b, nil }, true)
}

// Sub returns the elementwise difference v − other. Spectrum/Nested rules as
// in Add: the missing side counts as zero, so a wavelength only in the
// receiver keeps its intensity and one only in other lands as its negation.
// Complexity: O(total payload size).
func (v Value) Sub(other Value) (Value, error) {
	return v.zipApply(other, func(a, b float64) (float64, error) { return a - b, nil }, true)
}

// Mul returns the elementwise product of two same-kind values.
// Spectrum: only wavelengths present in both operands appear in the result.
// Complexity: O(total payload size).
func (v Value) Mul(other Value) (Value, error) {
	return v.zipApply(other, func(a, b float64) (float64, error) { return a * b, nil }, false)
}

// Div returns the elementwise quotient v / other. Any divisor component equal
// to exactly zero fails the whole operation with ErrDivisionByZero — no
// partial result is produced.
// Spectrum: only wavelengths present in both operands appear in the result.
// Complexity: O(total payload size).
func (v Value) Div(other Value) (Value, error) {
	return v.zipApply(other, func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, ErrDivisionByZero
		}

		return a / b, nil
	}, false)
}

// zipApply walks both payloads in lockstep and applies op per component.
// carrySingle controls the Spectrum merge policy: true merges the key sets
// and applies op with a zero for the absent side (Add/Sub), false intersects
// the key sets (Mul/Div).
func (v Value) zipApply(other Value, op binOp, carrySingle bool) (Value, error) {
	if v.kind != other.kind {
		return Value{}, ErrTypeMismatch
	}

	switch v.kind {
	case KindScalar:
		s, err := op(v.scalar, other.scalar)
		if err != nil {
			return Value{}, err
		}

		return NewScalar(s), nil

	case KindFractional:
		w, err := op(v.frac.Whole, other.frac.Whole)
		if err != nil {
			return Value{}, err
		}
		f, err := op(v.frac.Frac, other.frac.Frac)
		if err != nil {
			return Value{}, err
		}

		return NewFractional(w, f), nil

	case KindSpectrum:
		out := make(map[float64]float64, len(v.spec))
		for w, i := range v.spec {
			oi, ok := other.spec[w]
			if !ok {
				if !carrySingle {
					continue
				}
				oi = 0 // missing side contributes the identity
			}
			r, err := op(i, oi)
			if err != nil {
				return Value{}, err
			}
			out[w] = r
		}
		if carrySingle {
			for w, oi := range other.spec {
				if _, ok := v.spec[w]; ok {
					continue
				}
				r, err := op(0, oi)
				if err != nil {
					return Value{}, err
				}
				out[w] = r
			}
		}

		return Value{kind: KindSpectrum, spec: out}, nil

	case KindNested:
		n := min(len(v.nested), len(other.nested))
		kids := make([]Value, n)
		for i := 0; i < n; i++ {
			r, err := v.nested[i].zipApply(other.nested[i], op, carrySingle)
			if err != nil {
				return Value{}, err
			}
			kids[i] = r
		}

		return Value{kind: KindNested, nested: kids}, nil

	default:
		return Value{}, ErrTypeMismatch
	}
}
