// Package value: weighted blending and scaling.
package value

// Combine returns a weighted blend of v toward other: weight 0 reproduces v,
// weight 1 reproduces other. Both operands must share the same variant;
// neither is mutated.
//
// Variant rules:
//   - Scalar / Fractional: linear interpolation per coordinate.
//   - Spectrum: per-wavelength weighted average; a wavelength present in only
//     one operand is carried through unscaled.
//   - Nested: recursive Combine of aligned children; the receiver's extra
//     children are kept (cloned), the other operand's extras are ignored.
//
// Errors: ErrBadWeight when weight is outside [0,1] (or NaN);
// ErrTypeMismatch across variants.
// Complexity: O(total payload size).
func (v Value) Combine(other Value, weight float64) (Value, error) {
	if !(weight >= 0 && weight <= 1) { // negated form also rejects NaN
		return Value{}, ErrBadWeight
	}
	if v.kind != other.kind {
		return Value{}, ErrTypeMismatch
	}

	switch v.kind {
	case KindScalar:
		return NewScalar(lerp(v.scalar, other.scalar, weight)), nil

	case KindFractional:
		return NewFractional(
			lerp(v.frac.Whole, other.frac.Whole, weight),
			lerp(v.frac.Frac, other.frac.Frac, weight),
		), nil

	case KindSpectrum:
		out := make(map[float64]float64, len(v.spec)+len(other.spec))
		for w, i := range v.spec {
			if oi, ok := other.spec[w]; ok {
				out[w] = lerp(i, oi, weight)
			} else {
				out[w] = i // single-sided wavelength carried through unscaled
			}
		}
		for w, oi := range other.spec {
			if _, ok := v.spec[w]; !ok {
				out[w] = oi
			}
		}

		return Value{kind: KindSpectrum, spec: out}, nil

	case KindNested:
		n := min(len(v.nested), len(other.nested))
		kids := make([]Value, n, len(v.nested))
		for i := 0; i < n; i++ {
			blended, err := v.nested[i].Combine(other.nested[i], weight)
			if err != nil {
				return Value{}, err
			}
			kids[i] = blended
		}
		for i := n; i < len(v.nested); i++ {
			kids = append(kids, v.nested[i].Clone()) // receiver's extras survive
		}

		return Value{kind: KindNested, nested: kids}, nil

	default:
		return Value{}, ErrTypeMismatch
	}
}

// Scale returns a copy of v with every numeric component multiplied by k.
// Defined for every variant; the receiver is never mutated.
// Complexity: O(total payload size).
func (v Value) Scale(k float64) Value {
	switch v.kind {
	case KindScalar:
		return NewScalar(v.scalar * k)

	case KindFractional:
		return NewFractional(v.frac.Whole*k, v.frac.Frac*k)

	case KindSpectrum:
		out := make(map[float64]float64, len(v.spec))
		for w, i := range v.spec {
			out[w] = i * k
		}

		return Value{kind: KindSpectrum, spec: out}

	case KindNested:
		kids := make([]Value, len(v.nested))
		for i := range v.nested {
			kids[i] = v.nested[i].Scale(k)
		}

		return Value{kind: KindNested, nested: kids}

	default:
		return v
	}
}

// lerp interpolates linearly from a to b by t in [0,1].
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
