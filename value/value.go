// Package value: constructors, accessors and structural operations.
//
// Design:
//   - Deterministic, side-effect free; no logging, no panics on user input.
//   - Deep-copy on ingest and on export: callers can never alias internals.
package value

// NewScalar returns a Scalar value holding v.
// Complexity: O(1).
func NewScalar(v float64) Value {
	return Value{kind: KindScalar, scalar: v}
}

// NewFractional returns a Fractional value holding the (whole, frac) pair.
// No normalization is applied: the two parts are independent coordinates.
// Complexity: O(1).
func NewFractional(whole, frac float64) Value {
	return Value{kind: KindFractional, frac: Fractional{Whole: whole, Frac: frac}}
}

// NewSpectrum returns a Spectrum value with a deep copy of the given
// wavelength→intensity mapping. A nil map yields an empty spectrum.
// Complexity: O(n) over map size.
func NewSpectrum(intensities map[float64]float64) Value {
	spec := make(map[float64]float64, len(intensities))
	for w, i := range intensities {
		spec[w] = i
	}

	return Value{kind: KindSpectrum, spec: spec}
}

// NewNested returns a Nested value owning deep copies of the given children.
// Complexity: O(total node count).
func NewNested(children ...Value) Value {
	kids := make([]Value, len(children))
	for i := range children {
		kids[i] = children[i].Clone()
	}

	return Value{kind: KindNested, nested: kids}
}

// Kind reports the active variant.
// Complexity: O(1).
func (v Value) Kind() Kind { return v.kind }

// AsScalar extracts the scalar payload; ok is false for other variants.
func (v Value) AsScalar() (float64, bool) {
	if v.kind != KindScalar {
		return 0, false
	}

	return v.scalar, true
}

// AsFractional extracts the fractional payload; ok is false for other variants.
func (v Value) AsFractional() (Fractional, bool) {
	if v.kind != KindFractional {
		return Fractional{}, false
	}

	return v.frac, true
}

// AsSpectrum extracts a copy of the spectrum payload; ok is false for other
// variants. Mutating the returned map does not affect v.
func (v Value) AsSpectrum() (map[float64]float64, bool) {
	if v.kind != KindSpectrum {
		return nil, false
	}
	out := make(map[float64]float64, len(v.spec))
	for w, i := range v.spec {
		out[w] = i
	}

	return out, true
}

// AsNested extracts a deep copy of the children; ok is false for other
// variants.
func (v Value) AsNested() ([]Value, bool) {
	if v.kind != KindNested {
		return nil, false
	}
	out := make([]Value, len(v.nested))
	for i := range v.nested {
		out[i] = v.nested[i].Clone()
	}

	return out, true
}

// Intensity returns the exact intensity stored for the given wavelength.
// Returns ErrTypeMismatch for non-Spectrum values and ErrWavelengthNotFound
// when no exact entry exists. Interpolation and neighbor fallback are the
// caller's policy, not this package's.
// Complexity: O(1).
func (v Value) Intensity(wavelength float64) (float64, error) {
	if v.kind != KindSpectrum {
		return 0, ErrTypeMismatch
	}
	i, ok := v.spec[wavelength]
	if !ok {
		return 0, ErrWavelengthNotFound
	}

	return i, nil
}

// SetIntensity returns a copy of the spectrum with the intensity at the given
// wavelength replaced (or inserted). Returns ErrTypeMismatch for non-Spectrum
// values. The receiver is never mutated.
// Complexity: O(n).
func (v Value) SetIntensity(wavelength, intensity float64) (Value, error) {
	if v.kind != KindSpectrum {
		return Value{}, ErrTypeMismatch
	}
	out := v.Clone()
	out.spec[wavelength] = intensity

	return out, nil
}

// Clone returns a deep copy of v. The copy shares no memory with the receiver.
// Complexity: O(total payload size).
func (v Value) Clone() Value {
	switch v.kind {
	case KindSpectrum:
		return NewSpectrum(v.spec)
	case KindNested:
		return NewNested(v.nested...)
	default:
		// Scalar / Fractional are plain value types; a shallow copy suffices.
		return v
	}
}

// Equal reports exact structural equality: same variant, same payload
// (recursively for Nested, key-for-key for Spectrum). Floating-point
// comparison is exact; use DistanceTo for tolerance-based checks.
// Complexity: O(total payload size).
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindScalar:
		return v.scalar == other.scalar
	case KindFractional:
		return v.frac == other.frac
	case KindSpectrum:
		if len(v.spec) != len(other.spec) {
			return false
		}
		for w, i := range v.spec {
			oi, ok := other.spec[w]
			if !ok || oi != i {
				return false
			}
		}

		return true
	case KindNested:
		if len(v.nested) != len(other.nested) {
			return false
		}
		for i := range v.nested {
			if !v.nested[i].Equal(other.nested[i]) {
				return false
			}
		}

		return true
	default:
		return false
	}
}
