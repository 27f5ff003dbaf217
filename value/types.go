// SPDX-License-Identifier: MIT
// Package value: core types and sentinel errors for the tagged union.

package value

import "errors"

// Sentinel errors for value operations. Algorithms must return these
// sentinels and tests must check them via errors.Is; no panics on user input.
var (
	// ErrTypeMismatch indicates an operation applied to incompatible variants
	// (e.g. Scalar vs Spectrum). Cross-variant operations never coerce.
	ErrTypeMismatch = errors.New("value: variant mismatch")

	// ErrDivisionByZero indicates a divisor component equal to exactly zero
	// was encountered during Div.
	ErrDivisionByZero = errors.New("value: division by zero")

	// ErrBadWeight indicates a Combine weight outside the [0,1] interval.
	ErrBadWeight = errors.New("value: combine weight must be in [0,1]")

	// ErrWavelengthNotFound indicates an exact Spectrum lookup found no entry
	// for the requested wavelength.
	ErrWavelengthNotFound = errors.New("value: wavelength not found in spectrum")
)

// Kind identifies the active variant of a Value.
type Kind int

const (
	// KindScalar holds a single float64.
	KindScalar Kind = iota

	// KindFractional holds a whole/fractional pair of float64s.
	KindFractional

	// KindSpectrum holds a wavelength→intensity mapping with unique,
	// unordered keys.
	KindSpectrum

	// KindNested holds an ordered, finite-depth sequence of child Values.
	KindNested
)

// String returns the canonical variant name, or "unknown" for an
// out-of-range Kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindFractional:
		return "fractional"
	case KindSpectrum:
		return "spectrum"
	case KindNested:
		return "nested"
	default:
		return "unknown"
	}
}

// Fractional is the payload of a KindFractional value: a number split into
// its whole and fractional parts, each kept as an independent coordinate.
type Fractional struct {
	Whole float64
	Frac  float64
}

// Value is a closed tagged union: exactly one variant is active, selected by
// kind. The zero Value is a valid Scalar(0).
//
// Payload fields are unexported; constructors and accessors deep-copy map and
// slice payloads so a Value never shares memory with its caller.
type Value struct {
	kind   Kind
	scalar float64
	frac   Fractional
	spec   map[float64]float64
	nested []Value
}
