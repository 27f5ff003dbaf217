// Package value implements the typed payload carried by every optimization
// dimension: a closed tagged union over four variants with variant-specific
// distance, blending and scaling operations.
//
// What:
//
//   - Value is a sum type over Scalar, Fractional, Spectrum and Nested payloads.
//     Exactly one variant is active at a time; the active variant is reported
//     by Kind() and extracted through the AsX accessors.
//   - DistanceTo measures how far two same-kind values lie from each other
//     (Euclidean per variant); cross-kind distance is a contract violation.
//   - Combine blends two same-kind values with a weight in [0,1] — the
//     primitive behind every fusion strategy.
//   - Arithmetic (Add/Sub/Mul/Div) and Scale support collection algebra.
//
// Why:
//
//   - Optimization engines need heterogeneous state: plain scalars, split
//     whole/fractional pairs, spectral distributions keyed by wavelength, and
//     recursively nested groups — all behind one uniform operation surface.
//   - A closed union with explicit per-variant handlers keeps exhaustiveness
//     checkable and forbids silent type coercion.
//
// Ownership:
//
//   - Constructors deep-copy map and slice payloads; accessors return copies.
//     A Value never aliases caller memory and a parent owns its Nested
//     children exclusively.
//
// Errors (sentinel):
//
//   - ErrTypeMismatch       — operation applied across different variants.
//   - ErrDivisionByZero     — a divisor component is exactly zero in Div.
//   - ErrBadWeight          — Combine weight outside [0,1].
//   - ErrWavelengthNotFound — exact Spectrum lookup missed (callers layer
//     their own fallback policy on top).
//
// Complexity: all operations are linear in payload size; Nested operations
// are linear in the total node count of the aligned subtrees.
package value
