// SPDX-License-Identifier: MIT
// Package fusion: strategy enum and sentinel errors.

package fusion

import "errors"

// Sentinel errors for fusion.
var (
	// ErrNilTarget indicates a nil target dimension.
	ErrNilTarget = errors.New("fusion: target dimension is nil")

	// ErrUnknownStrategy indicates an unrecognized Strategy constant.
	ErrUnknownStrategy = errors.New("fusion: unknown strategy")
)

// Strategy selects how a target's value is blended with its neighbors'.
type Strategy int

const (
	// None passes the target's value through unchanged.
	None Strategy = iota

	// Average takes the unweighted mean of target and same-variant neighbors.
	Average

	// WeightedAverage normalizes neighbor weights to sum 1 and grants the
	// target one additional unit-weight sample before renormalization.
	WeightedAverage

	// Median is defined for Scalar values only; other variants pass through
	// unchanged.
	Median
)

// String returns the canonical strategy name, or "unknown" for an
// out-of-range Strategy.
func (s Strategy) String() string {
	switch s {
	case None:
		return "none"
	case Average:
		return "average"
	case WeightedAverage:
		return "weighted-average"
	case Median:
		return "median"
	default:
		return "unknown"
	}
}
