// Package fusion combines a dimension's value with its weighted neighbors'
// values under a selected strategy.
//
// What:
//
//   - Fuse(target, neighbors, strategy) proposes a fused value.Value; the
//     caller decides whether and where to apply it. Fuse has no side effects
//     and never mutates target or neighbors.
//   - Strategies:
//     None            — pass-through, the target's value unchanged.
//     Average         — unweighted mean over target + same-variant neighbors.
//     WeightedAverage — neighbor weights normalized to sum 1, the target
//     granted one additional unit-weight sample before
//     renormalization.
//     Median          — Scalar values only; for every other variant fusion is
//     skipped and the value returned unchanged (documented
//     limitation, not an error).
//
// Neighbors whose variant differs from the target's are skipped by every
// strategy; with no usable neighbor the target's value comes back unchanged.
//
// Errors (sentinel):
//
//   - ErrNilTarget       — nil target dimension.
//   - ErrUnknownStrategy — unrecognized Strategy constant.
//
// Complexity: O(k · payload) over k usable neighbors.
package fusion
