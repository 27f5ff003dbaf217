// Package field implements the named dimension and the insertion-ordered
// collection that every optimization engine operates on.
//
// What:
//
//   - Dimension binds a unique name to a value.Value plus per-dimension
//     optimization state: a pheromone level in [0,1], a non-negative weight,
//     optional spatial coordinates, optional semantic tags, and a trail —
//     the pheromone memory this dimension keeps about named collaborators.
//   - Collection is a name→Dimension container with deterministic insertion
//     order. One engine owns one collection exclusively; dimensions are never
//     shared across collections.
//   - Collection algebra (Add/Subtract/Multiply/Divide/Scale) always produces
//     a NEW collection and never mutates an operand. Binary operations demand
//     identical key sets and fail whole — a missing key or a zero divisor
//     yields no partial result.
//
// Why:
//
//   - Deterministic iteration order is what makes optimization passes
//     reproducible: neighbors are ranked with stable tie-breaks and pruning
//     reports removals in a stable order.
//   - Fail-whole algebra avoids silently corrupt collections: either every
//     key combined, or the operands stand untouched.
//
// Errors (sentinel):
//
//   - ErrEmptyName       — a dimension name must be non-empty.
//   - ErrKeyNotFound     — referenced name absent, or binary-op key sets differ.
//   - ErrNilCollection   — nil operand passed to a binary operation.
//   - ErrTypeMismatch    — alias of value.ErrTypeMismatch (elementwise kind clash).
//   - ErrDivisionByZero  — alias of value.ErrDivisionByZero.
//
// Complexity: lookups O(1); algebra O(n · payload); Magnitude O(n · payload).
package field
