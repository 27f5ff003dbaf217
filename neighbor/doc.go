// Package neighbor ranks the dimensions most relevant to an optimization
// target and weights them for fusion.
//
// What:
//
//   - Selector.Select takes a target dimension plus the full collection and
//     returns an ordered, weighted subset: most relevant first, capped at
//     MaxNeighbors.
//   - The relevance score blends four criteria, each with a configurable
//     weight:
//     value similarity    — 1/(1+distance), same-variant values only;
//     spatial proximity   — exp(−d/ProximityScale), both sides need coords;
//     semantic overlap    — Jaccard fraction of shared tags;
//     pheromone memory    — the target's stored trail for the candidate name.
//
// Why:
//
//   - Collaborative descent works when a dimension pulls information from
//     peers that were useful before (pheromone), look alike (similarity) or
//     sit nearby (space/tags). The blend makes each signal tunable and lets
//     unmet preconditions degrade to zero instead of failing.
//
// Determinism:
//
//   - Candidates are scored in collection insertion order and sorted with a
//     stable sort, so ties resolve by insertion order. Select never mutates
//     the collection.
//
// Errors (sentinel):
//
//   - ErrNilTarget, ErrNilCollection — nil inputs.
//   - ErrBadOptions                  — out-of-range Options (constructor-time).
//
// Complexity: Select is O(n · payload) scoring + O(n log n) ranking.
package neighbor
