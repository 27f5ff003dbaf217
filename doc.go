// Package stigmer is an in-memory engine for pheromone-guided optimization
// over named, heterogeneously-typed dimensions.
//
// 🚀 What is stigmer?
//
//	A library that lets independent optimization targets coordinate the way
//	ant colonies do — through the field they share, not through each other:
//		• Values: scalar, fractional, spectrum and nested payloads with
//		  uniform distance, blending and arithmetic
//		• Fields: insertion-ordered dimension collections with elementwise
//		  algebra and fail-whole error semantics
//		• Neighbors: multi-criteria ranking (similarity, proximity, tags,
//		  pheromone trails) with stable, deterministic tie-breaks
//		• Fusion: none / average / weighted-average / median value blending
//		• Engine: gradient descent with neighbor collaboration, pheromone
//		  reinforcement and decay, stall-driven pruning and expansion
//
// ✨ Why choose stigmer?
//
//   - Deterministic — same field, same options, same result; ordering never
//     depends on map iteration
//   - Rock-solid guarantees — sentinel errors, no panics on user input,
//     callers always get their operands back unmodified on failure
//   - Self-regulating — pheromone levels live in [0,1] by construction,
//     useless dimensions decay away, stalled searches grow new ones
//
// Everything is organized under five subpackages:
//
//	value/    — the tagged-union Value type: kinds, distance, Combine, arithmetic
//	field/    — Dimension, Coordinates, trails & the ordered Collection algebra
//	neighbor/ — the ranking Selector and its Options
//	fusion/   — the blending strategies used by reads and Evolve passes
//	engine/   — the optimization state machine: Optimize, Evolve, PruneStale, AutoExpand
//
// Quick sketch:
//
//	x ──selects── y, z          each step: gradient + neighbor gradients,
//	│                           improvement rewards the whole clique,
//	pheromone trail             decay forgets what stopped helping.
//
// Dive into the package docs for the exact formulas, error contracts and
// worked examples.
//
//	go get github.com/katalvlaran/stigmer
package stigmer
