// Package engine owns a dimension collection and drives the collaborative
// optimization loop over it: neighbor-informed gradient descent, pheromone
// bookkeeping, evolution passes, pruning and auto-expansion.
//
// What:
//
//   - Engine wraps one field.Collection (exclusive ownership), a
//     neighbor.Selector and a fusion.Strategy.
//   - Optimize(targetKey, cost) descends a scalar dimension toward a local
//     minimum of the caller's cost function; OptimizeSpectrum does the same
//     for a single wavelength of a Spectrum dimension. The per-target state
//     machine is
//     Idle → Evaluating → (Improved | Stalled) → {Evaluating | Converged}.
//   - Evolve() runs one pheromone-driven fusion pass over all Scalar
//     dimensions: neighbor state is snapshotted first, fused values are
//     committed after the pass, then every pheromone decays.
//   - PruneStale() removes dimensions whose pheromone fell to or below
//     BasePruningThreshold · PruningThresholdMultiplier^stallCount — the
//     threshold tightens the longer the system stalls.
//   - AutoExpand() adds default-valued dimensions when the system-wide stall
//     trigger holds, up to a cap. The toggle is per-engine configuration,
//     never global state.
//
// Gradient step:
//
//	g   = finiteDifference(cost, x)                    central or forward
//	g   = (1−CollaborationWeight)·g + CollaborationWeight·avg(neighbor g)
//	x'  = clamp(x − LearningRate·g, ValueBounds)
//
// Pheromone update on an improved step, applied to every dimension touched
// this pass (target and selected neighbors):
//
//	p' = clamp01(p·(1−PheromoneDecayRate) + ExplorationBoost·Δcost·RewardMultiplier)
//
// Termination: improvement below ProgressThreshold for StallWindow
// consecutive steps, MaxSteps reached (hard cap), or TimeLimit exceeded —
// the budget is checked every iteration and the best value found so far is
// returned, never an error.
//
// Cost functions are pure callbacks; a NaN or ±Inf cost fails only the
// current step and the engine falls back to the last known-improved value.
//
// Concurrency: a pass is single-threaded and synchronous; dimensions are
// processed in collection insertion order with no concurrent mutation.
//
// Logging is opt-in through Options.Logger (go-logr); the default discards.
//
// Errors (sentinel):
//
//   - ErrInvalidConfiguration — out-of-range Options.
//   - ErrNilCost              — nil cost callback.
//   - ErrNotScalar            — Optimize on a non-Scalar dimension.
//   - ErrNotSpectrum          — OptimizeSpectrum/Intensity on a non-Spectrum one.
//   - field.ErrKeyNotFound    — unknown target name.
package engine
