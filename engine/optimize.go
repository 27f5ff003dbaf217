// Package engine: the per-target descent loop.
//
// Design:
//   - One shared loop (descend) serves scalar dimensions and single
//     wavelengths of spectrum dimensions; only the read/write of the target
//     coordinate differs.
//   - Neighbor state is selected once, before the first step: a pass never
//     reads partially updated neighbors.
//   - Hard termination guarantees: MaxSteps caps the loop, the time budget
//     is checked every iteration, and both return the best value found so
//     far rather than failing.
package engine

import (
	"math"
	"time"

	"github.com/katalvlaran/stigmer/field"
	"github.com/katalvlaran/stigmer/neighbor"
	"github.com/katalvlaran/stigmer/value"
)

// Optimize runs the descent state machine on a Scalar dimension and writes
// the best value found back into the collection.
// Errors: ErrNilCost, field.ErrKeyNotFound, ErrNotScalar.
func (e *Engine) Optimize(targetKey string, cost CostFunc) (Result, error) {
	if cost == nil {
		return Result{}, ErrNilCost
	}
	d, ok := e.coll.Get(targetKey)
	if !ok {
		return Result{}, field.ErrKeyNotFound
	}
	x0, ok := d.Value.AsScalar()
	if !ok {
		return Result{}, ErrNotScalar
	}

	res := e.descend(d, x0, cost)
	res.Name = targetKey
	d.Value = value.NewScalar(res.Value)
	e.noteRunOutcome(res)

	return res, nil
}

// OptimizeSpectrum runs the same state machine on one wavelength coordinate
// of a Spectrum dimension. A wavelength with no stored entry starts from the
// 0.0 default and is created by the write-back.
// Errors: ErrNilCost, field.ErrKeyNotFound, ErrNotSpectrum.
func (e *Engine) OptimizeSpectrum(targetKey string, wavelength float64, cost CostFunc) (Result, error) {
	if cost == nil {
		return Result{}, ErrNilCost
	}
	d, ok := e.coll.Get(targetKey)
	if !ok {
		return Result{}, field.ErrKeyNotFound
	}
	if d.Value.Kind() != value.KindSpectrum {
		return Result{}, ErrNotSpectrum
	}

	x0, err := d.Value.Intensity(wavelength)
	if err != nil {
		x0 = 0 // unknown wavelength: start from the documented default
	}

	res := e.descend(d, x0, cost)
	res.Name = targetKey
	res.Wavelength = wavelength
	updated, err := d.Value.SetIntensity(wavelength, res.Value)
	if err != nil {
		return Result{}, err
	}
	d.Value = updated
	e.noteRunOutcome(res)

	return res, nil
}

// descend iterates Idle → Evaluating → (Improved|Stalled) until convergence
// or budget exhaustion, returning the best coordinate found.
func (e *Engine) descend(d *field.Dimension, x0 float64, cost CostFunc) Result {
	// Snapshot the neighbor ranking before the first step.
	neighbors, err := e.sel.Select(d, e.coll)
	if err != nil {
		neighbors = nil
	}

	var deadline time.Time
	if e.opts.TimeLimit > 0 {
		deadline = time.Now().Add(e.opts.TimeLimit)
	}

	initialCost := round1e9(cost(x0))
	best, bestCost := x0, initialCost
	if math.IsNaN(bestCost) {
		bestCost = math.Inf(1)
	}

	var (
		x           = x0
		prevCost    = bestCost
		state       = Idle
		term        = TerminatedMaxSteps
		lowProgress = 0
		steps       = 0
		improved    = false
		trace       []float64
	)

	for step := 1; step <= e.opts.MaxSteps; step++ {
		// Budget check every iteration: return the best found so far.
		if !deadline.IsZero() && time.Now().After(deadline) {
			term = TerminatedTimeLimit

			break
		}
		steps = step
		state = Evaluating

		improvement := math.NaN()
		g, ok := e.gradient(cost, x)
		if ok && e.opts.CollaborationWeight > 0 && len(neighbors) > 0 {
			if ng, nok := e.neighborGradient(cost, neighbors); nok {
				cw := e.opts.CollaborationWeight
				g = (1-cw)*g + cw*ng
			}
		}

		if !ok {
			// Gradient evaluation failed: fall back to the last
			// known-improved coordinate and count a stall.
			x = best
			state = Stalled
		} else {
			next := e.clampToBounds(x - e.opts.LearningRate*g)
			nextCost := round1e9(cost(next))
			if math.IsNaN(nextCost) || math.IsInf(nextCost, 0) {
				x = best
				state = Stalled
			} else {
				improvement = prevCost - nextCost
				if len(trace) < maxTraceLen {
					trace = append(trace, improvement)
				}
				x = next
				if nextCost < prevCost {
					state = Improved
					improved = true
					e.boostPheromones(d, neighbors, improvement)
					if nextCost < bestCost {
						best, bestCost = next, nextCost
					}
				} else {
					state = Stalled
				}
				prevCost = nextCost
			}
		}

		e.log.V(2).Info("optimization step",
			"target", d.Name, "step", step, "state", state.String(),
			"x", x, "cost", prevCost)

		if state == Improved && improvement >= e.opts.ProgressThreshold {
			lowProgress = 0
		} else {
			lowProgress++
		}
		if lowProgress >= e.opts.StallWindow {
			state = Converged
			term = TerminatedConverged

			break
		}
	}

	finalCost := bestCost
	if !improved {
		// No valid improvement ever observed: report the bracket honestly.
		finalCost = initialCost
	}

	e.log.V(1).Info("optimization run finished",
		"target", d.Name, "steps", steps, "termination", term.String(),
		"initialCost", initialCost, "finalCost", finalCost)

	return Result{
		Value:        best,
		InitialCost:  initialCost,
		FinalCost:    finalCost,
		Steps:        steps,
		Improvements: trace,
		Termination:  term,
	}
}

// maxTraceLen caps the Result improvement trace.
const maxTraceLen = 64

// round1e9 stabilizes cost comparisons against floating-point noise far below
// any meaningful improvement.
func round1e9(x float64) float64 {
	return math.Round(x*1e9) / 1e9
}

// gradient computes the finite-difference gradient at x; ok is false when the
// cost function returned NaN/±Inf around x.
func (e *Engine) gradient(cost CostFunc, x float64) (float64, bool) {
	h := e.opts.GradientStep
	var g float64
	switch e.opts.GradientMode {
	case ForwardDifference:
		g = (cost(x+h) - cost(x)) / h
	default:
		g = (cost(x+h) - cost(x-h)) / (2 * h)
	}
	if math.IsNaN(g) || math.IsInf(g, 0) {
		return 0, false
	}

	return g, true
}

// neighborGradient averages the cost gradient evaluated at each scalar
// neighbor's coordinate; ok is false when no neighbor yielded a finite
// gradient.
func (e *Engine) neighborGradient(cost CostFunc, neighbors []neighbor.Weighted) (float64, bool) {
	var (
		sum float64
		n   int
	)
	for _, nb := range neighbors {
		nx, isScalar := nb.Dim.Value.AsScalar()
		if !isScalar {
			continue
		}
		if g, ok := e.gradient(cost, nx); ok {
			sum += g
			n++
		}
	}
	if n == 0 {
		return 0, false
	}

	return sum / float64(n), true
}

// clampToBounds pins x into ValueBounds when configured.
func (e *Engine) clampToBounds(x float64) float64 {
	b := e.opts.ValueBounds
	if b == nil {
		return x
	}
	if x < b.Min {
		return b.Min
	}
	if x > b.Max {
		return b.Max
	}

	return x
}

// boostPheromones rewards every dimension touched this pass — the target and
// its selected neighbors — with decay-then-boost, clamped to [0,1]. The
// target's trail toward each neighbor is reinforced by the same delta so
// useful collaborations rank higher next time.
func (e *Engine) boostPheromones(d *field.Dimension, neighbors []neighbor.Weighted, improvement float64) {
	delta := e.opts.ExplorationBoost * improvement * e.opts.RewardMultiplier
	decay := 1 - e.opts.PheromoneDecayRate

	d.Pheromone = clamp01(d.Pheromone*decay + delta)
	for _, nb := range neighbors {
		nb.Dim.Pheromone = clamp01(nb.Dim.Pheromone*decay + delta)
		d.Reinforce(nb.Dim.Name, delta)
	}
}

// noteRunOutcome updates the system-wide stall counter that drives pruning
// and expansion.
func (e *Engine) noteRunOutcome(res Result) {
	if res.FinalCost < res.InitialCost {
		e.stallCount = 0

		return
	}
	e.stallCount++
}

// clamp01 clamps x into [0,1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}

	return x
}
