package engine

import (
	"fmt"
	"math"

	"github.com/katalvlaran/stigmer/field"
	"github.com/katalvlaran/stigmer/fusion"
	"github.com/katalvlaran/stigmer/value"
)

// Evolve performs one pheromone-driven fusion pass over every Scalar
// dimension. All neighbor reads come from a snapshot taken before the pass,
// so no dimension observes a partially updated collection; fused values are
// committed at once, then every pheromone level and trail entry decays by
// PheromoneDecayRate.
func (e *Engine) Evolve() error {
	snap := e.coll.Clone()
	proposals := make(map[string]value.Value, snap.Len())

	var passErr error
	snap.Each(func(sd *field.Dimension) bool {
		if sd.Value.Kind() != value.KindScalar {
			return true
		}
		neighbors, err := e.sel.Select(sd, snap)
		if err != nil {
			passErr = err

			return false
		}
		fused, err := fusion.Fuse(sd, neighbors, e.opts.Fusion)
		if err != nil {
			passErr = err

			return false
		}
		proposals[sd.Name] = fused

		return true
	})
	if passErr != nil {
		return passErr
	}

	for name, v := range proposals {
		if d, ok := e.coll.Get(name); ok {
			d.Value = v
		}
	}

	decay := 1 - e.opts.PheromoneDecayRate
	e.coll.Each(func(d *field.Dimension) bool {
		d.Pheromone = clamp01(d.Pheromone * decay)
		for name, lvl := range d.Trail {
			d.Trail[name] = clamp01(lvl * decay)
		}

		return true
	})

	e.log.V(1).Info("evolve pass complete",
		"dimensions", e.coll.Len(), "fused", len(proposals),
		"strategy", e.opts.Fusion.String())

	return nil
}

// PruneStale removes every dimension whose pheromone has decayed to or below
// the adaptive threshold and returns the removed names in insertion order.
// The threshold tightens geometrically with the system-wide stall count:
//
//	threshold = min(1, BasePruningThreshold · PruningThresholdMultiplier^stallCount)
func (e *Engine) PruneStale() []string {
	threshold := e.opts.BasePruningThreshold *
		math.Pow(e.opts.PruningThresholdMultiplier, float64(e.stallCount))
	if threshold > 1 {
		threshold = 1
	}

	var removed []string
	e.coll.Each(func(d *field.Dimension) bool {
		if d.Pheromone <= threshold {
			removed = append(removed, d.Name)
		}

		return true
	})
	for _, name := range removed {
		e.coll.Remove(name)
	}

	if len(removed) > 0 {
		e.log.V(1).Info("pruned stale dimensions",
			"threshold", threshold, "removed", removed)
	}

	return removed
}

// AutoExpand injects fresh dimensions when the engine is stalled system-wide
// (stallCount ≥ StallWindow) and expansion is enabled, up to the configured
// cap. Generated names follow the dim_N sequence, skipping collisions with
// caller-owned names; each new dimension is seeded with a clone of
// AutoExpand.Seed (Scalar 0 when unset) and default pheromone. Returns the
// names added, in insertion order.
func (e *Engine) AutoExpand() []string {
	cfg := e.opts.AutoExpand
	if !cfg.Enabled || e.stallCount < e.opts.StallWindow {
		return nil
	}

	var added []string
	for e.coll.Len() < cfg.Cap {
		name := fmt.Sprintf("dim_%d", e.expandSeq)
		e.expandSeq++
		if e.coll.Has(name) {
			continue
		}
		if _, err := e.coll.AddDimension(name, cfg.Seed.Clone()); err != nil {
			break
		}
		added = append(added, name)
	}

	if len(added) > 0 {
		e.log.V(1).Info("auto-expanded search space",
			"added", added, "size", e.coll.Len(), "cap", cfg.Cap)
	}

	return added
}
