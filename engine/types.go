// SPDX-License-Identifier: MIT
// Package engine: options, states, results and sentinel errors.

package engine

import (
	"errors"
	"math"
	"time"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/stigmer/fusion"
	"github.com/katalvlaran/stigmer/neighbor"
	"github.com/katalvlaran/stigmer/value"
)

// Sentinel errors for engine operations. Target-name misses surface
// field.ErrKeyNotFound directly.
var (
	// ErrInvalidConfiguration indicates an out-of-range option value.
	ErrInvalidConfiguration = errors.New("engine: invalid configuration")

	// ErrNilCost indicates a nil cost callback.
	ErrNilCost = errors.New("engine: cost function is nil")

	// ErrNotScalar indicates Optimize was pointed at a non-Scalar dimension.
	ErrNotScalar = errors.New("engine: target dimension is not scalar")

	// ErrNotSpectrum indicates a spectrum operation was pointed at a
	// non-Spectrum dimension.
	ErrNotSpectrum = errors.New("engine: target dimension is not a spectrum")
)

// CostFunc evaluates the objective at a candidate scalar. Lower is better.
// Implementations must be pure: no engine state may be mutated from inside a
// cost callback. Closures over external read-only state are fine.
type CostFunc func(x float64) float64

// GradientMode selects the finite-difference scheme.
type GradientMode int

const (
	// CentralDifference uses (f(x+h) − f(x−h)) / 2h — two evaluations,
	// second-order accurate.
	CentralDifference GradientMode = iota

	// ForwardDifference uses (f(x+h) − f(x)) / h — one extra evaluation,
	// first-order accurate.
	ForwardDifference
)

// State names a position in the per-target optimization state machine:
// Idle → Evaluating → (Improved | Stalled) → {Evaluating | Converged}.
type State int

const (
	// Idle — no step taken yet.
	Idle State = iota

	// Evaluating — cost and gradient are being computed for the current step.
	Evaluating

	// Improved — cost strictly decreased this step; pheromones were boosted.
	Improved

	// Stalled — cost did not decrease; counts toward the stall budget.
	Stalled

	// Converged — terminal: progress stayed below the threshold long enough.
	Converged
)

// String returns the canonical state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Evaluating:
		return "evaluating"
	case Improved:
		return "improved"
	case Stalled:
		return "stalled"
	case Converged:
		return "converged"
	default:
		return "unknown"
	}
}

// Termination tells why an optimization run stopped.
type Termination int

const (
	// TerminatedConverged — improvement stayed below ProgressThreshold for
	// StallWindow consecutive steps.
	TerminatedConverged Termination = iota

	// TerminatedMaxSteps — the hard step cap was reached.
	TerminatedMaxSteps

	// TerminatedTimeLimit — the time budget ran out; the best value found so
	// far was returned.
	TerminatedTimeLimit
)

// String returns the canonical termination name.
func (t Termination) String() string {
	switch t {
	case TerminatedConverged:
		return "converged"
	case TerminatedMaxSteps:
		return "max-steps"
	case TerminatedTimeLimit:
		return "time-limit"
	default:
		return "unknown"
	}
}

// Bounds clamps optimized values into [Min, Max].
type Bounds struct {
	Min, Max float64
}

// AutoExpandOptions configures stall-triggered dimension growth. The toggle
// is explicit per-engine configuration (no global mutable flag).
type AutoExpandOptions struct {
	// Enabled arms the expansion trigger.
	Enabled bool

	// Cap is the collection size expansion will not grow beyond. Must be ≥ 1
	// when Enabled.
	Cap int

	// Seed is the initial value for expanded dimensions. The zero Value is a
	// valid Scalar(0).
	Seed value.Value
}

// Defaults — single source of truth for DefaultOptions.
const (
	// DefaultLearningRate scales each descent step.
	DefaultLearningRate = 0.1

	// DefaultGradientStep is the finite-difference step h.
	DefaultGradientStep = 1e-6

	// DefaultCollaborationWeight blends the target's own gradient with the
	// neighbor-averaged gradient.
	DefaultCollaborationWeight = 0.25

	// DefaultExplorationBoost scales the pheromone reward for an improvement.
	DefaultExplorationBoost = 0.1

	// DefaultRewardMultiplier further scales the improvement-proportional
	// reward term.
	DefaultRewardMultiplier = 1.0

	// DefaultPheromoneDecayRate is the per-update (and per-Evolve-pass)
	// multiplicative pheromone decay.
	DefaultPheromoneDecayRate = 0.1

	// DefaultBasePruningThreshold is the stall-free pruning threshold.
	DefaultBasePruningThreshold = 0.05

	// DefaultPruningThresholdMultiplier tightens the pruning threshold per
	// system-wide stall: threshold = base · multiplier^stallCount.
	DefaultPruningThresholdMultiplier = 1.5

	// DefaultProgressThreshold is the minimum per-step improvement that does
	// not count toward the stall window.
	DefaultProgressThreshold = 1e-9

	// DefaultStallWindow is the number of consecutive low-progress steps that
	// ends a run as converged.
	DefaultStallWindow = 5

	// DefaultMaxSteps is the hard per-run step cap guaranteeing termination.
	DefaultMaxSteps = 100

	// DefaultAutoExpandCap bounds stall-triggered growth.
	DefaultAutoExpandCap = 32
)

// Options configures an Engine. See the package documentation for the roles
// each knob plays in the descent loop and the pheromone update.
//
// Validation ranges (violations yield ErrInvalidConfiguration):
//
//	LearningRate > 0            GradientStep > 0
//	CollaborationWeight ∈ [0,1] ExplorationBoost ≥ 0
//	RewardMultiplier ≥ 0        PheromoneDecayRate ∈ [0,1]
//	BasePruningThreshold ∈ [0,1]
//	PruningThresholdMultiplier ≥ 1
//	ProgressThreshold ≥ 0       StallWindow ≥ 1
//	MaxSteps ≥ 1                TimeLimit ≥ 0
//	ValueBounds.Min ≤ ValueBounds.Max (when set)
//	AutoExpand.Cap ≥ 1 (when enabled)
type Options struct {
	LearningRate               float64
	GradientStep               float64
	GradientMode               GradientMode
	CollaborationWeight        float64
	ExplorationBoost           float64
	RewardMultiplier           float64
	PheromoneDecayRate         float64
	BasePruningThreshold       float64
	PruningThresholdMultiplier float64
	ProgressThreshold          float64
	StallWindow                int
	MaxSteps                   int

	// TimeLimit bounds a single Optimize run; 0 means no time budget. The
	// budget is checked every iteration and exhaustion returns the best value
	// found so far.
	TimeLimit time.Duration

	// ValueBounds, when non-nil, clamps every descent step.
	ValueBounds *Bounds

	// Fusion selects the Evolve blending strategy.
	Fusion fusion.Strategy

	// Neighbor configures the ranking selector (MaxNeighbors lives here).
	Neighbor neighbor.Options

	// AutoExpand configures stall-triggered growth.
	AutoExpand AutoExpandOptions

	// Logger receives opt-in structured progress logs; the zero value and
	// logr.Discard() both silence it.
	Logger logr.Logger
}

// DefaultOptions returns the documented defaults: weighted-average fusion,
// central differences, discard logging, expansion disabled.
func DefaultOptions() Options {
	return Options{
		LearningRate:               DefaultLearningRate,
		GradientStep:               DefaultGradientStep,
		GradientMode:               CentralDifference,
		CollaborationWeight:        DefaultCollaborationWeight,
		ExplorationBoost:           DefaultExplorationBoost,
		RewardMultiplier:           DefaultRewardMultiplier,
		PheromoneDecayRate:         DefaultPheromoneDecayRate,
		BasePruningThreshold:       DefaultBasePruningThreshold,
		PruningThresholdMultiplier: DefaultPruningThresholdMultiplier,
		ProgressThreshold:          DefaultProgressThreshold,
		StallWindow:                DefaultStallWindow,
		MaxSteps:                   DefaultMaxSteps,
		Fusion:                     fusion.WeightedAverage,
		Neighbor:                   neighbor.DefaultOptions(),
		AutoExpand:                 AutoExpandOptions{Cap: DefaultAutoExpandCap},
		Logger:                     logr.Discard(),
	}
}

// Validate rejects out-of-range options with ErrInvalidConfiguration.
// Neighbor options are validated separately by neighbor.NewSelector.
func (o Options) Validate() error {
	switch {
	case !(o.LearningRate > 0), // negated forms also reject NaN
		!(o.GradientStep > 0),
		!(o.CollaborationWeight >= 0 && o.CollaborationWeight <= 1),
		!(o.ExplorationBoost >= 0),
		!(o.RewardMultiplier >= 0),
		!(o.PheromoneDecayRate >= 0 && o.PheromoneDecayRate <= 1),
		!(o.BasePruningThreshold >= 0 && o.BasePruningThreshold <= 1),
		!(o.PruningThresholdMultiplier >= 1),
		!(o.ProgressThreshold >= 0),
		o.StallWindow < 1,
		o.MaxSteps < 1,
		o.TimeLimit < 0:
		return ErrInvalidConfiguration
	}
	if o.GradientMode != CentralDifference && o.GradientMode != ForwardDifference {
		return ErrInvalidConfiguration
	}
	if o.Fusion < fusion.None || o.Fusion > fusion.Median {
		return ErrInvalidConfiguration
	}
	if o.ValueBounds != nil {
		if math.IsNaN(o.ValueBounds.Min) || math.IsNaN(o.ValueBounds.Max) ||
			o.ValueBounds.Min > o.ValueBounds.Max {
			return ErrInvalidConfiguration
		}
	}
	if o.AutoExpand.Enabled && o.AutoExpand.Cap < 1 {
		return ErrInvalidConfiguration
	}

	return nil
}

// Result reports the outcome of one optimization run.
type Result struct {
	// Name is the target dimension.
	Name string

	// Wavelength is set for spectrum targets, 0 otherwise.
	Wavelength float64

	// Value is the best (lowest-cost) scalar found; it has already been
	// written back into the collection.
	Value float64

	// InitialCost and FinalCost bracket the run. FinalCost ≤ InitialCost
	// unless every step failed.
	InitialCost float64
	FinalCost   float64

	// Steps is the number of descent iterations taken.
	Steps int

	// Improvements traces the per-step cost improvement (negative on a
	// regression, omitted for failed evaluations), capped at the first
	// maxTraceLen steps.
	Improvements []float64

	// Termination tells why the run stopped.
	Termination Termination
}
