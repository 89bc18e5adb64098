// SPDX-License-Identifier: MIT

// Package seednmf - options, training status and results.
package seednmf

import "gonum.org/v1/gonum/mat"

// Defaults used by DefaultOptions.
const (
	DefaultTopics               = 15
	DefaultSeedExclusionCeiling = 1e-9
	DefaultSeedMassFloor        = 0.4
	DefaultStep                 = 0.001
	DefaultMaxIter              = 100
	DefaultTolerance            = 1e-4
	DefaultInitScale            = 0.01
	DefaultLogEvery             = 2
)

// Options configures a factorisation.
//
// Fields:
//   - Topics               — number of latent topics k (columns of W, rows of H).
//   - GuidedTopics         — topic indices in [0, Topics) steered toward the seed terms.
//   - SeedTerms            — vocabulary column indices of the seed lexicon.
//   - ZeroSeedDocs         — document rows with no seed mass. nil means "derive
//     from V and SeedTerms once, before training"; a non-nil slice (possibly
//     empty) is used verbatim.
//   - SeedExclusionCeiling — W_max: the most a zero-seed document may load a guided topic.
//   - SeedMassFloor        — theta_min: the least fraction of a guided topic's
//     mass that should sit on seed terms.
//   - Step                 — η, the dual ascent step shared by λ and μ.
//   - MaxIter              — iteration cap.
//   - Tolerance            — stop as soon as a recorded divergence is below it.
//   - Seed                 — RNG seed for the initial factors; 0 selects a fixed default stream.
//   - InitScale            — magnitude of the initial |N(0,1)| noise.
//   - TrackGradients       — record Frobenius norms of the divergence gradients per step.
//   - LogEvery             — log the divergence every LogEvery steps at -v=1; 0 disables.
//
// Example:
//
//	opts := seednmf.DefaultOptions()
//	opts.Topics = 2
//	opts.GuidedTopics = []int{0}
//	opts.SeedTerms = []int{0, 1}
//	res, err := seednmf.Train(v, opts)
type Options struct {
	Topics               int
	GuidedTopics         []int
	SeedTerms            []int
	ZeroSeedDocs         []int
	SeedExclusionCeiling float64
	SeedMassFloor        float64
	Step                 float64
	MaxIter              int
	Tolerance            float64
	Seed                 int64
	InitScale            float64
	TrackGradients       bool
	LogEvery             int
}

// DefaultOptions returns Options populated with the package defaults and no
// guided topics or seed terms.
func DefaultOptions() Options {
	return Options{
		Topics:               DefaultTopics,
		SeedExclusionCeiling: DefaultSeedExclusionCeiling,
		SeedMassFloor:        DefaultSeedMassFloor,
		Step:                 DefaultStep,
		MaxIter:              DefaultMaxIter,
		Tolerance:            DefaultTolerance,
		InitScale:            DefaultInitScale,
		LogEvery:             DefaultLogEvery,
	}
}

// Status is the state of the training state machine.
type Status int

const (
	// StatusInitializing: factors drawn, no step taken yet.
	StatusInitializing Status = iota
	// StatusIterating: at least one step taken, no terminal state reached.
	StatusIterating
	// StatusConverged: a recorded divergence fell below Tolerance.
	StatusConverged
	// StatusMaxIterReached: MaxIter steps ran without converging. Not an error.
	StatusMaxIterReached
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusIterating:
		return "iterating"
	case StatusConverged:
		return "converged"
	case StatusMaxIterReached:
		return "max-iter-reached"
	default:
		return "unknown"
	}
}

// Result holds the outcome of Train.
type Result struct {
	// W is documents × topics, rescaled so that all entries sum to 1.
	W *mat.Dense

	// H is topics × terms, rescaled so that all entries sum to 1.
	H *mat.Dense

	// Divergence[i] is the divergence recorded at the start of step i.
	Divergence []float64

	// GradNormW and GradNormH hold the Frobenius norms of the divergence
	// gradients at the start of each step; empty unless TrackGradients.
	GradNormW []float64
	GradNormH []float64

	// Iterations is the number of steps taken.
	Iterations int

	// Status is StatusConverged or StatusMaxIterReached.
	Status Status
}
