// SPDX-License-Identifier: MIT

// Package seednmf - the single-writer training state.
//
// A Model owns W, H, λ and μ for one factorisation of one V. Step advances
// the state by exactly one iteration in the fixed order
// divergence → W → H → λ (+g1 clamp) → μ; every sub-step builds new
// matrices and the Model swaps them in, so no caller ever observes a
// half-updated factor. Accessors return copies.
package seednmf

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/seednmf/matrix"
)

// Model is the training state of a seed-guided factorisation.
// It is not safe for concurrent use; create one Model per goroutine.
type Model struct {
	v    mat.Matrix
	opts Options

	docs, terms int

	topicMask []bool // guided topics
	seedMask  []bool // seed terms
	docMask   []bool // zero-seed documents
	hasSeeds  bool

	w, h       *mat.Dense
	lambda, mu *mat.Dense

	status       Status
	iter         int
	gradW, gradH float64
}

// NewModel validates V and opts, draws the initial factors and zeroes the
// dual variables. V is retained by reference and must not be modified while
// the Model is in use.
//
// Errors:
//   - option sentinels (ErrInvalidTopics, ErrInvalidMaxIter, ...);
//   - matrix.ErrNilMatrix / ErrInvalidDimensions / ErrNegative / ErrNaNInf for V;
//   - matrix.ErrOutOfRange for an index set outside its axis.
func NewModel(v mat.Matrix, opts Options) (*Model, error) {
	if err := validateOptions(opts); err != nil {
		return nil, seedErrorf("NewModel", err)
	}
	docs, terms, err := validateInput(v, opts)
	if err != nil {
		return nil, err
	}

	// Without seed terms there is no seed mass to exclude, so an explicit
	// ZeroSeedDocs list is ignored.
	hasSeeds := len(opts.SeedTerms) > 0
	zeroSeed := opts.ZeroSeedDocs
	switch {
	case !hasSeeds:
		zeroSeed = nil
	case zeroSeed == nil:
		if zeroSeed, err = ZeroSeedDocuments(v, opts.SeedTerms); err != nil {
			return nil, err
		}
	}

	rng := rngFromSeed(opts.Seed)
	m := &Model{
		v:         v,
		opts:      opts,
		docs:      docs,
		terms:     terms,
		topicMask: matrix.IndexMask(opts.GuidedTopics, opts.Topics),
		seedMask:  matrix.IndexMask(opts.SeedTerms, terms),
		docMask:   matrix.IndexMask(zeroSeed, docs),
		hasSeeds:  hasSeeds,
		w:         initFactor(rng, docs, opts.Topics, opts.InitScale),
		h:         initFactor(rng, opts.Topics, terms, opts.InitScale),
		lambda:    mat.NewDense(docs, opts.Topics, nil),
		mu:        mat.NewDense(opts.Topics, terms, nil),
		status:    StatusInitializing,
	}

	return m, nil
}

// checkShapes enforces W.cols == H.rows, λ ~ W and μ ~ H.
func (m *Model) checkShapes() error {
	if err := matrix.ValidateMulShape(m.w, m.h); err != nil {
		return err
	}
	if err := matrix.ValidateSameShape(m.lambda, m.w); err != nil {
		return err
	}

	return matrix.ValidateSameShape(m.mu, m.h)
}

// Step runs one iteration and returns the divergence of the factors as they
// were at the start of the step.
//
// Order:
//  1. divergence (and gradient norms when TrackGradients);
//  2. W from the pre-update W and H;
//  3. H from the new W and the pre-update H;
//  4. λ from the new W, after which W adopts the g1 clamp;
//  5. μ from the new H.
func (m *Model) Step() (float64, error) {
	if err := m.checkShapes(); err != nil {
		return 0, seedErrorf("Step", err)
	}
	m.status = StatusIterating

	div, err := Divergence(m.v, m.w, m.h)
	if err != nil {
		return 0, err
	}
	if m.opts.TrackGradients {
		if m.gradW, m.gradH, err = GradientNorms(m.v, m.w, m.h); err != nil {
			return 0, err
		}
	}

	w, err := updateW(m.v, m.w, m.h, m.lambda, m.docMask, m.topicMask)
	if err != nil {
		return 0, err
	}
	h, err := updateH(m.v, w, m.h, m.mu, m.seedMask, m.topicMask)
	if err != nil {
		return 0, err
	}
	lambda, w := updateLambda(m.lambda, w, m.docMask, m.topicMask, m.opts.SeedExclusionCeiling, m.opts.Step)
	mu := updateMu(m.mu, h, m.seedMask, m.topicMask, m.hasSeeds, m.opts.SeedMassFloor, m.opts.Step)

	m.w, m.h, m.lambda, m.mu = w, h, lambda, mu
	m.iter++

	return div, nil
}

// W returns a copy of the current (unnormalised) document-topic factor.
func (m *Model) W() *mat.Dense { return mat.DenseCopyOf(m.w) }

// H returns a copy of the current (unnormalised) topic-term factor.
func (m *Model) H() *mat.Dense { return mat.DenseCopyOf(m.h) }

// Lambda returns a copy of the document-topic multipliers.
func (m *Model) Lambda() *mat.Dense { return mat.DenseCopyOf(m.lambda) }

// Mu returns a copy of the topic-term multipliers.
func (m *Model) Mu() *mat.Dense { return mat.DenseCopyOf(m.mu) }

// ZeroSeedDocs returns the zero-seed document rows in effect, in increasing order.
func (m *Model) ZeroSeedDocs() []int {
	var out []int
	for i, ok := range m.docMask {
		if ok {
			out = append(out, i)
		}
	}

	return out
}

// Status returns the state of the training state machine.
func (m *Model) Status() Status { return m.status }

// Iterations returns the number of steps taken.
func (m *Model) Iterations() int { return m.iter }

// GradientNorms returns the gradient norms recorded by the last Step.
// Both are 0 unless TrackGradients is set.
func (m *Model) GradientNorms() (normW, normH float64) { return m.gradW, m.gradH }
