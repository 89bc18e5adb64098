// SPDX-License-Identifier: MIT

package seednmf

import (
	"context"

	log "github.com/golang/glog"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/seednmf/matrix"
)

// Run steps the model until a recorded divergence is below Tolerance or
// MaxIter steps have run, then returns both factors rescaled to sum to 1.
//
// The convergence test uses the divergence recorded at the start of the step
// that just completed; the freshly updated factors are not re-evaluated.
// Reaching MaxIter is a normal outcome (StatusMaxIterReached), not an error.
func (m *Model) Run() (*Result, error) { return m.RunContext(context.Background()) }

// RunContext is Run with cancellation: ctx is checked before every step and
// ctx.Err() is returned as is. The model keeps the state of the last
// completed step and may be resumed with another RunContext call.
func (m *Model) RunContext(ctx context.Context) (*Result, error) {
	res := &Result{Divergence: make([]float64, 0, m.opts.MaxIter)}
	if m.opts.TrackGradients {
		res.GradNormW = make([]float64, 0, m.opts.MaxIter)
		res.GradNormH = make([]float64, 0, m.opts.MaxIter)
	}

	for i := 0; i < m.opts.MaxIter; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		div, err := m.Step()
		if err != nil {
			return nil, err
		}
		res.Divergence = append(res.Divergence, div)
		if m.opts.TrackGradients {
			res.GradNormW = append(res.GradNormW, m.gradW)
			res.GradNormH = append(res.GradNormH, m.gradH)
		}
		if m.opts.LogEvery > 0 && i%m.opts.LogEvery == 0 {
			log.V(1).Infof("seednmf: iteration %d, divergence %g", i, div)
		}
		if div < m.opts.Tolerance {
			m.status = StatusConverged
			log.V(1).Infof("seednmf: converged at iteration %d, divergence %g", i, div)
			break
		}
	}
	if m.status != StatusConverged {
		m.status = StatusMaxIterReached
	}

	var err error
	if res.W, err = matrix.NormalizeSum(m.w); err != nil {
		return nil, seedErrorf("Run", err)
	}
	if res.H, err = matrix.NormalizeSum(m.h); err != nil {
		return nil, seedErrorf("Run", err)
	}
	res.Iterations = m.iter
	res.Status = m.status

	return res, nil
}

// Train factorises V under opts; see NewModel for the errors it can return.
func Train(v mat.Matrix, opts Options) (*Result, error) {
	return TrainContext(context.Background(), v, opts)
}

// TrainContext is Train with cancellation; see RunContext.
func TrainContext(ctx context.Context, v mat.Matrix, opts Options) (*Result, error) {
	m, err := NewModel(v, opts)
	if err != nil {
		return nil, err
	}

	return m.RunContext(ctx)
}

// Factorize is the positional form of Train returning only the normalised
// factors. zeroSeedDocs may be nil to derive the zero-seed documents from V;
// the remaining options take their package defaults.
func Factorize(v mat.Matrix, nTopics int, guided []int, ceiling float64, zeroSeedDocs, seeds []int,
	floor float64, maxIter int, tol float64) (w, h *mat.Dense, err error) {
	opts := DefaultOptions()
	opts.Topics = nTopics
	opts.GuidedTopics = guided
	opts.SeedExclusionCeiling = ceiling
	opts.ZeroSeedDocs = zeroSeedDocs
	opts.SeedTerms = seeds
	opts.SeedMassFloor = floor
	opts.MaxIter = maxIter
	opts.Tolerance = tol

	res, err := Train(v, opts)
	if err != nil {
		return nil, nil, err
	}

	return res.W, res.H, nil
}
