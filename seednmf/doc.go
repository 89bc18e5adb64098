// SPDX-License-Identifier: MIT

// Package seednmf implements a seed-word-guided non-negative matrix
// factorisation for topic modelling.
//
// 🚀 What it does
//
//	Given a non-negative documents × terms matrix V (sparse *matrix.CSR or any
//	dense mat.Matrix), seednmf finds W (documents × topics) and H
//	(topics × terms) with V ≈ W·H under a generalized KL divergence, while two
//	soft constraints steer a designated set of guided topics:
//
//	  • exclusion (g1): documents holding none of the seed terms may load a
//	    guided topic with at most SeedExclusionCeiling;
//	  • seed mass (g2): each guided topic should place at least SeedMassFloor
//	    of its mass on seed terms.
//
//	Each constraint has a non-negative dual variable (λ per document-topic
//	cell, μ per topic-term cell) updated by projected gradient ascent and
//	reset to zero the moment its constraint is satisfied.
//
// Iteration (fixed order, one Step):
//
//  1. divergence D(V ‖ W·H) of the current factors is recorded;
//  2. W ← W ⊙ (R·Hᵀ) ⊘ (1·Hᵀ + λ on excluded cells), R = V ⊘ W·H;
//  3. H ← H ⊙ (Wᵀ·R) ⊘ (Wᵀ·1 + μ·∂g2/∂H on guided seed cells), using the new W;
//  4. λ ascends on the exclusion signal of the new W, which is then clamped;
//  5. μ ascends on the seed-mass deficit of the new H.
//
// Training stops when a recorded divergence drops below Tolerance
// (StatusConverged) or after MaxIter steps (StatusMaxIterReached). Both
// factors are then rescaled to sum to 1, independently; the product of the
// returned factors is therefore not a reconstruction of V.
//
// Determinism:
//
//	Initial factors are drawn from a math/rand stream seeded by Options.Seed,
//	so identical inputs and seeds give identical results. A Model is owned by
//	a single goroutine; separate Train calls share no state.
//
// Logging:
//
//	Progress is reported through glog at verbosity 1 (-v=1).
package seednmf
