// SPDX-License-Identifier: MIT

// Package seednmf is a seed-word-guided topic modelling toolkit built on
// non-negative matrix factorisation.
//
// 🚀 What is in the box?
//
//	Give it a documents × terms matrix and a handful of seed words; it finds
//	latent topics and steers chosen "guided" topics toward the seeds and away
//	from documents that never mention them.
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/  — CSR sparse storage, sparse-aware products, numeric guards, validators
//	seednmf/ — the constrained KL-NMF engine: divergence, constraints, duals, training loop
//	termdoc/ — Matrix Market, vocabulary and lexicon readers; TSV writer
//
// plus the cmd/seednmf command line tool and a runnable walk-through in examples/.
//
// Quick example:
//
//	opts := seednmf.DefaultOptions()
//	opts.Topics = 10
//	opts.GuidedTopics = []int{0}
//	opts.SeedTerms = termdoc.SeedIndices(vocab, lexicon)
//	res, err := seednmf.Train(v, opts)
//
//	go get github.com/katalvlaran/seednmf/seednmf
package seednmf
