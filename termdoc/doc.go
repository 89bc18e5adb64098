// SPDX-License-Identifier: MIT

// Package termdoc reads and writes the files around a seednmf run.
//
// Formats:
//   - Term-document matrix: Matrix Market coordinate format
//     ("%%MatrixMarket matrix coordinate real general", 1-based indices),
//     one row per document and one column per vocabulary term.
//   - Vocabulary: one term per line; line i names column i of the matrix.
//   - Lexicon: one seed word per line; blank lines and '#' comments are ignored.
//   - Factors: tab-separated values, one matrix row per line.
//
// The readers never load a dense copy of the corpus; the matrix comes back as
// a *matrix.CSR ready for seednmf.Train.
package termdoc
