// SPDX-License-Identifier: MIT

package termdoc

import (
	"bufio"
	"io"
	"sort"
	"strings"
)

// ReadVocabulary reads one term per line. Line i (0-based) names column i of
// the term-document matrix, so blank lines are rejected with ErrEmptyTerm.
func ReadVocabulary(r io.Reader) ([]string, error) {
	var vocab []string
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		term := strings.TrimSpace(sc.Text())
		if term == "" {
			return nil, lineErrorf(line, ErrEmptyTerm)
		}
		vocab = append(vocab, term)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return vocab, nil
}

// ReadLexicon reads seed words, one per line. Blank lines and lines starting
// with '#' are skipped; duplicates are kept and collapse in SeedIndices.
func ReadLexicon(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return words, nil
}

// SeedIndices returns the sorted, de-duplicated column indices of the
// vocabulary terms present in lexicon. Matching is exact. Lexicon words
// missing from the vocabulary are ignored.
func SeedIndices(vocab, lexicon []string) []int {
	want := make(map[string]struct{}, len(lexicon))
	for _, w := range lexicon {
		want[w] = struct{}{}
	}

	var idx []int
	for j, term := range vocab {
		if _, ok := want[term]; ok {
			idx = append(idx, j)
		}
	}
	sort.Ints(idx)

	return idx
}
