// SPDX-License-Identifier: MIT

package termdoc

import (
	"errors"
	"fmt"
)

var (
	// ErrBadHeader indicates a missing or unsupported Matrix Market banner.
	ErrBadHeader = errors.New("termdoc: unsupported Matrix Market header")

	// ErrBadSize indicates a malformed or non-positive size line.
	ErrBadSize = errors.New("termdoc: malformed size line")

	// ErrBadEntry indicates an entry line that cannot be parsed or lies outside the declared shape.
	ErrBadEntry = errors.New("termdoc: malformed entry")

	// ErrEntryCount indicates that the number of entries differs from the size line.
	ErrEntryCount = errors.New("termdoc: entry count does not match size line")

	// ErrEmptyTerm indicates a blank line in a vocabulary file.
	ErrEmptyTerm = errors.New("termdoc: empty vocabulary term")
)

// lineErrorf wraps err with the 1-based line number it was detected on.
func lineErrorf(line int, err error) error {
	return fmt.Errorf("termdoc: line %d: %w", line, err)
}
