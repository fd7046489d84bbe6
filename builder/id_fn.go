// Package builder provides the label schemes used to name grid nodes.
package builder

import (
	"fmt"
	"strconv"
)

// LabelFn generates a node label from its zero-based row-major index and the
// total number of cells. It must be pure and deterministic.
type LabelFn func(idx, cells int) string

// DefaultLabelFn names nodes "A".."Z" when the grid has at most
// MaxLetterCells cells, and "1".."n" otherwise.
// Complexity: O(d) where d is the number of decimal digits.
func DefaultLabelFn(idx, cells int) string {
	if cells <= MaxLetterCells {
		return SymbolIDFn(idx)
	}
	return DecimalIDFn(idx)
}

// DecimalIDFn returns the one-based decimal label, e.g. 0→"1", 41→"42".
// Never panics.
func DecimalIDFn(idx int) string {
	return strconv.Itoa(idx + 1)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25], e.g. 0→"A", 25→"Z".
// Panics if idx < 0 or idx > 25.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns the “Excel-style” column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Complexity: O(k) time where k ≈ log₍₂₆₎(idx).
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// WithLabelScheme sets the label generator. Panics on nil.
func WithLabelScheme(fn LabelFn) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelScheme(nil)")
	}
	return func(c *builderConfig) {
		c.labelFn = fn
	}
}

// WithExcelLabels labels every node Excel-style regardless of grid size.
func WithExcelLabels() BuilderOption {
	return WithLabelScheme(func(idx, _ int) string { return ExcelColumnIDFn(idx) })
}

// WithDecimalLabels labels every node "1".."n" regardless of grid size.
func WithDecimalLabels() BuilderOption {
	return WithLabelScheme(func(idx, _ int) string { return DecimalIDFn(idx) })
}
