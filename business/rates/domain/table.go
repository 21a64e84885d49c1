// Package domain contains the core domain types for the rates context.
package domain

import (
	"fmt"

	"github.com/fxlab/arbitrage-scanner/internal/apperror"
)

// TableInput is one raw rate table as read from the input: the dimension
// N plus N rows of N-1 off-diagonal rates in index order.
type TableInput struct {
	Dimension int
	Rows      [][]float64
}

// Validate checks the table's shape. Rate values are not judged here:
// the evaluator accepts any float and is agnostic to plausibility.
func (t *TableInput) Validate() error {
	if t.Dimension < 2 {
		return apperror.Validation(apperror.CodeInvalidDimension,
			fmt.Sprintf("dimension %d", t.Dimension))
	}
	if len(t.Rows) != t.Dimension {
		return apperror.Validation(apperror.CodeRowLengthMismatch,
			fmt.Sprintf("expected %d rows, got %d", t.Dimension, len(t.Rows)))
	}
	for i, row := range t.Rows {
		if len(row) != t.Dimension-1 {
			return apperror.Validation(apperror.CodeRowLengthMismatch,
				fmt.Sprintf("row %d holds %d entries, expected %d", i, len(row), t.Dimension-1))
		}
	}
	return nil
}

// ValidatePositiveRates rejects zero or negative rates. Optional policy:
// off by default, since degenerate values are defined to flow through
// detection without ever registering as profitable.
func (t *TableInput) ValidatePositiveRates() error {
	for i, row := range t.Rows {
		for j, rate := range row {
			if rate <= 0 {
				return apperror.Validation(apperror.CodeNonPositiveRate,
					fmt.Sprintf("row %d entry %d is %v", i, j, rate))
			}
		}
	}
	return nil
}
