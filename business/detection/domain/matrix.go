// Package domain contains the core domain types for the detection context.
package domain

import (
	"fmt"

	"github.com/fxlab/arbitrage-scanner/internal/apperror"
)

// MaxMatrixDimension bounds N so currency indices pack into single bytes
// for memo keys. Far beyond tractable anyway: the scan is factorial in N.
const MaxMatrixDimension = 255

// RateMatrix is a complete N×N exchange-rate table with a unit diagonal.
// rate(i,j) is the amount of currency j obtained per unit of currency i.
// Immutable after construction.
type RateMatrix struct {
	n     int
	rates [][]float64
}

// NewRateMatrix completes a partially-specified table into the full matrix.
// rows holds, for each currency i, its N-1 off-diagonal rates in index
// order skipping i itself. Shape violations are rejected; rate values are
// not validated (the evaluator is agnostic to economic plausibility).
func NewRateMatrix(n int, rows [][]float64) (*RateMatrix, error) {
	if n < 2 {
		return nil, apperror.Validation(apperror.CodeInvalidDimension,
			fmt.Sprintf("dimension %d", n))
	}
	if n > MaxMatrixDimension {
		return nil, apperror.Validation(apperror.CodeInvalidDimension,
			fmt.Sprintf("dimension %d exceeds %d", n, MaxMatrixDimension))
	}
	if len(rows) != n {
		return nil, apperror.Validation(apperror.CodeRowLengthMismatch,
			fmt.Sprintf("expected %d rows, got %d", n, len(rows)))
	}

	rates := make([][]float64, n)
	for i, row := range rows {
		if len(row) != n-1 {
			return nil, apperror.Validation(apperror.CodeRowLengthMismatch,
				fmt.Sprintf("row %d holds %d entries, expected %d", i, len(row), n-1))
		}

		rates[i] = make([]float64, n)
		rates[i][i] = 1
		for j := 0; j < i; j++ {
			rates[i][j] = row[j]
		}
		for j := i + 1; j < n; j++ {
			rates[i][j] = row[j-1]
		}
	}

	return &RateMatrix{n: n, rates: rates}, nil
}

// Dimension returns N.
func (m *RateMatrix) Dimension() int {
	return m.n
}

// Rate returns the conversion rate from currency i to currency j.
func (m *RateMatrix) Rate(i, j int) float64 {
	return m.rates[i][j]
}
