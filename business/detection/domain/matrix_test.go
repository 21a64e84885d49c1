package domain

import (
	"testing"

	"github.com/fxlab/arbitrage-scanner/internal/apperror"
)

func TestNewRateMatrix_CompletesDiagonal(t *testing.T) {
	// rows carry off-diagonal rates in index order skipping self
	rows := [][]float64{
		{2.0, 3.0}, // from 0: to 1, to 2
		{4.0, 5.0}, // from 1: to 0, to 2
		{6.0, 7.0}, // from 2: to 0, to 1
	}

	m, err := NewRateMatrix(3, rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.Dimension() != 3 {
		t.Fatalf("dimension = %d, want 3", m.Dimension())
	}

	want := [3][3]float64{
		{1, 2, 3},
		{4, 1, 5},
		{6, 7, 1},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if got := m.Rate(i, j); got != want[i][j] {
				t.Fatalf("rate(%d,%d) = %v, want %v", i, j, got, want[i][j])
			}
		}
	}
}

func TestNewRateMatrix_ShapeErrors(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		rows     [][]float64
		wantCode apperror.Code
	}{
		{
			name:     "dimension_below_two",
			n:        1,
			rows:     [][]float64{{}},
			wantCode: apperror.CodeInvalidDimension,
		},
		{
			name:     "missing_row",
			n:        3,
			rows:     [][]float64{{1, 1}, {1, 1}},
			wantCode: apperror.CodeRowLengthMismatch,
		},
		{
			name:     "short_row",
			n:        3,
			rows:     [][]float64{{1, 1}, {1}, {1, 1}},
			wantCode: apperror.CodeRowLengthMismatch,
		},
		{
			name:     "long_row",
			n:        2,
			rows:     [][]float64{{1, 1}, {1}},
			wantCode: apperror.CodeRowLengthMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRateMatrix(tt.n, tt.rows)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !apperror.IsCode(err, tt.wantCode) {
				t.Fatalf("error code = %v, want %v", apperror.CodeOf(err), tt.wantCode)
			}
		})
	}
}

func TestNewRateMatrix_AcceptsImplausibleRates(t *testing.T) {
	// zero, negative and huge rates pass: shape is the only contract
	rows := [][]float64{
		{0, -3.5},
		{1e300, 1},
		{1, 1},
	}

	if _, err := NewRateMatrix(3, rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
