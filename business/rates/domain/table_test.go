package domain

import (
	"testing"

	"github.com/fxlab/arbitrage-scanner/internal/apperror"
)

func TestTableInput_Validate(t *testing.T) {
	tests := []struct {
		name     string
		table    TableInput
		wantCode apperror.Code
	}{
		{
			name:  "valid_two_by_two",
			table: TableInput{Dimension: 2, Rows: [][]float64{{1.1}, {0.9}}},
		},
		{
			name:  "valid_three_by_three",
			table: TableInput{Dimension: 3, Rows: [][]float64{{1, 1}, {1, 1}, {1, 1}}},
		},
		{
			name:     "dimension_below_two",
			table:    TableInput{Dimension: 1, Rows: [][]float64{{}}},
			wantCode: apperror.CodeInvalidDimension,
		},
		{
			name:     "row_count_mismatch",
			table:    TableInput{Dimension: 3, Rows: [][]float64{{1, 1}, {1, 1}}},
			wantCode: apperror.CodeRowLengthMismatch,
		},
		{
			name:     "row_length_mismatch",
			table:    TableInput{Dimension: 3, Rows: [][]float64{{1, 1}, {1}, {1, 1}}},
			wantCode: apperror.CodeRowLengthMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !apperror.IsCode(err, tt.wantCode) {
				t.Fatalf("error code = %v, want %v", apperror.CodeOf(err), tt.wantCode)
			}
		})
	}
}

func TestTableInput_ValidatePositiveRates(t *testing.T) {
	good := TableInput{Dimension: 2, Rows: [][]float64{{0.001}, {1500}}}
	if err := good.ValidatePositiveRates(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, bad := range []float64{0, -1.5} {
		table := TableInput{Dimension: 2, Rows: [][]float64{{bad}, {1}}}
		err := table.ValidatePositiveRates()
		if !apperror.IsCode(err, apperror.CodeNonPositiveRate) {
			t.Fatalf("rate %v: error code = %v, want %v", bad, apperror.CodeOf(err), apperror.CodeNonPositiveRate)
		}
	}
}
