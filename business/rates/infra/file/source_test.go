package file

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"unicode/utf16"

	"github.com/fxlab/arbitrage-scanner/internal/apperror"
)

func writeInput(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}
	return path
}

func utf16le(t *testing.T, s string) []byte {
	t.Helper()
	units := utf16.Encode([]rune("\uFEFF" + s))
	b := make([]byte, 0, len(units)*2)
	for _, u := range units {
		b = append(b, byte(u), byte(u>>8))
	}
	return b
}

func TestSource_ReadsMultipleTables(t *testing.T) {
	input := "2\n1.1\n0.8\n3\n1.2 1.3\n0.9 1.1\n0.7 0.6\n"
	path := writeInput(t, "rates.txt", []byte(input))

	src, err := NewSource(path, "auto")
	if err != nil {
		t.Fatalf("opening source: %v", err)
	}
	defer src.Close()

	ctx := context.Background()

	first, err := src.Next(ctx)
	if err != nil {
		t.Fatalf("first table: %v", err)
	}
	if first.Dimension != 2 {
		t.Fatalf("first dimension = %d, want 2", first.Dimension)
	}
	if want := [][]float64{{1.1}, {0.8}}; !reflect.DeepEqual(first.Rows, want) {
		t.Fatalf("first rows = %v, want %v", first.Rows, want)
	}

	second, err := src.Next(ctx)
	if err != nil {
		t.Fatalf("second table: %v", err)
	}
	if second.Dimension != 3 {
		t.Fatalf("second dimension = %d, want 3", second.Dimension)
	}
	if want := [][]float64{{1.2, 1.3}, {0.9, 1.1}, {0.7, 0.6}}; !reflect.DeepEqual(second.Rows, want) {
		t.Fatalf("second rows = %v, want %v", second.Rows, want)
	}

	if _, err := src.Next(ctx); !errors.Is(err, io.EOF) {
		t.Fatalf("after last table: err = %v, want io.EOF", err)
	}
}

func TestSource_DecodesUTF16LE(t *testing.T) {
	path := writeInput(t, "rates-utf16.txt", utf16le(t, "2\n1.5\n0.7\n"))

	src, err := NewSource(path, "auto")
	if err != nil {
		t.Fatalf("opening source: %v", err)
	}
	defer src.Close()

	table, err := src.Next(context.Background())
	if err != nil {
		t.Fatalf("reading table: %v", err)
	}
	if table.Dimension != 2 {
		t.Fatalf("dimension = %d, want 2", table.Dimension)
	}
	if want := [][]float64{{1.5}, {0.7}}; !reflect.DeepEqual(table.Rows, want) {
		t.Fatalf("rows = %v, want %v", table.Rows, want)
	}
}

func TestSource_TokenErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode apperror.Code
	}{
		{
			name:     "dimension_not_integer",
			input:    "two\n1.1\n0.8\n",
			wantCode: apperror.CodeInvalidDimension,
		},
		{
			name:     "dimension_negative",
			input:    "-3 1.0 1.0\n",
			wantCode: apperror.CodeInvalidDimension,
		},
		{
			name:     "dimension_below_two",
			input:    "1\n",
			wantCode: apperror.CodeInvalidDimension,
		},
		{
			name:     "dimension_absurdly_large",
			input:    "99999999\n1.0\n",
			wantCode: apperror.CodeInvalidDimension,
		},
		{
			name:     "malformed_rate",
			input:    "2\n1.1\nabc\n",
			wantCode: apperror.CodeMalformedToken,
		},
		{
			name:     "truncated_table",
			input:    "3\n1.2 1.3\n0.9\n",
			wantCode: apperror.CodeUnexpectedEOF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeInput(t, "rates.txt", []byte(tt.input))

			src, err := NewSource(path, "auto")
			if err != nil {
				t.Fatalf("opening source: %v", err)
			}
			defer src.Close()

			_, err = src.Next(context.Background())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !apperror.IsCode(err, tt.wantCode) {
				t.Fatalf("error code = %v, want %v", apperror.CodeOf(err), tt.wantCode)
			}
		})
	}
}

func TestSource_EmptyInputIsCleanEOF(t *testing.T) {
	path := writeInput(t, "empty.txt", nil)

	src, err := NewSource(path, "auto")
	if err != nil {
		t.Fatalf("opening source: %v", err)
	}
	defer src.Close()

	if _, err := src.Next(context.Background()); !errors.Is(err, io.EOF) {
		t.Fatalf("err = %v, want io.EOF", err)
	}
}

func TestSource_MissingFile(t *testing.T) {
	_, err := NewSource(filepath.Join(t.TempDir(), "absent.txt"), "auto")
	if !apperror.IsCode(err, apperror.CodeInputOpenFailed) {
		t.Fatalf("error code = %v, want %v", apperror.CodeOf(err), apperror.CodeInputOpenFailed)
	}
}

func TestSource_CancelledContext(t *testing.T) {
	path := writeInput(t, "rates.txt", []byte("2\n1.1\n0.8\n"))

	src, err := NewSource(path, "auto")
	if err != nil {
		t.Fatalf("opening source: %v", err)
	}
	defer src.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := src.Next(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
