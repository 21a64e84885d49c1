package file

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fxlab/arbitrage-scanner/business/rates/domain"
	"github.com/fxlab/arbitrage-scanner/internal/apperror"
)

// Source reads rate tables from a whitespace-tokenized file: each table
// is one integer N followed by N·(N-1) numeric rates, repeating until
// end of input. End of input is only legal at a table boundary.
type Source struct {
	f       *os.File
	scanner *bufio.Scanner
}

// NewSource opens path with the given encoding ("auto", "utf-8",
// "utf-16") and positions at the first table.
func NewSource(path, encoding string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInputOpenFailed, path)
	}

	r, err := decodingReader(f, encoding)
	if err != nil {
		f.Close()
		return nil, apperror.Wrap(err, apperror.CodeInputDecodeFailed, path)
	}

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	return &Source{f: f, scanner: scanner}, nil
}

// Next reads one table. Returns io.EOF once the input is cleanly
// exhausted.
func (s *Source) Next(ctx context.Context) (*domain.TableInput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tok, ok := s.token()
	if !ok {
		if err := s.scanner.Err(); err != nil {
			return nil, apperror.Wrap(err, apperror.CodeInputDecodeFailed, "reading dimension")
		}
		return nil, io.EOF
	}

	n, err := parseDimension(tok)
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, n-1)
		for j := 0; j < n-1; j++ {
			tok, ok := s.token()
			if !ok {
				return nil, apperror.Validation(apperror.CodeUnexpectedEOF,
					fmt.Sprintf("table row %d entry %d", i, j))
			}
			rate, err := parseRate(tok)
			if err != nil {
				return nil, err
			}
			row[j] = rate
		}
		rows[i] = row
	}

	return &domain.TableInput{Dimension: n, Rows: rows}, nil
}

func (s *Source) token() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

// Close closes the underlying file.
func (s *Source) Close() error {
	return s.f.Close()
}
