package file

import (
	"fmt"
	"strconv"

	"github.com/fxlab/arbitrage-scanner/internal/apperror"
)

// maxDimension bounds the N token before row allocation. Mirrors the
// structural cap on matrix size; a larger table would be rejected
// downstream anyway, so don't allocate for it.
const maxDimension = 255

// parseDimension parses and validates the leading N token of a table.
func parseDimension(tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, apperror.Validation(apperror.CodeInvalidDimension,
			fmt.Sprintf("token %q is not an integer", tok))
	}
	if n < 2 {
		return 0, apperror.Validation(apperror.CodeInvalidDimension,
			fmt.Sprintf("dimension %d", n))
	}
	if n > maxDimension {
		return 0, apperror.Validation(apperror.CodeInvalidDimension,
			fmt.Sprintf("dimension %d exceeds %d", n, maxDimension))
	}
	return n, nil
}

// parseRate parses a single rate token.
func parseRate(tok string) (float64, error) {
	rate, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, apperror.Validation(apperror.CodeMalformedToken,
			fmt.Sprintf("token %q", tok))
	}
	return rate, nil
}
