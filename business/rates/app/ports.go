// Package app contains application services and port definitions for the rates context.
package app

import (
	"context"

	"github.com/fxlab/arbitrage-scanner/business/rates/domain"
)

// TableSource yields rate tables in input order. Next returns io.EOF
// after the last table; an error mid-table (truncation, bad token) is a
// format error, not end of input.
type TableSource interface {
	// Next reads the next table.
	Next(ctx context.Context) (*domain.TableInput, error)

	// Close releases the underlying input.
	Close() error
}
