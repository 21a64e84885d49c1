// Package ui provides the Bubble Tea TUI for the arbitrage scanner.
package ui

import (
	"github.com/fxlab/arbitrage-scanner/business/detection/domain"
)

// Message types for TUI updates

// TableResultMsg is sent when a table has been scanned.
type TableResultMsg struct {
	Result *domain.TableResult
}

// ScanDoneMsg signals that every table has been processed.
type ScanDoneMsg struct{}

// ErrorMsg is sent when the scan fails.
type ErrorMsg struct {
	Error error
}
