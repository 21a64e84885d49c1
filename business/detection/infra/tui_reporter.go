package infra

import (
	"context"

	"github.com/fxlab/arbitrage-scanner/business/detection/app"
	"github.com/fxlab/arbitrage-scanner/business/detection/domain"
)

// TUIReporter implements Reporter by pushing results into the Bubble Tea
// program. Delivery is a plain callback so this package does not depend
// on the UI; main wires it to ui.Send.
type TUIReporter struct {
	send func(result *domain.TableResult)
	done func()
}

var _ app.Reporter = (*TUIReporter)(nil)

// NewTUIReporter creates a TUIReporter delivering through send, with
// done invoked once the scan finishes.
func NewTUIReporter(send func(result *domain.TableResult), done func()) *TUIReporter {
	return &TUIReporter{send: send, done: done}
}

// Start initializes the TUI reporter.
func (r *TUIReporter) Start(ctx context.Context) error {
	return nil
}

// ReportTable forwards one table's result to the UI.
func (r *TUIReporter) ReportTable(result *domain.TableResult) {
	if r.send != nil {
		r.send(result)
	}
}

// Stop signals the UI that the scan is complete.
func (r *TUIReporter) Stop() error {
	if r.done != nil {
		r.done()
	}
	return nil
}
