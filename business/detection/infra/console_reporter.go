package infra

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fxlab/arbitrage-scanner/business/detection/app"
	"github.com/fxlab/arbitrage-scanner/business/detection/domain"
)

// ConsoleReporter implements Reporter for CLI output. It writes the
// contract text verbatim so console output can be piped in place of the
// results file.
type ConsoleReporter struct {
	out io.Writer
}

var _ app.Reporter = (*ConsoleReporter)(nil)

// NewConsoleReporter creates a ConsoleReporter writing to stdout.
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{out: os.Stdout}
}

// NewConsoleReporterTo creates a ConsoleReporter writing to out.
func NewConsoleReporterTo(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

// Start initializes the console reporter.
func (r *ConsoleReporter) Start(ctx context.Context) error {
	return nil
}

// ReportTable prints one table's result.
func (r *ConsoleReporter) ReportTable(result *domain.TableResult) {
	fmt.Fprint(r.out, RenderResult(result))
}

// Stop gracefully shuts down the console reporter.
func (r *ConsoleReporter) Stop() error {
	return nil
}
