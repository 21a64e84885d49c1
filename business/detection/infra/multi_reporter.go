package infra

import (
	"context"
	"errors"

	"github.com/fxlab/arbitrage-scanner/business/detection/app"
	"github.com/fxlab/arbitrage-scanner/business/detection/domain"
)

// MultiReporter fans results out to several reporters in order.
type MultiReporter struct {
	reporters []app.Reporter
}

var _ app.Reporter = (*MultiReporter)(nil)

// NewMultiReporter composes reporters.
func NewMultiReporter(reporters ...app.Reporter) *MultiReporter {
	return &MultiReporter{reporters: reporters}
}

// Start starts every reporter, stopping already-started ones on failure.
func (r *MultiReporter) Start(ctx context.Context) error {
	for i, rep := range r.reporters {
		if err := rep.Start(ctx); err != nil {
			for j := 0; j < i; j++ {
				r.reporters[j].Stop()
			}
			return err
		}
	}
	return nil
}

// ReportTable delivers the result to every reporter.
func (r *MultiReporter) ReportTable(result *domain.TableResult) {
	for _, rep := range r.reporters {
		rep.ReportTable(result)
	}
}

// Stop stops every reporter, joining their errors.
func (r *MultiReporter) Stop() error {
	var errs []error
	for _, rep := range r.reporters {
		if err := rep.Stop(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
