package infra

import (
	"context"
	"os"

	"github.com/fxlab/arbitrage-scanner/business/detection/app"
	"github.com/fxlab/arbitrage-scanner/business/detection/domain"
	"github.com/fxlab/arbitrage-scanner/internal/apperror"
	"github.com/fxlab/arbitrage-scanner/internal/logger"
)

// FileReporter implements Reporter by appending each table's rendered
// result to a results file, truncated at Start.
type FileReporter struct {
	path   string
	logger logger.LoggerInterface
	f      *os.File
	err    error // first write failure, surfaced at Stop
}

var _ app.Reporter = (*FileReporter)(nil)

// NewFileReporter creates a FileReporter targeting path.
func NewFileReporter(path string, log logger.LoggerInterface) *FileReporter {
	return &FileReporter{path: path, logger: log}
}

// Start creates (or truncates) the results file.
func (r *FileReporter) Start(ctx context.Context) error {
	f, err := os.Create(r.path)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeReportWriteFailed, r.path)
	}
	r.f = f
	return nil
}

// ReportTable appends one table's rendered result. Write failures are
// remembered and returned by Stop; the scan itself is not interrupted.
func (r *FileReporter) ReportTable(result *domain.TableResult) {
	if r.f == nil || r.err != nil {
		return
	}
	if _, err := r.f.WriteString(RenderResult(result)); err != nil {
		r.err = apperror.Wrap(err, apperror.CodeReportWriteFailed, r.path)
		r.logger.Error(context.Background(), "results write failed", "path", r.path, "error", err)
	}
}

// Stop closes the results file and reports any write failure.
func (r *FileReporter) Stop() error {
	if r.f == nil {
		return r.err
	}
	closeErr := r.f.Close()
	r.f = nil
	if r.err != nil {
		return r.err
	}
	if closeErr != nil {
		return apperror.Wrap(closeErr, apperror.CodeReportWriteFailed, r.path)
	}
	return nil
}
