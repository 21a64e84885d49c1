package app

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/fxlab/arbitrage-scanner/business/detection/domain"
	ratesApp "github.com/fxlab/arbitrage-scanner/business/rates/app"
	"github.com/fxlab/arbitrage-scanner/internal/apm"
	"github.com/fxlab/arbitrage-scanner/internal/apperror"
	"github.com/fxlab/arbitrage-scanner/internal/logger"
	"github.com/fxlab/arbitrage-scanner/internal/metrics"
)

// Scanner drives the scan: tables come from the rates context one at a
// time, each is completed into a matrix, evaluated, and reported before
// the next is read.
type Scanner struct {
	source      ratesApp.TableSource
	evaluator   *Evaluator
	reporter    Reporter
	instruments *metrics.ScanInstruments
	tracer      apm.Tracer
	logger      logger.LoggerInterface
}

// NewScanner creates a Scanner.
func NewScanner(
	source ratesApp.TableSource,
	evaluator *Evaluator,
	reporter Reporter,
	instruments *metrics.ScanInstruments,
	log logger.LoggerInterface,
) *Scanner {
	return &Scanner{
		source:      source,
		evaluator:   evaluator,
		reporter:    reporter,
		instruments: instruments,
		tracer:      apm.NewTracer("detection.scanner"),
		logger:      log,
	}
}

// Run processes every table in the input and reports each result. A
// table that fails validation aborts the run with its error; results
// already reported stand.
func (s *Scanner) Run(ctx context.Context) error {
	ctx, span := s.tracer.StartSpanFromContext(ctx, "detection.run")
	defer span.End()

	if err := s.reporter.Start(ctx); err != nil {
		return err
	}
	defer s.reporter.Stop()

	tables := 0
	totalChains := 0

	for {
		table, err := s.source.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			s.instruments.RecordRejection(ctx, string(apperror.CodeOf(err)))
			span.NoticeError(err)
			return err
		}

		tables++

		matrix, err := domain.NewRateMatrix(table.Dimension, table.Rows)
		if err != nil {
			s.instruments.RecordRejection(ctx, string(apperror.CodeOf(err)))
			span.NoticeError(err)
			return err
		}

		start := time.Now()
		chains := s.evaluator.Detect(ctx, matrix)
		elapsed := time.Since(start)

		result := &domain.TableResult{
			Table:     tables,
			Dimension: table.Dimension,
			Chains:    chains,
			Elapsed:   elapsed,
		}

		s.instruments.RecordDetection(ctx, table.Dimension, len(chains), elapsed)
		s.reporter.ReportTable(result)
		totalChains += len(chains)

		s.logger.Info(ctx, "table scanned",
			"table", tables,
			"dimension", table.Dimension,
			"chains", len(chains),
			"elapsed", elapsed,
		)
	}

	s.logger.Info(ctx, "scan complete", "tables", tables, "chains", totalChains)
	return nil
}
