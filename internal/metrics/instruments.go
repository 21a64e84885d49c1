package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ScanInstruments bundles the scanner's domain metrics.
type ScanInstruments struct {
	TablesScanned    metric.Int64Counter
	ChainsFound      metric.Int64Counter
	TablesRejected   metric.Int64Counter
	DetectionSeconds metric.Float64Histogram
}

// NewScanInstruments registers the scan instruments on the global meter.
// Safe to call when no meter provider is installed; the no-op provider
// swallows everything.
func NewScanInstruments() (*ScanInstruments, error) {
	meter := otel.Meter("arbitrage-scanner")

	tables, err := meter.Int64Counter("scanner.tables_scanned",
		metric.WithDescription("Rate tables fully evaluated"))
	if err != nil {
		return nil, err
	}

	chains, err := meter.Int64Counter("scanner.chains_found",
		metric.WithDescription("Profitable arbitrage chains reported"))
	if err != nil {
		return nil, err
	}

	rejected, err := meter.Int64Counter("scanner.tables_rejected",
		metric.WithDescription("Tables rejected for format errors"))
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("scanner.detection_seconds",
		metric.WithDescription("Wall time of a single table detection"))
	if err != nil {
		return nil, err
	}

	return &ScanInstruments{
		TablesScanned:    tables,
		ChainsFound:      chains,
		TablesRejected:   rejected,
		DetectionSeconds: duration,
	}, nil
}

// RecordDetection records one completed table scan.
func (si *ScanInstruments) RecordDetection(ctx context.Context, dimension int, chains int, elapsed time.Duration) {
	if si == nil {
		return
	}
	dim := attribute.Int("dimension", dimension)
	si.TablesScanned.Add(ctx, 1, metric.WithAttributes(dim))
	si.ChainsFound.Add(ctx, int64(chains), metric.WithAttributes(dim))
	si.DetectionSeconds.Record(ctx, elapsed.Seconds(), metric.WithAttributes(dim))
}

// RecordRejection records a table dropped before evaluation.
func (si *ScanInstruments) RecordRejection(ctx context.Context, code string) {
	if si == nil {
		return
	}
	si.TablesRejected.Add(ctx, 1, metric.WithAttributes(attribute.String("code", code)))
}
