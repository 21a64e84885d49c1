package app

import (
	"context"
	"fmt"

	"github.com/fxlab/arbitrage-scanner/business/rates/domain"
	"github.com/fxlab/arbitrage-scanner/internal/apperror"
	"github.com/fxlab/arbitrage-scanner/internal/logger"
)

// ServiceConfig holds input policy settings.
type ServiceConfig struct {
	// MaxDimension caps N before evaluation. The scan is factorial in N,
	// so this is the caller-imposed bound on runtime.
	MaxDimension int

	// RejectBadRates additionally refuses zero or negative rates.
	RejectBadRates bool
}

// RatesService validates tables from a source before they reach the
// detection core, which must only ever see structurally valid input.
type RatesService struct {
	source TableSource
	config ServiceConfig
	logger logger.LoggerInterface
}

// NewRatesService creates a RatesService.
func NewRatesService(source TableSource, config ServiceConfig, log logger.LoggerInterface) *RatesService {
	return &RatesService{
		source: source,
		config: config,
		logger: log,
	}
}

// Next returns the next validated table, or io.EOF when input is
// exhausted at a table boundary.
func (s *RatesService) Next(ctx context.Context) (*domain.TableInput, error) {
	table, err := s.source.Next(ctx)
	if err != nil {
		return nil, err
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}

	if table.Dimension > s.config.MaxDimension {
		return nil, apperror.Validation(apperror.CodeDimensionCapExceeded,
			fmt.Sprintf("dimension %d, cap %d", table.Dimension, s.config.MaxDimension))
	}

	if s.config.RejectBadRates {
		if err := table.ValidatePositiveRates(); err != nil {
			return nil, err
		}
	}

	s.logger.Debug(ctx, "table read", "dimension", table.Dimension)
	return table, nil
}

// Close releases the underlying source.
func (s *RatesService) Close() error {
	return s.source.Close()
}
