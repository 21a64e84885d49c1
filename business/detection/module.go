// Package detection implements the detection bounded context for arbitrage scanning.
package detection

import (
	"context"

	"github.com/fxlab/arbitrage-scanner/business/detection/app"
	detectionDI "github.com/fxlab/arbitrage-scanner/business/detection/di"
	"github.com/fxlab/arbitrage-scanner/business/detection/domain"
	"github.com/fxlab/arbitrage-scanner/business/detection/infra"
	ratesDI "github.com/fxlab/arbitrage-scanner/business/rates/di"
	"github.com/fxlab/arbitrage-scanner/internal/config"
	"github.com/fxlab/arbitrage-scanner/internal/di"
	"github.com/fxlab/arbitrage-scanner/internal/logger"
	"github.com/fxlab/arbitrage-scanner/internal/metrics"
	"github.com/fxlab/arbitrage-scanner/internal/monolith"
	"github.com/fxlab/arbitrage-scanner/pkg/ui"
)

// Module implements the detection bounded context.
type Module struct{}

// RegisterServices registers all detection services with the DI container.
func (m *Module) RegisterServices(c di.Container) error {
	// Register Evaluator - private dependency
	di.RegisterToken(c, detectionDI.Evaluator, func(sr di.ServiceRegistry) *app.Evaluator {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)

		return app.NewEvaluator(log, cfg.Detection.ProgressPerSec)
	})

	// Register Reporter - private dependency, mode-dependent
	di.RegisterToken(c, detectionDI.Reporter, func(sr di.ServiceRegistry) app.Reporter {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)

		fileReporter := infra.NewFileReporter(cfg.Output.Path, log)

		if cfg.Output.TUIMode {
			tuiReporter := infra.NewTUIReporter(
				func(result *domain.TableResult) { ui.Send(ui.TableResultMsg{Result: result}) },
				func() { ui.Send(ui.ScanDoneMsg{}) },
			)
			return infra.NewMultiReporter(fileReporter, tuiReporter)
		}

		return infra.NewMultiReporter(fileReporter, infra.NewConsoleReporter())
	})

	// Register Scanner (public - exposed to main)
	di.RegisterToken(c, detectionDI.Scanner, func(sr di.ServiceRegistry) *app.Scanner {
		log := sr.Get("logger").(logger.LoggerInterface)
		instruments := sr.Get("instruments").(*metrics.ScanInstruments)

		return app.NewScanner(
			ratesDI.GetRatesService(sr),
			detectionDI.GetEvaluator(sr),
			detectionDI.GetReporter(sr),
			instruments,
			log,
		)
	})

	return nil
}

// Startup initializes the detection module.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	mono.Logger().Info(ctx, "detection module started",
		"max_dimension", mono.Config().Detection.MaxDimension,
		"output", mono.Config().Output.Path,
	)
	return nil
}
