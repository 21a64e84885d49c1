// Package rates implements the rates bounded context for table input.
package rates

import (
	"context"

	"github.com/fxlab/arbitrage-scanner/business/rates/app"
	ratesDI "github.com/fxlab/arbitrage-scanner/business/rates/di"
	"github.com/fxlab/arbitrage-scanner/business/rates/infra/file"
	"github.com/fxlab/arbitrage-scanner/internal/config"
	"github.com/fxlab/arbitrage-scanner/internal/di"
	"github.com/fxlab/arbitrage-scanner/internal/logger"
	"github.com/fxlab/arbitrage-scanner/internal/monolith"
)

// Module implements the rates bounded context.
type Module struct{}

// RegisterServices registers all rates services with the DI container.
func (m *Module) RegisterServices(c di.Container) error {
	// Register TableSource (file-backed) - private dependency
	di.RegisterToken(c, ratesDI.TableSource, func(sr di.ServiceRegistry) app.TableSource {
		cfg := sr.Get("config").(*config.Config)

		source, err := file.NewSource(cfg.Input.Path, cfg.Input.Encoding)
		if err != nil {
			panic("failed to open table source: " + err.Error())
		}
		return source
	})

	// Register RatesService (public - exposed to other modules)
	di.RegisterToken(c, ratesDI.RatesService, func(sr di.ServiceRegistry) *app.RatesService {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)

		serviceCfg := app.ServiceConfig{
			MaxDimension:   cfg.Detection.MaxDimension,
			RejectBadRates: cfg.Detection.RejectBadRates,
		}

		return app.NewRatesService(ratesDI.GetTableSource(sr), serviceCfg, log)
	})

	return nil
}

// Startup initializes the rates module.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	mono.Logger().Info(ctx, "rates module started",
		"input", mono.Config().Input.Path,
		"encoding", mono.Config().Input.Encoding,
	)
	return nil
}
