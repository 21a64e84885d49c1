// Package di contains dependency injection tokens for the rates context.
package di

import (
	"github.com/fxlab/arbitrage-scanner/business/rates/app"
	"github.com/fxlab/arbitrage-scanner/internal/di"
)

// Public service tokens - exposed to other modules
var (
	RatesService = di.NewToken[*app.RatesService]("rates.RatesService")
)

// Private dependency tokens - internal to the rates module
var (
	TableSource = di.NewToken[app.TableSource]("rates:tableSource")
)

// Helper functions for type-safe access
func GetRatesService(c di.ServiceRegistry) *app.RatesService {
	return di.GetToken(c, RatesService)
}

func GetTableSource(c di.ServiceRegistry) app.TableSource {
	return di.GetToken(c, TableSource)
}
