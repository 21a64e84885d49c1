// Package di contains dependency injection tokens for the detection context.
package di

import (
	"github.com/fxlab/arbitrage-scanner/business/detection/app"
	"github.com/fxlab/arbitrage-scanner/internal/di"
)

// Public service tokens - exposed to other modules
var (
	Scanner = di.NewToken[*app.Scanner]("detection.Scanner")
)

// Private dependency tokens - internal to the detection module
var (
	Evaluator = di.NewToken[*app.Evaluator]("detection:evaluator")
	Reporter  = di.NewToken[app.Reporter]("detection:reporter")
)

// Helper functions for type-safe access
func GetScanner(c di.ServiceRegistry) *app.Scanner {
	return di.GetToken(c, Scanner)
}

func GetEvaluator(c di.ServiceRegistry) *app.Evaluator {
	return di.GetToken(c, Evaluator)
}

func GetReporter(c di.ServiceRegistry) app.Reporter {
	return di.GetToken(c, Reporter)
}
