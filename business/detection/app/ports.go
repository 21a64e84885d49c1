package app

import (
	"context"

	"github.com/fxlab/arbitrage-scanner/business/detection/domain"
)

// Reporter defines the interface for delivering scan results. The core
// does not depend on how or whether results are rendered.
type Reporter interface {
	// Start initializes the reporter.
	Start(ctx context.Context) error

	// ReportTable delivers one table's result in scan order.
	ReportTable(result *domain.TableResult)

	// Stop gracefully shuts down the reporter.
	Stop() error
}
