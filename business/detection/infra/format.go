// Package infra contains infrastructure adapters for the detection context.
package infra

import (
	"strings"

	"github.com/fxlab/arbitrage-scanner/business/detection/domain"
)

// NoArbitrageSentinel is the fixed verdict line for an empty chain list.
const NoArbitrageSentinel = "no arbitrage sequence exists"

// RenderResult renders one table's result per the output contract: one
// hyphen-joined 1-based chain per line in emission order, or the
// sentinel line, followed by a blank separator line. Rendering is pure;
// the same result always produces identical text.
func RenderResult(result *domain.TableResult) string {
	var sb strings.Builder

	if result.HasArbitrage() {
		for _, chain := range result.Chains {
			sb.WriteString(chain.String())
			sb.WriteByte('\n')
		}
	} else {
		sb.WriteString(NoArbitrageSentinel)
		sb.WriteByte('\n')
	}

	sb.WriteByte('\n')
	return sb.String()
}
