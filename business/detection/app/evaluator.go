package app

import (
	"context"
	"math"

	"go.opentelemetry.io/otel/attribute"

	"github.com/fxlab/arbitrage-scanner/business/detection/domain"
	"github.com/fxlab/arbitrage-scanner/internal/apm"
	"github.com/fxlab/arbitrage-scanner/internal/logger"
	"github.com/fxlab/arbitrage-scanner/internal/ratelimit"
)

// ProfitEpsilon is the tolerance band above break-even. Compounding many
// float64 multiplications accumulates rounding error; a strict > 1 test
// would flag cycles that are 1 up to noise, so values in (1, 1+ε] are
// treated as break-even rather than arbitrage.
const ProfitEpsilon = 0.01

// Evaluator finds every profitable closed chain of length 2..N in a
// completed rate matrix. Each Detect call builds open-path values
// incrementally: the length-K loop runs ascending so that every
// transaction's (K-1)-prefix was already evaluated and memoized in the
// previous pass, making each extension O(1) instead of O(K).
type Evaluator struct {
	enumerator Enumerator
	tracer     apm.Tracer
	logger     logger.LoggerInterface
	progress   *ratelimit.Limiter
}

// NewEvaluator creates an Evaluator. progressPerSec throttles per-length
// progress logging on large tables.
func NewEvaluator(log logger.LoggerInterface, progressPerSec float64) *Evaluator {
	return &Evaluator{
		tracer:   apm.NewTracer("detection.evaluator"),
		logger:   log,
		progress: ratelimit.New(progressPerSec),
	}
}

// Detect returns all profitable chains in emission order: ascending
// length, combination order, then permutation order. The memo lives and
// dies inside this call; nothing is carried across tables.
func (e *Evaluator) Detect(ctx context.Context, m *domain.RateMatrix) []domain.Chain {
	ctx, span := e.tracer.StartSpanFromContext(ctx, "detection.detect")
	defer span.End()

	n := m.Dimension()
	span.SetAttributes(attribute.Int("dimension", n))

	memo := domain.NewMemo()
	var chains []domain.Chain

	for k := 2; k <= n; k++ {
		e.enumerator.Walk(n, k, func(t domain.Transaction) {
			last := len(t) - 1

			open, ok := memo.Get(t.Prefix())
			if ok {
				open *= m.Rate(t[last-1], t[last])
			} else {
				// only length-2 transactions have no memoized prefix
				open = m.Rate(t[0], t[1])
			}
			memo.Put(t, open)

			cycle := open * m.Rate(t[last], t[0])
			if profitable(cycle) {
				chains = append(chains, domain.NewChain(t, cycle))
			}
		})

		if e.progress.Allow() {
			e.logger.Debug(ctx, "length pass complete",
				"length", k,
				"memo_size", memo.Len(),
				"chains", len(chains),
			)
		}
	}

	span.SetAttributes(attribute.Int("chains", len(chains)))
	return chains
}

// profitable applies the decision rule. Non-finite compounded values
// never register as profitable.
func profitable(cycle float64) bool {
	if math.IsNaN(cycle) || math.IsInf(cycle, 0) {
		return false
	}
	return cycle > 1+ProfitEpsilon
}
