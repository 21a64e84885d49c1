package domain

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Chain is a profitable closed trading cycle. Sequence holds 1-based
// currency numbers with the first repeated at the end, e.g. [1 2 3 1].
type Chain struct {
	Sequence []int
	Rate     float64 // compounded rate of the full cycle
}

// NewChain closes a transaction into a display chain, shifting indices
// to 1-based numbering.
func NewChain(t Transaction, rate float64) Chain {
	seq := make([]int, 0, len(t)+1)
	for _, idx := range t {
		seq = append(seq, idx+1)
	}
	seq = append(seq, t[0]+1)

	return Chain{Sequence: seq, Rate: rate}
}

// String renders the chain in the output contract form "1-2-3-1".
func (c Chain) String() string {
	parts := make([]string, len(c.Sequence))
	for i, num := range c.Sequence {
		parts[i] = strconv.Itoa(num)
	}
	return strings.Join(parts, "-")
}

// Hops returns the number of conversions in the closed cycle.
func (c Chain) Hops() int {
	return len(c.Sequence) - 1
}

// ProfitPct returns the round-trip return as a display percentage,
// e.g. 5 for a compounded rate of 1.05. Zero for non-finite rates.
func (c Chain) ProfitPct() decimal.Decimal {
	if math.IsNaN(c.Rate) || math.IsInf(c.Rate, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(c.Rate).
		Sub(decimal.NewFromInt(1)).
		Mul(decimal.NewFromInt(100))
}

// TableResult is the outcome of scanning one rate table.
type TableResult struct {
	Table     int // 1-based position of the table in the input
	Dimension int
	Chains    []Chain
	Elapsed   time.Duration
}

// HasArbitrage reports whether any profitable chain was found.
func (r *TableResult) HasArbitrage() bool {
	return len(r.Chains) > 0
}
