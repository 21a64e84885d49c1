package app

import (
	"context"
	"io"
	"math"
	"testing"

	"github.com/fxlab/arbitrage-scanner/business/detection/domain"
	"github.com/fxlab/arbitrage-scanner/internal/logger"
)

func testLogger() logger.LoggerInterface {
	return logger.New(io.Discard, logger.LevelError, "test", nil)
}

// Helper to build a matrix from off-diagonal rows
func mustMatrix(t *testing.T, n int, rows [][]float64) *domain.RateMatrix {
	t.Helper()
	m, err := domain.NewRateMatrix(n, rows)
	if err != nil {
		t.Fatalf("building %dx%d matrix: %v", n, n, err)
	}
	return m
}

func chainStrings(chains []domain.Chain) []string {
	out := make([]string, len(chains))
	for i, c := range chains {
		out[i] = c.String()
	}
	return out
}

func TestEvaluator_NeutralMarketHasNoArbitrage(t *testing.T) {
	// every off-diagonal rate exactly 1: no false positives
	e := NewEvaluator(testLogger(), 100)

	for _, n := range []int{2, 3, 4, 5} {
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = make([]float64, n-1)
			for j := range rows[i] {
				rows[i][j] = 1.0
			}
		}

		chains := e.Detect(context.Background(), mustMatrix(t, n, rows))
		if len(chains) != 0 {
			t.Fatalf("n=%d: neutral market produced %v", n, chainStrings(chains))
		}
	}
}

func TestEvaluator_TwoCurrencyBoundary(t *testing.T) {
	tests := []struct {
		name string
		r    float64 // rate 1 -> 2
		s    float64 // rate 2 -> 1
		want []string
	}{
		{
			name: "round_trip_inside_tolerance_band",
			r:    1.0099,
			s:    1.0,
			want: nil,
		},
		{
			name: "round_trip_exactly_at_threshold",
			r:    1.01,
			s:    1.0,
			want: nil,
		},
		{
			name: "round_trip_above_threshold",
			r:    1.2,
			s:    0.85, // 1.2 * 0.85 = 1.02
			want: []string{"1-2-1", "2-1-2"},
		},
	}

	e := NewEvaluator(testLogger(), 100)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustMatrix(t, 2, [][]float64{{tt.r}, {tt.s}})
			got := chainStrings(e.Detect(context.Background(), m))

			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("chain %d: got %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEvaluator_ProfitableTriangle(t *testing.T) {
	// 1->2->3->1 compounds to 1.05; no 2-cycle exceeds the threshold.
	// Every rotation of the profitable cycle is an enumerated
	// transaction with the same compounded rate, so all three are
	// reported, in enumeration order.
	rows := [][]float64{
		{1.05, 1.0}, // from 1: to 2, to 3
		{0.9, 1.0},  // from 2: to 1, to 3
		{1.0, 1.0},  // from 3: to 1, to 2
	}

	e := NewEvaluator(testLogger(), 100)
	got := chainStrings(e.Detect(context.Background(), mustMatrix(t, 3, rows)))

	want := []string{"1-2-3-1", "2-3-1-2", "3-1-2-3"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("chain %d: got %s, want %s", i, got[i], want[i])
		}
	}

	// compounded rate survives on the chain value
	chains := e.Detect(context.Background(), mustMatrix(t, 3, rows))
	if diff := math.Abs(chains[0].Rate - 1.05); diff > 1e-9 {
		t.Fatalf("chain rate %v, want 1.05", chains[0].Rate)
	}
}

func TestEvaluator_EmissionOrderAscendingLength(t *testing.T) {
	// both a 2-cycle and the triangle are profitable; shorter first
	rows := [][]float64{
		{1.2, 1.1},
		{0.9, 1.05},
		{1.0, 1.0},
	}

	e := NewEvaluator(testLogger(), 100)
	chains := e.Detect(context.Background(), mustMatrix(t, 3, rows))

	if len(chains) < 2 {
		t.Fatalf("expected multiple chains, got %v", chainStrings(chains))
	}
	for i := 1; i < len(chains); i++ {
		if chains[i].Hops() < chains[i-1].Hops() {
			t.Fatalf("chains out of length order: %v", chainStrings(chains))
		}
	}
}

func TestEvaluator_MemoIsolationAcrossRuns(t *testing.T) {
	// a detection run must not leak memoized values into the next
	e := NewEvaluator(testLogger(), 100)

	profitable := [][]float64{
		{1.05, 1.0},
		{0.9, 1.0},
		{1.0, 1.0},
	}
	neutral := [][]float64{
		{1.0, 1.0},
		{1.0, 1.0},
		{1.0, 1.0},
	}

	baseline := chainStrings(e.Detect(context.Background(), mustMatrix(t, 3, neutral)))

	if got := e.Detect(context.Background(), mustMatrix(t, 3, profitable)); len(got) == 0 {
		t.Fatal("profitable matrix yielded no chains")
	}

	after := chainStrings(e.Detect(context.Background(), mustMatrix(t, 3, neutral)))

	if len(baseline) != 0 || len(after) != 0 {
		t.Fatalf("neutral matrix results differ across runs: before=%v after=%v", baseline, after)
	}
}

func TestEvaluator_NonFiniteNeverProfitable(t *testing.T) {
	tests := []struct {
		name string
		r    float64
		s    float64
	}{
		{name: "positive_infinity", r: math.Inf(1), s: 1.0},
		{name: "nan_rate", r: math.NaN(), s: 2.0},
		{name: "zero_times_infinity", r: 0, s: math.Inf(1)},
	}

	e := NewEvaluator(testLogger(), 100)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustMatrix(t, 2, [][]float64{{tt.r}, {tt.s}})
			if got := e.Detect(context.Background(), m); len(got) != 0 {
				t.Fatalf("degenerate rates reported as profitable: %v", chainStrings(got))
			}
		})
	}
}

func TestProfitable(t *testing.T) {
	tests := []struct {
		name  string
		cycle float64
		want  bool
	}{
		{name: "break_even", cycle: 1.0, want: false},
		{name: "inside_band", cycle: 1.0099, want: false},
		{name: "at_threshold", cycle: 1.01, want: false},
		{name: "above_threshold", cycle: 1.0101, want: true},
		{name: "large_gain", cycle: 2.5, want: true},
		{name: "loss", cycle: 0.5, want: false},
		{name: "zero", cycle: 0, want: false},
		{name: "infinity", cycle: math.Inf(1), want: false},
		{name: "nan", cycle: math.NaN(), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := profitable(tt.cycle); got != tt.want {
				t.Fatalf("profitable(%v) = %v, want %v", tt.cycle, got, tt.want)
			}
		})
	}
}
