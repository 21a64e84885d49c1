package infra

import (
	"testing"

	"github.com/fxlab/arbitrage-scanner/business/detection/domain"
)

func TestRenderResult_Chains(t *testing.T) {
	result := &domain.TableResult{
		Table:     1,
		Dimension: 3,
		Chains: []domain.Chain{
			{Sequence: []int{1, 2, 1}, Rate: 1.02},
			{Sequence: []int{1, 2, 3, 1}, Rate: 1.05},
		},
	}

	want := "1-2-1\n1-2-3-1\n\n"
	if got := RenderResult(result); got != want {
		t.Fatalf("rendered %q, want %q", got, want)
	}
}

func TestRenderResult_Sentinel(t *testing.T) {
	// the verdict line is the same regardless of table dimension
	for _, n := range []int{2, 5, 10} {
		result := &domain.TableResult{Table: 1, Dimension: n}

		want := NoArbitrageSentinel + "\n\n"
		if got := RenderResult(result); got != want {
			t.Fatalf("n=%d: rendered %q, want %q", n, got, want)
		}
	}
}

func TestRenderResult_Idempotent(t *testing.T) {
	result := &domain.TableResult{
		Table:     2,
		Dimension: 2,
		Chains:    []domain.Chain{{Sequence: []int{2, 1, 2}, Rate: 1.5}},
	}

	first := RenderResult(result)
	second := RenderResult(result)
	if first != second {
		t.Fatalf("renders differ: %q vs %q", first, second)
	}
}
