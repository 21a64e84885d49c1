package app

import (
	"fmt"
	"testing"

	"github.com/fxlab/arbitrage-scanner/business/detection/domain"
)

func TestEnumerator_Completeness(t *testing.T) {
	// C(4,3)·3! = 24 distinct ordered triples over {0,1,2,3}
	var e Enumerator
	seqs := e.Sequences(4, 3)

	if len(seqs) != 24 {
		t.Fatalf("got %d sequences, want 24", len(seqs))
	}

	seen := make(map[string]bool, len(seqs))
	for _, s := range seqs {
		if len(s) != 3 {
			t.Fatalf("sequence %v has length %d, want 3", s, len(s))
		}
		distinct := make(map[int]bool, 3)
		for _, idx := range s {
			if idx < 0 || idx > 3 {
				t.Fatalf("sequence %v contains out-of-range index %d", s, idx)
			}
			distinct[idx] = true
		}
		if len(distinct) != 3 {
			t.Fatalf("sequence %v repeats an index", s)
		}
		key := s.Key()
		if seen[key] {
			t.Fatalf("sequence %v emitted twice", s)
		}
		seen[key] = true
	}
}

func TestEnumerator_Counts(t *testing.T) {
	tests := []struct {
		n    int
		k    int
		want int
	}{
		{n: 2, k: 2, want: 2},   // C(2,2)·2!
		{n: 3, k: 2, want: 6},   // C(3,2)·2!
		{n: 3, k: 3, want: 6},   // C(3,3)·3!
		{n: 5, k: 3, want: 60},  // C(5,3)·3!
		{n: 5, k: 5, want: 120}, // C(5,5)·5!
	}

	var e Enumerator
	for _, tt := range tests {
		t.Run(fmt.Sprintf("n%d_k%d", tt.n, tt.k), func(t *testing.T) {
			if got := len(e.Sequences(tt.n, tt.k)); got != tt.want {
				t.Fatalf("got %d sequences, want %d", got, tt.want)
			}
		})
	}
}

func TestEnumerator_EmissionOrder(t *testing.T) {
	// Ascending combinations, lexicographic permutations within each
	var e Enumerator
	got := e.Sequences(3, 2)

	want := []domain.Transaction{
		{0, 1}, {1, 0},
		{0, 2}, {2, 0},
		{1, 2}, {2, 1},
	}

	if len(got) != len(want) {
		t.Fatalf("got %d sequences, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Key() != want[i].Key() {
			t.Fatalf("sequence %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEnumerator_InvalidLengths(t *testing.T) {
	var e Enumerator

	if got := e.Sequences(3, 4); got != nil {
		t.Fatalf("k > n should yield nothing, got %v", got)
	}
	if got := e.Sequences(3, 1); got != nil {
		t.Fatalf("k < 2 should yield nothing, got %v", got)
	}
}
