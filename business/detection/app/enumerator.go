// Package app contains application services and port definitions for the detection context.
package app

import (
	"github.com/fxlab/arbitrage-scanner/business/detection/domain"
)

// Enumerator produces every ordered sequence of k distinct currency
// indices drawn from {0..n-1}: each k-subset in ascending combination
// order, then every permutation of the subset in lexicographic order.
// Total count is C(n,k)·k!. Stateless and pure in (n, k).
type Enumerator struct{}

// Walk invokes fn once per sequence, in emission order. The Transaction
// passed to fn is freshly allocated and may be retained.
func (Enumerator) Walk(n, k int, fn func(domain.Transaction)) {
	if k < 2 || k > n {
		return
	}

	comb := make([]int, k)
	perm := make(domain.Transaction, 0, k)
	used := make([]bool, k)

	var permute func()
	permute = func() {
		if len(perm) == k {
			t := make(domain.Transaction, k)
			copy(t, perm)
			fn(t)
			return
		}
		for i := 0; i < k; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			perm = append(perm, comb[i])
			permute()
			perm = perm[:len(perm)-1]
			used[i] = false
		}
	}

	var choose func(start, depth int)
	choose = func(start, depth int) {
		if depth == k {
			permute()
			return
		}
		// enough indices must remain to fill the subset
		for v := start; v <= n-(k-depth); v++ {
			comb[depth] = v
			choose(v+1, depth+1)
		}
	}

	choose(0, 0)
}

// Sequences collects the full enumeration into a slice. Intended for
// small n; Walk avoids materializing the factorial-size result.
func (e Enumerator) Sequences(n, k int) []domain.Transaction {
	var out []domain.Transaction
	e.Walk(n, k, func(t domain.Transaction) {
		out = append(out, t)
	})
	return out
}
