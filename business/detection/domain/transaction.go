package domain

// Transaction is an open, simple directed path of 0-based currency
// indices, not yet closed into a cycle. All entries are pairwise
// distinct.
type Transaction []int

// Prefix returns the transaction without its final hop.
func (t Transaction) Prefix() Transaction {
	return t[:len(t)-1]
}

// Key packs the index sequence into a string for memo lookup. Indices
// fit a byte each (see MaxMatrixDimension).
func (t Transaction) Key() string {
	b := make([]byte, len(t))
	for i, idx := range t {
		b[i] = byte(idx)
	}
	return string(b)
}

// Memo caches the compounded open-path value of each evaluated
// transaction, enabling O(1) extension by one hop. A Memo is scoped to
// exactly one detection run: entries from one rate table silently
// corrupt results for the next, so it must never be shared or reused.
type Memo struct {
	values map[string]float64
}

// NewMemo creates an empty memo.
func NewMemo() *Memo {
	return &Memo{values: make(map[string]float64)}
}

// Get returns the cached open-path value for t.
func (m *Memo) Get(t Transaction) (float64, bool) {
	v, ok := m.values[t.Key()]
	return v, ok
}

// Put stores the open-path value for t.
func (m *Memo) Put(t Transaction, value float64) {
	m.values[t.Key()] = value
}

// Len returns the number of cached transactions.
func (m *Memo) Len() int {
	return len(m.values)
}
