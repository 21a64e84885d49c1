// Package currency maps table positions to display labels.
package currency

import (
	"strconv"
	"strings"
)

// Registry resolves 1-based currency numbers to display labels.
// Labels are optional: positions without one fall back to their number,
// which keeps the numeric output contract intact.
type Registry struct {
	labels []string
}

// NewRegistry creates a registry from an ordered label list. labels[0]
// names currency 1, labels[1] currency 2, and so on.
func NewRegistry(labels []string) *Registry {
	return &Registry{labels: labels}
}

// Label returns the display label for a 1-based currency number.
func (r *Registry) Label(num int) string {
	if num >= 1 && num <= len(r.labels) && r.labels[num-1] != "" {
		return r.labels[num-1]
	}
	return strconv.Itoa(num)
}

// Annotate renders a 1-based chain using labels, or "" when no position
// in the chain has a label (nothing to add over the numeric form).
func (r *Registry) Annotate(chain []int) string {
	labeled := false
	parts := make([]string, len(chain))
	for i, num := range chain {
		parts[i] = r.Label(num)
		if parts[i] != strconv.Itoa(num) {
			labeled = true
		}
	}
	if !labeled {
		return ""
	}
	return strings.Join(parts, "→")
}

// Size returns the number of configured labels.
func (r *Registry) Size() int {
	return len(r.labels)
}
