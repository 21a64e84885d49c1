// Package ratelimit provides a wrapper around golang.org/x/time/rate.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter wraps rate.Limiter with convenience methods. The scanner uses
// it to throttle progress events while grinding through factorial-size
// enumerations, so a large table does not flood the log or the TUI.
type Limiter struct {
	limiter *rate.Limiter
}

// New creates a limiter allowing eventsPerSecond sustained events with a
// burst of one.
func New(eventsPerSecond float64) *Limiter {
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(eventsPerSecond), 1),
	}
}

// NewWithBurst creates a limiter with an explicit burst.
func NewWithBurst(eventsPerSecond float64, burst int) *Limiter {
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(eventsPerSecond), burst),
	}
}

// Allow reports whether an event may happen now.
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}

// Wait blocks until a token is available or the context is cancelled.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// SetLimit updates the sustained rate.
func (l *Limiter) SetLimit(eventsPerSecond float64) {
	l.limiter.SetLimit(rate.Limit(eventsPerSecond))
}

// Tokens returns the current number of available tokens.
func (l *Limiter) Tokens() float64 {
	return l.limiter.Tokens()
}
