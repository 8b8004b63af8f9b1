package services

import "time"

// Latency models the round trip of a real service by suspending each public
// operation for a fixed duration before its logic runs. It changes only when
// results become observable, never what they are.
type Latency struct {
	d time.Duration
}

// NewLatency returns a simulator with the given per-operation delay.
// A zero or negative delay disables the suspension (useful in tests).
func NewLatency(d time.Duration) *Latency {
	return &Latency{d: d}
}

// Wait blocks for the configured delay. The sleep deliberately ignores
// context cancellation: once an operation has been issued it runs to
// completion and its side effect, if any, is always applied.
func (l *Latency) Wait() {
	if l == nil || l.d <= 0 {
		return
	}
	time.Sleep(l.d)
}
