package ledger

import "sync/atomic"

// Clock is the monotonic logical clock that orders invocations.
//
// Every ledger in one test run shares a single clock, so sequence numbers
// form a total order across all mocks. This ensures:
// - Deterministic ordering (no wall-clock race conditions)
// - Cross-mock order verification is a plain integer comparison
// - A number is never reissued, even after a mock is discarded
//
// Thread-safety: Clock is safe for concurrent use (atomic operations).
// Sequence scope is per test run: create a fresh clock (via a fresh
// Registry) for each test case rather than sharing one across cases.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a new clock starting at 0.
// The first call to Next returns 1.
func NewClock() *Clock {
	return &Clock{}
}

// Next returns the next sequence number and increments the clock.
// Calls are linearizable - each call returns a unique, increasing value.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without incrementing.
// Useful for checkpointing and for asserting how many numbers were issued.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
