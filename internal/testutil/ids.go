// Package testutil provides deterministic helpers for tests in this module.
package testutil

import "sync"

// FixedIDs returns predetermined mock identities in order.
//
// This enables deterministic test execution and golden trace comparison:
// tests provide known identities and verify exact trace output instead of
// chasing fresh UUIDs.
//
// Thread-safety: safe for concurrent use via internal mutex.
type FixedIDs struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedIDs creates a generator that returns ids in order.
//
// Example:
//
//	gen := testutil.NewFixedIDs("mailer-1", "auditor-1")
//	gen.Generate() // "mailer-1"
//	gen.Generate() // "auditor-1"
//	gen.Generate() // panic: all ids exhausted
func NewFixedIDs(ids ...string) *FixedIDs {
	return &FixedIDs{ids: ids}
}

// Generate returns the next predetermined identity.
//
// Panics if all identities have been consumed. This is a fail-fast approach
// to catch test misconfiguration (test created more mocks than expected).
func (g *FixedIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		panic("FixedIDs: all ids exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}
