// Package ledger implements the append-only invocation history that backs
// mock verification.
//
// One Ledger exists per mock instance and records every intercepted call as
// an immutable Record. Records carry a sequence number from a Clock shared by
// every ledger in the same test run, so ordering queries can compare calls
// across mocks, not just within one.
//
// ARCHITECTURE:
//
// Append Path:
// 1. The proxy layer resolves an intercepted call to (operation, args)
// 2. Ledger.Append snapshots the arguments
// 3. Inside the ledger's critical section the shared clock issues the next
//    sequence number and the record is appended
//
// The append critical section is the only concurrency control in the
// package. Exercise code is expected to be single-threaded, but when a test
// drives a mock from multiple goroutines the mutex keeps sequence numbers
// unique and the record order identical to sequence order.
//
// Read Path:
// Verification never mutates a ledger. Snapshot returns a copy of the record
// slice taken under the lock, so a verifier always sees a consistent prefix
// of history.
//
// CRITICAL PATTERNS:
//
// Logical Clock:
// All records are stamped with a monotonic seq counter from Clock.Next().
// NEVER use wall-clock timestamps for ordering.
//
// Argument Snapshots:
// Arguments are deep-copied at append time. Later mutation of a map or slice
// the exercise code passed in must not rewrite history.
package ledger
