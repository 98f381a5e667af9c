package ledger

import "sync"

// Ledger is the append-only invocation history for one mock instance.
//
// Insertion order, temporal order and sequence-number order are the same
// order: Append holds the ledger lock across "issue seq, write record", so a
// reader can never observe records out of sequence. Records are never
// removed or reordered.
//
// Ledger lifetime equals mock lifetime. No two mocks share a ledger, but all
// ledgers created by one Registry share the run clock.
type Ledger struct {
	mockID string
	clock  *Clock

	mu      sync.Mutex
	records []Record
}

// New creates an empty ledger for the given mock, stamping records from the
// shared run clock.
func New(mockID string, clock *Clock) *Ledger {
	return &Ledger{mockID: mockID, clock: clock}
}

// MockID returns the identity of the mock this ledger records for.
func (l *Ledger) MockID() string {
	return l.mockID
}

// Append records one intercepted invocation and returns its sequence number.
// It never fails. Arguments are snapshotted before the record is stored.
//
// The lock covers both the clock call and the slice append. That single
// critical section is what keeps sequence numbers unique and in record order
// when exercise code calls a mock from more than one goroutine.
func (l *Ledger) Append(op string, args []any) int64 {
	snapped := snapshotArgs(args)

	l.mu.Lock()
	defer l.mu.Unlock()

	seq := l.clock.Next()
	l.records = append(l.records, Record{
		MockID: l.mockID,
		Op:     op,
		Args:   snapped,
		Seq:    seq,
	})
	return seq
}

// Snapshot returns a copy of the current record sequence. The copy reflects
// every append that completed before the call; verification code operates on
// snapshots only and never mutates ledger state.
func (l *Ledger) Snapshot() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of recorded invocations.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}
