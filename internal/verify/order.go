package verify

import (
	"fmt"

	"github.com/roach88/attest/internal/ledger"
)

// OrderedQuery is one step of an order check: the matched records of a
// verification query, in sequence order, plus the operation identity for
// diagnostics.
type OrderedQuery struct {
	Op      string
	Records []ledger.Record
}

// CheckOrder verifies that the queries can be placed in the given relative
// order: there exists an assignment of one record per query whose sequence
// numbers are strictly increasing.
//
// The algorithm is greedy subsequence matching. For each query in turn it
// takes the first record with a sequence number greater than the previous
// placement. Advancing to the earliest usable record never forecloses a
// later valid choice - any record a non-greedy strategy could have left for
// a later step still has a larger sequence number than the greedy pick - so
// greedy failure means no valid interleaving exists at all.
//
// Unrelated calls interleaved between the placements are invisible here:
// only relative order among the given queries is enforced, never contiguity
// or exclusivity.
//
// A query with zero records is a precondition failure (there is nothing to
// place), reported as CodeEmptyOrderQuery and checked before any placement.
func CheckOrder(queries []OrderedQuery) error {
	for i, q := range queries {
		if len(q.Records) == 0 {
			return &Error{
				Code:     CodeEmptyOrderQuery,
				Op:       q.Op,
				Expected: fmt.Sprintf("at least one matching call for ordered query %d", i+1),
				Actual:   "no matching calls",
			}
		}
	}

	lastSeq := int64(-1)
	lastOp := ""
	for _, q := range queries {
		placed := false
		for _, rec := range q.Records {
			if rec.Seq > lastSeq {
				lastSeq = rec.Seq
				lastOp = q.Op
				placed = true
				break
			}
		}
		if !placed {
			return &Error{
				Code:       CodeOrderViolation,
				Op:         q.Op,
				Expected:   fmt.Sprintf("a call to %s after %s (seq > %d)", q.Op, lastOp, lastSeq),
				Actual:     fmt.Sprintf("latest matching call is %s", q.Records[len(q.Records)-1]),
				NearMisses: q.Records,
			}
		}
	}
	return nil
}
