package attest

import (
	"github.com/roach88/attest/internal/ledger"
	"github.com/roach88/attest/internal/match"
	"github.com/roach88/attest/internal/verify"
)

// CallVerifier is the first step of the fluent verification surface: it
// binds a mock and a count condition and waits for the Call that names the
// operation under scrutiny.
type CallVerifier struct {
	mock *Mock
	cond match.Count
}

// Verify starts a verification against m. With no count condition the
// default is exactly one matching call. At most one condition may be given.
func Verify(m *Mock, cond ...CountMatcher) *CallVerifier {
	c := match.Count(match.Exactly(1))
	if len(cond) > 0 {
		c = cond[0]
	}
	return &CallVerifier{mock: m, cond: c}
}

// Call supplies the operation identity and arguments to check and runs the
// query immediately: scan the mock's ledger, judge the matched count, fail
// synchronously on mismatch.
//
// Each element of argsOrMatchers is either an ArgMatcher or a raw value,
// which is shorthand for Eq(value). The returned Verification is consumable
// by InOrder.
func (cv *CallVerifier) Call(op string, argsOrMatchers ...any) (*Verification, error) {
	matchers := match.Coerce(argsOrMatchers)
	matched, err := verify.Count(cv.mock.ledger.Snapshot(), op, matchers, cv.cond)
	if err != nil {
		return nil, err
	}
	return &Verification{mock: cv.mock, op: op, records: matched}, nil
}

// Verification is the matched subsequence of one passed verification query,
// in sequence order.
type Verification struct {
	mock    *Mock
	op      string
	records []ledger.Record
}

// Op returns the verified operation identity.
func (v *Verification) Op() string { return v.op }

// NumMatches returns how many recorded calls the query matched.
func (v *Verification) NumMatches() int { return len(v.records) }

// Seqs returns the sequence numbers of the matched calls, in order.
func (v *Verification) Seqs() []int64 {
	out := make([]int64, len(v.records))
	for i, rec := range v.records {
		out[i] = rec.Seq
	}
	return out
}

// InOrder checks that the verifications occurred in the given relative
// order: one matched call per verification, strictly increasing in sequence,
// tolerant of interleaved unrelated calls. The verifications may span
// different mocks; the shared registry clock makes the comparison exact.
//
// A nil verification (for example from an earlier failed Verify call) or one
// with no matched records is reported as an empty-order-query failure before
// any order is considered.
func InOrder(vs ...*Verification) error {
	queries := make([]verify.OrderedQuery, len(vs))
	for i, v := range vs {
		if v == nil {
			queries[i] = verify.OrderedQuery{Op: "<failed verification>"}
			continue
		}
		queries[i] = verify.OrderedQuery{Op: v.mock.name + "." + v.op, Records: v.records}
	}
	return verify.CheckOrder(queries)
}

// VerifyNoInteraction passes only if none of the mocks have recorded any
// call. The check is read-only and does not block future calls.
func VerifyNoInteraction(mocks ...*Mock) error {
	for _, m := range mocks {
		if err := verify.NoInteraction(m.guard); err != nil {
			return err
		}
	}
	return nil
}

// IsCountError reports whether err is a failed count condition.
func IsCountError(err error) bool { return verify.IsCountError(err) }

// IsOrderError reports whether err is an order violation from InOrder.
func IsOrderError(err error) bool { return verify.IsOrderError(err) }

// IsEmptyOrderQueryError reports whether err is the InOrder precondition
// failure raised when a verification matched nothing.
func IsEmptyOrderQueryError(err error) bool { return verify.IsEmptyOrderQueryError(err) }

// IsUnexpectedInteractionError reports whether err is a failed
// no-interaction or no-further-interaction guard.
func IsUnexpectedInteractionError(err error) bool { return verify.IsUnexpectedInteractionError(err) }

// VerifyNoFurtherInteraction is the checkpoint discipline: the first call on
// a mock records the current ledger length and passes; each later call fails
// if the ledger has grown past that checkpoint.
//
// The guard is advisory. It never prevents a call from being recorded; it
// only changes what this verification reports.
func VerifyNoFurtherInteraction(mocks ...*Mock) error {
	for _, m := range mocks {
		if !m.guard.Armed() {
			m.guard.Checkpoint()
			continue
		}
		if err := verify.NoFurtherInteraction(m.guard); err != nil {
			return err
		}
	}
	return nil
}
