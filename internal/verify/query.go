package verify

import (
	"fmt"
	"strings"

	"github.com/roach88/attest/internal/ledger"
	"github.com/roach88/attest/internal/match"
)

// Scan filters a ledger snapshot down to the records that satisfy the query:
// same operation identity, argument count equal to the matcher count, and
// every argument accepted by its positional matcher.
//
// Arity mismatch is silent exclusion, never an error: a call shape the
// matchers cannot address simply does not match. This keeps overloaded and
// variadic call shapes from crashing verification; the excluded records are
// still returned as near misses for diagnostics.
//
// Scan preserves snapshot order, which is sequence order. It never fails and
// never mutates the ledger.
func Scan(snap []ledger.Record, op string, matchers []match.Arg) (matched, nearMisses []ledger.Record) {
	for _, rec := range snap {
		if rec.Op != op {
			continue
		}
		if recordMatches(rec, matchers) {
			matched = append(matched, rec)
		} else {
			nearMisses = append(nearMisses, rec)
		}
	}
	return matched, nearMisses
}

func recordMatches(rec ledger.Record, matchers []match.Arg) bool {
	if len(rec.Args) != len(matchers) {
		return false
	}
	for i, m := range matchers {
		if !m.Matches(rec.Args[i]) {
			return false
		}
	}
	return true
}

// Count runs Scan and judges the matched count, returning the matched
// records on success or a structured count-mismatch error on failure.
// This is the scan+evaluate step behind the fluent verification surface.
func Count(snap []ledger.Record, op string, matchers []match.Arg, cond match.Count) ([]ledger.Record, error) {
	matched, nearMisses := Scan(snap, op, matchers)

	if cond.Evaluate(len(matched)) {
		return matched, nil
	}

	return nil, &Error{
		Code:       CodeCountMismatch,
		Op:         op,
		Expected:   fmt.Sprintf("%s matching %s", cond.Describe(), describeMatchers(matchers)),
		Actual:     fmt.Sprintf("%d matching calls", len(matched)),
		NearMisses: nearMisses,
	}
}

// NoInteraction checks that a guard's ledger recorded nothing at all.
func NoInteraction(g *ledger.Guard) error {
	if g.Empty() {
		return nil
	}
	return unexpectedInteraction("no interaction", g.GrownSince())
}

// NoFurtherInteraction checks that nothing was appended after the guard's
// checkpoint.
func NoFurtherInteraction(g *ledger.Guard) error {
	grown := g.GrownSince()
	if len(grown) == 0 {
		return nil
	}
	return unexpectedInteraction("no further interaction after checkpoint", grown)
}

func unexpectedInteraction(expected string, recs []ledger.Record) error {
	mockID := ""
	if len(recs) > 0 {
		mockID = recs[0].MockID
	}
	return &Error{
		Code:       CodeUnexpectedInteraction,
		Op:         mockID,
		Expected:   expected,
		Actual:     fmt.Sprintf("%d recorded calls", len(recs)),
		Unexpected: recs,
	}
}

func describeMatchers(matchers []match.Arg) string {
	parts := make([]string, len(matchers))
	for i, m := range matchers {
		parts[i] = m.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
