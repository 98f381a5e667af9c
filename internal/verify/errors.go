package verify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/attest/internal/ledger"
)

// Error represents a failed verification.
//
// Verification failures include:
//   - Count mismatch: a count condition over matched records was not met
//   - Order violation: no valid interleaving places the queries in order
//   - Empty order query: an order check was given a query with no matches
//   - Unexpected interaction: a no-interaction guard found recorded calls
//
// Error includes structured fields for diagnostics; the rendered message
// always names the operation, the expected condition and the actual
// observation.
type Error struct {
	// Code identifies the failure category.
	Code Code

	// Op is the offending operation identity ("mock.operation"), when one
	// applies.
	Op string

	// Expected is a human-readable expected condition.
	Expected string

	// Actual is a human-readable actual observation.
	Actual string

	// NearMisses holds records for the same operation that failed argument
	// matching, plus any arity-mismatched calls. Diagnostics only.
	NearMisses []ledger.Record

	// Unexpected holds the records that violated a no-interaction guard.
	Unexpected []ledger.Record
}

// Code categorizes verification failures.
type Code string

const (
	// CodeCountMismatch indicates a count condition was not satisfied.
	CodeCountMismatch Code = "COUNT_MISMATCH"

	// CodeOrderViolation indicates no strictly increasing placement of the
	// ordered queries exists.
	CodeOrderViolation Code = "ORDER_VIOLATION"

	// CodeEmptyOrderQuery indicates an order check received a query with
	// zero matched records. There is nothing to order; this is a
	// precondition failure, not an order mismatch.
	CodeEmptyOrderQuery Code = "EMPTY_ORDER_QUERY"

	// CodeUnexpectedInteraction indicates a mock recorded calls where a
	// guard required none.
	CodeUnexpectedInteraction Code = "UNEXPECTED_INTERACTION"
)

// Error implements the error interface.
func (e *Error) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "verification failed: %s", e.Code)
	if e.Op != "" {
		fmt.Fprintf(&buf, " (%s)", e.Op)
	}
	fmt.Fprintf(&buf, "\n  Expected: %s\n  Actual: %s", e.Expected, e.Actual)

	if len(e.NearMisses) > 0 {
		fmt.Fprintf(&buf, "\nNear misses:")
		for _, rec := range e.NearMisses {
			fmt.Fprintf(&buf, "\n  %s", rec)
		}
	}
	if len(e.Unexpected) > 0 {
		fmt.Fprintf(&buf, "\nUnexpected calls:")
		for _, rec := range e.Unexpected {
			fmt.Fprintf(&buf, "\n  %s", rec)
		}
	}

	return buf.String()
}

// IsCountError reports whether err is a count-mismatch verification failure.
// Uses errors.As to handle wrapped errors.
func IsCountError(err error) bool {
	return hasCode(err, CodeCountMismatch)
}

// IsOrderError reports whether err is an order-violation failure.
func IsOrderError(err error) bool {
	return hasCode(err, CodeOrderViolation)
}

// IsEmptyOrderQueryError reports whether err is the empty-order-query
// precondition failure.
func IsEmptyOrderQueryError(err error) bool {
	return hasCode(err, CodeEmptyOrderQuery)
}

// IsUnexpectedInteractionError reports whether err is a failed
// no-interaction guard.
func IsUnexpectedInteractionError(err error) bool {
	return hasCode(err, CodeUnexpectedInteraction)
}

func hasCode(err error, code Code) bool {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Code == code
	}
	return false
}
