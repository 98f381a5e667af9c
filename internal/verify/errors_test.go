package verify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/attest/internal/ledger"
)

func TestError_RendersExpectedAndActual(t *testing.T) {
	err := &Error{
		Code:     CodeCountMismatch,
		Op:       "Send",
		Expected: "exactly 1 calls",
		Actual:   "0 matching calls",
	}

	msg := err.Error()
	assert.Contains(t, msg, "COUNT_MISMATCH")
	assert.Contains(t, msg, "(Send)")
	assert.Contains(t, msg, "Expected: exactly 1 calls")
	assert.Contains(t, msg, "Actual: 0 matching calls")
	assert.NotContains(t, msg, "Near misses")
}

func TestError_RendersNearMisses(t *testing.T) {
	err := &Error{
		Code:     CodeCountMismatch,
		Op:       "Send",
		Expected: "exactly 1 calls",
		Actual:   "0 matching calls",
		NearMisses: []ledger.Record{
			{MockID: "mailer-1", Op: "Send", Args: []any{"alice"}, Seq: 3},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "Near misses:")
	assert.Contains(t, msg, `[3] mailer-1.Send("alice")`)
}

func TestError_RendersUnexpectedCalls(t *testing.T) {
	err := &Error{
		Code:     CodeUnexpectedInteraction,
		Op:       "mailer-1",
		Expected: "no interaction",
		Actual:   "1 recorded calls",
		Unexpected: []ledger.Record{
			{MockID: "mailer-1", Op: "Send", Seq: 1},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "Unexpected calls:")
	assert.Contains(t, msg, "[1] mailer-1.Send()")
}

func TestCodePredicates_HandleWrappedErrors(t *testing.T) {
	base := &Error{Code: CodeOrderViolation, Op: "Send"}
	wrapped := fmt.Errorf("scenario step 3: %w", base)

	assert.True(t, IsOrderError(wrapped))
	assert.False(t, IsCountError(wrapped))
	assert.False(t, IsOrderError(fmt.Errorf("plain error")))
	assert.False(t, IsOrderError(nil))
}
