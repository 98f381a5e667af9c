package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/attest/internal/ledger"
	"github.com/roach88/attest/internal/match"
)

func record(op string, seq int64, args ...any) ledger.Record {
	return ledger.Record{MockID: "m-1", Op: op, Args: args, Seq: seq}
}

func TestScan_MatchesOpAndArgs(t *testing.T) {
	snap := []ledger.Record{
		record("Send", 1, "bob"),
		record("Send", 2, "alice"),
		record("Close", 3),
	}

	matched, near := Scan(snap, "Send", []match.Arg{match.Eq("bob")})

	require.Len(t, matched, 1)
	assert.Equal(t, int64(1), matched[0].Seq)
	require.Len(t, near, 1, "same op, different args is a near miss")
	assert.Equal(t, int64(2), near[0].Seq)
}

func TestScan_PreservesSequenceOrder(t *testing.T) {
	snap := []ledger.Record{
		record("Send", 1, "a"),
		record("Send", 5, "a"),
		record("Send", 9, "a"),
	}

	matched, _ := Scan(snap, "Send", []match.Arg{match.Any()})

	require.Len(t, matched, 3)
	assert.Equal(t, int64(1), matched[0].Seq)
	assert.Equal(t, int64(5), matched[1].Seq)
	assert.Equal(t, int64(9), matched[2].Seq)
}

func TestScan_ArityMismatchIsSilentExclusion(t *testing.T) {
	snap := []ledger.Record{
		record("Send", 1, "a"), // one argument
	}

	// Two matchers against a one-argument call: no match, no error.
	matched, near := Scan(snap, "Send", []match.Arg{match.Any(), match.Any()})

	assert.Empty(t, matched)
	require.Len(t, near, 1, "arity-mismatched call is reported as a near miss")
}

func TestScan_ZeroArgOperation(t *testing.T) {
	snap := []ledger.Record{record("Close", 1)}

	matched, _ := Scan(snap, "Close", nil)
	assert.Len(t, matched, 1)
}

func TestScan_OtherOpsAreInvisible(t *testing.T) {
	snap := []ledger.Record{
		record("Send", 1, "a"),
		record("Log", 2, "a"),
	}

	matched, near := Scan(snap, "Send", []match.Arg{match.Any()})
	assert.Len(t, matched, 1)
	assert.Empty(t, near, "different op is not a near miss")
}

func TestCount_Pass(t *testing.T) {
	snap := []ledger.Record{record("Send", 1, "a")}

	matched, err := Count(snap, "Send", []match.Arg{match.Any()}, match.Exactly(1))
	require.NoError(t, err)
	assert.Len(t, matched, 1)
}

func TestCount_FailCarriesDiagnostics(t *testing.T) {
	snap := []ledger.Record{record("Send", 1, "alice")}

	_, err := Count(snap, "Send", []match.Arg{match.Eq("bob")}, match.Exactly(1))
	require.Error(t, err)

	var ve *Error
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, CodeCountMismatch, ve.Code)
	assert.Equal(t, "Send", ve.Op)
	assert.Contains(t, ve.Expected, "exactly 1 calls")
	assert.Contains(t, ve.Expected, `Eq("bob")`)
	assert.Equal(t, "0 matching calls", ve.Actual)
	require.Len(t, ve.NearMisses, 1)
	assert.True(t, IsCountError(err))
}

func TestCount_NeverPassesWhenOtherArgsWereUsed(t *testing.T) {
	snap := []ledger.Record{record("Send", 1, "b")}

	_, err := Count(snap, "Send", []match.Arg{match.Eq("a")}, match.Never())
	assert.NoError(t, err, "op(b) does not violate never-op(a)")
}

func TestNoInteraction(t *testing.T) {
	clock := ledger.NewClock()
	l := ledger.New("m-1", clock)
	g := ledger.NewGuard(l)

	require.NoError(t, NoInteraction(g))

	l.Append("Op", nil)
	err := NoInteraction(g)
	require.Error(t, err)
	assert.True(t, IsUnexpectedInteractionError(err))

	var ve *Error
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Unexpected, 1)
}

func TestNoFurtherInteraction(t *testing.T) {
	clock := ledger.NewClock()
	l := ledger.New("m-1", clock)
	g := ledger.NewGuard(l)

	l.Append("First", nil)
	g.Checkpoint()
	require.NoError(t, NoFurtherInteraction(g))

	l.Append("Second", nil)
	err := NoFurtherInteraction(g)
	require.Error(t, err)
	assert.True(t, IsUnexpectedInteractionError(err))
}
