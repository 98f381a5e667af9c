package attest

import (
	"github.com/roach88/attest/internal/match"
)

// ArgMatcher selects recorded argument values during verification.
// Custom matchers are built with Func; everything else here is sugar.
type ArgMatcher = match.Arg

// CountMatcher judges the number of matched calls.
type CountMatcher = match.Count

// Eq matches an argument deep-equal to want. Raw values passed to Call are
// wrapped with Eq automatically.
func Eq(want any) ArgMatcher { return match.Eq(want) }

// Any matches any argument value.
func Any() ArgMatcher { return match.Any() }

// Func matches when fn returns true; the optional explanation names the
// predicate in failure diagnostics.
func Func(fn func(any) bool, explanation ...string) ArgMatcher {
	return match.Func(fn, explanation...)
}

// Nil matches nil and nil-valued reference types.
func Nil() ArgMatcher { return match.Nil() }

// TypeOf matches arguments assignable to the dynamic type of sample.
func TypeOf(sample any) ArgMatcher { return match.TypeOf(sample) }

// Not negates a matcher.
func Not(m ArgMatcher) ArgMatcher { return match.Not(m) }

// AllOf matches when every matcher matches.
func AllOf(ms ...ArgMatcher) ArgMatcher { return match.AllOf(ms...) }

// AnyOf matches when at least one matcher matches.
func AnyOf(ms ...ArgMatcher) ArgMatcher { return match.AnyOf(ms...) }

// Exactly passes when the matched count equals n.
func Exactly(n int) CountMatcher { return match.Exactly(n) }

// Times is an alias for Exactly.
func Times(n int) CountMatcher { return match.Times(n) }

// AtLeast passes when the matched count is n or more.
func AtLeast(n int) CountMatcher { return match.AtLeast(n) }

// AtMost passes when the matched count is n or fewer.
func AtMost(n int) CountMatcher { return match.AtMost(n) }

// Never passes only when nothing matched.
func Never() CountMatcher { return match.Never() }
