// Package match defines the two matcher families used by verification.
//
// Arg matchers are pure predicates over a single recorded argument value.
// The core variants are Eq (deep equality), Any (wildcard) and Func
// (arbitrary predicate). Everything richer - Nil, TypeOf, Not, AllOf, AnyOf -
// is layered on the predicate form, so custom matchers written by users
// compose the same way.
//
// Count matchers judge how many records a query matched: Exactly, AtLeast,
// AtMost, Never. They carry a Describe string so a failed verification can
// report "expected at least 2" against the actual count.
//
// Matching is side-effect free. No matcher may observe or mutate ledger
// state.
package match
