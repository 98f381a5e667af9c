// Package attest is a call-recording and verification engine for test
// doubles.
//
// attest does not generate mock objects. A proxy layer (hand-written stubs,
// code generation, whatever the test suite prefers) funnels every
// intercepted call into a Registry, and attest answers questions about the
// recorded history afterwards: exact and bounded call counts, relative
// ordering across mocks, and no-interaction guarantees. Nothing has to be
// declared before the exercise phase runs.
//
// # Recording
//
// Create one Registry per test case, one Mock per collaborator, and forward
// every intercepted call:
//
//	reg := attest.NewRegistry()
//	mailer := reg.NewMock("mailer")
//
//	// inside the generated/hand-written stub:
//	mailer.Intercept("Send", to, subject)
//
// Each call is appended to the mock's ledger with a sequence number from the
// registry's logical clock. The clock is shared by every mock in the
// registry, so ordering holds across mocks within the test case and never
// leaks between cases.
//
// # Verifying
//
// Verification is a two-step builder: Verify binds the mock and an optional
// count condition, the Call that follows supplies the operation and the
// argument matchers and runs the query immediately:
//
//	_, err := attest.Verify(mailer).Call("Send", "bob", attest.Any())
//	_, err = attest.Verify(mailer, attest.AtLeast(2)).Call("Send", attest.Any(), attest.Any())
//
// Raw argument values mean literal deep equality; explicit matchers pass
// through. A recorded call with a different argument count is silently not a
// match, never an error.
//
// Order across verifications is opt-in:
//
//	first, _ := attest.Verify(auth).Call("Login", "bob")
//	second, _ := attest.Verify(mailer).Call("Send", "bob", attest.Any())
//	err := attest.InOrder(first, second)
//
// and interaction guards close the loop:
//
//	err := attest.VerifyNoInteraction(auditor)
//	err = attest.VerifyNoFurtherInteraction(mailer) // checkpoint now
//	...
//	err = attest.VerifyNoFurtherInteraction(mailer) // fail if anything else ran
//
// All failures are returned synchronously as structured errors with
// machine-readable codes; the IsCountError, IsOrderError,
// IsEmptyOrderQueryError and IsUnexpectedInteractionError predicates
// classify them. Nothing is deferred or batched.
package attest
