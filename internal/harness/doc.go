// Package harness provides scenario-driven conformance testing for the
// verification engine.
//
// Scenarios declare mocks, an exercise script and verification checks in
// YAML, execute against a fresh registry with deterministic mock identities,
// and produce a trace plus per-check outcomes that golden files pin down.
//
// # Scenario Format
//
//	name: scenario_name
//	description: "What this scenario validates"
//	mocks:
//	  - mailer
//	  - auditor
//	steps:
//	  - call: { mock: mailer, op: Send, args: [alice] }
//	  - verify:
//	      check: count
//	      mock: mailer
//	      op: Send
//	      args: [alice]
//	      count: { mode: exactly, n: 1 }
//	      expect: pass
//	  - verify:
//	      check: order
//	      targets:
//	        - { mock: mailer, op: Send, args: [alice] }
//	        - { mock: auditor, op: Log, args: ["*"] }
//	      expect: fail
//	      code: ORDER_VIOLATION
//
// # Check Types
//
// The following check types are supported:
//
//   - count: scan one mock's ledger for op+args and judge the count
//   - order: place the target queries in strictly increasing sequence order
//   - no_interaction: the mock must have recorded nothing
//   - no_further_interaction: checkpoint on first use, growth check after
//
// In verification args the string "*" means "match anything"; every other
// value means literal equality.
//
// # Deterministic Testing
//
// Scenarios run with fixed mock identities ("<name>-1", "<name>-2", ...) so
// the same scenario yields an identical trace on every run. The canonical
// renderer (NFC-normalized strings, sorted keys, no HTML escaping) turns
// that trace into bytes suitable for golden comparison with goldie:
//
//	go test ./internal/harness -update
package harness
