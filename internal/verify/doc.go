// Package verify implements the query side of mock verification: scanning a
// ledger snapshot for records that satisfy an operation identity and a
// positional matcher list, judging the matched count, and checking relative
// order across independent query results.
//
// Everything here is read-only over ledger snapshots. A verification never
// appends to or mutates history, so assertions can run in any order and as
// often as the test likes.
//
// Failure reporting mirrors the engine error style: one structured Error
// type with a machine-readable Code, the expected condition, the actual
// observation, and near-miss records for diagnostics. All failures surface
// synchronously at the point of verification.
package verify
