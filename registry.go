package attest

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/roach88/attest/internal/ledger"
)

// IDGenerator produces mock identities. The production generator issues
// UUIDv7 values; tests substitute a fixed generator for deterministic
// identities and golden traces.
type IDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 mock identities.
//
// UUIDv7 embeds a timestamp in the most significant bits, making identities
// sortable by creation time, which is helpful when reading traces with many
// mocks.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
// Panics if UUID generation fails (should never happen in practice).
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Registry owns the recording state for one test run: the logical clock and
// every mock created within the run.
//
// Sequence scope is per registry. Creating a fresh registry per test case
// keeps sequence numbers from leaking across cases while still giving a
// total order across all mocks inside one case.
type Registry struct {
	clock *ledger.Clock
	gen   IDGenerator

	mu    sync.Mutex
	mocks map[string]*Mock
}

// Option configures a Registry.
type Option func(*Registry)

// WithIDGenerator replaces the default UUIDv7 mock-identity generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(r *Registry) { r.gen = gen }
}

// NewRegistry creates an empty registry with a fresh clock.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		clock: ledger.NewClock(),
		gen:   UUIDv7Generator{},
		mocks: make(map[string]*Mock),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewMock registers a new mock handle. The name is for humans and appears in
// diagnostics; the generated ID is the identity the proxy layer uses with
// OnIntercept.
func (r *Registry) NewMock(name string) *Mock {
	id := r.gen.Generate()
	led := ledger.New(id, r.clock)
	m := &Mock{
		id:     id,
		name:   name,
		ledger: led,
		guard:  ledger.NewGuard(led),
	}

	r.mu.Lock()
	r.mocks[id] = m
	r.mu.Unlock()
	return m
}

// OnIntercept is the single entry point for the proxy layer: every
// intercepted invocation, however dispatched, lands here once resolved to a
// concrete operation identity. Returns the assigned sequence number.
//
// The only failure mode is an unknown mock ID, which is a wiring bug in the
// proxy layer, not a recording failure.
func (r *Registry) OnIntercept(mockID, op string, args []any) (int64, error) {
	r.mu.Lock()
	m, ok := r.mocks[mockID]
	r.mu.Unlock()

	if !ok {
		return 0, fmt.Errorf("on intercept: unknown mock ID %q", mockID)
	}
	return m.Intercept(op, args...), nil
}

// Clock exposes the registry's sequence position, e.g. to assert how many
// calls a whole test case recorded.
func (r *Registry) Clock() *ledger.Clock {
	return r.clock
}

// Mock is the handle for one test double. The proxy layer calls Intercept on
// every invocation; verification reads the ledger through the query surface.
type Mock struct {
	id     string
	name   string
	ledger *ledger.Ledger
	guard  *ledger.Guard
}

// ID returns the registry-assigned identity of this mock.
func (m *Mock) ID() string { return m.id }

// Name returns the human-readable name given at creation.
func (m *Mock) Name() string { return m.name }

// Intercept records one invocation and returns its sequence number.
// It never fails and never blocks the call being recorded.
func (m *Mock) Intercept(op string, args ...any) int64 {
	return m.ledger.Append(op, args)
}

// Recorded returns a snapshot of every invocation recorded so far, in
// sequence order. The snapshot is a copy; the ledger itself is never handed
// out.
func (m *Mock) Recorded() []ledger.Record {
	return m.ledger.Snapshot()
}
