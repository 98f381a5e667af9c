package ledger

import "sync"

// Guard tracks interaction checkpoints for one ledger.
//
// The guard is advisory bookkeeping: it never blocks an append. It only
// changes what a later check reports. Empty asks "has this mock been touched
// at all"; Checkpoint/GrownSince implement the "no further interaction"
// discipline from the verification surface.
type Guard struct {
	ledger *Ledger

	mu         sync.Mutex
	checkpoint int
	armed      bool
}

// NewGuard creates a guard over the given ledger with no checkpoint set.
func NewGuard(l *Ledger) *Guard {
	return &Guard{ledger: l}
}

// Empty reports whether the ledger has recorded no interaction so far.
func (g *Guard) Empty() bool {
	return g.ledger.Len() == 0
}

// Checkpoint records the current ledger length as the allowed high-water
// mark. Subsequent GrownSince calls compare against this mark.
func (g *Guard) Checkpoint() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.checkpoint = g.ledger.Len()
	g.armed = true
}

// Armed reports whether a checkpoint has been set.
func (g *Guard) Armed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.armed
}

// GrownSince returns the records appended after the checkpoint. With no
// checkpoint set, the whole ledger counts as growth: "no further
// interaction" on an untouched guard degenerates to "no interaction".
func (g *Guard) GrownSince() []Record {
	g.mu.Lock()
	mark := 0
	if g.armed {
		mark = g.checkpoint
	}
	g.mu.Unlock()

	snap := g.ledger.Snapshot()
	if mark >= len(snap) {
		return nil
	}
	return snap[mark:]
}
