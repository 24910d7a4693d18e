package markup

import (
	"sync"

	"github.com/thenoetrevino/taskcard/internal/types"
)

// Counts tallies the checklist items seen during one conversion pass
type Counts struct {
	Total   int `json:"total"`
	Checked int `json:"checked"`
}

// Reset zeroes both counters
func (c *Counts) Reset() {
	c.Total = 0
	c.Checked = 0
}

// Fraction returns Checked/Total, or 0 when there are no checklist items.
// The result is always within [0, 1].
func (c Counts) Fraction() float64 {
	if c.Total <= 0 {
		return 0
	}
	f := float64(c.Checked) / float64(c.Total)
	if f > 1 {
		return 1
	}
	return f
}

// Ledger remembers the counts of the most recent pass per task.
//
// Renders never write into the ledger while converting; each pass keeps its
// own Counts and the ledger entry is replaced once the pass has finished.
// Begin must be called before a pass so that a stale value from an earlier
// render is never reported for the task while the new one is running.
type Ledger struct {
	mu     sync.RWMutex
	counts map[types.TaskID]Counts
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{counts: make(map[types.TaskID]Counts)}
}

// Begin resets the entry for taskID to zero
func (l *Ledger) Begin(taskID types.TaskID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.counts[taskID] = Counts{}
}

// Record stores the final counts of a pass for taskID
func (l *Ledger) Record(taskID types.TaskID, c Counts) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.counts[taskID] = c
}

// Get returns the counts recorded for taskID and whether an entry exists
func (l *Ledger) Get(taskID types.TaskID) (Counts, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c, ok := l.counts[taskID]
	return c, ok
}

// Completion returns the completion fraction recorded for taskID, 0 if unknown
func (l *Ledger) Completion(taskID types.TaskID) float64 {
	c, _ := l.Get(taskID)
	return c.Fraction()
}

// Forget drops the entry for taskID
func (l *Ledger) Forget(taskID types.TaskID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.counts, taskID)
}
