package internal

import (
	"sync"
	"sync/atomic"
)

// ============================================================================
// STRING INTERNING
// Reduces memory allocations for frequently repeated strings (object keys)
// SECURITY: bounded table with proactive eviction to prevent memory exhaustion
// ============================================================================

// maxInternKeyLen is the longest string worth interning. Longer keys are
// rare and would bloat the table.
const maxInternKeyLen = 64

// Intern stores interned strings for reuse across decoded documents.
// All methods are safe for concurrent use.
type Intern struct {
	mu         sync.RWMutex
	table      map[string]string
	maxEntries int

	hits   atomic.Int64
	misses atomic.Int64
}

// NewIntern creates an interning table holding at most maxEntries strings.
func NewIntern(maxEntries int) *Intern {
	if maxEntries <= 0 {
		maxEntries = 1024
	}
	return &Intern{
		table:      make(map[string]string, 64),
		maxEntries: maxEntries,
	}
}

// Intern returns a canonical copy of s. Repeated keys in decoded objects
// share one backing string instead of each holding a slice of the input.
func (in *Intern) Intern(s string) string {
	if len(s) == 0 || len(s) > maxInternKeyLen {
		return s
	}

	in.mu.RLock()
	canonical, ok := in.table[s]
	in.mu.RUnlock()
	if ok {
		in.hits.Add(1)
		return canonical
	}

	in.misses.Add(1)

	in.mu.Lock()
	defer in.mu.Unlock()

	// Re-check after acquiring the write lock
	if canonical, ok = in.table[s]; ok {
		return canonical
	}

	// Proactive eviction: drop the whole table rather than tracking ages.
	// Interning is an optimization, losing the table only costs future hits.
	if len(in.table) >= in.maxEntries {
		in.table = make(map[string]string, 64)
	}

	// Copy so the interned string does not pin the caller's larger input
	canonical = string(append([]byte(nil), s...))
	in.table[canonical] = canonical
	return canonical
}

// Len returns the current number of interned strings.
func (in *Intern) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.table)
}

// Stats returns cumulative hit and miss counts.
func (in *Intern) Stats() (hits, misses int64) {
	return in.hits.Load(), in.misses.Load()
}

// Clear discards all interned strings.
func (in *Intern) Clear() {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.table = make(map[string]string, 64)
}
