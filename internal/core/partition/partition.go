package partition

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Count is the fixed number of lock stripes.
const Count = 256

// Hash returns the 64-bit xxhash of a brew ID. Storage keys use it as a fixed-width prefix.
func Hash(brewID string) uint64 {
	return xxhash.Sum64String(brewID)
}

// For returns the stripe for a brew ID, in [0, Count).
// Stable and deterministic: the same brew always maps to the same stripe.
func For(brewID string) int {
	return int(Hash(brewID) % Count)
}

// Locks serializes writers per brew without one mutex per key.
// Two brews may share a stripe; that only costs contention, never correctness.
type Locks struct {
	stripes [Count]sync.Mutex
}

// Lock acquires the brew's stripe and returns the matching unlock.
func (l *Locks) Lock(brewID string) (unlock func()) {
	mu := &l.stripes[For(brewID)]
	mu.Lock()
	return mu.Unlock
}
