// pkg/memcache/region_locks.go
package mem

import (
	"strings"
	"sync"
)

// RegionLocks serializes itinerary generation per normalized region so that
// two concurrent requests for the same province do not both trigger
// enrichment and insert overlapping destinations.
type RegionLocks struct {
	mu    sync.Mutex
	locks map[string]*regionLock
}

type regionLock struct {
	mu   sync.Mutex
	refs int
}

func NewRegionLocks() *RegionLocks {
	return &RegionLocks{locks: make(map[string]*regionLock)}
}

// Acquire blocks until the region lock is held and returns the release
// function. Lock entries are dropped once the last holder releases.
func (r *RegionLocks) Acquire(region string) func() {
	key := normalizeRegion(region)

	r.mu.Lock()
	l, ok := r.locks[key]
	if !ok {
		l = &regionLock{}
		r.locks[key] = l
	}
	l.refs++
	r.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		r.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(r.locks, key)
		}
		r.mu.Unlock()
	}
}

func normalizeRegion(region string) string {
	return strings.ToLower(strings.Join(strings.Fields(region), " "))
}
