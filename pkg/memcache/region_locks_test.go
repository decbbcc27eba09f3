package mem

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegionLocksSerializeSameRegion(t *testing.T) {
	locks := NewRegionLocks()

	var mu sync.Mutex
	inCritical := 0
	maxInCritical := 0

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := locks.Acquire("Da Lat")
			defer release()

			mu.Lock()
			inCritical++
			if inCritical > maxInCritical {
				maxInCritical = inCritical
			}
			mu.Unlock()

			mu.Lock()
			inCritical--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInCritical)
}

func TestRegionLocksNormalizeRegionKeys(t *testing.T) {
	locks := NewRegionLocks()

	release := locks.Acquire("  Da   Lat ")
	acquired := make(chan struct{})
	go func() {
		r := locks.Acquire("da lat")
		r()
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("variant spelling of the same region acquired the lock concurrently")
	default:
	}

	release()
	<-acquired
}

func TestRegionLocksDifferentRegionsDoNotBlock(t *testing.T) {
	locks := NewRegionLocks()

	releaseA := locks.Acquire("Hue")
	defer releaseA()

	done := make(chan struct{})
	go func() {
		releaseB := locks.Acquire("Hoi An")
		releaseB()
		close(done)
	}()
	<-done
}

func TestRegionLocksDropEntriesAfterRelease(t *testing.T) {
	locks := NewRegionLocks()

	release := locks.Acquire("Sapa")
	release()

	locks.mu.Lock()
	defer locks.mu.Unlock()
	assert.Empty(t, locks.locks)
}
