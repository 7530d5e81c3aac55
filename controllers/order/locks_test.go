package orderControllers

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserLocksSerializeSameUser(t *testing.T) {
	l := userLocks{locks: make(map[string]*userLock)}

	const workers = 16
	var active, maxActive int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := l.acquire("user-1")
			defer release()

			mu.Lock()
			active++
			if active > maxActive {
				maxActive = active
			}
			mu.Unlock()

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxActive, "checkouts for one user never overlap")
	assert.Empty(t, l.locks, "entries are released when idle")
}

func TestUserLocksIndependentUsers(t *testing.T) {
	l := userLocks{locks: make(map[string]*userLock)}

	releaseA := l.acquire("user-a")
	done := make(chan struct{})
	go func() {
		releaseB := l.acquire("user-b")
		releaseB()
		close(done)
	}()

	<-done // user-b must not wait on user-a's lock
	releaseA()
}
