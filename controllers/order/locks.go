package orderControllers

import "sync"

// userLocks hands out one mutex per user id so the cart read → order insert →
// cart drain sequence never interleaves for the same user. Entries are
// dropped again once no checkout holds or waits on them.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*userLock
}

type userLock struct {
	sync.Mutex
	refs int
}

func (l *userLocks) acquire(userID string) (release func()) {
	l.mu.Lock()
	lk, ok := l.locks[userID]
	if !ok {
		lk = &userLock{}
		l.locks[userID] = lk
	}
	lk.refs++
	l.mu.Unlock()

	lk.Lock()
	return func() {
		lk.Unlock()
		l.mu.Lock()
		lk.refs--
		if lk.refs == 0 {
			delete(l.locks, userID)
		}
		l.mu.Unlock()
	}
}
