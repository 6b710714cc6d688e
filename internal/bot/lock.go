package bot

import "sync"

// userLocks hands out one mutex per telegram user so double taps run in order.
type userLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[int64]*sync.Mutex)}
}

func (l *userLocks) get(userID int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.locks[userID]; !ok {
		l.locks[userID] = &sync.Mutex{}
	}
	return l.locks[userID]
}
