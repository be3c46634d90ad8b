// Package locker provides per-path mutual exclusion so two calls mutating
// the same document file cannot interleave their open-mutate-save cycles.
package locker

import "sync"

// Locker keys a mutex by string (an absolute file path). Locks are created
// on first use and kept for the life of the process; the set of documents a
// deployment touches is small.
type Locker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New() *Locker {
	return &Locker{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key, blocking until it is free, and returns
// the unlock function.
func (l *Locker) Lock(key string) (unlock func()) {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()
	m.Lock()
	return m.Unlock
}
