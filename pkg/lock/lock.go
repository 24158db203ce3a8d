// Package lock provides keyed mutual exclusion, in-process or across
// replicas through Redis.
package lock

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotAcquired is returned when the lock could not be taken before the
// wait timeout or context deadline.
var ErrNotAcquired = errors.New("lock not acquired")

// Locker serializes work per key. The returned release func must be called
// exactly once.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

type localEntry struct {
	sem  chan struct{}
	refs int
}

// Local is a Locker backed by per-key semaphores in process memory.
type Local struct {
	mu      sync.Mutex
	entries map[string]*localEntry
	wait    time.Duration
}

func NewLocal(wait time.Duration) *Local {
	return &Local{entries: make(map[string]*localEntry), wait: wait}
}

func (l *Local) Acquire(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &localEntry{sem: make(chan struct{}, 1)}
		l.entries[key] = e
	}
	e.refs++
	l.mu.Unlock()

	if l.wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.wait)
		defer cancel()
	}

	select {
	case e.sem <- struct{}{}:
	case <-ctx.Done():
		l.unref(key, e)
		return nil, ErrNotAcquired
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.sem
			l.unref(key, e)
		})
	}, nil
}

func (l *Local) unref(key string, e *localEntry) {
	l.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
	l.mu.Unlock()
}
