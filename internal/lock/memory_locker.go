package lock

import (
	"context"
	"sync"

	"gameforge/internal/interfaces"

	"github.com/google/uuid"
)

// MemoryLocker is an in-process GameLocker for single-instance deployments and tests.
type MemoryLocker struct {
	mu    sync.Mutex
	slots map[uuid.UUID]*slot
}

// slot is a one-token semaphore with a count of goroutines interested in it.
type slot struct {
	ch   chan struct{}
	refs int
}

var _ interfaces.GameLocker = (*MemoryLocker)(nil)

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{slots: make(map[uuid.UUID]*slot)}
}

func (l *MemoryLocker) Acquire(ctx context.Context, gameID uuid.UUID) (func(), error) {
	l.mu.Lock()
	s, ok := l.slots[gameID]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		l.slots[gameID] = s
	}
	s.refs++
	l.mu.Unlock()

	select {
	case s.ch <- struct{}{}:
	case <-ctx.Done():
		l.unref(gameID, s)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-s.ch
			l.unref(gameID, s)
		})
	}, nil
}

func (l *MemoryLocker) unref(gameID uuid.UUID, s *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s.refs--
	if s.refs == 0 {
		delete(l.slots, gameID)
	}
}
