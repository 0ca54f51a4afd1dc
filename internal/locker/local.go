package locker

import (
	"context"
	"sync"
)

// LocalLocker serializes lock holders within a single process.
type LocalLocker struct {
	mu   sync.Mutex
	held map[string]chan struct{}
}

func (l *LocalLocker) Lock(ctx context.Context, key string) (context.Context, context.CancelFunc, error) {
	for {
		l.mu.Lock()

		if l.held == nil {
			l.held = map[string]chan struct{}{}
		}

		released, busy := l.held[key]
		if !busy {
			released = make(chan struct{})
			l.held[key] = released
			l.mu.Unlock()

			lockCtx, cancel := context.WithCancel(ctx)

			return lockCtx, sync.OnceFunc(func() {
				cancel()

				l.mu.Lock()
				delete(l.held, key)
				l.mu.Unlock()

				close(released)
			}), nil
		}

		l.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		case <-released:
		}
	}
}
