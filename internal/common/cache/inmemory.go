package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type InMemoryClient[T any] struct {
	cache     sync.Map
	done      chan struct{}
	closeOnce sync.Once
}

var _ Client[string] = (*InMemoryClient[string])(nil)

type cachedValue struct {
	Value []byte
	ExpAt time.Time
}

func (cv *cachedValue) expired(now time.Time) bool {
	return !cv.ExpAt.IsZero() && cv.ExpAt.Before(now)
}

func NewInMemoryClient[T any]() *InMemoryClient[T] {
	m := &InMemoryClient[T]{
		done: make(chan struct{}),
	}

	go m.backgroundCleaner(time.Minute)
	return m
}

func (m *InMemoryClient[T]) Get(_ context.Context, key string) (result T, err error) {
	raw, found := m.cache.Load(key)
	if !found {
		return result, ErrNotExists
	}

	val, ok := raw.(*cachedValue)
	if !ok {
		return result, ErrInvalidType
	}

	if val.expired(time.Now()) {
		m.cache.Delete(key)
		return result, ErrNotExists
	}

	err = json.Unmarshal(val.Value, &result)
	return result, err
}

// Set stores object; a zero ttl keeps it until Delete or Close.
func (m *InMemoryClient[T]) Set(_ context.Context, key string, object T, ttl time.Duration) error {
	val, err := json.Marshal(object)
	if err != nil {
		return err
	}

	cv := &cachedValue{Value: val}
	if ttl > 0 {
		cv.ExpAt = time.Now().Add(ttl)
	}

	m.cache.Store(key, cv)
	return nil
}

func (m *InMemoryClient[T]) Delete(_ context.Context, key string) error {
	m.cache.Delete(key)
	return nil
}

func (m *InMemoryClient[T]) GetOrSet(ctx context.Context, opts GetOrSetOpts[T]) (T, error) {
	return getOrSet[T](ctx, m, opts)
}

func (m *InMemoryClient[T]) backgroundCleaner(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			m.cache.Range(func(key, value any) bool {
				cv, ok := value.(*cachedValue)
				if !ok || cv.expired(now) {
					m.cache.Delete(key)
				}
				return true
			})
		case <-m.done:
			return
		}
	}
}

// Close stops the background cleaner. It is safe to call more than once.
func (m *InMemoryClient[T]) Close() {
	m.closeOnce.Do(func() { close(m.done) })
}
