package handler

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// CounterStore counts hits per key in fixed windows.
type CounterStore interface {
	// Incr adds one hit to key and returns the hit count of the current
	// window and the time left until it resets.
	Incr(ctx context.Context, key string, window time.Duration) (count int64, ttl time.Duration, err error)
}

// ---------------------------------------------------------------------------
// In-memory store (single instance)
// ---------------------------------------------------------------------------

type memoryWindow struct {
	count   int64
	resetAt time.Time
}

// MemoryCounterStore keeps counters in process memory.
type MemoryCounterStore struct {
	mu      sync.Mutex
	windows map[string]*memoryWindow
	now     func() time.Time
	done    chan struct{}
}

// NewMemoryCounterStore starts a store whose expired windows are swept
// every cleanupEvery. Call Close to stop the sweeper.
func NewMemoryCounterStore(cleanupEvery time.Duration) *MemoryCounterStore {
	s := &MemoryCounterStore{
		windows: make(map[string]*memoryWindow),
		now:     time.Now,
		done:    make(chan struct{}),
	}
	go s.cleanupLoop(cleanupEvery)
	return s
}

func (s *MemoryCounterStore) Incr(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &memoryWindow{resetAt: now.Add(window)}
		s.windows[key] = w
	}
	w.count++
	return w.count, w.resetAt.Sub(now), nil
}

// cleanupLoop periodically removes expired windows.
func (s *MemoryCounterStore) cleanupLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			now := s.now()
			s.mu.Lock()
			for key, w := range s.windows {
				if !now.Before(w.resetAt) {
					delete(s.windows, key)
				}
			}
			s.mu.Unlock()
		}
	}
}

func (s *MemoryCounterStore) Close() {
	close(s.done)
}

// ---------------------------------------------------------------------------
// Redis store (shared across instances)
// ---------------------------------------------------------------------------

// RedisCounterStore uses INCR and PEXPIRE so every instance behind a load
// balancer sees the same counts.
type RedisCounterStore struct {
	client redis.Cmdable
}

func NewRedisCounterStore(client redis.Cmdable) *RedisCounterStore {
	return &RedisCounterStore{client: client}
}

// NewRedisClient parses url (redis://...) and verifies the connection.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func (s *RedisCounterStore) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pttl := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, err
	}
	ttl := pttl.Val()
	// A key without expiry was just created (or lost its PEXPIRE); start its window.
	if ttl < 0 {
		if err := s.client.PExpire(ctx, key, window).Err(); err != nil {
			return 0, 0, err
		}
		ttl = window
	}
	return incr.Val(), ttl, nil
}
