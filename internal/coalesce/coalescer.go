/*
Package coalesce collapses concurrent identical requests into a single
execution and replays its result for a short freshness window.

A result is cached whatever it represents, failures included: callers that
arrive within the window get the same value back without re-running the
operation. Completed entries are only dropped by Sweep; callers that never
sweep keep one entry per distinct key.
*/
package coalesce

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultWindow is the freshness window used when none is configured.
const DefaultWindow = 500 * time.Millisecond

type entry[T any] struct {
	at     time.Time
	result T
}

// Coalescer deduplicates operations of result type T by key.
type Coalescer[T any] struct {
	window time.Duration
	now    func() time.Time

	mu        sync.Mutex
	completed map[string]entry[T]
	inflight  singleflight.Group
}

// New returns a Coalescer that reuses results for window. A non-positive
// window selects DefaultWindow.
func New[T any](window time.Duration) *Coalescer[T] {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Coalescer[T]{
		window:    window,
		now:       time.Now,
		completed: make(map[string]entry[T]),
	}
}

// Window returns the freshness window.
func (c *Coalescer[T]) Window() time.Duration {
	return c.window
}

/*
Coalesce returns the result of op for key. If a result for key completed
less than the window ago, it is returned without calling op. If op is
already running for key, Coalesce waits for it and returns its result.
Otherwise op runs once, outside the lock, and its result is cached.
*/
func (c *Coalescer[T]) Coalesce(key string, op func() T) T {
	if result, ok := c.fresh(key); ok {
		return result
	}

	v, _, _ := c.inflight.Do(key, func() (any, error) {
		// A previous execution may have finished between the lookup above
		// and joining the group.
		if result, ok := c.fresh(key); ok {
			return result, nil
		}
		result := op()
		c.mu.Lock()
		c.completed[key] = entry[T]{at: c.now(), result: result}
		c.mu.Unlock()
		return result, nil
	})
	result, _ := v.(T)
	return result
}

func (c *Coalescer[T]) fresh(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.completed[key]
	if ok && c.now().Sub(e.at) < c.window {
		return e.result, true
	}
	var zero T
	return zero, false
}

// Sweep drops completed entries older than the window and returns how many
// were removed.
func (c *Coalescer[T]) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	removed := 0
	for key, e := range c.completed {
		if now.Sub(e.at) >= c.window {
			delete(c.completed, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of completed entries currently held.
func (c *Coalescer[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.completed)
}
