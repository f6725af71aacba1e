package cache

import (
	"context"

	"golang.org/x/sync/singleflight"
)

// FetchFunc produces the value for a key. It runs at most once per key.
type FetchFunc[V any] func(ctx context.Context) (V, error)

// Memo deduplicates and permanently memoizes fetches.
//
// Contract:
//   - Concurrency: Do is safe for concurrent use with the same or different keys.
//   - At most one FetchFunc runs per key over the lifetime of the Memo.
//   - Errors are memoized like values; there is no retry and no eviction.
//   - Context: a caller whose ctx ends stops waiting and gets ctx.Err(); the
//     fetch keeps running for the remaining waiters under a context that is
//     never cancelled.
type Memo[V any] struct {
	store Store[V]
	group singleflight.Group
}

// NewMemo creates a Memo backed by store. If store is nil a MemoryStore is used.
func NewMemo[V any](store Store[V]) *Memo[V] {
	if store == nil {
		store = NewMemoryStore[V]()
	}
	return &Memo[V]{store: store}
}

// Do returns the memoized outcome for key, running fetch if no caller has
// started it yet.
func (m *Memo[V]) Do(ctx context.Context, key string, fetch FetchFunc[V]) (V, error) {
	if out, ok := m.store.Get(key); ok {
		return out.Value, out.Err
	}

	// The fetch outlives any single waiter.
	detached := context.WithoutCancel(ctx)

	ch := m.group.DoChan(key, func() (any, error) {
		// A flight for key may have finished between the lookup above and
		// joining the group; its outcome is already stored.
		if out, ok := m.store.Get(key); ok {
			return out, nil
		}
		value, err := fetch(detached)
		out := Outcome[V]{Value: value, Err: err}
		if !m.store.Set(key, out) {
			out, _ = m.store.Get(key)
		}
		return out, nil
	})

	select {
	case res := <-ch:
		out := res.Val.(Outcome[V])
		return out.Value, out.Err
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}

// Peek returns the stored outcome for key without starting a fetch.
func (m *Memo[V]) Peek(key string) (Outcome[V], bool) {
	return m.store.Get(key)
}

// Len returns the number of keys with a terminal outcome.
func (m *Memo[V]) Len() int {
	return m.store.Len()
}
