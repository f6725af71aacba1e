package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestMemo_FetchesOnce(t *testing.T) {
	memo := NewMemo[string](nil)
	ctx := context.Background()

	var calls int
	fetch := func(context.Context) (string, error) {
		calls++
		return "alice", nil
	}

	for i := 0; i < 3; i++ {
		got, err := memo.Do(ctx, "DB_USER", fetch)
		if err != nil {
			t.Fatalf("Do() error = %v", err)
		}
		if got != "alice" {
			t.Fatalf("Do() = %q, want %q", got, "alice")
		}
	}

	if calls != 1 {
		t.Errorf("fetch calls = %d, want 1", calls)
	}
}

func TestMemo_MemoizesErrors(t *testing.T) {
	memo := NewMemo[string](nil)
	ctx := context.Background()
	boom := errors.New("boom")

	var calls int
	fetch := func(context.Context) (string, error) {
		calls++
		return "", boom
	}

	for i := 0; i < 2; i++ {
		if _, err := memo.Do(ctx, "k", fetch); !errors.Is(err, boom) {
			t.Fatalf("Do() error = %v, want %v", err, boom)
		}
	}
	if calls != 1 {
		t.Errorf("fetch calls = %d, want 1 (errors are not retried)", calls)
	}

	out, ok := memo.Peek("k")
	if !ok || !errors.Is(out.Err, boom) {
		t.Errorf("Peek() = %+v, %v; want stored error", out, ok)
	}
}

func TestMemo_ConcurrentCallersShareOneFetch(t *testing.T) {
	store := &countingStore{MemoryStore: NewMemoryStore[int]()}
	memo := NewMemo[int](store)
	ctx := context.Background()

	var calls atomic.Int32
	fetch := func(context.Context) (int, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return 42, nil
	}

	const numGoroutines = 50
	results := make([]int, numGoroutines)
	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(i int) {
			defer wg.Done()
			v, err := memo.Do(ctx, "same", fetch)
			if err != nil {
				t.Errorf("Do() error = %v", err)
			}
			results[i] = v
		}(i)
	}
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("fetch calls = %d, want 1", got)
	}
	if store.sets != 1 {
		t.Errorf("store sets = %d, want 1", store.sets)
	}
	for i, v := range results {
		if v != 42 {
			t.Errorf("results[%d] = %d, want 42", i, v)
		}
	}
}

func TestMemo_DifferentKeysFetchIndependently(t *testing.T) {
	memo := NewMemo[string](nil)
	ctx := context.Background()

	a, _ := memo.Do(ctx, "a", func(context.Context) (string, error) { return "A", nil })
	b, _ := memo.Do(ctx, "b", func(context.Context) (string, error) { return "B", nil })

	if a != "A" || b != "B" {
		t.Errorf("got %q %q, want A B", a, b)
	}
	if memo.Len() != 2 {
		t.Errorf("Len() = %d, want 2", memo.Len())
	}
}

func TestMemo_CancelledWaiterDoesNotAbortFetch(t *testing.T) {
	memo := NewMemo[string](nil)

	started := make(chan struct{})
	release := make(chan struct{})
	var fetchCtxErr atomic.Value

	fetch := func(ctx context.Context) (string, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			fetchCtxErr.Store(err)
		}
		return "value", nil
	}

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := memo.Do(ctxA, "k", fetch)
		errA <- err
	}()
	<-started

	resB := make(chan string, 1)
	go func() {
		v, _ := memo.Do(context.Background(), "k", fetch)
		resB <- v
	}()

	cancelA()
	if err := <-errA; !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled caller error = %v, want context.Canceled", err)
	}

	close(release)
	if v := <-resB; v != "value" {
		t.Errorf("remaining waiter got %q, want %q", v, "value")
	}
	if err := fetchCtxErr.Load(); err != nil {
		t.Errorf("fetch context was cancelled: %v", err)
	}

	out, ok := memo.Peek("k")
	if !ok || out.Value != "value" {
		t.Errorf("Peek() = %+v, %v; want stored value", out, ok)
	}
}
