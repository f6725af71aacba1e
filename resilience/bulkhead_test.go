package resilience

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewBulkhead_Defaults(t *testing.T) {
	b := NewBulkhead(BulkheadConfig{})
	if got := b.Metrics().MaxConcurrent; got != DefaultMaxConcurrent {
		t.Errorf("MaxConcurrent = %d, want %d", got, DefaultMaxConcurrent)
	}
}

func TestBulkhead_AcquireRelease(t *testing.T) {
	b := NewBulkhead(BulkheadConfig{MaxConcurrent: 2})
	ctx := context.Background()

	if err := b.Acquire(ctx); err != nil {
		t.Fatalf("first Acquire() error = %v", err)
	}
	if err := b.Acquire(ctx); err != nil {
		t.Fatalf("second Acquire() error = %v", err)
	}
	if err := b.Acquire(ctx); !errors.Is(err, ErrBulkheadFull) {
		t.Fatalf("third Acquire() error = %v, want ErrBulkheadFull", err)
	}

	b.Release()
	if err := b.Acquire(ctx); err != nil {
		t.Fatalf("Acquire after Release error = %v", err)
	}

	m := b.Metrics()
	if m.Active != 2 || m.Available != 0 || m.Rejected != 1 || m.MaxActive != 2 {
		t.Errorf("Metrics() = %+v", m)
	}
}

func TestBulkhead_WaitsForSlot(t *testing.T) {
	b := NewBulkhead(BulkheadConfig{MaxConcurrent: 1, MaxWait: time.Second})
	if err := b.Acquire(context.Background()); err != nil {
		t.Fatal(err)
	}

	go func() {
		time.Sleep(20 * time.Millisecond)
		b.Release()
	}()

	if err := b.Acquire(context.Background()); err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
}

func TestBulkhead_WaitExpires(t *testing.T) {
	b := NewBulkhead(BulkheadConfig{MaxConcurrent: 1, MaxWait: 10 * time.Millisecond})
	if err := b.Acquire(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := b.Acquire(context.Background()); !errors.Is(err, ErrBulkheadFull) {
		t.Fatalf("Acquire() error = %v, want ErrBulkheadFull", err)
	}
}

func TestBulkhead_ContextCancelledWhileWaiting(t *testing.T) {
	b := NewBulkhead(BulkheadConfig{MaxConcurrent: 1, MaxWait: time.Second})
	if err := b.Acquire(context.Background()); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := b.Acquire(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Acquire() error = %v, want context.Canceled", err)
	}
}

func TestBulkhead_LimitsConcurrency(t *testing.T) {
	const limit = 3
	b := NewBulkhead(BulkheadConfig{MaxConcurrent: limit, MaxWait: 5 * time.Second})

	var current, peak atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := b.Execute(context.Background(), func(context.Context) error {
				n := current.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				current.Add(-1)
				return nil
			})
			if err != nil {
				t.Errorf("Execute() error = %v", err)
			}
		}()
	}
	wg.Wait()

	if got := peak.Load(); got > limit {
		t.Errorf("peak concurrency = %d, want <= %d", got, limit)
	}
}
