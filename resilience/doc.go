// Package resilience bounds calls to the secret store.
//
// Two patterns are provided and composed by Executor:
//
//   - Bulkhead: caps the number of concurrent calls, waiting up to MaxWait
//     for a free slot.
//   - Timeout: gives each call a deadline and reports ErrTimeout when it
//     fires.
//
// There is deliberately no retry: a failed secret read is reported once and
// memoized by the caller.
//
//	exec := resilience.NewExecutor(
//	    resilience.WithBulkhead(resilience.NewBulkhead(resilience.BulkheadConfig{MaxConcurrent: 4})),
//	    resilience.WithTimeout(30*time.Second),
//	)
//	secret, err := resilience.Do(ctx, exec, func(ctx context.Context) (*api.Secret, error) {
//	    return client.Logical().ReadWithContext(ctx, path)
//	})
package resilience
