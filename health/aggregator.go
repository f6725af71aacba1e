package health

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultTimeout bounds a full Run.
const DefaultTimeout = 10 * time.Second

// AggregatorConfig configures an Aggregator.
type AggregatorConfig struct {
	// Timeout bounds a full Run. Default: DefaultTimeout
	Timeout time.Duration

	// Sequential runs checks one after another instead of concurrently.
	Sequential bool
}

// NamedResult pairs a Result with its checker's name.
type NamedResult struct {
	Name string
	Result
}

// Report is the outcome of a Run.
type Report struct {
	Status  Status
	Results []NamedResult // registration order
}

// Failed returns the errors of the unhealthy results, joined.
func (r Report) Failed() error {
	var errs []error
	for _, nr := range r.Results {
		if nr.Status == StatusUnhealthy && nr.Error != nil {
			errs = append(errs, errors.New(nr.Name+": "+nr.Error.Error()))
		}
	}
	return errors.Join(errs...)
}

// Aggregator runs a set of checkers.
type Aggregator struct {
	config AggregatorConfig

	mu       sync.RWMutex
	checkers []Checker
}

// NewAggregator creates an Aggregator.
func NewAggregator(config ...AggregatorConfig) *Aggregator {
	var cfg AggregatorConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Aggregator{config: cfg}
}

// Register adds checkers. A checker whose name is already registered
// replaces the earlier one in place.
func (a *Aggregator) Register(checkers ...Checker) {
	a.mu.Lock()
	defer a.mu.Unlock()

next:
	for _, c := range checkers {
		if c == nil {
			continue
		}
		for i, existing := range a.checkers {
			if existing.Name() == c.Name() {
				a.checkers[i] = c
				continue next
			}
		}
		a.checkers = append(a.checkers, c)
	}
}

// Names returns the registered checker names in order.
func (a *Aggregator) Names() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	names := make([]string, len(a.checkers))
	for i, c := range a.checkers {
		names[i] = c.Name()
	}
	return names
}

// Run runs every checker and reports the results in registration order.
func (a *Aggregator) Run(ctx context.Context) Report {
	a.mu.RLock()
	checkers := make([]Checker, len(a.checkers))
	copy(checkers, a.checkers)
	a.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()

	results := make([]NamedResult, len(checkers))
	if a.config.Sequential {
		for i, c := range checkers {
			results[i] = NamedResult{Name: c.Name(), Result: runCheck(ctx, c)}
		}
	} else {
		var wg sync.WaitGroup
		for i, c := range checkers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = NamedResult{Name: c.Name(), Result: runCheck(ctx, c)}
			}()
		}
		wg.Wait()
	}

	return Report{Status: OverallStatus(results), Results: results}
}

// OverallStatus is the worst status in results, or Healthy if there are none.
func OverallStatus(results []NamedResult) Status {
	status := StatusHealthy
	for _, r := range results {
		if r.Status > status {
			status = r.Status
		}
	}
	return status
}

func runCheck(ctx context.Context, c Checker) Result {
	start := time.Now()

	// Buffered so a check that ignores ctx does not block forever.
	ch := make(chan Result, 1)
	go func() {
		r := c.Check(ctx)
		if r.Timestamp.IsZero() {
			r.Timestamp = start
		}
		ch <- r
	}()

	select {
	case r := <-ch:
		r.Duration = time.Since(start)
		return r
	case <-ctx.Done():
		return Result{
			Status:    StatusUnhealthy,
			Message:   "check timed out",
			Error:     ErrCheckTimeout,
			Duration:  time.Since(start),
			Timestamp: start,
		}
	}
}
