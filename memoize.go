package underz

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Observability constants for Memoize.
const (
	// Metrics.
	MemoizeCallsTotal  = metricz.Key("memoize.calls.total")
	MemoizeHitsTotal   = metricz.Key("memoize.hits.total")
	MemoizeMissesTotal = metricz.Key("memoize.misses.total")
	MemoizeEntries     = metricz.Key("memoize.entries")

	// Spans.
	MemoizeComputeSpan = tracez.Key("memoize.compute")

	// Tags.
	MemoizeTagName = tracez.Tag("memoize.name")
	MemoizeTagKey  = tracez.Tag("memoize.key")

	// Hook event keys.
	MemoizeEventMiss = hookz.Key("memoize.miss")
)

// MemoizeEvent is emitted via hookz after a cache miss has been computed.
type MemoizeEvent struct {
	Name      Name          // Decorator name
	Key       string        // Cache key of the argument
	Duration  time.Duration // How long the computation took
	Timestamp time.Time     // When the computation finished
}

// MemoFunc caches the results of a single-argument function.
//
// Results are keyed by the argument's printed form (fmt.Sprint). Distinct
// arguments that print the same, such as the int 1 and the string "1"
// passed through an any parameter, share one cache entry.
//
// A miss is computed without holding the cache lock, so a memoized
// function may call itself recursively through the same MemoFunc.
//
// # Observability
//
// Metrics:
//   - memoize.calls.total: Counter of calls to the decorated function
//   - memoize.hits.total: Counter of calls answered from the cache
//   - memoize.misses.total: Counter of calls that ran the wrapped function
//   - memoize.entries: Gauge of cached results
//
// Traces:
//   - memoize.compute: Span around each run of the wrapped function
//
// Events (via hooks):
//   - memoize.miss: Fired after a miss has been computed and stored
type MemoFunc[A, R any] struct {
	fn      func(A) R
	cache   map[string]R
	name    Name
	mu      sync.Mutex
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[MemoizeEvent]
}

// Memoize returns a caching version of fn.
//
//	var fib func(n int) int
//	fib = underz.Memoize(func(n int) int {
//	    if n < 2 {
//	        return n
//	    }
//	    return fib(n-1) + fib(n-2)
//	})
func Memoize[A, R any](fn func(A) R) func(A) R {
	return newMemoize(Name("memoize"), fn, false).Call
}

// NewMemoize creates an observable MemoFunc.
func NewMemoize[A, R any](name Name, fn func(A) R) *MemoFunc[A, R] {
	return newMemoize(name, fn, true)
}

func newMemoize[A, R any](name Name, fn func(A) R, observed bool) *MemoFunc[A, R] {
	metrics := metricz.New()
	metrics.Counter(MemoizeCallsTotal)
	metrics.Counter(MemoizeHitsTotal)
	metrics.Counter(MemoizeMissesTotal)
	metrics.Gauge(MemoizeEntries)

	m := &MemoFunc[A, R]{
		fn:      fn,
		cache:   make(map[string]R),
		name:    name,
		metrics: metrics,
	}
	if observed {
		m.tracer = tracez.New()
		m.hooks = hookz.New[MemoizeEvent]()
	}
	return m
}

// Call returns the cached result for arg, computing it on a miss.
func (m *MemoFunc[A, R]) Call(arg A) R {
	m.metrics.Counter(MemoizeCallsTotal).Inc()
	key := fmt.Sprint(arg)

	m.mu.Lock()
	result, ok := m.cache[key]
	m.mu.Unlock()
	if ok {
		m.metrics.Counter(MemoizeHitsTotal).Inc()
		return result
	}

	m.metrics.Counter(MemoizeMissesTotal).Inc()
	return m.compute(key, arg)
}

func (m *MemoFunc[A, R]) compute(key string, arg A) R {
	ctx := context.Background()
	if m.tracer != nil {
		spanCtx, span := m.tracer.StartSpan(ctx, MemoizeComputeSpan)
		ctx = spanCtx
		span.SetTag(MemoizeTagName, string(m.name))
		span.SetTag(MemoizeTagKey, key)
		defer span.Finish()
	}

	start := time.Now()
	result := m.fn(arg)
	duration := time.Since(start)

	m.mu.Lock()
	m.cache[key] = result
	entries := len(m.cache)
	m.mu.Unlock()
	m.metrics.Gauge(MemoizeEntries).Set(float64(entries))

	if m.hooks != nil {
		_ = m.hooks.Emit(ctx, MemoizeEventMiss, MemoizeEvent{ //nolint:errcheck
			Name:      m.name,
			Key:       key,
			Duration:  duration,
			Timestamp: time.Now(),
		})
	}
	return result
}

// Len returns the number of cached results.
func (m *MemoFunc[A, R]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cache)
}

// Name returns the name of this decorator.
func (m *MemoFunc[A, R]) Name() Name {
	return m.name
}

// Metrics returns the metrics registry for this decorator.
func (m *MemoFunc[A, R]) Metrics() *metricz.Registry {
	return m.metrics
}

// Tracer returns the tracer for this decorator.
func (m *MemoFunc[A, R]) Tracer() *tracez.Tracer {
	return m.tracer
}

// Close gracefully shuts down observability components.
func (m *MemoFunc[A, R]) Close() error {
	if m.tracer != nil {
		m.tracer.Close()
	}
	if m.hooks != nil {
		m.hooks.Close()
	}
	return nil
}

// OnMiss registers a handler for computed cache misses.
// The handler is called asynchronously.
func (m *MemoFunc[A, R]) OnMiss(handler func(context.Context, MemoizeEvent) error) error {
	_, err := m.hooks.Hook(MemoizeEventMiss, handler)
	return err
}
