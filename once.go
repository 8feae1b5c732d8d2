package underz

import (
	"context"
	"sync"
	"time"

	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Observability constants for Once.
const (
	// Metrics.
	OnceCallsTotal       = metricz.Key("once.calls.total")
	OnceInvocationsTotal = metricz.Key("once.invocations.total")

	// Spans.
	OnceInvokeSpan = tracez.Key("once.invoke")

	// Tags.
	OnceTagName = tracez.Tag("once.name")

	// Hook event keys.
	OnceEventInvoked = hookz.Key("once.invoked")
)

// OnceEvent is emitted via hookz after the wrapped function has run.
type OnceEvent struct {
	Name      Name          // Decorator name
	Duration  time.Duration // How long the wrapped function took
	Timestamp time.Time     // When the invocation finished
}

// OnceFunc runs a function at most once and remembers its result.
//
// The first call invokes the wrapped function with that call's arguments.
// Every later call returns the first result and ignores its own arguments.
// If the wrapped function panics, nothing is remembered and the next call
// tries again.
//
// The first run happens under the OnceFunc's lock, so concurrent callers
// wait for it and never see a zero result. The wrapped function must not
// call the same OnceFunc: that call would deadlock.
//
// Example:
//
//	initialize := underz.NewOnce("init", func(args ...string) *Config {
//	    return loadConfig(args...)
//	})
//	defer initialize.Close()
//
//	cfg := initialize.Call("prod.yaml")
//	same := initialize.Call("dev.yaml") // still the prod config
//
// # Observability
//
// Metrics:
//   - once.calls.total: Counter of calls to the decorated function
//   - once.invocations.total: Counter of runs of the wrapped function
//
// Traces:
//   - once.invoke: Span around the single run of the wrapped function
//
// Events (via hooks):
//   - once.invoked: Fired after the wrapped function returns
type OnceFunc[A, R any] struct {
	fn      func(args ...A) R
	result  R
	name    Name
	mu      sync.Mutex
	done    bool
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[OnceEvent]
}

// Once returns a function that runs fn on its first call only and returns
// that first result on every call.
func Once[A, R any](fn func(args ...A) R) func(args ...A) R {
	return newOnce(Name("once"), fn, false).Call
}

// NewOnce creates an observable OnceFunc.
func NewOnce[A, R any](name Name, fn func(args ...A) R) *OnceFunc[A, R] {
	return newOnce(name, fn, true)
}

func newOnce[A, R any](name Name, fn func(args ...A) R, observed bool) *OnceFunc[A, R] {
	metrics := metricz.New()
	metrics.Counter(OnceCallsTotal)
	metrics.Counter(OnceInvocationsTotal)

	o := &OnceFunc[A, R]{
		fn:      fn,
		name:    name,
		metrics: metrics,
	}
	if observed {
		o.tracer = tracez.New()
		o.hooks = hookz.New[OnceEvent]()
	}
	return o
}

// Call invokes the decorated function.
func (o *OnceFunc[A, R]) Call(args ...A) R {
	o.metrics.Counter(OnceCallsTotal).Inc()

	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.done {
		o.result = o.invoke(args)
		o.done = true
	}
	return o.result
}

func (o *OnceFunc[A, R]) invoke(args []A) R {
	ctx := context.Background()
	if o.tracer != nil {
		spanCtx, span := o.tracer.StartSpan(ctx, OnceInvokeSpan)
		ctx = spanCtx
		span.SetTag(OnceTagName, string(o.name))
		defer span.Finish()
	}

	start := time.Now()
	result := o.fn(args...)
	o.metrics.Counter(OnceInvocationsTotal).Inc()

	if o.hooks != nil {
		_ = o.hooks.Emit(ctx, OnceEventInvoked, OnceEvent{ //nolint:errcheck
			Name:      o.name,
			Duration:  time.Since(start),
			Timestamp: time.Now(),
		})
	}
	return result
}

// Done reports whether the wrapped function has run.
func (o *OnceFunc[A, R]) Done() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.done
}

// Name returns the name of this decorator.
func (o *OnceFunc[A, R]) Name() Name {
	return o.name
}

// Metrics returns the metrics registry for this decorator.
func (o *OnceFunc[A, R]) Metrics() *metricz.Registry {
	return o.metrics
}

// Tracer returns the tracer for this decorator.
func (o *OnceFunc[A, R]) Tracer() *tracez.Tracer {
	return o.tracer
}

// Close gracefully shuts down observability components.
func (o *OnceFunc[A, R]) Close() error {
	if o.tracer != nil {
		o.tracer.Close()
	}
	if o.hooks != nil {
		o.hooks.Close()
	}
	return nil
}

// OnInvoked registers a handler for when the wrapped function has run.
// The handler is called asynchronously.
func (o *OnceFunc[A, R]) OnInvoked(handler func(context.Context, OnceEvent) error) error {
	_, err := o.hooks.Hook(OnceEventInvoked, handler)
	return err
}
