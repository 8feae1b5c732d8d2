package underz

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Observability constants for Throttle.
const (
	// Metrics.
	ThrottleCallsTotal       = metricz.Key("throttle.calls.total")
	ThrottleInvocationsTotal = metricz.Key("throttle.invocations.total")
	ThrottleScheduledTotal   = metricz.Key("throttle.scheduled.total")
	ThrottleSuppressedTotal  = metricz.Key("throttle.suppressed.total")
	ThrottleDurationMs       = metricz.Key("throttle.duration.ms")

	// Spans.
	ThrottleInvokeSpan = tracez.Key("throttle.invoke")

	// Tags.
	ThrottleTagName     = tracez.Tag("throttle.name")
	ThrottleTagTrailing = tracez.Tag("throttle.trailing")

	// Hook event keys.
	ThrottleEventInvoked   = hookz.Key("throttle.invoked")
	ThrottleEventScheduled = hookz.Key("throttle.scheduled")
)

// ThrottleEvent is emitted via hookz when the wrapped function runs or a
// trailing run is scheduled.
type ThrottleEvent struct {
	Name      Name          // Decorator name
	Trailing  bool          // Whether the run was a scheduled trailing run
	Delay     time.Duration // Time until the trailing run (for scheduled)
	Duration  time.Duration // How long the wrapped function took (for invoked)
	Timestamp time.Time     // Clock time the call or run was due
}

// ThrottleFunc lets the wrapped function run at most once per wait window.
//
// A call runs the wrapped function immediately when it has never run or
// when wait has elapsed since the last run. A call inside the window
// schedules a single trailing run, with that call's arguments, for the
// moment the window closes; further calls while that run is pending do
// nothing. Every call returns the most recent result, which can be stale
// relative to the call's own arguments.
//
// The window is measured on the decorator's clock, so a fake clock makes
// the behaviour fully deterministic:
//
//	clock := clockz.NewFakeClock()
//	save := underz.NewThrottle("autosave", persist, time.Second).WithClock(clock)
//	save.Call(doc) // runs now
//	save.Call(doc) // schedules a trailing run
//	clock.Advance(time.Second)
//
// # Observability
//
// Metrics:
//   - throttle.calls.total: Counter of calls to the decorated function
//   - throttle.invocations.total: Counter of runs of the wrapped function
//   - throttle.scheduled.total: Counter of scheduled trailing runs
//   - throttle.suppressed.total: Counter of calls dropped while a run was pending
//   - throttle.duration.ms: Gauge of the last run's duration
//
// Traces:
//   - throttle.invoke: Span around each run of the wrapped function
//
// Events (via hooks):
//   - throttle.invoked: Fired after each run
//   - throttle.scheduled: Fired when a trailing run is scheduled
//
//nolint:govet // fieldalignment: readability over struct size
type ThrottleFunc[A, R any] struct {
	fn         func(args ...A) R
	result     R
	last       time.Time
	clock      Scheduler
	name       Name
	wait       time.Duration
	mu         sync.Mutex
	invoked    bool
	pending    bool
	generation uint64 // runs so far; stale trailing callbacks compare against it
	metrics    *metricz.Registry
	tracer     *tracez.Tracer
	hooks      *hookz.Hooks[ThrottleEvent]
}

// Throttle returns a function that runs fn at most once per wait.
func Throttle[A, R any](fn func(args ...A) R, wait time.Duration) func(args ...A) R {
	return newThrottle(Name("throttle"), fn, wait, false).Call
}

// NewThrottle creates an observable ThrottleFunc running on the real clock.
func NewThrottle[A, R any](name Name, fn func(args ...A) R, wait time.Duration) *ThrottleFunc[A, R] {
	return newThrottle(name, fn, wait, true)
}

func newThrottle[A, R any](name Name, fn func(args ...A) R, wait time.Duration, observed bool) *ThrottleFunc[A, R] {
	metrics := metricz.New()
	metrics.Counter(ThrottleCallsTotal)
	metrics.Counter(ThrottleInvocationsTotal)
	metrics.Counter(ThrottleScheduledTotal)
	metrics.Counter(ThrottleSuppressedTotal)
	metrics.Gauge(ThrottleDurationMs)

	t := &ThrottleFunc[A, R]{
		fn:      fn,
		name:    name,
		wait:    wait,
		clock:   DefaultScheduler,
		metrics: metrics,
	}
	if observed {
		t.tracer = tracez.New()
		t.hooks = hookz.New[ThrottleEvent]()
	}
	return t
}

// Call invokes the decorated function.
func (t *ThrottleFunc[A, R]) Call(args ...A) R {
	t.metrics.Counter(ThrottleCallsTotal).Inc()

	// The clock is read outside t.mu: a fake clock fires timers while
	// holding its own lock, and the trailing callback takes t.mu.
	t.mu.Lock()
	clock := t.getClock()
	t.mu.Unlock()
	now := clock.Now()

	t.mu.Lock()
	remaining := t.wait - now.Sub(t.last)

	switch {
	case !t.invoked || remaining <= 0:
		t.markInvoked(now)
		t.mu.Unlock()
		return t.run(args, false, now)

	case t.pending:
		t.metrics.Counter(ThrottleSuppressedTotal).Inc()
		result := t.result
		t.mu.Unlock()
		return result
	}

	t.pending = true
	generation := t.generation
	deadline := now.Add(remaining)
	result := t.result
	t.mu.Unlock()

	bound := append([]A(nil), args...)
	clock.AfterFunc(remaining, func() {
		t.fire(generation, deadline, bound)
	})
	t.metrics.Counter(ThrottleScheduledTotal).Inc()
	t.emit(ThrottleEventScheduled, ThrottleEvent{
		Name:      t.name,
		Trailing:  true,
		Delay:     remaining,
		Timestamp: now,
	})
	return result
}

// fire runs a scheduled trailing call unless a newer run has opened the
// window since it was scheduled. It never touches the clock.
func (t *ThrottleFunc[A, R]) fire(generation uint64, deadline time.Time, args []A) {
	t.mu.Lock()
	if t.generation != generation {
		t.mu.Unlock()
		return
	}
	t.markInvoked(deadline)
	t.mu.Unlock()
	t.run(args, true, deadline)
}

// markInvoked opens a new window starting at at. Callers hold t.mu.
func (t *ThrottleFunc[A, R]) markInvoked(at time.Time) {
	t.invoked = true
	t.pending = false
	t.last = at
	t.generation++
}

func (t *ThrottleFunc[A, R]) run(args []A, trailing bool, at time.Time) R {
	ctx := context.Background()
	if t.tracer != nil {
		spanCtx, span := t.tracer.StartSpan(ctx, ThrottleInvokeSpan)
		ctx = spanCtx
		span.SetTag(ThrottleTagName, string(t.name))
		span.SetTag(ThrottleTagTrailing, fmt.Sprintf("%t", trailing))
		defer span.Finish()
	}

	start := time.Now()
	result := t.fn(args...)
	duration := time.Since(start)

	t.mu.Lock()
	t.result = result
	t.mu.Unlock()

	t.metrics.Counter(ThrottleInvocationsTotal).Inc()
	t.metrics.Gauge(ThrottleDurationMs).Set(float64(duration.Milliseconds()))
	t.emitCtx(ctx, ThrottleEventInvoked, ThrottleEvent{
		Name:      t.name,
		Trailing:  trailing,
		Duration:  duration,
		Timestamp: at,
	})
	return result
}

func (t *ThrottleFunc[A, R]) emit(key hookz.Key, event ThrottleEvent) {
	t.emitCtx(context.Background(), key, event)
}

func (t *ThrottleFunc[A, R]) emitCtx(ctx context.Context, key hookz.Key, event ThrottleEvent) {
	if t.hooks == nil {
		return
	}
	_ = t.hooks.Emit(ctx, key, event) //nolint:errcheck
}

// Pending reports whether a trailing run is scheduled.
func (t *ThrottleFunc[A, R]) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending
}

// Wait returns the window length.
func (t *ThrottleFunc[A, R]) Wait() time.Duration {
	return t.wait
}

// WithClock sets a custom clock for testing. Any Scheduler works; every
// clockz.Clock is one.
func (t *ThrottleFunc[A, R]) WithClock(clock Scheduler) *ThrottleFunc[A, R] {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.clock = clock
	return t
}

// getClock returns the clock to use. Callers hold t.mu.
func (t *ThrottleFunc[A, R]) getClock() Scheduler {
	if t.clock == nil {
		return clockz.RealClock
	}
	return t.clock
}

// Name returns the name of this decorator.
func (t *ThrottleFunc[A, R]) Name() Name {
	return t.name
}

// Metrics returns the metrics registry for this decorator.
func (t *ThrottleFunc[A, R]) Metrics() *metricz.Registry {
	return t.metrics
}

// Tracer returns the tracer for this decorator.
func (t *ThrottleFunc[A, R]) Tracer() *tracez.Tracer {
	return t.tracer
}

// Close gracefully shuts down observability components. A pending trailing
// run still fires.
func (t *ThrottleFunc[A, R]) Close() error {
	if t.tracer != nil {
		t.tracer.Close()
	}
	if t.hooks != nil {
		t.hooks.Close()
	}
	return nil
}

// OnInvoked registers a handler for runs of the wrapped function.
// The handler is called asynchronously.
func (t *ThrottleFunc[A, R]) OnInvoked(handler func(context.Context, ThrottleEvent) error) error {
	_, err := t.hooks.Hook(ThrottleEventInvoked, handler)
	return err
}

// OnScheduled registers a handler for scheduled trailing runs.
// The handler is called asynchronously.
func (t *ThrottleFunc[A, R]) OnScheduled(handler func(context.Context, ThrottleEvent) error) error {
	_, err := t.hooks.Hook(ThrottleEventScheduled, handler)
	return err
}
