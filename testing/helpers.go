// Package testing provides test utilities for code built on underz.
//
// This package includes mock functions to decorate, assertion helpers and
// deterministic random sources, so decorated functions and shuffles can be
// tested without timing guesswork.
//
// Example usage:
//
//	func TestAutosave(t *testing.T) {
//		mock := testing.NewMockFunc[string, int](t, "save").WithReturn(1)
//		clock := clockz.NewFakeClock()
//
//		save := underz.NewThrottle("autosave", mock.Func(), time.Second).WithClock(clock)
//		save.Call("draft")
//		save.Call("draft")
//
//		testing.AssertCalled(t, mock, 1)
//	}
package testing

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/zoobzio/underz"
)

// MockFunc is a configurable function to hand to the underz decorators.
// It records every call and returns a fixed result, optionally after a
// delay or by panicking.
type MockFunc[A, R any] struct { //nolint:govet // fieldalignment: Test helper struct optimized for functionality over memory efficiency
	t           *testing.T
	name        string
	callCount   int64
	lastArgs    []A
	returnVal   R
	delay       time.Duration
	panicMsg    string
	mu          sync.RWMutex
	callHistory []MockCall[A]
	maxHistory  int
}

// MockCall represents a single call to the mock function.
type MockCall[A any] struct {
	Args      []A
	Timestamp time.Time
}

// NewMockFunc creates a new mock function for testing.
func NewMockFunc[A, R any](t *testing.T, name string) *MockFunc[A, R] {
	return &MockFunc[A, R]{
		t:          t,
		name:       name,
		maxHistory: 100, // Keep last 100 calls by default
	}
}

// WithReturn configures the value every subsequent call returns.
func (m *MockFunc[A, R]) WithReturn(val R) *MockFunc[A, R] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.returnVal = val
	return m
}

// WithDelay configures the mock to sleep before returning.
func (m *MockFunc[A, R]) WithDelay(d time.Duration) *MockFunc[A, R] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delay = d
	return m
}

// WithPanic configures the mock to panic with a specific message.
func (m *MockFunc[A, R]) WithPanic(msg string) *MockFunc[A, R] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.panicMsg = msg
	return m
}

// WithHistorySize configures how many calls to keep in history.
// Set to 0 to disable history tracking.
func (m *MockFunc[A, R]) WithHistorySize(size int) *MockFunc[A, R] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.maxHistory = size
	if size == 0 {
		m.callHistory = nil
	} else if len(m.callHistory) > size {
		m.callHistory = m.callHistory[len(m.callHistory)-size:]
	}
	return m
}

// Name returns the name of the mock function.
func (m *MockFunc[A, R]) Name() underz.Name {
	return underz.Name(m.name)
}

// Call records the call and returns the configured value.
func (m *MockFunc[A, R]) Call(args ...A) R {
	atomic.AddInt64(&m.callCount, 1)

	m.mu.Lock()
	m.lastArgs = append([]A(nil), args...)
	if m.maxHistory > 0 {
		m.callHistory = append(m.callHistory, MockCall[A]{
			Args:      m.lastArgs,
			Timestamp: time.Now(),
		})
		if len(m.callHistory) > m.maxHistory {
			m.callHistory = m.callHistory[1:] // Remove oldest
		}
	}
	delay := m.delay
	returnVal := m.returnVal
	panicMsg := m.panicMsg
	m.mu.Unlock()

	if panicMsg != "" {
		panic(panicMsg)
	}
	if delay > 0 {
		time.Sleep(delay)
	}
	return returnVal
}

// Func returns Call as a variadic function, the shape Once, Delay and
// Throttle wrap.
func (m *MockFunc[A, R]) Func() func(args ...A) R {
	return m.Call
}

// Unary returns Call as a single-argument function, the shape Memoize wraps.
func (m *MockFunc[A, R]) Unary() func(A) R {
	return func(arg A) R {
		return m.Call(arg)
	}
}

// Proc returns Call without a result, the shape Delay wraps.
func (m *MockFunc[A, R]) Proc() func(args ...A) {
	return func(args ...A) {
		m.Call(args...)
	}
}

// CallCount returns the number of times the mock has been called.
func (m *MockFunc[A, R]) CallCount() int {
	return int(atomic.LoadInt64(&m.callCount))
}

// LastArgs returns the arguments of the most recent call.
func (m *MockFunc[A, R]) LastArgs() []A {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]A(nil), m.lastArgs...)
}

// CallHistory returns a copy of all recorded calls.
// Returns nil if history tracking is disabled.
func (m *MockFunc[A, R]) CallHistory() []MockCall[A] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.maxHistory == 0 {
		return nil
	}
	history := make([]MockCall[A], len(m.callHistory))
	copy(history, m.callHistory)
	return history
}

// Reset clears all call tracking.
func (m *MockFunc[A, R]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	atomic.StoreInt64(&m.callCount, 0)
	m.lastArgs = nil
	m.callHistory = nil
}

// Assertion Helpers

// AssertCalled verifies that a mock function was called exactly n times.
func AssertCalled[A, R any](t *testing.T, mock *MockFunc[A, R], expectedCalls int) {
	t.Helper()
	actualCalls := mock.CallCount()
	if actualCalls != expectedCalls {
		t.Errorf("expected mock function %s to be called %d times, but was called %d times",
			mock.name, expectedCalls, actualCalls)
	}
}

// AssertNotCalled verifies that a mock function was never called.
func AssertNotCalled[A, R any](t *testing.T, mock *MockFunc[A, R]) {
	t.Helper()
	AssertCalled(t, mock, 0)
}

// AssertCalledWith verifies the arguments of the most recent call.
func AssertCalledWith[A comparable, R any](t *testing.T, mock *MockFunc[A, R], expectedArgs ...A) {
	t.Helper()
	if mock.CallCount() == 0 {
		t.Errorf("expected mock function %s to be called with %v, but it was never called",
			mock.name, expectedArgs)
		return
	}

	actualArgs := mock.LastArgs()
	if !equalArgs(actualArgs, expectedArgs) {
		t.Errorf("expected mock function %s to be called with %v, but was called with %v",
			mock.name, expectedArgs, actualArgs)
	}
}

// AssertCalledBetween verifies that a mock function was called between min and max times.
func AssertCalledBetween[A, R any](t *testing.T, mock *MockFunc[A, R], minCalls, maxCalls int) {
	t.Helper()
	actualCalls := mock.CallCount()
	if actualCalls < minCalls || actualCalls > maxCalls {
		t.Errorf("expected mock function %s to be called between %d and %d times, but was called %d times",
			mock.name, minCalls, maxCalls, actualCalls)
	}
}

func equalArgs[A comparable](a, b []A) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SequenceSource is an underz.RandomSource that replays fixed values in
// order and wraps around at the end.
type SequenceSource struct {
	mu     sync.Mutex
	values []float64
	next   int
}

// NewSequenceSource creates a source replaying values. Every value must lie
// in [0, 1).
func NewSequenceSource(values ...float64) *SequenceSource {
	for _, v := range values {
		if v < 0 || v >= 1 {
			panic(fmt.Sprintf("sequence source value %v outside [0, 1)", v))
		}
	}
	return &SequenceSource{values: append([]float64(nil), values...)}
}

// Float64 returns the next value.
func (s *SequenceSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// WaitForCalls waits for a mock function to be called at least n times,
// with a timeout. Returns true if the expected calls were reached.
func WaitForCalls[A, R any](mock *MockFunc[A, R], expectedCalls int, timeout time.Duration) bool {
	start := time.Now()
	for time.Since(start) < timeout {
		if mock.CallCount() >= expectedCalls {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return false
}

// ParallelTest runs testFunc in parallel on the given number of goroutines
// and waits for all of them.
func ParallelTest(t *testing.T, goroutines int, testFunc func(int)) {
	t.Helper()

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			testFunc(id)
		}(i)
	}

	wg.Wait()
}

// MeasureLatency measures the latency of a function call.
func MeasureLatency(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}
