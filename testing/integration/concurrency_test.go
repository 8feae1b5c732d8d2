package integration

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/zoobzio/clockz"

	"github.com/zoobzio/underz"
	underztest "github.com/zoobzio/underz/testing"
)

// TestConcurrentDecorators runs every decorator from many goroutines and
// checks that the per-decorator state stays consistent.
func TestConcurrentDecorators(t *testing.T) {
	t.Run("Once under contention", func(t *testing.T) {
		mock := underztest.NewMockFunc[int, string](t, "init").
			WithReturn("ready").
			WithDelay(5 * time.Millisecond)
		initialize := underz.NewOnce("init", mock.Func())
		defer initialize.Close()

		var wrong atomic.Int32
		underztest.ParallelTest(t, 50, func(id int) {
			if initialize.Call(id) != "ready" {
				wrong.Add(1)
			}
		})

		underztest.AssertCalled(t, mock, 1)
		if wrong.Load() != 0 {
			t.Errorf("%d callers saw a result other than the first", wrong.Load())
		}
		if got := initialize.Metrics().Counter(underz.OnceCallsTotal).Value(); got != 50 {
			t.Errorf("expected 50 calls, got %v", got)
		}
	})

	t.Run("Memoize under contention", func(t *testing.T) {
		square := underz.NewMemoize("square", func(n int) int { return n * n })
		defer square.Close()

		var wrong atomic.Int32
		underztest.ParallelTest(t, 40, func(int) {
			for n := 0; n < 25; n++ {
				if square.Call(n) != n*n {
					wrong.Add(1)
				}
			}
		})

		if wrong.Load() != 0 {
			t.Errorf("%d calls returned a wrong result", wrong.Load())
		}
		if square.Len() != 25 {
			t.Errorf("expected 25 cached entries, got %d", square.Len())
		}
		metrics := square.Metrics()
		hits := metrics.Counter(underz.MemoizeHitsTotal).Value()
		misses := metrics.Counter(underz.MemoizeMissesTotal).Value()
		if hits+misses != 1000 {
			t.Errorf("expected hits and misses to add up to 1000, got %v + %v", hits, misses)
		}
		if misses < 25 {
			t.Errorf("expected at least one miss per argument, got %v", misses)
		}
	})

	t.Run("Throttle burst from many goroutines", func(t *testing.T) {
		clock := clockz.NewFakeClock()
		mock := underztest.NewMockFunc[string, int](t, "flush").WithReturn(1)
		flush := underz.NewThrottle("flush", mock.Func(), time.Second).WithClock(clock)
		defer flush.Close()

		underztest.ParallelTest(t, 100, func(id int) {
			flush.Call(fmt.Sprintf("caller-%d", id))
		})
		underztest.AssertCalled(t, mock, 1)

		clock.Advance(time.Second)
		if !underztest.WaitForCalls(mock, 2, time.Second) {
			t.Fatal("expected the trailing run")
		}

		metrics := flush.Metrics()
		if got := metrics.Counter(underz.ThrottleScheduledTotal).Value(); got != 1 {
			t.Errorf("expected 1 scheduled run, got %v", got)
		}
		if got := metrics.Counter(underz.ThrottleSuppressedTotal).Value(); got != 98 {
			t.Errorf("expected 98 suppressed calls, got %v", got)
		}
		time.Sleep(10 * time.Millisecond)
		underztest.AssertCalled(t, mock, 2)
	})

	t.Run("Shared collections stay untouched", func(t *testing.T) {
		shared := []int{5, 3, 9, 1, 7, 3, 5}
		original := append([]int(nil), shared...)

		underztest.ParallelTest(t, 20, func(id int) {
			seq := underz.Sequence(shared...)
			_ = underz.SortBy(seq, func(n int, _ underz.Key) int { return n })
			_ = underz.Uniq(shared)
			_ = underz.ShuffleWith(shared, underztest.NewSequenceSource(0.3, 0.6, 0.1))
			_ = underz.Filter(seq, func(n int) bool { return n%2 == id%2 })
		})

		for i := range shared {
			if shared[i] != original[i] {
				t.Fatalf("input mutated: got %v, want %v", shared, original)
			}
		}
	})
}
