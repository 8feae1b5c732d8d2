package underz

import (
	"time"

	"github.com/zoobzio/clockz"
)

// Delay schedules fn(args...) to run once wait has elapsed and returns
// immediately. The arguments are captured at call time.
//
//	underz.Delay(func(msgs ...string) { log.Println(msgs) }, time.Second, "a", "b")
func Delay[A any](fn func(args ...A), wait time.Duration, args ...A) clockz.Timer {
	return DelayOn(DefaultScheduler, fn, wait, args...)
}

// DelayOn is Delay with an explicit scheduler.
func DelayOn[A any](s Scheduler, fn func(args ...A), wait time.Duration, args ...A) clockz.Timer {
	bound := append([]A(nil), args...)
	return s.AfterFunc(wait, func() {
		fn(bound...)
	})
}
