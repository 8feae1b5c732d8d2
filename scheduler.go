package underz

import (
	"time"

	"github.com/zoobzio/clockz"
)

// Scheduler runs callbacks after a delay. Every clockz.Clock satisfies it,
// so clockz.RealClock serves production code and clockz.NewFakeClock()
// gives tests full control over time.
//
// The returned timer is a handle only: nothing in this package inspects or
// stops it.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) clockz.Timer
}

// DefaultScheduler backs Delay and every Throttle that has not been given a
// clock.
var DefaultScheduler Scheduler = clockz.RealClock

// Name identifies a decorated function in metrics, spans and events.
type Name string
