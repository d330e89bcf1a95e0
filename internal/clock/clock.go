// Package clock supplies the time stamped on confirmed orders.
package clock

import "time"

// Clock reports the current time in UTC.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

// NewSystem returns the clock the application runs with.
func NewSystem() Clock {
	return wallClock{}
}

func (wallClock) Now() time.Time {
	return time.Now().UTC()
}

type frozenClock struct {
	at time.Time
}

// NewFixed returns a clock stuck at t, so confirmation times and
// journal lines can be asserted exactly.
func NewFixed(t time.Time) Clock {
	return frozenClock{at: t.UTC()}
}

func (f frozenClock) Now() time.Time {
	return f.at
}
