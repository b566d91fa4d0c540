// Package countdown computes the time remaining until a fixed launch instant.
//
// Compute is a pure function: it never reads the wall clock and keeps no state.
// Callers recompute once per tick with the current time (see internal/scheduler).
package countdown

import (
	"fmt"
	"time"
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Result is the decomposed time remaining until the target.
// When Elapsed is true the breakdown fields are zero and carry no meaning.
type Result struct {
	Elapsed bool
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// Compute returns the time remaining from now until target.
// Reaching the target exactly counts as elapsed.
func Compute(target, now time.Time) Result {
	if !now.Before(target) {
		return Result{Elapsed: true}
	}

	delta := target.Sub(now).Milliseconds()
	return Result{
		Days:    delta / msPerDay,
		Hours:   (delta % msPerDay) / msPerHour,
		Minutes: (delta % msPerHour) / msPerMinute,
		Seconds: (delta % msPerMinute) / msPerSecond,
	}
}

// String renders the breakdown as "1d 2h 3m 4s", or "elapsed".
// Localized rendering lives in internal/i18n.
func (r Result) String() string {
	if r.Elapsed {
		return "elapsed"
	}
	return fmt.Sprintf("%dd %dh %dm %ds", r.Days, r.Hours, r.Minutes, r.Seconds)
}

// Remaining converts the breakdown back to a duration. Zero when elapsed.
func (r Result) Remaining() time.Duration {
	if r.Elapsed {
		return 0
	}
	return time.Duration(r.Days)*24*time.Hour +
		time.Duration(r.Hours)*time.Hour +
		time.Duration(r.Minutes)*time.Minute +
		time.Duration(r.Seconds)*time.Second
}
