// Package anim interpolates displayed values toward their targets.
//
// A Tween eases from one value to another over a fixed duration using the
// CSS ease-in-out curve, cubic-bezier(0.42, 0, 0.58, 1).
package anim

import (
	"math"
	"time"
)

// DefaultDuration is the time a gauge takes to reach a new value.
const DefaultDuration = 2500 * time.Millisecond

// Tween is an interpolation from From to To starting at Start.
// The zero Tween is settled at 0.
type Tween struct {
	From     float64
	To       float64
	Start    time.Time
	Duration time.Duration
}

// New returns a Tween from -> to beginning at start.
func New(from, to float64, start time.Time, d time.Duration) Tween {
	return Tween{From: from, To: to, Start: start, Duration: d}
}

// Settled returns a Tween that already rests at v.
func Settled(v float64) Tween {
	return Tween{From: v, To: v}
}

// At returns the interpolated value at now.
func (t Tween) At(now time.Time) float64 {
	if t.Duration <= 0 || t.From == t.To {
		return t.To
	}
	elapsed := now.Sub(t.Start)
	if elapsed <= 0 {
		return t.From
	}
	if elapsed >= t.Duration {
		return t.To
	}
	progress := float64(elapsed) / float64(t.Duration)
	return t.From + (t.To-t.From)*EaseInOut(progress)
}

// Done reports whether the tween has reached its target at now.
func (t Tween) Done(now time.Time) bool {
	return t.Duration <= 0 || t.From == t.To || now.Sub(t.Start) >= t.Duration
}

// Retarget starts a new tween from the value shown at now toward to.
func (t Tween) Retarget(to float64, now time.Time, d time.Duration) Tween {
	return New(t.At(now), to, now, d)
}

const (
	easeX1 = 0.42
	easeX2 = 0.58
)

// EaseInOut maps linear progress x in [0,1] onto cubic-bezier(0.42, 0, 0.58, 1).
func EaseInOut(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	// Solve bezierX(s) = x for the curve parameter s. bezierX is monotonic,
	// so bisection always converges.
	lo, hi := 0.0, 1.0
	s := x
	for i := 0; i < 40; i++ {
		bx := bezier(s, easeX1, easeX2)
		if math.Abs(bx-x) < 1e-7 {
			break
		}
		if bx < x {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return bezier(s, 0, 1)
}

// bezier evaluates a 1-D cubic bezier with endpoints 0 and 1.
func bezier(s, p1, p2 float64) float64 {
	inv := 1 - s
	return 3*inv*inv*s*p1 + 3*inv*s*s*p2 + s*s*s
}
