// Package counter animates an integer from 0 up to a target value with an
// ease-out cubic curve.
package counter

import (
	"iter"
	"math"
	"sync/atomic"
	"time"
)

// FrameInterval is the time between two animation frames (~60fps)
const FrameInterval = 16 * time.Millisecond

// State is the lifecycle stage of a Counter
type State int

const (
	Idle State = iota
	Animating
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Animating:
		return "animating"
	case Done:
		return "done"
	}
	return "unknown"
}

// Ease is the ease-out cubic curve 1-(1-t)^3, with t clamped to [0,1]
func Ease(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(1-t, 3)
}

// Value returns the displayed value after elapsed time. It is exactly
// target once elapsed reaches duration.
func Value(target int, elapsed, duration time.Duration) int {
	if duration <= 0 || elapsed >= duration {
		return target
	}
	progress := float64(elapsed) / float64(duration)
	return int(math.Floor(float64(target) * Ease(progress)))
}

// DefaultDuration scales the animation length with the target magnitude
func DefaultDuration(target int) time.Duration {
	if target < 0 {
		target = -target
	}
	switch {
	case target < 10:
		return 1200 * time.Millisecond
	case target < 100:
		return 1600 * time.Millisecond
	default:
		return 2000 * time.Millisecond
	}
}

// Animate returns the values shown on successive frames, from 0 to target.
// Repeated values are skipped and the last value is always target. A zero
// target yields a single 0.
//
// The sequence can only be consumed once; ranging over it again yields
// nothing.
func Animate(target int, duration time.Duration) iter.Seq[int] {
	var used atomic.Bool

	return func(yield func(int) bool) {
		if used.Swap(true) {
			return
		}
		if target == 0 {
			yield(0)
			return
		}

		last := 0
		if !yield(last) {
			return
		}
		for elapsed := FrameInterval; elapsed < duration; elapsed += FrameInterval {
			v := Value(target, elapsed, duration)
			if v == last {
				continue
			}
			last = v
			if !yield(v) {
				return
			}
		}
		if last != target {
			yield(target)
		}
	}
}
