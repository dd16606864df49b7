// Package age computes the durations shown next to todos.
package age

import "time"

// AgeData returns how long ago then was. Future times clamp to zero.
// The bool is false when then is unset.
func AgeData(then time.Time, now time.Time) (time.Duration, bool) {
	if then.IsZero() {
		return 0, false
	}
	if then.After(now) {
		return 0, true
	}
	return now.Sub(then), true
}

// DueData returns the time left until deadline. A negative duration means
// the deadline has passed. The bool is false when deadline is unset.
func DueData(deadline time.Time, now time.Time) (time.Duration, bool) {
	if deadline.IsZero() {
		return 0, false
	}
	return deadline.Sub(now), true
}
