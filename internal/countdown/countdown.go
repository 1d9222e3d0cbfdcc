// Package countdown turns the distance to a target instant into the
// day/hour/minute/second readout shown by the widget.
package countdown

import (
	"fmt"
	"time"
)

const (
	secondsPerDay    = 86400
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

const (
	// Placeholder is shown before the first tick completes.
	Placeholder = "--d --:--:--"

	// ReachedText replaces the readout once the target has passed.
	ReachedText = "🎊 00:00:00"

	// ReachedSubtitle replaces the hint once the target has passed.
	ReachedSubtitle = "Congratulations!"
)

// Breakdown is a whole-second duration split into calendar-free units.
type Breakdown struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// Remaining returns target - now.
func Remaining(target, now time.Time) time.Duration {
	return target.Sub(now)
}

// Reached reports whether a remaining duration means the target has passed.
func Reached(remaining time.Duration) bool {
	return remaining <= 0
}

// Decompose splits a non-negative number of seconds. Negative input is
// treated as zero.
func Decompose(totalSeconds int64) Breakdown {
	if totalSeconds < 0 {
		totalSeconds = 0
	}

	remainder := totalSeconds % secondsPerDay
	return Breakdown{
		Days:    totalSeconds / secondsPerDay,
		Hours:   remainder / secondsPerHour,
		Minutes: (remainder % secondsPerHour) / secondsPerMinute,
		Seconds: remainder % secondsPerMinute,
	}
}

// FromDuration floors d to whole seconds and decomposes it.
func FromDuration(d time.Duration) Breakdown {
	return Decompose(int64(d / time.Second))
}

// String renders the readout, e.g. "1589d Days 07:04:09".
func (b Breakdown) String() string {
	return fmt.Sprintf("%dd Days %02d:%02d:%02d", b.Days, b.Hours, b.Minutes, b.Seconds)
}
