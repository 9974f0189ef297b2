package schedule

import (
	"iter"
	"time"
)

// Slots yields candidate slot start times for one business day: the first at
// opening time, each subsequent one exactly duration later, stopping before
// any slot whose end would pass closing time. Starts are anchored to day's
// date and location.
//
// The sequence is finite and restartable; ranging over it twice produces the
// same starts. A non-positive duration yields nothing; reject it upstream
// with a validation error instead of relying on that.
func Slots(day time.Time, duration time.Duration, hours Hours) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if duration <= 0 {
			return
		}

		open := hours.Open.At(day)
		close := hours.Close.At(day)

		for cur := open; !cur.Add(duration).After(close); cur = cur.Add(duration) {
			if !yield(cur) {
				return
			}
		}
	}
}

// CollectSlots materializes the sequence, mostly for tests and callers that
// need the full day at once.
func CollectSlots(day time.Time, duration time.Duration, hours Hours) []time.Time {
	var out []time.Time
	for start := range Slots(day, duration, hours) {
		out = append(out, start)
	}
	return out
}
