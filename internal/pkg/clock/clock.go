package clock

import "time"

// Clock abstracts wall-clock "now" so working-day calculations are
// reproducible in tests without touching global time.
type Clock interface {
	Now() time.Time
	// Today returns the current date truncated to midnight UTC.
	Today() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

func (systemClock) Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// System returns the real wall clock.
func System() Clock { return systemClock{} }

type fixedClock struct {
	at time.Time
}

func (f fixedClock) Now() time.Time { return f.at }

func (f fixedClock) Today() time.Time {
	return time.Date(f.at.Year(), f.at.Month(), f.at.Day(), 0, 0, 0, 0, time.UTC)
}

// Fixed returns a clock pinned to the given instant.
func Fixed(at time.Time) Clock { return fixedClock{at: at} }
