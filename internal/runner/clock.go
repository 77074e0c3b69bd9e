package runner

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// The runner uses it for lesson timing and for stamping the almanac feed.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
