package chrono

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-datekoans/internal/config"
)

// dayLength is the exact span of one wall-clock day.
const dayLength = 24 * time.Hour

// TimeOfDay is a wall-clock value (hour, minute, second, nanosecond) without
// a date or zone. Each field has a dedicated accessor rather than a generic
// field getter.
type TimeOfDay struct {
	hour, minute, second, nano int
}

// ClockOf constructs a TimeOfDay from explicit hour, minute and second.
// Out-of-range fields are normalized the way time.Date normalizes them.
func ClockOf(hour, minute, second int) TimeOfDay {
	t := time.Date(2000, time.January, 1, hour, minute, second, 0, time.UTC)
	return TimeOfDay{t.Hour(), t.Minute(), t.Second(), 0}
}

// ParseClock reads a time-of-day in "15:04" or "15:04:05" form.
func ParseClock(value string) (TimeOfDay, error) {
	for _, layout := range []string{config.LayoutClockSecond, config.LayoutClockMinute} {
		if t, err := time.Parse(layout, value); err == nil {
			return TimeOfDay{t.Hour(), t.Minute(), t.Second(), t.Nanosecond()}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("%s: %q", config.ErrClockParse, value)
}

// Hour returns the hour of the day (0-23).
func (c TimeOfDay) Hour() int { return c.hour }

// Minute returns the minute of the hour (0-59).
func (c TimeOfDay) Minute() int { return c.minute }

// Second returns the second of the minute (0-59).
func (c TimeOfDay) Second() int { return c.second }

// Nanosecond returns the sub-second precision (0-999999999).
func (c TimeOfDay) Nanosecond() int { return c.nano }

// Add returns the clock shifted by an exact duration, wrapping around
// midnight in either direction. Add(-2 * time.Hour) on "10:30" yields "08:30".
func (c TimeOfDay) Add(d time.Duration) TimeOfDay {
	total := (c.sinceMidnight() + d) % dayLength
	if total < 0 {
		total += dayLength
	}
	return TimeOfDay{
		hour:   int(total / time.Hour),
		minute: int(total % time.Hour / time.Minute),
		second: int(total % time.Minute / time.Second),
		nano:   int(total % time.Second),
	}
}

// sinceMidnight converts the clock to its exact offset from 00:00.
func (c TimeOfDay) sinceMidnight() time.Duration {
	return time.Duration(c.hour)*time.Hour +
		time.Duration(c.minute)*time.Minute +
		time.Duration(c.second)*time.Second +
		time.Duration(c.nano)
}

// Format renders the clock using a standard time layout.
func (c TimeOfDay) Format(layout string) string {
	anchor := time.Date(2000, time.January, 1, c.hour, c.minute, c.second, c.nano, time.UTC)
	return anchor.Format(layout)
}

// String renders the clock in "15:04" form, extended with seconds only when
// they carry information.
func (c TimeOfDay) String() string {
	if c.second != 0 || c.nano != 0 {
		return c.Format(config.LayoutClockSecond)
	}
	return c.Format(config.LayoutClockMinute)
}
