package chrono

import (
	"time"

	"github.com/tartampluch/go-datekoans/internal/config"
)

// DateTime combines a calendar date and a time-of-day, without a zone.
type DateTime struct {
	// Anchored to UTC so DateTime values are ==-comparable.
	t time.Time
}

// DateTimeOf constructs a DateTime from explicit fields, at second and
// sub-second zero.
func DateTimeOf(year int, month time.Month, day, hour, minute int) DateTime {
	return DateTime{time.Date(year, month, day, hour, minute, 0, 0, time.UTC)}
}

// Date returns the calendar-date part.
func (dt DateTime) Date() Date {
	year, month, day := dt.t.Date()
	return DateOf(year, month, day)
}

// Clock returns the time-of-day part.
func (dt DateTime) Clock() TimeOfDay {
	return TimeOfDay{dt.t.Hour(), dt.t.Minute(), dt.t.Second(), dt.t.Nanosecond()}
}

// Year returns the calendar year.
func (dt DateTime) Year() int { return dt.t.Year() }

// Month returns the month of the year.
func (dt DateTime) Month() time.Month { return dt.t.Month() }

// Day returns the day of the month.
func (dt DateTime) Day() int { return dt.t.Day() }

// Hour returns the hour of the day.
func (dt DateTime) Hour() int { return dt.t.Hour() }

// Minute returns the minute of the hour.
func (dt DateTime) Minute() int { return dt.t.Minute() }

// AddPeriod returns the value shifted by a symbolic calendar span. The
// time-of-day part is preserved; the date part follows Date.AddPeriod
// clamping rules. Adding Years(1) to Feb 2 2016 01:00 lands on
// Feb 2 2017 01:00 regardless of the leap day in between.
func (dt DateTime) AddPeriod(p Period) DateTime {
	return dt.Date().AddPeriod(p).At(dt.Clock())
}

// Add returns the value shifted by an exact duration. Adding
// DurationOfDays(365) to Feb 2 2016 01:00 lands on Feb 1 2017 01:00,
// because 2016 is a leap year.
func (dt DateTime) Add(d time.Duration) DateTime {
	return DateTime{dt.t.Add(d)}
}

// Between returns the exact elapsed duration from start to end.
func Between(start, end DateTime) time.Duration {
	return end.t.Sub(start.t)
}

// Format renders the value using a standard time layout.
func (dt DateTime) Format(layout string) string { return dt.t.Format(layout) }

// String renders the value in ISO form ("2016-02-02T01:00:00").
func (dt DateTime) String() string { return dt.Format(config.LayoutDateTimeISO) }
