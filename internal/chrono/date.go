// Package chrono provides zone-free civil date and time-of-day values.
//
// All types are immutable: arithmetic and transformation methods return a new
// value and never modify their receiver. Calendar-aware arithmetic (Period)
// and exact elapsed-time arithmetic (time.Duration) are kept deliberately
// distinct, because they diverge across month boundaries and leap years.
package chrono

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-datekoans/internal/config"
)

// Date is a calendar date (year, month, day) without a time-of-day or zone.
type Date struct {
	// Anchored to midnight UTC so Date values are ==-comparable.
	t time.Time
}

// DateOf constructs a Date from explicit fields. Out-of-range fields are
// normalized the way time.Date normalizes them (Feb 30 becomes Mar 1 or 2).
func DateOf(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate reads an ISO calendar date such as "2016-02-02".
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(config.LayoutDateISO, value)
	if err != nil {
		return Date{}, fmt.Errorf("%s: %w", config.ErrDateParse, err)
	}
	return DateOf(t.Year(), t.Month(), t.Day()), nil
}

// Year returns the calendar year.
func (d Date) Year() int { return d.t.Year() }

// Month returns the month of the year.
func (d Date) Month() time.Month { return d.t.Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.t.Day() }

// DayOfYear returns the 1-based ordinal day within the year
// (Feb 2 of any year is day 33).
func (d Date) DayOfYear() int { return d.t.YearDay() }

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// IsLeapYear reports whether the date's year has 366 days.
func (d Date) IsLeapYear() bool {
	y := d.t.Year()
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// AddDays returns the date shifted by the given number of calendar days.
func (d Date) AddDays(days int) Date {
	return Date{d.t.AddDate(0, 0, days)}
}

// AddPeriod returns the date shifted by a symbolic calendar span.
//
// Unlike time.Time.AddDate, the day of month is clamped to the length of the
// target month before the period's day component is applied, so
// Jan 31 + 1 month is Feb 28 (or 29), never Mar 2. When the day is valid in
// the target month it is left unchanged.
func (d Date) AddPeriod(p Period) Date {
	year, month, day := d.t.Date()

	months := (year+p.Years)*12 + int(month) - 1 + p.Months
	y, rem := months/12, months%12
	if rem < 0 {
		rem += 12
		y--
	}
	m := time.Month(rem + 1)

	if limit := daysInMonth(y, m); day > limit {
		day = limit
	}
	return Date{time.Date(y, m, day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, p.Days)}
}

// At combines the date with a time-of-day into a DateTime.
func (d Date) At(c TimeOfDay) DateTime {
	year, month, day := d.t.Date()
	return DateTime{time.Date(year, month, day, c.hour, c.minute, c.second, c.nano, time.UTC)}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// IsZero reports whether d is the uninitialized Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Format renders the date using a standard time layout.
func (d Date) Format(layout string) string { return d.t.Format(layout) }

// String renders the date in ISO form ("2016-02-02").
func (d Date) String() string { return d.Format(config.LayoutDateISO) }

// daysInMonth returns the number of days in the given month.
// Day zero of the following month normalizes to the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
