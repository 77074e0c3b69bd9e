package chrono

import (
	"strconv"
	"strings"
	"time"

	"github.com/tartampluch/go-datekoans/internal/config"
)

// Period is a symbolic, calendar-relative span of years, months and days.
//
// A Period moves through the calendar: adding one month can cover 28 to 31
// days of real time, and adding one year covers 366 days when a leap day is
// crossed. For a fixed elapsed-time span, use time.Duration instead.
type Period struct {
	Years, Months, Days int
}

// Years returns a period of whole years.
func Years(n int) Period { return Period{Years: n} }

// Months returns a period of whole months.
func Months(n int) Period { return Period{Months: n} }

// Days returns a period of whole days.
func Days(n int) Period { return Period{Days: n} }

// IsZero reports whether the period has no components.
func (p Period) IsZero() bool { return p == Period{} }

// String renders the period in ISO-8601 form (e.g. "P1Y3M", "P7D").
func (p Period) String() string {
	if p.IsZero() {
		return config.ISOPeriodZero
	}
	var b strings.Builder
	b.WriteString(config.ISOPeriodPrefix)
	if p.Years != 0 {
		b.WriteString(strconv.Itoa(p.Years))
		b.WriteString(config.ISOYear)
	}
	if p.Months != 0 {
		b.WriteString(strconv.Itoa(p.Months))
		b.WriteString(config.ISOMonth)
	}
	if p.Days != 0 {
		b.WriteString(strconv.Itoa(p.Days))
		b.WriteString(config.ISODay)
	}
	return b.String()
}

// DurationOfDays returns the exact elapsed time of n 24-hour days.
// DurationOfDays(366) is always 366*24 hours, whatever the calendar says.
func DurationOfDays(n int) time.Duration {
	return time.Duration(n) * dayLength
}

// DaysIn returns the number of whole 24-hour days contained in d.
func DaysIn(d time.Duration) int {
	return int(d / dayLength)
}
