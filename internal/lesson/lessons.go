package lesson

import (
	"time"

	"github.com/tartampluch/go-datekoans/internal/chrono"
	"github.com/tartampluch/go-datekoans/internal/config"
)

// Lesson slugs, in teaching order.
const (
	SlugDateFields       = "date_fields"
	SlugClockFields      = "clock_fields"
	SlugDateAddDays      = "date_add_days"
	SlugPeriodMonths     = "period_months"
	SlugPeriodVsDuration = "period_vs_duration"
	SlugFormatting       = "formatting"
	SlugClockParsing     = "clock_parsing"
	SlugClockArithmetic  = "clock_arithmetic"
)

const (
	expectedLessonCount   = 8
	springBreakLengthDays = 7
	commonYearDays        = 365
	leapYearDays          = 366
)

// All returns the lessons in their fixed teaching order.
func All() []Lesson {
	return []Lesson{
		{
			Slug:   SlugDateFields,
			Anchor: chrono.DateOf(2016, time.February, 2),
			Run:    runDateFields,
		},
		{
			Slug: SlugClockFields,
			Run:  runClockFields,
		},
		{
			Slug:   SlugDateAddDays,
			Anchor: chrono.DateOf(2016, time.March, 12),
			Run:    runDateAddDays,
		},
		{
			Slug:   SlugPeriodMonths,
			Anchor: chrono.DateOf(2016, time.February, 2),
			Run:    runPeriodMonths,
		},
		{
			Slug:   SlugPeriodVsDuration,
			Anchor: chrono.DateOf(2016, time.February, 2),
			Run:    runPeriodVsDuration,
		},
		{
			Slug:   SlugFormatting,
			Anchor: chrono.DateOf(2016, time.July, 4),
			Run:    runFormatting,
		},
		{
			Slug: SlugClockParsing,
			Run:  runClockParsing,
		},
		{
			Slug: SlugClockArithmetic,
			Run:  runClockArithmetic,
		},
	}
}

// runDateFields builds a calendar date from explicit fields and reads back
// its ordinal day of the year.
func runDateFields() ([]Check, error) {
	groundhogDay := chrono.DateOf(2016, time.February, 2)

	return []Check{
		{Label: "day of year of 2016-02-02", Got: groundhogDay.DayOfYear(), Want: 33},
	}, nil
}

// runClockFields builds a time-of-day from explicit fields and reads each
// field back through its dedicated accessor.
func runClockFields() ([]Check, error) {
	clock := chrono.ClockOf(2, 30, 45)

	return []Check{
		{Label: "hour of 02:30:45", Got: clock.Hour(), Want: 2},
		{Label: "minute of 02:30:45", Got: clock.Minute(), Want: 30},
		{Label: "second of 02:30:45", Got: clock.Second(), Want: 45},
	}, nil
}

// runDateAddDays adds a fixed number of days to a date. Spring break starts
// March 12th and lasts a week; the receiver is left untouched.
func runDateAddDays() ([]Check, error) {
	springBreakStart := chrono.DateOf(2016, time.March, 12)
	springBreakEnd := springBreakStart.AddDays(springBreakLengthDays)

	return []Check{
		{Label: "start day of month", Got: springBreakStart.Day(), Want: 12},
		{Label: "end day of month", Got: springBreakEnd.Day(), Want: 19},
	}, nil
}

// runPeriodMonths adds a symbolic quarter to a date: the month advances by
// three while the day of month stays put.
func runPeriodMonths() ([]Check, error) {
	quarter := chrono.Months(3)
	quarterlyMeeting := chrono.DateOf(2016, time.February, 2)
	nextMeeting := quarterlyMeeting.AddPeriod(quarter)

	return []Check{
		{Label: "day of month after one quarter", Got: nextMeeting.Day(), Want: 2},
		{Label: "month after one quarter", Got: nextMeeting.Month(), Want: time.May},
	}, nil
}

// runPeriodVsDuration applies a symbolic year and an exact 365-day duration
// to the same starting point. 2016 is a leap year, so the two results differ
// by one day, and the exact span between the start and the symbolic result
// is 366 days.
func runPeriodVsDuration() ([]Check, error) {
	oneYearPeriod := chrono.Years(1)
	oneYearDuration := chrono.DurationOfDays(commonYearDays)

	groundhogDay2016 := chrono.DateTimeOf(2016, time.February, 2, 1, 0)
	groundhogDay2017 := groundhogDay2016.AddPeriod(oneYearPeriod)
	notGroundhogDay2017 := groundhogDay2016.Add(oneYearDuration)

	leapDays := chrono.DaysIn(chrono.Between(groundhogDay2016, groundhogDay2017))

	return []Check{
		{Label: "day of month after a symbolic year", Got: groundhogDay2017.Day(), Want: 2},
		{Label: "day of month after 365 exact days", Got: notGroundhogDay2017.Day(), Want: 1},
		{Label: "exact days in the symbolic year", Got: leapDays, Want: leapYearDays},
		{Label: "symbolic year equals exact year", Got: leapDays == chrono.DaysIn(oneYearDuration), Want: false},
	}, nil
}

// runFormatting renders a combined value through the fixed slash layout.
func runFormatting() ([]Check, error) {
	july4th := chrono.DateTimeOf(2016, time.July, 4, 2, 33)

	return []Check{
		{Label: "MM/dd/yyyy HH:mm rendering", Got: july4th.Format(config.LayoutDateTimeSlash), Want: "07/04/2016 02:33"},
	}, nil
}

// runClockParsing reads a time-of-day from text and compares it with a
// directly constructed equivalent.
func runClockParsing() ([]Check, error) {
	parsed, err := chrono.ParseClock("07:30")
	if err != nil {
		return nil, err
	}

	return []Check{
		{Label: "parsed clock equals constructed clock", Got: parsed, Want: chrono.ClockOf(7, 30, 0)},
	}, nil
}

// runClockArithmetic parses a clock, walks it two hours back, and compares
// the result with another parsed clock.
func runClockArithmetic() ([]Check, error) {
	start, err := chrono.ParseClock("10:30")
	if err != nil {
		return nil, err
	}
	want, err := chrono.ParseClock("08:30")
	if err != nil {
		return nil, err
	}

	return []Check{
		{Label: "10:30 minus two hours", Got: start.Add(-2 * time.Hour), Want: want},
	}, nil
}
