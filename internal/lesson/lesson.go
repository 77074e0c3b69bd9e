// Package lesson defines the fixed set of date/time demonstrations.
//
// Each lesson is independent and stateless: it builds civil date/time values
// from literal inputs, performs one operation on them, and reports a list of
// checks against literal expected results. Lessons never share state and
// never touch the real clock, so every run is deterministic.
package lesson

import (
	"github.com/tartampluch/go-datekoans/internal/chrono"
	"github.com/tartampluch/go-datekoans/internal/config"
)

// Check is a single verified expectation within a lesson.
type Check struct {
	// Label describes the expectation in plain words. It is shown in the
	// report when the check fails.
	Label string

	// Got is the observed value, Want the expected one. Both hold
	// comparable types (numbers, strings, chrono values).
	Got  any
	Want any
}

// OK reports whether the observed value matches the expected one.
func (c Check) OK() bool { return c.Got == c.Want }

// Lesson is one independent demonstration.
type Lesson struct {
	// Slug is the stable identifier, used for translation keys and for
	// deterministic almanac event UIDs.
	Slug string

	// Anchor is the memorable calendar date the demonstration is built
	// around, if it has one. Clock-only lessons leave it zero.
	Anchor chrono.Date

	// Run executes the demonstration. It returns a non-nil error only when
	// a literal input unexpectedly fails to parse; expectation mismatches
	// are reported through the checks.
	Run func() ([]Check, error)
}

// TitleKey returns the translation key for the lesson's display title.
func (l Lesson) TitleKey() string {
	return config.TKeyLessonPrefix + l.Slug
}
