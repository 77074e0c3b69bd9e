// Package runner evaluates the lesson set and derives artifacts from the
// outcome (results for the report, an iCalendar almanac of anchor dates).
package runner

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tartampluch/go-datekoans/internal/chrono"
	"github.com/tartampluch/go-datekoans/internal/config"
	"github.com/tartampluch/go-datekoans/internal/lesson"
)

// Titler supplies localized display titles for lessons.
// The report layer implements it; tests substitute a mock.
type Titler interface {
	Title(slug string) string
}

// Result captures the outcome of one evaluated lesson.
type Result struct {
	Slug   string
	Title  string
	Anchor chrono.Date
	Checks []lesson.Check

	// Err is non-nil only when a literal input unexpectedly failed to
	// parse; expectation mismatches live in Checks.
	Err error

	// Elapsed is the wall time the lesson took, measured via the Clock.
	Elapsed time.Duration
}

// Passed reports whether the lesson ran cleanly and every check matched.
func (r Result) Passed() bool {
	if r.Err != nil {
		return false
	}
	for _, c := range r.Checks {
		if !c.OK() {
			return false
		}
	}
	return true
}

// Runner is the core service that evaluates lessons.
type Runner struct {
	Clock  Clock  // Interface for time mocking.
	Titles Titler // Localized title source.
}

// RunAll evaluates every lesson in teaching order.
// It returns the per-lesson results and the total number of failed checks.
// The context is consulted between lessons so cancellation interrupts the run.
func (r *Runner) RunAll(ctx context.Context) ([]Result, int, error) {
	if r.Titles == nil {
		return nil, 0, errors.New(config.ErrTitlerMissing)
	}

	start := r.Clock.Now()
	log := slog.With(config.LogKeyComponent, config.CompRunner)
	log.InfoContext(ctx, config.MsgRunStarted)

	lessons := lesson.All()
	results := make([]Result, 0, len(lessons))
	stats := struct{ total, passed, failed int }{}
	failedChecks := 0

	for _, l := range lessons {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		lessonStart := r.Clock.Now()
		checks, err := l.Run()

		res := Result{
			Slug:    l.Slug,
			Title:   r.Titles.Title(l.Slug),
			Anchor:  l.Anchor,
			Checks:  checks,
			Err:     err,
			Elapsed: r.Clock.Now().Sub(lessonStart),
		}

		stats.total++
		if res.Passed() {
			stats.passed++
		} else {
			stats.failed++
		}
		if err != nil {
			failedChecks++
		}
		for _, c := range checks {
			if !c.OK() {
				failedChecks++
			}
		}

		log.Debug(config.MsgLessonDone,
			config.LogKeyLesson, l.Slug,
			config.LogKeyChecks, len(checks),
			config.LogKeyPassed, res.Passed(),
		)

		results = append(results, res)
	}

	log.Info(config.MsgRunSuccess,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.total),
			slog.Int(config.LogKeyPassed, stats.passed),
			slog.Int(config.LogKeyFailed, stats.failed),
		),
		config.LogKeyDuration, r.Clock.Now().Sub(start).Milliseconds(),
	)

	return results, failedChecks, nil
}
