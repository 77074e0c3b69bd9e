package lesson

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datekoans/internal/chrono"
)

// TestAll_Registry verifies the structural integrity of the lesson set:
// fixed count, unique slugs, runnable bodies.
func TestAll_Registry(t *testing.T) {
	lessons := All()
	require.Len(t, lessons, expectedLessonCount)

	seen := make(map[string]bool)
	for _, l := range lessons {
		assert.NotEmpty(t, l.Slug)
		assert.False(t, seen[l.Slug], "duplicate slug %q", l.Slug)
		seen[l.Slug] = true
		assert.NotNil(t, l.Run, "lesson %q has no body", l.Slug)
	}

	// Teaching order is part of the contract: construction before
	// arithmetic, arithmetic before formatting and parsing.
	assert.Equal(t, SlugDateFields, lessons[0].Slug)
	assert.Equal(t, SlugClockArithmetic, lessons[len(lessons)-1].Slug)
}

// TestAll_ChecksPass runs every lesson and verifies that each literal
// expectation holds.
func TestAll_ChecksPass(t *testing.T) {
	for _, l := range All() {
		t.Run(l.Slug, func(t *testing.T) {
			checks, err := l.Run()
			require.NoError(t, err)
			require.NotEmpty(t, checks)

			for _, c := range checks {
				assert.True(t, c.OK(), "%s: got %v, want %v", c.Label, c.Got, c.Want)
			}
		})
	}
}

func TestAnchors(t *testing.T) {
	anchors := make(map[string]chrono.Date)
	for _, l := range All() {
		anchors[l.Slug] = l.Anchor
	}

	// Date lessons carry their memorable date; clock lessons carry none.
	assert.Equal(t, chrono.DateOf(2016, time.February, 2), anchors[SlugDateFields])
	assert.Equal(t, chrono.DateOf(2016, time.March, 12), anchors[SlugDateAddDays])
	assert.Equal(t, chrono.DateOf(2016, time.July, 4), anchors[SlugFormatting])
	assert.True(t, anchors[SlugClockFields].IsZero())
	assert.True(t, anchors[SlugClockParsing].IsZero())
	assert.True(t, anchors[SlugClockArithmetic].IsZero())
}

func TestTitleKey(t *testing.T) {
	l := Lesson{Slug: SlugFormatting}
	assert.Equal(t, "lesson_formatting", l.TitleKey())
}

func TestCheck_OK(t *testing.T) {
	assert.True(t, Check{Got: 33, Want: 33}.OK())
	assert.False(t, Check{Got: 33, Want: 34}.OK())
	assert.True(t, Check{Got: chrono.ClockOf(7, 30, 0), Want: chrono.ClockOf(7, 30, 0)}.OK())
}
