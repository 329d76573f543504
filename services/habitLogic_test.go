package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RiteshJha912/epoch/models"
)

func TestGenerateDays(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)

	cases := []struct {
		duration string
		want     int
	}{
		{models.DurationOneWeek, 7},
		{models.DurationTwoWeeks, 14},
		{models.DurationThreeWeeks, 21},
	}
	for _, tc := range cases {
		t.Run(tc.duration, func(t *testing.T) {
			days := GenerateDays(start, tc.duration)
			require.Len(t, days, tc.want)
			for i, d := range days {
				assert.Equal(t, i+1, d.Day)
				assert.False(t, d.Completed)
				assert.Equal(t, DayKey(start.AddDate(0, 0, i)), d.Date)
				if i > 0 {
					assert.True(t, BeforeDay(days[i-1].Date, d.Date), "dates must be strictly increasing")
				}
			}
		})
	}
}

func TestGenerateDaysCrossesMonthBoundary(t *testing.T) {
	start := time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC)
	days := GenerateDays(start, models.DurationOneWeek)
	require.Len(t, days, 7)
	assert.Equal(t, "2024-01-31", days[2].Date)
	assert.Equal(t, "2024-02-01", days[3].Date)
	assert.Equal(t, "2024-02-04", days[6].Date)
}

func TestDayKeyIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2024, 3, 5, 0, 0, 1, 0, time.UTC)
	night := time.Date(2024, 3, 5, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, DayKey(morning), DayKey(night))
	assert.True(t, SameDay(DayKey(morning), DayKey(night)))
	assert.True(t, BeforeDay("2024-03-05", "2024-03-06"))
	assert.False(t, BeforeDay("2024-03-06", "2024-03-05"))
}

func TestDayStatus(t *testing.T) {
	now := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		day  models.Day
		want string
	}{
		{"completed past day", models.Day{Date: "2024-01-01", Completed: true}, StatusCompleted},
		{"completed today", models.Day{Date: "2024-01-03", Completed: true}, StatusCompleted},
		{"completed future day", models.Day{Date: "2024-01-05", Completed: true}, StatusCompleted},
		{"uncompleted today", models.Day{Date: "2024-01-03"}, StatusToday},
		{"uncompleted past", models.Day{Date: "2024-01-02"}, StatusMissed},
		{"uncompleted future", models.Day{Date: "2024-01-04"}, StatusFuture},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DayStatus(tc.day, now))
		})
	}
}

func TestDayStatusWeekScenario(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	days := GenerateDays(start, models.DurationOneWeek)
	now := time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC)

	want := []string{StatusMissed, StatusMissed, StatusToday, StatusFuture, StatusFuture, StatusFuture, StatusFuture}
	for i, d := range days {
		assert.Equal(t, want[i], DayStatus(d, now), "day %d", i+1)
	}
}

func TestCanMarkToday(t *testing.T) {
	now := time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC)
	days := GenerateDays(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), models.DurationOneWeek)

	assert.True(t, CanMarkToday(days, now))

	days[2].Completed = true
	assert.False(t, CanMarkToday(days, now))

	// Today outside the schedule entirely
	assert.False(t, CanMarkToday(days, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
}

func completedDays(start time.Time, duration string, completed int) []models.Day {
	days := GenerateDays(start, duration)
	for i := 0; i < completed && i < len(days); i++ {
		days[i].Completed = true
	}
	return days
}

func TestSummarize(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	afterEnd := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	midway := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	t.Run("mid-challenge has no tier", func(t *testing.T) {
		p := Summarize(completedDays(start, models.DurationOneWeek, 3), midway)
		assert.Equal(t, 3, p.CompletedDays)
		assert.Equal(t, 7, p.TotalDays)
		assert.Equal(t, 43, p.Percentage)
		assert.False(t, p.ScheduleElapsed)
		assert.Empty(t, p.Tier)
	})

	cases := []struct {
		name      string
		duration  string
		completed int
		wantPct   int
		wantTier  string
	}{
		{"perfect week", models.DurationOneWeek, 7, 100, TierPerfect},
		{"12 of 14 is shareable", models.DurationTwoWeeks, 12, 86, TierShareableMilestone},
		{"15 of 21 is partial", models.DurationThreeWeeks, 15, 71, TierPartial},
		{"untouched schedule", models.DurationOneWeek, 0, 0, TierNone},
		{"just under threshold", models.DurationTwoWeeks, 11, 79, TierPartial},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Summarize(completedDays(start, tc.duration, tc.completed), afterEnd)
			require.True(t, p.ScheduleElapsed)
			assert.Equal(t, tc.wantPct, p.Percentage)
			assert.Equal(t, tc.wantTier, p.Tier)
		})
	}
}

func TestSummarizeElapsedBoundary(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	days := GenerateDays(start, models.DurationOneWeek)

	// On the final scheduled day the challenge is still live.
	onLastDay := time.Date(2024, 1, 7, 23, 0, 0, 0, time.UTC)
	assert.False(t, Summarize(days, onLastDay).ScheduleElapsed)

	dayAfter := time.Date(2024, 1, 8, 0, 30, 0, 0, time.UTC)
	assert.True(t, Summarize(days, dayAfter).ScheduleElapsed)
}

func TestMarkDay(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)

	newHabit := func() models.Habit {
		return models.Habit{Name: "read", Days: GenerateDays(start, models.DurationOneWeek)}
	}

	t.Run("marks today", func(t *testing.T) {
		h := newHabit()
		require.NoError(t, MarkDay(&h, 2, now))
		assert.True(t, h.Days[2].Completed)
		assert.Nil(t, h.CompletionDate)
	})

	t.Run("rejects out of range index", func(t *testing.T) {
		h := newHabit()
		assert.ErrorIs(t, MarkDay(&h, -1, now), ErrInvalidIndex)
		assert.ErrorIs(t, MarkDay(&h, 7, now), ErrInvalidIndex)
	})

	t.Run("rejects past and future days", func(t *testing.T) {
		h := newHabit()
		assert.ErrorIs(t, MarkDay(&h, 0, now), ErrNotToday)
		assert.ErrorIs(t, MarkDay(&h, 5, now), ErrNotToday)
		for _, d := range h.Days {
			assert.False(t, d.Completed)
		}
	})

	t.Run("second mark is an inert no-op", func(t *testing.T) {
		h := newHabit()
		require.NoError(t, MarkDay(&h, 2, now))
		err := MarkDay(&h, 2, now)
		assert.ErrorIs(t, err, ErrAlreadyCompleted)
		assert.True(t, h.Days[2].Completed)
		assert.Nil(t, h.CompletionDate)
	})
}

func TestMarkDayCompletionDate(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	lastDay := time.Date(2024, 1, 7, 20, 0, 0, 0, time.UTC)

	t.Run("set on final day of a full run", func(t *testing.T) {
		h := models.Habit{Days: completedDays(start, models.DurationOneWeek, 6)}
		require.NoError(t, MarkDay(&h, 6, lastDay))
		require.NotNil(t, h.CompletionDate)
		assert.Equal(t, lastDay, *h.CompletionDate)
	})

	t.Run("not set when earlier days were missed", func(t *testing.T) {
		h := models.Habit{Days: completedDays(start, models.DurationOneWeek, 5)}
		require.NoError(t, MarkDay(&h, 6, lastDay))
		assert.True(t, h.Days[6].Completed)
		assert.Nil(t, h.CompletionDate)
	})

	t.Run("not set by a non-final day", func(t *testing.T) {
		h := models.Habit{Days: completedDays(start, models.DurationOneWeek, 2)}
		require.NoError(t, MarkDay(&h, 2, time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC)))
		assert.Nil(t, h.CompletionDate)
	})
}

func TestReapDue(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	threeDaysAgo := now.AddDate(0, 0, -3)
	twoDaysAgo := now.AddDate(0, 0, -2)

	assert.True(t, ReapDue(models.Habit{CompletionDate: &threeDaysAgo}, now))
	assert.False(t, ReapDue(models.Habit{CompletionDate: &twoDaysAgo}, now))

	// All days marked but never finished through the final-day path:
	// no CompletionDate, never reaped.
	days := completedDays(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), models.DurationOneWeek, 7)
	assert.False(t, ReapDue(models.Habit{Days: days}, now))
}
