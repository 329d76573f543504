package services

import (
	"errors"
	"math"
	"time"

	"github.com/RiteshJha912/epoch/models"
)

const dayKeyLayout = "2006-01-02"

// Day display states. A day is always in exactly one of these.
const (
	StatusCompleted = "completed"
	StatusToday     = "today"
	StatusMissed    = "missed"
	StatusFuture    = "future"
)

// Outcome tiers, defined only once the schedule has elapsed.
const (
	TierPerfect            = "perfect"
	TierShareableMilestone = "shareableMilestone"
	TierPartial            = "partial"
	TierNone               = "none"
)

var (
	shareThresholdPct = 80
	shareMilestones   = map[int]bool{7: true, 14: true, 21: true}
	retentionWindow   = 3 * 24 * time.Hour
)

// Mutation gate rejections. Reported as typed results, never fatal.
var (
	ErrInvalidIndex     = errors.New("day index out of range")
	ErrNotToday         = errors.New("only today's day can be marked complete")
	ErrAlreadyCompleted = errors.New("day is already completed")
)

// Creation validation.
var (
	ErrEmptyName   = errors.New("habit name must not be empty")
	ErrBadDuration = errors.New("duration must be one of 1week, 2weeks, 3weeks")
)

// -------- Calendar helpers --------

// DayKey normalizes a moment to its local calendar date. The yyyy-mm-dd
// form sorts lexicographically in chronological order, so day keys are
// compared as plain strings everywhere below.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

func SameDay(a, b string) bool {
	return a == b
}

func BeforeDay(a, b string) bool {
	return a < b
}

// ParseDayKey is the inverse of DayKey, for day keys arriving over the API.
func ParseDayKey(key string) (time.Time, error) {
	return time.Parse(dayKeyLayout, key)
}

// -------- Schedule generation --------

// GenerateDays builds the full schedule for a new habit: consecutive
// calendar dates starting at startDate, numbered from 1, none completed.
// The duration class must already be validated.
func GenerateDays(startDate time.Time, duration string) []models.Day {
	total := models.DurationDays[duration]
	days := make([]models.Day, 0, total)
	for i := 0; i < total; i++ {
		days = append(days, models.Day{
			Date:      DayKey(startDate.AddDate(0, 0, i)),
			Day:       i + 1,
			Completed: false,
		})
	}
	return days
}

// -------- Day status --------

// DayStatus classifies a single day against "now". Completion wins over
// every date comparison; otherwise the day key decides.
func DayStatus(day models.Day, now time.Time) string {
	if day.Completed {
		return StatusCompleted
	}
	today := DayKey(now)
	if SameDay(day.Date, today) {
		return StatusToday
	}
	if BeforeDay(day.Date, today) {
		return StatusMissed
	}
	return StatusFuture
}

// CanMarkToday reports whether the schedule contains an unmarked day for
// the current calendar date.
func CanMarkToday(days []models.Day, now time.Time) bool {
	today := DayKey(now)
	for _, d := range days {
		if d.Date == today {
			return !d.Completed
		}
	}
	return false
}

// -------- Progress aggregation --------

type Progress struct {
	CompletedDays   int    `json:"completed_days"`
	TotalDays       int    `json:"total_days"`
	Percentage      int    `json:"percentage"`
	FullyCompleted  bool   `json:"fully_completed"`
	ScheduleElapsed bool   `json:"schedule_elapsed"`
	Tier            string `json:"tier,omitempty"`
}

// Summarize derives progress counters from the day list. Tier stays empty
// until the final scheduled day has passed; no celebration or share
// affordance exists mid-challenge.
func Summarize(days []models.Day, now time.Time) Progress {
	p := Progress{TotalDays: len(days)}
	for _, d := range days {
		if d.Completed {
			p.CompletedDays++
		}
	}
	if p.TotalDays == 0 {
		return p
	}
	p.Percentage = int(math.Round(100 * float64(p.CompletedDays) / float64(p.TotalDays)))
	p.FullyCompleted = p.CompletedDays == p.TotalDays
	p.ScheduleElapsed = BeforeDay(days[p.TotalDays-1].Date, DayKey(now))
	if p.ScheduleElapsed {
		p.Tier = classifyTier(p)
	}
	return p
}

func classifyTier(p Progress) string {
	switch {
	case p.FullyCompleted:
		return TierPerfect
	case p.CompletedDays == 0:
		return TierNone
	case shareMilestones[p.TotalDays] && p.Percentage >= shareThresholdPct:
		return TierShareableMilestone
	default:
		return TierPartial
	}
}

// -------- Mutation gate --------

// MarkDay flips one day to completed, subject to the gate rules: the day
// must exist, must be today's calendar date, and must not already be
// marked. On rejection the habit is untouched. Completing the final day
// while every other day is already complete is the single write path for
// CompletionDate.
func MarkDay(habit *models.Habit, dayIndex int, now time.Time) error {
	if dayIndex < 0 || dayIndex >= len(habit.Days) {
		return ErrInvalidIndex
	}
	day := &habit.Days[dayIndex]
	if !SameDay(day.Date, DayKey(now)) {
		return ErrNotToday
	}
	if day.Completed {
		return ErrAlreadyCompleted
	}

	day.Completed = true

	if dayIndex == len(habit.Days)-1 && allCompleted(habit.Days) {
		t := now
		habit.CompletionDate = &t
	}
	return nil
}

func allCompleted(days []models.Day) bool {
	for _, d := range days {
		if !d.Completed {
			return false
		}
	}
	return true
}

// -------- Lifecycle --------

// ReapDue reports whether a habit has sat in its post-completion retention
// window long enough to be pruned. Habits that never went through the
// final-day completion path have no CompletionDate and are never reaped.
func ReapDue(habit models.Habit, now time.Time) bool {
	if habit.CompletionDate == nil {
		return false
	}
	return now.Sub(*habit.CompletionDate) >= retentionWindow
}
