package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/RiteshJha912/epoch/config"
	"github.com/RiteshJha912/epoch/models"
	"github.com/RiteshJha912/epoch/storage"
)

// HabitView is the per-habit tuple handed to the presentation side: the
// stored record plus everything derived from it and "now". Derived state
// is recomputed on every read and never persisted.
type HabitView struct {
	models.Habit
	DayStatuses []string `json:"day_statuses"`
	CanMark     bool     `json:"can_mark_today"`
	Progress
}

func BuildView(habit models.Habit, now time.Time) HabitView {
	statuses := make([]string, len(habit.Days))
	for i, d := range habit.Days {
		statuses[i] = DayStatus(d, now)
	}
	return HabitView{
		Habit:       habit,
		DayStatuses: statuses,
		CanMark:     CanMarkToday(habit.Days, now),
		Progress:    Summarize(habit.Days, now),
	}
}

// CreateHabit validates the creation intent, generates the schedule and
// hands the record to the store, which assigns the id.
func CreateHabit(ctx context.Context, store storage.HabitStore, userID, name, duration string, startDate, now time.Time) (models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Habit{}, ErrEmptyName
	}
	if _, ok := models.DurationDays[duration]; !ok {
		return models.Habit{}, ErrBadDuration
	}

	habit := models.Habit{
		UserID:    userID,
		Name:      name,
		Duration:  duration,
		StartDate: DayKey(startDate),
		Days:      GenerateDays(startDate, duration),
		CreatedAt: now,
	}
	return store.Create(ctx, habit)
}

// ListHabits fetches the owner's habits, prunes the ones whose retention
// window has elapsed, and returns views of the survivors.
func ListHabits(ctx context.Context, store storage.HabitStore, userID string, now time.Time) ([]HabitView, error) {
	habits, err := store.ByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	habits = ReapCompleted(ctx, store, userID, habits, now)

	views := make([]HabitView, 0, len(habits))
	for _, h := range habits {
		views = append(views, BuildView(h, now))
	}
	return views, nil
}

// ReapCompleted deletes habits that finished at least three days ago and
// returns the remainder. Each deletion stands alone: a failure is logged
// and the habit kept for the next pass, never blocking the others.
func ReapCompleted(ctx context.Context, store storage.HabitStore, userID string, habits []models.Habit, now time.Time) []models.Habit {
	kept := make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		if !ReapDue(h, now) {
			kept = append(kept, h)
			continue
		}
		if err := store.Delete(ctx, h.ID.Hex(), userID); err != nil {
			config.Logger.Error("Failed to reap completed habit",
				zap.String("habit_id", h.ID.Hex()),
				zap.Error(err))
			kept = append(kept, h)
			continue
		}
		config.Logger.Info("Reaped completed habit",
			zap.String("habit_id", h.ID.Hex()),
			zap.Time("completed_at", *h.CompletionDate))
	}
	return kept
}

// MarkHabitDay applies the mutation gate to one day and persists the
// updated day list. Gate rejections leave the stored record untouched.
func MarkHabitDay(ctx context.Context, store storage.HabitStore, userID, habitID string, dayIndex int, now time.Time) (HabitView, error) {
	habit, err := store.ByID(ctx, habitID, userID)
	if err != nil {
		return HabitView{}, err
	}
	if err := MarkDay(&habit, dayIndex, now); err != nil {
		return HabitView{}, err
	}
	if err := store.UpdateDays(ctx, habitID, habit.Days, habit.CompletionDate); err != nil {
		return HabitView{}, err
	}
	return BuildView(habit, now), nil
}

// -------- Dashboard stats --------

type OwnerStats struct {
	TotalHabits        int `json:"total_habits"`
	CompletedHabits    int `json:"completed_habits"`
	TotalDaysCompleted int `json:"total_days_completed"`
}

// ComputeStats rolls up the dashboard counters across a user's habits.
func ComputeStats(habits []models.Habit) OwnerStats {
	stats := OwnerStats{TotalHabits: len(habits)}
	for _, h := range habits {
		done := 0
		for _, d := range h.Days {
			if d.Completed {
				done++
			}
		}
		stats.TotalDaysCompleted += done
		if len(h.Days) > 0 && done == len(h.Days) {
			stats.CompletedHabits++
		}
	}
	return stats
}

// -------- Sharing --------

type ShareSummary struct {
	Shareable     bool   `json:"shareable"`
	Title         string `json:"title,omitempty"`
	Message       string `json:"message,omitempty"`
	Emoji         string `json:"emoji,omitempty"`
	ShareText     string `json:"share_text,omitempty"`
	CompletedDays int    `json:"completed_days"`
	TotalDays     int    `json:"total_days"`
	Percentage    int    `json:"percentage"`
}

// BuildShare assembles the celebration/share payload for a finished habit.
// Nothing is shareable mid-challenge; the share affordance itself is
// reserved for milestone-length habits at 80% or better.
func BuildShare(habit models.Habit, now time.Time) ShareSummary {
	p := Summarize(habit.Days, now)
	summary := ShareSummary{
		CompletedDays: p.CompletedDays,
		TotalDays:     p.TotalDays,
		Percentage:    p.Percentage,
	}
	if !p.ScheduleElapsed || p.CompletedDays == 0 {
		return summary
	}

	switch p.Tier {
	case TierPerfect:
		summary.Title = "Incredible work! 🎉"
		summary.Message = "You've successfully completed this habit with a perfect streak! This is a testament to your amazing discipline."
		summary.Emoji = "🔥"
	default:
		summary.Title = "Keep up the great work!"
		summary.Message = fmt.Sprintf("You completed %d out of %d days. That's %d%%! Every completed day is a step toward your goal.",
			p.CompletedDays, p.TotalDays, p.Percentage)
		summary.Emoji = "🙌"
	}

	summary.Shareable = p.Tier == TierPerfect || p.Tier == TierShareableMilestone
	if summary.Shareable {
		summary.ShareText = fmt.Sprintf(
			"🎉 Just completed my %d-day habit challenge with %d%% consistency!\n\n%q - %d/%d days completed!\n\nBuilding better habits, one day at a time 💪\n\n#HabitTracker #Discipline #Growth",
			p.TotalDays, p.Percentage, habit.Name, p.CompletedDays, p.TotalDays)
	}
	return summary
}
