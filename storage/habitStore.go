package storage

import (
	"context"
	"errors"
	"time"

	"github.com/RiteshJha912/epoch/models"
)

// ErrNotFound is returned when a habit id does not exist or belongs to a
// different owner. Callers cannot tell those cases apart.
var ErrNotFound = errors.New("habit not found")

// HabitStore is the persistence boundary for habits. Every query and
// mutation is scoped to the owning user except UpdateDays, which is only
// reachable after an owner-scoped lookup. The store assigns ids at create
// time. Writes to the day list replace the whole list; concurrent markers
// of the same habit are last-write-wins.
type HabitStore interface {
	Create(ctx context.Context, habit models.Habit) (models.Habit, error)
	ByOwner(ctx context.Context, userID string) ([]models.Habit, error)
	ByID(ctx context.Context, id string, userID string) (models.Habit, error)
	UpdateDays(ctx context.Context, id string, days []models.Day, completionDate *time.Time) error
	Delete(ctx context.Context, id string, userID string) error
}
