package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/RiteshJha912/epoch/config"
	"github.com/RiteshJha912/epoch/helpers"
	"github.com/RiteshJha912/epoch/services"
	"github.com/RiteshJha912/epoch/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var habitStore storage.HabitStore = storage.NewMongoHabitStore()

func getUserID(c *gin.Context) string {
	claimsVal, ok := c.Get("claims")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return ""
	}
	claims, ok := claimsVal.(*helpers.Claims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid claims"})
		return ""
	}
	return claims.UserID
}

// CreateHabit starts a new habit challenge for the current user.
func CreateHabit() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body struct {
			Name      string `json:"name"`
			Duration  string `json:"duration"`   // 1week | 2weeks | 3weeks
			StartDate string `json:"start_date"` // yyyy-mm-dd, defaults to today
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid habit payload"})
			return
		}

		now := time.Now()
		startDate := now
		if body.StartDate != "" {
			parsed, err := services.ParseDayKey(body.StartDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be yyyy-mm-dd"})
				return
			}
			startDate = parsed
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		habit, err := services.CreateHabit(ctx, habitStore, userID, body.Name, body.Duration, startDate, now)
		if err != nil {
			if errors.Is(err, services.ErrEmptyName) || errors.Is(err, services.ErrBadDuration) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			config.Logger.Error("Failed to create habit", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create habit"})
			return
		}
		c.JSON(http.StatusOK, services.BuildView(habit, now))
	}
}

// GetHabits returns the current user's habits with their derived state.
// Stale completed habits are pruned on the way through.
func GetHabits() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		views, err := services.ListHabits(ctx, habitStore, userID, time.Now())
		if err != nil {
			config.Logger.Error("Failed to list habits", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list habits"})
			return
		}
		c.JSON(http.StatusOK, views)
	}
}

// MarkHabitDay marks one day of a habit as completed. Only today's day is
// ever accepted; re-marking an already completed day is an inert no-op.
func MarkHabitDay() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		habitID := c.Param("id")
		dayIndex, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "day index must be a number"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		view, err := services.MarkHabitDay(ctx, habitStore, userID, habitID, dayIndex, time.Now())
		switch {
		case err == nil:
			c.JSON(http.StatusOK, view)
		case errors.Is(err, services.ErrAlreadyCompleted):
			c.JSON(http.StatusOK, gin.H{"message": "day already completed"})
		case errors.Is(err, services.ErrInvalidIndex):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNotToday):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, storage.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
		default:
			config.Logger.Error("Failed to mark habit day", zap.String("habit_id", habitID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark day"})
		}
	}
}

// DeleteHabit removes a habit on explicit user request.
func DeleteHabit() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		habitID := c.Param("id")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := habitStore.Delete(ctx, habitID, userID)
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
			return
		}
		if err != nil {
			config.Logger.Error("Failed to delete habit", zap.String("habit_id", habitID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete habit"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "habit deleted"})
	}
}

// GetStats returns the dashboard rollup across the user's habits.
func GetStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		habits, err := habitStore.ByOwner(ctx, userID)
		if err != nil {
			config.Logger.Error("Failed to load habits for stats", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
			return
		}
		c.JSON(http.StatusOK, services.ComputeStats(habits))
	}
}

// GetHabitShare returns the celebration/share payload for one habit.
func GetHabitShare() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		habitID := c.Param("id")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		habit, err := habitStore.ByID(ctx, habitID, userID)
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
			return
		}
		if err != nil {
			config.Logger.Error("Failed to load habit for share", zap.String("habit_id", habitID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load habit"})
			return
		}
		c.JSON(http.StatusOK, services.BuildShare(habit, time.Now()))
	}
}
