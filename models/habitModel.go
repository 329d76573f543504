package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Duration classes fix the schedule length at creation time.
const (
	DurationOneWeek    = "1week"
	DurationTwoWeeks   = "2weeks"
	DurationThreeWeeks = "3weeks"
)

// DurationDays maps a duration class to its schedule length.
// Unrecognized classes are rejected at the API boundary before
// a habit is ever built.
var DurationDays = map[string]int{
	DurationOneWeek:    7,
	DurationTwoWeeks:   14,
	DurationThreeWeeks: 21,
}

// Day is one scheduled unit of a habit. Date is a "yyyy-mm-dd" day key,
// Day is the 1-based position in the schedule. Completed only ever goes
// false -> true.
type Day struct {
	Date      string `bson:"date" json:"date"`
	Day       int    `bson:"day" json:"day"`
	Completed bool   `bson:"completed" json:"completed"`
}

type Habit struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         string             `bson:"user_id" json:"user_id"`
	Name           string             `bson:"name" json:"name"`
	Duration       string             `bson:"duration" json:"duration"`     // 1week | 2weeks | 3weeks
	StartDate      string             `bson:"start_date" json:"start_date"` // day key of days[0]
	Days           []Day              `bson:"days" json:"days"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	CompletionDate *time.Time         `bson:"completion_date,omitempty" json:"completion_date,omitempty"`
}
