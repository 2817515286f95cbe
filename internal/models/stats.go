package models

import (
	"time"

	"github.com/google/uuid"
)

// UserStats is a derived summary over a user's habits. It is a
// read-through cache, never authoritative: reconciliation rebuilds it
// from the habit collection on load.
type UserStats struct {
	UserID               uuid.UUID `json:"-"`
	TotalHabitsCompleted int       `json:"total_habits_completed"`
	LongestStreak        int       `json:"longest_streak"`
	LastLogin            string    `json:"last_login"`
	UpdatedAt            time.Time `json:"-"`
}
