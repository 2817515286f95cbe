package models

import (
	"time"

	"github.com/google/uuid"
)

// HabitCategory classifies a habit for filtering and aggregate views
type HabitCategory string

const (
	CategoryHealth HabitCategory = "health"
	CategoryWork   HabitCategory = "work"
	CategoryStudy  HabitCategory = "study"
	CategoryOther  HabitCategory = "other"
)

// MaxDailyMinutes caps the progress recordable for a single day
const MaxDailyMinutes = 24 * 60

// Habit represents a tracked task. Streakable habits recur daily and
// contribute to the streak; non-streakable habits are one-time tasks
// that move to the archived partition when completed.
type Habit struct {
	ID           uuid.UUID     `json:"id"`
	UserID       uuid.UUID     `json:"user_id"`
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	Category     HabitCategory `json:"category"`
	IsStreakable bool          `json:"is_streakable"`
	// Streak is a cache of the calculator applied to CompletedDates.
	// Every mutation refreshes it and reconciliation corrects drift.
	Streak         int            `json:"streak"`
	CompletedDates []string       `json:"completed_dates"`
	TargetTime     int            `json:"target_time,omitempty"`
	DailyProgress  map[string]int `json:"daily_progress,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	CompletedAt    *time.Time     `json:"completed_at,omitempty"`
}

// TimeBased reports whether completion requires accumulated minutes
// rather than a binary check-off.
func (h *Habit) TimeBased() bool {
	return h.TargetTime > 0
}

// Archived reports whether a one-time task has been completed and
// moved out of the active set.
func (h *Habit) Archived() bool {
	return !h.IsStreakable && h.CompletedAt != nil
}

// CompletedOn reports whether the habit was completed on the given day key.
func (h *Habit) CompletedOn(day string) bool {
	for _, d := range h.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}

// MarkCompleted records a completion for the given day, preserving set
// semantics (no duplicates, append order).
func (h *Habit) MarkCompleted(day string) {
	if h.CompletedOn(day) {
		return
	}
	h.CompletedDates = append(h.CompletedDates, day)
}

// UnmarkCompleted removes a completion for the given day if present.
func (h *Habit) UnmarkCompleted(day string) {
	kept := h.CompletedDates[:0]
	for _, d := range h.CompletedDates {
		if d != day {
			kept = append(kept, d)
		}
	}
	h.CompletedDates = kept
}

// ProgressOn returns the accumulated minutes recorded for the given day.
func (h *Habit) ProgressOn(day string) int {
	if h.DailyProgress == nil {
		return 0
	}
	return h.DailyProgress[day]
}

// SetProgress records accumulated minutes for the given day, clamped
// to [0, MaxDailyMinutes].
func (h *Habit) SetProgress(day string, minutes int) int {
	if minutes < 0 {
		minutes = 0
	}
	if minutes > MaxDailyMinutes {
		minutes = MaxDailyMinutes
	}
	if h.DailyProgress == nil {
		h.DailyProgress = make(map[string]int)
	}
	h.DailyProgress[day] = minutes
	return minutes
}
