// Package tracker implements the per-habit completion state machine:
// binary toggles, time-based progress updates, and one-time task
// completion. All functions mutate the passed habit in memory only;
// persistence is the caller's concern.
package tracker

import (
	"errors"
	"time"

	"github.com/Naiem890/momentum/internal/dateutil"
	"github.com/Naiem890/momentum/internal/models"
	"github.com/Naiem890/momentum/internal/streak"
)

var (
	// ErrNotToggleable is returned when a binary toggle is attempted on a
	// time-based habit; those transition only through progress updates.
	ErrNotToggleable = errors.New("time-based habits cannot be toggled")
	// ErrNotStreakable is returned when a streak operation is attempted
	// on a one-time task.
	ErrNotStreakable = errors.New("habit is not streakable")
	// ErrNotTimeBased is returned when a progress update is sent to a
	// binary habit.
	ErrNotTimeBased = errors.New("habit has no time target")
	// ErrNotOneTime is returned when complete/restore is attempted on a
	// streakable habit.
	ErrNotOneTime = errors.New("habit is not a one-time task")
	// ErrNegativeMinutes rejects negative progress input before any state
	// is touched.
	ErrNegativeMinutes = errors.New("minutes must not be negative")
)

// Transition describes the outcome of a toggle or progress update.
type Transition struct {
	// CompletedToday is the habit's done/not_done state for today after
	// the operation.
	CompletedToday bool
	// Changed reports whether the done state actually flipped.
	Changed bool
	// Streak is the refreshed streak cache.
	Streak int
	// Milestone is the threshold crossed by this operation, 0 if none.
	Milestone int
}

// Toggle flips today's binary completion state. The streak cache is
// refreshed from the calculator rather than incremented blindly, so a
// stale stored value can never drift further.
func Toggle(h *models.Habit, now time.Time) (Transition, error) {
	if !h.IsStreakable {
		return Transition{}, ErrNotStreakable
	}
	if h.TimeBased() {
		return Transition{}, ErrNotToggleable
	}

	today := dateutil.Today(now)
	prev := h.Streak

	var tr Transition
	if h.CompletedOn(today) {
		h.UnmarkCompleted(today)
		tr = Transition{CompletedToday: false, Changed: true}
	} else {
		h.MarkCompleted(today)
		tr = Transition{CompletedToday: true, Changed: true}
	}

	h.Streak = streak.Calculate(h.CompletedDates, now)
	tr.Streak = h.Streak
	tr.Milestone = streak.Crossed(prev, h.Streak)
	return tr, nil
}

// ApplyProgress records accumulated minutes for today on a time-based
// habit and performs the done/not_done transition when the target is
// crossed in either direction. Minutes are clamped to a single day.
func ApplyProgress(h *models.Habit, minutes int, now time.Time) (Transition, error) {
	if !h.IsStreakable {
		return Transition{}, ErrNotStreakable
	}
	if !h.TimeBased() {
		return Transition{}, ErrNotTimeBased
	}
	if minutes < 0 {
		return Transition{}, ErrNegativeMinutes
	}

	today := dateutil.Today(now)
	prev := h.Streak
	wasDone := h.CompletedOn(today)

	recorded := h.SetProgress(today, minutes)
	nowDone := recorded >= h.TargetTime

	tr := Transition{CompletedToday: nowDone}
	switch {
	case nowDone && !wasDone:
		h.MarkCompleted(today)
		tr.Changed = true
	case !nowDone && wasDone:
		h.UnmarkCompleted(today)
		tr.Changed = true
	}

	h.Streak = streak.Calculate(h.CompletedDates, now)
	tr.Streak = h.Streak
	tr.Milestone = streak.Crossed(prev, h.Streak)
	return tr, nil
}

// Complete archives a one-time task by stamping CompletedAt. The streak
// is untouched; one-time tasks never participate in it.
func Complete(h *models.Habit, now time.Time) error {
	if h.IsStreakable {
		return ErrNotOneTime
	}
	if h.CompletedAt == nil {
		t := now
		h.CompletedAt = &t
	}
	return nil
}

// Restore returns an archived one-time task to the active set.
func Restore(h *models.Habit) error {
	if h.IsStreakable {
		return ErrNotOneTime
	}
	h.CompletedAt = nil
	return nil
}
