package models

import (
	"testing"
	"time"
)

func TestHabit_MarkCompleted_SetSemantics(t *testing.T) {
	t.Parallel()

	h := &Habit{IsStreakable: true}

	h.MarkCompleted("2024-06-15")
	h.MarkCompleted("2024-06-15")
	h.MarkCompleted("2024-06-14")

	if len(h.CompletedDates) != 2 {
		t.Fatalf("expected 2 completed dates, got %d: %v", len(h.CompletedDates), h.CompletedDates)
	}
	if !h.CompletedOn("2024-06-15") || !h.CompletedOn("2024-06-14") {
		t.Errorf("expected both dates present, got %v", h.CompletedDates)
	}
}

func TestHabit_UnmarkCompleted(t *testing.T) {
	t.Parallel()

	h := &Habit{
		IsStreakable:   true,
		CompletedDates: []string{"2024-06-13", "2024-06-14", "2024-06-15"},
	}

	h.UnmarkCompleted("2024-06-14")

	if h.CompletedOn("2024-06-14") {
		t.Error("expected 2024-06-14 to be removed")
	}
	if len(h.CompletedDates) != 2 {
		t.Errorf("expected 2 dates, got %v", h.CompletedDates)
	}

	// Removing an absent date is a no-op.
	h.UnmarkCompleted("2024-01-01")
	if len(h.CompletedDates) != 2 {
		t.Errorf("expected no-op removal, got %v", h.CompletedDates)
	}
}

func TestHabit_SetProgress_Clamps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		minutes int
		want    int
	}{
		{name: "negative clamps to zero", minutes: -5, want: 0},
		{name: "normal value kept", minutes: 30, want: 30},
		{name: "over a day clamps to 1440", minutes: 2000, want: MaxDailyMinutes},
		{name: "exactly a day", minutes: 1440, want: 1440},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := &Habit{IsStreakable: true, TargetTime: 30}
			got := h.SetProgress("2024-06-15", tt.minutes)
			if got != tt.want {
				t.Errorf("SetProgress() = %d, want %d", got, tt.want)
			}
			if h.ProgressOn("2024-06-15") != tt.want {
				t.Errorf("ProgressOn() = %d, want %d", h.ProgressOn("2024-06-15"), tt.want)
			}
		})
	}
}

func TestHabit_Archived(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		name  string
		habit Habit
		want  bool
	}{
		{name: "streakable never archived", habit: Habit{IsStreakable: true, CompletedAt: &now}, want: false},
		{name: "one-time completed", habit: Habit{IsStreakable: false, CompletedAt: &now}, want: true},
		{name: "one-time pending", habit: Habit{IsStreakable: false}, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.habit.Archived(); got != tt.want {
				t.Errorf("Archived() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHabit_TimeBased(t *testing.T) {
	t.Parallel()

	if (&Habit{TargetTime: 0}).TimeBased() {
		t.Error("zero target must be a binary habit")
	}
	if !(&Habit{TargetTime: 30}).TimeBased() {
		t.Error("positive target must be time-based")
	}
}
