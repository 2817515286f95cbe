package stats

import (
	"testing"
	"time"

	"github.com/Naiem890/momentum/internal/models"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)

func TestReconcile_RecomputesTotalsFromScratch(t *testing.T) {
	t.Parallel()

	done := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
	habits := []*models.Habit{
		{IsStreakable: true, Streak: 2, CompletedDates: []string{"2024-06-15", "2024-06-14"}},
		{IsStreakable: true, Streak: 1, CompletedDates: []string{"2024-06-15"}},
		{IsStreakable: false, CompletedDates: []string{"2024-06-15"}},                     // one-time, never counted
		{IsStreakable: false, CompletedAt: &done, CompletedDates: []string{"2024-05-30"}}, // archived
	}
	prev := models.UserStats{TotalHabitsCompleted: 999, LongestStreak: 1}

	res := Reconcile(habits, prev, testNow)

	if res.Stats.TotalHabitsCompleted != 3 {
		t.Errorf("expected total 3 from streakable habits only, got %d", res.Stats.TotalHabitsCompleted)
	}
	if res.Stats.LongestStreak != 2 {
		t.Errorf("expected longest streak 2, got %d", res.Stats.LongestStreak)
	}
	if res.Stats.LastLogin != "2024-06-15" {
		t.Errorf("expected last login today, got %s", res.Stats.LastLogin)
	}
}

func TestReconcile_CorrectsDriftedStreakCaches(t *testing.T) {
	t.Parallel()

	// Cached streak says 9 but the dates expired days ago.
	drifted := &models.Habit{
		IsStreakable:   true,
		Streak:         9,
		CompletedDates: []string{"2024-06-10", "2024-06-09"},
	}
	healthy := &models.Habit{
		IsStreakable:   true,
		Streak:         1,
		CompletedDates: []string{"2024-06-15"},
	}

	res := Reconcile([]*models.Habit{drifted, healthy}, models.UserStats{}, testNow)

	if drifted.Streak != 0 {
		t.Errorf("expected drifted cache corrected to 0, got %d", drifted.Streak)
	}
	if len(res.Corrected) != 1 || res.Corrected[0] != drifted {
		t.Errorf("expected exactly the drifted habit reported, got %v", res.Corrected)
	}
	if res.Stats.LongestStreak != 1 {
		t.Errorf("expected longest streak 1 after correction, got %d", res.Stats.LongestStreak)
	}
}

func TestReconcile_MergesStoredLongestStreak(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stored int
		want   int
	}{
		{name: "historical maximum persists past a broken streak", stored: 40, want: 40},
		{name: "fresh maximum wins when larger", stored: 1, want: 2},
		{name: "value above ceiling is corrupt and discarded", stored: 5000, want: 2},
		{name: "exactly at ceiling is trusted", stored: 100, want: 100},
	}

	habits := []*models.Habit{
		{IsStreakable: true, CompletedDates: []string{"2024-06-15", "2024-06-14"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := Reconcile(habits, models.UserStats{LongestStreak: tt.stored}, testNow)
			if res.Stats.LongestStreak != tt.want {
				t.Errorf("LongestStreak = %d, want %d", res.Stats.LongestStreak, tt.want)
			}
		})
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	t.Parallel()

	habits := []*models.Habit{
		{IsStreakable: true, Streak: 7, CompletedDates: []string{"2024-06-13", "2024-06-12"}},
		{IsStreakable: true, Streak: 1, CompletedDates: []string{"2024-06-15"}},
	}
	prev := models.UserStats{LongestStreak: 3}

	first := Reconcile(habits, prev, testNow)
	second := Reconcile(habits, first.Stats, testNow)

	if first.Stats != second.Stats {
		t.Errorf("reconciliation not idempotent: %+v != %+v", first.Stats, second.Stats)
	}
	if len(second.Corrected) != 0 {
		t.Errorf("second pass must find nothing to correct, got %v", second.Corrected)
	}
}

func TestReconcile_EmptyCollection(t *testing.T) {
	t.Parallel()

	res := Reconcile(nil, models.UserStats{LongestStreak: 12}, testNow)
	if res.Stats.TotalHabitsCompleted != 0 {
		t.Errorf("expected total 0, got %d", res.Stats.TotalHabitsCompleted)
	}
	if res.Stats.LongestStreak != 12 {
		t.Errorf("expected stored longest streak kept, got %d", res.Stats.LongestStreak)
	}
}
