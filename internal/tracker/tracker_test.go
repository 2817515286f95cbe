package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Naiem890/momentum/internal/models"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)

func newBinaryHabit(dates ...string) *models.Habit {
	h := &models.Habit{
		ID:             uuid.New(),
		Title:          "Read",
		Category:       models.CategoryStudy,
		IsStreakable:   true,
		CompletedDates: dates,
	}
	h.Streak = len(dates) // callers set realistic values per test
	return h
}

func TestToggle_OnThenOff_RoundTrip(t *testing.T) {
	t.Parallel()

	h := newBinaryHabit("2024-06-14", "2024-06-13")
	h.Streak = 2

	tr, err := Toggle(h, testNow)
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if !tr.CompletedToday || !tr.Changed {
		t.Errorf("expected transition to done, got %+v", tr)
	}
	if tr.Streak != 3 || h.Streak != 3 {
		t.Errorf("expected streak 3 after toggle on, got %d", h.Streak)
	}
	if !h.CompletedOn("2024-06-15") {
		t.Error("expected today recorded in completed dates")
	}

	tr, err = Toggle(h, testNow)
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if tr.CompletedToday {
		t.Errorf("expected transition to not_done, got %+v", tr)
	}
	if h.Streak != 2 {
		t.Errorf("expected streak restored to 2, got %d", h.Streak)
	}
	if h.CompletedOn("2024-06-15") {
		t.Error("expected today removed from completed dates")
	}
	if len(h.CompletedDates) != 2 {
		t.Errorf("expected completed dates restored, got %v", h.CompletedDates)
	}
}

func TestToggle_CorrectsStaleStreakCache(t *testing.T) {
	t.Parallel()

	// Last completion three days ago: streak expired, but the stored
	// cache still says 5. Toggling today must yield 1, not 6.
	h := newBinaryHabit("2024-06-12", "2024-06-11")
	h.Streak = 5

	tr, err := Toggle(h, testNow)
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if tr.Streak != 1 {
		t.Errorf("expected fresh streak 1 from calculator, got %d", tr.Streak)
	}
}

func TestToggle_MilestoneCrossing(t *testing.T) {
	t.Parallel()

	dates := make([]string, 0, 6)
	day := time.Date(2024, 6, 14, 0, 0, 0, 0, time.Local)
	for i := 0; i < 6; i++ {
		dates = append(dates, day.AddDate(0, 0, -i).Format("2006-01-02"))
	}
	h := newBinaryHabit(dates...)
	h.Streak = 6

	tr, err := Toggle(h, testNow)
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if tr.Streak != 7 {
		t.Fatalf("expected streak 7, got %d", tr.Streak)
	}
	if tr.Milestone != 7 {
		t.Errorf("expected milestone 7 signalled, got %d", tr.Milestone)
	}

	// Un-toggling back down must not signal anything.
	tr, err = Toggle(h, testNow)
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if tr.Milestone != 0 {
		t.Errorf("expected no milestone on decrement, got %d", tr.Milestone)
	}
}

func TestToggle_Rejections(t *testing.T) {
	t.Parallel()

	timeBased := newBinaryHabit()
	timeBased.TargetTime = 30
	if _, err := Toggle(timeBased, testNow); !errors.Is(err, ErrNotToggleable) {
		t.Errorf("expected ErrNotToggleable for time-based habit, got %v", err)
	}

	oneTime := &models.Habit{IsStreakable: false}
	if _, err := Toggle(oneTime, testNow); !errors.Is(err, ErrNotStreakable) {
		t.Errorf("expected ErrNotStreakable for one-time task, got %v", err)
	}
}

func TestApplyProgress_CrossesTargetUpward(t *testing.T) {
	t.Parallel()

	h := newBinaryHabit()
	h.TargetTime = 30
	h.Streak = 0
	h.SetProgress("2024-06-15", 29)

	tr, err := ApplyProgress(h, 30, testNow)
	if err != nil {
		t.Fatalf("ApplyProgress() error = %v", err)
	}
	if !tr.CompletedToday || !tr.Changed {
		t.Errorf("expected not_done -> done transition, got %+v", tr)
	}
	if tr.Streak != 1 {
		t.Errorf("expected streak 1, got %d", tr.Streak)
	}
	if !h.CompletedOn("2024-06-15") {
		t.Error("expected today in completed dates")
	}
}

func TestApplyProgress_ReducedBelowTarget(t *testing.T) {
	t.Parallel()

	h := newBinaryHabit("2024-06-15")
	h.TargetTime = 30
	h.Streak = 1
	h.SetProgress("2024-06-15", 45)

	tr, err := ApplyProgress(h, 20, testNow)
	if err != nil {
		t.Fatalf("ApplyProgress() error = %v", err)
	}
	if tr.CompletedToday || !tr.Changed {
		t.Errorf("expected done -> not_done transition, got %+v", tr)
	}
	if h.Streak != 0 {
		t.Errorf("expected streak 0, got %d", h.Streak)
	}
	if h.CompletedOn("2024-06-15") {
		t.Error("expected today removed from completed dates")
	}
	if h.ProgressOn("2024-06-15") != 20 {
		t.Errorf("expected progress 20 recorded, got %d", h.ProgressOn("2024-06-15"))
	}
}

func TestApplyProgress_NoTransitionUpdatesMinutesOnly(t *testing.T) {
	t.Parallel()

	h := newBinaryHabit()
	h.TargetTime = 60
	h.Streak = 0

	tr, err := ApplyProgress(h, 10, testNow)
	if err != nil {
		t.Fatalf("ApplyProgress() error = %v", err)
	}
	if tr.Changed {
		t.Errorf("expected no state change below target, got %+v", tr)
	}
	if h.ProgressOn("2024-06-15") != 10 {
		t.Errorf("expected 10 minutes recorded, got %d", h.ProgressOn("2024-06-15"))
	}
	if len(h.CompletedDates) != 0 {
		t.Errorf("expected no completion, got %v", h.CompletedDates)
	}
}

func TestApplyProgress_MonotonicAboveTarget(t *testing.T) {
	t.Parallel()

	h := newBinaryHabit()
	h.TargetTime = 30

	prevStreak := 0
	for _, minutes := range []int{30, 35, 40, 60, 120} {
		tr, err := ApplyProgress(h, minutes, testNow)
		if err != nil {
			t.Fatalf("ApplyProgress(%d) error = %v", minutes, err)
		}
		if tr.Streak < prevStreak {
			t.Errorf("streak decreased from %d to %d at %d minutes", prevStreak, tr.Streak, minutes)
		}
		prevStreak = tr.Streak
	}
	if h.Streak != 1 {
		t.Errorf("expected streak 1 held across updates, got %d", h.Streak)
	}
}

func TestApplyProgress_ClampsToFullDay(t *testing.T) {
	t.Parallel()

	h := newBinaryHabit()
	h.TargetTime = 30

	if _, err := ApplyProgress(h, 5000, testNow); err != nil {
		t.Fatalf("ApplyProgress() error = %v", err)
	}
	if got := h.ProgressOn("2024-06-15"); got != models.MaxDailyMinutes {
		t.Errorf("expected clamp to %d, got %d", models.MaxDailyMinutes, got)
	}
}

func TestApplyProgress_Rejections(t *testing.T) {
	t.Parallel()

	timeBased := newBinaryHabit()
	timeBased.TargetTime = 30
	if _, err := ApplyProgress(timeBased, -1, testNow); !errors.Is(err, ErrNegativeMinutes) {
		t.Errorf("expected ErrNegativeMinutes, got %v", err)
	}

	binary := newBinaryHabit()
	if _, err := ApplyProgress(binary, 10, testNow); !errors.Is(err, ErrNotTimeBased) {
		t.Errorf("expected ErrNotTimeBased, got %v", err)
	}

	oneTime := &models.Habit{IsStreakable: false, TargetTime: 30}
	if _, err := ApplyProgress(oneTime, 10, testNow); !errors.Is(err, ErrNotStreakable) {
		t.Errorf("expected ErrNotStreakable, got %v", err)
	}
}

func TestCompleteAndRestore(t *testing.T) {
	t.Parallel()

	h := &models.Habit{ID: uuid.New(), Title: "File taxes", IsStreakable: false}

	if err := Complete(h, testNow); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if h.CompletedAt == nil {
		t.Fatal("expected CompletedAt stamped")
	}
	if !h.Archived() {
		t.Error("expected habit archived")
	}
	if h.Streak != 0 {
		t.Errorf("one-time completion must not touch streak, got %d", h.Streak)
	}

	stamped := *h.CompletedAt
	if err := Complete(h, testNow.Add(time.Hour)); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if !h.CompletedAt.Equal(stamped) {
		t.Error("re-completing must keep the original timestamp")
	}

	if err := Restore(h); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if h.CompletedAt != nil || h.Archived() {
		t.Error("expected habit restored to active set")
	}

	streakable := &models.Habit{IsStreakable: true}
	if err := Complete(streakable, testNow); !errors.Is(err, ErrNotOneTime) {
		t.Errorf("expected ErrNotOneTime, got %v", err)
	}
	if err := Restore(streakable); !errors.Is(err, ErrNotOneTime) {
		t.Errorf("expected ErrNotOneTime, got %v", err)
	}
}
