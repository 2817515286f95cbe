// Package stats rebuilds the UserStats summary from the authoritative
// habit collection, discarding hand-maintained counters that have
// drifted. The engine never trusts a stored total; it recomputes on
// every session load.
package stats

import (
	"time"

	"github.com/Naiem890/momentum/internal/dateutil"
	"github.com/Naiem890/momentum/internal/models"
	"github.com/Naiem890/momentum/internal/streak"
)

// LongestStreakCeiling guards against corrupt stored maxima. A stored
// longest streak above this is discarded in favor of the freshly
// computed value.
const LongestStreakCeiling = 100

// Result carries the reconciled stats plus the habits whose cached
// streak value was corrected, so the caller can persist them.
type Result struct {
	Stats     models.UserStats
	Corrected []*models.Habit
}

// Reconcile recomputes totals from scratch over the habit collection.
// Only active streakable habits contribute: archived and one-time tasks
// never count. The previously stored longest streak is merged rather
// than overwritten, so a broken streak does not erase the historical
// maximum. The pass is idempotent: each habit's streak cache is first
// refreshed from the calculator, so a second run over unchanged data
// returns the same result.
func Reconcile(habits []*models.Habit, prev models.UserStats, now time.Time) Result {
	res := Result{Stats: prev}

	total := 0
	maxStreak := 0
	for _, h := range habits {
		if !h.IsStreakable || h.Archived() {
			continue
		}

		fresh := streak.Calculate(h.CompletedDates, now)
		if fresh != h.Streak {
			h.Streak = fresh
			res.Corrected = append(res.Corrected, h)
		}

		total += len(h.CompletedDates)
		if h.Streak > maxStreak {
			maxStreak = h.Streak
		}
	}

	stored := prev.LongestStreak
	if stored > LongestStreakCeiling {
		// Treat as corrupt; trust only the recomputed maximum.
		stored = 0
	}
	if maxStreak < stored {
		maxStreak = stored
	}

	res.Stats.TotalHabitsCompleted = total
	res.Stats.LongestStreak = maxStreak
	res.Stats.LastLogin = dateutil.Today(now)
	return res
}
