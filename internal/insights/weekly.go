// Package insights derives read-only projections over a user's habit
// collection: the weekly completion grid, the annual heatmap, and
// badge progress. Nothing here mutates state.
package insights

import (
	"time"

	"github.com/Naiem890/momentum/internal/dateutil"
	"github.com/Naiem890/momentum/internal/models"
)

// WeekDay is one cell of the rolling 7-day completion grid.
type WeekDay struct {
	Date      string  `json:"date"`
	Weekday   string  `json:"weekday"`
	IsToday   bool    `json:"is_today"`
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Complete  bool    `json:"complete"`
	Rate      float64 `json:"rate"`
}

// Weekly computes the last-7-days grid ending today. A day counts as
// complete only when every currently-active streakable habit was done
// that day (strict all-or-nothing). The denominator uses the current
// habit set as a proxy for the set active on past days; that
// approximation is deliberate, historical task-set reconstruction is
// out of scope.
func Weekly(habits []*models.Habit, now time.Time) []WeekDay {
	active := streakableActive(habits)
	today := dateutil.Today(now)

	days := make([]WeekDay, 0, 7)
	for offset := -6; offset <= 0; offset++ {
		dayTime := now.AddDate(0, 0, offset)
		key := dateutil.Day(dayTime)

		completed := 0
		for _, h := range active {
			if h.CompletedOn(key) {
				completed++
			}
		}

		total := len(active)
		rate := 0.0
		if total > 0 {
			rate = float64(completed) / float64(total)
		}

		days = append(days, WeekDay{
			Date:      key,
			Weekday:   dayTime.Weekday().String()[:3],
			IsToday:   key == today,
			Completed: completed,
			Total:     total,
			Complete:  total > 0 && completed == total,
			Rate:      rate,
		})
	}
	return days
}

// streakableActive filters to the habits that participate in streak
// and heatmap aggregates: streakable and not archived.
func streakableActive(habits []*models.Habit) []*models.Habit {
	out := make([]*models.Habit, 0, len(habits))
	for _, h := range habits {
		if h.IsStreakable && !h.Archived() {
			out = append(out, h)
		}
	}
	return out
}
