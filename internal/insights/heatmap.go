package insights

import (
	"time"

	"github.com/Naiem890/momentum/internal/dateutil"
	"github.com/Naiem890/momentum/internal/models"
)

// Heatmap intensity buckets. Future days carry BucketNoData and are
// never counted as zero-completion days.
const (
	BucketNoData = -1
	BucketNone   = 0
	BucketLow    = 1 // < 40%
	BucketMedium = 2 // < 70%
	BucketHigh   = 3 // < 100%
	BucketFull   = 4 // 100%
)

// HeatmapDay is one calendar day of the annual intensity map.
type HeatmapDay struct {
	Date        string `json:"date"`
	Completions int    `json:"completions"`
	Total       int    `json:"total"`
	Bucket      int    `json:"bucket"`
}

// Heatmap computes the per-day completion intensity for every calendar
// day of the given year. An empty category means all categories;
// otherwise the filter restricts both numerator and denominator.
func Heatmap(habits []*models.Habit, year int, category models.HabitCategory, now time.Time) []HeatmapDay {
	filtered := filterByCategory(streakableActive(habits), category)

	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(1, 0, 0)

	days := make([]HeatmapDay, 0, 366)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		key := dateutil.Day(d)
		day := HeatmapDay{Date: key, Total: len(filtered)}

		if dateutil.IsFuture(key, now) {
			day.Bucket = BucketNoData
			days = append(days, day)
			continue
		}

		for _, h := range filtered {
			if h.CompletedOn(key) {
				day.Completions++
			}
		}
		day.Bucket = bucketFor(day.Completions, day.Total)
		days = append(days, day)
	}
	return days
}

func filterByCategory(habits []*models.Habit, category models.HabitCategory) []*models.Habit {
	if category == "" {
		return habits
	}
	out := make([]*models.Habit, 0, len(habits))
	for _, h := range habits {
		if h.Category == category {
			out = append(out, h)
		}
	}
	return out
}

func bucketFor(completions, total int) int {
	if total == 0 || completions == 0 {
		return BucketNone
	}
	ratio := float64(completions) / float64(total)
	switch {
	case ratio < 0.4:
		return BucketLow
	case ratio < 0.7:
		return BucketMedium
	case ratio < 1.0:
		return BucketHigh
	default:
		return BucketFull
	}
}
