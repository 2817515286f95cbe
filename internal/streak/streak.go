// Package streak computes consecutive-day completion streaks from sets
// of YYYY-MM-DD day keys. It is the source of truth for every stored
// streak value: habit records carry a cached copy that mutations and
// reconciliation refresh from Calculate.
package streak

import (
	"sort"
	"time"

	"github.com/Naiem890/momentum/internal/dateutil"
)

// Thresholds are the milestone streak lengths, ascending. Crossing one
// is surfaced to the caller so the presentation layer can react.
var Thresholds = []int{7, 30, 60, 100}

// Calculate returns the current consecutive-day streak ending at today
// or yesterday. A most recent completion older than yesterday means the
// streak has expired and the result is 0. Input order is irrelevant and
// duplicates are ignored.
func Calculate(completedDates []string, now time.Time) int {
	if len(completedDates) == 0 {
		return 0
	}

	// Deduplicate, then sort descending. Day keys are zero-padded so
	// string order is calendar order.
	seen := make(map[string]struct{}, len(completedDates))
	days := make([]string, 0, len(completedDates))
	for _, d := range completedDates {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	today := dateutil.Today(now)
	yesterday := dateutil.Yesterday(now)

	last := days[0]
	if last != today && last != yesterday {
		return 0
	}

	// Walk backward one calendar day at a time from the most recent
	// completion, counting until the first gap.
	count := 0
	expected := last
	for _, d := range days {
		if d != expected {
			break
		}
		count++
		prev, err := dateutil.AddDays(expected, -1)
		if err != nil {
			break
		}
		expected = prev
	}

	return count
}

// Crossed returns the milestone threshold reached by moving from prev
// to next, or 0 if the change crossed none. Only increments count; a
// streak falling back below a threshold never re-triggers it.
func Crossed(prev, next int) int {
	if next <= prev {
		return 0
	}
	for _, m := range Thresholds {
		if prev < m && next >= m {
			return m
		}
	}
	return 0
}
