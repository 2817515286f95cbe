package insights

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ThresholdType selects which counter a badge measures.
type ThresholdType string

const (
	ThresholdStreak           ThresholdType = "streak"
	ThresholdTotalCompletions ThresholdType = "total_completions"
)

// Badge is one rung of the achievement ladder.
type Badge struct {
	ID     string        `json:"id" yaml:"id"`
	Name   string        `json:"name" yaml:"name"`
	Type   ThresholdType `json:"type" yaml:"type"`
	Target int           `json:"target" yaml:"target"`
}

// BadgeProgress is a badge evaluated against current counters.
type BadgeProgress struct {
	Badge
	Current  int     `json:"current"`
	Earned   bool    `json:"earned"`
	Progress float64 `json:"progress"`
}

// DefaultLadder returns the built-in badge ladder, ascending per
// threshold type.
func DefaultLadder() []Badge {
	return []Badge{
		{ID: "7day", Name: "7-Day", Type: ThresholdStreak, Target: 7},
		{ID: "30day", Name: "30-Day", Type: ThresholdStreak, Target: 30},
		{ID: "60day", Name: "60-Day", Type: ThresholdStreak, Target: 60},
		{ID: "100day", Name: "100-Day", Type: ThresholdStreak, Target: 100},
		{ID: "365day", Name: "Titan", Type: ThresholdStreak, Target: 365},
		{ID: "100q", Name: "Warrior", Type: ThresholdTotalCompletions, Target: 100},
		{ID: "500q", Name: "Legend", Type: ThresholdTotalCompletions, Target: 500},
	}
}

// LoadLadder reads a badge ladder from a YAML file. Used to override
// the built-in ladder without a redeploy.
func LoadLadder(path string) ([]Badge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read badge ladder: %w", err)
	}

	var ladder struct {
		Badges []Badge `yaml:"badges"`
	}
	if err := yaml.Unmarshal(data, &ladder); err != nil {
		return nil, fmt.Errorf("failed to parse badge ladder: %w", err)
	}
	if len(ladder.Badges) == 0 {
		return nil, fmt.Errorf("badge ladder %s contains no badges", path)
	}
	for i, b := range ladder.Badges {
		if b.ID == "" || b.Target <= 0 {
			return nil, fmt.Errorf("badge %d is missing id or positive target", i)
		}
		if b.Type != ThresholdStreak && b.Type != ThresholdTotalCompletions {
			return nil, fmt.Errorf("badge %s has unknown threshold type %q", b.ID, b.Type)
		}
	}
	return ladder.Badges, nil
}

// Evaluate computes earned state and percent progress for every badge
// in the ladder against the current counters.
func Evaluate(ladder []Badge, maxStreak, totalCompleted int) []BadgeProgress {
	out := make([]BadgeProgress, 0, len(ladder))
	for _, b := range ladder {
		current := maxStreak
		if b.Type == ThresholdTotalCompletions {
			current = totalCompleted
		}
		progress := float64(current) / float64(b.Target) * 100
		if progress > 100 {
			progress = 100
		}
		out = append(out, BadgeProgress{
			Badge:    b,
			Current:  current,
			Earned:   current >= b.Target,
			Progress: progress,
		})
	}
	return out
}

// NextObjective returns the first unearned badge in ladder order, or
// the last badge when everything is earned.
func NextObjective(progress []BadgeProgress) (BadgeProgress, bool) {
	if len(progress) == 0 {
		return BadgeProgress{}, false
	}
	for _, p := range progress {
		if !p.Earned {
			return p, true
		}
	}
	return progress[len(progress)-1], true
}
