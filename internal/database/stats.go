package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Naiem890/momentum/internal/models"
	"github.com/google/uuid"
)

// StatsRepository handles user stats database operations
type StatsRepository struct {
	db *DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Get retrieves the stats row for a user. Returns ErrNotFound when the
// user has no row yet; callers treat that as zero stats.
func (r *StatsRepository) Get(ctx context.Context, userID uuid.UUID) (*models.UserStats, error) {
	stats := &models.UserStats{}
	var lastLogin sql.NullString

	query := `
		SELECT user_id, total_habits_completed, longest_streak, last_login, updated_at
		FROM user_stats
		WHERE user_id = $1
	`

	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&stats.UserID,
		&stats.TotalHabitsCompleted,
		&stats.LongestStreak,
		&lastLogin,
		&stats.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("stats for user %s: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	if lastLogin.Valid {
		stats.LastLogin = lastLogin.String
	}

	return stats, nil
}

// Upsert writes the stats row for a user, creating it on first write.
func (r *StatsRepository) Upsert(ctx context.Context, stats *models.UserStats) error {
	query := `
		INSERT INTO user_stats (user_id, total_habits_completed, longest_streak, last_login, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET total_habits_completed = EXCLUDED.total_habits_completed,
			longest_streak = EXCLUDED.longest_streak,
			last_login = EXCLUDED.last_login,
			updated_at = EXCLUDED.updated_at
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		stats.UserID,
		stats.TotalHabitsCompleted,
		stats.LongestStreak,
		stats.LastLogin,
		time.Now(),
	).Scan(&stats.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert stats: %w", err)
	}

	return nil
}
