package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Naiem890/momentum/internal/models"
	"github.com/google/uuid"
)

// HabitRepository handles habit database operations
type HabitRepository struct {
	db *DB
}

// NewHabitRepository creates a new habit repository
func NewHabitRepository(db *DB) *HabitRepository {
	return &HabitRepository{db: db}
}

const habitColumns = `id, user_id, title, description, category, is_streakable, streak,
		completed_dates, target_time, daily_progress, created_at, updated_at, completed_at`

// Create inserts a new habit
func (r *HabitRepository) Create(ctx context.Context, habit *models.Habit) error {
	query := `
		INSERT INTO habits (id, user_id, title, description, category, is_streakable, streak,
			completed_dates, target_time, daily_progress, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`

	datesJSON, progressJSON, err := marshalHabitState(habit)
	if err != nil {
		return err
	}

	now := time.Now()
	err = r.db.QueryRowContext(ctx, query,
		habit.ID,
		habit.UserID,
		habit.Title,
		habit.Description,
		habit.Category,
		habit.IsStreakable,
		habit.Streak,
		datesJSON,
		habit.TargetTime,
		progressJSON,
		now,
		now,
	).Scan(&habit.CreatedAt, &habit.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create habit: %w", err)
	}

	return nil
}

// GetByID retrieves a habit by ID
func (r *HabitRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits WHERE id = $1`

	habit, err := scanHabit(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("habit %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get habit: %w", err)
	}

	return habit, nil
}

// GetByUserID retrieves all habits for a user, optionally filtered by
// category. Archived habits are included; callers partition them.
func (r *HabitRepository) GetByUserID(ctx context.Context, userID uuid.UUID, category *models.HabitCategory) ([]*models.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits WHERE user_id = $1`
	args := []any{userID}

	if category != nil {
		query += " AND category = $2"
		args = append(args, string(*category))
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query habits: %w", err)
	}
	defer rows.Close()

	var habits []*models.Habit
	for rows.Next() {
		habit, err := scanHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, habit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating habits: %w", err)
	}

	return habits, nil
}

// Update persists an existing habit, including its completion state
func (r *HabitRepository) Update(ctx context.Context, habit *models.Habit) error {
	query := `
		UPDATE habits
		SET title = $2, description = $3, category = $4, is_streakable = $5, streak = $6,
			completed_dates = $7, target_time = $8, daily_progress = $9, updated_at = $10, completed_at = $11
		WHERE id = $1
		RETURNING updated_at
	`

	datesJSON, progressJSON, err := marshalHabitState(habit)
	if err != nil {
		return err
	}

	var completedAt sql.NullTime
	if habit.CompletedAt != nil {
		completedAt = sql.NullTime{Time: *habit.CompletedAt, Valid: true}
	}

	now := time.Now()
	err = r.db.QueryRowContext(ctx, query,
		habit.ID,
		habit.Title,
		habit.Description,
		habit.Category,
		habit.IsStreakable,
		habit.Streak,
		datesJSON,
		habit.TargetTime,
		progressJSON,
		now,
		completedAt,
	).Scan(&habit.UpdatedAt)

	if err == sql.ErrNoRows {
		return fmt.Errorf("habit %s: %w", habit.ID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}

	return nil
}

// Delete removes a habit by ID
func (r *HabitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("habit %s: %w", id, ErrNotFound)
	}

	return nil
}

func marshalHabitState(habit *models.Habit) (datesJSON, progressJSON []byte, err error) {
	dates := habit.CompletedDates
	if dates == nil {
		dates = []string{}
	}
	datesJSON, err = json.Marshal(dates)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal completed dates: %w", err)
	}

	progress := habit.DailyProgress
	if progress == nil {
		progress = map[string]int{}
	}
	progressJSON, err = json.Marshal(progress)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal daily progress: %w", err)
	}

	return datesJSON, progressJSON, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (*models.Habit, error) {
	habit := &models.Habit{}
	var datesJSON, progressJSON []byte
	var description sql.NullString
	var targetTime sql.NullInt64
	var completedAt sql.NullTime

	err := row.Scan(
		&habit.ID,
		&habit.UserID,
		&habit.Title,
		&description,
		&habit.Category,
		&habit.IsStreakable,
		&habit.Streak,
		&datesJSON,
		&targetTime,
		&progressJSON,
		&habit.CreatedAt,
		&habit.UpdatedAt,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		habit.Description = description.String
	}
	if targetTime.Valid {
		habit.TargetTime = int(targetTime.Int64)
	}
	if completedAt.Valid {
		habit.CompletedAt = &completedAt.Time
	}

	if err := json.Unmarshal(datesJSON, &habit.CompletedDates); err != nil {
		return nil, fmt.Errorf("failed to unmarshal completed dates: %w", err)
	}
	if err := json.Unmarshal(progressJSON, &habit.DailyProgress); err != nil {
		return nil, fmt.Errorf("failed to unmarshal daily progress: %w", err)
	}

	return habit, nil
}
