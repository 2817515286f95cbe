package database

import (
	"context"

	"github.com/Naiem890/momentum/internal/models"
	"github.com/google/uuid"
)

// HabitRepositoryInterface defines the interface for habit repository operations
// This interface enables better testability by allowing mock implementations
type HabitRepositoryInterface interface {
	Create(ctx context.Context, habit *models.Habit) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Habit, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, category *models.HabitCategory) ([]*models.Habit, error)
	Update(ctx context.Context, habit *models.Habit) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// StatsRepositoryInterface defines the interface for stats repository operations
type StatsRepositoryInterface interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.UserStats, error)
	Upsert(ctx context.Context, stats *models.UserStats) error
}

// Ensure concrete types implement the interfaces
var (
	_ HabitRepositoryInterface = (*HabitRepository)(nil)
	_ StatsRepositoryInterface = (*StatsRepository)(nil)
)
