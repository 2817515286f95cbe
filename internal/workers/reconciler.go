package workers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Naiem890/momentum/internal/database"
	"github.com/Naiem890/momentum/internal/models"
	"github.com/Naiem890/momentum/internal/queue"
	"github.com/Naiem890/momentum/internal/stats"
)

// StatsReconciler processes stats reconciliation jobs. Each job rebuilds
// one user's aggregate stats from their habit collection and corrects
// any streak caches that have drifted.
type StatsReconciler struct {
	habitRepo database.HabitRepositoryInterface
	statsRepo database.StatsRepositoryInterface
	now       func() time.Time
}

// NewStatsReconciler creates a new stats reconciler
func NewStatsReconciler(habitRepo database.HabitRepositoryInterface, statsRepo database.StatsRepositoryInterface) *StatsReconciler {
	return &StatsReconciler{
		habitRepo: habitRepo,
		statsRepo: statsRepo,
		now:       time.Now,
	}
}

// ProcessStatsReconcileJob rebuilds the stats row for the job's user
func (r *StatsReconciler) ProcessStatsReconcileJob(ctx context.Context, job *queue.Job) error {
	habits, err := r.habitRepo.GetByUserID(ctx, job.UserID, nil)
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}

	prev, err := r.statsRepo.Get(ctx, job.UserID)
	if err != nil {
		if !errors.Is(err, database.ErrNotFound) {
			return fmt.Errorf("failed to get stats: %w", err)
		}
		prev = &models.UserStats{UserID: job.UserID}
	}

	res := stats.Reconcile(habits, *prev, r.now())

	for _, habit := range res.Corrected {
		if err := r.habitRepo.Update(ctx, habit); err != nil {
			return fmt.Errorf("failed to persist corrected streak for habit %s: %w", habit.ID, err)
		}
	}

	res.Stats.UserID = job.UserID
	if err := r.statsRepo.Upsert(ctx, &res.Stats); err != nil {
		return fmt.Errorf("failed to upsert stats: %w", err)
	}

	log.Printf("Reconciled stats for user %s: total=%d longest_streak=%d corrected=%d",
		job.UserID, res.Stats.TotalHabitsCompleted, res.Stats.LongestStreak, len(res.Corrected))
	return nil
}

// ProcessJob processes a job based on its type
func (r *StatsReconciler) ProcessJob(ctx context.Context, msg *queue.Message) error {
	job := msg.Job

	// Check if job should be processed now (respect NotBefore)
	if !job.ShouldProcess() {
		log.Printf("Job %s not ready yet (NotBefore: %v), skipping", job.ID, job.NotBefore)
		if ackErr := msg.Ack(); ackErr != nil {
			log.Printf("Failed to ack job for later processing: %v", ackErr)
		}
		return nil
	}

	switch job.Type {
	case queue.JobTypeStatsReconcile:
		if err := r.ProcessStatsReconcileJob(ctx, job); err != nil {
			return r.handleJobError(msg, job, err)
		}
		if ackErr := msg.Ack(); ackErr != nil {
			return fmt.Errorf("failed to ack job: %w", ackErr)
		}
		return nil

	default:
		if nackErr := msg.Nack(false); nackErr != nil { // Unknown job type, send to DLQ
			log.Printf("Failed to nack unknown job type: %v", nackErr)
		}
		return fmt.Errorf("unknown job type: %s", job.Type)
	}
}

// handleJobError retries failed jobs until the retries run out, then
// dead-letters them.
func (r *StatsReconciler) handleJobError(msg *queue.Message, job *queue.Job, err error) error {
	if job.CanRetry() {
		job.IncrementRetry()
		log.Printf("Stats reconcile job %s failed (attempt %d/%d): %v, will retry",
			job.ID, job.RetryCount, job.MaxRetries, err)
		if nackErr := msg.Nack(true); nackErr != nil {
			log.Printf("Failed to nack job: %v", nackErr)
		}
		return fmt.Errorf("job failed (will retry): %w", err)
	}

	log.Printf("Stats reconcile job %s failed after %d retries: %v, sending to DLQ",
		job.ID, job.MaxRetries, err)
	if nackErr := msg.Nack(false); nackErr != nil {
		log.Printf("Failed to nack job to DLQ: %v", nackErr)
	}
	return fmt.Errorf("job failed (max retries): %w", err)
}
