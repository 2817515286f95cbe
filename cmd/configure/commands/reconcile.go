package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/Naiem890/momentum/internal/config"
	"github.com/Naiem890/momentum/internal/database"
	"github.com/Naiem890/momentum/internal/queue"
	"github.com/Naiem890/momentum/internal/workers"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewReconcileCmd creates the reconcile command. It runs a stats rebuild
// for one user synchronously, bypassing the queue. Useful after manual
// data fixes.
func NewReconcileCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Rebuild stats for a user",
		Long:  "Recompute a user's aggregate stats from their habit collection and persist the result.",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(user)
			if err != nil {
				return fmt.Errorf("--user must be a valid UUID: %w", err)
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			db, err := database.New(cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer func() {
				if err := db.Close(); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", err)
				}
			}()

			habitRepo := database.NewHabitRepository(db)
			statsRepo := database.NewStatsRepository(db)
			reconciler := workers.NewStatsReconciler(habitRepo, statsRepo)

			job := queue.NewJob(queue.JobTypeStatsReconcile, userID, nil)
			if err := reconciler.ProcessStatsReconcileJob(context.Background(), job); err != nil {
				return fmt.Errorf("reconciliation failed: %w", err)
			}

			fmt.Printf("Reconciled stats for user %s\n", userID)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User ID to reconcile (required)")
	return cmd
}
