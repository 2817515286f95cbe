package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/Naiem890/momentum/internal/config"
	"github.com/Naiem890/momentum/internal/dateutil"
	"github.com/Naiem890/momentum/internal/services/quote"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewQuoteCmd creates the quote command with show and invalidate
// subcommands.
func NewQuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Manage the daily quote",
		Long:  "Fetch the daily quote or drop its Redis cache entry.",
	}
	cmd.AddCommand(newQuoteShowCmd())
	cmd.AddCommand(newQuoteInvalidateCmd())
	return cmd
}

func newQuoteShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Fetch a quote from the upstream API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			provider := quote.NewProvider(cfg.QuoteAPIURL, zap.NewNop())
			q := provider.Fetch(context.Background())
			fmt.Printf("%q\n  - %s\n", q.Text, q.Author)
			return nil
		},
	}
}

func newQuoteInvalidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invalidate",
		Short: "Drop today's cached quote",
		Long:  "Delete the Redis cache entry for today's quote so the next request refetches it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			opts, err := redis.ParseURL(cfg.RedisURL)
			if err != nil {
				return fmt.Errorf("invalid Redis URL: %w", err)
			}
			client := redis.NewClient(opts)
			defer func() { _ = client.Close() }()

			provider := quote.NewProvider(cfg.QuoteAPIURL, zap.NewNop())
			service := quote.NewService(provider, client, zap.NewNop())

			day := dateutil.Today(time.Now())
			if err := service.Invalidate(context.Background(), day); err != nil {
				return err
			}
			fmt.Printf("Invalidated cached quote for %s\n", day)
			return nil
		},
	}
}
