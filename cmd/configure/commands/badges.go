package commands

import (
	"fmt"

	"github.com/Naiem890/momentum/internal/insights"
	"github.com/spf13/cobra"
)

// NewBadgesCmd creates the badges command with a validate subcommand.
func NewBadgesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "badges",
		Short: "Manage the badge ladder",
		Long:  "Validate a badge ladder YAML file before pointing BADGES_PATH at it.",
	}
	cmd.AddCommand(newBadgesValidateCmd())
	return cmd
}

func newBadgesValidateCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a badge ladder file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				return fmt.Errorf("--path is required")
			}

			ladder, err := insights.LoadLadder(path)
			if err != nil {
				return fmt.Errorf("badge ladder is invalid: %w", err)
			}

			fmt.Printf("Badge ladder %s is valid (%d badges):\n", path, len(ladder))
			for _, b := range ladder {
				fmt.Printf("  - %s (%s): %s >= %d\n", b.Name, b.ID, b.Type, b.Target)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "Path to the badge ladder YAML file (required)")
	return cmd
}
