package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var matchCommand = &cobra.Command{
	Use:   "match",
	Short: "Match the owner's latest profile against the opportunity catalog",
	Long:  "Ranks every catalog opportunity against the owner's latest profile and stored preferences, persists the qualifying matches and schedules their delivery.",
	RunE:  runMatchCmd,
}

var matchOwner string

func init() {
	matchCommand.Flags().StringVarP(&matchOwner, "owner", "o", "", "Owner UUID to match for (required)")
	_ = matchCommand.MarkFlagRequired("owner")

	rootCmd.AddCommand(matchCommand)
}

func runMatchCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	ownerID, err := uuid.Parse(matchOwner)
	if err != nil {
		return fmt.Errorf("invalid owner UUID: %w", err)
	}

	// Delivery tasks only survive the process with a durable queue, so the
	// queue is wired here and the scheduler daemon picks the tasks up.
	a, err := newApp(ctx, true)
	if err != nil {
		return err
	}
	defer a.close()

	matches, err := a.pipeline.Match(ctx, ownerID)
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		fmt.Println("No matches above the qualification threshold.")
		return nil
	}

	for i, m := range matches {
		fmt.Printf("%2d. [%3d] %s at %s\n", i+1, m.MatchScore, m.Title, m.Organization)
		for _, reason := range m.MatchReasons {
			fmt.Printf("      %s\n", reason)
		}
	}
	return nil
}
