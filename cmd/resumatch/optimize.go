package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var optimizeCommand = &cobra.Command{
	Use:   "optimize",
	Short: "Produce an improved revision of a stored profile",
	Long:  "Generates an optimized revision of the given profile, stores it as a new profile with its own score and prints the result. Uses the configured LLM when available, otherwise a deterministic rule-based fallback.",
	RunE:  runOptimizeCmd,
}

var optimizeProfile string

func init() {
	optimizeCommand.Flags().StringVarP(&optimizeProfile, "profile", "p", "", "Profile UUID to optimize (required)")
	_ = optimizeCommand.MarkFlagRequired("profile")

	rootCmd.AddCommand(optimizeCommand)
}

func runOptimizeCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	profileID, err := uuid.Parse(optimizeProfile)
	if err != nil {
		return fmt.Errorf("invalid profile UUID: %w", err)
	}

	a, err := newApp(ctx, false)
	if err != nil {
		return err
	}
	defer a.close()

	revised, outcome, err := a.pipeline.Optimize(ctx, profileID)
	if err != nil {
		return err
	}

	fmt.Printf("Revised profile: %s\n", revised.ID)
	fmt.Printf("Source:          %s\n", outcome.Source)
	if outcome.Reason != "" {
		fmt.Printf("Reason:          %s\n", outcome.Reason)
	}

	encoded, err := json.MarshalIndent(revised, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}
