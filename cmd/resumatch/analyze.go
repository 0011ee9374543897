package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Extract and score a structured profile from raw resume text",
	Long:  "Reads a plain-text resume, extracts a structured profile, stores it with its quality score and prints the score breakdown with improvement suggestions.",
	RunE:  runAnalyzeCmd,
}

var (
	analyzeOwner string
	analyzeFile  string
)

func init() {
	analyzeCommand.Flags().StringVarP(&analyzeOwner, "owner", "o", "", "Owner UUID the profile belongs to (required)")
	analyzeCommand.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to the resume text file (required)")
	_ = analyzeCommand.MarkFlagRequired("owner")
	_ = analyzeCommand.MarkFlagRequired("file")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	ownerID, err := uuid.Parse(analyzeOwner)
	if err != nil {
		return fmt.Errorf("invalid owner UUID: %w", err)
	}

	rawText, err := os.ReadFile(analyzeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	a, err := newApp(ctx, false)
	if err != nil {
		return err
	}
	defer a.close()

	profile, score, err := a.pipeline.ProcessResume(ctx, ownerID, string(rawText))
	if err != nil {
		return err
	}

	fmt.Printf("Profile:    %s\n", profile.ID)
	fmt.Printf("Name:       %s\n", profile.Name)
	fmt.Printf("Email:      %s\n", profile.Email)
	fmt.Printf("Skills:     %d\n", len(profile.Skills))
	fmt.Printf("Experience: %d entries\n", len(profile.Experience))
	fmt.Printf("Overall score:    %d\n", score.OverallScore)
	fmt.Printf("Structural score: %d\n", score.StructuralScore)
	fmt.Printf("Content score:    %d\n", score.ContentScore)
	if len(score.Suggestions) > 0 {
		fmt.Println("Suggestions:")
		for _, s := range score.Suggestions {
			fmt.Printf("  - %s\n", s)
		}
	}
	return nil
}
