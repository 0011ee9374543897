package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ethanmills/resumatch/internal/types"
)

var prefsCommand = &cobra.Command{
	Use:   "prefs",
	Short: "Save an owner's job-search preferences",
	Long:  "Stores or replaces the skills, titles, location and experience level used to weight future matching runs. Omitted flags mean no preference.",
	RunE:  runPrefsCmd,
}

var (
	prefsOwner    string
	prefsSkills   []string
	prefsTitles   []string
	prefsLocation string
	prefsLevel    string
)

func init() {
	prefsCommand.Flags().StringVarP(&prefsOwner, "owner", "o", "", "Owner UUID the preferences belong to (required)")
	prefsCommand.Flags().StringSliceVar(&prefsSkills, "skills", nil, "Preferred skills, comma separated")
	prefsCommand.Flags().StringSliceVar(&prefsTitles, "titles", nil, "Preferred job titles, comma separated")
	prefsCommand.Flags().StringVar(&prefsLocation, "location", "", "Preferred location")
	prefsCommand.Flags().StringVar(&prefsLevel, "level", "", "Preferred experience level, e.g. senior")
	_ = prefsCommand.MarkFlagRequired("owner")

	rootCmd.AddCommand(prefsCommand)
}

func runPrefsCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	ownerID, err := uuid.Parse(prefsOwner)
	if err != nil {
		return fmt.Errorf("invalid owner UUID: %w", err)
	}

	a, err := newApp(ctx, false)
	if err != nil {
		return err
	}
	defer a.close()

	prefs := &types.Preferences{
		OwnerID:         ownerID,
		Skills:          prefsSkills,
		JobTitles:       prefsTitles,
		Location:        prefsLocation,
		ExperienceLevel: prefsLevel,
	}
	if err := a.store.SavePreferences(ctx, prefs); err != nil {
		return err
	}

	fmt.Println("Preferences saved.")
	return nil
}
