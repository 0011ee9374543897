package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var migrateCommand = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE:  runMigrateCmd,
}

func init() {
	rootCmd.AddCommand(migrateCommand)
}

func runMigrateCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	a, err := newApp(ctx, false)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.store.Migrate(ctx); err != nil {
		return err
	}
	fmt.Println("Schema is up to date.")
	return nil
}
