package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var schedulerCommand = &cobra.Command{
	Use:   "scheduler",
	Short: "Run the notification delivery scheduler",
	Long:  "Consumes scheduled match delivery tasks and runs the periodic sweep that consolidates overdue notifications. Runs until interrupted.",
	RunE:  runSchedulerCmd,
}

func init() {
	rootCmd.AddCommand(schedulerCommand)
}

func runSchedulerCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	a, err := newApp(ctx, true)
	if err != nil {
		return err
	}
	defer a.close()

	a.scheduler.Start(ctx)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	a.logger.Info("shutting down scheduler")
	return a.scheduler.Stop()
}
