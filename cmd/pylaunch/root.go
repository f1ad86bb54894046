package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"pylaunch/cmd/pylaunch/doctor"
	"pylaunch/cmd/pylaunch/env"
	"pylaunch/cmd/pylaunch/history"
	"pylaunch/cmd/pylaunch/run"
	"pylaunch/pkg/launch"
	"pylaunch/pkg/version"
)

func main() {
	var verbose bool

	cmd := &cobra.Command{
		Use:     "pylaunch",
		Short:   "pylaunch - virtual-environment-aware launcher for the trajectory extraction app",
		Version: version.Version(),
		PersistentPreRun: func(c *cobra.Command, args []string) {
			if verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("config", "", "Config file path (or set PYLAUNCH_CONFIG)")

	cmd.AddCommand(run.GetCommand())
	cmd.AddCommand(env.GetCommand())
	cmd.AddCommand(doctor.GetCommand())
	cmd.AddCommand(history.GetCommand())

	// An interrupt cancels the context, which terminates the child as well.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		var exitErr *launch.ExitCodeError
		if errors.As(err, &exitErr) {
			// The child already wrote whatever it had to say.
			stop()
			os.Exit(exitErr.Code)
		}
		slog.Error("error", "err", err)
		stop()
		os.Exit(1)
	}
}
