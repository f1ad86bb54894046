package run

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"pylaunch/pkg/config"
	"pylaunch/pkg/db"
	"pylaunch/pkg/launch"
	"pylaunch/pkg/pyenv"
	"pylaunch/pkg/venv"
)

// GetCommand returns the run command: locate, activate, launch.
func GetCommand() *cobra.Command {
	var strict, lenient, wait, noHistory bool

	cmd := &cobra.Command{
		Use:   "run [script] [-- streamlit-args...]",
		Short: "Locate a virtual environment and launch the application",
		Long: `Locate a virtual environment and launch the application with it.

Candidate directories are probed in order; the first one containing an
activation artifact wins. When none exists, lenient mode (the default)
falls back to the python found on PATH, while strict mode asks for
confirmation first and exits 1 when declined.

The application's exit code becomes pylaunch's exit code, unchanged.

Examples:
  pylaunch run
  pylaunch run --strict
  pylaunch run "my app.py" -- --server.port 8600
  pylaunch run --wait`,
		Args: cobra.ArbitraryArgs,
		RunE: func(c *cobra.Command, args []string) error {
			configPath, _ := c.Flags().GetString("config")
			cfg, err := config.Load(config.FindPath(configPath))
			if err != nil {
				return err
			}
			if strict {
				cfg.Strict = true
			}
			if lenient {
				cfg.Strict = false
			}

			script := cfg.Script
			extra := cfg.Args
			if len(args) > 0 {
				script = args[0]
				extra = append(extra, args[1:]...)
			}

			return launchApp(c.Context(), cfg, script, extra, wait, noHistory)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Halt and confirm when no virtual environment is found")
	cmd.Flags().BoolVar(&lenient, "lenient", false, "Fall back to the ambient interpreter without asking")
	cmd.Flags().BoolVar(&wait, "wait", false, "Report when the app starts accepting connections")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record this launch in history")
	cmd.MarkFlagsMutuallyExclusive("strict", "lenient")

	return cmd
}

func launchApp(ctx context.Context, cfg config.Config, script string, extra []string, wait, noHistory bool) error {
	baseDir, err := os.Getwd()
	if err != nil {
		return err
	}

	var interpreter, envRoot string
	childEnv := os.Environ()

	handle, err := venv.Locate(baseDir, cfg.Candidates)
	switch {
	case err == nil:
		// Artifact present but environment broken is terminal, not a fallback.
		if err := venv.Verify(handle); err != nil {
			return err
		}
		interpreter = handle.Interpreter()
		envRoot = handle.Root
		childEnv = venv.Activation(handle, childEnv)
		slog.Info("virtual environment found", "root", handle.Root, "layout", handle.Layout)
	case errors.Is(err, venv.ErrNotFound):
		if cfg.Strict && !confirmAmbient(cfg.Candidates) {
			fmt.Fprintln(os.Stderr, "No virtual environment found. Create one and rerun.")
			return &launch.ExitCodeError{Code: 1}
		}
		interpreter, err = pyenv.Ambient()
		if err != nil {
			return err
		}
		slog.Warn("no virtual environment found, using ambient interpreter", "interpreter", interpreter)
	default:
		return err
	}

	childEnv, err = pyenv.MergeDotenv(childEnv, cfg.EnvFile)
	if err != nil {
		return err
	}

	if v := pyenv.InterpreterVersion(ctx, interpreter); v != "" {
		slog.Debug("interpreter", "version", v)
	}
	if v := pyenv.PipVersion(ctx, interpreter); v != "" {
		slog.Debug("pip", "version", v)
	}

	spec := launch.Streamlit(interpreter, script, extra...)
	spec.Dir = baseDir
	spec.Env = childEnv

	if wait {
		go func() {
			waitCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
			defer cancel()
			if launch.WaitReady(waitCtx, "localhost", cfg.Port) == nil {
				slog.Info("app is ready", "url", fmt.Sprintf("http://localhost:%d", cfg.Port))
			}
		}()
	}

	start := time.Now()
	code, err := launch.Run(ctx, spec)
	if err != nil {
		return err
	}

	if !noHistory {
		record(ctx, db.LaunchEvent{
			Script:      script,
			EnvRoot:     envRoot,
			Interpreter: interpreter,
			ExitCode:    code,
			Timestamp:   start.Unix(),
			Duration:    time.Since(start).Milliseconds(),
		})
	}

	if code != 0 {
		return &launch.ExitCodeError{Code: code}
	}
	return nil
}

func confirmAmbient(candidates []string) bool {
	var proceed bool
	err := huh.NewConfirm().
		Title("No virtual environment found").
		Description(fmt.Sprintf("Searched: %v\nContinue with the system Python interpreter?", candidates)).
		Affirmative("Continue").
		Negative("Abort").
		Value(&proceed).
		Run()
	if err != nil {
		return false
	}
	return proceed
}

// record stores the launch in history. Best effort: a broken database must
// never turn a successful launch into a failure.
func record(ctx context.Context, e db.LaunchEvent) {
	database, err := db.Open()
	if err != nil {
		slog.Debug("history unavailable", "error", err)
		return
	}
	defer database.Close()
	if err := database.RecordLaunch(ctx, e); err != nil {
		slog.Debug("failed to record launch", "error", err)
	}
}
