package doctor

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pylaunch/pkg/config"
	"pylaunch/pkg/launch"
	"pylaunch/pkg/pyenv"
	"pylaunch/pkg/requirements"
	"pylaunch/pkg/venv"
)

// GetCommand returns the doctor command: environment and toolchain
// diagnostics, mirroring what the launcher prints on a successful run.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Print environment and interpreter diagnostics",
		RunE: func(c *cobra.Command, args []string) error {
			configPath, _ := c.Flags().GetString("config")
			cfg, err := config.Load(config.FindPath(configPath))
			if err != nil {
				return err
			}
			baseDir, err := os.Getwd()
			if err != nil {
				return err
			}
			out := c.OutOrStdout()

			var interpreter string
			handle, err := venv.Locate(baseDir, cfg.Candidates)
			switch {
			case err == nil:
				fmt.Fprintf(out, "environment:  %s (%s layout)\n", handle.Root, handle.Layout)
				if verr := venv.Verify(handle); verr != nil {
					// Scripts gate on the exit code, so a corrupt env must
					// not look healthy.
					fmt.Fprintf(out, "status:       BROKEN: %v\n", verr)
					return &launch.ExitCodeError{Code: 1}
				}
				interpreter = handle.Interpreter()
			case errors.Is(err, venv.ErrNotFound):
				fmt.Fprintf(out, "environment:  none (searched %v)\n", cfg.Candidates)
				interpreter, err = pyenv.Ambient()
				if err != nil {
					fmt.Fprintln(out, "interpreter:  none on PATH")
					return nil
				}
			default:
				return err
			}

			fmt.Fprintf(out, "interpreter:  %s\n", interpreter)
			if v := pyenv.InterpreterVersion(c.Context(), interpreter); v != "" {
				fmt.Fprintf(out, "version:      %s\n", v)
			}
			if v := pyenv.PipVersion(c.Context(), interpreter); v != "" {
				fmt.Fprintf(out, "pip:          %s\n", v)
			}

			// Verbatim requirements echo; absent file prints nothing.
			fmt.Fprintf(out, "script:       %s\n", cfg.Script)
			fmt.Fprintln(out)
			return requirements.Echo(baseDir, out)
		},
	}
}
