package env

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pylaunch/pkg/launch"
	"pylaunch/pkg/venv"
)

func init() {
	Registry.Register(func(c *cobra.Command) {
		c.AddCommand(&cobra.Command{
			Use:   "which",
			Short: "Print the environment run would use",
			RunE: func(c *cobra.Command, args []string) error {
				cfg, err := loadConfig(c)
				if err != nil {
					return err
				}
				baseDir, err := os.Getwd()
				if err != nil {
					return err
				}

				h, err := venv.Locate(baseDir, cfg.Candidates)
				if errors.Is(err, venv.ErrNotFound) {
					fmt.Fprintln(os.Stderr, "no virtual environment found")
					return &launch.ExitCodeError{Code: 1}
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(c.OutOrStdout(), h.Root)
				return nil
			},
		})
	})
}
