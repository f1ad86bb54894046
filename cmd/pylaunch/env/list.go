package env

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"pylaunch/pkg/venv"
)

func init() {
	Registry.Register(func(c *cobra.Command) {
		c.AddCommand(&cobra.Command{
			Use:   "list",
			Short: "List every candidate with its resolution status",
			RunE: func(c *cobra.Command, args []string) error {
				cfg, err := loadConfig(c)
				if err != nil {
					return err
				}
				baseDir, err := os.Getwd()
				if err != nil {
					return err
				}

				located := venv.LocateAll(baseDir, cfg.Candidates)
				byName := map[string]venv.Handle{}
				for _, h := range located {
					byName[h.Name] = h
				}

				out := c.OutOrStdout()
				marker := func(h venv.Handle) string {
					// The first located environment is the one run would use.
					if len(located) > 0 && h.Root == located[0].Root {
						return "*"
					}
					return " "
				}

				for _, candidate := range cfg.Candidates {
					if h, ok := byName[candidate]; ok {
						fmt.Fprintf(out, "%s %-16s %s (%s)\n", marker(h), candidate, h.Root, h.Layout)
					} else if !venv.HasGlob(candidate) {
						fmt.Fprintf(out, "  %-16s not found\n", candidate)
					}
				}
				// Glob candidates resolve to names outside the plain list.
				for _, h := range located {
					if !slices.Contains(cfg.Candidates, h.Name) {
						fmt.Fprintf(out, "%s %-16s %s (%s)\n", marker(h), h.Name, h.Root, h.Layout)
					}
				}
				return nil
			},
		})
	})
}
