package env

import (
	"fmt"
	"os"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"pylaunch/pkg/venv"
)

func init() {
	Registry.Register(func(c *cobra.Command) {
		c.AddCommand(&cobra.Command{
			Use:   "pick",
			Short: "Fuzzy-pick among located environments and print the chosen root",
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
				if len(located) == 0 {
					return fmt.Errorf("no virtual environments found under %s", baseDir)
				}

				idx, err := fuzzyfinder.Find(
					located,
					func(i int) string {
						return located[i].Name
					},
					fuzzyfinder.WithPreviewWindow(func(i int, width int, height int) string {
						if i == -1 {
							return ""
						}
						h := located[i]
						return fmt.Sprintf("Root:        %s\nLayout:      %s\nInterpreter: %s\nArtifact:    %s",
							h.Root, h.Layout, h.Interpreter(), h.Artifact())
					}),
				)
				if err != nil {
					if err == fuzzyfinder.ErrAbort {
						return nil
					}
					return fmt.Errorf("fuzzy finder failed: %w", err)
				}

				fmt.Fprintln(c.OutOrStdout(), located[idx].Root)
				return nil
			},
		})
	})
}
