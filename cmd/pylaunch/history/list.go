package history

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pylaunch/pkg/db"
)

func init() {
	Registry.Register(func(c *cobra.Command) {
		cmd := &cobra.Command{
			Use:   "list",
			Short: "List recorded launches",
			RunE: func(c *cobra.Command, args []string) error {
				limit, _ := c.Flags().GetInt("limit")
				asJSON, _ := c.Flags().GetBool("json")

				database, err := db.Open()
				if err != nil {
					return err
				}
				defer database.Close()

				events, err := database.ListLaunches(c.Context(), limit)
				if err != nil {
					return err
				}

				if asJSON {
					return json.NewEncoder(c.OutOrStdout()).Encode(events)
				}

				for _, e := range events {
					t := time.Unix(e.Timestamp, 0).Format("2006-01-02 15:04:05")
					envRoot := e.EnvRoot
					if envRoot == "" {
						envRoot = "(ambient)"
					}
					fmt.Fprintf(c.OutOrStdout(), "%s\texit=%d\t%s\t%s\n", t, e.ExitCode, envRoot, e.Script)
				}
				return nil
			},
		}
		cmd.Flags().Int("limit", 100, "Limit number of entries")
		cmd.Flags().Bool("json", false, "Output as JSON")
		c.AddCommand(cmd)
	})
}
