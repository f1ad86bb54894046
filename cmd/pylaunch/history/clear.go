package history

import (
	"fmt"

	"github.com/spf13/cobra"

	"pylaunch/pkg/db"
)

func init() {
	Registry.Register(func(c *cobra.Command) {
		c.AddCommand(&cobra.Command{
			Use:   "clear",
			Short: "Delete all recorded launches",
			RunE: func(c *cobra.Command, args []string) error {
				database, err := db.Open()
				if err != nil {
					return err
				}
				defer database.Close()

				if err := database.Clear(c.Context()); err != nil {
					return err
				}
				fmt.Fprintln(c.OutOrStdout(), "history cleared")
				return nil
			},
		})
	})
}
