package history

import (
	"github.com/spf13/cobra"

	"pylaunch/pkg/registry"
)

var Registry registry.CommandRegistry

// GetCommand returns the history command group.
func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Launch history",
	}
	Registry.FillCommands(cmd)
	return cmd
}
