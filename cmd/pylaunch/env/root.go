package env

import (
	"github.com/spf13/cobra"

	"pylaunch/pkg/config"
	"pylaunch/pkg/registry"
)

var Registry registry.CommandRegistry

// GetCommand returns the env command group.
func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Inspect virtual environment candidates",
	}
	Registry.FillCommands(cmd)
	return cmd
}

func loadConfig(c *cobra.Command) (config.Config, error) {
	configPath, _ := c.Flags().GetString("config")
	return config.Load(config.FindPath(configPath))
}
