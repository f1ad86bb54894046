package registry

import (
	"sync"

	"github.com/spf13/cobra"
)

// CommandRegistry collects subcommand constructors so command packages can
// self-register from init() without import cycles against their parent.
type CommandRegistry struct {
	mu    sync.Mutex
	fills []func(*cobra.Command)
}

// Register adds a fill function that attaches one or more subcommands.
func (r *CommandRegistry) Register(fill func(*cobra.Command)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fills = append(r.fills, fill)
}

// FillCommands applies every registered fill function to cmd.
func (r *CommandRegistry) FillCommands(cmd *cobra.Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, fill := range r.fills {
		fill(cmd)
	}
}
