package launch

import "fmt"

// ExitCodeError carries a child's exit code to the top of the CLI so the
// process can exit with it unchanged.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
