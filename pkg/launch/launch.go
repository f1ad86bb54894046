// Package launch is the single effectful boundary of the pipeline: it spawns
// the application as a child process with an explicitly constructed
// environment table and passes its exit code through unchanged.
package launch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"slices"
)

// Spec describes one child process invocation.
type Spec struct {
	// Interpreter is the executable to spawn (a venv python or an ambient one).
	Interpreter string
	// Args is the argument vector after the program name. Each element is
	// passed as-is; script paths with spaces or non-ASCII characters stay a
	// single argument.
	Args []string
	// Dir is the working directory for the child ("" keeps the caller's).
	Dir string
	// Env is the complete environment table for the child. nil inherits the
	// parent environment.
	Env []string

	// Stdout and Stderr default to the parent's when nil. Stdin is always
	// inherited.
	Stdout io.Writer
	Stderr io.Writer
}

// Streamlit builds the spec for `<interpreter> -m streamlit run <script>`.
func Streamlit(interpreter, script string, extra ...string) Spec {
	args := []string{"-m", "streamlit", "run", script}
	return Spec{Interpreter: interpreter, Args: append(args, extra...)}
}

// Run spawns the child described by spec, streams its output through and
// blocks until it exits. The child's exit code is returned unchanged; err is
// non-nil only when the process could not be started at all.
func Run(ctx context.Context, spec Spec) (int, error) {
	cmd := exec.CommandContext(ctx, spec.Interpreter, spec.Args...)
	cmd.Dir = spec.Dir
	if spec.Env != nil {
		cmd.Env = slices.Clone(spec.Env)
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = spec.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = spec.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Child was killed by a signal; there is no real exit code and
			// os.Exit(-1) would wrap to 255.
			code = 1
		}
		return code, nil
	}
	if err != nil {
		return -1, fmt.Errorf("failed to run %s: %w", spec.Interpreter, err)
	}
	return 0, nil
}
