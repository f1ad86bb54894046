// Package pyenv probes the Python toolchain around a launch: ambient
// interpreter lookup, version banners for diagnostics and .env merging.
package pyenv

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
)

// Ambient resolves a python interpreter from the current PATH, used when no
// virtual environment was found and lenient mode proceeds anyway.
func Ambient() (string, error) {
	names := []string{"python3", "python"}
	if runtime.GOOS == "windows" {
		names = []string{"python", "python3"}
	}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no python interpreter found on PATH")
}

// InterpreterVersion returns the interpreter's version banner, trimmed.
// Display only, never parsed; probe failures yield an empty string.
func InterpreterVersion(ctx context.Context, interpreter string) string {
	return probe(ctx, interpreter, "--version")
}

// PipVersion returns the pip version banner, trimmed. Display only.
func PipVersion(ctx context.Context, interpreter string) string {
	return probe(ctx, interpreter, "-m", "pip", "--version")
}

func probe(ctx context.Context, interpreter string, args ...string) string {
	out, err := exec.CommandContext(ctx, interpreter, args...).CombinedOutput()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// MergeDotenv overlays variables from a dotenv file onto env. A missing file
// is not an error; the table comes back unchanged.
func MergeDotenv(env []string, path string) ([]string, error) {
	if path == "" {
		return env, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return env, nil
	}
	extra, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	out := make([]string, 0, len(env)+len(extra))
	for _, kv := range env {
		key, _, ok := strings.Cut(kv, "=")
		if ok {
			if _, shadowed := extra[key]; shadowed {
				continue
			}
		}
		out = append(out, kv)
	}
	for key, value := range extra {
		out = append(out, key+"="+value)
	}
	return out, nil
}
