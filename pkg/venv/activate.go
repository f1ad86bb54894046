package venv

import (
	"os"
	"strings"
)

// Activation constructs the environment table for a child process running
// inside h, starting from base (usually os.Environ()). It prepends the
// environment's bin directory to PATH, sets VIRTUAL_ENV and drops
// PYTHONHOME, mirroring what the environment's own activate script does.
//
// The parent process environment is never touched; callers hand the result
// to the child explicitly. Applying the same handle twice is a no-op beyond
// the first application.
func Activation(h Handle, base []string) []string {
	binDir := h.BinDir()
	out := make([]string, 0, len(base)+2)

	var sawPath, sawVenv bool
	for _, kv := range base {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			out = append(out, kv)
			continue
		}
		switch {
		case strings.EqualFold(key, "PATH"):
			sawPath = true
			out = append(out, key+"="+prependPath(binDir, value))
		case strings.EqualFold(key, "VIRTUAL_ENV"):
			sawVenv = true
			out = append(out, key+"="+h.Root)
		case strings.EqualFold(key, "PYTHONHOME"):
			// PYTHONHOME overrides the venv's site layout; activate unsets it.
		default:
			out = append(out, kv)
		}
	}

	if !sawPath {
		out = append(out, "PATH="+binDir)
	}
	if !sawVenv {
		out = append(out, "VIRTUAL_ENV="+h.Root)
	}
	return out
}

func prependPath(binDir, path string) string {
	sep := string(os.PathListSeparator)
	// Only the leading entry matters for resolution order; a stale entry
	// further down still needs the prepend.
	if path == binDir || strings.HasPrefix(path, binDir+sep) {
		return path
	}
	if path == "" {
		return binDir
	}
	return binDir + sep + path
}
