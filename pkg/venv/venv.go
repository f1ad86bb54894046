// Package venv locates Python virtual environments and constructs the
// environment table a child process needs to run inside one. Discovery is
// pure (filesystem existence checks only); the process environment is never
// mutated here.
package venv

import (
	"errors"
	"path/filepath"
)

// ErrNotFound indicates no candidate directory contained an activation artifact.
var ErrNotFound = errors.New("no virtual environment found")

// ErrActivationFailure indicates an environment has an activation artifact
// but is not usable (e.g. missing interpreter).
var ErrActivationFailure = errors.New("virtual environment is not usable")

// Layout describes where a virtual environment flavor keeps its interpreter
// and activation artifact.
type Layout struct {
	Name        string
	BinDir      string
	Artifact    string
	Interpreter string
}

// Both layouts are probed on every platform so an environment created on
// Windows still resolves when inspected from WSL or a network share.
var layouts = []Layout{
	{Name: "posix", BinDir: "bin", Artifact: "activate", Interpreter: "python"},
	{Name: "windows", BinDir: "Scripts", Artifact: "activate.bat", Interpreter: "python.exe"},
}

// Handle identifies a located virtual environment.
type Handle struct {
	// Root is the absolute path of the environment directory.
	Root string
	// Name is the candidate name (or glob match) that resolved to Root.
	Name string
	// Layout is the layout that matched ("posix" or "windows").
	Layout string
}

func (h Handle) layout() Layout {
	for _, l := range layouts {
		if l.Name == h.Layout {
			return l
		}
	}
	return layouts[0]
}

// BinDir returns the directory holding the environment's executables.
func (h Handle) BinDir() string {
	return filepath.Join(h.Root, h.layout().BinDir)
}

// Artifact returns the path of the activation script.
func (h Handle) Artifact() string {
	return filepath.Join(h.BinDir(), h.layout().Artifact)
}

// Interpreter returns the path of the environment's python executable.
func (h Handle) Interpreter() string {
	return filepath.Join(h.BinDir(), h.layout().Interpreter)
}

// DefaultCandidates is the search order used when the config does not
// override it. First existing match wins.
var DefaultCandidates = []string{"venv", "env", ".venv", "virtualenv"}
