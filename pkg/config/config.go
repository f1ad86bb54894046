// Package config loads the launcher configuration from pylaunch.toml.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"pylaunch/pkg/venv"
)

// DefaultScript is the filename of the deployed Streamlit application. It
// contains spaces on purpose; the launcher always passes it as one argument.
const DefaultScript = "251215 ExtractionOfExpertsBehaviorHistroy.py"

// Config holds all launcher settings. Zero values fall back to Default().
type Config struct {
	// Candidates is the environment search order; entries may be doublestar
	// globs. First existing match wins.
	Candidates []string `toml:"candidates"`
	// Strict makes a missing environment halt-and-confirm instead of
	// falling back to the ambient interpreter.
	Strict bool `toml:"strict"`
	// Script is the application file handed to streamlit run.
	Script string `toml:"script"`
	// Args are extra arguments appended after the script path.
	Args []string `toml:"args"`
	// Port is the port streamlit serves on, used by the readiness probe.
	Port int `toml:"port"`
	// EnvFile is an optional dotenv file merged into the child environment.
	EnvFile string `toml:"env_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Candidates: venv.DefaultCandidates,
		Script:     DefaultScript,
		Port:       8501,
		EnvFile:    ".env",
	}
}

// FindPath resolves the configuration file path.
//
// Precedence:
//  1. explicit argument (--config)
//  2. PYLAUNCH_CONFIG env var
//  3. pylaunch.toml in the current working directory
func FindPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if v := os.Getenv("PYLAUNCH_CONFIG"); v != "" {
		return v
	}
	return "pylaunch.toml"
}

// Load reads the config at path, filling unset fields from Default(). A
// missing file is not an error: the defaults are returned as-is.
func Load(path string) (Config, error) {
	out := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return out, nil
	}

	var file Config
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if len(file.Candidates) > 0 {
		out.Candidates = file.Candidates
	}
	out.Strict = file.Strict
	if file.Script != "" {
		out.Script = file.Script
	}
	if len(file.Args) > 0 {
		out.Args = file.Args
	}
	if file.Port != 0 {
		out.Port = file.Port
	}
	if file.EnvFile != "" {
		out.EnvFile = file.EnvFile
	}
	return out, nil
}
