package doctor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pylaunch/pkg/launch"
)

func TestDoctorBrokenEnvironmentExitsNonZero(t *testing.T) {
	base := t.TempDir()
	t.Chdir(base)
	t.Setenv("PYLAUNCH_CONFIG", filepath.Join(base, "no-such-config.toml"))

	// Activation artifact present, interpreter missing: a corrupt env.
	binDir := filepath.Join(base, "venv", "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(binDir, "activate"), []byte("# activate\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := GetCommand()
	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	var exitErr *launch.ExitCodeError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected ExitCodeError, got %v", err)
	}
	if exitErr.Code != 1 {
		t.Fatalf("exit code mismatch: got=%d want=1", exitErr.Code)
	}
	if !strings.Contains(out.String(), "BROKEN") {
		t.Fatalf("diagnosis missing from output: %q", out.String())
	}
}
