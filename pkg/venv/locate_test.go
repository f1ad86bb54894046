package venv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func mkEnv(t *testing.T, baseDir, name, layout string) string {
	t.Helper()
	var binDir, artifact, interp string
	switch layout {
	case "posix":
		binDir, artifact, interp = "bin", "activate", "python"
	case "windows":
		binDir, artifact, interp = "Scripts", "activate.bat", "python.exe"
	default:
		t.Fatalf("unknown layout %q", layout)
	}
	root := filepath.Join(baseDir, name)
	if err := os.MkdirAll(filepath.Join(root, binDir), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, binDir, artifact), []byte("# activate\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, binDir, interp), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestLocateFirstMatchWins(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	mkEnv(t, base, "env", "posix")
	mkEnv(t, base, ".venv", "posix")

	h, err := Locate(base, []string{"venv", "env", ".venv"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Name != "env" {
		t.Fatalf("name mismatch: got=%q want=%q", h.Name, "env")
	}
	if h.Root != filepath.Join(base, "env") {
		t.Fatalf("root mismatch: got=%q", h.Root)
	}
}

func TestLocateSkipsMissingCandidates(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	mkEnv(t, base, "env", "posix")

	// "venv" absent must not surface any error, just fall through.
	h, err := Locate(base, []string{"venv", "env"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Name != "env" {
		t.Fatalf("name mismatch: got=%q", h.Name)
	}
}

func TestLocateNotFound(t *testing.T) {
	t.Parallel()

	base := t.TempDir()

	for _, candidates := range [][]string{nil, {}, {"venv", "env", ".venv"}} {
		_, err := Locate(base, candidates)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("candidates=%v: got err=%v, want ErrNotFound", candidates, err)
		}
	}
}

func TestLocateDirWithoutArtifactIgnored(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	// Directory exists but holds no activation artifact.
	if err := os.MkdirAll(filepath.Join(base, "venv"), 0o755); err != nil {
		t.Fatal(err)
	}
	mkEnv(t, base, "env", "posix")

	h, err := Locate(base, []string{"venv", "env"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Name != "env" {
		t.Fatalf("name mismatch: got=%q", h.Name)
	}
}

func TestLocateWindowsLayout(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	mkEnv(t, base, "venv", "windows")

	h, err := Locate(base, []string{"venv"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Layout != "windows" {
		t.Fatalf("layout mismatch: got=%q", h.Layout)
	}
	want := filepath.Join(base, "venv", "Scripts", "python.exe")
	if h.Interpreter() != want {
		t.Fatalf("interpreter mismatch: got=%q want=%q", h.Interpreter(), want)
	}
}

func TestLocateGlobCandidates(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	mkEnv(t, base, filepath.Join("envs", "py311"), "posix")
	mkEnv(t, base, filepath.Join("envs", "py312"), "posix")

	h, err := Locate(base, []string{"venv", "envs/*"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Glob matches resolve in lexical order.
	if h.Name != "envs/py311" {
		t.Fatalf("name mismatch: got=%q", h.Name)
	}
}

func TestLocateAll(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	mkEnv(t, base, "venv", "posix")
	mkEnv(t, base, "env", "windows")

	all := LocateAll(base, []string{"venv", "env", ".venv"})
	if len(all) != 2 {
		t.Fatalf("expected 2 environments, got %d", len(all))
	}
	if all[0].Name != "venv" || all[1].Name != "env" {
		t.Fatalf("order mismatch: %q, %q", all[0].Name, all[1].Name)
	}
}

func TestHasGlob(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"venv", false},
		{".venv", false},
		{"envs/py311", false},
		{"envs/*", true},
		{"env?", true},
		{"py[23]", true},
		{"{venv,env}", true},
	}
	for _, tt := range tests {
		if got := HasGlob(tt.input); got != tt.want {
			t.Errorf("HasGlob(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestVerify(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	mkEnv(t, base, "venv", "posix")

	h, err := Locate(base, []string{"venv"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Verify(h); err != nil {
		t.Fatalf("verify failed on healthy env: %v", err)
	}

	// Corrupt the environment: artifact stays, interpreter goes.
	if err := os.Remove(h.Interpreter()); err != nil {
		t.Fatal(err)
	}
	if err := Verify(h); !errors.Is(err, ErrActivationFailure) {
		t.Fatalf("got err=%v, want ErrActivationFailure", err)
	}
}
