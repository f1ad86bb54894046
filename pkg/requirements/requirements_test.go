package requirements

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEchoAbsentFileIsNoOp(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	if err := Echo(t.TempDir(), &buf); err != nil {
		t.Fatalf("absent file must not error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestEchoVerbatim(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	// Content is echoed as-is, never parsed.
	content := "streamlit==1.32.0\npandas>=2.0  # pinned loosely\n\n-r extra.txt\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	if err := Echo(dir, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != content {
		t.Fatalf("content mismatch:\ngot:  %q\nwant: %q", buf.String(), content)
	}
}
