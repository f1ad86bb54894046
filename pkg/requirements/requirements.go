// Package requirements echoes a project's requirements.txt for diagnostics.
package requirements

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileName is the conventional pip requirements file.
const FileName = "requirements.txt"

// Echo streams dir/requirements.txt verbatim to w. The content is never
// parsed. An absent file is a silent no-op.
func Echo(dir string, w io.Writer) error {
	path := filepath.Join(dir, FileName)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return nil
}
