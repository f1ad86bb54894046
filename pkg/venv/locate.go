package venv

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Locate probes candidates under baseDir in order and returns a handle for
// the first one containing an activation artifact. Candidates may be plain
// directory names or doublestar globs (e.g. "envs/*"); glob matches are
// probed in lexical order. Returns ErrNotFound when nothing matches.
//
// Locate has no side effects: it only stats paths.
func Locate(baseDir string, candidates []string) (Handle, error) {
	for _, candidate := range candidates {
		for _, dir := range expandCandidate(baseDir, candidate) {
			h, ok := probe(baseDir, candidate, dir)
			if ok {
				return h, nil
			}
		}
	}
	return Handle{}, ErrNotFound
}

// LocateAll returns every candidate that resolves to a usable-looking
// environment, in search order. Used by interactive selection.
func LocateAll(baseDir string, candidates []string) []Handle {
	var out []Handle
	seen := map[string]bool{}
	for _, candidate := range candidates {
		for _, dir := range expandCandidate(baseDir, candidate) {
			h, ok := probe(baseDir, candidate, dir)
			if ok && !seen[h.Root] {
				seen[h.Root] = true
				out = append(out, h)
			}
		}
	}
	return out
}

func expandCandidate(baseDir, candidate string) []string {
	if !HasGlob(candidate) {
		return []string{filepath.Join(baseDir, candidate)}
	}
	matches, err := doublestar.Glob(os.DirFS(baseDir), filepath.ToSlash(candidate))
	if err != nil {
		return nil
	}
	sort.Strings(matches)
	dirs := make([]string, 0, len(matches))
	for _, m := range matches {
		dirs = append(dirs, filepath.Join(baseDir, filepath.FromSlash(m)))
	}
	return dirs
}

// HasGlob reports whether a candidate is a glob pattern rather than a plain
// directory name.
func HasGlob(s string) bool {
	for _, r := range s {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

func probe(baseDir, candidate, dir string) (Handle, bool) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return Handle{}, false
	}
	for _, l := range layouts {
		artifact := filepath.Join(dir, l.BinDir, l.Artifact)
		if st, err := os.Stat(artifact); err == nil && !st.IsDir() {
			name := candidate
			if rel, err := filepath.Rel(baseDir, dir); err == nil {
				name = filepath.ToSlash(rel)
			}
			return Handle{Root: dir, Name: name, Layout: l.Name}, true
		}
	}
	return Handle{}, false
}

// Verify checks that a located environment is actually runnable. The
// activation artifact existing while the interpreter is gone means a corrupt
// environment; that is surfaced, never silently ignored.
func Verify(h Handle) error {
	st, err := os.Stat(h.Interpreter())
	if err != nil {
		return fmt.Errorf("%w: interpreter missing at %s", ErrActivationFailure, h.Interpreter())
	}
	if st.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrActivationFailure, h.Interpreter())
	}
	if h.Layout == "posix" && st.Mode()&0o111 == 0 {
		return fmt.Errorf("%w: interpreter %s is not executable", ErrActivationFailure, h.Interpreter())
	}
	return nil
}
