// Package testutil provides testing utilities for vsm tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SetupSessionDir creates a temporary session directory containing the named
// files. File names are used verbatim, so callers control extensions and
// hidden-file prefixes. The directory is cleaned up when the test completes.
func SetupSessionDir(t *testing.T, names ...string) string {
	t.Helper()

	dir := t.TempDir()
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("\" vim session\n"), 0o644); err != nil {
			t.Fatalf("failed to create session file %s: %v", name, err)
		}
	}
	return dir
}

// SetupConfigHome points XDG_CONFIG_HOME at a fresh temporary directory and
// returns it, isolating config reads and writes from the real user config.
func SetupConfigHome(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}
