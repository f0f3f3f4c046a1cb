package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vimtools/vsm/internal/errors"
	"github.com/vimtools/vsm/internal/testutil"
)

func TestListSortsAndFilters(t *testing.T) {
	dir := testutil.SetupSessionDir(t, "b.vim", "a.vim", ".hidden", "notes.txt")
	if err := os.Mkdir(filepath.Join(dir, "subdir.vim"), 0o755); err != nil {
		t.Fatal(err)
	}

	entries, err := List(dir)
	if err != nil {
		t.Fatalf("List error = %v", err)
	}

	want := []string{"a", "b"}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(entries), len(want), entries)
	}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("entries[%d].Name = %q, want %q", i, entries[i].Name, name)
		}
		if entries[i].Path != filepath.Join(dir, name+Extension) {
			t.Errorf("entries[%d].Path = %q, want file in %s", i, entries[i].Path, dir)
		}
		if entries[i].ModTime.IsZero() {
			t.Errorf("entries[%d].ModTime is zero", i)
		}
	}
}

func TestListEmptyDir(t *testing.T) {
	dir := testutil.SetupSessionDir(t)

	entries, err := List(dir)
	if err != nil {
		t.Fatalf("List error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries from empty dir, want 0", len(entries))
	}
}

func TestListMissingDir(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "does-not-exist"))
	if !errors.Is(err, errors.ErrSessionDirNotFound) {
		t.Errorf("List error = %v, want ErrSessionDirNotFound", err)
	}
}

func TestFind(t *testing.T) {
	dir := testutil.SetupSessionDir(t, "a.vim", "b.vim")

	entry, err := Find(dir, "a")
	if err != nil {
		t.Fatalf("Find error = %v", err)
	}
	if entry.Name != "a" {
		t.Errorf("Name = %q, want %q", entry.Name, "a")
	}
	if entry.Path != filepath.Join(dir, "a.vim") {
		t.Errorf("Path = %q, want %q", entry.Path, filepath.Join(dir, "a.vim"))
	}

	_, err = Find(dir, "c")
	if !errors.Is(err, errors.ErrSessionNotFound) {
		t.Errorf("Find missing session error = %v, want ErrSessionNotFound", err)
	}

	_, err = Find(filepath.Join(dir, "nope"), "a")
	if !errors.Is(err, errors.ErrSessionDirNotFound) {
		t.Errorf("Find with missing dir error = %v, want ErrSessionDirNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	dir := testutil.SetupSessionDir(t, "stale.vim")

	entry, err := Find(dir, "stale")
	if err != nil {
		t.Fatalf("Find error = %v", err)
	}
	if err := Delete(entry); err != nil {
		t.Fatalf("Delete error = %v", err)
	}
	if _, err := os.Stat(entry.Path); !os.IsNotExist(err) {
		t.Error("session file still exists after Delete")
	}

	// Deleting again races with "another process": not-found, no retry.
	err = Delete(entry)
	if !errors.Is(err, errors.ErrSessionNotFound) {
		t.Errorf("second Delete error = %v, want ErrSessionNotFound", err)
	}
}
