// Package session discovers vim session files in the configured session
// directory. Session files are opaque: only the file name and modification
// time matter here, never the contents.
package session

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/vimtools/vsm/internal/errors"
)

// Extension is the file suffix that marks a session file. Anything else in
// the session directory is ignored as noise.
const Extension = ".vim"

// Entry describes one session file found in the session directory.
// Entries are rebuilt on every scan and never cached across runs.
type Entry struct {
	// Name is the session identifier: the file name without extension.
	Name string
	// Path is the absolute path to the session file.
	Path string
	// ModTime is the file's last modification time.
	ModTime time.Time
}

// List scans dir non-recursively and returns the session entries sorted by
// name, ascending and case-sensitive. Hidden files, subdirectories, and
// files without the .vim extension are skipped. A missing directory fails
// with ErrSessionDirNotFound; the directory is never created here, since
// writing session files is the editor's job.
func List(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrSessionDirNotFound, "%s", dir)
		}
		return nil, errors.NewSessionError("failed to read session directory", err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, Extension) {
			continue
		}

		info, err := de.Info()
		if err != nil {
			// The file vanished between ReadDir and Info; skip it.
			continue
		}

		entries = append(entries, Entry{
			Name:    strings.TrimSuffix(name, Extension),
			Path:    filepath.Join(dir, name),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

// Find looks up a session by exact name without scanning the whole
// directory. A missing session fails with ErrSessionNotFound.
func Find(dir, name string) (Entry, error) {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return Entry{}, errors.Wrapf(errors.ErrSessionDirNotFound, "%s", dir)
		}
		return Entry{}, errors.NewSessionError("failed to access session directory", err)
	}

	path := filepath.Join(dir, name+Extension)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Entry{}, errors.NewSessionError("no such session", errors.ErrSessionNotFound).WithSession(name)
		}
		return Entry{}, errors.NewSessionError("failed to access session file", err).WithSession(name)
	}
	if info.IsDir() {
		return Entry{}, errors.NewSessionError("no such session", errors.ErrSessionNotFound).WithSession(name)
	}

	return Entry{
		Name:    name,
		Path:    path,
		ModTime: info.ModTime(),
	}, nil
}

// Delete removes the session file backing entry. A file already removed by
// another process surfaces as a not-found error; there are no retries.
func Delete(entry Entry) error {
	if err := os.Remove(entry.Path); err != nil {
		if os.IsNotExist(err) {
			return errors.NewSessionError("session already removed", errors.ErrSessionNotFound).WithSession(entry.Name)
		}
		return errors.NewSessionError("failed to delete session", err).WithSession(entry.Name)
	}
	return nil
}
