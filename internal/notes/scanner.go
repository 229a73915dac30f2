package notes

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// List returns the notes directly inside dir, sorted by filename.
// Directories and drafts are skipped.
func List(fs afero.Fs, dir string) ([]Note, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, ioError("read dir", dir, err)
	}

	var notes []Note
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || IsDraft(name) {
			continue
		}
		notes = append(notes, Note{
			Title: titleFromFilename(name),
			Path:  filepath.Join(dir, name),
		})
	}
	return notes, nil
}

// ListDrafts returns the drafts left behind in dir by interrupted compose runs.
func ListDrafts(fs afero.Fs, dir string) ([]Draft, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, ioError("read dir", dir, err)
	}

	var drafts []Draft
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if id, ok := parseDraftName(entry.Name()); ok {
			drafts = append(drafts, Draft{
				Path: filepath.Join(dir, entry.Name()),
				ID:   id,
			})
		}
	}
	return drafts, nil
}

func titleFromFilename(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
