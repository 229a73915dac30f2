package notes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/text/unicode/norm"
)

// DefaultTitleLayout renders like "Mar 04, 2026 - 09:15pm".
const DefaultTitleLayout = "Jan 02, 2006 - 03:04pm"

// MaxCollisionSuffix is the largest " (n)" suffix tried before giving up.
const MaxCollisionSuffix = 10000

// Heading returns the initial content of a note composed with a title.
func Heading(title string) []byte {
	return []byte("# " + title + "\n")
}

// DefaultTitle formats now as a title.
func DefaultTitle(now time.Time, layout string) string {
	if layout == "" {
		layout = DefaultTitleLayout
	}
	return now.Format(layout)
}

// NormalizeTitle puts a title in NFC form. It is only used to compare
// filenames; notes are always named after the title as given.
func NormalizeTitle(title string) string {
	return norm.NFC.String(title)
}

// ValidateTitle rejects titles that cannot be a single filename with ext.
// The empty title is allowed.
func ValidateTitle(title, ext string) error {
	if strings.ContainsAny(title, "/\x00") || strings.ContainsRune(title, filepath.Separator) {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidTitle, title)
	}
	if ext == "" && (title == "." || title == "..") {
		return fmt.Errorf("%w: %q", ErrInvalidTitle, title)
	}
	return nil
}

// ResolvePath finds the note a new memo titled title should become.
// If <title>.<ext> exists it tries "<title> (1)", "<title> (2)", and so on.
// A file whose name differs from a candidate only in Unicode normalization
// also counts as taken. The returned note is always built from title itself.
func ResolvePath(fs afero.Fs, dir, title, ext string) (Note, error) {
	taken, err := normalizedNames(fs, dir)
	if err != nil {
		return Note{}, err
	}

	candidate := title
	for i := 0; i <= MaxCollisionSuffix; i++ {
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)", title, i)
		}
		name := Filename(candidate, ext)
		path := filepath.Join(dir, name)
		exists, err := afero.Exists(fs, path)
		if err != nil {
			return Note{}, ioError("stat", path, err)
		}
		if !exists && !taken[NormalizeTitle(name)] {
			return Note{Title: candidate, Path: path}, nil
		}
	}
	return Note{}, fmt.Errorf("%w: %q", ErrTitleCollision, title)
}

// normalizedNames returns the NFC forms of the filenames in dir.
// A missing dir has no names.
func normalizedNames(fs afero.Fs, dir string) (map[string]bool, error) {
	entries, err := afero.ReadDir(fs, dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, ioError("read dir", dir, err)
	}

	names := make(map[string]bool, len(entries))
	for _, entry := range entries {
		names[NormalizeTitle(entry.Name())] = true
	}
	return names, nil
}
