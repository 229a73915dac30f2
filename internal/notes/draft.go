package notes

import (
	"crypto/rand"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/afero"
)

const (
	draftPrefix = ".memo-"

	// draftAttempts bounds how often a new name is drawn when the first one is taken.
	draftAttempts = 8
)

// Draft is a note under construction. It lives in the notes directory next to
// the notes so that finalizing it is a rename on the same filesystem.
type Draft struct {
	Path string
	ID   ulid.ULID
}

// Started returns when the draft was created, as encoded in its name.
func (d Draft) Started() time.Time {
	return ulid.Time(d.ID.Time())
}

// DraftName returns the filename used for a draft with the given id.
func DraftName(id ulid.ULID, ext string) string {
	return Filename(draftPrefix+strings.ToLower(id.String()), ext)
}

// IsDraft reports whether a filename follows the draft naming pattern.
func IsDraft(name string) bool {
	_, ok := parseDraftName(name)
	return ok
}

func parseDraftName(name string) (ulid.ULID, bool) {
	if !strings.HasPrefix(name, draftPrefix) {
		return ulid.ULID{}, false
	}
	rest := strings.TrimPrefix(name, draftPrefix)
	if i := strings.IndexByte(rest, '.'); i >= 0 {
		rest = rest[:i]
	}
	id, err := ulid.ParseStrict(strings.ToUpper(rest))
	if err != nil {
		return ulid.ULID{}, false
	}
	return id, true
}

// CreateDraft creates a new, uniquely named draft in dir holding seed. The
// seed is synced to disk before the draft is returned. A draft whose seed
// could not be written is left on disk.
func CreateDraft(fs afero.Fs, dir, ext string, seed []byte) (Draft, error) {
	var lastErr error
	for range draftAttempts {
		id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
		if err != nil {
			return Draft{}, err
		}

		path := filepath.Join(dir, DraftName(id, ext))
		f, err := fs.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, os.ErrExist) {
			lastErr = err
			continue
		}
		if err != nil {
			return Draft{}, ioError("create draft", path, err)
		}

		draft := Draft{Path: path, ID: id}
		if _, err := f.Write(seed); err != nil {
			f.Close()
			return draft, ioError("write draft", path, err)
		}
		if err := f.Sync(); err != nil {
			f.Close()
			return draft, ioError("sync draft", path, err)
		}
		if err := f.Close(); err != nil {
			return draft, ioError("close draft", path, err)
		}
		return draft, nil
	}
	return Draft{}, ioError("create draft", dir, lastErr)
}
