package compose

import (
	"fmt"
	"time"

	"github.com/spf13/afero"
	"memo/internal/editor"
	"memo/internal/logs"
	"memo/internal/notes"
)

// Composer creates new notes through the user's editor.
//
// The note is written to a draft in Dir first and only renamed to its final
// name once the editor has exited successfully, so an interrupted session
// never leaves a half-written file under a note name. Drafts of failed
// sessions stay on disk.
type Composer struct {
	Fs     afero.Fs
	Dir    string
	Ext    string
	Editor editor.Editor
	Layout string           // Time layout for untitled notes
	Now    func() time.Time // Defaults to time.Now
}

// Compose runs one compose session. A nil title means the note is named after
// the time the editor exited.
func (c *Composer) Compose(title *string) (notes.Note, error) {
	var seed []byte
	if title != nil {
		if err := notes.ValidateTitle(*title, c.ext()); err != nil {
			return notes.Note{}, err
		}
		seed = notes.Heading(*title)
	}

	draft, err := notes.CreateDraft(c.Fs, c.Dir, c.ext(), seed)
	if err != nil {
		return notes.Note{}, fmt.Errorf("failed to create draft: %w", err)
	}
	logs.Logger.Debugw("created draft", "path", draft.Path)

	if err := editor.Failed(c.Editor.Edit(draft.Path)); err != nil {
		logs.Logger.Warnw("editor failed, keeping draft", "path", draft.Path, "error", err)
		return notes.Note{}, fmt.Errorf("draft kept at %s: %w", draft.Path, err)
	}

	var final string
	if title != nil {
		final = *title
	} else {
		final = notes.DefaultTitle(c.now(), c.Layout)
	}

	note, err := notes.ResolvePath(c.Fs, c.Dir, final, c.ext())
	if err != nil {
		return notes.Note{}, fmt.Errorf("draft kept at %s: %w", draft.Path, err)
	}

	if err := c.Fs.Rename(draft.Path, note.Path); err != nil {
		return notes.Note{}, &notes.IOError{Op: "rename", Path: draft.Path, Err: err}
	}
	logs.Logger.Infow("saved note", "title", note.Title, "path", note.Path)

	return note, nil
}

func (c *Composer) ext() string {
	if c.Ext == "" {
		return notes.DefaultExtension
	}
	return c.Ext
}

func (c *Composer) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}
