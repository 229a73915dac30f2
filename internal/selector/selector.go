package selector

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/spf13/afero"
	"memo/internal/editor"
	"memo/internal/logs"
	"memo/internal/notes"
)

// ErrNoPicker is returned by an interactive Select on a Selector without a Picker.
var ErrNoPicker = errors.New("no picker configured")

// Picker lets the user choose one of items and returns its index.
type Picker interface {
	Pick(items []notes.Item) (int, error)
}

// Selector reopens an existing note in the user's editor.
type Selector struct {
	Fs     afero.Fs
	Dir    string
	Editor editor.Editor
	Picker Picker // Required unless selecting at random
	IntN   func(n int) int // Defaults to rand.IntN
}

// Select chooses a note, either at random or through the picker, and opens it.
func (s *Selector) Select(random bool) (notes.Note, error) {
	all, err := notes.List(s.Fs, s.Dir)
	if err != nil {
		return notes.Note{}, err
	}
	if len(all) == 0 {
		return notes.Note{}, fmt.Errorf("%w in %s", notes.ErrNoNotesFound, s.Dir)
	}

	var idx int
	if random {
		idx = s.intN(len(all))
	} else {
		if s.Picker == nil {
			return notes.Note{}, ErrNoPicker
		}
		items := make([]notes.Item, len(all))
		for i, n := range all {
			items[i] = noteItem{Note: n, fs: s.Fs}
		}
		idx, err = s.Picker.Pick(items)
		if err != nil {
			return notes.Note{}, err
		}
	}
	if idx < 0 || idx >= len(all) {
		return notes.Note{}, fmt.Errorf("selection %d out of range [0, %d)", idx, len(all))
	}

	note := all[idx]
	logs.Logger.Debugw("selected note", "path", note.Path, "random", random)

	if err := editor.Failed(s.Editor.Edit(note.Path)); err != nil {
		return note, err
	}
	return note, nil
}

func (s *Selector) intN(n int) int {
	if s.IntN == nil {
		return rand.IntN(n)
	}
	return s.IntN(n)
}

// noteItem shows a note's summary next to its label in the picker.
type noteItem struct {
	notes.Note
	fs afero.Fs
}

// Description returns the note's heading and preview, or "" if it cannot be read.
func (i noteItem) Description() string {
	summary, err := notes.ReadSummary(i.fs, i.Path)
	if err != nil {
		logs.Logger.Debugw("could not summarize note", "path", i.Path, "error", err)
		return ""
	}
	switch {
	case summary.Heading != "" && summary.Preview != "":
		return summary.Heading + " · " + summary.Preview
	case summary.Heading != "":
		return summary.Heading
	default:
		return summary.Preview
	}
}
