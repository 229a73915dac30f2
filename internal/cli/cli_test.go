package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"memo/internal/editor"
	"memo/internal/notes"
	"memo/internal/tui/picker"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fixedPicker struct {
	idx   int
	err   error
	items []notes.Item
}

func (p *fixedPicker) Pick(items []notes.Item) (int, error) {
	p.items = items
	return p.idx, p.err
}

type harness struct {
	app    *App
	fs     afero.Fs
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	edited []string
}

// newHarness isolates HOME and wires an app whose editor appends text.
func newHarness(t *testing.T, stdin string) *harness {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MEMO_PATH", "")
	t.Setenv("MEMO_EDITOR", "")

	h := &harness{
		fs:     afero.NewMemMapFs(),
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	h.app = &App{
		Fs:     h.fs,
		Stdin:  strings.NewReader(stdin),
		Stdout: h.stdout,
		Stderr: h.stderr,
		Editor: editor.Func(func(path string) error {
			h.edited = append(h.edited, path)
			f, err := h.fs.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return err
			}
			defer f.Close()
			_, err = f.WriteString("body\n")
			return err
		}),
	}
	return h
}

func (h *harness) run(args ...string) int {
	return h.app.Run(args)
}

func TestCompose_WithTitle(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, h.fs.MkdirAll("/memos", 0755))

	code := h.run("-p", "/memos", "compose", "-t", "Groceries")
	require.Equal(t, 0, code, h.stderr.String())

	data, err := afero.ReadFile(h.fs, "/memos/Groceries.md")
	require.NoError(t, err)
	assert.Equal(t, "# Groceries\nbody\n", string(data))
	assert.Equal(t, "/memos/Groceries.md\n", h.stdout.String())
}

func TestCompose_ExplicitEmptyTitle(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, h.fs.MkdirAll("/memos", 0755))

	code := h.run("--memo-path", "/memos", "compose", "--title", "")
	require.Equal(t, 0, code, h.stderr.String())

	exists, err := afero.Exists(h.fs, "/memos/.md")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCompose_EnvPath(t *testing.T) {
	h := newHarness(t, "")
	t.Setenv("MEMO_PATH", "/env-memos")
	require.NoError(t, h.fs.MkdirAll("/env-memos", 0755))

	code := h.run("compose", "-t", "Plan")
	require.Equal(t, 0, code, h.stderr.String())

	exists, err := afero.Exists(h.fs, "/env-memos/Plan.md")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCompose_EditorFailure(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, h.fs.MkdirAll("/memos", 0755))
	h.app.Editor = editor.Func(func(path string) error {
		return errors.New("exit status 1")
	})

	code := h.run("-p", "/memos", "compose", "-t", "Lost")
	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(h.stderr.String(), "Error: "))
	assert.Contains(t, h.stderr.String(), "draft kept at")

	drafts, err := notes.ListDrafts(h.fs, "/memos")
	require.NoError(t, err)
	assert.Len(t, drafts, 1)
}

func TestCompose_RejectsArgs(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, h.fs.MkdirAll("/memos", 0755))

	assert.Equal(t, 1, h.run("-p", "/memos", "compose", "stray"))
	assert.Empty(t, h.edited)
}

func TestBootstrap_CreatesDirectoryOnYes(t *testing.T) {
	for _, answer := range []string{"y\n", "Y\n", "y"} {
		h := newHarness(t, answer)

		code := h.run("-p", "/new-memos", "compose", "-t", "First")
		require.Equal(t, 0, code, h.stderr.String())

		assert.Contains(t, h.stdout.String(), "/new-memos does not exist.")
		assert.Contains(t, h.stdout.String(), createQuestion)
		exists, err := afero.Exists(h.fs, "/new-memos/First.md")
		require.NoError(t, err)
		assert.True(t, exists)
	}
}

func TestBootstrap_RefusalFails(t *testing.T) {
	for _, answer := range []string{"n\n", "yes\n", ""} {
		h := newHarness(t, answer)

		code := h.run("-p", "/new-memos", "compose")
		assert.Equal(t, 1, code)
		assert.Contains(t, h.stderr.String(), ErrNoDirectory.Error())

		exists, err := afero.DirExists(h.fs, "/new-memos")
		require.NoError(t, err)
		assert.False(t, exists)
		assert.Empty(t, h.edited)
	}
}

func TestBootstrap_ConfirmOverride(t *testing.T) {
	h := newHarness(t, "")
	var asked string
	h.app.Confirm = func(message, question string) (bool, error) {
		asked = message
		return true, nil
	}

	code := h.run("-p", "/memos", "drafts")
	require.Equal(t, 0, code, h.stderr.String())
	assert.Equal(t, "/memos does not exist.", asked)
}

func TestEdit_Random(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, afero.WriteFile(h.fs, "/memos/only.md", []byte("# Only\n"), 0644))

	code := h.run("-p", "/memos", "edit", "-r")
	require.Equal(t, 0, code, h.stderr.String())
	assert.Equal(t, []string{filepath.Join("/memos", "only.md")}, h.edited)
}

func TestEdit_Interactive(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, afero.WriteFile(h.fs, "/memos/a.md", []byte("a"), 0644))
	require.NoError(t, afero.WriteFile(h.fs, "/memos/b.md", []byte("b"), 0644))
	p := &fixedPicker{idx: 1}
	h.app.Picker = p

	code := h.run("-p", "/memos", "edit")
	require.Equal(t, 0, code, h.stderr.String())
	require.Len(t, p.items, 2)
	assert.Equal(t, []string{filepath.Join("/memos", "b.md")}, h.edited)
}

func TestEdit_EmptyDirectory(t *testing.T) {
	for _, args := range [][]string{{"edit"}, {"edit", "--random"}} {
		h := newHarness(t, "")
		require.NoError(t, h.fs.MkdirAll("/memos", 0755))
		h.app.Picker = &fixedPicker{}

		code := h.run(append([]string{"-p", "/memos"}, args...)...)
		assert.Equal(t, 1, code)
		assert.Equal(t, "Error: "+notes.ErrNoNotesFound.Error()+" in /memos\n", h.stderr.String())
		assert.Empty(t, h.edited)
	}
}

func TestEdit_PickerCancelled(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, afero.WriteFile(h.fs, "/memos/a.md", []byte("a"), 0644))
	h.app.Picker = &fixedPicker{idx: -1, err: picker.ErrCancelled}

	code := h.run("-p", "/memos", "edit")
	assert.Equal(t, 1, code)
	assert.Contains(t, h.stderr.String(), picker.ErrCancelled.Error())
	assert.Empty(t, h.edited)
}

func TestDrafts(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, h.fs.MkdirAll("/memos", 0755))

	require.Equal(t, 0, h.run("-p", "/memos", "drafts"))
	assert.Equal(t, "No drafts.\n", h.stdout.String())

	id := ulid.Make()
	name := notes.DraftName(id, "md")
	require.NoError(t, afero.WriteFile(h.fs, filepath.Join("/memos", name), []byte("wip"), 0644))

	h.stdout.Reset()
	require.Equal(t, 0, h.run("-p", "/memos", "drafts"))
	assert.Contains(t, h.stdout.String(), name)
	assert.Contains(t, h.stdout.String(), ulid.Time(id.Time()).Local().Format(draftTimeLayout))
}

func TestUnknownCommand(t *testing.T) {
	h := newHarness(t, "")

	assert.Equal(t, 1, h.run("frobnicate"))
	assert.True(t, strings.HasPrefix(h.stderr.String(), "Error: "))
}
