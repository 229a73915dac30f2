package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"memo/internal/logs"
	"memo/internal/notes"
	"memo/internal/tui/confirm"
)

// ErrNoDirectory is returned when the user declines to create the notes directory.
var ErrNoDirectory = errors.New("notes directory does not exist")

const createQuestion = "Would you like to create a new directory there?"

// ensureDir makes sure dir exists, asking before creating it.
func (a *App) ensureDir(dir string) error {
	exists, err := afero.DirExists(a.Fs, dir)
	if err != nil {
		return &notes.IOError{Op: "stat", Path: dir, Err: err}
	}
	if exists {
		return nil
	}

	ok, err := a.ask(fmt.Sprintf("%s does not exist.", dir), createQuestion)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoDirectory, dir)
	}

	if err := a.Fs.MkdirAll(dir, 0755); err != nil {
		return &notes.IOError{Op: "mkdir", Path: dir, Err: err}
	}
	logs.Logger.Infow("created notes directory", "dir", dir)
	return nil
}

func (a *App) ask(message, question string) (bool, error) {
	if a.Confirm != nil {
		return a.Confirm(message, question)
	}

	if f, ok := a.Stdin.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return confirm.Ask(message, question, f, a.Stdout)
	}
	return askLine(a.Stdin, a.Stdout, message, question)
}

// askLine reads a single answer line; only "y" or "Y" count as yes.
func askLine(in io.Reader, out io.Writer, message, question string) (bool, error) {
	fmt.Fprintf(out, "%s\n%s [y/N] ", message, question)

	if in == nil {
		return false, nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	answer := strings.TrimSpace(line)
	return answer == "y" || answer == "Y", nil
}
