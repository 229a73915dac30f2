package editor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// DefaultCommand is used when neither the configuration nor the environment names an editor.
const DefaultCommand = "vim"

// ErrFailed is wrapped by every error caused by the external editor.
var ErrFailed = errors.New("editor failed")

// Failed marks err as an editor failure if it is not one already.
func Failed(err error) error {
	if err == nil || errors.Is(err, ErrFailed) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrFailed, err)
}

// Editor opens a file for the user and blocks until they are done with it.
type Editor interface {
	Edit(path string) error
}

// Func adapts a plain function to an Editor.
type Func func(path string) error

func (f Func) Edit(path string) error { return f(path) }

// Command runs an external editor attached to the terminal.
type Command struct {
	Name   string
	Args   []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New parses a command line such as "code --wait" into a Command.
// An empty line falls back to $VISUAL, $EDITOR and finally vim.
func New(line string) Command {
	fields := strings.Fields(Resolve(line))
	return Command{
		Name:   fields[0],
		Args:   fields[1:],
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Resolve returns the editor command line to use.
func Resolve(configured string) string {
	for _, candidate := range []string{configured, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return DefaultCommand
}

// Edit runs the editor on path and waits for it to exit.
func (c Command) Edit(path string) error {
	args := append(append([]string{}, c.Args...), path)

	cmd := exec.Command(c.Name, args...)
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFailed, c.Name, err)
	}
	return nil
}

// String returns the command line without the file argument.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}
