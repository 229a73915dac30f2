package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"memo/internal/config"
	"memo/internal/editor"
	"memo/internal/logs"
	"memo/internal/selector"
	"memo/internal/tui/picker"
)

// App carries the collaborators shared by every command. Nil fields fall
// back to the real terminal, editor and picker.
type App struct {
	Fs     afero.Fs
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Editor  editor.Editor
	Picker  selector.Picker
	Confirm func(message, question string) (bool, error)

	cfg *config.Config
}

// Execute runs memo against the process arguments and returns the exit code.
func Execute() int {
	app := &App{
		Fs:     afero.NewOsFs(),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	return app.Run(os.Args[1:])
}

// Run executes one command line.
func (a *App) Run(args []string) int {
	defer logs.Close()

	root := NewRootCommand(a)
	root.SetArgs(args)
	root.SetIn(a.Stdin)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)

	if err := root.Execute(); err != nil {
		logs.Logger.Errorw("command failed", "args", args, "error", err)
		fmt.Fprintf(a.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCommand builds the memo command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	var memoPath string

	root := &cobra.Command{
		Use:           "memo",
		Short:         "Write and revisit plain-text notes in your editor",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			return app.setup(memoPath)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVarP(&memoPath, "memo-path", "p", "", "Notes directory (env MEMO_PATH, default ~/.memos)")

	root.AddCommand(newComposeCmd(app))
	root.AddCommand(newEditCmd(app))
	root.AddCommand(newDraftsCmd(app))

	return root
}

func (a *App) setup(memoPath string) error {
	cfg, err := config.Load(config.CLIFlags{Dir: memoPath})
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	if err := config.EnsureConfigFile(); err != nil {
		fmt.Fprintf(a.Stderr, "Warning: could not create config file: %v\n", err)
	}

	if dir, err := config.GetConfigDir(); err == nil {
		if err := logs.Initialize(dir); err != nil {
			fmt.Fprintf(a.Stderr, "Warning: could not initialize logger: %v\n", err)
		}
	}
	logs.Logger.Debugw("config loaded", "dir", cfg.Dir, "extension", cfg.Extension)

	return a.ensureDir(cfg.Dir)
}

func (a *App) editor() editor.Editor {
	if a.Editor != nil {
		return a.Editor
	}
	ed := editor.New(a.cfg.Editor)
	if f, ok := a.Stdin.(*os.File); ok {
		ed.Stdin = f
	}
	ed.Stdout = a.Stdout
	ed.Stderr = a.Stderr
	logs.Logger.Debugw("using editor", "command", ed.String())
	return ed
}

func (a *App) picker() selector.Picker {
	if a.Picker != nil {
		return a.Picker
	}
	return picker.Picker{
		Title:  a.cfg.Dir,
		Keys:   picker.NewKeyMap(a.cfg.UpKeys, a.cfg.DownKeys),
		Input:  a.Stdin,
		Output: a.Stdout,
	}
}
