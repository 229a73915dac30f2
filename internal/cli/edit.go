package cli

import (
	"github.com/spf13/cobra"
	"memo/internal/logs"
	"memo/internal/selector"
)

func newEditCmd(app *App) *cobra.Command {
	var random bool

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open an existing note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &selector.Selector{
				Fs:     app.Fs,
				Dir:    app.cfg.Dir,
				Editor: app.editor(),
			}
			if !random {
				s.Picker = app.picker()
			}

			note, err := s.Select(random)
			if err != nil {
				return err
			}
			logs.Logger.Infow("edited note", "path", note.Path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&random, "random", "r", false, "Open a random note instead of choosing one")

	return cmd
}
