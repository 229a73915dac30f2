package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"memo/internal/compose"
)

func newComposeCmd(app *App) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Write a new note",
		Long: `Open the editor on a fresh draft and save it as a note.

With --title the note starts with a heading and is named after the title.
Without it the note is named after the time the editor was closed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &compose.Composer{
				Fs:     app.Fs,
				Dir:    app.cfg.Dir,
				Ext:    app.cfg.Extension,
				Editor: app.editor(),
				Layout: app.cfg.TimeFormat,
			}

			// An explicit empty title is still a title.
			var t *string
			if cmd.Flags().Changed("title") {
				t = &title
			}

			note, err := c.Compose(t)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), note.Path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Title of the note")

	return cmd
}
