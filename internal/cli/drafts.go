package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"memo/internal/notes"
)

const draftTimeLayout = "2006-01-02 15:04:05"

func newDraftsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "drafts",
		Short: "List drafts left behind by interrupted compose sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			drafts, err := notes.ListDrafts(app.Fs, app.cfg.Dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(drafts) == 0 {
				fmt.Fprintln(out, "No drafts.")
				return nil
			}
			for _, d := range drafts {
				fmt.Fprintf(out, "%s  %s\n", d.Started().Local().Format(draftTimeLayout), d.Path)
			}
			return nil
		},
	}
}
