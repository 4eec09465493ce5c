package main

import (
	"errors"
	"io"
	"os"

	"gocheat/cmd/cheat/ui"
	"gocheat/internal/sheet"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (a *app) newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the sections interactively",
		Long: `Opens a two-pane browser: pick a section on the left, read its notes on
the right and press enter to run it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.OutOrStdout()) {
				return errors.New("browse needs an interactive terminal; try `cheat run` instead")
			}

			runner := sheet.NewRunner(a.registry, sheet.Env{Learner: a.cfg.Run.Learner})
			m := ui.NewBrowseModel(cmd.Context(), a.registry, runner, a.markdown(cmd.OutOrStdout()), ui.DefaultStyles())
			return ui.Browse(cmd.Context(), m)
		},
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
