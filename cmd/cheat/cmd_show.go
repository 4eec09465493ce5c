package main

import (
	"fmt"

	"gocheat/cmd/cheat/ui"
	"gocheat/internal/sheet"

	"github.com/spf13/cobra"
)

func (a *app) newShowCmd() *cobra.Command {
	var noRun bool

	cmd := &cobra.Command{
		Use:   "show <section>",
		Short: "Show a section's notes and run it",
		Long: `Renders the Markdown notes for one section, then runs it.

Examples:
  cheat show errors
  cheat show 19 --no-run`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.completeSections,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			s, err := a.registry.Lookup(args[0])
			if err != nil {
				return err
			}

			header := sheet.PlainHeader
			if a.colorFor(out) {
				header = ui.DefaultStyles().SectionHeader
			}
			fmt.Fprintln(out, header(s))
			fmt.Fprint(out, ui.RenderOrRaw(a.markdown(out), s.Notes))
			if noRun {
				return nil
			}

			fmt.Fprintln(out)
			runner := sheet.NewRunner(a.registry, sheet.Env{Learner: a.cfg.Run.Learner})
			return runner.RunSection(cmd.Context(), s, out)
		},
	}

	cmd.Flags().BoolVar(&noRun, "no-run", false, "Only print the notes")
	return cmd
}
