package main

import (
	"fmt"

	"gocheat/cmd/cheat/ui"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func (a *app) newListCmd() *cobra.Command {
	var namesOnly bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the sections of the cheat sheet",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			sections := a.registry.All()

			if namesOnly {
				for _, s := range sections {
					fmt.Fprintln(out, s.Name)
				}
				return nil
			}

			if !a.colorFor(out) {
				for _, s := range sections {
					fmt.Fprintf(out, "%2d  %-18s %s\n", s.Number, s.Name, s.Title)
				}
				return nil
			}

			styles := ui.DefaultStyles()
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(styles.Divider).
				Headers("#", "NAME", "TITLE").
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return styles.Header.Padding(0, 1)
					}
					return lipgloss.NewStyle().Padding(0, 1)
				})
			for _, s := range sections {
				t.Row(fmt.Sprint(s.Number), s.Name, s.Title)
			}
			fmt.Fprintln(out, t.Render())
			return nil
		},
	}

	cmd.Flags().BoolVar(&namesOnly, "names", false, "Print section names only")
	return cmd
}
