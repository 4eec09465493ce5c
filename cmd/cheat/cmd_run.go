package main

import (
	"fmt"
	"slices"

	"gocheat/cmd/cheat/ui"
	"gocheat/internal/sheet"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runOptions are the per-invocation overrides of the run config.
type runOptions struct {
	keepGoing bool
	notes     bool
	learner   string
}

func (a *app) newRunCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run [section...]",
		Short: "Run sections of the cheat sheet",
		Long: `Runs the named sections in the order given, or the whole sheet when
none are named. Sections can be named by slug, by number or in any case.

Examples:
  cheat run decorators
  cheat run 16 17 18
  cheat run --learner "Python Learner" summary`,
		ValidArgsFunction: a.completeSections,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSections(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.keepGoing, "keep-going", "k", false, "Run every section even after a failure")
	cmd.Flags().BoolVarP(&opts.notes, "notes", "n", false, "Print each section's notes before its output")
	cmd.Flags().StringVarP(&opts.learner, "learner", "l", "", "Name greeted by the decorator and summary sections")
	return cmd
}

func (a *app) runSections(cmd *cobra.Command, args []string, opts runOptions) error {
	out := cmd.OutOrStdout()
	keys := args
	if len(keys) == 0 {
		keys = a.defaultSections()
	}

	env := sheet.Env{Out: out, Learner: a.cfg.Run.Learner}
	if opts.learner != "" {
		env.Learner = opts.learner
	}

	header := sheet.PlainHeader
	if a.colorFor(out) {
		header = ui.DefaultStyles().SectionHeader
	}
	if opts.notes || a.cfg.Output.ShowNotes {
		header = withNotes(header, a.markdown(out))
	}

	runner := sheet.NewRunner(a.registry, env,
		sheet.WithHeader(header),
		sheet.WithStopOnError(a.cfg.Run.StopOnError && !opts.keepGoing))

	a.logger.Debug("running sections", zap.Strings("keys", keys))
	return runner.Run(cmd.Context(), keys...)
}

// defaultSections is what runs when no section is named: the configured
// list, else everything, minus the summary when it is switched off.
func (a *app) defaultSections() []string {
	if len(a.cfg.Run.Sections) > 0 {
		return a.cfg.Run.Sections
	}
	if a.cfg.Run.Summary {
		return nil
	}
	return slices.DeleteFunc(a.registry.Names(), func(n string) bool {
		return n == sheet.SummaryName
	})
}

// withNotes appends rendered notes under each header.
func withNotes(header sheet.HeaderFunc, render ui.MarkdownFunc) sheet.HeaderFunc {
	return func(s *sheet.Section) string {
		return fmt.Sprintf("%s\n%s", header(s), ui.RenderOrRaw(render, s.Notes))
	}
}

// completeSections offers section names for shell completion.
func (a *app) completeSections(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	reg, err := sheet.Default()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return reg.Names(), cobra.ShellCompDirectiveNoFileComp
}
