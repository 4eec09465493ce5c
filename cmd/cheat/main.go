package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gocheat/cmd/cheat/ui"
	"gocheat/internal/config"
	"gocheat/internal/logging"
	"gocheat/internal/sheet"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by every command of one invocation.
type app struct {
	// Global flags
	verbose    bool
	configPath string
	noColor    bool

	cfg      *config.Config
	registry *sheet.Registry
	logger   *zap.Logger
}

// newRootCmd builds the command tree. Without a subcommand it runs the
// whole sheet, like `cheat run`.
func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "cheat",
		Short: "gocheat - a runnable Go cheat sheet",
		Long: `gocheat prints a numbered walk through everyday Go: values and
collections, control flow, functions, errors, structs, packages, decorators,
iterators, scoped cleanup and goroutines. Every section runs real code.

Run without arguments to print the whole sheet.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSections(cmd, nil, runOptions{})
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.DefaultPath, "Config file")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable styled output")

	rootCmd.AddCommand(
		a.newRunCmd(),
		a.newListCmd(),
		a.newShowCmd(),
		a.newEvalCmd(),
		a.newBrowseCmd(),
		a.newConfigCmd(),
	)
	return rootCmd
}

// setup loads the config, starts logging and builds the sheet.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", a.configPath, err)
	}
	a.cfg = cfg

	if err := logging.Initialize(cfg.Logging, a.verbose); err != nil {
		return err
	}
	a.logger = logging.L()

	start := time.Now()
	reg, err := sheet.Default()
	if err != nil {
		return fmt.Errorf("failed to build cheat sheet: %w", err)
	}
	a.registry = reg

	logging.Get(logging.CategoryBoot).Debug("cheat sheet ready",
		zap.String("config", a.configPath),
		zap.Int("sections", reg.Count()),
		zap.Duration("took", time.Since(start)))
	return nil
}

// colorFor decides whether output to w gets styled.
func (a *app) colorFor(w io.Writer) bool {
	if a.noColor {
		return false
	}
	return a.cfg.ColorEnabled(isTerminal(w))
}

// markdown returns the notes renderer for w.
func (a *app) markdown(w io.Writer) ui.MarkdownFunc {
	render, err := ui.NewMarkdown(a.cfg.Output.Width, a.colorFor(w))
	if err != nil {
		a.logger.Warn("falling back to raw notes", zap.Error(err))
		return nil
	}
	return render
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
