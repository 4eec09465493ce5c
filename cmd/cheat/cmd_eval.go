package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gocheat/internal/playground"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) newEvalCmd() *cobra.Command {
	var expr string

	cmd := &cobra.Command{
		Use:   "eval [file|-]",
		Short: "Evaluate a Go snippet in the sandboxed interpreter",
		Long: `Interprets a Go snippet and prints what it writes to stdout. The snippet
may be a full program, a main function, or bare statements preceded by
imports. Only packages in playground.allowed_packages may be imported.

Examples:
  cheat eval -e 'import "fmt"
  fmt.Println(6 * 7)'
  cheat eval snippet.go
  echo 'import "fmt"; fmt.Println("hi")' | cheat eval -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := snippetSource(cmd, expr, args)
			if err != nil {
				return err
			}

			exec := playground.NewExecutor(a.cfg.Playground.AllowedPackages, a.cfg.GetPlaygroundTimeout())
			out, err := exec.Run(cmd.Context(), code)
			fmt.Fprint(cmd.OutOrStdout(), out)
			if err != nil {
				a.logger.Debug("eval failed", zap.Error(err))
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&expr, "expr", "e", "", "Snippet to evaluate")
	return cmd
}

// snippetSource picks the code from -e, a file argument or stdin ("-").
func snippetSource(cmd *cobra.Command, expr string, args []string) (string, error) {
	switch {
	case expr != "" && len(args) > 0:
		return "", errors.New("use either --expr or a file argument, not both")
	case expr != "":
		return expr, nil
	case len(args) == 0:
		return "", errors.New("nothing to evaluate: pass a file, - for stdin, or --expr")
	case args[0] == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read snippet: %w", err)
		}
		return string(data), nil
	}
}
