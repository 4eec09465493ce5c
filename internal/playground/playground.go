// Package playground evaluates Go snippets with the Yaegi interpreter so a
// reader can try variations of a section without a compile step.
//
// Restrictions:
//   - only packages on the allow-list may be imported
//   - output is captured, nothing reaches the real stdout
//   - evaluation is bounded by a timeout
package playground

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"slices"
	"strconv"
	"strings"
	"time"

	"gocheat/internal/logging"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
	"go.uber.org/zap"
)

var (
	// ErrEmptySnippet is returned for blank input.
	ErrEmptySnippet = errors.New("snippet is empty")

	// ErrForbiddenImport is returned when a snippet imports a package that
	// is not on the allow-list.
	ErrForbiddenImport = errors.New("forbidden import")

	// ErrTimeout is returned when evaluation outlives the executor timeout.
	ErrTimeout = errors.New("snippet timed out")
)

// Executor evaluates snippets.
type Executor struct {
	allowed map[string]bool
	timeout time.Duration
}

// NewExecutor creates an executor that accepts the given imports.
func NewExecutor(allowedPackages []string, timeout time.Duration) *Executor {
	allowed := make(map[string]bool, len(allowedPackages))
	for _, p := range allowedPackages {
		allowed[p] = true
	}
	return &Executor{allowed: allowed, timeout: timeout}
}

// AllowedPackages returns the allow-list, sorted.
func (e *Executor) AllowedPackages() []string {
	out := make([]string, 0, len(e.allowed))
	for p := range e.allowed {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// Run evaluates code and returns what it printed. code may be a full
// program, a main function without a package clause, or bare statements
// optionally preceded by import lines.
func (e *Executor) Run(ctx context.Context, code string) (string, error) {
	log := logging.Get(logging.CategoryPlayground)

	if strings.TrimSpace(code) == "" {
		return "", ErrEmptySnippet
	}

	src := Wrap(code)
	if err := e.validateImports(src); err != nil {
		log.Debug("snippet rejected", zap.Error(err))
		return "", err
	}

	var stdout, stderr bytes.Buffer
	i := interp.New(interp.Options{Stdout: &stdout, Stderr: &stderr})
	if err := i.Use(stdlib.Symbols); err != nil {
		return "", fmt.Errorf("failed to load stdlib: %w", err)
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	start := time.Now()
	_, err := i.EvalWithContext(ctx, src)
	log.Debug("snippet evaluated", zap.Duration("took", time.Since(start)), zap.Bool("ok", err == nil))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			// The interpreter goroutine may still be writing; leave the buffers alone.
			return "", fmt.Errorf("%w: %w", ErrTimeout, ctxErr)
		}
		return stdout.String(), fmt.Errorf("evaluation failed: %w", err)
	}
	return stdout.String(), nil
}

// Wrap turns a snippet into a main package.
func Wrap(code string) string {
	if hasPackageClause(code) {
		return code
	}
	if strings.Contains(code, "func main()") {
		return "package main\n\n" + code
	}

	var imports, body []string
	inImportBlock := false
	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case inImportBlock:
			imports = append(imports, line)
			if strings.HasPrefix(trimmed, ")") {
				inImportBlock = false
			}
		case strings.HasPrefix(trimmed, "import ("):
			imports = append(imports, line)
			inImportBlock = true
		case strings.HasPrefix(trimmed, "import "):
			imports = append(imports, line)
		default:
			body = append(body, "\t"+line)
		}
	}

	var b strings.Builder
	b.WriteString("package main\n\n")
	for _, l := range imports {
		b.WriteString(l + "\n")
	}
	b.WriteString("\nfunc main() {\n")
	b.WriteString(strings.Join(body, "\n"))
	b.WriteString("\n}\n")
	return b.String()
}

func hasPackageClause(code string) bool {
	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		return strings.HasPrefix(trimmed, "package ")
	}
	return false
}

// validateImports checks every import path against the allow-list.
func (e *Executor) validateImports(src string) error {
	f, err := parser.ParseFile(token.NewFileSet(), "snippet.go", src, parser.ImportsOnly)
	if err != nil {
		return fmt.Errorf("parse imports: %w", err)
	}

	var forbidden []string
	for _, spec := range f.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			return fmt.Errorf("parse import %s: %w", spec.Path.Value, err)
		}
		if !e.allowed[path] {
			forbidden = append(forbidden, path)
		}
	}

	if len(forbidden) > 0 {
		return fmt.Errorf("%w: %v (allowed: %v)", ErrForbiddenImport, forbidden, e.AllowedPackages())
	}
	return nil
}
