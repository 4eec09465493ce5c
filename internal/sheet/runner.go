package sheet

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gocheat/internal/logging"

	"go.uber.org/zap"
)

// HeaderFunc renders the line printed before a section's output.
type HeaderFunc func(s *Section) string

// PlainHeader underlines the heading with '='.
func PlainHeader(s *Section) string {
	h := "# " + s.Heading()
	return h + "\n# " + strings.Repeat("=", len(h)-2)
}

// Runner executes sections in order.
type Runner struct {
	registry    *Registry
	env         Env
	header      HeaderFunc
	stopOnError bool
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithHeader replaces PlainHeader.
func WithHeader(h HeaderFunc) RunnerOption {
	return func(r *Runner) { r.header = h }
}

// WithStopOnError makes Run return at the first failing section.
func WithStopOnError(stop bool) RunnerOption {
	return func(r *Runner) { r.stopOnError = stop }
}

// NewRunner creates a runner. Missing Env fields default to io.Discard,
// time.Now and "Go Learner".
func NewRunner(reg *Registry, env Env, opts ...RunnerOption) *Runner {
	if env.Out == nil {
		env.Out = io.Discard
	}
	if env.Now == nil {
		env.Now = time.Now
	}
	if env.Learner == "" {
		env.Learner = "Go Learner"
	}
	r := &Runner{
		registry:    reg,
		env:         env,
		header:      PlainHeader,
		stopOnError: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run resolves keys (all sections when empty) and runs them in the given
// order, printing a header and a blank separator line around each. Unknown
// keys fail before anything runs. Without stop-on-error every failure is
// collected and returned joined.
func (r *Runner) Run(ctx context.Context, keys ...string) error {
	log := logging.Get(logging.CategorySheet)

	sections, err := r.registry.Resolve(keys...)
	if err != nil {
		return err
	}

	var errs []error
	for i, s := range sections {
		if err := ctx.Err(); err != nil {
			return errors.Join(append(errs, err)...)
		}
		if i > 0 {
			fmt.Fprintln(r.env.Out)
		}
		fmt.Fprintln(r.env.Out, r.header(s))

		start := time.Now()
		err := r.RunSection(ctx, s, r.env.Out)
		log.Debug("section finished",
			zap.String("name", s.Name),
			zap.Duration("took", time.Since(start)),
			zap.Error(err))
		if err == nil {
			continue
		}

		log.Warn("section failed", zap.String("name", s.Name), zap.Error(err))
		if r.stopOnError {
			return err
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// RunSection runs one section against out. Errors are wrapped with the
// section name.
func (r *Runner) RunSection(ctx context.Context, s *Section, out io.Writer) error {
	env := r.env
	env.Out = out
	if err := s.Run(ctx, &env); err != nil {
		return fmt.Errorf("section %s: %w", s.Name, err)
	}
	return nil
}

// Capture runs one section and returns its output.
func (r *Runner) Capture(ctx context.Context, s *Section) (string, error) {
	var buf bytes.Buffer
	err := r.RunSection(ctx, s, &buf)
	return buf.String(), err
}
