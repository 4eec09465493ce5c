// Package sheet assembles the cheat sheet: an ordered registry of sections,
// each pairing Markdown notes with a function that prints the demonstration,
// and a runner that executes them in order.
package sheet

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// Env is what a running section may touch. Now is injected so date output
// can be pinned in tests.
type Env struct {
	Out     io.Writer
	Now     func() time.Time
	Learner string
}

// RunFunc prints one section's demonstration to env.Out.
type RunFunc func(ctx context.Context, env *Env) error

// Section is one numbered entry of the cheat sheet.
type Section struct {
	// Number orders sections; it also works as a lookup key.
	Number int

	// Name is the unique slug used on the command line.
	Name string

	// Title is the human heading.
	Title string

	// Notes is Markdown shown by `cheat show` and the browser.
	Notes string

	Run RunFunc
}

// Validate checks the fields the registry relies on.
func (s *Section) Validate() error {
	if s.Name == "" {
		return ErrSectionNameEmpty
	}
	if s.Run == nil {
		return fmt.Errorf("%w: %s", ErrSectionRunNil, s.Name)
	}
	return nil
}

// Heading is the plain-text heading, e.g. "17. DECORATORS".
func (s *Section) Heading() string {
	return fmt.Sprintf("%d. %s", s.Number, strings.ToUpper(s.Title))
}
