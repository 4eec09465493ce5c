package sheet

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gocheat/internal/basics"
	"gocheat/internal/concurrency"
	"gocheat/internal/decorate"
	"gocheat/internal/faults"
	"gocheat/internal/files"
	"gocheat/internal/generate"
	"gocheat/internal/modules"
	"gocheat/internal/objects"
	"gocheat/internal/scope"
	"gocheat/internal/set"
)

// SummaryName is the closing block; `run` without arguments may skip it.
const SummaryName = "summary"

// plain adapts a section that only writes.
func plain(fn func(io.Writer)) RunFunc {
	return func(_ context.Context, env *Env) error {
		fn(env.Out)
		return nil
	}
}

// runFuncs binds every catalogue name to its demonstration.
func runFuncs() map[string]RunFunc {
	return map[string]RunFunc{
		"variables":      plain(basics.Variables),
		"collections":    plain(basics.Collections),
		"control-flow":   plain(basics.ControlFlow),
		"functions":      plain(basics.Functions),
		"comprehensions": plain(basics.Comprehensions),
		"errors":         plain(faults.Errors),
		"types":          plain(objects.Types),
		"files":          plain(files.Files),
		"strings":        plain(basics.Strings),
		"builtins":       plain(basics.Builtins),
		"imports":        plain(modules.Imports),
		"modules": func(_ context.Context, env *Env) error {
			return modules.CommonModules(env.Out)
		},
		"datetime": func(_ context.Context, env *Env) error {
			modules.DateTime(env.Out, env.Now())
			return nil
		},
		"regex":   plain(modules.Regex),
		"methods": plain(basics.ListAndMapMethods),
		"sets":    plain(setOperations),
		"decorators": func(_ context.Context, env *Env) error {
			decorate.Decorators(env.Out, env.Learner)
			return nil
		},
		"generators": func(ctx context.Context, env *Env) error {
			generate.Generators(ctx, env.Out)
			return nil
		},
		"context-managers": func(ctx context.Context, env *Env) error {
			return scope.ContextManagers(ctx, env.Out)
		},
		"type-hints": plain(basics.TypeHints),
		"goroutines": func(ctx context.Context, env *Env) error {
			return concurrency.Goroutines(ctx, env.Out)
		},
		SummaryName: summary,
	}
}

func setOperations(w io.Writer) {
	set1 := set.Of(1, 2, 3)
	set2 := set.Of(3, 4, 5)
	fmt.Fprintln(w, set1.Union(set2))
	fmt.Fprintln(w, set1.Intersection(set2))
	fmt.Fprintln(w, set1.Difference(set2))
	fmt.Fprintln(w, set1.SymmetricDifference(set2))
}

// summary is the closing block printed after the sections.
func summary(_ context.Context, env *Env) error {
	w := env.Out
	myList := []int{4, 3, 2, 2, 1}
	myDict := map[string]any{"name": "John", "age": 30, "city": "New York"}

	fmt.Fprintln(w, "Go Cheat Sheet Examples:")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	fmt.Fprintf(w, "2 + 2 = %d\n", 2+2)
	fmt.Fprintf(w, "List: %v\n", myList)
	fmt.Fprintf(w, "Dictionary: %v\n", myDict)
	fmt.Fprintf(w, "Square of 5: %d\n", basics.Square(5))
	fmt.Fprintf(w, "Current date and time: %s\n", env.Now().Format("2006-01-02 15:04:05.000000"))

	decorate.SayHello(w)(env.Learner)
	return nil
}

// Default builds the full cheat sheet.
func Default() (*Registry, error) {
	entries, err := LoadCatalog()
	if err != nil {
		return nil, err
	}
	return Build(entries, runFuncs())
}
