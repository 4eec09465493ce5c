package sheet

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pinned = time.Date(2024, 3, 9, 14, 5, 7, 123456000, time.UTC)

func printer(text string) RunFunc {
	return func(_ context.Context, env *Env) error {
		fmt.Fprintln(env.Out, text)
		return nil
	}
}

func failing(err error) RunFunc {
	return func(context.Context, *Env) error { return err }
}

func newTestRegistry(t *testing.T, sections ...*Section) *Registry {
	t.Helper()
	reg := NewRegistry()
	for _, s := range sections {
		require.NoError(t, reg.Register(s))
	}
	return reg
}

func TestRegistry_RegisterValidation(t *testing.T) {
	reg := NewRegistry()

	err := reg.Register(&Section{Run: printer("x")})
	assert.ErrorIs(t, err, ErrSectionNameEmpty)

	err = reg.Register(&Section{Name: "norun"})
	assert.ErrorIs(t, err, ErrSectionRunNil)

	require.NoError(t, reg.Register(&Section{Number: 1, Name: "one", Run: printer("1")}))
	err = reg.Register(&Section{Number: 2, Name: "one", Run: printer("2")})
	assert.ErrorIs(t, err, ErrSectionAlreadyRegistered)
	assert.Equal(t, 1, reg.Count())
}

func TestRegistry_MustRegisterPanics(t *testing.T) {
	reg := NewRegistry()
	assert.Panics(t, func() { reg.MustRegister(&Section{}) })
}

func TestRegistry_OrderAndLookup(t *testing.T) {
	reg := newTestRegistry(t,
		&Section{Number: 2, Name: "beta", Run: printer("b")},
		&Section{Number: 1, Name: "alpha", Run: printer("a")},
	)

	assert.Equal(t, []string{"beta", "alpha"}, reg.Names())
	assert.True(t, reg.Has("alpha"))
	assert.Nil(t, reg.Get("gamma"))

	for _, key := range []string{"alpha", "ALPHA", " alpha ", "1"} {
		s, err := reg.Lookup(key)
		require.NoError(t, err, key)
		assert.Equal(t, "alpha", s.Name, key)
	}
}

func TestRegistry_LookupSuggests(t *testing.T) {
	reg := newTestRegistry(t,
		&Section{Number: 1, Name: "decorators", Run: printer("d")},
		&Section{Number: 2, Name: "generators", Run: printer("g")},
	)

	_, err := reg.Lookup("decorater")
	require.ErrorIs(t, err, ErrSectionNotFound)
	assert.Contains(t, err.Error(), `did you mean "decorators"?`)

	_, err = reg.Lookup("zzz")
	require.ErrorIs(t, err, ErrSectionNotFound)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestRegistry_Resolve(t *testing.T) {
	reg := newTestRegistry(t,
		&Section{Number: 1, Name: "a", Run: printer("a")},
		&Section{Number: 2, Name: "b", Run: printer("b")},
	)

	all, err := reg.Resolve()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	some, err := reg.Resolve("2", "a")
	require.NoError(t, err)
	assert.Equal(t, "b", some[0].Name)
	assert.Equal(t, "a", some[1].Name)

	_, err = reg.Resolve("a", "missing")
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestBuild_Mismatch(t *testing.T) {
	entries := []CatalogEntry{{Number: 1, Name: "a"}}

	_, err := Build(entries, map[string]RunFunc{})
	assert.ErrorIs(t, err, ErrCatalogMismatch)

	_, err = Build(entries, map[string]RunFunc{"a": printer("a"), "b": printer("b")})
	assert.ErrorIs(t, err, ErrCatalogMismatch)

	reg, err := Build(entries, map[string]RunFunc{"a": printer("a")})
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Count())
}

func TestParseCatalog_Invalid(t *testing.T) {
	_, err := parseCatalog([]byte("number: [oops"))
	assert.Error(t, err)
}

func TestDefault_Catalog(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)
	require.Equal(t, 22, reg.Count())

	sections := reg.All()
	for i, s := range sections {
		assert.Equal(t, i+1, s.Number, "section %s out of order", s.Name)
		assert.NotEmpty(t, s.Title, s.Name)
		assert.NotEmpty(t, strings.TrimSpace(s.Notes), s.Name)
	}
	assert.Equal(t, SummaryName, sections[len(sections)-1].Name)

	s, err := reg.Lookup("17")
	require.NoError(t, err)
	assert.Equal(t, "17. DECORATORS", s.Heading())
}

func TestPlainHeader(t *testing.T) {
	s := &Section{Number: 6, Title: "Error Handling"}
	assert.Equal(t, "# 6. ERROR HANDLING\n# =================", PlainHeader(s))
}

func TestRunner_RunsInOrderWithHeaders(t *testing.T) {
	reg := newTestRegistry(t,
		&Section{Number: 1, Name: "a", Title: "A", Run: printer("first")},
		&Section{Number: 2, Name: "b", Title: "B", Run: printer("second")},
	)
	var out bytes.Buffer
	r := NewRunner(reg, Env{Out: &out}, WithHeader(func(s *Section) string {
		return "== " + s.Name
	}))

	require.NoError(t, r.Run(context.Background()))
	want := "== a\nfirst\n\n== b\nsecond\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunner_StopOnError(t *testing.T) {
	boom := errors.New("boom")
	reg := newTestRegistry(t,
		&Section{Number: 1, Name: "bad", Run: failing(boom)},
		&Section{Number: 2, Name: "good", Run: printer("reached")},
	)

	var out bytes.Buffer
	err := NewRunner(reg, Env{Out: &out}).Run(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "section bad")
	assert.NotContains(t, out.String(), "reached")
}

func TestRunner_CollectsErrors(t *testing.T) {
	errA, errB := errors.New("a failed"), errors.New("b failed")
	reg := newTestRegistry(t,
		&Section{Number: 1, Name: "a", Run: failing(errA)},
		&Section{Number: 2, Name: "ok", Run: printer("reached")},
		&Section{Number: 3, Name: "b", Run: failing(errB)},
	)

	var out bytes.Buffer
	err := NewRunner(reg, Env{Out: &out}, WithStopOnError(false)).Run(context.Background())
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.Contains(t, out.String(), "reached")
}

func TestRunner_UnknownKeyRunsNothing(t *testing.T) {
	reg := newTestRegistry(t, &Section{Number: 1, Name: "a", Run: printer("ran")})

	var out bytes.Buffer
	err := NewRunner(reg, Env{Out: &out}).Run(context.Background(), "a", "nope")
	assert.ErrorIs(t, err, ErrSectionNotFound)
	assert.Empty(t, out.String())
}

func TestRunner_CancelledContext(t *testing.T) {
	reg := newTestRegistry(t, &Section{Number: 1, Name: "a", Run: printer("ran")})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewRunner(reg, Env{Out: io.Discard}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_EnvDefaults(t *testing.T) {
	var got Env
	reg := newTestRegistry(t, &Section{Number: 1, Name: "env", Run: func(_ context.Context, env *Env) error {
		got = *env
		return nil
	}})

	require.NoError(t, NewRunner(reg, Env{}).Run(context.Background()))
	assert.Equal(t, "Go Learner", got.Learner)
	assert.NotNil(t, got.Now)
	assert.NotNil(t, got.Out)
}

func TestRunner_Capture(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)
	r := NewRunner(reg, Env{Now: func() time.Time { return pinned }, Learner: "Go Learner"})

	out, err := r.Capture(context.Background(), reg.Get("sets"))
	require.NoError(t, err)
	assert.Equal(t, "{1, 2, 3, 4, 5}\n{3}\n{1, 2}\n{1, 2, 4, 5}\n", out)
}

func TestDefault_FullRun(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	var out bytes.Buffer
	r := NewRunner(reg, Env{
		Out:     &out,
		Now:     func() time.Time { return pinned },
		Learner: "Python Learner",
	})
	require.NoError(t, r.Run(context.Background()))

	text := out.String()
	for _, want := range []string{
		"# 1. VARIABLES AND DATA TYPES",
		"squares: [0 1 4 9 16 25 36 49 64 81]",
		"evens: [2 4]",
		"{1, 2, 3, 4, 5}\n{3}\n",
		"Before function\nHello, Python Learner!\nAfter function\n",
		"Entering context\nInside context\nExiting context\n",
		"2 + 2 = 4",
		"Square of 5: 25",
		"Current date and time: 2024-03-09 14:05:07.123456",
	} {
		assert.Contains(t, text, want)
	}
	assert.True(t, strings.HasSuffix(text, "Before function\nHello, Python Learner!\nAfter function\n"),
		"summary should close the sheet")
}

func TestDefault_SingleSummary(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	var out bytes.Buffer
	r := NewRunner(reg, Env{Out: &out, Now: func() time.Time { return pinned }})
	require.NoError(t, r.Run(context.Background(), SummaryName))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "Go Cheat Sheet Examples:", lines[2])
	assert.Equal(t, strings.Repeat("-", 30), lines[3])
}

func TestSummary_DictionarySortedAndNoted(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)
	s := reg.Get(SummaryName)
	require.NotNil(t, s)

	out, err := NewRunner(reg, Env{Now: func() time.Time { return pinned }}).Capture(context.Background(), s)
	require.NoError(t, err)
	assert.Contains(t, out, "Dictionary: map[age:30 city:New York name:John]\n")
	assert.Contains(t, s.Notes, "map[age:30 city:New York name:John]")
}
