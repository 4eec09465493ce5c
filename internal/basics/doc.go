// Package basics holds the core-language sections of the cheat sheet:
// variables, collections, control flow, functions, collection-building
// expressions, strings, builtins, slice and map methods, and static typing.
//
// Each section is a plain function writing to an io.Writer so it can run
// under the CLI or inside a test. Helpers used by a section are exported so
// the printed claims can be checked directly.
package basics
