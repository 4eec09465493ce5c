// Package set implements an unordered collection of unique values.
package set

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Set is an unordered collection without duplicates. The zero value is an
// empty set ready to use.
type Set[T cmp.Ordered] struct {
	m map[T]struct{}
}

// New returns an empty set.
func New[T cmp.Ordered]() *Set[T] {
	return &Set[T]{m: make(map[T]struct{})}
}

// Of returns a set holding items. Duplicates collapse.
func Of[T cmp.Ordered](items ...T) *Set[T] {
	s := &Set[T]{m: make(map[T]struct{}, len(items))}
	for _, v := range items {
		s.m[v] = struct{}{}
	}
	return s
}

// Add inserts v. Adding an existing member is a no-op.
func (s *Set[T]) Add(v T) {
	if s.m == nil {
		s.m = make(map[T]struct{})
	}
	s.m[v] = struct{}{}
}

// Discard removes v if present and does nothing otherwise.
func (s *Set[T]) Discard(v T) {
	delete(s.m, v)
}

// Has reports membership.
func (s *Set[T]) Has(v T) bool {
	_, ok := s.m[v]
	return ok
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	return len(s.m)
}

// Union returns members of either set.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	out := &Set[T]{m: make(map[T]struct{}, len(s.m)+len(other.m))}
	for v := range s.m {
		out.m[v] = struct{}{}
	}
	for v := range other.m {
		out.m[v] = struct{}{}
	}
	return out
}

// Intersection returns members of both sets.
func (s *Set[T]) Intersection(other *Set[T]) *Set[T] {
	out := New[T]()
	for v := range s.m {
		if other.Has(v) {
			out.m[v] = struct{}{}
		}
	}
	return out
}

// Difference returns members of s that are not in other.
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	out := New[T]()
	for v := range s.m {
		if !other.Has(v) {
			out.m[v] = struct{}{}
		}
	}
	return out
}

// SymmetricDifference returns members of exactly one of the sets.
func (s *Set[T]) SymmetricDifference(other *Set[T]) *Set[T] {
	return s.Difference(other).Union(other.Difference(s))
}

// Equal reports whether both sets hold the same members.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if len(s.m) != len(other.m) {
		return false
	}
	for v := range s.m {
		if !other.Has(v) {
			return false
		}
	}
	return true
}

// Sorted returns the members in ascending order.
func (s *Set[T]) Sorted() []T {
	out := make([]T, 0, len(s.m))
	for v := range s.m {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// String renders the set as {a, b, c} in ascending order.
func (s *Set[T]) String() string {
	items := s.Sorted()
	parts := make([]string, len(items))
	for i, v := range items {
		parts[i] = fmt.Sprint(v)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
