// Package sortedset provides an ordered, duplicate-free collection of strings.
//
// A Set keeps its values sorted by byte-wise string comparison. Values are
// ascending until Reverse is called, after which the set is descending and
// further inserts keep the descending order.
package sortedset

import (
	"slices"
	"strings"
)

// Set is an ordered set of strings. The zero value is an empty ascending set.
type Set struct {
	values     []string
	descending bool
}

// New creates an empty ascending set.
func New() *Set {
	return &Set{}
}

// compare orders a against b according to the current direction.
func (s *Set) compare(a, b string) int {
	if s.descending {
		return strings.Compare(b, a)
	}
	return strings.Compare(a, b)
}

// Insert adds v at its sorted position. Inserting a value that is already
// present is a no-op. Reports whether v was added.
func (s *Set) Insert(v string) bool {
	i, found := slices.BinarySearchFunc(s.values, v, s.compare)
	if found {
		return false
	}
	s.values = slices.Insert(s.values, i, v)
	return true
}

// Reverse flips the set's order in place.
func (s *Set) Reverse() {
	slices.Reverse(s.values)
	s.descending = !s.descending
}

// Len returns the number of values.
func (s *Set) Len() int {
	return len(s.values)
}

// Values returns a copy of the values in set order.
func (s *Set) Values() []string {
	return slices.Clone(s.values)
}

// All iterates the values in set order.
func (s *Set) All(yield func(string) bool) {
	for _, v := range s.values {
		if !yield(v) {
			return
		}
	}
}
