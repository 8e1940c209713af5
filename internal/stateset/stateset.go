// Package stateset implements sets of dense integer state ids shared by the
// NFA and DFA representations.
//
// Sets are plain hash maps for hot-path membership checks. Wherever iteration
// order matters (DFA state numbering, graph emission, subset identity) callers
// go through Sorted or Key, which impose the canonical ascending order.
package stateset

import (
	"sort"
	"strconv"
	"strings"
)

// Set is an unordered collection of automaton state ids.
type Set map[int]struct{}

// New creates a set containing the given ids.
func New(ids ...int) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts a single id.
func (s Set) Add(id int) {
	s[id] = struct{}{}
}

// AddAll inserts every id from other.
func (s Set) AddAll(other Set) {
	for id := range other {
		s[id] = struct{}{}
	}
}

// Has reports whether id is in the set.
func (s Set) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of ids in the set.
func (s Set) Len() int {
	return len(s)
}

// Empty reports whether the set has no ids.
func (s Set) Empty() bool {
	return len(s) == 0
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// Equal reports whether both sets contain exactly the same ids.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// Intersects reports whether the sets share at least one id.
func (s Set) Intersects(other Set) bool {
	if len(other) < len(s) {
		s, other = other, s
	}
	for id := range s {
		if other.Has(id) {
			return true
		}
	}
	return false
}

// Max returns the largest id in the set, or -1 when the set is empty.
func (s Set) Max() int {
	max := -1
	for id := range s {
		if id > max {
			max = id
		}
	}
	return max
}

// Sorted returns the ids in ascending order.
func (s Set) Sorted() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Shift returns a copy of the set with every id increased by n.
func (s Set) Shift(n int) Set {
	c := make(Set, len(s))
	for id := range s {
		c[id+n] = struct{}{}
	}
	return c
}

// Key returns a canonical string form of the set contents, suitable for use
// as a map key. Two sets produce the same key iff they are Equal.
func (s Set) Key() string {
	ids := s.Sorted()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
