package entities

import (
	"fmt"
	"slices"
	"strings"
)

const (
	// UniverseSize is the highest number that can be drawn (numbers run 1..UniverseSize)
	UniverseSize = 25

	// DrawSize is the count of numbers in every official draw
	DrawSize = 15

	// MinTicketSize and MaxTicketSize bound the size of a playable ticket
	MinTicketSize = 15
	MaxTicketSize = 23

	// MaxFixedNumbers and MaxExcludedNumbers bound an interactive constraint set
	MaxFixedNumbers    = 18
	MaxExcludedNumbers = 9
)

// NumberSet is a sorted set of distinct numbers. The zero value is an empty set.
// Every constructor and operation returns a canonical (ascending, deduplicated) set.
type NumberSet []int

// NewNumberSet builds a canonical set from arbitrary input
func NewNumberSet(numbers ...int) NumberSet {
	set := make(NumberSet, len(numbers))
	copy(set, numbers)
	slices.Sort(set)
	return slices.Compact(set)
}

// Universe returns the set {1..n}
func Universe(n int) NumberSet {
	set := make(NumberSet, 0, n)
	for i := 1; i <= n; i++ {
		set = append(set, i)
	}
	return set
}

// Len returns the number of elements
func (s NumberSet) Len() int {
	return len(s)
}

// Contains reports whether n is a member of the set
func (s NumberSet) Contains(n int) bool {
	_, found := slices.BinarySearch(s, n)
	return found
}

// Filter returns the members for which keep returns true
func (s NumberSet) Filter(keep func(int) bool) NumberSet {
	out := make(NumberSet, 0, len(s))
	for _, n := range s {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}

// Union returns s ∪ other
func (s NumberSet) Union(other NumberSet) NumberSet {
	out := make(NumberSet, 0, len(s)+len(other))
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		switch {
		case s[i] < other[j]:
			out = append(out, s[i])
			i++
		case s[i] > other[j]:
			out = append(out, other[j])
			j++
		default:
			out = append(out, s[i])
			i++
			j++
		}
	}
	out = append(out, s[i:]...)
	return append(out, other[j:]...)
}

// Intersect returns s ∩ other
func (s NumberSet) Intersect(other NumberSet) NumberSet {
	return s.Filter(other.Contains)
}

// IntersectCount returns |s ∩ other| without allocating
func (s NumberSet) IntersectCount(other NumberSet) int {
	count := 0
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		switch {
		case s[i] < other[j]:
			i++
		case s[i] > other[j]:
			j++
		default:
			count++
			i++
			j++
		}
	}
	return count
}

// Difference returns the members of s that appear in none of the others
func (s NumberSet) Difference(others ...NumberSet) NumberSet {
	return s.Filter(func(n int) bool {
		for _, other := range others {
			if other.Contains(n) {
				return false
			}
		}
		return true
	})
}

// Complement returns the members of {1..universeSize} that are not in s
func (s NumberSet) Complement(universeSize int) NumberSet {
	return Universe(universeSize).Difference(s)
}

// IsSubsetOf reports whether every member of s is in other
func (s NumberSet) IsSubsetOf(other NumberSet) bool {
	return s.IntersectCount(other) == len(s)
}

// IsDisjoint reports whether s and other share no members
func (s NumberSet) IsDisjoint(other NumberSet) bool {
	return s.IntersectCount(other) == 0
}

// Equal reports set equality
func (s NumberSet) Equal(other NumberSet) bool {
	return slices.Equal(s, other)
}

// InRange reports whether every member lies in [1, universeSize]
func (s NumberSet) InRange(universeSize int) bool {
	return len(s) == 0 || (s[0] >= 1 && s[len(s)-1] <= universeSize)
}

// EvenCount returns how many members are even
func (s NumberSet) EvenCount() int {
	count := 0
	for _, n := range s {
		if n%2 == 0 {
			count++
		}
	}
	return count
}

// OddCount returns how many members are odd
func (s NumberSet) OddCount() int {
	return len(s) - s.EvenCount()
}

// Clone returns an independent copy
func (s NumberSet) Clone() NumberSet {
	return slices.Clone(s)
}

// String formats the set as zero-padded two digit numbers, the way tickets are printed
func (s NumberSet) String() string {
	parts := make([]string, len(s))
	for i, n := range s {
		parts[i] = fmt.Sprintf("%02d", n)
	}
	return strings.Join(parts, " ")
}

// Ints returns the members as a plain slice
func (s NumberSet) Ints() []int {
	return []int(s.Clone())
}
