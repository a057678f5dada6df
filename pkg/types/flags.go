package types

import "sort"

// FlagSet is a set of flag names. The zero value is not usable, use NewFlagSet.
type FlagSet map[string]struct{}

// NewFlagSet returns a set holding the given flags
func NewFlagSet(flags ...string) FlagSet {
	s := make(FlagSet, len(flags))
	s.AddAll(flags...)
	return s
}

// Has reports whether flag is in the set
func (s FlagSet) Has(flag string) bool {
	_, ok := s[flag]
	return ok
}

// Add inserts a flag
func (s FlagSet) Add(flag string) {
	s[flag] = struct{}{}
}

// AddAll inserts every flag
func (s FlagSet) AddAll(flags ...string) {
	for _, f := range flags {
		s[f] = struct{}{}
	}
}

// Len returns the number of flags in the set
func (s FlagSet) Len() int {
	return len(s)
}

// Union adds every member of other to s
func (s FlagSet) Union(other FlagSet) {
	for f := range other {
		s[f] = struct{}{}
	}
}

// Difference returns the flags in s that are not in other
func (s FlagSet) Difference(other FlagSet) FlagSet {
	out := make(FlagSet)
	for f := range s {
		if !other.Has(f) {
			out[f] = struct{}{}
		}
	}
	return out
}

// Sorted returns the members in lexical order
func (s FlagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
