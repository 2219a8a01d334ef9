package util

import (
	"sort"
	"strings"
)

// StringSet is a map[string]bool with set methods added.
type StringSet map[string]bool

// NewStringSet creates an empty StringSet.
func NewStringSet() StringSet {
	return StringSet{}
}

func (s StringSet) Has(value string) bool {
	_, has := s[value]
	return has
}

func (s StringSet) Add(value string) {
	s[value] = true
}

// Elements returns the elements of s as a slice, alphabetized.
func (s StringSet) Elements() []string {
	if s == nil {
		return nil
	}

	sl := make([]string, 0, len(s))

	for item := range s {
		sl = append(sl, item)
	}

	sort.Strings(sl)
	return sl
}

// String shows the contents of the set. Items are alphabetized.
func (s StringSet) String() string {
	return "{" + strings.Join(s.Elements(), ", ") + "}"
}
