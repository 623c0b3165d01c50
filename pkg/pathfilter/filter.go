// Package pathfilter decides which directory subtrees a search skips.
package pathfilter

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/strfind/pkg/utils"
)

// ExcludeSet is a set of directory names compared case-insensitively.
// The zero value is an empty set.
type ExcludeSet struct {
	folded map[string]struct{}
	names  []string
}

// NewExcludeSet builds a set from names, ignoring blank entries.
func NewExcludeSet(names ...string) ExcludeSet {
	set := ExcludeSet{folded: make(map[string]struct{}, len(names))}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := utils.FoldCase(name)
		if _, seen := set.folded[key]; seen {
			continue
		}
		set.folded[key] = struct{}{}
		set.names = append(set.names, name)
	}
	return set
}

// Contains reports whether directoryName equals any entry, ignoring case.
func (s ExcludeSet) Contains(directoryName string) bool {
	if len(s.folded) == 0 {
		return false
	}
	_, ok := s.folded[utils.FoldCase(directoryName)]
	return ok
}

// Len returns the number of distinct entries
func (s ExcludeSet) Len() int {
	return len(s.names)
}

// Names returns the entries in insertion order, as given
func (s ExcludeSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// IsExcluded reports whether the subtree rooted at a directory named
// directoryName is excluded by excludeSet.
func IsExcluded(directoryName string, excludeSet ExcludeSet) bool {
	return excludeSet.Contains(directoryName)
}

// SplitNames breaks comma- or whitespace-delimited lists of names into
// individual names, dropping empty ones.
func SplitNames(values ...string) []string {
	var names []string
	for _, v := range values {
		names = append(names, strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})...)
	}
	return names
}
