package enumerate

import (
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/strfind/pkg/errors"
	"github.com/arthur-debert/strfind/pkg/utils"
	"github.com/bmatcuk/doublestar/v4"
)

// NamePattern is a compiled, case-insensitive file name glob.
type NamePattern struct {
	raw      string
	expanded string
}

// CompileNamePattern validates pattern and prepares it for matching.
// Supported syntax is a single path segment: *, ?, [class] and {alt,alt}.
func CompileNamePattern(pattern string) (NamePattern, error) {
	if !doublestar.ValidatePattern(pattern) {
		return NamePattern{}, errors.Newf(errors.ErrInvalidInput, "invalid file name pattern %q", pattern).
			WithDetail("pattern", pattern)
	}
	return NamePattern{raw: pattern, expanded: expandCase(pattern)}, nil
}

// String returns the pattern as given
func (p NamePattern) String() string {
	return p.raw
}

// Match reports whether the file name matches, ignoring case.
func (p NamePattern) Match(name string) bool {
	if p.raw == "*" {
		return true
	}
	// The pattern is validated up front, so the error is always nil.
	ok, _ := doublestar.Match(p.expanded, name)
	return ok
}

// expandCase rewrites a glob so that a case-sensitive match of the result
// equals a simple-folding match of the original. Literal letters become
// classes of their fold orbit, and classes gain the case variants of their
// members. Ranges keep their endpoints, so [0-z] still covers '_'.
func expandCase(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		r, size := utf8.DecodeRuneInString(pattern[i:])
		switch {
		case r == '\\' && i+size < len(pattern):
			lit, litSize := utf8.DecodeRuneInString(pattern[i+size:])
			writeLiteral(&b, pattern[i:i+size+litSize], lit)
			i += size + litSize
		case r == '[':
			i += expandClass(&b, pattern[i:])
		default:
			writeLiteral(&b, pattern[i:i+size], r)
			i += size
		}
	}
	return b.String()
}

// writeLiteral emits src unchanged, or a class of r's fold orbit when r has
// case variants
func writeLiteral(b *strings.Builder, src string, r rune) {
	orbit := utils.FoldOrbit(r)
	if len(orbit) == 1 {
		b.WriteString(src)
		return
	}
	b.WriteByte('[')
	for _, f := range orbit {
		writeClassRune(b, f)
	}
	b.WriteByte(']')
}

// expandClass copies the class at the start of s, adding the case variants
// its members lack, and returns the number of bytes consumed. Class syntax
// follows doublestar: an optional ! or ^, then chars and lo-hi ranges, with
// backslash escapes, up to the first unescaped ].
func expandClass(b *strings.Builder, s string) int {
	i := 1
	if i < len(s) && (s[i] == '!' || s[i] == '^') {
		i++
	}

	var extra []rune
	seen := map[rune]bool{}
	add := func(lo, hi rune) {
		for r := lo; r <= hi; r++ {
			for _, f := range utils.FoldOrbit(r)[1:] {
				if (f < lo || f > hi) && !seen[f] {
					seen[f] = true
					extra = append(extra, f)
				}
			}
		}
	}

	for i < len(s) && s[i] != ']' {
		lo, n := classRune(s[i:])
		i += n
		if i+1 < len(s) && s[i] == '-' && s[i+1] != ']' {
			hi, m := classRune(s[i+1:])
			i += 1 + m
			add(lo, hi)
			continue
		}
		add(lo, lo)
	}

	if i >= len(s) {
		// Unterminated; validation rejects this before we get here
		b.WriteString(s)
		return len(s)
	}

	b.WriteString(s[:i])
	for _, r := range extra {
		writeClassRune(b, r)
	}
	b.WriteByte(']')
	return i + 1
}

// classRune decodes one possibly escaped class member
func classRune(s string) (rune, int) {
	if s[0] == '\\' && len(s) > 1 {
		r, n := utf8.DecodeRuneInString(s[1:])
		return r, 1 + n
	}
	return utf8.DecodeRuneInString(s)
}

func writeClassRune(b *strings.Builder, r rune) {
	switch r {
	case '\\', ']', '[', '-', '!', '^':
		b.WriteByte('\\')
	}
	b.WriteRune(r)
}
