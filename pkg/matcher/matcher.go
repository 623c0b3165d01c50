// Package matcher decides whether file content matches a search term.
//
// Two strategies are available behind the Matcher interface:
//   - literal: substring search, optionally under Unicode simple case folding
//   - regex: an unanchored search with a .NET-compatible regular expression
//     engine (github.com/dlclark/regexp2)
//
// Both strategies work on the whole decoded text; a match may span lines.
package matcher

import (
	"strings"

	"github.com/arthur-debert/strfind/pkg/errors"
	"github.com/arthur-debert/strfind/pkg/utils"
	"github.com/dlclark/regexp2"
)

// Matcher reports whether content matches a compiled search term
type Matcher interface {
	Match(content string) (bool, error)
	String() string
}

// New compiles term into a Matcher. In regex mode an invalid pattern
// returns an ErrInvalidPattern error; literal mode never fails.
func New(term string, caseInsensitive, useRegex bool) (Matcher, error) {
	if useRegex {
		return NewRegex(term, caseInsensitive)
	}
	return NewLiteral(term, caseInsensitive), nil
}

// Matches is the one-shot form of New followed by Match.
func Matches(content, term string, caseInsensitive, useRegex bool) (bool, error) {
	m, err := New(term, caseInsensitive, useRegex)
	if err != nil {
		return false, err
	}
	return m.Match(content)
}

// LiteralMatcher matches a plain substring
type LiteralMatcher struct {
	term            string
	caseInsensitive bool
}

// NewLiteral creates a literal matcher. The term is folded once up front.
func NewLiteral(term string, caseInsensitive bool) *LiteralMatcher {
	if caseInsensitive {
		term = utils.FoldCase(term)
	}
	return &LiteralMatcher{term: term, caseInsensitive: caseInsensitive}
}

// Match reports whether content contains the term. Comparison is ordinal;
// case-insensitive mode compares runes under simple case folding.
func (m *LiteralMatcher) Match(content string) (bool, error) {
	if m.caseInsensitive {
		return strings.Contains(utils.FoldCase(content), m.term), nil
	}
	return strings.Contains(content, m.term), nil
}

// String describes the matcher for logs
func (m *LiteralMatcher) String() string {
	if m.caseInsensitive {
		return "literal(ignorecase)"
	}
	return "literal"
}

// RegexMatcher matches a regular expression anywhere in the content
type RegexMatcher struct {
	re *regexp2.Regexp
}

// NewRegex compiles pattern with the IgnoreCase option when requested.
func NewRegex(pattern string, caseInsensitive bool) (*RegexMatcher, error) {
	opts := regexp2.None
	if caseInsensitive {
		opts |= regexp2.IgnoreCase
	}

	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidPattern, "invalid regular expression '%s'", pattern).
			WithDetail("pattern", pattern)
	}
	return &RegexMatcher{re: re}, nil
}

// Match reports whether the expression matches anywhere in content.
func (m *RegexMatcher) Match(content string) (bool, error) {
	return m.re.MatchString(content)
}

// String returns the source pattern
func (m *RegexMatcher) String() string {
	return m.re.String()
}
