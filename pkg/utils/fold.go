package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FoldRune maps r to the canonical member of its simple case folding orbit.
// Two runes are equal under simple case folding iff their FoldRune values are equal.
func FoldRune(r rune) rune {
	if r < utf8.RuneSelf {
		if 'a' <= r && r <= 'z' {
			return r - 'a' + 'A'
		}
		// Upper-case ASCII letters are the smallest member of their orbit.
		return r
	}

	canonical := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < canonical {
			canonical = f
		}
	}
	return canonical
}

// FoldCase applies FoldRune to every rune of s. Folding is rune-for-rune, so
// a substring of s folds to a substring of FoldCase(s).
func FoldCase(s string) string {
	return strings.Map(FoldRune, s)
}

// FoldOrbit returns every rune equal to r under simple case folding,
// starting with r itself. Runes without case variants yield a single element.
func FoldOrbit(r rune) []rune {
	orbit := []rune{r}
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		orbit = append(orbit, f)
	}
	return orbit
}
