package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// maxContractionSuffix is the longest letter run after an apostrophe that
// stays attached to the preceding word ("don't", "we're").
const maxContractionSuffix = 2

// Tokenize splits s into words. Words are runs of Unicode letters and digits;
// a lower-to-upper case transition starts a new word, and an apostrophe
// followed by a one or two letter suffix stays inside the word.
func Tokenize(s string) []string {
	runes := []rune(norm.NFC.String(s))
	var words []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if isWordRune(r) {
			if len(cur) > 0 && unicode.IsUpper(r) && unicode.IsLower(cur[len(cur)-1]) {
				flush()
			}
			cur = append(cur, r)
			continue
		}
		if isApostrophe(r) && len(cur) > 0 && unicode.IsLetter(cur[len(cur)-1]) {
			if n := contractionLength(runes, i+1); n > 0 {
				cur = append(cur, runes[i:i+1+n]...)
				i += n
				continue
			}
		}
		flush()
	}
	flush()
	return words
}

// Pattern builds the library pattern for query: its words joined in order.
// Blank or punctuation-only queries yield "".
func Pattern(query string) string {
	return strings.Join(Tokenize(query), "")
}

// IsBlank reports whether query has no non-space characters.
func IsBlank(query string) bool {
	return strings.TrimSpace(query) == ""
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

func contractionLength(runes []rune, start int) int {
	n := 0
	for j := start; j < len(runes) && unicode.IsLetter(runes[j]); j++ {
		n++
		if n > maxContractionSuffix {
			return 0
		}
	}
	return n
}
