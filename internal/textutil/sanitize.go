package textutil

import (
	"fmt"
	"strings"
	"unicode"
)

// SanitizeTerminalText makes file names and queries safe to draw. Control
// characters become '?', line breaks and tabs become spaces, and invisible
// format characters such as bidi overrides are spelled out as ⟪U+XXXX⟫.
func SanitizeTerminalText(text string) string {
	if strings.IndexFunc(text, needsSanitizing) < 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		case unicode.IsControl(r):
			b.WriteByte('?')
		case isFormatRune(r):
			fmt.Fprintf(&b, "⟪U+%04X⟫", r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsSanitizing(r rune) bool {
	return unicode.IsControl(r) || isFormatRune(r)
}

// isFormatRune covers the Cf category plus the line and paragraph
// separators, which terminals treat as line breaks.
func isFormatRune(r rune) bool {
	return r == 0x2028 || r == 0x2029 || unicode.Is(unicode.Cf, r)
}
