package textutil

import (
	"strings"
	"testing"
)

func TestSanitizeTerminalText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain name", input: "cover-final.png", want: "cover-final.png"},
		{name: "unicode name", input: "zdjęcie łódź.jpg", want: "zdjęcie łódź.jpg"},
		{name: "escape sequence", input: "bad\x1b[31m.png", want: "bad?[31m.png"},
		{name: "line breaks", input: "two\nlines\r\tname", want: "two lines  name"},
		{name: "delete", input: "a\x7fb", want: "a?b"},
		{name: "bidi override", input: "photo\u202egnp.exe", want: "photo⟪U+202E⟫gnp.exe"},
		{name: "zero width space", input: "a\u200bb", want: "a⟪U+200B⟫b"},
		{name: "byte order mark", input: "\ufeffnotes.pdf", want: "⟪U+FEFF⟫notes.pdf"},
		{name: "line separator", input: "a\u2028b", want: "a⟪U+2028⟫b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeTerminalText(tt.input); got != tt.want {
				t.Fatalf("SanitizeTerminalText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeTerminalTextNeverEmitsControls(t *testing.T) {
	var b strings.Builder
	for r := rune(0); r < 0x80; r++ {
		b.WriteRune(r)
	}
	for _, r := range SanitizeTerminalText(b.String()) {
		if r < 0x20 || r == 0x7f {
			t.Fatalf("control rune %U left in output", r)
		}
	}
}
