package search

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"report", []string{"report"}},
		{"q3 report", []string{"q3", "report"}},
		{"my_holiday-photo.png", []string{"my", "holiday", "photo", "png"}},
		{"fooBar", []string{"foo", "Bar"}},
		{"HTMLParser", []string{"HTMLParser"}},
		{"don't stop", []string{"don't", "stop"}},
		{"we’re here", []string{"we’re", "here"}},
		{"rock'n'roll", []string{"rock'n", "roll"}},
		{"o'brien", []string{"o", "brien"}},
		{"'quoted'", []string{"quoted"}},
		{"Zürich_2024", []string{"Zürich", "2024"}},
		{"日本語ファイル.pdf", []string{"日本語ファイル", "pdf"}},
		{"...", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Tokenize(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Tokenize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPattern(t *testing.T) {
	if got := Pattern("  q3 / report "); got != "q3report" {
		t.Fatalf("Pattern = %q", got)
	}
	if got := Pattern("--"); got != "" {
		t.Fatalf("Pattern(--) = %q, want empty", got)
	}
	if !IsBlank(" \t ") || IsBlank(" a ") {
		t.Fatalf("IsBlank mismatch")
	}
}
