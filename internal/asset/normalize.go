package asset

import (
	"fmt"
	"path"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultNoiseMinRun is the shortest digit/underscore run treated as noise.
	DefaultNoiseMinRun = 5
	// DefaultNoiseMinNameLength disables the name-length gate.
	DefaultNoiseMinNameLength = 0
)

// NoiseOptions tunes timestamp-noise stripping.
type NoiseOptions struct {
	// MinRun is the minimum length of a [0-9_] run that gets stripped.
	MinRun int
	// MinNameLength gates stripping to names longer than this many runes.
	// Zero strips unconditionally.
	MinNameLength int
	// StripNoiseOnlyNames strips names that are nothing but noise down to
	// their extension (".jpg"). By default such names are shown unchanged.
	StripNoiseOnlyNames bool
}

// Normalizer turns RawRecords into Records.
type Normalizer struct {
	noise       *regexp.Regexp
	minNameLen  int
	stripAll    bool
	timeLabeler TimeLabeler
}

// NewNormalizer builds a Normalizer. A nil labeler falls back to the en-US layout.
func NewNormalizer(opts NoiseOptions, labeler TimeLabeler) *Normalizer {
	if opts.MinRun <= 0 {
		opts.MinRun = DefaultNoiseMinRun
	}
	if opts.MinNameLength < 0 {
		opts.MinNameLength = DefaultNoiseMinNameLength
	}
	if labeler == nil {
		labeler = NewLocaleLabeler("en-US", nil)
	}
	return &Normalizer{
		noise:       regexp.MustCompile(fmt.Sprintf(`[0-9_]{%d,}(\.|$)`, opts.MinRun)),
		minNameLen:  opts.MinNameLength,
		stripAll:    opts.StripNoiseOnlyNames,
		timeLabeler: labeler,
	}
}

// Normalize derives the canonical record for raw. It reports false for records
// without a usable path and for hidden files.
func (n *Normalizer) Normalize(raw RawRecord) (Record, bool) {
	slashed := strings.ReplaceAll(raw.Path, `\`, "/")
	slashed = strings.TrimRight(slashed, "/")
	if slashed == "" {
		return Record{}, false
	}

	original := path.Base(slashed)
	if original == "" || original == "." || original == "/" {
		return Record{}, false
	}
	if strings.HasPrefix(original, ".") {
		return Record{}, false
	}

	display := n.DisplayName(norm.NFC.String(original))
	if strings.HasPrefix(display, ".") && !n.stripAll {
		return Record{}, false
	}

	return Record{
		Path:           raw.Path,
		OriginalName:   original,
		DisplayName:    display,
		Extension:      ExtensionOf(display),
		Size:           raw.Size,
		ModifiedMillis: raw.ModifiedMillis,
		SizeLabel:      FormatSize(raw.Size),
		ModifiedLabel:  n.timeLabeler.Label(raw.Modified()),
	}, true
}

// DisplayName strips noise runs from name. A name that is nothing but noise
// (such as "20240101_120000.jpg") keeps its original form unless
// StripNoiseOnlyNames is set. A name stripped to nothing is never emptied.
func (n *Normalizer) DisplayName(name string) string {
	if n.minNameLen > 0 && utf8.RuneCountInString(name) <= n.minNameLen {
		return name
	}
	stripped := n.noise.ReplaceAllString(name, "${1}")
	if stripped == "" {
		return name
	}
	if !n.stripAll && strings.HasPrefix(stripped, ".") && !strings.HasPrefix(name, ".") {
		return name
	}
	return stripped
}

// NormalizeAll orders raws by descending modification time (unknown sorts as
// oldest) and normalizes them, dropping hidden and malformed records.
func (n *Normalizer) NormalizeAll(raws []RawRecord) []Record {
	sorted := slices.Clone(raws)
	slices.SortStableFunc(sorted, func(a, b RawRecord) int {
		am, bm := max(a.ModifiedMillis, 0), max(b.ModifiedMillis, 0)
		switch {
		case am > bm:
			return -1
		case am < bm:
			return 1
		default:
			return 0
		}
	})

	records := make([]Record, 0, len(sorted))
	for _, raw := range sorted {
		if rec, ok := n.Normalize(raw); ok {
			records = append(records, rec)
		}
	}
	return records
}

// ExtensionOf returns the lower-cased text after the last '.' in name.
func ExtensionOf(name string) string {
	dot := strings.LastIndexByte(name, '.')
	if dot < 0 {
		return ""
	}
	return strings.ToLower(name[dot+1:])
}
