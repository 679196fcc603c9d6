package search

import (
	"sort"
	"unicode/utf8"
)

// Segment is a slice of a display name that is either inside or outside a
// match.
type Segment struct {
	Text  string
	Match bool
}

// Segments slices name by the boundary offsets in ranges. Offsets alternate
// outside, inside, outside... starting at offset 0. When the last offset does
// not reach the end of name the remainder is appended as an outside segment,
// so concatenating the segments always yields name.
func Segments(name string, ranges []int) []Segment {
	if len(ranges) == 0 {
		if name == "" {
			return nil
		}
		return []Segment{{Text: name}}
	}

	segments := make([]Segment, 0, len(ranges)+1)
	prev := 0
	for n, boundary := range ranges {
		if boundary < prev {
			boundary = prev
		}
		if boundary > len(name) {
			boundary = len(name)
		}
		if boundary > prev {
			segments = append(segments, Segment{Text: name[prev:boundary], Match: n%2 == 1})
		}
		prev = boundary
	}
	if prev < len(name) {
		segments = append(segments, Segment{Text: name[prev:]})
	}
	return segments
}

// RangesFromByteIndexes turns the byte offsets of matched runes into a flat
// [start, end, start, end...] boundary list, merging adjacent runes.
func RangesFromByteIndexes(name string, indexes []int) []int {
	if len(indexes) == 0 {
		return nil
	}
	sorted := indexes
	if !sort.IntsAreSorted(sorted) {
		sorted = append([]int(nil), indexes...)
		sort.Ints(sorted)
	}

	ranges := make([]int, 0, 2*len(sorted))
	for _, idx := range sorted {
		if idx < 0 || idx >= len(name) {
			continue
		}
		_, size := utf8.DecodeRuneInString(name[idx:])
		end := idx + size
		if n := len(ranges); n > 0 && ranges[n-1] >= idx {
			if end > ranges[n-1] {
				ranges[n-1] = end
			}
			continue
		}
		ranges = append(ranges, idx, end)
	}
	return ranges
}

// RangesFromRuneIndexes is RangesFromByteIndexes for rune positions.
func RangesFromRuneIndexes(name string, positions []int) []int {
	if len(positions) == 0 {
		return nil
	}
	offsets := make([]int, 0, utf8.RuneCountInString(name))
	for i := range name {
		offsets = append(offsets, i)
	}
	indexes := make([]int, 0, len(positions))
	for _, p := range positions {
		if p >= 0 && p < len(offsets) {
			indexes = append(indexes, offsets[p])
		}
	}
	return RangesFromByteIndexes(name, indexes)
}
