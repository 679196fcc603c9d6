// Package search ranks display names against a query with a fuzzy-matching
// library and computes highlight ranges for the hits.
package search

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/unicode/norm"
)

// Hit is one ranked result: the position of the name in the corpus and its
// match boundaries (see Segments).
type Hit struct {
	Index  int
	Ranges []int
}

// Ranker orders a corpus of names by relevance to query. It returns nil for a
// blank query or when nothing matches.
type Ranker interface {
	Rank(corpus []string, query string) []Hit
}

// Engine names a Ranker implementation.
type Engine string

const (
	EngineFuzzy Engine = "fuzzy"
	EngineFzf   Engine = "fzf"
)

// NewRanker returns the Ranker for engine; "" selects EngineFuzzy.
func NewRanker(engine Engine) (Ranker, error) {
	switch Engine(strings.ToLower(string(engine))) {
	case "", EngineFuzzy:
		return FuzzyRanker{}, nil
	case EngineFzf:
		return NewFzfRanker(), nil
	default:
		return nil, fmt.Errorf("unknown matcher %q", engine)
	}
}

// FuzzyRanker ranks with github.com/sahilm/fuzzy. Matching is
// case-insensitive; equal scores keep corpus order.
type FuzzyRanker struct{}

type nameSource []string

func (s nameSource) String(i int) string { return s[i] }
func (s nameSource) Len() int            { return len(s) }

// Rank implements Ranker.
func (FuzzyRanker) Rank(corpus []string, query string) []Hit {
	pattern := norm.NFC.String(Pattern(query))
	if pattern == "" || len(corpus) == 0 {
		return nil
	}

	matches := fuzzy.FindFrom(pattern, nameSource(corpus))
	if len(matches) == 0 {
		return nil
	}
	hits := make([]Hit, 0, len(matches))
	for _, m := range matches {
		hits = append(hits, Hit{
			Index:  m.Index,
			Ranges: RangesFromByteIndexes(corpus[m.Index], m.MatchedIndexes),
		})
	}
	return hits
}
