package search

import (
	"sort"
	"strings"
	"sync"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
	"golang.org/x/text/unicode/norm"
)

var fzfInit sync.Once

// FzfRanker ranks with fzf's V2 algorithm using the default scoring scheme.
// A FzfRanker reuses one slab and must not be shared between goroutines.
type FzfRanker struct {
	slab *util.Slab
}

// NewFzfRanker returns a FzfRanker.
func NewFzfRanker() *FzfRanker {
	fzfInit.Do(func() {
		algo.Init("default")
	})
	return &FzfRanker{slab: util.MakeSlab(100*1024, 2048)}
}

type fzfScored struct {
	hit   Hit
	score int
}

// Rank implements Ranker.
func (r *FzfRanker) Rank(corpus []string, query string) []Hit {
	pattern := []rune(strings.ToLower(norm.NFC.String(Pattern(query))))
	if len(pattern) == 0 || len(corpus) == 0 {
		return nil
	}

	scored := make([]fzfScored, 0, len(corpus))
	for i, name := range corpus {
		chars := util.ToChars([]byte(name))
		res, pos := algo.FuzzyMatchV2(false, false, true, &chars, pattern, true, r.slab)
		if res.Start < 0 {
			continue
		}
		var positions []int
		if pos != nil {
			positions = *pos
		}
		scored = append(scored, fzfScored{
			hit:   Hit{Index: i, Ranges: RangesFromRuneIndexes(name, positions)},
			score: res.Score,
		})
	}
	if len(scored) == 0 {
		return nil
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].score > scored[b].score
	})
	hits := make([]Hit, len(scored))
	for i, s := range scored {
		hits[i] = s.hit
	}
	return hits
}
