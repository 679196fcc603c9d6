package state

import (
	"github.com/kk-code-lab/assetpick/internal/asset"
	"github.com/kk-code-lab/assetpick/internal/category"
	"github.com/kk-code-lab/assetpick/internal/search"
)

// DefaultPageSize caps the visible list.
const DefaultPageSize = 32

// Result is one row of the visible list: a canonical record plus the match
// ranges of the current query. Results are rebuilt on every recomputation.
type Result struct {
	Record asset.Record
	Ranges []int
}

// Segments splits the display name for highlighting.
func (r Result) Segments() []search.Segment {
	return search.Segments(r.Record.DisplayName, r.Ranges)
}

// Update is what every pipeline command returns: the new visible list and
// whether the selection must be reset.
type Update struct {
	Visible []Result
	Reset   bool
}

// Pipeline filters the canonical collection by tab, ranks it by query and
// caps the result.
type Pipeline struct {
	tabs     *category.Index
	ranker   search.Ranker
	pageSize int

	records []asset.Record
	query   string
	tab     category.Tab
}

// NewPipeline builds a Pipeline on the All tab with an empty collection.
func NewPipeline(tabs *category.Index, ranker search.Ranker, pageSize int) *Pipeline {
	if tabs == nil {
		tabs = category.Default()
	}
	if ranker == nil {
		ranker = search.FuzzyRanker{}
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pipeline{tabs: tabs, ranker: ranker, pageSize: pageSize, tab: category.All}
}

// OnQueryChanged recomputes for a new query.
func (p *Pipeline) OnQueryChanged(query string) Update {
	p.query = query
	return Update{Visible: p.compute(), Reset: true}
}

// OnTabChanged recomputes for a new tab. Unknown tabs fall back to All.
func (p *Pipeline) OnTabChanged(tab category.Tab) Update {
	if !p.tabs.Has(tab) {
		tab = category.All
	}
	p.tab = tab
	return Update{Visible: p.compute(), Reset: true}
}

// OnDataReloaded replaces the canonical collection and recomputes.
func (p *Pipeline) OnDataReloaded(records []asset.Record) Update {
	p.records = records
	return Update{Visible: p.compute(), Reset: true}
}

// Query returns the current query.
func (p *Pipeline) Query() string { return p.query }

// Tab returns the current tab.
func (p *Pipeline) Tab() category.Tab { return p.tab }

// Tabs returns the tab index.
func (p *Pipeline) Tabs() *category.Index { return p.tabs }

// Records returns the canonical collection.
func (p *Pipeline) Records() []asset.Record { return p.records }

func (p *Pipeline) compute() []Result {
	filtered := p.tabs.Filter(p.records, p.tab)

	if search.IsBlank(p.query) {
		n := min(len(filtered), p.pageSize)
		visible := make([]Result, n)
		for i := 0; i < n; i++ {
			visible[i] = Result{Record: filtered[i]}
		}
		return visible
	}

	names := make([]string, len(filtered))
	for i, rec := range filtered {
		names[i] = rec.DisplayName
	}
	hits := p.ranker.Rank(names, p.query)
	if len(hits) == 0 {
		return nil
	}

	n := min(len(hits), p.pageSize)
	visible := make([]Result, 0, n)
	for _, hit := range hits[:n] {
		if hit.Index < 0 || hit.Index >= len(filtered) {
			continue
		}
		visible = append(visible, Result{Record: filtered[hit.Index], Ranges: hit.Ranges})
	}
	return visible
}

// Reset clears the query and returns to the All tab in one recomputation.
func (p *Pipeline) Reset() Update {
	p.query = ""
	p.tab = category.All
	return Update{Visible: p.compute(), Reset: true}
}
