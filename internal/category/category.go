// Package category partitions asset records by file-type tab.
package category

import (
	"fmt"
	"strings"

	"github.com/kk-code-lab/assetpick/internal/asset"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tab identifies a file-type tab.
type Tab string

// All is the identity tab; it is always first.
const All Tab = "all"

// Spec declares a non-all tab.
type Spec struct {
	ID         Tab
	Label      string
	Extensions []string
}

// DefaultSpecs mirrors the built-in tab set.
func DefaultSpecs() []Spec {
	return []Spec{
		{ID: "books", Extensions: []string{"pdf"}},
		{ID: "images", Extensions: []string{"png", "jpg", "jpeg", "webp", "gif"}},
		{ID: "audios", Extensions: []string{"mp3"}},
	}
}

// Index is the fixed, ordered tab set.
type Index struct {
	order  []Tab
	labels map[Tab]string
	exts   map[Tab]map[string]struct{}
}

// NewIndex builds an Index with All followed by specs in order.
func NewIndex(specs []Spec) (*Index, error) {
	title := cases.Title(language.English)
	idx := &Index{
		order:  []Tab{All},
		labels: map[Tab]string{All: "All"},
		exts:   make(map[Tab]map[string]struct{}, len(specs)),
	}
	for _, spec := range specs {
		id := Tab(strings.ToLower(strings.TrimSpace(string(spec.ID))))
		if id == "" {
			return nil, fmt.Errorf("category: tab without id")
		}
		if _, dup := idx.labels[id]; dup {
			return nil, fmt.Errorf("category: duplicate tab %q", id)
		}
		set := make(map[string]struct{}, len(spec.Extensions))
		for _, ext := range spec.Extensions {
			ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
			if ext != "" {
				set[ext] = struct{}{}
			}
		}
		if len(set) == 0 {
			return nil, fmt.Errorf("category: tab %q has no extensions", id)
		}
		label := spec.Label
		if label == "" {
			label = title.String(string(id))
		}
		idx.order = append(idx.order, id)
		idx.labels[id] = label
		idx.exts[id] = set
	}
	return idx, nil
}

// Default returns the Index for DefaultSpecs.
func Default() *Index {
	idx, err := NewIndex(DefaultSpecs())
	if err != nil {
		panic(err)
	}
	return idx
}

// Tabs returns the tab ordering.
func (x *Index) Tabs() []Tab {
	return append([]Tab(nil), x.order...)
}

// Label returns the display label for tab.
func (x *Index) Label(tab Tab) string {
	return x.labels[tab]
}

// Has reports whether tab belongs to the index.
func (x *Index) Has(tab Tab) bool {
	_, ok := x.labels[tab]
	return ok
}

// Accepts reports whether rec belongs in tab.
func (x *Index) Accepts(tab Tab, rec asset.Record) bool {
	if tab == All {
		return true
	}
	set, ok := x.exts[tab]
	if !ok || rec.Extension == "" {
		return false
	}
	_, ok = set[strings.ToLower(rec.Extension)]
	return ok
}

// Filter returns the records of tab, preserving order. All returns records
// unchanged.
func (x *Index) Filter(records []asset.Record, tab Tab) []asset.Record {
	if tab == All {
		return records
	}
	out := make([]asset.Record, 0, len(records))
	for _, rec := range records {
		if x.Accepts(tab, rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Count returns how many records tab would keep.
func (x *Index) Count(records []asset.Record, tab Tab) int {
	if tab == All {
		return len(records)
	}
	n := 0
	for _, rec := range records {
		if x.Accepts(tab, rec) {
			n++
		}
	}
	return n
}

// Next returns the tab after tab, wrapping. Unknown tabs map to All.
func (x *Index) Next(tab Tab) Tab {
	return x.step(tab, 1)
}

// Prev returns the tab before tab, wrapping. Unknown tabs map to All.
func (x *Index) Prev(tab Tab) Tab {
	return x.step(tab, -1)
}

func (x *Index) step(tab Tab, delta int) Tab {
	pos := -1
	for i, t := range x.order {
		if t == tab {
			pos = i
			break
		}
	}
	if pos < 0 {
		return All
	}
	n := len(x.order)
	return x.order[((pos+delta)%n+n)%n]
}
