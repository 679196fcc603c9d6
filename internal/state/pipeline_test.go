package state

import (
	"reflect"
	"testing"

	"github.com/kk-code-lab/assetpick/internal/category"
	"github.com/kk-code-lab/assetpick/internal/search"
)

func newTestPipeline() *Pipeline {
	return NewPipeline(category.Default(), search.FuzzyRanker{}, DefaultPageSize)
}

func TestPipelineImagesTabKeepsBaseOrder(t *testing.T) {
	p := newTestPipeline()
	p.OnDataReloaded(testRecords("newest.png", "manual.pdf", "older.png", "song.mp3"))

	u := p.OnTabChanged("images")
	if !u.Reset {
		t.Fatalf("tab change must reset the selection")
	}
	got := visibleNames(u.Visible)
	want := []string{"newest.png", "older.png"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("images tab = %v, want %v", got, want)
	}
}

func TestPipelineBlankQueryIsIdentity(t *testing.T) {
	p := newTestPipeline()
	u := p.OnDataReloaded(testRecords("a.png", "b.pdf", "c"))
	if got := visibleNames(u.Visible); !reflect.DeepEqual(got, []string{"a.png", "b.pdf", "c"}) {
		t.Fatalf("blank query should keep base order, got %v", got)
	}
	for _, r := range u.Visible {
		if r.Ranges != nil {
			t.Fatalf("blank query should not produce ranges, got %v", r.Ranges)
		}
	}

	u = p.OnQueryChanged("  ")
	if len(u.Visible) != 3 {
		t.Fatalf("whitespace query should behave as blank, got %d rows", len(u.Visible))
	}
}

func TestPipelineNoResults(t *testing.T) {
	p := newTestPipeline()
	p.OnDataReloaded(testRecords("report.pdf", "xyz.png"))

	u := p.OnQueryChanged("qqq")
	if len(u.Visible) != 0 || !u.Reset {
		t.Fatalf("expected empty visible list with reset, got %+v", u)
	}
}

func TestPipelineCapAppliesAfterRanking(t *testing.T) {
	names := append(numberedNames("zzz", "png", 40), "report.pdf")
	p := newTestPipeline()
	u := p.OnDataReloaded(testRecords(names...))
	if len(u.Visible) != DefaultPageSize {
		t.Fatalf("blank query should cap to %d, got %d", DefaultPageSize, len(u.Visible))
	}

	u = p.OnQueryChanged("rpt")
	got := visibleNames(u.Visible)
	if !reflect.DeepEqual(got, []string{"report.pdf"}) {
		t.Fatalf("oldest matching record should survive the cap, got %v", got)
	}
}

func TestPipelineRankedRangesRebuildName(t *testing.T) {
	p := newTestPipeline()
	p.OnDataReloaded(testRecords("report.pdf", "repeat.txt", "xyz.png"))

	u := p.OnQueryChanged("rpt")
	for _, r := range u.Visible {
		if r.Record.DisplayName == "xyz.png" {
			t.Fatalf("xyz.png should not match rpt")
		}
		var rebuilt string
		for _, seg := range r.Segments() {
			rebuilt += seg.Text
		}
		if rebuilt != r.Record.DisplayName {
			t.Fatalf("segments rebuilt %q, want %q", rebuilt, r.Record.DisplayName)
		}
	}
}

func TestPipelineRecomputationsDoNotShareResults(t *testing.T) {
	p := newTestPipeline()
	p.OnDataReloaded(testRecords("report.pdf"))

	first := p.OnQueryChanged("rep")
	second := p.OnQueryChanged("rep")
	if len(first.Visible) != 1 || len(second.Visible) != 1 {
		t.Fatalf("expected one row each, got %d and %d", len(first.Visible), len(second.Visible))
	}
	first.Visible[0].Ranges[0] = 99
	if second.Visible[0].Ranges[0] == 99 {
		t.Fatalf("recomputations must return fresh projections")
	}
	if p.Records()[0].DisplayName != "report.pdf" {
		t.Fatalf("canonical record changed: %+v", p.Records()[0])
	}
}

func TestPipelineUnknownTabFallsBackToAll(t *testing.T) {
	p := newTestPipeline()
	p.OnDataReloaded(testRecords("a.png", "b.pdf"))

	u := p.OnTabChanged("videos")
	if p.Tab() != category.All || len(u.Visible) != 2 {
		t.Fatalf("expected All tab with 2 rows, got %q with %d", p.Tab(), len(u.Visible))
	}
}

func TestPipelineReset(t *testing.T) {
	p := newTestPipeline()
	p.OnDataReloaded(testRecords("a.png", "b.pdf"))
	p.OnTabChanged("books")
	p.OnQueryChanged("b")

	u := p.Reset()
	if p.Query() != "" || p.Tab() != category.All || len(u.Visible) != 2 || !u.Reset {
		t.Fatalf("unexpected reset result: query=%q tab=%q rows=%d", p.Query(), p.Tab(), len(u.Visible))
	}
}
