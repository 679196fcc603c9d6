package state

import (
	"fmt"
	"testing"
	"time"

	"github.com/kk-code-lab/assetpick/internal/asset"
	"github.com/kk-code-lab/assetpick/internal/category"
	"github.com/kk-code-lab/assetpick/internal/search"
)

// testRecords builds canonical records whose base order matches names.
func testRecords(names ...string) []asset.Record {
	n := asset.NewNormalizer(asset.NoiseOptions{}, asset.NewLocaleLabeler("en-US", time.UTC))
	raws := make([]asset.RawRecord, len(names))
	for i, name := range names {
		raws[i] = asset.RawRecord{
			Path:           "/g/assets/" + name,
			Size:           4096,
			ModifiedMillis: int64(len(names)-i) * 1000,
		}
	}
	return n.NormalizeAll(raws)
}

// syncLoader answers every Start immediately, or holds requests when hold is set.
type syncLoader struct {
	records []asset.Record
	err     error
	hold    bool

	starts    int
	pending   []AssetLoadRequest
	cancelled []int
}

func (l *syncLoader) Start(req AssetLoadRequest) {
	l.starts++
	if l.hold {
		l.pending = append(l.pending, req)
		return
	}
	req.Callback(AssetLoadResult{Token: req.Token, Records: l.records, Err: l.err})
}

func (l *syncLoader) Cancel(token int) {
	l.cancelled = append(l.cancelled, token)
}

func (l *syncLoader) release() {
	pending := l.pending
	l.pending = nil
	for _, req := range pending {
		req.Callback(AssetLoadResult{Token: req.Token, Records: l.records, Err: l.err})
	}
}

type recordingCommitter struct {
	keepOpen  bool
	err       error
	committed []asset.Record
}

func (c *recordingCommitter) Commit(rec asset.Record) (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	c.committed = append(c.committed, rec)
	return c.keepOpen, nil
}

// harness runs the reducer the way the event loop does: actions dispatched
// from callbacks are queued and reduced after the current action.
type harness struct {
	t         *testing.T
	state     *AppState
	reducer   *StateReducer
	loader    *syncLoader
	committer *recordingCommitter
	queue     []Action
	errs      []error
}

func newHarness(t *testing.T, records []asset.Record) *harness {
	t.Helper()
	h := &harness{
		t:         t,
		reducer:   NewStateReducer(),
		loader:    &syncLoader{records: records},
		committer: &recordingCommitter{},
	}
	pipeline := NewPipeline(category.Default(), search.FuzzyRanker{}, DefaultPageSize)
	h.state = NewAppState(pipeline, h.loader, h.committer)
	h.state.ScreenWidth = 80
	h.state.ScreenHeight = 24
	h.state.SetDispatch(func(a Action) { h.queue = append(h.queue, a) })
	return h
}

func (h *harness) dispatch(actions ...Action) {
	h.t.Helper()
	h.queue = append(h.queue, actions...)
	for len(h.queue) > 0 {
		next := h.queue[0]
		h.queue = h.queue[1:]
		if _, err := h.reducer.Reduce(h.state, next); err != nil {
			h.errs = append(h.errs, err)
		}
	}
}

func (h *harness) typeQuery(q string) {
	h.t.Helper()
	for _, ch := range q {
		h.dispatch(QueryCharAction{Char: ch})
	}
}

func visibleNames(results []Result) []string {
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Record.DisplayName
	}
	return names
}

func numberedNames(prefix, ext string, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s-%c%c.%s", prefix, 'a'+i/26, 'a'+i%26, ext)
	}
	return names
}
