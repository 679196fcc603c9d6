package state

import (
	"time"

	"github.com/kk-code-lab/assetpick/internal/asset"
	"github.com/kk-code-lab/assetpick/internal/category"
)

// Rows the renderer reserves around the list: query, tabs, status and footer.
const (
	HeaderRows = 2
	FooterRows = 2
)

// Committer receives the record the user picked. keepOpen reports whether the
// picker stays visible afterwards.
type Committer interface {
	Commit(rec asset.Record) (keepOpen bool, err error)
}

// AppState is the single source of truth
type AppState struct {
	// Session
	Shown     bool
	Query     string
	Tab       category.Tab
	Visible   []Result
	Selection Selection

	// Viewport
	ScrollOffset int
	ScreenWidth  int
	ScreenHeight int
	HelpVisible  bool

	// Collection lifecycle
	Root       string
	Loading    bool
	Loaded     bool
	Stale      bool
	LoadedAt   time.Time
	TotalBytes int64

	// Collaborators
	Loader    AssetLoader
	Committer Committer

	// CommitVerb names what Enter does: insert, copy or open.
	CommitVerb string

	// Status line
	LastCommit     string
	LastCommitVerb string
	LastCommitTime time.Time
	LastError      error

	pipeline       *Pipeline
	loadToken      int
	dispatchAction func(Action)
}

// NewAppState builds a hidden, never-loaded session around pipeline.
func NewAppState(pipeline *Pipeline, loader AssetLoader, committer Committer) *AppState {
	if pipeline == nil {
		pipeline = NewPipeline(nil, nil, 0)
	}
	return &AppState{
		Tab:       category.All,
		Loader:    loader,
		Committer: committer,
		pipeline:  pipeline,
	}
}

// SetDispatch exposes the reducer dispatch hook to other packages.
func (s *AppState) SetDispatch(fn func(Action)) {
	s.dispatchAction = fn
}

// Pipeline returns the result pipeline backing the session.
func (s *AppState) Pipeline() *Pipeline {
	if s.pipeline == nil {
		s.pipeline = NewPipeline(nil, nil, 0)
	}
	return s.pipeline
}

// Tabs returns the tab index.
func (s *AppState) Tabs() *category.Index {
	return s.Pipeline().Tabs()
}

// Records returns the canonical collection.
func (s *AppState) Records() []asset.Record {
	return s.Pipeline().Records()
}

// TabCount returns how many records a tab holds before ranking.
func (s *AppState) TabCount(tab category.Tab) int {
	return s.Tabs().Count(s.Records(), tab)
}

// ActiveResult returns the selected row of the visible list.
func (s *AppState) ActiveResult() (Result, bool) {
	idx := s.Selection.Index()
	if idx < 0 || idx >= len(s.Visible) {
		return Result{}, false
	}
	return s.Visible[idx], true
}

// ListHeight is the number of rows available to the result list.
func (s *AppState) ListHeight() int {
	h := s.ScreenHeight - HeaderRows - FooterRows
	if h < 1 {
		return 1
	}
	return h
}

// Empty reports that a loaded collection produced no visible rows.
func (s *AppState) Empty() bool {
	return len(s.Visible) == 0 && !s.Loading
}

func (s *AppState) applyUpdate(u Update) {
	s.Visible = u.Visible
	s.Query = s.Pipeline().Query()
	s.Tab = s.Pipeline().Tab()
	if u.Reset {
		s.Selection.Reset(len(u.Visible))
		s.ScrollOffset = 0
	}
}

func (s *AppState) updateScrollVisibility() {
	idx := s.Selection.Index()
	visibleLines := s.ListHeight()

	if idx < s.ScrollOffset {
		s.ScrollOffset = idx
	} else if idx >= s.ScrollOffset+visibleLines {
		s.ScrollOffset = idx - visibleLines + 1
	}

	maxOffset := len(s.Visible) - visibleLines
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
	if s.ScrollOffset > maxOffset {
		s.ScrollOffset = maxOffset
	}
}
