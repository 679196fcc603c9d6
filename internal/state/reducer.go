package state

import (
	"errors"
	"fmt"
	"time"
	"unicode"

	"github.com/kk-code-lab/assetpick/internal/logging"
)

var (
	// ErrNoLoader is returned when a load is requested without a loader.
	ErrNoLoader = errors.New("no asset loader configured")
	// ErrNoCommitter is returned when a row is committed without a committer.
	ErrNoCommitter = errors.New("no committer configured")
)

// StateReducer applies actions to AppState. All calls happen on the event
// loop goroutine.
type StateReducer struct{}

func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {

	// ===== VISIBILITY =====

	case ShowAction:
		if state.Shown {
			return state, nil
		}
		state.Shown = true
		state.HelpVisible = false
		if !state.Loaded || state.Stale {
			return state, r.startLoad(state)
		}
		return state, nil

	case HideAction, QuitAction:
		r.endSession(state)
		return state, nil

	case EscapeAction:
		switch {
		case state.HelpVisible:
			state.HelpVisible = false
		case state.Query != "":
			r.setQuery(state, "")
		default:
			r.endSession(state)
		}
		return state, nil

	// ===== QUERY =====

	case QueryCharAction:
		if !unicode.IsPrint(a.Char) {
			return state, nil
		}
		r.setQuery(state, state.Query+string(a.Char))
		return state, nil

	case QueryBackspaceAction:
		runes := []rune(state.Query)
		if len(runes) == 0 {
			return state, nil
		}
		r.setQuery(state, string(runes[:len(runes)-1]))
		return state, nil

	case QueryDeleteWordAction:
		runes := []rune(state.Query)
		if len(runes) == 0 {
			return state, nil
		}
		r.setQuery(state, string(runes[:previousWordBoundary(runes, len(runes))]))
		return state, nil

	case QueryClearAction:
		r.setQuery(state, "")
		return state, nil

	case QuerySetAction:
		r.setQuery(state, a.Query)
		return state, nil

	// ===== SELECTION =====

	case NavigateDownAction:
		state.Selection.Advance()
		state.updateScrollVisibility()
		return state, nil

	case NavigateUpAction:
		state.Selection.Retreat()
		state.updateScrollVisibility()
		return state, nil

	case SelectIndexAction:
		if state.Selection.Select(a.Index) {
			state.updateScrollVisibility()
		}
		return state, nil

	case CommitAction:
		return state, r.commit(state)

	// ===== TABS =====

	case TabNextAction:
		state.applyUpdate(state.Pipeline().OnTabChanged(state.Tabs().Next(state.Tab)))
		return state, nil

	case TabPrevAction:
		state.applyUpdate(state.Pipeline().OnTabChanged(state.Tabs().Prev(state.Tab)))
		return state, nil

	case TabSelectAction:
		if a.Tab == state.Tab {
			return state, nil
		}
		state.applyUpdate(state.Pipeline().OnTabChanged(a.Tab))
		return state, nil

	// ===== COLLECTION =====

	case ReloadAction:
		return state, r.startLoad(state)

	case InvalidateAction:
		state.Stale = true
		logging.L().Debug("asset collection invalidated", logging.String("reason", a.Reason))
		if a.Close {
			r.endSession(state)
		}
		return state, nil

	case LoadResultAction:
		return state, r.finishLoad(state, a.Result)

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.updateScrollVisibility()
		return state, nil

	case HelpToggleAction:
		state.HelpVisible = !state.HelpVisible
		return state, nil

	case HelpHideAction:
		state.HelpVisible = false
		return state, nil
	}

	return state, nil
}

func (r *StateReducer) setQuery(state *AppState, query string) {
	if query == state.Query {
		return
	}
	state.applyUpdate(state.Pipeline().OnQueryChanged(query))
}

func (r *StateReducer) endSession(state *AppState) {
	r.cancelLoad(state)
	state.Shown = false
	state.HelpVisible = false
	state.applyUpdate(state.Pipeline().Reset())
}

func (r *StateReducer) startLoad(state *AppState) error {
	if state.Loading {
		return nil
	}
	if state.Loader == nil {
		return ErrNoLoader
	}
	dispatch := state.dispatchAction
	if dispatch == nil {
		return fmt.Errorf("load assets: no dispatcher")
	}

	if state.loadToken != 0 {
		state.Loader.Cancel(state.loadToken)
	}
	state.loadToken++
	state.Loading = true
	state.Stale = false
	token := state.loadToken

	logging.L().Debug("loading assets", logging.String("root", state.Root), logging.Int("token", token))
	state.Loader.Start(AssetLoadRequest{
		Token: token,
		Callback: func(res AssetLoadResult) {
			dispatch(LoadResultAction{Result: res})
		},
	})
	return nil
}

// cancelLoad abandons the in-flight listing. The token is advanced so a result
// that races the cancellation is dropped, and the collection is left stale so
// the next Show lists again.
func (r *StateReducer) cancelLoad(state *AppState) {
	if !state.Loading {
		return
	}
	if state.Loader != nil {
		state.Loader.Cancel(state.loadToken)
	}
	logging.L().Debug("asset load cancelled", logging.Int("token", state.loadToken))
	state.loadToken++
	state.Loading = false
	state.Stale = true
}

func (r *StateReducer) finishLoad(state *AppState, res AssetLoadResult) error {
	if res.Token != state.loadToken {
		return nil
	}
	state.Loading = false

	if res.Err != nil {
		state.Stale = true
		logging.L().Warn("asset load failed", logging.String("root", state.Root), logging.Err(res.Err))
		return fmt.Errorf("load assets: %w", res.Err)
	}

	state.Loaded = true
	state.LoadedAt = time.Now()
	state.TotalBytes = 0
	for _, rec := range res.Records {
		state.TotalBytes += rec.Size
	}
	state.applyUpdate(state.Pipeline().OnDataReloaded(res.Records))
	logging.L().Info("assets loaded",
		logging.String("root", state.Root),
		logging.Int("count", len(res.Records)),
		logging.Duration("elapsed", res.Elapsed),
	)
	return nil
}

func (r *StateReducer) commit(state *AppState) error {
	res, ok := state.ActiveResult()
	if !ok {
		return nil
	}
	if state.Committer == nil {
		return ErrNoCommitter
	}

	keepOpen, err := state.Committer.Commit(res.Record)
	if err != nil {
		logging.L().Warn("commit failed", logging.String("path", res.Record.Path), logging.Err(err))
		return fmt.Errorf("commit %s: %w", res.Record.OriginalName, err)
	}

	state.LastCommit = res.Record.Path
	state.LastCommitVerb = state.CommitVerb
	state.LastCommitTime = time.Now()
	logging.L().Info("asset committed", logging.String("path", res.Record.Path))

	if keepOpen {
		state.HelpVisible = false
		state.applyUpdate(state.Pipeline().Reset())
		return nil
	}
	r.endSession(state)
	return nil
}

func isQueryWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func previousWordBoundary(runes []rune, pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}

	i := pos - 1
	for i >= 0 && !isQueryWordChar(runes[i]) {
		i--
	}
	for i >= 0 && isQueryWordChar(runes[i]) {
		i--
	}
	return i + 1
}
