package state

import "github.com/kk-code-lab/assetpick/internal/category"

// Action is the base interface for all state mutations
type Action interface{}

// ===== VISIBILITY ACTIONS =====

// ShowAction starts a picker session, loading assets when needed.
type ShowAction struct{}

// HideAction ends the session and resets query, tab and selection.
type HideAction struct{}

// EscapeAction clears a non-empty query, otherwise hides the picker.
type EscapeAction struct{}

type QuitAction struct{}

// SuspendAction stops the process and returns the terminal to the shell.
type SuspendAction struct{}

// ===== QUERY ACTIONS =====

type QueryCharAction struct {
	Char rune
}
type QueryBackspaceAction struct{}
type QueryDeleteWordAction struct{}
type QueryClearAction struct{}

// QuerySetAction replaces the whole query, e.g. from --query.
type QuerySetAction struct {
	Query string
}

// ===== SELECTION ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}

// SelectIndexAction moves the selection to a visible row.
type SelectIndexAction struct {
	Index int
}

// CommitAction hands the active row to the committer.
type CommitAction struct{}

// ===== TAB ACTIONS =====

type TabNextAction struct{}
type TabPrevAction struct{}
type TabSelectAction struct {
	Tab category.Tab
}

// ===== COLLECTION ACTIONS =====

// ReloadAction forces a reload unless one is already running.
type ReloadAction struct{}

// InvalidateAction marks the collection stale. Close also ends the session.
type InvalidateAction struct {
	Reason string
	Close  bool
}

// LoadResultAction delivers an asynchronous load back to the event loop.
type LoadResultAction struct {
	Result AssetLoadResult
}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type HelpToggleAction struct{}
type HelpHideAction struct{}

// RevealAction opens the folder holding the active row.
type RevealAction struct{}

// CopyLinkAction copies the active row's link.
type CopyLinkAction struct{}
