package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/assetpick/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false when
// the event asks the program to exit immediately.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	helpVisible := ih.state != nil && ih.state.HelpVisible

	if helpVisible {
		switch ev.Key() {
		case tcell.KeyCtrlC:
			ih.actionChan <- statepkg.QuitAction{}
			return false
		case tcell.KeyEscape, tcell.KeyF1:
			ih.actionChan <- statepkg.HelpHideAction{}
			return true
		case tcell.KeyRune:
			if ev.Rune() == '?' {
				ih.actionChan <- statepkg.HelpHideAction{}
			}
			return true
		default:
			return true
		}
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.EscapeAction{}
		return true

	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyUp, tcell.KeyCtrlP:
		ih.actionChan <- statepkg.NavigateUpAction{}
		return true

	case tcell.KeyDown, tcell.KeyCtrlN:
		ih.actionChan <- statepkg.NavigateDownAction{}
		return true

	case tcell.KeyHome:
		ih.actionChan <- statepkg.SelectIndexAction{Index: 0}
		return true

	case tcell.KeyEnd:
		if ih.state != nil && len(ih.state.Visible) > 0 {
			ih.actionChan <- statepkg.SelectIndexAction{Index: len(ih.state.Visible) - 1}
		}
		return true

	case tcell.KeyEnter:
		ih.actionChan <- statepkg.CommitAction{}
		return true

	case tcell.KeyTab:
		ih.actionChan <- statepkg.TabNextAction{}
		return true

	case tcell.KeyBacktab:
		ih.actionChan <- statepkg.TabPrevAction{}
		return true

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) != 0 {
			ih.actionChan <- statepkg.QueryDeleteWordAction{}
		} else {
			ih.actionChan <- statepkg.QueryBackspaceAction{}
		}
		return true

	case tcell.KeyCtrlW:
		ih.actionChan <- statepkg.QueryDeleteWordAction{}
		return true

	case tcell.KeyCtrlU:
		ih.actionChan <- statepkg.QueryClearAction{}
		return true

	case tcell.KeyCtrlR:
		ih.actionChan <- statepkg.ReloadAction{}
		return true

	case tcell.KeyCtrlO:
		ih.actionChan <- statepkg.RevealAction{}
		return true

	case tcell.KeyCtrlY:
		ih.actionChan <- statepkg.CopyLinkAction{}
		return true

	case tcell.KeyF1:
		ih.actionChan <- statepkg.HelpToggleAction{}
		return true

	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModAlt != 0 || !unicode.IsPrint(r) {
			return true
		}
		ih.actionChan <- statepkg.QueryCharAction{Char: r}
		return true
	}

	return true
}
