package app

import (
	"syscall"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/assetpick/internal/state"
)

func drainActions(app *Application) []statepkg.Action {
	var actions []statepkg.Action
	for {
		select {
		case action := <-app.actionCh:
			actions = append(actions, action)
		default:
			return actions
		}
	}
}

func TestHandleMouseClickOnRowCommitsIt(t *testing.T) {
	app, _ := newTestApplication(t, ModeInsert, "a.png", "b.png", "c.png")
	app.renderer.Render(app.state)

	app.handleMouse(tcell.NewEventMouse(10, statepkg.HeaderRows+1, tcell.Button1, tcell.ModNone))

	actions := drainActions(app)
	if len(actions) != 2 {
		t.Fatalf("expected select and commit, got %#v", actions)
	}
	sel, ok := actions[0].(statepkg.SelectIndexAction)
	if !ok || sel.Index != 1 {
		t.Fatalf("expected SelectIndexAction{1}, got %#v", actions[0])
	}
	if _, ok := actions[1].(statepkg.CommitAction); !ok {
		t.Fatalf("expected CommitAction, got %#v", actions[1])
	}
}

func TestHandleMouseClickBelowRowsIsIgnored(t *testing.T) {
	app, _ := newTestApplication(t, ModeInsert, "a.png")
	app.renderer.Render(app.state)

	app.handleMouse(tcell.NewEventMouse(10, statepkg.HeaderRows+5, tcell.Button1, tcell.ModNone))
	app.handleMouse(tcell.NewEventMouse(10, app.state.ScreenHeight-1, tcell.Button1, tcell.ModNone))

	if actions := drainActions(app); len(actions) != 0 {
		t.Fatalf("expected no actions, got %#v", actions)
	}
}

func TestHandleMouseClickOnTabSelectsIt(t *testing.T) {
	app, _ := newTestApplication(t, ModeInsert, "a.png")
	app.renderer.Render(app.state)

	app.handleMouse(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))

	actions := drainActions(app)
	if len(actions) != 1 {
		t.Fatalf("expected one action, got %#v", actions)
	}
	if sel, ok := actions[0].(statepkg.TabSelectAction); !ok || sel.Tab != "all" {
		t.Fatalf("expected TabSelectAction{all}, got %#v", actions[0])
	}
}

func TestHandleMouseWheelNavigates(t *testing.T) {
	app, _ := newTestApplication(t, ModeInsert, "a.png", "b.png")

	app.handleMouse(tcell.NewEventMouse(0, 3, tcell.WheelDown, tcell.ModNone))
	app.handleMouse(tcell.NewEventMouse(0, 3, tcell.WheelUp, tcell.ModNone))

	actions := drainActions(app)
	if len(actions) != 2 {
		t.Fatalf("expected two actions, got %#v", actions)
	}
	if _, ok := actions[0].(statepkg.NavigateDownAction); !ok {
		t.Fatalf("expected NavigateDownAction, got %#v", actions[0])
	}
	if _, ok := actions[1].(statepkg.NavigateUpAction); !ok {
		t.Fatalf("expected NavigateUpAction, got %#v", actions[1])
	}
}

func TestHandleMouseIgnoredUnderHelp(t *testing.T) {
	app, _ := newTestApplication(t, ModeInsert, "a.png")
	app.state.HelpVisible = true

	app.handleMouse(tcell.NewEventMouse(10, statepkg.HeaderRows, tcell.Button1, tcell.ModNone))

	if actions := drainActions(app); len(actions) != 0 {
		t.Fatalf("expected no actions, got %#v", actions)
	}
}

func TestQuitActionStopsLoop(t *testing.T) {
	app, _ := newTestApplication(t, ModeInsert, "a.png")

	if app.handleAction(statepkg.QuitAction{}) {
		t.Fatalf("quit should not request a render")
	}
	if !app.shouldQuit {
		t.Fatalf("expected shouldQuit after QuitAction")
	}
	if app.state.Shown {
		t.Fatalf("quit should end the session")
	}
}

func TestEventHandlingDoesNotBlockOnBackgroundBurst(t *testing.T) {
	app, _ := newTestApplication(t, ModeInsert, "a.png", "b.png")
	app.renderer.Render(app.state)

	for i := 0; i < 3*cap(app.asyncCh); i++ {
		app.dispatch(statepkg.InvalidateAction{Reason: "burst"})
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 2*cap(app.actionCh); i++ {
			app.handleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
			app.handleEvent(tcell.NewEventMouse(0, statepkg.HeaderRows, tcell.WheelUp, tcell.ModNone))
			app.processActions()
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("event handling blocked while background actions were pending")
	}
	if len(app.asyncCh) != cap(app.asyncCh) {
		t.Fatalf("background actions should stay queued, got %d", len(app.asyncCh))
	}

	for received := 0; received < 3*cap(app.asyncCh); received++ {
		select {
		case action := <-app.asyncCh:
			app.handleAction(action)
		case <-time.After(5 * time.Second):
			t.Fatalf("missing background actions after %d", received)
		}
	}
	if !app.state.Stale {
		t.Fatalf("invalidations should mark the collection stale")
	}
}

func TestHideOnSignalEndsSessionWithoutResult(t *testing.T) {
	app, _ := newTestApplication(t, ModeInsert, "a.png")
	app.result = "![a.png](assets/a.png)"

	app.hideOnSignal(syscall.SIGTERM)

	if !app.shouldQuit || app.state.Shown {
		t.Fatalf("expected closed picker, quit=%v shown=%v", app.shouldQuit, app.state.Shown)
	}
	if app.Result() != "" {
		t.Fatalf("expected no result, got %q", app.Result())
	}
}
