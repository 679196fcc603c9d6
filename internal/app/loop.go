package app

import (
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/assetpick/internal/logging"
	statepkg "github.com/kk-code-lab/assetpick/internal/state"
	renderui "github.com/kk-code-lab/assetpick/internal/ui/render"
)

// Run drives the event loop until the picker is hidden or the user quits.
func (app *Application) Run() {
	app.renderer.Render(app.state)
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	hideCh := make(chan os.Signal, 1)
	signal.Notify(hideCh, hideSignals()...)
	defer signal.Stop(hideCh)

	const animationInterval = 50 * time.Millisecond
	var animationTimer *time.Timer
	var animationCh <-chan time.Time

	startAnimation := func() {
		if animationTimer == nil {
			animationTimer = time.NewTimer(animationInterval)
		} else {
			if !animationTimer.Stop() {
				select {
				case <-animationTimer.C:
				default:
				}
			}
			animationTimer.Reset(animationInterval)
		}
		animationCh = animationTimer.C
	}

	stopAnimation := func() {
		if animationTimer == nil {
			return
		}
		if !animationTimer.Stop() {
			select {
			case <-animationTimer.C:
			default:
			}
		}
		animationCh = nil
	}

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		if app.shouldAnimate() {
			startAnimation()
		} else {
			stopAnimation()
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case <-animationCh:
			renderPending = true
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case action := <-app.asyncCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case sig := <-hideCh:
			app.hideOnSignal(sig)
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}

	stopAnimation()
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlZ {
			app.actionCh <- statepkg.SuspendAction{}
			return false
		}
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventMouse:
		app.handleMouse(ev)
		return true
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
}

// handleMouse maps wheel scrolling to navigation, clicks on the tab row to tab
// selection and clicks on a list row to a commit of that row.
func (app *Application) handleMouse(ev *tcell.EventMouse) {
	if app.state == nil || app.state.HelpVisible {
		return
	}

	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		app.actionCh <- statepkg.NavigateUpAction{}
		return
	case buttons&tcell.WheelDown != 0:
		app.actionCh <- statepkg.NavigateDownAction{}
		return
	case buttons&tcell.Button1 == 0:
		return
	}

	x, y := ev.Position()
	if tab, ok := app.renderer.TabAt(x, y); ok {
		app.actionCh <- statepkg.TabSelectAction{Tab: tab}
		return
	}

	bottomLimit := app.state.ScreenHeight - statepkg.FooterRows
	if y < statepkg.HeaderRows || y >= bottomLimit {
		return
	}
	idx := app.state.ScrollOffset + y - statepkg.HeaderRows
	if idx < 0 || idx >= len(app.state.Visible) {
		return
	}
	app.actionCh <- statepkg.SelectIndexAction{Index: idx}
	app.actionCh <- statepkg.CommitAction{}
}

// hideOnSignal ends the session when the process is asked to terminate, so an
// in-flight listing is cancelled and nothing is inserted.
func (app *Application) hideOnSignal(sig os.Signal) {
	logging.L().Info("picker hidden by signal", logging.String("signal", sig.String()))
	app.result = ""
	app.apply(statepkg.HideAction{})
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) shouldAnimate() bool {
	return renderui.ShouldAnimate(app.state)
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.result = ""
		app.apply(action)
		app.shouldQuit = true
		return false
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	}

	return app.handleAppAction(action)
}

func (app *Application) handleAppAction(action statepkg.Action) bool {
	switch action.(type) {
	case statepkg.CopyLinkAction:
		app.report(app.handleCopyLink())
		return true
	case statepkg.RevealAction:
		app.report(app.handleReveal())
		return true
	}

	app.apply(action)
	return true
}

// apply runs action through the reducer and quits once the session ends.
func (app *Application) apply(action statepkg.Action) {
	_, err := app.reducer.Reduce(app.state, action)
	app.report(err)
	if !app.state.Shown {
		app.shouldQuit = true
	}
}

func (app *Application) report(err error) {
	if err == nil {
		return
	}
	app.state.LastError = err
	logging.L().Debug("action failed", logging.Err(err))
}
