//go:build !windows

package app

import (
	"os"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/assetpick/internal/logging"
	statepkg "github.com/kk-code-lab/assetpick/internal/state"
)

func contSignals() []os.Signal {
	return []os.Signal{syscall.SIGCONT}
}

func hideSignals() []os.Signal {
	return []os.Signal{syscall.SIGTERM, syscall.SIGHUP, os.Interrupt}
}

// suspendToShell hands the terminal back and stops the picker. The stop is
// sent to our pid only, since the shell widget sits in the same group.
func (app *Application) suspendToShell() {
	if err := app.screen.Suspend(); err != nil {
		logging.L().Debug("suspend screen", logging.Err(err))
	}
	if err := syscall.Kill(syscall.Getpid(), syscall.SIGTSTP); err != nil {
		logging.L().Warn("suspend picker", logging.Err(err))
	}
}

// resumeAfterStop restores the screen after SIGCONT and picks up any resize
// that happened while stopped.
func (app *Application) resumeAfterStop() bool {
	if err := app.screen.Resume(); err != nil {
		logging.L().Warn("resume screen", logging.Err(err))
		return false
	}
	app.screen.EnableMouse()
	app.screen.Sync()
	if w, h := app.screen.Size(); w > 0 && h > 0 {
		app.apply(statepkg.ResizeAction{Width: w, Height: h})
	}
	_ = app.screen.PostEvent(tcell.NewEventInterrupt("resume"))
	return true
}
