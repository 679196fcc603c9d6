//go:build windows

package app

import "os"

// Job control does not exist on Windows; Ctrl+Z leaves the picker running.
func contSignals() []os.Signal { return nil }

func hideSignals() []os.Signal { return []os.Signal{os.Interrupt} }

func (app *Application) suspendToShell() {}

func (app *Application) resumeAfterStop() bool { return false }
