package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/kk-code-lab/assetpick/internal/asset"
	"github.com/kk-code-lab/assetpick/internal/logging"
	statepkg "github.com/kk-code-lab/assetpick/internal/state"
)

var (
	writeClipboard       = clipboard.WriteAll
	clipboardUnsupported = func() bool { return clipboard.Unsupported }
)

// committerFunc adapts a function to statepkg.Committer.
type committerFunc func(rec asset.Record) (bool, error)

func (f committerFunc) Commit(rec asset.Record) (bool, error) {
	return f(rec)
}

func (app *Application) committer() statepkg.Committer {
	switch app.mode {
	case ModeOpen:
		return committerFunc(app.commitOpen)
	case ModeCopy:
		return committerFunc(app.commitCopy)
	default:
		return committerFunc(app.commitInsert)
	}
}

// commitInsert remembers the link so the caller can print it after the
// screen is torn down. The picker closes.
func (app *Application) commitInsert(rec asset.Record) (bool, error) {
	link, err := app.linkFor(rec)
	if err != nil {
		return false, err
	}
	app.result = link
	return false, nil
}

func (app *Application) commitCopy(rec asset.Record) (bool, error) {
	link, err := app.linkFor(rec)
	if err != nil {
		return false, err
	}
	if err := copyToClipboard(link); err != nil {
		return false, err
	}
	return true, nil
}

func (app *Application) commitOpen(rec asset.Record) (bool, error) {
	if err := app.openPath(rec.Path); err != nil {
		return false, err
	}
	return true, nil
}

func (app *Application) linkFor(rec asset.Record) (string, error) {
	link, ok := app.links.Link(rec)
	if !ok {
		return "", fmt.Errorf("%w: %s is outside %s", ErrNoLink, rec.OriginalName, app.links.Root)
	}
	return link, nil
}

// handleCopyLink copies the active row's link regardless of the commit mode.
func (app *Application) handleCopyLink() error {
	res, ok := app.state.ActiveResult()
	if !ok {
		return nil
	}
	link, err := app.linkFor(res.Record)
	if err != nil {
		return err
	}
	if err := copyToClipboard(link); err != nil {
		return err
	}
	app.noteCommit(res.Record, "copy")
	return nil
}

// handleReveal opens the folder holding the active row.
func (app *Application) handleReveal() error {
	res, ok := app.state.ActiveResult()
	if !ok {
		return nil
	}
	if err := app.openPath(filepath.Dir(res.Record.Path)); err != nil {
		return err
	}
	app.noteCommit(res.Record, "reveal")
	return nil
}

func (app *Application) noteCommit(rec asset.Record, verb string) {
	app.state.LastError = nil
	app.state.LastCommit = rec.Path
	app.state.LastCommitVerb = verb
	app.state.LastCommitTime = time.Now()
	logging.L().Info("asset action", logging.String("action", verb), logging.String("path", rec.Path))
}

func copyToClipboard(text string) error {
	if clipboardUnsupported() {
		return ErrNoClipboard
	}
	if err := writeClipboard(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

func (app *Application) openPath(path string) error {
	if len(app.opener) == 0 {
		return ErrNoOpener
	}
	args := append(append([]string(nil), app.opener[1:]...), path)
	cmd := commandBuilder(app.opener[0], args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			logging.L().Warn("opener exited", logging.String("path", path), logging.Err(err))
		}
	}()
	return nil
}
