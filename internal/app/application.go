package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/assetpick/internal/asset"
	"github.com/kk-code-lab/assetpick/internal/category"
	"github.com/kk-code-lab/assetpick/internal/config"
	fsutil "github.com/kk-code-lab/assetpick/internal/fs"
	"github.com/kk-code-lab/assetpick/internal/logging"
	"github.com/kk-code-lab/assetpick/internal/search"
	statepkg "github.com/kk-code-lab/assetpick/internal/state"
	inputui "github.com/kk-code-lab/assetpick/internal/ui/input"
	renderui "github.com/kk-code-lab/assetpick/internal/ui/render"
)

// CommitMode decides what Enter does with the picked asset.
type CommitMode string

const (
	// ModeInsert prints the Markdown link on exit for the shell widget to insert.
	ModeInsert CommitMode = "insert"
	// ModeCopy copies the Markdown link to the clipboard and keeps the picker open.
	ModeCopy CommitMode = "copy"
	// ModeOpen opens the asset with the OS opener and keeps the picker open.
	ModeOpen CommitMode = "open"
)

// ErrNoLink is returned when a record lies outside both the link marker and the root.
var ErrNoLink = errors.New("no link for asset")

// Options configures NewApplication.
type Options struct {
	Config *config.Config
	Mode   CommitMode
	// Query pre-fills the search field.
	Query string
	// Screen overrides the terminal screen; tests pass a simulation screen.
	Screen tcell.Screen
}

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	// actionCh carries actions produced on the loop goroutine itself (keys,
	// mouse) and is drained after every event. asyncCh is fed by the loader
	// and watcher goroutines.
	actionCh   chan statepkg.Action
	asyncCh    chan statepkg.Action
	shouldQuit bool

	mode    CommitMode
	links   *asset.LinkBuilder
	opener  []string
	watcher *fsutil.Watcher
	result  string
}

// NewApplication wires configuration, the asset source and the UI, and starts
// the first load.
func NewApplication(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if cfg.Root == "" {
		cwd, err := GetCwd()
		if err != nil {
			return nil, err
		}
		cfg.Root = cwd
	}
	mode := opts.Mode
	if mode == "" {
		mode = ModeInsert
	}

	tabs, err := category.NewIndex(cfg.TabSpecs())
	if err != nil {
		return nil, err
	}
	ranker, err := search.NewRanker(search.Engine(cfg.Matcher))
	if err != nil {
		return nil, err
	}
	labeler := asset.NewLocaleLabeler(cfg.LocaleName(), time.Local)
	normalizer := asset.NewNormalizer(cfg.NoiseOptions(), labeler)
	loader := statepkg.NewAsyncAssetLoader(fsutil.NewLister(cfg.Root), normalizer)
	pipeline := statepkg.NewPipeline(tabs, ranker, cfg.PageSize)

	screen := opts.Screen
	if screen == nil {
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, err
		}
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	actionCh := make(chan statepkg.Action, 10)
	app := &Application{
		screen:   screen,
		reducer:  statepkg.NewStateReducer(),
		renderer: renderui.NewRenderer(screen),
		input:    inputui.NewInputHandler(actionCh),
		actionCh: actionCh,
		asyncCh:  make(chan statepkg.Action, 16),
		mode:     mode,
		links:    asset.NewLinkBuilder(cfg.Root, cfg.Link.Marker, cfg.Link.Prefix, cfg.Link.RichExtensions),
	}
	app.opener, _ = detectOpener(cfg.Opener)

	state := statepkg.NewAppState(pipeline, loader, app.committer())
	state.Root = cfg.Root
	state.CommitVerb = string(mode)
	state.ScreenWidth, state.ScreenHeight = screen.Size()
	state.SetDispatch(app.dispatch)
	app.state = state
	app.input.SetState(state)

	if cfg.Watch {
		watcher, err := fsutil.NewWatcher(cfg.Root, fsutil.DefaultDebounce, func(path string) {
			app.dispatch(statepkg.InvalidateAction{Reason: path})
		})
		if err != nil {
			logging.L().Warn("watch disabled", logging.String("root", cfg.Root), logging.Err(err))
		} else {
			app.watcher = watcher
		}
	}

	app.apply(statepkg.ShowAction{})
	if opts.Query != "" {
		app.apply(statepkg.QuerySetAction{Query: opts.Query})
	}
	logging.L().Info("picker started",
		logging.String("root", cfg.Root),
		logging.String("mode", string(mode)),
		logging.String("matcher", cfg.Matcher),
	)
	return app, nil
}

// dispatch queues an action from any goroutine without blocking it.
func (app *Application) dispatch(action statepkg.Action) {
	select {
	case app.asyncCh <- action:
	default:
		go func() { app.asyncCh <- action }()
	}
}

// Close cleans up resources.
func (app *Application) Close() error {
	var err error
	if app.watcher != nil {
		err = app.watcher.Close()
	}
	app.screen.Fini()
	return err
}

// Result returns the link picked in insert mode, or "" when nothing was picked.
func (app *Application) Result() string {
	return app.result
}

// GetCwd returns current working directory.
func GetCwd() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve asset root: %w", err)
	}
	return cwd, nil
}
