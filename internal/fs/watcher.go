package fs

import (
	"fmt"
	iofs "io/fs"
	"os"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/fsnotify/fsnotify"
	"github.com/kk-code-lab/assetpick/internal/logging"
)

// DefaultDebounce coalesces bursts of filesystem events.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches an asset root recursively and reports debounced changes.
type Watcher struct {
	watcher  *fsnotify.Watcher
	root     string
	debounce time.Duration
	onChange func(path string)

	mu       sync.Mutex
	watching map[string]bool
	done     chan struct{}
	closed   sync.Once
}

// NewWatcher starts watching root and every non-hidden directory below it.
// onChange runs on the watcher goroutine with the last changed path.
func NewWatcher(root string, debounce time.Duration, onChange func(path string)) (*Watcher, error) {
	if root == "" {
		return nil, ErrNoRoot
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	aw := &Watcher{
		watcher:  w,
		root:     root,
		debounce: debounce,
		onChange: onChange,
		watching: make(map[string]bool),
		done:     make(chan struct{}),
	}
	if err := aw.watchTree(root); err != nil {
		_ = w.Close()
		return nil, err
	}

	go aw.run()
	return aw, nil
}

// run processes filesystem events with debouncing
func (aw *Watcher) run() {
	var (
		pending   bool
		lastEvent time.Time
		lastPath  string
	)
	ticker := time.NewTicker(aw.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-aw.done:
			return

		case event, ok := <-aw.watcher.Events:
			if !ok {
				return
			}
			if !(event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) ||
				event.Has(fsnotify.Rename) || event.Has(fsnotify.Write)) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := aw.watchTree(event.Name); err != nil {
						logging.L().Debug("watch new directory failed", logging.String("path", event.Name), logging.Err(err))
					}
				}
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				aw.forget(event.Name)
			}
			pending = true
			lastEvent = time.Now()
			lastPath = event.Name

		case err, ok := <-aw.watcher.Errors:
			if !ok {
				return
			}
			logging.L().Debug("fsnotify error", logging.Err(err))

		case <-ticker.C:
			if pending && time.Since(lastEvent) >= aw.debounce {
				pending = false
				logging.L().Debug("asset root changed", logging.String("path", lastPath))
				if aw.onChange != nil {
					aw.onChange(lastPath)
				}
			}
		}
	}
}

func (aw *Watcher) watchTree(dir string) error {
	conf := &fastwalk.Config{Follow: false}
	return fastwalk.Walk(conf, dir, func(fullPath string, d iofs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if fullPath != aw.root && skipEntry(fullPath, d.Name()) {
			return fastwalk.SkipDir
		}
		return aw.add(fullPath)
	})
}

func (aw *Watcher) add(path string) error {
	aw.mu.Lock()
	defer aw.mu.Unlock()

	if aw.watching[path] {
		return nil
	}
	if err := aw.watcher.Add(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	aw.watching[path] = true
	return nil
}

func (aw *Watcher) forget(path string) {
	aw.mu.Lock()
	defer aw.mu.Unlock()

	if aw.watching[path] {
		_ = aw.watcher.Remove(path)
		delete(aw.watching, path)
	}
}

// Watched reports how many directories are being watched.
func (aw *Watcher) Watched() int {
	aw.mu.Lock()
	defer aw.mu.Unlock()
	return len(aw.watching)
}

// Close shuts down the watcher
func (aw *Watcher) Close() error {
	var err error
	aw.closed.Do(func() {
		close(aw.done)
		err = aw.watcher.Close()
	})
	return err
}
