// Package fs lists the files under the asset root and watches it for changes.
package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/kk-code-lab/assetpick/internal/asset"
	"github.com/kk-code-lab/assetpick/internal/logging"
)

// ErrNoRoot is returned when the asset root is unset or not a directory.
var ErrNoRoot = errors.New("no asset root")

// Lister walks an asset root and reports every regular file below it.
// Hidden directories are not descended into.
type Lister struct {
	Root   string
	Follow bool
}

// NewLister returns a Lister that follows symlinks.
func NewLister(root string) *Lister {
	return &Lister{Root: root, Follow: true}
}

// List walks the root. Entries that cannot be stat'ed are skipped.
func (l *Lister) List(ctx context.Context) ([]asset.RawRecord, error) {
	root := l.Root
	if root == "" {
		return nil, ErrNoRoot
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNoRoot, root)
	}

	var (
		records []asset.RawRecord
		mu      sync.Mutex
	)

	conf := &fastwalk.Config{Follow: l.Follow}
	err = fastwalk.Walk(conf, root, func(fullPath string, d iofs.DirEntry, walkErr error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if walkErr != nil {
			logging.L().Debug("skipping unreadable entry", logging.String("path", fullPath), logging.Err(walkErr))
			return nil
		}
		if fullPath == root {
			return nil
		}

		if skipEntry(fullPath, d.Name()) {
			if d.IsDir() {
				return fastwalk.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		info, err := fastwalk.StatDirEntry(fullPath, d)
		if err != nil || info.IsDir() || !info.Mode().IsRegular() {
			return nil
		}

		mu.Lock()
		records = append(records, asset.RawRecord{
			Path:           fullPath,
			Size:           info.Size(),
			ModifiedMillis: info.ModTime().UnixMilli(),
		})
		mu.Unlock()
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return records, nil
}

func isDotName(name string) bool {
	return len(name) > 0 && name[0] == '.'
}
