package state

import (
	"context"
	"sync"
	"time"

	"github.com/kk-code-lab/assetpick/internal/asset"
)

// AssetSource lists the raw records under the asset root.
type AssetSource interface {
	List(ctx context.Context) ([]asset.RawRecord, error)
}

// AssetLoader performs asset listings asynchronously.
type AssetLoader interface {
	Start(req AssetLoadRequest)
	Cancel(token int)
}

// AssetLoadRequest describes a listing to perform.
type AssetLoadRequest struct {
	Token    int
	Callback func(AssetLoadResult)
}

// AssetLoadResult is emitted by AssetLoader once the listing completes.
type AssetLoadResult struct {
	Token   int
	Records []asset.Record
	Err     error
	Elapsed time.Duration
}

// NewAsyncAssetLoader constructs the default goroutine-based loader. Records
// are normalized on the loader goroutine so the event loop only swaps slices.
func NewAsyncAssetLoader(src AssetSource, normalizer *asset.Normalizer) AssetLoader {
	if normalizer == nil {
		normalizer = asset.NewNormalizer(asset.NoiseOptions{}, nil)
	}
	return &asyncAssetLoader{
		src:        src,
		normalizer: normalizer,
		jobs:       make(map[int]context.CancelFunc),
	}
}

type asyncAssetLoader struct {
	src        AssetSource
	normalizer *asset.Normalizer

	mu   sync.Mutex
	jobs map[int]context.CancelFunc
}

func (l *asyncAssetLoader) Start(req AssetLoadRequest) {
	if req.Token == 0 || req.Callback == nil || l.src == nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	l.mu.Lock()
	l.jobs[req.Token] = cancel
	l.mu.Unlock()

	go func() {
		defer func() {
			l.mu.Lock()
			delete(l.jobs, req.Token)
			l.mu.Unlock()
		}()

		started := time.Now()
		raws, err := l.src.List(ctx)
		var records []asset.Record
		if err == nil {
			records = l.normalizer.NormalizeAll(raws)
		}

		select {
		case <-ctx.Done():
			return
		default:
		}

		req.Callback(AssetLoadResult{
			Token:   req.Token,
			Records: records,
			Err:     err,
			Elapsed: time.Since(started),
		})
	}()
}

func (l *asyncAssetLoader) Cancel(token int) {
	l.mu.Lock()
	if cancel, ok := l.jobs[token]; ok {
		cancel()
		delete(l.jobs, token)
	}
	l.mu.Unlock()
}
