package rcd

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"vawter.tech/stopper"
)

// ConfigEvent reports a configuration reload or a watch error
type ConfigEvent struct {
	// Config is the freshly loaded configuration
	Config Config
	// Err is set when reloading or watching failed
	Err error
}

// WatchCleanupFunc stops a watch and releases its resources
type WatchCleanupFunc func() error

// watchState manages the debouncing state of a config watch
type watchState struct {
	mu         sync.Mutex
	debouncer  *time.Timer
	haveLast   bool
	lastEnable bool
	lastLang   string
}

// WatchConfig watches an rc.conf file and emits the reloaded configuration
// whenever the wrapper-relevant values (the enable flag or the locale)
// change. The initial configuration is emitted before the function returns.
// Events are debounced so editors and atomic-rename rewrites produce a
// single reload. The watch ends when ctx is canceled or the cleanup
// function is called.
func WatchConfig(ctx context.Context, path string) (<-chan ConfigEvent, WatchCleanupFunc, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, &DirectiveError{Directive: DirectiveUnknown, Path: path, Err: err}
	}

	// Watch the parent directory: conf rewrites are atomic renames, which
	// replace the inode the file watch would be pinned to.
	confDir := filepath.Dir(absPath)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, &DirectiveError{Directive: DirectiveUnknown, Path: confDir, Err: err}
	}

	if err := watcher.Add(confDir); err != nil {
		_ = watcher.Close()
		return nil, nil, &DirectiveError{Directive: DirectiveUnknown, Path: confDir, Err: err}
	}

	ch := make(chan ConfigEvent, 10)

	// Stopper context manages the watcher goroutine lifecycle
	sctx := stopper.WithContext(ctx)
	sctx.Defer(func() {
		_ = watcher.Close()
		close(ch)
	})

	state := &watchState{}

	cleanup := func() error {
		sctx.Stop(100 * time.Millisecond)
		return sctx.Wait()
	}

	readAndSend := func() {
		if sctx.IsStopping() {
			return
		}

		cfg, err := LoadConfig(absPath)
		if err != nil {
			if !sctx.IsStopping() {
				select {
				case ch <- ConfigEvent{Err: err}:
				case <-sctx.Stopping():
				}
			}
			return
		}

		state.mu.Lock()
		changed := !state.haveLast || cfg.Enable != state.lastEnable || cfg.Lang != state.lastLang
		if changed {
			state.haveLast = true
			state.lastEnable = cfg.Enable
			state.lastLang = cfg.Lang
		}
		state.mu.Unlock()

		if changed && !sctx.IsStopping() {
			select {
			case ch <- ConfigEvent{Config: cfg}:
			case <-sctx.Stopping():
			}
		}
	}

	// Initial read
	readAndSend()

	sctx.Go(func(sctx *stopper.Context) error {
		sctx.Defer(func() {
			state.mu.Lock()
			if state.debouncer != nil {
				state.debouncer.Stop()
			}
			state.mu.Unlock()
		})

		for !sctx.IsStopping() {
			select {
			case <-sctx.Stopping():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}

				if filepath.Clean(event.Name) != absPath {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}

				state.mu.Lock()
				if state.debouncer != nil {
					state.debouncer.Stop()
				}
				state.debouncer = time.AfterFunc(DefaultWatchDebounce, readAndSend)
				state.mu.Unlock()

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil && !sctx.IsStopping() {
					select {
					case ch <- ConfigEvent{Err: err}:
					case <-sctx.Stopping():
						return nil
					}
				}
			}
		}
		return nil
	})

	return ch, cleanup, nil
}
