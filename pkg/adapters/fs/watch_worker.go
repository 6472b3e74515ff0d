package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/plans/pkg/core"
)

// DefaultDebounce coalesces the burst of events a single save produces.
const DefaultDebounce = 50 * time.Millisecond

// ignorePatterns match editor and atomic-write leftovers next to the data file.
var ignorePatterns = []string{
	TempFilePrefix + "*",
	".*.sw?",
	"*~",
	"#*#",
}

// Watch reports changes to the data file until ctx is cancelled.
// The directory is watched rather than the file because atomic writes
// replace the file's inode. The returned channel is closed on shutdown.
func (g *Gateway) Watch(ctx context.Context) (<-chan core.Event, error) {
	if err := g.Initialize(ctx); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(g.config.Dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", g.config.Dir, err)
	}

	events := make(chan core.Event)
	w := &watchWorker{
		gateway:  g,
		watcher:  watcher,
		events:   events,
		debounce: DefaultDebounce,
	}

	g.setWatcherActive(true)
	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		w.report(fmt.Errorf("watcher panic: %w", err))
	}))

	return events, nil
}

type watchWorker struct {
	gateway  *Gateway
	watcher  *fsnotify.Watcher
	events   chan<- core.Event
	debounce time.Duration
}

func (w *watchWorker) run(ctx context.Context) error {
	defer close(w.events)
	defer w.gateway.setWatcherActive(false)
	defer w.watcher.Close()

	logger := w.gateway.config.Logger

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	var pending *core.Event

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}

			logger.Debug("event received", "name", event.Name, "op", event.Op.String())
			if w.shouldIgnore(event) {
				continue
			}
			eType := mapEventType(event)
			if eType == "" {
				continue
			}

			pending = &core.Event{
				Type:      eType,
				Path:      w.gateway.Path,
				Timestamp: time.Now().Unix(),
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			if pending == nil {
				continue
			}
			select {
			case w.events <- *pending:
			case <-ctx.Done():
				return nil
			}
			pending = nil

		case err, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.report(err)
		}
	}
}

// shouldIgnore keeps only events on the data file itself.
func (w *watchWorker) shouldIgnore(event fsnotify.Event) bool {
	base := filepath.Base(event.Name)
	for _, pattern := range ignorePatterns {
		if ok, _ := doublestar.Match(pattern, base); ok {
			return true
		}
	}
	return base != w.gateway.config.Filename
}

func (w *watchWorker) report(err error) {
	w.gateway.config.Logger.Error("watcher error", "error", err)
	if w.gateway.config.ErrorHandler != nil {
		w.gateway.config.ErrorHandler(err)
	}
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}
