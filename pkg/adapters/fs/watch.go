package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/Roger5791/notekeeper/pkg/core"
)

// debounceWindow absorbs the temp-write/rename burst of a single atomic
// save into one notification.
const debounceWindow = 50 * time.Millisecond

// Watch emits an event whenever the store slot changes on disk, typically
// because another process saved it. The watcher observes the parent
// directory rather than the file itself: atomic saves replace the slot by
// rename, which would silently detach a file-level watch.
//
// The channel closes when ctx is cancelled.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Dir(r.Path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	events := make(chan core.Event, 16)
	r.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer r.setWatcherActive(false)
		defer watcher.Close()
		defer close(events)

		return r.watchLoop(ctx, watcher, events)
	}, lifecycle.WithErrorHandler(func(err error) {
		if r.config.ErrorHandler != nil {
			r.config.ErrorHandler(err)
		} else if r.config.Logger != nil {
			r.config.Logger.Error("watcher failure", "error", err)
		}
	}))

	return events, nil
}

func (r *Repository) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, events chan<- core.Event) error {
	var pending *core.Event

	timer := time.NewTimer(debounceWindow)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	flush := func() {
		if pending == nil {
			return
		}
		select {
		case events <- *pending:
		case <-ctx.Done():
		}
		pending = nil
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-timer.C:
			flush()

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			e, match := r.mapEvent(ev)
			if !match {
				continue
			}
			pending = &e
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounceWindow)

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if r.config.Logger != nil {
				r.config.Logger.Error("fsnotify error", "error", werr)
			}
			if r.config.ErrorHandler != nil {
				r.config.ErrorHandler(werr)
			}
		}
	}
}

// mapEvent filters directory noise down to changes of the slot itself.
// Our own in-flight temp files are ignored by prefix.
func (r *Repository) mapEvent(ev fsnotify.Event) (core.Event, bool) {
	name := filepath.Base(ev.Name)
	if strings.HasPrefix(name, TempFilePrefix) {
		return core.Event{}, false
	}
	if filepath.Clean(ev.Name) != filepath.Clean(r.Path) {
		return core.Event{}, false
	}

	var t core.EventType
	switch {
	case ev.Has(fsnotify.Create):
		t = core.EventCreate
	case ev.Has(fsnotify.Write) || ev.Has(fsnotify.Chmod):
		t = core.EventModify
	case ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename):
		t = core.EventDelete
	default:
		return core.Event{}, false
	}

	return core.Event{
		Type:      t,
		Path:      r.Path,
		Timestamp: time.Now().Unix(),
	}, true
}
