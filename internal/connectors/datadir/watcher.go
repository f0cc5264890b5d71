// Package datadir watches the minutes directory and reports new documents
// as they appear, so a running session can ingest them without restarting.
package datadir

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/fedwatch-labs/fedwatch-cli/internal/logger"
)

// settleDelay is how long a file must be quiet before it is reported.
// Downloads arrive as a burst of writes; reporting on the first write
// would hand the pipeline a half-written PDF.
const settleDelay = 2 * time.Second

// Event reports one new or updated document file.
type Event struct {
	// Path is the absolute path of the file.
	Path string
}

// Watcher emits an Event for each document file created or rewritten under
// a directory.
type Watcher struct {
	dir     string
	events  chan Event
	errs    chan error
	fs      *fsnotify.Watcher
	wg      sync.WaitGroup
	stopped chan struct{}
	once    sync.Once
}

// NewWatcher starts watching dir. The directory is created if missing.
func NewWatcher(dir string) (*Watcher, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating watch directory: %w", err)
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fs.Add(dir); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{
		dir:     dir,
		events:  make(chan Event),
		errs:    make(chan error, 1),
		fs:      fs,
		stopped: make(chan struct{}),
	}

	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Events returns the channel of settled file events. It stops delivering
// after Close; consume it with WaitForEvent or a context-aware select.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns watcher errors. Errors do not stop the watcher.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher and closes the event channel.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stopped)
		err = w.fs.Close()
		w.wg.Wait()
	})
	return err
}

// run debounces raw filesystem notifications into settled events. One
// timer per path; each write resets it.
func (w *Watcher) run() {
	defer w.wg.Done()

	timers := make(map[string]*time.Timer)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case <-w.stopped:
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			if !interesting(ev.Name) {
				continue
			}

			path := ev.Name
			if t, ok := timers[path]; ok {
				t.Reset(settleDelay)
				continue
			}
			timers[path] = time.AfterFunc(settleDelay, func() {
				select {
				case w.events <- Event{Path: path}:
				case <-w.stopped:
				}
			})

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logger.Warn("Watcher error: %v", err)
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

// interesting reports whether a path looks like a document worth
// ingesting. Partial downloads and hidden files are ignored.
func interesting(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".part") {
		return false
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".txt":
		return true
	}
	return false
}

// WaitForEvent blocks until an event arrives, the context is cancelled, or
// the watcher stops.
func (w *Watcher) WaitForEvent(ctx context.Context) (Event, error) {
	select {
	case ev := <-w.events:
		return ev, nil
	case <-w.stopped:
		return Event{}, fmt.Errorf("watcher closed")
	case <-ctx.Done():
		return Event{}, ctx.Err()
	}
}
