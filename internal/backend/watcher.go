package backend

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/atomicstack/popup-deck/internal/logging/events"
	"github.com/fsnotify/fsnotify"
)

// Kind represents the type of change emitted by the watcher.
type Kind int

const (
	KindDeckChanged Kind = iota
	KindDeckRemoved
)

func (k Kind) String() string {
	if k == KindDeckRemoved {
		return "removed"
	}
	return "changed"
}

// Event carries the new deck bytes or the error hit while reading them.
type Event struct {
	Kind Kind
	Path string
	Data []byte
	Err  error
}

// Snapshot reads path once and wraps the result as an event.
func Snapshot(path string) Event {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Event{Kind: KindDeckRemoved, Path: path, Err: fmt.Errorf("deck removed: %w", err)}
		}
		return Event{Kind: KindDeckChanged, Path: path, Err: err}
	}
	return Event{Kind: KindDeckChanged, Path: path, Data: data}
}

// Watcher follows a single deck file. Changes are collected and flushed on
// a ticker so an editor's burst of writes turns into one event.
type Watcher struct {
	path     string
	interval time.Duration
	fs       *fsnotify.Watcher
	throttle *throttle

	ctx    context.Context
	cancel context.CancelFunc

	pendingMu sync.Mutex
	pending   bool
	last      []byte

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching path. The parent directory is watched so files
// replaced by rename are still seen.
func NewWatcher(path string, interval time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve deck path: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("start watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     abs,
		interval: interval,
		fs:       fsw,
		throttle: newThrottle(interval),
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}
	if data, err := os.ReadFile(abs); err == nil {
		w.last = data
	}

	w.wg.Add(1)
	go w.run()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w, nil
}

// Events returns a channel of deck events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Path is the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Stop cancels the watcher and releases the fsnotify handle.
func (w *Watcher) Stop() {
	w.cancel()
	_ = w.fs.Close()
}

// Wait blocks until the watcher goroutine has exited and the events channel
// is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run() {
	defer w.wg.Done()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case evt, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.note(evt)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			if !w.emit(Event{Kind: KindDeckChanged, Path: w.path, Err: err}) {
				return
			}
		case <-ticker.C:
			if !w.flush() {
				return
			}
		}
	}
}

func (w *Watcher) note(evt fsnotify.Event) {
	if filepath.Clean(evt.Name) != w.path {
		return
	}
	if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) && !evt.Has(fsnotify.Remove) && !evt.Has(fsnotify.Rename) {
		return
	}
	events.Deck.Watch(evt.Name, evt.Op.String())
	w.pendingMu.Lock()
	w.pending = true
	w.pendingMu.Unlock()
}

// flush emits one event for everything noted since the last tick. Content
// identical to the last emitted version is dropped.
func (w *Watcher) flush() bool {
	w.pendingMu.Lock()
	pending := w.pending
	w.pending = false
	w.pendingMu.Unlock()
	if !pending {
		return true
	}
	if !w.throttle.wait(w.ctx) {
		return false
	}
	evt := Snapshot(w.path)
	if evt.Err == nil {
		if w.last != nil && bytes.Equal(evt.Data, w.last) {
			return true
		}
		w.last = evt.Data
	} else {
		w.last = nil
	}
	return w.emit(evt)
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}
