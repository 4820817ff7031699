package backend

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSnapshotReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.toml")
	if err := os.WriteFile(path, []byte("start = \"hi\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	evt := Snapshot(path)
	if evt.Err != nil || evt.Kind != KindDeckChanged || string(evt.Data) != "start = \"hi\"\n" {
		t.Fatalf("unexpected event %+v", evt)
	}
	missing := Snapshot(filepath.Join(t.TempDir(), "gone.toml"))
	if missing.Kind != KindDeckRemoved || !errors.Is(missing.Err, os.ErrNotExist) {
		t.Fatalf("expected removed event, got %+v", missing)
	}
}

func TestWatcherEmitsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.toml")
	if err := os.WriteFile(path, []byte("start = \"one\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w, err := NewWatcher(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer func() {
		w.Stop()
		w.Wait()
	}()

	if err := os.WriteFile(path, []byte("start = \"two\"\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	deadline := time.After(5 * time.Second)
	for {
		select {
		case evt := <-w.Events():
			if evt.Err != nil {
				t.Fatalf("unexpected error: %v", evt.Err)
			}
			// a flush can land between truncate and write
			if string(evt.Data) == "start = \"two\"\n" {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for deck event")
		}
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.toml")
	if err := os.WriteFile(path, []byte("start = \"one\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w, err := NewWatcher(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer func() {
		w.Stop()
		w.Wait()
	}()
	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write sibling: %v", err)
	}
	select {
	case evt, ok := <-w.Events():
		if ok {
			t.Fatalf("unexpected event for sibling file: %+v", evt)
		}
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	if err := os.WriteFile(path, []byte("start: hi\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w, err := NewWatcher(path, 0)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	w.Stop()
	w.Wait()
	if _, ok := <-w.Events(); ok {
		t.Fatalf("expected closed events channel")
	}
}

func TestThrottleSpacesCalls(t *testing.T) {
	th := newThrottle(30 * time.Millisecond)
	ctx := context.Background()
	start := time.Now()
	th.wait(ctx)
	th.wait(ctx)
	if elapsed := time.Since(start); elapsed < 25*time.Millisecond {
		t.Fatalf("expected second call to wait, elapsed %v", elapsed)
	}
}

func TestThrottleHonoursCancel(t *testing.T) {
	th := newThrottle(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	th.wait(ctx)
	cancel()
	if th.wait(ctx) {
		t.Fatalf("expected cancelled wait to report false")
	}
	var none *throttle
	if !none.wait(context.Background()) {
		t.Fatalf("expected nil throttle to pass through")
	}
}

func newFlushWatcher(t *testing.T, path string) *Watcher {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	w := &Watcher{path: path, ctx: ctx, cancel: cancel, events: make(chan Event, 4)}
	if data, err := os.ReadFile(path); err == nil {
		w.last = data
	}
	return w
}

func flushNoted(t *testing.T, w *Watcher) (Event, bool) {
	t.Helper()
	w.pending = true
	if !w.flush() {
		t.Fatalf("flush reported a stopped watcher")
	}
	select {
	case evt := <-w.events:
		return evt, true
	default:
		return Event{}, false
	}
}

func TestWatcherReemitsRestoredDeck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.toml")
	content := []byte("start = \"one\"\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w := newFlushWatcher(t, path)

	if _, ok := flushNoted(t, w); ok {
		t.Fatalf("expected unchanged content to be dropped")
	}
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	evt, ok := flushNoted(t, w)
	if !ok || evt.Kind != KindDeckRemoved {
		t.Fatalf("expected removed event, got %+v (sent %v)", evt, ok)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("restore: %v", err)
	}
	evt, ok = flushNoted(t, w)
	if !ok || evt.Err != nil || string(evt.Data) != string(content) {
		t.Fatalf("expected restored deck to be emitted, got %+v (sent %v)", evt, ok)
	}
}
