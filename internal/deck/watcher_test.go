package deck

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestWatcherNotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.json")
	if err := os.WriteFile(path, []byte(`{"slides": ["a"]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	changed := make(chan struct{}, 1)
	w, err := NewWatcher(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte(`{"slides": ["a", "b"]}`), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected change notification")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.json")
	if err := os.WriteFile(path, []byte(`{"slides": ["a"]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w, err := NewWatcher(path, func() {})
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	sibling := fsnotify.Event{Name: filepath.Join(dir, "other.json"), Op: fsnotify.Write}
	if w.isDeckEvent(sibling) {
		t.Fatalf("expected sibling file event to be ignored")
	}
	chmod := fsnotify.Event{Name: path, Op: fsnotify.Chmod}
	if w.isDeckEvent(chmod) {
		t.Fatalf("expected chmod event to be ignored")
	}
	write := fsnotify.Event{Name: path, Op: fsnotify.Write}
	if !w.isDeckEvent(write) {
		t.Fatalf("expected write event to match")
	}
}

func TestWatcherCloseStopsNotifications(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.json")
	if err := os.WriteFile(path, []byte(`{"slides": ["a"]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fired := make(chan struct{}, 1)
	w, err := NewWatcher(path, func() { fired <- struct{}{} })
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	w.scheduleNotify()
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	select {
	case <-fired:
		t.Fatalf("expected no notification after close")
	case <-time.After(2 * watcherDebounce):
	}
}
