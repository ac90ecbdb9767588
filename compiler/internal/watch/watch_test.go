package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherSeesWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := New()
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer func() { _ = w.Close() }()

	if err := w.Add(dir); err != nil {
		t.Fatalf("add %s: %v", dir, err)
	}

	target := filepath.Join(dir, "demo.py")
	if err := os.WriteFile(target, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case ev, ok := <-w.Events():
			if !ok {
				t.Fatalf("event channel closed")
			}
			if filepath.Clean(ev.Path) == filepath.Clean(target) && ev.Touched() {
				return
			}
		case err := <-w.Errors():
			t.Fatalf("watch error: %v", err)
		case <-deadline:
			t.Fatalf("no event for %s", target)
		}
	}
}
