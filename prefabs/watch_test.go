package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// waitForChange drains w until a change arrives or two seconds pass.
func waitForChange(t *testing.T, w *Watcher) []string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		changed, errs := w.Drain()
		if len(errs) > 0 {
			t.Fatalf("unexpected watcher errors: %v", errs)
		}
		if len(changed) > 0 {
			return changed
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("timed out waiting for watcher event")
	return nil
}

func TestWatcherReportsYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "warrior.yaml")
	if err := os.WriteFile(path, []byte("name: warrior\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, got := range waitForChange(t, w) {
		if SpecName(got) != "warrior" {
			t.Fatalf("expected only warrior changes, got %q", got)
		}
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	first := w.Close()
	if second := w.Close(); second != first {
		t.Fatalf("expected the second Close to return %v, got %v", first, second)
	}
	if changed, errs := w.Drain(); len(changed) != 0 || len(errs) != 0 {
		t.Fatalf("expected nothing queued after Close, got %v %v", changed, errs)
	}
}

func TestDebouncer(t *testing.T) {
	seen := debouncer{}
	start := time.Unix(0, 0)

	tests := []struct {
		path string
		at   time.Duration
		want bool
	}{
		{"a.yaml", 0, true},
		{"a.yaml", debounce / 2, false},
		{"b.yaml", debounce / 2, true},
		{"a.yaml", debounce, true},
		{"a.yaml", debounce + time.Millisecond, false},
	}

	for _, tt := range tests {
		if got := seen.allow(tt.path, start.Add(tt.at)); got != tt.want {
			t.Fatalf("allow(%s, +%v) = %v, want %v", tt.path, tt.at, got, tt.want)
		}
	}
}
