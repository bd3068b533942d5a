package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Editors often save a file in several writes; changes to the same path
// closer together than this are reported once.
const debounce = 100 * time.Millisecond

// Watcher reports edited prefab files to the game loop. The fsnotify goroutine
// only ever hands paths and errors over through buffered channels, which the
// loop empties with Drain once per frame.
type Watcher struct {
	fs      *fsnotify.Watcher
	changes chan string
	errs    chan error
	done    chan struct{}

	closeOnce sync.Once
	closeErr  error
}

// NewWatcher starts watching dirs for YAML prefab edits. It fails if any of
// the directories cannot be watched, in which case nothing is left running.
func NewWatcher(dirs ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fs,
		changes: make(chan string, 16),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.loop(debouncer{})
	return w, nil
}

// Close stops the watcher. It is safe to call more than once; later calls
// return the first call's error. The channels stay open so a Drain racing
// with Close never reads from a closed channel.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
		w.closeErr = w.fs.Close()
	})
	return w.closeErr
}

func (w *Watcher) loop(seen debouncer) {
	for {
		select {
		case <-w.done:
			return
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			// Keep only the first error until the loop drains it.
			select {
			case w.errs <- err:
			default:
			}
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !isEdit(event) || !isSpecFile(event.Name) || !seen.allow(event.Name, time.Now()) {
				continue
			}
			select {
			case w.changes <- event.Name:
			case <-w.done:
				return
			}
		}
	}
}

// Drain returns every change queued since the last call without blocking.
func (w *Watcher) Drain() (changed []string, errs []error) {
	for {
		select {
		case path := <-w.changes:
			changed = append(changed, path)
		case err := <-w.errs:
			errs = append(errs, err)
		default:
			return changed, errs
		}
	}
}

// debouncer remembers when each path was last reported.
type debouncer map[string]time.Time

func (d debouncer) allow(path string, now time.Time) bool {
	if last, ok := d[path]; ok && now.Sub(last) < debounce {
		return false
	}
	d[path] = now
	return true
}

func isEdit(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// SpecName turns a watched path into the name LoadFighterSpec expects.
func SpecName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
