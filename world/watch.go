package world

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchKind classifies which kind of document changed on disk.
type WatchKind uint8

const (
	WatchLevel WatchKind = iota
	WatchScript
)

// WatchEvent is one debounced external edit.
type WatchEvent struct {
	Path string
	Kind WatchKind
}

// Watcher reports external edits to level documents and generator scripts,
// so the editor can reload state it did not change itself.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan WatchEvent
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan WatchEvent, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	filter := newWatchFilter(100 * time.Millisecond)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			ev, ok := filter.accept(event.Name, event.Op, time.Now())
			if !ok {
				continue
			}
			w.Events <- ev
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.Errors <- err
		case <-w.closeCh:
			return
		}
	}
}

// watchFilter classifies raw filesystem events and drops repeats for the
// same path inside the debounce window. Editors tend to fire several write
// events for one save.
type watchFilter struct {
	window time.Duration
	last   map[string]time.Time
}

func newWatchFilter(window time.Duration) *watchFilter {
	return &watchFilter{window: window, last: make(map[string]time.Time)}
}

func (f *watchFilter) accept(name string, op fsnotify.Op, now time.Time) (WatchEvent, bool) {
	if op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return WatchEvent{}, false
	}
	var kind WatchKind
	switch {
	case isLevelFile(name):
		kind = WatchLevel
	case isScriptFile(name):
		kind = WatchScript
	default:
		return WatchEvent{}, false
	}
	if t, ok := f.last[name]; ok && now.Sub(t) < f.window {
		return WatchEvent{}, false
	}
	f.last[name] = now
	return WatchEvent{Path: name, Kind: kind}, true
}

func isLevelFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
