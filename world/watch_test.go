package world

import (
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestWatchFilter_Classifies(t *testing.T) {
	cases := []struct {
		name string
		path string
		op   fsnotify.Op
		kind WatchKind
		keep bool
	}{
		{"level yaml", "levels/docks.yaml", fsnotify.Write, WatchLevel, true},
		{"level yml", "levels/docks.yml", fsnotify.Create, WatchLevel, true},
		{"collision file counts as level", "levels/docks.collision.yaml", fsnotify.Write, WatchLevel, true},
		{"script", "scripts/maze.tengo", fsnotify.Write, WatchScript, true},
		{"uppercase ext", "scripts/MAZE.TENGO", fsnotify.Write, WatchScript, true},
		{"unrelated ext", "levels/notes.txt", fsnotify.Write, 0, false},
		{"chmod only", "levels/docks.yaml", fsnotify.Chmod, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newWatchFilter(100 * time.Millisecond)
			ev, ok := f.accept(tc.path, tc.op, time.Now())
			if ok != tc.keep {
				t.Fatalf("accept = %v, want %v", ok, tc.keep)
			}
			if !tc.keep {
				return
			}
			if ev.Kind != tc.kind {
				t.Fatalf("kind = %d, want %d", ev.Kind, tc.kind)
			}
			if ev.Path != tc.path {
				t.Fatalf("path = %q, want %q", ev.Path, tc.path)
			}
		})
	}
}

func TestWatchFilter_DebouncesPerPath(t *testing.T) {
	f := newWatchFilter(100 * time.Millisecond)
	base := time.Now()

	if _, ok := f.accept("levels/a.yaml", fsnotify.Write, base); !ok {
		t.Fatal("first event should pass")
	}
	// A second write right behind the first is the same save.
	if _, ok := f.accept("levels/a.yaml", fsnotify.Write, base.Add(20*time.Millisecond)); ok {
		t.Fatal("repeat inside the window should be dropped")
	}
	// A different path is not throttled by the first.
	if _, ok := f.accept("levels/b.yaml", fsnotify.Write, base.Add(20*time.Millisecond)); !ok {
		t.Fatal("other path should pass")
	}
	// After the window, the same path fires again.
	if _, ok := f.accept("levels/a.yaml", fsnotify.Write, base.Add(150*time.Millisecond)); !ok {
		t.Fatal("event after the window should pass")
	}
}
