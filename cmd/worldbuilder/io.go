package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/milk9111/worldbuilder/script"
	"github.com/milk9111/worldbuilder/world"
)

// normalizeSavePath turns whatever is typed in the File field into a path
// under levels/ with a yaml extension. Names with a directory component are
// used as given.
func normalizeSavePath(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if filepath.Ext(name) == "" {
		name += ".yaml"
	}
	if filepath.Dir(name) != "." {
		return name
	}
	return filepath.Join("levels", name)
}

// defaultSavePath names a never-saved document by timestamp.
func defaultSavePath() string {
	return filepath.Join("levels", fmt.Sprintf("level_%d.yaml", time.Now().Unix()))
}

func (a *app) saveLevel() {
	var name string
	if a.left != nil && a.left.FileNameInput != nil {
		name = strings.TrimSpace(a.left.FileNameInput.GetText())
	}
	path := normalizeSavePath(name)
	if path == "" {
		path = a.levelPath
	}
	if path == "" {
		path = defaultSavePath()
	}
	if err := a.level.Save(path); err != nil {
		log.Printf("Save failed: %v", err)
		return
	}
	a.savedAt = time.Now()
	log.Printf("Saved level: %s", path)
	if path != a.levelPath {
		// Save-as: rebind persistence, keep the in-memory state.
		a.levelPath = path
		a.colStore = world.CollisionFile{Path: world.CollisionPathFor(path)}
		a.view.SetCollisionStore(a.colStore)
	}
	if a.left != nil && a.left.FileNameInput != nil && name == "" {
		a.left.FileNameInput.SetText(path)
	}
}

func (a *app) reloadLevel(path string) {
	lvl, err := world.LoadLevel(path)
	if err != nil {
		log.Printf("Reload failed for %s: %v", path, err)
		return
	}
	a.level = lvl
	a.view.SetLevel(lvl, a.colStore)
	log.Printf("Reloaded level: %s", path)
}

func (a *app) runGenerator(name string) {
	if name == "" {
		return
	}
	if err := script.RunFile(name, a.level.Map); err != nil {
		log.Printf("Generator failed: %v", err)
		return
	}
	a.activeScript = name
	a.view.MarkTerrainDirty()
	log.Printf("Generator finished: %s", name)
}

func (a *app) rerunGenerator() {
	if a.activeScript == "" {
		log.Println("No generator selected")
		return
	}
	a.runGenerator(a.activeScript)
}

func (a *app) handleWatchEvent(ev world.WatchEvent) {
	switch ev.Kind {
	case world.WatchLevel:
		if strings.HasSuffix(ev.Path, ".collision.yaml") {
			// Our own collision saves happen while collision mode is on;
			// outside it, a collision write must be an external edit.
			if !a.collision && a.colStore != nil && filepath.Clean(ev.Path) == filepath.Clean(world.CollisionPathFor(a.levelPath)) {
				a.view.SetLevel(a.level, a.colStore)
				log.Printf("Reloaded collision cells: %s", ev.Path)
			}
			return
		}
		if a.levelPath == "" || filepath.Clean(ev.Path) != filepath.Clean(a.levelPath) {
			return
		}
		if time.Since(a.savedAt) < time.Second {
			return
		}
		a.reloadLevel(ev.Path)
	case world.WatchScript:
		if a.activeScript == "" || filepath.Base(ev.Path) != filepath.Base(a.activeScript) {
			return
		}
		a.runGenerator(a.activeScript)
	}
}

func (a *app) drainWatcher() {
	if a.watcher == nil {
		return
	}
	for {
		select {
		case ev, ok := <-a.watcher.Events:
			if !ok {
				a.watcher = nil
				return
			}
			a.handleWatchEvent(ev)
		case err, ok := <-a.watcher.Errors:
			if !ok {
				a.watcher = nil
				return
			}
			log.Printf("Watcher error: %v", err)
		default:
			return
		}
	}
}
