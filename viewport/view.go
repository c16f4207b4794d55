// Package viewport is the isometric editing surface: a camera over the
// level, a cached scene of its tiles, the renderer that paints them,
// and the pointer/keyboard controller that edits through them.
package viewport

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/worldbuilder/assets"
	"github.com/milk9111/worldbuilder/common"
	"github.com/milk9111/worldbuilder/iso"
	"github.com/milk9111/worldbuilder/world"
)

// Callbacks are the notifications the view raises for the shell.
type Callbacks struct {
	// OnEntityClicked fires when a press on an entity is released
	// without ever crossing the drag threshold.
	OnEntityClicked func(world.EntityRef)
	// OnEntityProperties fires on right-click over an entity outside
	// collision mode.
	OnEntityProperties func(world.EntityRef)
}

// options holds every display toggle the shell can flip.
type options struct {
	snapIndex     int
	overlays      [len(iso.GridSizes)]bool
	showBounds    bool
	enemyCones    bool
	camCones      bool
	tileOpacity   float64
	boundsOpacity float64
	collisionMode bool
	brush         world.TerrainType
}

// View ties the camera, scene cache, renderer and controller together
// over one open level.
type View struct {
	cam   *Camera
	cache *sceneCache
	rnd   *renderer
	ctl   *controller

	level *world.Level
	cells *world.Cells
	store world.CollisionStore
	art   *assets.Library

	callbacks Callbacks
	opts      options

	width, height int
	worldBuf      *ebiten.Image

	pending  int
	repaints int
}

// New builds a view over the given level. The collision store may be
// nil, in which case cell edits stay in memory only.
func New(level *world.Level, art *assets.Library, store world.CollisionStore) *View {
	v := &View{
		cam:   NewCamera(),
		cache: newSceneCache(),
		rnd:   newRenderer(),
		level: level,
		art:   art,
		store: store,
		opts: options{
			snapIndex:     1,
			tileOpacity:   1,
			boundsOpacity: 1,
			brush:         world.TerrainGrass,
		},
	}
	v.ctl = newController(v)
	v.reloadCells()
	v.invalidate()
	return v
}

// Resize tells the view its on-screen pixel size. The offscreen
// buffers follow it.
func (v *View) Resize(w, h int) {
	if w <= 0 || h <= 0 || (w == v.width && h == v.height) {
		return
	}
	v.width, v.height = w, h
	v.worldBuf = ebiten.NewImage(w, h)
	v.rnd.resize(w, h)
	v.invalidate()
}

// Update is the 60 Hz tick: keyboard pan, then the pointer machine.
func (v *View) Update() {
	v.ctl.tick(1.0 / 60.0)
	v.ctl.readInput()
}

// Draw repaints the world buffer if anything invalidated it since the
// last frame, then blits the buffer. Redundant invalidations between
// frames collapse into the one repaint.
func (v *View) Draw(screen *ebiten.Image) {
	if v.worldBuf == nil {
		return
	}
	if v.flushPaint() {
		v.paint(v.worldBuf)
	}
	screen.DrawImage(v.worldBuf, nil)
}

// invalidate requests a repaint at the next Draw.
func (v *View) invalidate() { v.pending++ }

// flushPaint reports whether a repaint is due and consumes the request.
func (v *View) flushPaint() bool {
	if v.pending == 0 {
		return false
	}
	v.pending = 0
	v.repaints++
	return true
}

// SetLevel swaps the open document, keeping camera and toggles.
func (v *View) SetLevel(level *world.Level, store world.CollisionStore) {
	v.level = level
	v.store = store
	v.reloadCells()
	v.cache.markDirty()
	v.ctl.reset()
	v.invalidate()
}

// SetCollisionStore rebinds persistence without touching the in-memory
// cells, then writes them so the new file matches what is on screen.
// This is the save-as path; SetLevel is the open path.
func (v *View) SetCollisionStore(store world.CollisionStore) {
	v.store = store
	v.ctl.saveCells()
}

func (v *View) reloadCells() {
	v.cells = world.NewCells(nil)
	if v.store == nil {
		return
	}
	pts, err := v.store.Load()
	if err != nil {
		log.Printf("viewport: load collision cells: %v", err)
		return
	}
	v.cells = world.NewCells(pts)
}

// MarkTerrainDirty tells the view the terrain grid changed behind its
// back, for generator scripts and external reloads.
func (v *View) MarkTerrainDirty() {
	v.cache.markDirty()
	v.invalidate()
}

func (v *View) SetCallbacks(cb Callbacks) { v.callbacks = cb }

// SetSnapGrid selects the active snap granularity by GridSizes index.
func (v *View) SetSnapGrid(i int) {
	if i < 0 || i >= len(iso.GridSizes) || i == v.opts.snapIndex {
		return
	}
	v.opts.snapIndex = i
	v.invalidate()
}

func (v *View) SnapGrid() float64 { return iso.GridSizes[v.opts.snapIndex] }

func (v *View) SetOverlayVisible(i int, on bool) {
	if i < 0 || i >= len(v.opts.overlays) || v.opts.overlays[i] == on {
		return
	}
	v.opts.overlays[i] = on
	v.invalidate()
}

func (v *View) SetShowBounds(on bool) {
	if v.opts.showBounds != on {
		v.opts.showBounds = on
		v.invalidate()
	}
}

// SetConeVisible toggles detection cones for one entity class. Only
// enemies and sentry cameras carry detection parameters.
func (v *View) SetConeVisible(kind world.EntityKind, on bool) {
	switch kind {
	case world.KindEnemy:
		if v.opts.enemyCones != on {
			v.opts.enemyCones = on
			v.invalidate()
		}
	case world.KindSentryCam:
		if v.opts.camCones != on {
			v.opts.camCones = on
			v.invalidate()
		}
	}
}

func (v *View) SetTileOpacity(a float64) {
	a = common.Clamp(a, 0, 1)
	if v.opts.tileOpacity != a {
		v.opts.tileOpacity = a
		v.invalidate()
	}
}

func (v *View) SetBoundsOpacity(a float64) {
	a = common.Clamp(a, 0, 1)
	if v.opts.boundsOpacity != a {
		v.opts.boundsOpacity = a
		v.invalidate()
	}
}

func (v *View) SetCollisionMode(on bool) {
	if v.opts.collisionMode == on {
		return
	}
	v.opts.collisionMode = on
	v.ctl.reset()
	v.invalidate()
}

func (v *View) CollisionMode() bool { return v.opts.collisionMode }

func (v *View) SetBrushTerrain(t world.TerrainType) {
	if !t.Valid() || v.opts.brush == t {
		return
	}
	v.opts.brush = t
	v.invalidate()
}

func (v *View) BrushTerrain() world.TerrainType { return v.opts.brush }

// CameraPos and CameraZoom expose read-only camera state for the
// status bar.
func (v *View) CameraPos() cp.Vector { return v.cam.Position() }
func (v *View) CameraZoom() float64  { return v.cam.Zoom() }

// HoveredTile reports the tile under the cursor, if any.
func (v *View) HoveredTile() (int, int, bool) {
	return v.ctl.hoverTX, v.ctl.hoverTY, v.ctl.hoverOK
}

// Status renders the one-line state summary for the status bar.
func (v *View) Status() string {
	pos := v.cam.Position()
	s := fmt.Sprintf("cam (%.1f, %.1f)  zoom %.2f  grid %d", pos.X, pos.Y, v.cam.Zoom(), int(iso.GridSizes[v.opts.snapIndex]))
	if v.opts.collisionMode {
		s += fmt.Sprintf("  collision cells %d", v.cells.Len())
	}
	if v.ctl.hoverOK && v.level != nil {
		t, _ := v.level.Map.TileAt(v.ctl.hoverTX, v.ctl.hoverTY)
		s = fmt.Sprintf("tile (%d, %d) %s  %s", v.ctl.hoverTX, v.ctl.hoverTY, t, s)
	}
	return s
}
