package viewport

import (
	"log"
	"math"

	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/worldbuilder/iso"
	"github.com/milk9111/worldbuilder/world"
)

const (
	// hitRadius is the capture distance around an entity's world point.
	hitRadius = 50.0
	// dragThreshold is the cursor travel in screen pixels that turns a
	// press into a drag. Releases under it count as clicks.
	dragThreshold = 3.0
	zoomStep      = 1.1
)

// pointerFrame is one frame of device input. readInput gathers it from
// the real devices; tests feed frames straight into step.
type pointerFrame struct {
	cursor cp.Vector

	leftPressed  bool
	leftDown     bool
	leftReleased bool

	rightPressed bool

	middlePressed  bool
	middleDown     bool
	middleReleased bool

	wheelY    float64
	uiHovered bool
}

// dragState tracks one left-button interaction from press to release.
// A press starts as a potential click; the first move past
// dragThreshold latches it into a drag, and only then does the target
// position get written.
type dragState struct {
	active  bool
	latched bool
	target  world.EntityRef
	grab    cp.Vector // cursor-to-center offset at press, world units
	pressX  float64
	pressY  float64
}

// controller owns all device interaction for one View. Entity dragging
// and middle-button panning are mutually exclusive; keyboard panning
// runs on the tick and may overlap either.
type controller struct {
	view *View

	hoverOK bool
	hoverTX int
	hoverTY int

	drag     dragState
	painting bool

	panning  bool
	lastPanX float64
	lastPanY float64

	collisionSnap   cp.Vector
	collisionSnapOK bool
}

func newController(v *View) *controller {
	return &controller{view: v}
}

// reset drops transient pointer state, for when the document under the
// cursor is swapped out.
func (c *controller) reset() {
	c.drag = dragState{}
	c.painting = false
	c.panning = false
	c.hoverOK = false
	c.collisionSnapOK = false
}

// tick runs the fixed-interval keyboard pan.
func (c *controller) tick(dt float64) {
	var dir cp.Vector
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		dir.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		dir.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		dir.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		dir.X++
	}
	c.pan(dir, dt)
}

func (c *controller) pan(dir cp.Vector, dt float64) {
	if c.view.cam.Pan(dir, dt) {
		c.view.invalidate()
	}
}

// readInput samples the devices and advances the state machine.
func (c *controller) readInput() {
	cx, cy := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	c.step(pointerFrame{
		cursor:         cp.Vector{X: float64(cx), Y: float64(cy)},
		leftPressed:    inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		leftDown:       ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		leftReleased:   inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		rightPressed:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		middlePressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle),
		middleDown:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		middleReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle),
		wheelY:         wy,
		uiHovered:      ebuiinput.UIHovered,
	})
}

func (c *controller) step(f pointerFrame) {
	c.stepPanZoom(f)
	if c.view.opts.collisionMode {
		c.stepCollision(f)
		return
	}
	c.stepHover(f)
	c.stepDrag(f)
	c.stepProperties(f)
}

func (c *controller) stepPanZoom(f pointerFrame) {
	v := c.view
	if f.middlePressed && !c.drag.active {
		c.panning = true
		c.lastPanX, c.lastPanY = f.cursor.X, f.cursor.Y
	}
	if c.panning && f.middleDown {
		dx := f.cursor.X - c.lastPanX
		dy := f.cursor.Y - c.lastPanY
		if dx != 0 || dy != 0 {
			pos := v.cam.Position()
			v.cam.SetPosition(cp.Vector{
				X: pos.X - dx/v.cam.Zoom(),
				Y: pos.Y - dy/v.cam.Zoom(),
			})
			c.lastPanX, c.lastPanY = f.cursor.X, f.cursor.Y
			v.invalidate()
		}
	}
	if f.middleReleased {
		c.panning = false
	}

	if f.wheelY != 0 {
		factor := zoomStep
		if f.wheelY < 0 {
			factor = 1 / zoomStep
		}
		if v.cam.ZoomAt(factor, f.cursor) {
			v.invalidate()
		}
	}
}

// stepHover recomputes the hovered tile while no button is held. The
// direct inverse projection misassigns points near diamond edges, so
// the nearest anchor in a 5x5 neighborhood wins.
func (c *controller) stepHover(f pointerFrame) {
	if f.leftDown || f.middleDown {
		return
	}
	tx, ty, ok := c.hoverTile(f.cursor)
	if ok != c.hoverOK || tx != c.hoverTX || ty != c.hoverTY {
		c.hoverOK, c.hoverTX, c.hoverTY = ok, tx, ty
		c.view.invalidate()
	}
}

func (c *controller) hoverTile(cursor cp.Vector) (int, int, bool) {
	v := c.view
	if v.level == nil {
		return 0, 0, false
	}
	wp := v.cam.ScreenToWorld(cursor)
	ctx, cty := iso.WorldToTile(wp)
	best := math.MaxFloat64
	bx, by, ok := 0, 0, false
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			tx, ty := ctx+dx, cty+dy
			if !v.level.Map.InBounds(tx, ty) {
				continue
			}
			if d := iso.TileToWorld(tx, ty).DistanceSq(wp); d < best {
				best = d
				bx, by, ok = tx, ty, true
			}
		}
	}
	return bx, by, ok
}

func (c *controller) stepDrag(f pointerFrame) {
	v := c.view

	if f.leftPressed && !f.uiHovered && !c.panning {
		wp := v.cam.ScreenToWorld(f.cursor)
		if ref, ok := c.hitTest(wp); ok {
			c.beginDrag(ref, wp, f.cursor)
		} else {
			c.painting = true
			c.paintAt(f.cursor)
		}
	}

	if f.leftDown {
		if c.drag.active {
			if !c.drag.latched {
				moved := math.Hypot(f.cursor.X-c.drag.pressX, f.cursor.Y-c.drag.pressY)
				if moved > dragThreshold {
					c.drag.latched = true
					v.invalidate()
				}
			}
			if c.drag.latched {
				c.updateDrag(v.cam.ScreenToWorld(f.cursor))
			}
		} else if c.painting {
			c.paintAt(f.cursor)
		}
	}

	if f.leftReleased {
		if c.drag.active {
			if !c.drag.latched && v.callbacks.OnEntityClicked != nil {
				v.callbacks.OnEntityClicked(c.drag.target)
			}
			v.invalidate()
		}
		c.endDrag()
		c.painting = false
	}
}

// beginDrag arms a potential drag on ref. The position is not written
// until the cursor crosses the drag threshold.
func (c *controller) beginDrag(ref world.EntityRef, wp, cursor cp.Vector) {
	pos, _ := c.view.level.Entities.Pos(ref)
	c.drag = dragState{
		active: true,
		target: ref,
		grab:   wp.Sub(pos),
		pressX: cursor.X,
		pressY: cursor.Y,
	}
}

func (c *controller) endDrag() {
	c.drag = dragState{}
}

// updateDrag snaps the dragged entity to the active grid and writes the
// result straight into its record.
func (c *controller) updateDrag(wp cp.Vector) {
	v := c.view
	ref := c.drag.target
	fp, ok := v.level.Entities.FootprintOf(ref)
	if !ok {
		return
	}
	center := wp.Sub(c.drag.grab)
	cellW := iso.GridSizes[v.opts.snapIndex]
	var snapped cp.Vector
	if ref.Kind.SpansCells() {
		snapped = iso.SnapToIntersection(center, cellW, fp.H/2)
	} else {
		snapped = iso.SnapToCell(center, cellW, fp.H/2)
	}
	if pos, _ := v.level.Entities.Pos(ref); snapped != pos {
		v.level.Entities.SetPos(ref, snapped)
		v.invalidate()
	}
}

// paintAt writes the brush terrain to the tile under the cursor.
func (c *controller) paintAt(cursor cp.Vector) {
	v := c.view
	tx, ty, ok := c.hoverTile(cursor)
	if !ok {
		return
	}
	if v.level.Map.SetTile(tx, ty, v.opts.brush) {
		v.cache.markDirty()
		v.invalidate()
	}
}

// hitTest runs the ordered entity search: weapons first, then player,
// enemies, sentry cameras. The first entity within the capture radius
// wins.
func (c *controller) hitTest(wp cp.Vector) (world.EntityRef, bool) {
	if c.view.level == nil {
		return world.EntityRef{}, false
	}
	ents := c.view.level.Entities
	const r2 = hitRadius * hitRadius
	for i := range ents.Weapons {
		if ents.Weapons[i].Pos.DistanceSq(wp) <= r2 {
			return world.EntityRef{Kind: world.KindWeapon, Index: i}, true
		}
	}
	if ents.Player != nil && ents.Player.Pos.DistanceSq(wp) <= r2 {
		return world.EntityRef{Kind: world.KindPlayer}, true
	}
	for i := range ents.Enemies {
		if ents.Enemies[i].Pos.DistanceSq(wp) <= r2 {
			return world.EntityRef{Kind: world.KindEnemy, Index: i}, true
		}
	}
	for i := range ents.Cams {
		if ents.Cams[i].Pos.DistanceSq(wp) <= r2 {
			return world.EntityRef{Kind: world.KindSentryCam, Index: i}, true
		}
	}
	return world.EntityRef{}, false
}

// stepCollision handles collision-edit mode: left adds the snapped
// cell, right removes a matching one, and either change saves the whole
// collection through the store before the frame ends.
func (c *controller) stepCollision(f pointerFrame) {
	v := c.view
	wp := v.cam.ScreenToWorld(f.cursor)
	snapped := iso.SnapToCell(wp, iso.CollisionGridWidth, iso.CollisionGridHeight/2)
	if !c.collisionSnapOK || snapped != c.collisionSnap {
		c.collisionSnap = snapped
		c.collisionSnapOK = true
		v.invalidate()
	}

	if f.leftPressed && !f.uiHovered {
		if v.cells.Add(snapped) {
			c.saveCells()
			v.invalidate()
		}
	}
	if f.rightPressed && !f.uiHovered {
		if v.cells.Remove(snapped) {
			c.saveCells()
			v.invalidate()
		}
	}
}

func (c *controller) saveCells() {
	v := c.view
	if v.store == nil {
		return
	}
	if err := v.store.Save(v.cells.Points()); err != nil {
		log.Printf("viewport: save collision cells: %v", err)
	}
}

func (c *controller) stepProperties(f pointerFrame) {
	v := c.view
	if !f.rightPressed || f.uiHovered || c.drag.active || c.panning {
		return
	}
	if ref, ok := c.hitTest(v.cam.ScreenToWorld(f.cursor)); ok && v.callbacks.OnEntityProperties != nil {
		v.callbacks.OnEntityProperties(ref)
	}
}

func (c *controller) dragTarget() (world.EntityRef, bool) {
	return c.drag.target, c.drag.active && c.drag.latched
}
