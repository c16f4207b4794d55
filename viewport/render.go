package viewport

import (
	"bytes"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/worldbuilder/common"
	"github.com/milk9111/worldbuilder/iso"
	"github.com/milk9111/worldbuilder/world"
)

const (
	// Cone length falls back to this fraction of detection range when no
	// explicit override is set, with a floor so short-range entities still
	// show a readable wedge.
	coneRangeFraction = 0.45
	minConeLength     = 60.0
	coneOpacity       = 0.3
)

var (
	backgroundColor = color.RGBA{R: 24, G: 26, B: 33, A: 255}

	enemyColor  = color.RGBA{R: 208, G: 70, B: 60, A: 255}
	playerColor = color.RGBA{R: 64, G: 128, B: 220, A: 255}
	camColor    = color.RGBA{R: 210, G: 170, B: 50, A: 255}
	weaponColor = color.RGBA{R: 150, G: 95, B: 210, A: 255}
	dragColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	boundsColor = color.RGBA{R: 235, G: 235, B: 235, A: 255}

	overlayColor       = color.RGBA{R: 255, G: 255, B: 255, A: 36}
	overlayActiveColor = color.RGBA{R: 255, G: 255, B: 255, A: 110}

	collisionFillColor = color.RGBA{R: 235, G: 60, B: 60, A: 90}
	collisionEdgeColor = color.RGBA{R: 235, G: 60, B: 60, A: 200}
	collisionAddColor  = color.RGBA{R: 80, G: 220, B: 90, A: 140}
	collisionDelColor  = color.RGBA{R: 250, G: 160, B: 40, A: 160}

	labelTextColor  = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	labelPlateColor = color.RGBA{R: 0, G: 0, B: 0, A: 150}
)

// renderer draws the world buffer whenever the view is invalidated. It
// keeps the cone buffer and the culled-tile scratch slice between
// frames so a repaint allocates nothing in the steady state.
type renderer struct {
	face    text.Face
	coneBuf *ebiten.Image
	tiles   []visibleTile
}

func newRenderer() *renderer {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("viewport: load font: " + err.Error())
	}
	return &renderer{face: &text.GoTextFace{Source: s, Size: 13}}
}

func (r *renderer) resize(w, h int) {
	r.coneBuf = ebiten.NewImage(w, h)
}

// paint redraws the whole world buffer back to front.
func (v *View) paint(dst *ebiten.Image) {
	dst.Fill(backgroundColor)
	if v.level == nil {
		return
	}
	v.cache.sync(v.level.Map)
	v.rnd.tiles = v.cache.visible(v.cam, v.width, v.height, v.rnd.tiles)

	v.rnd.drawTerrain(dst, v.cam, v.rnd.tiles, v.opts.tileOpacity, v.lookupArt)
	if v.previewVisible() {
		v.rnd.drawTilePreview(dst, v.cam, v.ctl.hoverTX, v.ctl.hoverTY, v.opts.brush, v.lookupArt)
	}
	dragRef, dragging := v.ctl.dragTarget()
	v.rnd.drawEntities(dst, v.cam, v.level.Entities, v.opts, dragRef, dragging)
	v.rnd.drawOverlays(dst, v.cam, v.opts, v.width, v.height)
	v.rnd.drawCollisionCells(dst, v.cam, v.cells)
	if v.opts.collisionMode && v.ctl.collisionSnapOK {
		v.rnd.drawCollisionHover(dst, v.cam, v.ctl.collisionSnap, v.cells.Contains(v.ctl.collisionSnap))
	}
}

func (v *View) previewVisible() bool {
	return v.ctl.hoverOK && !v.opts.collisionMode && !v.ctl.drag.active && !v.ctl.painting
}

func (v *View) lookupArt(t world.TerrainType) (*ebiten.Image, bool) {
	if v.art == nil {
		return nil, false
	}
	return v.art.TerrainImage(t)
}

func (r *renderer) drawTerrain(dst *ebiten.Image, cam *Camera, tiles []visibleTile, opacity float64, lookup func(world.TerrainType) (*ebiten.Image, bool)) {
	for _, t := range tiles {
		img, ok := lookup(t.terrain)
		if !ok {
			continue
		}
		r.drawTileArt(dst, cam, img, t.screen, opacity)
	}
}

// drawTilePreview ghosts the brush terrain over the hovered tile at half
// its native alpha.
func (r *renderer) drawTilePreview(dst *ebiten.Image, cam *Camera, tx, ty int, t world.TerrainType, lookup func(world.TerrainType) (*ebiten.Image, bool)) {
	img, ok := lookup(t)
	if !ok {
		return
	}
	screen := cam.WorldToScreen(iso.TileToWorld(tx, ty))
	r.drawTileArt(dst, cam, img, screen, 0.5)
}

func (r *renderer) drawTileArt(dst *ebiten.Image, cam *Camera, img *ebiten.Image, screen cp.Vector, opacity float64) {
	b := img.Bounds()
	if b.Dx() == 0 {
		return
	}
	x, y, scale := tileArtPlacement(screen, cam.Zoom(), b.Dx(), b.Dy())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	if opacity < 1 {
		op.ColorScale.ScaleAlpha(float32(opacity))
	}
	dst.DrawImage(img, op)
}

// tileArtPlacement computes the screen top-left and uniform scale for
// terrain art at a tile's projected point. Art is scaled so its world
// width is one tile; art taller than the diamond keeps its bottom edge
// on the anchor and rises above the footprint by the overdraw amount.
func tileArtPlacement(screen cp.Vector, zoom float64, wpx, hpx int) (x, y, scale float64) {
	scale = iso.TileWidth / float64(wpx) * zoom
	artWorldH := float64(hpx) * iso.TileWidth / float64(wpx)
	overdraw := math.Max(0, artWorldH-iso.TileHeight)
	x = screen.X - iso.TileWidth/2*zoom
	y = screen.Y - (iso.TileHeight+overdraw)*zoom
	return x, y, scale
}

// coneSpec is one detection cone to draw: the apex in world space plus
// the entity's detection parameters.
type coneSpec struct {
	apex cp.Vector
	det  world.Detection
}

// drawEntities paints every placed entity in a fixed z-order, cones
// underneath first so overlapping wedges never obscure the markers.
func (r *renderer) drawEntities(dst *ebiten.Image, cam *Camera, ents *world.Entities, opts options, dragRef world.EntityRef, dragging bool) {
	if ents == nil {
		return
	}

	if opts.enemyCones && len(ents.Enemies) > 0 {
		specs := make([]coneSpec, 0, len(ents.Enemies))
		for i := range ents.Enemies {
			specs = append(specs, coneSpec{apex: ents.Enemies[i].Pos, det: ents.Enemies[i].Detection})
		}
		r.drawCones(dst, cam, specs, enemyColor)
	}
	if opts.camCones && len(ents.Cams) > 0 {
		specs := make([]coneSpec, 0, len(ents.Cams))
		for i := range ents.Cams {
			specs = append(specs, coneSpec{apex: ents.Cams[i].Pos, det: ents.Cams[i].Detection})
		}
		r.drawCones(dst, cam, specs, camColor)
	}

	draw := func(ref world.EntityRef, pos cp.Vector, fp world.Footprint, base color.RGBA) {
		fill := base
		if dragging && ref == dragRef {
			fill = dragColor
		}
		r.drawEntity(dst, cam, pos, fp, fill, opts, ents.Label(ref))
	}

	for i := range ents.Enemies {
		e := &ents.Enemies[i]
		draw(world.EntityRef{Kind: world.KindEnemy, Index: i}, e.Pos, e.Footprint, enemyColor)
	}
	if ents.Player != nil {
		draw(world.EntityRef{Kind: world.KindPlayer}, ents.Player.Pos, ents.Player.Footprint, playerColor)
	}
	for i := range ents.Cams {
		c := &ents.Cams[i]
		draw(world.EntityRef{Kind: world.KindSentryCam, Index: i}, c.Pos, c.Footprint, camColor)
	}
	for i := range ents.Weapons {
		w := &ents.Weapons[i]
		draw(world.EntityRef{Kind: world.KindWeapon, Index: i}, w.Pos, w.Footprint, weaponColor)
	}
}

func (r *renderer) drawEntity(dst *ebiten.Image, cam *Camera, pos cp.Vector, fp world.Footprint, fill color.RGBA, opts options, label string) {
	pts := projectDiamond(cam, pos, fp.W, fp.H)
	fillDiamond(dst, pts, color.RGBA{R: fill.R, G: fill.G, B: fill.B, A: 170})
	strokeDiamond(dst, pts, 1.5, fill)
	if opts.showBounds && fp.Z > 0 {
		r.drawBounds(dst, cam, pos, fp, opts.boundsOpacity)
	}
	r.drawLabel(dst, pts[0], label)
}

// drawBounds sketches the pseudo-3D extent: the base diamond, a copy
// lifted by half the entity height, and the four corner connectors.
func (r *renderer) drawBounds(dst *ebiten.Image, cam *Camera, pos cp.Vector, fp world.Footprint, opacity float64) {
	a := uint8(common.Clamp(opacity, 0, 1) * 255)
	if a == 0 {
		return
	}
	edge := color.RGBA{R: boundsColor.R, G: boundsColor.G, B: boundsColor.B, A: a}
	base := projectDiamond(cam, pos, fp.W, fp.H)
	top := projectDiamond(cam, pos.Add(cp.Vector{Y: -fp.Z * 0.5}), fp.W, fp.H)
	strokeDiamond(dst, base, 1, edge)
	strokeDiamond(dst, top, 1, edge)
	for i := range base {
		vector.StrokeLine(dst, float32(base[i].X), float32(base[i].Y), float32(top[i].X), float32(top[i].Y), 1, edge, true)
	}
}

// drawCones renders one class of detection cones as solid white wedges
// into the offscreen buffer, then composites the buffer once with the
// class tint. Overlapping cones inside a class therefore read as one
// flat region instead of stacking toward opaque.
func (r *renderer) drawCones(dst *ebiten.Image, cam *Camera, specs []coneSpec, tint color.RGBA) {
	if r.coneBuf == nil {
		return
	}
	r.coneBuf.Clear()
	for _, s := range specs {
		length := s.det.ConeLen
		if length <= 0 {
			length = s.det.Range * coneRangeFraction
		}
		if length < minConeLength {
			length = minConeLength
		}
		half := s.det.FOV * math.Pi / 360
		heading := s.det.Rotation * math.Pi / 180
		apex := cam.WorldToScreen(s.apex)
		lw := length * cam.Zoom()

		var path vector.Path
		path.MoveTo(float32(apex.X), float32(apex.Y))
		for _, ang := range [2]float64{heading - half, heading + half} {
			path.LineTo(float32(apex.X+math.Cos(ang)*lw), float32(apex.Y+math.Sin(ang)*lw))
		}
		path.Close()
		vector.FillPath(r.coneBuf, &path, &vector.FillOptions{}, &vector.DrawPathOptions{AntiAlias: true})
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleWithColor(tint)
	op.ColorScale.ScaleAlpha(coneOpacity)
	dst.DrawImage(r.coneBuf, op)
}

// drawLabel prints a name on a translucent plate above the given screen
// point, which is the top corner of the entity's footprint.
func (r *renderer) drawLabel(dst *ebiten.Image, top cp.Vector, label string) {
	if label == "" {
		return
	}
	w, h := text.Measure(label, r.face, 0)
	const pad = 3
	x := float32(top.X - w/2 - pad)
	y := float32(top.Y - h - 8 - pad*2)
	vector.FillRect(dst, x, y, float32(w)+pad*2, float32(h)+pad*2, labelPlateColor, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)+pad, float64(y)+pad)
	op.ColorScale.ScaleWithColor(labelTextColor)
	text.Draw(dst, label, r.face, op)
}

func (r *renderer) drawOverlays(dst *ebiten.Image, cam *Camera, opts options, w, h int) {
	for i, g := range iso.GridSizes {
		if !opts.overlays[i] {
			continue
		}
		width, clr := float32(1), color.Color(overlayColor)
		if i == opts.snapIndex {
			width, clr = 2, overlayActiveColor
		}
		r.drawGridOverlay(dst, cam, g, w, h, width, clr)
	}
}

// drawGridOverlay draws one granularity's grid as its two families of
// cell edge lines. Every granularity goes through this same routine;
// only the cell width, stroke width and color differ.
func (r *renderer) drawGridOverlay(dst *ebiten.Image, cam *Camera, cellW float64, w, h int, width float32, clr color.Color) {
	for _, ln := range overlayLines(cam, cellW, w, h) {
		pa := cam.WorldToScreen(ln.a)
		pb := cam.WorldToScreen(ln.b)
		vector.StrokeLine(dst, float32(pa.X), float32(pa.Y), float32(pb.X), float32(pb.Y), width, clr, true)
	}
}

// gridLine is one overlay segment in world space.
type gridLine struct {
	a, b cp.Vector
}

// overlayLines computes the world-space overlay segments of one
// granularity covering the visible extent. Grid lines run along the two
// diamond edge directions; in the sheared (u, v) cell coordinates they
// are simply the integer u and integer v lines.
func overlayLines(cam *Camera, cellW float64, w, h int) []gridLine {
	cellH := cellW / 2
	corners := [4]cp.Vector{
		cam.ScreenToWorld(cp.Vector{}),
		cam.ScreenToWorld(cp.Vector{X: float64(w)}),
		cam.ScreenToWorld(cp.Vector{Y: float64(h)}),
		cam.ScreenToWorld(cp.Vector{X: float64(w), Y: float64(h)}),
	}
	umin, umax := math.Inf(1), math.Inf(-1)
	vmin, vmax := math.Inf(1), math.Inf(-1)
	for _, c := range corners {
		u := c.X/cellW + c.Y/cellH
		v := c.Y/cellH - c.X/cellW
		umin, umax = math.Min(umin, u), math.Max(umax, u)
		vmin, vmax = math.Min(vmin, v), math.Max(vmax, v)
	}
	at := func(u, v float64) cp.Vector {
		return cp.Vector{X: (u - v) * cellW / 2, Y: (u + v) * cellH / 2}
	}
	lines := make([]gridLine, 0, int(umax-umin)+int(vmax-vmin)+4)
	for v := math.Ceil(vmin); v <= vmax; v++ {
		lines = append(lines, gridLine{a: at(umin, v), b: at(umax, v)})
	}
	for u := math.Ceil(umin); u <= umax; u++ {
		lines = append(lines, gridLine{a: at(u, vmin), b: at(u, vmax)})
	}
	return lines
}

func (r *renderer) drawCollisionCells(dst *ebiten.Image, cam *Camera, cells *world.Cells) {
	if cells == nil {
		return
	}
	for _, p := range cells.Points() {
		pts := projectDiamond(cam, p, iso.CollisionGridWidth, iso.CollisionGridHeight)
		fillDiamond(dst, pts, collisionFillColor)
		strokeDiamond(dst, pts, 1, collisionEdgeColor)
	}
}

// drawCollisionHover previews the snapped cell under the cursor, green
// for a fresh add, orange when a click would remove an existing cell.
func (r *renderer) drawCollisionHover(dst *ebiten.Image, cam *Camera, p cp.Vector, exists bool) {
	clr := collisionAddColor
	if exists {
		clr = collisionDelColor
	}
	pts := projectDiamond(cam, p, iso.CollisionGridWidth, iso.CollisionGridHeight)
	fillDiamond(dst, pts, clr)
	strokeDiamond(dst, pts, 1.5, clr)
}

func projectDiamond(cam *Camera, center cp.Vector, w, h float64) [4]cp.Vector {
	d := iso.Diamond(center, w, h)
	var pts [4]cp.Vector
	for i := range d {
		pts[i] = cam.WorldToScreen(d[i])
	}
	return pts
}

func fillDiamond(dst *ebiten.Image, pts [4]cp.Vector, clr color.RGBA) {
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for i := 1; i < len(pts); i++ {
		path.LineTo(float32(pts[i].X), float32(pts[i].Y))
	}
	path.Close()
	dp := &vector.DrawPathOptions{AntiAlias: true}
	dp.ColorScale.ScaleWithColor(clr)
	vector.FillPath(dst, &path, &vector.FillOptions{}, dp)
}

func strokeDiamond(dst *ebiten.Image, pts [4]cp.Vector, width float32, clr color.Color) {
	for i := range pts {
		j := (i + 1) % len(pts)
		vector.StrokeLine(dst, float32(pts[i].X), float32(pts[i].Y), float32(pts[j].X), float32(pts[j].Y), width, clr, true)
	}
}
