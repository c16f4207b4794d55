package viewport

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/worldbuilder/common"
)

const (
	zoomMin = 0.5
	zoomMax = 4.0

	// panSpeed is the keyboard pan rate in world units per second.
	panSpeed = 1600.0
)

// Camera maps world space onto the screen. position is the world point
// sitting at the screen origin, zoom scales world units to pixels.
type Camera struct {
	position cp.Vector
	zoom     float64
}

func NewCamera() *Camera {
	return &Camera{zoom: 1}
}

func (c *Camera) Position() cp.Vector { return c.position }
func (c *Camera) Zoom() float64       { return c.zoom }

func (c *Camera) SetPosition(p cp.Vector) { c.position = p }

// SetZoom clamps into the allowed range without re-anchoring.
func (c *Camera) SetZoom(z float64) {
	c.zoom = common.Clamp(z, zoomMin, zoomMax)
}

// WorldToScreen projects a world point into screen pixels.
func (c *Camera) WorldToScreen(p cp.Vector) cp.Vector {
	return p.Sub(c.position).Mult(c.zoom)
}

// ScreenToWorld is the exact inverse of WorldToScreen. Hit testing and
// placement both go through here so they can never disagree with the
// render transform.
func (c *Camera) ScreenToWorld(p cp.Vector) cp.Vector {
	return p.Mult(1 / c.zoom).Add(c.position)
}

// Transform returns the GeoM for drawing world-space content.
func (c *Camera) Transform() ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-c.position.X, -c.position.Y)
	m.Scale(c.zoom, c.zoom)
	return m
}

// Pan advances the camera along direction for dt seconds. The direction
// is normalized first so diagonal pans move no faster than axis pans.
// Reports whether the position changed.
func (c *Camera) Pan(direction cp.Vector, dt float64) bool {
	if (direction.X == 0 && direction.Y == 0) || dt == 0 {
		return false
	}
	c.position = c.position.Add(direction.Normalize().Mult(panSpeed * dt))
	return true
}

// ZoomAt multiplies the zoom by factor, clamps it, then shifts the
// position so the world point under the cursor stays under it. Reports
// whether the zoom changed.
func (c *Camera) ZoomAt(factor float64, cursor cp.Vector) bool {
	old := c.zoom
	c.zoom = common.Clamp(c.zoom*factor, zoomMin, zoomMax)
	if c.zoom == old {
		return false
	}
	before := cursor.Mult(1 / old).Add(c.position)
	after := c.ScreenToWorld(cursor)
	c.position = c.position.Add(before.Sub(after))
	return true
}

// CenterOn frames a world point in the middle of a viewport of the
// given pixel size.
func (c *Camera) CenterOn(p cp.Vector, w, h int) {
	half := cp.Vector{X: float64(w) / 2, Y: float64(h) / 2}
	c.position = p.Sub(half.Mult(1 / c.zoom))
}
