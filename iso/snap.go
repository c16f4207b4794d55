package iso

import (
	"math"

	"github.com/jakecoffman/cp"
)

// SnapToCell returns the position that centers a footprint of the given half
// height inside the nearest grid cell of width cellW. The returned position
// is the footprint's center; its bottom vertex sits halfH below it.
//
// Collision cells use this with halfH equal to the cell's own half height,
// which lands the stored point exactly on the cell center.
func SnapToCell(p cp.Vector, cellW, halfH float64) cp.Vector {
	bottom := cp.Vector{X: p.X, Y: p.Y + halfH}
	anchor := nearestAnchor(bottom, cellW, halfH)
	return cp.Vector{X: anchor.X, Y: anchor.Y - halfH}
}

// SnapToIntersection returns the position that puts the footprint's bottom
// vertex on the nearest grid intersection, the corner shared by four cells.
// A footprint spanning a 2x2 cell block then has all four of its corners on
// grid corners, which cell-centered snapping cannot provide.
func SnapToIntersection(p cp.Vector, cellW, halfH float64) cp.Vector {
	bottom := cp.Vector{X: p.X, Y: p.Y + halfH}
	anchor := nearestAnchor(bottom, cellW, cellW/4)
	return cp.Vector{X: anchor.X, Y: anchor.Y - halfH}
}

// nearestAnchor scans every grid subdivision of the 3x3 tiles around ref and
// returns the candidate closest to ref. A candidate is a subdivision's
// diamond center shifted down by offset. Solving the grid in closed form
// instead of scanning misplaces points near tile seams, where the rounded
// tile lookup and the visual diamond disagree.
func nearestAnchor(ref cp.Vector, cellW, offset float64) cp.Vector {
	cellH := cellW / 2
	n := int(TileWidth / cellW)
	ctx, cty := WorldToTile(ref)

	var best cp.Vector
	bestD := math.MaxFloat64
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			top := TileToWorld(ctx+dx, cty+dy)
			for j := 0; j < n; j++ {
				for i := 0; i < n; i++ {
					cand := cp.Vector{
						X: top.X + float64(i-j)*cellW/2,
						Y: top.Y + float64(i+j)*cellH/2 + cellH/2 + offset,
					}
					if d := cand.DistanceSq(ref); d < bestD {
						bestD = d
						best = cand
					}
				}
			}
		}
	}
	return best
}
