package iso

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Terrain tiles are 2:1 diamonds. Every snap granularity divides the tile
// width, so a tile always splits into a whole number of grid cells.
const (
	TileWidth  = 1024.0
	TileHeight = 512.0
)

// GridSizes are the snap grid cell widths, finest first. A grid cell is
// always half as tall as it is wide.
var GridSizes = [5]float64{32, 64, 128, 512, 1024}

// Collision cells live on the 64x32 grid regardless of the active snap size.
const (
	CollisionGridWidth  = 64.0
	CollisionGridHeight = 32.0
)

// TileToWorld returns the world position of the top vertex of the diamond
// footprint of tile (tx, ty).
func TileToWorld(tx, ty int) cp.Vector {
	return cp.Vector{
		X: float64(tx-ty) * TileWidth / 2,
		Y: float64(tx+ty) * TileHeight / 2,
	}
}

// WorldToTile is the algebraic inverse of TileToWorld, rounded to the
// nearest tile. The result is the tile whose top vertex is closest in tile
// coordinates, which near diamond edges is not always the tile visually
// under the point. Callers that care search the neighborhood.
func WorldToTile(p cp.Vector) (int, int) {
	tx := p.X/TileWidth + p.Y/TileHeight
	ty := p.Y/TileHeight - p.X/TileWidth
	return int(math.Round(tx)), int(math.Round(ty))
}

// Diamond returns the top, right, bottom and left corners of a w x h
// diamond centered at c.
func Diamond(c cp.Vector, w, h float64) [4]cp.Vector {
	return [4]cp.Vector{
		{X: c.X, Y: c.Y - h/2},
		{X: c.X + w/2, Y: c.Y},
		{X: c.X, Y: c.Y + h/2},
		{X: c.X - w/2, Y: c.Y},
	}
}
