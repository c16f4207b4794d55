package iso

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestTileToWorld_KnownPoints(t *testing.T) {
	cases := []struct {
		tx, ty int
		want   cp.Vector
	}{
		{0, 0, cp.Vector{X: 0, Y: 0}},
		{1, 0, cp.Vector{X: TileWidth / 2, Y: TileHeight / 2}},
		{0, 1, cp.Vector{X: -TileWidth / 2, Y: TileHeight / 2}},
		{1, 1, cp.Vector{X: 0, Y: TileHeight}},
		{2, 2, cp.Vector{X: 0, Y: 2 * TileHeight}},
		{-3, 2, cp.Vector{X: -5 * TileWidth / 2, Y: -TileHeight / 2}},
	}
	for _, c := range cases {
		if got := TileToWorld(c.tx, c.ty); got != c.want {
			t.Fatalf("TileToWorld(%d,%d) = %v, want %v", c.tx, c.ty, got, c.want)
		}
	}
}

func TestWorldToTile_RoundTrip(t *testing.T) {
	for ty := -50; ty <= 50; ty++ {
		for tx := -50; tx <= 50; tx++ {
			gx, gy := WorldToTile(TileToWorld(tx, ty))
			if gx != tx || gy != ty {
				t.Fatalf("round trip (%d,%d) -> (%d,%d)", tx, ty, gx, gy)
			}
		}
	}
}

func TestWorldToTile_RoundsToNearest(t *testing.T) {
	// Perturbations below half a tile in tile coordinates keep the answer.
	offsets := []cp.Vector{
		{X: TileWidth / 8, Y: 0},
		{X: -TileWidth / 8, Y: TileHeight / 8},
		{X: 0, Y: -TileHeight / 8},
	}
	for _, off := range offsets {
		p := TileToWorld(4, -7).Add(off)
		if gx, gy := WorldToTile(p); gx != 4 || gy != -7 {
			t.Fatalf("perturbed %v -> (%d,%d), want (4,-7)", off, gx, gy)
		}
	}
}

func TestGridSizes_DivideTileWidth(t *testing.T) {
	for _, g := range GridSizes {
		n := TileWidth / g
		if n != math.Trunc(n) || n < 1 {
			t.Fatalf("grid size %v does not divide the tile width", g)
		}
	}
}

func TestDiamond_Corners(t *testing.T) {
	d := Diamond(cp.Vector{X: 10, Y: 20}, 64, 32)
	want := [4]cp.Vector{
		{X: 10, Y: 4},
		{X: 42, Y: 20},
		{X: 10, Y: 36},
		{X: -22, Y: 20},
	}
	if d != want {
		t.Fatalf("corners = %v, want %v", d, want)
	}
}
