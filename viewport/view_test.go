package viewport

import (
	"strings"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/worldbuilder/world"
)

func TestInvalidationCoalesces(t *testing.T) {
	v := New(world.NewLevel(2, 2), nil, nil)
	if !v.flushPaint() {
		t.Fatalf("a fresh view must paint once")
	}

	v.invalidate()
	v.invalidate()
	v.invalidate()
	if !v.flushPaint() {
		t.Fatalf("pending invalidations must trigger a repaint")
	}
	if v.flushPaint() {
		t.Fatalf("coalesced invalidations must cost exactly one repaint")
	}

	v.invalidate()
	if !v.flushPaint() {
		t.Fatalf("an invalidation after a flush must not be dropped")
	}
	if v.repaints != 3 {
		t.Fatalf("expected 3 repaints total, got %d", v.repaints)
	}
}

func TestTogglesInvalidateOnlyOnChange(t *testing.T) {
	v := New(world.NewLevel(2, 2), nil, nil)
	v.flushPaint()

	cases := []struct {
		name   string
		first  func()
		repeat func()
	}{
		{"bounds", func() { v.SetShowBounds(true) }, func() { v.SetShowBounds(true) }},
		{"snap_grid", func() { v.SetSnapGrid(2) }, func() { v.SetSnapGrid(2) }},
		{"overlay", func() { v.SetOverlayVisible(0, true) }, func() { v.SetOverlayVisible(0, true) }},
		{"tile_opacity", func() { v.SetTileOpacity(0.5) }, func() { v.SetTileOpacity(0.5) }},
		{"bounds_opacity", func() { v.SetBoundsOpacity(0.25) }, func() { v.SetBoundsOpacity(0.25) }},
		{"cones", func() { v.SetConeVisible(world.KindEnemy, true) }, func() { v.SetConeVisible(world.KindEnemy, true) }},
		{"collision_mode", func() { v.SetCollisionMode(true) }, func() { v.SetCollisionMode(true) }},
		{"brush", func() { v.SetBrushTerrain(world.TerrainWater) }, func() { v.SetBrushTerrain(world.TerrainWater) }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			c.first()
			if !v.flushPaint() {
				t.Fatalf("changing the toggle must invalidate")
			}
			c.repeat()
			if v.flushPaint() {
				t.Fatalf("re-setting the same value must not invalidate")
			}
		})
	}
}

func TestSetSnapGridRejectsBadIndex(t *testing.T) {
	v := New(world.NewLevel(2, 2), nil, nil)
	v.SetSnapGrid(99)
	if v.SnapGrid() != 64 {
		t.Fatalf("expected default granularity kept, got %v", v.SnapGrid())
	}
	v.SetSnapGrid(-1)
	if v.SnapGrid() != 64 {
		t.Fatalf("expected default granularity kept, got %v", v.SnapGrid())
	}
}

func TestSetLevelReloadsCollision(t *testing.T) {
	v := New(world.NewLevel(2, 2), nil, nil)
	if v.cells.Len() != 0 {
		t.Fatalf("nil store must start with no cells, got %d", v.cells.Len())
	}

	store := &memStore{cells: []cp.Vector{{X: 32, Y: 16}, {X: 96, Y: 48}}}
	v.SetLevel(world.NewLevel(4, 4), store)
	if v.cells.Len() != 2 {
		t.Fatalf("expected cells loaded from the new store, got %d", v.cells.Len())
	}
	if !v.cache.dirty {
		t.Fatalf("a level swap must mark the scene cache dirty")
	}
}

func TestSetCollisionStoreFlushesCells(t *testing.T) {
	v := New(world.NewLevel(4, 4), nil, nil)
	v.cells.Add(cp.Vector{X: 64, Y: 32})
	v.cells.Add(cp.Vector{X: 128, Y: 64})

	store := &memStore{}
	v.SetCollisionStore(store)
	if store.saves != 1 {
		t.Fatalf("rebinding the store must write once, got %d saves", store.saves)
	}
	if len(store.cells) != 2 {
		t.Fatalf("expected 2 cells written, got %v", store.cells)
	}
	if v.cells.Len() != 2 {
		t.Fatalf("in-memory cells must survive the rebind, got %d", v.cells.Len())
	}
}

func TestMarkTerrainDirty(t *testing.T) {
	v := New(world.NewLevel(2, 2), nil, nil)
	v.cache.sync(v.level.Map)
	v.flushPaint()

	v.MarkTerrainDirty()
	if !v.cache.dirty {
		t.Fatalf("expected the scene cache marked dirty")
	}
	if !v.flushPaint() {
		t.Fatalf("an external terrain change must invalidate the view")
	}
}

func TestStatusLine(t *testing.T) {
	lvl := world.NewLevel(4, 4)
	lvl.Map.SetTile(1, 2, world.TerrainSand)
	v := New(lvl, nil, nil)
	v.ctl.hoverOK = true
	v.ctl.hoverTX = 1
	v.ctl.hoverTY = 2

	s := v.Status()
	for _, want := range []string{"tile (1, 2) sand", "zoom 1.00", "grid 64"} {
		if !strings.Contains(s, want) {
			t.Fatalf("expected status to contain %q, got %q", want, s)
		}
	}
}
