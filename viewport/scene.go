package viewport

import (
	"sort"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/worldbuilder/iso"
	"github.com/milk9111/worldbuilder/world"
)

// tileEntry is one occupied tile in draw-ready form: grid coordinates,
// terrain, and the precomputed world anchor (top vertex of the diamond).
type tileEntry struct {
	tx, ty  int
	terrain world.TerrainType
	anchor  cp.Vector
}

// sceneCache flattens the terrain grid into a tile list once per edit,
// so a frame costs a cull and a sort instead of a full grid scan.
// Terrain writers mark it dirty; camera movement never does.
type sceneCache struct {
	entries  []tileEntry
	dirty    bool
	rebuilds int
}

func newSceneCache() *sceneCache {
	return &sceneCache{dirty: true}
}

func (s *sceneCache) markDirty() { s.dirty = true }

// sync rebuilds the entry list if an edit happened since the last call.
func (s *sceneCache) sync(m *world.Map) {
	if !s.dirty {
		return
	}
	s.dirty = false
	s.rebuilds++
	s.entries = s.entries[:0]
	if m == nil {
		return
	}
	for ty := 0; ty < m.Height; ty++ {
		for tx := 0; tx < m.Width; tx++ {
			t, ok := m.TileAt(tx, ty)
			if !ok {
				continue
			}
			s.entries = append(s.entries, tileEntry{
				tx:      tx,
				ty:      ty,
				terrain: t,
				anchor:  iso.TileToWorld(tx, ty),
			})
		}
	}
}

// visibleTile pairs a cached entry with this frame's screen position.
type visibleTile struct {
	tileEntry
	screen cp.Vector
}

// visible culls the cached tiles against the viewport, padded by one
// tile width so art poking in from off screen still draws, and returns
// the survivors sorted back to front. The screenX+screenY key is a
// painter's approximation, not per-pixel depth; ties keep cache order.
func (s *sceneCache) visible(cam *Camera, w, h int, out []visibleTile) []visibleTile {
	out = out[:0]
	margin := iso.TileWidth * cam.Zoom()
	box := cp.BB{L: -margin, B: -margin, R: float64(w) + margin, T: float64(h) + margin}
	for _, e := range s.entries {
		p := cam.WorldToScreen(e.anchor)
		if !box.ContainsVect(p) {
			continue
		}
		out = append(out, visibleTile{tileEntry: e, screen: p})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].screen.X+out[i].screen.Y < out[j].screen.X+out[j].screen.Y
	})
	return out
}
