package world

// TerrainType identifies the ground art painted on a tile. TerrainNone means
// the tile is empty and draws nothing.
type TerrainType uint8

const (
	TerrainNone TerrainType = iota
	TerrainGrass
	TerrainDirt
	TerrainSand
	TerrainWater
	TerrainStone
	TerrainRoad
	TerrainCliff

	terrainCount
)

func (t TerrainType) String() string {
	switch t {
	case TerrainNone:
		return "none"
	case TerrainGrass:
		return "grass"
	case TerrainDirt:
		return "dirt"
	case TerrainSand:
		return "sand"
	case TerrainWater:
		return "water"
	case TerrainStone:
		return "stone"
	case TerrainRoad:
		return "road"
	case TerrainCliff:
		return "cliff"
	}
	return "unknown"
}

// Valid reports whether t names a real terrain, TerrainNone included.
func (t TerrainType) Valid() bool {
	return t < terrainCount
}

// PaintableTerrains lists the types offered by the editor palette.
func PaintableTerrains() []TerrainType {
	out := make([]TerrainType, 0, terrainCount-1)
	for t := TerrainGrass; t < terrainCount; t++ {
		out = append(out, t)
	}
	return out
}

// Map is the terrain grid, indexed by tile coordinates from (0,0) to
// (Width-1, Height-1).
type Map struct {
	Width  int
	Height int

	tiles []TerrainType
}

func NewMap(width, height int) *Map {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Map{
		Width:  width,
		Height: height,
		tiles:  make([]TerrainType, width*height),
	}
}

func (m *Map) InBounds(tx, ty int) bool {
	return tx >= 0 && tx < m.Width && ty >= 0 && ty < m.Height
}

// TileAt returns the terrain at (tx, ty). The second result is false when
// the coordinates are out of range or the tile is empty.
func (m *Map) TileAt(tx, ty int) (TerrainType, bool) {
	if !m.InBounds(tx, ty) {
		return TerrainNone, false
	}
	t := m.tiles[ty*m.Width+tx]
	return t, t != TerrainNone
}

// SetTile writes terrain at (tx, ty) and reports whether the map changed.
// Out-of-range coordinates are a no-op.
func (m *Map) SetTile(tx, ty int, t TerrainType) bool {
	if !m.InBounds(tx, ty) || !t.Valid() {
		return false
	}
	i := ty*m.Width + tx
	if m.tiles[i] == t {
		return false
	}
	m.tiles[i] = t
	return true
}

// Clear empties every tile.
func (m *Map) Clear() {
	for i := range m.tiles {
		m.tiles[i] = TerrainNone
	}
}

// Fill writes terrain to every tile in the inclusive rectangle, clipped to
// the map bounds.
func (m *Map) Fill(x0, y0, x1, y1 int, t TerrainType) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for ty := max(y0, 0); ty <= min(y1, m.Height-1); ty++ {
		for tx := max(x0, 0); tx <= min(x1, m.Width-1); tx++ {
			m.tiles[ty*m.Width+tx] = t
		}
	}
}
