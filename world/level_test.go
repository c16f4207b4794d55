package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestLevel_SaveLoadRoundTrip(t *testing.T) {
	lvl := NewLevel(5, 4)
	lvl.Name = "docks"
	lvl.Map.SetTile(0, 0, TerrainGrass)
	lvl.Map.SetTile(4, 3, TerrainCliff)
	lvl.Map.SetTile(2, 1, TerrainWater)
	lvl.Entities = testEntities()

	path := filepath.Join(t.TempDir(), "levels", "docks.yaml")
	if err := lvl.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := LoadLevel(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Name != "docks" || got.Map.Width != 5 || got.Map.Height != 4 {
		t.Fatalf("header = %q %dx%d", got.Name, got.Map.Width, got.Map.Height)
	}
	for _, c := range []struct {
		x, y int
		want TerrainType
	}{{0, 0, TerrainGrass}, {4, 3, TerrainCliff}, {2, 1, TerrainWater}} {
		if tt, ok := got.Map.TileAt(c.x, c.y); !ok || tt != c.want {
			t.Fatalf("tile (%d,%d) = %v,%v, want %v", c.x, c.y, tt, ok, c.want)
		}
	}
	if _, ok := got.Map.TileAt(1, 1); ok {
		t.Fatal("unpainted tile should stay empty")
	}
	if got.Entities.Player == nil || got.Entities.Player.Pos != (cp.Vector{X: 10, Y: 20}) {
		t.Fatalf("player not restored: %+v", got.Entities.Player)
	}
	if len(got.Entities.Enemies) != 2 || got.Entities.Enemies[0].Name != "guard" {
		t.Fatalf("enemies not restored: %+v", got.Entities.Enemies)
	}
	if len(got.Entities.Weapons) != 1 || got.Entities.Weapons[0].Kind != WeaponRifle {
		t.Fatalf("weapons not restored: %+v", got.Entities.Weapons)
	}
}

func TestLoadLevel_SparseDocumentGetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare.yaml")
	doc := `width: 3
height: 3
entities:
  enemies:
    - pos: {x: 50, y: 60}
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	lvl, err := LoadLevel(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	en := lvl.Entities.Enemies[0]
	if en.Pos != (cp.Vector{X: 50, Y: 60}) {
		t.Fatalf("pos = %v", en.Pos)
	}
	if en.W != 128 || en.H != 64 || en.Range <= 0 {
		t.Fatalf("defaults not filled: %+v", en)
	}
}

func TestLoadLevel_BadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLevel(path); err == nil {
		t.Fatal("malformed document should error")
	}
}

func TestLoadLevel_TruncatedTiles(t *testing.T) {
	// More tile values than the grid holds must not panic or spill.
	path := filepath.Join(t.TempDir(), "overflow.yaml")
	doc := `width: 2
height: 1
tiles: [1, 2, 3, 4, 5]
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	lvl, err := LoadLevel(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tt, ok := lvl.Map.TileAt(1, 0); !ok || tt != TerrainDirt {
		t.Fatalf("tile (1,0) = %v,%v", tt, ok)
	}
}
