package script

import (
	"strings"
	"testing"

	"github.com/milk9111/worldbuilder/world"
)

func TestRun_PaintsTiles(t *testing.T) {
	m := world.NewMap(4, 4)
	src := `
set(0, 0, grass)
set(3, 3, cliff)
fill(1, 1, 2, 2, water)
`
	if err := Run([]byte(src), m); err != nil {
		t.Fatalf("run: %v", err)
	}
	if tt, _ := m.TileAt(0, 0); tt != world.TerrainGrass {
		t.Fatalf("tile (0,0) = %v", tt)
	}
	if tt, _ := m.TileAt(3, 3); tt != world.TerrainCliff {
		t.Fatalf("tile (3,3) = %v", tt)
	}
	for _, c := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		if tt, _ := m.TileAt(c[0], c[1]); tt != world.TerrainWater {
			t.Fatalf("tile (%d,%d) = %v, want water", c[0], c[1], tt)
		}
	}
	if _, ok := m.TileAt(3, 0); ok {
		t.Fatal("unpainted tile should stay empty")
	}
}

func TestRun_ReadsBack(t *testing.T) {
	m := world.NewMap(3, 1)
	src := `
set(0, 0, sand)
if get(0, 0) == sand {
	set(1, 0, grass)
}
if get(2, 0) == none {
	set(2, 0, dirt)
}
`
	if err := Run([]byte(src), m); err != nil {
		t.Fatalf("run: %v", err)
	}
	if tt, _ := m.TileAt(1, 0); tt != world.TerrainGrass {
		t.Fatalf("get did not read back, tile (1,0) = %v", tt)
	}
	if tt, _ := m.TileAt(2, 0); tt != world.TerrainDirt {
		t.Fatalf("get(none) failed, tile (2,0) = %v", tt)
	}
}

func TestRun_OutOfRangeIsHarmless(t *testing.T) {
	m := world.NewMap(2, 2)
	src := `
ok := set(50, 50, grass)
if !ok {
	set(0, 0, stone)
}
set(-1, 0, grass)
`
	if err := Run([]byte(src), m); err != nil {
		t.Fatalf("run: %v", err)
	}
	if tt, _ := m.TileAt(0, 0); tt != world.TerrainStone {
		t.Fatal("out-of-range set should report false")
	}
}

func TestRun_CompileError(t *testing.T) {
	err := Run([]byte("set(0, 0"), world.NewMap(1, 1))
	if err == nil || !strings.Contains(err.Error(), "compile") {
		t.Fatalf("want compile error, got %v", err)
	}
}

func TestSamples_RunClean(t *testing.T) {
	names := SampleNames()
	if len(names) == 0 {
		t.Fatal("no embedded samples")
	}
	for _, name := range names {
		m := world.NewMap(12, 12)
		if err := RunFile(name, m); err != nil {
			t.Fatalf("sample %s: %v", name, err)
		}
		painted := 0
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				if _, ok := m.TileAt(x, y); ok {
					painted++
				}
			}
		}
		if painted == 0 {
			t.Fatalf("sample %s painted nothing", name)
		}
	}
}
