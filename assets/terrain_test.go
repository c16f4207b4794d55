package assets

import (
	"testing"

	"github.com/milk9111/worldbuilder/world"
)

func TestTerrainByName(t *testing.T) {
	for _, tt := range world.PaintableTerrains() {
		got, ok := terrainByName(tt.String())
		if !ok || got != tt {
			t.Fatalf("terrainByName(%q) = %v,%v", tt.String(), got, ok)
		}
	}
	if _, ok := terrainByName("lava"); ok {
		t.Fatal("unknown name should not resolve")
	}
	if _, ok := terrainByName("none"); ok {
		t.Fatal("the empty terrain is not paintable art")
	}
}

func TestScale8Clamps(t *testing.T) {
	if got := scale8(200, 2.0); got != 255 {
		t.Fatalf("scale8(200, 2.0) = %d", got)
	}
	if got := scale8(100, 0.5); got != 50 {
		t.Fatalf("scale8(100, 0.5) = %d", got)
	}
}
