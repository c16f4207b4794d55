package viewport

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/worldbuilder/iso"
)

func TestTileArtPlacementStandardArt(t *testing.T) {
	cases := []struct {
		name   string
		screen cp.Vector
		zoom   float64
		wantX  float64
		wantY  float64
		scale  float64
	}{
		{"origin_zoom1", cp.Vector{}, 1, -512, -512, 4},
		{"origin_zoom2", cp.Vector{}, 2, -1024, -1024, 8},
		{"offset", cp.Vector{X: 300, Y: 700}, 1, -212, 188, 4},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y, scale := tileArtPlacement(c.screen, c.zoom, 256, 128)
			if x != c.wantX || y != c.wantY || scale != c.scale {
				t.Fatalf("expected (%v, %v, %v), got (%v, %v, %v)", c.wantX, c.wantY, c.scale, x, y, scale)
			}
			bottom := y + 128*scale
			if math.Abs(bottom-c.screen.Y) > 1e-9 {
				t.Fatalf("art bottom %v must sit on the anchor %v", bottom, c.screen.Y)
			}
		})
	}
}

func TestTileArtPlacementOversizedArt(t *testing.T) {
	screen := cp.Vector{X: 50, Y: 400}

	_, standardY, _ := tileArtPlacement(screen, 1, 256, 128)
	x, y, scale := tileArtPlacement(screen, 1, 256, 192)

	// 256x192 art spans 768 world units, 256 above the 512 diamond.
	if got := standardY - y; got != 256 {
		t.Fatalf("expected oversized art to rise 256 above standard art, got %v", got)
	}
	if x != screen.X-512 {
		t.Fatalf("expected horizontal centering unchanged, got %v", x)
	}
	bottom := y + 192*scale
	if math.Abs(bottom-screen.Y) > 1e-9 {
		t.Fatalf("oversized art bottom %v must still sit on the anchor %v", bottom, screen.Y)
	}
}

func TestOverlayLinesOnCellLattice(t *testing.T) {
	cam := NewCamera()
	cam.SetPosition(cp.Vector{X: -333.3, Y: 127.9})
	cam.SetZoom(1.7)

	for _, g := range iso.GridSizes {
		lines := overlayLines(cam, g, 800, 600)
		if len(lines) == 0 {
			t.Fatalf("granularity %v produced no lines", g)
		}
		for _, ln := range lines {
			ua, va := cellCoords(ln.a, g)
			ub, vb := cellCoords(ln.b, g)
			uInt := isIntegral(ua) && isIntegral(ub)
			vInt := isIntegral(va) && isIntegral(vb)
			if !uInt && !vInt {
				t.Fatalf("granularity %v: segment %v-%v lies on neither line family (u %v/%v, v %v/%v)",
					g, ln.a, ln.b, ua, ub, va, vb)
			}
		}
	}
}

func TestOverlayLineCountGrowsWithFinerGrids(t *testing.T) {
	cam := NewCamera()
	coarse := len(overlayLines(cam, 1024, 800, 600))
	fine := len(overlayLines(cam, 32, 800, 600))
	if fine <= coarse {
		t.Fatalf("expected more lines at 32 than at 1024, got %d <= %d", fine, coarse)
	}
}

func cellCoords(p cp.Vector, cellW float64) (float64, float64) {
	cellH := cellW / 2
	return p.X/cellW + p.Y/cellH, p.Y/cellH - p.X/cellW
}

func isIntegral(x float64) bool {
	return math.Abs(x-math.Round(x)) < 1e-6
}
