package assets

import (
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/worldbuilder/common"
	"github.com/milk9111/worldbuilder/world"
)

// Art is authored at a quarter of world scale; the renderer scales it so the
// art width always covers one tile width.
const (
	artWidth  = 256
	artHeight = 128
	// Cliff art carries a wall above the footprint, so it is taller and the
	// renderer compensates with overdraw.
	cliffArtHeight = 192
)

// Library maps terrain types to their tile art. Types without art simply
// draw nothing, which is how broken override files degrade.
type Library struct {
	images map[world.TerrainType]*ebiten.Image
}

// NewLibrary builds the default procedural tile art for every paintable
// terrain.
func NewLibrary() *Library {
	l := &Library{images: make(map[world.TerrainType]*ebiten.Image)}
	for _, t := range world.PaintableTerrains() {
		h := artHeight
		if t == world.TerrainCliff {
			h = cliffArtHeight
		}
		l.images[t] = blockImage(artWidth, h, terrainColor(t))
	}
	return l
}

// TerrainImage returns the art for a terrain type, false when there is none.
func (l *Library) TerrainImage(t world.TerrainType) (*ebiten.Image, bool) {
	img, ok := l.images[t]
	return img, ok
}

// LoadOverrides replaces procedural art with PNG files from dir. Files are
// matched by terrain name ("grass.png", "cliff.png", ...). Unmatched or
// undecodable files are skipped; the caller decides whether to log the
// returned names.
func (l *Library) LoadOverrides(dir string) (loaded []string, err error) {
	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(info.Name()) != ".png" {
			return nil
		}
		name := strings.TrimSuffix(info.Name(), ".png")
		t, ok := terrainByName(name)
		if !ok {
			return nil
		}
		f, err := os.Open(path)
		if err != nil {
			return nil
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			return nil
		}
		l.images[t] = ebiten.NewImageFromImage(img)
		loaded = append(loaded, info.Name())
		return nil
	})
	return loaded, err
}

func terrainByName(name string) (world.TerrainType, bool) {
	for _, t := range world.PaintableTerrains() {
		if t.String() == name {
			return t, true
		}
	}
	return world.TerrainNone, false
}

func terrainColor(t world.TerrainType) color.RGBA {
	switch t {
	case world.TerrainGrass:
		return color.RGBA{R: 0x58, G: 0x9c, B: 0x45, A: 0xff}
	case world.TerrainDirt:
		return color.RGBA{R: 0x8a, G: 0x5f, B: 0x3c, A: 0xff}
	case world.TerrainSand:
		return color.RGBA{R: 0xd8, G: 0xc2, B: 0x7a, A: 0xff}
	case world.TerrainWater:
		// Translucent on purpose: exercises per-texture alpha in the
		// terrain pass.
		return color.RGBA{R: 0x2e, G: 0x6f, B: 0xc4, A: 0xb4}
	case world.TerrainStone:
		return color.RGBA{R: 0x8c, G: 0x8c, B: 0x94, A: 0xff}
	case world.TerrainRoad:
		return color.RGBA{R: 0x4a, G: 0x46, B: 0x42, A: 0xff}
	case world.TerrainCliff:
		return color.RGBA{R: 0x6e, G: 0x5a, B: 0x48, A: 0xff}
	}
	return color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}
}

// blockImage fills an isometric block: a 2:1 diamond when h == w/2, or a
// diamond-topped column when the art is taller. Pixels outside stay
// transparent so tiles overlap cleanly.
func blockImage(w, h int, base color.RGBA) *ebiten.Image {
	// NRGBA so the water tile's straight alpha survives the conversion.
	rgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	cx := float64(w) / 2
	half := float64(w) / 2
	dh := float64(w) / 4 // half of the diamond height

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			u := (float64(x) + 0.5 - cx) / half
			au := u
			if au < 0 {
				au = -au
			}
			if au > 1 {
				continue
			}
			fy := float64(y) + 0.5
			if fy < dh*au || fy > float64(h)-dh*au {
				continue
			}
			shade := common.Lerp(1.08, 0.72, float32(fy)/float32(h))
			if au > 0.92 {
				shade *= 0.8
			}
			rgba.Set(x, y, color.NRGBA{
				R: scale8(base.R, shade),
				G: scale8(base.G, shade),
				B: scale8(base.B, shade),
				A: base.A,
			})
		}
	}
	return ebiten.NewImageFromImage(rgba)
}

func scale8(v uint8, s float32) uint8 {
	f := float32(v) * s
	if f > 255 {
		return 255
	}
	return uint8(f)
}
