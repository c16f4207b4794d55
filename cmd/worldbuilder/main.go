package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/milk9111/worldbuilder/assets"
	"github.com/milk9111/worldbuilder/iso"
	"github.com/milk9111/worldbuilder/script"
	"github.com/milk9111/worldbuilder/viewport"
	"github.com/milk9111/worldbuilder/world"
)

type app struct {
	ui   *ebitenui.UI
	view *viewport.View

	level     *world.Level
	levelPath string
	colStore  world.CollisionStore
	watcher   *world.Watcher
	savedAt   time.Time

	left      *LeftPanelUI
	right     *RightPanelUI
	gridBar   *GridBar
	statusBar *StatusBar

	activeScript string
	selection    string
	lastStatus   string
	clipboardOK  bool

	// Mirrors of the view toggles, for the button labels.
	overlays   [len(iso.GridSizes)]bool
	showBounds bool
	enemyCones bool
	camCones   bool
	collision  bool
	tilePct    int
	boundsPct  int
}

func (a *app) Update() error {
	a.drainWatcher()

	// If the UI has a focused text widget (user is typing), suppress hotkeys.
	suppressHotkeys := false
	if a.ui != nil {
		if fw := a.ui.GetFocusedWidget(); fw != nil {
			switch fw.(type) {
			case *widget.TextInput:
				suppressHotkeys = true
			}
		}
	}

	if !suppressHotkeys {
		if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
			os.Exit(0)
		}

		ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
		if inpututil.IsKeyJustPressed(ebiten.KeyS) && ctrl {
			a.saveLevel()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyC) && ctrl {
			a.copyStatus()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) && ctrl {
			a.rerunGenerator()
		}

		if inpututil.IsKeyJustPressed(ebiten.KeyC) && !ctrl {
			a.toggleCollision()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyB) && !ctrl {
			a.toggleBounds()
		}
		for i, key := range gridKeys {
			if inpututil.IsKeyJustPressed(key) {
				a.selectGrid(i)
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			a.selection = ""
		}
	}

	if a.ui != nil {
		a.ui.Update()
	}
	a.view.Update()
	a.refreshStatus()
	return nil
}

var gridKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

func (a *app) Draw(screen *ebiten.Image) {
	a.view.Draw(screen)
	if a.ui != nil {
		a.ui.Draw(screen)
	}
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.view.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (a *app) selectGrid(i int) {
	a.view.SetSnapGrid(i)
	if a.gridBar != nil {
		a.gridBar.SetIndex(i)
	}
}

func (a *app) toggleOverlay(i int) {
	if i < 0 || i >= len(a.overlays) {
		return
	}
	a.overlays[i] = !a.overlays[i]
	a.view.SetOverlayVisible(i, a.overlays[i])
	if a.right != nil {
		a.right.View.SetOverlay(i, iso.GridSizes[i], a.overlays[i])
	}
}

func (a *app) toggleBounds() {
	a.showBounds = !a.showBounds
	a.view.SetShowBounds(a.showBounds)
	if a.right != nil {
		a.right.View.SetBounds(a.showBounds)
	}
}

func (a *app) toggleEnemyCones() {
	a.enemyCones = !a.enemyCones
	a.view.SetConeVisible(world.KindEnemy, a.enemyCones)
	if a.right != nil {
		a.right.View.SetEnemyCones(a.enemyCones)
	}
}

func (a *app) toggleCamCones() {
	a.camCones = !a.camCones
	a.view.SetConeVisible(world.KindSentryCam, a.camCones)
	if a.right != nil {
		a.right.View.SetCamCones(a.camCones)
	}
}

func (a *app) toggleCollision() {
	a.collision = !a.collision
	a.view.SetCollisionMode(a.collision)
	if a.right != nil {
		a.right.View.SetCollision(a.collision)
	}
}

// nextFade steps through the opacity presets.
func nextFade(pct int) int {
	switch pct {
	case 100:
		return 70
	case 70:
		return 40
	case 40:
		return 10
	default:
		return 100
	}
}

func (a *app) cycleTileFade() {
	a.tilePct = nextFade(a.tilePct)
	a.view.SetTileOpacity(float64(a.tilePct) / 100)
	if a.right != nil {
		a.right.View.SetTileFade(a.tilePct)
	}
}

func (a *app) cycleBoundsFade() {
	a.boundsPct = nextFade(a.boundsPct)
	a.view.SetBoundsOpacity(float64(a.boundsPct) / 100)
	if a.right != nil {
		a.right.View.SetBoundsFade(a.boundsPct)
	}
}

func (a *app) copyStatus() {
	if !a.clipboardOK {
		log.Println("Clipboard unavailable; status not copied")
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(a.view.Status()))
	log.Println("Copied status to clipboard")
}

func (a *app) refreshStatus() {
	line := a.view.Status()
	if a.selection != "" {
		line += "  selected " + a.selection
	}
	if line != a.lastStatus {
		a.statusBar.SetText(line)
		a.lastStatus = line
	}
}

func promptLevelDimensions(defaultCols, defaultRows int) (int, int) {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("Enter map width in tiles (default %d): ", defaultCols)
	widthLine, _ := reader.ReadString('\n')
	widthLine = strings.TrimSpace(widthLine)
	cols := defaultCols
	if widthLine != "" {
		if v, err := strconv.Atoi(widthLine); err == nil && v > 0 {
			cols = v
		}
	}

	fmt.Printf("Enter map height in tiles (default %d): ", defaultRows)
	heightLine, _ := reader.ReadString('\n')
	heightLine = strings.TrimSpace(heightLine)
	rows := defaultRows
	if heightLine != "" {
		if v, err := strconv.Atoi(heightLine); err == nil && v > 0 {
			rows = v
		}
	}

	return cols, rows
}

func main() {
	levelName := flag.String("level", "", "Level file to open (name under levels/ or a path, .yaml optional)")
	artDir := flag.String("art", "", "Directory with terrain art overrides (grass.png, cliff.png, ...)")
	scriptName := flag.String("script", "", "Generator script to preselect (path or embedded sample name)")
	flag.Parse()

	log.Println("Worldbuilder starting...")

	var level *world.Level
	var levelPath string
	if *levelName != "" {
		path := normalizeSavePath(*levelName)
		lvl, err := world.LoadLevel(path)
		if err != nil {
			log.Printf("Failed to load level %s: %v", path, err)
		} else {
			level = lvl
			levelPath = path
		}
	}
	if level == nil {
		cols, rows := promptLevelDimensions(32, 32)
		level = world.NewLevel(cols, rows)
	}

	art := assets.NewLibrary()
	if *artDir != "" {
		if loaded, err := art.LoadOverrides(*artDir); err != nil {
			log.Printf("Failed to load art overrides from %s: %v", *artDir, err)
		} else if len(loaded) > 0 {
			log.Printf("Loaded art overrides: %s", strings.Join(loaded, ", "))
		}
	}

	var colStore world.CollisionStore
	if levelPath != "" {
		colStore = world.CollisionFile{Path: world.CollisionPathFor(levelPath)}
	}

	a := &app{
		view:      viewport.New(level, art, colStore),
		level:     level,
		levelPath: levelPath,
		colStore:  colStore,
		tilePct:   100,
		boundsPct: 100,
	}

	a.view.SetCallbacks(viewport.Callbacks{
		OnEntityClicked: func(ref world.EntityRef) {
			a.selection = a.level.Entities.Label(ref)
			log.Printf("Selected %s", a.selection)
		},
		OnEntityProperties: func(ref world.EntityRef) {
			log.Printf("Properties requested for %s", a.level.Entities.Label(ref))
		},
	})

	scriptNames := script.SampleNames()
	if *scriptName != "" {
		found := false
		for _, name := range scriptNames {
			if name == *scriptName {
				found = true
				break
			}
		}
		if !found {
			scriptNames = append([]string{*scriptName}, scriptNames...)
		}
	}

	ui, left, right, gridBar, statusBar := BuildUI(
		scriptNames,
		1,
		func(t world.TerrainType) { a.view.SetBrushTerrain(t) },
		func(name string) { a.activeScript = name },
		func(name string) { a.runGenerator(name) },
		func(i int) { a.view.SetSnapGrid(i) },
		func(i int) { a.toggleOverlay(i) },
		func() { a.toggleBounds() },
		func() { a.toggleEnemyCones() },
		func() { a.toggleCamCones() },
		func() { a.toggleCollision() },
		func() { a.cycleTileFade() },
		func() { a.cycleBoundsFade() },
	)
	a.ui = ui
	a.left = left
	a.right = right
	a.gridBar = gridBar
	a.statusBar = statusBar

	left.Palette.SetBrush(a.view.BrushTerrain())
	if *scriptName != "" {
		left.Scripts.Select(*scriptName)
		a.activeScript = *scriptName
	}
	if levelPath != "" {
		left.FileNameInput.SetText(levelPath)
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("Clipboard unavailable: %v", err)
	} else {
		a.clipboardOK = true
	}

	watchDirs := []string{"levels", "scripts"}
	for _, dir := range watchDirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Printf("Failed to create %s/: %v", dir, err)
		}
	}
	if dir := filepath.Dir(levelPath); levelPath != "" && dir != "levels" {
		watchDirs = append(watchDirs, dir)
	}
	watcher, err := world.NewWatcher(watchDirs...)
	if err != nil {
		log.Printf("File watching disabled: %v", err)
	} else {
		a.watcher = watcher
		defer watcher.Close()
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Worldbuilder")

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
