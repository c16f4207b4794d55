package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui/widget"

	"github.com/milk9111/worldbuilder/world"
)

// GridBar contains the radio-group state for the snap granularity buttons.
type GridBar struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
}

func (gb *GridBar) SetIndex(i int) {
	if gb == nil || gb.group == nil || i < 0 || i >= len(gb.buttons) {
		return
	}
	gb.group.SetActive(gb.buttons[i])
}

// PalettePanel holds the terrain list plus the state for programmatic
// selection updates.
type PalettePanel struct {
	list    *widget.List
	entries []any
	// suppressEvents, when true, keeps a programmatic selection from being
	// reported back as a user pick.
	suppressEvents bool
}

func (p *PalettePanel) SetBrush(t world.TerrainType) {
	if p == nil || p.list == nil {
		return
	}
	for _, e := range p.entries {
		if te, ok := e.(world.TerrainType); ok && te == t {
			p.suppressEvents = true
			p.list.SetSelectedEntry(e)
			p.suppressEvents = false
			return
		}
	}
}

// ScriptPanel holds the generator list and its run button.
type ScriptPanel struct {
	list    *widget.List
	entries []any
	runBtn  *widget.Button
}

func (p *ScriptPanel) Selected() (string, bool) {
	if p == nil || p.list == nil {
		return "", false
	}
	if name, ok := p.list.SelectedEntry().(string); ok && name != "" {
		return name, true
	}
	return "", false
}

func (p *ScriptPanel) Select(name string) {
	if p == nil || p.list == nil {
		return
	}
	for _, e := range p.entries {
		if s, ok := e.(string); ok && s == name {
			p.list.SetSelectedEntry(e)
			return
		}
	}
}

// ViewPanel holds the display toggle buttons. Each button carries its state
// in the label, so the app rewrites the label after flipping an option.
type ViewPanel struct {
	overlayBtns   []*widget.Button
	boundsBtn     *widget.Button
	enemyConeBtn  *widget.Button
	camConeBtn    *widget.Button
	collisionBtn  *widget.Button
	tileFadeBtn   *widget.Button
	boundsFadeBtn *widget.Button
}

func onOff(on bool) string {
	if on {
		return "On"
	}
	return "Off"
}

func setButtonLabel(btn *widget.Button, label string) {
	if btn == nil {
		return
	}
	if text := btn.Text(); text != nil {
		text.Label = label
	}
}

func overlayLabel(size float64, on bool) string {
	return fmt.Sprintf("Overlay %d: %s", int(size), onOff(on))
}

func (p *ViewPanel) SetOverlay(i int, size float64, on bool) {
	if p == nil || i < 0 || i >= len(p.overlayBtns) {
		return
	}
	setButtonLabel(p.overlayBtns[i], overlayLabel(size, on))
}

func (p *ViewPanel) SetBounds(on bool) {
	if p == nil {
		return
	}
	setButtonLabel(p.boundsBtn, "Bounds: "+onOff(on))
}

func (p *ViewPanel) SetEnemyCones(on bool) {
	if p == nil {
		return
	}
	setButtonLabel(p.enemyConeBtn, "Enemy Cones: "+onOff(on))
}

func (p *ViewPanel) SetCamCones(on bool) {
	if p == nil {
		return
	}
	setButtonLabel(p.camConeBtn, "Camera Cones: "+onOff(on))
}

func (p *ViewPanel) SetCollision(on bool) {
	if p == nil {
		return
	}
	setButtonLabel(p.collisionBtn, "Collision Mode: "+onOff(on))
}

func (p *ViewPanel) SetTileFade(pct int) {
	if p == nil {
		return
	}
	setButtonLabel(p.tileFadeBtn, fmt.Sprintf("Tile Opacity: %d%%", pct))
}

func (p *ViewPanel) SetBoundsFade(pct int) {
	if p == nil {
		return
	}
	setButtonLabel(p.boundsFadeBtn, fmt.Sprintf("Bounds Opacity: %d%%", pct))
}

// StatusBar is the bottom strip showing hover, camera, and selection state.
type StatusBar struct {
	container *widget.Container
	line      *widget.Text
}

func (s *StatusBar) SetText(text string) {
	if s == nil || s.line == nil {
		return
	}
	s.line.Label = text
}

// LeftPanelUI is the composed left panel plus its stateful parts.
type LeftPanelUI struct {
	Container     *widget.Container
	Palette       *PalettePanel
	Scripts       *ScriptPanel
	FileNameInput *widget.TextInput
}

// RightPanelUI is the composed right panel plus its stateful parts.
type RightPanelUI struct {
	Container *widget.Container
	View      *ViewPanel
}
