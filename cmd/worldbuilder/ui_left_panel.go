package main

import (
	"image/color"
	"path/filepath"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/worldbuilder/world"
)

func buildLeftPanelUI(
	theme *widget.Theme,
	fontFace *text.Face,
	scriptNames []string,
	onBrushSelected func(t world.TerrainType),
	onScriptSelected func(name string),
	onRunScript func(name string),
) *LeftPanelUI {
	leftPanel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(210, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)

	fileNameInput := addFileNameSection(leftPanel, fontFace)
	palette := addPaletteSection(leftPanel, fontFace, onBrushSelected)
	scripts := addScriptSection(leftPanel, theme, fontFace, scriptNames, onScriptSelected, onRunScript)

	return &LeftPanelUI{
		Container:     leftPanel,
		Palette:       palette,
		Scripts:       scripts,
		FileNameInput: fileNameInput,
	}
}

func addFileNameSection(parent *widget.Container, fontFace *text.Face) *widget.TextInput {
	fileLabel := widget.NewLabel(
		widget.LabelOpts.Text("File", fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	)
	fileNameInput := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(190, 28),
		),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     solidNineSlice(color.RGBA{50, 50, 58, 255}),
			Disabled: solidNineSlice(color.RGBA{40, 40, 46, 255}),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:     color.White,
			Disabled: color.Gray{Y: 120},
			Caret:    color.White,
		}),
		widget.TextInputOpts.Face(fontFace),
	)
	parent.AddChild(fileLabel)
	parent.AddChild(fileNameInput)
	return fileNameInput
}

func addPaletteSection(parent *widget.Container, fontFace *text.Face, onBrushSelected func(t world.TerrainType)) *PalettePanel {
	paletteLabel := widget.NewLabel(
		widget.LabelOpts.Text("Terrain", fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	)
	parent.AddChild(paletteLabel)

	panel := &PalettePanel{}
	terrains := world.PaintableTerrains()
	entries := make([]any, 0, len(terrains))
	for _, t := range terrains {
		entries = append(entries, t)
	}
	panel.entries = entries

	list := widget.NewList(
		widget.ListOpts.Entries(entries),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if t, ok := e.(world.TerrainType); ok {
				return t.String()
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			t, ok := args.Entry.(world.TerrainType)
			if !ok || panel.suppressEvents {
				return
			}
			if onBrushSelected != nil {
				onBrushSelected(t)
			}
		}),
	)
	parent.AddChild(list)
	panel.list = list
	return panel
}

func addScriptSection(
	parent *widget.Container,
	theme *widget.Theme,
	fontFace *text.Face,
	scriptNames []string,
	onScriptSelected func(name string),
	onRunScript func(name string),
) *ScriptPanel {
	scriptsLabel := widget.NewLabel(
		widget.LabelOpts.Text("Generators", fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	)
	parent.AddChild(scriptsLabel)

	panel := &ScriptPanel{}
	entries := make([]any, 0, len(scriptNames))
	for _, name := range scriptNames {
		entries = append(entries, name)
	}
	panel.entries = entries

	list := widget.NewList(
		widget.ListOpts.Entries(entries),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			name, _ := e.(string)
			return filepath.Base(name)
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			name, ok := args.Entry.(string)
			if !ok {
				return
			}
			if onScriptSelected != nil {
				onScriptSelected(name)
			}
		}),
	)
	parent.AddChild(list)
	panel.list = list

	runBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Run Generator", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onRunScript == nil {
				return
			}
			if name, ok := panel.Selected(); ok {
				onRunScript(name)
			}
		}),
	)
	parent.AddChild(runBtn)
	panel.runBtn = runBtn
	return panel
}
