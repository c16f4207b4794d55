package main

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/worldbuilder/world"
)

func BuildUI(
	scriptNames []string,
	initialGridIndex int,
	onBrushSelected func(t world.TerrainType),
	onScriptSelected func(name string),
	onRunScript func(name string),
	onGridSelected func(i int),
	onToggleOverlay func(i int),
	onToggleBounds func(),
	onToggleEnemyCones func(),
	onToggleCamCones func(),
	onToggleCollision func(),
	onCycleTileFade func(),
	onCycleBoundsFade func(),
) (*ebitenui.UI, *LeftPanelUI, *RightPanelUI, *GridBar, *StatusBar) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}

	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newBuilderTheme(&fontFace)

	leftPanel := buildLeftPanelUI(ui.PrimaryTheme, &fontFace, scriptNames, onBrushSelected, onScriptSelected, onRunScript)
	rightPanel := buildRightPanelUI(
		ui.PrimaryTheme,
		&fontFace,
		onToggleOverlay,
		onToggleBounds,
		onToggleEnemyCones,
		onToggleCamCones,
		onToggleCollision,
		onCycleTileFade,
		onCycleBoundsFade,
	)
	gridBarContainer, gridBar := buildGridBar(ui.PrimaryTheme, &fontFace, onGridSelected, initialGridIndex)
	statusBar := buildStatusBar(&fontFace)

	// Root container: anchor layout
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	leftPanel.Container.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	rightPanel.Container.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	gridBarContainer.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	statusBar.container.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionEnd,
		StretchHorizontal:  true,
	}
	root.AddChild(leftPanel.Container)
	root.AddChild(rightPanel.Container)
	root.AddChild(gridBarContainer)
	root.AddChild(statusBar.container)

	ui.Container = root
	return ui, leftPanel, rightPanel, gridBar, statusBar
}

func buildStatusBar(fontFace *text.Face) *StatusBar {
	bar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(400, 26),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.NRGBA{0, 0, 0, 170})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 4, Bottom: 4, Left: 10, Right: 10}),
			),
		),
	)
	line := widget.NewText(
		widget.TextOpts.Text("", fontFace, color.White),
	)
	bar.AddChild(line)
	return &StatusBar{container: bar, line: line}
}
