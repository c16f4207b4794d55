package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/worldbuilder/iso"
)

func buildGridBar(theme *widget.Theme, fontFace *text.Face, onGridSelected func(i int), initialIndex int) (*widget.Container, *GridBar) {
	buttonTextColor := &widget.ButtonTextColor{
		Idle:     color.White,
		Hover:    color.White,
		Pressed:  color.RGBA{160, 200, 255, 255},
		Disabled: color.Gray{Y: 128},
	}

	bar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(260, 44),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
	)

	var buttons []*widget.Button
	for _, size := range iso.GridSizes {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(fmt.Sprintf("%d", int(size)), fontFace, buttonTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(48, 36),
			),
		)
		buttons = append(buttons, btn)
		bar.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(buttons))
	for _, b := range buttons {
		elements = append(elements, b)
	}

	group := widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if onGridSelected == nil {
				return
			}
			for idx, b := range buttons {
				if args.Active == b {
					onGridSelected(idx)
					return
				}
			}
		}),
	)

	if initialIndex >= 0 && initialIndex < len(buttons) {
		group.SetActive(buttons[initialIndex])
	}

	return bar, &GridBar{group: group, buttons: buttons}
}

func buildRightPanelUI(
	theme *widget.Theme,
	fontFace *text.Face,
	onToggleOverlay func(i int),
	onToggleBounds func(),
	onToggleEnemyCones func(),
	onToggleCamCones func(),
	onToggleCollision func(),
	onCycleTileFade func(),
	onCycleBoundsFade func(),
) *RightPanelUI {
	rightPanel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(190, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)

	view := &ViewPanel{}
	labelColor := &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}

	rightPanel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Grid Overlays", fontFace, labelColor),
	))
	for i := range iso.GridSizes {
		i := i
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(overlayLabel(iso.GridSizes[i], false), fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onToggleOverlay != nil {
					onToggleOverlay(i)
				}
			}),
		)
		view.overlayBtns = append(view.overlayBtns, btn)
		rightPanel.AddChild(btn)
	}

	rightPanel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Display", fontFace, labelColor),
	))
	view.boundsBtn = widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Bounds: Off", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onToggleBounds != nil {
				onToggleBounds()
			}
		}),
	)
	rightPanel.AddChild(view.boundsBtn)

	view.enemyConeBtn = widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Enemy Cones: Off", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onToggleEnemyCones != nil {
				onToggleEnemyCones()
			}
		}),
	)
	rightPanel.AddChild(view.enemyConeBtn)

	view.camConeBtn = widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Camera Cones: Off", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onToggleCamCones != nil {
				onToggleCamCones()
			}
		}),
	)
	rightPanel.AddChild(view.camConeBtn)

	view.tileFadeBtn = widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Tile Opacity: 100%", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onCycleTileFade != nil {
				onCycleTileFade()
			}
		}),
	)
	rightPanel.AddChild(view.tileFadeBtn)

	view.boundsFadeBtn = widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Bounds Opacity: 100%", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onCycleBoundsFade != nil {
				onCycleBoundsFade()
			}
		}),
	)
	rightPanel.AddChild(view.boundsFadeBtn)

	rightPanel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Collision", fontFace, labelColor),
	))
	view.collisionBtn = widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Collision Mode: Off", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onToggleCollision != nil {
				onToggleCollision()
			}
		}),
	)
	rightPanel.AddChild(view.collisionBtn)

	return &RightPanelUI{Container: rightPanel, View: view}
}
