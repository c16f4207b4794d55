package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

var panelColor = color.RGBA{34, 34, 40, 255}

func newBuilderTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		ListTheme: &widget.ListParams{
			EntryFace: fontFace,
			EntryColor: &widget.ListEntryColor{
				Unselected:          color.White,
				Selected:            color.White,
				DisabledUnselected:  color.Gray{Y: 128},
				DisabledSelected:    color.Gray{Y: 64},
				SelectingBackground: color.RGBA{68, 88, 140, 255},
				SelectedBackground:  color.RGBA{58, 78, 128, 255},
			},
			ScrollContainerImage: &widget.ScrollContainerImage{
				Idle: solidNineSlice(color.RGBA{50, 50, 58, 255}),
				Mask: solidNineSlice(color.RGBA{50, 50, 58, 255}),
			},
		},
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(panelColor),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    solidNineSlice(color.RGBA{86, 86, 98, 255}),
				Hover:   solidNineSlice(color.RGBA{106, 106, 120, 255}),
				Pressed: solidNineSlice(color.RGBA{68, 68, 80, 255}),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle: color.White,
			},
		},
		SliderTheme: &widget.SliderParams{
			TrackImage: &widget.SliderTrackImage{
				Idle:  solidNineSlice(color.RGBA{86, 86, 98, 255}),
				Hover: solidNineSlice(color.RGBA{106, 106, 120, 255}),
			},
			HandleImage: &widget.ButtonImage{
				Idle:    solidNineSlice(color.RGBA{140, 140, 155, 255}),
				Hover:   solidNineSlice(color.RGBA{168, 168, 182, 255}),
				Pressed: solidNineSlice(color.RGBA{120, 120, 134, 255}),
			},
		},
	}
}
