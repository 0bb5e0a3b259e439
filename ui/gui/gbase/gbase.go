package gbase

import (
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	WindowW int = 960
	WindowH int = 640
)

// ---- Styles (palettes) ----

type Palette struct {
	Bg           color.RGBA
	TrayFill     color.RGBA
	BoardFill    color.RGBA
	PanelStroke  color.RGBA
	ButtonFill   color.RGBA
	ButtonStroke color.RGBA
	ButtonText   color.RGBA
	MenuText     color.RGBA
	LabelText    color.RGBA
	HintText     color.RGBA
	Accent       color.RGBA
	Success      color.RGBA
	OverlayFill  color.RGBA
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return "light"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case "dark":
		return DarkPalette
	default:
	}
	return LightPalette
}

var LightPalette = Palette{
	Bg:           color.RGBA{0x22, 0x8c, 0xc8, 0xff},
	TrayFill:     color.RGBA{0x19, 0x1e, 0x26, 0xff},
	BoardFill:    color.RGBA{0x2c, 0x34, 0x3f, 0xff},
	PanelStroke:  color.RGBA{0xa0, 0xa5, 0xaa, 0xff},
	ButtonFill:   color.RGBA{0xff, 0xff, 0xff, 0xff},
	ButtonStroke: color.RGBA{0x88, 0x88, 0x88, 0xff},
	ButtonText:   color.RGBA{0x22, 0x22, 0x22, 0xff},
	MenuText:     color.RGBA{0xff, 0xff, 0xff, 0xff},
	LabelText:    color.RGBA{0xb4, 0xbe, 0xc8, 0xff},
	HintText:     color.RGBA{0x46, 0x4b, 0x50, 0xff},
	Accent:       color.RGBA{0xff, 0xd2, 0x50, 0xff},
	Success:      color.RGBA{0x48, 0xc7, 0x8e, 0xff},
	OverlayFill:  color.RGBA{0x0a, 0x0f, 0x19, 0xff},
}

var DarkPalette = Palette{
	Bg:           color.RGBA{0x12, 0x12, 0x12, 0xff},
	TrayFill:     color.RGBA{0x1c, 0x1c, 0x20, 0xff},
	BoardFill:    color.RGBA{0x24, 0x24, 0x2a, 0xff},
	PanelStroke:  color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	ButtonFill:   color.RGBA{0x20, 0x20, 0x20, 0xff},
	ButtonStroke: color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	ButtonText:   color.RGBA{0xee, 0xee, 0xee, 0xff},
	MenuText:     color.RGBA{0xee, 0xee, 0xee, 0xff},
	LabelText:    color.RGBA{0x9a, 0xa4, 0xae, 0xff},
	HintText:     color.RGBA{0x88, 0x88, 0x88, 0xff},
	Accent:       color.RGBA{0x2a, 0xa1, 0xd1, 0xff},
	Success:      color.RGBA{0x48, 0xc7, 0x8e, 0xff},
	OverlayFill:  color.RGBA{0x00, 0x00, 0x00, 0xff},
}
