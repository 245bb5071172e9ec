package main

import (
	"image/color"

	dark "github.com/thiagokokada/dark-mode-go"

	"splinedit/editor"
)

type palette struct {
	Name       string
	Background color.RGBA
	Text       color.RGBA
	Track      color.RGBA
	Knob       color.RGBA
	Style      editor.Style
}

var lightPalette = palette{
	Name:       "light",
	Background: color.RGBA{0xff, 0xff, 0xff, 0xff},
	Text:       color.RGBA{0x33, 0x33, 0x33, 0xff},
	Track:      color.RGBA{0xcc, 0xcc, 0xcc, 0xff},
	Knob:       color.RGBA{0x00, 0x84, 0xb4, 0xff},
	Style:      editor.DefaultStyle,
}

var darkPalette = palette{
	Name:       "dark",
	Background: color.RGBA{0x1e, 0x1f, 0x22, 0xff},
	Text:       color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	Track:      color.RGBA{0x44, 0x46, 0x4a, 0xff},
	Knob:       color.RGBA{0x33, 0xb5, 0xe5, 0xff},
	Style: editor.Style{
		Point:       color.RGBA{0x33, 0xb5, 0xe5, 0xff},
		Hover:       color.RGBA{0x8f, 0xd8, 0xf5, 0xff},
		Curve:       color.RGBA{0xe0, 0xe0, 0xe0, 0xff},
		PointRadius: editor.DefaultStyle.PointRadius,
		LineWidth:   editor.DefaultStyle.LineWidth,
	},
}

// isDarkModeFn is swapped out in tests.
var isDarkModeFn = dark.IsDarkMode

// pickPalette resolves the theme setting. An empty theme follows the
// desktop's dark mode preference and falls back to light when unknown.
func pickPalette(theme string) palette {
	var p palette
	switch theme {
	case "dark":
		p = darkPalette
	case "light":
		p = lightPalette
	default:
		darkMode, err := isDarkModeFn()
		if err != nil {
			logDebug("dark mode detection: %v", err)
		}
		if err == nil && darkMode {
			p = darkPalette
		} else {
			p = lightPalette
		}
	}
	p.Style.PointRadius = gs.PointRadius
	p.Style.LineWidth = gs.LineWidth
	return p
}
