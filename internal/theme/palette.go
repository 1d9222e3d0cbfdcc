package theme

import (
	"image/color"
)

type Name string

const (
	Light Name = "light"
	Dark  Name = "dark"
)

// Palette is the full set of colors applied to the widget for one theme.
type Palette struct {
	Name       Name
	Background color.NRGBA
	Panel      color.NRGBA
	Title      color.NRGBA
	Countdown  color.NRGBA
	Subtitle   color.NRGBA
	ButtonBG   color.NRGBA
	ButtonFG   color.NRGBA
}

// ReachedColor is used for the readout once the target has passed, in
// either theme.
var ReachedColor = rgb(0x34, 0x03, 0x99)

var light = Palette{
	Name:       Light,
	Background: rgb(0x93, 0xC5, 0xFD),
	Panel:      rgb(0x19, 0xB0, 0xA8),
	Title:      rgb(0xA7, 0xF3, 0xD0),
	Countdown:  rgb(0xFB, 0xBF, 0x24),
	Subtitle:   rgb(0x93, 0xC5, 0xFD),
	ButtonBG:   rgb(0x0C, 0x74, 0x89),
	ButtonFG:   rgb(0xE0, 0xF2, 0xFE),
}

var dark = Palette{
	Name:       Dark,
	Background: rgb(0x1E, 0x29, 0x39),
	Panel:      rgb(0x0F, 0x17, 0x2A),
	Title:      rgb(0x94, 0xA3, 0xB8),
	Countdown:  rgb(0xF5, 0x9E, 0x0B),
	Subtitle:   rgb(0x64, 0x74, 0x8B),
	ButtonBG:   rgb(0x33, 0x41, 0x55),
	ButtonFG:   rgb(0xCB, 0xD5, 0xE1),
}

// For returns the palette for the given dark-mode flag.
func For(darkMode bool) Palette {
	if darkMode {
		return dark
	}
	return light
}

// ToggleLabel is the caption of the theme switch: it names the mode the
// user would switch to, prefixed by an icon for the current one.
func ToggleLabel(darkMode bool) string {
	if darkMode {
		return "🌙 Light Mode"
	}
	return "💡 Dark Mode"
}

func rgb(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}
