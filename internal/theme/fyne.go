package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// AppTheme adapts a Palette to fyne.Theme so toolkit-drawn surfaces
// (context menu, focus, hover) follow the widget colors.
type AppTheme struct {
	palette Palette
	base    fyne.Theme
}

var _ fyne.Theme = (*AppTheme)(nil)

func NewAppTheme(p Palette) *AppTheme {
	return &AppTheme{palette: p, base: fynetheme.DefaultTheme()}
}

func (t *AppTheme) Palette() Palette {
	return t.palette
}

func (t *AppTheme) variant() fyne.ThemeVariant {
	if t.palette.Name == Dark {
		return fynetheme.VariantDark
	}
	return fynetheme.VariantLight
}

func (t *AppTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case fynetheme.ColorNameBackground:
		return t.palette.Background
	case fynetheme.ColorNameMenuBackground, fynetheme.ColorNameOverlayBackground:
		return t.palette.Panel
	case fynetheme.ColorNameForeground:
		return t.palette.ButtonFG
	case fynetheme.ColorNameButton:
		return t.palette.ButtonBG
	case fynetheme.ColorNamePrimary:
		return t.palette.Countdown
	}
	return t.base.Color(name, t.variant())
}

func (t *AppTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *AppTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *AppTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name)
}
