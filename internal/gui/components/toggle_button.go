package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const (
	toggleTextSize = 12
	togglePadX     = 8
	togglePadY     = 4
)

// ToggleButton is a flat, fully recolorable button. widget.Button takes
// its colors from the app theme only, which cannot express a separate
// button foreground per palette.
type ToggleButton struct {
	widget.BaseWidget

	OnTapped func()

	background *canvas.Rectangle
	label      *canvas.Text
}

var (
	_ fyne.Tappable      = (*ToggleButton)(nil)
	_ desktop.Cursorable = (*ToggleButton)(nil)
)

func NewToggleButton(text string, tapped func()) *ToggleButton {
	b := &ToggleButton{
		OnTapped:   tapped,
		background: canvas.NewRectangle(color.Transparent),
		label:      canvas.NewText(text, color.White),
	}
	b.label.TextSize = toggleTextSize
	b.ExtendBaseWidget(b)
	return b
}

func (b *ToggleButton) CreateRenderer() fyne.WidgetRenderer {
	padded := container.New(
		layout.NewCustomPaddedLayout(togglePadY, togglePadY, togglePadX, togglePadX),
		b.label,
	)
	return widget.NewSimpleRenderer(container.NewStack(b.background, padded))
}

func (b *ToggleButton) Tapped(*fyne.PointEvent) {
	if b.OnTapped != nil {
		b.OnTapped()
	}
}

func (b *ToggleButton) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

func (b *ToggleButton) Text() string {
	return b.label.Text
}

func (b *ToggleButton) Colors() (bg, fg color.Color) {
	return b.background.FillColor, b.label.Color
}

// Set updates caption and colors, refreshing only what changed.
func (b *ToggleButton) Set(text string, bg, fg color.Color) {
	if b.label.Text != text || b.label.Color != fg {
		b.label.Text = text
		b.label.Color = fg
		b.label.Refresh()
	}
	if b.background.FillColor != bg {
		b.background.FillColor = bg
		b.background.Refresh()
	}
}
