// Package gui renders the countdown widget with Fyne. It draws whatever
// state.View it is handed and reports raw input; it holds no application
// state of its own.
package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"retirement-countdown/internal/config"
	"retirement-countdown/internal/gui/components"
	"retirement-countdown/internal/gui/layout"
	"retirement-countdown/internal/logger"
	"retirement-countdown/internal/state"
	"retirement-countdown/internal/theme"
)

const (
	titleTextSize    = 18
	readoutTextSize  = 42
	minReadoutSize   = 24
	subtitleTextSize = 13

	panelPadX = 14
	panelPadY = 12
)

const exitLabel = "Exit"

// Input receives raw window events. Pointer positions are canvas relative.
type Input struct {
	OnKey           func(name fyne.KeyName)
	OnToggle        func()
	OnPrimaryDown   func(pos fyne.Position)
	OnDragged       func(pos fyne.Position)
	OnDragEnd       func()
	OnSecondaryDown func(pos fyne.Position)
}

type Window struct {
	app    fyne.App
	window fyne.Window
	logger logger.Logger

	background *canvas.Rectangle
	panel      *canvas.Rectangle
	title      *canvas.Text
	readout    *canvas.Text
	subtitle   *canvas.Text
	toggle     *components.ToggleButton
	surface    *components.DragSurface

	themeName theme.Name
	position  fyne.Position
	maxWidth  float32
}

// newBorderlessWindow uses a splash window, which has no decorations, when
// the driver is a desktop driver.
func newBorderlessWindow(a fyne.App, drv fyne.Driver, title string) fyne.Window {
	if d, ok := drv.(desktop.Driver); ok {
		win := d.CreateSplashWindow()
		win.SetTitle(title)
		return win
	}
	return a.NewWindow(title)
}

// NewWindow builds the borderless widget window with the palette for
// darkMode already installed, so text is measured with the widget's fonts.
func NewWindow(a fyne.App, cfg config.Config, darkMode bool, log logger.Logger) *Window {
	palette := theme.For(darkMode)
	a.Settings().SetTheme(theme.NewAppTheme(palette))

	w := &Window{
		app:       a,
		window:    newBorderlessWindow(a, a.Driver(), cfg.Title),
		logger:    log,
		position:  fyne.NewPos(cfg.X, cfg.Y),
		themeName: palette.Name,
		maxWidth:  cfg.Width - 2*panelPadX,
	}
	win := w.window
	w.build(cfg)

	win.SetPadded(false)
	win.Resize(fyne.NewSize(cfg.Width, cfg.Height))
	win.SetFixedSize(true)

	return w
}

func (w *Window) build(cfg config.Config) {
	w.background = canvas.NewRectangle(color.Transparent)
	w.panel = canvas.NewRectangle(color.Transparent)

	w.title = canvas.NewText(cfg.Title, color.White)
	w.title.TextSize = titleTextSize
	w.title.TextStyle = fyne.TextStyle{Bold: true}

	w.readout = canvas.NewText("", color.White)
	w.readout.TextSize = readoutTextSize
	w.readout.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}

	w.subtitle = canvas.NewText("", color.White)
	w.subtitle.TextSize = subtitleTextSize

	w.toggle = components.NewToggleButton("", nil)

	rows := container.New(
		layout.NewRowLayout(panelPadX, panelPadY, 0, 6, 6, 8),
		w.title,
		w.readout,
		w.subtitle,
		w.toggle,
	)

	w.surface = components.NewDragSurface(container.NewStack(w.background, w.panel, rows))
	w.window.SetContent(w.surface)
}

// Bind routes window input to in.
func (w *Window) Bind(in Input) {
	w.toggle.OnTapped = in.OnToggle
	w.surface.OnPrimaryDown = in.OnPrimaryDown
	w.surface.OnDragged = in.OnDragged
	w.surface.OnDragEnd = in.OnDragEnd
	w.surface.OnSecondaryDown = in.OnSecondaryDown

	if in.OnKey == nil {
		w.window.Canvas().SetOnTypedKey(nil)
		return
	}
	w.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		in.OnKey(ev.Name)
	})
}

// Apply draws v. Unchanged elements are not refreshed, so calling it on
// every tick only repaints the readout.
func (w *Window) Apply(v state.View) {
	p := v.Palette

	if w.themeName != p.Name {
		w.themeName = p.Name
		w.app.Settings().SetTheme(theme.NewAppTheme(p))
		w.logger.Debug("Window", "palette applied", map[string]interface{}{"theme": string(p.Name)})
	}

	setFill(w.background, p.Background)
	setFill(w.panel, p.Panel)
	setText(w.title, v.Title, p.Title)
	setText(w.readout, v.Readout, v.ReadoutColor)
	fitText(w.readout, w.maxWidth, readoutTextSize, minReadoutSize)
	setText(w.subtitle, v.Subtitle, p.Subtitle)
	w.toggle.Set(v.ToggleLabel, p.ButtonBG, p.ButtonFG)
}

// Move places the window. It returns false when the platform does not let
// Fyne reposition windows.
func (w *Window) Move(p state.Point) bool {
	w.position = fyne.NewPos(p.X, p.Y)
	return place(w.window, w.position, false)
}

// Place applies the initial position and the always-on-top request.
func (w *Window) Place() bool {
	return place(w.window, w.position, true)
}

// ShowMenu opens the context menu at a canvas position.
func (w *Window) ShowMenu(at state.Point, onExit func()) {
	menu := fyne.NewMenu("", fyne.NewMenuItem(exitLabel, onExit))
	widget.ShowPopUpMenuAtPosition(menu, w.window.Canvas(), fyne.NewPos(at.X, at.Y))
}

func (w *Window) Show() {
	w.window.Show()
}

func (w *Window) Close() {
	w.window.Close()
}

func setFill(r *canvas.Rectangle, c color.Color) {
	if r.FillColor == c {
		return
	}
	r.FillColor = c
	r.Refresh()
}

func setText(t *canvas.Text, text string, c color.Color) {
	if t.Text == text && t.Color == c {
		return
	}
	t.Text = text
	t.Color = c
	t.Refresh()
}

// fitText shrinks t until it fits maxWidth, never below minSize, and grows
// it back to maxSize when the text gets shorter.
func fitText(t *canvas.Text, maxWidth, maxSize, minSize float32) {
	size := maxSize
	for size > minSize && fyne.MeasureText(t.Text, size, t.TextStyle).Width > maxWidth {
		size--
	}
	if t.TextSize != size {
		t.TextSize = size
		t.Refresh()
	}
}
