package app

import (
	"fyne.io/fyne/v2"
	"github.com/jonboulle/clockwork"

	"retirement-countdown/internal/gui"
	"retirement-countdown/internal/logger"
	"retirement-countdown/internal/prefs"
	"retirement-countdown/internal/state"
)

// surface is the part of gui.Window the handlers drive.
type surface interface {
	Apply(v state.View)
	Move(p state.Point) bool
	ShowMenu(at state.Point, onExit func())
}

type preferenceStore interface {
	Load() (prefs.Preferences, error)
	Save(p prefs.Preferences) error
}

// Handlers owns the application state. Every method must run on the UI
// goroutine.
type Handlers struct {
	state   state.State
	surface surface
	store   preferenceStore
	clock   clockwork.Clock
	logger  logger.Logger
	quit    func()

	moveUnsupported bool
}

func NewHandlers(s state.State, sf surface, store preferenceStore, clock clockwork.Clock, log logger.Logger) *Handlers {
	return &Handlers{
		state:   s,
		surface: sf,
		store:   store,
		clock:   clock,
		logger:  log,
	}
}

// SetQuit installs the action run by the Exit menu item.
func (h *Handlers) SetQuit(quit func()) {
	h.quit = quit
}

func (h *Handlers) State() state.State {
	return h.state
}

func (h *Handlers) Tick() {
	h.apply(state.Tick(h.state, h.clock.Now()))
}

func (h *Handlers) Toggle() {
	h.apply(state.ToggleTheme(h.state, h.clock.Now()))
}

func (h *Handlers) Key(name fyne.KeyName) {
	h.apply(state.KeyPressed(h.state, string(name), h.clock.Now()))
}

func (h *Handlers) PrimaryDown(pos fyne.Position) {
	h.apply(state.PrimaryPressed(h.state, h.toScreen(pos)))
}

func (h *Handlers) Dragged(pos fyne.Position) {
	h.apply(state.Dragged(h.state, h.toScreen(pos)))
}

func (h *Handlers) DragEnd() {
	h.apply(state.Released(h.state))
}

func (h *Handlers) SecondaryDown(pos fyne.Position) {
	h.apply(state.SecondaryPressed(h.state, state.Point{X: pos.X, Y: pos.Y}))
}

func (h *Handlers) Exit() {
	h.apply(state.ExitRequested(h.state))
}

func (h *Handlers) Input() gui.Input {
	return gui.Input{
		OnKey:           h.Key,
		OnToggle:        h.Toggle,
		OnPrimaryDown:   h.PrimaryDown,
		OnDragged:       h.Dragged,
		OnDragEnd:       h.DragEnd,
		OnSecondaryDown: h.SecondaryDown,
	}
}

// toScreen converts a canvas position into screen units using the last
// window position that was actually applied.
func (h *Handlers) toScreen(pos fyne.Position) state.Point {
	return state.Point{X: h.state.Window.X + pos.X, Y: h.state.Window.Y + pos.Y}
}

func (h *Handlers) apply(next state.State, effects []state.Effect) {
	if h.state.Phase != state.Reached && next.Phase == state.Reached {
		h.logger.Info("Countdown", "target reached", map[string]interface{}{
			"target": next.Target.Format("2006-01-02 15:04:05"),
		})
	}
	placed := h.state.Window
	h.state = next

	for _, effect := range effects {
		switch e := effect.(type) {
		case state.Render:
			h.surface.Apply(e.View)
		case state.SavePreference:
			h.savePreference(e.DarkMode)
		case state.MoveWindow:
			if h.surface.Move(e.Position) {
				placed = e.Position
				continue
			}
			// The window stayed put, so later pointer positions are still
			// relative to the old corner.
			h.state.Window = placed
			if !h.moveUnsupported {
				h.moveUnsupported = true
				h.logger.Debug("Window", "window move not supported on this platform", nil)
			}
		case state.OpenMenu:
			h.surface.ShowMenu(e.At, h.Exit)
		case state.Quit:
			if h.quit != nil {
				h.quit()
			}
		}
	}
}

// savePreference is best effort: a failed write is logged and otherwise
// ignored.
func (h *Handlers) savePreference(darkMode bool) {
	if err := h.store.Save(prefs.Preferences{DarkMode: darkMode}); err != nil {
		h.logger.Warning("Preferences", "could not save preferences", map[string]interface{}{
			"error":     err.Error(),
			"dark_mode": darkMode,
		})
		return
	}
	h.logger.Debug("Preferences", "preferences saved", map[string]interface{}{"dark_mode": darkMode})
}

// loadDarkMode applies the light-mode default on any load failure.
func loadDarkMode(store preferenceStore, log logger.Logger) bool {
	p, err := store.Load()
	if err != nil {
		log.Warning("Preferences", "using default preferences", map[string]interface{}{
			"error": err.Error(),
		})
		return false
	}
	return p.DarkMode
}
