// Package state holds the widget's application state and the pure
// transitions that move it forward. Handlers feed events in and apply the
// returned effects to the real window; nothing here touches the toolkit.
package state

import (
	"image/color"
	"strings"
	"time"

	"retirement-countdown/internal/config"
	"retirement-countdown/internal/countdown"
	"retirement-countdown/internal/theme"
)

const Hint = "(Right-click to exit | Press 'D' for dark mode)"

// ToggleKey toggles the theme, matched case-insensitively.
const ToggleKey = "d"

type Phase int

const (
	Counting Phase = iota
	Reached
)

func (p Phase) String() string {
	switch p {
	case Counting:
		return "counting"
	case Reached:
		return "reached"
	default:
		return "unknown"
	}
}

// Point is a position in screen units.
type Point struct {
	X float32
	Y float32
}

func (p Point) Sub(o Point) Point { return Point{X: p.X - o.X, Y: p.Y - o.Y} }

type State struct {
	Title    string
	Target   time.Time
	DarkMode bool
	Phase    Phase

	// Readout is the last rendered countdown text.
	Readout string

	Window Point

	dragging   bool
	dragOffset Point
}

// View is everything visible, derived from a State.
type View struct {
	Title        string
	Readout      string
	Subtitle     string
	ToggleLabel  string
	Palette      theme.Palette
	ReadoutColor color.NRGBA
	Phase        Phase
}

func New(cfg config.Config, darkMode bool) State {
	return State{
		Title:    cfg.Title,
		Target:   cfg.Target,
		DarkMode: darkMode,
		Phase:    Counting,
		Readout:  countdown.Placeholder,
		Window:   Point{X: cfg.X, Y: cfg.Y},
	}
}

func (s State) Dragging() bool { return s.dragging }

func (s State) View() View {
	v := View{
		Title:       s.Title,
		Readout:     s.Readout,
		Subtitle:    Hint,
		ToggleLabel: theme.ToggleLabel(s.DarkMode),
		Palette:     theme.For(s.DarkMode),
		Phase:       s.Phase,
	}
	v.ReadoutColor = v.Palette.Countdown

	if s.Phase == Reached {
		v.Readout = countdown.ReachedText
		v.Subtitle = countdown.ReachedSubtitle
		v.ReadoutColor = theme.ReachedColor
	}
	return v
}

// Tick recomputes the readout for now. Reached is a latch: once entered,
// a later now before the target does not return to Counting.
func Tick(s State, now time.Time) (State, []Effect) {
	s = advance(s, now)
	return s, []Effect{Render{View: s.View()}}
}

func advance(s State, now time.Time) State {
	if s.Phase == Reached {
		return s
	}
	remaining := countdown.Remaining(s.Target, now)
	if countdown.Reached(remaining) {
		s.Phase = Reached
		s.Readout = countdown.ReachedText
	} else {
		s.Readout = countdown.FromDuration(remaining).String()
	}
	return s
}

// ToggleTheme flips dark mode, re-renders everything with the readout as of
// now and asks for the new flag to be saved.
func ToggleTheme(s State, now time.Time) (State, []Effect) {
	s.DarkMode = !s.DarkMode
	s = advance(s, now)
	return s, []Effect{
		Render{View: s.View()},
		SavePreference{DarkMode: s.DarkMode},
	}
}

func KeyPressed(s State, key string, now time.Time) (State, []Effect) {
	if strings.EqualFold(key, ToggleKey) {
		return ToggleTheme(s, now)
	}
	return s, nil
}

// PrimaryPressed starts a drag, remembering where inside the window the
// pointer grabbed it.
func PrimaryPressed(s State, pointer Point) (State, []Effect) {
	s.dragging = true
	s.dragOffset = pointer.Sub(s.Window)
	return s, nil
}

// Dragged moves the window so the grab offset stays under the pointer.
// The window is not kept on screen.
func Dragged(s State, pointer Point) (State, []Effect) {
	if !s.dragging {
		return s, nil
	}
	next := pointer.Sub(s.dragOffset)
	if next == s.Window {
		return s, nil
	}
	s.Window = next
	return s, []Effect{MoveWindow{Position: next}}
}

func Released(s State) (State, []Effect) {
	s.dragging = false
	s.dragOffset = Point{}
	return s, nil
}

func SecondaryPressed(s State, pointer Point) (State, []Effect) {
	return s, []Effect{OpenMenu{At: pointer}}
}

func ExitRequested(s State) (State, []Effect) {
	s.dragging = false
	return s, []Effect{Quit{}}
}
