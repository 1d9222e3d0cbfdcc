package state

// Effect is a side effect requested by a transition.
type Effect interface {
	isEffect()
}

// Render redraws every element from View.
type Render struct {
	View View
}

// SavePreference persists the dark-mode flag, best effort.
type SavePreference struct {
	DarkMode bool
}

// MoveWindow places the window's top-left corner at Position.
type MoveWindow struct {
	Position Point
}

// OpenMenu shows the context menu at a pointer position relative to the window.
type OpenMenu struct {
	At Point
}

// Quit closes the window and ends the process.
type Quit struct{}

func (Render) isEffect()         {}
func (SavePreference) isEffect() {}
func (MoveWindow) isEffect()     {}
func (OpenMenu) isEffect()       {}
func (Quit) isEffect()           {}
