package gui

import (
	"fyne.io/fyne/v2"
)

// place moves the native window to pos (canvas units) and, when topmost is
// set, raises it above normal windows. Fyne has no portable window
// position or z-order API, so this reaches the native handle where the
// platform allows it and reports whether anything was applied.
func place(w fyne.Window, pos fyne.Position, topmost bool) bool {
	return nativePlace(w, pos, topmost)
}
