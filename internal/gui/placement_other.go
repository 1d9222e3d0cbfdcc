//go:build !windows && !(darwin && !ios && cgo) && !((linux && !android) || freebsd || openbsd || netbsd)

package gui

import (
	"fyne.io/fyne/v2"
)

// Mobile, web and cgo-less macOS builds cannot move or raise windows.
func nativePlace(fyne.Window, fyne.Position, bool) bool {
	return false
}
