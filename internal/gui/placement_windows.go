//go:build windows

package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
	"golang.org/x/sys/windows"
)

const (
	swpNoSize     = 0x0001
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010
)

// HWND_TOPMOST is (HWND)-1.
const hwndTopmost = ^uintptr(0)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	procSetWindowPos = user32.NewProc("SetWindowPos")
)

func nativePlace(w fyne.Window, pos fyne.Position, topmost bool) bool {
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		return false
	}

	scale := w.Canvas().Scale()
	x := int32(pos.X * scale)
	y := int32(pos.Y * scale)

	insertAfter := uintptr(0)
	flags := uintptr(swpNoSize | swpNoActivate)
	if topmost {
		insertAfter = hwndTopmost
	} else {
		flags |= swpNoZOrder
	}

	placed := false
	nw.RunNative(func(ctx any) {
		wc, ok := ctx.(driver.WindowsWindowContext)
		if !ok || wc.HWND == 0 {
			return
		}
		r, _, _ := procSetWindowPos.Call(wc.HWND, insertAfter, uintptr(x), uintptr(y), 0, 0, flags)
		placed = r != 0
	})
	return placed
}
