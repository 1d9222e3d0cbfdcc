//go:build darwin && !ios && cgo

package gui

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa
#import <Cocoa/Cocoa.h>

static int placeNSWindow(uintptr_t handle, double x, double y, int topmost) {
	NSWindow *win = (NSWindow *)handle;
	if (win == nil) {
		return 0;
	}
	NSScreen *screen = [win screen];
	if (screen == nil) {
		screen = [NSScreen mainScreen];
	}
	// Cocoa measures from the bottom-left of the screen.
	CGFloat top = NSMaxY([screen frame]);
	[win setFrameTopLeftPoint:NSMakePoint(x, top - y)];
	if (topmost) {
		[win setLevel:NSFloatingWindowLevel];
	}
	return 1;
}
*/
import "C"

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
)

func nativePlace(w fyne.Window, pos fyne.Position, topmost bool) bool {
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		return false
	}

	top := C.int(0)
	if topmost {
		top = 1
	}

	placed := false
	nw.RunNative(func(ctx any) {
		wc, ok := ctx.(driver.MacWindowContext)
		if !ok || wc.NSWindow == 0 {
			return
		}
		placed = C.placeNSWindow(C.uintptr_t(wc.NSWindow), C.double(pos.X), C.double(pos.Y), top) == 1
	})
	return placed
}
