//go:build (linux && !android) || freebsd || openbsd || netbsd

package gui

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/require"
)

func TestDevicePositionScales(t *testing.T) {
	t.Parallel()

	x, y := devicePosition(fyne.NewPos(40, 40), 1)
	require.Equal(t, int32(40), x)
	require.Equal(t, int32(40), y)

	x, y = devicePosition(fyne.NewPos(40, 15.3), 1.5)
	require.Equal(t, int32(60), x)
	require.Equal(t, int32(23), y)

	// Dragging off the left or top edge is allowed.
	x, y = devicePosition(fyne.NewPos(-20, -15), 2)
	require.Equal(t, int32(-40), x)
	require.Equal(t, int32(-30), y)
}

func TestAboveRequestAddsState(t *testing.T) {
	t.Parallel()

	ev := aboveRequest(xproto.Window(0x1c00007), xproto.Atom(301), xproto.Atom(322))

	require.Equal(t, byte(32), ev.Format)
	require.Equal(t, xproto.Window(0x1c00007), ev.Window)
	require.Equal(t, xproto.Atom(301), ev.Type)
	require.Equal(t, []uint32{1, 322, 0, 1, 0}, ev.Data.Data32)
	require.Len(t, ev.Bytes(), 32)
}

func TestPlaceWithoutNativeWindow(t *testing.T) {
	w, _ := newTestWindow(t)
	require.False(t, nativePlace(w.window, fyne.NewPos(40, 40), true))
}
