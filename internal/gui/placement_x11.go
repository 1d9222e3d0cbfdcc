//go:build (linux && !android) || freebsd || openbsd || netbsd

package gui

import (
	"io"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

const (
	netWMStateAdd = 1
	// Source indication 1 marks the request as coming from a normal
	// application.
	netWMSourceApplication = 1
)

type x11Display struct {
	conn    *xgb.Conn
	root    xproto.Window
	wmState xproto.Atom
	above   xproto.Atom
}

var (
	x11Once sync.Once
	x11     *x11Display
	x11Err  error
)

func openX11() (*x11Display, error) {
	x11Once.Do(func() {
		// xgb reports connection trouble on stderr by itself; failures are
		// returned to the caller instead.
		xgb.Logger.SetOutput(io.Discard)

		conn, err := xgb.NewConn()
		if err != nil {
			x11Err = err
			return
		}

		d := &x11Display{
			conn: conn,
			root: xproto.Setup(conn).DefaultScreen(conn).Root,
		}
		if d.wmState, err = internAtom(conn, "_NET_WM_STATE"); err != nil {
			conn.Close()
			x11Err = err
			return
		}
		if d.above, err = internAtom(conn, "_NET_WM_STATE_ABOVE"); err != nil {
			conn.Close()
			x11Err = err
			return
		}
		x11 = d
	})
	return x11, x11Err
}

func internAtom(conn *xgb.Conn, name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, err
	}
	return reply.Atom, nil
}

func nativePlace(w fyne.Window, pos fyne.Position, topmost bool) bool {
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		return false
	}

	var handle uintptr
	nw.RunNative(func(ctx any) {
		if wc, ok := ctx.(driver.X11WindowContext); ok {
			handle = wc.WindowHandle
		}
	})
	if handle == 0 {
		return false
	}

	d, err := openX11()
	if err != nil {
		return false
	}

	x, y := devicePosition(pos, w.Canvas().Scale())
	return d.place(xproto.Window(handle), x, y, topmost) == nil
}

// devicePosition converts canvas units to X11 pixels.
func devicePosition(pos fyne.Position, scale float32) (int32, int32) {
	return int32(math.Round(float64(pos.X * scale))), int32(math.Round(float64(pos.Y * scale)))
}

// aboveRequest asks the window manager to add _NET_WM_STATE_ABOVE to win.
func aboveRequest(win xproto.Window, wmState, above xproto.Atom) xproto.ClientMessageEvent {
	return xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   wmState,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			netWMStateAdd, uint32(above), 0, netWMSourceApplication, 0,
		}),
	}
}

func (d *x11Display) place(win xproto.Window, x, y int32, topmost bool) error {
	err := xproto.ConfigureWindowChecked(d.conn, win,
		xproto.ConfigWindowX|xproto.ConfigWindowY,
		[]uint32{uint32(x), uint32(y)},
	).Check()
	if err != nil || !topmost {
		return err
	}

	ev := aboveRequest(win, d.wmState, d.above)
	return xproto.SendEventChecked(d.conn, false, d.root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}
