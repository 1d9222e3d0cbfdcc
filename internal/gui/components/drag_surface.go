package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// DragSurface wraps the window content and reports raw pointer input.
// Positions are relative to the window canvas.
type DragSurface struct {
	widget.BaseWidget

	OnPrimaryDown   func(pos fyne.Position)
	OnDragged       func(pos fyne.Position)
	OnDragEnd       func()
	OnSecondaryDown func(pos fyne.Position)

	content fyne.CanvasObject
}

var (
	_ desktop.Mouseable = (*DragSurface)(nil)
	_ fyne.Draggable    = (*DragSurface)(nil)
)

func NewDragSurface(content fyne.CanvasObject) *DragSurface {
	s := &DragSurface{content: content}
	s.ExtendBaseWidget(s)
	return s
}

func (s *DragSurface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}

func (s *DragSurface) MouseDown(ev *desktop.MouseEvent) {
	switch ev.Button {
	case desktop.MouseButtonPrimary:
		if s.OnPrimaryDown != nil {
			s.OnPrimaryDown(ev.AbsolutePosition)
		}
	case desktop.MouseButtonSecondary:
		if s.OnSecondaryDown != nil {
			s.OnSecondaryDown(ev.AbsolutePosition)
		}
	}
}

func (s *DragSurface) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button == desktop.MouseButtonPrimary {
		s.endDrag()
	}
}

func (s *DragSurface) Dragged(ev *fyne.DragEvent) {
	if s.OnDragged != nil {
		s.OnDragged(ev.AbsolutePosition)
	}
}

func (s *DragSurface) DragEnd() {
	s.endDrag()
}

func (s *DragSurface) endDrag() {
	if s.OnDragEnd != nil {
		s.OnDragEnd()
	}
}
