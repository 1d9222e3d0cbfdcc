package layout

import (
	"fyne.io/fyne/v2"
)

// RowLayout stacks objects top to bottom at their minimum size, anchored
// to the left edge, with a fixed inset and a per-row gap above each row.
// Rows beyond len(gaps) get no gap.
type RowLayout struct {
	padX float32
	padY float32
	gaps []float32
}

var _ fyne.Layout = (*RowLayout)(nil)

func NewRowLayout(padX, padY float32, gaps ...float32) *RowLayout {
	return &RowLayout{
		padX: padX,
		padY: padY,
		gaps: gaps,
	}
}

func (rl *RowLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	y := rl.padY
	for i, obj := range objects {
		if !obj.Visible() {
			continue
		}
		y += rl.gap(i)

		size := obj.MinSize()
		if maxWidth := containerSize.Width - 2*rl.padX; size.Width > maxWidth && maxWidth > 0 {
			size.Width = maxWidth
		}
		obj.Resize(size)
		obj.Move(fyne.NewPos(rl.padX, y))
		y += size.Height
	}
}

func (rl *RowLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	width := float32(0)
	height := 2 * rl.padY

	for i, obj := range objects {
		if !obj.Visible() {
			continue
		}
		size := obj.MinSize()
		if size.Width > width {
			width = size.Width
		}
		height += rl.gap(i) + size.Height
	}

	return fyne.NewSize(width+2*rl.padX, height)
}

func (rl *RowLayout) gap(index int) float32 {
	if index < len(rl.gaps) {
		return rl.gaps[index]
	}
	return 0
}
