package ui

import (
	"fyne.io/fyne/v2"

	"DrawSpace/internal/state"
)

const (
	minScale = 0.3
	maxScale = 3.0
	zoomStep = 1.2
)

// Viewport maps between widget coordinates and canvas coordinates.
type Viewport struct {
	PanX, PanY float32
	Scale      float32
}

func NewViewport() Viewport {
	return Viewport{Scale: 1}
}

// ToCanvas applies the inverse of the pan/zoom transform.
func (v Viewport) ToCanvas(pos fyne.Position) state.Point {
	s := v.scale()
	return state.Point{X: (pos.X - v.PanX) / s, Y: (pos.Y - v.PanY) / s}
}

// ToScreen maps a canvas point into widget coordinates.
func (v Viewport) ToScreen(p state.Point) fyne.Position {
	s := v.scale()
	return fyne.NewPos(p.X*s+v.PanX, p.Y*s+v.PanY)
}

// Pan shifts the view by a widget-space delta.
func (v *Viewport) Pan(d fyne.Delta) {
	v.PanX += d.DX
	v.PanY += d.DY
}

func (v *Viewport) ZoomIn()  { v.zoomTo(v.scale() * zoomStep) }
func (v *Viewport) ZoomOut() { v.zoomTo(v.scale() / zoomStep) }

// Reset returns to the unpanned, unzoomed view.
func (v *Viewport) Reset() {
	*v = NewViewport()
}

func (v *Viewport) zoomTo(scale float32) {
	v.Scale = min(max(scale, minScale), maxScale)
}

func (v Viewport) scale() float32 {
	if v.Scale <= 0 {
		return 1
	}
	return v.Scale
}
