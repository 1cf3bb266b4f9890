package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"DrawSpace/internal/board"
	"DrawSpace/internal/state"
	"DrawSpace/internal/tools"
)

// gesture is what the pointer tool is doing with the selected shape.
type gesture int

const (
	gestureNone gesture = iota
	gestureMove
	gestureResize
)

// BoardWidget renders a board and turns mouse input into board events.
type BoardWidget struct {
	widget.BaseWidget
	board *board.Board
	vp    Viewport

	panning bool
	gesture gesture
	delta   state.Point

	statusBar *widget.Label
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(b *board.Board) *BoardWidget {
	w := &BoardWidget{
		board:     b,
		vp:        NewViewport(),
		statusBar: widget.NewLabel("Ready"),
	}
	w.ExtendBaseWidget(w)
	return w
}

// Board returns the board being rendered.
func (w *BoardWidget) Board() *board.Board { return w.board }

// Viewport returns the current pan/zoom.
func (w *BoardWidget) Viewport() Viewport { return w.vp }

// StatusBar is the label the widget reports into.
func (w *BoardWidget) StatusBar() *widget.Label { return w.statusBar }

func (w *BoardWidget) SetStatus(text string) {
	w.statusBar.SetText(text)
}

func (w *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p := w.vp.ToCanvas(e.Position)
	switch w.board.Tool() {
	case tools.Hand:
		w.panning = true
	case tools.Pointer:
		hit, ok := HitTest(w.board.State(), p)
		if !ok {
			w.board.PointerDown(p)
			return
		}
		w.board.Select(hit.ID, hit.Kind)
		w.gesture = gestureMove
		if e.Modifier&fyne.KeyModifierShift != 0 {
			w.gesture = gestureResize
		}
		w.delta = state.Point{}
	default:
		w.board.PointerDown(p)
	}
}

func (w *BoardWidget) Dragged(e *fyne.DragEvent) {
	switch {
	case w.panning:
		w.vp.Pan(e.Dragged)
		w.Refresh()
	case w.gesture != gestureNone:
		s := w.vp.scale()
		w.delta = w.delta.Add(state.Point{X: e.Dragged.DX / s, Y: e.Dragged.DY / s})
		w.Refresh()
	default:
		w.board.PointerMove(w.vp.ToCanvas(e.Position))
	}
}

func (w *BoardWidget) DragEnd() {
	w.endGesture()
}

func (w *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.endGesture()
}

func (w *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (w *BoardWidget) MouseOut()                      {}
func (w *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

// Scrolled zooms the view.
func (w *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	if e.Scrolled.DY > 0 {
		w.vp.ZoomIn()
	} else {
		w.vp.ZoomOut()
	}
	w.Refresh()
}

// ResetView returns to the unpanned, unzoomed view.
func (w *BoardWidget) ResetView() {
	w.vp.Reset()
	w.Refresh()
}

// endGesture commits whatever the current mouse interaction was doing. It is
// safe to call more than once per gesture.
func (w *BoardWidget) endGesture() {
	w.panning = false
	g, d := w.gesture, w.delta
	w.gesture, w.delta = gestureNone, state.Point{}

	switch g {
	case gestureMove:
		if w.board.DragSelected(d) {
			log.Printf("[UI] Moved selection by (%.1f, %.1f)", d.X, d.Y)
		}
	case gestureResize:
		if t, ok := w.resizeTransform(d); ok {
			w.board.TransformSelected(t)
		}
	default:
		w.board.PointerUp()
	}
	w.Refresh()
}

// resizeTransform turns a drag of the bottom-right corner by d into a
// Transform for the selected rectangle or ellipse.
func (w *BoardWidget) resizeTransform(d state.Point) (board.Transform, bool) {
	sel, ok := w.board.Selection()
	if !ok || (d.X == 0 && d.Y == 0) {
		return board.Transform{}, false
	}
	cs := w.board.State()
	switch sel.Kind {
	case state.KindRectangle:
		r, ok := cs.Rectangle(sel.ID)
		if !ok {
			return board.Transform{}, false
		}
		return board.Transform{
			Position: r.Origin,
			ScaleX:   ratio(r.Width+d.X, r.Width),
			ScaleY:   ratio(r.Height+d.Y, r.Height),
		}, true
	case state.KindEllipse:
		e, ok := cs.Ellipse(sel.ID)
		if !ok {
			return board.Transform{}, false
		}
		// The box grows by d, so the radii grow by half of it and the
		// centre follows by the same half.
		half := state.Point{X: d.X / 2, Y: d.Y / 2}
		return board.Transform{
			Position: e.Center.Add(half),
			ScaleX:   ratio(e.RadiusX+half.X, e.RadiusX),
			ScaleY:   ratio(e.RadiusY+half.Y, e.RadiusY),
		}, true
	}
	return board.Transform{}, false
}

func ratio(next, prev float32) float32 {
	if prev <= 0 {
		return 1
	}
	return max(next, 0) / prev
}

// preview is the state to draw, including an uncommitted move of the
// selection.
func (w *BoardWidget) preview() state.CanvasState {
	cs := w.board.State()
	sel, ok := w.board.Selection()
	if !ok || w.gesture != gestureMove || (w.delta == state.Point{}) {
		return cs
	}
	scratch := state.NewStore()
	scratch.Replace(cs)
	d := w.delta
	switch sel.Kind {
	case state.KindLine:
		scratch.UpdateLine(sel.ID, func(l *state.LineShape) { l.Start, l.End = l.Start.Add(d), l.End.Add(d) })
	case state.KindRectangle:
		scratch.UpdateRectangle(sel.ID, func(r *state.RectangleShape) { r.Origin = r.Origin.Add(d) })
	case state.KindEllipse:
		scratch.UpdateEllipse(sel.ID, func(e *state.EllipseShape) { e.Center = e.Center.Add(d) })
	case state.KindArrow:
		scratch.UpdateArrow(sel.ID, func(a *state.ArrowShape) { a.Origin = a.Origin.Add(d) })
	}
	return scratch.Current()
}

func (w *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: w}
	r.background = canvas.NewRectangle(backgroundColor)
	r.rebuild()
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardWidgetRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) rebuild() {
	var selected string
	if sel, ok := r.board.board.Selection(); ok {
		selected = sel.ID
	}
	shapes := renderState(r.board.preview(), r.board.vp, selected)
	r.objects = append([]fyne.CanvasObject{r.background}, shapes...)
}

func (r *boardWidgetRenderer) Destroy() {}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}
