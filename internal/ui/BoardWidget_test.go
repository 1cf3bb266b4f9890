package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DrawSpace/internal/board"
	"DrawSpace/internal/config"
	"DrawSpace/internal/state"
	"DrawSpace/internal/tools"
)

func newTestWidget(t *testing.T) (*BoardWidget, *board.Board) {
	t.Helper()
	test.NewApp()
	b, err := board.New(config.Default(), nil)
	require.NoError(t, err)
	return NewBoardWidget(b), b
}

func press(w *BoardWidget, x, y float32, mod fyne.KeyModifier) {
	w.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
		Modifier:   mod,
	})
}

func drag(w *BoardWidget, x, y, dx, dy float32) {
	w.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Dragged:    fyne.Delta{DX: dx, DY: dy},
	})
}

func TestBoardWidgetPenStroke(t *testing.T) {
	w, b := newTestWidget(t)
	require.NoError(t, b.SetTool(tools.Pen))

	press(w, 10, 10, 0)
	drag(w, 20, 15, 10, 5)
	drag(w, 30, 20, 10, 5)
	w.DragEnd()

	lines := b.State().FreeDrawingLines
	require.Len(t, lines, 1)
	assert.Equal(t, []float32{10, 10, 20, 15, 30, 20}, lines[0].Points)
	assert.False(t, b.Drawing())

	// MouseUp after DragEnd must not start or end anything else.
	w.MouseUp(&desktop.MouseEvent{Button: desktop.MouseButtonPrimary})
	assert.Len(t, b.State().FreeDrawingLines, 1)
}

func TestBoardWidgetHonoursViewport(t *testing.T) {
	w, b := newTestWidget(t)
	require.NoError(t, b.SetTool(tools.Line))
	w.vp = Viewport{PanX: 100, PanY: 100, Scale: 2}

	press(w, 100, 100, 0)
	drag(w, 140, 120, 40, 20)
	w.DragEnd()

	l := b.State().Lines[0]
	assert.Equal(t, state.Point{X: 0, Y: 0}, l.Start)
	assert.Equal(t, state.Point{X: 20, Y: 10}, l.End)
}

func TestBoardWidgetSelectAndMove(t *testing.T) {
	w, b := newTestWidget(t)
	require.NoError(t, b.SetTool(tools.Rectangle))
	b.PointerDown(state.Point{X: 10, Y: 10})
	b.PointerMove(state.Point{X: 60, Y: 60})
	b.PointerUp()
	id := b.State().Rectangles[0].ID
	require.NoError(t, b.SetTool(tools.Pointer))
	past := b.History().PastLen()

	press(w, 30, 30, 0)
	sel, ok := b.Selection()
	require.True(t, ok)
	assert.Equal(t, id, sel.ID)

	drag(w, 35, 32, 5, 2)
	drag(w, 40, 34, 5, 2)
	assert.Equal(t, state.Point{X: 20, Y: 14}, w.preview().Rectangles[0].Origin)
	assert.Equal(t, state.Point{X: 10, Y: 10}, b.State().Rectangles[0].Origin, "not committed while dragging")

	w.DragEnd()
	assert.Equal(t, state.Point{X: 20, Y: 14}, b.State().Rectangles[0].Origin)
	assert.Equal(t, past+1, b.History().PastLen())

	press(w, 500, 500, 0)
	_, ok = b.Selection()
	assert.False(t, ok)
}

func TestBoardWidgetShiftDragResizes(t *testing.T) {
	w, b := newTestWidget(t)
	require.NoError(t, b.SetTool(tools.Rectangle))
	b.PointerDown(state.Point{X: 0, Y: 0})
	b.PointerMove(state.Point{X: 100, Y: 50})
	b.PointerUp()
	require.NoError(t, b.SetTool(tools.Pointer))

	press(w, 50, 25, fyne.KeyModifierShift)
	drag(w, 150, 25, 100, -100)
	w.DragEnd()

	r := b.State().Rectangles[0]
	assert.Equal(t, state.Point{X: 0, Y: 0}, r.Origin)
	assert.Equal(t, float32(200), r.Width)
	assert.Equal(t, float32(5), r.Height)
}

func TestBoardWidgetShiftDragResizesEllipseFromCorner(t *testing.T) {
	w, b := newTestWidget(t)
	require.NoError(t, b.SetTool(tools.Ellipse))
	b.PointerDown(state.Point{X: 0, Y: 0})
	b.PointerMove(state.Point{X: 40, Y: 20})
	b.PointerUp()
	require.NoError(t, b.SetTool(tools.Pointer))

	// Bounding box 0,0 to 40,20; drag its corner to 60,40.
	press(w, 20, 10, fyne.KeyModifierShift)
	drag(w, 40, 30, 20, 20)
	w.DragEnd()

	e := b.State().Ellipses[0]
	assert.Equal(t, state.Point{X: 30, Y: 20}, e.Center)
	assert.Equal(t, float32(30), e.RadiusX)
	assert.Equal(t, float32(20), e.RadiusY)
}

func TestBoardWidgetPanAndZoom(t *testing.T) {
	w, b := newTestWidget(t)
	require.NoError(t, b.SetTool(tools.Hand))

	press(w, 0, 0, 0)
	drag(w, 10, 5, 10, 5)
	w.DragEnd()
	assert.Equal(t, float32(10), w.Viewport().PanX)
	assert.Equal(t, float32(5), w.Viewport().PanY)
	assert.Zero(t, b.State().Len())

	w.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: 1}})
	assert.InDelta(t, 1.2, w.Viewport().Scale, 1e-6)

	w.ResetView()
	assert.Equal(t, NewViewport(), w.Viewport())
}

func TestRendererObjects(t *testing.T) {
	w, b := newTestWidget(t)
	require.NoError(t, b.SetTool(tools.Arrow))
	b.PointerDown(state.Point{X: 0, Y: 0})
	b.PointerMove(state.Point{X: 50, Y: 0})
	b.PointerUp()

	r := test.WidgetRenderer(w)
	// Background, shaft and two head wings.
	assert.Len(t, r.Objects(), 4)
}
