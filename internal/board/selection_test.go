package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DrawSpace/internal/state"
	"DrawSpace/internal/tools"
)

func boardWithRect(t *testing.T) (*Board, string) {
	t.Helper()
	b := newBoard(t)
	draw(t, b, tools.Rectangle, pt(10, 10), pt(110, 60))
	id := b.State().Rectangles[0].ID
	require.NoError(t, b.SetTool(tools.Pointer))
	return b, id
}

func TestSelectRequiresPointerTool(t *testing.T) {
	b, id := boardWithRect(t)

	require.NoError(t, b.SetTool(tools.Hand))
	assert.False(t, b.Select(id, state.KindRectangle))
	_, ok := b.Selection()
	assert.False(t, ok)

	require.NoError(t, b.SetTool(tools.Pointer))
	require.True(t, b.Select(id, state.KindRectangle))
	sel, ok := b.Selection()
	require.True(t, ok)
	assert.Equal(t, Selection{ID: id, Kind: state.KindRectangle}, sel)
}

func TestSelectRejectsUnknownOrFreeDrawing(t *testing.T) {
	b, id := boardWithRect(t)
	assert.False(t, b.Select("missing", state.KindRectangle))
	assert.False(t, b.Select(id, state.KindEllipse))

	draw(t, b, tools.Pen, pt(0, 0), pt(3, 3))
	free := b.State().FreeDrawingLines[0].ID
	require.NoError(t, b.SetTool(tools.Pointer))
	assert.False(t, b.Select(free, state.KindFreeDrawing))
}

func TestLeavingPointerToolClearsSelection(t *testing.T) {
	b, id := boardWithRect(t)
	require.True(t, b.Select(id, state.KindRectangle))

	require.NoError(t, b.SetTool(tools.Pen))
	_, ok := b.Selection()
	assert.False(t, ok)
}

func TestPointerDownOnEmptyCanvasClearsSelection(t *testing.T) {
	b, id := boardWithRect(t)
	require.True(t, b.Select(id, state.KindRectangle))

	b.PointerDown(pt(500, 500))
	_, ok := b.Selection()
	assert.False(t, ok)
	assert.Equal(t, 1, b.State().Len())
}

func TestDragSelectedIsOneUndoStep(t *testing.T) {
	b, id := boardWithRect(t)
	require.True(t, b.Select(id, state.KindRectangle))
	past := b.History().PastLen()

	assert.False(t, b.DragSelected(pt(0, 0)), "zero move")
	require.True(t, b.DragSelected(pt(5, -5)))
	assert.Equal(t, past+1, b.History().PastLen())

	r, _ := b.State().Rectangle(id)
	assert.Equal(t, pt(15, 5), r.Origin)
	assert.Equal(t, float32(100), r.Width)

	require.True(t, b.Undo())
	r, _ = b.State().Rectangle(id)
	assert.Equal(t, pt(10, 10), r.Origin)
}

func TestDragEveryKind(t *testing.T) {
	b := newBoard(t)
	draw(t, b, tools.Line, pt(0, 0), pt(10, 0))
	draw(t, b, tools.Arrow, pt(0, 0), pt(0, 10))
	draw(t, b, tools.Ellipse, pt(0, 0), pt(20, 20))
	require.NoError(t, b.SetTool(tools.Pointer))
	cs := b.State()

	require.True(t, b.Select(cs.Lines[0].ID, state.KindLine))
	require.True(t, b.DragSelected(pt(1, 1)))
	require.True(t, b.Select(cs.Arrows[0].ID, state.KindArrow))
	require.True(t, b.DragSelected(pt(2, 2)))
	require.True(t, b.Select(cs.Ellipses[0].ID, state.KindEllipse))
	require.True(t, b.DragSelected(pt(3, 3)))

	cs = b.State()
	assert.Equal(t, pt(1, 1), cs.Lines[0].Start)
	assert.Equal(t, pt(11, 1), cs.Lines[0].End)
	assert.Equal(t, pt(2, 2), cs.Arrows[0].Origin)
	assert.Equal(t, pt(2, 12), cs.Arrows[0].Tip())
	assert.Equal(t, pt(13, 13), cs.Ellipses[0].Center)
}

func TestTransformSelectedEnforcesMinimum(t *testing.T) {
	b, id := boardWithRect(t)
	require.True(t, b.Select(id, state.KindRectangle))

	require.True(t, b.TransformSelected(Transform{Position: pt(0, 0), ScaleX: 2, ScaleY: 0.01}))
	r, _ := b.State().Rectangle(id)
	assert.Equal(t, pt(0, 0), r.Origin)
	assert.Equal(t, float32(200), r.Width)
	assert.Equal(t, float32(5), r.Height)

	require.True(t, b.Undo())
	r, _ = b.State().Rectangle(id)
	assert.Equal(t, float32(100), r.Width)
}

func TestTransformEllipseAndRejectLines(t *testing.T) {
	b := newBoard(t)
	draw(t, b, tools.Ellipse, pt(0, 0), pt(40, 20))
	draw(t, b, tools.Line, pt(0, 0), pt(40, 20))
	require.NoError(t, b.SetTool(tools.Pointer))
	cs := b.State()

	require.True(t, b.Select(cs.Ellipses[0].ID, state.KindEllipse))
	require.True(t, b.TransformSelected(Transform{Position: pt(50, 50), ScaleX: 0, ScaleY: 3}))
	e := b.State().Ellipses[0]
	assert.Equal(t, pt(50, 50), e.Center)
	assert.Equal(t, float32(5), e.RadiusX)
	assert.Equal(t, float32(30), e.RadiusY)

	require.True(t, b.Select(cs.Lines[0].ID, state.KindLine))
	past := b.History().PastLen()
	assert.False(t, b.TransformSelected(Transform{ScaleX: 2, ScaleY: 2}))
	assert.Equal(t, past, b.History().PastLen())
}

func TestDeleteSelectedAndStaleSelection(t *testing.T) {
	b, id := boardWithRect(t)
	assert.False(t, b.DeleteSelected())

	require.True(t, b.Select(id, state.KindRectangle))
	require.True(t, b.DeleteSelected())
	assert.Zero(t, b.State().Len())
	_, ok := b.Selection()
	assert.False(t, ok)

	require.True(t, b.Undo())
	require.True(t, b.Select(id, state.KindRectangle))
	require.True(t, b.Undo(), "undo the rectangle itself")
	_, ok = b.Selection()
	assert.False(t, ok, "selection of a shape that no longer exists is dropped")
}

func TestSelectionActionsWithoutSelectionAreNoOps(t *testing.T) {
	b, _ := boardWithRect(t)
	past := b.History().PastLen()

	assert.False(t, b.DragSelected(pt(3, 3)))
	assert.False(t, b.TransformSelected(Transform{ScaleX: 2, ScaleY: 2}))
	b.ClearSelection()
	assert.Equal(t, past, b.History().PastLen())
}
