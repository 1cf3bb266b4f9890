package tools

import "DrawSpace/internal/state"

// minDrawSize keeps shapes visible while they are being dragged out.
const minDrawSize = 1

// RectangleTool draws a rectangle spanned by the pointer-down position and
// the current pointer.
type RectangleTool struct {
	stroke
	env Env
}

func NewRectangleTool(env Env) *RectangleTool {
	return &RectangleTool{env: env}
}

func (t *RectangleTool) OnPointerDown(p state.Point) {
	if t.drawing {
		t.OnPointerUp()
	}
	t.env.History.SaveToHistory()

	id := t.env.IDs.Next()
	t.env.store().AddRectangle(state.RectangleShape{
		ID:     id,
		Origin: p,
		Style:  t.env.Props.Style(string(Rectangle)),
	})
	t.begin(id, p)
}

func (t *RectangleTool) OnPointerMove(p state.Point) {
	if !t.drawing {
		return
	}
	start := t.start
	t.env.store().UpdateRectangle(t.id, func(r *state.RectangleShape) {
		r.Origin = state.Point{X: min(start.X, p.X), Y: min(start.Y, p.Y)}
		r.Width = max(abs32(p.X-start.X), minDrawSize)
		r.Height = max(abs32(p.Y-start.Y), minDrawSize)
	})
}

func (t *RectangleTool) OnPointerUp() {
	t.end()
}
