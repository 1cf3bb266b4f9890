package tools

import "DrawSpace/internal/state"

// EllipseTool draws an ellipse inscribed in the box spanned by the
// pointer-down position and the current pointer.
type EllipseTool struct {
	stroke
	env Env
}

func NewEllipseTool(env Env) *EllipseTool {
	return &EllipseTool{env: env}
}

func (t *EllipseTool) OnPointerDown(p state.Point) {
	if t.drawing {
		t.OnPointerUp()
	}
	t.env.History.SaveToHistory()

	id := t.env.IDs.Next()
	t.env.store().AddEllipse(state.EllipseShape{
		ID:     id,
		Center: p,
		Style:  t.env.Props.Style(string(Ellipse)),
	})
	t.begin(id, p)
}

func (t *EllipseTool) OnPointerMove(p state.Point) {
	if !t.drawing {
		return
	}
	start := t.start
	t.env.store().UpdateEllipse(t.id, func(e *state.EllipseShape) {
		e.Center = state.Point{X: (start.X + p.X) / 2, Y: (start.Y + p.Y) / 2}
		e.RadiusX = max(abs32(p.X-start.X)/2, minDrawSize)
		e.RadiusY = max(abs32(p.Y-start.Y)/2, minDrawSize)
	})
}

func (t *EllipseTool) OnPointerUp() {
	t.end()
}
