package tools

import "DrawSpace/internal/state"

// ArrowTool draws an arrow from the pointer-down position to the pointer.
// The head is kept as an offset from the fixed origin.
type ArrowTool struct {
	stroke
	env Env
}

func NewArrowTool(env Env) *ArrowTool {
	return &ArrowTool{env: env}
}

func (t *ArrowTool) OnPointerDown(p state.Point) {
	if t.drawing {
		t.OnPointerUp()
	}
	t.env.History.SaveToHistory()

	id := t.env.IDs.Next()
	t.env.store().AddArrow(state.ArrowShape{
		ID:     id,
		Origin: p,
		Points: []float32{0, 0, 0, 0},
		Style:  t.env.Props.Style(string(Arrow)),
	})
	t.begin(id, p)
}

func (t *ArrowTool) OnPointerMove(p state.Point) {
	if !t.drawing {
		return
	}
	t.env.store().UpdateArrow(t.id, func(a *state.ArrowShape) {
		a.Points = []float32{0, 0, p.X - a.Origin.X, p.Y - a.Origin.Y}
	})
}

func (t *ArrowTool) OnPointerUp() {
	t.end()
}
