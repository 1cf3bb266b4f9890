package tools

import "DrawSpace/internal/state"

// LineTool draws a straight segment whose end follows the pointer.
type LineTool struct {
	stroke
	env Env
}

func NewLineTool(env Env) *LineTool {
	return &LineTool{env: env}
}

func (t *LineTool) OnPointerDown(p state.Point) {
	if t.drawing {
		t.OnPointerUp()
	}
	t.env.History.SaveToHistory()

	id := t.env.IDs.Next()
	t.env.store().AddLine(state.LineShape{
		ID:    id,
		Start: p,
		End:   p,
		Style: t.env.Props.Style(string(Line)),
	})
	t.begin(id, p)
}

func (t *LineTool) OnPointerMove(p state.Point) {
	if !t.drawing {
		return
	}
	t.env.store().UpdateLine(t.id, func(l *state.LineShape) {
		l.End = p
	})
}

func (t *LineTool) OnPointerUp() {
	t.end()
}
