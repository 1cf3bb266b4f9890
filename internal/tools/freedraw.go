package tools

import "DrawSpace/internal/state"

// FreeDraw is the pen and eraser tool. Every move appends a point to the
// active line.
type FreeDraw struct {
	stroke
	env  Env
	kind state.FreeTool
}

func NewFreeDraw(env Env, kind state.FreeTool) *FreeDraw {
	return &FreeDraw{env: env, kind: kind}
}

func (t *FreeDraw) OnPointerDown(p state.Point) {
	if t.drawing {
		t.OnPointerUp()
	}
	t.env.History.SaveToHistory()

	style := t.env.Props.Style(string(t.kind))
	if t.kind == state.FreeEraser {
		style.Stroke = ""
	}
	id := t.env.IDs.Next()
	t.env.store().AddFreeDrawingLine(state.FreeDrawingLine{
		ID:     id,
		Tool:   t.kind,
		Points: []float32{p.X, p.Y},
		Style:  style,
	})
	t.begin(id, p)
}

func (t *FreeDraw) OnPointerMove(p state.Point) {
	if !t.drawing {
		return
	}
	t.env.store().AppendToLastFreeDrawingLine(p)
}

func (t *FreeDraw) OnPointerUp() {
	t.end()
}
