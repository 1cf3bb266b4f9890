package board

import (
	"log"

	"DrawSpace/internal/state"
	"DrawSpace/internal/tools"
)

// Selection identifies the one selected shape.
type Selection struct {
	ID   string
	Kind state.Kind
}

// Transform is what the renderer reports at the end of a resize gesture: the
// shape's new anchor (rectangle origin or ellipse centre) and the scale applied
// to its size.
type Transform struct {
	Position state.Point
	ScaleX   float32
	ScaleY   float32
}

// Selection returns the selected shape, if any.
func (b *Board) Selection() (Selection, bool) {
	if b.selection == nil {
		return Selection{}, false
	}
	return *b.selection, true
}

// Select marks a shape as selected. It is refused unless the pointer tool is
// active and the shape exists and can be transformed.
func (b *Board) Select(id string, kind state.Kind) bool {
	if b.tool != tools.Pointer || kind == state.KindFreeDrawing {
		return false
	}
	if !b.store.Current().Contains(kind, id) {
		return false
	}
	b.selection = &Selection{ID: id, Kind: kind}
	b.changed()
	return true
}

// ClearSelection drops the selection.
func (b *Board) ClearSelection() {
	if b.selection == nil {
		return
	}
	b.selection = nil
	b.changed()
}

// DragSelected moves the selected shape by delta as one undo step.
func (b *Board) DragSelected(delta state.Point) bool {
	sel, ok := b.Selection()
	if !ok || (delta.X == 0 && delta.Y == 0) {
		return false
	}
	if !b.store.Current().Contains(sel.Kind, sel.ID) {
		return false
	}
	b.history.SaveToHistory()

	switch sel.Kind {
	case state.KindLine:
		b.store.UpdateLine(sel.ID, func(l *state.LineShape) {
			l.Start = l.Start.Add(delta)
			l.End = l.End.Add(delta)
		})
	case state.KindRectangle:
		b.store.UpdateRectangle(sel.ID, func(r *state.RectangleShape) {
			r.Origin = r.Origin.Add(delta)
		})
	case state.KindEllipse:
		b.store.UpdateEllipse(sel.ID, func(e *state.EllipseShape) {
			e.Center = e.Center.Add(delta)
		})
	case state.KindArrow:
		b.store.UpdateArrow(sel.ID, func(a *state.ArrowShape) {
			a.Origin = a.Origin.Add(delta)
		})
	}
	b.changed()
	return true
}

// TransformSelected resizes the selected rectangle or ellipse as one undo
// step. Sizes never drop below the configured minimum.
func (b *Board) TransformSelected(t Transform) bool {
	sel, ok := b.Selection()
	if !ok {
		return false
	}
	if sel.Kind != state.KindRectangle && sel.Kind != state.KindEllipse {
		return false
	}
	if !b.store.Current().Contains(sel.Kind, sel.ID) {
		return false
	}
	b.history.SaveToHistory()

	if sel.Kind == state.KindRectangle {
		b.store.UpdateRectangle(sel.ID, func(r *state.RectangleShape) {
			r.Origin = t.Position
			r.Width = max(r.Width*t.ScaleX, b.minSize)
			r.Height = max(r.Height*t.ScaleY, b.minSize)
		})
	} else {
		b.store.UpdateEllipse(sel.ID, func(e *state.EllipseShape) {
			e.Center = t.Position
			e.RadiusX = max(e.RadiusX*t.ScaleX, b.minSize)
			e.RadiusY = max(e.RadiusY*t.ScaleY, b.minSize)
		})
	}
	b.changed()
	return true
}

// DeleteSelected removes the selected shape as one undo step.
func (b *Board) DeleteSelected() bool {
	sel, ok := b.Selection()
	if !ok || !b.store.Current().Contains(sel.Kind, sel.ID) {
		return false
	}
	b.history.SaveToHistory()
	b.store.Remove(sel.Kind, sel.ID)
	b.selection = nil
	log.Printf("[BOARD] Deleted %s %s", sel.Kind, sel.ID)
	b.changed()
	return true
}

func (b *Board) dropStaleSelection() {
	if b.selection != nil && !b.store.Current().Contains(b.selection.Kind, b.selection.ID) {
		b.selection = nil
	}
}
