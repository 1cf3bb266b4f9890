package state

// CanvasState is everything on the board. It is the unit the history stores.
type CanvasState struct {
	FreeDrawingLines []FreeDrawingLine `json:"free_drawing_lines"`
	Lines            []LineShape       `json:"lines"`
	Rectangles       []RectangleShape  `json:"rectangles"`
	Ellipses         []EllipseShape    `json:"ellipses"`
	Arrows           []ArrowShape      `json:"arrows"`
}

// Clone returns a structural copy that shares no slices with s.
func (s CanvasState) Clone() CanvasState {
	out := CanvasState{
		FreeDrawingLines: cloneSlice(s.FreeDrawingLines),
		Lines:            cloneSlice(s.Lines),
		Rectangles:       cloneSlice(s.Rectangles),
		Ellipses:         cloneSlice(s.Ellipses),
		Arrows:           cloneSlice(s.Arrows),
	}
	for i := range out.FreeDrawingLines {
		out.FreeDrawingLines[i].Points = cloneSlice(out.FreeDrawingLines[i].Points)
	}
	for i := range out.Arrows {
		out.Arrows[i].Points = cloneSlice(out.Arrows[i].Points)
	}
	return out
}

func cloneSlice[T any](items []T) []T {
	if items == nil {
		return nil
	}
	return append(make([]T, 0, len(items)), items...)
}

// Len is the total number of shapes across all collections.
func (s CanvasState) Len() int {
	return len(s.FreeDrawingLines) + len(s.Lines) + len(s.Rectangles) + len(s.Ellipses) + len(s.Arrows)
}

// Contains reports whether a shape with the given kind and id exists.
func (s CanvasState) Contains(kind Kind, id string) bool {
	switch kind {
	case KindFreeDrawing:
		for _, l := range s.FreeDrawingLines {
			if l.ID == id {
				return true
			}
		}
	case KindLine:
		for _, l := range s.Lines {
			if l.ID == id {
				return true
			}
		}
	case KindRectangle:
		for _, r := range s.Rectangles {
			if r.ID == id {
				return true
			}
		}
	case KindEllipse:
		for _, e := range s.Ellipses {
			if e.ID == id {
				return true
			}
		}
	case KindArrow:
		for _, a := range s.Arrows {
			if a.ID == id {
				return true
			}
		}
	}
	return false
}

// Rectangle returns the rectangle with the given id.
func (s CanvasState) Rectangle(id string) (RectangleShape, bool) {
	for _, r := range s.Rectangles {
		if r.ID == id {
			return r, true
		}
	}
	return RectangleShape{}, false
}

// Ellipse returns the ellipse with the given id.
func (s CanvasState) Ellipse(id string) (EllipseShape, bool) {
	for _, e := range s.Ellipses {
		if e.ID == id {
			return e, true
		}
	}
	return EllipseShape{}, false
}

// Line returns the line with the given id.
func (s CanvasState) Line(id string) (LineShape, bool) {
	for _, l := range s.Lines {
		if l.ID == id {
			return l, true
		}
	}
	return LineShape{}, false
}

// Arrow returns the arrow with the given id.
func (s CanvasState) Arrow(id string) (ArrowShape, bool) {
	for _, a := range s.Arrows {
		if a.ID == id {
			return a, true
		}
	}
	return ArrowShape{}, false
}
