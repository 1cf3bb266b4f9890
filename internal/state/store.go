package state

// Store holds the current CanvasState. Every mutation replaces the affected
// collection with a new slice, so a CanvasState handed out by Current is never
// modified afterwards.
type Store struct {
	current CanvasState
}

func NewStore() *Store {
	return &Store{}
}

// Current returns the current state. Callers must treat it as read-only.
func (s *Store) Current() CanvasState {
	return s.current
}

// Replace swaps in a whole new state.
func (s *Store) Replace(cs CanvasState) {
	s.current = cs
}

// Clear empties every collection.
func (s *Store) Clear() {
	s.current = CanvasState{}
}

func (s *Store) AddFreeDrawingLine(l FreeDrawingLine) {
	l.Points = append([]float32(nil), l.Points...)
	s.current.FreeDrawingLines = appendCopy(s.current.FreeDrawingLines, l)
}

// AppendToLastFreeDrawingLine adds points to the most recent free drawing line.
// It does nothing when there is no such line.
func (s *Store) AppendToLastFreeDrawingLine(pts ...Point) bool {
	n := len(s.current.FreeDrawingLines)
	if n == 0 || len(pts) == 0 {
		return false
	}
	lines := append([]FreeDrawingLine(nil), s.current.FreeDrawingLines...)
	last := lines[n-1]
	grown := make([]float32, len(last.Points), len(last.Points)+2*len(pts))
	copy(grown, last.Points)
	for _, p := range pts {
		grown = append(grown, p.X, p.Y)
	}
	last.Points = grown
	lines[n-1] = last
	s.current.FreeDrawingLines = lines
	return true
}

func (s *Store) AddLine(l LineShape) {
	s.current.Lines = appendCopy(s.current.Lines, l)
}

// UpdateLine applies fn to the line with the given id. Unknown ids are ignored.
func (s *Store) UpdateLine(id string, fn func(*LineShape)) bool {
	lines, ok := updateByID(s.current.Lines, func(l LineShape) string { return l.ID }, id, fn)
	if ok {
		s.current.Lines = lines
	}
	return ok
}

func (s *Store) AddRectangle(r RectangleShape) {
	clampRectangle(&r)
	s.current.Rectangles = appendCopy(s.current.Rectangles, r)
}

// UpdateRectangle applies fn to the rectangle with the given id. Width and
// height are clamped to zero afterwards.
func (s *Store) UpdateRectangle(id string, fn func(*RectangleShape)) bool {
	rects, ok := updateByID(s.current.Rectangles, func(r RectangleShape) string { return r.ID }, id, func(r *RectangleShape) {
		fn(r)
		clampRectangle(r)
	})
	if ok {
		s.current.Rectangles = rects
	}
	return ok
}

func (s *Store) AddEllipse(e EllipseShape) {
	clampEllipse(&e)
	s.current.Ellipses = appendCopy(s.current.Ellipses, e)
}

// UpdateEllipse applies fn to the ellipse with the given id. Radii are clamped
// to zero afterwards.
func (s *Store) UpdateEllipse(id string, fn func(*EllipseShape)) bool {
	ellipses, ok := updateByID(s.current.Ellipses, func(e EllipseShape) string { return e.ID }, id, func(e *EllipseShape) {
		fn(e)
		clampEllipse(e)
	})
	if ok {
		s.current.Ellipses = ellipses
	}
	return ok
}

func (s *Store) AddArrow(a ArrowShape) {
	a.Points = append([]float32(nil), a.Points...)
	s.current.Arrows = appendCopy(s.current.Arrows, a)
}

// UpdateArrow applies fn to the arrow with the given id. fn must assign a new
// Points slice rather than writing into the existing one.
func (s *Store) UpdateArrow(id string, fn func(*ArrowShape)) bool {
	arrows, ok := updateByID(s.current.Arrows, func(a ArrowShape) string { return a.ID }, id, fn)
	if ok {
		s.current.Arrows = arrows
	}
	return ok
}

// Remove deletes the shape with the given kind and id.
func (s *Store) Remove(kind Kind, id string) bool {
	var ok bool
	switch kind {
	case KindFreeDrawing:
		s.current.FreeDrawingLines, ok = removeByID(s.current.FreeDrawingLines, func(l FreeDrawingLine) string { return l.ID }, id)
	case KindLine:
		s.current.Lines, ok = removeByID(s.current.Lines, func(l LineShape) string { return l.ID }, id)
	case KindRectangle:
		s.current.Rectangles, ok = removeByID(s.current.Rectangles, func(r RectangleShape) string { return r.ID }, id)
	case KindEllipse:
		s.current.Ellipses, ok = removeByID(s.current.Ellipses, func(e EllipseShape) string { return e.ID }, id)
	case KindArrow:
		s.current.Arrows, ok = removeByID(s.current.Arrows, func(a ArrowShape) string { return a.ID }, id)
	}
	return ok
}

func appendCopy[T any](items []T, item T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, item)
}

func updateByID[T any](items []T, idOf func(T) string, id string, fn func(*T)) ([]T, bool) {
	for i := range items {
		if idOf(items[i]) != id {
			continue
		}
		out := append([]T(nil), items...)
		fn(&out[i])
		return out, true
	}
	return items, false
}

func removeByID[T any](items []T, idOf func(T) string, id string) ([]T, bool) {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if idOf(it) != id {
			out = append(out, it)
		}
	}
	if len(out) == len(items) {
		return items, false
	}
	return out, true
}

func clampRectangle(r *RectangleShape) {
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
}

func clampEllipse(e *EllipseShape) {
	if e.RadiusX < 0 {
		e.RadiusX = 0
	}
	if e.RadiusY < 0 {
		e.RadiusY = 0
	}
}
