package ui

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"DrawSpace/internal/state"
)

var (
	backgroundColor = color.NRGBA{R: 255, G: 252, B: 232, A: 255}
	selectionColor  = color.NRGBA{R: 0x1d, G: 0x4e, B: 0xd8, A: 255}
)

const arrowHeadLength = 12

// scene converts a CanvasState into fyne canvas objects in widget space.
type scene struct {
	vp       Viewport
	selected string
	objects  []fyne.CanvasObject
}

func renderState(cs state.CanvasState, vp Viewport, selected string) []fyne.CanvasObject {
	s := &scene{vp: vp, selected: selected}
	for _, l := range cs.Lines {
		s.line(l)
	}
	for _, r := range cs.Rectangles {
		s.rectangle(r)
	}
	for _, e := range cs.Ellipses {
		s.ellipse(e)
	}
	for _, a := range cs.Arrows {
		s.arrow(a)
	}
	// Free drawing sits on its own layer above the shapes.
	for _, l := range cs.FreeDrawingLines {
		s.freeLine(l)
	}
	return s.objects
}

func (s *scene) width(w float32) float32 {
	return max(w*s.vp.scale(), 1)
}

func (s *scene) strokeColor(id string, st state.Style) color.Color {
	if id == s.selected {
		return selectionColor
	}
	c, ok := parseColor(st.Stroke, st.Opacity)
	if !ok {
		return color.Transparent
	}
	return c
}

func (s *scene) segment(a, b state.Point, c color.Color, width float32) {
	seg := canvas.NewLine(c)
	seg.StrokeWidth = s.width(width)
	seg.Position1 = s.vp.ToScreen(a)
	seg.Position2 = s.vp.ToScreen(b)
	s.objects = append(s.objects, seg)
}

func (s *scene) line(l state.LineShape) {
	s.segment(l.Start, l.End, s.strokeColor(l.ID, l.Style), l.Style.StrokeWidth)
}

func (s *scene) rectangle(r state.RectangleShape) {
	fill, ok := parseColor(r.Style.Fill, r.Style.Opacity)
	if !ok {
		fill = color.NRGBA{}
	}
	rect := canvas.NewRectangle(fill)
	rect.StrokeColor = s.strokeColor(r.ID, r.Style)
	rect.StrokeWidth = s.width(r.Style.StrokeWidth)
	rect.CornerRadius = r.Style.CornerRadius * s.vp.scale()
	rect.Move(s.vp.ToScreen(r.Origin))
	rect.Resize(fyne.NewSize(r.Width*s.vp.scale(), r.Height*s.vp.scale()))
	s.objects = append(s.objects, rect)
}

func (s *scene) ellipse(e state.EllipseShape) {
	fill, ok := parseColor(e.Style.Fill, e.Style.Opacity)
	if !ok {
		fill = color.NRGBA{}
	}
	circle := canvas.NewCircle(fill)
	circle.StrokeColor = s.strokeColor(e.ID, e.Style)
	circle.StrokeWidth = s.width(e.Style.StrokeWidth)
	circle.Position1 = s.vp.ToScreen(state.Point{X: e.Center.X - e.RadiusX, Y: e.Center.Y - e.RadiusY})
	circle.Position2 = s.vp.ToScreen(state.Point{X: e.Center.X + e.RadiusX, Y: e.Center.Y + e.RadiusY})
	s.objects = append(s.objects, circle)
}

func (s *scene) arrow(a state.ArrowShape) {
	c := s.strokeColor(a.ID, a.Style)
	tip := a.Tip()
	s.segment(a.Origin, tip, c, a.Style.StrokeWidth)

	dx := float64(tip.X - a.Origin.X)
	dy := float64(tip.Y - a.Origin.Y)
	if dx == 0 && dy == 0 {
		return
	}
	angle := math.Atan2(dy, dx)
	for _, side := range []float64{-1, 1} {
		theta := angle + math.Pi - side*math.Pi/6
		wing := state.Point{
			X: tip.X + float32(arrowHeadLength*math.Cos(theta)),
			Y: tip.Y + float32(arrowHeadLength*math.Sin(theta)),
		}
		s.segment(tip, wing, c, a.Style.StrokeWidth)
	}
}

// freeLine draws a pen or eraser stroke. fyne has no destination-out
// compositing, so erasing paints with the board background.
func (s *scene) freeLine(l state.FreeDrawingLine) {
	var c color.Color = backgroundColor
	if l.Composite() != state.CompositeErase {
		c = s.strokeColor(l.ID, l.Style)
	}
	pts := l.Points
	if len(pts) == 2 {
		s.segment(state.Point{X: pts[0], Y: pts[1]}, state.Point{X: pts[0], Y: pts[1]}, c, l.Style.StrokeWidth)
		return
	}
	for i := 2; i+1 < len(pts); i += 2 {
		a := state.Point{X: pts[i-2], Y: pts[i-1]}
		b := state.Point{X: pts[i], Y: pts[i+1]}
		s.segment(a, b, c, l.Style.StrokeWidth)
	}
}
