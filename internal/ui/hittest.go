package ui

import (
	"math"

	"DrawSpace/internal/state"
)

// hitTolerance is how far, in canvas units, a click may miss a stroke.
const hitTolerance = 4

// Hit is a shape found under the pointer.
type Hit struct {
	ID   string
	Kind state.Kind
}

// HitTest returns the topmost selectable shape at p. Collections are checked
// in reverse draw order, later shapes first.
func HitTest(cs state.CanvasState, p state.Point) (Hit, bool) {
	for i := len(cs.Arrows) - 1; i >= 0; i-- {
		a := cs.Arrows[i]
		if nearSegment(p, a.Origin, a.Tip(), a.Style.StrokeWidth) {
			return Hit{ID: a.ID, Kind: state.KindArrow}, true
		}
	}
	for i := len(cs.Ellipses) - 1; i >= 0; i-- {
		e := cs.Ellipses[i]
		if insideEllipse(p, e) {
			return Hit{ID: e.ID, Kind: state.KindEllipse}, true
		}
	}
	for i := len(cs.Rectangles) - 1; i >= 0; i-- {
		r := cs.Rectangles[i]
		if insideRect(p, r) {
			return Hit{ID: r.ID, Kind: state.KindRectangle}, true
		}
	}
	for i := len(cs.Lines) - 1; i >= 0; i-- {
		l := cs.Lines[i]
		if nearSegment(p, l.Start, l.End, l.Style.StrokeWidth) {
			return Hit{ID: l.ID, Kind: state.KindLine}, true
		}
	}
	return Hit{}, false
}

func insideRect(p state.Point, r state.RectangleShape) bool {
	pad := float32(hitTolerance) + r.Style.StrokeWidth/2
	return p.X >= r.Origin.X-pad && p.X <= r.Origin.X+r.Width+pad &&
		p.Y >= r.Origin.Y-pad && p.Y <= r.Origin.Y+r.Height+pad
}

func insideEllipse(p state.Point, e state.EllipseShape) bool {
	pad := float64(hitTolerance) + float64(e.Style.StrokeWidth)/2
	rx := float64(e.RadiusX) + pad
	ry := float64(e.RadiusY) + pad
	dx := float64(p.X-e.Center.X) / rx
	dy := float64(p.Y-e.Center.Y) / ry
	return dx*dx+dy*dy <= 1
}

func nearSegment(p, a, b state.Point, width float32) bool {
	return distancePointToSegment(p, a, b) <= float64(hitTolerance)+float64(width)/2
}

func distancePointToSegment(p, a, b state.Point) float64 {
	apx := float64(p.X - a.X)
	apy := float64(p.Y - a.Y)
	abx := float64(b.X - a.X)
	aby := float64(b.Y - a.Y)
	abLen2 := abx*abx + aby*aby
	if abLen2 == 0 {
		return math.Hypot(apx, apy)
	}
	t := (apx*abx + apy*aby) / abLen2
	t = math.Max(0, math.Min(1, t))
	cx := float64(a.X) + t*abx
	cy := float64(a.Y) + t*aby
	return math.Hypot(float64(p.X)-cx, float64(p.Y)-cy)
}
