package state

// Point is a position in canvas-local coordinates.
type Point struct{ X, Y float32 }

// Add returns p translated by d.
func (p Point) Add(d Point) Point { return Point{X: p.X + d.X, Y: p.Y + d.Y} }

// Kind names one of the shape collections held by a CanvasState.
type Kind string

const (
	KindFreeDrawing Kind = "freedraw"
	KindLine        Kind = "line"
	KindRectangle   Kind = "rectangle"
	KindEllipse     Kind = "ellipse"
	KindArrow       Kind = "arrow"
)

// Style is the visual snapshot a shape carries from the moment it was created.
type Style struct {
	Stroke       string  `json:"stroke,omitempty"`
	Fill         string  `json:"fill,omitempty"`
	StrokeWidth  float32 `json:"stroke_width"`
	CornerRadius float32 `json:"corner_radius,omitempty"`
	Opacity      float32 `json:"opacity"`
}

// FreeTool distinguishes pen strokes from eraser strokes.
type FreeTool string

const (
	FreePen    FreeTool = "pen"
	FreeEraser FreeTool = "eraser"
)

// Compositing hints consumed by the renderer.
const (
	CompositeOver  = "source-over"
	CompositeErase = "destination-out"
)

// FreeDrawingLine is a pen or eraser stroke. Points holds flattened x,y pairs
// and only ever grows while the stroke is being drawn.
type FreeDrawingLine struct {
	ID     string    `json:"id"`
	Tool   FreeTool  `json:"tool"`
	Points []float32 `json:"points"`
	Style  Style     `json:"style"`
}

// Composite reports how the renderer should blend the stroke.
func (l FreeDrawingLine) Composite() string {
	if l.Tool == FreeEraser {
		return CompositeErase
	}
	return CompositeOver
}

// LineShape is a straight segment from Start to End.
type LineShape struct {
	ID    string `json:"id"`
	Start Point  `json:"start"`
	End   Point  `json:"end"`
	Style Style  `json:"style"`
}

// RectangleShape is an axis-aligned rectangle anchored at its top-left corner.
type RectangleShape struct {
	ID     string  `json:"id"`
	Origin Point   `json:"origin"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
	Style  Style   `json:"style"`
}

// EllipseShape is an axis-aligned ellipse.
type EllipseShape struct {
	ID      string  `json:"id"`
	Center  Point   `json:"center"`
	RadiusX float32 `json:"radius_x"`
	RadiusY float32 `json:"radius_y"`
	Style   Style   `json:"style"`
}

// ArrowShape stores its geometry as offsets from Origin.
type ArrowShape struct {
	ID     string    `json:"id"`
	Origin Point     `json:"origin"`
	Points []float32 `json:"points"`
	Style  Style     `json:"style"`
}

// Tip returns the absolute position of the arrow head.
func (a ArrowShape) Tip() Point {
	n := len(a.Points)
	if n < 2 {
		return a.Origin
	}
	return Point{X: a.Origin.X + a.Points[n-2], Y: a.Origin.Y + a.Points[n-1]}
}
