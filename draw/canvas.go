package draw

// Line is a line segment between two points.
type Line struct {
	P1 Point
	P2 Point
}

// ShapeDescriptor describes a filled, optionally outlined shape centered at
// Point.
type ShapeDescriptor struct {
	Point     Point
	Shape     Shape
	FillColor Color
	LineColor Color
	LineWidth int
	Dashes    []float64
	ClipArea  *Area
}

// LineDescriptor describes a stroked line segment.
type LineDescriptor struct {
	Line     Line
	Color    Color
	Width    int
	Dashes   []float64
	ClipArea *Area
}

// CurveDescriptor describes a stroked polyline with round joins.
type CurveDescriptor struct {
	Points   []Point
	Color    Color
	Width    int
	Dashes   []float64
	ClipArea *Area
}

// FillDescriptor describes a filled closed region. The point loop is closed
// implicitly from the last point back to the first.
type FillDescriptor struct {
	Points   []Point
	Color    Color
	ClipArea *Area
}

// TextDescriptor describes a run of text. Position is where the alignment
// anchor lands, after the text is rotated clockwise by Rotation radians
// about that anchor.
type TextDescriptor struct {
	Text      string
	Position  Point
	Color     Color
	Font      Font
	Alignment Alignment
	Rotation  float64
	ClipArea  *Area
}

// SaveFileDescriptor describes where and how to write a finished canvas.
type SaveFileDescriptor struct {
	Path   string
	Format ImageFormat
	DPI    int
}

// Canvas is the capability the layout engine draws through. Implementations
// rasterize or serialize the primitives; the engine never depends on how.
type Canvas interface {
	// Size returns the canvas dimensions in pixels.
	Size() Size
	// DrawShape draws a filled shape, optionally outlined.
	DrawShape(desc ShapeDescriptor) error
	// DrawLine strokes a single line segment.
	DrawLine(desc LineDescriptor) error
	// DrawCurve strokes a polyline through the given points.
	DrawCurve(desc CurveDescriptor) error
	// FillRegion fills the closed loop described by the points.
	FillRegion(desc FillDescriptor) error
	// DrawText draws anchored, optionally rotated text.
	DrawText(desc TextDescriptor) error
	// TextSize measures the rendered extent of the descriptor's text.
	TextSize(desc TextDescriptor) (Size, error)
	// Save writes the canvas to a file.
	Save(desc SaveFileDescriptor) error
}
