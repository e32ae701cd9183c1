// Package draw defines the primitive types and the Canvas capability that
// rendering backends implement. The layout engine in the parent package
// produces descriptors from this package and never touches a backend
// directly.
//
// Coordinate convention: y increases upward. A backend whose native device
// space has a top-left origin is responsible for flipping.
package draw

// Point is a location in pixel space.
type Point struct {
	X float64
	Y float64
}

// Size is a width and height in whole pixels.
type Size struct {
	Width  int
	Height int
}

// Area is an axis-aligned pixel rectangle.
type Area struct {
	XMin int
	XMax int
	YMin int
	YMax int
}

// XSize returns the horizontal extent of the area.
func (a Area) XSize() int { return a.XMax - a.XMin }

// YSize returns the vertical extent of the area.
func (a Area) YSize() int { return a.YMax - a.YMin }

// FractionalToPoint maps a fractional position in [0, 1] x [0, 1] to a pixel
// location inside the area.
func (a Area) FractionalToPoint(frac Point) Point {
	return Point{
		X: float64(a.XMin) + frac.X*float64(a.XSize()),
		Y: float64(a.YMin) + frac.Y*float64(a.YSize()),
	}
}

// Contains reports whether p lies inside the area, boundary included.
func (a Area) Contains(p Point) bool {
	return float64(a.XMin) <= p.X && p.X <= float64(a.XMax) &&
		float64(a.YMin) <= p.Y && p.Y <= float64(a.YMax)
}

// Color is an RGBA color with channels in [0, 1].
type Color struct {
	R float64
	G float64
	B float64
	A float64
}

// WithAlpha returns a copy of the color with the alpha channel replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

var (
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Black       = Color{A: 1}
	Red         = Color{R: 1, A: 1}
	Green       = Color{G: 1, A: 1}
	Blue        = Color{B: 1, A: 1}
	Transparent = Color{}
)

// Alignment names the anchor point of drawn text relative to its position.
type Alignment int

const (
	Center Alignment = iota
	Left
	Right
	Top
	Bottom
	TopLeft
	TopRight
	BottomLeft
	BottomRight
)

// FontName selects one of the faces bundled with the library.
type FontName int

const (
	// FontRoman is the default serif face.
	FontRoman FontName = iota
	// FontSans is a sans-serif face.
	FontSans
)

// String returns the family name of the font.
func (n FontName) String() string {
	switch n {
	case FontSans:
		return "sans"
	default:
		return "roman"
	}
}

// Font pairs a face with a size in pixels.
type Font struct {
	Name FontName
	Size float64
}

// ShapeKind discriminates the Shape variants.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeSquare
	ShapeRectangle
)

// Shape describes a marker or rectangle primitive. Radius is used by circles,
// Length by squares, and Width/Height by rectangles.
type Shape struct {
	Kind   ShapeKind
	Radius int
	Length int
	Width  int
	Height int
}

// Circle returns a circular shape of radius r.
func Circle(r int) Shape { return Shape{Kind: ShapeCircle, Radius: r} }

// Square returns a square shape of side length l.
func Square(l int) Shape { return Shape{Kind: ShapeSquare, Length: l} }

// Rectangle returns a rectangular shape of the given width and height.
func Rectangle(w, h int) Shape { return Shape{Kind: ShapeRectangle, Width: w, Height: h} }

// Scale multiplies the shape's dimensions by n.
func (s *Shape) Scale(n int) {
	s.Radius *= n
	s.Length *= n
	s.Width *= n
	s.Height *= n
}

// ImageFormat selects the output encoding of a canvas.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatSVG
)

// String returns the conventional file extension for the format.
func (f ImageFormat) String() string {
	switch f {
	case FormatSVG:
		return "svg"
	default:
		return "png"
	}
}
