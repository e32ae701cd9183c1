// Package canvasbackend implements draw.Canvas on top of
// github.com/tdewolff/canvas. One canvas unit corresponds to one pixel;
// rasterization happens at save time.
package canvasbackend

import (
	"fmt"
	"image/color"
	"math"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"

	"github.com/plt-rs/plt/draw"
	"github.com/plt-rs/plt/fonts"
)

const (
	ptToMm = 0.352777
	mmToPt = 1.0 / ptToMm
)

// Backend draws into an in-memory vector canvas and serializes it on Save.
// It is not safe for concurrent use.
type Backend struct {
	size draw.Size
	c    *canvas.Canvas
	ctx  *canvas.Context

	fontMu   sync.Mutex
	families map[draw.FontName]*canvas.FontFamily
}

var _ draw.Canvas = (*Backend)(nil)

// Options configures a new backend.
type Options struct {
	Size      draw.Size
	FaceColor draw.Color
}

// New creates a backend of the given pixel size with its background painted
// in the face color.
func New(opts Options) *Backend {
	width := float64(opts.Size.Width)
	height := float64(opts.Size.Height)
	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)

	ctx.Push()
	ctx.SetFillColor(toColor(opts.FaceColor))
	ctx.SetStrokeColor(toColor(draw.Transparent))
	ctx.DrawPath(0, 0, canvas.Rectangle(width, height))
	ctx.Pop()

	return &Backend{
		size:     opts.Size,
		c:        c,
		ctx:      ctx,
		families: map[draw.FontName]*canvas.FontFamily{},
	}
}

// Size returns the canvas dimensions in pixels.
func (b *Backend) Size() draw.Size { return b.size }

// DrawShape draws a filled, outlined shape centered at the descriptor's
// point. Shapes whose center falls outside the clip area are dropped whole.
func (b *Backend) DrawShape(desc draw.ShapeDescriptor) error {
	if desc.ClipArea != nil && !desc.ClipArea.Contains(desc.Point) {
		return nil
	}

	b.ctx.Push()
	defer b.ctx.Pop()
	b.ctx.SetFillColor(toColor(desc.FillColor))
	b.ctx.SetStrokeColor(toColor(desc.LineColor))
	b.ctx.SetStrokeWidth(float64(desc.LineWidth))
	b.ctx.SetDashes(0, desc.Dashes...)

	x, y := desc.Point.X, desc.Point.Y
	switch desc.Shape.Kind {
	case draw.ShapeSquare:
		l := float64(desc.Shape.Length)
		b.ctx.DrawPath(x-l/2, y-l/2, canvas.Rectangle(l, l))
	case draw.ShapeRectangle:
		w := float64(desc.Shape.Width)
		h := float64(desc.Shape.Height)
		b.ctx.DrawPath(x-w/2, y-h/2, canvas.Rectangle(w, h))
	default:
		b.ctx.DrawPath(x, y, canvas.Circle(float64(desc.Shape.Radius)))
	}
	return nil
}

// DrawLine strokes a line segment, clipped to the descriptor's clip area.
func (b *Backend) DrawLine(desc draw.LineDescriptor) error {
	p1, p2 := desc.Line.P1, desc.Line.P2
	if desc.ClipArea != nil {
		var ok bool
		p1, p2, ok = clipSegment(p1, p2, *desc.ClipArea)
		if !ok {
			return nil
		}
	}

	b.ctx.Push()
	defer b.ctx.Pop()
	b.ctx.SetFillColor(toColor(draw.Transparent))
	b.ctx.SetStrokeColor(toColor(desc.Color))
	b.ctx.SetStrokeWidth(float64(desc.Width))
	b.ctx.SetDashes(0, desc.Dashes...)

	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo(p2.X-p1.X, p2.Y-p1.Y)
	b.ctx.DrawPath(p1.X, p1.Y, p)
	return nil
}

// DrawCurve strokes a polyline with round joins. Clipping may split the
// polyline into several visible runs.
func (b *Backend) DrawCurve(desc draw.CurveDescriptor) error {
	if len(desc.Points) < 2 {
		return nil
	}
	runs := [][]draw.Point{desc.Points}
	if desc.ClipArea != nil {
		runs = clipPolyline(desc.Points, *desc.ClipArea)
	}

	b.ctx.Push()
	defer b.ctx.Pop()
	b.ctx.SetFillColor(toColor(draw.Transparent))
	b.ctx.SetStrokeColor(toColor(desc.Color))
	b.ctx.SetStrokeWidth(float64(desc.Width))
	b.ctx.SetStrokeJoiner(canvas.RoundJoin)
	b.ctx.SetDashes(0, desc.Dashes...)

	for _, run := range runs {
		if len(run) < 2 {
			continue
		}
		p := &canvas.Path{}
		p.MoveTo(run[0].X, run[0].Y)
		for _, pt := range run[1:] {
			p.LineTo(pt.X, pt.Y)
		}
		b.ctx.DrawPath(0, 0, p)
	}
	return nil
}

// FillRegion fills the closed loop described by the points, clipped to the
// descriptor's clip area.
func (b *Backend) FillRegion(desc draw.FillDescriptor) error {
	points := desc.Points
	if desc.ClipArea != nil {
		points = clipPolygon(points, *desc.ClipArea)
	}
	if len(points) < 3 {
		return nil
	}

	b.ctx.Push()
	defer b.ctx.Pop()
	b.ctx.SetFillColor(toColor(desc.Color))
	b.ctx.SetStrokeColor(toColor(draw.Transparent))

	p := &canvas.Path{}
	p.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
	b.ctx.DrawPath(0, 0, p)
	return nil
}

// DrawText draws a single line of text. The alignment anchor lands on the
// descriptor's position and rotation is applied about that anchor.
func (b *Backend) DrawText(desc draw.TextDescriptor) error {
	if desc.Text == "" {
		return nil
	}
	if desc.ClipArea != nil && !desc.ClipArea.Contains(desc.Position) {
		return nil
	}
	face, err := b.face(desc.Font, desc.Color)
	if err != nil {
		return err
	}

	// anchor offsets measured on the baseline-to-cap-height box
	width := face.TextWidth(desc.Text)
	height := face.Metrics().CapHeight
	ax, ay := anchorOffsets(desc.Alignment, width, height)

	b.ctx.Push()
	defer b.ctx.Pop()
	if desc.Rotation != 0 {
		b.ctx.RotateAbout(-desc.Rotation*180/math.Pi, desc.Position.X, desc.Position.Y)
	}
	line := canvas.NewTextLine(face, desc.Text, canvas.Left)
	b.ctx.DrawText(desc.Position.X-ax, desc.Position.Y-ay, line)
	return nil
}

// TextSize measures the descriptor's text without drawing it.
func (b *Backend) TextSize(desc draw.TextDescriptor) (draw.Size, error) {
	face, err := b.face(desc.Font, desc.Color)
	if err != nil {
		return draw.Size{}, err
	}
	return draw.Size{
		Width:  int(math.Ceil(face.TextWidth(desc.Text))),
		Height: int(math.Ceil(face.Metrics().CapHeight)),
	}, nil
}

// Save serializes the canvas to the descriptor's path.
func (b *Backend) Save(desc draw.SaveFileDescriptor) error {
	var writer canvas.Writer
	switch desc.Format {
	case draw.FormatSVG:
		writer = renderers.SVG()
	default:
		// one pixel per canvas unit
		writer = renderers.PNG(canvas.DPMM(1.0))
	}
	if err := b.c.WriteFile(desc.Path, writer); err != nil {
		return fmt.Errorf("writing %s: %w", desc.Path, err)
	}
	return nil
}

func (b *Backend) face(font draw.Font, col draw.Color) (*canvas.FontFace, error) {
	family, err := b.ensureFontFamily(font.Name)
	if err != nil {
		return nil, err
	}
	// font sizes arrive in pixels; faces are built in points
	return family.Face(font.Size*mmToPt, toColor(col), canvas.FontRegular, canvas.FontNormal), nil
}

func (b *Backend) ensureFontFamily(name draw.FontName) (*canvas.FontFamily, error) {
	b.fontMu.Lock()
	defer b.fontMu.Unlock()

	if family, ok := b.families[name]; ok {
		return family, nil
	}
	data, err := fonts.Load(name)
	if err != nil {
		return nil, err
	}
	family := canvas.NewFontFamily(name.String())
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("loading font %s: %w", name, err)
	}
	b.families[name] = family
	return family, nil
}

func anchorOffsets(a draw.Alignment, w, h float64) (ax, ay float64) {
	switch a {
	case draw.Left:
		return 0, h / 2
	case draw.Right:
		return w, h / 2
	case draw.Top:
		return w / 2, h
	case draw.Bottom:
		return w / 2, 0
	case draw.TopLeft:
		return 0, h
	case draw.TopRight:
		return w, h
	case draw.BottomLeft:
		return 0, 0
	case draw.BottomRight:
		return w, 0
	default:
		return w / 2, h / 2
	}
}

func toColor(c draw.Color) color.Color {
	return canvas.RGBA(c.R, c.G, c.B, c.A)
}
