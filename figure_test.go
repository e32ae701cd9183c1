package plt

import (
	"errors"
	"testing"

	"github.com/plt-rs/plt/draw"
)

// stubCanvas records every descriptor it receives, in call order. Text is
// measured with fixed per-rune metrics so layout math is predictable.
type stubCanvas struct {
	size   draw.Size
	ops    []string
	shapes []draw.ShapeDescriptor
	lines  []draw.LineDescriptor
	curves []draw.CurveDescriptor
	fills  []draw.FillDescriptor
	texts  []draw.TextDescriptor
	saves  []draw.SaveFileDescriptor
}

func newStubCanvas(size draw.Size) *stubCanvas {
	return &stubCanvas{size: size}
}

func (c *stubCanvas) Size() draw.Size { return c.size }

func (c *stubCanvas) DrawShape(desc draw.ShapeDescriptor) error {
	c.ops = append(c.ops, "shape")
	c.shapes = append(c.shapes, desc)
	return nil
}

func (c *stubCanvas) DrawLine(desc draw.LineDescriptor) error {
	c.ops = append(c.ops, "line")
	c.lines = append(c.lines, desc)
	return nil
}

func (c *stubCanvas) DrawCurve(desc draw.CurveDescriptor) error {
	c.ops = append(c.ops, "curve")
	c.curves = append(c.curves, desc)
	return nil
}

func (c *stubCanvas) FillRegion(desc draw.FillDescriptor) error {
	c.ops = append(c.ops, "fill")
	c.fills = append(c.fills, desc)
	return nil
}

func (c *stubCanvas) DrawText(desc draw.TextDescriptor) error {
	c.ops = append(c.ops, "text")
	c.texts = append(c.texts, desc)
	return nil
}

func (c *stubCanvas) TextSize(desc draw.TextDescriptor) (draw.Size, error) {
	return draw.Size{Width: 10 * len([]rune(desc.Text)), Height: 14}, nil
}

func (c *stubCanvas) Save(desc draw.SaveFileDescriptor) error {
	c.ops = append(c.ops, "save")
	c.saves = append(c.saves, desc)
	return nil
}

func indexOf(ops []string, op string) int {
	for i, o := range ops {
		if o == op {
			return i
		}
	}
	return -1
}

func TestNewFigureDefaults(t *testing.T) {
	fig := NewFigure(FigureFormat{})
	if fig.Size() != (draw.Size{Width: 675, Height: 500}) {
		t.Errorf("Size() = %+v, want 675x500", fig.Size())
	}
	if fig.DPI() != 100 {
		t.Errorf("DPI() = %d, want 100", fig.DPI())
	}
	if fig.FaceColor() != draw.White {
		t.Errorf("FaceColor() = %+v, want white", fig.FaceColor())
	}

	fig = NewFigure(FigureFormat{Width: 2, Height: 1, DPI: 200})
	if fig.Size() != (draw.Size{Width: 400, Height: 200}) {
		t.Errorf("Size() = %+v, want 400x200", fig.Size())
	}
}

// fixedLayout places one subplot at a fixed fractional area, for exercising
// placement validation.
type fixedLayout struct {
	subplot *Subplot
	area    FractionalArea
}

func (l fixedLayout) Subplots() []PlacedSubplot {
	return []PlacedSubplot{{Subplot: l.subplot, Area: l.area}}
}

func TestSetLayoutRejectsInvalidArea(t *testing.T) {
	cases := []FractionalArea{
		{XMin: 0.5, XMax: 0.25, YMin: 0, YMax: 1}, // inverted x
		{XMin: 0, XMax: 1, YMin: 0.5, YMax: 0.5},  // empty y
		{XMin: -0.1, XMax: 1, YMin: 0, YMax: 1},   // outside unit square
		{XMin: 0, XMax: 1.25, YMin: 0, YMax: 1},   // outside unit square
	}
	for _, area := range cases {
		fig := NewFigure(FigureFormat{})
		err := fig.SetLayout(fixedLayout{subplot: NewSubplot(SubplotConfig{}), area: area})
		if !errors.Is(err, ErrInvalidSubplotArea) {
			t.Errorf("area %+v: err = %v, want ErrInvalidSubplotArea", area, err)
		}

		// a rejected layout must not add anything
		canvas := newStubCanvas(fig.Size())
		if err := fig.Draw(canvas); err != nil {
			t.Fatalf("Draw: %v", err)
		}
		if len(canvas.ops) != 0 {
			t.Errorf("area %+v: draw emitted %d ops after rejected layout", area, len(canvas.ops))
		}
	}
}

// TestDrawOrder locks the layering: background first, grid under data,
// series before fills added later, axis furniture over data, title last.
func TestDrawOrder(t *testing.T) {
	sp := NewSubplot(SubplotConfig{Title: "Growth"})
	sp.SetGrid(SelectX, GridMajor)
	sp.SetGrid(SelectY, GridMajor)
	if err := sp.Plot([]float64{0, 1, 2}, []float64{0, 1, 4}); err != nil {
		t.Fatalf("Plot: %v", err)
	}
	top, _ := NewXYData([]float64{0, 1, 2}, []float64{1, 2, 5})
	bottom, _ := NewXYData([]float64{0, 1, 2}, []float64{0, 0, 0})
	if err := sp.Fill(top, bottom); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	fig := NewFigure(FigureFormat{})
	if err := fig.SetLayout(NewSingleLayout(sp)); err != nil {
		t.Fatalf("SetLayout: %v", err)
	}
	canvas := newStubCanvas(fig.Size())
	if err := fig.Draw(canvas); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if len(canvas.ops) == 0 || canvas.ops[0] != "shape" {
		t.Fatalf("first op = %v, want the background shape", canvas.ops)
	}
	curveAt := indexOf(canvas.ops, "curve")
	fillAt := indexOf(canvas.ops, "fill")
	lineAt := indexOf(canvas.ops, "line")
	if curveAt == -1 || fillAt == -1 || lineAt == -1 {
		t.Fatalf("ops = %v, want grid lines, a curve, and a fill", canvas.ops)
	}
	if lineAt > curveAt {
		t.Errorf("first line op at %d after curve at %d; grid should draw under data", lineAt, curveAt)
	}
	if curveAt > fillAt {
		t.Errorf("curve at %d after fill at %d; plot order should be preserved", curveAt, fillAt)
	}
	lastLine := -1
	for i, op := range canvas.ops {
		if op == "line" {
			lastLine = i
		}
	}
	if lastLine < fillAt {
		t.Errorf("no axis lines after data: last line at %d, fill at %d", lastLine, fillAt)
	}

	if len(canvas.texts) == 0 {
		t.Fatal("no text drawn")
	}
	title := canvas.texts[len(canvas.texts)-1]
	if title.Text != "Growth" {
		t.Errorf("last text = %q, want the title", title.Text)
	}
	if title.Alignment != draw.Bottom {
		t.Errorf("title alignment = %v, want Bottom", title.Alignment)
	}
}

// TestFillRegionLoop checks the fill outline runs forward along the top
// curve and back along the bottom one.
func TestFillRegionLoop(t *testing.T) {
	top, _ := NewXYData([]float64{0, 1, 2}, []float64{2, 3, 4})
	bottom, _ := NewXYData([]float64{0, 1, 2}, []float64{0, 0, 0})

	sp := NewSubplot(SubplotConfig{})
	if err := sp.Fill(top, bottom); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	fig := NewFigure(FigureFormat{})
	if err := fig.SetLayout(NewSingleLayout(sp)); err != nil {
		t.Fatalf("SetLayout: %v", err)
	}
	canvas := newStubCanvas(fig.Size())
	if err := fig.Draw(canvas); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if len(canvas.fills) != 1 {
		t.Fatalf("recorded %d fills, want 1", len(canvas.fills))
	}
	points := canvas.fills[0].Points
	if len(points) != 6 {
		t.Fatalf("fill outline has %d points, want 6", len(points))
	}
	if points[0].X >= points[2].X {
		t.Errorf("top run not forward: x %v then %v", points[0].X, points[2].X)
	}
	if points[3].X != points[2].X {
		t.Errorf("bottom run should start under the top run's end: %v vs %v", points[3].X, points[2].X)
	}
	if points[5].X != points[0].X {
		t.Errorf("loop should close over the first x: %v vs %v", points[5].X, points[0].X)
	}
	if points[0].Y <= points[5].Y {
		t.Errorf("top curve should sit above bottom curve: %v vs %v", points[0].Y, points[5].Y)
	}
}

// TestEmptySidesKeepMinimumMargin checks the floor applied to sides with no
// labels: three letter widths of margin.
func TestEmptySidesKeepMinimumMargin(t *testing.T) {
	sp := NewSubplot(SubplotConfig{})
	fig := NewFigure(FigureFormat{})
	if err := fig.SetLayout(NewSingleLayout(sp)); err != nil {
		t.Fatalf("SetLayout: %v", err)
	}

	dbg, err := fig.DebugLayout(newStubCanvas(fig.Size()))
	if err != nil {
		t.Fatalf("DebugLayout: %v", err)
	}
	if len(dbg.Subplots) != 1 {
		t.Fatalf("debug has %d subplots, want 1", len(dbg.Subplots))
	}

	// a letter measures 10x14, so empty sides get a 30 pixel margin
	want := draw.Area{XMin: 30, XMax: 645, YMin: 30, YMax: 470}
	if dbg.Subplots[0].PlotArea != want {
		t.Errorf("plot area = %+v, want %+v", dbg.Subplots[0].PlotArea, want)
	}
}

func TestManualTickLabelMismatch(t *testing.T) {
	sp := NewSubplot(SubplotConfig{
		XAxis: AxisConfig{MajorTickLabels: ManualLabels("lo", "hi")},
	})
	if err := sp.Plot([]float64{0, 1}, []float64{0, 1}); err != nil {
		t.Fatalf("Plot: %v", err)
	}

	fig := NewFigure(FigureFormat{})
	if err := fig.SetLayout(NewSingleLayout(sp)); err != nil {
		t.Fatalf("SetLayout: %v", err)
	}
	err := fig.Draw(newStubCanvas(fig.Size()))
	if !errors.Is(err, ErrBadTickLabels) {
		t.Fatalf("Draw err = %v, want ErrBadTickLabels", err)
	}
}

// TestManualLimitsDriveTicksAndMapping pins the whole pipeline for one
// subplot: manual limits shape the tick lists, and plotted points land at the
// matching fractions of the plot area.
func TestManualLimitsDriveTicksAndMapping(t *testing.T) {
	sp := NewSubplot(SubplotConfig{
		XAxis: AxisConfig{Limits: ManualLimits(0, 2)},
		YAxis: AxisConfig{Limits: ManualLimits(0, 10)},
	})
	if err := sp.Plot([]float64{0, 1, 2}, []float64{0, 1, 8}); err != nil {
		t.Fatalf("Plot: %v", err)
	}

	fig := NewFigure(FigureFormat{})
	if err := fig.SetLayout(NewSingleLayout(sp)); err != nil {
		t.Fatalf("SetLayout: %v", err)
	}

	dbg, err := fig.DebugLayout(newStubCanvas(fig.Size()))
	if err != nil {
		t.Fatalf("DebugLayout: %v", err)
	}
	plotArea := dbg.Subplots[0].PlotArea

	canvas := newStubCanvas(fig.Size())
	if err := fig.Draw(canvas); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	// major ticks at fifths of the manual ranges
	wantLabels := []string{
		"0.0", "0.5", "1.0", "1.5", "2.0", // x: (0, 2)
		"2.5", "5.0", "7.5", "10.0", // y: (0, 10)
	}
	for _, want := range wantLabels {
		found := false
		for _, txt := range canvas.texts {
			if txt.Text == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("tick label %q not drawn", want)
		}
	}

	if len(canvas.curves) != 1 {
		t.Fatalf("recorded %d curves, want 1", len(canvas.curves))
	}
	points := canvas.curves[0].Points
	if len(points) != 3 {
		t.Fatalf("curve has %d points, want 3", len(points))
	}

	// data coordinates map to fractions of the plot area between the limits
	fracs := []struct{ x, y float64 }{{0, 0}, {0.5, 0.1}, {1.0, 0.8}}
	for i, frac := range fracs {
		wantX := float64(plotArea.XMin) + frac.x*float64(plotArea.XSize())
		wantY := float64(plotArea.YMin) + frac.y*float64(plotArea.YSize())
		if points[i].X != wantX || points[i].Y != wantY {
			t.Errorf(
				"point %d drawn at (%v, %v), want fraction (%v, %v) = (%v, %v)",
				i, points[i].X, points[i].Y, frac.x, frac.y, wantX, wantY,
			)
		}
	}
}

func TestDrawFileSavesAfterDrawing(t *testing.T) {
	sp := NewSubplot(SubplotConfig{})
	if err := sp.Plot([]float64{0, 1}, []float64{0, 1}); err != nil {
		t.Fatalf("Plot: %v", err)
	}
	fig := NewFigure(FigureFormat{DPI: 300})
	if err := fig.SetLayout(NewSingleLayout(sp)); err != nil {
		t.Fatalf("SetLayout: %v", err)
	}

	canvas := newStubCanvas(fig.Size())
	if err := fig.DrawFile(canvas, draw.FormatSVG, "out.svg"); err != nil {
		t.Fatalf("DrawFile: %v", err)
	}
	if len(canvas.saves) != 1 {
		t.Fatalf("recorded %d saves, want 1", len(canvas.saves))
	}
	save := canvas.saves[0]
	if save.Path != "out.svg" || save.Format != draw.FormatSVG || save.DPI != 300 {
		t.Errorf("save = %+v, want out.svg as SVG at 300 DPI", save)
	}
	if canvas.ops[len(canvas.ops)-1] != "save" {
		t.Errorf("save should be the last op, got %v", canvas.ops)
	}
}

func TestFigureDrawsEverySubplot(t *testing.T) {
	grid := NewGridLayout(1, 2)
	for col := 0; col < 2; col++ {
		sp := NewSubplot(SubplotConfig{})
		if err := sp.Plot([]float64{0, 1}, []float64{0, 1}); err != nil {
			t.Fatalf("Plot: %v", err)
		}
		if err := grid.Insert(0, col, sp); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	fig := NewFigure(FigureFormat{})
	if err := fig.SetLayout(grid); err != nil {
		t.Fatalf("SetLayout: %v", err)
	}
	canvas := newStubCanvas(fig.Size())
	if err := fig.Draw(canvas); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(canvas.shapes) != 2 {
		t.Errorf("drew %d background shapes, want one per subplot", len(canvas.shapes))
	}
	if len(canvas.curves) != 2 {
		t.Errorf("drew %d curves, want one per subplot", len(canvas.curves))
	}
}
