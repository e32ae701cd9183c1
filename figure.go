// Package plt is a 2D chart layout engine. Figures own subplots placed by a
// Layout; drawing a figure resolves axis ranges, generates and labels ticks,
// allocates margin space from text metrics, and emits drawing primitives to a
// draw.Canvas backend.
package plt

import (
	"fmt"
	"math"

	"github.com/plt-rs/plt/draw"
)

// FigureFormat describes the configuration of a figure. Zero values select
// the defaults: 6.75 x 5.00 inches at 100 DPI on a white background.
type FigureFormat struct {
	// Width and Height are the figure size in inches.
	Width  float64
	Height float64
	// DPI is the dots per inch of the figure. Line widths, tick lengths and
	// font sizes scale with it.
	DPI int
	// FaceColor is the background color of the figure.
	FaceColor *draw.Color
}

const defaultDPI = 100

// Figure holds subplots and their placements, and draws them as one image.
type Figure struct {
	subplots []*Subplot
	areas    []draw.Area
	size     draw.Size
	scaling  float64
	dpi      int
	face     draw.Color
}

// NewFigure creates an empty figure.
func NewFigure(format FigureFormat) *Figure {
	width := format.Width
	height := format.Height
	if width == 0 {
		width = 6.75
	}
	if height == 0 {
		height = 5.00
	}
	dpi := format.DPI
	if dpi == 0 {
		dpi = defaultDPI
	}
	face := draw.White
	if format.FaceColor != nil {
		face = *format.FaceColor
	}

	return &Figure{
		size: draw.Size{
			Width:  int(math.Floor(width * float64(dpi))),
			Height: int(math.Floor(height * float64(dpi))),
		},
		scaling: float64(dpi) / defaultDPI,
		dpi:     dpi,
		face:    face,
	}
}

// Size returns the figure size in pixels.
func (f *Figure) Size() draw.Size { return f.size }

// DPI returns the figure resolution.
func (f *Figure) DPI() int { return f.dpi }

// FaceColor returns the figure background color.
func (f *Figure) FaceColor() draw.Color { return f.face }

// SetLayout adds subplots to the figure through a Layout. Placements are
// validated before any are added.
func (f *Figure) SetLayout(layout Layout) error {
	placed := layout.Subplots()
	for _, p := range placed {
		if !p.Area.valid() {
			return fmt.Errorf(
				"%w: fractional area (%v, %v, %v, %v) must be inside the unit square with min < max",
				ErrInvalidSubplotArea, p.Area.XMin, p.Area.XMax, p.Area.YMin, p.Area.YMax,
			)
		}
	}
	for _, p := range placed {
		f.subplots = append(f.subplots, p.Subplot)
		f.areas = append(f.areas, p.Area.toArea(f.size))
	}
	return nil
}

// Draw draws every subplot to the canvas, in layout order.
func (f *Figure) Draw(canvas draw.Canvas) error {
	for i, subplot := range f.subplots {
		if err := drawSubplot(canvas, subplot, f.areas[i], f.scaling); err != nil {
			return err
		}
	}
	return nil
}

// DrawFile draws the figure to the canvas and saves it at path.
func (f *Figure) DrawFile(canvas draw.Canvas, format draw.ImageFormat, path string) error {
	if err := f.Draw(canvas); err != nil {
		return err
	}
	return canvas.Save(draw.SaveFileDescriptor{
		Path:   path,
		Format: format,
		DPI:    f.dpi,
	})
}

// resolvedAxis is the transient per-draw state of one axis slot: ticks in
// data units, formatted labels, and the label modifiers. It lives only for
// the duration of one draw pass.
type resolvedAxis struct {
	label       string
	majorTicks  []float64
	majorLabels []string
	minorTicks  []float64
	minorLabels []string
	exponent    int
	offset      float64
	majorGrid   bool
	minorGrid   bool
	limits      interval
	visible     bool
}

// subplotLayout is the set of nested boundary rectangles carved from a
// subplot's pixel area, outermost first.
type subplotLayout struct {
	titleBoundary     int
	labelBoundary     draw.Area
	modifierBoundary  draw.Area
	tickLabelBoundary draw.Area
	plotArea          draw.Area
	letter            draw.Size
}

func drawSubplot(canvas draw.Canvas, sp *Subplot, area draw.Area, scaling float64) error {
	axes, err := resolveAxes(sp)
	if err != nil {
		return err
	}
	layout, err := allocateSpace(canvas, sp, axes, area, scaling)
	if err != nil {
		return err
	}
	return dispatchDraw(canvas, sp, axes, layout, scaling)
}

// resolveAxes computes ticks, labels, and modifiers for all four axis slots.
func resolveAxes(sp *Subplot) (*[4]resolvedAxis, error) {
	var axes [4]resolvedAxis
	for _, placement := range axisPlacements {
		ax := sp.axisAt(placement)
		span, limits := sp.resolveSpan(placement)
		isPrimary := sp.isPrimary(placement)

		majorTicks := generateTicks(ax.majorTickMarks, span, isPrimary, 5)
		minorTicks := generateTicks(ax.minorTickMarks, span, isPrimary, len(majorTicks)*5)
		minorTicks = filterMinorTicks(minorTicks, majorTicks)

		var majorLabels []string
		var offset float64
		var exponent int
		switch ax.majorTickLabels.kind {
		case labelsManual:
			majorLabels = ax.majorTickLabels.labels
		case labelsOn:
			var err error
			majorLabels, offset, exponent, err = labelTicks(majorTicks, majorTicks)
			if err != nil {
				return nil, err
			}
		case labelsAuto:
			if isPrimary {
				var err error
				majorLabels, offset, exponent, err = labelTicks(majorTicks, majorTicks)
				if err != nil {
					return nil, err
				}
			}
		}

		var minorLabels []string
		switch ax.minorTickLabels.kind {
		case labelsManual:
			minorLabels = ax.minorTickLabels.labels
		case labelsOn:
			// minor labels share the major modifiers so both rows read on the
			// same scale
			var err error
			minorLabels, _, _, err = labelTicks(minorTicks, majorTicks)
			if err != nil {
				return nil, err
			}
		case labelsAuto:
			if isPrimary {
				var err error
				minorLabels, _, _, err = labelTicks(minorTicks, majorTicks)
				if err != nil {
					return nil, err
				}
			}
		}

		axes[placement] = resolvedAxis{
			label:       ax.label,
			majorTicks:  majorTicks,
			majorLabels: majorLabels,
			minorTicks:  minorTicks,
			minorLabels: minorLabels,
			exponent:    exponent,
			offset:      offset,
			majorGrid:   ax.grid == GridMajor || ax.grid == GridFull,
			minorGrid:   ax.grid == GridFull,
			limits:      limits,
			visible:     ax.visible,
		}
	}
	return &axes, nil
}

// labelTicks formats ticks using modifiers solved from modTicks.
func labelTicks(ticks, modTicks []float64) ([]string, float64, int, error) {
	offset, exponent, precision, err := tickModifiers(modTicks)
	if err != nil {
		return nil, 0, 0, err
	}
	labels, err := ticksToLabels(ticks, offset, exponent, precision)
	if err != nil {
		return nil, 0, 0, err
	}
	return labels, offset, exponent, nil
}

// allocateSpace carves the subplot's pixel area into nested boundary
// rectangles by accumulating per-axis space requirements, sized from the
// metrics of a reference "0" glyph.
func allocateSpace(
	canvas draw.Canvas,
	sp *Subplot,
	axes *[4]resolvedAxis,
	area draw.Area,
	scaling float64,
) (subplotLayout, error) {
	format := sp.format
	fontSize := format.FontSize * scaling

	_, outerMajorLen := tickLengths(format, scaling, false)
	_, outerMinorLen := tickLengths(format, scaling, true)

	// layout depends on the font size
	letter, err := canvas.TextSize(draw.TextDescriptor{
		Text: "0",
		Font: draw.Font{Name: format.FontName, Size: fontSize / scaling},
	})
	if err != nil {
		return subplotLayout{}, fmt.Errorf("measuring reference glyph: %w", err)
	}
	letter = draw.Size{
		Width:  int(float64(letter.Width) * scaling),
		Height: int(float64(letter.Height) * scaling),
	}
	bufferOffset := int(float64(letter.Height) * 0.6)

	// pixel buffers for fitting text on each side of the plot area
	var subplotBuf, labelBuf, modifierBuf, tickLabelBuf, tickBuf [4]int

	for _, placement := range axisPlacements {
		ax := &axes[placement]

		// space for outer tick marks
		if len(ax.majorTicks) > 0 {
			tickBuf[placement] += outerMajorLen
		} else if len(ax.minorTicks) > 0 {
			tickBuf[placement] += outerMinorLen
		}

		// space for tick labels: width-based beside the y-axes, height-based
		// along the x-axes
		if len(ax.majorLabels) > 0 || len(ax.minorLabels) > 0 {
			if placement.vertical() {
				modifierBuf[placement] += 5 * letter.Width
			} else {
				modifierBuf[placement] += letter.Height
			}
			tickBuf[placement] += bufferOffset
		}

		// space for the modifier annotation; the y-axis modifier is drawn
		// along the top edge, so it books space on the secondary x slot
		if ax.exponent != 0 || ax.offset != 0 {
			switch placement {
			case YAxis:
				modifierBuf[SecondaryXAxis] += letter.Height * 2 / 3
				tickLabelBuf[SecondaryXAxis] += bufferOffset
			case XAxis:
				modifierBuf[XAxis] += letter.Height * 2 / 3
				tickLabelBuf[XAxis] += bufferOffset
			}
		}

		// space for the axis label
		if ax.label != "" {
			labelBuf[placement] += letter.Height
			tickLabelBuf[placement] += bufferOffset
		}

		// the outermost margin: a floor of three letter widths when the side
		// is nearly empty, a small gap otherwise
		total := tickBuf[placement] + tickLabelBuf[placement] +
			modifierBuf[placement] + labelBuf[placement]
		if total < letter.Width*2 {
			subplotBuf[placement] = letter.Width * 3
		} else {
			subplotBuf[placement] = bufferOffset
		}
	}

	titleBuf := 0
	if sp.title != "" {
		titleBuf = letter.Height
		labelBuf[SecondaryXAxis] += bufferOffset
	}

	titleBoundary := area.YMax - subplotBuf[SecondaryXAxis] - titleBuf

	labelBoundary := draw.Area{
		XMin: area.XMin + subplotBuf[YAxis] + labelBuf[YAxis],
		XMax: area.XMax - subplotBuf[SecondaryYAxis] - labelBuf[SecondaryYAxis],
		YMin: area.YMin + subplotBuf[XAxis] + labelBuf[XAxis],
		YMax: titleBoundary - labelBuf[SecondaryXAxis],
	}
	modifierBoundary := draw.Area{
		XMin: labelBoundary.XMin + modifierBuf[YAxis],
		XMax: labelBoundary.XMax - modifierBuf[SecondaryYAxis],
		YMin: labelBoundary.YMin + modifierBuf[XAxis],
		YMax: labelBoundary.YMax - modifierBuf[SecondaryXAxis],
	}
	tickLabelBoundary := draw.Area{
		XMin: modifierBoundary.XMin + tickLabelBuf[YAxis],
		XMax: modifierBoundary.XMax - tickLabelBuf[SecondaryYAxis],
		YMin: modifierBoundary.YMin + tickLabelBuf[XAxis],
		YMax: modifierBoundary.YMax - tickLabelBuf[SecondaryXAxis],
	}
	plotArea := draw.Area{
		XMin: tickLabelBoundary.XMin + tickBuf[YAxis],
		XMax: tickLabelBoundary.XMax - tickBuf[SecondaryYAxis],
		YMin: tickLabelBoundary.YMin + tickBuf[XAxis],
		YMax: tickLabelBoundary.YMax - tickBuf[SecondaryXAxis],
	}

	return subplotLayout{
		titleBoundary:     titleBoundary,
		labelBoundary:     labelBoundary,
		modifierBoundary:  modifierBoundary,
		tickLabelBoundary: tickLabelBoundary,
		plotArea:          plotArea,
		letter:            letter,
	}, nil
}

// tickLengths returns the inner and outer stroke lengths for tick marks.
func tickLengths(format SubplotFormat, scaling float64, minor bool) (inner, outer int) {
	length := format.TickLength * int(math.Round(scaling))
	if minor {
		if format.MinorTickLength != 0 {
			length = format.MinorTickLength * int(math.Round(scaling))
		} else {
			length /= 2
		}
	}
	switch format.TickDirection {
	case TickInner:
		return length, 0
	case TickOuter:
		return 0, length
	default:
		return length, length
	}
}

// dispatchDraw emits every drawing primitive for the subplot in strict
// order: background, grid, data in plot order, then axis furniture and the
// title on top.
func dispatchDraw(
	canvas draw.Canvas,
	sp *Subplot,
	axes *[4]resolvedAxis,
	layout subplotLayout,
	scaling float64,
) error {
	format := sp.format
	lineWidth := format.LineWidth * int(math.Round(scaling))
	fontSize := format.FontSize * scaling
	font := draw.Font{Name: format.FontName, Size: fontSize}
	plotArea := layout.plotArea

	// plot area background
	err := canvas.DrawShape(draw.ShapeDescriptor{
		Point: draw.Point{
			X: float64(plotArea.XMin) + float64(plotArea.XSize())/2,
			Y: float64(plotArea.YMin) + float64(plotArea.YSize())/2,
		},
		Shape:     draw.Rectangle(plotArea.XSize(), plotArea.YSize()),
		FillColor: format.PlotColor,
		LineColor: draw.Transparent,
	})
	if err != nil {
		return fmt.Errorf("drawing plot background: %w", err)
	}

	if err := drawGrid(canvas, axes, plotArea, format, lineWidth); err != nil {
		return err
	}
	if err := drawData(canvas, sp, axes, plotArea, scaling); err != nil {
		return err
	}

	innerMajorLen, outerMajorLen := tickLengths(format, scaling, false)
	innerMinorLen, outerMinorLen := tickLengths(format, scaling, true)

	for _, placement := range axisPlacements {
		ax := &axes[placement]

		if err := drawAxisLine(canvas, placement, ax, plotArea, format, lineWidth); err != nil {
			return err
		}
		if err := drawModifier(canvas, placement, ax, layout, font, format); err != nil {
			return err
		}
		if err := drawAxisLabel(canvas, placement, ax, layout, font, format); err != nil {
			return err
		}

		kinds := []struct {
			ticks    []float64
			labels   []string
			outerLen int
			innerLen int
		}{
			{ax.majorTicks, ax.majorLabels, outerMajorLen, innerMajorLen},
			{ax.minorTicks, ax.minorLabels, outerMinorLen, innerMinorLen},
		}
		for _, kind := range kinds {
			labels := kind.labels
			if len(labels) == 0 {
				labels = make([]string, len(kind.ticks))
			} else if len(labels) != len(kind.ticks) {
				return fmt.Errorf(
					"%w: %d tick labels for %d ticks on %s",
					ErrBadTickLabels, len(labels), len(kind.ticks), placement,
				)
			}
			err := drawTicks(
				canvas, placement, kind.ticks, labels, ax.limits,
				layout, kind.innerLen, kind.outerLen, font, format, lineWidth,
			)
			if err != nil {
				return err
			}
		}
	}

	// the title draws last, topmost
	if sp.title != "" {
		err := canvas.DrawText(draw.TextDescriptor{
			Text: sp.title,
			Position: draw.Point{
				X: float64(plotArea.XMax+plotArea.XMin) / 2,
				Y: float64(layout.titleBoundary),
			},
			Alignment: draw.Bottom,
			Color:     format.TextColor,
			Font:      font,
		})
		if err != nil {
			return fmt.Errorf("drawing title: %w", err)
		}
	}

	return nil
}

// tickFraction maps a tick value to its fractional position between the axis
// limits.
func tickFraction(tick float64, limits interval) float64 {
	return (tick - limits.lo) / (limits.hi - limits.lo)
}

func drawGrid(
	canvas draw.Canvas,
	axes *[4]resolvedAxis,
	plotArea draw.Area,
	format SubplotFormat,
	lineWidth int,
) error {
	for _, placement := range axisPlacements {
		ax := &axes[placement]
		kinds := []struct {
			ticks []float64
			on    bool
		}{
			{ax.majorTicks, ax.majorGrid},
			{ax.minorTicks, ax.minorGrid},
		}
		for _, kind := range kinds {
			if !kind.on {
				continue
			}
			for _, tick := range kind.ticks {
				frac := tickFraction(tick, ax.limits)
				loc := plotArea.FractionalToPoint(draw.Point{X: frac, Y: frac})

				var line draw.Line
				if placement.vertical() {
					y := math.Round(loc.Y)
					line = draw.Line{
						P1: draw.Point{X: float64(plotArea.XMin), Y: y},
						P2: draw.Point{X: float64(plotArea.XMax), Y: y},
					}
				} else {
					x := math.Round(loc.X)
					line = draw.Line{
						P1: draw.Point{X: x, Y: float64(plotArea.YMin)},
						P2: draw.Point{X: x, Y: float64(plotArea.YMax)},
					}
				}
				err := canvas.DrawLine(draw.LineDescriptor{
					Line:  line,
					Color: format.GridColor,
					Width: lineWidth,
				})
				if err != nil {
					return fmt.Errorf("drawing grid line: %w", err)
				}
			}
		}
	}
	return nil
}

// drawData draws every recorded series and fill in the order they were
// added. Line and fill colors cycle independently; fills use translucent
// variants of the cycle.
func drawData(
	canvas draw.Canvas,
	sp *Subplot,
	axes *[4]resolvedAxis,
	plotArea draw.Area,
	scaling float64,
) error {
	format := sp.format

	lineCycle := format.ColorCycle
	if len(lineCycle) == 0 {
		lineCycle = []draw.Color{format.DefaultMarkerColor}
	}
	fillCycle := make([]draw.Color, 0, len(format.ColorCycle))
	for _, c := range format.ColorCycle {
		fillCycle = append(fillCycle, c.WithAlpha(0.5))
	}
	if len(fillCycle) == 0 {
		fillCycle = []draw.Color{format.DefaultFillColor}
	}
	lineIdx, fillIdx := 0, 0
	nextLineColor := func() draw.Color {
		c := lineCycle[lineIdx%len(lineCycle)]
		lineIdx++
		return c
	}
	nextFillColor := func() draw.Color {
		c := fillCycle[fillIdx%len(fillCycle)]
		fillIdx++
		return c
	}

	seriesIdx, fillInfoIdx := 0, 0
	for _, kind := range sp.order {
		switch kind {
		case kindSeries:
			info := &sp.series[seriesIdx]
			seriesIdx++
			if err := drawSeries(canvas, info, axes, plotArea, scaling, nextLineColor); err != nil {
				return err
			}
		case kindFill:
			info := &sp.fills[fillInfoIdx]
			fillInfoIdx++
			if err := drawFill(canvas, info, axes, plotArea, nextFillColor); err != nil {
				return err
			}
		}
	}
	return nil
}

func drawSeries(
	canvas draw.Canvas,
	info *seriesInfo,
	axes *[4]resolvedAxis,
	plotArea draw.Area,
	scaling float64,
	nextColor func() draw.Color,
) error {
	xlim := axes[info.xaxis].limits
	ylim := axes[info.yaxis].limits

	transform := func(i int) draw.Point {
		x, y := info.data.XY(i)
		point := plotArea.FractionalToPoint(draw.Point{
			X: tickFraction(x, xlim),
			Y: tickFraction(y, ylim),
		})
		if info.pixelPerfect {
			point.X = math.Round(point.X)
			point.Y = math.Round(point.Y)
		}
		return point
	}

	if info.line != nil {
		color := info.line.color
		if color == nil {
			c := nextColor()
			color = &c
		}
		points := make([]draw.Point, info.data.Len())
		for i := range points {
			points[i] = transform(i)
		}
		err := canvas.DrawCurve(draw.CurveDescriptor{
			Points:   points,
			Color:    *color,
			Width:    info.line.width * int(math.Round(scaling)),
			Dashes:   info.line.style.dashes(scaling),
			ClipArea: &plotArea,
		})
		if err != nil {
			return fmt.Errorf("drawing series line: %w", err)
		}
	}

	if info.marker != nil {
		var shape draw.Shape
		switch info.marker.style {
		case MarkerSquare:
			shape = draw.Square(info.marker.size)
		default:
			shape = draw.Circle(info.marker.size)
		}
		shape.Scale(int(math.Round(scaling)))

		fillColor := info.marker.color
		if fillColor == nil {
			c := nextColor()
			fillColor = &c
		}

		// an absent outline falls back to a zero-width transparent stroke
		outline := info.marker.outline
		if outline == nil {
			transparent := draw.Transparent
			outline = &lineFormat{style: LineSolid, color: &transparent}
		}
		outlineColor := *fillColor
		if outline.color != nil {
			outlineColor = *outline.color
		}

		for i := 0; i < info.data.Len(); i++ {
			err := canvas.DrawShape(draw.ShapeDescriptor{
				Point:     transform(i),
				Shape:     shape,
				FillColor: *fillColor,
				LineColor: outlineColor,
				LineWidth: outline.width * int(math.Round(scaling)),
				Dashes:    outline.style.dashes(scaling),
				ClipArea:  &plotArea,
			})
			if err != nil {
				return fmt.Errorf("drawing marker: %w", err)
			}
		}
	}

	return nil
}

func drawFill(
	canvas draw.Canvas,
	info *fillInfo,
	axes *[4]resolvedAxis,
	plotArea draw.Area,
	nextColor func() draw.Color,
) error {
	xlim := axes[info.xaxis].limits
	ylim := axes[info.yaxis].limits

	color := info.color
	if color == nil {
		c := nextColor()
		color = &c
	}

	transform := func(data SeriesData, i int) draw.Point {
		x, y := data.XY(i)
		return plotArea.FractionalToPoint(draw.Point{
			X: tickFraction(x, xlim),
			Y: tickFraction(y, ylim),
		})
	}

	// the loop runs forward along the top curve, then back along the bottom
	points := make([]draw.Point, 0, info.top.Len()+info.bottom.Len())
	for i := 0; i < info.top.Len(); i++ {
		points = append(points, transform(info.top, i))
	}
	for i := info.bottom.Len() - 1; i >= 0; i-- {
		points = append(points, transform(info.bottom, i))
	}

	err := canvas.FillRegion(draw.FillDescriptor{
		Points:   points,
		Color:    *color,
		ClipArea: &plotArea,
	})
	if err != nil {
		return fmt.Errorf("drawing fill region: %w", err)
	}
	return nil
}

func drawAxisLine(
	canvas draw.Canvas,
	placement AxisPlacement,
	ax *resolvedAxis,
	plotArea draw.Area,
	format SubplotFormat,
	lineWidth int,
) error {
	axisOffset := float64(lineWidth) / 2
	var line draw.Line
	switch placement {
	case YAxis:
		line = draw.Line{
			P1: draw.Point{X: float64(plotArea.XMin), Y: float64(plotArea.YMin) + axisOffset},
			P2: draw.Point{X: float64(plotArea.XMin), Y: float64(plotArea.YMax) + axisOffset},
		}
	case SecondaryYAxis:
		line = draw.Line{
			P1: draw.Point{X: float64(plotArea.XMax), Y: float64(plotArea.YMin) + axisOffset},
			P2: draw.Point{X: float64(plotArea.XMax), Y: float64(plotArea.YMax) - axisOffset},
		}
	case XAxis:
		line = draw.Line{
			P1: draw.Point{X: float64(plotArea.XMin) - axisOffset, Y: float64(plotArea.YMin)},
			P2: draw.Point{X: float64(plotArea.XMax) + axisOffset, Y: float64(plotArea.YMin)},
		}
	case SecondaryXAxis:
		line = draw.Line{
			P1: draw.Point{X: float64(plotArea.XMin) + axisOffset, Y: float64(plotArea.YMax)},
			P2: draw.Point{X: float64(plotArea.XMax) + axisOffset, Y: float64(plotArea.YMax)},
		}
	}

	color := format.LineColor
	if !ax.visible {
		color = draw.Transparent
	}
	err := canvas.DrawLine(draw.LineDescriptor{
		Line:  line,
		Color: color,
		Width: lineWidth,
	})
	if err != nil {
		return fmt.Errorf("drawing %s line: %w", placement, err)
	}
	return nil
}

func drawModifier(
	canvas draw.Canvas,
	placement AxisPlacement,
	ax *resolvedAxis,
	layout subplotLayout,
	font draw.Font,
	format SubplotFormat,
) error {
	text := modifierText(ax.offset, ax.exponent)
	if text == "" {
		return nil
	}

	plotArea := layout.plotArea
	letterWidth := float64(layout.letter.Width)

	var position draw.Point
	alignment := draw.BottomLeft
	switch placement {
	case YAxis:
		position = draw.Point{
			X: float64(plotArea.XMin) - letterWidth/2,
			Y: float64(layout.modifierBoundary.YMax),
		}
	case SecondaryYAxis:
		position = draw.Point{
			X: float64(plotArea.XMax) - letterWidth/2,
			Y: float64(layout.modifierBoundary.YMax),
		}
	case SecondaryXAxis:
		position = draw.Point{
			X: float64(layout.tickLabelBoundary.XMax) + letterWidth,
			Y: float64(layout.tickLabelBoundary.YMax),
		}
	case XAxis:
		position = draw.Point{
			X: float64(plotArea.XMax),
			Y: float64(layout.modifierBoundary.YMin),
		}
		alignment = draw.TopRight
	}

	err := canvas.DrawText(draw.TextDescriptor{
		Text:      text,
		Position:  position,
		Alignment: alignment,
		Color:     format.TextColor,
		Font:      font,
	})
	if err != nil {
		return fmt.Errorf("drawing %s modifier: %w", placement, err)
	}
	return nil
}

func drawAxisLabel(
	canvas draw.Canvas,
	placement AxisPlacement,
	ax *resolvedAxis,
	layout subplotLayout,
	font draw.Font,
	format SubplotFormat,
) error {
	if ax.label == "" {
		return nil
	}

	plotArea := layout.plotArea
	centerX := float64(plotArea.XMax+plotArea.XMin) / 2
	centerY := float64(plotArea.YMax+plotArea.YMin) / 2

	desc := draw.TextDescriptor{
		Text:  ax.label,
		Color: format.TextColor,
		Font:  font,
	}
	switch placement {
	case YAxis:
		desc.Position = draw.Point{X: float64(layout.labelBoundary.XMin), Y: centerY}
		desc.Alignment = draw.Right
		desc.Rotation = 1.5 * math.Pi
	case XAxis:
		desc.Position = draw.Point{X: centerX, Y: float64(layout.labelBoundary.YMin)}
		desc.Alignment = draw.Top
	case SecondaryYAxis:
		desc.Position = draw.Point{X: float64(layout.labelBoundary.XMax), Y: centerY}
		desc.Alignment = draw.Left
		desc.Rotation = 0.5 * math.Pi
	case SecondaryXAxis:
		desc.Position = draw.Point{X: centerX, Y: float64(layout.labelBoundary.YMax)}
		desc.Alignment = draw.Bottom
	}

	if err := canvas.DrawText(desc); err != nil {
		return fmt.Errorf("drawing %s label: %w", placement, err)
	}
	return nil
}

func drawTicks(
	canvas draw.Canvas,
	placement AxisPlacement,
	ticks []float64,
	labels []string,
	limits interval,
	layout subplotLayout,
	innerLen, outerLen int,
	font draw.Font,
	format SubplotFormat,
	lineWidth int,
) error {
	plotArea := layout.plotArea
	tickLabelBoundary := layout.tickLabelBoundary

	for i, tick := range ticks {
		frac := tickFraction(tick, limits)
		loc := plotArea.FractionalToPoint(draw.Point{X: frac, Y: frac})

		var line draw.Line
		var textPos draw.Point
		var alignment draw.Alignment
		switch placement {
		case YAxis:
			y := math.Round(loc.Y)
			line = draw.Line{
				P1: draw.Point{X: float64(plotArea.XMin - outerLen), Y: y},
				P2: draw.Point{X: float64(plotArea.XMin + innerLen), Y: y},
			}
			textPos = draw.Point{X: float64(tickLabelBoundary.XMin), Y: y}
			alignment = draw.Right
		case XAxis:
			x := math.Round(loc.X)
			line = draw.Line{
				P1: draw.Point{X: x, Y: float64(plotArea.YMin - outerLen)},
				P2: draw.Point{X: x, Y: float64(plotArea.YMin + innerLen)},
			}
			textPos = draw.Point{X: x, Y: float64(tickLabelBoundary.YMin)}
			alignment = draw.Top
		case SecondaryYAxis:
			y := math.Round(loc.Y)
			line = draw.Line{
				P1: draw.Point{X: float64(plotArea.XMax - innerLen), Y: y},
				P2: draw.Point{X: float64(plotArea.XMax + outerLen), Y: y},
			}
			textPos = draw.Point{X: float64(tickLabelBoundary.XMax), Y: y}
			alignment = draw.Left
		case SecondaryXAxis:
			x := math.Round(loc.X)
			line = draw.Line{
				P1: draw.Point{X: x, Y: float64(plotArea.YMax - innerLen)},
				P2: draw.Point{X: x, Y: float64(plotArea.YMax + outerLen)},
			}
			textPos = draw.Point{X: x, Y: float64(tickLabelBoundary.YMax)}
			alignment = draw.Bottom
		}

		err := canvas.DrawLine(draw.LineDescriptor{
			Line:  line,
			Color: format.LineColor,
			Width: lineWidth,
		})
		if err != nil {
			return fmt.Errorf("drawing %s tick: %w", placement, err)
		}

		if labels[i] == "" {
			continue
		}
		err = canvas.DrawText(draw.TextDescriptor{
			Text:      labels[i],
			Position:  textPos,
			Alignment: alignment,
			Color:     format.TextColor,
			Font:      font,
		})
		if err != nil {
			return fmt.Errorf("drawing %s tick label: %w", placement, err)
		}
	}
	return nil
}
