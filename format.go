package plt

import "github.com/plt-rs/plt/draw"

// LineStyle selects the dash pattern of a plotted line.
type LineStyle int

const (
	// LineSolid is an unbroken line.
	LineSolid LineStyle = iota
	// LineDashed uses regular sized dashes.
	LineDashed
	// LineShortDashed uses short dashes.
	LineShortDashed
)

// dashes returns the dash pattern scaled for the figure DPI. Solid lines
// return nil.
func (s LineStyle) dashes(scaling float64) []float64 {
	var unit float64
	switch s {
	case LineDashed:
		unit = 10.0 * scaling
	case LineShortDashed:
		unit = 4.0 * scaling
	default:
		return nil
	}
	return []float64{unit, unit, unit, unit}
}

// MarkerStyle selects the shape drawn at data points. The zero value draws no
// markers.
type MarkerStyle int

const (
	MarkerNone MarkerStyle = iota
	MarkerCircle
	MarkerSquare
)

// TickDirection selects which side of the axis line tick marks extend to.
type TickDirection int

const (
	// TickInner points ticks into the plot area.
	TickInner TickDirection = iota
	// TickOuter points ticks away from the plot area.
	TickOuter
	// TickBoth draws ticks on both sides.
	TickBoth
)

// SubplotFormat collects the visual configuration of a subplot.
type SubplotFormat struct {
	// DefaultMarkerColor is used for markers and lines when the color cycle
	// is empty.
	DefaultMarkerColor draw.Color
	// DefaultFillColor is used for fills when the color cycle is empty.
	DefaultFillColor draw.Color
	// PlotColor is the background color of the plot area.
	PlotColor draw.Color
	// LineWidth is the width of all non-plot lines: axes, ticks, grid.
	LineWidth int
	// LineColor is the color of axis and tick lines.
	LineColor draw.Color
	// GridColor is the color of grid lines.
	GridColor draw.Color
	// FontName is the face used for all subplot text.
	FontName draw.FontName
	// FontSize is the text size before DPI scaling.
	FontSize float64
	// TextColor is the color of all subplot text.
	TextColor draw.Color
	// TickLength is the length of major tick marks, from the axis line out.
	TickLength int
	// TickDirection sets which way tick marks point.
	TickDirection TickDirection
	// MinorTickLength overrides the minor tick length, which otherwise
	// defaults to half of TickLength.
	MinorTickLength int
	// ColorCycle is cycled through for series and fill colors.
	ColorCycle []draw.Color
}

// defaultColorCycle matches the five-color gruvbox-like palette used by the
// stock themes.
func defaultColorCycle() []draw.Color {
	return []draw.Color{
		{R: 0.271, G: 0.522, B: 0.533, A: 1.0}, // blue
		{R: 0.839, G: 0.365, B: 0.055, A: 1.0}, // orange
		{R: 0.596, G: 0.592, B: 0.102, A: 1.0}, // green
		{R: 0.694, G: 0.384, B: 0.525, A: 1.0}, // purple
		{R: 0.800, G: 0.141, B: 0.114, A: 1.0}, // red
	}
}

// DefaultFormat returns the light subplot theme.
func DefaultFormat() SubplotFormat {
	return SubplotFormat{
		DefaultMarkerColor: draw.Black,
		DefaultFillColor:   draw.Color{R: 1.0, A: 0.5},
		PlotColor:          draw.Transparent,
		LineWidth:          2,
		LineColor:          draw.Black,
		GridColor:          draw.Color{R: 0.750, G: 0.750, B: 0.750, A: 1.0},
		FontName:           draw.FontRoman,
		FontSize:           20.0,
		TextColor:          draw.Black,
		TickLength:         8,
		TickDirection:      TickInner,
		ColorCycle:         defaultColorCycle(),
	}
}

// DarkFormat returns the dark subplot theme.
func DarkFormat() SubplotFormat {
	lineColor := draw.Color{R: 0.659, G: 0.600, B: 0.518, A: 1.0}
	return SubplotFormat{
		DefaultMarkerColor: lineColor,
		DefaultFillColor:   draw.Color{R: 1.0, A: 0.5},
		PlotColor:          draw.Color{R: 0.157, G: 0.157, B: 0.157, A: 1.0},
		GridColor:          draw.Color{R: 0.250, G: 0.250, B: 0.250, A: 1.0},
		LineWidth:          2,
		LineColor:          lineColor,
		FontName:           draw.FontRoman,
		FontSize:           20.0,
		TextColor:          lineColor,
		TickLength:         8,
		TickDirection:      TickInner,
		ColorCycle:         defaultColorCycle(),
	}
}
