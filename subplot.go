package plt

import (
	"github.com/plt-rs/plt/draw"
)

// SubplotConfig is the user-facing configuration of a subplot. The zero
// value produces an untitled subplot with default formatting and default
// axes.
type SubplotConfig struct {
	Format *SubplotFormat
	Title  string

	XAxis          AxisConfig
	YAxis          AxisConfig
	SecondaryXAxis AxisConfig
	SecondaryYAxis AxisConfig
}

// Subplot is the atomic chart unit: plotted data, four axis slots, and
// formatting. Plot and fill calls record operations in order; the order is
// preserved exactly when the owning figure is drawn.
type Subplot struct {
	format SubplotFormat
	title  string
	axes   [4]axis

	order  []plotKind
	series []seriesInfo
	fills  []fillInfo
}

type plotKind int

const (
	kindSeries plotKind = iota
	kindFill
)

type seriesInfo struct {
	label        string
	data         SeriesData
	line         *lineFormat
	marker       *markerFormat
	xaxis        AxisPlacement
	yaxis        AxisPlacement
	pixelPerfect bool
}

type fillInfo struct {
	label  string
	top    SeriesData
	bottom SeriesData
	color  *draw.Color
	xaxis  AxisPlacement
	yaxis  AxisPlacement
}

type lineFormat struct {
	style LineStyle
	width int
	color *draw.Color // nil draws from the color cycle
}

type markerFormat struct {
	style   MarkerStyle
	size    int
	color   *draw.Color // nil draws from the color cycle
	outline *lineFormat // nil for no outline
}

// NewSubplot creates a subplot from its configuration.
func NewSubplot(cfg SubplotConfig) *Subplot {
	format := DefaultFormat()
	if cfg.Format != nil {
		format = *cfg.Format
	}
	return &Subplot{
		format: format,
		title:  cfg.Title,
		axes: [4]axis{
			XAxis:          newAxis(cfg.XAxis),
			YAxis:          newAxis(cfg.YAxis),
			SecondaryXAxis: newAxis(cfg.SecondaryXAxis),
			SecondaryYAxis: newAxis(cfg.SecondaryYAxis),
		},
	}
}

// Format returns the subplot's format configuration.
func (sp *Subplot) Format() SubplotFormat { return sp.format }

// Title returns the subplot title.
func (sp *Subplot) Title() string { return sp.title }

func (sp *Subplot) axisAt(p AxisPlacement) *axis { return &sp.axes[p] }

// PlotOptions configures one plotted series. The zero value draws a solid
// line of default width in the next cycle color, with no markers, against the
// primary axes.
type PlotOptions struct {
	// Label names the series for legends.
	Label string

	// NoLine suppresses the line between data points.
	NoLine bool
	// LineStyle selects the dash pattern.
	LineStyle LineStyle
	// LineWidth is the line width; 0 means the default of 3.
	LineWidth int
	// LineColor overrides the cycle color for the line.
	LineColor *draw.Color

	// Marker selects the marker shape; MarkerNone draws no markers.
	Marker MarkerStyle
	// MarkerSize is the marker size; 0 means the default of 3.
	MarkerSize int
	// MarkerColor overrides the cycle color for markers.
	MarkerColor *draw.Color
	// MarkerOutline draws an outline around each marker.
	MarkerOutline bool
	// OutlineStyle selects the outline dash pattern.
	OutlineStyle LineStyle
	// OutlineWidth is the outline width; 0 means the default of 2.
	OutlineWidth int
	// OutlineColor overrides the marker color for outlines.
	OutlineColor *draw.Color

	// UseSecondaryX attaches the series to the secondary x-axis.
	UseSecondaryX bool
	// UseSecondaryY attaches the series to the secondary y-axis.
	UseSecondaryY bool

	// PixelPerfect rounds every transformed coordinate to a whole pixel.
	// Step plots force this to avoid seams between adjoining segments.
	PixelPerfect bool
}

// FillOptions configures one filled region.
type FillOptions struct {
	// Label names the region for legends.
	Label string
	// Color overrides the translucent cycle color.
	Color *draw.Color
	// UseSecondaryX attaches the fill to the secondary x-axis.
	UseSecondaryX bool
	// UseSecondaryY attaches the fill to the secondary y-axis.
	UseSecondaryY bool
}

// Plot plots x, y data with default options.
func (sp *Subplot) Plot(xs, ys []float64) error {
	return sp.PlotWith(xs, ys, PlotOptions{})
}

// PlotWith plots x, y data. The slices must be the same length with no NaNs.
func (sp *Subplot) PlotWith(xs, ys []float64, opts PlotOptions) error {
	data, err := NewXYData(xs, ys)
	if err != nil {
		return err
	}
	sp.PlotData(data, opts)
	return nil
}

// Step plots stairstep data with default options. There must be one more
// edge than y-value.
func (sp *Subplot) Step(edges, ys []float64) error {
	return sp.StepWith(edges, ys, PlotOptions{})
}

// StepWith plots stairstep data. Coordinates are always rounded to whole
// pixels so adjoining segments meet without seams.
func (sp *Subplot) StepWith(edges, ys []float64, opts PlotOptions) error {
	data, err := NewStepData(edges, ys)
	if err != nil {
		return err
	}
	opts.PixelPerfect = true
	sp.PlotData(data, opts)
	return nil
}

// PlotData records a series of any SeriesData implementation and updates the
// spans of the axes it is attached to.
func (sp *Subplot) PlotData(data SeriesData, opts PlotOptions) {
	var line *lineFormat
	if !opts.NoLine {
		line = &lineFormat{
			style: opts.LineStyle,
			width: defaultInt(opts.LineWidth, 3),
			color: opts.LineColor,
		}
	}

	var marker *markerFormat
	if opts.Marker != MarkerNone {
		marker = &markerFormat{
			style: opts.Marker,
			size:  defaultInt(opts.MarkerSize, 3),
			color: opts.MarkerColor,
		}
		if opts.MarkerOutline {
			marker.outline = &lineFormat{
				style: opts.OutlineStyle,
				width: defaultInt(opts.OutlineWidth, 2),
				color: opts.OutlineColor,
			}
		}
	}

	xaxis, yaxis := dataAxes(opts.UseSecondaryX, opts.UseSecondaryY)
	sp.axes[xaxis].growSpan(data.XMin(), data.XMax())
	sp.axes[yaxis].growSpan(data.YMin(), data.YMax())

	sp.series = append(sp.series, seriesInfo{
		label:        opts.Label,
		data:         data,
		line:         line,
		marker:       marker,
		xaxis:        xaxis,
		yaxis:        yaxis,
		pixelPerfect: opts.PixelPerfect,
	})
	sp.order = append(sp.order, kindSeries)
}

// Fill fills the area between two curves with default options.
func (sp *Subplot) Fill(top, bottom SeriesData) error {
	return sp.FillWith(top, bottom, FillOptions{})
}

// FillWith fills the area between two curves. The region is bounded by the
// top curve traversed forward and the bottom curve traversed in reverse.
func (sp *Subplot) FillWith(top, bottom SeriesData, opts FillOptions) error {
	xaxis, yaxis := dataAxes(opts.UseSecondaryX, opts.UseSecondaryY)
	for _, data := range []SeriesData{top, bottom} {
		sp.axes[xaxis].growSpan(data.XMin(), data.XMax())
		sp.axes[yaxis].growSpan(data.YMin(), data.YMax())
	}

	sp.fills = append(sp.fills, fillInfo{
		label:  opts.Label,
		top:    top,
		bottom: bottom,
		color:  opts.Color,
		xaxis:  xaxis,
		yaxis:  yaxis,
	})
	sp.order = append(sp.order, kindFill)
	return nil
}

// SetGrid sets the grid mode on the selected axes.
func (sp *Subplot) SetGrid(sel AxisSelector, mode GridMode) {
	for _, p := range sel.placements() {
		sp.axes[p].grid = mode
	}
}

// SetLimits replaces the limit policy on the selected axes. Manual limits pin
// both the mapped range and the span.
func (sp *Subplot) SetLimits(sel AxisSelector, limits Limits) {
	for _, p := range sel.placements() {
		ax := &sp.axes[p]
		ax.limitPolicy = limits
		if limits.manual {
			ax.limits = &interval{lo: limits.min, hi: limits.max}
			ax.span = &interval{lo: limits.min, hi: limits.max}
		}
	}
}

// isPrimary reports whether any plotted series or fill is attached to the
// axis slot.
func (sp *Subplot) isPrimary(p AxisPlacement) bool {
	for _, info := range sp.series {
		if info.xaxis == p || info.yaxis == p {
			return true
		}
	}
	for _, info := range sp.fills {
		if info.xaxis == p || info.yaxis == p {
			return true
		}
	}
	return false
}

// resolveSpan returns the span and limits for an axis slot, falling back to
// the opposite slot when unset and defaulting to (-1, 1).
func (sp *Subplot) resolveSpan(p AxisPlacement) (span, limits interval) {
	ax := &sp.axes[p]
	if ax.span != nil && ax.limits != nil {
		return *ax.span, *ax.limits
	}
	opp := &sp.axes[p.opposite()]
	if opp.span != nil && opp.limits != nil {
		return *opp.span, *opp.limits
	}
	def := interval{lo: -1, hi: 1}
	return def, def
}

func dataAxes(secondaryX, secondaryY bool) (AxisPlacement, AxisPlacement) {
	xaxis, yaxis := XAxis, YAxis
	if secondaryX {
		xaxis = SecondaryXAxis
	}
	if secondaryY {
		yaxis = SecondaryYAxis
	}
	return xaxis, yaxis
}

func defaultInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
