package plt

// AxisPlacement names one of the four axis slots of a subplot.
type AxisPlacement int

const (
	XAxis AxisPlacement = iota
	YAxis
	SecondaryXAxis
	SecondaryYAxis
)

// axisPlacements is the fixed iteration order for the four slots. Every loop
// over axes uses this order so layout and draw output are deterministic.
var axisPlacements = [4]AxisPlacement{XAxis, YAxis, SecondaryXAxis, SecondaryYAxis}

// String returns the human-readable axis name used in error messages.
func (p AxisPlacement) String() string {
	switch p {
	case XAxis:
		return "x-axis"
	case YAxis:
		return "y-axis"
	case SecondaryXAxis:
		return "secondary x-axis"
	case SecondaryYAxis:
		return "secondary y-axis"
	default:
		return "unknown axis"
	}
}

// opposite returns the slot sharing this slot's orientation: primary X pairs
// with secondary X and so on. Used for span fallback when an axis has no data
// of its own.
func (p AxisPlacement) opposite() AxisPlacement {
	switch p {
	case XAxis:
		return SecondaryXAxis
	case SecondaryXAxis:
		return XAxis
	case YAxis:
		return SecondaryYAxis
	default:
		return YAxis
	}
}

// vertical reports whether the axis runs vertically.
func (p AxisPlacement) vertical() bool {
	return p == YAxis || p == SecondaryYAxis
}

// AxisSelector addresses one or more axis slots at once.
type AxisSelector int

const (
	SelectX AxisSelector = iota
	SelectY
	SelectSecondaryX
	SelectSecondaryY
	// SelectBothX addresses the primary and secondary x-axes.
	SelectBothX
	// SelectBothY addresses the primary and secondary y-axes.
	SelectBothY
	// SelectAll addresses all four axes.
	SelectAll
)

func (s AxisSelector) placements() []AxisPlacement {
	switch s {
	case SelectX:
		return []AxisPlacement{XAxis}
	case SelectY:
		return []AxisPlacement{YAxis}
	case SelectSecondaryX:
		return []AxisPlacement{SecondaryXAxis}
	case SelectSecondaryY:
		return []AxisPlacement{SecondaryYAxis}
	case SelectBothX:
		return []AxisPlacement{XAxis, SecondaryXAxis}
	case SelectBothY:
		return []AxisPlacement{YAxis, SecondaryYAxis}
	default:
		return axisPlacements[:]
	}
}

type tickSpacingKind int

const (
	spacingUnset tickSpacingKind = iota
	spacingOn
	spacingAuto
	spacingNone
	spacingCount
	spacingManual
)

// TickSpacing describes how tick mark locations on an axis are determined.
// The zero value means "library default" and is normalized when the subplot
// is created.
type TickSpacing struct {
	kind  tickSpacingKind
	count int
	ticks []float64
}

// TicksOn places ticks spaced by the library.
func TicksOn() TickSpacing { return TickSpacing{kind: spacingOn} }

// TicksAuto places ticks only if a plot uses the axis.
func TicksAuto() TickSpacing { return TickSpacing{kind: spacingAuto} }

// TicksNone disables tick marks.
func TicksNone() TickSpacing { return TickSpacing{kind: spacingNone} }

// TickCount places exactly n evenly spaced ticks. n must be at least 2; a
// count of 0 or 1 is a degenerate precondition violation.
func TickCount(n int) TickSpacing { return TickSpacing{kind: spacingCount, count: n} }

// ManualTicks places ticks at exactly the given locations.
func ManualTicks(locs ...float64) TickSpacing {
	return TickSpacing{kind: spacingManual, ticks: locs}
}

type tickLabelsKind int

const (
	labelsUnset tickLabelsKind = iota
	labelsOn
	labelsAuto
	labelsNone
	labelsManual
)

// TickLabels describes how tick labels on an axis are determined. The zero
// value means "library default" and is normalized when the subplot is
// created.
type TickLabels struct {
	kind   tickLabelsKind
	labels []string
}

// LabelsOn formats labels for every tick.
func LabelsOn() TickLabels { return TickLabels{kind: labelsOn} }

// LabelsAuto formats labels only if a plot uses the axis.
func LabelsAuto() TickLabels { return TickLabels{kind: labelsAuto} }

// LabelsNone disables tick labels.
func LabelsNone() TickLabels { return TickLabels{kind: labelsNone} }

// ManualLabels uses the given strings verbatim. The count must match the
// axis's tick count at draw time.
func ManualLabels(labels ...string) TickLabels {
	return TickLabels{kind: labelsManual, labels: labels}
}

// GridMode selects which tick marks on an axis carry grid lines.
type GridMode int

const (
	// GridNone draws no grid lines.
	GridNone GridMode = iota
	// GridMajor draws grid lines at major ticks only.
	GridMajor
	// GridFull draws grid lines at major and minor ticks.
	GridFull
)

// Limits sets how an axis's plotted range is determined. The zero value is
// automatic.
type Limits struct {
	manual bool
	min    float64
	max    float64
}

// AutoLimits derives the plotted range from the data span, padded by 5%.
func AutoLimits() Limits { return Limits{} }

// ManualLimits fixes the plotted range.
func ManualLimits(min, max float64) Limits {
	return Limits{manual: true, min: min, max: max}
}

// interval is a closed numeric range.
type interval struct {
	lo float64
	hi float64
}

// AxisConfig is the user-facing configuration of one axis slot. Zero values
// select the library defaults: major ticks on, major labels auto,
// minor ticks on, minor labels off, no grid, auto limits, visible.
type AxisConfig struct {
	Label           string
	MajorTickMarks  TickSpacing
	MajorTickLabels TickLabels
	MinorTickMarks  TickSpacing
	MinorTickLabels TickLabels
	Grid            GridMode
	Limits          Limits
	// Hidden suppresses the axis line. Ticks and labels still draw.
	Hidden bool
}

// axis is the resolved per-slot state held by a subplot.
type axis struct {
	label           string
	majorTickMarks  TickSpacing
	majorTickLabels TickLabels
	minorTickMarks  TickSpacing
	minorTickLabels TickLabels
	grid            GridMode
	limitPolicy     Limits
	// limits is the range mapped onto the plot area, span the tightest
	// bounding range of plotted data. Both are nil until a plot call or a
	// manual limit populates them.
	limits  *interval
	span    *interval
	visible bool
}

func newAxis(cfg AxisConfig) axis {
	ax := axis{
		label:           cfg.Label,
		majorTickMarks:  cfg.MajorTickMarks,
		majorTickLabels: cfg.MajorTickLabels,
		minorTickMarks:  cfg.MinorTickMarks,
		minorTickLabels: cfg.MinorTickLabels,
		grid:            cfg.Grid,
		limitPolicy:     cfg.Limits,
		visible:         !cfg.Hidden,
	}
	if ax.majorTickMarks.kind == spacingUnset {
		ax.majorTickMarks = TicksOn()
	}
	if ax.majorTickLabels.kind == labelsUnset {
		ax.majorTickLabels = LabelsAuto()
	}
	if ax.minorTickMarks.kind == spacingUnset {
		ax.minorTickMarks = TicksOn()
	}
	if ax.minorTickLabels.kind == labelsUnset {
		ax.minorTickLabels = LabelsNone()
	}
	if cfg.Limits.manual {
		// manual limits pin both the mapped range and the span
		ax.limits = &interval{lo: cfg.Limits.min, hi: cfg.Limits.max}
		ax.span = &interval{lo: cfg.Limits.min, hi: cfg.Limits.max}
	}
	return ax
}

// growSpan widens the axis span to include [lo, hi] and recomputes limits as
// the span padded by 5% of its extent (1.0 when the extent is zero). Manual
// limit policies are left untouched.
func (ax *axis) growSpan(lo, hi float64) {
	if ax.limitPolicy.manual {
		return
	}
	if ax.span == nil {
		ax.span = &interval{lo: lo, hi: hi}
	} else {
		if lo < ax.span.lo {
			ax.span.lo = lo
		}
		if hi > ax.span.hi {
			ax.span.hi = hi
		}
	}
	pad := 0.05 * (ax.span.hi - ax.span.lo)
	if pad == 0 {
		pad = 1.0
	}
	ax.limits = &interval{lo: ax.span.lo - pad, hi: ax.span.hi + pad}
}
