package script

import (
	"fmt"
	"math"

	"github.com/plt-rs/plt"
	"github.com/plt-rs/plt/draw"
)

// CompileOptions configures script compilation.
type CompileOptions struct {
	// Data is the document ${path} references resolve against, typically the
	// result of unmarshaling JSON into any.
	Data any
	// Format overrides the default subplot format, eg from a theme.
	Format *plt.SubplotFormat
	// FaceColor overrides the figure background color.
	FaceColor *draw.Color
}

// Compile builds a figure from a parsed script.
func Compile(s *Script, opts CompileOptions) (*plt.Figure, error) {
	figFormat := plt.FigureFormat{FaceColor: opts.FaceColor}

	var blocks []*SubplotBlock
	for _, item := range s.Items {
		switch {
		case item.Assignment != nil:
			if err := applyFigureProperty(&figFormat, item.Assignment); err != nil {
				return nil, err
			}
		case item.Subplot != nil:
			blocks = append(blocks, item.Subplot)
		}
	}
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%s: script declares no subplots", s.Pos)
	}

	nrows, ncols := 1, 1
	for _, block := range blocks {
		if block.Row < 0 || block.Col < 0 {
			return nil, fmt.Errorf("%s: subplot cell (%d, %d) is negative", block.Pos, block.Row, block.Col)
		}
		if block.Row+1 > nrows {
			nrows = block.Row + 1
		}
		if block.Col+1 > ncols {
			ncols = block.Col + 1
		}
	}

	layout := plt.NewGridLayout(nrows, ncols)
	for _, block := range blocks {
		subplot, err := compileSubplot(block, opts)
		if err != nil {
			return nil, err
		}
		if err := layout.Insert(block.Row, block.Col, subplot); err != nil {
			return nil, fmt.Errorf("%s: %w", block.Pos, err)
		}
	}

	fig := plt.NewFigure(figFormat)
	if err := fig.SetLayout(layout); err != nil {
		return nil, err
	}
	return fig, nil
}

// CompileString parses and compiles a script in one step.
func CompileString(src string, opts CompileOptions) (*plt.Figure, error) {
	s, err := ParseString(src)
	if err != nil {
		return nil, err
	}
	return Compile(s, opts)
}

func applyFigureProperty(format *plt.FigureFormat, a *Assignment) error {
	switch a.Key {
	case "width":
		num, err := numberValue(a)
		if err != nil {
			return err
		}
		format.Width = num
	case "height":
		num, err := numberValue(a)
		if err != nil {
			return err
		}
		format.Height = num
	case "dpi":
		num, err := numberValue(a)
		if err != nil {
			return err
		}
		if num <= 0 || num != math.Trunc(num) {
			return fmt.Errorf("%s: dpi must be a positive integer", a.Pos)
		}
		format.DPI = int(num)
	default:
		return fmt.Errorf("%s: unknown figure property %q", a.Pos, a.Key)
	}
	return nil
}

func compileSubplot(block *SubplotBlock, opts CompileOptions) (*plt.Subplot, error) {
	cfg := plt.SubplotConfig{Format: opts.Format}
	for _, item := range block.Items {
		if item.Assignment == nil {
			continue
		}
		if err := applySubplotProperty(&cfg, item.Assignment); err != nil {
			return nil, err
		}
	}

	subplot := plt.NewSubplot(cfg)
	for _, item := range block.Items {
		switch {
		case item.Plot != nil:
			if err := compilePlot(subplot, item.Plot, opts.Data); err != nil {
				return nil, err
			}
		case item.Fill != nil:
			if err := compileFill(subplot, item.Fill, opts.Data); err != nil {
				return nil, err
			}
		}
	}
	return subplot, nil
}

func applySubplotProperty(cfg *plt.SubplotConfig, a *Assignment) error {
	switch a.Key {
	case "title":
		str, err := stringValue(a)
		if err != nil {
			return err
		}
		cfg.Title = str
	case "xlabel":
		return setLabel(&cfg.XAxis, a)
	case "ylabel":
		return setLabel(&cfg.YAxis, a)
	case "x2label":
		return setLabel(&cfg.SecondaryXAxis, a)
	case "y2label":
		return setLabel(&cfg.SecondaryYAxis, a)
	case "grid":
		mode, err := gridValue(a)
		if err != nil {
			return err
		}
		cfg.XAxis.Grid = mode
		cfg.YAxis.Grid = mode
	case "xlimits":
		return setLimits(&cfg.XAxis, a)
	case "ylimits":
		return setLimits(&cfg.YAxis, a)
	case "xticks":
		return setTicks(&cfg.XAxis, a)
	case "yticks":
		return setTicks(&cfg.YAxis, a)
	default:
		return fmt.Errorf("%s: unknown subplot property %q", a.Pos, a.Key)
	}
	return nil
}

func setLabel(ax *plt.AxisConfig, a *Assignment) error {
	str, err := stringValue(a)
	if err != nil {
		return err
	}
	ax.Label = str
	return nil
}

func setLimits(ax *plt.AxisConfig, a *Assignment) error {
	if len(a.Value.Array) != 2 {
		return fmt.Errorf("%s: %s needs [min, max]", a.Pos, a.Key)
	}
	lo, hi := a.Value.Array[0], a.Value.Array[1]
	if lo >= hi {
		return fmt.Errorf("%s: %s needs min < max", a.Pos, a.Key)
	}
	ax.Limits = plt.ManualLimits(lo, hi)
	return nil
}

func setTicks(ax *plt.AxisConfig, a *Assignment) error {
	if a.Value.Array == nil {
		return fmt.Errorf("%s: %s needs a number list", a.Pos, a.Key)
	}
	ax.MajorTickMarks = plt.ManualTicks(a.Value.Array...)
	return nil
}

func compilePlot(subplot *plt.Subplot, cmd *PlotCmd, data any) error {
	xs, err := seriesValues(cmd.X, data)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Pos, err)
	}
	ys, err := seriesValues(cmd.Y, data)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Pos, err)
	}
	opts, err := plotOptions(cmd.Block)
	if err != nil {
		return err
	}

	if cmd.Name == "step" {
		if err := subplot.StepWith(xs, ys, opts); err != nil {
			return fmt.Errorf("%s: %w", cmd.Pos, err)
		}
		return nil
	}
	if err := subplot.PlotWith(xs, ys, opts); err != nil {
		return fmt.Errorf("%s: %w", cmd.Pos, err)
	}
	return nil
}

func compileFill(subplot *plt.Subplot, cmd *FillCmd, data any) error {
	xs, err := seriesValues(cmd.X, data)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Pos, err)
	}
	tops, err := seriesValues(cmd.Top, data)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Pos, err)
	}
	bottoms, err := seriesValues(cmd.Bottom, data)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Pos, err)
	}

	top, err := plt.NewXYData(xs, tops)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Pos, err)
	}
	bottom, err := plt.NewXYData(xs, bottoms)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Pos, err)
	}

	opts, err := fillOptions(cmd.Block)
	if err != nil {
		return err
	}
	if err := subplot.FillWith(top, bottom, opts); err != nil {
		return fmt.Errorf("%s: %w", cmd.Pos, err)
	}
	return nil
}

func plotOptions(block *OptsBlock) (plt.PlotOptions, error) {
	var opts plt.PlotOptions
	if block == nil {
		return opts, nil
	}
	for _, a := range block.Entries {
		switch a.Key {
		case "label":
			str, err := stringValue(a)
			if err != nil {
				return opts, err
			}
			opts.Label = str
		case "line":
			ident, err := identValue(a)
			if err != nil {
				return opts, err
			}
			switch ident {
			case "none":
				opts.NoLine = true
			case "solid":
				opts.LineStyle = plt.LineSolid
			case "dashed":
				opts.LineStyle = plt.LineDashed
			case "short-dashed":
				opts.LineStyle = plt.LineShortDashed
			default:
				return opts, fmt.Errorf("%s: unknown line style %q", a.Pos, ident)
			}
		case "width":
			num, err := numberValue(a)
			if err != nil {
				return opts, err
			}
			opts.LineWidth = int(num)
		case "marker":
			ident, err := identValue(a)
			if err != nil {
				return opts, err
			}
			switch ident {
			case "none":
				opts.Marker = plt.MarkerNone
			case "circle":
				opts.Marker = plt.MarkerCircle
			case "square":
				opts.Marker = plt.MarkerSquare
			default:
				return opts, fmt.Errorf("%s: unknown marker %q", a.Pos, ident)
			}
		case "markersize":
			num, err := numberValue(a)
			if err != nil {
				return opts, err
			}
			opts.MarkerSize = int(num)
		case "outline":
			ident, err := identValue(a)
			if err != nil {
				return opts, err
			}
			switch ident {
			case "on":
				opts.MarkerOutline = true
			case "off":
				opts.MarkerOutline = false
			default:
				return opts, fmt.Errorf("%s: outline must be on or off", a.Pos)
			}
		case "xaxis":
			secondary, err := axisValue(a)
			if err != nil {
				return opts, err
			}
			opts.UseSecondaryX = secondary
		case "yaxis":
			secondary, err := axisValue(a)
			if err != nil {
				return opts, err
			}
			opts.UseSecondaryY = secondary
		default:
			return opts, fmt.Errorf("%s: unknown plot option %q", a.Pos, a.Key)
		}
	}
	return opts, nil
}

func fillOptions(block *OptsBlock) (plt.FillOptions, error) {
	var opts plt.FillOptions
	if block == nil {
		return opts, nil
	}
	for _, a := range block.Entries {
		switch a.Key {
		case "label":
			str, err := stringValue(a)
			if err != nil {
				return opts, err
			}
			opts.Label = str
		case "xaxis":
			secondary, err := axisValue(a)
			if err != nil {
				return opts, err
			}
			opts.UseSecondaryX = secondary
		case "yaxis":
			secondary, err := axisValue(a)
			if err != nil {
				return opts, err
			}
			opts.UseSecondaryY = secondary
		default:
			return opts, fmt.Errorf("%s: unknown fill option %q", a.Pos, a.Key)
		}
	}
	return opts, nil
}

func seriesValues(expr *SeriesExpr, data any) ([]float64, error) {
	if expr.Ref != nil {
		return resolveSeries(data, string(*expr.Ref))
	}
	return expr.Array, nil
}

func stringValue(a *Assignment) (string, error) {
	if a.Value.String == nil {
		return "", fmt.Errorf("%s: %s needs a quoted string", a.Pos, a.Key)
	}
	return string(*a.Value.String), nil
}

func numberValue(a *Assignment) (float64, error) {
	if a.Value.Number == nil {
		return 0, fmt.Errorf("%s: %s needs a number", a.Pos, a.Key)
	}
	return *a.Value.Number, nil
}

func identValue(a *Assignment) (string, error) {
	if a.Value.Ident == nil {
		return "", fmt.Errorf("%s: %s needs a bare word", a.Pos, a.Key)
	}
	return *a.Value.Ident, nil
}

func gridValue(a *Assignment) (plt.GridMode, error) {
	ident, err := identValue(a)
	if err != nil {
		return plt.GridNone, err
	}
	switch ident {
	case "none":
		return plt.GridNone, nil
	case "major":
		return plt.GridMajor, nil
	case "full":
		return plt.GridFull, nil
	default:
		return plt.GridNone, fmt.Errorf("%s: unknown grid mode %q", a.Pos, ident)
	}
}

func axisValue(a *Assignment) (bool, error) {
	ident, err := identValue(a)
	if err != nil {
		return false, err
	}
	switch ident {
	case "primary":
		return false, nil
	case "secondary":
		return true, nil
	default:
		return false, fmt.Errorf("%s: %s must be primary or secondary", a.Pos, a.Key)
	}
}
