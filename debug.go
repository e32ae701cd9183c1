package plt

import (
	"encoding/json"
	"os"

	"github.com/plt-rs/plt/draw"
)

// LayoutDebug captures the resolved boundary rectangles of every subplot in
// a figure, for inspection without rendering pixels.
type LayoutDebug struct {
	FigureSize draw.Size           `json:"figure_size"`
	Subplots   []SubplotBoundaries `json:"subplots"`
}

// SubplotBoundaries holds the nested rectangles carved from one subplot's
// area during space allocation.
type SubplotBoundaries struct {
	Title             string    `json:"title,omitempty"`
	Area              draw.Area `json:"area"`
	TitleBoundary     int       `json:"title_boundary"`
	LabelBoundary     draw.Area `json:"label_boundary"`
	ModifierBoundary  draw.Area `json:"modifier_boundary"`
	TickLabelBoundary draw.Area `json:"tick_label_boundary"`
	PlotArea          draw.Area `json:"plot_area"`
}

// DebugLayout resolves every subplot's layout against the canvas and returns
// the boundary rectangles. The canvas is only used for text measurement.
func (f *Figure) DebugLayout(canvas draw.Canvas) (*LayoutDebug, error) {
	dbg := &LayoutDebug{FigureSize: f.size}
	for i, sp := range f.subplots {
		axes, err := resolveAxes(sp)
		if err != nil {
			return nil, err
		}
		layout, err := allocateSpace(canvas, sp, axes, f.areas[i], f.scaling)
		if err != nil {
			return nil, err
		}
		dbg.Subplots = append(dbg.Subplots, SubplotBoundaries{
			Title:             sp.title,
			Area:              f.areas[i],
			TitleBoundary:     layout.titleBoundary,
			LabelBoundary:     layout.labelBoundary,
			ModifierBoundary:  layout.modifierBoundary,
			TickLabelBoundary: layout.tickLabelBoundary,
			PlotArea:          layout.plotArea,
		})
	}
	return dbg, nil
}

// WriteDebugJSON writes the resolved layout as indented JSON, for debugging
// or visualizing the space allocation.
func (f *Figure) WriteDebugJSON(canvas draw.Canvas, path string) error {
	dbg, err := f.DebugLayout(canvas)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(dbg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
