package plt

import (
	"fmt"
	"math"

	"github.com/plt-rs/plt/draw"
)

// Layout defines how and where subplots are placed in a figure.
type Layout interface {
	// Subplots returns each subplot paired with its fractional placement.
	Subplots() []PlacedSubplot
}

// PlacedSubplot pairs a subplot with the fraction of the figure it occupies.
type PlacedSubplot struct {
	Subplot *Subplot
	Area    FractionalArea
}

// FractionalArea defines an area of a figure in terms of fractional
// boundaries in [0, 1].
type FractionalArea struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

// valid reports whether the area lies in the unit square with positive
// extent.
func (fa FractionalArea) valid() bool {
	return fa.XMin >= 0 && fa.XMin <= 1 &&
		fa.XMax >= 0 && fa.XMax <= 1 &&
		fa.YMin >= 0 && fa.YMin <= 1 &&
		fa.YMax >= 0 && fa.YMax <= 1 &&
		fa.XMin < fa.XMax &&
		fa.YMin < fa.YMax
}

// toArea converts fractional bounds to pixel bounds, shrinking inward to
// whole pixels.
func (fa FractionalArea) toArea(size draw.Size) draw.Area {
	return draw.Area{
		XMin: int(math.Ceil(fa.XMin * float64(size.Width))),
		XMax: int(math.Floor(fa.XMax * float64(size.Width))),
		YMin: int(math.Ceil(fa.YMin * float64(size.Height))),
		YMax: int(math.Floor(fa.YMax * float64(size.Height))),
	}
}

// SingleLayout fills the whole figure with one subplot.
type SingleLayout struct {
	subplot *Subplot
}

// NewSingleLayout creates a layout holding the one subplot.
func NewSingleLayout(subplot *Subplot) *SingleLayout {
	return &SingleLayout{subplot: subplot}
}

func (l *SingleLayout) Subplots() []PlacedSubplot {
	return []PlacedSubplot{{
		Subplot: l.subplot,
		Area:    FractionalArea{XMin: 0, XMax: 1, YMin: 0, YMax: 1},
	}}
}

// GridLayout places subplots in a uniform grid. Rows are counted from the top
// of the figure.
type GridLayout struct {
	nrows    int
	ncols    int
	subplots []*Subplot // row-major, nil for empty cells
}

// NewGridLayout creates an empty grid with the given dimensions.
func NewGridLayout(nrows, ncols int) *GridLayout {
	return &GridLayout{
		nrows:    nrows,
		ncols:    ncols,
		subplots: make([]*Subplot, nrows*ncols),
	}
}

// Insert adds or replaces a subplot at the given cell.
func (l *GridLayout) Insert(row, col int, subplot *Subplot) error {
	if row < 0 || row >= l.nrows {
		return fmt.Errorf("%w: row %d outside grid of %d rows", ErrInvalidIndex, row, l.nrows)
	}
	if col < 0 || col >= l.ncols {
		return fmt.Errorf("%w: column %d outside grid of %d columns", ErrInvalidIndex, col, l.ncols)
	}
	l.subplots[row*l.ncols+col] = subplot
	return nil
}

func (l *GridLayout) Subplots() []PlacedSubplot {
	xextent := 1.0 / float64(l.ncols)
	yextent := 1.0 / float64(l.nrows)

	var placed []PlacedSubplot
	for index, subplot := range l.subplots {
		if subplot == nil {
			continue
		}
		row := index / l.ncols
		col := index % l.ncols

		xmin := xextent * float64(col)
		// row 0 is at the top of the figure, which is the largest y
		ymin := yextent * float64(l.nrows-1-row)

		placed = append(placed, PlacedSubplot{
			Subplot: subplot,
			Area: FractionalArea{
				XMin: xmin,
				XMax: xmin + xextent,
				YMin: ymin,
				YMax: ymin + yextent,
			},
		})
	}
	return placed
}
