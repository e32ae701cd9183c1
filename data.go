package plt

import (
	"fmt"
	"math"
)

// SeriesData is the capability shared by every plottable data shape: indexed
// access to (x, y) pairs plus bounding queries used for axis resolution.
type SeriesData interface {
	// Len returns the number of (x, y) pairs.
	Len() int
	// XY returns the pair at index i.
	XY(i int) (x, y float64)
	// XMin returns the smallest x value.
	XMin() float64
	// XMax returns the largest x value.
	XMax() float64
	// YMin returns the smallest y value.
	YMin() float64
	// YMax returns the largest y value.
	YMax() float64
}

// XYData holds paired x and y values.
type XYData struct {
	xs []float64
	ys []float64
}

// NewXYData validates and pairs x values with y values. The slices must have
// equal length and contain no NaNs.
func NewXYData(xs, ys []float64) (XYData, error) {
	if len(xs) != len(ys) {
		return XYData{}, fmt.Errorf(
			"%w: x-data and y-data should be the same length, got %d and %d",
			ErrInvalidData, len(xs), len(ys),
		)
	}
	if hasNaN(xs) {
		return XYData{}, fmt.Errorf("%w: x-data has NaN value", ErrInvalidData)
	}
	if hasNaN(ys) {
		return XYData{}, fmt.Errorf("%w: y-data has NaN value", ErrInvalidData)
	}
	return XYData{xs: xs, ys: ys}, nil
}

func (d XYData) Len() int { return len(d.xs) }

func (d XYData) XY(i int) (float64, float64) { return d.xs[i], d.ys[i] }

func (d XYData) XMin() float64 { return sliceMin(d.xs) }
func (d XYData) XMax() float64 { return sliceMax(d.xs) }
func (d XYData) YMin() float64 { return sliceMin(d.ys) }
func (d XYData) YMax() float64 { return sliceMax(d.ys) }

// StepData holds stairstep data: bin edges and one value per bin. Each value
// is emitted twice, once against each of its bounding edges, so a series of n
// values expands to 2n points.
type StepData struct {
	edges []float64
	ys    []float64
}

// NewStepData validates step data. There must be exactly one more edge than
// values and no NaNs.
func NewStepData(edges, ys []float64) (StepData, error) {
	if len(edges) != len(ys)+1 {
		return StepData{}, fmt.Errorf(
			"%w: there should be one more step edge than y-value, got %d edges and %d values",
			ErrInvalidData, len(edges), len(ys),
		)
	}
	if hasNaN(edges) {
		return StepData{}, fmt.Errorf("%w: step-data has NaN value", ErrInvalidData)
	}
	if hasNaN(ys) {
		return StepData{}, fmt.Errorf("%w: y-data has NaN value", ErrInvalidData)
	}
	return StepData{edges: edges, ys: ys}, nil
}

func (d StepData) Len() int { return 2 * len(d.ys) }

func (d StepData) XY(i int) (float64, float64) {
	// pairs are (e0,y0) (e1,y0) (e1,y1) (e2,y1) ...
	return d.edges[(i+1)/2], d.ys[i/2]
}

func (d StepData) XMin() float64 { return sliceMin(d.edges) }
func (d StepData) XMax() float64 { return sliceMax(d.edges) }
func (d StepData) YMin() float64 { return sliceMin(d.ys) }
func (d StepData) YMax() float64 { return sliceMax(d.ys) }

func hasNaN(vals []float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

func sliceMin(vals []float64) float64 {
	min := math.Inf(1)
	for _, v := range vals {
		if v < min {
			min = v
		}
	}
	return min
}

func sliceMax(vals []float64) float64 {
	max := math.Inf(-1)
	for _, v := range vals {
		if v > max {
			max = v
		}
	}
	return max
}
