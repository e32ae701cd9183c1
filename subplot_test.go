package plt

import (
	"testing"
)

func TestPlotGrowsSpan(t *testing.T) {
	sp := NewSubplot(SubplotConfig{})
	if err := sp.Plot([]float64{0, 1, 2}, []float64{10, 20, 30}); err != nil {
		t.Fatalf("Plot: %v", err)
	}

	span, limits := sp.resolveSpan(XAxis)
	if span.lo != 0 || span.hi != 2 {
		t.Errorf("x span = %+v, want [0, 2]", span)
	}
	if limits.lo != -0.1 || limits.hi != 2.1 {
		t.Errorf("x limits = %+v, want [-0.1, 2.1]", limits)
	}

	// spans only widen
	if err := sp.Plot([]float64{1, 3}, []float64{15, 25}); err != nil {
		t.Fatalf("Plot: %v", err)
	}
	span, _ = sp.resolveSpan(XAxis)
	if span.lo != 0 || span.hi != 3 {
		t.Errorf("x span after second plot = %+v, want [0, 3]", span)
	}
}

func TestZeroExtentSpanPadding(t *testing.T) {
	sp := NewSubplot(SubplotConfig{})
	if err := sp.Plot([]float64{0, 1}, []float64{5, 5}); err != nil {
		t.Fatalf("Plot: %v", err)
	}
	_, limits := sp.resolveSpan(YAxis)
	if limits.lo != 4 || limits.hi != 6 {
		t.Errorf("y limits = %+v, want [4, 6]", limits)
	}
}

func TestManualLimitsPinSpan(t *testing.T) {
	sp := NewSubplot(SubplotConfig{
		XAxis: AxisConfig{Limits: ManualLimits(0, 10)},
	})
	if err := sp.Plot([]float64{-5, 50}, []float64{1, 2}); err != nil {
		t.Fatalf("Plot: %v", err)
	}
	span, limits := sp.resolveSpan(XAxis)
	if span.lo != 0 || span.hi != 10 {
		t.Errorf("x span = %+v, want pinned [0, 10]", span)
	}
	if limits.lo != 0 || limits.hi != 10 {
		t.Errorf("x limits = %+v, want pinned [0, 10]", limits)
	}
}

func TestSpanFallsBackToOppositeAxis(t *testing.T) {
	sp := NewSubplot(SubplotConfig{})
	if err := sp.Plot([]float64{0, 4}, []float64{0, 8}); err != nil {
		t.Fatalf("Plot: %v", err)
	}

	// the secondary axes carry no data of their own
	span, _ := sp.resolveSpan(SecondaryXAxis)
	if span.lo != 0 || span.hi != 4 {
		t.Errorf("secondary x span = %+v, want primary's [0, 4]", span)
	}

	empty := NewSubplot(SubplotConfig{})
	span, limits := empty.resolveSpan(YAxis)
	if span.lo != -1 || span.hi != 1 || limits.lo != -1 || limits.hi != 1 {
		t.Errorf("empty subplot span = %+v limits = %+v, want [-1, 1]", span, limits)
	}
}

func TestIsPrimaryTracksAttachedData(t *testing.T) {
	sp := NewSubplot(SubplotConfig{})
	if err := sp.Plot([]float64{0, 1}, []float64{0, 1}); err != nil {
		t.Fatalf("Plot: %v", err)
	}
	if !sp.isPrimary(XAxis) || !sp.isPrimary(YAxis) {
		t.Error("primary axes should be primary after a plot")
	}
	if sp.isPrimary(SecondaryXAxis) || sp.isPrimary(SecondaryYAxis) {
		t.Error("secondary axes should not be primary without data")
	}

	err := sp.PlotWith([]float64{0, 1}, []float64{0, 1}, PlotOptions{UseSecondaryY: true})
	if err != nil {
		t.Fatalf("PlotWith: %v", err)
	}
	if !sp.isPrimary(SecondaryYAxis) {
		t.Error("secondary y-axis should be primary once a series attaches to it")
	}
}

func TestStepForcesPixelPerfect(t *testing.T) {
	sp := NewSubplot(SubplotConfig{})
	if err := sp.Step([]float64{0, 10, 20}, []float64{5, 3}); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if len(sp.series) != 1 {
		t.Fatalf("recorded %d series, want 1", len(sp.series))
	}
	if !sp.series[0].pixelPerfect {
		t.Error("step series should be pixel perfect")
	}
}

func TestFillGrowsBothSpans(t *testing.T) {
	top, err := NewXYData([]float64{0, 1, 2}, []float64{4, 5, 6})
	if err != nil {
		t.Fatalf("NewXYData: %v", err)
	}
	bottom, err := NewXYData([]float64{0, 1, 2}, []float64{0, 1, 2})
	if err != nil {
		t.Fatalf("NewXYData: %v", err)
	}

	sp := NewSubplot(SubplotConfig{})
	if err := sp.Fill(top, bottom); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	span, _ := sp.resolveSpan(YAxis)
	if span.lo != 0 || span.hi != 6 {
		t.Errorf("y span = %+v, want both curves' [0, 6]", span)
	}
	if len(sp.order) != 1 || sp.order[0] != kindFill {
		t.Errorf("order = %v, want one fill", sp.order)
	}
}

func TestSetGridSelectsAxes(t *testing.T) {
	sp := NewSubplot(SubplotConfig{})
	sp.SetGrid(SelectBothX, GridMajor)
	if sp.axes[XAxis].grid != GridMajor || sp.axes[SecondaryXAxis].grid != GridMajor {
		t.Error("SelectBothX should set both x-axes")
	}
	if sp.axes[YAxis].grid != GridNone {
		t.Error("SelectBothX should not touch the y-axis")
	}
	sp.SetGrid(SelectAll, GridFull)
	for _, p := range axisPlacements {
		if sp.axes[p].grid != GridFull {
			t.Errorf("SelectAll missed %s", p)
		}
	}
}
