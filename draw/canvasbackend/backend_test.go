package canvasbackend

import (
	"testing"

	"github.com/plt-rs/plt/draw"
)

func TestAnchorOffsets(t *testing.T) {
	const w, h = 40.0, 10.0
	tests := []struct {
		alignment draw.Alignment
		ax, ay    float64
	}{
		{draw.Center, 20, 5},
		{draw.Left, 0, 5},
		{draw.Right, 40, 5},
		{draw.Top, 20, 10},
		{draw.Bottom, 20, 0},
		{draw.TopLeft, 0, 10},
		{draw.TopRight, 40, 10},
		{draw.BottomLeft, 0, 0},
		{draw.BottomRight, 40, 0},
	}
	for _, tt := range tests {
		ax, ay := anchorOffsets(tt.alignment, w, h)
		if ax != tt.ax || ay != tt.ay {
			t.Errorf("anchorOffsets(%v) = (%v, %v), want (%v, %v)", tt.alignment, ax, ay, tt.ax, tt.ay)
		}
	}
}
