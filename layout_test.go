package plt

import (
	"errors"
	"testing"

	"github.com/plt-rs/plt/draw"
)

func TestSingleLayoutFillsUnitSquare(t *testing.T) {
	sp := NewSubplot(SubplotConfig{})
	placed := NewSingleLayout(sp).Subplots()
	if len(placed) != 1 {
		t.Fatalf("placed %d subplots, want 1", len(placed))
	}
	area := placed[0].Area
	if area.XMin != 0 || area.XMax != 1 || area.YMin != 0 || area.YMax != 1 {
		t.Errorf("area = %+v, want unit square", area)
	}
}

func TestGridLayoutCountsRowsFromTop(t *testing.T) {
	top := NewSubplot(SubplotConfig{})
	bottom := NewSubplot(SubplotConfig{})

	grid := NewGridLayout(2, 1)
	if err := grid.Insert(0, 0, top); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := grid.Insert(1, 0, bottom); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	placed := grid.Subplots()
	if len(placed) != 2 {
		t.Fatalf("placed %d subplots, want 2", len(placed))
	}
	for _, p := range placed {
		switch p.Subplot {
		case top:
			if p.Area.YMin != 0.5 || p.Area.YMax != 1 {
				t.Errorf("row 0 area = %+v, want upper half", p.Area)
			}
		case bottom:
			if p.Area.YMin != 0 || p.Area.YMax != 0.5 {
				t.Errorf("row 1 area = %+v, want lower half", p.Area)
			}
		}
	}
}

func TestGridLayoutSkipsEmptyCells(t *testing.T) {
	grid := NewGridLayout(2, 2)
	if err := grid.Insert(1, 1, NewSubplot(SubplotConfig{})); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	placed := grid.Subplots()
	if len(placed) != 1 {
		t.Fatalf("placed %d subplots, want 1", len(placed))
	}
	area := placed[0].Area
	if area.XMin != 0.5 || area.XMax != 1 || area.YMin != 0 || area.YMax != 0.5 {
		t.Errorf("cell (1, 1) area = %+v, want bottom-right quarter", area)
	}
}

func TestGridLayoutRejectsOutOfRange(t *testing.T) {
	grid := NewGridLayout(2, 3)
	sp := NewSubplot(SubplotConfig{})
	cases := [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 3}}
	for _, c := range cases {
		if err := grid.Insert(c[0], c[1], sp); !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("Insert(%d, %d): err = %v, want ErrInvalidIndex", c[0], c[1], err)
		}
	}
}

func TestFractionalAreaToAreaShrinksInward(t *testing.T) {
	fa := FractionalArea{XMin: 0, XMax: 1.0 / 3.0, YMin: 1.0 / 3.0, YMax: 1}
	area := fa.toArea(draw.Size{Width: 100, Height: 100})
	want := draw.Area{XMin: 0, XMax: 33, YMin: 34, YMax: 100}
	if area != want {
		t.Errorf("toArea = %+v, want %+v", area, want)
	}
}
