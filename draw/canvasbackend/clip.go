package canvasbackend

import "github.com/plt-rs/plt/draw"

// clipSegment clips the segment p1-p2 against the area with the Liang-Barsky
// algorithm. ok is false when the segment lies entirely outside.
func clipSegment(p1, p2 draw.Point, area draw.Area) (c1, c2 draw.Point, ok bool) {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y

	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, p1.X - float64(area.XMin)},
		{dx, float64(area.XMax) - p1.X},
		{-dy, p1.Y - float64(area.YMin)},
		{dy, float64(area.YMax) - p1.Y},
	}
	for _, edge := range edges {
		p, q := edge[0], edge[1]
		if p == 0 {
			if q < 0 {
				return draw.Point{}, draw.Point{}, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return draw.Point{}, draw.Point{}, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return draw.Point{}, draw.Point{}, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}

	c1 = draw.Point{X: p1.X + t0*dx, Y: p1.Y + t0*dy}
	c2 = draw.Point{X: p1.X + t1*dx, Y: p1.Y + t1*dy}
	return c1, c2, true
}

// clipPolyline clips a polyline against the area, returning the runs of
// consecutive points that remain visible.
func clipPolyline(points []draw.Point, area draw.Area) [][]draw.Point {
	var runs [][]draw.Point
	var current []draw.Point
	for i := 0; i+1 < len(points); i++ {
		c1, c2, ok := clipSegment(points[i], points[i+1], area)
		if !ok {
			if len(current) > 0 {
				runs = append(runs, current)
				current = nil
			}
			continue
		}
		if len(current) == 0 {
			current = append(current, c1)
		} else if last := current[len(current)-1]; last != c1 {
			// the segment re-enters at a different point, break the run
			runs = append(runs, current)
			current = []draw.Point{c1}
		}
		current = append(current, c2)
	}
	if len(current) > 0 {
		runs = append(runs, current)
	}
	return runs
}

// clipPolygon clips a closed polygon against the area with the
// Sutherland-Hodgman algorithm. The result may be empty.
func clipPolygon(points []draw.Point, area draw.Area) []draw.Point {
	atX := func(x float64) func(a, b draw.Point) draw.Point {
		return func(a, b draw.Point) draw.Point {
			t := (x - a.X) / (b.X - a.X)
			return draw.Point{X: x, Y: a.Y + t*(b.Y-a.Y)}
		}
	}
	atY := func(y float64) func(a, b draw.Point) draw.Point {
		return func(a, b draw.Point) draw.Point {
			t := (y - a.Y) / (b.Y - a.Y)
			return draw.Point{X: a.X + t*(b.X-a.X), Y: y}
		}
	}

	xmin, xmax := float64(area.XMin), float64(area.XMax)
	ymin, ymax := float64(area.YMin), float64(area.YMax)

	out := clipHalfPlane(points, func(p draw.Point) bool { return p.X >= xmin }, atX(xmin))
	out = clipHalfPlane(out, func(p draw.Point) bool { return p.X <= xmax }, atX(xmax))
	out = clipHalfPlane(out, func(p draw.Point) bool { return p.Y >= ymin }, atY(ymin))
	out = clipHalfPlane(out, func(p draw.Point) bool { return p.Y <= ymax }, atY(ymax))
	return out
}

func clipHalfPlane(
	subject []draw.Point,
	inside func(draw.Point) bool,
	intersect func(a, b draw.Point) draw.Point,
) []draw.Point {
	var out []draw.Point
	for i, cur := range subject {
		prev := subject[(i+len(subject)-1)%len(subject)]
		switch {
		case inside(cur) && inside(prev):
			out = append(out, cur)
		case inside(cur):
			out = append(out, intersect(prev, cur), cur)
		case inside(prev):
			out = append(out, intersect(prev, cur))
		}
	}
	return out
}
