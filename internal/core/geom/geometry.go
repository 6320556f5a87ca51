package geom

import "math"

// Epsilon is the tolerance used for degenerate denominators and for the
// inclusive edge tests below.
const Epsilon = 1e-9

// Cross returns the z component of (a-o) x (b-o). Positive when b lies to
// the left of the directed line o->a in a y-up frame.
func Cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// BoundsOf returns the smallest axis-aligned box enclosing points.
// It returns the zero Bounds for an empty slice.
func BoundsOf(points []Point) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{MinX: points[0].X, MinY: points[0].Y, MaxX: points[0].X, MaxY: points[0].Y}
	for _, p := range points[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

// ConvexContains reports whether point lies inside or on the boundary of
// the convex polygon. Vertices may wind either way.
func ConvexContains(polygon []Point, point Point) bool {
	if len(polygon) < 3 {
		return false
	}
	var pos, neg bool
	j := len(polygon) - 1
	for i := range polygon {
		c := Cross(polygon[j], polygon[i], point)
		if c > Epsilon {
			pos = true
		} else if c < -Epsilon {
			neg = true
		}
		if pos && neg {
			return false
		}
		j = i
	}
	return true
}

// PointInPolygon tests if a point is inside a polygon using ray casting algorithm.
// Points exactly on an edge may land on either side.
func PointInPolygon(point Point, polygon []Point) bool {
	inside := false
	j := len(polygon) - 1

	for i := 0; i < len(polygon); i++ {
		xi, yi := polygon[i].X, polygon[i].Y
		xj, yj := polygon[j].X, polygon[j].Y

		if ((yi > point.Y) != (yj > point.Y)) &&
			(point.X < (xj-xi)*(point.Y-yi)/(yj-yi)+xi) {
			inside = !inside
		}
		j = i
	}

	return inside
}

// Project returns the interval covered by points projected onto axis.
func Project(points []Point, axis Point) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range points {
		d := p.Dot(axis)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Line is a non-vertical line in slope-intercept form y = Slope*x + Intercept.
type Line struct {
	Slope, Intercept float64
}

// LineThrough returns the line through a and b. ok is false when the two
// points share an x coordinate and the line cannot be written as y = f(x).
func LineThrough(a, b Point) (l Line, ok bool) {
	dx := b.X - a.X
	if math.Abs(dx) < Epsilon {
		return Line{}, false
	}
	slope := (b.Y - a.Y) / dx
	return Line{Slope: slope, Intercept: a.Y - slope*a.X}, true
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}
