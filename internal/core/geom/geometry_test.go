package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundsOf(t *testing.T) {
	b := BoundsOf([]Point{{X: 3, Y: -1}, {X: -2, Y: 4}, {X: 0, Y: 0}})
	assert.Equal(t, Bounds{MinX: -2, MinY: -1, MaxX: 3, MaxY: 4}, b)
	assert.Equal(t, 5.0, b.Width())
	assert.Equal(t, 5.0, b.Height())

	assert.True(t, b.Contains(Pt(-2, 4)), "corner is inclusive")
	assert.True(t, b.Contains(Pt(0, 0)))
	assert.False(t, b.Contains(Pt(3.01, 0)))

	assert.Equal(t, Bounds{}, BoundsOf(nil))
}

func TestConvexContains(t *testing.T) {
	diamond := []Point{{X: 0, Y: -2}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: -2, Y: 0}}
	reversed := []Point{diamond[3], diamond[2], diamond[1], diamond[0]}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Pt(0, 0), true},
		{"vertex", Pt(2, 0), true},
		{"edge midpoint", Pt(1, 1), true},
		{"outside near edge", Pt(1.01, 1.01), false},
		{"on edge line beyond vertex", Pt(3, -1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvexContains(diamond, tt.p))
			assert.Equal(t, tt.want, ConvexContains(reversed, tt.p), "winding does not matter")
		})
	}

	assert.False(t, ConvexContains(diamond[:2], Pt(1, -1)), "needs a polygon")
}

func TestPointInPolygon(t *testing.T) {
	square := []Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	assert.True(t, PointInPolygon(Pt(2, 2), square))
	assert.False(t, PointInPolygon(Pt(5, 2), square))
	assert.False(t, PointInPolygon(Pt(-1, -1), square))
}

func TestLineThrough(t *testing.T) {
	l, ok := LineThrough(Pt(0, 1), Pt(2, 5))
	assert.True(t, ok)
	assert.Equal(t, Line{Slope: 2, Intercept: 1}, l)
	assert.Equal(t, 7.0, l.At(3))

	_, ok = LineThrough(Pt(1, 0), Pt(1, 9))
	assert.False(t, ok, "vertical line has no y = f(x) form")
}

func TestProject(t *testing.T) {
	lo, hi := Project([]Point{{X: 1, Y: 1}, {X: -3, Y: 2}, {X: 2, Y: -5}}, Pt(1, 0))
	assert.Equal(t, -3.0, lo)
	assert.Equal(t, 2.0, hi)

	lo, hi = Project([]Point{{X: 1, Y: 1}}, Pt(math.Sqrt2/2, math.Sqrt2/2))
	assert.InDelta(t, math.Sqrt2, lo, 1e-12)
	assert.Equal(t, lo, hi)
}

func TestDistanceAndVectors(t *testing.T) {
	assert.Equal(t, 5.0, Distance(Pt(1, 1), Pt(4, 5)))
	assert.Equal(t, Pt(4, 6), Pt(1, 2).Add(Pt(3, 4)))
	assert.Equal(t, Pt(-2, -2), Pt(1, 2).Sub(Pt(3, 4)))
	assert.Equal(t, 11.0, Pt(1, 2).Dot(Pt(3, 4)))
	assert.Equal(t, "(1.5, -2)", Pt(1.5, -2).String())
	assert.Positive(t, Cross(Pt(0, 0), Pt(1, 0), Pt(0, 1)))
}
