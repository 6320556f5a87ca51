package vrect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"chosenoffset.com/vrect/internal/core/geom"
)

// polarCorners places the corners at HalfDiagonal along 180+s, 180-s, s
// and 360-s offset by the angle, evaluated directly.
func polarCorners(r *RotatedRect) [4]geom.Point {
	hd, s := r.HalfDiagonal(), r.SlopeAngle()
	var out [4]geom.Point
	for i, theta := range [4]float64{180 + s, 180 - s, s, 360 - s} {
		rad := (theta + r.Angle()) * math.Pi / 180
		out[i] = geom.Point{X: r.X() + hd*math.Cos(rad), Y: r.Y() + hd*math.Sin(rad)}
	}
	return out
}

func assertPointsInDelta(t *testing.T, want, got [4]geom.Point, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i].X, got[i].X, delta, "corner %d x", i)
		assert.InDelta(t, want[i].Y, got[i].Y, delta, "corner %d y", i)
	}
}

func TestHalfDiagonalAndSlope(t *testing.T) {
	sq := MustNew(0, 0, 10, 10)
	assert.InDelta(t, 5*math.Sqrt2, sq.HalfDiagonal(), 1e-12)
	assert.InDelta(t, 45, sq.SlopeAngle(), 1e-12)

	wide := MustNew(0, 0, 20, 0.0001)
	assert.InDelta(t, 0, wide.SlopeAngle(), 1e-3)
}

func TestPointsAxisAlignedAreExact(t *testing.T) {
	tests := []struct {
		angle float64
		want  [4]geom.Point
	}{
		{0, [4]geom.Point{{X: -5, Y: -10}, {X: -5, Y: 10}, {X: 5, Y: 10}, {X: 5, Y: -10}}},
		{90, [4]geom.Point{{X: 10, Y: -5}, {X: -10, Y: -5}, {X: -10, Y: 5}, {X: 10, Y: 5}}},
		{180, [4]geom.Point{{X: 5, Y: 10}, {X: 5, Y: -10}, {X: -5, Y: -10}, {X: -5, Y: 10}}},
		{270, [4]geom.Point{{X: -10, Y: 5}, {X: 10, Y: 5}, {X: 10, Y: -5}, {X: -10, Y: -5}}},
	}
	for _, tt := range tests {
		r := MustNew(0, 0, 10, 20, tt.angle)
		assert.Equal(t, tt.want, r.Points(), "angle %v", tt.angle)
	}
}

func TestPointsMatchPolarForm(t *testing.T) {
	for _, angle := range []float64{0, 10, 30, 45, 60, 89.9, 90, 135, 200.5, 270, 333} {
		r := MustNew(120, -40, 64, 18, angle)
		assertPointsInDelta(t, polarCorners(r), r.Points(), 1e-9)
	}
}

func TestPointsFollowMutation(t *testing.T) {
	r := MustNew(0, 0, 10, 10)
	before := r.Points()
	r.Move(3, 4)
	after := r.Points()
	for i := range before {
		assert.Equal(t, before[i].X+3, after[i].X)
		assert.Equal(t, before[i].Y+4, after[i].Y)
	}
}

func TestPointsPeriodic(t *testing.T) {
	for _, angle := range []float64{0, 17, 45, 90, 123.25, 300} {
		a := MustNew(10, 20, 30, 12, angle)
		b := MustNew(10, 20, 30, 12, angle+360)
		assertPointsInDelta(t, a.Points(), b.Points(), 1e-9)
	}
}

func TestBoundsOfRotatedSquare(t *testing.T) {
	r := MustNew(250, 250, 100, 100, 45)
	b := r.Bounds()
	d := 50 * math.Sqrt2
	assert.InDelta(t, 250-d, b.MinX, 1e-9)
	assert.InDelta(t, 250+d, b.MaxX, 1e-9)
	assert.InDelta(t, 250-d, b.MinY, 1e-9)
	assert.InDelta(t, 250+d, b.MaxY, 1e-9)
}

func TestSortedByYBreaksTiesOnX(t *testing.T) {
	r := MustNew(0, 0, 10, 20)
	s := sortedByY(r.Points())
	assert.Equal(t, [4]geom.Point{{X: -5, Y: -10}, {X: 5, Y: -10}, {X: -5, Y: 10}, {X: 5, Y: 10}}, s)
}
