package vrect

import (
	"math"
	"sort"

	"chosenoffset.com/vrect/internal/core/geom"
)

// Corner indexes into the array returned by Points. Back and front are
// relative to the direction the rectangle is facing (its angle).
const (
	CornerBackBottom = iota
	CornerBackTop
	CornerFrontTop
	CornerFrontBottom
)

// HalfDiagonal is the distance from the center to any corner.
func (r *RotatedRect) HalfDiagonal() float64 {
	return math.Hypot(r.width/2, r.height/2)
}

// SlopeAngle is the angle in degrees between the rectangle's own x axis and
// the diagonal to its front-top corner.
func (r *RotatedRect) SlopeAngle() float64 {
	return math.Atan2(r.height/2, r.width/2) * 180 / math.Pi
}

// Points returns the four corners in the order back-bottom, back-top,
// front-top, front-bottom. They sit at HalfDiagonal from the center at
// polar angles 180+s, 180-s, s and 360-s (s = SlopeAngle), each offset by
// the rotation.
func (r *RotatedRect) Points() [4]geom.Point {
	// hd*cos(s+a) expands to (w/2)cos(a) - (h/2)sin(a), and likewise for
	// sin. Going through the expansion keeps axis-aligned corners exact.
	sin, cos := sincosDeg(r.angle)
	hw, hh := r.width/2, r.height/2

	corner := func(sx, sy float64) geom.Point {
		lx, ly := sx*hw, sy*hh
		return geom.Point{
			X: r.x + lx*cos - ly*sin,
			Y: r.y + lx*sin + ly*cos,
		}
	}

	return [4]geom.Point{
		corner(-1, -1), // 180+s
		corner(-1, 1),  // 180-s
		corner(1, 1),   // s
		corner(1, -1),  // 360-s
	}
}

// Center returns the center point.
func (r *RotatedRect) Center() geom.Point {
	return geom.Point{X: r.x, Y: r.y}
}

// Bounds returns the axis-aligned bounding box of the corners.
func (r *RotatedRect) Bounds() geom.Bounds {
	pts := r.Points()
	return geom.BoundsOf(pts[:])
}

// IsAxisAligned reports whether the angle is a multiple of 90 degrees.
func (r *RotatedRect) IsAxisAligned() bool {
	return math.Mod(r.angle, 90) == 0
}

// sortedByY orders corners top to bottom. Ties on y are broken by x so the
// order is deterministic.
func sortedByY(pts [4]geom.Point) [4]geom.Point {
	sort.Slice(pts[:], func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	return pts
}

// sincosDeg is math.Sincos for degrees, exact at multiples of 90.
func sincosDeg(deg float64) (sin, cos float64) {
	if math.Mod(deg, 90) == 0 {
		switch int(NormalizeAngle(deg)) / 90 {
		case 0:
			return 0, 1
		case 1:
			return 1, 0
		case 2:
			return 0, -1
		default:
			return -1, 0
		}
	}
	return math.Sincos(deg * math.Pi / 180)
}
