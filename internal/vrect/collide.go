package vrect

import (
	"fmt"
	"strings"

	"chosenoffset.com/vrect/internal/core/geom"
)

// CollidePoint reports whether (x, y) lies inside the rectangle or on its
// boundary.
func (r *RotatedRect) CollidePoint(x, y float64) bool {
	return r.CollidePointP(geom.Point{X: x, Y: y})
}

// CollidePointP is CollidePoint for a geom.Point.
func (r *RotatedRect) CollidePointP(p geom.Point) bool {
	corners := r.Points()
	if r.IsAxisAligned() {
		return geom.BoundsOf(corners[:]).Contains(p)
	}
	return containsRotated(corners, p)
}

// containsRotated tests p against the four edges written as y = f(x). With
// p0 the topmost and p3 the bottommost corner, p is inside when it is on or
// below both edges leaving p0 and on or above both edges leaving p3.
func containsRotated(corners [4]geom.Point, p geom.Point) bool {
	s := sortedByY(corners)

	f01, ok01 := geom.LineThrough(s[0], s[1])
	f02, ok02 := geom.LineThrough(s[0], s[2])
	f31, ok31 := geom.LineThrough(s[3], s[1])
	f32, ok32 := geom.LineThrough(s[3], s[2])
	if !ok01 || !ok02 || !ok31 || !ok32 {
		// a vertical edge; only reachable at (near) axis-aligned angles
		return geom.ConvexContains(corners[:], p)
	}

	return f01.At(p.X) <= p.Y &&
		f02.At(p.X) <= p.Y &&
		f31.At(p.X) >= p.Y &&
		f32.At(p.X) >= p.Y
}

// OverlapMode selects the rectangle-rectangle test used by CollideRectMode.
type OverlapMode int

const (
	// OverlapExact uses the separating axis theorem. Touching counts as
	// overlapping.
	OverlapExact OverlapMode = iota

	// OverlapCorners reports overlap when a corner of either rectangle is
	// inside the other. It misses cross-shaped overlaps where no corner is
	// inside.
	OverlapCorners

	// OverlapLegacy only checks the corners of the argument against the
	// receiver, so a large argument fully covering the receiver is missed.
	OverlapLegacy
)

func (m OverlapMode) String() string {
	switch m {
	case OverlapExact:
		return "exact"
	case OverlapCorners:
		return "corners"
	case OverlapLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("OverlapMode(%d)", int(m))
	}
}

// ParseOverlapMode parses the names printed by OverlapMode.String.
func ParseOverlapMode(s string) (OverlapMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "exact", "sat":
		return OverlapExact, nil
	case "corners":
		return OverlapCorners, nil
	case "legacy":
		return OverlapLegacy, nil
	default:
		return 0, fmt.Errorf("unknown overlap mode %q", s)
	}
}

// CollideRect reports whether s overlaps r, using OverlapExact.
func (r *RotatedRect) CollideRect(s Shape) (bool, error) {
	return r.CollideRectMode(s, OverlapExact)
}

// CollideRectMode reports whether s overlaps r using the given test.
// It returns ErrInvalidShape when s cannot be read as a rectangle.
func (r *RotatedRect) CollideRectMode(s Shape, mode OverlapMode) (bool, error) {
	if s == nil {
		return false, fmt.Errorf("%w: nil shape", ErrInvalidShape)
	}
	other, err := s.rotated()
	if err != nil {
		return false, err
	}

	switch mode {
	case OverlapExact:
		return !r.separatedFrom(other), nil
	case OverlapCorners:
		return r.containsAnyCorner(other) || other.containsAnyCorner(r), nil
	case OverlapLegacy:
		return r.containsAnyCorner(other), nil
	default:
		return false, fmt.Errorf("vrect: unknown overlap mode %d", int(mode))
	}
}

func (r *RotatedRect) containsAnyCorner(other *RotatedRect) bool {
	for _, p := range other.Points() {
		if r.CollidePointP(p) {
			return true
		}
	}
	return false
}

// separatedFrom looks for an axis, among the edge normals of both
// rectangles, on which their projections do not overlap.
func (r *RotatedRect) separatedFrom(other *RotatedRect) bool {
	a, b := r.Points(), other.Points()
	for _, axis := range [4]geom.Point{r.axisX(), r.axisY(), other.axisX(), other.axisY()} {
		loA, hiA := geom.Project(a[:], axis)
		loB, hiB := geom.Project(b[:], axis)
		if hiA < loB-geom.Epsilon || hiB < loA-geom.Epsilon {
			return true
		}
	}
	return false
}

// axisX is the unit vector along the rectangle's own x axis.
func (r *RotatedRect) axisX() geom.Point {
	sin, cos := sincosDeg(r.angle)
	return geom.Point{X: cos, Y: sin}
}

// axisY is the unit vector along the rectangle's own y axis.
func (r *RotatedRect) axisY() geom.Point {
	sin, cos := sincosDeg(r.angle)
	return geom.Point{X: -sin, Y: cos}
}
