package vrect

import (
	"fmt"
	"image"
	"math"
)

// Shape is anything CollideRect accepts. The set is closed: *RotatedRect,
// AxisAligned and Raw. Every Shape is turned into a RotatedRect before any
// test runs.
type Shape interface {
	rotated() (*RotatedRect, error)
}

// AxisAligned is an unrotated rectangle given by its top-left corner and
// size, the way image.Rectangle and most 2D toolkits describe rects.
type AxisAligned struct {
	X, Y, W, H float64
}

// FromImageRect converts an image.Rectangle.
func FromImageRect(r image.Rectangle) AxisAligned {
	return AxisAligned{
		X: float64(r.Min.X),
		Y: float64(r.Min.Y),
		W: float64(r.Dx()),
		H: float64(r.Dy()),
	}
}

func (a AxisAligned) rotated() (*RotatedRect, error) {
	if !finite(a.X, a.Y, a.W, a.H) {
		return nil, fmt.Errorf("%w: non-finite axis-aligned rect %v", ErrInvalidShape, a)
	}
	r, err := New(a.X+a.W/2, a.Y+a.H/2, a.W, a.H)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidShape, err)
	}
	return r, nil
}

// Raw is an untyped numeric rectangle. Four values are read as an
// axis-aligned rect (left, top, width, height); five values as a rotated
// rect (center x, center y, width, height, angle). Any other length is
// ErrInvalidShape.
type Raw []float64

func (v Raw) rotated() (*RotatedRect, error) {
	if !finite(v...) {
		return nil, fmt.Errorf("%w: non-finite value in %v", ErrInvalidShape, []float64(v))
	}
	switch len(v) {
	case 4:
		return AxisAligned{X: v[0], Y: v[1], W: v[2], H: v[3]}.rotated()
	case 5:
		r, err := New(v[0], v[1], v[2], v[3], v[4])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidShape, err)
		}
		return r, nil
	default:
		return nil, fmt.Errorf("%w: expected 4 or 5 values, got %d", ErrInvalidShape, len(v))
	}
}

func (r *RotatedRect) rotated() (*RotatedRect, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil rect", ErrInvalidShape)
	}
	return r, nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
