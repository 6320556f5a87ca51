// Package vrect implements RotatedRect, a rectangle described by its center,
// size and rotation angle in degrees.
//
// Angles follow screen conventions: x grows right, y grows down, and a
// positive angle turns the rectangle clockwise on screen. Corner points are
// derived on every call and never cached, so they always reflect the latest
// mutation.
package vrect

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidDimension is returned when a width or height is not positive.
	ErrInvalidDimension = errors.New("vrect: width and height must be positive")

	// ErrInvalidShape is returned when a collision argument cannot be
	// turned into a rectangle.
	ErrInvalidShape = errors.New("vrect: invalid shape")
)

// RotatedRect is a rectangle rotated about its center.
type RotatedRect struct {
	x, y          float64
	width, height float64
	angle         float64 // degrees, always in [0, 360)
}

// New creates a rectangle centered at (x, y). An optional angle in degrees
// may follow; it defaults to 0 and is normalized into [0, 360).
func New(x, y, width, height float64, angle ...float64) (*RotatedRect, error) {
	if len(angle) > 1 {
		return nil, fmt.Errorf("vrect: expected at most one angle, got %d", len(angle))
	}
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	r := &RotatedRect{x: x, y: y, width: width, height: height}
	if len(angle) == 1 {
		r.angle = NormalizeAngle(angle[0])
	}
	return r, nil
}

// MustNew is like New but panics on invalid dimensions.
func MustNew(x, y, width, height float64, angle ...float64) *RotatedRect {
	r, err := New(x, y, width, height, angle...)
	if err != nil {
		panic(err)
	}
	return r
}

// NormalizeAngle maps deg into [0, 360).
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	// -1e-15 + 360 rounds to 360
	if a >= 360 {
		a = 0
	}
	return a
}

func checkDimensions(width, height float64) error {
	// written as !(v > 0) so NaN is rejected too
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return fmt.Errorf("%w: got %gx%g", ErrInvalidDimension, width, height)
	}
	return nil
}

// X returns the x coordinate of the center.
func (r *RotatedRect) X() float64 { return r.x }

// Y returns the y coordinate of the center.
func (r *RotatedRect) Y() float64 { return r.y }

// Width returns the width along the rectangle's own x axis.
func (r *RotatedRect) Width() float64 { return r.width }

// Height returns the height along the rectangle's own y axis.
func (r *RotatedRect) Height() float64 { return r.height }

// Angle returns the rotation in degrees, in [0, 360).
func (r *RotatedRect) Angle() float64 { return r.angle }

func (r *RotatedRect) SetX(x float64) { r.x = x }

func (r *RotatedRect) SetY(y float64) { r.y = y }

// SetCenter moves the rectangle so that it is centered at (x, y).
func (r *RotatedRect) SetCenter(x, y float64) {
	r.x, r.y = x, y
}

// Move translates the rectangle by (dx, dy).
func (r *RotatedRect) Move(dx, dy float64) {
	r.x += dx
	r.y += dy
}

// SetWidth sets the width. The rectangle is unchanged on error.
func (r *RotatedRect) SetWidth(width float64) error {
	if err := checkDimensions(width, r.height); err != nil {
		return err
	}
	r.width = width
	return nil
}

// SetHeight sets the height. The rectangle is unchanged on error.
func (r *RotatedRect) SetHeight(height float64) error {
	if err := checkDimensions(r.width, height); err != nil {
		return err
	}
	r.height = height
	return nil
}

// SetAngle sets the rotation, normalized into [0, 360).
func (r *RotatedRect) SetAngle(deg float64) {
	r.angle = NormalizeAngle(deg)
}

// Rotate adds deg to the current rotation.
func (r *RotatedRect) Rotate(deg float64) {
	r.SetAngle(r.angle + deg)
}

// Delta holds increments for Update. A zero field leaves the matching
// attribute unchanged.
type Delta struct {
	X, Y          float64
	Width, Height float64
	Angle         float64
}

// Update adds d to the rectangle. If the resulting width or height would not
// be positive, ErrInvalidDimension is returned and nothing is changed.
func (r *RotatedRect) Update(d Delta) error {
	width, height := r.width+d.Width, r.height+d.Height
	if err := checkDimensions(width, height); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	r.x += d.X
	r.y += d.Y
	r.width, r.height = width, height
	r.SetAngle(r.angle + d.Angle)
	return nil
}

// String implements fmt.Stringer.
func (r *RotatedRect) String() string {
	return fmt.Sprintf("RotatedRect(x=%g, y=%g, w=%g, h=%g, angle=%g)", r.x, r.y, r.width, r.height, r.angle)
}
