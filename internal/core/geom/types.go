// Package geom holds the small float64 geometry vocabulary shared by the
// rectangle core and the render backends.
package geom

import "fmt"

// Point represents a 2D point in space
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dot returns the dot product of p and q treated as vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Segment is a straight line between two points
type Segment struct {
	A, B Point
}

// Bounds is an axis-aligned box given by its min and max corners.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Contains reports whether p lies inside b or on its edge.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Width returns the horizontal extent of b.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of b.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }
