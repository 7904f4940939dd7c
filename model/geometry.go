package model

import "math"

// Point represents a position on a slide.
type Point struct {
	X, Y EMU
}

// Distance calculates the Euclidean distance to another point, in EMU.
func (p Point) Distance(other Point) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect represents an axis-aligned rectangle on a slide. Y grows downward,
// as in DrawingML.
type Rect struct {
	X EMU // Left
	Y EMU // Top
	W EMU
	H EMU
}

// NewRect creates a rectangle from a position and size.
func NewRect(x, y, w, h EMU) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// InchRect creates a rectangle from coordinates given in inches.
func InchRect(x, y, w, h float64) Rect {
	return Rect{X: Inches(x), Y: Inches(y), W: Inches(w), H: Inches(h)}
}

// RectFromPoints creates the rectangle spanned by two corners.
func RectFromPoints(p1, p2 Point) Rect {
	x := min(p1.X, p2.X)
	y := min(p1.Y, p2.Y)
	return Rect{X: x, Y: y, W: abs(p2.X - p1.X), H: abs(p2.Y - p1.Y)}
}

// Left returns the left edge X coordinate
func (r Rect) Left() EMU {
	return r.X
}

// Right returns the right edge X coordinate
func (r Rect) Right() EMU {
	return r.X + r.W
}

// Top returns the top edge Y coordinate
func (r Rect) Top() EMU {
	return r.Y
}

// Bottom returns the bottom edge Y coordinate
func (r Rect) Bottom() EMU {
	return r.Y + r.H
}

// Center returns the center point
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Area returns the area in square EMU.
func (r Rect) Area() float64 {
	return float64(r.W) * float64(r.H)
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains checks if a point is inside the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Top() && p.Y <= r.Bottom()
}

// ContainsRect checks if other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.Left() >= r.Left() && other.Right() <= r.Right() &&
		other.Top() >= r.Top() && other.Bottom() <= r.Bottom()
}

// Intersects checks if two rectangles share interior area. Rectangles that
// only touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.Left() < other.Right() && other.Left() < r.Right() &&
		r.Top() < other.Bottom() && other.Top() < r.Bottom()
}

// Intersection returns the overlapping region, or the zero Rect if the
// rectangles do not intersect.
func (r Rect) Intersection(other Rect) Rect {
	if !r.Intersects(other) {
		return Rect{}
	}
	x := max(r.Left(), other.Left())
	y := max(r.Top(), other.Top())
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	return Rect{X: x, Y: y, W: right - x, H: bottom - y}
}

// Union returns the smallest rectangle containing both.
func (r Rect) Union(other Rect) Rect {
	x := min(r.Left(), other.Left())
	y := min(r.Top(), other.Top())
	right := max(r.Right(), other.Right())
	bottom := max(r.Bottom(), other.Bottom())
	return Rect{X: x, Y: y, W: right - x, H: bottom - y}
}

// Translate returns the rectangle moved by dx, dy.
func (r Rect) Translate(dx, dy EMU) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Scale returns the rectangle with every coordinate multiplied by f.
func (r Rect) Scale(f float64) Rect {
	return Rect{
		X: EMU(math.Round(float64(r.X) * f)),
		Y: EMU(math.Round(float64(r.Y) * f)),
		W: EMU(math.Round(float64(r.W) * f)),
		H: EMU(math.Round(float64(r.H) * f)),
	}
}

func abs(v EMU) EMU {
	if v < 0 {
		return -v
	}
	return v
}
