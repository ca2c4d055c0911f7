package geom

import "math"

// Point represents a 2D point.
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rotate rotates the point about the coordinate origin by angle radians.
// Positive angles rotate counter-clockwise.
func (p Point) Rotate(angle float64) Point {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Size represents a width and height.
type Size struct {
	Width  float64
	Height float64
}

// IsPositive returns true if both dimensions are greater than zero.
func (s Size) IsPositive() bool {
	return s.Width > 0 && s.Height > 0
}

// Landscape returns the size with its longer dimension as the width.
func (s Size) Landscape() Size {
	if s.Width < s.Height {
		return Size{s.Height, s.Width}
	}
	return s
}

// Portrait returns the size with its longer dimension as the height.
func (s Size) Portrait() Size {
	if s.Width > s.Height {
		return Size{s.Height, s.Width}
	}
	return s
}

// Rect represents an axis-aligned rectangle anchored at its lower-left
// corner (PDF coordinate system).
type Rect struct {
	X      float64 // Left
	Y      float64 // Bottom
	Width  float64
	Height float64
}

// NewRect creates a rectangle from its lower-left corner and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromPoints creates the rectangle spanned by two corner points.
func RectFromPoints(p1, p2 Point) Rect {
	return Rect{
		X:      math.Min(p1.X, p2.X),
		Y:      math.Min(p1.Y, p2.Y),
		Width:  math.Abs(p2.X - p1.X),
		Height: math.Abs(p2.Y - p1.Y),
	}
}

// Left returns the left edge X coordinate.
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the right edge X coordinate.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the bottom edge Y coordinate.
func (r Rect) Bottom() float64 {
	return r.Y
}

// Top returns the top edge Y coordinate.
func (r Rect) Top() float64 {
	return r.Y + r.Height
}

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Area returns the area of the rectangle.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Contains checks if a point is inside the rectangle. The bounds test is
// inclusive: points on an edge are contained.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Bottom() && p.Y <= r.Top()
}

// Intersects checks if two rectangles share any area or boundary.
// Rectangles that only touch at an edge or corner count as intersecting.
func (r Rect) Intersects(other Rect) bool {
	return !(r.Right() < other.Left() ||
		r.Left() > other.Right() ||
		r.Top() < other.Bottom() ||
		r.Bottom() > other.Top())
}

// Intersection returns the overlapping rectangle and true, or the zero Rect
// and false when the rectangles do not intersect. The result may have zero
// width or height when the rectangles only touch at an edge.
func (r Rect) Intersection(other Rect) (Rect, bool) {
	if !r.Intersects(other) {
		return Rect{}, false
	}

	x := math.Max(r.Left(), other.Left())
	y := math.Max(r.Bottom(), other.Bottom())
	right := math.Min(r.Right(), other.Right())
	top := math.Min(r.Top(), other.Top())

	return Rect{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: top - y,
	}, true
}

// Union returns the smallest rectangle containing both rectangles. It always
// succeeds, including for disjoint rectangles.
func (r Rect) Union(other Rect) Rect {
	x := math.Min(r.Left(), other.Left())
	y := math.Min(r.Bottom(), other.Bottom())
	right := math.Max(r.Right(), other.Right())
	top := math.Max(r.Top(), other.Top())

	return Rect{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: top - y,
	}
}

// Scaled uniformly scales the rectangle's position and dimensions by factor.
// Scaling is relative to the coordinate origin, not the rectangle's center,
// so origin-relative positions are preserved.
func (r Rect) Scaled(factor float64) Rect {
	return Rect{
		X:      r.X * factor,
		Y:      r.Y * factor,
		Width:  r.Width * factor,
		Height: r.Height * factor,
	}
}

// Translated moves the rectangle by dx and dy.
func (r Rect) Translated(dx, dy float64) Rect {
	return Rect{
		X:      r.X + dx,
		Y:      r.Y + dy,
		Width:  r.Width,
		Height: r.Height,
	}
}

// RotatedBounds rotates the rectangle's four corners about its center by
// angle radians and returns the axis-aligned bounding box of the rotated
// corners. The result is generally larger than the rotated quad itself;
// callers that need the tight quad must rotate the corners individually.
func (r Rect) RotatedBounds(angle float64) Rect {
	center := r.Center()
	corners := []Point{
		{r.Left(), r.Bottom()},
		{r.Right(), r.Bottom()},
		{r.Right(), r.Top()},
		{r.Left(), r.Top()},
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		rotated := Point{c.X - center.X, c.Y - center.Y}.Rotate(angle)
		rotated.X += center.X
		rotated.Y += center.Y

		minX = math.Min(minX, rotated.X)
		minY = math.Min(minY, rotated.Y)
		maxX = math.Max(maxX, rotated.X)
		maxY = math.Max(maxY, rotated.Y)
	}

	return Rect{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// IsValid returns true if the rectangle has positive dimensions.
func (r Rect) IsValid() bool {
	return r.Width > 0 && r.Height > 0
}

// Matrix represents a 2D affine transformation matrix [a b c d e f],
// mapping (x, y) to (a*x + c*y + e, b*x + d*y + f).
type Matrix [6]float64

// Identity returns an identity matrix.
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Translate creates a translation matrix.
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale creates a scaling matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotate creates a rotation matrix for angle radians. Positive angles rotate
// counter-clockwise, matching Point.Rotate.
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// Transform applies the matrix transformation to a point.
func (m Matrix) Transform(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Multiply composes two matrices so that applying the result is equivalent
// to applying m first, then other. Matrix composition is not commutative:
// the order distinguishes "rotate then translate" from "translate then
// rotate".
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[1]*other[2],
		m[0]*other[1] + m[1]*other[3],
		m[2]*other[0] + m[3]*other[2],
		m[2]*other[1] + m[3]*other[3],
		m[4]*other[0] + m[5]*other[2] + other[4],
		m[4]*other[1] + m[5]*other[3] + other[5],
	}
}

// IsIdentity returns true if the matrix is an identity matrix.
func (m Matrix) IsIdentity() bool {
	return m[0] == 1 && m[1] == 0 && m[2] == 0 && m[3] == 1 && m[4] == 0 && m[5] == 0
}
