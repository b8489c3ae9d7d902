package geometry

import "math"

// Point is a 2-D coordinate in board units (nanometers in the exported
// design, but the geometry package itself is unit-agnostic float64).
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Dist returns the Euclidean distance between p and q.
func Dist(p, q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return math.Hypot(dx, dy)
}

// Norm returns the Euclidean length of p treated as a vector.
func (p Point) Norm() float64 { return math.Hypot(p.X, p.Y) }

// Angle returns the direction of p treated as a vector, in radians.
func (p Point) Angle() float64 { return math.Atan2(p.Y, p.X) }

// RotateAround rotates p about center by theta radians (counter-clockwise
// for positive theta, matching a standard math-convention y-up plane).
func (p Point) RotateAround(center Point, theta float64) Point {
	s, c := math.Sin(theta), math.Cos(theta)
	dx, dy := p.X-center.X, p.Y-center.Y
	return Point{
		X: center.X + dx*c - dy*s,
		Y: center.Y + dx*s + dy*c,
	}
}

// BBox is an axis-aligned bounding box, inclusive of its edges.
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// Union returns the smallest BBox containing both b and o.
func (b BBox) Union(o BBox) BBox {
	return BBox{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Overlaps reports whether b and o share any area (touching counts).
func (b BBox) Overlaps(o BBox) bool {
	return b.MinX <= o.MaxX && o.MinX <= b.MaxX && b.MinY <= o.MaxY && o.MinY <= b.MaxY
}

// Inflate grows b by delta in every direction.
func (b BBox) Inflate(delta float64) BBox {
	return BBox{b.MinX - delta, b.MinY - delta, b.MaxX + delta, b.MaxY + delta}
}

// Area returns the BBox's area; zero-area boxes (points) return 0.
func (b BBox) Area() float64 {
	w, h := b.MaxX-b.MinX, b.MaxY-b.MinY
	if w < 0 || h < 0 {
		return 0
	}
	return w * h
}

// Circle is a position plus radius, the basis of DotShape and BendShape.
type Circle struct {
	Pos Point
	R   float64
}

func (c Circle) bbox() BBox {
	return BBox{c.Pos.X - c.R, c.Pos.Y - c.R, c.Pos.X + c.R, c.Pos.Y + c.R}
}

func circlesIntersect(a, b Circle) bool {
	return Dist(a.Pos, b.Pos) <= a.R+b.R
}
