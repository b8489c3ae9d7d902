package geometry

import "math"

// priority orders shape kinds so Intersects can dispatch to a single
// concrete implementation per pair instead of requiring every shape to
// know about every other shape symmetrically. Dots sit above segs which
// sit above bends, mirroring the fact that a dot's intersection test is
// the cheapest and most numerically stable of the three.
const (
	priorityBend = 1
	prioritySeg  = 2
	priorityDot  = 3
)

// Envelope3D is a shape's footprint together with the layer range it
// occupies. Ordinary primitives occupy exactly one layer; a via-like
// primitive can span MinLayer..MaxLayer inclusive.
type Envelope3D struct {
	BBox     BBox
	MinLayer int
	MaxLayer int
}

// OverlapsLayer reports whether e occupies the given layer.
func (e Envelope3D) OverlapsLayer(layer int) bool {
	return layer >= e.MinLayer && layer <= e.MaxLayer
}

// Shape is the common surface every drawing primitive's geometry
// implements: dots, segs and bends.
type Shape interface {
	// Priority orders shape kinds for Intersects dispatch.
	Priority() int
	// Inflate returns a copy of the shape grown outward by delta (used to
	// fold a clearance requirement into a single enlarged query shape).
	Inflate(delta float64) Shape
	// BBox returns the shape's 2-D axis-aligned bounding box.
	BBox() BBox
	// Center returns a representative point used for tangent/ratsnest math.
	Center() Point
	// Width returns the shape's copper width: the trace width of a seg or
	// bend, and the diameter of a dot.
	Width() float64
	// Layer returns the layer the shape occupies.
	Layer() int
	// Envelope3D returns the shape's footprint and layer span.
	Envelope3D() Envelope3D
}

// Intersects reports whether a and b overlap, inclusive of touching.
// It is the single entry point every caller should use instead of
// reaching for a shape's own comparison helpers, since the concrete
// dispatch differs by kind pair.
func Intersects(a, b Shape) bool {
	if a.Priority() < b.Priority() {
		a, b = b, a
	}
	switch av := a.(type) {
	case DotShape:
		switch bv := b.(type) {
		case DotShape:
			return dotDot(av, bv)
		case SegShape:
			return dotSeg(av, bv)
		case BendShape:
			return dotBend(av, bv)
		}
	case SegShape:
		switch bv := b.(type) {
		case SegShape:
			return segSeg(av, bv)
		case BendShape:
			return segBend(av, bv)
		}
	case BendShape:
		if bv, ok := b.(BendShape); ok {
			return bendBend(av, bv)
		}
	}
	return false
}

// DotShape is a circular pad, via or loose routing dot.
type DotShape struct {
	Circ  Circle
	L     int
}

func NewDotShape(pos Point, r float64, layer int) DotShape {
	return DotShape{Circ: Circle{Pos: pos, R: r}, L: layer}
}

func (d DotShape) Priority() int          { return priorityDot }
func (d DotShape) BBox() BBox             { return d.Circ.bbox() }
func (d DotShape) Center() Point          { return d.Circ.Pos }
func (d DotShape) Width() float64         { return 2 * d.Circ.R }
func (d DotShape) Layer() int             { return d.L }
func (d DotShape) Inflate(delta float64) Shape {
	return DotShape{Circ: Circle{Pos: d.Circ.Pos, R: d.Circ.R + delta}, L: d.L}
}
func (d DotShape) Envelope3D() Envelope3D {
	return Envelope3D{BBox: d.BBox(), MinLayer: d.L, MaxLayer: d.L}
}

// SegShape is a straight, width-wide segment of copper (a FixedSeg or the
// straight part of a loose seg).
type SegShape struct {
	From, To Point
	W        float64
	L        int
}

func NewSegShape(from, to Point, width float64, layer int) SegShape {
	return SegShape{From: from, To: to, W: width, L: layer}
}

func (s SegShape) Priority() int  { return prioritySeg }
func (s SegShape) Center() Point  { return Point{(s.From.X + s.To.X) / 2, (s.From.Y + s.To.Y) / 2} }
func (s SegShape) Width() float64 { return s.W }
func (s SegShape) Layer() int     { return s.L }
func (s SegShape) Inflate(delta float64) Shape {
	return SegShape{From: s.From, To: s.To, W: s.W + 2*delta, L: s.L}
}
func (s SegShape) BBox() BBox {
	r := s.W / 2
	return BBox{
		MinX: math.Min(s.From.X, s.To.X) - r,
		MinY: math.Min(s.From.Y, s.To.Y) - r,
		MaxX: math.Max(s.From.X, s.To.X) + r,
		MaxY: math.Max(s.From.Y, s.To.Y) + r,
	}
}
func (s SegShape) Envelope3D() Envelope3D {
	return Envelope3D{BBox: s.BBox(), MinLayer: s.L, MaxLayer: s.L}
}

// Length returns the seg's straight-line length.
func (s SegShape) Length() float64 { return Dist(s.From, s.To) }

// BendShape is a circular arc of copper, bowed around InnerCircle's center
// with InnerCircle.R as the inner rail radius; the arc's own drawn radius
// is InnerCircle.R + Width/2.
type BendShape struct {
	From, To    Point
	InnerCircle Circle
	W           float64
	L           int
}

func NewBendShape(from, to Point, inner Circle, width float64, layer int) BendShape {
	return BendShape{From: from, To: to, InnerCircle: inner, W: width, L: layer}
}

func (b BendShape) Priority() int  { return priorityBend }
func (b BendShape) Center() Point  { return b.InnerCircle.Pos }
func (b BendShape) Width() float64 { return b.W }
func (b BendShape) Layer() int     { return b.L }
func (b BendShape) Radius() float64 { return b.InnerCircle.R + b.W/2 }
func (b BendShape) Inflate(delta float64) Shape {
	return BendShape{From: b.From, To: b.To, InnerCircle: b.InnerCircle, W: b.W + 2*delta, L: b.L}
}
func (b BendShape) BBox() BBox {
	c := Circle{Pos: b.InnerCircle.Pos, R: b.Radius()}
	return c.bbox()
}
func (b BendShape) Envelope3D() Envelope3D {
	return Envelope3D{BBox: b.BBox(), MinLayer: b.L, MaxLayer: b.L}
}

// betweenEnds reports whether p, measured as an angle around center, lies
// on the arc swept counterclockwise from 'from' to 'to'.
func betweenEnds(center, from, to, p Point) bool {
	a0 := from.Sub(center).Angle()
	a1 := to.Sub(center).Angle()
	ap := p.Sub(center).Angle()
	norm := func(a float64) float64 {
		for a < 0 {
			a += 2 * math.Pi
		}
		for a >= 2*math.Pi {
			a -= 2 * math.Pi
		}
		return a
	}
	a0, a1, ap = norm(a0), norm(a1), norm(ap)
	if a0 <= a1 {
		return ap >= a0 && ap <= a1
	}
	return ap >= a0 || ap <= a1
}

func dotDot(a, b DotShape) bool {
	return circlesIntersect(a.Circ, b.Circ)
}

func dotSeg(d DotShape, s SegShape) bool {
	return pointToSegmentDist(d.Circ.Pos, s.From, s.To) <= d.Circ.R+s.W/2
}

func dotBend(d DotShape, b BendShape) bool {
	outer := Circle{Pos: b.InnerCircle.Pos, R: b.Radius() + d.Circ.R}
	inner := Circle{Pos: b.InnerCircle.Pos, R: b.InnerCircle.R - d.Circ.R}
	dist := Dist(d.Circ.Pos, b.InnerCircle.Pos)
	if dist > outer.R || (inner.R > 0 && dist < inner.R) {
		return false
	}
	// within the annulus; the dot intersects the bend's drawn arc only if
	// its angular position projects onto the bend's swept range, or the
	// dot is close enough to an endpoint cap to touch there regardless.
	if betweenEnds(b.InnerCircle.Pos, b.From, b.To, d.Circ.Pos) {
		return true
	}
	capR := b.W/2 + d.Circ.R
	return Dist(d.Circ.Pos, b.From) <= capR || Dist(d.Circ.Pos, b.To) <= capR
}

func segSeg(a, b SegShape) bool {
	if segmentsIntersect(a.From, a.To, b.From, b.To) {
		return true
	}
	r := a.W/2 + b.W/2
	return pointToSegmentDist(a.From, b.From, b.To) <= r ||
		pointToSegmentDist(a.To, b.From, b.To) <= r ||
		pointToSegmentDist(b.From, a.From, a.To) <= r ||
		pointToSegmentDist(b.To, a.From, a.To) <= r
}

func segBend(s SegShape, b BendShape) bool {
	// Sample the chord-vs-annulus case via closest-approach of the segment
	// line to the bend's center, then confirm angular containment.
	closest, t := closestPointOnSegment(b.InnerCircle.Pos, s.From, s.To)
	_ = t
	dist := Dist(closest, b.InnerCircle.Pos)
	r := b.Radius()
	if math.Abs(dist-r) <= s.W/2+b.W/2 && betweenEnds(b.InnerCircle.Pos, b.From, b.To, closest) {
		return true
	}
	capR := s.W/2 + b.W/2
	return pointToSegmentDist(b.From, s.From, s.To) <= capR ||
		pointToSegmentDist(b.To, s.From, s.To) <= capR
}

func bendBend(a, b BendShape) bool {
	if a.InnerCircle.Pos == b.InnerCircle.Pos {
		ra, rb := a.Radius(), b.Radius()
		if math.Abs(ra-rb) > a.W/2+b.W/2 {
			return false
		}
		return true
	}
	capR := a.W/2 + b.W/2
	return Dist(a.From, b.From) <= capR || Dist(a.From, b.To) <= capR ||
		Dist(a.To, b.From) <= capR || Dist(a.To, b.To) <= capR
}

func pointToSegmentDist(p, a, b Point) float64 {
	closest, _ := closestPointOnSegment(p, a, b)
	return Dist(p, closest)
}

func closestPointOnSegment(p, a, b Point) (Point, float64) {
	abx, aby := b.X-a.X, b.Y-a.Y
	l2 := abx*abx + aby*aby
	if l2 == 0 {
		return a, 0
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Point{a.X + t*abx, a.Y + t*aby}, t
}

func segmentsIntersect(p1, p2, p3, p4 Point) bool {
	d1 := cross(p4.Sub(p3), p1.Sub(p3))
	d2 := cross(p4.Sub(p3), p2.Sub(p3))
	d3 := cross(p2.Sub(p1), p3.Sub(p1))
	d4 := cross(p2.Sub(p1), p4.Sub(p1))
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	if d1 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, p4) {
		return true
	}
	return false
}

func cross(a, b Point) float64 { return a.X*b.Y - a.Y*b.X }

func onSegment(a, b, p Point) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}
