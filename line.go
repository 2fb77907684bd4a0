package gridmerge

import "math"

// Line is a bounded straight segment from Start to End, such as the curve of a single grid line.
type Line struct {
	Start, End Point
}

// Direction returns End-Start. It is not normalized.
func (l Line) Direction() Point {
	return l.End.Sub(l.Start)
}

// Length returns the length of the segment.
func (l Line) Length() float64 {
	return l.Start.DistanceTo(l.End)
}

// Degenerate returns true if the segment has (nearly) zero length.
func (l Line) Degenerate() bool {
	return l.Length() < Epsilon
}

// Reverse returns the segment with its endpoints swapped.
func (l Line) Reverse() Line {
	return Line{l.End, l.Start}
}

// Coplanar returns true if both segments lie in the same horizontal plane, ie. all four endpoints share the same Z.
func (l Line) Coplanar(o Line) bool {
	z := l.Start.Z
	return Equal(l.End.Z, z) && Equal(o.Start.Z, z) && Equal(o.End.Z, z)
}

// Residual returns the distance in the XY plane between P and the infinite line through the segment. It returns the distance to Start for degenerate segments.
func (l Line) Residual(p Point) float64 {
	d := l.Direction()
	n := math.Hypot(d.X, d.Y)
	if n < Epsilon {
		return math.Hypot(p.X-l.Start.X, p.Y-l.Start.Y)
	}
	return math.Abs(d.PerpDot(p.Sub(l.Start))) / n
}

// Contains returns true if P lies on the infinite line through the segment, with a tolerance relative to the magnitude of the coordinates.
func (l Line) Contains(p Point) bool {
	scale := math.Max(1.0, math.Max(l.Length(), math.Max(math.Abs(p.X), math.Abs(p.Y))))
	return l.Residual(p) <= 1e-9*scale
}

func (l Line) String() string {
	return "M" + num(l.Start.X).String() + " " + num(l.Start.Y).String() + "L" + num(l.End.X).String() + " " + num(l.End.Y).String()
}

// Intersect returns the intersection of the infinite lines through a and b in the XY plane. It returns false when the lines are parallel or coincident. The result lies on a by construction, its Z follows a's parametrization.
func Intersect(a, b Line) (Point, bool) {
	p1, d1 := a.Start, a.Direction()
	p2, d2 := b.Start, b.Direction()

	// solve p1 + t*d1 = p2 + s*d2 for t by Cramer's rule
	det := d1.X*(-d2.Y) - (-d2.X)*d1.Y
	if math.Abs(det) < IntersectEpsilon {
		// parallel or coincident
		return Point{}, false
	}

	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	t := (dx*(-d2.Y) - dy*(-d2.X)) / det
	return p1.Add(d1.Mul(t)), true
}
