package gridmerge

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegeneratePath is returned by MergedPath.Validate when a sub-segment has zero length, ie. the joint coincides with an outer endpoint.
var ErrDegeneratePath = errors.New("merged path has a zero-length segment")

// MergedPath is the polyline that replaces two grid lines. It consists of exactly two segments: from the outer endpoint of the first line to the joint, and from the joint to the outer endpoint of the second line.
type MergedPath struct {
	segs [2]Line
}

// OuterEndpoint returns the endpoint of l that is farthest from joint. When both endpoints are equally far, Start is returned. Distances are compared with a tolerance of Epsilon relative to the larger distance, or absolute below one unit.
func OuterEndpoint(l Line, joint Point) Point {
	d0 := l.Start.DistanceTo(joint)
	d1 := l.End.DistanceTo(joint)
	if d0 < d1 && !equidistant(d0, d1) {
		return l.End
	}
	return l.Start
}

func equidistant(d0, d1 float64) bool {
	return math.Abs(d1-d0) <= Epsilon*math.Max(1.0, math.Max(d0, d1))
}

// BuildPath builds the merged path of a and b through joint. The nearer endpoint of each line is superseded by the joint. The result is not validated, see MergedPath.Validate.
func BuildPath(a, b Line, joint Point) MergedPath {
	return MergedPath{[2]Line{
		{OuterEndpoint(a, joint), joint},
		{joint, OuterEndpoint(b, joint)},
	}}
}

// Segments returns the two segments of the path in order.
func (p MergedPath) Segments() [2]Line {
	return p.segs
}

// Joint returns the point where both segments meet.
func (p MergedPath) Joint() Point {
	return p.segs[0].End
}

// Start returns the first coordinate of the path.
func (p MergedPath) Start() Point {
	return p.segs[0].Start
}

// End returns the last coordinate of the path.
func (p MergedPath) End() Point {
	return p.segs[1].End
}

// Coords returns the three coordinates of the path.
func (p MergedPath) Coords() []Point {
	return []Point{p.segs[0].Start, p.segs[0].End, p.segs[1].End}
}

// Length returns the total length of both segments.
func (p MergedPath) Length() float64 {
	return p.segs[0].Length() + p.segs[1].Length()
}

// Continuous returns true if the second segment starts exactly where the first one ends.
func (p MergedPath) Continuous() bool {
	return p.segs[0].End == p.segs[1].Start
}

// Validate returns an error if the path is not continuous or if any of its segments is degenerate.
func (p MergedPath) Validate() error {
	if !p.Continuous() {
		return fmt.Errorf("merged path is discontinuous at %v and %v", p.segs[0].End, p.segs[1].Start)
	}
	for i, seg := range p.segs {
		if seg.Degenerate() {
			return fmt.Errorf("segment %d: %w", i, ErrDegeneratePath)
		}
	}
	return nil
}

// Bounds returns the bounding box of the path in the XY plane.
func (p MergedPath) Bounds() Rect {
	xmin, ymin := math.Inf(1), math.Inf(1)
	xmax, ymax := math.Inf(-1), math.Inf(-1)
	for _, c := range p.Coords() {
		xmin = math.Min(xmin, c.X)
		ymin = math.Min(ymin, c.Y)
		xmax = math.Max(xmax, c.X)
		ymax = math.Max(ymax, c.Y)
	}
	return Rect{xmin, ymin, xmax - xmin, ymax - ymin}
}

// String returns the path as SVG path data, eg. M0 0L5 0L5 5.
func (p MergedPath) String() string {
	s := p.segs[0].String()
	end := p.segs[1].End
	return s + "L" + num(end.X).String() + " " + num(end.Y).String()
}
