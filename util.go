package gridmerge

import (
	"fmt"
	"math"
	"strconv"

	"github.com/tdewolff/minify/v2"
)

// Epsilon is the tolerance used for comparing coordinates and lengths.
const Epsilon = 1e-10

// IntersectEpsilon is the absolute tolerance on the determinant below which two lines are considered parallel. It suits the coordinate magnitudes of architectural drawings.
const IntersectEpsilon = 1e-9

// Precision is the number of significant digits used when formatting coordinates.
var Precision = 8

// Equal returns true if a and b are equal with tolerance Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// num formats a coordinate for path data and SVG attributes.
type num float64

func (f num) String() string {
	s := strconv.FormatFloat(float64(f), 'f', -1, 64)
	s = string(minify.Decimal([]byte(s), Precision))
	if s == "-0" {
		return "0"
	}
	return s
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 3D space. OP refers to the vector from the origin (0,0,0) to this point (x,y,z). Planar operations such as PerpDot only use x and y.
type Point struct {
	X, Y, Z float64
}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0 && p.Z == 0.0
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y) && Equal(p.Z, q.Z)
}

// Neg negates x, y and z.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y, -p.Z}
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Mul multiplies x, y and z by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y, f * p.Z}
}

// Dot returns the dot product between OP and OQ, ie. zero if perpendicular and |OP|*|OQ| if aligned.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// PerpDot returns the perp dot product between OP and OQ projected on the XY plane, ie. zero if aligned and |OP|*|OQ| if perpendicular.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// DistanceTo returns the Euclidean distance between P and Q.
func (p Point) DistanceTo(q Point) float64 {
	return q.Sub(p).Length()
}

// Interpolate returns a point on PQ that is linearly interpolated by t, ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y, (1-t)*p.Z + t*q.Z}
}

func (p Point) String() string {
	return fmt.Sprintf("[%g; %g; %g]", p.X, p.Y, p.Z)
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned rectangle in the XY plane.
type Rect struct {
	X, Y, W, H float64
}

// Add returns the smallest rectangle containing both R and Q.
func (r Rect) Add(q Rect) Rect {
	x0 := math.Min(r.X, q.X)
	y0 := math.Min(r.Y, q.Y)
	x1 := math.Max(r.X+r.W, q.X+q.W)
	y1 := math.Max(r.Y+r.H, q.Y+q.H)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// AddPoint returns the smallest rectangle containing both R and P.
func (r Rect) AddPoint(p Point) Rect {
	return r.Add(Rect{p.X, p.Y, 0.0, 0.0})
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g; %g]--[%g; %g]", r.X, r.Y, r.X+r.W, r.Y+r.H)
}

////////////////////////////////////////////////////////////////

// Matrix is used for affine transformations in the XY plane. Be aware that concatenating transformation function will be evaluated right-to-left! So in Identity.Scale(2,2).Translate(20,0) will first translate 20 units horizontally and then scale.
type Matrix [2][3]float64

var Identity = Matrix{
	{1.0, 0.0, 0.0},
	{0.0, 1.0, 0.0},
}

func (m Matrix) Mul(q Matrix) Matrix {
	return Matrix{{
		m[0][0]*q[0][0] + m[0][1]*q[1][0],
		m[0][0]*q[0][1] + m[0][1]*q[1][1],
		m[0][0]*q[0][2] + m[0][1]*q[1][2] + m[0][2],
	}, {
		m[1][0]*q[0][0] + m[1][1]*q[1][0],
		m[1][0]*q[0][1] + m[1][1]*q[1][1],
		m[1][0]*q[0][2] + m[1][1]*q[1][2] + m[1][2],
	}}
}

// Dot transforms the XY components of P; Z is kept.
func (m Matrix) Dot(p Point) Point {
	return Point{
		m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
		p.Z,
	}
}

func (m Matrix) Translate(x, y float64) Matrix {
	return m.Mul(Matrix{
		{1.0, 0.0, x},
		{0.0, 1.0, y},
	})
}

func (m Matrix) Scale(x, y float64) Matrix {
	if Equal(x, 0.0) && Equal(y, 0.0) {
		panic("cannot scale affine transformation matrix to zero in x and y")
	}
	return m.Mul(Matrix{
		{x, 0.0, 0.0},
		{0.0, y, 0.0},
	})
}

func (m Matrix) ReflectYAt(y float64) Matrix {
	return m.Translate(0.0, y).Scale(1.0, -1.0).Translate(0.0, -y)
}
