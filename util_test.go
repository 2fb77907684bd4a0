package gridmerge

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPoint(t *testing.T) {
	p := Point{3.0, 4.0, 0.0}
	test.T(t, p.Add(Point{1.0, 2.0, 3.0}), Point{4.0, 6.0, 3.0})
	test.T(t, p.Sub(Point{1.0, 2.0, 3.0}), Point{2.0, 2.0, -3.0})
	test.T(t, p.Mul(2.0), Point{6.0, 8.0, 0.0})
	test.T(t, p.Neg(), Point{-3.0, -4.0, 0.0})
	test.Float(t, p.Length(), 5.0)
	test.Float(t, p.Dot(Point{1.0, 1.0, 1.0}), 7.0)
	test.Float(t, p.PerpDot(Point{1.0, 0.0, 5.0}), -4.0)
	test.Float(t, p.DistanceTo(Point{3.0, 4.0, 12.0}), 12.0)
	test.T(t, p.Interpolate(Point{5.0, 4.0, 2.0}, 0.5), Point{4.0, 4.0, 1.0})
	test.That(t, p.Equals(Point{3.0, 4.0 + Epsilon/2.0, 0.0}))
	test.That(t, !p.Equals(Point{3.0, 4.0, 1e-6}))
	test.That(t, Point{}.IsZero())
	test.String(t, p.String(), "[3; 4; 0]")
}

func TestNum(t *testing.T) {
	test.String(t, num(5.0).String(), "5")
	test.String(t, num(-5.0).String(), "-5")
	test.String(t, num(0.5).String(), ".5")
	test.String(t, num(math.Copysign(0.0, -1.0)).String(), "0")
	test.String(t, num(1234.5).String(), "1234.5")
}

func TestRect(t *testing.T) {
	r := Rect{0.0, 0.0, 1.0, 1.0}
	test.T(t, r.Add(Rect{2.0, -1.0, 1.0, 1.0}), Rect{0.0, -1.0, 3.0, 2.0})
	test.T(t, r.AddPoint(Point{-1.0, 2.0, 7.0}), Rect{-1.0, 0.0, 2.0, 2.0})
	test.String(t, r.String(), "[0; 0]--[1; 1]")
}

func TestMatrix(t *testing.T) {
	p := Point{1.0, 2.0, 3.0}
	test.T(t, Identity.Dot(p), p)
	test.T(t, Identity.Translate(1.0, 1.0).Dot(p), Point{2.0, 3.0, 3.0})
	test.T(t, Identity.Scale(2.0, 3.0).Dot(p), Point{2.0, 6.0, 3.0})
	test.T(t, Identity.ReflectYAt(5.0).Dot(p), Point{1.0, 8.0, 3.0})
	test.T(t, Identity.Scale(2.0, 2.0).Translate(1.0, 0.0).Dot(p), Point{4.0, 4.0, 3.0})
}
