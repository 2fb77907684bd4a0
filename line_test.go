package gridmerge

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestLine(t *testing.T) {
	l := Line{Point{0.0, 0.0, 1.0}, Point{3.0, 4.0, 1.0}}
	test.T(t, l.Direction(), Point{3.0, 4.0, 0.0})
	test.Float(t, l.Length(), 5.0)
	test.T(t, l.Reverse(), Line{Point{3.0, 4.0, 1.0}, Point{0.0, 0.0, 1.0}})
	test.That(t, !l.Degenerate())
	test.That(t, Line{Point{1.0, 1.0, 0.0}, Point{1.0, 1.0, 0.0}}.Degenerate())
	test.String(t, l.String(), "M0 0L3 4")
}

func TestLineCoplanar(t *testing.T) {
	a := Line{Point{0.0, 0.0, 3.0}, Point{10.0, 0.0, 3.0}}
	test.That(t, a.Coplanar(Line{Point{5.0, -5.0, 3.0}, Point{5.0, 5.0, 3.0}}))
	test.That(t, !a.Coplanar(Line{Point{5.0, -5.0, 3.0}, Point{5.0, 5.0, 4.0}}))
	test.That(t, !a.Coplanar(Line{Point{5.0, -5.0, 0.0}, Point{5.0, 5.0, 0.0}}))
	test.That(t, !Line{Point{0.0, 0.0, 0.0}, Point{1.0, 0.0, 1.0}}.Coplanar(a))
}

func TestLineResidual(t *testing.T) {
	l := Line{Point{0.0, 0.0, 0.0}, Point{10.0, 0.0, 0.0}}
	test.Float(t, l.Residual(Point{5.0, 3.0, 0.0}), 3.0)
	test.Float(t, l.Residual(Point{-20.0, -2.0, 0.0}), 2.0)
	test.That(t, l.Contains(Point{50.0, 0.0, 7.0}))
	test.That(t, !l.Contains(Point{50.0, 0.001, 0.0}))
	test.Float(t, Line{Point{1.0, 1.0, 0.0}, Point{1.0, 1.0, 0.0}}.Residual(Point{4.0, 5.0, 0.0}), 5.0)
}

func TestIntersect(t *testing.T) {
	var tts = []struct {
		a, b  Line
		p     Point
		found bool
	}{
		// perpendicular crossing
		{Line{Point{0.0, 0.0, 0.0}, Point{10.0, 0.0, 0.0}}, Line{Point{5.0, -5.0, 0.0}, Point{5.0, 5.0, 0.0}}, Point{5.0, 0.0, 0.0}, true},
		// parallel
		{Line{Point{0.0, 0.0, 0.0}, Point{10.0, 0.0, 0.0}}, Line{Point{0.0, 1.0, 0.0}, Point{10.0, 1.0, 0.0}}, Point{}, false},
		// anti-parallel
		{Line{Point{0.0, 0.0, 0.0}, Point{10.0, 0.0, 0.0}}, Line{Point{10.0, 1.0, 0.0}, Point{0.0, 1.0, 0.0}}, Point{}, false},
		// coincident
		{Line{Point{0.0, 0.0, 0.0}, Point{10.0, 0.0, 0.0}}, Line{Point{2.0, 0.0, 0.0}, Point{8.0, 0.0, 0.0}}, Point{}, false},
		// outside of both segments
		{Line{Point{0.0, 0.0, 0.0}, Point{1.0, 0.0, 0.0}}, Line{Point{5.0, 1.0, 0.0}, Point{5.0, 2.0, 0.0}}, Point{5.0, 0.0, 0.0}, true},
		// end point touching
		{Line{Point{0.0, 0.0, 0.0}, Point{10.0, 0.0, 0.0}}, Line{Point{10.0, 0.0, 0.0}, Point{10.0, 10.0, 0.0}}, Point{10.0, 0.0, 0.0}, true},
		// elevation is carried
		{Line{Point{0.0, 0.0, 4.0}, Point{10.0, 0.0, 4.0}}, Line{Point{5.0, -5.0, 4.0}, Point{5.0, 5.0, 4.0}}, Point{5.0, 0.0, 4.0}, true},
		// diagonal
		{Line{Point{0.0, 0.0, 0.0}, Point{4.0, 4.0, 0.0}}, Line{Point{0.0, 4.0, 0.0}, Point{4.0, 0.0, 0.0}}, Point{2.0, 2.0, 0.0}, true},
		// degenerate
		{Line{Point{1.0, 1.0, 0.0}, Point{1.0, 1.0, 0.0}}, Line{Point{0.0, 4.0, 0.0}, Point{4.0, 0.0, 0.0}}, Point{}, false},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			p, ok := Intersect(tt.a, tt.b)
			test.T(t, ok, tt.found)
			test.That(t, p.Equals(tt.p), p, "!=", tt.p)
		})
	}
}

func TestIntersectTolerance(t *testing.T) {
	// nearly parallel lines below the determinant tolerance
	a := Line{Point{0.0, 0.0, 0.0}, Point{1.0, 0.0, 0.0}}
	b := Line{Point{0.0, 1.0, 0.0}, Point{1.0, 1.0 + 1e-10, 0.0}}
	_, ok := Intersect(a, b)
	test.That(t, !ok)

	// but not with a slightly larger slope
	b = Line{Point{0.0, 1.0, 0.0}, Point{1.0, 1.0 + 1e-6, 0.0}}
	_, ok = Intersect(a, b)
	test.That(t, ok)
}

func TestIntersectProperties(t *testing.T) {
	r := newRand()
	for i := 0; i < 1000; i++ {
		a, b := randomLine(r, 2.0), randomLine(r, 2.0)
		p, ok := Intersect(a, b)
		if !ok {
			continue
		}
		test.That(t, a.Contains(p), "residual on first line", a, b, p)
		test.That(t, b.Contains(p), "residual on second line", a, b, p)
		test.Float(t, p.Z, 2.0)

		q, ok := Intersect(b, a)
		test.That(t, ok)
		test.That(t, p.DistanceTo(q) < 1e-6*max(1.0, p.Length()), "symmetry", p, q)

		// idempotence
		p2, _ := Intersect(a, b)
		test.T(t, p2, p)
	}
}

func TestIntersectParallelProperties(t *testing.T) {
	r := newRand()
	for i := 0; i < 1000; i++ {
		a := randomLine(r, 0.0)
		f := r.Float64()*10.0 - 5.0
		if Equal(f, 0.0) {
			continue
		}
		off := Point{r.Float64() * 10.0, r.Float64() * 10.0, 0.0}
		b := Line{a.Start.Add(off), a.Start.Add(off).Add(a.Direction().Mul(f))}
		_, ok := Intersect(a, b)
		test.That(t, !ok, a, b)

		// coincident
		b = Line{a.Start, a.Start.Add(a.Direction().Mul(f))}
		_, ok = Intersect(a, b)
		test.That(t, !ok, a, b)
	}
}
