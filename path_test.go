package gridmerge

import (
	"errors"
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestOuterEndpoint(t *testing.T) {
	var tts = []struct {
		l     Line
		joint Point
		outer Point
	}{
		{Line{Point{0.0, 0.0, 0.0}, Point{10.0, 0.0, 0.0}}, Point{8.0, 0.0, 0.0}, Point{0.0, 0.0, 0.0}},
		{Line{Point{0.0, 0.0, 0.0}, Point{10.0, 0.0, 0.0}}, Point{2.0, 0.0, 0.0}, Point{10.0, 0.0, 0.0}},
		{Line{Point{0.0, 0.0, 0.0}, Point{10.0, 0.0, 0.0}}, Point{-3.0, 0.0, 0.0}, Point{10.0, 0.0, 0.0}},
		{Line{Point{0.0, 0.0, 0.0}, Point{10.0, 0.0, 0.0}}, Point{13.0, 0.0, 0.0}, Point{0.0, 0.0, 0.0}},
		// tie picks the first endpoint
		{Line{Point{0.0, 0.0, 0.0}, Point{10.0, 0.0, 0.0}}, Point{5.0, 0.0, 0.0}, Point{0.0, 0.0, 0.0}},
		{Line{Point{10.0, 0.0, 0.0}, Point{0.0, 0.0, 0.0}}, Point{5.0, 0.0, 0.0}, Point{10.0, 0.0, 0.0}},
		{Line{Point{0.0, 0.0, 0.0}, Point{10.0, 0.0, 0.0}}, Point{5.0, 0.0, Epsilon / 10.0}, Point{0.0, 0.0, 0.0}},
		{Line{Point{0.0, 0.0, 0.0}, Point{2e6, 0.0, 0.0}}, Point{1e6 - 1e-9, 0.0, 0.0}, Point{0.0, 0.0, 0.0}},
		{Line{Point{2e6, 0.0, 0.0}, Point{0.0, 0.0, 0.0}}, Point{1e6 + 1e-9, 0.0, 0.0}, Point{2e6, 0.0, 0.0}},
		{Line{Point{0.0, 0.0, 0.0}, Point{2e6, 0.0, 0.0}}, Point{1e6 - 1.0, 0.0, 0.0}, Point{2e6, 0.0, 0.0}},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, OuterEndpoint(tt.l, tt.joint), tt.outer)
		})
	}
}

func TestOuterEndpointSwap(t *testing.T) {
	r := newRand()
	for i := 0; i < 1000; i++ {
		l := randomLine(r, 0.0)
		joint := Point{r.Float64()*200.0 - 100.0, r.Float64()*200.0 - 100.0, 0.0}
		if equidistant(l.Start.DistanceTo(joint), l.End.DistanceTo(joint)) {
			continue
		}

		outer := OuterEndpoint(l, joint)
		test.T(t, OuterEndpoint(l.Reverse(), joint), outer)
		other := l.End
		if outer == l.End {
			other = l.Start
		}
		test.That(t, other.DistanceTo(joint) < outer.DistanceTo(joint))
	}
}

func TestBuildPath(t *testing.T) {
	a := Line{Point{0.0, 0.0, 0.0}, Point{10.0, 0.0, 0.0}}
	b := Line{Point{5.0, -5.0, 0.0}, Point{5.0, 5.0, 0.0}}
	joint, ok := Intersect(a, b)
	test.That(t, ok)
	test.T(t, joint, Point{5.0, 0.0, 0.0})

	p := BuildPath(a, b, joint)
	test.T(t, p.Segments(), [2]Line{
		{Point{0.0, 0.0, 0.0}, Point{5.0, 0.0, 0.0}},
		{Point{5.0, 0.0, 0.0}, Point{5.0, -5.0, 0.0}},
	})
	test.T(t, p.Joint(), joint)
	test.T(t, p.Start(), Point{0.0, 0.0, 0.0})
	test.T(t, p.End(), Point{5.0, -5.0, 0.0})
	test.T(t, len(p.Coords()), 3)
	test.Float(t, p.Length(), 10.0)
	test.That(t, p.Continuous())
	test.Error(t, p.Validate())
	test.T(t, p.Bounds(), Rect{0.0, -5.0, 5.0, 5.0})
	test.String(t, p.String(), "M0 0L5 0L5 -5")

	// idempotent
	joint2, _ := Intersect(a, b)
	test.T(t, BuildPath(a, b, joint2), p)
}

func TestBuildPathJoint(t *testing.T) {
	r := newRand()
	for i := 0; i < 1000; i++ {
		a, b := randomLine(r, 0.0), randomLine(r, 0.0)
		joint, ok := Intersect(a, b)
		if !ok {
			continue
		}

		p := BuildPath(a, b, joint)
		segs := p.Segments()
		test.That(t, segs[0].End == joint && segs[1].Start == joint, "joint must be exact")
		test.That(t, p.Continuous())
		test.That(t, segs[0].Start == a.Start || segs[0].Start == a.End)
		test.That(t, segs[1].End == b.Start || segs[1].End == b.End)
	}
}

func TestBuildPathDegenerate(t *testing.T) {
	joint := Point{5.0, 0.0, 0.0}
	p := BuildPath(Line{joint, joint}, Line{Point{5.0, -5.0, 0.0}, Point{5.0, 5.0, 0.0}}, joint)
	test.That(t, p.Continuous())
	test.That(t, errors.Is(p.Validate(), ErrDegeneratePath))

	p = BuildPath(Line{Point{0.0, 0.0, 0.0}, Point{10.0, 0.0, 0.0}}, Line{joint, joint}, joint)
	test.That(t, errors.Is(p.Validate(), ErrDegeneratePath))

	p = MergedPath{[2]Line{
		{Point{0.0, 0.0, 0.0}, Point{5.0, 0.0, 0.0}},
		{Point{5.0, 1.0, 0.0}, Point{5.0, 5.0, 0.0}},
	}}
	test.That(t, !p.Continuous())
	test.That(t, p.Validate() != nil)
}
