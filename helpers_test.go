package gridmerge

import "math/rand/v2"

// randomLine returns a non-degenerate segment in the plane at elevation z with coordinates in [-100,100).
func randomLine(r *rand.Rand, z float64) Line {
	for {
		l := Line{
			Point{r.Float64()*200.0 - 100.0, r.Float64()*200.0 - 100.0, z},
			Point{r.Float64()*200.0 - 100.0, r.Float64()*200.0 - 100.0, z},
		}
		if 1.0 < l.Length() {
			return l
		}
	}
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}
