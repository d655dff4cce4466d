package spvec

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func square() []Point {
	return []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10), Pt(0, 0)}
}

// densify returns the closed polygon poly with extra points inserted so that
// no two consecutive points are farther than step apart.
func densify(poly []Point, step float64) []Point {
	var out []Point
	for i := 0; i+1 < len(poly); i++ {
		a, b := poly[i], poly[i+1]
		d := b.Sub(a)
		n := max(1, int(math.Ceil(b.Sub(a).Hypot()/step)))
		for k := range n {
			// multiply before dividing so that integer grids stay exact
			f := float64(k)
			out = append(out, a.Translate(Vec(d.X*f/float64(n), d.Y*f/float64(n))))
		}
	}
	return append(out, poly[len(poly)-1])
}

// regularPolygon returns a closed polygon with n corners on a circle.
func regularPolygon(center Point, r float64, n int) []Point {
	pts := make([]Point, 0, n+1)
	for k := range n {
		sin, cos := math.Sincos(2 * math.Pi * float64(k) / float64(n))
		pts = append(pts, center.Translate(Vec(r*cos, r*sin)))
	}
	return append(pts, pts[0])
}

// wobble returns a closed polyline that walks around a circle with random
// radial noise, which gives it both convex and concave stretches.
func wobble(rng *rand.Rand, r float64, n int) []Point {
	pts := make([]Point, 0, n+1)
	for k := range n {
		rr := r + rng.Float64()*3 - 1.5
		sin, cos := math.Sincos(2 * math.Pi * float64(k) / float64(n))
		pts = append(pts, Pt(rr*cos, rr*sin))
	}
	return append(pts, pts[0])
}

// distToLine returns the distance of pt from the infinite line through a
// and b.
func distToLine(pt, a, b Point) float64 {
	ab := b.Sub(a)
	return math.Abs(ab.Cross(pt.Sub(a))) / ab.Hypot()
}
