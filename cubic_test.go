package spvec

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicBezSampleEnds(t *testing.T) {
	// coordinates that are not exactly representable, so that any rounding
	// at the ends would show
	c := CubicBez{
		Pt(0.1, 0.7),
		Pt(1.3, 5.9),
		Pt(7.7, -2.3),
		Pt(9.1, 3.3),
	}
	for n := 1; n <= MaxSamples; n *= 2 {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			pts := c.Sample(nil, n)
			if len(pts) != n+1 {
				t.Fatalf("got %d samples, want %d", len(pts), n+1)
			}
			if pts[0] != c.P0 {
				t.Errorf("first sample is %s, want exactly %s", pts[0], c.P0)
			}
			if pts[n] != c.P3 {
				t.Errorf("last sample is %s, want exactly %s", pts[n], c.P3)
			}
		})
	}
}

func TestCubicBezSampleMatchesEval(t *testing.T) {
	c := CubicBez{
		Pt(0, 0),
		Pt(1.0/3.0, 0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1, 1),
	}
	const n = 16
	pts := c.Sample(nil, n)
	want := make([]Point, n+1)
	for i := range want {
		want[i] = c.Eval(float64(i) / n)
	}
	diff(t, want, pts, cmpopts.EquateApprox(0, 1e-12))
}

func TestCubicBezSampleAppends(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)}
	dst := []Point{Pt(-1, -1)}
	dst = c.Sample(dst, 2)
	diff(t, []Point{Pt(-1, -1), Pt(0, 0), Pt(0.5, 0.75), Pt(1, 0)}, dst)
}

func TestCubicBezSampleInvalid(t *testing.T) {
	for _, n := range []int{0, 3, 128} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("no panic for %d samples", n)
				}
			}()
			CubicBez{}.Sample(nil, n)
		}()
	}
}
