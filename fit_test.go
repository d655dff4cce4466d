package spvec

import (
	"math"
	"testing"
)

func circleResult(t testing.TB) (*Result, *Config) {
	t.Helper()
	cfg := DefaultConfig
	res, err := Vectorize(regularPolygon(Pt(0, 0), 30, 120), &cfg)
	if err != nil {
		t.Fatal(err)
	}
	return res, &cfg
}

// curveSpans returns the indices into res.Refined of the start and end of
// every curve in res.Curves.
func curveSpans(res *Result) [][2]int {
	var spans [][2]int
	for k := 1; k < len(res.Curves); k++ {
		n := &res.Curves[k]
		if n.Flag&Bezier == 0 {
			continue
		}
		j := len(res.Refined) - 1
		if k+1 < len(res.Curves) {
			j = res.Curves[k+1].Pred
		}
		spans = append(spans, [2]int{n.Pred, j})
	}
	return spans
}

func TestFitBezierCircle(t *testing.T) {
	res, cfg := circleResult(t)
	spans := curveSpans(res)
	if len(spans) == 0 {
		t.Fatal("no curves fitted to a circle")
	}
	for _, s := range spans {
		i, j := s[0], s[1]
		ctrl, area, ok := FitBezier(res.Refined, i, j, cfg.CurveMaxDistance)
		if !ok {
			t.Fatalf("refitting span (%d, %d) failed", i, j)
		}
		diff(t, res.Refined[j].Ctrl, ctrl)
		if want := res.Refined[j].Cost - res.Refined[i].Cost - cfg.CurveCostCurve; math.Abs(area-want) > 1e-9 {
			t.Errorf("span (%d, %d) has area %g, want %g", i, j, area, want)
		}

		// the curve lies between the polygon and its circumcircle, give or
		// take the allowed distance
		c := CubicBez{res.Refined[i].Point, ctrl[0], ctrl[1], res.Refined[j].Point}
		for _, pt := range c.Sample(nil, 16) {
			if r := Vec2(pt).Hypot(); r < 30-cfg.LineMaxDistance-cfg.CurveMaxDistance || r > 30+cfg.CurveMaxDistance {
				t.Errorf("curve point %s has distance %g from the center", pt, r)
			}
		}
	}
}

func TestFitBezierRejects(t *testing.T) {
	mk := func(pts ...Point) Path {
		p := NewPath(pts)
		for i := 1; i < len(p); i++ {
			p[i].Arclen = p[i-1].Arclen + p[i].Sub(p[i-1].Point).Hypot()
		}
		return p
	}
	tests := []struct {
		name string
		p    Path
	}{
		{"no interior point", mk(Pt(0, 0), Pt(10, 0))},
		{"collinear", mk(Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0), Pt(4, 0))},
		{"start tangent turns back", mk(Pt(0, 0), Pt(-2, 3), Pt(5, 5), Pt(10, 0))},
		{"end tangent turns back", mk(Pt(0, 0), Pt(5, 5), Pt(12, 3), Pt(10, 0))},
		// a spike far outside any curve through the end points
		{"too far", mk(Pt(0, 0), Pt(2, 1), Pt(5, 30), Pt(8, 1), Pt(10, 0))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if ctrl, area, ok := FitBezier(tt.p, 0, len(tt.p)-1, 1.1); ok {
				t.Errorf("got curve %v with area %g, want failure", ctrl, area)
			}
		})
	}
}

func TestSolveLinear(t *testing.T) {
	// 2x + y = 5, x - y = 1
	x, y, ok := solveLinear(2, 1, 5, 1, -1, 1)
	if !ok {
		t.Fatal("no solution")
	}
	if x != 2 || y != 1 {
		t.Errorf("got (%g, %g), want (2, 1)", x, y)
	}
	if _, _, ok := solveLinear(1, 2, 3, 2, 4, 6); ok {
		t.Error("solved singular system")
	}
}

func TestControlPointsTangent(t *testing.T) {
	// a symmetric arch: the curve must touch the horizontal line y = 3 at
	// t = 0.5
	b0, b3 := Pt(0, 0), Pt(10, 0)
	m1, m2 := Vec(1, 1), Vec(-1, 1)
	b1, b2, ok := controlPoints(b0, b3, m1, m2, Pt(5, 3), Vec(1, 0))
	if !ok {
		t.Fatal("no solution")
	}
	c := CubicBez{b0, b1, b2, b3}
	assertNear(t, c.Eval(0.5), Pt(5, 3), 1e-9)
	assertNear(t, b1, Pt(4, 4), 1e-9)
	assertNear(t, b2, Pt(6, 4), 1e-9)
}

func BenchmarkVectorizeCircle(b *testing.B) {
	cfg := DefaultConfig
	contour := regularPolygon(Pt(0, 0), 100, 600)
	b.ResetTimer()
	for range b.N {
		if _, err := Vectorize(contour, &cfg); err != nil {
			b.Fatal(err)
		}
	}
}
