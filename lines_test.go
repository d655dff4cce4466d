package spvec

import (
	"math/rand/v2"
	"testing"
)

func TestLineCostDistance(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	cfg := DefaultConfig
	for range 20 {
		p := NewPath(wobble(rng, 25, 100))
		lc := NewLineCost(p, &cfg)
		for j := 1; j < len(p); j++ {
			for i := max(0, j-30); i < j; i++ {
				if _, ok := lc.TryCost(i, j); !ok {
					continue
				}
				for k := i + 1; k < j; k++ {
					d := distToLine(p[k].Point, p[i].Point, p[j].Point)
					if d > cfg.LineMaxDistance+1e-9 {
						t.Fatalf("edge (%d, %d) accepted with point %d at distance %g", i, j, k, d)
					}
				}
			}
		}
	}
}

func TestLineCostTrivialEdge(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	cfg := DefaultConfig
	pts := wobble(rng, 10, 50)
	// a duplicated point, which makes a zero-length edge
	pts = append(pts[:10:10], append([]Point{pts[9]}, pts[10:]...)...)
	p := NewPath(pts)
	lc := NewLineCost(p, &cfg)
	for j := 1; j < len(p); j++ {
		c, ok := lc.TryCost(j-1, j)
		if !ok {
			t.Fatalf("edge (%d, %d) rejected", j-1, j)
		}
		if c != cfg.LineCostSegment {
			t.Errorf("edge (%d, %d) costs %g, want %g", j-1, j, c, cfg.LineCostSegment)
		}
	}
}

func TestLineCostDoublingBack(t *testing.T) {
	cfg := DefaultConfig
	// the contour runs out to (10, 0) and back to (2, 0); every point is
	// close to the line through the first and last point, but most of them
	// don't project onto the segment
	p := NewPath([]Point{Pt(0, 0), Pt(5, 0), Pt(10, 0), Pt(6, 0.5), Pt(2, 0)})
	lc := NewLineCost(p, &cfg)
	if _, ok := lc.TryCost(0, 4); ok {
		t.Error("segment doubling back was accepted")
	}
	if _, ok := lc.TryCost(0, 2); !ok {
		t.Error("straight run was rejected")
	}
}

func TestLineCostPenalty(t *testing.T) {
	cfg := DefaultConfig
	cfg.LineCostDistance = 2
	p := NewPath([]Point{Pt(0, 0), Pt(5, 0.5), Pt(10, 0)})
	lc := NewLineCost(p, &cfg)
	c, ok := lc.TryCost(0, 2)
	if !ok {
		t.Fatal("rejected")
	}
	// the interior point is 0.5 from a segment of length 10; the mean
	// counts one more point than there are interior points
	const (
		dist = 0.5 * 10 / 2 / 10
		area = 0.5 * 10 / 2
	)
	if want := cfg.LineCostSegment + 2*dist + area; c != want {
		t.Errorf("got cost %g, want %g", c, want)
	}
}

func TestLinePhaseSquare(t *testing.T) {
	cfg := DefaultConfig
	p := NewPath(square())
	Solve(p, &cfg, NewLineCost(p, &cfg))
	lines, cost := Extract(p)

	diff(t, square(), lines.Points())
	if want := 4 * cfg.LineCostSegment; cost != want {
		t.Errorf("got cost %g, want %g", cost, want)
	}
}

// Re-solving the output only reproduces it for contours whose first
// solution is already a fixpoint of the windowed search.
func TestLinePhaseIdempotent(t *testing.T) {
	cfg := DefaultConfig
	contours := map[string][]Point{
		"square":  square(),
		"dense":   densify(square(), 1),
		"hexagon": densify(regularPolygon(Pt(50, 50), 20, 6), 1),
	}
	for name, contour := range contours {
		t.Run(name, func(t *testing.T) {
			p := NewPath(contour)
			Solve(p, &cfg, NewLineCost(p, &cfg))
			first, _ := Extract(p)

			q := NewPath(first.Points())
			Solve(q, &cfg, NewLineCost(q, &cfg))
			second, _ := Extract(q)

			diff(t, first.Points(), second.Points())
		})
	}
}
