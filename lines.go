package spvec

// LineCost is the cost model of the line phase: an edge (i, j) replaces the
// contour points between i and j with a single straight segment.
type LineCost struct {
	p   Path
	cfg *Config
}

var _ CostModel = (*LineCost)(nil)

func NewLineCost(p Path, cfg *Config) *LineCost {
	return &LineCost{p: p, cfg: cfg}
}

// TryCost implements [CostModel].
//
// The edge exists if every intermediate point lies within
// cfg.LineMaxDistance of the segment and projects onto it, give or take the
// same distance at either end. The latter rejects segments that double back
// next to a longer straight run.
func (lc *LineCost) TryCost(i, j int) (float64, bool) {
	p := lc.p
	p1 := p[i].Point
	p21 := p[j].Sub(p1)

	// normal of the segment; |n| = |p21|
	n := p21.Perp()
	l := n.Hypot()
	if l == 0 {
		if j-i > 1 {
			return 0, false
		}
		return lc.cfg.LineCostSegment, true
	}

	limit := l * lc.cfg.LineMaxDistance
	limit2 := l*l + limit

	var sum float64
	cnt := 1
	for k := i + 1; k < j; k++ {
		pk1 := p[k].Sub(p1)

		// d = dist(p[k], segment) * l
		d := n.Dot(pk1)
		if d < 0 {
			d = -d
		}
		if d > limit {
			return 0, false
		}
		sum += d
		cnt++

		if d := p21.Dot(pk1); d < -limit || d > limit2 {
			return 0, false
		}
	}

	// mean distance of the contour points from the segment
	dist := sum / (float64(cnt) * l)
	cfg := lc.cfg
	return cfg.LineCostSegment + cfg.LineCostDistance*dist + cfg.LineCostArea*(sum/float64(cnt)), true
}

// Relaxed implements [CostModel]. Line segments need no extra data.
func (lc *LineCost) Relaxed(j int) {}
